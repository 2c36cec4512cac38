package catalog

import (
	"context"
	"fmt"

	goerrors "github.com/goliatone/go-errors"
	repository "github.com/goliatone/go-repository-bun"
	cache "github.com/goliatone/go-repository-cache/cache"
	repositorycache "github.com/goliatone/go-repository-cache/repositorycache"
	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/thegardencompany/storefront/catalog"
)

const productNamespace = "product"

// BunProductRepository implements catalog.ProductRepository with optional caching.
type BunProductRepository struct {
	db           *bun.DB
	repo         repository.Repository[*catalog.Product]
	cacheService cache.CacheService
	cachePrefix  string
}

var _ catalog.ProductRepository = (*BunProductRepository)(nil)

// NewBunProductRepository creates a product repository without caching.
func NewBunProductRepository(db *bun.DB) *BunProductRepository {
	return NewBunProductRepositoryWithCache(db, nil, nil)
}

// NewBunProductRepositoryWithCache creates a product repository with caching services.
func NewBunProductRepositoryWithCache(db *bun.DB, cacheService cache.CacheService, serializer cache.KeySerializer) *BunProductRepository {
	base := NewProductRepository(db)
	var svc cache.CacheService
	if cacheService != nil && serializer != nil {
		base = repositorycache.New(base, cacheService, serializer)
		svc = cacheService
	}
	prefix := ""
	if svc != nil {
		prefix = cachePrefix(productNamespace)
	}
	return &BunProductRepository{
		db:           db,
		repo:         base,
		cacheService: svc,
		cachePrefix:  prefix,
	}
}

func (r *BunProductRepository) ListActive(ctx context.Context) ([]*catalog.Product, error) {
	records, _, err := r.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.status = ?", catalog.StatusActive).
				OrderExpr("?TableAlias.created_at DESC")
		}),
	)
	return records, err
}

func (r *BunProductRepository) GetActiveByHandle(ctx context.Context, handle string) (*catalog.Product, error) {
	records, _, err := r.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.url_handle = ?", handle).
				Where("?TableAlias.status = ?", catalog.StatusActive)
		}),
		repository.SelectPaginate(1, 0),
	)
	if err != nil {
		return nil, mapRepositoryError(err, "product", handle)
	}
	if len(records) == 0 {
		return nil, &catalog.NotFoundError{Resource: "product", Key: handle}
	}
	return records[0], nil
}

func (r *BunProductRepository) ListActiveByCategory(ctx context.Context, category string, excludeID uuid.UUID, limit int) ([]*catalog.Product, error) {
	records, _, err := r.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			q = q.Where("?TableAlias.category = ?", category).
				Where("?TableAlias.status = ?", catalog.StatusActive).
				OrderExpr("?TableAlias.created_at DESC")
			if excludeID != uuid.Nil {
				q = q.Where("?TableAlias.id != ?", excludeID)
			}
			return q
		}),
		repository.SelectPaginate(limit, 0),
	)
	return records, err
}

// ActiveCategoryCounts tallies active products per category. The roll-up runs
// against the table directly since the generic repository has no aggregate
// support.
func (r *BunProductRepository) ActiveCategoryCounts(ctx context.Context) (map[string]int, error) {
	var rows []struct {
		Category string `bun:"category"`
		Count    int    `bun:"count"`
	}

	err := r.db.NewSelect().
		Model((*catalog.Product)(nil)).
		Column("category").
		ColumnExpr("count(*) AS count").
		Where("status = ?", catalog.StatusActive).
		Group("category").
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("product repository error: %w", err)
	}

	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.Category] = row.Count
	}
	return counts, nil
}

// InvalidateCache drops cached product reads after catalog writes.
func (r *BunProductRepository) InvalidateCache(ctx context.Context) error {
	if r.cacheService == nil || r.cachePrefix == "" {
		return nil
	}
	return r.cacheService.DeleteByPrefix(ctx, r.cachePrefix)
}

func mapRepositoryError(err error, resource, key string) error {
	if err == nil {
		return nil
	}
	if goerrors.IsCategory(err, repository.CategoryDatabaseNotFound) {
		return &catalog.NotFoundError{
			Resource: resource,
			Key:      key,
		}
	}
	return fmt.Errorf("%s repository error: %w", resource, err)
}

func cachePrefix(namespace string) string {
	if namespace == "" {
		return ""
	}
	return namespace + cache.KeySeparator
}
