package catalog

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/thegardencompany/storefront/internal/logging"
	"github.com/thegardencompany/storefront/pkg/interfaces"
)

// defaultRelatedLimit bounds related-product lookups when callers pass no limit.
const defaultRelatedLimit = 4

// ProductRepository abstracts product persistence. Implementations must apply
// the active-status filter and newest-first ordering themselves so callers
// never see drafts or archived records.
type ProductRepository interface {
	ListActive(ctx context.Context) ([]*Product, error)
	GetActiveByHandle(ctx context.Context, handle string) (*Product, error)
	ListActiveByCategory(ctx context.Context, category string, excludeID uuid.UUID, limit int) ([]*Product, error)
	ActiveCategoryCounts(ctx context.Context) (map[string]int, error)
}

// Service exposes shopper-facing catalog reads. Listing operations degrade to
// empty results when the backing store fails; single-item fetches surface
// typed not-found errors.
type Service interface {
	ListProducts(ctx context.Context) ([]*Product, error)
	GetProductByHandle(ctx context.Context, handle string) (*Product, error)
	RelatedProducts(ctx context.Context, category string, excludeID uuid.UUID, limit int) ([]*Product, error)
	Categories(ctx context.Context) ([]Category, error)
}

// ServiceOption configures the service at construction time.
type ServiceOption func(*service)

// WithLogger overrides the no-op default logger.
func WithLogger(logger interfaces.Logger) ServiceOption {
	return func(s *service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithRelatedLimit overrides the limit applied to related-product lookups when
// callers pass no explicit limit. Non-positive values are ignored.
func WithRelatedLimit(limit int) ServiceOption {
	return func(s *service) {
		if limit > 0 {
			s.relatedLimit = limit
		}
	}
}

type service struct {
	repo         ProductRepository
	logger       interfaces.Logger
	relatedLimit int
}

// NewService constructs the catalog service over the supplied repository.
func NewService(repo ProductRepository, opts ...ServiceOption) (Service, error) {
	if repo == nil {
		return nil, ErrRepositoryRequired
	}

	svc := &service{
		repo:         repo,
		logger:       logging.NoOp(),
		relatedLimit: defaultRelatedLimit,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc, nil
}

func (s *service) ListProducts(ctx context.Context) ([]*Product, error) {
	products, err := s.repo.ListActive(ctx)
	if err != nil {
		s.logger.Error("list products failed", "error", err)
		return []*Product{}, nil
	}
	return products, nil
}

func (s *service) GetProductByHandle(ctx context.Context, handle string) (*Product, error) {
	handle = strings.TrimSpace(handle)
	if handle == "" {
		return nil, ErrHandleRequired
	}

	product, err := s.repo.GetActiveByHandle(ctx, handle)
	if err != nil {
		return nil, err
	}
	return product, nil
}

func (s *service) RelatedProducts(ctx context.Context, category string, excludeID uuid.UUID, limit int) ([]*Product, error) {
	if limit <= 0 {
		limit = s.relatedLimit
	}

	products, err := s.repo.ListActiveByCategory(ctx, category, excludeID, limit)
	if err != nil {
		s.logger.Error("list related products failed", "category", category, "error", err)
		return []*Product{}, nil
	}
	return products, nil
}

func (s *service) Categories(ctx context.Context) ([]Category, error) {
	counts, err := s.repo.ActiveCategoryCounts(ctx)
	if err != nil {
		s.logger.Error("list categories failed", "error", err)
		return []Category{}, nil
	}

	categories := make([]Category, 0, len(counts))
	for slug, count := range counts {
		if slug == "" {
			continue
		}
		name := CategoryName(slug)
		categories = append(categories, Category{
			Slug:         slug,
			Name:         name,
			Description:  "Browse our " + name + " collection",
			Image:        CategoryImage(slug),
			ProductCount: count,
		})
	}

	sort.Slice(categories, func(i, j int) bool {
		return categories[i].Name < categories[j].Name
	})
	return categories, nil
}
