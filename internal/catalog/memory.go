package catalog

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/thegardencompany/storefront/catalog"
)

// MemoryProductRepository is an in-memory catalog.ProductRepository. It backs
// tests and database-less deployments where the product list ships with the
// binary.
type MemoryProductRepository struct {
	mu       sync.RWMutex
	products []*catalog.Product
}

var _ catalog.ProductRepository = (*MemoryProductRepository)(nil)

// NewMemoryProductRepository seeds the repository with the given products.
func NewMemoryProductRepository(products ...*catalog.Product) *MemoryProductRepository {
	repo := &MemoryProductRepository{}
	repo.Seed(products...)
	return repo
}

// Seed replaces the repository contents.
func (r *MemoryProductRepository) Seed(products ...*catalog.Product) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products = make([]*catalog.Product, len(products))
	copy(r.products, products)
}

func (r *MemoryProductRepository) ListActive(ctx context.Context) ([]*catalog.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	active := make([]*catalog.Product, 0, len(r.products))
	for _, p := range r.products {
		if p.Status == catalog.StatusActive {
			active = append(active, p)
		}
	}
	sortNewestFirst(active)
	return active, nil
}

func (r *MemoryProductRepository) GetActiveByHandle(ctx context.Context, handle string) (*catalog.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.products {
		if p.URLHandle == handle && p.Status == catalog.StatusActive {
			return p, nil
		}
	}
	return nil, &catalog.NotFoundError{Resource: "product", Key: handle}
}

func (r *MemoryProductRepository) ListActiveByCategory(ctx context.Context, category string, excludeID uuid.UUID, limit int) ([]*catalog.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]*catalog.Product, 0, limit)
	for _, p := range r.products {
		if p.Status != catalog.StatusActive || p.Category != category {
			continue
		}
		if excludeID != uuid.Nil && p.ID == excludeID {
			continue
		}
		matched = append(matched, p)
	}
	sortNewestFirst(matched)
	if limit > 0 && len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}

func (r *MemoryProductRepository) ActiveCategoryCounts(ctx context.Context) (map[string]int, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	counts := make(map[string]int)
	for _, p := range r.products {
		if p.Status == catalog.StatusActive {
			counts[p.Category]++
		}
	}
	return counts, nil
}

func sortNewestFirst(products []*catalog.Product) {
	sort.SliceStable(products, func(i, j int) bool {
		return products[i].CreatedAt.After(products[j].CreatedAt)
	})
}
