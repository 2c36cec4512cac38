package catalog_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/thegardencompany/storefront/catalog"
	internalcatalog "github.com/thegardencompany/storefront/internal/catalog"
)

func product(handle, category, status string, createdAt time.Time) *catalog.Product {
	return &catalog.Product{
		ID:        uuid.New(),
		URLHandle: handle,
		Name:      handle,
		Category:  category,
		Price:     499,
		Status:    status,
		CreatedAt: createdAt,
	}
}

func seedRepo() *internalcatalog.MemoryProductRepository {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	return internalcatalog.NewMemoryProductRepository(
		product("snake-plant", "indoor-plants", catalog.StatusActive, base.Add(48*time.Hour)),
		product("money-plant", "indoor-plants", catalog.StatusActive, base.Add(24*time.Hour)),
		product("rose-bush", "outdoor-plants", catalog.StatusActive, base),
		product("secret-fern", "indoor-plants", catalog.StatusDraft, base.Add(72*time.Hour)),
		product("old-cactus", "succulents", catalog.StatusArchived, base),
	)
}

func newService(t *testing.T, repo catalog.ProductRepository) catalog.Service {
	t.Helper()
	svc, err := catalog.NewService(repo)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func TestNewServiceRequiresRepository(t *testing.T) {
	if _, err := catalog.NewService(nil); !errors.Is(err, catalog.ErrRepositoryRequired) {
		t.Fatalf("expected repository-required error, got %v", err)
	}
}

func TestListProductsFiltersInactive(t *testing.T) {
	svc := newService(t, seedRepo())

	products, err := svc.ListProducts(context.Background())
	if err != nil {
		t.Fatalf("list products: %v", err)
	}
	if len(products) != 3 {
		t.Fatalf("expected 3 active products, got %d", len(products))
	}
	for _, p := range products {
		if p.Status != catalog.StatusActive {
			t.Fatalf("inactive product leaked: %s (%s)", p.URLHandle, p.Status)
		}
	}
	if products[0].URLHandle != "snake-plant" {
		t.Fatalf("expected newest-first ordering, got %s first", products[0].URLHandle)
	}
}

func TestGetProductByHandle(t *testing.T) {
	svc := newService(t, seedRepo())

	p, err := svc.GetProductByHandle(context.Background(), "money-plant")
	if err != nil {
		t.Fatalf("get by handle: %v", err)
	}
	if p.URLHandle != "money-plant" {
		t.Fatalf("unexpected product: %s", p.URLHandle)
	}

	if _, err := svc.GetProductByHandle(context.Background(), ""); !errors.Is(err, catalog.ErrHandleRequired) {
		t.Fatalf("expected handle-required error, got %v", err)
	}

	_, err = svc.GetProductByHandle(context.Background(), "secret-fern")
	if !catalog.IsNotFound(err) {
		t.Fatalf("draft product should be invisible, got %v", err)
	}

	_, err = svc.GetProductByHandle(context.Background(), "never-existed")
	var notFound *catalog.NotFoundError
	if !errors.As(err, &notFound) || notFound.Key != "never-existed" {
		t.Fatalf("unexpected error shape: %v", err)
	}
}

func TestRelatedProductsExcludesSelfAndLimits(t *testing.T) {
	repo := seedRepo()
	svc := newService(t, repo)

	self, err := svc.GetProductByHandle(context.Background(), "snake-plant")
	if err != nil {
		t.Fatalf("get self: %v", err)
	}

	related, err := svc.RelatedProducts(context.Background(), "indoor-plants", self.ID, 0)
	if err != nil {
		t.Fatalf("related products: %v", err)
	}
	if len(related) != 1 {
		t.Fatalf("expected 1 related product, got %d", len(related))
	}
	if related[0].URLHandle == "snake-plant" {
		t.Fatal("related listing should exclude the source product")
	}

	limited, err := svc.RelatedProducts(context.Background(), "indoor-plants", uuid.Nil, 1)
	if err != nil {
		t.Fatalf("related with limit: %v", err)
	}
	if len(limited) != 1 {
		t.Fatalf("expected limit to cap results, got %d", len(limited))
	}
}

func TestRelatedProductsHonorsConfiguredLimit(t *testing.T) {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	repo := internalcatalog.NewMemoryProductRepository(
		product("snake-plant", "indoor-plants", catalog.StatusActive, base.Add(48*time.Hour)),
		product("money-plant", "indoor-plants", catalog.StatusActive, base.Add(24*time.Hour)),
		product("peace-lily", "indoor-plants", catalog.StatusActive, base),
	)

	svc, err := catalog.NewService(repo, catalog.WithRelatedLimit(2))
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	related, err := svc.RelatedProducts(context.Background(), "indoor-plants", uuid.Nil, 0)
	if err != nil {
		t.Fatalf("related products: %v", err)
	}
	if len(related) != 2 {
		t.Fatalf("expected configured limit of 2, got %d products", len(related))
	}

	// An explicit limit still wins over the configured default.
	one, err := svc.RelatedProducts(context.Background(), "indoor-plants", uuid.Nil, 1)
	if err != nil {
		t.Fatalf("related with explicit limit: %v", err)
	}
	if len(one) != 1 {
		t.Fatalf("expected explicit limit of 1, got %d products", len(one))
	}
}

func TestCategoriesRollUpActiveCounts(t *testing.T) {
	svc := newService(t, seedRepo())

	categories, err := svc.Categories(context.Background())
	if err != nil {
		t.Fatalf("categories: %v", err)
	}
	if len(categories) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(categories))
	}

	// Sorted by display name: Indoor Plants, Outdoor Plants.
	indoor := categories[0]
	if indoor.Slug != "indoor-plants" || indoor.ProductCount != 2 {
		t.Fatalf("unexpected category: %+v", indoor)
	}
	if indoor.Name != "Indoor Plants" {
		t.Fatalf("unexpected display name: %s", indoor.Name)
	}
	if indoor.Description != "Browse our Indoor Plants collection" {
		t.Fatalf("unexpected description: %s", indoor.Description)
	}
	if indoor.Image == "" {
		t.Fatal("category image not resolved")
	}
}

type failingRepo struct{}

func (failingRepo) ListActive(context.Context) ([]*catalog.Product, error) {
	return nil, errors.New("db down")
}

func (failingRepo) GetActiveByHandle(_ context.Context, handle string) (*catalog.Product, error) {
	return nil, errors.New("db down")
}

func (failingRepo) ListActiveByCategory(context.Context, string, uuid.UUID, int) ([]*catalog.Product, error) {
	return nil, errors.New("db down")
}

func (failingRepo) ActiveCategoryCounts(context.Context) (map[string]int, error) {
	return nil, errors.New("db down")
}

func TestListingsDegradeToEmptyOnRepositoryFailure(t *testing.T) {
	svc := newService(t, failingRepo{})

	products, err := svc.ListProducts(context.Background())
	if err != nil {
		t.Fatalf("expected degradation, got error: %v", err)
	}
	if len(products) != 0 {
		t.Fatalf("expected empty slice, got %d", len(products))
	}

	related, err := svc.RelatedProducts(context.Background(), "indoor-plants", uuid.Nil, 4)
	if err != nil {
		t.Fatalf("expected degradation, got error: %v", err)
	}
	if len(related) != 0 {
		t.Fatalf("expected empty slice, got %d", len(related))
	}

	categories, err := svc.Categories(context.Background())
	if err != nil {
		t.Fatalf("expected degradation, got error: %v", err)
	}
	if len(categories) != 0 {
		t.Fatalf("expected empty slice, got %d", len(categories))
	}

	// Single-item fetches surface the failure instead of masking it.
	if _, err := svc.GetProductByHandle(context.Background(), "snake-plant"); err == nil {
		t.Fatal("expected error from direct fetch")
	}
}

func TestCategoryNameFallback(t *testing.T) {
	if got := catalog.CategoryName("succulents"); got != "Succulents & Cacti" {
		t.Fatalf("unexpected name: %s", got)
	}
	if got := catalog.CategoryName("mystery-goods"); got != "mystery goods" {
		t.Fatalf("unexpected fallback: %s", got)
	}
}
