package catalog

import (
	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/thegardencompany/storefront/catalog"
)

// NewProductRepository creates the generic bun-backed product repository.
// The URL handle doubles as the human-facing identifier.
func NewProductRepository(db *bun.DB) repository.Repository[*catalog.Product] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*catalog.Product]{
		NewRecord: func() *catalog.Product { return &catalog.Product{} },
		GetID: func(p *catalog.Product) uuid.UUID {
			return p.ID
		},
		SetID: func(p *catalog.Product, id uuid.UUID) {
			p.ID = id
		},
		GetIdentifier: func() string {
			return "url_handle"
		},
		GetIdentifierValue: func(p *catalog.Product) string {
			return p.URLHandle
		},
	})
}
