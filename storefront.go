package storefront

import (
	"github.com/thegardencompany/storefront/cart"
	"github.com/thegardencompany/storefront/catalog"
	"github.com/thegardencompany/storefront/internal/di"
	"github.com/thegardencompany/storefront/internal/logging"
	"github.com/thegardencompany/storefront/resources"
	"github.com/thegardencompany/storefront/seo"
)

// ResourceService exports the content hierarchy contract for consumers of the
// storefront package.
type ResourceService = resources.Service

// CatalogService exports the product catalog contract.
type CatalogService = catalog.Service

// SchemaGenerator exports the JSON-LD schema generator.
type SchemaGenerator = seo.Generator

// Module represents the top level storefront runtime façade.
type Module struct {
	container *di.Container
}

// New constructs a storefront module using the provided configuration and
// optional DI overrides.
func New(cfg Config, opts ...di.Option) (*Module, error) {
	container, err := di.NewContainer(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Module{container: container}, nil
}

// Container exposes the underlying DI container for advanced integrations.
func (m *Module) Container() *di.Container {
	return m.container
}

// Resources returns the configured content hierarchy service.
func (m *Module) Resources() ResourceService {
	return m.container.Resources()
}

// Catalog returns the configured product catalog service.
func (m *Module) Catalog() CatalogService {
	return m.container.Catalog()
}

// NewCart creates an empty cart session bound to the module's shipping
// policy.
func (m *Module) NewCart() *cart.Cart {
	return cart.New(
		cart.WithCalculator(m.container.Calculator()),
		cart.WithLogger(logging.CartLogger(m.container.LoggerProvider())),
	)
}

// Schema returns the JSON-LD schema generator.
func (m *Module) Schema() *SchemaGenerator {
	return m.container.Schema()
}
