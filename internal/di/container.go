package di

import (
	"io/fs"
	"strings"
	"time"

	repocache "github.com/goliatone/go-repository-cache/cache"
	"github.com/uptrace/bun"

	"github.com/thegardencompany/storefront/cart"
	"github.com/thegardencompany/storefront/catalog"
	internalcatalog "github.com/thegardencompany/storefront/internal/catalog"
	"github.com/thegardencompany/storefront/internal/links"
	"github.com/thegardencompany/storefront/internal/logging"
	"github.com/thegardencompany/storefront/internal/logging/console"
	"github.com/thegardencompany/storefront/internal/logging/gologger"
	"github.com/thegardencompany/storefront/internal/mdx"
	internalresources "github.com/thegardencompany/storefront/internal/resources"
	"github.com/thegardencompany/storefront/internal/runtimeconfig"
	"github.com/thegardencompany/storefront/pkg/interfaces"
	"github.com/thegardencompany/storefront/resources"
	"github.com/thegardencompany/storefront/seo"
)

// Container wires module dependencies from runtime configuration.
type Container struct {
	Config runtimeconfig.Config

	bunDB         *bun.DB
	contentFS     fs.FS
	cacheTTL      time.Duration
	cacheService  repocache.CacheService
	keySerializer repocache.KeySerializer

	loggerProvider interfaces.LoggerProvider

	linkBuilder *links.Builder
	renderer    *mdx.Renderer
	schemaGen   *seo.Generator
	calculator  *cart.Calculator

	contentStore resources.Store
	productRepo  catalog.ProductRepository

	resourcesSvc resources.Service
	catalogSvc   catalog.Service
}

// Option mutates the container before it is finalised.
type Option func(*Container)

// WithBunDB binds a database handle for the product catalog.
func WithBunDB(db *bun.DB) Option {
	return func(c *Container) {
		c.bunDB = db
	}
}

// WithContentFS overrides the content filesystem, primarily for tests.
func WithContentFS(fsys fs.FS) Option {
	return func(c *Container) {
		c.contentFS = fsys
	}
}

// WithLoggerProvider overrides the default logger provider binding.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(c *Container) {
		c.loggerProvider = provider
	}
}

// WithCache overrides the default cache provider.
func WithCache(service repocache.CacheService, serializer repocache.KeySerializer) Option {
	return func(c *Container) {
		c.cacheService = service
		c.keySerializer = serializer
	}
}

// WithContentStore overrides the default filesystem content store binding.
func WithContentStore(store resources.Store) Option {
	return func(c *Container) {
		c.contentStore = store
	}
}

// WithProductRepository overrides the default product repository binding.
func WithProductRepository(repo catalog.ProductRepository) Option {
	return func(c *Container) {
		c.productRepo = repo
	}
}

// NewContainer creates a container with the provided configuration.
func NewContainer(cfg runtimeconfig.Config, opts ...Option) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cacheTTL := cfg.Cache.DefaultTTL
	if cacheTTL <= 0 {
		cacheTTL = time.Minute
	}

	c := &Container{
		Config:   cfg,
		cacheTTL: cacheTTL,
	}

	for _, opt := range opts {
		opt(c)
	}

	if err := c.configureLogging(); err != nil {
		return nil, err
	}
	c.configureCacheDefaults()
	c.configureLinks()
	c.configureRenderer()
	c.configureSchema()

	if err := c.configureCart(); err != nil {
		return nil, err
	}
	if err := c.configureResources(); err != nil {
		return nil, err
	}
	if err := c.configureCatalog(); err != nil {
		return nil, err
	}

	return c, nil
}

// Resources returns the content hierarchy service.
func (c *Container) Resources() resources.Service {
	return c.resourcesSvc
}

// Catalog returns the product catalog service.
func (c *Container) Catalog() catalog.Service {
	return c.catalogSvc
}

// Calculator returns the configured cart calculator.
func (c *Container) Calculator() *cart.Calculator {
	return c.calculator
}

// Schema returns the JSON-LD schema generator.
func (c *Container) Schema() *seo.Generator {
	return c.schemaGen
}

// Links returns the site link builder.
func (c *Container) Links() *links.Builder {
	return c.linkBuilder
}

// LoggerProvider exposes the resolved provider so hosts can share it.
func (c *Container) LoggerProvider() interfaces.LoggerProvider {
	return c.loggerProvider
}

func (c *Container) configureLogging() error {
	if c.loggerProvider != nil {
		return nil
	}

	switch strings.ToLower(strings.TrimSpace(c.Config.Logging.Provider)) {
	case "console":
		minLevel := console.ParseLevel(c.Config.Logging.Level)
		c.loggerProvider = console.NewProvider(console.Options{MinLevel: &minLevel})
	case "gologger":
		provider, err := gologger.NewProvider(gologger.Config{
			Level:     c.Config.Logging.Level,
			Format:    c.Config.Logging.Format,
			AddSource: c.Config.Logging.AddSource,
			Focus:     c.Config.Logging.Focus,
		})
		if err != nil {
			return err
		}
		c.loggerProvider = provider
	}
	return nil
}

func (c *Container) configureCacheDefaults() {
	if !c.Config.Cache.Enabled {
		return
	}

	if c.cacheService == nil {
		cacheCfg := repocache.DefaultConfig()
		if c.cacheTTL > 0 {
			cacheCfg.TTL = c.cacheTTL
		}
		service, err := repocache.NewCacheService(cacheCfg)
		if err == nil {
			c.cacheService = service
		}
	}

	if c.cacheService != nil && c.keySerializer == nil {
		c.keySerializer = repocache.NewDefaultKeySerializer()
	}
}

func (c *Container) configureLinks() {
	if c.linkBuilder == nil {
		c.linkBuilder = links.NewBuilder("")
	}
}

func (c *Container) configureRenderer() {
	if c.renderer == nil {
		c.renderer = mdx.NewRenderer(mdx.RenderOptions{})
	}
}

func (c *Container) configureSchema() {
	if c.schemaGen == nil {
		c.schemaGen = seo.NewGenerator(seo.WithSiteURL(c.Config.SiteURL))
	}
}

func (c *Container) configureCart() error {
	calc, err := cart.NewCalculator(cart.CalculatorConfig{
		FreeShippingThreshold: c.Config.Cart.FreeShippingThreshold,
		ShippingFee:           c.Config.Cart.ShippingFee,
	})
	if err != nil {
		return err
	}
	c.calculator = calc
	return nil
}

func (c *Container) configureResources() error {
	if c.contentStore == nil {
		store, err := internalresources.NewFSStore(internalresources.Config{
			BasePath:      c.Config.Content.BasePath,
			FS:            c.contentFS,
			DefaultAuthor: c.Config.Content.DefaultAuthor,
			Logger:        logging.MDXLogger(c.loggerProvider),
		})
		if err != nil {
			return err
		}
		c.contentStore = store
	}

	svc, err := resources.NewService(c.contentStore,
		resources.WithLogger(logging.ResourcesLogger(c.loggerProvider)),
		resources.WithRenderer(c.renderer),
		resources.WithLinks(c.linkBuilder),
	)
	if err != nil {
		return err
	}
	c.resourcesSvc = svc
	return nil
}

func (c *Container) configureCatalog() error {
	if c.productRepo == nil {
		if c.bunDB != nil {
			c.productRepo = internalcatalog.NewBunProductRepositoryWithCache(c.bunDB, c.cacheService, c.keySerializer)
		} else {
			c.productRepo = internalcatalog.NewMemoryProductRepository()
		}
	}

	svc, err := catalog.NewService(c.productRepo,
		catalog.WithLogger(logging.CatalogLogger(c.loggerProvider)),
		catalog.WithRelatedLimit(c.Config.Catalog.RelatedLimit),
	)
	if err != nil {
		return err
	}
	c.catalogSvc = svc
	return nil
}
