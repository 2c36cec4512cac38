package runtimeconfig

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrSiteURLRequired = errors.New("storefront config: site URL is required")
var ErrContentBasePathRequired = errors.New("storefront config: content base path is required")
var ErrCatalogDriverUnknown = errors.New("storefront config: catalog driver is invalid")
var ErrCatalogDSNRequired = errors.New("storefront config: catalog DSN is required for database drivers")
var ErrRelatedLimitInvalid = errors.New("storefront config: related products limit must be zero or positive")
var ErrShippingThresholdInvalid = errors.New("storefront config: free shipping threshold must be zero or positive")
var ErrShippingFeeInvalid = errors.New("storefront config: shipping fee must be zero or positive")
var ErrLoggingProviderUnknown = errors.New("storefront config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("storefront config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("storefront config: logging format is invalid")

// Config aggregates runtime settings for the storefront module. Fields use
// simple types so host applications can map them from any config source.
type Config struct {
	SiteURL string
	Content ContentConfig
	Catalog CatalogConfig
	Cart    CartConfig
	Cache   CacheConfig
	Logging LoggingConfig
}

// ContentConfig locates the MDX content tree and fills author defaults.
type ContentConfig struct {
	BasePath      string
	DefaultAuthor string
}

// CatalogConfig selects the product store backend.
// Driver is one of "sqlite", "postgres", or "memory".
type CatalogConfig struct {
	Driver       string
	DSN          string
	RelatedLimit int
}

// CartConfig tunes the shipping policy. Zero values fall back to the
// storefront defaults.
type CartConfig struct {
	FreeShippingThreshold float64
	ShippingFee           float64
}

// CacheConfig captures repository cache toggles.
type CacheConfig struct {
	Enabled    bool
	DefaultTTL time.Duration
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// DefaultConfig returns opinionated defaults for a local deployment.
func DefaultConfig() Config {
	return Config{
		SiteURL: "https://thegardencompany.in",
		Content: ContentConfig{
			BasePath:      "content/resources",
			DefaultAuthor: "The Garden Company",
		},
		Catalog: CatalogConfig{
			Driver:       "sqlite",
			DSN:          "file:storefront.db?cache=shared",
			RelatedLimit: 4,
		},
		Cart: CartConfig{
			FreeShippingThreshold: 999,
			ShippingFee:           99,
		},
		Cache: CacheConfig{
			Enabled:    true,
			DefaultTTL: time.Minute,
		},
		Logging: LoggingConfig{
			Provider: "console",
			Level:    "info",
			Format:   "",
		},
	}
}

// Validate performs high-level consistency checks.
func (cfg Config) Validate() error {
	if strings.TrimSpace(cfg.SiteURL) == "" {
		return ErrSiteURLRequired
	}
	if strings.TrimSpace(cfg.Content.BasePath) == "" {
		return ErrContentBasePathRequired
	}

	driver := strings.ToLower(strings.TrimSpace(cfg.Catalog.Driver))
	switch driver {
	case "", "memory":
	case "sqlite", "postgres":
		if strings.TrimSpace(cfg.Catalog.DSN) == "" {
			return ErrCatalogDSNRequired
		}
	default:
		return fmt.Errorf("%w: %s", ErrCatalogDriverUnknown, driver)
	}
	if cfg.Catalog.RelatedLimit < 0 {
		return ErrRelatedLimitInvalid
	}

	if cfg.Cart.FreeShippingThreshold < 0 {
		return ErrShippingThresholdInvalid
	}
	if cfg.Cart.ShippingFee < 0 {
		return ErrShippingFeeInvalid
	}

	if provider := normalizeProvider(cfg.Logging.Provider); provider != "" {
		if !isSupportedProvider(provider) {
			return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
		}
		if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
			return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
		}
		if provider == "gologger" {
			if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
				return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
			}
		}
	}
	return nil
}

func normalizeProvider(provider string) string {
	return strings.ToLower(strings.TrimSpace(provider))
}

func isSupportedProvider(provider string) bool {
	switch provider {
	case "console", "gologger":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}
