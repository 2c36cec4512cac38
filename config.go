package storefront

import "github.com/thegardencompany/storefront/internal/runtimeconfig"

var (
	ErrSiteURLRequired          = runtimeconfig.ErrSiteURLRequired
	ErrContentBasePathRequired  = runtimeconfig.ErrContentBasePathRequired
	ErrCatalogDriverUnknown     = runtimeconfig.ErrCatalogDriverUnknown
	ErrCatalogDSNRequired       = runtimeconfig.ErrCatalogDSNRequired
	ErrRelatedLimitInvalid      = runtimeconfig.ErrRelatedLimitInvalid
	ErrShippingThresholdInvalid = runtimeconfig.ErrShippingThresholdInvalid
	ErrShippingFeeInvalid       = runtimeconfig.ErrShippingFeeInvalid
	ErrLoggingProviderUnknown   = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid      = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid     = runtimeconfig.ErrLoggingFormatInvalid
)

type (
	Config        = runtimeconfig.Config
	ContentConfig = runtimeconfig.ContentConfig
	CatalogConfig = runtimeconfig.CatalogConfig
	CartConfig    = runtimeconfig.CartConfig
	CacheConfig   = runtimeconfig.CacheConfig
	LoggingConfig = runtimeconfig.LoggingConfig
)

func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}
