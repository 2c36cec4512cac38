package logging

import (
	"context"
	"maps"
	"strings"

	"github.com/thegardencompany/storefront/pkg/interfaces"
)

const (
	rootModule      = "storefront"
	resourcesModule = "storefront.resources"
	catalogModule   = "storefront.catalog"
	cartModule      = "storefront.cart"
	mdxModule       = "storefront.mdx"
)

const (
	fieldContentPath   = "content_path"
	fieldContentPillar = "pillar"
	fieldContentSlug   = "slug"
)

// ModuleLogger returns a module-scoped logger, defaulting to a no-op
// implementation when no provider is supplied. The module identifier is
// attached as a structured field so downstream entries can be filtered.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	if module == "" {
		module = rootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}

	return WithFields(logger, map[string]any{
		"module": module,
	})
}

// ResourcesLogger returns the logger namespace reserved for the content resolver.
func ResourcesLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, resourcesModule)
}

// CatalogLogger returns the logger namespace reserved for the product catalog.
func CatalogLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, catalogModule)
}

// CartLogger returns the logger namespace reserved for cart sessions.
func CartLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, cartModule)
}

// MDXLogger returns the logger namespace reserved for MDX loading.
func MDXLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, mdxModule)
}

// WithContentContext enriches the provided logger with common content fields
// such as file path, pillar, and entry slug. Empty values are ignored.
func WithContentContext(logger interfaces.Logger, path, pillar, slug string) interfaces.Logger {
	fields := map[string]any{}
	if trimmed := strings.TrimSpace(path); trimmed != "" {
		fields[fieldContentPath] = trimmed
	}
	if trimmed := strings.TrimSpace(pillar); trimmed != "" {
		fields[fieldContentPillar] = trimmed
	}
	if trimmed := strings.TrimSpace(slug); trimmed != "" {
		fields[fieldContentSlug] = trimmed
	}
	return WithFields(logger, fields)
}

// WithFields attaches structured fields when the logger supports the optional
// FieldsLogger extension. Nil loggers and empty field maps pass through as is.
func WithFields(logger interfaces.Logger, fields map[string]any) interfaces.Logger {
	if logger == nil || len(fields) == 0 {
		return logger
	}
	if fieldsLogger, ok := logger.(interfaces.FieldsLogger); ok {
		return fieldsLogger.WithFields(maps.Clone(fields))
	}
	return logger
}

// NoOp returns a logger that drops every log entry. It satisfies the Logger
// contract so services can safely operate when logging is disabled.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

type noopLogger struct{}

var _ interfaces.Logger = noopLogger{}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithFields(map[string]any) interfaces.Logger {
	return n
}

func (n noopLogger) WithContext(context.Context) interfaces.Logger {
	return n
}
