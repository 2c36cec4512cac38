package links

import (
	"fmt"

	urlkit "github.com/goliatone/go-urlkit"
)

const siteGroup = "site"

// Route names registered with the site group.
const (
	routeResources = "resources"
	routePillar    = "pillar"
	routeSubtopic  = "subtopic"
	routeArticle   = "article"
	routeShop      = "shop"
	routeProduct   = "product"
)

// Builder resolves navigable paths for content and shop entries through a
// go-urlkit route manager. An empty base URL yields site-relative hrefs.
type Builder struct {
	manager *urlkit.RouteManager
}

// NewBuilder constructs a Builder rooted at baseURL.
func NewBuilder(baseURL string) *Builder {
	manager := urlkit.NewRouteManager(&urlkit.Config{
		Groups: []urlkit.GroupConfig{
			{
				Name:    siteGroup,
				BaseURL: baseURL,
				Paths: map[string]string{
					routeResources: "/resources",
					routePillar:    "/resources/:pillar",
					routeSubtopic:  "/resources/:pillar/:subtopic",
					routeArticle:   "/resources/:pillar/:subtopic/:article",
					routeShop:      "/shop",
					routeProduct:   "/shop/:slug",
				},
			},
		},
	})
	return &Builder{manager: manager}
}

// Resources returns the resource hub path.
func (b *Builder) Resources() (string, error) {
	return b.build(routeResources, nil)
}

// Pillar returns the path for a pillar landing page.
func (b *Builder) Pillar(pillar string) (string, error) {
	return b.build(routePillar, map[string]any{"pillar": pillar})
}

// Subtopic returns the path for a subtopic listing page.
func (b *Builder) Subtopic(pillar, subtopic string) (string, error) {
	return b.build(routeSubtopic, map[string]any{"pillar": pillar, "subtopic": subtopic})
}

// Article returns the path for an article page.
func (b *Builder) Article(pillar, subtopic, article string) (string, error) {
	return b.build(routeArticle, map[string]any{
		"pillar":   pillar,
		"subtopic": subtopic,
		"article":  article,
	})
}

// Shop returns the shop landing path.
func (b *Builder) Shop() (string, error) {
	return b.build(routeShop, nil)
}

// Product returns the path for a product detail page.
func (b *Builder) Product(handle string) (string, error) {
	return b.build(routeProduct, map[string]any{"slug": handle})
}

func (b *Builder) build(route string, params map[string]any) (path string, err error) {
	if b == nil || b.manager == nil {
		return "", fmt.Errorf("links: route manager not configured")
	}
	// urlkit panics on unknown groups and routes; surface those as errors so
	// callers degrade instead of crashing.
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("links: resolve route %q: %v", route, rec)
		}
	}()

	builder := b.manager.Group(siteGroup).Builder(route)
	for key, val := range params {
		builder.WithParam(key, val)
	}
	return builder.Build()
}
