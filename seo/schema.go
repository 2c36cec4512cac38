// Package seo builds schema.org JSON-LD payloads for storefront pages.
// Payloads are plain maps so callers can marshal them straight into a
// script tag.
package seo

import (
	"strings"
	"time"

	"github.com/thegardencompany/storefront/resources"
)

const (
	// SiteName is the publisher name stamped on every schema payload.
	SiteName = "The Garden Company"

	defaultSiteURL = "https://thegardencompany.in"
	defaultOGPath  = "/og-default.jpg"
	logoPath       = "/apple-icon.png"
)

// Schema is a JSON-LD payload ready for marshaling.
type Schema = map[string]any

// Generator builds schema payloads anchored to the site's canonical URL.
type Generator struct {
	siteURL string
}

// Option configures the generator.
type Option func(*Generator)

// WithSiteURL overrides the canonical site URL. Trailing slashes are trimmed.
func WithSiteURL(url string) Option {
	return func(g *Generator) {
		if url = strings.TrimRight(strings.TrimSpace(url), "/"); url != "" {
			g.siteURL = url
		}
	}
}

// NewGenerator creates a schema generator for the production site URL unless
// overridden.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{siteURL: defaultSiteURL}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// SiteURL returns the canonical site URL the generator stamps on payloads.
func (g *Generator) SiteURL() string {
	return g.siteURL
}

// Organization emits the site-wide Organization payload.
func (g *Generator) Organization() Schema {
	return Schema{
		"@context": "https://schema.org",
		"@type":    "Organization",
		"name":     SiteName,
		"url":      g.siteURL,
		"logo": Schema{
			"@type":  "ImageObject",
			"url":    g.siteURL + logoPath,
			"width":  512,
			"height": 512,
		},
		"sameAs": []string{},
	}
}

// WebSite emits the site-wide WebSite payload with the search action wired to
// the resources hub.
func (g *Generator) WebSite() Schema {
	return Schema{
		"@context": "https://schema.org",
		"@type":    "WebSite",
		"name":     SiteName,
		"url":      g.siteURL,
		"potentialAction": Schema{
			"@type": "SearchAction",
			"target": Schema{
				"@type":       "EntryPoint",
				"urlTemplate": g.siteURL + "/resources?q={search_term_string}",
			},
			"query-input": "required name=search_term_string",
		},
	}
}

// Crumb is one level of a breadcrumb trail.
type Crumb struct {
	Name string
	URL  string
}

// Breadcrumb emits a BreadcrumbList for the given trail, positions starting
// at 1.
func (g *Generator) Breadcrumb(crumbs []Crumb) Schema {
	elements := make([]Schema, 0, len(crumbs))
	for i, crumb := range crumbs {
		elements = append(elements, Schema{
			"@type":    "ListItem",
			"position": i + 1,
			"name":     crumb.Name,
			"item":     crumb.URL,
		})
	}
	return Schema{
		"@context":        "https://schema.org",
		"@type":           "BreadcrumbList",
		"itemListElement": elements,
	}
}

// CollectionPageInput describes a pillar or subtopic listing page.
type CollectionPageInput struct {
	Title       string
	Description string
	URL         string
	Image       string
}

// CollectionPage emits a CollectionPage payload for pillar and subtopic hubs.
func (g *Generator) CollectionPage(in CollectionPageInput) Schema {
	return Schema{
		"@context":    "https://schema.org",
		"@type":       "CollectionPage",
		"name":        in.Title,
		"description": in.Description,
		"url":         in.URL,
		"image":       g.imageURL(in.Image),
		"publisher": Schema{
			"@type": "Organization",
			"name":  SiteName,
			"url":   g.siteURL,
		},
	}
}

// ArticleInput describes an article page.
type ArticleInput struct {
	Title       string
	Description string
	URL         string
	Image       string
	PublishedAt time.Time
	UpdatedAt   time.Time
	Author      string
}

// Article emits a BlogPosting payload. When the article was never updated,
// dateModified repeats the publish date.
func (g *Generator) Article(in ArticleInput) Schema {
	modified := in.UpdatedAt
	if modified.IsZero() {
		modified = in.PublishedAt
	}
	return Schema{
		"@context":      "https://schema.org",
		"@type":         "BlogPosting",
		"headline":      in.Title,
		"description":   in.Description,
		"url":           in.URL,
		"image":         g.imageURL(in.Image),
		"datePublished": formatDate(in.PublishedAt),
		"dateModified":  formatDate(modified),
		"author": Schema{
			"@type": "Person",
			"name":  in.Author,
		},
		"publisher": Schema{
			"@type": "Organization",
			"name":  SiteName,
			"logo": Schema{
				"@type": "ImageObject",
				"url":   g.siteURL + logoPath,
			},
		},
		"mainEntityOfPage": Schema{
			"@type": "WebPage",
			"@id":   in.URL,
		},
	}
}

// FAQPage emits an FAQPage payload, or nil when there are no FAQs so callers
// can skip the script tag entirely.
func (g *Generator) FAQPage(faqs []resources.FAQ) Schema {
	if len(faqs) == 0 {
		return nil
	}
	entities := make([]Schema, 0, len(faqs))
	for _, faq := range faqs {
		entities = append(entities, Schema{
			"@type": "Question",
			"name":  faq.Question,
			"acceptedAnswer": Schema{
				"@type": "Answer",
				"text":  faq.Answer,
			},
		})
	}
	return Schema{
		"@context":   "https://schema.org",
		"@type":      "FAQPage",
		"mainEntity": entities,
	}
}

func (g *Generator) imageURL(image string) string {
	if image == "" {
		return g.siteURL + defaultOGPath
	}
	if strings.HasPrefix(image, "http://") || strings.HasPrefix(image, "https://") {
		return image
	}
	return g.siteURL + image
}

func formatDate(t time.Time) string {
	return t.Format("2006-01-02")
}
