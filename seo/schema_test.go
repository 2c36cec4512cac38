package seo

import (
	"testing"
	"time"

	"github.com/thegardencompany/storefront/resources"
)

func TestOrganizationSchema(t *testing.T) {
	g := NewGenerator()

	schema := g.Organization()
	if schema["@type"] != "Organization" {
		t.Fatalf("unexpected type: %v", schema["@type"])
	}
	if schema["name"] != SiteName {
		t.Fatalf("unexpected name: %v", schema["name"])
	}
	logo, ok := schema["logo"].(Schema)
	if !ok {
		t.Fatalf("logo missing: %v", schema["logo"])
	}
	if logo["url"] != "https://thegardencompany.in/apple-icon.png" {
		t.Fatalf("unexpected logo url: %v", logo["url"])
	}
}

func TestWebSiteSchemaSearchAction(t *testing.T) {
	g := NewGenerator(WithSiteURL("https://staging.example.com/"))

	schema := g.WebSite()
	action, ok := schema["potentialAction"].(Schema)
	if !ok {
		t.Fatalf("potentialAction missing: %v", schema)
	}
	target := action["target"].(Schema)
	if target["urlTemplate"] != "https://staging.example.com/resources?q={search_term_string}" {
		t.Fatalf("unexpected url template: %v", target["urlTemplate"])
	}
}

func TestBreadcrumbPositions(t *testing.T) {
	g := NewGenerator()

	schema := g.Breadcrumb([]Crumb{
		{Name: "Resources", URL: "https://thegardencompany.in/resources"},
		{Name: "Plants", URL: "https://thegardencompany.in/resources/plants"},
	})
	elements := schema["itemListElement"].([]Schema)
	if len(elements) != 2 {
		t.Fatalf("expected 2 elements, got %d", len(elements))
	}
	if elements[0]["position"] != 1 || elements[1]["position"] != 2 {
		t.Fatalf("positions not one-based: %v", elements)
	}
}

func TestCollectionPageDefaultsImage(t *testing.T) {
	g := NewGenerator()

	schema := g.CollectionPage(CollectionPageInput{
		Title: "Plants",
		URL:   "https://thegardencompany.in/resources/plants",
	})
	if schema["image"] != "https://thegardencompany.in/og-default.jpg" {
		t.Fatalf("unexpected default image: %v", schema["image"])
	}

	withImage := g.CollectionPage(CollectionPageInput{
		Title: "Plants",
		Image: "/images/plants.webp",
	})
	if withImage["image"] != "https://thegardencompany.in/images/plants.webp" {
		t.Fatalf("relative image not prefixed: %v", withImage["image"])
	}

	absolute := g.CollectionPage(CollectionPageInput{
		Title: "Plants",
		Image: "https://cdn.example.com/plants.webp",
	})
	if absolute["image"] != "https://cdn.example.com/plants.webp" {
		t.Fatalf("absolute image mangled: %v", absolute["image"])
	}
}

func TestArticleSchemaDates(t *testing.T) {
	g := NewGenerator()

	published := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	schema := g.Article(ArticleInput{
		Title:       "Repotting Basics",
		URL:         "https://thegardencompany.in/resources/plants/indoor/repotting",
		PublishedAt: published,
		Author:      "Priya",
	})
	if schema["@type"] != "BlogPosting" {
		t.Fatalf("unexpected type: %v", schema["@type"])
	}
	if schema["datePublished"] != "2025-03-01" {
		t.Fatalf("unexpected datePublished: %v", schema["datePublished"])
	}
	if schema["dateModified"] != "2025-03-01" {
		t.Fatalf("dateModified should fall back to publish date: %v", schema["dateModified"])
	}

	updated := published.AddDate(0, 1, 0)
	schema = g.Article(ArticleInput{PublishedAt: published, UpdatedAt: updated})
	if schema["dateModified"] != "2025-04-01" {
		t.Fatalf("unexpected dateModified: %v", schema["dateModified"])
	}
}

func TestFAQPageOmittedWhenEmpty(t *testing.T) {
	g := NewGenerator()

	if schema := g.FAQPage(nil); schema != nil {
		t.Fatalf("expected nil schema for empty faqs, got %v", schema)
	}

	schema := g.FAQPage([]resources.FAQ{
		{Question: "How often should I water?", Answer: "Weekly."},
	})
	entities := schema["mainEntity"].([]Schema)
	if len(entities) != 1 {
		t.Fatalf("expected 1 entity, got %d", len(entities))
	}
	if entities[0]["name"] != "How often should I water?" {
		t.Fatalf("unexpected question: %v", entities[0]["name"])
	}
	answer := entities[0]["acceptedAnswer"].(Schema)
	if answer["text"] != "Weekly." {
		t.Fatalf("unexpected answer: %v", answer["text"])
	}
}
