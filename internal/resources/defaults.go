package resources

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/thegardencompany/storefront/internal/mdx"
	"github.com/thegardencompany/storefront/resources"
)

// DefaultAuthor is attributed to articles that do not declare one.
const DefaultAuthor = "The Garden Company"

// DefaultDifficulty is applied to articles that do not declare one.
const DefaultDifficulty = "Beginner"

// maxDefaultTopics caps how many subtopic names seed a pillar's topic labels.
const maxDefaultTopics = 5

// pillarImages maps known pillar slugs to their cover images. Slugs outside
// the table fall back to defaultPillarImage.
var pillarImages = map[string]string{
	"gardening-basics":               "https://images.unsplash.com/photo-1416879595882-3373a0480b5b?w=800&q=80",
	"plants":                         "https://images.unsplash.com/photo-1459411552884-841db9b3cc2a?w=800&q=80",
	"seeds":                          "https://images.unsplash.com/photo-1523348837708-15d4a09cfac2?w=800&q=80",
	"flowers-and-foliage":            "https://images.unsplash.com/photo-1490750967868-88aa4486c946?w=800&q=80",
	"fruits-and-vegetables":          "https://images.unsplash.com/photo-1592921870789-04563d55041c?w=800&q=80",
	"plant-problems":                 "https://images.unsplash.com/photo-1591857177580-dc82b9ac4e1e?w=800&q=80",
	"controlled-environment-farming": "https://images.unsplash.com/photo-1530836369250-ef72a3f5cda8?w=800&q=80",
}

const defaultPillarImage = "https://images.unsplash.com/photo-1416879595882-3373a0480b5b?w=800&q=80"

var titleCaser = cases.Title(language.English)

// TitleFromSlug derives a display title from a kebab-case slug.
func TitleFromSlug(slug string) string {
	return titleCaser.String(strings.ReplaceAll(slug, "-", " "))
}

// DescriptionFromSlug synthesizes a listing description for entries that do
// not declare one.
func DescriptionFromSlug(slug string) string {
	return fmt.Sprintf("Guides and resources on %s.", strings.ToLower(TitleFromSlug(slug)))
}

// PillarImage resolves the cover image for a pillar slug.
func PillarImage(slug, declared string) string {
	if declared != "" {
		return declared
	}
	if image, ok := pillarImages[slug]; ok {
		return image
	}
	return defaultPillarImage
}

func defaultTopics(subtopicSlugs []string) []string {
	limit := len(subtopicSlugs)
	if limit > maxDefaultTopics {
		limit = maxDefaultTopics
	}
	topics := make([]string, 0, limit)
	for _, slug := range subtopicSlugs[:limit] {
		topics = append(topics, TitleFromSlug(slug))
	}
	return topics
}

func convertFAQs(faqs []mdx.FAQ) []resources.FAQ {
	if len(faqs) == 0 {
		return nil
	}
	out := make([]resources.FAQ, 0, len(faqs))
	for _, faq := range faqs {
		out = append(out, resources.FAQ{Question: faq.Question, Answer: faq.Answer})
	}
	return out
}
