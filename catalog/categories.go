package catalog

import "strings"

// categoryNames maps category slugs to display names. Slugs outside the
// table fall back to the slug with dashes replaced.
var categoryNames = map[string]string{
	"indoor-plants":   "Indoor Plants",
	"outdoor-plants":  "Outdoor Plants",
	"succulents":      "Succulents & Cacti",
	"medicinal":       "Medicinal Herbs",
	"fruit-plants":    "Fruit Plants",
	"seeds":           "Seeds",
	"herbs":           "Herbs",
	"tools":           "Tools & Accessories",
	"pots":            "Pots & Planters",
	"soil-amendments": "Soil & Amendments",
	"plant-care":      "Plant Care",
	"kits":            "Gardening Kits",
	"bundles":         "Bundles",
}

var categoryImages = map[string]string{
	"indoor-plants":   "/images/categories/stylish-indoor-plants-in-modern-pots.webp",
	"outdoor-plants":  "/images/categories/urban-Indian-balcony-with-soft-natural-daylight.webp",
	"succulents":      "/images/categories/curated-cluster-of-succulents-and-small-cacti.webp",
	"medicinal":       "/images/categories/square-image-of-potted-medicinal-herbs.webp",
	"fruit-plants":    "/images/categories/a-small-citrus-plant-with-a-few-visible-fruits.webp",
	"seeds":           "/images/categories/seeds-arranged-in-small-kraft-paper-packets.webp",
	"herbs":           "/images/categories/cluster-of-fresh-potted-kitchen-herbs.webp",
	"tools":           "/images/categories/essential-gardening-tools.webp",
	"pots":            "/images/categories/small-group-of-empty-pots-and-planters.webp",
	"soil-amendments": "/images/categories/rich-dark-potting-mix-on-a-surface.webp",
	"plant-care":      "/images/categories/simple-plant-care-setup.webp",
	"kits":            "/images/categories/a-complete-gardening-kit-laid-out-neatly.webp",
	"bundles":         "/images/categories/small-curated-bundle-of-products.webp",
}

const defaultCategoryImage = "/images/categories/stylish-indoor-plants-in-modern-pots.webp"

// CategoryName resolves the display name for a category slug.
func CategoryName(slug string) string {
	if name, ok := categoryNames[slug]; ok {
		return name
	}
	return strings.ReplaceAll(slug, "-", " ")
}

// CategoryImage resolves the cover image for a category slug.
func CategoryImage(slug string) string {
	if image, ok := categoryImages[slug]; ok {
		return image
	}
	return defaultCategoryImage
}
