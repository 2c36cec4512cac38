package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Product statuses recognized by the storefront. Only active products are
// ever surfaced to shoppers.
const (
	StatusDraft      = "draft"
	StatusActive     = "active"
	StatusArchived   = "archived"
	StatusOutOfStock = "out_of_stock"
)

// Product is a sellable catalog record.
type Product struct {
	bun.BaseModel `bun:"table:products,alias:p"`

	ID               uuid.UUID  `bun:",pk,type:uuid"                json:"id"`
	URLHandle        string     `bun:"url_handle,notnull"           json:"url_handle"`
	Name             string     `bun:"name,notnull"                 json:"name"`
	Category         string     `bun:"category,notnull"             json:"category"`
	Price            float64    `bun:"price,notnull"                json:"price"`
	OriginalPrice    *float64   `bun:"original_price"               json:"original_price,omitempty"`
	Description      string     `bun:"description"                  json:"description"`
	ShortDescription string     `bun:"short_description"            json:"short_description"`
	ImageURL         *string    `bun:"image_url"                    json:"image_url,omitempty"`
	Images           []string   `bun:"images,type:jsonb"            json:"images,omitempty"`
	Light            string     `bun:"light"                        json:"light"`
	Water            string     `bun:"water"                        json:"water"`
	Difficulty       string     `bun:"difficulty"                   json:"difficulty"`
	Featured         bool       `bun:"featured,notnull,default:false"    json:"featured"`
	BestSeller       bool       `bun:"best_seller,notnull,default:false" json:"best_seller"`
	Includes         []string   `bun:"includes,type:jsonb"          json:"includes,omitempty"`
	CareInstructions *string    `bun:"care_instructions"            json:"care_instructions,omitempty"`
	Status           string     `bun:"status,notnull,default:'draft'" json:"status"`
	SKU              string     `bun:"sku,notnull"                  json:"sku"`
	StockQuantity    int        `bun:"stock_quantity,notnull,default:0" json:"stock_quantity"`
	SEOTitle         *string    `bun:"seo_title"                    json:"seo_title,omitempty"`
	SEODescription   *string    `bun:"seo_description"              json:"seo_description,omitempty"`
	CreatedAt        time.Time  `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt        time.Time  `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
	DeletedAt        *time.Time `bun:"deleted_at,nullzero"          json:"deleted_at,omitempty"`
}

// Category is a derived roll-up of the active products in a category slug.
// It is never stored; counts come from the product table.
type Category struct {
	Slug         string `json:"slug"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Image        string `json:"image"`
	ProductCount int    `json:"productCount"`
}
