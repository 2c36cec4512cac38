package cart

import "github.com/thegardencompany/storefront/catalog"

// Item is a cart line: a product and how many of it the shopper wants.
type Item struct {
	Product  *catalog.Product `json:"product"`
	Quantity int              `json:"quantity"`
}

// LineTotal returns the price contribution of this line.
func (i Item) LineTotal() float64 {
	if i.Product == nil {
		return 0
	}
	return i.Product.Price * float64(i.Quantity)
}

// Summary carries the lines and totals for a checkout preview. Amounts are
// rupees.
type Summary struct {
	Items     []Item  `json:"items"`
	Subtotal  float64 `json:"subtotal"`
	Shipping  float64 `json:"shipping"`
	Total     float64 `json:"total"`
	ItemCount int     `json:"item_count"`
}
