package cart

import (
	"sync"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/thegardencompany/storefront/catalog"
	"github.com/thegardencompany/storefront/internal/logging"
	"github.com/thegardencompany/storefront/pkg/interfaces"
)

// Cart holds a shopper's session state. Safe for concurrent use.
type Cart struct {
	mu         sync.Mutex
	items      []Item
	calculator *Calculator
	logger     interfaces.Logger
}

// Option configures a cart at construction time.
type Option func(*Cart)

// WithCalculator overrides the default shipping policy.
func WithCalculator(calc *Calculator) Option {
	return func(c *Cart) {
		if calc != nil {
			c.calculator = calc
		}
	}
}

// WithLogger overrides the no-op default logger.
func WithLogger(logger interfaces.Logger) Option {
	return func(c *Cart) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New creates an empty cart with the standard shipping policy.
func New(opts ...Option) *Cart {
	calc, _ := NewCalculator(DefaultCalculatorConfig())
	c := &Cart{
		calculator: calc,
		logger:     logging.NoOp(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Add puts quantity units of product in the cart. Adding a product already in
// the cart merges into the existing line.
func (c *Cart) Add(product *catalog.Product, quantity int) error {
	if err := validateAdd(product, quantity); err != nil {
		handle := ""
		if product != nil {
			handle = product.URLHandle
		}
		c.logger.Warn("rejected cart add", "handle", handle, "quantity", quantity, "error", err)
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].Product.ID == product.ID {
			c.items[i].Quantity += quantity
			return nil
		}
	}
	c.items = append(c.items, Item{Product: product, Quantity: quantity})
	return nil
}

// Remove drops a product's line entirely. Removing an absent product is a
// no-op.
func (c *Cart) Remove(productID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.removeLocked(productID)
}

// SetQuantity replaces a line's quantity. A quantity of zero or less removes
// the line.
func (c *Cart) SetQuantity(productID string, quantity int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if quantity <= 0 {
		c.removeLocked(productID)
		return nil
	}

	for i := range c.items {
		if c.items[i].Product.ID.String() == productID {
			c.items[i].Quantity = quantity
			return nil
		}
	}
	return ErrItemNotFound
}

// Items returns a copy of the cart lines.
func (c *Cart) Items() []Item {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := make([]Item, len(c.items))
	copy(items, c.items)
	return items
}

// Len returns the number of distinct lines.
func (c *Cart) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
}

// Summary computes the checkout preview for the current contents.
func (c *Cart) Summary() Summary {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calculator.Summarize(c.items)
}

func (c *Cart) removeLocked(productID string) {
	for i := range c.items {
		if c.items[i].Product.ID.String() == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

func validateAdd(product *catalog.Product, quantity int) error {
	errs := validation.Errors{}
	if product == nil {
		errs["product"] = validation.NewError("storefront.cart.product_required", "product is required")
		return errs.Filter()
	}
	if product.Status != catalog.StatusActive {
		errs["product"] = validation.NewError("storefront.cart.product_inactive", "product is not available for purchase")
	}
	if quantity < 1 {
		errs["quantity"] = validation.NewError("storefront.cart.quantity_invalid", "quantity must be at least 1")
	}
	return errs.Filter()
}
