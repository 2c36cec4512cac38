package cart

// Shipping policy: orders above the free-shipping threshold ship free,
// everything else pays the flat fee. An empty cart still quotes the fee.
const (
	DefaultFreeShippingThreshold = 999
	DefaultShippingFee           = 99
)

// CalculatorConfig tunes the totals calculation.
type CalculatorConfig struct {
	FreeShippingThreshold float64
	ShippingFee           float64
}

// DefaultCalculatorConfig returns the storefront's standard shipping policy.
func DefaultCalculatorConfig() CalculatorConfig {
	return CalculatorConfig{
		FreeShippingThreshold: DefaultFreeShippingThreshold,
		ShippingFee:           DefaultShippingFee,
	}
}

// Validate checks the config for nonsensical values.
func (c CalculatorConfig) Validate() error {
	if c.FreeShippingThreshold < 0 {
		return ErrInvalidThreshold
	}
	if c.ShippingFee < 0 {
		return ErrInvalidFee
	}
	return nil
}

// Calculator computes order totals from cart lines.
type Calculator struct {
	config CalculatorConfig
}

// NewCalculator builds a calculator, falling back to defaults when cfg is
// zero-valued in both fields.
func NewCalculator(cfg CalculatorConfig) (*Calculator, error) {
	if cfg == (CalculatorConfig{}) {
		cfg = DefaultCalculatorConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Calculator{config: cfg}, nil
}

// Subtotal sums line totals across items. Lines with nil products contribute
// nothing.
func (c *Calculator) Subtotal(items []Item) float64 {
	var subtotal float64
	for _, item := range items {
		subtotal += item.LineTotal()
	}
	return subtotal
}

// Shipping returns the shipping charge for a given subtotal. The threshold is
// exclusive: a subtotal exactly at the threshold still pays the fee.
func (c *Calculator) Shipping(subtotal float64) float64 {
	if subtotal > c.config.FreeShippingThreshold {
		return 0
	}
	return c.config.ShippingFee
}

// Summarize produces the full checkout preview for a set of items. The
// returned summary holds its own copy of the lines.
func (c *Calculator) Summarize(items []Item) Summary {
	subtotal := c.Subtotal(items)
	shipping := c.Shipping(subtotal)

	count := 0
	for _, item := range items {
		if item.Quantity > 0 {
			count += item.Quantity
		}
	}

	lines := make([]Item, len(items))
	copy(lines, items)

	return Summary{
		Items:     lines,
		Subtotal:  subtotal,
		Shipping:  shipping,
		Total:     subtotal + shipping,
		ItemCount: count,
	}
}
