package cart

import "testing"

func TestFormatPriceIndianGrouping(t *testing.T) {
	cases := []struct {
		amount float64
		want   string
	}{
		{0, "₹0"},
		{99, "₹99"},
		{999, "₹999"},
		{1000, "₹1,000"},
		{45999, "₹45,999"},
		{100000, "₹1,00,000"},
		{1234567, "₹12,34,567"},
	}
	for _, tc := range cases {
		if got := FormatPrice(tc.amount); got != tc.want {
			t.Fatalf("amount %v: expected %q, got %q", tc.amount, tc.want, got)
		}
	}
}

func TestFormatPriceRoundsFractions(t *testing.T) {
	if got := FormatPrice(499.50); got != "₹500" {
		t.Fatalf("expected rounding to whole rupees, got %q", got)
	}
	if got := FormatPrice(499.49); got != "₹499" {
		t.Fatalf("expected rounding down, got %q", got)
	}
}
