package cart

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Prices render with Indian digit grouping and whole rupees, so one lakh
// reads "₹1,00,000" rather than "₹100,000".
var inrPrinter = message.NewPrinter(language.MustParse("en-IN"))

// FormatPrice renders an amount as a display price, e.g. "₹1,000".
func FormatPrice(amount float64) string {
	rounded := math.Round(amount)
	return inrPrinter.Sprintf("₹%v", number.Decimal(rounded, number.MaxFractionDigits(0)))
}
