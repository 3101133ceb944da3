package format

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var inr = message.NewPrinter(language.MustParse("en-IN"))

// Currency renders rupee amounts the way the booking site shows them:
// Indian digit grouping, no paise. Garbage amounts render as zero.
func Currency(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		amount = 0
	}
	return inr.Sprintf("₹%v", number.Decimal(math.Round(amount), number.MaxFractionDigits(0)))
}
