// Package money renders rupiah amounts for display. Domain code and
// services carry raw int64 amounts; only the presentation layer
// formats them.
package money

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.Indonesian)

// FormatIDR renders a whole-rupiah amount with Indonesian digit
// grouping, e.g. 350000 -> "Rp 350.000".
func FormatIDR(amount int64) string {
	return printer.Sprintf("Rp %v", number.Decimal(amount))
}
