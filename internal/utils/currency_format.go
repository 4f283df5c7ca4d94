package utils

import "github.com/shopspring/decimal"

// displayPrecision is the number of decimal places shown to users. Conversion
// and totals stay unrounded; rounding only happens when formatting for display.
const displayPrecision = 2

// FormatForDisplay formats an amount with the display precision.
// Example: 12.3456 returns "12.35".
func FormatForDisplay(amount decimal.Decimal) string {
	return amount.Round(displayPrecision).StringFixed(displayPrecision)
}
