package utils

import "github.com/shopspring/decimal"

// FormatTaka renders an amount the way the storefront prints prices: the
// taka sign followed by two decimal places.
func FormatTaka(amount decimal.Decimal) string {
	return "৳" + amount.StringFixed(2)
}
