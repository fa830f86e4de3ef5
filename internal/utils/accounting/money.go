package accounting

import "github.com/shopspring/decimal"

// TaxRate is the fixed IVA rate applied to every invoice subtotal.
var TaxRate = decimal.RequireFromString("0.21")

// Round2 rounds to two decimal places, half away from zero. Only call it on a
// value that is about to leave the system, never on intermediate sums.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
