package accounting

import (
	"errors"
	"fmt"

	"github.com/lautarocloudy/api-cuenta-corrientes/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ErrUnrecognizedSubtype is returned for invoice subtypes outside the closed set.
// Aggregation treats it as an anomaly to log and skip, never as a failure.
var ErrUnrecognizedSubtype = errors.New("unrecognized document subtype")

var (
	plusOne  = decimal.NewFromInt(1)
	minusOne = decimal.NewFromInt(-1)
)

// SubtypeSign maps an invoice subtype to the multiplier applied to its total.
// Credit notes reverse prior billing; every other known subtype adds to it.
func SubtypeSign(subtype domain.DocumentSubtype) (decimal.Decimal, error) {
	switch subtype {
	case domain.SubtypeInvoice, domain.SubtypeDebitNote, domain.SubtypeOpeningBalance:
		return plusOne, nil
	case domain.SubtypeCreditNote:
		return minusOne, nil
	default:
		return decimal.Zero, fmt.Errorf("%w: %q", ErrUnrecognizedSubtype, string(subtype))
	}
}

// SignedInvoiceTotal applies the subtype sign to the invoice total.
func SignedInvoiceTotal(inv domain.Invoice) (decimal.Decimal, error) {
	sign, err := SubtypeSign(inv.Subtype)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invoice %s: %w", inv.InvoiceID, err)
	}
	return inv.Total.Mul(sign), nil
}

// SumChecks adds up the amounts of a receipt's checks. Amounts are taken as
// stored; rejecting negative values is the job of whoever writes them.
func SumChecks(checks []domain.Check) decimal.Decimal {
	sum := decimal.Zero
	for _, c := range checks {
		sum = sum.Add(c.Amount)
	}
	return sum
}

// ReceiptTotal is cash + transfer + other + sum of checks, unrounded.
func ReceiptTotal(r domain.Receipt) decimal.Decimal {
	return r.Cash.Add(r.Transfer).Add(r.Other).Add(SumChecks(r.Checks))
}

// InvoiceTotals derives subtotal, tax and total from line items. Subtotal and
// tax are rounded once here, before persistence, so total = subtotal + tax holds
// exactly on the stored row.
func InvoiceTotals(items []domain.LineItem) (subtotal, tax, total decimal.Decimal) {
	raw := decimal.Zero
	for _, item := range items {
		raw = raw.Add(item.Amount())
	}
	subtotal = Round2(raw)
	tax = Round2(subtotal.Mul(TaxRate))
	total = subtotal.Add(tax)
	return subtotal, tax, total
}
