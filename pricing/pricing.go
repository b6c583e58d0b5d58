// Package pricing turns priced cart lines into order totals. Pure arithmetic,
// no I/O.
package pricing

import "github.com/shopspring/decimal"

var (
	// FreeShippingThreshold is the subtotal above which delivery is free.
	// Strictly greater than: a subtotal exactly at the threshold still pays.
	FreeShippingThreshold = decimal.NewFromInt(25000)

	// FlatShippingFee applies to every order at or under the threshold.
	FlatShippingFee = decimal.NewFromInt(500)
)

// Line is one priced cart row.
type Line struct {
	Price    decimal.Decimal
	OldPrice decimal.NullDecimal
	Quantity int
}

type Summary struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Savings  decimal.Decimal `json:"savings"`
	Shipping decimal.Decimal `json:"shipping"`
	Total    decimal.Decimal `json:"total"`
}

// Quote computes subtotal, promotional savings, shipping and total for a set
// of lines. Savings never go negative; a line whose old price is below its
// current price contributes nothing.
func Quote(lines []Line) Summary {
	subtotal := decimal.Zero
	savings := decimal.Zero

	for _, l := range lines {
		qty := decimal.NewFromInt(int64(l.Quantity))
		subtotal = subtotal.Add(l.Price.Mul(qty))

		if l.OldPrice.Valid {
			diff := l.OldPrice.Decimal.Sub(l.Price)
			if diff.IsPositive() {
				savings = savings.Add(diff.Mul(qty))
			}
		}
	}

	shipping := FlatShippingFee
	if subtotal.GreaterThan(FreeShippingThreshold) {
		shipping = decimal.Zero
	}

	return Summary{
		Subtotal: subtotal,
		Savings:  savings,
		Shipping: shipping,
		Total:    subtotal.Add(shipping),
	}
}
