package types

import "github.com/shopspring/decimal"

// Quote is the computed shipping price for one package, in currency units.
// The amount is kept exact as produced by the cost model; rounding to two
// decimal places happens only at presentation time via Rounded or Display.
type Quote struct {
	Amount decimal.Decimal `json:"amount"`
}

// NewQuote wraps an exact amount in a Quote.
func NewQuote(amount decimal.Decimal) Quote {
	return Quote{Amount: amount}
}

// Rounded returns the amount rounded half away from zero to two decimal
// places.
func (q Quote) Rounded() decimal.Decimal {
	return q.Amount.Round(2)
}

// Display formats the rounded amount with the given currency symbol,
// e.g. "$2.40".
func (q Quote) Display(currency string) string {
	return currency + q.Rounded().StringFixed(2)
}
