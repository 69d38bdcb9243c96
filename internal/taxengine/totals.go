package taxengine

import (
	"github.com/shopspring/decimal"
)

// TotalsOptions carries document-type specific inputs to ComputeTotals.
type TotalsOptions struct {
	// TrackBalance enables received/balance computation (sales invoices).
	TrackBalance   bool
	ReceivedAmount decimal.Decimal
}

// DocumentTotals are the top-level figures every preview renders.
type DocumentTotals struct {
	SubTotal        decimal.Decimal     `json:"sub_total"`
	RoundedTotal    decimal.Decimal     `json:"rounded_total"`
	RoundOff        decimal.Decimal     `json:"round_off"`
	RoundOffDisplay string              `json:"round_off_display"`
	AmountInWords   string              `json:"amount_in_words"`
	TotalSaved      decimal.Decimal     `json:"total_saved"`
	ReceivedAmount  decimal.NullDecimal `json:"received_amount"`
	BalanceDue      decimal.NullDecimal `json:"balance_due"`
}

// ComputeTotals sums the normalized items and derives round-off, words and,
// when requested, the balance still due.
func ComputeTotals(items []NormalizedLineItem, opts TotalsOptions) DocumentTotals {
	var t DocumentTotals
	for i := range items {
		t.SubTotal = t.SubTotal.Add(items[i].Total)
		t.TotalSaved = t.TotalSaved.Add(items[i].DiscountAmount)
	}

	t.RoundedTotal = RoundHalfUp(t.SubTotal)
	t.RoundOff = t.SubTotal.Sub(t.RoundedTotal)
	t.RoundOffDisplay = "- " + t.RoundOff.Abs().StringFixed(2)
	t.AmountInWords = AmountInWords(t.RoundedTotal)

	if opts.TrackBalance {
		received := nonNegative(opts.ReceivedAmount)
		balance := t.RoundedTotal.Sub(received)
		if balance.IsNegative() {
			balance = decimal.Zero
		}
		t.ReceivedAmount = decimal.NewNullDecimal(received)
		t.BalanceDue = decimal.NewNullDecimal(balance)
	}
	return t
}

// RoundHalfUp rounds to whole rupees, halves going up.
func RoundHalfUp(d decimal.Decimal) decimal.Decimal {
	return d.Add(decimal.NewFromFloat(0.5)).Floor()
}
