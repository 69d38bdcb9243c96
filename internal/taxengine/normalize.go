package taxengine

import (
	"strings"

	"github.com/shopspring/decimal"
)

// RawItem is one document row as delivered by the upstream API or a screen.
type RawItem struct {
	ItemName   string `json:"itemName"`
	HSNCode    string `json:"hsnCode,omitempty"`
	Quantity   Amount `json:"quantity"`
	Price      Amount `json:"price"`
	Discount   Amount `json:"discount"`
	TaxPercent Amount `json:"taxPercent"`
	TaxAmount  Amount `json:"taxAmount"`
	Total      Amount `json:"total"`
	IsIGST     Flag   `json:"isIGST"`
}

// NormalizedLineItem is a retained row with every numeric field coerced and
// the per-line values derived.
type NormalizedLineItem struct {
	ItemName        string          `json:"item_name"`
	HSNCode         string          `json:"hsn_code"`
	Quantity        decimal.Decimal `json:"quantity"`
	Price           decimal.Decimal `json:"price"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
	TaxPercent      decimal.Decimal `json:"tax_percent"`
	IsIGST          bool            `json:"is_igst"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	DiscountAmount  decimal.Decimal `json:"discount_amount"`
	TaxableAmount   decimal.Decimal `json:"taxable_amount"`
	TaxAmount       decimal.Decimal `json:"tax_amount"`
	Total           decimal.Decimal `json:"total"`
}

// AfterDiscount is quantity × price less the discount amount.
func (it NormalizedLineItem) AfterDiscount() decimal.Decimal {
	return it.Quantity.Mul(it.Price).Sub(it.DiscountAmount)
}

// Normalize drops rows with a blank item name and derives the line values of
// the rest. Malformed numbers degrade to zero rather than failing.
func Normalize(raw []RawItem) []NormalizedLineItem {
	items := make([]NormalizedLineItem, 0, len(raw))
	for i := range raw {
		r := &raw[i]
		name := strings.TrimSpace(r.ItemName)
		if name == "" {
			continue
		}

		qty := nonNegative(r.Quantity.Decimal())
		price := nonNegative(r.Price.Decimal())
		discount := clampPercent(r.Discount.Decimal())
		taxPercent := nonNegative(r.TaxPercent.Decimal())

		subtotal := qty.Mul(price)
		discountAmount := subtotal.Mul(discount).Div(hundred)
		taxable := subtotal.Sub(discountAmount)

		taxAmount := taxable.Mul(taxPercent).Div(hundred)
		if r.TaxAmount.Valid {
			taxAmount = nonNegative(r.TaxAmount.Value)
		}
		total := taxable.Add(taxAmount)
		if r.Total.Valid {
			total = nonNegative(r.Total.Value)
		}

		items = append(items, NormalizedLineItem{
			ItemName:        name,
			HSNCode:         strings.TrimSpace(r.HSNCode),
			Quantity:        qty,
			Price:           price,
			DiscountPercent: discount,
			TaxPercent:      taxPercent,
			IsIGST:          bool(r.IsIGST),
			Subtotal:        subtotal,
			DiscountAmount:  discountAmount,
			TaxableAmount:   taxable,
			TaxAmount:       taxAmount,
			Total:           total,
		})
	}
	return items
}

func nonNegative(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

func clampPercent(d decimal.Decimal) decimal.Decimal {
	d = nonNegative(d)
	if d.GreaterThan(hundred) {
		return hundred
	}
	return d
}
