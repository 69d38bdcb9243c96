// Package paymentlink settles a received payment against a party's open invoices.
package paymentlink

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"billdesk/internal/domain"
)

// OpenInvoice is an invoice with an outstanding balance.
type OpenInvoice struct {
	ID      string          `json:"id"`
	Number  string          `json:"number"`
	Date    time.Time       `json:"date"`
	Balance decimal.Decimal `json:"balance"`
}

// Allocation assigns part of a payment to one invoice.
type Allocation struct {
	InvoiceID string          `json:"invoice_id"`
	Amount    decimal.Decimal `json:"amount"`
}

// Link is one settled invoice in the result.
type Link struct {
	InvoiceID     string          `json:"invoice_id"`
	Number        string          `json:"number"`
	Date          time.Time       `json:"date"`
	BalanceBefore decimal.Decimal `json:"balance_before"`
	Allocated     decimal.Decimal `json:"allocated"`
	BalanceAfter  decimal.Decimal `json:"balance_after"`
}

// Result summarizes how a payment was spread.
type Result struct {
	Links       []Link          `json:"links"`
	TotalLinked decimal.Decimal `json:"total_linked"`
	Unused      decimal.Decimal `json:"unused"`
}

// AutoLink allocates amount to invoices oldest first. Invoices without a date
// go after dated ones; ties keep input order. Invoices with nothing left to
// pay are skipped.
func AutoLink(amount decimal.Decimal, invoices []OpenInvoice) (*Result, error) {
	if amount.IsNegative() {
		return nil, fmt.Errorf("payment amount %s: %w", amount.String(), domain.ErrInvalidAllocation)
	}

	ordered := make([]OpenInvoice, len(invoices))
	copy(ordered, invoices)
	sort.SliceStable(ordered, func(a, b int) bool {
		da, db := ordered[a].Date, ordered[b].Date
		if da.IsZero() != db.IsZero() {
			return !da.IsZero()
		}
		return da.Before(db)
	})

	res := &Result{Links: []Link{}}
	remaining := amount
	for i := range ordered {
		inv := &ordered[i]
		if !remaining.IsPositive() {
			break
		}
		if !inv.Balance.IsPositive() {
			continue
		}
		alloc := decimal.Min(remaining, inv.Balance)
		res.Links = append(res.Links, newLink(inv, alloc))
		res.TotalLinked = res.TotalLinked.Add(alloc)
		remaining = remaining.Sub(alloc)
	}
	res.Unused = remaining
	return res, nil
}

// Apply validates manual allocations of amount against invoices and returns
// the settled links in allocation order.
func Apply(amount decimal.Decimal, invoices []OpenInvoice, allocations []Allocation) (*Result, error) {
	if amount.IsNegative() {
		return nil, fmt.Errorf("payment amount %s: %w", amount.String(), domain.ErrInvalidAllocation)
	}

	byID := make(map[string]*OpenInvoice, len(invoices))
	for i := range invoices {
		byID[invoices[i].ID] = &invoices[i]
	}

	res := &Result{Links: make([]Link, 0, len(allocations))}
	seen := make(map[string]bool, len(allocations))
	for _, a := range allocations {
		inv, ok := byID[a.InvoiceID]
		if !ok {
			return nil, fmt.Errorf("invoice %q is not open for this party: %w", a.InvoiceID, domain.ErrInvalidAllocation)
		}
		if seen[a.InvoiceID] {
			return nil, fmt.Errorf("invoice %s allocated twice: %w", inv.Number, domain.ErrInvalidAllocation)
		}
		seen[a.InvoiceID] = true

		if a.Amount.IsNegative() {
			return nil, fmt.Errorf("allocation to invoice %s is negative: %w", inv.Number, domain.ErrInvalidAllocation)
		}
		if a.Amount.GreaterThan(inv.Balance) {
			return nil, fmt.Errorf("invoice %s balance %s: %w", inv.Number, inv.Balance.StringFixed(2), domain.ErrAllocationExceedsBalance)
		}
		res.Links = append(res.Links, newLink(inv, a.Amount))
		res.TotalLinked = res.TotalLinked.Add(a.Amount)
	}

	if res.TotalLinked.GreaterThan(amount) {
		return nil, fmt.Errorf("allocated %s of %s: %w", res.TotalLinked.StringFixed(2), amount.StringFixed(2), domain.ErrAllocationExceedsPayment)
	}
	res.Unused = amount.Sub(res.TotalLinked)
	return res, nil
}

func newLink(inv *OpenInvoice, alloc decimal.Decimal) Link {
	return Link{
		InvoiceID:     inv.ID,
		Number:        inv.Number,
		Date:          inv.Date,
		BalanceBefore: inv.Balance,
		Allocated:     alloc,
		BalanceAfter:  inv.Balance.Sub(alloc),
	}
}
