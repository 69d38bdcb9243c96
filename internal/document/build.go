package document

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"billdesk/internal/domain"
	"billdesk/internal/paymentlink"
	"billdesk/internal/taxengine"
	"billdesk/internal/validator"
)

var defaultEngine = validator.NewEngine(validator.DefaultRegistry())

// Build turns a raw document into its preview. Item documents go through
// normalize, aggregate and totals; payment-in builds a receipt. Failed
// consistency checks are reported as warnings and never stop the build.
func Build(kind Kind, doc *Document) (*Preview, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%q: %w", string(kind), domain.ErrUnknownDocumentKind)
	}
	if doc == nil {
		return nil, domain.ErrInvalidDocument
	}

	p := &Preview{
		Kind:          kind,
		Title:         kind.Title(),
		Number:        doc.Number,
		Date:          doc.Date,
		PlaceOfSupply: doc.PlaceOfSupply,
		Party:         doc.Party,
		Business:      doc.Business,
		Notes:         doc.Notes,
		Terms:         doc.Terms,
		Lines:         []taxengine.NormalizedLineItem{},
		Rows:          []ItemRow{},
	}
	in := &validator.Input{
		PartyGSTIN:    doc.Party.GSTIN,
		BusinessGSTIN: doc.Business.GSTIN,
		Date:          doc.Date,
	}

	switch kind {
	case KindPaymentIn:
		receipt, err := buildReceipt(doc)
		if err != nil {
			return nil, err
		}
		p.Receipt = receipt
	default:
		buildItems(p, kind, doc, in)
	}

	p.Warnings = validator.Failures(defaultEngine.Run(context.Background(), in))
	return p, nil
}

func buildItems(p *Preview, kind Kind, doc *Document, in *validator.Input) {
	switch kind {
	case KindInvoice, KindProforma:
		p.DueDate = doc.DueDate
		in.DueDate = doc.DueDate
	case KindEstimate:
		p.ValidUntil = doc.ValidUntil
		in.DueDate = doc.ValidUntil
	case KindDeliveryChallan:
		p.VehicleNumber = doc.VehicleNumber
		p.TransportName = doc.TransportName
	}

	p.Lines = taxengine.Normalize(doc.Items)
	p.TaxSummary = taxengine.Aggregate(p.Lines)
	p.TaxTable = taxengine.RenderTaxTable(p.TaxSummary)
	p.Totals = taxengine.ComputeTotals(p.Lines, taxengine.TotalsOptions{
		TrackBalance:   kind.TracksBalance(),
		ReceivedAmount: doc.ReceivedAmount.Decimal(),
	})

	p.Rows = make([]ItemRow, 0, len(p.Lines))
	for i := range p.Lines {
		it := &p.Lines[i]
		p.Rows = append(p.Rows, ItemRow{
			No:         i + 1,
			Name:       it.ItemName,
			HSNCode:    it.HSNCode,
			Quantity:   it.Quantity.String(),
			Price:      taxengine.FormatMoney(it.Price),
			Discount:   taxengine.FormatRate(it.DiscountPercent) + "%",
			TaxPercent: taxengine.FormatRate(it.TaxPercent) + "%",
			TaxAmount:  taxengine.FormatMoney(it.TaxAmount),
			Total:      taxengine.FormatMoney(it.Total),
		})
	}

	t := &p.Totals
	p.Display = TotalsDisplay{
		SubTotal:   taxengine.FormatMoney(t.SubTotal),
		RoundOff:   t.RoundOffDisplay,
		Total:      taxengine.FormatMoney(t.RoundedTotal),
		TotalSaved: taxengine.FormatMoney(t.TotalSaved),
	}
	if t.BalanceDue.Valid {
		p.Display.Received = taxengine.FormatMoney(t.ReceivedAmount.Decimal)
		p.Display.Balance = taxengine.FormatMoney(t.BalanceDue.Decimal)
	}

	in.Raw = doc.Items
	in.Items = p.Lines
	in.Summary = p.TaxSummary
}

func buildReceipt(doc *Document) (*Receipt, error) {
	amount := doc.Amount.Decimal()
	if amount.IsNegative() {
		amount = decimal.Zero
	}

	res, err := LinkPayment(amount, doc.LinkedInvoices)
	if err != nil {
		return nil, fmt.Errorf("document.Build linking payment %s: %w", doc.Number, err)
	}

	return &Receipt{
		Amount:        amount,
		AmountDisplay: taxengine.FormatMoney(amount),
		AmountInWords: taxengine.AmountInWordsWithPaise(amount),
		PaymentMode:   doc.PaymentMode,
		ReferenceNo:   doc.ReferenceNo,
		Links:         res.Links,
		LinkedTotal:   taxengine.FormatMoney(res.TotalLinked),
		Unused:        taxengine.FormatMoney(res.Unused),
	}, nil
}

// LinkPayment settles amount against the linked invoices. When any invoice
// carries an allocated amount the allocations are validated as given,
// otherwise the payment is spread oldest invoice first.
func LinkPayment(amount decimal.Decimal, invoices []LinkedInvoice) (*paymentlink.Result, error) {
	open := make([]paymentlink.OpenInvoice, 0, len(invoices))
	var manual []paymentlink.Allocation
	for _, li := range invoices {
		inv := paymentlink.OpenInvoice{
			ID:      li.ID,
			Number:  li.Number,
			Balance: li.Balance.Decimal(),
		}
		if d, err := validator.ParseDate(li.Date); err == nil {
			inv.Date = d
		}
		open = append(open, inv)
		if li.Allocated.Valid {
			manual = append(manual, paymentlink.Allocation{InvoiceID: li.ID, Amount: li.Allocated.Value})
		}
	}

	if len(manual) > 0 {
		return paymentlink.Apply(amount, open, manual)
	}
	return paymentlink.AutoLink(amount, open)
}
