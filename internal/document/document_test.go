package document_test

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"billdesk/internal/document"
	"billdesk/internal/domain"
	"billdesk/internal/taxengine"
)

const invoiceJSON = `{
	"number": "INV/24-25/7",
	"date": "2024-04-05",
	"dueDate": "2024-05-05",
	"party": {"name": "Asha Traders", "gstin": "27AAPFU0939F1ZV"},
	"business": {"name": "Billdesk Demo Co"},
	"receivedAmount": "100",
	"items": [
		{"itemName": "A", "hsnCode": "8471", "quantity": 2, "price": "100", "discount": 10,
		 "taxPercent": 18, "taxAmount": 32.4, "total": 212.4, "isIGST": false},
		{"itemName": "   ", "quantity": 9, "price": 9}
	]
}`

func decode(t *testing.T, raw string) *document.Document {
	t.Helper()
	var doc document.Document
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))
	return &doc
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		input string
		want  document.Kind
	}{
		{"invoice", document.KindInvoice},
		{"Delivery-Challan", document.KindDeliveryChallan},
		{"payment_in", document.KindPaymentIn},
		{"quotation", document.KindEstimate},
		{" proforma ", document.KindProforma},
	}
	for _, tt := range tests {
		got, err := document.ParseKind(tt.input)
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.want, got)
	}

	_, err := document.ParseKind("purchase_order")
	assert.ErrorIs(t, err, domain.ErrUnknownDocumentKind)
}

func TestBuild_Invoice(t *testing.T) {
	p, err := document.Build(document.KindInvoice, decode(t, invoiceJSON))
	require.NoError(t, err)

	assert.Equal(t, "TAX INVOICE", p.Title)
	assert.Equal(t, "2024-05-05", p.DueDate)
	require.Len(t, p.Lines, 1)
	require.Len(t, p.Rows, 1)
	assert.Equal(t, 1, p.Rows[0].No)
	assert.Equal(t, "18.00%", p.Rows[0].TaxPercent)
	assert.Equal(t, "212.40", p.Rows[0].Total)

	assert.Equal(t, "212.40", p.Display.SubTotal)
	assert.Equal(t, "- 0.40", p.Display.RoundOff)
	assert.Equal(t, "212.00", p.Display.Total)
	assert.Equal(t, "100.00", p.Display.Received)
	assert.Equal(t, "112.00", p.Display.Balance)
	assert.Equal(t, "Two Hundred Twelve Rupees Only", p.Totals.AmountInWords)

	require.Len(t, p.TaxTable.Rows, 1)
	assert.Equal(t, "147.60", p.TaxTable.Rows[0].TaxableAmount)
	assert.Equal(t, "9.00", p.TaxTable.Rows[0].CGSTRate)
	assert.Equal(t, "16.20", p.TaxTable.Rows[0].CGSTAmount)

	assert.Empty(t, p.Warnings)
	assert.Nil(t, p.Receipt)
}

func TestBuild_DerivedTaxHasNoWarnings(t *testing.T) {
	doc := decode(t, `{"number":"E-7","items":[
		{"itemName":"A","quantity":2,"price":100,"discount":10,"taxPercent":18}
	]}`)

	p, err := document.Build(document.KindEstimate, doc)
	require.NoError(t, err)
	assert.Equal(t, "212.40", p.Display.SubTotal)
	assert.Empty(t, p.Warnings)
}

func TestBuild_SuppliedTaxMismatchWarns(t *testing.T) {
	doc := decode(t, `{"number":"E-8","items":[
		{"itemName":"A","quantity":1,"price":100,"taxPercent":18,"taxAmount":5}
	]}`)

	p, err := document.Build(document.KindEstimate, doc)
	require.NoError(t, err)
	require.NotEmpty(t, p.Warnings)
	var keys []string
	for _, w := range p.Warnings {
		keys = append(keys, w.RuleKey)
	}
	assert.Contains(t, keys, "math.line_item.tax_amount")
}

func TestBuild_NonInvoiceKindsHaveNoBalance(t *testing.T) {
	for _, kind := range []document.Kind{document.KindProforma, document.KindEstimate, document.KindDeliveryChallan} {
		p, err := document.Build(kind, decode(t, invoiceJSON))
		require.NoError(t, err, kind)
		assert.Equal(t, kind.Title(), p.Title)
		assert.False(t, p.Totals.BalanceDue.Valid, kind)
		assert.Empty(t, p.Display.Balance, kind)
		assert.Equal(t, "212.00", p.Display.Total, kind)
	}
}

func TestBuild_EstimateAndChallanFields(t *testing.T) {
	doc := decode(t, `{"number":"E-1","validUntil":"2024-06-01","vehicleNumber":"MH12AB1234","items":[]}`)

	est, err := document.Build(document.KindEstimate, doc)
	require.NoError(t, err)
	assert.Equal(t, "2024-06-01", est.ValidUntil)
	assert.Empty(t, est.VehicleNumber)

	ch, err := document.Build(document.KindDeliveryChallan, doc)
	require.NoError(t, err)
	assert.Equal(t, "MH12AB1234", ch.VehicleNumber)
	assert.Empty(t, ch.Rows)
	assert.Equal(t, "Zero Rupees Only", ch.Totals.AmountInWords)
}

func TestBuild_Errors(t *testing.T) {
	_, err := document.Build(document.Kind("purchase_order"), &document.Document{})
	assert.ErrorIs(t, err, domain.ErrUnknownDocumentKind)

	_, err = document.Build(document.KindInvoice, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidDocument)
}

func TestBuild_PaymentInAutoLink(t *testing.T) {
	doc := decode(t, `{
		"number": "PAY-3",
		"date": "2024-04-10",
		"amount": "1500.50",
		"paymentMode": "UPI",
		"linkedInvoices": [
			{"id": "2", "number": "INV-2", "date": "2024-03-20", "balance": 1000},
			{"id": "1", "number": "INV-1", "date": "2024-03-01", "balance": "800"}
		]
	}`)

	p, err := document.Build(document.KindPaymentIn, doc)
	require.NoError(t, err)
	require.NotNil(t, p.Receipt)

	r := p.Receipt
	assert.Equal(t, "PAYMENT RECEIPT", p.Title)
	assert.Equal(t, "1,500.50", r.AmountDisplay)
	assert.Equal(t, "One Thousand Five Hundred Rupees and Fifty Paisa Only", r.AmountInWords)
	require.Len(t, r.Links, 2)
	assert.Equal(t, "1", r.Links[0].InvoiceID)
	assert.True(t, decimal.NewFromInt(800).Equal(r.Links[0].Allocated))
	assert.True(t, decimal.RequireFromString("700.50").Equal(r.Links[1].Allocated))
	assert.Equal(t, "1,500.50", r.LinkedTotal)
	assert.Equal(t, "0.00", r.Unused)
	assert.Empty(t, p.Rows)
}

func TestBuild_PaymentInManualAllocation(t *testing.T) {
	doc := decode(t, `{
		"number": "PAY-4",
		"amount": 500,
		"linkedInvoices": [
			{"id": "1", "number": "INV-1", "balance": 800, "allocated": 200},
			{"id": "2", "number": "INV-2", "balance": 100}
		]
	}`)

	p, err := document.Build(document.KindPaymentIn, doc)
	require.NoError(t, err)
	require.Len(t, p.Receipt.Links, 1)
	assert.Equal(t, "300.00", p.Receipt.Unused)

	doc.LinkedInvoices[1].Allocated = taxengine.NewAmount(150)
	_, err = document.Build(document.KindPaymentIn, doc)
	assert.ErrorIs(t, err, domain.ErrAllocationExceedsBalance)
}

func TestBuild_PaymentInZero(t *testing.T) {
	p, err := document.Build(document.KindPaymentIn, &document.Document{Number: "PAY-0"})
	require.NoError(t, err)
	assert.Equal(t, "Zero", p.Receipt.AmountInWords)
	assert.Empty(t, p.Receipt.Links)
}

func TestPreview_FileName(t *testing.T) {
	p := &document.Preview{Title: "TAX INVOICE", Number: "INV/24-25/7"}
	assert.Equal(t, "tax-invoice-INV-24-25-7.pdf", p.FileName())

	p = &document.Preview{Title: "DELIVERY CHALLAN"}
	assert.Equal(t, "delivery-challan.pdf", p.FileName())
}
