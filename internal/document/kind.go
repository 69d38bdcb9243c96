package document

import (
	"fmt"
	"strings"

	"billdesk/internal/domain"
)

// Kind identifies one of the sales documents the service renders.
type Kind string

const (
	KindInvoice         Kind = "invoice"
	KindProforma        Kind = "proforma"
	KindEstimate        Kind = "estimate"
	KindDeliveryChallan Kind = "delivery_challan"
	KindPaymentIn       Kind = "payment_in"
)

var kindTitles = map[Kind]string{
	KindInvoice:         "TAX INVOICE",
	KindProforma:        "PROFORMA INVOICE",
	KindEstimate:        "ESTIMATE",
	KindDeliveryChallan: "DELIVERY CHALLAN",
	KindPaymentIn:       "PAYMENT RECEIPT",
}

var kindAliases = map[string]Kind{
	"sales_invoice":    KindInvoice,
	"proforma_invoice": KindProforma,
	"quotation":        KindEstimate,
	"challan":          KindDeliveryChallan,
	"payment":          KindPaymentIn,
}

// Kinds lists every supported kind.
func Kinds() []Kind {
	return []Kind{KindInvoice, KindProforma, KindEstimate, KindDeliveryChallan, KindPaymentIn}
}

// ParseKind accepts a kind name case-insensitively, with '-' or '_' separators.
func ParseKind(s string) (Kind, error) {
	name := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	k := Kind(name)
	if _, ok := kindTitles[k]; ok {
		return k, nil
	}
	if alias, ok := kindAliases[name]; ok {
		return alias, nil
	}
	return "", fmt.Errorf("%q: %w", s, domain.ErrUnknownDocumentKind)
}

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	_, ok := kindTitles[k]
	return ok
}

// Title is the heading printed on the document.
func (k Kind) Title() string {
	return kindTitles[k]
}

// TracksBalance reports whether received and balance due are computed.
func (k Kind) TracksBalance() bool {
	return k == KindInvoice
}

// HasItems reports whether the kind carries line items.
func (k Kind) HasItems() bool {
	return k != KindPaymentIn
}
