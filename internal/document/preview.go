package document

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"billdesk/internal/paymentlink"
	"billdesk/internal/taxengine"
	"billdesk/internal/validator"
)

// ItemRow is a line item formatted for display.
type ItemRow struct {
	No         int    `json:"no"`
	Name       string `json:"name"`
	HSNCode    string `json:"hsn_code"`
	Quantity   string `json:"quantity"`
	Price      string `json:"price"`
	Discount   string `json:"discount"`
	TaxPercent string `json:"tax_percent"`
	TaxAmount  string `json:"tax_amount"`
	Total      string `json:"total"`
}

// TotalsDisplay holds the formatted totals block.
type TotalsDisplay struct {
	SubTotal   string `json:"sub_total"`
	RoundOff   string `json:"round_off"`
	Total      string `json:"total"`
	TotalSaved string `json:"total_saved"`
	Received   string `json:"received,omitempty"`
	Balance    string `json:"balance,omitempty"`
}

// Receipt is the payment-in body.
type Receipt struct {
	Amount        decimal.Decimal    `json:"amount"`
	AmountDisplay string             `json:"amount_display"`
	AmountInWords string             `json:"amount_in_words"`
	PaymentMode   string             `json:"payment_mode"`
	ReferenceNo   string             `json:"reference_no"`
	Links         []paymentlink.Link `json:"links"`
	LinkedTotal   string             `json:"linked_total"`
	Unused        string             `json:"unused"`
}

// Preview is the view model every document screen and the PDF renderer consume.
type Preview struct {
	Kind          Kind   `json:"kind"`
	Title         string `json:"title"`
	Number        string `json:"number"`
	Date          string `json:"date"`
	DueDate       string `json:"due_date,omitempty"`
	ValidUntil    string `json:"valid_until,omitempty"`
	PlaceOfSupply string `json:"place_of_supply,omitempty"`
	Party         Party  `json:"party"`
	Business      Party  `json:"business"`
	VehicleNumber string `json:"vehicle_number,omitempty"`
	TransportName string `json:"transport_name,omitempty"`

	Lines      []taxengine.NormalizedLineItem `json:"lines"`
	Rows       []ItemRow                      `json:"rows"`
	TaxSummary taxengine.TaxSummary           `json:"tax_summary"`
	TaxTable   taxengine.TaxTable             `json:"tax_table"`
	Totals     taxengine.DocumentTotals       `json:"totals"`
	Display    TotalsDisplay                  `json:"display"`

	Receipt *Receipt `json:"receipt,omitempty"`

	Notes    string             `json:"notes,omitempty"`
	Terms    string             `json:"terms,omitempty"`
	Warnings []validator.Result `json:"warnings"`
}

var unsafeFileChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// FileName is the download name of the rendered PDF, e.g. "tax-invoice-INV-7.pdf".
func (p *Preview) FileName() string {
	base := strings.ReplaceAll(strings.ToLower(p.Title), " ", "-")
	if num := strings.Trim(unsafeFileChars.ReplaceAllString(p.Number, "-"), "-"); num != "" {
		base += "-" + num
	}
	return base + ".pdf"
}
