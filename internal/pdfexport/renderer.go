// Package pdfexport draws document previews as A4 PDFs.
package pdfexport

import (
	"fmt"
	"strings"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	appconfig "billdesk/internal/config"
	"billdesk/internal/document"
	"billdesk/internal/domain"
	"billdesk/internal/taxengine"
)

var (
	grey      = &props.Color{Red: 100, Green: 100, Blue: 100}
	dark      = &props.Color{Red: 33, Green: 37, Blue: 41}
	white     = &props.Color{Red: 255, Green: 255, Blue: 255}
	altBg     = &props.Color{Red: 248, Green: 249, Blue: 250}
	summaryBg = &props.Color{Red: 245, Green: 245, Blue: 245}
)

// Renderer turns previews into PDF bytes.
type Renderer struct {
	cfg appconfig.PDFConfig
}

// NewRenderer creates a Renderer using the configured page margins.
func NewRenderer(cfg appconfig.PDFConfig) *Renderer {
	return &Renderer{cfg: cfg}
}

// Render draws p on A4 portrait pages.
func (r *Renderer) Render(p *document.Preview) ([]byte, error) {
	if p == nil {
		return nil, domain.ErrInvalidDocument
	}

	cfg := config.NewBuilder().
		WithOrientation(orientation.Vertical).
		WithPageSize(pagesize.A4).
		WithLeftMargin(r.cfg.MarginLeft).
		WithTopMargin(r.cfg.MarginTop).
		WithRightMargin(r.cfg.MarginRight).
		WithBottomMargin(r.cfg.MarginBottom).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	addHeader(m, p)
	addParty(m, p)
	if p.Receipt != nil {
		addReceipt(m, p.Receipt)
	} else {
		addItems(m, p)
		addTaxTable(m, &p.TaxTable)
		addTotals(m, p)
		addWords(m, p.Totals.AmountInWords)
	}
	addNotes(m, "NOTES", p.Notes)
	addNotes(m, "TERMS & CONDITIONS", p.Terms)
	addSignature(m, p.Business.Name, r.cfg.Signatory)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdfexport.Render %s: %v: %w", p.Number, err, domain.ErrRenderFailed)
	}
	return doc.GetBytes(), nil
}

func addHeader(m core.Maroto, p *document.Preview) {
	m.AddRows(
		row.New(10).Add(
			col.New(7).Add(text.New(p.Business.Name, props.Text{
				Size: 14, Style: fontstyle.Bold, Align: align.Left,
			})),
			col.New(5).Add(text.New(p.Title, props.Text{
				Size: 14, Style: fontstyle.Bold, Align: align.Right, Color: dark,
			})),
		),
	)

	contact := joinNonEmpty(" | ", p.Business.Address, p.Business.Phone, p.Business.Email)
	if p.Business.GSTIN != "" {
		contact = joinNonEmpty(" | ", contact, "GSTIN: "+p.Business.GSTIN)
	}
	m.AddRows(
		row.New(8).Add(
			col.New(7).Add(text.New(contact, props.Text{Size: 8, Align: align.Left, Color: grey})),
			col.New(5).Add(text.New(fmt.Sprintf("No: %s", p.Number), props.Text{
				Size: 10, Style: fontstyle.Bold, Align: align.Right,
			})),
		),
	)

	meta := []string{"Date: " + p.Date}
	if p.DueDate != "" {
		meta = append(meta, "Due: "+p.DueDate)
	}
	if p.ValidUntil != "" {
		meta = append(meta, "Valid until: "+p.ValidUntil)
	}
	if p.PlaceOfSupply != "" {
		meta = append(meta, "Place of supply: "+p.PlaceOfSupply)
	}
	m.AddRows(
		row.New(6).Add(
			col.New(12).Add(text.New(strings.Join(meta, "   "), props.Text{Size: 8, Align: align.Right})),
		),
	)
	m.AddRows(row.New(3))
}

func addParty(m core.Maroto, p *document.Preview) {
	label := "BILL TO"
	if p.Kind == document.KindPaymentIn {
		label = "RECEIVED FROM"
	}
	headerCell := &props.Cell{BackgroundColor: &props.Color{Red: 245, Green: 243, Blue: 239}}
	m.AddRows(
		row.New(7).Add(
			col.New(12).Add(text.New(label, props.Text{
				Size: 7, Style: fontstyle.Bold, Align: align.Left, Color: grey,
			})).WithStyle(headerCell),
		),
	)
	m.AddRows(row.New(7).Add(col.New(12).Add(text.New(p.Party.Name, props.Text{
		Size: 9, Style: fontstyle.Bold, Align: align.Left,
	}))))

	value := props.Text{Size: 8, Align: align.Left}
	for _, line := range []string{
		p.Party.Address,
		joinNonEmpty(" | ", p.Party.Phone, p.Party.Email),
		prefixed("GSTIN: ", p.Party.GSTIN),
		prefixed("Vehicle: ", p.VehicleNumber),
		prefixed("Transport: ", p.TransportName),
	} {
		if line == "" {
			continue
		}
		m.AddRows(row.New(6).Add(col.New(12).Add(text.New(line, value))))
	}
	m.AddRows(row.New(3))
}

func addItems(m core.Maroto, p *document.Preview) {
	headerText := props.Text{Size: 7, Style: fontstyle.Bold, Align: align.Center, Color: white}
	headerLeft := headerText
	headerLeft.Align = align.Left
	headerCell := &props.Cell{BackgroundColor: dark}

	m.AddRows(
		row.New(8).Add(
			col.New(1).Add(text.New("#", headerText)).WithStyle(headerCell),
			col.New(3).Add(text.New("Item", headerLeft)).WithStyle(headerCell),
			col.New(1).Add(text.New("HSN", headerText)).WithStyle(headerCell),
			col.New(1).Add(text.New("Qty", headerText)).WithStyle(headerCell),
			col.New(2).Add(text.New("Price", headerText)).WithStyle(headerCell),
			col.New(1).Add(text.New("Disc", headerText)).WithStyle(headerCell),
			col.New(1).Add(text.New("Tax", headerText)).WithStyle(headerCell),
			col.New(2).Add(text.New("Amount", headerText)).WithStyle(headerCell),
		),
	)

	center := props.Text{Size: 7, Align: align.Center}
	left := props.Text{Size: 7, Align: align.Left}
	right := props.Text{Size: 7, Align: align.Right}
	for i, it := range p.Rows {
		cells := []core.Col{
			col.New(1).Add(text.New(fmt.Sprintf("%d", it.No), center)),
			col.New(3).Add(text.New(it.Name, left)),
			col.New(1).Add(text.New(it.HSNCode, center)),
			col.New(1).Add(text.New(it.Quantity, right)),
			col.New(2).Add(text.New(it.Price, right)),
			col.New(1).Add(text.New(it.Discount, center)),
			col.New(1).Add(text.New(it.TaxPercent, center)),
			col.New(2).Add(text.New(it.Total, right)),
		}
		if i%2 == 1 {
			cell := &props.Cell{BackgroundColor: altBg}
			for j := range cells {
				cells[j] = cells[j].WithStyle(cell)
			}
		}
		m.AddRows(row.New(7).Add(cells...))
	}
	m.AddRows(row.New(2))
}

func addTaxTable(m core.Maroto, t *taxengine.TaxTable) {
	if len(t.Rows) == 0 {
		return
	}
	headerText := props.Text{Size: 7, Style: fontstyle.Bold, Align: align.Center}
	headerCell := &props.Cell{BackgroundColor: summaryBg}

	m.AddRows(
		row.New(7).Add(
			col.New(2).Add(text.New("Tax Rate", headerText)).WithStyle(headerCell),
			col.New(2).Add(text.New("Taxable", headerText)).WithStyle(headerCell),
			col.New(2).Add(text.New("CGST", headerText)).WithStyle(headerCell),
			col.New(2).Add(text.New("SGST", headerText)).WithStyle(headerCell),
			col.New(2).Add(text.New("IGST", headerText)).WithStyle(headerCell),
			col.New(2).Add(text.New("Total Tax", headerText)).WithStyle(headerCell),
		),
	)

	body := props.Text{Size: 7, Align: align.Right}
	bold := props.Text{Size: 7, Style: fontstyle.Bold, Align: align.Right}
	rows := append(append([]taxengine.TaxTableRow{}, t.Rows...), t.Total)
	for i, tr := range rows {
		style := body
		if i == len(rows)-1 {
			style = bold
		}
		m.AddRows(
			row.New(6).Add(
				col.New(2).Add(text.New(tr.Label, style)),
				col.New(2).Add(text.New(tr.TaxableAmount, style)),
				col.New(2).Add(text.New(rateAmount(tr.CGSTRate, tr.CGSTAmount), style)),
				col.New(2).Add(text.New(rateAmount(tr.SGSTRate, tr.SGSTAmount), style)),
				col.New(2).Add(text.New(rateAmount(tr.IGSTRate, tr.IGSTAmount), style)),
				col.New(2).Add(text.New(tr.TotalTax, style)),
			),
		)
	}
	m.AddRows(row.New(3))
}

func addTotals(m core.Maroto, p *document.Preview) {
	summaryCell := &props.Cell{BackgroundColor: summaryBg}
	label := props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Right}
	value := props.Text{Size: 8, Align: align.Right}

	lines := [][2]string{
		{"Sub Total", p.Display.SubTotal},
		{"Round Off", p.Display.RoundOff},
	}
	if p.Totals.TotalSaved.IsPositive() {
		lines = append(lines, [2]string{"You Saved", p.Display.TotalSaved})
	}
	for _, l := range lines {
		m.AddRows(row.New(7).Add(
			col.New(9).Add(text.New(l[0], label)).WithStyle(summaryCell),
			col.New(3).Add(text.New(l[1], value)).WithStyle(summaryCell),
		))
	}

	grandCell := &props.Cell{BackgroundColor: dark}
	grand := props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right, Color: white}
	m.AddRows(row.New(8).Add(
		col.New(9).Add(text.New("Total", grand)).WithStyle(grandCell),
		col.New(3).Add(text.New(p.Display.Total, grand)).WithStyle(grandCell),
	))

	if p.Display.Balance != "" {
		for _, l := range [][2]string{{"Received", p.Display.Received}, {"Balance Due", p.Display.Balance}} {
			m.AddRows(row.New(7).Add(
				col.New(9).Add(text.New(l[0], label)),
				col.New(3).Add(text.New(l[1], value)),
			))
		}
	}
	m.AddRows(row.New(3))
}

func addReceipt(m core.Maroto, rc *document.Receipt) {
	label := props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Left, Color: grey}
	value := props.Text{Size: 9, Align: align.Left}
	for _, l := range [][2]string{
		{"Amount Received", rc.AmountDisplay},
		{"Payment Mode", rc.PaymentMode},
		{"Reference No", rc.ReferenceNo},
	} {
		if l[1] == "" {
			continue
		}
		m.AddRows(row.New(7).Add(
			col.New(4).Add(text.New(l[0], label)),
			col.New(8).Add(text.New(l[1], value)),
		))
	}
	addWords(m, rc.AmountInWords)

	if len(rc.Links) == 0 {
		return
	}
	headerText := props.Text{Size: 7, Style: fontstyle.Bold, Align: align.Center, Color: white}
	headerCell := &props.Cell{BackgroundColor: dark}
	m.AddRows(row.New(8).Add(
		col.New(3).Add(text.New("Invoice", headerText)).WithStyle(headerCell),
		col.New(3).Add(text.New("Balance", headerText)).WithStyle(headerCell),
		col.New(3).Add(text.New("Settled", headerText)).WithStyle(headerCell),
		col.New(3).Add(text.New("Remaining", headerText)).WithStyle(headerCell),
	))
	body := props.Text{Size: 7, Align: align.Right}
	for _, l := range rc.Links {
		m.AddRows(row.New(7).Add(
			col.New(3).Add(text.New(l.Number, props.Text{Size: 7, Align: align.Left})),
			col.New(3).Add(text.New(taxengine.FormatMoney(l.BalanceBefore), body)),
			col.New(3).Add(text.New(taxengine.FormatMoney(l.Allocated), body)),
			col.New(3).Add(text.New(taxengine.FormatMoney(l.BalanceAfter), body)),
		))
	}
	m.AddRows(row.New(7).Add(
		col.New(9).Add(text.New("Unused Amount", props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Right})),
		col.New(3).Add(text.New(rc.Unused, props.Text{Size: 8, Align: align.Right})),
	))
	m.AddRows(row.New(3))
}

func addWords(m core.Maroto, words string) {
	if words == "" {
		return
	}
	m.AddRows(row.New(8).Add(col.New(12).Add(
		text.New("Amount in Words: "+words, props.Text{Size: 8, Style: fontstyle.BoldItalic, Align: align.Left}),
	)))
	m.AddRows(row.New(3))
}

func addNotes(m core.Maroto, title, body string) {
	if strings.TrimSpace(body) == "" {
		return
	}
	m.AddRows(row.New(6).Add(col.New(12).Add(text.New(title, props.Text{
		Size: 7, Style: fontstyle.Bold, Align: align.Left, Color: grey,
	}))))
	m.AddRows(row.New(7).Add(col.New(12).Add(text.New(body, props.Text{Size: 8, Align: align.Left}))))
	m.AddRows(row.New(3))
}

func addSignature(m core.Maroto, business, signatory string) {
	m.AddRows(row.New(15))
	right := props.Text{Size: 8, Align: align.Right}
	if business != "" {
		m.AddRows(row.New(6).Add(col.New(12).Add(text.New("For "+business, right))))
	}
	m.AddRows(row.New(10))
	m.AddRows(row.New(6).Add(col.New(12).Add(text.New(signatory, props.Text{
		Size: 8, Style: fontstyle.Bold, Align: align.Right,
	}))))
}

func rateAmount(rate, amount string) string {
	switch {
	case amount == "":
		return "-"
	case rate == "":
		return amount
	default:
		return fmt.Sprintf("%s%% %s", rate, amount)
	}
}

func prefixed(prefix, v string) string {
	if v == "" {
		return ""
	}
	return prefix + v
}

func joinNonEmpty(sep string, parts ...string) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, sep)
}
