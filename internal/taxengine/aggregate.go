package taxengine

import (
	"sort"

	"github.com/shopspring/decimal"
)

var two = decimal.NewFromInt(2)

// Regime labels used in group keys and rendered components.
const (
	RegimeGST  = "GST"
	RegimeIGST = "IGST"
	RegimeCGST = "CGST"
	RegimeSGST = "SGST"
)

// TaxGroup accumulates lines sharing a tax percent and regime.
type TaxGroup struct {
	TaxPercent    decimal.Decimal `json:"tax_percent"`
	IsIGST        bool            `json:"is_igst"`
	TaxableAmount decimal.Decimal `json:"taxable_amount"`
	TotalTax      decimal.Decimal `json:"total_tax"`
}

// Key identifies the group: "<percent>_IGST" or "<percent>_GST".
func (g TaxGroup) Key() string {
	return groupKey(g.TaxPercent, g.IsIGST)
}

// TaxComponent is one rate/amount pair shown in the tax summary.
type TaxComponent struct {
	Name   string          `json:"name"`
	Rate   decimal.Decimal `json:"rate"`
	Amount decimal.Decimal `json:"amount"`
}

// Components splits the group for display: IGST passes through whole, GST is
// halved into CGST and SGST.
func (g TaxGroup) Components() []TaxComponent {
	if g.IsIGST {
		return []TaxComponent{{Name: RegimeIGST, Rate: g.TaxPercent, Amount: g.TotalTax}}
	}
	rate := g.TaxPercent.Div(two)
	amount := g.TotalTax.Div(two)
	return []TaxComponent{
		{Name: RegimeCGST, Rate: rate, Amount: amount},
		{Name: RegimeSGST, Rate: rate, Amount: amount},
	}
}

// TaxSummary is the aggregated tax table of a document.
type TaxSummary struct {
	Groups       []TaxGroup      `json:"groups"`
	GrandTaxable decimal.Decimal `json:"grand_taxable"`
	GrandTax     decimal.Decimal `json:"grand_tax"`
}

// Aggregate groups items by (tax percent, regime). The taxable base of a line
// is its after-discount amount less its tax amount. Groups come back sorted by
// tax percent, ties keeping first-seen order.
func Aggregate(items []NormalizedLineItem) TaxSummary {
	summary := TaxSummary{Groups: []TaxGroup{}}
	index := make(map[string]int)

	for i := range items {
		it := &items[i]
		taxable := it.AfterDiscount().Sub(it.TaxAmount)
		key := groupKey(it.TaxPercent, it.IsIGST)

		idx, ok := index[key]
		if !ok {
			idx = len(summary.Groups)
			index[key] = idx
			summary.Groups = append(summary.Groups, TaxGroup{
				TaxPercent: it.TaxPercent,
				IsIGST:     it.IsIGST,
			})
		}
		g := &summary.Groups[idx]
		g.TaxableAmount = g.TaxableAmount.Add(taxable)
		g.TotalTax = g.TotalTax.Add(it.TaxAmount)
	}

	sort.SliceStable(summary.Groups, func(a, b int) bool {
		return summary.Groups[a].TaxPercent.LessThan(summary.Groups[b].TaxPercent)
	})

	for _, g := range summary.Groups {
		summary.GrandTaxable = summary.GrandTaxable.Add(g.TaxableAmount)
		summary.GrandTax = summary.GrandTax.Add(g.TotalTax)
	}
	return summary
}

func groupKey(percent decimal.Decimal, igst bool) string {
	regime := RegimeGST
	if igst {
		regime = RegimeIGST
	}
	return percent.String() + "_" + regime
}

// TaxTableRow is one display row of the tax summary. Regime columns that do
// not apply to the row are empty strings.
type TaxTableRow struct {
	Label         string `json:"label"`
	TaxableAmount string `json:"taxable_amount"`
	CGSTRate      string `json:"cgst_rate"`
	CGSTAmount    string `json:"cgst_amount"`
	SGSTRate      string `json:"sgst_rate"`
	SGSTAmount    string `json:"sgst_amount"`
	IGSTRate      string `json:"igst_rate"`
	IGSTAmount    string `json:"igst_amount"`
	TotalTax      string `json:"total_tax"`
}

// TaxTable is the rendered tax summary with its TOTAL row.
type TaxTable struct {
	Rows    []TaxTableRow `json:"rows"`
	Total   TaxTableRow   `json:"total"`
	HasGST  bool          `json:"has_gst"`
	HasIGST bool          `json:"has_igst"`
}

// RenderTaxTable formats a summary for display. The TOTAL row carries halves
// of the GST groups' tax under CGST/SGST and the IGST groups' tax under IGST.
func RenderTaxTable(summary TaxSummary) TaxTable {
	table := TaxTable{Rows: make([]TaxTableRow, 0, len(summary.Groups))}
	gstTax, igstTax := decimal.Zero, decimal.Zero

	for _, g := range summary.Groups {
		row := TaxTableRow{
			Label:         FormatRate(g.TaxPercent) + "%",
			TaxableAmount: FormatMoney(g.TaxableAmount),
			TotalTax:      FormatMoney(g.TotalTax),
		}
		for _, c := range g.Components() {
			switch c.Name {
			case RegimeIGST:
				row.IGSTRate, row.IGSTAmount = FormatRate(c.Rate), FormatMoney(c.Amount)
			case RegimeCGST:
				row.CGSTRate, row.CGSTAmount = FormatRate(c.Rate), FormatMoney(c.Amount)
			case RegimeSGST:
				row.SGSTRate, row.SGSTAmount = FormatRate(c.Rate), FormatMoney(c.Amount)
			}
		}
		if g.IsIGST {
			table.HasIGST = true
			igstTax = igstTax.Add(g.TotalTax)
		} else {
			table.HasGST = true
			gstTax = gstTax.Add(g.TotalTax)
		}
		table.Rows = append(table.Rows, row)
	}

	table.Total = TaxTableRow{
		Label:         "TOTAL",
		TaxableAmount: FormatMoney(summary.GrandTaxable),
		TotalTax:      FormatMoney(summary.GrandTax),
	}
	if table.HasGST {
		half := FormatMoney(gstTax.Div(two))
		table.Total.CGSTAmount, table.Total.SGSTAmount = half, half
	}
	if table.HasIGST {
		table.Total.IGSTAmount = FormatMoney(igstTax)
	}
	return table
}
