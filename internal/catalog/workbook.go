// Package catalog reads and writes the product catalog spreadsheet.
package catalog

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"billdesk/internal/domain"
	"billdesk/internal/taxengine"
)

const sheetName = "Products"

// Columns is the header row of the catalog sheet, in template order.
var Columns = []string{"Name", "Item Code", "HSN", "Unit", "Sale Price", "Tax %", "Barcode"}

var headerAliases = map[string]string{
	"name":        "Name",
	"item name":   "Name",
	"item code":   "Item Code",
	"code":        "Item Code",
	"sku":         "Item Code",
	"hsn":         "HSN",
	"hsn code":    "HSN",
	"hsn/sac":     "HSN",
	"unit":        "Unit",
	"sale price":  "Sale Price",
	"price":       "Sale Price",
	"tax %":       "Tax %",
	"tax":         "Tax %",
	"gst %":       "Tax %",
	"tax percent": "Tax %",
	"barcode":     "Barcode",
}

// ParseWorkbook reads products from the first sheet of an .xlsx file. Rows with a
// blank name or item code are skipped; unreadable numbers become zero.
func ParseWorkbook(r io.Reader) ([]domain.Product, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("catalog.ParseWorkbook open: %v: %w", err, domain.ErrInvalidWorkbook)
	}
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("catalog.ParseWorkbook read: %v: %w", err, domain.ErrInvalidWorkbook)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("catalog.ParseWorkbook: empty sheet: %w", domain.ErrInvalidWorkbook)
	}

	index := headerIndex(rows[0])
	for _, required := range []string{"Name", "Item Code"} {
		if _, ok := index[required]; !ok {
			return nil, fmt.Errorf("catalog.ParseWorkbook: missing %q column: %w", required, domain.ErrInvalidWorkbook)
		}
	}

	cell := func(row []string, col string) string {
		i, ok := index[col]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var products []domain.Product
	for _, row := range rows[1:] {
		p := domain.Product{
			Name:       cell(row, "Name"),
			ItemCode:   cell(row, "Item Code"),
			HSNCode:    cell(row, "HSN"),
			Unit:       cell(row, "Unit"),
			SalePrice:  number(cell(row, "Sale Price")),
			TaxPercent: number(strings.TrimSuffix(cell(row, "Tax %"), "%")),
			Barcode:    cell(row, "Barcode"),
		}
		if p.Name == "" || p.ItemCode == "" {
			continue
		}
		products = append(products, p)
	}
	return products, nil
}

// Template returns an empty catalog workbook with the header row frozen.
func Template() ([]byte, error) {
	return write(nil)
}

// Export writes products into a catalog workbook ParseWorkbook can read back.
func Export(products []domain.Product) ([]byte, error) {
	return write(products)
}

func write(products []domain.Product) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return nil, fmt.Errorf("catalog: rename sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#212529"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("catalog: header style: %w", err)
	}

	header := make([]interface{}, len(Columns))
	for i, c := range Columns {
		header[i] = c
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return nil, fmt.Errorf("catalog: header row: %w", err)
	}
	lastCol, _ := excelize.ColumnNumberToName(len(Columns))
	_ = f.SetCellStyle(sheetName, "A1", lastCol+"1", headerStyle)
	_ = f.SetColWidth(sheetName, "A", "A", 32)
	_ = f.SetColWidth(sheetName, "B", lastCol, 14)

	for i := range products {
		p := &products[i]
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := []interface{}{
			p.Name, p.ItemCode, p.HSNCode, p.Unit,
			p.SalePrice.StringFixed(2), taxengine.FormatRate(p.TaxPercent), p.Barcode,
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return nil, fmt.Errorf("catalog: row %d: %w", i+2, err)
		}
	}

	_ = f.SetPanes(sheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("catalog: write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func headerIndex(header []string) map[string]int {
	index := make(map[string]int, len(header))
	for i, h := range header {
		key := strings.ToLower(strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(h), "*")))
		if col, ok := headerAliases[key]; ok {
			if _, seen := index[col]; !seen {
				index[col] = i
			}
		}
	}
	return index
}

func number(s string) decimal.Decimal {
	s = strings.ReplaceAll(s, ",", "")
	return taxengine.ParseAmount(s).Decimal()
}
