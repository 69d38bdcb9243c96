package validator_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"billdesk/internal/domain"
	"billdesk/internal/taxengine"
	"billdesk/internal/validator"
)

func buildInput(raw []taxengine.RawItem) *validator.Input {
	items := taxengine.Normalize(raw)
	return &validator.Input{
		Raw:     raw,
		Items:   items,
		Summary: taxengine.Aggregate(items),
	}
}

func rawItem(name string, qty, price, discount, tax float64) taxengine.RawItem {
	return taxengine.RawItem{
		ItemName:   name,
		HSNCode:    "8471",
		Quantity:   taxengine.NewAmount(qty),
		Price:      taxengine.NewAmount(price),
		Discount:   taxengine.NewAmount(discount),
		TaxPercent: taxengine.NewAmount(tax),
	}
}

func findResult(results []validator.Result, key, fieldPath string) *validator.Result {
	for i := range results {
		if results[i].RuleKey == key && results[i].FieldPath == fieldPath {
			return &results[i]
		}
	}
	return nil
}

func TestEngine_DerivedValuesPassMathRules(t *testing.T) {
	engine := validator.NewEngine(validator.DefaultRegistry())
	in := buildInput([]taxengine.RawItem{rawItem("A", 2, 100, 10, 18)})

	results := engine.Run(context.Background(), in)

	tax := findResult(results, "math.line_item.tax_amount", "items[0].tax_amount")
	require.NotNil(t, tax)
	assert.True(t, tax.Passed)

	total := findResult(results, "math.line_item.total", "items[0].total")
	require.NotNil(t, total)
	assert.True(t, total.Passed)

	summary := findResult(results, "math.totals.tax_summary", "tax_summary.grand_total")
	require.NotNil(t, summary)
	assert.True(t, summary.Passed)
	assert.Equal(t, domain.ValidationSeverityError, summary.Severity)
}

func TestEngine_SuppliedTaxMismatch(t *testing.T) {
	raw := rawItem("A", 1, 100, 0, 18)
	raw.TaxAmount = taxengine.NewAmount(5)
	in := buildInput([]taxengine.RawItem{raw})

	results := validator.NewEngine(validator.DefaultRegistry()).Run(context.Background(), in)

	r := findResult(results, "math.line_item.tax_amount", "items[0].tax_amount")
	require.NotNil(t, r)
	assert.False(t, r.Passed)
	assert.Equal(t, "18.00", r.ExpectedValue)
	assert.Equal(t, "5.00", r.ActualValue)
	assert.Equal(t, "Math: Line Item Tax Amount", r.RuleName)
	assert.Equal(t, domain.ValidationSeverityWarning, r.Severity)
}

func TestEngine_ConsistentSuppliedValuesPass(t *testing.T) {
	raw := rawItem("A", 2, 100, 10, 18)
	raw.TaxAmount = taxengine.NewAmount(32.4)
	raw.Total = taxengine.NewAmount(212.4)

	results := validator.NewEngine(validator.DefaultRegistry()).Run(context.Background(), buildInput([]taxengine.RawItem{raw}))

	assert.Empty(t, validator.Failures(results))
	summary := findResult(results, "math.totals.tax_summary", "tax_summary.grand_total")
	require.NotNil(t, summary)
	assert.True(t, summary.Passed)
	assert.Equal(t, "180.00", summary.ExpectedValue)
}

func TestEngine_DiscountRangeUsesRetainedIndexes(t *testing.T) {
	raw := []taxengine.RawItem{
		rawItem("  ", 1, 1, 500, 0),
		rawItem("Kept", 1, 100, 150, 0),
	}

	results := validator.NewEngine(validator.DefaultRegistry()).Run(context.Background(), buildInput(raw))

	r := findResult(results, "math.line_item.discount_range", "items[0].discount")
	require.NotNil(t, r)
	assert.False(t, r.Passed)
	assert.Equal(t, "150", r.ActualValue)
	assert.Nil(t, findResult(results, "math.line_item.discount_range", "items[1].discount"))
}

func TestFormatValidators(t *testing.T) {
	in := buildInput([]taxengine.RawItem{rawItem("A", 1, 1, 0, 0)})
	in.Items[0].HSNCode = "84A"
	in.PartyGSTIN = "27AAPFU0939F1ZV"
	in.BusinessGSTIN = "not-a-gstin"
	in.Date = "2024-04-01"
	in.DueDate = "someday"

	results := validator.NewEngine(validator.DefaultRegistry()).Run(context.Background(), in)

	assert.True(t, findResult(results, "fmt.party.gstin", "party.gstin").Passed)
	assert.False(t, findResult(results, "fmt.business.gstin", "business.gstin").Passed)
	assert.True(t, findResult(results, "fmt.document.date", "date").Passed)
	assert.False(t, findResult(results, "fmt.document.due_date", "due_date").Passed)
	assert.False(t, findResult(results, "fmt.line_item.hsn", "items[0].hsn_code").Passed)

	failures := validator.Failures(results)
	assert.Len(t, failures, 3)
}

func TestFormatValidators_EmptyFieldsSkip(t *testing.T) {
	results := validator.NewEngine(validator.DefaultRegistry()).Run(context.Background(), buildInput(nil))
	assert.Empty(t, validator.Failures(results))
}

func TestParseDate(t *testing.T) {
	for _, s := range []string{"2024-04-01", "01-04-2024", "01/04/2024", "1 Apr 2024", "2024-04-01T10:00:00.000Z"} {
		d, err := validator.ParseDate(s)
		require.NoError(t, err, s)
		assert.Equal(t, 2024, d.Year(), s)
	}
	_, err := validator.ParseDate("04/31/2024")
	assert.Error(t, err)
}

func TestRegistry_OrderAndReplace(t *testing.T) {
	r := validator.DefaultRegistry()
	all := r.All()
	require.NotEmpty(t, all)
	assert.Equal(t, "math.line_item.discount_range", all[0].RuleKey())
	assert.NotNil(t, r.Get("fmt.party.gstin"))
	assert.Nil(t, r.Get("missing"))

	before := len(all)
	r.Register(all[0])
	assert.Len(t, r.All(), before)
}
