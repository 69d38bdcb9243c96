package validator

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"billdesk/internal/domain"
	"billdesk/internal/taxengine"
)

var (
	mathTolerance = decimal.NewFromInt(1)
	hundred       = decimal.NewFromInt(100)
)

// mathValidator checks arithmetic relationships between fields.
type mathValidator struct {
	ruleKey  string
	ruleName string
	severity domain.ValidationSeverity
	validate func(*Input) []Result
}

func (v *mathValidator) RuleKey() string                     { return v.ruleKey }
func (v *mathValidator) RuleName() string                    { return v.ruleName }
func (v *mathValidator) Severity() domain.ValidationSeverity { return v.severity }

func (v *mathValidator) Validate(_ context.Context, in *Input) []Result {
	return v.validate(in)
}

func approxEqual(a, b decimal.Decimal) bool {
	return a.Sub(b).Abs().LessThanOrEqual(mathTolerance)
}

func mathResult(passed bool, fieldPath string, expected, actual decimal.Decimal, ruleName string) Result {
	msg := fmt.Sprintf("%s: %s calculation matches", ruleName, fieldPath)
	if !passed {
		msg = fmt.Sprintf("%s: %s calculation mismatch (expected %s, got %s)",
			ruleName, fieldPath, expected.StringFixed(2), actual.StringFixed(2))
	}
	return Result{
		Passed: passed, FieldPath: fieldPath,
		ExpectedValue: expected.StringFixed(2), ActualValue: actual.StringFixed(2), Message: msg,
	}
}

// MathValidators returns all arithmetic validators.
func MathValidators() []*mathValidator {
	return []*mathValidator{
		{
			ruleKey: "math.line_item.discount_range", ruleName: "Math: Line Item Discount Range",
			severity: domain.ValidationSeverityWarning,
			validate: func(in *Input) []Result {
				var results []Result
				idx := 0
				for i := range in.Raw {
					r := &in.Raw[i]
					if !retained(r) {
						continue
					}
					fp := fmt.Sprintf("items[%d].discount", idx)
					idx++
					if !r.Discount.Valid {
						continue
					}
					d := r.Discount.Value
					passed := !d.IsNegative() && d.LessThanOrEqual(hundred)
					msg := "Math: Line Item Discount Range: within 0-100%"
					if !passed {
						msg = fmt.Sprintf("Math: Line Item Discount Range: %s%% clamped to 0-100%%", d.String())
					}
					results = append(results, Result{
						Passed: passed, FieldPath: fp,
						ExpectedValue: "0 <= discount <= 100", ActualValue: d.String(), Message: msg,
					})
				}
				return results
			},
		},
		{
			ruleKey: "math.line_item.tax_amount", ruleName: "Math: Line Item Tax Amount",
			severity: domain.ValidationSeverityWarning,
			validate: func(in *Input) []Result {
				results := make([]Result, 0, len(in.Items))
				for i := range in.Items {
					item := &in.Items[i]
					fp := fmt.Sprintf("items[%d].tax_amount", i)
					expected := item.TaxableAmount.Mul(item.TaxPercent).Div(hundred)
					passed := approxEqual(item.TaxAmount, expected)
					results = append(results, mathResult(passed, fp, expected, item.TaxAmount, "Math: Line Item Tax Amount"))
				}
				return results
			},
		},
		{
			ruleKey: "math.line_item.total", ruleName: "Math: Line Item Total",
			severity: domain.ValidationSeverityWarning,
			validate: func(in *Input) []Result {
				results := make([]Result, 0, len(in.Items))
				for i := range in.Items {
					item := &in.Items[i]
					fp := fmt.Sprintf("items[%d].total", i)
					expected := item.TaxableAmount.Add(item.TaxAmount)
					passed := approxEqual(item.Total, expected)
					results = append(results, mathResult(passed, fp, expected, item.Total, "Math: Line Item Total"))
				}
				return results
			},
		},
		{
			ruleKey: "math.totals.tax_summary", ruleName: "Math: Tax Summary",
			severity: domain.ValidationSeverityError,
			validate: func(in *Input) []Result {
				var sum decimal.Decimal
				for i := range in.Items {
					sum = sum.Add(in.Items[i].AfterDiscount())
				}
				actual := in.Summary.GrandTaxable.Add(in.Summary.GrandTax)
				passed := approxEqual(actual, sum)
				return []Result{mathResult(passed, "tax_summary.grand_total", sum, actual, "Math: Tax Summary")}
			},
		},
	}
}

// retained mirrors the normalizer's blank-name filter so field paths line up.
func retained(r *taxengine.RawItem) bool {
	return strings.TrimSpace(r.ItemName) != ""
}
