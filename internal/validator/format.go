package validator

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"billdesk/internal/domain"
)

var (
	gstinPattern = regexp.MustCompile(`^\d{2}[A-Z]{5}\d{4}[A-Z][1-9A-Z]Z[0-9A-Z]$`)
	hsnPattern   = regexp.MustCompile(`^\d{4,8}$`)
)

// formatValidator checks a field against a regex or format rule.
type formatValidator struct {
	ruleKey  string
	ruleName string
	severity domain.ValidationSeverity
	validate func(*Input) []Result
}

func (v *formatValidator) RuleKey() string                     { return v.ruleKey }
func (v *formatValidator) RuleName() string                    { return v.ruleName }
func (v *formatValidator) Severity() domain.ValidationSeverity { return v.severity }

func (v *formatValidator) Validate(_ context.Context, in *Input) []Result {
	return v.validate(in)
}

func regexCheck(fieldPath, value, pattern, ruleName string, re *regexp.Regexp) Result {
	value = strings.TrimSpace(value)
	if value == "" {
		return Result{
			Passed: true, FieldPath: fieldPath,
			ExpectedValue: pattern, ActualValue: value,
			Message: fmt.Sprintf("%s: field is empty, skipping format check", ruleName),
		}
	}
	passed := re.MatchString(strings.ToUpper(value))
	msg := fmt.Sprintf("%s: %s matches expected format", ruleName, fieldPath)
	if !passed {
		msg = fmt.Sprintf("%s: %s does not match expected format", ruleName, fieldPath)
	}
	return Result{
		Passed: passed, FieldPath: fieldPath,
		ExpectedValue: pattern, ActualValue: value, Message: msg,
	}
}

func dateCheck(fieldPath, value, ruleName string) Result {
	if strings.TrimSpace(value) == "" {
		return Result{
			Passed: true, FieldPath: fieldPath,
			ExpectedValue: "parseable date", ActualValue: value,
			Message: fmt.Sprintf("%s: field is empty, skipping date check", ruleName),
		}
	}
	_, err := ParseDate(value)
	passed := err == nil
	msg := fmt.Sprintf("%s: %s is a valid date", ruleName, fieldPath)
	if !passed {
		msg = fmt.Sprintf("%s: %s is not a parseable date", ruleName, fieldPath)
	}
	return Result{
		Passed: passed, FieldPath: fieldPath,
		ExpectedValue: "parseable date", ActualValue: value, Message: msg,
	}
}

var dateFormats = []string{
	"2006-01-02",
	"02-01-2006",
	"02/01/2006",
	"2006/01/02",
	"02 Jan 2006",
	"2 Jan 2006",
	"Jan 02, 2006",
	"January 02, 2006",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05.000Z",
}

// ParseDate tries the date layouts documents commonly arrive in.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, f := range dateFormats {
		if t, err := time.Parse(f, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable date: %s", s)
}

// FormatValidators returns all format validators.
func FormatValidators() []*formatValidator {
	return []*formatValidator{
		{
			ruleKey: "fmt.business.gstin", ruleName: "Format: Business GSTIN",
			severity: domain.ValidationSeverityWarning,
			validate: func(in *Input) []Result {
				return []Result{regexCheck("business.gstin", in.BusinessGSTIN, "15-char GSTIN format", "Format: Business GSTIN", gstinPattern)}
			},
		},
		{
			ruleKey: "fmt.party.gstin", ruleName: "Format: Party GSTIN",
			severity: domain.ValidationSeverityWarning,
			validate: func(in *Input) []Result {
				return []Result{regexCheck("party.gstin", in.PartyGSTIN, "15-char GSTIN format", "Format: Party GSTIN", gstinPattern)}
			},
		},
		{
			ruleKey: "fmt.document.date", ruleName: "Format: Document Date",
			severity: domain.ValidationSeverityWarning,
			validate: func(in *Input) []Result {
				return []Result{dateCheck("date", in.Date, "Format: Document Date")}
			},
		},
		{
			ruleKey: "fmt.document.due_date", ruleName: "Format: Due Date",
			severity: domain.ValidationSeverityWarning,
			validate: func(in *Input) []Result {
				return []Result{dateCheck("due_date", in.DueDate, "Format: Due Date")}
			},
		},
		{
			ruleKey: "fmt.line_item.hsn", ruleName: "Format: HSN/SAC Code",
			severity: domain.ValidationSeverityWarning,
			validate: func(in *Input) []Result {
				results := make([]Result, 0, len(in.Items))
				for i := range in.Items {
					fp := fmt.Sprintf("items[%d].hsn_code", i)
					results = append(results, regexCheck(fp, in.Items[i].HSNCode, "4-8 digit HSN/SAC code", "Format: HSN/SAC Code", hsnPattern))
				}
				return results
			},
		},
	}
}
