package validator

import (
	"billdesk/internal/domain"
	"billdesk/internal/taxengine"
)

// Input is everything the rules look at for one document.
type Input struct {
	Raw           []taxengine.RawItem
	Items         []taxengine.NormalizedLineItem
	Summary       taxengine.TaxSummary
	PartyGSTIN    string
	BusinessGSTIN string
	Date          string
	DueDate       string
}

// Result is the outcome of one rule against one field.
type Result struct {
	RuleKey       string                    `json:"rule_key"`
	RuleName      string                    `json:"rule_name"`
	Severity      domain.ValidationSeverity `json:"severity"`
	Passed        bool                      `json:"passed"`
	FieldPath     string                    `json:"field_path"`
	ExpectedValue string                    `json:"expected_value"`
	ActualValue   string                    `json:"actual_value"`
	Message       string                    `json:"message"`
}
