package validator

import (
	"context"

	"billdesk/internal/domain"
)

// Validator is the interface for a single built-in consistency rule.
type Validator interface {
	Validate(ctx context.Context, in *Input) []Result
	RuleKey() string
	RuleName() string
	Severity() domain.ValidationSeverity
}
