package validator

import (
	"context"

	"billdesk/internal/domain"
)

// Engine runs every registered rule against a document.
type Engine struct {
	registry *Registry
}

// NewEngine creates a new validation engine.
func NewEngine(registry *Registry) *Engine {
	return &Engine{registry: registry}
}

// Run returns the results of all rules, stamped with the rule's key, name and severity.
func (e *Engine) Run(ctx context.Context, in *Input) []Result {
	var all []Result
	for _, v := range e.registry.All() {
		for _, r := range v.Validate(ctx, in) {
			r.RuleKey = v.RuleKey()
			r.RuleName = v.RuleName()
			r.Severity = v.Severity()
			all = append(all, r)
		}
	}
	return all
}

// Failures filters results down to the ones that did not pass.
func Failures(results []Result) []Result {
	out := make([]Result, 0)
	for i := range results {
		if !results[i].Passed {
			out = append(out, results[i])
		}
	}
	return out
}

// HasErrors reports whether any failed result carries error severity.
func HasErrors(results []Result) bool {
	for i := range results {
		if !results[i].Passed && results[i].Severity == domain.ValidationSeverityError {
			return true
		}
	}
	return false
}
