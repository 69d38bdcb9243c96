package taxengine

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Amount is a leniently decoded decimal field. Missing, null or unparseable
// input decodes to an invalid Amount whose value is zero.
type Amount struct {
	Value decimal.Decimal
	Valid bool
}

// NewAmount returns a valid Amount for v.
func NewAmount(v float64) Amount {
	return Amount{Value: decimal.NewFromFloat(v), Valid: true}
}

// AmountFromDecimal returns a valid Amount for d.
func AmountFromDecimal(d decimal.Decimal) Amount {
	return Amount{Value: d, Valid: true}
}

// ParseAmount parses s, returning an invalid Amount when s is not a finite decimal.
func ParseAmount(s string) Amount {
	s = strings.TrimSpace(s)
	if s == "" {
		return Amount{}
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}
	}
	return Amount{Value: d, Valid: true}
}

// Decimal returns the value, or zero when the amount was absent.
func (a Amount) Decimal() decimal.Decimal {
	if !a.Valid {
		return decimal.Zero
	}
	return a.Value
}

// UnmarshalJSON accepts numbers, numeric strings and null. Anything else
// decodes to an invalid Amount instead of failing the whole document.
func (a *Amount) UnmarshalJSON(data []byte) error {
	*a = Amount{}
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return nil
		}
		*a = ParseAmount(s)
		return nil
	}
	*a = ParseAmount(string(data))
	return nil
}

// MarshalJSON writes the value as a JSON number, or null when absent.
func (a Amount) MarshalJSON() ([]byte, error) {
	if !a.Valid {
		return []byte("null"), nil
	}
	return []byte(a.Value.String()), nil
}

// Flag is a leniently decoded boolean: true, "true", "1" and 1 are true.
type Flag bool

// UnmarshalJSON accepts booleans, numbers and strings. Anything other than the
// true forms, null included, decodes to false.
func (f *Flag) UnmarshalJSON(data []byte) error {
	s := strings.ToLower(strings.Trim(strings.TrimSpace(string(data)), `"`))
	switch s {
	case "true", "1":
		*f = true
	default:
		*f = false
	}
	return nil
}
