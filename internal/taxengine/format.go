package taxengine

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

const zeroMoney = "0.00"

// FormatCurrency inserts a comma every three digits left of the decimal point.
// It performs grouping only: the fraction is kept exactly as given, so callers
// fix precision first. Empty, unparseable, NaN or infinite input yields "0.00".
func FormatCurrency(amount string) string {
	s := strings.TrimSpace(amount)
	if s == "" {
		return zeroMoney
	}
	d, err := decimal.NewFromString(strings.TrimPrefix(s, "+"))
	if err != nil {
		return zeroMoney
	}
	if strings.ContainsAny(s, "eE") {
		s = d.String()
	}
	return groupDigits(s)
}

// FormatFloat is FormatCurrency for float input.
func FormatFloat(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return zeroMoney
	}
	return groupDigits(strconv.FormatFloat(v, 'f', -1, 64))
}

// FormatMoney fixes d to two decimals and groups it.
func FormatMoney(d decimal.Decimal) string {
	return groupDigits(d.StringFixed(2))
}

// FormatRate renders a percentage or rate with two decimals, ungrouped.
func FormatRate(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func groupDigits(s string) string {
	sign := ""
	switch {
	case strings.HasPrefix(s, "-"):
		sign, s = "-", s[1:]
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	}

	intPart, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, frac = s[:i], s[i:]
	}
	if intPart == "" {
		intPart = "0"
	}

	n := len(intPart)
	if n <= 3 {
		return sign + intPart + frac
	}

	var b strings.Builder
	b.Grow(n + n/3 + len(frac) + 1)
	b.WriteString(sign)
	lead := n % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
	}
	for i := lead; i < n; i += 3 {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(intPart[i : i+3])
	}
	b.WriteString(frac)
	return b.String()
}
