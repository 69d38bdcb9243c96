package taxengine

import (
	"strings"

	"github.com/shopspring/decimal"
)

const (
	crore    = 10000000
	lakh     = 100000
	thousand = 1000
)

var ones = []string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
}

var teens = []string{
	"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen",
	"Sixteen", "Seventeen", "Eighteen", "Nineteen",
}

var tens = []string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
}

var croreUnit = decimal.NewFromInt(crore)

// AmountInWords converts the rupee part of amount to Indian-system words,
// e.g. 100000 -> "One Lakh Rupees Only". Zero yields "Zero Rupees Only".
func AmountInWords(amount decimal.Decimal) string {
	rupees := wholeRupees(amount)
	if rupees.IsZero() {
		return "Zero Rupees Only"
	}
	return decimalToWords(rupees) + " Rupees Only"
}

// AmountInWordsWithPaise is the receipt variant: rupees and paise are
// converted separately, e.g. 10.50 -> "Ten Rupees and Fifty Paisa Only".
// A zero amount yields "Zero".
func AmountInWordsWithPaise(amount decimal.Decimal) string {
	rupees := wholeRupees(amount)
	paise := amount.Sub(rupees).Mul(hundred).Round(0).IntPart()
	if amount.IsNegative() {
		paise = 0
	}
	if paise >= 100 {
		rupees = rupees.Add(decimal.NewFromInt(1))
		paise -= 100
	}
	if rupees.IsZero() && paise == 0 {
		return "Zero"
	}

	rupeeWords := decimalToWords(rupees)
	if rupeeWords == "" {
		rupeeWords = "Zero"
	}
	words := rupeeWords + " Rupees"
	if paise > 0 {
		words += " and " + IntegerToWords(paise) + " Paisa"
	}
	return words + " Only"
}

// IntegerToWords converts n using crore/lakh/thousand grouping. It returns
// "" for zero and negative input.
func IntegerToWords(n int64) string {
	if n <= 0 {
		return ""
	}
	return decimalToWords(decimal.NewFromInt(n))
}

// decimalToWords converts a non-negative whole number of any size. Crore
// counts above 999 recurse, so 10^20 reads "Ten Lakh Crore Crore".
func decimalToWords(d decimal.Decimal) string {
	if !d.IsPositive() {
		return ""
	}

	var b strings.Builder
	c, rest := d.QuoRem(croreUnit, 0)
	if c.IsPositive() {
		b.WriteString(decimalToWords(c))
		b.WriteString(" Crore ")
	}
	n := rest.IntPart()
	if l := n / lakh; l > 0 {
		b.WriteString(threeDigits(l) + " Lakh ")
		n %= lakh
	}
	if t := n / thousand; t > 0 {
		b.WriteString(threeDigits(t) + " Thousand ")
		n %= thousand
	}
	if n > 0 {
		b.WriteString(threeDigits(n))
	}
	return strings.TrimSpace(b.String())
}

// threeDigits converts 1..999.
func threeDigits(n int64) string {
	switch {
	case n <= 0:
		return ""
	case n < 10:
		return ones[n]
	case n < 20:
		return teens[n-10]
	case n < 100:
		return strings.TrimSpace(tens[n/10] + " " + ones[n%10])
	default:
		rest := threeDigits(n % 100)
		if rest == "" {
			return ones[n/100] + " Hundred"
		}
		return ones[n/100] + " Hundred " + rest
	}
}

func wholeRupees(amount decimal.Decimal) decimal.Decimal {
	if amount.IsNegative() {
		return decimal.Zero
	}
	return amount.Floor()
}
