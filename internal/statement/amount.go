package statement

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	nonNumeric     = regexp.MustCompile(`[^\d.,-]`)
	leadingDecimal = regexp.MustCompile(`^-?(\d+(\.\d*)?|\.\d+)`)
)

// cleanAmount drops currency symbols, spaces and letters, then turns the
// first comma into a decimal point.
func cleanAmount(s string) string {
	s = nonNumeric.ReplaceAllString(s, "")
	return strings.Replace(s, ",", ".", 1)
}

// parseAmount reads the longest leading decimal number of a cleaned value.
// Anything unreadable is zero.
func parseAmount(s string) decimal.Decimal {
	m := leadingDecimal.FindString(cleanAmount(s))
	if m == "" {
		return decimal.Zero
	}
	m = strings.TrimSuffix(m, ".")
	d, err := decimal.NewFromString(m)
	if err != nil {
		return decimal.Zero
	}
	return d
}
