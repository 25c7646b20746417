package assess

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Claim extraction pulls structured numeric assertions out of free text
// so the consistency assessor can cross-check them against metadata.

var (
	// pricePattern matches a currency-prefixed amount with optional
	// thousands separators and up to two decimals, e.g. "$1,299.99".
	pricePattern = regexp.MustCompile(`[$€£¥]\s?(\d{1,3}(?:,\d{3})*(?:\.\d{1,2})?|\d+(?:\.\d{1,2})?)`)

	// speedPattern matches read/write speed claims like "5000MB/s".
	speedPattern = regexp.MustCompile(`(?i)(\d{3,})\s?MB/s`)

	// hoursPattern matches duration claims like "20 hours" or "20小时".
	hoursPattern = regexp.MustCompile(`(\d{1,2})\s?(?:小时|hours)`)
)

// extractPrice returns the first currency-prefixed amount found in text.
// The raw capture is returned alongside the parsed value so callers can
// label unparsable matches without inventing a number.
func extractPrice(text string) (value decimal.Decimal, raw string, found bool, err error) {
	m := pricePattern.FindStringSubmatch(text)
	if m == nil {
		return decimal.Decimal{}, "", false, nil
	}
	raw = m[1]
	value, err = decimal.NewFromString(strings.ReplaceAll(raw, ",", ""))
	return value, raw, true, err
}

// extractSpeed returns the first MB/s speed claim found in text.
func extractSpeed(text string) (speed int, found bool, err error) {
	m := speedPattern.FindStringSubmatch(text)
	if m == nil {
		return 0, false, nil
	}
	speed, err = strconv.Atoi(m[1])
	return speed, true, err
}

// extractHours returns every duration claim found in text.
func extractHours(text string) []int {
	var hours []int
	for _, m := range hoursPattern.FindAllStringSubmatch(text, -1) {
		h, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		hours = append(hours, h)
	}
	return hours
}

// specNumber coerces a spec value to float64. YAML decoding produces
// int or float64 depending on the literal.
func specNumber(specs map[string]any, key string) (float64, bool) {
	v, ok := specs[key]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

// specString coerces a spec value to a string.
func specString(specs map[string]any, key string) (string, bool) {
	v, ok := specs[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}
