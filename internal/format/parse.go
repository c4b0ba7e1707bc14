// Package format converts between the decorated text a user types into a
// media plan form ("12%", "$1,250.00") and the plain numbers the planner
// works with.
package format

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// leadingNumber matches the numeric prefix a lenient float parse accepts.
// Trailing garbage after the prefix is ignored ("12abc" parses as 12).
var leadingNumber = regexp.MustCompile(`^[+-]?(?:\d+(?:\.\d*)?|\.\d+)(?:[eE][+-]?\d+)?`)

// NormalizePercentage turns percentage text into a fraction: "12.5%" -> 0.125.
// Empty or unparseable text yields 0.
func NormalizePercentage(text string) float64 {
	v, ok := parseLenient(StripPercentage(text))
	if !ok {
		return 0
	}
	return finite(v / 100)
}

// NormalizeCurrency turns currency text into an amount: "$1,000.50" -> 1000.5.
// Empty or unparseable text yields 0.
func NormalizeCurrency(text string) float64 {
	v, ok := parseLenient(StripCurrency(text))
	if !ok {
		return 0
	}
	return v
}

// StripPercentage removes percentage decoration, leaving the number text.
func StripPercentage(text string) string {
	return strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(text), "%"))
}

// StripCurrency removes a leading dollar sign and thousands separators.
func StripCurrency(text string) string {
	s := strings.TrimSpace(text)
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	return strings.TrimSpace(s)
}

func parseLenient(s string) (float64, bool) {
	m := leadingNumber.FindString(s)
	if m == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// parseStrict accepts only text that is a number in its entirety.
func parseStrict(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" || leadingNumber.FindString(s) != s {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
