package format

import (
	"math"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.English)

// FormatPercentage decorates percentage text on blur: "12.5" -> "12.50%".
// The input is the number as shown in the field (12.5, not 0.125). Empty or
// unparseable text yields "". Already decorated text formats to itself.
func FormatPercentage(text string) string {
	v, ok := parseStrict(StripPercentage(text))
	if !ok {
		return ""
	}
	return Fixed2(v) + "%"
}

// FormatCurrency decorates currency text on blur: "1000" -> "$1,000.00".
// Empty or unparseable text yields "". Already decorated text formats to itself.
func FormatCurrency(text string) string {
	v, ok := parseStrict(StripCurrency(text))
	if !ok {
		return ""
	}
	return Amount(v)
}

// Amount renders a currency amount with two decimals and thousands separators.
func Amount(v float64) string {
	return "$" + printer.Sprintf("%.2f", finite(v))
}

// Percent renders a fraction as a percentage with two decimals: 0.05 -> "5.00%".
func Percent(fraction float64) string {
	return Fixed2(fraction*100) + "%"
}

// Fixed2 renders v with exactly two decimals and no grouping.
func Fixed2(v float64) string {
	return strconv.FormatFloat(finite(v), 'f', 2, 64)
}

// Grouped renders v the way a locale-aware number display does: thousands
// separators and at most three fraction digits.
func Grouped(v float64) string {
	return printer.Sprint(number.Decimal(finite(v), number.MaxFractionDigits(3)))
}

// Rounded rounds half up and renders the integer with thousands separators.
func Rounded(v float64) string {
	return Grouped(math.Floor(finite(v) + 0.5))
}
