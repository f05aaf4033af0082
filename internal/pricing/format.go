// Package pricing is the presentation model of the pricing page: it selects
// plan lists, derives per-hour rates and formats amounts for display.
// Everything here is a pure function of the catalog and the view state.
package pricing

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/DukeRupert/felo-pricing/internal/domain"
)

// Printers are safe for concurrent use.
var (
	jaPrinter = message.NewPrinter(language.Japanese)
	enPrinter = message.NewPrinter(language.English)
)

// FormatAmount renders the grouped number without any currency symbol.
// JPY uses ja-JP grouping with no decimals. Other currencies use generic
// grouping and keep stored fractions as-is (8.2 stays "8.2").
func FormatAmount(amount float64, code domain.CurrencyCode) string {
	if code == domain.CurrencyJPY {
		return jaPrinter.Sprint(number.Decimal(amount, number.MaxFractionDigits(0)))
	}
	return enPrinter.Sprint(number.Decimal(amount))
}

// FormatPrice renders an amount for display in the given currency.
//
//	FormatPrice(1234567, JPY) == "1,234,567"
//	FormatPrice(1234567, USD) == "$1,234,567"
//
// Yen amounts carry no symbol because the page prints the "JPY/月" unit next
// to them; other currencies are prefixed with their symbol.
func FormatPrice(amount float64, code domain.CurrencyCode) string {
	s := FormatAmount(amount, code)
	if code == domain.CurrencyJPY {
		return s
	}
	return code.Info().Symbol + s
}

// FormatCount groups an integer count the Japanese way, e.g. 20000 -> "20,000".
func FormatCount(n int) string {
	return jaPrinter.Sprint(number.Decimal(n))
}

// UnitLabel is the per-month unit printed after a price, e.g. "USD/月".
func UnitLabel(code domain.CurrencyCode) string {
	return string(code) + "/月"
}

// PerHourRate divides a plan's monthly price by its included hours.
// The result is derived on every call and never stored.
// includedHours must be positive; descriptive plans have no rate.
func PerHourRate(totalPrice float64, includedHours int) float64 {
	return totalPrice / float64(includedHours)
}

// RoundedPerHour is PerHourRate rounded to the nearest whole unit, for display.
func RoundedPerHour(totalPrice float64, includedHours int) float64 {
	return math.Round(PerHourRate(totalPrice, includedHours))
}
