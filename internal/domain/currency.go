// Package domain contains core business types for the pricing site.
//
// This file defines the supported display currencies and their symbols.
package domain

import (
	"strings"

	"golang.org/x/text/currency"
)

// =============================================================================
// Currency Code
// =============================================================================

// CurrencyCode is an ISO 4217 code the pricing page can display.
type CurrencyCode string

const (
	CurrencyJPY CurrencyCode = "JPY"
	CurrencyUSD CurrencyCode = "USD"
	CurrencyCNY CurrencyCode = "CNY"
	CurrencyTWD CurrencyCode = "TWD"
)

// DefaultCurrency is selected until the visitor picks another one.
const DefaultCurrency = CurrencyJPY

// String returns the string representation of the code.
func (c CurrencyCode) String() string {
	return string(c)
}

// IsValid returns true if the code is one of the four supported currencies.
func (c CurrencyCode) IsValid() bool {
	switch c {
	case CurrencyJPY, CurrencyUSD, CurrencyCNY, CurrencyTWD:
		return true
	}
	return false
}

// Info returns the display metadata for the currency.
// The zero value is returned for unsupported codes.
func (c CurrencyCode) Info() CurrencyInfo {
	return currencies[c]
}

// =============================================================================
// Currency Info
// =============================================================================

// CurrencyInfo describes how a currency is presented in the selector.
type CurrencyInfo struct {
	Code        CurrencyCode
	Symbol      string
	DisplayName string
}

// Label is the text shown for the currency in the selector, e.g. "¥ JPY - 日本円".
func (i CurrencyInfo) Label() string {
	return i.Symbol + " " + string(i.Code) + " - " + i.DisplayName
}

// CNY shares the yen sign with JPY; the selector label tells them apart.
var currencies = map[CurrencyCode]CurrencyInfo{
	CurrencyJPY: {Code: CurrencyJPY, Symbol: "¥", DisplayName: "日本円"},
	CurrencyUSD: {Code: CurrencyUSD, Symbol: "$", DisplayName: "米ドル"},
	CurrencyCNY: {Code: CurrencyCNY, Symbol: "¥", DisplayName: "人民元"},
	CurrencyTWD: {Code: CurrencyTWD, Symbol: "NT$", DisplayName: "台湾ドル"},
}

// AllCurrencies returns the supported currencies in selector order.
func AllCurrencies() []CurrencyCode {
	return []CurrencyCode{CurrencyJPY, CurrencyUSD, CurrencyCNY, CurrencyTWD}
}

// ParseCurrency converts user input into a supported CurrencyCode.
// Input is matched case-insensitively against ISO 4217; well-formed codes
// that the page does not offer are rejected as well.
func ParseCurrency(s string) (CurrencyCode, error) {
	const op = "currency.parse"

	unit, err := currency.ParseISO(strings.TrimSpace(s))
	if err != nil {
		return "", Invalid(op, "unknown currency code")
	}

	code := CurrencyCode(unit.String())
	if !code.IsValid() {
		return "", Invalid(op, "currency "+unit.String()+" is not offered")
	}
	return code, nil
}
