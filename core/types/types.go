// Package types defines core domain types shared across all layers.
// This package contains NO business logic - only type definitions.
package types

import (
	"sort"
	"strings"
)

// Currency represents an ISO currency code. Amounts are never converted;
// the currency only selects the display symbol.
type Currency string

const (
	CurrencyEUR Currency = "EUR"
	CurrencyUSD Currency = "USD"
	CurrencyGBP Currency = "GBP"
)

// DefaultCurrency is used when nothing else is configured
const DefaultCurrency = CurrencyEUR

// DefaultSymbol is shown for codes missing from the symbol table
const DefaultSymbol = "€"

// symbols covers the common capacity pricing currencies
var symbols = map[Currency]string{
	"EUR": "€",
	"USD": "$",
	"GBP": "£",
	"AUD": "A$",
	"CAD": "C$",
	"CHF": "CHF",
	"DKK": "kr",
	"SEK": "kr",
	"NOK": "kr",
	"JPY": "¥",
	"INR": "₹",
	"SGD": "S$",
	"NZD": "NZ$",
	"BRL": "R$",
	"MXN": "MX$",
	"ZAR": "R",
	"AED": "د.إ",
	"SAR": "﷼",
	"TRY": "₺",
	"PLN": "zł",
	"CZK": "Kč",
	"HUF": "Ft",
	"ILS": "₪",
}

// ParseCurrency normalizes a raw code: surrounding space is dropped and the
// code is upper-cased. Unknown codes are kept as typed.
func ParseCurrency(raw string) Currency {
	return Currency(strings.ToUpper(strings.TrimSpace(raw)))
}

// String returns the string representation
func (c Currency) String() string {
	return string(c)
}

// Symbol returns the display symbol, falling back to DefaultSymbol
func (c Currency) Symbol() string {
	if s, ok := symbols[c]; ok {
		return s
	}
	return DefaultSymbol
}

// IsKnown reports whether the code has a dedicated symbol
func (c Currency) IsKnown() bool {
	_, ok := symbols[c]
	return ok
}

// Currencies returns all known codes in alphabetical order
func Currencies() []Currency {
	out := make([]Currency, 0, len(symbols))
	for c := range symbols {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
