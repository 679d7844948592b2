// Package format renders amounts for display and coerces raw user input
// into the non-negative values the pricing engine expects.
package format

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Missing is shown for values that cannot be displayed
const Missing = "—"

// MaxFractionDigits is the display precision for amounts
const MaxFractionDigits = 2

var printer = message.NewPrinter(language.English)

// Float formats f with thousands separators and at most two decimals
func Float(f float64) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Missing
	}
	return printer.Sprint(number.Decimal(f, number.MaxFractionDigits(MaxFractionDigits)))
}

// Number formats d with thousands separators and at most two decimals
func Number(d decimal.Decimal) string {
	return Float(d.Round(MaxFractionDigits).InexactFloat64())
}

// Money prefixes the formatted amount with the currency symbol
func Money(symbol string, d decimal.Decimal) string {
	if d.IsNegative() {
		return "-" + symbol + Number(d.Neg())
	}
	return symbol + Number(d)
}

// SignedMoney is Money with an explicit plus sign for positive amounts
func SignedMoney(symbol string, d decimal.Decimal) string {
	if d.IsPositive() {
		return "+" + Money(symbol, d)
	}
	return Money(symbol, d)
}

// Rounded formats d rounded to a whole number, as used in summary tables
func Rounded(symbol string, d decimal.Decimal) string {
	return Money(symbol, d.Round(0))
}

// ParseAmount converts raw input into a non-negative amount.
// Empty, malformed and negative input yields zero.
func ParseAmount(raw string) decimal.Decimal {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(raw)
	if err != nil || d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// ParseCount converts raw input into a non-negative whole count.
// Fractions are truncated; anything unusable yields zero.
func ParseCount(raw string) int64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return ClampCount(n)
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return 0
	}
	return ClampCount(d.IntPart())
}

// ClampCount maps negative counts to zero
func ClampCount(n int64) int64 {
	if n < 0 {
		return 0
	}
	return n
}

// ClampAmount maps negative amounts to zero
func ClampAmount(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
