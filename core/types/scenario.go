// Package types - Scenario and capacity tier inputs
package types

import "github.com/shopspring/decimal"

// TierID identifies a capacity tier independently of its position in the
// sequence. IDs are assigned once and never reused.
type TierID string

// String returns the string representation
func (id TierID) String() string {
	return string(id)
}

// Scenario holds the role counts and license price being evaluated.
// Counts and cost are expected to be non-negative; callers coerce raw input
// before building a Scenario.
type Scenario struct {
	// Viewers is the number of read-only users
	Viewers int64 `json:"viewers" yaml:"viewers"`

	// Builders is the number of content-creating users
	Builders int64 `json:"builders" yaml:"builders"`

	// LicenseCost is the monthly cost of one per-user license
	LicenseCost decimal.Decimal `json:"license_cost" yaml:"license_cost"`

	// Currency is display only
	Currency Currency `json:"currency" yaml:"currency"`

	// CurrencySymbol is display only
	CurrencySymbol string `json:"currency_symbol,omitempty" yaml:"currency_symbol,omitempty"`

	// Region is display only
	Region string `json:"region,omitempty" yaml:"region,omitempty"`
}

// Users returns the total number of licensed users in the baseline
func (s Scenario) Users() int64 {
	return s.Viewers + s.Builders
}

// Symbol returns the explicit symbol or the currency's default one
func (s Scenario) Symbol() string {
	if s.CurrencySymbol != "" {
		return s.CurrencySymbol
	}
	return s.Currency.Symbol()
}

// CapacityTier is one purchasable capacity in the comparison
type CapacityTier struct {
	// ID is stable across edits
	ID TierID `json:"id" yaml:"id"`

	// SKU is the tier name, e.g. "F64"
	SKU string `json:"sku" yaml:"sku"`

	// MonthlyCost is the flat monthly capacity price
	MonthlyCost decimal.Decimal `json:"monthly_cost" yaml:"monthly_cost"`
}
