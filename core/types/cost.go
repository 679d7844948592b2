// Package types - Derived cost types
package types

import "github.com/shopspring/decimal"

// UnnamedLabel is shown for tiers without a SKU name
const UnnamedLabel = "(unnamed)"

// ComputedTierCost is the monthly cost of one capacity tier under a scenario.
// It is recomputed from inputs on every change and never stored.
type ComputedTierCost struct {
	// TierID references the source CapacityTier
	TierID TierID `json:"tier_id"`

	// Label is the tier's display name
	Label string `json:"label"`

	// MonthlyCost is the capacity price
	MonthlyCost decimal.Decimal `json:"monthly_cost"`

	// ViewerUnitCost is 0 when viewers are free on this tier, else the license cost
	ViewerUnitCost decimal.Decimal `json:"viewer_unit_cost"`

	// BuilderLicenseCost = builders * license cost
	BuilderLicenseCost decimal.Decimal `json:"builder_license_cost"`

	// ViewerLicenseCost = viewers * viewer unit cost
	ViewerLicenseCost decimal.Decimal `json:"viewer_license_cost"`

	// TotalMonthlyCost = capacity + builder licenses + viewer licenses
	TotalMonthlyCost decimal.Decimal `json:"total_monthly_cost"`
}

// FreeViewers reports whether viewer licenses are waived on this tier
func (c ComputedTierCost) FreeViewers() bool {
	return c.ViewerUnitCost.IsZero()
}

// BaselineCost is the cost of licensing every user individually
type BaselineCost struct {
	// Users is viewers + builders
	Users int64 `json:"users"`

	// UnitCost is the per-user license cost
	UnitCost decimal.Decimal `json:"unit_cost"`

	// TotalMonthlyCost = users * unit cost
	TotalMonthlyCost decimal.Decimal `json:"total_monthly_cost"`

	// Detail is a human-readable breakdown
	Detail string `json:"detail"`
}
