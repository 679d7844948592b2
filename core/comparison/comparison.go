// Package comparison ranks priced capacity tiers, marks the cheapest one
// and builds the rows and recommendation shown to the user.
package comparison

import (
	"github.com/shopspring/decimal"

	"capacity-cost/core/types"
)

// Viewer policy descriptions
const (
	PolicyFreeViewers     = "Free viewers"
	PolicyLicensedViewers = "Viewers & builders require license"
)

// PolicyText describes the viewer policy of a priced tier
func PolicyText(c types.ComputedTierCost) string {
	if c.FreeViewers() {
		return PolicyFreeViewers
	}
	return PolicyLicensedViewers
}

// SelectCheapest returns the entry with the lowest total. The first entry
// wins ties. The bool is false for an empty input.
func SelectCheapest(costs []types.ComputedTierCost) (types.ComputedTierCost, bool) {
	i := cheapestIndex(costs)
	if i < 0 {
		return types.ComputedTierCost{}, false
	}
	return costs[i], true
}

// cheapestIndex returns the leftmost minimum, or -1 when costs is empty
func cheapestIndex(costs []types.ComputedTierCost) int {
	if len(costs) == 0 {
		return -1
	}
	best := 0
	for i := 1; i < len(costs); i++ {
		if costs[i].TotalMonthlyCost.LessThan(costs[best].TotalMonthlyCost) {
			best = i
		}
	}
	return best
}

// Row is one line of the comparison table
type Row struct {
	TierID             types.TierID    `json:"tier_id"`
	Label              string          `json:"label"`
	Policy             string          `json:"policy"`
	CapacityCost       decimal.Decimal `json:"capacity_cost"`
	BuilderLicenseCost decimal.Decimal `json:"builder_license_cost"`
	ViewerLicenseCost  decimal.Decimal `json:"viewer_license_cost"`
	TotalMonthlyCost   decimal.Decimal `json:"total_monthly_cost"`

	// DeltaVsBaseline is total minus the all-license baseline; negative is cheaper
	DeltaVsBaseline decimal.Decimal `json:"delta_vs_baseline"`

	// Best marks the cheapest row
	Best bool `json:"best"`
}

// BuildComparisonRows produces one row per priced tier. The baseline only
// feeds the delta column; it never gets a row of its own.
func BuildComparisonRows(costs []types.ComputedTierCost, baseline types.BaselineCost) []Row {
	rows := make([]Row, 0, len(costs))
	best := cheapestIndex(costs)
	for i, c := range costs {
		rows = append(rows, Row{
			TierID:             c.TierID,
			Label:              c.Label,
			Policy:             PolicyText(c),
			CapacityCost:       c.MonthlyCost,
			BuilderLicenseCost: c.BuilderLicenseCost,
			ViewerLicenseCost:  c.ViewerLicenseCost,
			TotalMonthlyCost:   c.TotalMonthlyCost,
			DeltaVsBaseline:    c.TotalMonthlyCost.Sub(baseline.TotalMonthlyCost),
			Best:               i == best,
		})
	}
	return rows
}
