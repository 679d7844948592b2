package pricing

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"capacity-cost/core/format"
	"capacity-cost/core/types"
)

// DefaultMaxTiers is the number of capacities compared side by side
const DefaultMaxTiers = 3

// Config holds the adjustable engine parameters
type Config struct {
	// MaxTiers caps the number of tiers priced per call
	MaxTiers int `json:"max_tiers"`

	// Policy is the viewer licensing policy
	Policy Policy `json:"policy"`
}

// DefaultConfig returns 3 tiers with the 64/32 viewer policy
func DefaultConfig() Config {
	return Config{
		MaxTiers: DefaultMaxTiers,
		Policy:   DefaultPolicy(),
	}
}

// Engine prices scenarios. It holds only configuration and is safe to share.
type Engine struct {
	cfg Config
}

// NewEngine creates an engine. A non-positive MaxTiers falls back to the default.
func NewEngine(cfg Config) *Engine {
	if cfg.MaxTiers <= 0 {
		cfg.MaxTiers = DefaultMaxTiers
	}
	return &Engine{cfg: cfg}
}

// MaxTiers returns the tier cap
func (e *Engine) MaxTiers() int {
	return e.cfg.MaxTiers
}

// Policy returns the viewer policy
func (e *Engine) Policy() Policy {
	return e.cfg.Policy
}

// ComputeBaseline prices licensing every viewer and builder individually
func (e *Engine) ComputeBaseline(s types.Scenario) types.BaselineCost {
	users := s.Users()
	total := decimal.NewFromInt(users).Mul(s.LicenseCost)
	return types.BaselineCost{
		Users:            users,
		UnitCost:         s.LicenseCost,
		TotalMonthlyCost: total,
		Detail: fmt.Sprintf("%d × per-user license @ %s",
			users, format.Money(s.Symbol(), s.LicenseCost)),
	}
}

// ComputeTierCosts prices each tier under the scenario, in input order.
// Tiers past MaxTiers are ignored.
func (e *Engine) ComputeTierCosts(s types.Scenario, tiers []types.CapacityTier) []types.ComputedTierCost {
	if len(tiers) > e.cfg.MaxTiers {
		tiers = tiers[:e.cfg.MaxTiers]
	}

	builders := decimal.NewFromInt(s.Builders).Mul(s.LicenseCost)
	viewers := decimal.NewFromInt(s.Viewers)

	out := make([]types.ComputedTierCost, 0, len(tiers))
	for _, tier := range tiers {
		unit := e.cfg.Policy.ViewerUnitCost(tier.SKU, s.LicenseCost)
		viewerCost := viewers.Mul(unit)

		label := strings.TrimSpace(tier.SKU)
		if label == "" {
			label = types.UnnamedLabel
		}

		out = append(out, types.ComputedTierCost{
			TierID:             tier.ID,
			Label:              label,
			MonthlyCost:        tier.MonthlyCost,
			ViewerUnitCost:     unit,
			BuilderLicenseCost: builders,
			ViewerLicenseCost:  viewerCost,
			TotalMonthlyCost:   tier.MonthlyCost.Add(builders).Add(viewerCost),
		})
	}
	return out
}
