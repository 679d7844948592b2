package comparison

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"capacity-cost/core/format"
	"capacity-cost/core/pricing"
	"capacity-cost/core/types"
	"capacity-cost/internal/errors"
)

// Period is the span a recommendation amount covers
type Period string

const (
	PeriodMonthly Period = "monthly"
	PeriodYearly  Period = "yearly"
)

// DefaultPeriod annualizes the recommended total
const DefaultPeriod = PeriodYearly

// EmptyRecommendationText is shown when no capacities were entered
const EmptyRecommendationText = "Add capacities to see a recommendation"

var monthsPerYear = decimal.NewFromInt(12)

// ParsePeriod validates a period name
func ParsePeriod(s string) (Period, error) {
	switch Period(strings.ToLower(strings.TrimSpace(s))) {
	case PeriodMonthly, "month":
		return PeriodMonthly, nil
	case PeriodYearly, "year", "annual":
		return PeriodYearly, nil
	}
	return "", errors.Newf(errors.TypeInput, "unknown period %q (want monthly or yearly)", s)
}

// Suffix is the unit appended to recommendation amounts
func (p Period) Suffix() string {
	if p == PeriodMonthly {
		return "month"
	}
	return "year"
}

// Scale converts a monthly amount to the period
func (p Period) Scale(monthly decimal.Decimal) decimal.Decimal {
	if p == PeriodMonthly {
		return monthly
	}
	return monthly.Mul(monthsPerYear)
}

// Recommendation is the headline result. Empty is set when there was
// nothing to recommend; the other fields are then zero and must not be shown.
type Recommendation struct {
	Empty        bool            `json:"empty"`
	TierID       types.TierID    `json:"tier_id,omitempty"`
	Label        string          `json:"label,omitempty"`
	MonthlyTotal decimal.Decimal `json:"monthly_total"`
	Amount       decimal.Decimal `json:"amount"`
	Period       Period          `json:"period"`
	Text         string          `json:"text"`
}

// BuildRecommendation picks the cheapest tier and phrases it for the period
func BuildRecommendation(costs []types.ComputedTierCost, period Period, symbol string) Recommendation {
	best, ok := SelectCheapest(costs)
	if !ok {
		return Recommendation{Empty: true, Period: period, Text: EmptyRecommendationText}
	}
	amount := period.Scale(best.TotalMonthlyCost)
	return Recommendation{
		TierID:       best.TierID,
		Label:        best.Label,
		MonthlyTotal: best.TotalMonthlyCost,
		Amount:       amount,
		Period:       period,
		Text:         fmt.Sprintf("%s — %s / %s", best.Label, format.Money(symbol, amount), period.Suffix()),
	}
}

// Summary is everything a front end needs to redraw after an input change
type Summary struct {
	Scenario       types.Scenario     `json:"scenario"`
	Baseline       types.BaselineCost `json:"baseline"`
	Rows           []Row              `json:"rows"`
	Recommendation Recommendation     `json:"recommendation"`

	// Savings is baseline minus the recommended monthly total. Nil when
	// there is no recommendation.
	Savings *decimal.Decimal `json:"savings,omitempty"`
}

// BuildSummary recomputes baseline, rows and recommendation from scratch
func BuildSummary(engine *pricing.Engine, s types.Scenario, tiers []types.CapacityTier, period Period) Summary {
	baseline := engine.ComputeBaseline(s)
	costs := engine.ComputeTierCosts(s, tiers)
	rec := BuildRecommendation(costs, period, s.Symbol())

	summary := Summary{
		Scenario:       s,
		Baseline:       baseline,
		Rows:           BuildComparisonRows(costs, baseline),
		Recommendation: rec,
	}
	if !rec.Empty {
		savings := baseline.TotalMonthlyCost.Sub(rec.MonthlyTotal)
		summary.Savings = &savings
	}
	return summary
}
