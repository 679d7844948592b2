package output

import (
	"fmt"

	"github.com/shopspring/decimal"

	"capacity-cost/core/comparison"
	"capacity-cost/core/format"
)

// Column headers shared by the table formatters
var (
	comparisonHeaders = []string{"Scenario", "Viewer Policy", "Capacity", "Builders", "Viewers", "Total / month"}
	deltaHeader       = "vs Per-user"
)

// totalColumn is the index of "Total / month" in comparison rows
const totalColumn = 5

func comparisonCells(symbol string, row comparison.Row, showDelta bool, bestMark string) []string {
	label := row.Label
	if row.Best {
		label += " " + bestMark
	}
	cells := []string{
		label,
		row.Policy,
		format.Money(symbol, row.CapacityCost),
		format.Money(symbol, row.BuilderLicenseCost),
		format.Money(symbol, row.ViewerLicenseCost),
		format.Money(symbol, row.TotalMonthlyCost),
	}
	if showDelta {
		cells = append(cells, format.SignedMoney(symbol, row.DeltaVsBaseline))
	}
	return cells
}

func impactHeaders(t *comparison.ImpactTable) []string {
	h := []string{"Option", "Viewer Policy", "Capacity Cost", "Builder Licenses", "Viewer Licenses", "Total Monthly"}
	if t.ProOnly != nil {
		h = append(h, "vs Pro Only")
	}
	if t.PPUOnly != nil {
		h = append(h, "vs PPU Only")
	}
	return h
}

func baselineCells(symbol string, t *comparison.ImpactTable, b *comparison.BaselineRow) []string {
	cells := []string{
		b.Name,
		b.Policy,
		format.Missing,
		format.Rounded(symbol, b.BuilderCost),
		format.Rounded(symbol, b.ViewerCost),
		format.Rounded(symbol, b.Total),
	}
	gapCell := format.Missing
	if b.VsOther != nil {
		mark := "❌"
		if b.VsOther.Cheaper {
			mark = "✅"
		}
		gapCell = format.Rounded(symbol, b.VsOther.Amount) + " " + mark
	}
	if t.ProOnly != nil {
		if b.Name == comparison.BaselinePro {
			cells = append(cells, format.Missing)
		} else {
			cells = append(cells, gapCell)
		}
	}
	if t.PPUOnly != nil {
		if b.Name == comparison.BaselinePPU {
			cells = append(cells, format.Missing)
		} else {
			cells = append(cells, gapCell)
		}
	}
	return cells
}

func impactCells(symbol string, t *comparison.ImpactTable, row comparison.ImpactRow) []string {
	capacity := format.Rounded(symbol, row.CapacityCost)
	if t.Reserved && row.ReservationDiscount > 0 {
		capacity += fmt.Sprintf(" (~%d%% off)", row.ReservationDiscount)
	}
	cells := []string{
		row.SKU,
		row.Policy,
		capacity,
		format.Rounded(symbol, row.BuilderCost),
		format.Rounded(symbol, row.ViewerCost),
		format.Rounded(symbol, row.Total),
	}
	if t.ProOnly != nil {
		cells = append(cells, savingsCell(symbol, row.VsPro))
	}
	if t.PPUOnly != nil {
		cells = append(cells, savingsCell(symbol, row.VsPPU))
	}
	return cells
}

// savingsCell renders "-$4,000 ✅ (12%)" for a saving and "+$900 (-3%)" for
// an extra cost.
func savingsCell(symbol string, s *comparison.Savings) string {
	if s == nil {
		return format.Missing
	}
	abs := format.Rounded(symbol, s.Amount.Abs())
	if s.Cheaper {
		return fmt.Sprintf("-%s ✅ (%d%%)", abs, s.Percent)
	}
	return fmt.Sprintf("+%s (%d%%)", abs, s.Percent)
}

func scenarioLine(s comparison.Summary) string {
	line := fmt.Sprintf("%d viewers · %d builders · per-user license %s",
		s.Scenario.Viewers, s.Scenario.Builders, format.Money(s.Scenario.Symbol(), s.Scenario.LicenseCost))
	if s.Scenario.Region != "" {
		line += " · " + s.Scenario.Region
	}
	return line
}

func savingsLine(symbol string, savings *decimal.Decimal) string {
	if savings == nil || !savings.IsPositive() {
		return ""
	}
	return fmt.Sprintf("Saves %s / month versus per-user licensing", format.Money(symbol, *savings))
}
