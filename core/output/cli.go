package output

import (
	"fmt"
	"io"

	"capacity-cost/core/format"
	"capacity-cost/core/ui"
)

// CLIFormatter renders colored terminal tables
type CLIFormatter struct {
	NoColor   bool
	ShowDelta bool
}

// Format returns the format type
func (f *CLIFormatter) Format() Format {
	return FormatCLI
}

// Render prints the report
func (f *CLIFormatter) Render(w io.Writer, report *Report) error {
	out := ui.NewWriter(w, f.NoColor)

	if s := report.Summary; s != nil {
		symbol := s.Scenario.Symbol()
		out.Header("Capacity Comparison")
		out.Dim("%s", scenarioLine(*s))
		out.Println("")

		if len(s.Rows) == 0 {
			out.Warning("No capacities entered")
		} else {
			headers := append([]string(nil), comparisonHeaders...)
			if f.ShowDelta {
				headers = append(headers, deltaHeader)
			}
			table := out.NewTable(headers...).AlignRight(2, 3, 4, 5, 6)
			for _, row := range s.Rows {
				cells := comparisonCells(symbol, row, f.ShowDelta, "★ Best")
				if row.Best {
					table.AddHighlightedRow(cells...)
				} else {
					table.AddRow(cells...)
				}
			}
			table.Render()
		}

		for _, r := range report.Rejected {
			out.Warning("%s not added: tier limit reached", r)
		}
		if report.LimitNote != "" {
			out.Info("%s", report.LimitNote)
		}

		box := out.NewRecommendationBox()
		box.Headline = s.Recommendation.Text
		box.Empty = s.Recommendation.Empty
		box.Baseline = format.Money(symbol, s.Baseline.TotalMonthlyCost) + " / month"
		box.Detail = s.Baseline.Detail
		box.Savings = savingsLine(symbol, s.Savings)
		box.Render()
	}

	if t := report.Impact; t != nil {
		symbol := report.ImpactSymbol
		out.Header(fmt.Sprintf("License Impact: %d viewers + %d builders", t.Viewers, t.Builders))

		table := out.NewTable(impactHeaders(t)...).AlignRight(2, 3, 4, 5, 6, 7)
		if t.ProOnly != nil {
			table.AddRow(baselineCells(symbol, t, t.ProOnly)...)
		}
		if t.PPUOnly != nil {
			table.AddRow(baselineCells(symbol, t, t.PPUOnly)...)
		}
		for _, row := range t.Rows {
			table.AddRow(impactCells(symbol, t, row)...)
		}
		table.Render()
		if t.Reserved {
			out.Println("")
			out.Info("Capacity prices use reservation rates")
		}
	}

	if report.Metadata.Timestamp != "" {
		out.Println("")
		out.Dim("Generated %s", report.Metadata.Timestamp)
	}
	return nil
}
