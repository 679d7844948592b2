package output

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"capacity-cost/core/format"
)

// MarkdownFormatter renders GitHub-flavored markdown tables
type MarkdownFormatter struct {
	ShowDelta bool
}

// Format returns the format type
func (f *MarkdownFormatter) Format() Format {
	return FormatMarkdown
}

// Render writes the report
func (f *MarkdownFormatter) Render(w io.Writer, report *Report) error {
	b := bufio.NewWriter(w)

	if s := report.Summary; s != nil {
		symbol := s.Scenario.Symbol()
		fmt.Fprintf(b, "## Capacity Comparison\n\n%s\n\n", scenarioLine(*s))

		if len(s.Rows) > 0 {
			headers := append([]string(nil), comparisonHeaders...)
			if f.ShowDelta {
				headers = append(headers, deltaHeader)
			}
			writeMarkdownRow(b, headers)
			writeMarkdownSeparator(b, len(headers), 2)
			for _, row := range s.Rows {
				cells := comparisonCells(symbol, row, f.ShowDelta, "**Best**")
				if row.Best {
					cells[totalColumn] = "**" + cells[totalColumn] + "**"
				}
				writeMarkdownRow(b, cells)
			}
			b.WriteString("\n")
		}

		for _, r := range report.Rejected {
			fmt.Fprintf(b, "> %s not added: tier limit reached\n", r)
		}
		if report.LimitNote != "" {
			fmt.Fprintf(b, "> %s\n", report.LimitNote)
		}
		if len(report.Rejected) > 0 || report.LimitNote != "" {
			b.WriteString("\n")
		}

		fmt.Fprintf(b, "**Recommendation:** %s\n\n", s.Recommendation.Text)
		fmt.Fprintf(b, "Per-user only: %s / month (%s)\n",
			format.Money(symbol, s.Baseline.TotalMonthlyCost), s.Baseline.Detail)
		if line := savingsLine(symbol, s.Savings); line != "" {
			fmt.Fprintf(b, "\n%s\n", line)
		}
	}

	if t := report.Impact; t != nil {
		if report.Summary != nil {
			b.WriteString("\n")
		}
		fmt.Fprintf(b, "## License Impact: %d viewers + %d builders\n\n", t.Viewers, t.Builders)
		headers := impactHeaders(t)
		writeMarkdownRow(b, headers)
		writeMarkdownSeparator(b, len(headers), 2)
		if t.ProOnly != nil {
			writeMarkdownRow(b, baselineCells(report.ImpactSymbol, t, t.ProOnly))
		}
		if t.PPUOnly != nil {
			writeMarkdownRow(b, baselineCells(report.ImpactSymbol, t, t.PPUOnly))
		}
		for _, row := range t.Rows {
			writeMarkdownRow(b, impactCells(report.ImpactSymbol, t, row))
		}
		if t.Reserved {
			b.WriteString("\n_Capacity prices use reservation rates._\n")
		}
	}

	return b.Flush()
}

func writeMarkdownRow(w io.Writer, cells []string) {
	escaped := make([]string, len(cells))
	for i, c := range cells {
		escaped[i] = strings.ReplaceAll(c, "|", `\|`)
	}
	fmt.Fprintf(w, "| %s |\n", strings.Join(escaped, " | "))
}

// writeMarkdownSeparator right-aligns every column from firstRight on
func writeMarkdownSeparator(w io.Writer, n, firstRight int) {
	cols := make([]string, n)
	for i := range cols {
		if i >= firstRight {
			cols[i] = "---:"
		} else {
			cols[i] = "---"
		}
	}
	fmt.Fprintf(w, "| %s |\n", strings.Join(cols, " | "))
}
