// Package ui - Terminal user interface
// Colored headers, aligned tables and summary boxes for the CLI.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"
)

// Colors for terminal output
const (
	Reset  = "\033[0m"
	Bold   = "\033[1m"
	Dim    = "\033[2m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Blue   = "\033[34m"
	Cyan   = "\033[36m"
)

// Writer is the UI output destination
type Writer struct {
	out     io.Writer
	noColor bool
}

// NewWriter creates a UI writer
func NewWriter(out io.Writer, noColor bool) *Writer {
	if out == nil {
		out = os.Stdout
	}
	return &Writer{
		out:     out,
		noColor: noColor,
	}
}

// color applies color if enabled
func (w *Writer) color(c, text string) string {
	if w.noColor {
		return text
	}
	return c + text + Reset
}

// Println writes a line with newline
func (w *Writer) Println(format string, args ...any) {
	fmt.Fprintf(w.out, format+"\n", args...)
}

// Header prints a section header
func (w *Writer) Header(title string) {
	w.Println("")
	w.Println("%s", w.color(Bold+Cyan, "━━━ "+title+" ━━━"))
	w.Println("")
}

// Success prints a success message
func (w *Writer) Success(format string, args ...any) {
	w.Println("%s%s", w.color(Green, "✓ "), fmt.Sprintf(format, args...))
}

// Warning prints a warning
func (w *Writer) Warning(format string, args ...any) {
	w.Println("%s%s", w.color(Yellow, "⚠ "), fmt.Sprintf(format, args...))
}

// Info prints an info message
func (w *Writer) Info(format string, args ...any) {
	w.Println("%s%s", w.color(Blue, "ℹ "), fmt.Sprintf(format, args...))
}

// Dim prints de-emphasized text
func (w *Writer) Dim(format string, args ...any) {
	w.Println("%s", w.color(Dim, fmt.Sprintf(format, args...)))
}

// Table renders a table
type Table struct {
	w         *Writer
	headers   []string
	rows      [][]string
	highlight []bool
	right     map[int]bool
	widths    []int
}

// NewTable creates a table
func (w *Writer) NewTable(headers ...string) *Table {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = utf8.RuneCountInString(h)
	}
	return &Table{
		w:       w,
		headers: headers,
		right:   make(map[int]bool),
		widths:  widths,
	}
}

// AlignRight right-aligns the given columns
func (t *Table) AlignRight(cols ...int) *Table {
	for _, c := range cols {
		t.right[c] = true
	}
	return t
}

// AddRow adds a row to the table
func (t *Table) AddRow(cells ...string) {
	t.addRow(false, cells)
}

// AddHighlightedRow adds a row rendered in bold green
func (t *Table) AddHighlightedRow(cells ...string) {
	t.addRow(true, cells)
}

func (t *Table) addRow(highlight bool, cells []string) {
	// Pad or truncate cells to match header count
	row := make([]string, len(t.headers))
	for i := range row {
		if i < len(cells) {
			row[i] = cells[i]
		}
		if n := utf8.RuneCountInString(row[i]); n > t.widths[i] {
			t.widths[i] = n
		}
	}
	t.rows = append(t.rows, row)
	t.highlight = append(t.highlight, highlight)
}

func (t *Table) line(cells []string) string {
	var b strings.Builder
	for i, cell := range cells {
		if i > 0 {
			b.WriteString(" │ ")
		}
		pad := strings.Repeat(" ", t.widths[i]-utf8.RuneCountInString(cell))
		if t.right[i] {
			b.WriteString(pad + cell)
		} else {
			b.WriteString(cell + pad)
		}
	}
	return b.String()
}

// Render prints the table
func (t *Table) Render() {
	t.w.Println("%s", t.w.color(Bold, t.line(t.headers)))

	sep := make([]string, len(t.widths))
	for i, w := range t.widths {
		sep[i] = strings.Repeat("─", w)
	}
	t.w.Println("%s", strings.Join(sep, "─┼─"))

	for i, row := range t.rows {
		text := t.line(row)
		if t.highlight[i] {
			text = t.w.color(Bold+Green, text)
		}
		t.w.Println("%s", text)
	}
}

// RecommendationBox renders the headline result
type RecommendationBox struct {
	w        *Writer
	Headline string
	Baseline string
	Detail   string
	Savings  string
	Empty    bool
}

// NewRecommendationBox creates a recommendation box
func (w *Writer) NewRecommendationBox() *RecommendationBox {
	return &RecommendationBox{w: w}
}

// Render prints the box
func (r *RecommendationBox) Render() {
	r.w.Header("Recommendation")

	lines := []string{r.Headline}
	if r.Baseline != "" {
		lines = append(lines, "Per-user only: "+r.Baseline)
	}
	if r.Detail != "" {
		lines = append(lines, "  "+r.Detail)
	}

	width := 0
	for _, l := range lines {
		if n := utf8.RuneCountInString(l); n > width {
			width = n
		}
	}

	border := strings.Repeat("─", width+4)
	r.w.Println("%s", r.w.color(Bold, "╭"+border+"╮"))
	for i, l := range lines {
		padded := "  " + l + strings.Repeat(" ", width-utf8.RuneCountInString(l)+2)
		c := Dim
		if i == 0 {
			c = Green
			if r.Empty {
				c = Yellow
			}
		}
		r.w.Println("%s%s%s", r.w.color(Bold, "│"), r.w.color(c, padded), r.w.color(Bold, "│"))
	}
	r.w.Println("%s", r.w.color(Bold, "╰"+border+"╯"))

	if r.Savings != "" {
		r.w.Println("")
		r.w.Success("%s", r.Savings)
	}
}
