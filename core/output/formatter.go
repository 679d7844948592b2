// Package output provides output formatting interfaces.
// This package produces human and machine-readable outputs.
package output

import (
	"io"
	"strings"

	"capacity-cost/core/comparison"
	"capacity-cost/internal/errors"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable CLI table
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"

	// FormatMarkdown is a markdown report
	FormatMarkdown Format = "markdown"
)

// ParseFormat validates a format name
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatCLI, FormatJSON, FormatMarkdown:
		return f, nil
	case "md":
		return FormatMarkdown, nil
	case "table", "":
		return FormatCLI, nil
	}
	return "", errors.NotSupported("output format " + s)
}

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render produces output for the given report
	Render(w io.Writer, report *Report) error
}

// Report is what a command hands to a formatter. Exactly one of Summary
// and Impact is usually set.
type Report struct {
	// Summary is the capacity comparison
	Summary *comparison.Summary `json:"summary,omitempty"`

	// Impact is the license impact analysis
	Impact *comparison.ImpactTable `json:"impact,omitempty"`

	// ImpactSymbol is the currency symbol of the reference prices
	ImpactSymbol string `json:"-"`

	// Rejected lists capacities that did not fit under the tier limit
	Rejected []string `json:"rejected,omitempty"`

	// LimitNote is set when the tier list is full
	LimitNote string `json:"limit_note,omitempty"`

	// Metadata contains execution context
	Metadata Metadata `json:"metadata"`
}

// Metadata contains execution context
type Metadata struct {
	// Timestamp is when the report was generated
	Timestamp string `json:"timestamp"`

	// Version is the tool version
	Version string `json:"version"`

	// Source is where the scenario came from (flags, preset, file path)
	Source string `json:"source,omitempty"`
}

// Registry manages formatter registration
type Registry struct {
	formatters map[Format]Formatter
}

// Options tunes the human-readable formatters
type Options struct {
	NoColor   bool
	ShowDelta bool
}

// NewRegistry creates a registry with the built-in formatters
func NewRegistry(opts Options) *Registry {
	r := &Registry{formatters: make(map[Format]Formatter)}
	r.Register(&CLIFormatter{NoColor: opts.NoColor, ShowDelta: opts.ShowDelta})
	r.Register(&JSONFormatter{Indent: true})
	r.Register(&MarkdownFormatter{ShowDelta: opts.ShowDelta})
	return r
}

// Register adds or replaces a formatter
func (r *Registry) Register(f Formatter) {
	r.formatters[f.Format()] = f
}

// Get returns the formatter for a format
func (r *Registry) Get(format Format) (Formatter, error) {
	f, ok := r.formatters[format]
	if !ok {
		return nil, errors.NotSupported("output format " + string(format))
	}
	return f, nil
}
