package output

import (
	"encoding/json"
	"io"
)

// JSONFormatter writes the report as JSON. Amounts are decimal strings.
type JSONFormatter struct {
	Indent bool
}

// Format returns the format type
func (f *JSONFormatter) Format() Format {
	return FormatJSON
}

// Render encodes the report
func (f *JSONFormatter) Render(w io.Writer, report *Report) error {
	enc := json.NewEncoder(w)
	if f.Indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(report)
}
