package diagnostics

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// LocationJSON is the machine readable location of a diagnostic.
type LocationJSON struct {
	File      string `json:"file"`
	StartByte int    `json:"start_byte"`
	EndByte   int    `json:"end_byte"`
	Line      int    `json:"line"`
	Column    int    `json:"column"`
}

// DiagnosticJSON is the machine readable form of a single error or warning.
type DiagnosticJSON struct {
	Severity  string       `json:"severity"`
	Attribute string       `json:"attribute,omitempty"`
	Message   string       `json:"message"`
	Location  LocationJSON `json:"location"`
}

// OutputJSON is the root object written by WriteJSON.
type OutputJSON struct {
	Diagnostics []DiagnosticJSON `json:"diagnostics"`
	Errors      int              `json:"errors"`
	Warnings    int              `json:"warnings"`
}

func location(fileName, text string, span Span) LocationJSON {
	line, col := LineColumn(text, span.Start)
	return LocationJSON{
		File:      fileName,
		StartByte: span.Start,
		EndByte:   span.End,
		Line:      line + 1,
		Column:    col + 1,
	}
}

// BuildJSON converts the collection into its JSON representation without serializing it.
// Errors come first, then warnings, each in push order.
func (d *Diagnostics) BuildJSON(fileName, text string) OutputJSON {
	out := OutputJSON{
		Diagnostics: make([]DiagnosticJSON, 0, d.Len()),
		Errors:      len(d.errors),
		Warnings:    len(d.warnings),
	}
	for _, err := range d.errors {
		out.Diagnostics = append(out.Diagnostics, DiagnosticJSON{
			Severity:  "error",
			Attribute: err.Attribute(),
			Message:   err.Message(),
			Location:  location(fileName, text, err.Span()),
		})
	}
	for _, warn := range d.warnings {
		out.Diagnostics = append(out.Diagnostics, DiagnosticJSON{
			Severity: "warning",
			Message:  warn.Message(),
			Location: location(fileName, text, warn.Span()),
		})
	}
	return out
}

// WriteJSON writes the collection as indented JSON.
func (d *Diagnostics) WriteJSON(w io.Writer, fileName, text string) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(d.BuildJSON(fileName, text))
}

// ShortString renders one line per diagnostic: `file:line:col: severity: message`.
func (d *Diagnostics) ShortString(fileName, text string) string {
	var b strings.Builder
	for _, err := range d.errors {
		line, col := LineColumn(text, err.Span().Start)
		fmt.Fprintf(&b, "%s:%d:%d: error: %s\n", fileName, line+1, col+1, err.Message())
	}
	for _, warn := range d.warnings {
		line, col := LineColumn(text, warn.Span().Start)
		fmt.Fprintf(&b, "%s:%d:%d: warning: %s\n", fileName, line+1, col+1, warn.Message())
	}
	return b.String()
}
