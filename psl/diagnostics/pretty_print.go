package diagnostics

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

// DiagnosticColorer defines the interface for coloring diagnostic output.
type DiagnosticColorer interface {
	Title() string
	PrimaryColor(text string) string
}

// ErrorColorer provides coloring for error diagnostics.
type ErrorColorer struct{}

// Title returns the title for errors.
func (ErrorColorer) Title() string { return "error" }

// PrimaryColor returns the colored text for errors.
func (ErrorColorer) PrimaryColor(text string) string {
	return color.New(color.FgRed, color.Bold).Sprint(text)
}

// WarningColorer provides coloring for warning diagnostics.
type WarningColorer struct{}

// Title returns the title for warnings.
func (WarningColorer) Title() string { return "warning" }

// PrimaryColor returns the colored text for warnings.
func (WarningColorer) PrimaryColor(text string) string {
	return color.New(color.FgYellow, color.Bold).Sprint(text)
}

// LineColumn converts a byte offset into a zero-based line and column.
// Offsets past the end of text are clamped to the end.
func LineColumn(text string, offset int) (line, column int) {
	offset = clamp(offset, 0, len(text))
	line = strings.Count(text[:offset], "\n")
	column = offset - (strings.LastIndex(text[:offset], "\n") + 1)
	return line, column
}

// PrettyPrint pretty prints an error or warning, including the offending portion
// of the source code, for human-friendly reading.
func PrettyPrint(
	w io.Writer,
	fileName string,
	text string,
	span Span,
	description string,
	colorer DiagnosticColorer,
) error {
	if os.Getenv("NO_COLOR") != "" {
		color.NoColor = true
	}

	start := clamp(span.Start, 0, len(text))
	end := clamp(span.End, start, len(text))

	startLine, startInLine := LineColumn(text, start)
	endLine, _ := LineColumn(text, end)
	fileLines := strings.Split(text, "\n")

	line := fileLines[startLine]
	endInLine := min(startInLine+(end-start), len(line))

	prefix := line[:startInLine]
	offending := line[startInLine:endInLine]
	suffix := line[endInLine:]

	titleColor := color.New(color.Bold)
	arrowColor := color.New(color.FgCyan, color.Bold)
	filePathColor := color.New(color.Underline)
	lineNumColor := color.New(color.FgCyan, color.Bold)

	if _, err := titleColor.Fprintf(w, "%s: %s\n", colorer.Title(), description); err != nil {
		return err
	}
	arrowColor.Fprintf(w, "  --> ")
	filePathColor.Fprintf(w, "%s:%d\n", fileName, startLine+1)
	lineNumColor.Fprintf(w, "   | \n")

	if startLine > 0 {
		lineNumColor.Fprintf(w, "%2d | ", startLine)
		fmt.Fprintf(w, "%s\n", fileLines[startLine-1])
	}

	lineNumColor.Fprintf(w, "%2d | ", startLine+1)
	fmt.Fprintf(w, "%s%s%s\n", prefix, colorer.PrimaryColor(offending), suffix)

	if len(offending) == 0 {
		lineNumColor.Fprintf(w, "   | ")
		fmt.Fprintf(w, "%s%s\n", strings.Repeat(" ", startInLine), colorer.PrimaryColor("^ Unexpected token."))
	}

	for n := startLine + 1; n <= endLine && n < len(fileLines); n++ {
		lineNumColor.Fprintf(w, "%2d | ", n+1)
		fmt.Fprintf(w, "%s\n", fileLines[n])
	}

	_, err := lineNumColor.Fprintf(w, "   | \n")
	return err
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
