// Package diagnostics provides error and warning handling for schema parsing and validation.
package diagnostics

// FileID represents the stable identifier for a schema file.
type FileID uint32

const (
	// FileIDZero represents an empty or default file ID.
	FileIDZero FileID = 0
	// FileIDMax represents the maximum possible file ID.
	FileIDMax FileID = ^FileID(0)
)

// Span represents a location in a datamodel's text representation.
type Span struct {
	Start  int    `json:"start"`
	End    int    `json:"end"`
	FileID FileID `json:"file_id"`
}

// NewSpan creates a new span with the given parameters.
func NewSpan(start, end int, fileID FileID) Span {
	return Span{Start: start, End: end, FileID: fileID}
}

// EmptySpan creates a new empty span.
func EmptySpan() Span {
	return Span{}
}

// IsEmpty reports whether the span covers no source text.
func (s Span) IsEmpty() bool {
	return s.End <= s.Start
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() int {
	if s.IsEmpty() {
		return 0
	}
	return s.End - s.Start
}

// Contains checks if the given position is inside the span (boundaries included).
func (s Span) Contains(position int) bool {
	return position >= s.Start && position <= s.End
}

// Overlaps checks if the given span overlaps with the current span.
func (s Span) Overlaps(other Span) bool {
	return s.FileID == other.FileID && (s.Contains(other.Start) || s.Contains(other.End))
}

// SpanLookup is a best effort span source. It reports false when the
// span it looks for does not exist in the source.
type SpanLookup func() (Span, bool)

// FirstSpan evaluates lookups in order and returns the first span found.
// Lookups after the first hit are never called. When none of them hits,
// fallback is returned, so callers always end up with a usable span.
func FirstSpan(fallback Span, lookups ...SpanLookup) Span {
	for _, lookup := range lookups {
		if lookup == nil {
			continue
		}
		if span, ok := lookup(); ok {
			return span
		}
	}
	return fallback
}

// Known wraps an already computed span as a lookup that always hits.
func Known(span Span) SpanLookup {
	return func() (Span, bool) { return span, true }
}
