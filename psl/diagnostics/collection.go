package diagnostics

import (
	"bytes"
	"errors"
	"fmt"
)

// ErrValidationFailed is returned by ToResult when the collection holds errors.
var ErrValidationFailed = errors.New("validation failed")

// Diagnostics represents a list of validation or parser errors and warnings.
// It is used to not error out early and instead show multiple errors at once.
// Entries are append-only: nothing in the collection is removed or rewritten.
type Diagnostics struct {
	errors   []DatamodelError
	warnings []DatamodelWarning
}

// NewDiagnostics creates a new empty Diagnostics collection.
func NewDiagnostics() Diagnostics {
	return Diagnostics{
		errors:   make([]DatamodelError, 0),
		warnings: make([]DatamodelWarning, 0),
	}
}

// FromError creates a Diagnostics from a single error.
func FromError(err DatamodelError) Diagnostics {
	d := NewDiagnostics()
	d.PushError(err)
	return d
}

// Errors returns all errors in the collection, in the order they were pushed.
func (d *Diagnostics) Errors() []DatamodelError {
	return d.errors
}

// Warnings returns all warnings in the collection.
func (d *Diagnostics) Warnings() []DatamodelWarning {
	return d.warnings
}

// PushError adds an error to the collection.
func (d *Diagnostics) PushError(err DatamodelError) {
	d.errors = append(d.errors, err)
}

// PushWarning adds a warning to the collection.
func (d *Diagnostics) PushWarning(warning DatamodelWarning) {
	d.warnings = append(d.warnings, warning)
}

// Merge appends all errors and warnings of other, preserving their order.
func (d *Diagnostics) Merge(other *Diagnostics) {
	if other == nil {
		return
	}
	d.errors = append(d.errors, other.errors...)
	d.warnings = append(d.warnings, other.warnings...)
}

// HasErrors returns true if there is at least one error in this collection.
func (d *Diagnostics) HasErrors() bool {
	return len(d.errors) > 0
}

// Len returns the number of errors and warnings.
func (d *Diagnostics) Len() int {
	return len(d.errors) + len(d.warnings)
}

// ToResult returns an error if there are errors, otherwise returns nil.
func (d *Diagnostics) ToResult() error {
	if !d.HasErrors() {
		return nil
	}
	if len(d.errors) == 1 {
		return fmt.Errorf("%w: %s", ErrValidationFailed, d.errors[0].Message())
	}
	return fmt.Errorf("%w with %d errors", ErrValidationFailed, len(d.errors))
}

// ToPrettyString formats all errors as a pretty-printed string.
func (d *Diagnostics) ToPrettyString(fileName, datamodelString string) string {
	var buf bytes.Buffer
	for _, err := range d.errors {
		_ = err.PrettyPrint(&buf, fileName, datamodelString)
		buf.WriteByte('\n')
	}
	return buf.String()
}

// WarningsToPrettyString formats all warnings as a pretty-printed string.
func (d *Diagnostics) WarningsToPrettyString(fileName, datamodelString string) string {
	var buf bytes.Buffer
	for _, warn := range d.warnings {
		_ = warn.PrettyPrint(&buf, fileName, datamodelString)
		buf.WriteByte('\n')
	}
	return buf.String()
}
