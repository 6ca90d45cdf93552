package diagnostics

import (
	"fmt"
	"io"
)

// DatamodelWarning represents a non-fatal warning emitted by the schema parser.
type DatamodelWarning struct {
	message string
	span    Span
}

// NewDatamodelWarning creates a new DatamodelWarning with the given message and span.
func NewDatamodelWarning(message string, span Span) DatamodelWarning {
	return DatamodelWarning{
		message: message,
		span:    span,
	}
}

// NewPreviewFeatureIsStabilizedWarning creates a warning for stabilized preview features.
func NewPreviewFeatureIsStabilizedWarning(feature string, span Span) DatamodelWarning {
	message := fmt.Sprintf("Preview feature \"%s\" is deprecated. The functionality can be used without specifying it as a preview feature.", feature)
	return NewDatamodelWarning(message, span)
}

// NewPreviewFeatureDeprecatedWarning creates a warning for deprecated preview features.
func NewPreviewFeatureDeprecatedWarning(feature string, span Span) DatamodelWarning {
	message := fmt.Sprintf("Preview feature \"%s\" is deprecated. It will be removed in a future version.", feature)
	return NewDatamodelWarning(message, span)
}

// NewCapabilityRefinedWarning creates a warning for a capability the live server turned out not to support.
func NewCapabilityRefinedWarning(capability, provider, version string, span Span) DatamodelWarning {
	message := fmt.Sprintf("The connected %s server (version %s) does not support %s. Validation assumes it is unavailable.", provider, version, capability)
	return NewDatamodelWarning(message, span)
}

// Message returns the warning message.
func (w DatamodelWarning) Message() string {
	return w.message
}

// Span returns the span of the warning.
func (w DatamodelWarning) Span() Span {
	return w.span
}

// PrettyPrint writes a pretty-printed representation of the warning to the writer.
func (w DatamodelWarning) PrettyPrint(writer io.Writer, fileName, text string) error {
	return PrettyPrint(writer, fileName, text, w.span, w.message, WarningColorer{})
}
