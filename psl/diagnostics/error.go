package diagnostics

import (
	"fmt"
	"io"
	"strings"
)

// DatamodelError represents a validation or parser error in a schema.
type DatamodelError struct {
	span      Span
	message   string
	attribute string
}

// NewDatamodelError creates a new DatamodelError with the given message and span.
func NewDatamodelError(message string, span Span) DatamodelError {
	return DatamodelError{
		message: message,
		span:    span,
	}
}

// NewParserError creates an error for source text the grammar could not accept.
func NewParserError(message string, span Span) DatamodelError {
	return NewDatamodelError(fmt.Sprintf("Error validating: %s", message), span)
}

// NewValidationError creates a generic validation error.
func NewValidationError(message string, span Span) DatamodelError {
	return NewDatamodelError(message, span)
}

// NewAttributeValidationError creates an error for an attribute that failed validation.
// The attribute name is kept on the error so callers can group diagnostics by attribute.
func NewAttributeValidationError(message, attributeName string, span Span) DatamodelError {
	err := NewDatamodelError(fmt.Sprintf("Error parsing attribute \"%s\": %s", attributeName, message), span)
	err.attribute = attributeName
	return err
}

// NewModelValidationError creates an error scoped to a model or view block.
func NewModelValidationError(message, blockType, modelName string, span Span) DatamodelError {
	return NewDatamodelError(fmt.Sprintf("Error validating %s \"%s\": %s", blockType, modelName, message), span)
}

// NewArgumentNotFoundError creates an error for missing arguments.
func NewArgumentNotFoundError(argumentName string, span Span) DatamodelError {
	return NewDatamodelError(fmt.Sprintf("Argument \"%s\" is missing.", argumentName), span)
}

// NewAttributeArgumentNotFoundError creates an error for missing attribute arguments.
func NewAttributeArgumentNotFoundError(argumentName, attributeName string, span Span) DatamodelError {
	err := NewDatamodelError(fmt.Sprintf("Argument \"%s\" is missing in attribute \"%s\".", argumentName, attributeName), span)
	err.attribute = attributeName
	return err
}

// NewDuplicateArgumentError creates an error for an argument given twice.
func NewDuplicateArgumentError(argumentName string, span Span) DatamodelError {
	return NewDatamodelError(fmt.Sprintf("Argument \"%s\" is already specified.", argumentName), span)
}

// NewUnusedArgumentError creates an error for an argument the attribute does not accept.
func NewUnusedArgumentError(argumentName string, span Span) DatamodelError {
	return NewDatamodelError(fmt.Sprintf("No such argument \"%s\".", argumentName), span)
}

// NewValueParserError creates an error for a value of the wrong kind.
func NewValueParserError(expectedType, rawValue string, span Span) DatamodelError {
	return NewDatamodelError(fmt.Sprintf("Expected %s, but found %s.", expectedType, rawValue), span)
}

// NewSourceArgumentNotFoundError creates an error for missing datasource arguments.
func NewSourceArgumentNotFoundError(argumentName, sourceName string, span Span) DatamodelError {
	return NewDatamodelError(fmt.Sprintf("Argument \"%s\" is missing in data source block \"%s\".", argumentName, sourceName), span)
}

// NewDatasourceProviderNotKnownError creates an error for an unknown datasource provider.
func NewDatasourceProviderNotKnownError(provider string, span Span) DatamodelError {
	return NewDatamodelError(fmt.Sprintf("Datasource provider not known: \"%s\".", provider), span)
}

// NewEnvironmentVariableNotFoundError creates an error for an env() reference that cannot be resolved.
func NewEnvironmentVariableNotFoundError(name string, span Span) DatamodelError {
	return NewDatamodelError(fmt.Sprintf("Environment variable not found: %s.", name), span)
}

// NewPreviewFeatureNotKnownError creates an error for an unknown preview feature.
func NewPreviewFeatureNotKnownError(feature string, expected []string, span Span) DatamodelError {
	return NewDatamodelError(
		fmt.Sprintf("The preview feature \"%s\" is not known. Expected one of: %s.", feature, strings.Join(expected, ", ")),
		span,
	)
}

// NewDuplicateFieldError creates an error for a field defined twice in the same block.
func NewDuplicateFieldError(modelName, fieldName, containerType string, span Span) DatamodelError {
	return NewDatamodelError(fmt.Sprintf("Field \"%s\" is already defined on %s \"%s\".", fieldName, containerType, modelName), span)
}

// NewDuplicateTopError creates an error for a top-level block name defined twice.
func NewDuplicateTopError(name, topType, existingTopType string, span Span) DatamodelError {
	return NewDatamodelError(
		fmt.Sprintf("The %s \"%s\" cannot be defined because a %s with that name already exists.", topType, name, existingTopType),
		span,
	)
}

// NewDuplicateAttributeError creates an error for duplicate attributes.
func NewDuplicateAttributeError(attributeName string, span Span) DatamodelError {
	err := NewDatamodelError(fmt.Sprintf("Attribute \"%s\" can only be defined once.", attributeName), span)
	err.attribute = attributeName
	return err
}

// Message returns the error message.
func (e DatamodelError) Message() string {
	return e.message
}

// Span returns the span of the error.
func (e DatamodelError) Span() Span {
	return e.span
}

// Attribute returns the name of the attribute the error was reported for,
// or an empty string when the error is not attribute specific.
func (e DatamodelError) Attribute() string {
	return e.attribute
}

// Error implements the error interface.
func (e DatamodelError) Error() string {
	return e.message
}

// PrettyPrint writes a pretty-printed representation of the error to the writer.
func (e DatamodelError) PrettyPrint(w io.Writer, fileName, text string) error {
	return PrettyPrint(w, fileName, text, e.span, e.message, ErrorColorer{})
}
