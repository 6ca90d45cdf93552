// Package psl provides the main API for checking Prisma schema files.
package psl

import (
	"github.com/satishbabariya/pslcheck/psl/connector"
	"github.com/satishbabariya/pslcheck/psl/core"
	"github.com/satishbabariya/pslcheck/psl/diagnostics"
	"github.com/satishbabariya/pslcheck/psl/parsing"
	"github.com/satishbabariya/pslcheck/psl/parsing/ast"
	"github.com/satishbabariya/pslcheck/psl/validation"
)

// Re-export key types for convenience
type (
	SourceFile      = core.SourceFile
	PreviewFeatures = core.PreviewFeatures
	Diagnostics     = diagnostics.Diagnostics
	SchemaAst       = ast.SchemaAst
	Connector       = connector.Connector
	Config          = validation.Config
	ValidatedSchema = validation.Result
)

// ParseSchema parses a Prisma schema string and returns the AST and diagnostics.
func ParseSchema(input string) (*ast.SchemaAst, diagnostics.Diagnostics) {
	return ParseSchemaFromFile(core.NewSourceFile("schema.prisma", input))
}

// ParseSchemaFromFile parses a Prisma schema from a source file.
func ParseSchemaFromFile(file core.SourceFile) (*ast.SchemaAst, diagnostics.Diagnostics) {
	diags := diagnostics.NewDiagnostics()
	schema := parsing.ParseSchema(file.Path, file.Data, &diags)
	return schema, diags
}

// Validate parses and validates a schema file.
func Validate(file core.SourceFile, cfg Config) ValidatedSchema {
	return validation.Validate(file, cfg)
}

// NewSourceFile creates a new source file.
func NewSourceFile(path, data string) core.SourceFile {
	return core.NewSourceFile(path, data)
}
