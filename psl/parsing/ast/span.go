// Package ast defines the Abstract Syntax Tree types for the Prisma Schema Language.
package ast

import (
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/satishbabariya/pslcheck/psl/diagnostics"
)

// SpanOf converts participle start and end positions into a diagnostics span.
func SpanOf(start, end lexer.Position) diagnostics.Span {
	if end.Offset < start.Offset {
		end = start
	}
	return diagnostics.NewSpan(start.Offset, end.Offset, diagnostics.FileIDZero)
}

// Identifier represents a named identifier in the schema. Dotted names such
// as `db.VarChar` are kept as a single identifier.
type Identifier struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Name   string `(@Ident | @Keyword) (@"." (@Ident | @Keyword))*`
}

// String returns the identifier name.
func (i *Identifier) String() string {
	if i == nil {
		return ""
	}
	return i.Name
}

// Span returns the source span of the identifier.
func (i *Identifier) Span() diagnostics.Span {
	return SpanOf(i.Pos, i.EndPos)
}
