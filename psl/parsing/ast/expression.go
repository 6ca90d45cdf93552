package ast

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"

	"github.com/satishbabariya/pslcheck/psl/diagnostics"
)

// Expression represents a value expression in the schema.
// This is a union type that can be one of several expression types.
type Expression interface {
	isExpression()
	Span() diagnostics.Span
	String() string
	// Describe names the kind of expression for error messages.
	Describe() string
}

// StringValue represents a quoted string literal. The value is already unquoted.
type StringValue struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Value  string `@String`
}

// NumericValue represents a numeric literal (int or float).
type NumericValue struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Value  string `@Number`
}

// ConstantValue represents a constant/identifier value (true, false, enum values, field references).
type ConstantValue struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Value  string `@(Ident | Keyword)`
}

// FunctionCall represents a function call expression like env("DATABASE_URL")
// or a field reference with arguments like email(sort: Desc).
type FunctionCall struct {
	Pos       lexer.Position
	EndPos    lexer.Position
	Name      string         `@(Ident | Keyword)`
	Arguments *ArgumentsList `"(" @@ ")"`
}

// ArrayExpression represents an array literal like [1, 2, 3] or [field1, field2].
type ArrayExpression struct {
	Pos      lexer.Position
	EndPos   lexer.Position
	Elements []Expression `"[" (@@ ("," @@)*)? ","? "]"`
}

func (*StringValue) isExpression()     {}
func (*NumericValue) isExpression()    {}
func (*ConstantValue) isExpression()   {}
func (*FunctionCall) isExpression()    {}
func (*ArrayExpression) isExpression() {}

func (s *StringValue) Span() diagnostics.Span     { return SpanOf(s.Pos, s.EndPos) }
func (n *NumericValue) Span() diagnostics.Span    { return SpanOf(n.Pos, n.EndPos) }
func (c *ConstantValue) Span() diagnostics.Span   { return SpanOf(c.Pos, c.EndPos) }
func (f *FunctionCall) Span() diagnostics.Span    { return SpanOf(f.Pos, f.EndPos) }
func (a *ArrayExpression) Span() diagnostics.Span { return SpanOf(a.Pos, a.EndPos) }

func (*StringValue) Describe() string     { return "string" }
func (*NumericValue) Describe() string    { return "numeric" }
func (*ConstantValue) Describe() string   { return "constant" }
func (*FunctionCall) Describe() string    { return "function" }
func (*ArrayExpression) Describe() string { return "array" }

// String returns the string representation.
func (s *StringValue) String() string { return fmt.Sprintf("%q", s.Value) }

// String returns the string representation.
func (n *NumericValue) String() string { return n.Value }

// String returns the string representation.
func (c *ConstantValue) String() string { return c.Value }

// String returns the string representation.
func (f *FunctionCall) String() string {
	return fmt.Sprintf("%s(%s)", f.Name, f.Arguments.String())
}

// String returns the string representation.
func (a *ArrayExpression) String() string {
	parts := make([]string, len(a.Elements))
	for i, elem := range a.Elements {
		parts[i] = elem.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
