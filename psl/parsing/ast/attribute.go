package ast

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"

	"github.com/satishbabariya/pslcheck/psl/diagnostics"
)

// Attribute represents a field-level attribute (@attribute).
type Attribute struct {
	Pos       lexer.Position
	EndPos    lexer.Position
	Name      *Identifier    `"@" @@`
	Arguments *ArgumentsList `("(" @@ ")")?`
}

// GetName returns the attribute name.
func (a *Attribute) GetName() string {
	return a.Name.String()
}

// Span returns the span of the whole attribute, including its arguments.
func (a *Attribute) Span() diagnostics.Span {
	return SpanOf(a.Pos, a.EndPos)
}

// Args returns the argument list, never nil.
func (a *Attribute) Args() *ArgumentsList {
	if a.Arguments == nil {
		return &ArgumentsList{}
	}
	return a.Arguments
}

// String returns the string representation of the attribute.
func (a *Attribute) String() string {
	return "@" + a.GetName() + a.Arguments.parenthesized()
}

// BlockAttribute represents a block-level attribute (@@attribute).
type BlockAttribute struct {
	Pos       lexer.Position
	EndPos    lexer.Position
	Name      *Identifier    `"@@" @@`
	Arguments *ArgumentsList `("(" @@ ")")?`
}

// GetName returns the block attribute name.
func (b *BlockAttribute) GetName() string {
	return b.Name.String()
}

// Span returns the span of the whole attribute, including its arguments.
func (b *BlockAttribute) Span() diagnostics.Span {
	return SpanOf(b.Pos, b.EndPos)
}

// Args returns the argument list, never nil.
func (b *BlockAttribute) Args() *ArgumentsList {
	if b.Arguments == nil {
		return &ArgumentsList{}
	}
	return b.Arguments
}

// String returns the string representation of the block attribute.
func (b *BlockAttribute) String() string {
	return "@@" + b.GetName() + b.Arguments.parenthesized()
}

// ArgumentsList represents a list of arguments in parentheses.
type ArgumentsList struct {
	Pos           lexer.Position
	EndPos        lexer.Position
	Arguments     []*Argument `(@@ ("," @@)*)?`
	TrailingComma bool        `@","?`
}

// Iter returns the arguments in source order.
func (a *ArgumentsList) Iter() []*Argument {
	if a == nil {
		return nil
	}
	return a.Arguments
}

// Named returns every argument with the given name, in source order.
func (a *ArgumentsList) Named(name string) []*Argument {
	var out []*Argument
	for _, arg := range a.Iter() {
		if arg.GetName() == name {
			out = append(out, arg)
		}
	}
	return out
}

// Unnamed returns the positional arguments in source order.
func (a *ArgumentsList) Unnamed() []*Argument {
	var out []*Argument
	for _, arg := range a.Iter() {
		if !arg.IsNamed() {
			out = append(out, arg)
		}
	}
	return out
}

// String returns the string representation of the arguments list.
func (a *ArgumentsList) String() string {
	if a == nil || len(a.Arguments) == 0 {
		return ""
	}
	parts := make([]string, len(a.Arguments))
	for i, arg := range a.Arguments {
		parts[i] = arg.String()
	}
	return strings.Join(parts, ", ")
}

func (a *ArgumentsList) parenthesized() string {
	if a == nil || len(a.Arguments) == 0 {
		return ""
	}
	return "(" + a.String() + ")"
}

// Argument represents a single argument (named or positional).
type Argument struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Name   *Identifier `(@@ ":")?`
	Value  Expression  `@@`
}

// IsNamed returns true if this is a named argument.
func (a *Argument) IsNamed() bool {
	return a.Name != nil
}

// GetName returns the argument name or empty string if positional.
func (a *Argument) GetName() string {
	return a.Name.String()
}

// Span returns the span of the argument including its name.
func (a *Argument) Span() diagnostics.Span {
	return SpanOf(a.Pos, a.EndPos)
}

// String returns the string representation of the argument.
func (a *Argument) String() string {
	if a.Name != nil {
		return fmt.Sprintf("%s: %s", a.Name.Name, a.Value.String())
	}
	return a.Value.String()
}
