package ast

import (
	"fmt"

	"github.com/alecthomas/participle/v2/lexer"

	"github.com/satishbabariya/pslcheck/psl/diagnostics"
)

// FieldArity represents the arity/cardinality of a field.
type FieldArity int

const (
	// FieldArityRequired means the field must have a value.
	FieldArityRequired FieldArity = iota
	// FieldArityOptional means the field can be null (Type?).
	FieldArityOptional
	// FieldArityList means the field is an array (Type[]).
	FieldArityList
)

// String returns the string representation of the arity.
func (a FieldArity) String() string {
	switch a {
	case FieldArityOptional:
		return "?"
	case FieldArityList:
		return "[]"
	default:
		return ""
	}
}

// FieldType represents the type of a field. Unsupported("...") types carry
// the quoted database type in Unsupported.
type FieldType struct {
	Pos         lexer.Position
	EndPos      lexer.Position
	Name        string  `@(Ident | Keyword)`
	Unsupported *string `("(" @String ")")?`
}

// Span returns the span of the type name.
func (t *FieldType) Span() diagnostics.Span {
	return SpanOf(t.Pos, t.EndPos)
}

// String returns the string representation of the field type.
func (t *FieldType) String() string {
	if t.Unsupported != nil {
		return fmt.Sprintf("%s(%q)", t.Name, *t.Unsupported)
	}
	return t.Name
}

// Field represents a field in a model or composite type.
type Field struct {
	Pos        lexer.Position
	EndPos     lexer.Position
	Name       *Identifier  `@@`
	Type       *FieldType   `@@`
	List       bool         `( @("[" "]")`
	Optional   bool         `| @"?" )?`
	Attributes []*Attribute `@@*`
}

// GetName returns the field name.
func (f *Field) GetName() string {
	return f.Name.String()
}

// Arity returns the field arity.
func (f *Field) Arity() FieldArity {
	switch {
	case f.List:
		return FieldArityList
	case f.Optional:
		return FieldArityOptional
	default:
		return FieldArityRequired
	}
}

// Span returns the span of the whole field declaration.
func (f *Field) Span() diagnostics.Span {
	return SpanOf(f.Pos, f.EndPos)
}

// FindAttributes returns the field attributes with the given name.
func (f *Field) FindAttributes(name string) []*Attribute {
	var out []*Attribute
	for _, attr := range f.Attributes {
		if attr.GetName() == name {
			out = append(out, attr)
		}
	}
	return out
}

// String returns the string representation of the field.
func (f *Field) String() string {
	s := f.GetName() + " " + f.Type.String() + f.Arity().String()
	for _, attr := range f.Attributes {
		s += " " + attr.String()
	}
	return s
}
