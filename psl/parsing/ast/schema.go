package ast

import (
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/satishbabariya/pslcheck/psl/diagnostics"
)

// SchemaAst represents the AST of a Prisma schema.
type SchemaAst struct {
	// All models, enums, composite types, datasources and generators, in source order.
	Tops []Top
}

// Top is implemented by every top-level declaration.
type Top interface {
	GetName() string
	Span() diagnostics.Span
	// Kind describes the declaration for error messages, e.g. "model".
	Kind() string
}

// Models returns the model and view declarations in source order.
func (s *SchemaAst) Models() []*Model {
	var out []*Model
	for _, top := range s.Tops {
		if m, ok := top.(*Model); ok {
			out = append(out, m)
		}
	}
	return out
}

// Sources returns all datasource blocks in the schema.
func (s *SchemaAst) Sources() []*SourceConfig {
	var out []*SourceConfig
	for _, top := range s.Tops {
		if src, ok := top.(*SourceConfig); ok {
			out = append(out, src)
		}
	}
	return out
}

// Generators returns all generator blocks in the schema.
func (s *SchemaAst) Generators() []*GeneratorConfig {
	var out []*GeneratorConfig
	for _, top := range s.Tops {
		if gen, ok := top.(*GeneratorConfig); ok {
			out = append(out, gen)
		}
	}
	return out
}

// Model represents a model or view declaration. Fields and block attributes
// may interleave in the source; Members keeps the raw order.
type Model struct {
	Pos     lexer.Position
	EndPos  lexer.Position
	Keyword string         `@("model" | "view")`
	Name    *Identifier    `@@`
	Members []*ModelMember `"{" @@* "}"`

	Fields          []*Field
	BlockAttributes []*BlockAttribute
}

// ModelMember is either a field or a block attribute.
type ModelMember struct {
	BlockAttribute *BlockAttribute `  @@`
	Field          *Field          `| @@`
}

// Split fills Fields and BlockAttributes from Members.
func (m *Model) Split() {
	m.Fields = m.Fields[:0]
	m.BlockAttributes = m.BlockAttributes[:0]
	for _, member := range m.Members {
		switch {
		case member.Field != nil:
			m.Fields = append(m.Fields, member.Field)
		case member.BlockAttribute != nil:
			m.BlockAttributes = append(m.BlockAttributes, member.BlockAttribute)
		}
	}
}

// IsView returns true if this is a view declaration.
func (m *Model) IsView() bool { return m.Keyword == "view" }

// GetName returns the model name.
func (m *Model) GetName() string { return m.Name.String() }

// Span returns the span of the whole block.
func (m *Model) Span() diagnostics.Span { return SpanOf(m.Pos, m.EndPos) }

// Kind returns "model" or "view".
func (m *Model) Kind() string { return m.Keyword }

// FindBlockAttributes returns the block attributes with the given name.
func (m *Model) FindBlockAttributes(name string) []*BlockAttribute {
	var out []*BlockAttribute
	for _, attr := range m.BlockAttributes {
		if attr.GetName() == name {
			out = append(out, attr)
		}
	}
	return out
}

// CompositeType represents a composite type declaration (type X { ... }).
type CompositeType struct {
	Pos     lexer.Position
	EndPos  lexer.Position
	Name    *Identifier    `"type" @@`
	Members []*ModelMember `"{" @@* "}"`
}

// GetName returns the type name.
func (c *CompositeType) GetName() string { return c.Name.String() }

// Span returns the span of the whole block.
func (c *CompositeType) Span() diagnostics.Span { return SpanOf(c.Pos, c.EndPos) }

// Kind returns "type".
func (c *CompositeType) Kind() string { return "type" }

// Enum represents an enum declaration.
type Enum struct {
	Pos     lexer.Position
	EndPos  lexer.Position
	Name    *Identifier   `"enum" @@`
	Members []*EnumMember `"{" @@* "}"`
}

// EnumMember is either an enum value or a block attribute.
type EnumMember struct {
	BlockAttribute *BlockAttribute `  @@`
	Value          *EnumValue      `| @@`
}

// EnumValue is a single value in an enum.
type EnumValue struct {
	Pos        lexer.Position
	EndPos     lexer.Position
	Name       *Identifier  `@@`
	Attributes []*Attribute `@@*`
}

// GetName returns the enum name.
func (e *Enum) GetName() string { return e.Name.String() }

// Span returns the span of the whole block.
func (e *Enum) Span() diagnostics.Span { return SpanOf(e.Pos, e.EndPos) }

// Kind returns "enum".
func (e *Enum) Kind() string { return "enum" }

// Values returns the enum values in source order.
func (e *Enum) Values() []*EnumValue {
	var out []*EnumValue
	for _, member := range e.Members {
		if member.Value != nil {
			out = append(out, member.Value)
		}
	}
	return out
}

// ConfigProperty is a `key = value` line in a datasource or generator block.
type ConfigProperty struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Name   *Identifier `@@ "="`
	Value  Expression  `@@`
}

// Span returns the span of the whole property.
func (p *ConfigProperty) Span() diagnostics.Span { return SpanOf(p.Pos, p.EndPos) }

// SourceConfig represents a datasource block.
type SourceConfig struct {
	Pos        lexer.Position
	EndPos     lexer.Position
	Name       *Identifier       `"datasource" @@`
	Properties []*ConfigProperty `"{" @@* "}"`
}

// GetName returns the datasource name.
func (s *SourceConfig) GetName() string { return s.Name.String() }

// Span returns the span of the whole block.
func (s *SourceConfig) Span() diagnostics.Span { return SpanOf(s.Pos, s.EndPos) }

// Kind returns "datasource".
func (s *SourceConfig) Kind() string { return "datasource" }

// Property returns the property with the given name, or nil.
func (s *SourceConfig) Property(name string) *ConfigProperty {
	return findProperty(s.Properties, name)
}

// GeneratorConfig represents a generator block.
type GeneratorConfig struct {
	Pos        lexer.Position
	EndPos     lexer.Position
	Name       *Identifier       `"generator" @@`
	Properties []*ConfigProperty `"{" @@* "}"`
}

// GetName returns the generator name.
func (g *GeneratorConfig) GetName() string { return g.Name.String() }

// Span returns the span of the whole block.
func (g *GeneratorConfig) Span() diagnostics.Span { return SpanOf(g.Pos, g.EndPos) }

// Kind returns "generator".
func (g *GeneratorConfig) Kind() string { return "generator" }

// Property returns the property with the given name, or nil.
func (g *GeneratorConfig) Property(name string) *ConfigProperty {
	return findProperty(g.Properties, name)
}

func findProperty(props []*ConfigProperty, name string) *ConfigProperty {
	for _, p := range props {
		if p.Name.String() == name {
			return p
		}
	}
	return nil
}
