// Package database lowers a parsed schema into an indexed, read-only view
// used by validation: models, scalar fields, primary keys, indexes and
// constraint names.
package database

import (
	"github.com/satishbabariya/pslcheck/psl/diagnostics"
	"github.com/satishbabariya/pslcheck/psl/parsing/ast"
)

// ModelID identifies a model by its position among the schema's models.
type ModelID int

// ScalarFieldID identifies a scalar field across the whole schema.
type ScalarFieldID int

// IndexID identifies an index within its model.
type IndexID struct {
	Model ModelID
	Index int
}

// AttributeNode is the AST node an index or key was declared with. Both
// field attributes (@unique) and block attributes (@@index) satisfy it.
type AttributeNode interface {
	GetName() string
	Span() diagnostics.Span
	Args() *ast.ArgumentsList
}

// IndexType represents the type of an index.
type IndexType int

const (
	IndexTypeNormal IndexType = iota
	IndexTypeUnique
	IndexTypeFulltext
)

// String returns the kind as written in a schema.
func (t IndexType) String() string {
	switch t {
	case IndexTypeUnique:
		return "unique"
	case IndexTypeFulltext:
		return "fulltext"
	default:
		return "index"
	}
}

// IndexAlgorithm represents the algorithm used for an index.
type IndexAlgorithm int

const (
	IndexAlgorithmBTree IndexAlgorithm = iota
	IndexAlgorithmHash
	IndexAlgorithmGist
	IndexAlgorithmGin
	IndexAlgorithmSpGist
	IndexAlgorithmBrin
)

var algorithmNames = []string{"BTree", "Hash", "Gist", "Gin", "SpGist", "Brin"}

// String returns the algorithm as written in the `type` argument.
func (a IndexAlgorithm) String() string {
	if int(a) < len(algorithmNames) {
		return algorithmNames[a]
	}
	return "Unknown"
}

// ParseIndexAlgorithm parses the value of the `type` argument.
func ParseIndexAlgorithm(s string) (IndexAlgorithm, bool) {
	for i, name := range algorithmNames {
		if name == s {
			return IndexAlgorithm(i), true
		}
	}
	return 0, false
}

// SortOrder represents the sort order for an index field.
type SortOrder int

const (
	SortOrderAsc SortOrder = iota
	SortOrderDesc
)

// String returns "Asc" or "Desc".
func (s SortOrder) String() string {
	if s == SortOrderDesc {
		return "Desc"
	}
	return "Asc"
}

// FieldWithArgs is a field reference inside an index or key, with its
// optional per-field arguments.
type FieldWithArgs struct {
	Field     ScalarFieldID
	SortOrder *SortOrder
	Length    *uint32
}

// IndexAttribute is an @@index, @@unique, @@fulltext or field @unique.
type IndexAttribute struct {
	Type   IndexType
	Fields []FieldWithArgs
	// Set when the index comes from a field-level @unique.
	SourceField *ScalarFieldID
	// Client name, @@unique(name: ...) only.
	Name *string
	// Database name from the `map` argument.
	MappedName *string
	Algorithm  *IndexAlgorithm
	Clustered  *bool

	attribute AttributeNode
}

// IDAttribute is an @id or @@id.
type IDAttribute struct {
	Fields      []FieldWithArgs
	SourceField *ScalarFieldID
	Name        *string
	MappedName  *string
	Clustered   *bool

	attribute AttributeNode
}

type scalarField struct {
	model      ModelID
	name       string
	mappedName *string
	ast        *ast.Field
	hasDefault bool
	// @default(..., map: "...")
	defaultName *string
}

// foreignKey is the constraint behind an @relation(fields: [...]).
type foreignKey struct {
	fields     []ScalarFieldID
	mappedName *string
	attribute  AttributeNode
}

type model struct {
	ast          *ast.Model
	mappedName   *string
	scalarFields []ScalarFieldID
	fieldsByName map[string]ScalarFieldID
	relations    map[string]bool
	primaryKey   *IDAttribute
	indexes      []*IndexAttribute
	foreignKeys  []foreignKey
}
