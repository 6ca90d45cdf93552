package connector

import "fmt"

// ConstraintKind is the kind of database object a constraint name belongs to.
type ConstraintKind int

const (
	ConstraintKindPrimaryKey ConstraintKind = iota
	ConstraintKindIndex
	ConstraintKindUnique
	ConstraintKindForeignKey
	ConstraintKindDefault
)

// String returns the kind name.
func (k ConstraintKind) String() string {
	switch k {
	case ConstraintKindPrimaryKey:
		return "primary key"
	case ConstraintKindIndex:
		return "index"
	case ConstraintKindUnique:
		return "unique constraint"
	case ConstraintKindForeignKey:
		return "foreign key"
	case ConstraintKindDefault:
		return "default constraint"
	default:
		return "unknown"
	}
}

// ConstraintScope is a naming namespace in which constraint names must be unique.
// Global scopes span the whole schema, model scopes a single model.
type ConstraintScope int

const (
	ScopeGlobalKeyIndex ConstraintScope = iota
	ScopeGlobalForeignKey
	ScopeGlobalPrimaryKeyKeyIndex
	ScopeGlobalPrimaryKeyForeignKeyDefault
	ScopeModelKeyIndex
	ScopeModelPrimaryKeyKeyIndex
	ScopeModelPrimaryKeyKeyIndexForeignKey
)

// Description returns a human-readable description of the scope, as used in
// the name collision error.
func (s ConstraintScope) Description(modelName string) string {
	switch s {
	case ScopeGlobalKeyIndex:
		return "global for indexes and unique constraints"
	case ScopeGlobalForeignKey:
		return "global for foreign keys"
	case ScopeGlobalPrimaryKeyKeyIndex:
		return "global for primary key, indexes and unique constraints"
	case ScopeGlobalPrimaryKeyForeignKeyDefault:
		return "global for primary keys, foreign keys and default constraints"
	case ScopeModelKeyIndex:
		return fmt.Sprintf("on model `%s` for indexes and unique constraints", modelName)
	case ScopeModelPrimaryKeyKeyIndex:
		return fmt.Sprintf("on model `%s` for primary key, indexes and unique constraints", modelName)
	case ScopeModelPrimaryKeyKeyIndexForeignKey:
		return fmt.Sprintf("on model `%s` for primary key, indexes, unique constraints and foreign keys", modelName)
	default:
		return "unknown"
	}
}

// IsGlobal reports whether the scope spans every model.
func (s ConstraintScope) IsGlobal() bool {
	switch s {
	case ScopeGlobalKeyIndex, ScopeGlobalForeignKey, ScopeGlobalPrimaryKeyKeyIndex, ScopeGlobalPrimaryKeyForeignKeyDefault:
		return true
	default:
		return false
	}
}

// Covers reports whether names of the given kind live in this scope.
func (s ConstraintScope) Covers(kind ConstraintKind) bool {
	switch s {
	case ScopeGlobalKeyIndex, ScopeModelKeyIndex:
		return kind == ConstraintKindIndex || kind == ConstraintKindUnique
	case ScopeGlobalForeignKey:
		return kind == ConstraintKindForeignKey
	case ScopeGlobalPrimaryKeyKeyIndex, ScopeModelPrimaryKeyKeyIndex:
		return kind == ConstraintKindPrimaryKey || kind == ConstraintKindIndex || kind == ConstraintKindUnique
	case ScopeGlobalPrimaryKeyForeignKeyDefault:
		return kind == ConstraintKindPrimaryKey || kind == ConstraintKindForeignKey || kind == ConstraintKindDefault
	case ScopeModelPrimaryKeyKeyIndexForeignKey:
		return kind != ConstraintKindDefault
	default:
		return false
	}
}
