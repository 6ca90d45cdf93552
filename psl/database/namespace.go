package database

import (
	"github.com/satishbabariya/pslcheck/internal/debug"
	"github.com/satishbabariya/pslcheck/psl/connector"
)

// ConstraintName is a final database name together with the kind of object it names.
type ConstraintName struct {
	Name string
	Kind connector.ConstraintKind
}

func indexConstraintName(t IndexType, name string) ConstraintName {
	kind := connector.ConstraintKindIndex
	if t == IndexTypeUnique {
		kind = connector.ConstraintKindUnique
	}
	return ConstraintName{Name: name, Kind: kind}
}

type globalKey struct {
	scope connector.ConstraintScope
	name  string
}

type modelKey struct {
	scope connector.ConstraintScope
	model ModelID
	name  string
}

// ConstraintNamespace counts final constraint names per naming scope of a
// connector. It is built once and only read afterwards.
type ConstraintNamespace struct {
	scopes []connector.ConstraintScope
	global map[globalKey]int
	local  map[modelKey]int
}

func newConstraintNamespace(scopes []connector.ConstraintScope) *ConstraintNamespace {
	return &ConstraintNamespace{
		scopes: scopes,
		global: make(map[globalKey]int),
		local:  make(map[modelKey]int),
	}
}

func (ns *ConstraintNamespace) add(id ModelID, name ConstraintName) {
	for _, scope := range ns.scopes {
		if !scope.Covers(name.Kind) {
			continue
		}
		if scope.IsGlobal() {
			ns.global[globalKey{scope, name.Name}]++
		} else {
			ns.local[modelKey{scope, id, name.Name}]++
		}
	}
}

// Violations returns, in connector scope order, every scope covering the
// name's kind in which the name is used more than once.
func (ns *ConstraintNamespace) Violations(id ModelID, name ConstraintName) []connector.ConstraintScope {
	var out []connector.ConstraintScope
	for _, scope := range ns.scopes {
		if !scope.Covers(name.Kind) {
			continue
		}
		var count int
		if scope.IsGlobal() {
			count = ns.global[globalKey{scope, name.Name}]
		} else {
			count = ns.local[modelKey{scope, id, name.Name}]
		}
		if count > 1 {
			out = append(out, scope)
		}
	}
	return out
}

// BindConnector fixes the connector whose identifier limit and naming scopes
// apply to final constraint names, and builds the constraint namespace.
func (db *ParserDatabase) BindConnector(conn connector.Connector) {
	db.maxIdentifierLength = conn.MaxIdentifierLength()
	ns := newConstraintNamespace(conn.ConstraintViolationScopes())

	for _, m := range db.WalkModels() {
		id := m.ID()
		for _, index := range m.Indexes() {
			ns.add(id, index.ConstraintName())
		}
		if pk := m.PrimaryKey(); pk != nil && conn.HasCapability(connector.CapabilityNamedPrimaryKeys) {
			ns.add(id, ConstraintName{Name: pk.FinalDatabaseName(), Kind: connector.ConstraintKindPrimaryKey})
		}
		if conn.HasCapability(connector.CapabilityNamedForeignKeys) {
			for _, fk := range db.models[id].foreignKeys {
				ns.add(id, ConstraintName{Name: db.foreignKeyName(id, fk), Kind: connector.ConstraintKindForeignKey})
			}
		}
		if conn.HasCapability(connector.CapabilityNamedDefaultValues) {
			for _, f := range m.ScalarFields() {
				if !f.HasDefault() {
					continue
				}
				name := DefaultDefaultValueName(m.DatabaseName(), f.DatabaseName(), db.maxIdentifierLength)
				if mapped := f.field().defaultName; mapped != nil {
					name = *mapped
				}
				ns.add(id, ConstraintName{Name: name, Kind: connector.ConstraintKindDefault})
			}
		}
	}

	db.namespace = ns
	debug.Debug("Bound connector", "connector", conn.Name(),
		"max_identifier_length", db.maxIdentifierLength,
		"scopes", len(ns.scopes))
}

func (db *ParserDatabase) foreignKeyName(id ModelID, fk foreignKey) string {
	if fk.mappedName != nil {
		return *fk.mappedName
	}
	columns := make([]string, len(fk.fields))
	for i, f := range fk.fields {
		columns[i] = db.WalkScalarField(f).DatabaseName()
	}
	return DefaultForeignKeyName(db.WalkModel(id).DatabaseName(), columns, db.maxIdentifierLength)
}

// ScopeViolations returns the scopes in which name collides with another
// constraint name. Without a bound connector there are no scopes.
func (db *ParserDatabase) ScopeViolations(id ModelID, name ConstraintName) []connector.ConstraintScope {
	if db.namespace == nil {
		return nil
	}
	return db.namespace.Violations(id, name)
}

// MaxIdentifierLength returns the identifier limit of the bound connector, 0 if none.
func (db *ParserDatabase) MaxIdentifierLength() int {
	return db.maxIdentifierLength
}
