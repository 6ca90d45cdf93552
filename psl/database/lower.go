package database

import (
	"github.com/satishbabariya/pslcheck/internal/debug"
	"github.com/satishbabariya/pslcheck/psl/diagnostics"
	"github.com/satishbabariya/pslcheck/psl/parsing/ast"
)

// ParserDatabase is the lowered, read-only view of one schema.
type ParserDatabase struct {
	ast          *ast.SchemaAst
	models       []*model
	modelsByName map[string]ModelID
	scalarFields []*scalarField

	maxIdentifierLength int
	namespace           *ConstraintNamespace
}

// New lowers a parsed schema. Problems found while lowering, such as unknown
// field references, are pushed to diags; the affected declarations are
// skipped or partially filled.
func New(schema *ast.SchemaAst, diags *diagnostics.Diagnostics) *ParserDatabase {
	db := &ParserDatabase{
		ast:          schema,
		modelsByName: make(map[string]ModelID),
	}

	db.resolveNames(diags)
	for id := range db.models {
		db.resolveModelAttributes(ModelID(id), diags)
	}

	debug.Debug("Lowered schema", "models", len(db.models), "scalar_fields", len(db.scalarFields))
	return db
}

// Ast returns the schema the database was built from.
func (db *ParserDatabase) Ast() *ast.SchemaAst {
	return db.ast
}

// resolveNames registers every top-level name and every field, reporting duplicates.
func (db *ParserDatabase) resolveNames(diags *diagnostics.Diagnostics) {
	tops := make(map[string]ast.Top)

	for _, top := range db.ast.Tops {
		switch top.(type) {
		case *ast.SourceConfig, *ast.GeneratorConfig:
			continue
		}
		if existing, ok := tops[top.GetName()]; ok {
			diags.PushError(diagnostics.NewDuplicateTopError(top.GetName(), top.Kind(), existing.Kind(), top.Span()))
			continue
		}
		tops[top.GetName()] = top
	}

	for _, m := range db.ast.Models() {
		if tops[m.GetName()] != ast.Top(m) {
			continue
		}
		id := ModelID(len(db.models))
		db.modelsByName[m.GetName()] = id
		db.models = append(db.models, &model{
			ast:          m,
			fieldsByName: make(map[string]ScalarFieldID),
			relations:    make(map[string]bool),
		})
	}

	for id, m := range db.models {
		seen := make(map[string]bool)
		for _, f := range m.ast.Fields {
			name := f.GetName()
			if seen[name] {
				diags.PushError(diagnostics.NewDuplicateFieldError(m.ast.GetName(), name, m.ast.Kind(), f.Name.Span()))
				continue
			}
			seen[name] = true

			if _, isModel := db.modelsByName[f.Type.Name]; isModel {
				m.relations[name] = true
				continue
			}
			sfid := ScalarFieldID(len(db.scalarFields))
			db.scalarFields = append(db.scalarFields, &scalarField{model: ModelID(id), name: name, ast: f})
			m.scalarFields = append(m.scalarFields, sfid)
			m.fieldsByName[name] = sfid
		}
	}
}

func (db *ParserDatabase) resolveModelAttributes(id ModelID, diags *diagnostics.Diagnostics) {
	m := db.models[id]

	for _, f := range m.ast.Fields {
		once := make(map[string]bool)
		for _, attr := range f.Attributes {
			name := attr.GetName()
			tag := "@" + name
			switch name {
			case "map", "id", "unique", "default", "relation":
				if once[name] {
					diags.PushError(diagnostics.NewDuplicateAttributeError(tag, attr.Span()))
					continue
				}
				once[name] = true
			default:
				// native types, @updatedAt, @ignore and friends carry no constraint names
				continue
			}

			sfid, isScalar := m.fieldsByName[f.GetName()]
			if m.relations[f.GetName()] {
				if name == "relation" {
					db.handleRelation(id, attr, diags)
				}
				continue
			}
			if !isScalar || db.scalarFields[sfid].ast != f {
				continue
			}

			args := newArguments(attr, tag, diags)
			switch name {
			case "map":
				db.handleFieldMap(sfid, args, diags)
			case "id":
				db.handleFieldID(id, sfid, attr, args, diags)
			case "unique":
				db.handleFieldUnique(id, sfid, attr, args, diags)
			case "default":
				db.handleDefault(sfid, args)
			case "relation":
				args.pushError("The `@relation` attribute can only be used on relation fields.")
				args.discard()
			}
		}
	}

	seenMap, seenID := false, false
	for _, attr := range m.ast.BlockAttributes {
		tag := "@@" + attr.GetName()
		switch attr.GetName() {
		case "map":
			if seenMap {
				diags.PushError(diagnostics.NewDuplicateAttributeError(tag, attr.Span()))
				continue
			}
			seenMap = true
			args := newArguments(attr, tag, diags)
			if expr, ok := args.defaultArg("name"); ok {
				if name, ok := CoerceString(expr, diags); ok {
					m.mappedName = &name
				}
			}
			args.validateVisited()
		case "id":
			if seenID {
				diags.PushError(diagnostics.NewDuplicateAttributeError(tag, attr.Span()))
				continue
			}
			seenID = true
			db.handleModelID(id, attr, newArguments(attr, tag, diags), diags)
		case "index":
			db.handleModelIndex(id, attr, newArguments(attr, tag, diags), diags)
		case "unique":
			db.handleModelUnique(id, attr, newArguments(attr, tag, diags), diags)
		case "fulltext":
			db.handleModelFulltext(id, attr, newArguments(attr, tag, diags), diags)
		}
	}
}

func (db *ParserDatabase) handleFieldMap(sfid ScalarFieldID, args *arguments, diags *diagnostics.Diagnostics) {
	defer args.validateVisited()
	expr, ok := args.defaultArg("name")
	if !ok {
		return
	}
	if name, ok := CoerceString(expr, diags); ok {
		db.scalarFields[sfid].mappedName = &name
	}
}

func (db *ParserDatabase) handleDefault(sfid ScalarFieldID, args *arguments) {
	field := db.scalarFields[sfid]
	field.hasDefault = true
	field.defaultName = args.mapArg()
	// the default value itself is not inspected
	args.discard()
}

func (db *ParserDatabase) handleRelation(id ModelID, attr *ast.Attribute, diags *diagnostics.Diagnostics) {
	args := newArguments(attr, "@relation", diags)
	defer args.discard()

	fk := foreignKey{mappedName: args.mapArg(), attribute: attr}
	expr, ok := args.optionalArg("fields")
	if !ok {
		// the back relation side carries no foreign key
		return
	}
	m := db.models[id]
	for _, elem := range CoerceArray(expr) {
		name, _, ok := CoerceFieldReference(elem, diags)
		if !ok {
			return
		}
		sfid, ok := m.fieldsByName[name]
		if !ok {
			diags.PushError(diagnostics.NewModelValidationError(
				"The argument fields must refer only to existing fields. The following fields do not exist in this model: "+name,
				m.ast.Kind(), m.ast.GetName(), attr.Span()))
			return
		}
		fk.fields = append(fk.fields, sfid)
	}
	m.foreignKeys = append(m.foreignKeys, fk)
}
