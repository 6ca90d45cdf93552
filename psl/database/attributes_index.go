package database

import (
	"fmt"
	"strings"

	"github.com/satishbabariya/pslcheck/psl/diagnostics"
	"github.com/satishbabariya/pslcheck/psl/parsing/ast"
)

// handleModelIndex handles @@index on a model.
func (db *ParserDatabase) handleModelIndex(id ModelID, attr *ast.BlockAttribute, args *arguments, diags *diagnostics.Diagnostics) {
	defer args.validateVisited()

	index := &IndexAttribute{Type: IndexTypeNormal, attribute: attr}
	if !db.commonIndexValidations(index, id, args, diags) {
		args.discard()
		return
	}

	name := args.optionalString("name")
	mappedName := args.mapArg()
	switch {
	case name != nil && mappedName != nil:
		args.pushError("The `@@index` attribute accepts the `name` argument as an alias for the `map` argument for legacy reasons. It does not accept both though. Please use the `map` argument to specify the database name of the index.")
		mappedName = nil
	case name != nil:
		// legacy alias for map
		mappedName = name
	}
	index.MappedName = mappedName

	if expr, ok := args.optionalArg("type"); ok {
		if value, ok := CoerceConstant(expr, diags); ok {
			if algo, ok := ParseIndexAlgorithm(value); ok {
				index.Algorithm = &algo
			} else {
				args.pushError(fmt.Sprintf("Unknown index type: %s.", value))
			}
		}
	}
	index.Clustered = args.optionalBool("clustered")

	db.models[id].indexes = append(db.models[id].indexes, index)
}

// handleModelUnique handles @@unique on a model.
func (db *ParserDatabase) handleModelUnique(id ModelID, attr *ast.BlockAttribute, args *arguments, diags *diagnostics.Diagnostics) {
	defer args.validateVisited()

	index := &IndexAttribute{Type: IndexTypeUnique, attribute: attr}
	if !db.commonIndexValidations(index, id, args, diags) {
		args.discard()
		return
	}

	index.Name = args.optionalString("name")
	index.MappedName = args.mapArg()
	index.Clustered = args.optionalBool("clustered")

	db.models[id].indexes = append(db.models[id].indexes, index)
}

// handleModelFulltext handles @@fulltext on a model.
func (db *ParserDatabase) handleModelFulltext(id ModelID, attr *ast.BlockAttribute, args *arguments, diags *diagnostics.Diagnostics) {
	defer args.validateVisited()

	index := &IndexAttribute{Type: IndexTypeFulltext, attribute: attr}
	if !db.commonIndexValidations(index, id, args, diags) {
		args.discard()
		return
	}
	index.MappedName = args.mapArg()

	db.models[id].indexes = append(db.models[id].indexes, index)
}

// handleModelID handles @@id on a model.
func (db *ParserDatabase) handleModelID(id ModelID, attr *ast.BlockAttribute, args *arguments, diags *diagnostics.Diagnostics) {
	defer args.validateVisited()

	m := db.models[id]
	expr, ok := args.defaultArg("fields")
	if !ok {
		args.discard()
		return
	}
	fields, ok := db.resolveFieldArrayWithArgs(expr, attr.Span(), id, "id", args.tag, diags)
	if !ok {
		args.discard()
		return
	}

	pk := &IDAttribute{
		Fields:     fields,
		Name:       args.optionalString("name"),
		MappedName: args.mapArg(),
		Clustered:  args.optionalBool("clustered"),
		attribute:  attr,
	}

	if m.primaryKey != nil {
		diags.PushError(diagnostics.NewModelValidationError(
			"Each model must have at most one id criteria. You can't have `@id` and `@@id` at the same time.",
			m.ast.Kind(), m.ast.GetName(), attr.Span()))
		return
	}
	m.primaryKey = pk
}

// handleFieldID handles @id on a scalar field.
func (db *ParserDatabase) handleFieldID(id ModelID, sfid ScalarFieldID, attr *ast.Attribute, args *arguments, diags *diagnostics.Diagnostics) {
	defer args.validateVisited()

	m := db.models[id]
	field := FieldWithArgs{Field: sfid}
	db.fieldArguments(&field, args, diags)

	if m.primaryKey != nil {
		diags.PushError(diagnostics.NewModelValidationError(
			"At most one field must be marked as the id field with the `@id` attribute.",
			m.ast.Kind(), m.ast.GetName(), m.ast.Name.Span()))
		args.discard()
		return
	}

	source := sfid
	m.primaryKey = &IDAttribute{
		Fields:      []FieldWithArgs{field},
		SourceField: &source,
		MappedName:  args.mapArg(),
		Clustered:   args.optionalBool("clustered"),
		attribute:   attr,
	}
}

// handleFieldUnique handles @unique on a scalar field.
func (db *ParserDatabase) handleFieldUnique(id ModelID, sfid ScalarFieldID, attr *ast.Attribute, args *arguments, diags *diagnostics.Diagnostics) {
	defer args.validateVisited()

	field := FieldWithArgs{Field: sfid}
	db.fieldArguments(&field, args, diags)

	source := sfid
	db.models[id].indexes = append(db.models[id].indexes, &IndexAttribute{
		Type:        IndexTypeUnique,
		Fields:      []FieldWithArgs{field},
		SourceField: &source,
		MappedName:  args.mapArg(),
		Clustered:   args.optionalBool("clustered"),
		attribute:   attr,
	})
}

// fieldArguments reads sort and length from a field-level @id or @unique.
func (db *ParserDatabase) fieldArguments(field *FieldWithArgs, args *arguments, diags *diagnostics.Diagnostics) {
	if expr, ok := args.optionalArg("sort"); ok {
		field.SortOrder = parseSortOrder(expr, args.tag, diags)
	}
	if expr, ok := args.optionalArg("length"); ok {
		if n, ok := CoerceUint32(expr, diags); ok {
			field.Length = &n
		}
	}
}

// commonIndexValidations resolves the `fields` argument shared by
// @@index, @@unique and @@fulltext.
func (db *ParserDatabase) commonIndexValidations(index *IndexAttribute, id ModelID, args *arguments, diags *diagnostics.Diagnostics) bool {
	expr, ok := args.defaultArg("fields")
	if !ok {
		return false
	}
	kind := "index"
	if index.Type == IndexTypeUnique {
		kind = "unique index"
	}
	fields, ok := db.resolveFieldArrayWithArgs(expr, index.attribute.Span(), id, kind, args.tag, diags)
	if !ok {
		return false
	}
	index.Fields = fields
	return true
}

// resolveFieldArrayWithArgs resolves `[a, b(sort: Desc, length: 10)]` against the model's fields.
func (db *ParserDatabase) resolveFieldArrayWithArgs(
	values ast.Expression,
	attributeSpan diagnostics.Span,
	id ModelID,
	kind, tag string,
	diags *diagnostics.Diagnostics,
) ([]FieldWithArgs, bool) {
	m := db.models[id]
	modelError := func(message string) {
		diags.PushError(diagnostics.NewModelValidationError(message, m.ast.Kind(), m.ast.GetName(), attributeSpan))
	}

	var (
		resolved       []FieldWithArgs
		unknownFields  []string
		relationFields []string
		seen           = make(map[ScalarFieldID]bool)
	)

	for _, elem := range CoerceArray(values) {
		name, fieldArgs, ok := CoerceFieldReference(elem, diags)
		if !ok {
			return nil, false
		}

		sfid, isScalar := m.fieldsByName[name]
		switch {
		case m.relations[name]:
			relationFields = append(relationFields, name)
			continue
		case !isScalar:
			unknownFields = append(unknownFields, name)
			continue
		case seen[sfid]:
			modelError(fmt.Sprintf("The %s definition refers to the field %s multiple times.", kind, name))
			return nil, false
		}
		seen[sfid] = true

		field := FieldWithArgs{Field: sfid}
		for _, arg := range fieldArgs.Iter() {
			switch arg.GetName() {
			case "sort":
				field.SortOrder = parseSortOrder(arg.Value, tag, diags)
			case "length":
				if n, ok := CoerceUint32(arg.Value, diags); ok {
					field.Length = &n
				}
			case "ops":
				// operator classes are accepted but not tracked
			default:
				diags.PushError(diagnostics.NewUnusedArgumentError(arg.GetName(), arg.Span()))
			}
		}
		resolved = append(resolved, field)
	}

	if len(unknownFields) > 0 {
		modelError(fmt.Sprintf("The %s definition refers to the unknown fields: %s.", kind, strings.Join(unknownFields, ", ")))
	}
	if len(relationFields) > 0 {
		modelError(fmt.Sprintf("The %s definition refers to the relation fields: %s. Index definitions must reference only scalar fields.", kind, strings.Join(relationFields, ", ")))
	}
	if len(unknownFields) > 0 || len(relationFields) > 0 {
		return nil, false
	}
	return resolved, true
}

func parseSortOrder(expr ast.Expression, tag string, diags *diagnostics.Diagnostics) *SortOrder {
	value, ok := CoerceConstant(expr, diags)
	if !ok {
		return nil
	}
	var order SortOrder
	switch value {
	case "Asc":
		order = SortOrderAsc
	case "Desc":
		order = SortOrderDesc
	default:
		diags.PushError(diagnostics.NewAttributeValidationError(
			fmt.Sprintf("The sort order `%s` is not valid. Expected one of: Asc, Desc.", value), tag, expr.Span()))
		return nil
	}
	return &order
}
