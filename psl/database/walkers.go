package database

import (
	"github.com/satishbabariya/pslcheck/psl/diagnostics"
	"github.com/satishbabariya/pslcheck/psl/parsing/ast"
)

// WalkModels returns a walker for every model, in source order.
func (db *ParserDatabase) WalkModels() []*ModelWalker {
	out := make([]*ModelWalker, len(db.models))
	for i := range db.models {
		out[i] = &ModelWalker{db: db, id: ModelID(i)}
	}
	return out
}

// WalkModel returns the walker for a model.
func (db *ParserDatabase) WalkModel(id ModelID) *ModelWalker {
	if int(id) < 0 || int(id) >= len(db.models) {
		return nil
	}
	return &ModelWalker{db: db, id: id}
}

// FindModel looks a model up by name.
func (db *ParserDatabase) FindModel(name string) *ModelWalker {
	id, ok := db.modelsByName[name]
	if !ok {
		return nil
	}
	return db.WalkModel(id)
}

// WalkScalarField returns the walker for a scalar field.
func (db *ParserDatabase) WalkScalarField(id ScalarFieldID) *ScalarFieldWalker {
	return &ScalarFieldWalker{db: db, id: id}
}

// WalkIndexes returns every index of every model: model order first, then
// field-level @unique in field order, then block attributes in source order.
func (db *ParserDatabase) WalkIndexes() []*IndexWalker {
	var out []*IndexWalker
	for _, m := range db.WalkModels() {
		out = append(out, m.Indexes()...)
	}
	return out
}

// ModelWalker provides access to a model declaration.
type ModelWalker struct {
	db *ParserDatabase
	id ModelID
}

func (w *ModelWalker) model() *model { return w.db.models[w.id] }

// ID returns the model ID.
func (w *ModelWalker) ID() ModelID { return w.id }

// Name returns the name of the model.
func (w *ModelWalker) Name() string { return w.model().ast.GetName() }

// MappedName returns the @@map name, if any.
func (w *ModelWalker) MappedName() *string { return w.model().mappedName }

// DatabaseName returns the table name: the @@map name or the model name.
func (w *ModelWalker) DatabaseName() string {
	if m := w.model().mappedName; m != nil {
		return *m
	}
	return w.Name()
}

// AstModel returns the AST node for the model.
func (w *ModelWalker) AstModel() *ast.Model { return w.model().ast }

// Span returns the span of the whole model block.
func (w *ModelWalker) Span() diagnostics.Span { return w.model().ast.Span() }

// IsView reports whether the block is a view.
func (w *ModelWalker) IsView() bool { return w.model().ast.IsView() }

// ScalarFields returns the model's scalar fields in source order.
func (w *ModelWalker) ScalarFields() []*ScalarFieldWalker {
	ids := w.model().scalarFields
	out := make([]*ScalarFieldWalker, len(ids))
	for i, id := range ids {
		out[i] = w.db.WalkScalarField(id)
	}
	return out
}

// ScalarField looks a scalar field up by name.
func (w *ModelWalker) ScalarField(name string) *ScalarFieldWalker {
	id, ok := w.model().fieldsByName[name]
	if !ok {
		return nil
	}
	return w.db.WalkScalarField(id)
}

// Indexes returns the model's indexes and unique constraints.
func (w *ModelWalker) Indexes() []*IndexWalker {
	indexes := w.model().indexes
	out := make([]*IndexWalker, len(indexes))
	for i, index := range indexes {
		out[i] = &IndexWalker{db: w.db, id: IndexID{Model: w.id, Index: i}, index: index}
	}
	return out
}

// PrimaryKey returns the model's primary key, or nil.
func (w *ModelWalker) PrimaryKey() *PrimaryKeyWalker {
	pk := w.model().primaryKey
	if pk == nil {
		return nil
	}
	return &PrimaryKeyWalker{db: w.db, modelID: w.id, pk: pk}
}

// ScalarFieldWalker provides access to a scalar field.
type ScalarFieldWalker struct {
	db *ParserDatabase
	id ScalarFieldID
}

func (w *ScalarFieldWalker) field() *scalarField { return w.db.scalarFields[w.id] }

// ID returns the field ID.
func (w *ScalarFieldWalker) ID() ScalarFieldID { return w.id }

// Name returns the field name.
func (w *ScalarFieldWalker) Name() string { return w.field().name }

// DatabaseName returns the column name: the @map name or the field name.
func (w *ScalarFieldWalker) DatabaseName() string {
	if m := w.field().mappedName; m != nil {
		return *m
	}
	return w.field().name
}

// Model returns the model owning the field.
func (w *ScalarFieldWalker) Model() *ModelWalker { return w.db.WalkModel(w.field().model) }

// AstField returns the AST node of the field.
func (w *ScalarFieldWalker) AstField() *ast.Field { return w.field().ast }

// HasDefault reports whether the field has an @default.
func (w *ScalarFieldWalker) HasDefault() bool { return w.field().hasDefault }

// IndexWalker provides access to an index (@@index, @@unique, @@fulltext or @unique).
type IndexWalker struct {
	db    *ParserDatabase
	id    IndexID
	index *IndexAttribute
}

// ID returns the index ID.
func (w *IndexWalker) ID() IndexID { return w.id }

// ModelID returns the ID of the model the index belongs to.
func (w *IndexWalker) ModelID() ModelID { return w.id.Model }

// Model returns the model this index belongs to.
func (w *IndexWalker) Model() *ModelWalker { return w.db.WalkModel(w.id.Model) }

// Type returns the type of the index (Normal, Unique, or Fulltext).
func (w *IndexWalker) Type() IndexType { return w.index.Type }

// IsNormal returns whether this is a normal index.
func (w *IndexWalker) IsNormal() bool { return w.index.Type == IndexTypeNormal }

// IsUnique returns whether this is a unique index.
func (w *IndexWalker) IsUnique() bool { return w.index.Type == IndexTypeUnique }

// IsFulltext returns whether this is a fulltext index.
func (w *IndexWalker) IsFulltext() bool { return w.index.Type == IndexTypeFulltext }

// IsDefinedOnField reports whether the index comes from a field-level @unique.
func (w *IndexWalker) IsDefinedOnField() bool { return w.index.SourceField != nil }

// Name returns the client name from @@unique(name: "...").
func (w *IndexWalker) Name() *string { return w.index.Name }

// MappedName returns the database name from the `map` argument.
func (w *IndexWalker) MappedName() *string { return w.index.MappedName }

// Algorithm returns the index algorithm if specified.
func (w *IndexWalker) Algorithm() *IndexAlgorithm { return w.index.Algorithm }

// Clustered returns the clustering setting if specified.
func (w *IndexWalker) Clustered() *bool { return w.index.Clustered }

// Fields returns the fields of the index, in declaration order.
func (w *IndexWalker) Fields() []*IndexFieldWalker {
	out := make([]*IndexFieldWalker, len(w.index.Fields))
	for i, f := range w.index.Fields {
		out[i] = &IndexFieldWalker{db: w.db, field: f}
	}
	return out
}

// FinalDatabaseName returns the constraint name in the database: the
// mapped name, or the default name truncated to the bound connector's
// identifier limit.
func (w *IndexWalker) FinalDatabaseName() string {
	if w.index.MappedName != nil {
		return *w.index.MappedName
	}
	table := w.Model().DatabaseName()
	columns := make([]string, len(w.index.Fields))
	for i, f := range w.index.Fields {
		columns[i] = w.db.WalkScalarField(f.Field).DatabaseName()
	}
	if w.IsUnique() {
		return DefaultUniqueName(table, columns, w.db.maxIdentifierLength)
	}
	return DefaultIndexName(table, columns, w.db.maxIdentifierLength)
}

// ConstraintName returns the final name together with its namespace kind.
func (w *IndexWalker) ConstraintName() ConstraintName {
	return indexConstraintName(w.index.Type, w.FinalDatabaseName())
}

// AttributeName returns the attribute as written in the schema, e.g. "@@index" or "@unique".
func (w *IndexWalker) AttributeName() string {
	if w.IsDefinedOnField() {
		return "@unique"
	}
	return "@@" + w.index.Type.String()
}

// AstAttribute returns the AST attribute the index was declared with.
func (w *IndexWalker) AstAttribute() AttributeNode { return w.index.attribute }

// Span returns the span of the declaring attribute.
func (w *IndexWalker) Span() diagnostics.Span { return w.index.attribute.Span() }

// SpanForArgument returns the span of a named argument of the declaring attribute.
func (w *IndexWalker) SpanForArgument(name string) (diagnostics.Span, bool) {
	if w.index.attribute == nil {
		return diagnostics.Span{}, false
	}
	args := w.index.attribute.Args().Named(name)
	if len(args) == 0 {
		return diagnostics.Span{}, false
	}
	return args[0].Span(), true
}

// IndexFieldWalker provides access to a field in an index.
type IndexFieldWalker struct {
	db    *ParserDatabase
	field FieldWithArgs
}

// FieldID returns the scalar field ID.
func (w *IndexFieldWalker) FieldID() ScalarFieldID { return w.field.Field }

// ScalarField returns the scalar field walker.
func (w *IndexFieldWalker) ScalarField() *ScalarFieldWalker { return w.db.WalkScalarField(w.field.Field) }

// SortOrder returns the sort order if specified.
func (w *IndexFieldWalker) SortOrder() *SortOrder { return w.field.SortOrder }

// Length returns the length prefix if specified.
func (w *IndexFieldWalker) Length() *uint32 { return w.field.Length }

// PrimaryKeyWalker provides access to a model's primary key.
type PrimaryKeyWalker struct {
	db      *ParserDatabase
	modelID ModelID
	pk      *IDAttribute
}

// Model returns the owning model.
func (w *PrimaryKeyWalker) Model() *ModelWalker { return w.db.WalkModel(w.modelID) }

// IsDefinedOnField reports whether the key comes from a field-level @id.
func (w *PrimaryKeyWalker) IsDefinedOnField() bool { return w.pk.SourceField != nil }

// Name returns the client name from @@id(name: "...").
func (w *PrimaryKeyWalker) Name() *string { return w.pk.Name }

// MappedName returns the database name from the `map` argument.
func (w *PrimaryKeyWalker) MappedName() *string { return w.pk.MappedName }

// Fields returns the key fields in declaration order.
func (w *PrimaryKeyWalker) Fields() []*IndexFieldWalker {
	out := make([]*IndexFieldWalker, len(w.pk.Fields))
	for i, f := range w.pk.Fields {
		out[i] = &IndexFieldWalker{db: w.db, field: f}
	}
	return out
}

// FinalDatabaseName returns the mapped name or `{table}_pkey`.
func (w *PrimaryKeyWalker) FinalDatabaseName() string {
	if w.pk.MappedName != nil {
		return *w.pk.MappedName
	}
	return DefaultPrimaryKeyName(w.Model().DatabaseName(), w.db.maxIdentifierLength)
}

// Span returns the span of the declaring attribute.
func (w *PrimaryKeyWalker) Span() diagnostics.Span { return w.pk.attribute.Span() }
