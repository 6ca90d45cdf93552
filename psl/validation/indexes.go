package validation

import (
	"fmt"

	"github.com/satishbabariya/pslcheck/psl/connector"
	"github.com/satishbabariya/pslcheck/psl/core"
	"github.com/satishbabariya/pslcheck/psl/database"
	"github.com/satishbabariya/pslcheck/psl/diagnostics"
)

// indexValidation checks one index declaration and pushes its findings to ctx.
type indexValidation func(ctx *Context, index *database.IndexWalker)

// indexValidations run in this order for every index, so diagnostics come
// out in the same order on every run.
var indexValidations = []indexValidation{
	hasAUniqueConstraintName,
	usesLengthOrSortWithoutPreviewFlag,
	fieldLengthPrefixSupported,
	indexAlgorithmIsSupported,
	fulltextIndexPreviewFeatureEnabled,
	fulltextIndexSupported,
	indexAlgorithmPreviewFeature,
	fulltextColumnsShouldNotDefineLength,
	fulltextColumnSortIsSupported,
	fulltextTextColumnsShouldBeBundledTogether,
}

// validateIndex runs every index rule against one declaration.
func validateIndex(ctx *Context, index *database.IndexWalker) {
	for _, rule := range indexValidations {
		rule(ctx, index)
	}
}

// attributeSpan is the span of the declaring attribute, falling back to the model.
func attributeSpan(index *database.IndexWalker, arguments ...string) diagnostics.Span {
	lookups := make([]diagnostics.SpanLookup, 0, len(arguments)+1)
	for _, name := range arguments {
		lookups = append(lookups, func() (diagnostics.Span, bool) {
			return index.SpanForArgument(name)
		})
	}
	lookups = append(lookups, func() (diagnostics.Span, bool) {
		if index.AstAttribute() == nil {
			return diagnostics.Span{}, false
		}
		return index.Span(), true
	})
	return diagnostics.FirstSpan(index.Model().Span(), lookups...)
}

func anyField(index *database.IndexWalker, pred func(*database.IndexFieldWalker) bool) bool {
	for _, field := range index.Fields() {
		if pred(field) {
			return true
		}
	}
	return false
}

func hasLength(f *database.IndexFieldWalker) bool { return f.Length() != nil }

func hasSortOrder(f *database.IndexFieldWalker) bool { return f.SortOrder() != nil }

// fulltextEnabled reports whether @@fulltext is usable at all: the preview
// feature is on, the connector supports it and the index is a fulltext one.
func fulltextEnabled(ctx *Context, index *database.IndexWalker) bool {
	return ctx.HasFeature(core.PreviewFeatureFullTextIndex) &&
		ctx.HasCapability(connector.CapabilityFullTextIndex) &&
		index.IsFulltext()
}

// hasAUniqueConstraintName validates index and unique constraint names
// against the naming scopes of the connector. One error per violated scope.
func hasAUniqueConstraintName(ctx *Context, index *database.IndexWalker) {
	violations := ctx.scopeViolations(index)
	if len(violations) == 0 {
		return
	}

	name := index.FinalDatabaseName()
	model := index.Model()
	span := attributeSpan(index, "map", "name")

	for _, scope := range violations {
		message := fmt.Sprintf(
			"The given constraint name `%s` has to be unique in the following namespace: %s. Please provide a different name using the `map` argument.",
			name, scope.Description(model.Name()),
		)
		ctx.PushError(diagnostics.NewAttributeValidationError(message, index.AttributeName(), span))
	}
}

// usesLengthOrSortWithoutPreviewFlag: sort and length need extendedIndexes.
func usesLengthOrSortWithoutPreviewFlag(ctx *Context, index *database.IndexWalker) {
	if ctx.HasFeature(core.PreviewFeatureExtendedIndexes) {
		return
	}
	if !anyField(index, func(f *database.IndexFieldWalker) bool { return hasLength(f) || hasSortOrder(f) }) {
		return
	}
	ctx.PushError(diagnostics.NewAttributeValidationError(
		"You must enable `extendedIndexes` preview feature to use sort or length parameters.",
		index.AttributeName(),
		attributeSpan(index),
	))
}

// fieldLengthPrefixSupported: the database must support length prefixes.
func fieldLengthPrefixSupported(ctx *Context, index *database.IndexWalker) {
	if ctx.HasCapability(connector.CapabilityIndexColumnLengthPrefixing) {
		return
	}
	if !anyField(index, hasLength) {
		return
	}
	ctx.PushError(diagnostics.NewAttributeValidationError(
		"The length argument is not supported in an index definition with the current connector",
		index.AttributeName(),
		attributeSpan(index),
	))
}

// indexAlgorithmIsSupported: is `Hash` supported as `type`.
func indexAlgorithmIsSupported(ctx *Context, index *database.IndexWalker) {
	if ctx.HasCapability(connector.CapabilityUsingHashIndex) {
		return
	}
	algo := index.Algorithm()
	if algo == nil || *algo != database.IndexAlgorithmHash {
		return
	}
	ctx.PushError(diagnostics.NewAttributeValidationError(
		"The given type argument is not supported with the current connector",
		"@@index",
		attributeSpan(index, "type"),
	))
}

// fulltextIndexPreviewFeatureEnabled: @@fulltext needs fullTextIndex.
func fulltextIndexPreviewFeatureEnabled(ctx *Context, index *database.IndexWalker) {
	if ctx.HasFeature(core.PreviewFeatureFullTextIndex) {
		return
	}
	if !index.IsFulltext() {
		return
	}
	ctx.PushError(diagnostics.NewAttributeValidationError(
		"You must enable `fullTextIndex` preview feature to be able to define a @@fulltext index.",
		"@@fulltext",
		attributeSpan(index),
	))
}

// fulltextIndexSupported: @@fulltext only where the database has it.
func fulltextIndexSupported(ctx *Context, index *database.IndexWalker) {
	if ctx.HasCapability(connector.CapabilityFullTextIndex) {
		return
	}
	if !index.IsFulltext() {
		return
	}
	ctx.PushError(diagnostics.NewAttributeValidationError(
		"Defining fulltext indexes is not supported with the current connector.",
		"@@fulltext",
		attributeSpan(index),
	))
}

// indexAlgorithmPreviewFeature: `type` needs extendedIndexes.
func indexAlgorithmPreviewFeature(ctx *Context, index *database.IndexWalker) {
	if ctx.HasFeature(core.PreviewFeatureExtendedIndexes) {
		return
	}
	if index.Algorithm() == nil {
		return
	}
	ctx.PushError(diagnostics.NewAttributeValidationError(
		"You must enable `extendedIndexes` preview feature to be able to define the index type.",
		"@@index",
		attributeSpan(index, "type"),
	))
}

// fulltextColumnsShouldNotDefineLength: no `length` inside @@fulltext.
func fulltextColumnsShouldNotDefineLength(ctx *Context, index *database.IndexWalker) {
	if !fulltextEnabled(ctx, index) {
		return
	}
	if !anyField(index, hasLength) {
		return
	}
	ctx.PushError(diagnostics.NewAttributeValidationError(
		"The length argument is not supported in a @@fulltext attribute.",
		index.AttributeName(),
		attributeSpan(index),
	))
}

// fulltextColumnSortIsSupported: only some connectors allow `sort` inside @@fulltext.
func fulltextColumnSortIsSupported(ctx *Context, index *database.IndexWalker) {
	if !fulltextEnabled(ctx, index) {
		return
	}
	if ctx.HasCapability(connector.CapabilitySortOrderInFullTextIndex) {
		return
	}
	if !anyField(index, hasSortOrder) {
		return
	}
	ctx.PushError(diagnostics.NewAttributeValidationError(
		"The sort argument is not supported in a @@fulltext attribute in the current connector.",
		index.AttributeName(),
		attributeSpan(index),
	))
}

// fulltextTextColumnsShouldBeBundledTogether: the text fields of a fulltext
// index form one run, so `@@fulltext([a(sort: Asc), b, c(sort: Asc), d])`
// is rejected.
func fulltextTextColumnsShouldBeBundledTogether(ctx *Context, index *database.IndexWalker) {
	if !fulltextEnabled(ctx, index) {
		return
	}
	if !ctx.HasCapability(connector.CapabilitySortOrderInFullTextIndex) {
		return
	}

	sorted := make([]bool, 0, len(index.Fields()))
	for _, field := range index.Fields() {
		sorted = append(sorted, hasSortOrder(field))
	}
	if textFieldsBundled(sorted) {
		return
	}
	ctx.PushError(diagnostics.NewAttributeValidationError(
		"All index fields must be listed adjacently in the fields argument.",
		"@@fulltext",
		attributeSpan(index),
	))
}
