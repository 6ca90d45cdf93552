package validation

import (
	"github.com/satishbabariya/pslcheck/psl/connector"
	"github.com/satishbabariya/pslcheck/psl/core"
	"github.com/satishbabariya/pslcheck/psl/database"
	"github.com/satishbabariya/pslcheck/psl/diagnostics"
)

// validateOnlyOneFulltextAttribute rejects a second @@fulltext on a model
// when the connector keeps a single fulltext index per collection. Every
// @@fulltext of the model is reported.
func validateOnlyOneFulltextAttribute(ctx *Context, model *database.ModelWalker) {
	if !ctx.HasFeature(core.PreviewFeatureFullTextIndex) {
		return
	}
	if !ctx.HasCapability(connector.CapabilityFullTextIndex) {
		return
	}
	if ctx.HasCapability(connector.CapabilityMultipleFullTextAttributesPerModel) {
		return
	}

	var fulltext []*database.IndexWalker
	for _, index := range model.Indexes() {
		if index.IsFulltext() {
			fulltext = append(fulltext, index)
		}
	}
	if len(fulltext) < 2 {
		return
	}
	for _, index := range fulltext {
		ctx.PushError(diagnostics.NewAttributeValidationError(
			"The current connector only allows one fulltext attribute per model",
			"@@fulltext",
			attributeSpan(index),
		))
	}
}
