// Package validation checks index, unique and fulltext declarations against
// the active connector and the enabled preview features.
package validation

import (
	"github.com/satishbabariya/pslcheck/psl/connector"
	"github.com/satishbabariya/pslcheck/psl/core"
	"github.com/satishbabariya/pslcheck/psl/database"
	"github.com/satishbabariya/pslcheck/psl/diagnostics"
)

// CapabilityQuery answers whether the active connector supports a capability.
type CapabilityQuery interface {
	HasCapability(capability connector.Capability) bool
}

// FeatureQuery answers whether a preview feature is enabled.
type FeatureQuery interface {
	Contains(feature core.PreviewFeature) bool
}

// ScopeResolver returns the naming scopes in which a constraint name collides.
type ScopeResolver interface {
	ScopeViolations(id database.ModelID, name database.ConstraintName) []connector.ConstraintScope
}

// Context provides context for validation operations.
type Context struct {
	Db          *database.ParserDatabase
	Connector   CapabilityQuery
	Features    FeatureQuery
	Scopes      ScopeResolver
	Diagnostics *diagnostics.Diagnostics
}

// NewContext creates a context whose scope resolver is the database itself.
// The database must already be bound to the connector.
func NewContext(db *database.ParserDatabase, caps CapabilityQuery, features FeatureQuery, diags *diagnostics.Diagnostics) *Context {
	return &Context{
		Db:          db,
		Connector:   caps,
		Features:    features,
		Scopes:      db,
		Diagnostics: diags,
	}
}

// withDiagnostics returns a copy of ctx writing into diags.
func (ctx *Context) withDiagnostics(diags *diagnostics.Diagnostics) *Context {
	c := *ctx
	c.Diagnostics = diags
	return &c
}

// PushError adds an error to the diagnostics.
func (ctx *Context) PushError(err diagnostics.DatamodelError) {
	ctx.Diagnostics.PushError(err)
}

// HasCapability checks if the connector has a specific capability.
func (ctx *Context) HasCapability(capability connector.Capability) bool {
	if ctx.Connector == nil {
		return false
	}
	return ctx.Connector.HasCapability(capability)
}

// HasFeature checks if a preview feature is enabled.
func (ctx *Context) HasFeature(feature core.PreviewFeature) bool {
	if ctx.Features == nil {
		return false
	}
	return ctx.Features.Contains(feature)
}

func (ctx *Context) scopeViolations(index *database.IndexWalker) []connector.ConstraintScope {
	if ctx.Scopes == nil {
		return nil
	}
	return ctx.Scopes.ScopeViolations(index.ModelID(), index.ConstraintName())
}
