package validation

import (
	"github.com/satishbabariya/pslcheck/internal/debug"
	"github.com/satishbabariya/pslcheck/psl/connector"
	"github.com/satishbabariya/pslcheck/psl/core"
	"github.com/satishbabariya/pslcheck/psl/database"
	"github.com/satishbabariya/pslcheck/psl/diagnostics"
	"github.com/satishbabariya/pslcheck/psl/parsing"
	"github.com/satishbabariya/pslcheck/psl/parsing/ast"
)

// Config selects the connector and features a schema is validated against.
type Config struct {
	// Registry resolves provider names. Nil means connector.BuiltinRegistry().
	Registry *connector.Registry
	// Provider overrides the datasource provider. A schema without a
	// datasource is accepted when it is set.
	Provider string
	// PreviewFeatures are enabled on top of the generators' previewFeatures.
	PreviewFeatures []string
	// Server, when known, drops the capabilities the running server lacks.
	Server *connector.ServerInfo
	Jobs   int
}

// Result is the outcome of validating one schema file.
type Result struct {
	Schema          *ast.SchemaAst
	Db              *database.ParserDatabase
	Datasources     []database.Datasource
	Generators      []database.Generator
	Connector       connector.Connector
	PreviewFeatures core.PreviewFeatures
	Diagnostics     diagnostics.Diagnostics
}

// Validate parses, lowers and validates a schema file. It never fails: every
// problem ends up in Result.Diagnostics.
func Validate(file core.SourceFile, cfg Config) Result {
	defer debug.Timed("Validated schema", "file", file.Path)()

	res := Result{Diagnostics: diagnostics.NewDiagnostics()}
	diags := &res.Diagnostics

	res.Schema = parsing.ParseSchema(file.Path, file.Data, diags)
	if diags.HasErrors() {
		return res
	}

	res.Db = database.New(res.Schema, diags)
	res.Datasources = database.LoadDatasources(res.Schema, diags)
	res.Generators = database.LoadGenerators(res.Schema, diags)

	conn, ok := resolveConnector(cfg, res.Datasources, diags)
	if !ok {
		return res
	}
	res.Connector = conn
	res.PreviewFeatures = previewFeatures(cfg, res.Generators, diags)

	debug.Debug("Validation context",
		"connector", conn.Name(),
		"capabilities", conn.Capabilities().String(),
		"preview_features", res.PreviewFeatures.String())

	res.Db.BindConnector(conn)
	ValidateIndexes(NewContext(res.Db, conn, res.PreviewFeatures, diags), Options{Jobs: cfg.Jobs})
	return res
}

func resolveConnector(cfg Config, sources []database.Datasource, diags *diagnostics.Diagnostics) (connector.Connector, bool) {
	registry := cfg.Registry
	if registry == nil {
		registry = connector.BuiltinRegistry()
	}

	provider, span := cfg.Provider, diagnostics.EmptySpan()
	if provider == "" {
		if len(sources) == 0 {
			diags.PushError(diagnostics.NewValidationError("A datasource must be defined.", diagnostics.EmptySpan()))
			return nil, false
		}
		provider, span = sources[0].Provider, sources[0].ProviderSpan
	}

	conn, err := registry.Lookup(provider)
	if err != nil {
		debug.Debug("Connector lookup failed", "error", err)
		diags.PushError(diagnostics.NewDatasourceProviderNotKnownError(provider, span))
		return nil, false
	}

	if cfg.Server != nil && cfg.Server.Version != nil {
		refined, dropped := connector.RefineForServer(conn, cfg.Server.Version)
		for _, c := range dropped {
			diags.PushWarning(diagnostics.NewCapabilityRefinedWarning(c.String(), conn.ProviderName(), cfg.Server.Version.String(), span))
		}
		conn = refined
	}
	return conn, true
}

func previewFeatures(cfg Config, generators []database.Generator, diags *diagnostics.Diagnostics) core.PreviewFeatures {
	var features core.PreviewFeatures
	for _, gen := range generators {
		features = features.Union(core.ParsePreviewFeatures(gen.PreviewFeatures, gen.PreviewFeaturesSpan, diags))
	}
	if len(cfg.PreviewFeatures) > 0 {
		features = features.Union(core.ParsePreviewFeatures(cfg.PreviewFeatures, diagnostics.EmptySpan(), diags))
	}
	return features
}
