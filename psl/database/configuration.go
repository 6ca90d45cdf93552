package database

import (
	"github.com/satishbabariya/pslcheck/psl/diagnostics"
	"github.com/satishbabariya/pslcheck/psl/parsing/ast"
)

// Datasource is a datasource block.
type Datasource struct {
	Name         string
	Provider     string
	ProviderSpan diagnostics.Span
	// URL is the literal url, empty when it comes from the environment.
	URL string
	// URLEnvVar names the variable of url = env("...").
	URLEnvVar string
	URLSpan   diagnostics.Span
	Span      diagnostics.Span
}

// LoadURL returns the connection url, reading the environment through lookup
// for env("...") urls.
func (d *Datasource) LoadURL(lookup func(string) (string, bool)) (string, error) {
	if d.URLEnvVar == "" {
		return d.URL, nil
	}
	value, ok := lookup(d.URLEnvVar)
	if !ok || value == "" {
		return "", diagnostics.NewEnvironmentVariableNotFoundError(d.URLEnvVar, d.URLSpan)
	}
	return value, nil
}

// Generator is a generator block.
type Generator struct {
	Name                string
	Provider            string
	PreviewFeatures     []string
	PreviewFeaturesSpan diagnostics.Span
	Span                diagnostics.Span
}

// LoadDatasources extracts the datasource blocks. Only one datasource is
// allowed; extra blocks are reported and dropped.
func LoadDatasources(schema *ast.SchemaAst, diags *diagnostics.Diagnostics) []Datasource {
	var out []Datasource
	for i, src := range schema.Sources() {
		if i > 0 {
			diags.PushError(diagnostics.NewDatamodelError(
				"You defined more than one datasource. This is not allowed yet because support for multiple databases has not been implemented yet.",
				src.Span()))
			continue
		}
		ds, ok := loadDatasource(src, diags)
		if ok {
			out = append(out, ds)
		}
	}
	return out
}

func loadDatasource(src *ast.SourceConfig, diags *diagnostics.Diagnostics) (Datasource, bool) {
	ds := Datasource{Name: src.GetName(), Span: src.Span()}

	provider := src.Property("provider")
	if provider == nil {
		diags.PushError(diagnostics.NewSourceArgumentNotFoundError("provider", ds.Name, src.Span()))
		return ds, false
	}
	name, ok := CoerceString(provider.Value, diags)
	if !ok {
		return ds, false
	}
	ds.Provider = name
	ds.ProviderSpan = provider.Value.Span()

	url := src.Property("url")
	if url == nil {
		// driver adapters and prisma.config files may supply the url elsewhere
		return ds, true
	}
	ds.URLSpan = url.Value.Span()
	switch v := url.Value.(type) {
	case *ast.StringValue:
		ds.URL = v.Value
	case *ast.FunctionCall:
		args := v.Arguments.Unnamed()
		if v.Name != "env" || len(args) != 1 {
			diags.PushError(diagnostics.NewValueParserError("string or env(\"...\")", v.String(), v.Span()))
			return ds, true
		}
		if name, ok := CoerceString(args[0].Value, diags); ok {
			ds.URLEnvVar = name
		}
	default:
		diags.PushError(diagnostics.NewValueParserError("string", url.Value.Describe(), url.Value.Span()))
	}
	return ds, true
}

// LoadGenerators extracts the generator blocks.
func LoadGenerators(schema *ast.SchemaAst, diags *diagnostics.Diagnostics) []Generator {
	var out []Generator
	for _, block := range schema.Generators() {
		gen := Generator{Name: block.GetName(), Span: block.Span()}
		if p := block.Property("provider"); p != nil {
			if s, ok := p.Value.(*ast.StringValue); ok {
				gen.Provider = s.Value
			}
		}
		if p := block.Property("previewFeatures"); p != nil {
			gen.PreviewFeaturesSpan = p.Value.Span()
			for _, elem := range CoerceArray(p.Value) {
				if name, ok := CoerceString(elem, diags); ok {
					gen.PreviewFeatures = append(gen.PreviewFeatures, name)
				}
			}
		}
		out = append(out, gen)
	}
	return out
}
