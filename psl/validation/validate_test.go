package validation

import (
	"testing"

	"github.com/hashicorp/go-version"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/satishbabariya/pslcheck/psl/connector"
	"github.com/satishbabariya/pslcheck/psl/core"
	"github.com/satishbabariya/pslcheck/psl/database"
	"github.com/satishbabariya/pslcheck/psl/diagnostics"
)

const mysqlSchema = `
datasource db {
  provider = "mysql"
  url      = env("DATABASE_URL")
}

generator client {
  provider        = "prisma-client-js"
  previewFeatures = ["fullTextIndex", "extendedIndexes"]
}

model Post {
  id      Int    @id
  title   String
  content String

  @@index([title(length: 20)])
  @@fulltext([title, content])
}
`

func TestValidate_MySQL(t *testing.T) {
	res := Validate(core.NewSourceFile("schema.prisma", mysqlSchema), Config{})
	require.NotNil(t, res.Connector)
	assert.Equal(t, "MySQL", res.Connector.Name())
	assert.True(t, res.PreviewFeatures.Contains(core.PreviewFeatureFullTextIndex))
	assert.True(t, res.PreviewFeatures.Contains(core.PreviewFeatureExtendedIndexes))
	assert.False(t, res.Diagnostics.HasErrors(), res.Diagnostics.ToPrettyString("schema.prisma", mysqlSchema))
	require.Len(t, res.Datasources, 1)
	assert.Equal(t, "DATABASE_URL", res.Datasources[0].URLEnvVar)
}

func TestValidate_ProviderOverride(t *testing.T) {
	res := Validate(core.NewSourceFile("schema.prisma", mysqlSchema), Config{Provider: "postgresql"})
	require.NotNil(t, res.Connector)
	assert.Equal(t, "Postgres", res.Connector.Name())
	assert.Equal(t, []string{
		attrError("@@index", msgLengthPrefix),
		attrError("@@fulltext", msgFulltextSupport),
	}, messages(res.Diagnostics))
}

func TestValidate_MissingDatasource(t *testing.T) {
	res := Validate(core.NewSourceFile("schema.prisma", `
model A {
  id Int @id
}`), Config{})
	assert.Nil(t, res.Connector)
	assert.Equal(t, []string{"A datasource must be defined."}, messages(res.Diagnostics))
}

func TestValidate_UnknownProvider(t *testing.T) {
	src := `
datasource db {
  provider = "oracle"
}`
	res := Validate(core.NewSourceFile("schema.prisma", src), Config{})
	errs := res.Diagnostics.Errors()
	require.Len(t, errs, 1)
	assert.Equal(t, `Datasource provider not known: "oracle".`, errs[0].Message())
	assert.Equal(t, `"oracle"`, src[errs[0].Span().Start:errs[0].Span().End])
}

func TestValidate_UnknownPreviewFeature(t *testing.T) {
	src := `
datasource db {
  provider = "sqlite"
}
generator client {
  provider        = "prisma-client-js"
  previewFeatures = ["fullTextIndexes"]
}`
	res := Validate(core.NewSourceFile("schema.prisma", src), Config{})
	errs := res.Diagnostics.Errors()
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Message(), `The preview feature "fullTextIndexes" is not known.`)
}

func TestValidate_ParseError(t *testing.T) {
	res := Validate(core.NewSourceFile("schema.prisma", "model {"), Config{})
	assert.True(t, res.Diagnostics.HasErrors())
	assert.Nil(t, res.Db)
}

func TestValidate_ServerRefinement(t *testing.T) {
	server := &connector.ServerInfo{Provider: "mysql", Version: version.Must(version.NewVersion("5.5.62"))}
	res := Validate(core.NewSourceFile("schema.prisma", mysqlSchema), Config{Server: server})

	require.NotNil(t, res.Connector)
	assert.False(t, res.Connector.HasCapability(connector.CapabilityFullTextIndex))
	assert.Equal(t, []string{attrError("@@fulltext", msgFulltextSupport)}, messages(res.Diagnostics))
	require.Len(t, res.Diagnostics.Warnings(), 1)
	assert.Contains(t, res.Diagnostics.Warnings()[0].Message(), "does not support FullTextIndex")
}

// staticCaps lets a test drive the rules without a connector.
type staticCaps connector.Capabilities

func (s staticCaps) HasCapability(c connector.Capability) bool {
	return connector.Capabilities(s).Has(c)
}

type noScopes struct{}

func (noScopes) ScopeViolations(database.ModelID, database.ConstraintName) []connector.ConstraintScope {
	return nil
}

func TestValidateIndexes_CustomQueries(t *testing.T) {
	diags := diagnostics.NewDiagnostics()
	res := Validate(core.NewSourceFile("schema.prisma", `
model A {
  id Int @id
  a  Int
  b  Int
  @@index([a], map: "x", type: Hash)
  @@index([b], map: "x")
}`), Config{Registry: connector.NewRegistry(testConnector()), Provider: testProvider})
	require.NotNil(t, res.Db)

	ctx := &Context{
		Db:          res.Db,
		Connector:   staticCaps(connector.NewCapabilities(connector.CapabilityUsingHashIndex)),
		Features:    core.NewPreviewFeatures(core.PreviewFeatureExtendedIndexes),
		Scopes:      noScopes{},
		Diagnostics: &diags,
	}
	ValidateIndexes(ctx, Options{Jobs: 2})
	assert.Empty(t, messages(diags))
}
