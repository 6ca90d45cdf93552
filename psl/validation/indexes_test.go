package validation

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/satishbabariya/pslcheck/psl/connector"
	"github.com/satishbabariya/pslcheck/psl/core"
	"github.com/satishbabariya/pslcheck/psl/diagnostics"
)

const testProvider = "test"

func testConnector(caps ...connector.Capability) connector.Connector {
	return connector.NewBaseConnector("Test", []string{testProvider},
		connector.NewCapabilities(caps...),
		[]connector.ConstraintScope{connector.ScopeModelKeyIndex},
		64,
	)
}

var allIndexCapabilities = connector.IndexCapabilities

func validate(t *testing.T, src string, conn connector.Connector, features ...string) Result {
	t.Helper()
	res := Validate(core.NewSourceFile("schema.prisma", src), Config{
		Registry:        connector.NewRegistry(conn),
		Provider:        testProvider,
		PreviewFeatures: features,
	})
	require.NotNil(t, res.Connector, res.Diagnostics.ToPrettyString("schema.prisma", src))
	return res
}

func messages(diags diagnostics.Diagnostics) []string {
	var out []string
	for _, err := range diags.Errors() {
		out = append(out, err.Message())
	}
	return out
}

func count(msgs []string, want string) int {
	n := 0
	for _, m := range msgs {
		if m == want {
			n++
		}
	}
	return n
}

func attrError(tag, message string) string {
	return fmt.Sprintf("Error parsing attribute \"%s\": %s", tag, message)
}

const (
	msgExtendedParams   = "You must enable `extendedIndexes` preview feature to use sort or length parameters."
	msgLengthPrefix     = "The length argument is not supported in an index definition with the current connector"
	msgHashUnsupported  = "The given type argument is not supported with the current connector"
	msgFulltextFeature  = "You must enable `fullTextIndex` preview feature to be able to define a @@fulltext index."
	msgFulltextSupport  = "Defining fulltext indexes is not supported with the current connector."
	msgAlgorithmFeature = "You must enable `extendedIndexes` preview feature to be able to define the index type."
	msgFulltextLength   = "The length argument is not supported in a @@fulltext attribute."
	msgFulltextSort     = "The sort argument is not supported in a @@fulltext attribute in the current connector."
	msgBundled          = "All index fields must be listed adjacently in the fields argument."
)

func TestUsesLengthOrSortWithoutPreviewFlag(t *testing.T) {
	schemas := map[string]string{
		"length": `
model A {
  id Int    @id
  a  String
  @@index([a(length: 10)])
}`,
		"sort": `
model A {
  id Int    @id
  a  String
  @@index([a(sort: Desc)])
}`,
		"field unique": `
model A {
  id Int    @id
  a  String @unique(sort: Desc)
}`,
	}
	connectors := map[string]connector.Connector{
		"no capabilities":  testConnector(),
		"all capabilities": testConnector(allIndexCapabilities...),
	}

	for schemaName, src := range schemas {
		for connName, conn := range connectors {
			t.Run(schemaName+"/"+connName, func(t *testing.T) {
				tag := "@@index"
				if schemaName == "field unique" {
					tag = "@unique"
				}
				want := attrError(tag, msgExtendedParams)

				disabled := validate(t, src, conn)
				assert.Equal(t, 1, count(messages(disabled.Diagnostics), want))

				enabled := validate(t, src, conn, "extendedIndexes")
				assert.Equal(t, 0, count(messages(enabled.Diagnostics), want))
			})
		}
	}
}

func TestFieldLengthPrefixSupported(t *testing.T) {
	src := `
model A {
  id Int    @id
  a  String
  @@index([a(length: 10)])
}`
	want := attrError("@@index", msgLengthPrefix)

	res := validate(t, src, testConnector(), "extendedIndexes")
	assert.Equal(t, []string{want}, messages(res.Diagnostics))

	res = validate(t, src, testConnector(connector.CapabilityIndexColumnLengthPrefixing), "extendedIndexes")
	assert.Empty(t, messages(res.Diagnostics))
}

func TestIndexAlgorithmIsSupported(t *testing.T) {
	src := `
model A {
  id Int @id
  a  Int
  @@index([a], type: Hash)
}`
	want := attrError("@@index", msgHashUnsupported)

	for _, features := range [][]string{nil, {"extendedIndexes"}, {"extendedIndexes", "fullTextIndex"}} {
		t.Run(strings.Join(features, ","), func(t *testing.T) {
			res := validate(t, src, testConnector(), features...)
			assert.Equal(t, 1, count(messages(res.Diagnostics), want))

			res = validate(t, src, testConnector(connector.CapabilityUsingHashIndex), features...)
			assert.Equal(t, 0, count(messages(res.Diagnostics), want))
		})
	}

	t.Run("btree is always supported", func(t *testing.T) {
		res := validate(t, strings.Replace(src, "Hash", "BTree", 1), testConnector(), "extendedIndexes")
		assert.Empty(t, messages(res.Diagnostics))
	})

	t.Run("span is the type argument", func(t *testing.T) {
		res := validate(t, src, testConnector(), "extendedIndexes")
		require.Len(t, res.Diagnostics.Errors(), 1)
		span := res.Diagnostics.Errors()[0].Span()
		assert.Equal(t, "type: Hash", src[span.Start:span.End])
	})
}

func TestIndexAlgorithmPreviewFeature(t *testing.T) {
	src := `
model A {
  id Int @id
  a  Int
  @@index([a], type: BTree)
}`
	want := attrError("@@index", msgAlgorithmFeature)

	res := validate(t, src, testConnector(allIndexCapabilities...))
	assert.Equal(t, []string{want}, messages(res.Diagnostics))

	res = validate(t, src, testConnector(allIndexCapabilities...), "extendedIndexes")
	assert.Empty(t, messages(res.Diagnostics))
}

func TestFulltextGates(t *testing.T) {
	src := `
model A {
  id Int    @id
  a  String
  b  String
  @@fulltext([a(length: 10), b(sort: Desc)])
}`
	later := []string{
		attrError("@@fulltext", msgFulltextLength),
		attrError("@@fulltext", msgFulltextSort),
		attrError("@@fulltext", msgBundled),
	}

	t.Run("feature and capability missing", func(t *testing.T) {
		res := validate(t, src, testConnector(), "extendedIndexes")
		msgs := messages(res.Diagnostics)
		assert.Equal(t, 1, count(msgs, attrError("@@fulltext", msgFulltextFeature)))
		assert.Equal(t, 1, count(msgs, attrError("@@fulltext", msgFulltextSupport)))
		for _, m := range later {
			assert.NotContains(t, msgs, m)
		}
	})

	t.Run("feature missing", func(t *testing.T) {
		res := validate(t, src, testConnector(allIndexCapabilities...), "extendedIndexes")
		msgs := messages(res.Diagnostics)
		assert.Equal(t, []string{attrError("@@fulltext", msgFulltextFeature)}, msgs)
	})

	t.Run("capability missing", func(t *testing.T) {
		res := validate(t, src, testConnector(connector.CapabilityIndexColumnLengthPrefixing), "extendedIndexes", "fullTextIndex")
		msgs := messages(res.Diagnostics)
		assert.Equal(t, []string{attrError("@@fulltext", msgFulltextSupport)}, msgs)
	})

	t.Run("enabled without sort support", func(t *testing.T) {
		conn := testConnector(connector.CapabilityFullTextIndex, connector.CapabilityIndexColumnLengthPrefixing)
		res := validate(t, src, conn, "extendedIndexes", "fullTextIndex")
		assert.Equal(t, later[:2], messages(res.Diagnostics))
	})

	t.Run("enabled with sort support", func(t *testing.T) {
		conn := testConnector(connector.CapabilityFullTextIndex, connector.CapabilitySortOrderInFullTextIndex, connector.CapabilityIndexColumnLengthPrefixing)
		res := validate(t, src, conn, "extendedIndexes", "fullTextIndex")
		assert.Equal(t, later[:1], messages(res.Diagnostics))
	})
}

func TestFulltextTextColumnsShouldBeBundledTogether(t *testing.T) {
	mongoLike := testConnector(connector.CapabilityFullTextIndex, connector.CapabilitySortOrderInFullTextIndex)
	want := attrError("@@fulltext", msgBundled)

	tests := []struct {
		name   string
		fields string
		errors int
	}{
		{"sorted only", "a(sort: Asc), b(sort: Desc)", 0},
		{"text only", "a, b", 0},
		{"text between sorted", "a(sort: Asc), b, c(sort: Desc)", 0},
		{"two text runs", "a, b(sort: Asc), c", 1},
		{"two text runs and more", "a, b(sort: Asc), c, d(sort: Asc), e", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := fmt.Sprintf(`
model A {
  id Int    @id
  a  String
  b  String
  c  String
  d  String
  e  String
  @@fulltext([%s])
}`, tt.fields)
			res := validate(t, src, mongoLike, "extendedIndexes", "fullTextIndex")
			assert.Equal(t, tt.errors, count(messages(res.Diagnostics), want))
			assert.Len(t, res.Diagnostics.Errors(), tt.errors)
		})
	}

	t.Run("needs sort support", func(t *testing.T) {
		src := `
model A {
  id Int    @id
  a  String
  b  String
  c  String
  @@fulltext([a, b(sort: Asc), c])
}`
		conn := testConnector(connector.CapabilityFullTextIndex)
		res := validate(t, src, conn, "extendedIndexes", "fullTextIndex")
		assert.Equal(t, []string{attrError("@@fulltext", msgFulltextSort)}, messages(res.Diagnostics))
	})
}

func TestHasAUniqueConstraintName(t *testing.T) {
	t.Run("same model", func(t *testing.T) {
		src := `
model A {
  id Int @id
  a  Int
  b  Int
  @@index([a], map: "idx_a")
  @@unique([b], map: "idx_a")
}`
		res := validate(t, src, testConnector())
		errs := res.Diagnostics.Errors()
		require.Len(t, errs, 2)
		assert.Equal(t,
			attrError("@@index", "The given constraint name `idx_a` has to be unique in the following namespace: on model `A` for indexes and unique constraints. Please provide a different name using the `map` argument."),
			errs[0].Message())
		assert.Equal(t,
			attrError("@@unique", "The given constraint name `idx_a` has to be unique in the following namespace: on model `A` for indexes and unique constraints. Please provide a different name using the `map` argument."),
			errs[1].Message())

		span := errs[0].Span()
		assert.Equal(t, `map: "idx_a"`, src[span.Start:span.End])
	})

	t.Run("different models", func(t *testing.T) {
		src := `
model A {
  id Int @id
  a  Int
  @@index([a], map: "idx_a")
}
model B {
  id Int @id
  a  Int
  @@index([a], map: "idx_a")
}`
		res := validate(t, src, testConnector())
		assert.Empty(t, messages(res.Diagnostics))
	})

	t.Run("default names collide", func(t *testing.T) {
		src := `
model A {
  id Int @id
  a  Int
  @@index([a])
  @@index([a], type: BTree)
}`
		res := validate(t, src, testConnector(), "extendedIndexes")
		msgs := messages(res.Diagnostics)
		assert.Equal(t, 2, count(msgs, attrError("@@index", "The given constraint name `A_a_idx` has to be unique in the following namespace: on model `A` for indexes and unique constraints. Please provide a different name using the `map` argument.")))
	})

	t.Run("one error per violated scope", func(t *testing.T) {
		src := `
model A {
  id Int @id
  a  Int
  @@index([a], map: "dup")
}
model B {
  id Int @id
  b  Int
  c  Int
  @@index([b], map: "dup")
  @@index([c], map: "dup")
}`
		conn := connector.NewBaseConnector("Test", []string{testProvider}, 0,
			[]connector.ConstraintScope{connector.ScopeGlobalKeyIndex, connector.ScopeModelKeyIndex}, 64)
		res := validate(t, src, conn)
		msgs := messages(res.Diagnostics)
		// A: global only; B: global and model, twice
		assert.Len(t, msgs, 5)
		assert.Equal(t, 3, count(msgs, attrError("@@index", "The given constraint name `dup` has to be unique in the following namespace: global for indexes and unique constraints. Please provide a different name using the `map` argument.")))
	})

	t.Run("span falls back to the attribute", func(t *testing.T) {
		src := `
model A {
  id Int @id
  a  Int @unique
  @@unique([a])
}`
		res := validate(t, src, testConnector())
		errs := res.Diagnostics.Errors()
		require.Len(t, errs, 2)
		first := errs[0].Span()
		assert.Equal(t, "@unique", src[first.Start:first.End])
		assert.Equal(t, "@unique", errs[0].Attribute())
		second := errs[1].Span()
		assert.Equal(t, "@@unique([a])", src[second.Start:second.End])
	})
}

func TestValidateOnlyOneFulltextAttribute(t *testing.T) {
	src := `
model A {
  id Int    @id
  a  String
  b  String
  @@fulltext([a])
  @@fulltext([b])
}`
	want := attrError("@@fulltext", "The current connector only allows one fulltext attribute per model")

	single := testConnector(connector.CapabilityFullTextIndex)
	res := validate(t, src, single, "fullTextIndex")
	assert.Equal(t, 2, count(messages(res.Diagnostics), want))

	multiple := testConnector(connector.CapabilityFullTextIndex, connector.CapabilityMultipleFullTextAttributesPerModel)
	res = validate(t, src, multiple, "fullTextIndex")
	assert.Equal(t, 0, count(messages(res.Diagnostics), want))
}

func TestRulesDoNotSuppressEachOther(t *testing.T) {
	src := `
model A {
  id Int    @id
  a  String
  @@index([a(length: 10)], type: Hash)
}`
	res := validate(t, src, testConnector())
	assert.Equal(t, []string{
		attrError("@@index", msgExtendedParams),
		attrError("@@index", msgLengthPrefix),
		attrError("@@index", msgHashUnsupported),
		attrError("@@index", msgAlgorithmFeature),
	}, messages(res.Diagnostics))
}
