package validation

import (
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/satishbabariya/pslcheck/psl/connector"
	"github.com/satishbabariya/pslcheck/psl/core"
)

// textRuns counts the maximal runs of unsorted fields.
func textRuns(sorted []bool) int {
	runs := 0
	for i, s := range sorted {
		if !s && (i == 0 || sorted[i-1]) {
			runs++
		}
	}
	return runs
}

// fulltextSchema builds a model with one @@fulltext over n fields, sorting
// field i when sorted[i] is set.
func fulltextSchema(sorted []bool) string {
	var b strings.Builder
	b.WriteString("model A {\n  id Int @id\n")
	refs := make([]string, len(sorted))
	for i, s := range sorted {
		fmt.Fprintf(&b, "  f%d String\n", i)
		refs[i] = fmt.Sprintf("f%d", i)
		if s {
			refs[i] += "(sort: Desc)"
		}
	}
	fmt.Fprintf(&b, "  @@fulltext([%s])\n  @@index([%s], map: \"dup\")\n  @@unique([%s], map: \"dup\")\n}\n",
		strings.Join(refs, ", "), refs[0], refs[0])
	return b.String()
}

func TestProperty_TextFieldsBundled(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("bundled iff at most one run of unsorted fields", prop.ForAll(
		func(sorted []bool) bool {
			return textFieldsBundled(sorted) == (textRuns(sorted) <= 1)
		},
		gen.SliceOf(gen.Bool()),
	))

	properties.TestingRun(t)
}

func TestProperty_ValidationIsDeterministic(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	properties := gopter.NewProperties(parameters)

	conn := testConnector(connector.CapabilityFullTextIndex, connector.CapabilitySortOrderInFullTextIndex)
	run := func(src string, jobs int) Result {
		return Validate(core.NewSourceFile("schema.prisma", src), Config{
			Registry:        connector.NewRegistry(conn),
			Provider:        testProvider,
			PreviewFeatures: []string{"fullTextIndex"},
			Jobs:            jobs,
		})
	}

	properties.Property("repeated and parallel runs give identical diagnostics", prop.ForAll(
		func(sorted []bool) bool {
			src := fulltextSchema(sorted)
			first := run(src, 1)
			second := run(src, 1)
			parallel := run(src, 8)
			return reflect.DeepEqual(first.Diagnostics.Errors(), second.Diagnostics.Errors()) &&
				reflect.DeepEqual(first.Diagnostics.Errors(), parallel.Diagnostics.Errors())
		},
		gen.SliceOfN(6, gen.Bool()),
	))

	properties.Property("bundling error iff more than one text run", prop.ForAll(
		func(sorted []bool) bool {
			res := run(fulltextSchema(sorted), 4)
			want := attrError("@@fulltext", msgBundled)
			got := count(messages(res.Diagnostics), want)
			if textRuns(sorted) > 1 {
				return got == 1
			}
			return got == 0
		},
		gen.SliceOfN(6, gen.Bool()),
	))

	properties.TestingRun(t)
}
