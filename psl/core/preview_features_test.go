package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/satishbabariya/pslcheck/psl/diagnostics"
)

func TestParsePreviewFeature(t *testing.T) {
	f, ok := ParsePreviewFeature("FULLTEXTINDEX")
	require.True(t, ok)
	assert.Equal(t, PreviewFeatureFullTextIndex, f)
	assert.Equal(t, "fullTextIndex", f.String())

	_, ok = ParsePreviewFeature("nope")
	assert.False(t, ok)
}

func TestPreviewFeatures_Set(t *testing.T) {
	set := NewPreviewFeatures(PreviewFeatureViews, PreviewFeatureExtendedIndexes)

	assert.True(t, set.Contains(PreviewFeatureExtendedIndexes))
	assert.True(t, set.Contains(PreviewFeatureViews))
	assert.False(t, set.Contains(PreviewFeatureFullTextIndex))
	assert.Equal(t, 2, set.Len())
	assert.Equal(t, []PreviewFeature{PreviewFeatureExtendedIndexes, PreviewFeatureViews}, set.Iter())
	assert.Equal(t, "extendedIndexes, views", set.String())

	var empty PreviewFeatures
	assert.Empty(t, empty.Iter())
	assert.Equal(t, set, empty.Union(set))
}

func TestParsePreviewFeatures(t *testing.T) {
	span := diagnostics.NewSpan(3, 9, diagnostics.FileIDZero)

	t.Run("known features", func(t *testing.T) {
		diags := diagnostics.NewDiagnostics()
		set := ParsePreviewFeatures([]string{"fullTextIndex", "extendedIndexes"}, span, &diags)
		assert.Equal(t, 0, diags.Len())
		assert.True(t, set.Contains(PreviewFeatureFullTextIndex))
		assert.True(t, set.Contains(PreviewFeatureExtendedIndexes))
	})

	t.Run("unknown feature is an error", func(t *testing.T) {
		diags := diagnostics.NewDiagnostics()
		set := ParsePreviewFeatures([]string{"fooBar"}, span, &diags)
		assert.Equal(t, 0, set.Len())
		require.Len(t, diags.Errors(), 1)
		msg := diags.Errors()[0].Message()
		assert.True(t, strings.HasPrefix(msg, `The preview feature "fooBar" is not known. Expected one of: `))
		assert.Contains(t, msg, "fullTextIndex")
		assert.NotContains(t, msg, "namedConstraints")
		assert.Equal(t, span, diags.Errors()[0].Span())
	})

	t.Run("stabilized feature warns", func(t *testing.T) {
		diags := diagnostics.NewDiagnostics()
		set := ParsePreviewFeatures([]string{"namedConstraints", "referentialIntegrity"}, span, &diags)
		assert.False(t, diags.HasErrors())
		require.Len(t, diags.Warnings(), 2)
		assert.Contains(t, diags.Warnings()[0].Message(), "can be used without specifying it")
		assert.Contains(t, diags.Warnings()[1].Message(), "will be removed")
		assert.Equal(t, 2, set.Len())
	})
}

func TestAllFeatures(t *testing.T) {
	all := AllFeatures()
	require.NotEmpty(t, all)
	for i := 1; i < len(all); i++ {
		assert.Less(t, all[i-1], all[i])
	}
	assert.Contains(t, ActiveFeatures(), "extendedIndexes")
}
