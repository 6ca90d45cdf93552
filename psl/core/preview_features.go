package core

import (
	"math/bits"
	"sort"
	"strings"

	"github.com/satishbabariya/pslcheck/psl/diagnostics"
)

// PreviewFeature represents a preview feature flag.
type PreviewFeature uint64

// Preview features, alphabetically sorted.
const (
	PreviewFeatureCockroachdb PreviewFeature = 1 << iota
	PreviewFeatureCreateMany
	PreviewFeatureDriverAdapters
	PreviewFeatureExtendedIndexes
	PreviewFeatureFullTextIndex
	PreviewFeatureFullTextSearch
	PreviewFeatureGroupBy
	PreviewFeatureInteractiveTransactions
	PreviewFeatureMicrosoftSqlServer
	PreviewFeatureMongoDb
	PreviewFeatureMultiSchema
	PreviewFeatureNamedConstraints
	PreviewFeatureNativeTypes
	PreviewFeatureOmitApi
	PreviewFeaturePostgresqlExtensions
	PreviewFeaturePrismaSchemaFolder
	PreviewFeatureReferentialActions
	PreviewFeatureReferentialIntegrity
	PreviewFeatureRelationJoins
	PreviewFeatureStrictUndefinedChecks
	PreviewFeatureTracing
	PreviewFeatureTypedSql
	PreviewFeatureViews
)

// FeatureStage tells whether a feature still needs to be opted into.
type FeatureStage int

const (
	// StageActive features must be listed in previewFeatures to be used.
	StageActive FeatureStage = iota
	// StageStabilized features are generally available; listing them is a no-op.
	StageStabilized
	// StageDeprecated features are scheduled for removal.
	StageDeprecated
)

type featureInfo struct {
	name  string
	stage FeatureStage
}

var featureTable = map[PreviewFeature]featureInfo{
	PreviewFeatureCockroachdb:             {"cockroachdb", StageStabilized},
	PreviewFeatureCreateMany:              {"createMany", StageStabilized},
	PreviewFeatureDriverAdapters:          {"driverAdapters", StageActive},
	PreviewFeatureExtendedIndexes:         {"extendedIndexes", StageActive},
	PreviewFeatureFullTextIndex:           {"fullTextIndex", StageActive},
	PreviewFeatureFullTextSearch:          {"fullTextSearch", StageActive},
	PreviewFeatureGroupBy:                 {"groupBy", StageStabilized},
	PreviewFeatureInteractiveTransactions: {"interactiveTransactions", StageStabilized},
	PreviewFeatureMicrosoftSqlServer:      {"microsoftSqlServer", StageStabilized},
	PreviewFeatureMongoDb:                 {"mongoDb", StageStabilized},
	PreviewFeatureMultiSchema:             {"multiSchema", StageActive},
	PreviewFeatureNamedConstraints:        {"namedConstraints", StageStabilized},
	PreviewFeatureNativeTypes:             {"nativeTypes", StageStabilized},
	PreviewFeatureOmitApi:                 {"omitApi", StageActive},
	PreviewFeaturePostgresqlExtensions:    {"postgresqlExtensions", StageActive},
	PreviewFeaturePrismaSchemaFolder:      {"prismaSchemaFolder", StageActive},
	PreviewFeatureReferentialActions:      {"referentialActions", StageStabilized},
	PreviewFeatureReferentialIntegrity:    {"referentialIntegrity", StageDeprecated},
	PreviewFeatureRelationJoins:           {"relationJoins", StageActive},
	PreviewFeatureStrictUndefinedChecks:   {"strictUndefinedChecks", StageActive},
	PreviewFeatureTracing:                 {"tracing", StageActive},
	PreviewFeatureTypedSql:                {"typedSql", StageActive},
	PreviewFeatureViews:                   {"views", StageActive},
}

var featuresByLowerName = func() map[string]PreviewFeature {
	m := make(map[string]PreviewFeature, len(featureTable))
	for f, info := range featureTable {
		m[strings.ToLower(info.name)] = f
	}
	return m
}()

// ParsePreviewFeature looks a feature up by name, ignoring case.
func ParsePreviewFeature(name string) (PreviewFeature, bool) {
	f, ok := featuresByLowerName[strings.ToLower(name)]
	return f, ok
}

// String returns the name used in previewFeatures, e.g. "fullTextIndex".
func (pf PreviewFeature) String() string {
	if info, ok := featureTable[pf]; ok {
		return info.name
	}
	return "unknown"
}

// Stage returns the lifecycle stage of the feature.
func (pf PreviewFeature) Stage() FeatureStage {
	return featureTable[pf].stage
}

// PreviewFeatures is a set of preview features.
type PreviewFeatures uint64

// NewPreviewFeatures builds a set from the given features.
func NewPreviewFeatures(features ...PreviewFeature) PreviewFeatures {
	var set PreviewFeatures
	for _, f := range features {
		set = set.Add(f)
	}
	return set
}

// Contains reports whether the feature is in the set.
func (s PreviewFeatures) Contains(feature PreviewFeature) bool {
	return uint64(s)&uint64(feature) != 0
}

// Add returns the set with feature added.
func (s PreviewFeatures) Add(feature PreviewFeature) PreviewFeatures {
	return s | PreviewFeatures(feature)
}

// Union returns the union of both sets.
func (s PreviewFeatures) Union(other PreviewFeatures) PreviewFeatures {
	return s | other
}

// Len returns the number of features in the set.
func (s PreviewFeatures) Len() int {
	return bits.OnesCount64(uint64(s))
}

// Iter returns the features in the set in declaration order.
func (s PreviewFeatures) Iter() []PreviewFeature {
	out := make([]PreviewFeature, 0, s.Len())
	for rest := uint64(s); rest != 0; rest &= rest - 1 {
		out = append(out, PreviewFeature(rest&-rest))
	}
	return out
}

// String returns the comma separated feature names.
func (s PreviewFeatures) String() string {
	names := make([]string, 0, s.Len())
	for _, f := range s.Iter() {
		names = append(names, f.String())
	}
	return strings.Join(names, ", ")
}

// ActiveFeatures returns the names of the features that still need opting into, sorted.
func ActiveFeatures() []string {
	var names []string
	for _, info := range featureTable {
		if info.stage == StageActive {
			names = append(names, info.name)
		}
	}
	sort.Strings(names)
	return names
}

// AllFeatures returns every known feature in declaration order.
func AllFeatures() []PreviewFeature {
	all := make([]PreviewFeature, 0, len(featureTable))
	for f := range featureTable {
		all = append(all, f)
	}
	sort.Slice(all, func(i, j int) bool { return all[i] < all[j] })
	return all
}

// ParsePreviewFeatures converts feature names into a set. Unknown names are
// reported as errors; stabilized and deprecated names produce warnings and are
// still added to the set.
func ParsePreviewFeatures(names []string, span diagnostics.Span, diags *diagnostics.Diagnostics) PreviewFeatures {
	var set PreviewFeatures
	for _, name := range names {
		f, ok := ParsePreviewFeature(name)
		if !ok {
			diags.PushError(diagnostics.NewPreviewFeatureNotKnownError(name, ActiveFeatures(), span))
			continue
		}
		switch f.Stage() {
		case StageStabilized:
			diags.PushWarning(diagnostics.NewPreviewFeatureIsStabilizedWarning(f.String(), span))
		case StageDeprecated:
			diags.PushWarning(diagnostics.NewPreviewFeatureDeprecatedWarning(f.String(), span))
		}
		set = set.Add(f)
	}
	return set
}
