package phonetics

import (
	"sort"
	"strings"
)

// FeatureSet is an unordered collection of phonetic feature tags.
//
// Features are opaque strings ("voiced", "bilabial"); equality is the only
// operation a feature supports. Sets are compared by subset/superset when
// matching sounds against rule slots.
type FeatureSet map[string]bool

// NewFeatureSet builds a FeatureSet from individual feature tags.
// Duplicate tags collapse into a single entry.
func NewFeatureSet(features ...string) FeatureSet {
	fs := make(FeatureSet, len(features))
	for _, f := range features {
		fs[f] = true
	}
	return fs
}

// Has reports whether the set contains the given feature.
func (fs FeatureSet) Has(feature string) bool {
	return fs[feature]
}

// Superset reports whether fs contains every feature in other.
// An empty other is a superset match by definition.
func (fs FeatureSet) Superset(other FeatureSet) bool {
	for f := range other {
		if !fs[f] {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of the set.
// Callers receive clones from Registry lookups so they cannot mutate
// registry state through a returned set.
func (fs FeatureSet) Clone() FeatureSet {
	out := make(FeatureSet, len(fs))
	for f := range fs {
		out[f] = true
	}
	return out
}

// Slice returns the features in sorted order.
// Sorting keeps log lines and error messages deterministic.
func (fs FeatureSet) Slice() []string {
	out := make([]string, 0, len(fs))
	for f := range fs {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// String renders the set as a space-joined sorted list, the same shape
// accepted by Registry.Parse.
func (fs FeatureSet) String() string {
	return strings.Join(fs.Slice(), " ")
}

// splitSpecs flattens feature specs into individual tags. Each spec may be a
// single tag or a space-separated list ("voiceless velar stop").
func splitSpecs(specs []string) []string {
	var tokens []string
	for _, spec := range specs {
		tokens = append(tokens, strings.Fields(spec)...)
	}
	return tokens
}
