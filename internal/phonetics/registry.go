// Package phonetics maintains the mapping between phonetic symbols and
// their feature sets.
//
// The Registry is a pure lookup service consumed by the rule store and the
// rewrite engine. It answers two questions:
//
//   - What features does a symbol carry? (FeaturesOf)
//   - Which symbols carry at least these features? (SymbolsMatching)
//
// INVARIANTS:
//   - Symbol iteration order NEVER changes after registration. Symbol
//     resolution during rule application takes the first match under this
//     order, so a stable order is what makes rewrites deterministic.
//   - Every registered symbol has a non-empty feature set.
//
// The registry is read-only shared state for the duration of a rewrite
// call. Reader/reader concurrency is fine; mutation concurrent with a read
// must be excluded by the caller.
package phonetics

import (
	"golang.org/x/text/unicode/norm"
)

// Registry associates phonetic symbols with feature sets.
//
// Symbols may be multi-character ("tʃ", "dz") and are normalized to NFC on
// the way in and on lookup, so composed and decomposed spellings of the
// same IPA sequence refer to the same entry.
type Registry struct {
	order    []string              // symbols in registration order
	features map[string]FeatureSet // symbol -> feature set
	known    map[string]bool       // every feature tag seen at registration
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		features: make(map[string]FeatureSet),
		known:    make(map[string]bool),
	}
}

// Add registers a symbol with its feature set. Feature specs may be single
// tags or space-separated lists.
//
// Registering an already-known symbol replaces its features but keeps its
// original position in the registration order, so resolution order does not
// shift underneath existing rules.
//
// Returns an InvalidFeaturesError if the flattened feature list is empty.
func (r *Registry) Add(symbol string, featureSpecs ...string) error {
	tokens := splitSpecs(featureSpecs)
	if len(tokens) == 0 {
		return &InvalidFeaturesError{}
	}

	sym := norm.NFC.String(symbol)
	if _, exists := r.features[sym]; !exists {
		r.order = append(r.order, sym)
	}
	r.features[sym] = NewFeatureSet(tokens...)

	for _, f := range tokens {
		r.known[f] = true
	}
	return nil
}

// HasSymbol reports whether the symbol is registered.
func (r *Registry) HasSymbol(symbol string) bool {
	_, ok := r.features[norm.NFC.String(symbol)]
	return ok
}

// HasFeature reports whether the feature tag appeared in any registration.
func (r *Registry) HasFeature(feature string) bool {
	return r.known[feature]
}

// FeaturesOf returns a copy of the feature set registered for the symbol.
// Fails with UnknownSymbolError for unregistered symbols.
func (r *Registry) FeaturesOf(symbol string) (FeatureSet, error) {
	fs, ok := r.features[norm.NFC.String(symbol)]
	if !ok {
		return nil, &UnknownSymbolError{Symbol: symbol}
	}
	return fs.Clone(), nil
}

// Parse validates feature specs against the registry and returns them as a
// FeatureSet. Specs may mix space-separated strings and individual tags.
//
// Fails with InvalidFeaturesError listing every unknown token, or an empty
// Unknown list when the spec flattens to nothing. Rules are vetted through
// Parse once, at definition time, never re-validated per scan.
func (r *Registry) Parse(featureSpecs ...string) (FeatureSet, error) {
	tokens := splitSpecs(featureSpecs)
	if len(tokens) == 0 {
		return nil, &InvalidFeaturesError{}
	}

	var unknown []string
	for _, f := range tokens {
		if !r.known[f] {
			unknown = append(unknown, f)
		}
	}
	if len(unknown) > 0 {
		return nil, &InvalidFeaturesError{Unknown: unknown}
	}
	return NewFeatureSet(tokens...), nil
}

// SymbolsMatching returns every registered symbol whose feature set is a
// superset of the query, in registration order.
//
// restrict, when non-nil, filters candidates to the given inventory. This
// supports word building against a language's phoneme inventory; symbol
// resolution during rule application passes nil to search the whole chart.
func (r *Registry) SymbolsMatching(query FeatureSet, restrict []string) []string {
	var allowed map[string]bool
	if restrict != nil {
		allowed = make(map[string]bool, len(restrict))
		for _, s := range restrict {
			allowed[norm.NFC.String(s)] = true
		}
	}

	var matches []string
	for _, sym := range r.order {
		if allowed != nil && !allowed[sym] {
			continue
		}
		if r.features[sym].Superset(query) {
			matches = append(matches, sym)
		}
	}
	return matches
}

// Symbols returns all registered symbols in registration order.
func (r *Registry) Symbols() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Len returns the number of registered symbols.
func (r *Registry) Len() int {
	return len(r.order)
}
