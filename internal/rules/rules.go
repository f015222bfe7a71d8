// Package rules stores validated sound-change rule definitions.
//
// A rule rewrites a sound matching its source features into its target
// features when the sound appears inside the rule's environment. Rules are
// validated once at add-time against the phonetic feature registry, stored
// immutably, and iterated in insertion order.
//
// INVARIANTS:
//   - Source and target are non-empty feature sets known to the registry.
//   - Every environment holds exactly one focus slot.
//   - All() iteration order NEVER changes while a scan is in flight;
//     insertion order is the deterministic evaluation order.
package rules

import (
	"github.com/evoglot/evoglot/internal/phonetics"
)

// Rule is an immutable sound-change definition.
type Rule struct {
	ID          string
	Source      phonetics.FeatureSet
	Target      phonetics.FeatureSet
	Environment Environment
	Seq         int64 // insertion sequence, stamped by the store clock
}

// String renders the rule in conventional notation:
// "voiceless -> voiced / vowel _ vowel".
func (r Rule) String() string {
	return r.Source.String() + " -> " + r.Target.String() + " / " + r.Environment.String()
}

// Store holds the rule collection for one language.
//
// The store reads the registry only at Add time; scans read the store but
// never write it. Rule add/remove concurrent with an in-flight scan is
// undefined and must be excluded by the caller.
type Store struct {
	registry *phonetics.Registry
	idgen    IDGenerator
	clock    *Clock
	rules    map[string]Rule
	order    []string // rule ids in insertion order
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithIDGenerator overrides the rule id generator.
// Tests use SequenceGenerator for reproducible ids.
func WithIDGenerator(g IDGenerator) StoreOption {
	return func(s *Store) {
		s.idgen = g
	}
}

// NewStore creates an empty rule store bound to a feature registry.
func NewStore(registry *phonetics.Registry, opts ...StoreOption) *Store {
	s := &Store{
		registry: registry,
		idgen:    UUIDGenerator{},
		clock:    NewClock(),
		rules:    make(map[string]Rule),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Add validates and stores a new rule, returning its freshly minted id.
//
// source and target are feature specs (space-separated tags); environment
// elements follow ParseEnvironment. Fails with InvalidRuleError if either
// feature spec does not parse or the environment is malformed.
func (s *Store) Add(source, target string, environment ...string) (string, error) {
	vettedSource, err := s.registry.Parse(source)
	if err != nil {
		return "", &InvalidRuleError{Field: "source", Message: "unparseable feature spec", Err: err}
	}
	vettedTarget, err := s.registry.Parse(target)
	if err != nil {
		return "", &InvalidRuleError{Field: "target", Message: "unparseable feature spec", Err: err}
	}
	env, err := ParseEnvironment(s.registry, environment...)
	if err != nil {
		return "", err
	}

	id := s.idgen.Generate()
	s.rules[id] = Rule{
		ID:          id,
		Source:      vettedSource,
		Target:      vettedTarget,
		Environment: env,
		Seq:         s.clock.Next(),
	}
	s.order = append(s.order, id)
	return id, nil
}

// Get returns the rule with the given id.
// Fails with UnknownRuleError if the id does not exist.
func (s *Store) Get(id string) (Rule, error) {
	rule, ok := s.rules[id]
	if !ok {
		return Rule{}, &UnknownRuleError{ID: id}
	}
	return rule, nil
}

// Has reports whether a rule with the given id exists.
func (s *Store) Has(id string) bool {
	_, ok := s.rules[id]
	return ok
}

// Remove deletes a rule and returns the removed definition.
// Fails with UnknownRuleError if the id does not exist.
func (s *Store) Remove(id string) (Rule, error) {
	rule, ok := s.rules[id]
	if !ok {
		return Rule{}, &UnknownRuleError{ID: id}
	}
	delete(s.rules, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return rule, nil
}

// All returns every rule in insertion order.
// The slice is a copy; mutating it does not affect the store.
func (s *Store) All() []Rule {
	out := make([]Rule, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.rules[id])
	}
	return out
}

// Len returns the number of stored rules.
func (s *Store) Len() int {
	return len(s.order)
}
