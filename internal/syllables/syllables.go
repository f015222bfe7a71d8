// Package syllables manages syllable shapes and the phonotactic
// constraints used to fill them during word building.
//
// A syllable shape is an ordered list of feature sets ("CV" is consonant
// then vowel); word building picks one registered symbol per slot. Shapes
// accept the same compact notation as rule environments, minus the focus
// marker.
package syllables

import (
	"strings"

	"github.com/google/uuid"

	"github.com/evoglot/evoglot/internal/phonetics"
)

// shorthand maps the single-character abbreviations accepted in shape
// specs onto feature tags.
var shorthand = map[string]string{
	"C": "consonant",
	"V": "vowel",
}

// Syllable is one registered syllable shape.
type Syllable struct {
	ID        string
	Structure []phonetics.FeatureSet // one feature set per slot
}

// IDGenerator mints syllable ids. Production uses UUIDs; tests inject a
// sequential generator.
type IDGenerator interface {
	Generate() string
}

type uuidGenerator struct{}

func (uuidGenerator) Generate() string { return uuid.NewString() }

// Store holds the syllable shapes for one language, in insertion order.
type Store struct {
	registry  *phonetics.Registry
	idgen     IDGenerator
	syllables map[string]Syllable
	order     []string
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithIDGenerator overrides the syllable id generator.
func WithIDGenerator(g IDGenerator) StoreOption {
	return func(s *Store) {
		s.idgen = g
	}
}

// NewStore creates an empty syllable store bound to a feature registry.
func NewStore(registry *phonetics.Registry, opts ...StoreOption) *Store {
	s := &Store{
		registry:  registry,
		idgen:     uuidGenerator{},
		syllables: make(map[string]Syllable),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Structure normalizes a shape spec into a list of per-slot feature sets.
//
// Each element is either compact notation expanded character by character
// ("CVC") or a space-separated feature spec for a single slot
// ("velar stop"), with "C"/"V" accepted per token. Feature tags are
// validated against the registry.
func (s *Store) Structure(spec ...string) ([]phonetics.FeatureSet, error) {
	var structure []phonetics.FeatureSet
	for _, elem := range spec {
		if isCompact(elem) {
			for _, r := range elem {
				if r == ' ' {
					continue
				}
				fs, err := s.parseSlot(string(r))
				if err != nil {
					return nil, err
				}
				structure = append(structure, fs)
			}
			continue
		}
		fs, err := s.parseSlot(elem)
		if err != nil {
			return nil, err
		}
		structure = append(structure, fs)
	}
	if len(structure) == 0 {
		return nil, &phonetics.InvalidFeaturesError{}
	}
	return structure, nil
}

func (s *Store) parseSlot(elem string) (phonetics.FeatureSet, error) {
	tokens := strings.Fields(elem)
	expanded := make([]string, len(tokens))
	for i, tok := range tokens {
		if full, ok := shorthand[tok]; ok {
			tok = full
		}
		expanded[i] = tok
	}
	return s.registry.Parse(expanded...)
}

// isCompact reports whether the element uses single-character notation.
func isCompact(elem string) bool {
	if len(elem) < 2 {
		return false
	}
	for _, r := range elem {
		if r == ' ' {
			continue
		}
		if _, ok := shorthand[string(r)]; !ok {
			return false
		}
	}
	return true
}

// Add validates a shape spec and stores it under a fresh id.
func (s *Store) Add(spec ...string) (string, error) {
	structure, err := s.Structure(spec...)
	if err != nil {
		return "", err
	}
	id := s.idgen.Generate()
	s.syllables[id] = Syllable{ID: id, Structure: structure}
	s.order = append(s.order, id)
	return id, nil
}

// Update replaces the structure of an existing syllable in place.
func (s *Store) Update(id string, spec ...string) error {
	if _, ok := s.syllables[id]; !ok {
		return &UnknownSyllableError{ID: id}
	}
	structure, err := s.Structure(spec...)
	if err != nil {
		return err
	}
	s.syllables[id] = Syllable{ID: id, Structure: structure}
	return nil
}

// Has reports whether a syllable with the given id exists.
func (s *Store) Has(id string) bool {
	_, ok := s.syllables[id]
	return ok
}

// Get returns the syllable with the given id, if present.
func (s *Store) Get(id string) (Syllable, bool) {
	syl, ok := s.syllables[id]
	return syl, ok
}

// Remove deletes a syllable shape.
func (s *Store) Remove(id string) bool {
	if _, ok := s.syllables[id]; !ok {
		return false
	}
	delete(s.syllables, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

// All returns every syllable shape in insertion order.
func (s *Store) All() []Syllable {
	out := make([]Syllable, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.syllables[id])
	}
	return out
}

// Len returns the number of stored shapes.
func (s *Store) Len() int {
	return len(s.order)
}
