// Package grammar manages a language's morphology: word classes,
// exponents (bound sound material attached around a base word), and the
// relative inner/outer ordering that decides how exponents stack.
package grammar

import (
	"github.com/google/uuid"

	"github.com/evoglot/evoglot/internal/phonetics"
)

// Exponent is one registered bound form. Pre sounds attach before the
// base, Post sounds after; an exponent may carry either or both. Classes
// restricts which word classes it attaches to; empty means any.
type Exponent struct {
	ID      string
	Pre     []string
	Post    []string
	Classes map[string]bool
}

// AttachesTo reports whether the exponent accepts a word class.
func (e Exponent) AttachesTo(class string) bool {
	if len(e.Classes) == 0 {
		return true
	}
	return e.Classes[class]
}

// IDGenerator mints exponent ids. Production uses UUIDs; tests inject a
// fixed or sequential generator.
type IDGenerator interface {
	Generate() string
}

type uuidGenerator struct{}

func (uuidGenerator) Generate() string { return uuid.NewString() }

// relative holds one exponent's ordering constraints: ids attaching
// closer to the base (inner) and further from it (outer).
type relative struct {
	inner map[string]bool
	outer map[string]bool
}

// Store holds the morphology for one language. Exponent sound material
// is validated against the feature registry so attached forms stay
// spellable and rule-applicable.
type Store struct {
	registry  *phonetics.Registry
	idgen     IDGenerator
	classes   map[string]bool
	exponents map[string]Exponent
	order     []string
	relations map[string]*relative
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithIDGenerator overrides the exponent id generator.
func WithIDGenerator(g IDGenerator) StoreOption {
	return func(s *Store) {
		s.idgen = g
	}
}

// NewStore creates an empty morphology bound to a feature registry.
func NewStore(registry *phonetics.Registry, opts ...StoreOption) *Store {
	s := &Store{
		registry:  registry,
		idgen:     uuidGenerator{},
		classes:   make(map[string]bool),
		exponents: make(map[string]Exponent),
		relations: make(map[string]*relative),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AddWordClass declares a part of speech ("noun", "verb"). Re-declaring
// is a no-op.
func (s *Store) AddWordClass(name string) error {
	if name == "" {
		return &InvalidExponentError{Reason: "word class name must be non-empty"}
	}
	s.classes[name] = true
	return nil
}

// HasWordClass reports whether a word class is declared.
func (s *Store) HasWordClass(name string) bool {
	return s.classes[name]
}

// AddExponent registers a bound form under a fresh id. Every Pre/Post
// sound must be a registered symbol, every class a declared word class,
// and at least one of Pre and Post must be non-empty.
func (s *Store) AddExponent(pre, post []string, classes ...string) (string, error) {
	if len(pre) == 0 && len(post) == 0 {
		return "", &InvalidExponentError{Reason: "exponent needs pre or post sounds"}
	}
	for _, sound := range append(append([]string{}, pre...), post...) {
		if !s.registry.HasSymbol(sound) {
			return "", &InvalidExponentError{Reason: "unregistered sound " + sound}
		}
	}
	classSet := make(map[string]bool, len(classes))
	for _, class := range classes {
		if !s.classes[class] {
			return "", &UnknownWordClassError{Name: class}
		}
		classSet[class] = true
	}

	id := s.idgen.Generate()
	s.exponents[id] = Exponent{
		ID:      id,
		Pre:     append([]string{}, pre...),
		Post:    append([]string{}, post...),
		Classes: classSet,
	}
	s.order = append(s.order, id)
	return id, nil
}

// Get returns a registered exponent.
func (s *Store) Get(id string) (Exponent, error) {
	exp, ok := s.exponents[id]
	if !ok {
		return Exponent{}, &UnknownExponentError{ID: id}
	}
	return exp, nil
}

// Has reports whether an exponent id exists.
func (s *Store) Has(id string) bool {
	_, ok := s.exponents[id]
	return ok
}

// Len returns the number of registered exponents.
func (s *Store) Len() int {
	return len(s.order)
}

// OrderExponent records the position of other exponents relative to one:
// inner ids attach closer to the base, outer ids further out. The
// reciprocal relation is stored on each named exponent too, so either
// side of a pair can anchor an Arrange call.
func (s *Store) OrderExponent(id string, inner, outer []string) error {
	if !s.Has(id) {
		return &UnknownExponentError{ID: id}
	}
	for _, other := range append(append([]string{}, inner...), outer...) {
		if !s.Has(other) {
			return &UnknownExponentError{ID: other}
		}
	}

	rel := s.relation(id)
	for _, other := range inner {
		rel.inner[other] = true
		delete(rel.outer, other)
		reciprocal := s.relation(other)
		reciprocal.outer[id] = true
		delete(reciprocal.inner, id)
	}
	for _, other := range outer {
		rel.outer[other] = true
		delete(rel.inner, other)
		reciprocal := s.relation(other)
		reciprocal.inner[id] = true
		delete(reciprocal.outer, id)
	}
	return nil
}

func (s *Store) relation(id string) *relative {
	rel, ok := s.relations[id]
	if !ok {
		rel = &relative{inner: make(map[string]bool), outer: make(map[string]bool)}
		s.relations[id] = rel
	}
	return rel
}

// Arrange sorts exponent ids outermost first using the recorded
// relative orderings. Ids without a recorded relation to any placed
// exponent keep their argument order; unknown ids are dropped.
func (s *Store) Arrange(ids []string) []string {
	var ordered []string
	for _, id := range ids {
		if !s.Has(id) {
			continue
		}
		pos := len(ordered)
		for i, placed := range ordered {
			if s.isInner(placed, id) {
				pos = i
				break
			}
		}
		ordered = append(ordered[:pos], append([]string{id}, ordered[pos:]...)...)
	}
	return ordered
}

// isInner reports whether a is recorded as attaching closer to the base
// than b.
func (s *Store) isInner(a, b string) bool {
	if rel, ok := s.relations[b]; ok && rel.inner[a] {
		return true
	}
	if rel, ok := s.relations[a]; ok && rel.outer[b] {
		return true
	}
	return false
}

// Attach builds a full word form: the base sounds with every exponent's
// material stacked around it, inner exponents adjacent to the base. The
// word class gates exponents carrying a class restriction.
func (s *Store) Attach(base []string, class string, ids ...string) ([]string, error) {
	if class != "" && !s.classes[class] {
		return nil, &UnknownWordClassError{Name: class}
	}
	for _, id := range ids {
		exp, err := s.Get(id)
		if err != nil {
			return nil, err
		}
		if !exp.AttachesTo(class) {
			return nil, &InvalidExponentError{
				Reason: "exponent " + id + " does not attach to " + class,
			}
		}
	}

	arranged := s.Arrange(ids)

	var out []string
	for _, id := range arranged {
		out = append(out, s.exponents[id].Pre...)
	}
	out = append(out, base...)
	for i := len(arranged) - 1; i >= 0; i-- {
		out = append(out, s.exponents[arranged[i]].Post...)
	}
	return out, nil
}
