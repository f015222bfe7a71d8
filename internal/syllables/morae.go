package syllables

import (
	"github.com/evoglot/evoglot/internal/phonetics"
)

// mora is one registered moraic pattern: a sequence of per-slot feature
// queries and the beat count it contributes.
type mora struct {
	pattern []phonetics.FeatureSet
	beats   int
}

// Morae maps moraic patterns to beat counts, so words can be weighed in
// beats rather than sounds. Patterns accept the same slot notation as
// syllable shapes ("V", "CV", "vowel long").
type Morae struct {
	syllables *Store
	morae     []mora // insertion order decides match priority
}

// NewMorae creates an empty beat map sharing the store's slot parsing.
func NewMorae(syllables *Store) *Morae {
	return &Morae{syllables: syllables}
}

// SetMora registers a moraic pattern worth the given beats. A pattern
// already registered fails with DuplicateMoraError; re-registering is an
// Update-style replace via Remove first.
func (m *Morae) SetMora(beats int, spec ...string) error {
	if beats < 1 {
		return &InvalidMoraError{Spec: spec, Reason: "beats must be at least 1"}
	}
	pattern, err := m.syllables.Structure(spec...)
	if err != nil {
		return &InvalidMoraError{Spec: spec, Reason: err.Error()}
	}
	if _, ok := m.find(pattern); ok {
		return &DuplicateMoraError{Spec: spec}
	}
	m.morae = append(m.morae, mora{pattern: pattern, beats: beats})
	return nil
}

// Beats returns the beat count registered for a pattern spec.
func (m *Morae) Beats(spec ...string) (int, bool) {
	pattern, err := m.syllables.Structure(spec...)
	if err != nil {
		return 0, false
	}
	entry, ok := m.find(pattern)
	if !ok {
		return 0, false
	}
	return entry.beats, true
}

// Remove deletes a registered pattern.
func (m *Morae) Remove(spec ...string) bool {
	pattern, err := m.syllables.Structure(spec...)
	if err != nil {
		return false
	}
	for i, entry := range m.morae {
		if patternsEqual(entry.pattern, pattern) {
			m.morae = append(m.morae[:i], m.morae[i+1:]...)
			return true
		}
	}
	return false
}

// Len returns the number of registered patterns.
func (m *Morae) Len() int {
	return len(m.morae)
}

// CountBeats weighs a sound sequence: sounds accumulate left to right and
// every completed pattern adds its beats. Sounds left over after the last
// completed pattern make the sequence unweighable.
func (m *Morae) CountBeats(sounds []string) (int, error) {
	var current []phonetics.FeatureSet
	count := 0
	for _, sound := range sounds {
		features, err := m.syllables.registry.FeaturesOf(sound)
		if err != nil {
			return 0, err
		}
		current = append(current, features)
		if entry, ok := m.match(current); ok {
			count += entry.beats
			current = nil
		}
	}
	if len(current) > 0 {
		return 0, &UnweighableError{Remainder: len(current)}
	}
	return count, nil
}

// find locates a registered pattern by exact slot equality.
func (m *Morae) find(pattern []phonetics.FeatureSet) (mora, bool) {
	for _, entry := range m.morae {
		if patternsEqual(entry.pattern, pattern) {
			return entry, true
		}
	}
	return mora{}, false
}

// match locates the first registered pattern the accumulated sounds
// satisfy, each sound's features covering its slot.
func (m *Morae) match(current []phonetics.FeatureSet) (mora, bool) {
	for _, entry := range m.morae {
		if len(entry.pattern) != len(current) {
			continue
		}
		matched := true
		for i, slot := range entry.pattern {
			if !current[i].Superset(slot) {
				matched = false
				break
			}
		}
		if matched {
			return entry, true
		}
	}
	return mora{}, false
}

func patternsEqual(a, b []phonetics.FeatureSet) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Superset(b[i]) || !b[i].Superset(a[i]) {
			return false
		}
	}
	return true
}
