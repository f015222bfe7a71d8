package rules

import (
	"strings"

	"github.com/evoglot/evoglot/internal/phonetics"
)

// SlotKind discriminates the three environment slot variants.
type SlotKind int

const (
	// SlotFeatures matches a sound whose feature set is a superset of the
	// slot's features.
	SlotFeatures SlotKind = iota

	// SlotFocus marks the position of the sound being changed.
	// Exactly one focus slot per environment.
	SlotFocus

	// SlotBoundary matches a word edge instead of a sound. Only valid at
	// the first or last position of an environment.
	SlotBoundary
)

// Slot is one position in a rule's context pattern.
type Slot struct {
	Kind     SlotKind
	Features phonetics.FeatureSet // set only for SlotFeatures
}

// Environment is an ordered context pattern with one designated focus slot.
// The focus index partitions it into a left context (possibly empty) and a
// right context (possibly empty).
type Environment []Slot

// FocusIndex returns the index of the focus slot.
// Environments built through ParseEnvironment always have exactly one.
func (e Environment) FocusIndex() int {
	for i, slot := range e {
		if slot.Kind == SlotFocus {
			return i
		}
	}
	return -1
}

// String renders the environment in the compact rule notation,
// e.g. "vowel _ vowel" or "# _ vowel".
func (e Environment) String() string {
	parts := make([]string, len(e))
	for i, slot := range e {
		switch slot.Kind {
		case SlotFocus:
			parts[i] = "_"
		case SlotBoundary:
			parts[i] = "#"
		default:
			parts[i] = slot.Features.String()
		}
	}
	return strings.Join(parts, " ")
}

// shorthandFeatures maps single-character abbreviations accepted in
// environment and syllable specs onto feature tags.
var shorthandFeatures = map[string]string{
	"C": "consonant",
	"V": "vowel",
}

// isCompact reports whether an element is written in the compact
// single-character notation ("V_V", "#_V") rather than as feature tags.
func isCompact(elem string) bool {
	if len(elem) < 2 {
		return false
	}
	for _, r := range elem {
		switch string(r) {
		case "_", "#", " ":
		default:
			if _, ok := shorthandFeatures[string(r)]; !ok {
				return false
			}
		}
	}
	return true
}

// ParseEnvironment normalizes an environment spec into an Environment.
//
// Each element is one of:
//   - "_"               the focus marker
//   - "#"               a word boundary
//   - a feature spec    space-separated feature tags ("voiceless velar"),
//     with "C"/"V" accepted as consonant/vowel abbreviations
//   - compact notation  a multi-character string of abbreviations and
//     markers ("V_V", "#_V"), expanded character by character
//
// Feature tags are validated against the registry. The result must contain
// exactly one focus slot, and boundary slots may only sit at the ends;
// anything else fails with InvalidRuleError rather than deferring ambiguity
// into the scan loop.
func ParseEnvironment(reg *phonetics.Registry, spec ...string) (Environment, error) {
	var env Environment
	for _, elem := range spec {
		if isCompact(elem) {
			for _, r := range elem {
				slot, err := parseSlot(reg, string(r))
				if err != nil {
					return nil, err
				}
				if slot != nil {
					env = append(env, *slot)
				}
			}
			continue
		}
		slot, err := parseSlot(reg, elem)
		if err != nil {
			return nil, err
		}
		if slot != nil {
			env = append(env, *slot)
		}
	}

	return env, validateEnvironment(env)
}

// parseSlot parses a single slot spec. Returns nil for skippable elements
// (bare spaces in compact notation).
func parseSlot(reg *phonetics.Registry, elem string) (*Slot, error) {
	switch strings.TrimSpace(elem) {
	case "":
		return nil, nil
	case "_":
		return &Slot{Kind: SlotFocus}, nil
	case "#":
		return &Slot{Kind: SlotBoundary}, nil
	}

	tokens := strings.Fields(elem)
	expanded := make([]string, len(tokens))
	for i, tok := range tokens {
		if full, ok := shorthandFeatures[tok]; ok {
			tok = full
		}
		expanded[i] = tok
	}

	features, err := reg.Parse(expanded...)
	if err != nil {
		return nil, &InvalidRuleError{
			Field:   "environment",
			Message: "unrecognized slot features " + strings.Join(tokens, " "),
			Err:     err,
		}
	}
	return &Slot{Kind: SlotFeatures, Features: features}, nil
}

func validateEnvironment(env Environment) error {
	if len(env) == 0 {
		return &InvalidRuleError{Field: "environment", Message: "empty environment"}
	}

	focusCount := 0
	for i, slot := range env {
		switch slot.Kind {
		case SlotFocus:
			focusCount++
		case SlotBoundary:
			if i != 0 && i != len(env)-1 {
				return &InvalidRuleError{
					Field:   "environment",
					Message: "boundary marker only allowed at word edges",
				}
			}
		}
	}
	if focusCount != 1 {
		return &InvalidRuleError{
			Field:   "environment",
			Message: "environment requires exactly one focus marker",
		}
	}
	return nil
}
