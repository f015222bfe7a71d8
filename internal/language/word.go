package language

import (
	"fmt"
	"strings"
)

// Word is one built word in its three forms: the underlying sounds, the
// sounds after rule application, and the spelling. Sound and Change
// always have the same length; Spelling spells the underlying sounds.
type Word struct {
	Sound    []string
	Change   []string
	Spelling []string
}

// String renders the word's spelling as a single string.
func (w Word) String() string {
	return strings.Join(w.Spelling, "")
}

// BuildWord forms a word of the given syllable count. Each syllable's
// structure is drawn at random from the syllable store, shaped by the
// phonotactics when a sonority scale is set, and each slot is filled
// with a random inventory symbol matching the slot's features. Slots no
// inventory symbol can fill are skipped.
//
// Sound rules are applied to the finished sound sequence and the word
// is spelled from the underlying (pre-change) sounds.
func (l *Language) BuildWord(length int) (Word, error) {
	if length < 1 {
		return Word{}, fmt.Errorf("word length %d: must be at least 1", length)
	}
	all := l.syllables.All()
	if len(all) == 0 {
		return Word{}, &NoSyllablesError{}
	}

	var sound []string
	for i := 0; i < length; i++ {
		structure := all[l.rng.Intn(len(all))].Structure

		// shaping needs a recognizable nucleus; structures without
		// one are used as-is
		if shaped, err := l.tactics.Shape(structure); err == nil {
			structure = shaped
		}

		for _, slot := range structure {
			candidates := l.registry.SymbolsMatching(slot, l.inventory.Symbols())
			if len(candidates) == 0 {
				continue
			}
			sound = append(sound, l.pickSymbol(candidates))
		}
	}

	change, err := l.engine.Apply(sound)
	if err != nil {
		return Word{}, fmt.Errorf("build word: %w", err)
	}

	spelling, err := l.Spell(sound, nil)
	if err != nil {
		return Word{}, fmt.Errorf("build word: %w", err)
	}

	return Word{Sound: sound, Change: change, Spelling: spelling}, nil
}

// Spell transforms a list of sounds into the letters spelling them.
// Sounds missing from the inventory fall back to the same position in
// fallback when given; a sound with no letters either way is an
// UnspellableError. fallback must be nil or the same length as sounds.
func (l *Language) Spell(sounds, fallback []string) ([]string, error) {
	if fallback != nil && len(fallback) != len(sounds) {
		return nil, fmt.Errorf("fallback length %d does not match %d sounds", len(fallback), len(sounds))
	}

	letters := make([]string, 0, len(sounds))
	for i, sound := range sounds {
		spelled := sound
		if !l.inventory.Has(spelled) {
			if fallback == nil || !l.inventory.Has(fallback[i]) {
				return nil, &UnspellableError{Symbol: sound, Index: i}
			}
			spelled = fallback[i]
		}

		options, err := l.inventory.Letters(spelled)
		if err != nil {
			return nil, err
		}
		letters = append(letters, options[l.rng.Intn(len(options))])
	}
	return letters, nil
}

// pickSymbol chooses an inventory symbol, biased by phoneme weight.
// Unweighted phonemes count as weight 1.
func (l *Language) pickSymbol(candidates []string) string {
	total := 0
	weights := make([]int, len(candidates))
	for i, ipa := range candidates {
		w := 1
		if p, err := l.inventory.Get(ipa); err == nil && p.Weight > 0 {
			w = p.Weight
		}
		weights[i] = w
		total += w
	}

	pick := l.rng.Intn(total)
	for i, w := range weights {
		pick -= w
		if pick < 0 {
			return candidates[i]
		}
	}
	return candidates[len(candidates)-1]
}
