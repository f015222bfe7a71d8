package lexicon

import "strings"

// Entry is a single dictionary record filed under a spelled headword.
// Homographs share a headword and are told apart by Index.
type Entry struct {
	// Headword is the spelled form the entry is filed under.
	Headword string
	// Index is the zero-based position among the headword's entries.
	Index int
	// Definition is free text describing the entry.
	Definition string
	// Sound is the underlying pronunciation, one symbol per element.
	Sound []string
	// Change is the pronunciation after sound rules were applied.
	// Empty when no rules have been run for the entry.
	Change []string
	// POS is the word class, e.g. "noun". Optional.
	POS string
}

// Ref addresses one entry for lookups: a headword plus its entry index.
type Ref struct {
	Headword string
	Index    int
}

// joinSounds flattens a symbol slice into its stored column form.
// Symbols are space-separated so exact matches compare whole words.
func joinSounds(sounds []string) string {
	return strings.Join(sounds, " ")
}

// splitSounds reverses joinSounds. An empty column yields a nil slice.
func splitSounds(stored string) []string {
	if stored == "" {
		return nil
	}
	return strings.Fields(stored)
}
