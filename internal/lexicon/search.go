package lexicon

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

// DefaultMaxResults caps search result counts when the caller passes a
// non-positive limit.
const DefaultMaxResults = 10

// SearchSpelling returns the entries filed under an exactly spelled
// headword, up to maxResults. An unknown spelling yields no matches
// rather than an error.
func (s *Store) SearchSpelling(ctx context.Context, spelling string, maxResults int) ([]Entry, error) {
	maxResults = clampResults(maxResults)

	rows, err := s.db.QueryContext(ctx, `
		SELECT headword, entry_index, definition, sound, change, pos
		FROM entries
		WHERE headword = ?
		ORDER BY entry_index ASC
		LIMIT ?
	`, spelling, maxResults)
	if err != nil {
		return nil, fmt.Errorf("search spelling: %w", err)
	}
	defer rows.Close()

	entries, err := scanEntries(rows)
	if err != nil {
		return nil, fmt.Errorf("search spelling: %w", err)
	}
	return entries, nil
}

// SearchDefinitions returns entries whose definition contains at least
// one of the given keywords, most matching keywords first. Ties keep
// headword then entry-index order so results are stable run to run.
func (s *Store) SearchDefinitions(ctx context.Context, keywords []string, maxResults int) ([]Entry, error) {
	if len(keywords) == 0 {
		return nil, &InvalidEntryError{Field: "keywords", Message: "must not be empty"}
	}
	maxResults = clampResults(maxResults)

	// One LIKE clause per keyword narrows the scan; scoring happens
	// over the candidates in Go.
	clauses := make([]string, len(keywords))
	args := make([]any, len(keywords))
	for i, keyword := range keywords {
		clauses[i] = "instr(definition, ?) > 0"
		args[i] = keyword
	}

	query := fmt.Sprintf(`
		SELECT headword, entry_index, definition, sound, change, pos
		FROM entries
		WHERE %s
		ORDER BY headword ASC, entry_index ASC
	`, strings.Join(clauses, " OR "))

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("search definitions: %w", err)
	}
	defer rows.Close()

	entries, err := scanEntries(rows)
	if err != nil {
		return nil, fmt.Errorf("search definitions: %w", err)
	}

	score := func(definition string) int {
		matched := 0
		for _, keyword := range keywords {
			if strings.Contains(definition, keyword) {
				matched++
			}
		}
		return matched
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return score(entries[i].Definition) > score(entries[j].Definition)
	})

	if len(entries) > maxResults {
		entries = entries[:maxResults]
	}
	return entries, nil
}

// SearchSound returns entries whose underlying pronunciation exactly
// matches the given symbols, up to maxResults.
func (s *Store) SearchSound(ctx context.Context, sound []string, maxResults int) ([]Entry, error) {
	return s.searchSoundColumn(ctx, "sound", sound, maxResults)
}

// SearchChange returns entries whose post-rule pronunciation exactly
// matches the given symbols, up to maxResults.
func (s *Store) SearchChange(ctx context.Context, change []string, maxResults int) ([]Entry, error) {
	return s.searchSoundColumn(ctx, "change", change, maxResults)
}

func (s *Store) searchSoundColumn(ctx context.Context, column string, sounds []string, maxResults int) ([]Entry, error) {
	if len(sounds) == 0 {
		return nil, &InvalidEntryError{Field: column, Message: "must not be empty"}
	}
	maxResults = clampResults(maxResults)

	// column is one of the two fixed names above, never caller input.
	query := fmt.Sprintf(`
		SELECT headword, entry_index, definition, sound, change, pos
		FROM entries
		WHERE %s = ?
		ORDER BY headword ASC, entry_index ASC
		LIMIT ?
	`, column)

	rows, err := s.db.QueryContext(ctx, query, joinSounds(sounds), maxResults)
	if err != nil {
		return nil, fmt.Errorf("search %s: %w", column, err)
	}
	defer rows.Close()

	entries, err := scanEntries(rows)
	if err != nil {
		return nil, fmt.Errorf("search %s: %w", column, err)
	}
	return entries, nil
}

func clampResults(maxResults int) int {
	if maxResults <= 0 {
		return DefaultMaxResults
	}
	return maxResults
}
