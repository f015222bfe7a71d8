package lexicon

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// HasWord reports whether any entries exist for a spelled headword.
func (s *Store) HasWord(ctx context.Context, headword string) (bool, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM entries WHERE headword = ?
	`, headword).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("has word: %w", err)
	}
	return count > 0, nil
}

// HasEntry reports whether an indexed entry exists for a headword.
func (s *Store) HasEntry(ctx context.Context, ref Ref) (bool, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM entries
		WHERE headword = ? AND entry_index = ?
	`, ref.Headword, ref.Index).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("has entry: %w", err)
	}
	return count > 0, nil
}

// Lookup returns all entries for a headword ordered by entry index.
// Returns UnknownHeadwordError if the headword has no entries.
func (s *Store) Lookup(ctx context.Context, headword string) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT headword, entry_index, definition, sound, change, pos
		FROM entries
		WHERE headword = ?
		ORDER BY entry_index ASC
	`, headword)
	if err != nil {
		return nil, fmt.Errorf("lookup: %w", err)
	}
	defer rows.Close()

	entries, err := scanEntries(rows)
	if err != nil {
		return nil, fmt.Errorf("lookup: %w", err)
	}
	if len(entries) == 0 {
		return nil, &UnknownHeadwordError{Headword: headword}
	}
	return entries, nil
}

// Entry returns one indexed entry for a headword.
// Returns UnknownEntryError if the (headword, index) slot does not exist.
func (s *Store) Entry(ctx context.Context, ref Ref) (Entry, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT headword, entry_index, definition, sound, change, pos
		FROM entries
		WHERE headword = ? AND entry_index = ?
	`, ref.Headword, ref.Index)

	entry, err := scanEntryRow(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Entry{}, &UnknownEntryError{Headword: ref.Headword, Index: ref.Index}
	}
	if err != nil {
		return Entry{}, fmt.Errorf("read entry: %w", err)
	}
	return entry, nil
}

// Define returns the definition of one indexed entry.
func (s *Store) Define(ctx context.Context, ref Ref) (string, error) {
	entry, err := s.Entry(ctx, ref)
	if err != nil {
		return "", err
	}
	return entry.Definition, nil
}

// Len returns the total number of entries in the lexicon.
func (s *Store) Len(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM entries`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count entries: %w", err)
	}
	return count, nil
}

// scanEntries drains a result set of entry rows.
func scanEntries(rows *sql.Rows) ([]Entry, error) {
	var entries []Entry
	for rows.Next() {
		var (
			entry  Entry
			sound  string
			change string
		)
		if err := rows.Scan(&entry.Headword, &entry.Index, &entry.Definition, &sound, &change, &entry.POS); err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		entry.Sound = splitSounds(sound)
		entry.Change = splitSounds(change)
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate entries: %w", err)
	}
	return entries, nil
}

// scanEntryRow scans a single-row query result into an Entry.
func scanEntryRow(row *sql.Row) (Entry, error) {
	var (
		entry  Entry
		sound  string
		change string
	)
	if err := row.Scan(&entry.Headword, &entry.Index, &entry.Definition, &sound, &change, &entry.POS); err != nil {
		return Entry{}, err
	}
	entry.Sound = splitSounds(sound)
	entry.Change = splitSounds(change)
	return entry, nil
}
