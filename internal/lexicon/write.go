package lexicon

import (
	"context"
	"fmt"
)

// AddEntry files a new entry under its spelled headword and returns the
// (headword, index) pair addressing it. The index is the next free slot
// for the headword, claimed inside a transaction so concurrent adds for
// the same headword never collide.
//
// Headword and Sound are required; Index on the passed entry is ignored.
func (s *Store) AddEntry(ctx context.Context, entry Entry) (Ref, error) {
	if entry.Headword == "" {
		return Ref{}, &InvalidEntryError{Field: "headword", Message: "must not be empty"}
	}
	if len(entry.Sound) == 0 {
		return Ref{}, &InvalidEntryError{Field: "sound", Message: "must not be empty"}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return Ref{}, fmt.Errorf("add entry: begin tx: %w", err)
	}
	defer tx.Rollback() // No-op if committed

	var index int
	err = tx.QueryRowContext(ctx, `
		SELECT COALESCE(MAX(entry_index) + 1, 0)
		FROM entries
		WHERE headword = ?
	`, entry.Headword).Scan(&index)
	if err != nil {
		return Ref{}, fmt.Errorf("add entry: next index: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO entries
		(headword, entry_index, definition, sound, change, pos)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(headword, entry_index) DO NOTHING
	`,
		entry.Headword,
		index,
		entry.Definition,
		joinSounds(entry.Sound),
		joinSounds(entry.Change),
		entry.POS,
	)
	if err != nil {
		return Ref{}, fmt.Errorf("add entry: insert: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return Ref{}, fmt.Errorf("add entry: commit: %w", err)
	}

	return Ref{Headword: entry.Headword, Index: index}, nil
}

// PutEntry writes an entry at an explicit (headword, index) slot.
// Uses ON CONFLICT DO NOTHING for idempotency - re-importing the same
// entry is silently ignored. Used by bulk imports where the caller has
// already assigned indexes.
func (s *Store) PutEntry(ctx context.Context, entry Entry) error {
	if entry.Headword == "" {
		return &InvalidEntryError{Field: "headword", Message: "must not be empty"}
	}
	if len(entry.Sound) == 0 {
		return &InvalidEntryError{Field: "sound", Message: "must not be empty"}
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO entries
		(headword, entry_index, definition, sound, change, pos)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(headword, entry_index) DO NOTHING
	`,
		entry.Headword,
		entry.Index,
		entry.Definition,
		joinSounds(entry.Sound),
		joinSounds(entry.Change),
		entry.POS,
	)
	if err != nil {
		return fmt.Errorf("put entry: %w", err)
	}
	return nil
}

// Redefine replaces the definition of one entry.
// Returns UnknownEntryError if the (headword, index) slot does not exist.
func (s *Store) Redefine(ctx context.Context, ref Ref, definition string) error {
	result, err := s.db.ExecContext(ctx, `
		UPDATE entries
		SET definition = ?
		WHERE headword = ? AND entry_index = ?
	`, definition, ref.Headword, ref.Index)
	if err != nil {
		return fmt.Errorf("redefine: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("redefine: rows affected: %w", err)
	}
	if affected == 0 {
		return &UnknownEntryError{Headword: ref.Headword, Index: ref.Index}
	}
	return nil
}

// SetChange records the post-rule pronunciation for one entry.
// Returns UnknownEntryError if the (headword, index) slot does not exist.
func (s *Store) SetChange(ctx context.Context, ref Ref, change []string) error {
	result, err := s.db.ExecContext(ctx, `
		UPDATE entries
		SET change = ?
		WHERE headword = ? AND entry_index = ?
	`, joinSounds(change), ref.Headword, ref.Index)
	if err != nil {
		return fmt.Errorf("set change: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("set change: rows affected: %w", err)
	}
	if affected == 0 {
		return &UnknownEntryError{Headword: ref.Headword, Index: ref.Index}
	}
	return nil
}

// RemoveEntry deletes a single entry and returns it.
// Later entries under the same headword keep their indexes, so removal
// leaves a gap rather than renumbering homographs other callers may hold
// references to.
func (s *Store) RemoveEntry(ctx context.Context, ref Ref) (Entry, error) {
	entry, err := s.Entry(ctx, ref)
	if err != nil {
		return Entry{}, err
	}

	_, err = s.db.ExecContext(ctx, `
		DELETE FROM entries
		WHERE headword = ? AND entry_index = ?
	`, ref.Headword, ref.Index)
	if err != nil {
		return Entry{}, fmt.Errorf("remove entry: %w", err)
	}
	return entry, nil
}

// RemoveHeadword deletes a headword and all of its entries, returning
// the removed entries. Returns UnknownHeadwordError if no entries exist.
func (s *Store) RemoveHeadword(ctx context.Context, headword string) ([]Entry, error) {
	entries, err := s.Lookup(ctx, headword)
	if err != nil {
		return nil, err
	}

	_, err = s.db.ExecContext(ctx, `
		DELETE FROM entries
		WHERE headword = ?
	`, headword)
	if err != nil {
		return nil, fmt.Errorf("remove headword: %w", err)
	}
	return entries, nil
}
