package lexicon

import (
	"errors"
	"fmt"
)

// UnknownHeadwordError reports a lookup for a headword with no entries.
type UnknownHeadwordError struct {
	Headword string
}

func (e *UnknownHeadwordError) Error() string {
	return fmt.Sprintf("unknown headword %q", e.Headword)
}

// UnknownEntryError reports a lookup for an entry index that does not
// exist under the given headword.
type UnknownEntryError struct {
	Headword string
	Index    int
}

func (e *UnknownEntryError) Error() string {
	return fmt.Sprintf("no entry %d for headword %q", e.Index, e.Headword)
}

// InvalidEntryError reports an attempt to store an entry missing a
// required attribute.
type InvalidEntryError struct {
	Field   string
	Message string
}

func (e *InvalidEntryError) Error() string {
	return fmt.Sprintf("invalid entry: %s: %s", e.Field, e.Message)
}

// IsUnknownHeadword reports whether err is an UnknownHeadwordError.
func IsUnknownHeadword(err error) bool {
	var target *UnknownHeadwordError
	return errors.As(err, &target)
}

// IsUnknownEntry reports whether err is an UnknownEntryError.
func IsUnknownEntry(err error) bool {
	var target *UnknownEntryError
	return errors.As(err, &target)
}

// IsInvalidEntry reports whether err is an InvalidEntryError.
func IsInvalidEntry(err error) bool {
	var target *InvalidEntryError
	return errors.As(err, &target)
}
