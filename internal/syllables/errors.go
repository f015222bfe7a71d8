package syllables

import (
	"errors"
	"fmt"
)

// UnknownSyllableError is returned when updating a syllable id that does
// not exist.
type UnknownSyllableError struct {
	ID string
}

func (e *UnknownSyllableError) Error() string {
	return fmt.Sprintf("unknown syllable %q", e.ID)
}

// InvalidNucleusError is returned when a phonotactic nucleus or scale spec
// names unregistered features.
type InvalidNucleusError struct {
	Spec string
	Err  error
}

func (e *InvalidNucleusError) Error() string {
	return fmt.Sprintf("invalid nucleus spec %q: %v", e.Spec, e.Err)
}

func (e *InvalidNucleusError) Unwrap() error {
	return e.Err
}

// InvalidMoraError is returned for a moraic pattern that does not parse
// or carries a non-positive beat count.
type InvalidMoraError struct {
	Spec   []string
	Reason string
}

func (e *InvalidMoraError) Error() string {
	return fmt.Sprintf("invalid mora %v: %s", e.Spec, e.Reason)
}

// DuplicateMoraError is returned when registering a moraic pattern that
// already has a beat count.
type DuplicateMoraError struct {
	Spec []string
}

func (e *DuplicateMoraError) Error() string {
	return fmt.Sprintf("mora %v already registered", e.Spec)
}

// UnweighableError is returned when a sound sequence ends mid-pattern and
// cannot be fully counted in beats.
type UnweighableError struct {
	Remainder int // sounds left after the last completed pattern
}

func (e *UnweighableError) Error() string {
	return fmt.Sprintf("sequence not weighable: %d sound(s) complete no mora", e.Remainder)
}

// IsUnknownSyllable reports whether err is an UnknownSyllableError.
func IsUnknownSyllable(err error) bool {
	var use *UnknownSyllableError
	return errors.As(err, &use)
}

// IsDuplicateMora reports whether err is a DuplicateMoraError.
func IsDuplicateMora(err error) bool {
	var dme *DuplicateMoraError
	return errors.As(err, &dme)
}

// IsUnweighable reports whether err is an UnweighableError.
func IsUnweighable(err error) bool {
	var ue *UnweighableError
	return errors.As(err, &ue)
}
