package grammar

import (
	"errors"
	"fmt"
)

// UnknownWordClassError is returned for an undeclared part of speech.
type UnknownWordClassError struct {
	Name string
}

func (e *UnknownWordClassError) Error() string {
	return fmt.Sprintf("unknown word class %q", e.Name)
}

// UnknownExponentError is returned for an exponent id that does not
// exist.
type UnknownExponentError struct {
	ID string
}

func (e *UnknownExponentError) Error() string {
	return fmt.Sprintf("unknown exponent %q", e.ID)
}

// InvalidExponentError is returned for an exponent that cannot be
// registered or attached.
type InvalidExponentError struct {
	Reason string
}

func (e *InvalidExponentError) Error() string {
	return fmt.Sprintf("invalid exponent: %s", e.Reason)
}

// IsUnknownWordClass reports whether err is an UnknownWordClassError.
func IsUnknownWordClass(err error) bool {
	var uwc *UnknownWordClassError
	return errors.As(err, &uwc)
}

// IsUnknownExponent reports whether err is an UnknownExponentError.
func IsUnknownExponent(err error) bool {
	var uee *UnknownExponentError
	return errors.As(err, &uee)
}

// IsInvalidExponent reports whether err is an InvalidExponentError.
func IsInvalidExponent(err error) bool {
	var iee *InvalidExponentError
	return errors.As(err, &iee)
}
