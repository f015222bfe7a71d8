package language

import (
	"errors"
	"fmt"
)

// InvalidPhonemeError reports an attempt to add a malformed phoneme to
// an inventory.
type InvalidPhonemeError struct {
	IPA     string
	Message string
}

func (e *InvalidPhonemeError) Error() string {
	return fmt.Sprintf("invalid phoneme %q: %s", e.IPA, e.Message)
}

// NoSyllablesError reports a word build against a language with no
// syllable structures defined.
type NoSyllablesError struct{}

func (e *NoSyllablesError) Error() string {
	return "no syllable structures defined"
}

// UnspellableError reports a sound with no letters in the inventory and
// no usable fallback.
type UnspellableError struct {
	Symbol string
	Index  int
}

func (e *UnspellableError) Error() string {
	return fmt.Sprintf("no letters for sound %q at position %d", e.Symbol, e.Index)
}

// IsInvalidPhoneme reports whether err is an InvalidPhonemeError.
func IsInvalidPhoneme(err error) bool {
	var target *InvalidPhonemeError
	return errors.As(err, &target)
}

// IsNoSyllables reports whether err is a NoSyllablesError.
func IsNoSyllables(err error) bool {
	var target *NoSyllablesError
	return errors.As(err, &target)
}

// IsUnspellable reports whether err is an UnspellableError.
func IsUnspellable(err error) bool {
	var target *UnspellableError
	return errors.As(err, &target)
}
