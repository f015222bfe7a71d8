package phonetics

import (
	"errors"
	"fmt"
	"strings"
)

// UnknownSymbolError is returned when a lookup names a phonetic symbol that
// was never registered.
//
// The rewrite engine treats this as locally recoverable when it appears
// inside an input sequence (the position is skipped) but callers defining
// rules or querying the registry directly should treat it as fatal.
type UnknownSymbolError struct {
	Symbol string
}

func (e *UnknownSymbolError) Error() string {
	return fmt.Sprintf("unknown phonetic symbol %q", e.Symbol)
}

// InvalidFeaturesError is returned by Parse when one or more feature tokens
// are not registered features.
type InvalidFeaturesError struct {
	// Unknown lists the offending tokens in the order encountered.
	Unknown []string
}

func (e *InvalidFeaturesError) Error() string {
	if len(e.Unknown) == 0 {
		return "invalid features: empty feature spec"
	}
	return fmt.Sprintf("invalid features: unknown %s", strings.Join(e.Unknown, ", "))
}

// IsUnknownSymbol reports whether err is an UnknownSymbolError.
// Uses errors.As to handle wrapped errors.
func IsUnknownSymbol(err error) bool {
	var use *UnknownSymbolError
	return errors.As(err, &use)
}

// IsInvalidFeatures reports whether err is an InvalidFeaturesError.
// Uses errors.As to handle wrapped errors.
func IsInvalidFeatures(err error) bool {
	var ife *InvalidFeaturesError
	return errors.As(err, &ife)
}
