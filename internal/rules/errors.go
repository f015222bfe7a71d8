package rules

import (
	"errors"
	"fmt"
)

// InvalidRuleError is returned by Store.Add for unparseable feature specs
// or malformed environments. Not recoverable; the caller must fix the
// definition.
type InvalidRuleError struct {
	// Field names the offending part of the definition:
	// "source", "target" or "environment".
	Field string

	// Message is a human-readable description.
	Message string

	// Err is the underlying parse failure, if any.
	Err error
}

func (e *InvalidRuleError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid rule %s: %s: %v", e.Field, e.Message, e.Err)
	}
	return fmt.Sprintf("invalid rule %s: %s", e.Field, e.Message)
}

func (e *InvalidRuleError) Unwrap() error {
	return e.Err
}

// UnknownRuleError is returned when fetching or removing a rule id that
// does not exist.
type UnknownRuleError struct {
	ID string
}

func (e *UnknownRuleError) Error() string {
	return fmt.Sprintf("unknown rule %q", e.ID)
}

// IsInvalidRule reports whether err is an InvalidRuleError.
// Uses errors.As to handle wrapped errors.
func IsInvalidRule(err error) bool {
	var ire *InvalidRuleError
	return errors.As(err, &ire)
}

// IsUnknownRule reports whether err is an UnknownRuleError.
// Uses errors.As to handle wrapped errors.
func IsUnknownRule(err error) bool {
	var ure *UnknownRuleError
	return errors.As(err, &ure)
}
