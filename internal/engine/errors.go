package engine

import "errors"

// EmptyRuleSetError is returned by Apply in strict mode when no rules are
// defined. The default (non-strict) behavior treats zero rules as an
// identity transform instead.
type EmptyRuleSetError struct{}

func (e *EmptyRuleSetError) Error() string {
	return "empty rule set: no sound-change rules defined"
}

// IsEmptyRuleSet reports whether err is an EmptyRuleSetError.
// Uses errors.As to handle wrapped errors.
func IsEmptyRuleSet(err error) bool {
	var erse *EmptyRuleSetError
	return errors.As(err, &erse)
}
