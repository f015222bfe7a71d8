package compiler

import (
	"fmt"
	"strings"
)

// Validation error codes (E100-E199)
const (
	// Definition errors (E101-E109)
	ErrNameEmpty          = "E101" // name is required
	ErrNoSymbolFeatures   = "E102" // symbol declared with no features
	ErrDuplicateSymbol    = "E103" // symbol declared twice
	ErrPhonemeNoLetters   = "E104" // inventory phoneme without letters
	ErrPhonemeUnknown     = "E105" // inventory phoneme not in features
	ErrNegativeWeight     = "E106" // inventory weight below zero
	ErrEmptySyllable      = "E107" // empty syllable structure
	ErrDuplicatePhoneme   = "E108" // phoneme filed twice

	// Rule errors (E110-E119)
	ErrRuleSourceEmpty      = "E110" // rule source is required
	ErrRuleTargetEmpty      = "E111" // rule target is required
	ErrRuleEnvironmentEmpty = "E112" // rule environment is required
)

// ValidationError represents a definition validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s: %s", e.Code, e.Field, e.Message)
}

// Validate checks a compiled definition against structural rules.
// Returns all errors found (does not fail-fast). Feature spellings and
// environments are only checked for presence here; Build reports
// symbol-level problems against the assembled registry.
func Validate(def *Definition) []ValidationError {
	var errs []ValidationError

	if strings.TrimSpace(def.Name) == "" {
		errs = append(errs, ValidationError{
			Field:   "name",
			Message: "name is required and must be non-empty",
			Code:    ErrNameEmpty,
		})
	}

	declared := make(map[string]bool)
	for _, sf := range def.Features {
		if declared[sf.Symbol] {
			errs = append(errs, ValidationError{
				Field:   "features." + sf.Symbol,
				Message: "symbol declared more than once",
				Code:    ErrDuplicateSymbol,
			})
		}
		declared[sf.Symbol] = true

		if len(sf.Features) == 0 {
			errs = append(errs, ValidationError{
				Field:   "features." + sf.Symbol,
				Message: "at least one feature is required",
				Code:    ErrNoSymbolFeatures,
			})
		}
	}

	filed := make(map[string]bool)
	for _, phoneme := range def.Inventory {
		if filed[phoneme.IPA] {
			errs = append(errs, ValidationError{
				Field:   "inventory." + phoneme.IPA,
				Message: "phoneme filed more than once",
				Code:    ErrDuplicatePhoneme,
			})
		}
		filed[phoneme.IPA] = true

		if len(phoneme.Letters) == 0 {
			errs = append(errs, ValidationError{
				Field:   "inventory." + phoneme.IPA,
				Message: "at least one letter is required",
				Code:    ErrPhonemeNoLetters,
			})
		}
		if len(def.Features) > 0 && !declared[phoneme.IPA] {
			errs = append(errs, ValidationError{
				Field:   "inventory." + phoneme.IPA,
				Message: "phoneme has no feature declaration",
				Code:    ErrPhonemeUnknown,
			})
		}
		if phoneme.Weight < 0 {
			errs = append(errs, ValidationError{
				Field:   "inventory." + phoneme.IPA,
				Message: "weight must not be negative",
				Code:    ErrNegativeWeight,
			})
		}
	}

	for i, structure := range def.Syllables {
		if strings.TrimSpace(structure) == "" {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("syllables[%d]", i),
				Message: "syllable structure must be non-empty",
				Code:    ErrEmptySyllable,
			})
		}
	}

	for i, rule := range def.Rules {
		field := fmt.Sprintf("rules[%d]", i)
		if strings.TrimSpace(rule.Source) == "" {
			errs = append(errs, ValidationError{
				Field:   field + ".source",
				Message: "source features are required",
				Code:    ErrRuleSourceEmpty,
			})
		}
		if strings.TrimSpace(rule.Target) == "" {
			errs = append(errs, ValidationError{
				Field:   field + ".target",
				Message: "target features are required",
				Code:    ErrRuleTargetEmpty,
			})
		}
		if strings.TrimSpace(rule.Environment) == "" {
			errs = append(errs, ValidationError{
				Field:   field + ".environment",
				Message: "environment is required",
				Code:    ErrRuleEnvironmentEmpty,
			})
		}
	}

	return errs
}
