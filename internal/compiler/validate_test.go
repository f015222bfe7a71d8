package compiler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func codes(errs []ValidationError) []string {
	out := make([]string, len(errs))
	for i, e := range errs {
		out[i] = e.Code
	}
	return out
}

func TestValidate_ValidDefinition(t *testing.T) {
	def, err := CompileString(exampleDefinition)
	require.NoError(t, err)

	assert.Empty(t, Validate(def))
}

func TestValidate_EmptyName(t *testing.T) {
	errs := Validate(&Definition{Name: "  "})
	assert.Contains(t, codes(errs), ErrNameEmpty)
}

func TestValidate_DuplicateSymbol(t *testing.T) {
	def := &Definition{
		Name: "x",
		Features: []SymbolFeatures{
			{Symbol: "k", Features: []string{"consonant"}},
			{Symbol: "k", Features: []string{"consonant", "stop"}},
		},
	}
	assert.Contains(t, codes(Validate(def)), ErrDuplicateSymbol)
}

func TestValidate_SymbolWithoutFeatures(t *testing.T) {
	def := &Definition{
		Name:     "x",
		Features: []SymbolFeatures{{Symbol: "k"}},
	}
	assert.Contains(t, codes(Validate(def)), ErrNoSymbolFeatures)
}

func TestValidate_InventoryProblems(t *testing.T) {
	def := &Definition{
		Name: "x",
		Features: []SymbolFeatures{
			{Symbol: "k", Features: []string{"consonant"}},
		},
		Inventory: []PhonemeDef{
			{IPA: "k"},                                          // no letters
			{IPA: "z", Letters: []string{"z"}},                  // undeclared symbol
			{IPA: "k", Letters: []string{"c"}, Weight: -1},      // refiled, bad weight
		},
	}

	got := codes(Validate(def))
	assert.Contains(t, got, ErrPhonemeNoLetters)
	assert.Contains(t, got, ErrPhonemeUnknown)
	assert.Contains(t, got, ErrDuplicatePhoneme)
	assert.Contains(t, got, ErrNegativeWeight)
}

func TestValidate_UndeclaredPhonemeAllowedWithoutFeatureBlock(t *testing.T) {
	// a definition relying on the default chart declares no features,
	// so inventory symbols cannot be checked against them
	def := &Definition{
		Name:      "x",
		Inventory: []PhonemeDef{{IPA: "k", Letters: []string{"k"}}},
	}
	assert.Empty(t, Validate(def))
}

func TestValidate_RuleFieldsRequired(t *testing.T) {
	def := &Definition{
		Name:  "x",
		Rules: []RuleDef{{}},
	}

	got := codes(Validate(def))
	assert.Contains(t, got, ErrRuleSourceEmpty)
	assert.Contains(t, got, ErrRuleTargetEmpty)
	assert.Contains(t, got, ErrRuleEnvironmentEmpty)
}

func TestValidate_EmptySyllable(t *testing.T) {
	def := &Definition{Name: "x", Syllables: []string{"CV", " "}}
	assert.Contains(t, codes(Validate(def)), ErrEmptySyllable)
}
