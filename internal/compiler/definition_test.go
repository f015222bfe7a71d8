package compiler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exampleDefinition = `
language: {
	name: "táan"
	features: {
		"k": ["consonant", "voiceless", "velar", "stop"]
		"x": ["consonant", "voiceless", "velar", "fricative"]
		"g": ["consonant", "voiced", "velar", "stop"]
		"ɣ": ["consonant", "voiced", "velar", "fricative"]
		"a": ["vowel", "low", "front", "unrounded"]
	}
	inventory: {
		"k": {letters: ["q"]}
		"a": {letters: ["a"], weight: 2}
	}
	syllables: ["CV", "CVC"]
	phonotactics: {
		scale: ["vowel", "fricative", "stop"]
		nuclei: ["vowel"]
	}
	rules: [
		{source: "stop", target: "fricative", environment: "V_V"},
		{source: "voiceless", target: "voiced", environment: "V_V"},
	]
}
`

func TestCompileString_FullDefinition(t *testing.T) {
	def, err := CompileString(exampleDefinition)
	require.NoError(t, err)

	assert.Equal(t, "táan", def.Name)

	require.Len(t, def.Features, 5)
	assert.Equal(t, "k", def.Features[0].Symbol)
	assert.Equal(t, []string{"consonant", "voiceless", "velar", "stop"}, def.Features[0].Features)
	assert.Equal(t, "ɣ", def.Features[3].Symbol)

	require.Len(t, def.Inventory, 2)
	assert.Equal(t, PhonemeDef{IPA: "k", Letters: []string{"q"}}, def.Inventory[0])
	assert.Equal(t, 2, def.Inventory[1].Weight)

	assert.Equal(t, []string{"CV", "CVC"}, def.Syllables)
	assert.Equal(t, []string{"vowel", "fricative", "stop"}, def.Phonotactics.Scale)
	assert.Equal(t, []string{"vowel"}, def.Phonotactics.Nuclei)

	require.Len(t, def.Rules, 2)
	assert.Equal(t, RuleDef{Source: "stop", Target: "fricative", Environment: "V_V"}, def.Rules[0])
}

func TestCompileString_MissingLanguage(t *testing.T) {
	_, err := CompileString(`dialect: {name: "x"}`)
	require.Error(t, err)

	var compileErr *CompileError
	require.ErrorAs(t, err, &compileErr)
	assert.Equal(t, "language", compileErr.Field)
}

func TestCompileString_MissingName(t *testing.T) {
	_, err := CompileString(`language: {syllables: ["CV"]}`)
	require.Error(t, err)

	var compileErr *CompileError
	require.ErrorAs(t, err, &compileErr)
	assert.Equal(t, "name", compileErr.Field)
}

func TestCompileString_InventoryRequiresLetters(t *testing.T) {
	_, err := CompileString(`
language: {
	name: "x"
	inventory: {"k": {weight: 1}}
}
`)
	require.Error(t, err)

	var compileErr *CompileError
	require.ErrorAs(t, err, &compileErr)
	assert.Equal(t, "inventory.k", compileErr.Field)
}

func TestCompileString_RuleRequiresAllFields(t *testing.T) {
	_, err := CompileString(`
language: {
	name: "x"
	rules: [{source: "stop", target: "fricative"}]
}
`)
	require.Error(t, err)

	var compileErr *CompileError
	require.ErrorAs(t, err, &compileErr)
	assert.Equal(t, "rules.environment", compileErr.Field)
}

func TestCompileString_MalformedCUE(t *testing.T) {
	_, err := CompileString(`language: {name: }`)
	require.Error(t, err)
}

func TestCompileString_MinimalDefinition(t *testing.T) {
	def, err := CompileString(`language: {name: "bare"}`)
	require.NoError(t, err)

	assert.Equal(t, "bare", def.Name)
	assert.Empty(t, def.Features)
	assert.Empty(t, def.Inventory)
	assert.Empty(t, def.Rules)
}
