// Package compiler parses CUE language definitions and builds runnable
// languages from them.
//
// A definition describes a language declaratively: feature assignments
// for its symbols, the phoneme inventory with spellable letters,
// syllable structures, phonotactic constraints and sound rules. The
// compiler turns the CUE document into a Definition, validates it, and
// Build assembles the working Language.
package compiler

import (
	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// Definition is the parsed form of a CUE language definition.
// Slice fields preserve document order so symbol registration and rule
// application stay deterministic.
type Definition struct {
	Name         string
	Features     []SymbolFeatures
	Inventory    []PhonemeDef
	Syllables    []string
	Phonotactics PhonotacticsDef
	Rules        []RuleDef
}

// SymbolFeatures assigns a feature set to one phonetic symbol.
type SymbolFeatures struct {
	Symbol   string
	Features []string
}

// PhonemeDef files a symbol in the inventory with its letters.
type PhonemeDef struct {
	IPA     string
	Letters []string
	Weight  int
}

// PhonotacticsDef carries optional sonority and nucleus settings.
type PhonotacticsDef struct {
	Scale  []string
	Nuclei []string
}

// RuleDef is one declared sound rule.
type RuleDef struct {
	Source      string
	Target      string
	Environment string
}

// CompileString parses CUE source text and compiles the definition
// found under its top-level "language" field.
//
//	def, err := compiler.CompileString(`language: { name: "táan", ... }`)
func CompileString(source string) (*Definition, error) {
	ctx := cuecontext.New()
	v := ctx.CompileString(source)
	if err := v.Err(); err != nil {
		return nil, formatCUEError(err)
	}

	langVal := v.LookupPath(cue.ParsePath("language"))
	if !langVal.Exists() {
		return nil, &CompileError{
			Field:   "language",
			Message: "top-level language field is required",
			Pos:     v.Pos(),
		}
	}
	return CompileDefinition(langVal)
}

// CompileDefinition parses a CUE value into a Definition.
// Uses the CUE SDK's Go API directly (not a CLI subprocess). The value
// should be the language struct itself.
func CompileDefinition(v cue.Value) (*Definition, error) {
	if err := v.Err(); err != nil {
		return nil, formatCUEError(err)
	}

	def := &Definition{}

	nameVal := v.LookupPath(cue.ParsePath("name"))
	if !nameVal.Exists() {
		return nil, &CompileError{
			Field:   "name",
			Message: "name is required",
			Pos:     v.Pos(),
		}
	}
	name, err := nameVal.String()
	if err != nil {
		return nil, formatCUEError(err)
	}
	def.Name = name

	if def.Features, err = parseFeatures(v); err != nil {
		return nil, err
	}
	if def.Inventory, err = parseInventory(v); err != nil {
		return nil, err
	}
	if def.Syllables, err = parseStringList(v, "syllables"); err != nil {
		return nil, err
	}
	if def.Phonotactics, err = parsePhonotactics(v); err != nil {
		return nil, err
	}
	if def.Rules, err = parseRules(v); err != nil {
		return nil, err
	}

	return def, nil
}

// parseFeatures extracts per-symbol feature assignments in document
// order. The features field is optional; a definition may rely on a
// pre-populated registry instead.
func parseFeatures(v cue.Value) ([]SymbolFeatures, error) {
	featuresVal := v.LookupPath(cue.ParsePath("features"))
	if !featuresVal.Exists() {
		return nil, nil
	}

	iter, err := featuresVal.Fields()
	if err != nil {
		return nil, formatCUEError(err)
	}

	var features []SymbolFeatures
	for iter.Next() {
		symbol := iter.Label()
		specs, err := stringList(iter.Value())
		if err != nil {
			return nil, err
		}
		features = append(features, SymbolFeatures{Symbol: symbol, Features: specs})
	}
	return features, nil
}

// parseInventory extracts the phoneme inventory in document order.
func parseInventory(v cue.Value) ([]PhonemeDef, error) {
	invVal := v.LookupPath(cue.ParsePath("inventory"))
	if !invVal.Exists() {
		return nil, nil
	}

	iter, err := invVal.Fields()
	if err != nil {
		return nil, formatCUEError(err)
	}

	var inventory []PhonemeDef
	for iter.Next() {
		ipa := iter.Label()
		entry := iter.Value()

		phoneme := PhonemeDef{IPA: ipa}

		lettersVal := entry.LookupPath(cue.ParsePath("letters"))
		if !lettersVal.Exists() {
			return nil, &CompileError{
				Field:   "inventory." + ipa,
				Message: "letters are required",
				Pos:     entry.Pos(),
			}
		}
		if phoneme.Letters, err = stringList(lettersVal); err != nil {
			return nil, err
		}

		weightVal := entry.LookupPath(cue.ParsePath("weight"))
		if weightVal.Exists() {
			weight, err := weightVal.Int64()
			if err != nil {
				return nil, formatCUEError(err)
			}
			phoneme.Weight = int(weight)
		}

		inventory = append(inventory, phoneme)
	}
	return inventory, nil
}

// parsePhonotactics extracts the optional phonotactics block.
func parsePhonotactics(v cue.Value) (PhonotacticsDef, error) {
	var def PhonotacticsDef

	tacticsVal := v.LookupPath(cue.ParsePath("phonotactics"))
	if !tacticsVal.Exists() {
		return def, nil
	}

	var err error
	if def.Scale, err = parseStringList(tacticsVal, "scale"); err != nil {
		return def, err
	}
	if def.Nuclei, err = parseStringList(tacticsVal, "nuclei"); err != nil {
		return def, err
	}
	return def, nil
}

// parseRules extracts declared sound rules in document order.
func parseRules(v cue.Value) ([]RuleDef, error) {
	rulesVal := v.LookupPath(cue.ParsePath("rules"))
	if !rulesVal.Exists() {
		return nil, nil
	}

	iter, err := rulesVal.List()
	if err != nil {
		return nil, formatCUEError(err)
	}

	var ruleDefs []RuleDef
	for iter.Next() {
		ruleVal := iter.Value()

		var rule RuleDef
		for _, field := range []struct {
			name string
			dst  *string
		}{
			{"source", &rule.Source},
			{"target", &rule.Target},
			{"environment", &rule.Environment},
		} {
			fieldVal := ruleVal.LookupPath(cue.ParsePath(field.name))
			if !fieldVal.Exists() {
				return nil, &CompileError{
					Field:   "rules." + field.name,
					Message: field.name + " is required",
					Pos:     ruleVal.Pos(),
				}
			}
			if *field.dst, err = fieldVal.String(); err != nil {
				return nil, formatCUEError(err)
			}
		}
		ruleDefs = append(ruleDefs, rule)
	}
	return ruleDefs, nil
}

// parseStringList reads an optional list-of-strings field.
func parseStringList(v cue.Value, path string) ([]string, error) {
	listVal := v.LookupPath(cue.ParsePath(path))
	if !listVal.Exists() {
		return nil, nil
	}
	return stringList(listVal)
}

func stringList(v cue.Value) ([]string, error) {
	iter, err := v.List()
	if err != nil {
		return nil, formatCUEError(err)
	}

	var out []string
	for iter.Next() {
		s, err := iter.Value().String()
		if err != nil {
			return nil, formatCUEError(err)
		}
		out = append(out, s)
	}
	return out, nil
}
