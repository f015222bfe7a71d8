package compiler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/evoglot/evoglot/internal/language"
	"github.com/evoglot/evoglot/internal/phonetics"
)

// Build assembles a runnable Language from a validated definition.
// Definitions without a features block start from the default IPA chart
// instead of an empty registry.
//
// Registration follows document order throughout, so two builds of the
// same definition produce identical symbol resolution and rule order.
func Build(def *Definition, opts ...language.Option) (*language.Language, error) {
	if errs := Validate(def); len(errs) > 0 {
		joined := make([]error, len(errs))
		for i, e := range errs {
			joined[i] = e
		}
		return nil, fmt.Errorf("invalid definition %q: %w", def.Name, errors.Join(joined...))
	}

	var registry *phonetics.Registry
	if len(def.Features) == 0 {
		registry = phonetics.DefaultIPA()
	} else {
		registry = phonetics.New()
		for _, sf := range def.Features {
			if err := registry.Add(sf.Symbol, sf.Features...); err != nil {
				return nil, fmt.Errorf("features.%s: %w", sf.Symbol, err)
			}
		}
	}

	lang := language.New(def.Name, append(opts, language.WithRegistry(registry))...)

	for _, phoneme := range def.Inventory {
		if err := lang.Inventory().Add(phoneme.IPA, phoneme.Letters, phoneme.Weight); err != nil {
			return nil, fmt.Errorf("inventory.%s: %w", phoneme.IPA, err)
		}
	}

	for i, structure := range def.Syllables {
		if _, err := lang.Syllables().Add(structure); err != nil {
			return nil, fmt.Errorf("syllables[%d] %q: %w", i, structure, err)
		}
	}

	if len(def.Phonotactics.Scale) > 0 {
		if err := lang.Phonotactics().SetScale(def.Phonotactics.Scale...); err != nil {
			return nil, fmt.Errorf("phonotactics.scale: %w", err)
		}
	}
	for _, nucleus := range def.Phonotactics.Nuclei {
		if err := lang.Phonotactics().AddNucleus(strings.Fields(nucleus)...); err != nil {
			return nil, fmt.Errorf("phonotactics.nuclei %q: %w", nucleus, err)
		}
	}

	for i, rule := range def.Rules {
		env := strings.Fields(rule.Environment)
		if _, err := lang.AddRule(rule.Source, rule.Target, env...); err != nil {
			return nil, fmt.Errorf("rules[%d]: %w", i, err)
		}
	}

	return lang, nil
}
