package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Scenario defines a sound change test scenario: a language definition
// plus the words to push through its rules.
type Scenario struct {
	// Name uniquely identifies this scenario. Golden files are stored
	// under this name.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Language is the path to the CUE language definition, relative to
	// the scenario file location.
	Language string `yaml:"language"`

	// Seed fixes the language's random source. Rule application is
	// deterministic either way; the seed only matters when a case
	// exercises word building. Defaults to 1.
	Seed int64 `yaml:"seed,omitempty"`

	// Words lists the cases to run.
	Words []WordCase `yaml:"words"`
}

// WordCase is one word pushed through the rules.
type WordCase struct {
	// Input is the word as space-separated sound symbols.
	Input string `yaml:"input"`

	// Expect is the expected post-rule word, space-separated.
	// When empty the case only contributes to the golden trace.
	Expect string `yaml:"expect,omitempty"`
}

// LoadScenario reads and parses a scenario YAML file. The language
// path is resolved relative to the scenario file's directory.
// Returns an error if the file doesn't exist, is malformed, contains
// unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	// Strict field validation catches typos like "word:" vs "words:"
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if scenario.Language != "" && !filepath.IsAbs(scenario.Language) {
		scenario.Language = filepath.Join(filepath.Dir(path), scenario.Language)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	if s.Language == "" {
		return fmt.Errorf("language is required")
	}
	if _, err := os.Stat(s.Language); os.IsNotExist(err) {
		return fmt.Errorf("language definition not found: %s", s.Language)
	}

	if len(s.Words) == 0 {
		return fmt.Errorf("words list is required and must be non-empty")
	}
	for i, word := range s.Words {
		if word.Input == "" {
			return fmt.Errorf("words[%d]: input is required", i)
		}
	}

	return nil
}
