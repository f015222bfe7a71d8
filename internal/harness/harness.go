package harness

import (
	"fmt"
	"math/rand"
	"os"
	"strings"

	"github.com/evoglot/evoglot/internal/compiler"
	"github.com/evoglot/evoglot/internal/language"
)

// Result holds the outcome of running a scenario.
type Result struct {
	Scenario *Scenario
	Cases    []CaseResult
}

// CaseResult is the outcome of one word case.
type CaseResult struct {
	Input    []string
	Output   []string
	Expected []string // nil when the case declared no expectation
	Matches  []MatchRecord
	Pass     bool
}

// MatchRecord identifies one committed rule application: the rule in
// conventional notation and the input position it fired at. Rule ids
// are minted per run, so records carry the stable notation instead.
type MatchRecord struct {
	Rule  string
	Index int
}

// Failures returns a human-readable line per failed case.
// Empty when every case with an expectation passed.
func (r *Result) Failures() []string {
	var failures []string
	for _, c := range r.Cases {
		if c.Expected != nil && !c.Pass {
			failures = append(failures, fmt.Sprintf(
				"%s: got %q, expected %q",
				strings.Join(c.Input, " "),
				strings.Join(c.Output, " "),
				strings.Join(c.Expected, " "),
			))
		}
	}
	return failures
}

// Run builds the scenario's language and pushes each word case through
// its rules. Case failures are reported in the Result, not as an error;
// an error means the scenario itself could not be executed.
func Run(scenario *Scenario) (*Result, error) {
	source, err := os.ReadFile(scenario.Language)
	if err != nil {
		return nil, fmt.Errorf("read language definition: %w", err)
	}

	def, err := compiler.CompileString(string(source))
	if err != nil {
		return nil, fmt.Errorf("compile language definition: %w", err)
	}

	seed := scenario.Seed
	if seed == 0 {
		seed = 1
	}
	lang, err := compiler.Build(def, language.WithRandom(rand.New(rand.NewSource(seed))))
	if err != nil {
		return nil, fmt.Errorf("build language: %w", err)
	}

	result := &Result{Scenario: scenario}
	for _, wordCase := range scenario.Words {
		input := strings.Fields(wordCase.Input)

		output, matches, err := lang.Engine().ApplyTrace(input)
		if err != nil {
			return nil, fmt.Errorf("apply rules to %q: %w", wordCase.Input, err)
		}

		records := make([]MatchRecord, 0, len(matches))
		for _, match := range matches {
			rule, err := lang.Rules().Get(match.RuleID)
			if err != nil {
				return nil, fmt.Errorf("resolve matched rule: %w", err)
			}
			records = append(records, MatchRecord{Rule: rule.String(), Index: match.Index})
		}

		caseResult := CaseResult{
			Input:   input,
			Output:  output,
			Matches: records,
		}
		if wordCase.Expect != "" {
			caseResult.Expected = strings.Fields(wordCase.Expect)
			caseResult.Pass = equalWords(output, caseResult.Expected)
		}
		result.Cases = append(result.Cases, caseResult)
	}

	return result, nil
}

func equalWords(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
