package harness

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
)

// TraceSnapshot captures the complete trace for a scenario execution
// in a stable, diffable form.
type TraceSnapshot struct {
	ScenarioName string         `json:"scenario_name"`
	Cases        []CaseSnapshot `json:"cases"`
}

// CaseSnapshot is one word case in the snapshot. Words are rendered as
// space-separated symbol strings.
type CaseSnapshot struct {
	Input   string          `json:"input"`
	Output  string          `json:"output"`
	Matches []MatchSnapshot `json:"matches,omitempty"`
}

// MatchSnapshot is one committed rule application.
type MatchSnapshot struct {
	Rule  string `json:"rule"`
	Index int    `json:"index"`
}

// snapshot converts a result into its golden-file form.
func snapshot(result *Result) TraceSnapshot {
	snap := TraceSnapshot{ScenarioName: result.Scenario.Name}
	for _, c := range result.Cases {
		caseSnap := CaseSnapshot{
			Input:  strings.Join(c.Input, " "),
			Output: strings.Join(c.Output, " "),
		}
		for _, m := range c.Matches {
			caseSnap.Matches = append(caseSnap.Matches, MatchSnapshot{Rule: m.Rule, Index: m.Index})
		}
		snap.Cases = append(snap.Cases, caseSnap)
	}
	return snap
}

// marshalSnapshot renders a snapshot as indented JSON without HTML
// escaping, so rule notation like "->" survives verbatim.
func marshalSnapshot(snap TraceSnapshot) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snap); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// RunWithGolden executes a scenario and compares the trace against a
// golden file stored in testdata/golden/{scenario.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
//
// Returns an error if scenario execution fails; trace mismatches fail
// the test via goldie.
func RunWithGolden(t *testing.T, scenario *Scenario) (*Result, error) {
	t.Helper()

	result, err := Run(scenario)
	if err != nil {
		return nil, err
	}

	traceJSON, err := marshalSnapshot(snapshot(result))
	if err != nil {
		return nil, err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenario.Name, traceJSON)

	return result, nil
}
