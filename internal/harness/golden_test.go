package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunWithGolden_Lenition(t *testing.T) {
	scenario, err := LoadScenario("testdata/scenarios/lenition.yaml")
	require.NoError(t, err)

	result, err := RunWithGolden(t, scenario)
	require.NoError(t, err)
	assert.Empty(t, result.Failures())
}

func TestRunWithGolden_InitialVoicing(t *testing.T) {
	scenario, err := LoadScenario("testdata/scenarios/initial-voicing.yaml")
	require.NoError(t, err)

	result, err := RunWithGolden(t, scenario)
	require.NoError(t, err)
	assert.Empty(t, result.Failures())
}

func TestSnapshot_OmitsEmptyMatches(t *testing.T) {
	result := &Result{
		Scenario: &Scenario{Name: "s"},
		Cases: []CaseResult{
			{Input: []string{"k", "a"}, Output: []string{"k", "a"}},
		},
	}

	data, err := marshalSnapshot(snapshot(result))
	require.NoError(t, err)
	assert.NotContains(t, string(data), "matches")
	assert.Contains(t, string(data), `"input": "k a"`)
}
