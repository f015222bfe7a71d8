package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildWords(t *testing.T) {
	path := writeTestDefinition(t)

	// the test language has a single CV structure and one phoneme per
	// slot, so every built word is qaqa regardless of seed
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewBuildCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{path, "--count", "3", "--syllables", "2", "--seed", "42"})

	err := cmd.Execute()
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "qaqa")
	assert.Contains(t, output, "k a k a")
	assert.Contains(t, output, "k a ɣ a")
	// tablewriter renders footer cells in caps
	assert.Contains(t, output, "3 WORDS")
}

func TestBuildWordsJSON(t *testing.T) {
	path := writeTestDefinition(t)

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "json"}
	cmd := NewBuildCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{path, "-n", "2", "-s", "1", "--seed", "7"})

	err := cmd.Execute()
	require.NoError(t, err)

	var resp struct {
		Status string      `json:"status"`
		Data   []BuiltWord `json:"data"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	require.Len(t, resp.Data, 2)
	assert.Equal(t, BuiltWord{Spelling: "qa", Sound: "k a", Change: "k a"}, resp.Data[0])
}

func TestBuildRejectsBadCounts(t *testing.T) {
	path := writeTestDefinition(t)

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewBuildCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{path, "--count", "0"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
