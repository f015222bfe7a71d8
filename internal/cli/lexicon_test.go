package cli

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runLexicon executes the lexicon command group against the given db
// path and returns the combined output.
func runLexicon(t *testing.T, format, dbPath string, args ...string) (string, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: format}
	cmd := NewLexiconCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(append(args, "--db", dbPath))
	err := cmd.Execute()
	return buf.String(), err
}

func TestLexiconAddAndSearchSpelling(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "lexicon.db")

	output, err := runLexicon(t, "text", dbPath,
		"add", "kata", "k a t a", "--define", "a river fish", "--pos", "noun")
	require.NoError(t, err)
	assert.Contains(t, output, "added kata (entry 0)")

	output, err = runLexicon(t, "text", dbPath, "search", "--spelling", "kata")
	require.NoError(t, err)
	assert.Contains(t, output, "kata")
	assert.Contains(t, output, "a river fish")
	assert.Contains(t, output, "noun")
}

func TestLexiconHomographIndexing(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "lexicon.db")

	output, err := runLexicon(t, "text", dbPath, "add", "kata", "k a t a", "--define", "a fish")
	require.NoError(t, err)
	assert.Contains(t, output, "entry 0")

	output, err = runLexicon(t, "text", dbPath, "add", "kata", "k a t a", "--define", "to swim")
	require.NoError(t, err)
	assert.Contains(t, output, "entry 1")
}

func TestLexiconSearchKeywords(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "lexicon.db")

	_, err := runLexicon(t, "text", dbPath, "add", "kata", "k a t a", "--define", "a river fish")
	require.NoError(t, err)
	_, err = runLexicon(t, "text", dbPath, "add", "timu", "t i m u", "--define", "a mountain bird")
	require.NoError(t, err)

	output, err := runLexicon(t, "json", dbPath, "search", "--keyword", "river", "--keyword", "fish")
	require.NoError(t, err)

	var resp struct {
		Status string         `json:"status"`
		Data   []LexiconEntry `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(output), &resp))
	assert.Equal(t, "ok", resp.Status)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "kata", resp.Data[0].Headword)
	assert.Equal(t, "k a t a", resp.Data[0].Sound)
}

func TestLexiconSearchSound(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "lexicon.db")

	_, err := runLexicon(t, "text", dbPath, "add", "kata", "k a t a")
	require.NoError(t, err)

	output, err := runLexicon(t, "text", dbPath, "search", "--sound", "k a t a")
	require.NoError(t, err)
	assert.Contains(t, output, "kata")

	output, err = runLexicon(t, "text", dbPath, "search", "--sound", "m u")
	require.NoError(t, err)
	assert.Contains(t, output, "no entries found")
}

func TestLexiconSearchRequiresOneAttribute(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "lexicon.db")

	_, err := runLexicon(t, "text", dbPath, "search")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))

	_, err = runLexicon(t, "text", dbPath, "search", "--spelling", "kata", "--sound", "k a")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
