package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScenarioFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadScenario_Valid(t *testing.T) {
	scenario, err := LoadScenario("testdata/scenarios/lenition.yaml")
	require.NoError(t, err)

	assert.Equal(t, "lenition", scenario.Name)
	assert.Equal(t, filepath.Join("testdata", "languages", "taan.cue"), scenario.Language)
	require.Len(t, scenario.Words, 3)
	assert.Equal(t, "k a k a", scenario.Words[0].Input)
	assert.Equal(t, "k a ɣ a", scenario.Words[0].Expect)
}

func TestLoadScenario_MissingFile(t *testing.T) {
	_, err := LoadScenario("testdata/scenarios/nope.yaml")
	require.Error(t, err)
}

func TestLoadScenario_UnknownField(t *testing.T) {
	path := writeScenarioFile(t, `
name: typo
description: has a typo
language: nope.cue
word:
  - input: "k a"
`)
	_, err := LoadScenario(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "word")
}

func TestLoadScenario_MissingRequiredFields(t *testing.T) {
	path := writeScenarioFile(t, `
name: incomplete
description: no words
language: nope.cue
`)
	_, err := LoadScenario(path)
	require.Error(t, err)
}

func TestLoadScenario_MissingLanguageFile(t *testing.T) {
	path := writeScenarioFile(t, `
name: missing-language
description: points at a definition that does not exist
language: nope.cue
words:
  - input: "k a"
`)
	_, err := LoadScenario(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestLoadScenario_WordNeedsInput(t *testing.T) {
	dir := t.TempDir()
	langPath := filepath.Join(dir, "lang.cue")
	require.NoError(t, os.WriteFile(langPath, []byte(`language: {name: "x"}`), 0o644))
	path := filepath.Join(dir, "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
name: no-input
description: word case without input
language: lang.cue
words:
  - expect: "k a"
`), 0o644))

	_, err := LoadScenario(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "input is required")
}
