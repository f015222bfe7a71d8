package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evoglot/evoglot/internal/phonetics"
)

func makeEnvRegistry(t *testing.T) *phonetics.Registry {
	t.Helper()
	reg := phonetics.New()
	require.NoError(t, reg.Add("a", "vowel", "open"))
	require.NoError(t, reg.Add("k", "consonant", "voiceless", "velar", "stop"))
	return reg
}

func TestParseEnvironment_CompactNotation(t *testing.T) {
	reg := makeEnvRegistry(t)

	env, err := ParseEnvironment(reg, "V_V")
	require.NoError(t, err)
	require.Len(t, env, 3)
	assert.Equal(t, SlotFeatures, env[0].Kind)
	assert.True(t, env[0].Features.Has("vowel"))
	assert.Equal(t, SlotFocus, env[1].Kind)
	assert.Equal(t, 1, env.FocusIndex())
}

func TestParseEnvironment_SlotElements(t *testing.T) {
	reg := makeEnvRegistry(t)

	env, err := ParseEnvironment(reg, "voiceless velar", "_", "vowel")
	require.NoError(t, err)
	require.Len(t, env, 3)
	assert.True(t, env[0].Features.Has("velar"))
	assert.Equal(t, SlotFocus, env[1].Kind)
	assert.True(t, env[2].Features.Has("vowel"))
}

func TestParseEnvironment_ShorthandInSlot(t *testing.T) {
	reg := makeEnvRegistry(t)

	env, err := ParseEnvironment(reg, "C", "_")
	require.NoError(t, err)
	require.Len(t, env, 2)
	assert.True(t, env[0].Features.Has("consonant"))
}

func TestParseEnvironment_BoundaryAtEdges(t *testing.T) {
	reg := makeEnvRegistry(t)

	env, err := ParseEnvironment(reg, "#_V")
	require.NoError(t, err)
	require.Len(t, env, 3)
	assert.Equal(t, SlotBoundary, env[0].Kind)
	assert.Equal(t, SlotFocus, env[1].Kind)

	env, err = ParseEnvironment(reg, "V", "_", "#")
	require.NoError(t, err)
	assert.Equal(t, SlotBoundary, env[2].Kind)
}

func TestParseEnvironment_InteriorBoundaryRejected(t *testing.T) {
	reg := makeEnvRegistry(t)

	_, err := ParseEnvironment(reg, "V", "#", "_")
	require.Error(t, err)
	assert.True(t, IsInvalidRule(err))
}

func TestParseEnvironment_FocusCount(t *testing.T) {
	reg := makeEnvRegistry(t)

	_, err := ParseEnvironment(reg, "V", "V")
	require.Error(t, err, "zero focus markers must be rejected")
	assert.True(t, IsInvalidRule(err))

	_, err = ParseEnvironment(reg, "_", "_")
	require.Error(t, err, "two focus markers must be rejected")
	assert.True(t, IsInvalidRule(err))

	_, err = ParseEnvironment(reg)
	require.Error(t, err, "empty environment must be rejected")
	assert.True(t, IsInvalidRule(err))
}

func TestParseEnvironment_UnknownFeature(t *testing.T) {
	reg := makeEnvRegistry(t)

	_, err := ParseEnvironment(reg, "nasal", "_")
	require.Error(t, err)
	assert.True(t, IsInvalidRule(err))
	assert.True(t, phonetics.IsInvalidFeatures(err))
}

func TestEnvironment_String(t *testing.T) {
	reg := makeEnvRegistry(t)

	env, err := ParseEnvironment(reg, "#_V")
	require.NoError(t, err)
	assert.Equal(t, "# _ vowel", env.String())
}
