package syllables

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evoglot/evoglot/internal/phonetics"
)

func makeMorae(t *testing.T) *Morae {
	t.Helper()
	reg := phonetics.New()
	require.NoError(t, reg.Add("a", "vowel", "short"))
	require.NoError(t, reg.Add("aː", "vowel", "long"))
	require.NoError(t, reg.Add("k", "consonant", "voiceless", "velar", "stop"))
	require.NoError(t, reg.Add("n", "consonant", "voiced", "nasal"))
	return NewMorae(NewStore(reg, WithIDGenerator(&sequenceGen{})))
}

func TestSetMora_AndBeats(t *testing.T) {
	m := makeMorae(t)

	require.NoError(t, m.SetMora(1, "CV"))
	require.NoError(t, m.SetMora(2, "C", "vowel long"))

	beats, ok := m.Beats("CV")
	require.True(t, ok)
	assert.Equal(t, 1, beats)

	beats, ok = m.Beats("C", "vowel long")
	require.True(t, ok)
	assert.Equal(t, 2, beats)

	_, ok = m.Beats("V")
	assert.False(t, ok)
	assert.Equal(t, 2, m.Len())
}

func TestSetMora_Duplicate(t *testing.T) {
	m := makeMorae(t)
	require.NoError(t, m.SetMora(1, "CV"))

	err := m.SetMora(2, "CV")
	assert.True(t, IsDuplicateMora(err))

	// removing frees the pattern for a new beat count
	require.True(t, m.Remove("CV"))
	require.NoError(t, m.SetMora(2, "CV"))
	beats, ok := m.Beats("CV")
	require.True(t, ok)
	assert.Equal(t, 2, beats)
}

func TestSetMora_Invalid(t *testing.T) {
	m := makeMorae(t)

	err := m.SetMora(0, "CV")
	require.Error(t, err)

	err = m.SetMora(1, "nasal sibilant")
	require.Error(t, err)
}

func TestCountBeats(t *testing.T) {
	m := makeMorae(t)
	// the long-vowel pattern goes first so it outranks the general CV
	require.NoError(t, m.SetMora(2, "C", "vowel long"))
	require.NoError(t, m.SetMora(1, "CV"))

	// ka + kaː = 1 + 2
	count, err := m.CountBeats([]string{"k", "a", "k", "aː"})
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestCountBeats_MatchPriority(t *testing.T) {
	m := makeMorae(t)
	// a long vowel satisfies both patterns; the first registered wins
	require.NoError(t, m.SetMora(1, "CV"))
	require.NoError(t, m.SetMora(2, "C", "vowel long"))

	count, err := m.CountBeats([]string{"k", "aː"})
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestCountBeats_Unweighable(t *testing.T) {
	m := makeMorae(t)
	require.NoError(t, m.SetMora(1, "CV"))

	// a trailing consonant completes no pattern
	_, err := m.CountBeats([]string{"k", "a", "n"})
	assert.True(t, IsUnweighable(err))
}

func TestCountBeats_UnknownSound(t *testing.T) {
	m := makeMorae(t)
	require.NoError(t, m.SetMora(1, "CV"))

	_, err := m.CountBeats([]string{"k", "ʒ"})
	assert.True(t, phonetics.IsUnknownSymbol(err))
}
