package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evoglot/evoglot/internal/phonetics"
)

func makeTestStore(t *testing.T) *Store {
	t.Helper()
	reg := phonetics.New()
	require.NoError(t, reg.Add("a", "vowel", "front", "open"))
	require.NoError(t, reg.Add("k", "consonant", "voiceless", "velar", "stop"))
	require.NoError(t, reg.Add("g", "consonant", "voiced", "velar", "stop"))
	return NewStore(reg, WithIDGenerator(NewSequenceGenerator("rule")))
}

func TestAdd_MintsSequentialIDs(t *testing.T) {
	s := makeTestStore(t)

	id1, err := s.Add("voiceless", "voiced", "V_V")
	require.NoError(t, err)
	id2, err := s.Add("stop", "stop", "_")
	require.NoError(t, err)

	assert.Equal(t, "rule-1", id1)
	assert.Equal(t, "rule-2", id2)
	assert.True(t, s.Has(id1))
	assert.True(t, s.Has(id2))
}

func TestAdd_DefaultUUIDGenerator(t *testing.T) {
	reg := phonetics.New()
	require.NoError(t, reg.Add("a", "vowel"))
	s := NewStore(reg)

	id, err := s.Add("vowel", "vowel", "_")
	require.NoError(t, err)
	assert.Len(t, id, 36, "expected a hyphenated UUID")
}

func TestAdd_UnknownSourceFeatureFails(t *testing.T) {
	s := makeTestStore(t)

	_, err := s.Add("nasal", "voiced", "V_V")
	require.Error(t, err)
	assert.True(t, IsInvalidRule(err))
	assert.True(t, phonetics.IsInvalidFeatures(err), "invalid rule should wrap the parse failure")
}

func TestAdd_UnknownTargetFeatureFails(t *testing.T) {
	s := makeTestStore(t)

	_, err := s.Add("voiceless", "implosive", "V_V")
	require.Error(t, err)
	assert.True(t, IsInvalidRule(err))
}

func TestAdd_UnknownEnvironmentFeatureFails(t *testing.T) {
	s := makeTestStore(t)

	_, err := s.Add("voiceless", "voiced", "nasal", "_")
	require.Error(t, err)
	assert.True(t, IsInvalidRule(err))
}

func TestGet_ReturnsStoredRule(t *testing.T) {
	s := makeTestStore(t)
	id, err := s.Add("voiceless velar", "voiced", "vowel", "_", "vowel")
	require.NoError(t, err)

	rule, err := s.Get(id)
	require.NoError(t, err)
	assert.Equal(t, id, rule.ID)
	assert.True(t, rule.Source.Has("velar"))
	assert.True(t, rule.Target.Has("voiced"))
	assert.Equal(t, 1, rule.Environment.FocusIndex())
	assert.Len(t, rule.Environment, 3)
}

func TestGet_UnknownRule(t *testing.T) {
	s := makeTestStore(t)

	_, err := s.Get("missing")
	require.Error(t, err)
	assert.True(t, IsUnknownRule(err))
}

func TestRemove_DeletesAndReturnsRule(t *testing.T) {
	s := makeTestStore(t)
	id, err := s.Add("voiceless", "voiced", "V_V")
	require.NoError(t, err)

	removed, err := s.Remove(id)
	require.NoError(t, err)
	assert.Equal(t, id, removed.ID)
	assert.False(t, s.Has(id))

	_, err = s.Remove(id)
	assert.True(t, IsUnknownRule(err))
}

func TestAll_InsertionOrderSurvivesRemoval(t *testing.T) {
	s := makeTestStore(t)
	id1, _ := s.Add("voiceless", "voiced", "V_V")
	id2, _ := s.Add("stop", "stop", "_")
	id3, _ := s.Add("velar", "velar", "_V")

	_, err := s.Remove(id2)
	require.NoError(t, err)

	all := s.All()
	require.Len(t, all, 2)
	assert.Equal(t, id1, all[0].ID)
	assert.Equal(t, id3, all[1].ID)
	assert.Less(t, all[0].Seq, all[1].Seq)
}

func TestRule_String(t *testing.T) {
	s := makeTestStore(t)
	id, err := s.Add("voiceless", "voiced", "V_V")
	require.NoError(t, err)

	rule, err := s.Get(id)
	require.NoError(t, err)
	assert.Equal(t, "voiceless -> voiced / vowel _ vowel", rule.String())
}
