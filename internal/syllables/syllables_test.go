package syllables

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evoglot/evoglot/internal/phonetics"
	"github.com/evoglot/evoglot/internal/testutil"
)

// sequenceGen mints "syl-1", "syl-2", ... for reproducible tests.
type sequenceGen struct {
	mu sync.Mutex
	n  int
}

func (g *sequenceGen) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n++
	return fmt.Sprintf("syl-%d", g.n)
}

func makeSyllableStore(t *testing.T) *Store {
	t.Helper()
	reg := phonetics.New()
	require.NoError(t, reg.Add("a", "vowel", "front", "open"))
	require.NoError(t, reg.Add("k", "consonant", "voiceless", "velar", "stop"))
	require.NoError(t, reg.Add("x", "consonant", "voiceless", "velar", "fricative"))
	return NewStore(reg, WithIDGenerator(&sequenceGen{}))
}

func TestAdd_PinnedID(t *testing.T) {
	reg := phonetics.New()
	require.NoError(t, reg.Add("a", "vowel"))
	require.NoError(t, reg.Add("k", "consonant"))
	s := NewStore(reg, WithIDGenerator(testutil.NewFixedIDGenerator("cv")))

	id, err := s.Add("CV")
	require.NoError(t, err)
	assert.Equal(t, "cv", id)
	assert.True(t, s.Has("cv"))
}

func TestStructure_CompactNotation(t *testing.T) {
	s := makeSyllableStore(t)

	structure, err := s.Structure("CVC")
	require.NoError(t, err)
	require.Len(t, structure, 3)
	assert.True(t, structure[0].Has("consonant"))
	assert.True(t, structure[1].Has("vowel"))
	assert.True(t, structure[2].Has("consonant"))
}

func TestStructure_FeatureSlots(t *testing.T) {
	s := makeSyllableStore(t)

	structure, err := s.Structure("velar stop", "V", "velar fricative")
	require.NoError(t, err)
	require.Len(t, structure, 3)
	assert.True(t, structure[0].Has("stop"))
	assert.True(t, structure[2].Has("fricative"))
}

func TestStructure_UnknownFeatureFails(t *testing.T) {
	s := makeSyllableStore(t)

	_, err := s.Structure("nasal", "V")
	require.Error(t, err)
	assert.True(t, phonetics.IsInvalidFeatures(err))

	_, err = s.Structure()
	require.Error(t, err)
}

func TestAdd_StoresInInsertionOrder(t *testing.T) {
	s := makeSyllableStore(t)

	id1, err := s.Add("CV")
	require.NoError(t, err)
	id2, err := s.Add("CVC")
	require.NoError(t, err)

	assert.Equal(t, "syl-1", id1)
	assert.True(t, s.Has(id1))

	all := s.All()
	require.Len(t, all, 2)
	assert.Equal(t, id1, all[0].ID)
	assert.Equal(t, id2, all[1].ID)
	assert.Len(t, all[1].Structure, 3)
}

func TestUpdate_ReplacesStructure(t *testing.T) {
	s := makeSyllableStore(t)
	id, err := s.Add("VVV")
	require.NoError(t, err)

	require.NoError(t, s.Update(id, "CVV"))
	syl, ok := s.Get(id)
	require.True(t, ok)
	assert.True(t, syl.Structure[0].Has("consonant"))

	err = s.Update("missing", "CV")
	require.Error(t, err)
	assert.True(t, IsUnknownSyllable(err))
}

func TestRemove_DropsSyllable(t *testing.T) {
	s := makeSyllableStore(t)
	id, err := s.Add("CCC")
	require.NoError(t, err)

	assert.True(t, s.Remove(id))
	assert.False(t, s.Has(id))
	assert.False(t, s.Remove(id))
	assert.Zero(t, s.Len())
}

func TestPartition_DefaultVowelNucleus(t *testing.T) {
	s := makeSyllableStore(t)
	p := NewPhonotactics(s.registry)

	structure, err := s.Structure("CVC")
	require.NoError(t, err)

	parts, err := p.Partition(structure)
	require.NoError(t, err)
	assert.Len(t, parts.Onset, 1)
	assert.True(t, parts.Nucleus.Has("vowel"))
	assert.Len(t, parts.Coda, 1)
}

func TestPartition_NoNucleusFails(t *testing.T) {
	s := makeSyllableStore(t)
	p := NewPhonotactics(s.registry)

	structure, err := s.Structure("CCC")
	require.NoError(t, err)

	_, err = p.Partition(structure)
	require.Error(t, err)
}

func TestAddNucleus_Validated(t *testing.T) {
	s := makeSyllableStore(t)
	p := NewPhonotactics(s.registry)

	require.NoError(t, p.AddNucleus("vowel open"))
	assert.Len(t, p.Nuclei(), 1)

	err := p.AddNucleus("syllabic")
	require.Error(t, err)

	p.ClearNuclei()
	assert.Empty(t, p.Nuclei())
}

func TestSetScale_Validated(t *testing.T) {
	s := makeSyllableStore(t)
	p := NewPhonotactics(s.registry)

	require.NoError(t, p.SetScale("vowel", "fricative", "stop"))
	assert.Equal(t, []string{"vowel", "fricative", "stop"}, p.Scale())

	err := p.SetScale("vowel", "nasal")
	require.Error(t, err)
}

func TestShape_SonorityRisesIntoNucleus(t *testing.T) {
	s := makeSyllableStore(t)
	p := NewPhonotactics(s.registry)
	require.NoError(t, p.SetScale("vowel", "fricative", "stop"))

	structure, err := s.Structure("CCV")
	require.NoError(t, err)

	shaped, err := p.Shape(structure)
	require.NoError(t, err)
	require.Len(t, shaped, 3)

	// each onset slot is pushed one rank down the scale walking outward
	// from the nucleus, so sonority strictly rises inward
	assert.True(t, shaped[1].Has("fricative"))
	assert.True(t, shaped[0].Has("stop"))
	assert.True(t, shaped[1].Has("consonant"))
}

func TestShape_EmptyScaleIsIdentity(t *testing.T) {
	s := makeSyllableStore(t)
	p := NewPhonotactics(s.registry)

	structure, err := s.Structure("CV")
	require.NoError(t, err)

	shaped, err := p.Shape(structure)
	require.NoError(t, err)
	assert.Equal(t, structure, shaped)
}
