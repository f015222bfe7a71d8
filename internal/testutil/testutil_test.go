package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFixedIDGenerator_AlwaysSameID(t *testing.T) {
	g := NewFixedIDGenerator("rule-under-test")
	assert.Equal(t, "rule-under-test", g.Generate())
	assert.Equal(t, "rule-under-test", g.Generate())
}

func TestFixedIDGenerator_DefaultID(t *testing.T) {
	g := NewFixedIDGenerator("")
	assert.Equal(t, "test-id-default", g.Generate())
}

func TestNewSeededRand_Reproducible(t *testing.T) {
	a := NewSeededRand(42)
	b := NewSeededRand(42)
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Int63(), b.Int63())
	}
}

func TestNewSeededRand_ZeroSeedIsFixed(t *testing.T) {
	a := NewSeededRand(0)
	b := NewSeededRand(1)
	assert.Equal(t, a.Int63(), b.Int63())
}
