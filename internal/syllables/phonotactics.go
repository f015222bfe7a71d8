package syllables

import (
	"strings"

	"github.com/evoglot/evoglot/internal/phonetics"
)

// Phonotactics shapes syllables against a sonority scale and a set of
// nucleus feature sets.
//
// The scale orders features from most to least sonorous. Shape pushes
// onset slots up the scale toward the nucleus and coda slots down away
// from it, the usual sonority sequencing generalization. Constraints here
// only bias word building; sound-change rules are free to violate them.
type Phonotactics struct {
	registry *phonetics.Registry
	scale    []string // features, most sonorous first
	nuclei   []phonetics.FeatureSet
}

// NewPhonotactics creates an empty phonotactics layer over a registry.
func NewPhonotactics(registry *phonetics.Registry) *Phonotactics {
	return &Phonotactics{registry: registry}
}

// SetScale replaces the sonority scale. Every feature must be registered.
func (p *Phonotactics) SetScale(features ...string) error {
	for _, f := range features {
		if !p.registry.HasFeature(f) {
			return &InvalidNucleusError{
				Spec: strings.Join(features, " "),
				Err:  &phonetics.InvalidFeaturesError{Unknown: []string{f}},
			}
		}
	}
	p.scale = append([]string(nil), features...)
	return nil
}

// Scale returns the current sonority scale, most sonorous first.
func (p *Phonotactics) Scale() []string {
	out := make([]string, len(p.scale))
	copy(out, p.scale)
	return out
}

// AddNucleus registers a feature set that can head a syllable.
func (p *Phonotactics) AddNucleus(spec ...string) error {
	fs, err := p.registry.Parse(spec...)
	if err != nil {
		return &InvalidNucleusError{Spec: strings.Join(spec, " "), Err: err}
	}
	p.nuclei = append(p.nuclei, fs)
	return nil
}

// Nuclei returns the registered nucleus feature sets in addition order.
func (p *Phonotactics) Nuclei() []phonetics.FeatureSet {
	out := make([]phonetics.FeatureSet, len(p.nuclei))
	for i, n := range p.nuclei {
		out[i] = n.Clone()
	}
	return out
}

// ClearNuclei removes all nucleus definitions.
func (p *Phonotactics) ClearNuclei() {
	p.nuclei = nil
}

// isNucleus reports whether a slot's features can head a syllable. With no
// nuclei defined, any slot containing "vowel" qualifies.
func (p *Phonotactics) isNucleus(slot phonetics.FeatureSet) bool {
	if len(p.nuclei) == 0 {
		return slot.Has("vowel")
	}
	for _, nucleus := range p.nuclei {
		if overlaps(slot, nucleus) {
			return true
		}
	}
	return false
}

func overlaps(a, b phonetics.FeatureSet) bool {
	for f := range b {
		if a.Has(f) {
			return true
		}
	}
	return false
}

// Parts is a syllable split around its nucleus.
type Parts struct {
	Onset   []phonetics.FeatureSet
	Nucleus phonetics.FeatureSet
	Coda    []phonetics.FeatureSet
}

// Partition splits a syllable structure into onset, nucleus and coda.
// Fails with InvalidNucleusError when no slot qualifies as a nucleus.
func (p *Phonotactics) Partition(structure []phonetics.FeatureSet) (Parts, error) {
	for i, slot := range structure {
		if p.isNucleus(slot) {
			return Parts{
				Onset:   structure[:i],
				Nucleus: slot,
				Coda:    structure[i+1:],
			}, nil
		}
	}
	return Parts{}, &InvalidNucleusError{
		Spec: "structure without nucleus",
		Err:  &phonetics.InvalidFeaturesError{},
	}
}

// sonority returns the scale rank of the most sonorous feature in the set,
// 0 being most sonorous; len(scale) when nothing on the scale applies.
func (p *Phonotactics) sonority(fs phonetics.FeatureSet) int {
	for rank, feature := range p.scale {
		if fs.Has(feature) {
			return rank
		}
	}
	return len(p.scale)
}

// Shape refines a syllable structure so sonority rises through the onset
// and falls through the coda: each onset slot gains the scale feature one
// step more sonorous than its predecessor, mirrored for the coda.
//
// With an empty scale, Shape returns the partitioned structure unchanged.
func (p *Phonotactics) Shape(structure []phonetics.FeatureSet) ([]phonetics.FeatureSet, error) {
	parts, err := p.Partition(structure)
	if err != nil {
		return nil, err
	}
	if len(p.scale) == 0 {
		return structure, nil
	}

	shaped := make([]phonetics.FeatureSet, len(structure))
	nucleusAt := len(parts.Onset)
	shaped[nucleusAt] = parts.Nucleus

	// onset: walk outward from the nucleus demanding falling sonority
	// (rank 0 is most sonorous, so ranks must rise going out)
	prev := p.sonority(parts.Nucleus)
	for i := nucleusAt - 1; i >= 0; i-- {
		shaped[i], prev = p.constrain(parts.Onset[i], prev)
	}

	// coda: mirrored, sonority falls moving away from the nucleus
	prev = p.sonority(parts.Nucleus)
	for i, coda := range parts.Coda {
		shaped[nucleusAt+1+i], prev = p.constrain(coda, prev)
	}

	return shaped, nil
}

// constrain pushes a slot one rank further down the scale than its inner
// neighbor. Slots already carrying a scale feature below the neighbor's
// rank keep it; everything else gains the next rank's feature (clamped at
// the bottom of the scale).
func (p *Phonotactics) constrain(slot phonetics.FeatureSet, prev int) (phonetics.FeatureSet, int) {
	out := slot.Clone()
	rank := p.sonority(out)
	if rank == len(p.scale) || rank <= prev {
		rank = prev + 1
		if rank >= len(p.scale) {
			rank = len(p.scale) - 1
		}
		out[p.scale[rank]] = true
	}
	return out, rank
}
