package engine

import (
	"github.com/evoglot/evoglot/internal/phonetics"
	"github.com/evoglot/evoglot/internal/rules"
)

// trackKey identifies a hypothesis by rule and start position.
// At most one live track per key; re-matching the same start for the same
// rule is a no-op, which prevents duplicate completions.
type trackKey struct {
	ruleID string
	start  int
}

// Track is one in-flight hypothesis that a rule's environment matches
// starting at a specific input index.
//
// Lifecycle: created by TryStart when a sound satisfies slot 0 (or the
// environment opens on the focus or a word boundary); advanced one slot per
// input position; dropped on a slot mismatch or promoted to a completed
// match when Count reaches Length.
type Track struct {
	RuleID string
	Start  int // input index where the hypothesis began
	Count  int // environment slots matched so far
	Length int // total slots in the environment

	// SourceSymbol and SourceIndex record the sound under the focus slot,
	// set once the focus is satisfied.
	SourceSymbol string
	SourceIndex  int
}

// Tracker manages the set of live tracks during one scan.
//
// It is a pure state container with no knowledge of the scan loop: the
// engine drives creation, advancement and removal. Tracks are held in
// creation order, which combined with the left-to-right scan gives the
// documented discovery order for completed matches (input position
// ascending, then creation order at a position).
//
// All tracker state is local to a single engine invocation and discarded
// when the call returns.
type Tracker struct {
	live  []*Track
	index map[trackKey]*Track
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{index: make(map[trackKey]*Track)}
}

// TryStart opens a new track for rule at the given start position if the
// environment can begin matching against sample there. Returns the new
// track, or nil when nothing starts.
//
// Slot-0 handling:
//   - focus marker: the track opens at Count 0; the focus test runs in the
//     same scan pass, so eligibility is not pre-screened here
//   - feature slot: the sample must superset the slot (screening out dead
//     hypotheses); the track still opens at Count 0 and the scan pass
//     consumes slot 0 against this same sound
//   - boundary: matches only the word start; the slot is consumed
//     immediately (no sound needed) and the scan pass continues at slot 1
func (t *Tracker) TryStart(rule rules.Rule, sample phonetics.FeatureSet, start int) *Track {
	key := trackKey{ruleID: rule.ID, start: start}
	if _, exists := t.index[key]; exists {
		return nil
	}

	first := rule.Environment[0]
	count := 0
	switch first.Kind {
	case rules.SlotFocus:
		// eligibility decided by the focus test in this same pass
	case rules.SlotFeatures:
		if !sample.Superset(first.Features) {
			return nil
		}
	case rules.SlotBoundary:
		if start != 0 {
			return nil
		}
		count = 1
	}

	track := &Track{
		RuleID: rule.ID,
		Start:  start,
		Count:  count,
		Length: len(rule.Environment),
	}
	t.live = append(t.live, track)
	t.index[key] = track
	return track
}

// IsFocusMatch reports whether the sound under inspection is eligible to be
// the one that changes: its features must superset the rule source.
func (t *Tracker) IsFocusMatch(sample, ruleSource phonetics.FeatureSet) bool {
	return sample.Superset(ruleSource)
}

// IsContextMatch reports whether the sound satisfies a context slot.
func (t *Tracker) IsContextMatch(sample, slotFeatures phonetics.FeatureSet) bool {
	return sample.Superset(slotFeatures)
}

// Advance consumes the track's next environment slot. When asFocus is set
// it also records the matched source symbol and its input index.
func (t *Tracker) Advance(track *Track, asFocus bool, symbol string, index int) {
	if asFocus {
		track.SourceSymbol = symbol
		track.SourceIndex = index
	}
	track.Count++
}

// IsComplete reports whether the track matched its entire environment.
func (t *Tracker) IsComplete(track *Track) bool {
	return track.Count >= track.Length
}

// Drop removes a failed or completed track from the live set.
// Dropping an already-removed track is a no-op.
func (t *Tracker) Drop(track *Track) {
	key := trackKey{ruleID: track.RuleID, start: track.Start}
	if _, exists := t.index[key]; !exists {
		return
	}
	delete(t.index, key)
	for i, live := range t.live {
		if live == track {
			t.live = append(t.live[:i], t.live[i+1:]...)
			break
		}
	}
}

// Live returns a snapshot of the live tracks in creation order.
// The engine iterates the snapshot so drops during a pass do not disturb
// iteration.
func (t *Tracker) Live() []*Track {
	out := make([]*Track, len(t.live))
	copy(out, t.live)
	return out
}

// Len returns the number of live tracks.
func (t *Tracker) Len() int {
	return len(t.live)
}
