package engine

import (
	"log/slog"

	"github.com/evoglot/evoglot/internal/phonetics"
	"github.com/evoglot/evoglot/internal/rules"
)

// Match records one completed rule application discovered during a scan.
//
// Matches are recorded in discovery order: input position ascending, then
// track-creation order at that position. This ordered list is the sole
// input to the commit phase. No stronger ordering is guaranteed across
// independent rules completing at the same position.
type Match struct {
	RuleID string
	Index  int    // input position whose sound changes
	Source string // symbol that satisfied the focus slot at scan time
}

// Engine orchestrates the scan-and-commit rewrite over one symbol sequence.
//
// The engine holds read-only references to the rule store and feature
// registry; it owns no mutable state of its own. All track state lives in a
// per-call Tracker discarded when Apply returns, so an Engine may serve
// concurrent Apply calls provided the caller excludes store mutation for
// their duration.
type Engine struct {
	registry *phonetics.Registry
	rules    *rules.Store
	logger   *slog.Logger
	strict   bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger overrides the engine logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithStrict makes Apply fail with EmptyRuleSetError when no rules are
// defined, instead of performing the default identity transform.
func WithStrict() Option {
	return func(e *Engine) {
		e.strict = true
	}
}

// New creates an Engine over the given registry and rule store.
func New(registry *phonetics.Registry, ruleStore *rules.Store, opts ...Option) *Engine {
	e := &Engine{
		registry: registry,
		rules:    ruleStore,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// DefineRule validates and stores a sound-change rule, returning its id.
// Fails with rules.InvalidRuleError for unparseable feature specs or
// malformed environments. See rules.Store.Add for the accepted spec forms.
func (e *Engine) DefineRule(source, target string, environment ...string) (string, error) {
	return e.rules.Add(source, target, environment...)
}

// Apply rewrites a word (an ordered sequence of phonetic symbols) by every
// stored rule and returns the post-change sequence.
//
// The output always has the same length as the input. Symbols unknown to
// the registry pass through unchanged: the position is skipped with a
// warning and the scan continues. In strict mode an empty rule set fails
// with EmptyRuleSetError; otherwise zero rules yield an identity copy.
func (e *Engine) Apply(word []string) ([]string, error) {
	output, _, err := e.ApplyTrace(word)
	return output, err
}

// ApplyTrace is Apply returning the completed matches alongside the output,
// in discovery order. The trace feeds golden-file conformance tests and the
// verbose CLI output.
func (e *Engine) ApplyTrace(word []string) ([]string, []Match, error) {
	if e.rules.Len() == 0 {
		if e.strict {
			return nil, nil, &EmptyRuleSetError{}
		}
		out := make([]string, len(word))
		copy(out, word)
		return out, nil, nil
	}

	matches := e.scan(word)
	output := e.commit(word, matches)
	return output, matches, nil
}

// scan is Phase 1: a single left-to-right pass collecting completed
// matches in discovery order.
func (e *Engine) scan(word []string) []Match {
	tracker := NewTracker()
	ruleSet := e.rules.All()
	byID := make(map[string]rules.Rule, len(ruleSet))
	for _, r := range ruleSet {
		byID[r.ID] = r
	}

	var completed []Match

	for i, symbol := range word {
		features, err := e.registry.FeaturesOf(symbol)
		if err != nil {
			// Recoverable: the position neither starts nor advances any
			// hypothesis, and live tracks wait for the next known sound.
			e.logger.Warn("skipping unknown symbol in input",
				"symbol", symbol,
				"index", i,
			)
			// The position still exists in the word, though, so a
			// hypothesis waiting on a trailing boundary is not at the
			// edge and fails exactly as it would against a known sound.
			for _, track := range tracker.Live() {
				rule := byID[track.RuleID]
				if rule.Environment[track.Count].Kind == rules.SlotBoundary {
					tracker.Drop(track)
				}
			}
			continue
		}

		// (1) may any rule start matching at this position?
		for _, rule := range ruleSet {
			if track := tracker.TryStart(rule, features, i); track != nil {
				e.logger.Debug("track started",
					"rule_id", rule.ID,
					"start", i,
					"environment", rule.Environment.String(),
				)
			}
		}

		// (2) advance or drop every live hypothesis against this sound
		for _, track := range tracker.Live() {
			rule := byID[track.RuleID]
			slot := rule.Environment[track.Count]

			switch slot.Kind {
			case rules.SlotFocus:
				if tracker.IsFocusMatch(features, rule.Source) {
					tracker.Advance(track, true, symbol, i)
				} else {
					tracker.Drop(track)
					continue
				}
			case rules.SlotFeatures:
				if tracker.IsContextMatch(features, slot.Features) {
					tracker.Advance(track, false, "", 0)
				} else {
					tracker.Drop(track)
					continue
				}
			case rules.SlotBoundary:
				// a trailing boundary never matches a sound; the end-of-input
				// sweep below is the only place it can be satisfied
				tracker.Drop(track)
				continue
			}

			// (3) promote full environment matches, in discovery order
			if tracker.IsComplete(track) {
				completed = append(completed, Match{
					RuleID: track.RuleID,
					Index:  track.SourceIndex,
					Source: track.SourceSymbol,
				})
				tracker.Drop(track)
				e.logger.Debug("match completed",
					"rule_id", track.RuleID,
					"index", track.SourceIndex,
					"source", track.SourceSymbol,
				)
			}
		}
	}

	// end-of-input sweep: a track holding only a trailing boundary slot has
	// matched everything a finite word can offer
	for _, track := range tracker.Live() {
		rule := byID[track.RuleID]
		if track.Count == track.Length-1 && rule.Environment[track.Count].Kind == rules.SlotBoundary {
			tracker.Advance(track, false, "", 0)
			completed = append(completed, Match{
				RuleID: track.RuleID,
				Index:  track.SourceIndex,
				Source: track.SourceSymbol,
			})
			tracker.Drop(track)
		}
	}

	return completed
}

// commit is Phase 2: sequential application of completed matches over a
// mutable copy of the input. Output length always equals input length.
func (e *Engine) commit(word []string, matches []Match) []string {
	output := make([]string, len(word))
	copy(output, word)

	for _, m := range matches {
		rule, err := e.rules.Get(m.RuleID)
		if err != nil {
			// rule removed mid-call is excluded by contract; skip defensively
			continue
		}

		// re-read the current symbol, not the original input: this is what
		// lets layered changes compose within one pass
		current := output[m.Index]
		features, err := e.registry.FeaturesOf(current)
		if err != nil {
			continue
		}

		// an earlier layered change may have moved the sound outside the
		// rule's applicability
		if !features.Superset(rule.Source) {
			e.logger.Debug("match no longer applicable, skipping",
				"rule_id", m.RuleID,
				"index", m.Index,
				"current", current,
			)
			continue
		}

		result := changeFeatures(features, rule.Source, rule.Target)
		candidates := e.registry.SymbolsMatching(result, nil)
		if len(candidates) == 0 {
			// documented no-op: the feature combination exists abstractly
			// but corresponds to no registered symbol
			e.logger.Debug("no symbol for changed features, leaving unchanged",
				"rule_id", m.RuleID,
				"index", m.Index,
				"features", result.String(),
			)
			continue
		}

		output[m.Index] = candidates[0]
		e.logger.Debug("applied sound change",
			"rule_id", m.RuleID,
			"index", m.Index,
			"from", current,
			"to", candidates[0],
		)
	}

	return output
}

// changeFeatures computes the post-change feature set. Features unique to
// the source are dropped unless restated by the target; features the symbol
// carries outside the source are retained; all target features are added.
func changeFeatures(current, source, target phonetics.FeatureSet) phonetics.FeatureSet {
	result := target.Clone()
	for f := range current {
		if source.Has(f) && !target.Has(f) {
			continue
		}
		result[f] = true
	}
	return result
}
