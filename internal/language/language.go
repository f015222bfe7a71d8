package language

import (
	"log/slog"
	"math/rand"
	"time"

	"github.com/evoglot/evoglot/internal/engine"
	"github.com/evoglot/evoglot/internal/grammar"
	"github.com/evoglot/evoglot/internal/phonetics"
	"github.com/evoglot/evoglot/internal/rules"
	"github.com/evoglot/evoglot/internal/syllables"
)

// Language is a constructed language: a phonetic registry, the phoneme
// inventory drawn from it, syllable structures, sound rules and the
// engine that applies them, plus the moraic weights and morphology
// layered on top.
type Language struct {
	name string

	registry  *phonetics.Registry
	rules     *rules.Store
	syllables *syllables.Store
	tactics   *syllables.Phonotactics
	morae     *syllables.Morae
	inventory *Inventory
	morph     *grammar.Store
	engine    *engine.Engine

	rng *rand.Rand
}

// Option configures a Language.
type Option func(*config)

type config struct {
	registry *phonetics.Registry
	rng      *rand.Rand
	logger   *slog.Logger
	ruleIDs  rules.IDGenerator
}

// WithRegistry supplies a pre-populated registry, e.g. the default IPA
// chart. By default a Language starts with an empty registry.
func WithRegistry(registry *phonetics.Registry) Option {
	return func(c *config) { c.registry = registry }
}

// WithRandom supplies the random source used for word building and
// spelling. Pass a seeded source for reproducible output.
func WithRandom(rng *rand.Rand) Option {
	return func(c *config) { c.rng = rng }
}

// WithLogger supplies the logger handed to the rewrite engine.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) { c.logger = logger }
}

// WithRuleIDs supplies the generator used to mint rule identifiers.
func WithRuleIDs(gen rules.IDGenerator) Option {
	return func(c *config) { c.ruleIDs = gen }
}

// New constructs an empty language with the given name.
func New(name string, opts ...Option) *Language {
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.registry == nil {
		cfg.registry = phonetics.New()
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	var ruleOpts []rules.StoreOption
	if cfg.ruleIDs != nil {
		ruleOpts = append(ruleOpts, rules.WithIDGenerator(cfg.ruleIDs))
	}
	ruleStore := rules.NewStore(cfg.registry, ruleOpts...)

	var engineOpts []engine.Option
	if cfg.logger != nil {
		engineOpts = append(engineOpts, engine.WithLogger(cfg.logger))
	}

	syllableStore := syllables.NewStore(cfg.registry)

	return &Language{
		name:      name,
		registry:  cfg.registry,
		rules:     ruleStore,
		syllables: syllableStore,
		tactics:   syllables.NewPhonotactics(cfg.registry),
		morae:     syllables.NewMorae(syllableStore),
		inventory: NewInventory(cfg.registry),
		morph:     grammar.NewStore(cfg.registry),
		engine:    engine.New(cfg.registry, ruleStore, engineOpts...),
		rng:       cfg.rng,
	}
}

// Name returns the language's name.
func (l *Language) Name() string { return l.name }

// Registry returns the language's phonetic registry.
func (l *Language) Registry() *phonetics.Registry { return l.registry }

// Rules returns the language's sound rule store.
func (l *Language) Rules() *rules.Store { return l.rules }

// Syllables returns the language's syllable store.
func (l *Language) Syllables() *syllables.Store { return l.syllables }

// Phonotactics returns the language's phonotactic constraints.
func (l *Language) Phonotactics() *syllables.Phonotactics { return l.tactics }

// Morae returns the language's moraic beat map.
func (l *Language) Morae() *syllables.Morae { return l.morae }

// Inventory returns the language's phoneme inventory.
func (l *Language) Inventory() *Inventory { return l.inventory }

// Grammar returns the language's morphology.
func (l *Language) Grammar() *grammar.Store { return l.morph }

// Engine returns the language's rewrite engine.
func (l *Language) Engine() *engine.Engine { return l.engine }

// AddSound registers a symbol's features and files it in the inventory
// with its spellable letters in one step.
func (l *Language) AddSound(ipa string, letters []string, featureSpecs ...string) error {
	if len(featureSpecs) > 0 {
		if err := l.registry.Add(ipa, featureSpecs...); err != nil {
			return err
		}
	}
	return l.inventory.Add(ipa, letters, 0)
}

// AddRule defines a sound rule. Delegates to the rule store.
func (l *Language) AddRule(source, target string, environment ...string) (string, error) {
	return l.rules.Add(source, target, environment...)
}

// ApplyRules runs every defined rule over a word of symbols.
func (l *Language) ApplyRules(word []string) ([]string, error) {
	return l.engine.Apply(word)
}

// AttachExponents builds an inflected form: exponent material stacked
// around the base with inner exponents adjacent, then every sound rule
// applied to the result. Attachment can feed new rule environments, so
// the changed form may differ from the changed base.
func (l *Language) AttachExponents(base []string, class string, exponents ...string) ([]string, error) {
	form, err := l.morph.Attach(base, class, exponents...)
	if err != nil {
		return nil, err
	}
	return l.engine.Apply(form)
}

// CountBeats weighs a word in morae. Delegates to the beat map.
func (l *Language) CountBeats(word []string) (int, error) {
	return l.morae.CountBeats(word)
}
