// Package language ties the phonetic registry, rule store, syllable
// store and rewrite engine together into a single constructed language.
//
// A Language owns an inventory of phonemes: the subset of registry
// symbols the language actually uses, each mapped to the letters that
// spell it. Words are built by picking random syllable structures,
// filling each slot from the inventory, running sound rules over the
// result and spelling the outcome.
package language
