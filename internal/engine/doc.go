// Package engine applies context-sensitive sound-change rules to phonetic
// symbol sequences.
//
// The engine performs a two-phase computation:
//
//  1. Scan: a single left-to-right pass over the input. At every position
//     each rule may open a new match hypothesis (a Track), and every live
//     track tests its next environment slot against the current sound.
//     Tracks that satisfy their whole environment are promoted to completed
//     matches in discovery order.
//
//  2. Commit: completed matches are applied sequentially over a mutable
//     copy of the input. Each match re-reads the symbol currently at its
//     index, so earlier rewrites layer into later ones (a voiceless stop
//     fricativized by one rule can then be voiced by another at the same
//     position). A match whose source no longer applies is skipped, and a
//     result feature set that resolves to no registered symbol leaves the
//     position unchanged.
//
// The engine is single-threaded and synchronous: one call transforms one
// sequence to completion. The rule store and feature registry are read-only
// for the duration of a call; concurrent Apply calls against the same
// stores are safe as long as neither store is mutated mid-scan.
package engine
