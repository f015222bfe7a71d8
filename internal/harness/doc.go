// Package harness runs YAML-defined sound change scenarios.
//
// A scenario names a CUE language definition and a list of word cases:
// input sounds and, optionally, the sounds expected after every rule
// has applied. The harness builds the language, runs each word through
// the rewrite engine and reports per-case results, including which rule
// matched at which position.
//
// Golden-file comparison (RunWithGolden) snapshots the full trace so
// rule behavior changes show up as explicit diffs under testdata/golden.
package harness
