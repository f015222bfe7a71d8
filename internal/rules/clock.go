package rules

import "sync/atomic"

// Clock is a monotonic logical clock stamping rules with insertion
// sequence numbers.
//
// Deterministic multi-rule scans depend on a total order over rules that
// never changes after definition; the seq stamp records that order without
// reference to wall-clock time.
//
// Thread-safety: Clock is safe for concurrent use (atomic operations),
// though the Store serializes Add calls anyway.
type Clock struct {
	seq atomic.Int64
}

// NewClock creates a new clock starting at 0.
func NewClock() *Clock {
	return &Clock{}
}

// Next returns the next sequence number and increments the clock.
// Each call returns a unique, strictly increasing value.
func (c *Clock) Next() int64 {
	return c.seq.Add(1)
}

// Current returns the current sequence number without incrementing.
func (c *Clock) Current() int64 {
	return c.seq.Load()
}
