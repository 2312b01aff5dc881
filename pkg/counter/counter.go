// Package counter provides a bounded counting iterator and small
// combinators over iter.Seq.
package counter

import "iter"

// DefaultLimit is the last value produced by New.
const DefaultLimit = 9

// Counter yields 1, 2, ... up to its limit, then stops.
// It is not safe for concurrent use.
type Counter struct {
	count int
	limit int
}

// New returns a counter that yields 1 through DefaultLimit.
func New() *Counter {
	return &Counter{limit: DefaultLimit}
}

// NewWithLimit returns a counter that yields 1 through limit.
// A limit below 1 yields nothing.
func NewWithLimit(limit int) *Counter {
	return &Counter{limit: limit}
}

// Next returns the next value, or false once the counter is exhausted.
func (c *Counter) Next() (int, bool) {
	if c.count >= c.limit {
		return 0, false
	}
	c.count++
	return c.count, true
}

// All ranges over the values the counter has not yielded yet.
func (c *Counter) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		for {
			v, ok := c.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}
