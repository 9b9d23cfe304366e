package testutil

import "sync"

// LogicalClock is a thread-safe monotonic sequence counter.
//
// The run-history store orders runs by logical sequence numbers rather
// than wall-clock timestamps, so the same set of vector runs always
// produces the same ordering.
type LogicalClock struct {
	mu  sync.Mutex
	seq int64
}

// NewLogicalClock creates a clock starting at 0; the first Next returns 1.
func NewLogicalClock() *LogicalClock {
	return &LogicalClock{}
}

// Next increments and returns the next sequence number.
func (c *LogicalClock) Next() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq++
	return c.seq
}

// Current returns the current sequence number without incrementing.
func (c *LogicalClock) Current() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.seq
}

// Reset returns the clock to 0 for test reuse.
func (c *LogicalClock) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq = 0
}
