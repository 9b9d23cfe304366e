package testutil

import "fmt"

// FixedRunIDGenerator returns predictable run IDs for deterministic golden
// snapshots: "<prefix>-0001", "<prefix>-0002", and so on.
//
// Production code uses a UUID-backed generator; tests swap in this one so
// report output is byte-identical across runs.
type FixedRunIDGenerator struct {
	prefix string
	n      int
}

// NewFixedRunIDGenerator creates a generator with the given prefix. An
// empty prefix defaults to "test-run".
func NewFixedRunIDGenerator(prefix string) *FixedRunIDGenerator {
	if prefix == "" {
		prefix = "test-run"
	}
	return &FixedRunIDGenerator{prefix: prefix}
}

// NewRunID returns the next fixed run ID.
func (g *FixedRunIDGenerator) NewRunID() string {
	g.n++
	return fmt.Sprintf("%s-%04d", g.prefix, g.n)
}
