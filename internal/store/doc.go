// Package store provides SQLite-backed run history for conformance runs.
//
// The store is an append-only log of vector runs and their failing cases.
// Ordering uses a logical sequence number supplied by the caller, never
// wall-clock time, so history listings are deterministic across replays.
// All listing queries order by seq then id so identical databases render
// identically.
//
// Database configuration:
//   - WAL mode for concurrent reads during writes
//   - synchronous=NORMAL
//   - busy_timeout=5000
//   - foreign_keys=ON
package store
