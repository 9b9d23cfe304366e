// Package harness executes conformance vectors against the strictint
// arithmetic contract.
//
// A run loads one vector, evaluates each case through the public strictint
// API, recovers any panic, and compares the observed outcome (value,
// overflow flag, absence, or panic diagnostic) against the case's
// expectation. The result is a Report whose rendered form is deterministic
// for a fixed run-ID generator, which makes reports suitable for golden
// snapshot comparison with goldie.
//
// Total operations (rotations) carry the "panicking" variant in vector
// files; the variant only selects an overflow policy where one exists.
package harness
