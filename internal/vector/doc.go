// Package vector defines conformance-vector files for the strictint
// arithmetic contract.
//
// A vector file is YAML: a named list of cases, each naming an operation,
// a width, an overflow-policy variant, string-encoded operands, and the
// expected outcome (a value, an overflow flag, absence, or a panic
// diagnostic). Files are validated against an embedded CUE schema before
// execution so malformed vectors fail loudly at load time, not as bogus
// conformance failures.
//
// Operands and expected values are strings so that every width's full
// range is representable regardless of YAML integer limits; the harness
// parses them against the declared width.
package vector
