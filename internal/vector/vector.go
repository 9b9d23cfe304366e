package vector

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Vector is one conformance-vector file: a named group of cases.
type Vector struct {
	// Name uniquely identifies this vector file in reports.
	Name string `yaml:"name" json:"name"`

	// Description explains what contract surface the vector probes.
	Description string `yaml:"description,omitempty" json:"description,omitempty"`

	// Cases lists the individual operation checks, in execution order.
	Cases []Case `yaml:"cases" json:"cases"`
}

// Case is a single operation check.
type Case struct {
	// Op names the operation ("add", "shl", "log2", ...).
	Op string `yaml:"op" json:"op"`

	// Width selects the integer type: u8..u64 or i8..i64.
	Width string `yaml:"width" json:"width"`

	// Variant selects the overflow policy: panicking, checked,
	// overflowing, saturating, or wrapping.
	Variant string `yaml:"variant" json:"variant"`

	// A and B are string-encoded operands. Unary operations leave B
	// empty; shift amounts, exponents, and logarithm bases travel in B.
	A string `yaml:"a,omitempty" json:"a,omitempty"`
	B string `yaml:"b,omitempty" json:"b,omitempty"`

	// Want is the expected result value, when the case expects one.
	Want string `yaml:"want,omitempty" json:"want,omitempty"`

	// Flag is the expected overflow flag for overflowing variants.
	Flag *bool `yaml:"flag,omitempty" json:"flag,omitempty"`

	// Absent marks a checked variant expected to report absence.
	Absent bool `yaml:"absent,omitempty" json:"absent,omitempty"`

	// Panics is the expected panic diagnostic, verbatim.
	Panics string `yaml:"panics,omitempty" json:"panics,omitempty"`
}

// Load parses and schema-validates a vector file.
func Load(path string) (*Vector, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &LoadError{Code: ErrCodeNotFound, Path: path, Message: "vector file not found"}
		}
		return nil, &LoadError{Code: ErrCodeNotFound, Path: path, Message: err.Error()}
	}
	v, err := Parse(data)
	if err != nil {
		if le, ok := err.(*LoadError); ok {
			le.Path = path
		}
		return nil, err
	}
	return v, nil
}

// Parse decodes and schema-validates vector file contents.
func Parse(data []byte) (*Vector, error) {
	if err := ValidateSchema(data); err != nil {
		return nil, err
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var v Vector
	if err := dec.Decode(&v); err != nil {
		return nil, &LoadError{Code: ErrCodeParse, Message: fmt.Sprintf("decoding vector: %v", err)}
	}
	return &v, nil
}
