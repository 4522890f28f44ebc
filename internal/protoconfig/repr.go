// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package protoconfig maps schema documents (the decoded, wire-shaped form
// of a configuration file) onto in-memory configuration types.
//
// Two capabilities are defined, and any type may opt into either:
//   - [Repr]: a schema type that reads into and builds from a domain type.
//   - [Message]: a domain type that reads from and builds into its schema
//     document.
//
// Read is fallible and reports the failing field as a path
// ("prover: recursion_node_level_vk_hash: missing required field"); Build is
// total. [DecodeYAML] and [DecodeYAMLRepr] parse a YAML document against the
// schema and then run the read.
package protoconfig

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingRequiredField is returned when a required field is absent.
	ErrMissingRequiredField = errors.New("missing required field")

	// ErrDecode is returned when a document does not parse against its
	// schema (syntax errors, unknown fields, type mismatches).
	ErrDecode = errors.New("malformed document")

	// ErrInvalidLength is returned when a byte field has the wrong size.
	ErrInvalidLength = errors.New("invalid length")

	// ErrOutOfRange is returned when a numeric field exceeds the range of the
	// domain type.
	ErrOutOfRange = errors.New("value out of range")
)

// Repr is implemented by schema types that map onto the domain type T.
type Repr[T any] interface {
	// Read validates the receiver and converts it into T.
	Read() (T, error)
	// Build overwrites the receiver with the schema form of t.
	Build(t T)
}

// Message is implemented by domain types whose schema document is P.
type Message[P any] interface {
	// Read validates p and populates the receiver from it.
	Read(p *P) error
	// Build returns the schema form of the receiver.
	Build() *P
}

// Required dereferences an optional schema field, failing with
// [ErrMissingRequiredField] when it is nil.
func Required[T any](v *T) (T, error) {
	if v == nil {
		var zero T
		return zero, ErrMissingRequiredField
	}
	return *v, nil
}

// ReadOptional reads an optional nested message. A nil p maps to a nil
// result without error.
func ReadOptional[T any, P any, PT interface {
	*T
	Message[P]
}](p *P) (*T, error) {
	if p == nil {
		return nil, nil
	}

	v := new(T)
	if err := PT(v).Read(p); err != nil {
		return nil, err
	}
	return v, nil
}

// WithContext prefixes err with a field label so that nested failures read
// as a path. It returns nil when err is nil.
func WithContext(label string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", label, err)
}
