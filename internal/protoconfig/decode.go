package protoconfig

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// DecodeYAML parses doc as the schema document P and reads it into the
// domain type T.
//
//	secrets, err := protoconfig.DecodeYAML[config.Secrets, protoconfig.Secrets](doc)
func DecodeYAML[T any, P any, PT interface {
	*T
	Message[P]
}](doc string) (T, error) {
	var zero T

	var p P
	if err := decodeStrict(doc, &p); err != nil {
		return zero, err
	}

	var v T
	if err := PT(&v).Read(&p); err != nil {
		return zero, err
	}
	return v, nil
}

// DecodeYAMLRepr parses doc as the schema type R and returns the domain value
// produced by its Read.
//
//	genesis, err := protoconfig.DecodeYAMLRepr[configs.GenesisConfig, protoconfig.Genesis](doc)
func DecodeYAMLRepr[T any, R any, PR interface {
	*R
	Repr[T]
}](doc string) (T, error) {
	var r R
	if err := decodeStrict(doc, &r); err != nil {
		var zero T
		return zero, err
	}
	return PR(&r).Read()
}

// decodeStrict decodes the first YAML document in doc into out, rejecting
// fields the schema does not know. An empty document leaves out untouched.
func decodeStrict(doc string, out any) error {
	dec := yaml.NewDecoder(strings.NewReader(doc))
	dec.KnownFields(true)

	if err := dec.Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return nil
}
