package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/node-config/internal/config/configs"
	"github.com/MKhiriev/node-config/internal/protoconfig"
	"gopkg.in/yaml.v3"
)

// parseGeneralFile decodes the general config file at path into a store.
// Every section present in the file starts from its defaults and only the
// keys written in the file replace them, so an explicit false or zero is
// kept. Unknown keys are rejected; operator private keys are among them,
// since they are accepted from the environment only.
func parseGeneralFile(path string) (*TempConfigStore, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}

	layout := new(TempConfigStore)
	if err := decodeGeneral(data, layout); err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrDecodingFile, path, err)
	}

	store, err := withDefaults(layout)
	if err != nil {
		return nil, err
	}
	if err := decodeGeneral(data, store); err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrDecodingFile, path, err)
	}

	return store, nil
}

func decodeGeneral(data []byte, store *TempConfigStore) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(store); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func parseSecretsFile(path string) (*Secrets, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}

	secrets, err := protoconfig.DecodeYAML[Secrets, protoconfig.Secrets](string(data))
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrDecodingFile, path, err)
	}
	return &secrets, nil
}

func parseGenesisFile(path string) (*configs.GenesisConfig, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}

	genesis, err := protoconfig.DecodeYAMLRepr[configs.GenesisConfig, protoconfig.Genesis](string(data))
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrDecodingFile, path, err)
	}
	return &genesis, nil
}

func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrReadingFile, path, err)
	}
	return data, nil
}
