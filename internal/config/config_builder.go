package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
	"github.com/MKhiriev/node-config/internal/config/configs"
	"github.com/caarlos0/env/v11"
)

type configBuilder struct {
	args    []string
	environ map[string]string

	sources *Sources
	store   *TempConfigStore
	secrets *Secrets
	genesis *configs.GenesisConfig

	err error
}

func newConfigBuilder(args, environ []string) *configBuilder {
	return &configBuilder{
		args:    args,
		environ: env.ToMap(environ),
		sources: new(Sources),
		store:   new(TempConfigStore),
	}
}

func (b *configBuilder) build() (*NodeConfig, error) {
	if b.err != nil {
		b.secrets.Zero()
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	b.store.composeAPI()

	return &NodeConfig{
		Store:   b.store,
		Secrets: b.secrets,
		Genesis: b.genesis,
	}, nil
}

// withSources resolves the file paths: environment first, flags on top.
func (b *configBuilder) withSources() *configBuilder {
	envSources, err := env.ParseAsWithOptions[Sources](env.Options{Environment: b.environ})
	if err != nil {
		b.err = errors.Join(b.err, fmt.Errorf("error getting env configs: %w", err))
		return b
	}

	flagSources, err := ParseFlags(b.args)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	if err := mergo.Merge(&envSources, flagSources, mergo.WithOverride); err != nil {
		b.err = errors.Join(b.err, fmt.Errorf("error merging sources: %w", err))
		return b
	}

	b.sources = &envSources
	return b
}

func (b *configBuilder) withGeneralFile() *configBuilder {
	if b.sources.GeneralConfigPath == "" {
		return b
	}

	store, err := parseGeneralFile(b.sources.GeneralConfigPath)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.store = store
	return b
}

// withEnv overlays the environment on the store loaded so far, so it must
// run after withGeneralFile.
func (b *configBuilder) withEnv() *configBuilder {
	if err := applyEnv(b.store, b.environ); err != nil {
		b.err = errors.Join(b.err, err)
	}
	return b
}

func (b *configBuilder) withSecretsFile() *configBuilder {
	if b.sources.SecretsPath == "" {
		return b
	}

	secrets, err := parseSecretsFile(b.sources.SecretsPath)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.secrets = secrets
	return b
}

func (b *configBuilder) withGenesisFile() *configBuilder {
	if b.sources.GenesisPath == "" {
		return b
	}

	genesis, err := parseGenesisFile(b.sources.GenesisPath)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.genesis = genesis
	return b
}
