// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"

	"github.com/MKhiriev/node-config/internal/config/configs"
)

// Sources names the files the node configuration is loaded from. Every path
// is optional.
//
// Struct tags:
//   - env: environment variable holding the path. The matching flag, when
//     given, overrides it.
type Sources struct {
	// GeneralConfigPath is the general YAML config file holding the
	// sections of [TempConfigStore].
	// Env: GENERAL_CONFIG_PATH. Flag: -c / -config.
	GeneralConfigPath string `env:"GENERAL_CONFIG_PATH"`

	// SecretsPath is the secrets YAML file (consensus keys).
	// Env: SECRETS_PATH. Flag: -secrets.
	SecretsPath string `env:"SECRETS_PATH"`

	// GenesisPath is the genesis YAML file.
	// Env: GENESIS_PATH. Flag: -genesis.
	GenesisPath string `env:"GENESIS_PATH"`
}

// NodeConfig is everything loaded at startup. Secrets and Genesis are nil
// when their file is not configured.
type NodeConfig struct {
	Store   *TempConfigStore
	Secrets *Secrets
	Genesis *configs.GenesisConfig
}

// GetNodeConfig loads the node configuration from the process flags and
// environment. Each section is built in the following order (later steps
// override earlier ones):
//  1. Section defaults (envDefault tags)
//  2. Keys written in the general YAML config file
//  3. Environment variables that are set
//
// A section is present only when the file or the environment configures it.
// The api section is then composed from its parts. Secrets and genesis are
// read from their own files.
func GetNodeConfig() (*NodeConfig, error) {
	return loadNodeConfig(os.Args[1:], os.Environ())
}

func loadNodeConfig(args, environ []string) (*NodeConfig, error) {
	return newConfigBuilder(args, environ).
		withSources().
		withGeneralFile().
		withEnv().
		withSecretsFile().
		withGenesisFile().
		build()
}
