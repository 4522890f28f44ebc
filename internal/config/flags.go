package config

import (
	"flag"
	"fmt"
)

// ParseFlags parses the config file path flags from args (usually
// os.Args[1:]).
//
// Flags:
//
//	-c/-config general YAML config file path
//	-secrets   secrets YAML file path
//	-genesis   genesis YAML file path
func ParseFlags(args []string) (*Sources, error) {
	var sources Sources

	fs := flag.NewFlagSet("node-config", flag.ContinueOnError)
	fs.StringVar(&sources.GeneralConfigPath, "c", "", "General YAML config file path")
	fs.StringVar(&sources.GeneralConfigPath, "config", "", "General YAML config file path (alias)")
	fs.StringVar(&sources.SecretsPath, "secrets", "", "Secrets YAML file path")
	fs.StringVar(&sources.GenesisPath, "genesis", "", "Genesis YAML file path")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &sources, nil
}
