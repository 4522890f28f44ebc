package protoconfig

// Secrets is the schema document of the node secrets file.
type Secrets struct {
	Consensus *ConsensusSecrets `yaml:"consensus,omitempty"`
}

// ConsensusSecrets holds the text-encoded consensus keys.
type ConsensusSecrets struct {
	ValidatorKey *string `yaml:"validator_key,omitempty"`
	NodeKey      *string `yaml:"node_key,omitempty"`
}
