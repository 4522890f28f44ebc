package config

import (
	"github.com/MKhiriev/node-config/internal/consensus"
	"github.com/MKhiriev/node-config/internal/protoconfig"
)

// Secrets is the content of the node secrets file.
type Secrets struct {
	Consensus *consensus.Secrets
}

var _ protoconfig.Message[protoconfig.Secrets] = (*Secrets)(nil)

// Read populates s from p. The consensus section is optional.
func (s *Secrets) Read(p *protoconfig.Secrets) error {
	c, err := protoconfig.ReadOptional[consensus.Secrets, protoconfig.ConsensusSecrets](p.Consensus)
	if err != nil {
		return protoconfig.WithContext("consensus", err)
	}

	s.Consensus = c
	return nil
}

// Build returns the schema form of s.
func (s *Secrets) Build() *protoconfig.Secrets {
	p := new(protoconfig.Secrets)
	if s.Consensus != nil {
		p.Consensus = s.Consensus.Build()
	}
	return p
}

// Zero wipes all key material held by s.
func (s *Secrets) Zero() {
	if s != nil {
		s.Consensus.Zero()
	}
}
