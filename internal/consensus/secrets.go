package consensus

import (
	"crypto/ed25519"

	"github.com/MKhiriev/node-config/internal/protoconfig"
)

// Secrets is the consensus secret bundle. Both keys are optional.
type Secrets struct {
	ValidatorKey *ValidatorSecretKey
	NodeKey      ed25519.PrivateKey
}

var _ protoconfig.Message[protoconfig.ConsensusSecrets] = (*Secrets)(nil)

// Read parses the text-encoded keys of p.
func (s *Secrets) Read(p *protoconfig.ConsensusSecrets) error {
	var out Secrets

	if p.ValidatorKey != nil {
		k, err := ParseValidatorSecretKey(*p.ValidatorKey)
		if err != nil {
			return protoconfig.WithContext("validator_key", err)
		}
		out.ValidatorKey = k
	}

	if p.NodeKey != nil {
		k, err := ParseNodeSecretKey(*p.NodeKey)
		if err != nil {
			out.ValidatorKey.Zero()
			return protoconfig.WithContext("node_key", err)
		}
		out.NodeKey = k
	}

	*s = out
	return nil
}

// Build returns the schema form of s with lowercase hex keys.
func (s *Secrets) Build() *protoconfig.ConsensusSecrets {
	p := new(protoconfig.ConsensusSecrets)
	if s.ValidatorKey != nil {
		v := s.ValidatorKey.Encode()
		p.ValidatorKey = &v
	}
	if s.NodeKey != nil {
		v := EncodeNodeSecretKey(s.NodeKey)
		p.NodeKey = &v
	}
	return p
}

// Zero wipes both keys.
func (s *Secrets) Zero() {
	if s == nil {
		return
	}
	s.ValidatorKey.Zero()
	clear(s.NodeKey)
}
