package protoconfig

import (
	"fmt"
	"math"

	"github.com/MKhiriev/node-config/internal/config/configs"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// Genesis is the schema document of [configs.GenesisConfig].
type Genesis struct {
	GenesisRoot            *hexutil.Bytes `yaml:"genesis_root,omitempty"`
	GenesisRollupLeafIndex *uint64        `yaml:"genesis_rollup_leaf_index,omitempty"`
	GenesisBatchCommitment *hexutil.Bytes `yaml:"genesis_batch_commitment,omitempty"`
	GenesisProtocolVersion *uint32        `yaml:"genesis_protocol_version,omitempty"`
	DefaultAAHash          *hexutil.Bytes `yaml:"default_aa_hash,omitempty"`
	BootloaderHash         *hexutil.Bytes `yaml:"bootloader_hash,omitempty"`
	FeeAccount             *hexutil.Bytes `yaml:"fee_account,omitempty"`
	L1ChainID              *uint64        `yaml:"l1_chain_id,omitempty"`
	L2ChainID              *uint64        `yaml:"l2_chain_id,omitempty"`
	Prover                 *Prover        `yaml:"prover,omitempty"`
	SharedBridge           *SharedBridge  `yaml:"shared_bridge,omitempty"`
}

// Prover holds the verification key hashes of the genesis batch.
type Prover struct {
	RecursionSchedulerLevelVkHash *hexutil.Bytes `yaml:"recursion_scheduler_level_vk_hash,omitempty"`
	RecursionNodeLevelVkHash      *hexutil.Bytes `yaml:"recursion_node_level_vk_hash,omitempty"`
	RecursionLeafLevelVkHash      *hexutil.Bytes `yaml:"recursion_leaf_level_vk_hash,omitempty"`
	RecursionCircuitsSetVksHash   *hexutil.Bytes `yaml:"recursion_circuits_set_vks_hash,omitempty"`
	DummyVerifier                 *bool          `yaml:"dummy_verifier,omitempty"`
}

// SharedBridge is the schema document of [configs.SharedBridge].
type SharedBridge struct {
	BridgehubProxyAddr        *hexutil.Bytes `yaml:"bridgehub_proxy_addr,omitempty"`
	StateTransitionProxyAddr  *hexutil.Bytes `yaml:"state_transition_proxy_addr,omitempty"`
	TransparentProxyAdminAddr *hexutil.Bytes `yaml:"transparent_proxy_admin_addr,omitempty"`
}

var _ Repr[configs.GenesisConfig] = (*Genesis)(nil)

// Read validates the document and converts it into a GenesisConfig. Every
// field is required except shared_bridge.
func (g *Genesis) Read() (configs.GenesisConfig, error) {
	var (
		out configs.GenesisConfig
		err error
	)

	prover, err := Required(g.Prover)
	if err != nil {
		return out, WithContext("prover", err)
	}

	if g.SharedBridge != nil {
		out.SharedBridge, err = g.SharedBridge.read()
		if err != nil {
			return out, WithContext("shared_bridge", err)
		}
	}

	version, err := Required(g.GenesisProtocolVersion)
	if err == nil && version > math.MaxUint16 {
		err = fmt.Errorf("%w: %d does not fit in 16 bits", ErrOutOfRange, version)
	}
	if err != nil {
		return out, WithContext("protocol_version", err)
	}
	out.ProtocolVersion = uint16(version)

	if out.GenesisRootHash, err = requiredH256("genesis_root_hash", g.GenesisRoot); err != nil {
		return out, err
	}
	if out.RollupLastLeafIndex, err = Required(g.GenesisRollupLeafIndex); err != nil {
		return out, WithContext("rollup_last_leaf_index", err)
	}
	if out.GenesisCommitment, err = requiredH256("genesis_commitment", g.GenesisBatchCommitment); err != nil {
		return out, err
	}
	if out.BootloaderHash, err = requiredH256("bootloader_hash", g.BootloaderHash); err != nil {
		return out, err
	}
	if out.DefaultAAHash, err = requiredH256("default_aa_hash", g.DefaultAAHash); err != nil {
		return out, err
	}
	if out.L1ChainID, err = Required(g.L1ChainID); err != nil {
		return out, WithContext("l1_chain_id", err)
	}

	l2, err := Required(g.L2ChainID)
	if err == nil && l2 > configs.MaxL2ChainID {
		err = fmt.Errorf("%w: %d exceeds %d", ErrOutOfRange, l2, uint64(configs.MaxL2ChainID))
	}
	if err != nil {
		return out, WithContext("l2_chain_id", err)
	}
	out.L2ChainID = l2

	if err = prover.read(&out); err != nil {
		return out, WithContext("prover", err)
	}

	if out.FeeAccount, err = requiredH160("fee_account", g.FeeAccount); err != nil {
		return out, err
	}

	return out, nil
}

func (p Prover) read(out *configs.GenesisConfig) (err error) {
	if out.RecursionNodeLevelVkHash, err = requiredH256("recursion_node_level_vk_hash", p.RecursionNodeLevelVkHash); err != nil {
		return err
	}
	if out.RecursionLeafLevelVkHash, err = requiredH256("recursion_leaf_level_vk_hash", p.RecursionLeafLevelVkHash); err != nil {
		return err
	}
	if out.RecursionCircuitsSetVksHash, err = requiredH256("recursion_circuits_set_vks_hash", p.RecursionCircuitsSetVksHash); err != nil {
		return err
	}
	if out.RecursionSchedulerLevelVkHash, err = requiredH256("recursion_scheduler_level_vk_hash", p.RecursionSchedulerLevelVkHash); err != nil {
		return err
	}
	if out.DummyProver, err = Required(p.DummyVerifier); err != nil {
		return WithContext("dummy_verifier", err)
	}
	return nil
}

func (s *SharedBridge) read() (*configs.SharedBridge, error) {
	var (
		out configs.SharedBridge
		err error
	)
	if out.BridgehubProxyAddr, err = requiredH160("bridgehub_proxy_addr", s.BridgehubProxyAddr); err != nil {
		return nil, err
	}
	if out.StateTransitionProxyAddr, err = requiredH160("state_transition_proxy_addr", s.StateTransitionProxyAddr); err != nil {
		return nil, err
	}
	if out.TransparentProxyAdminAddr, err = requiredH160("transparent_proxy_admin_addr", s.TransparentProxyAdminAddr); err != nil {
		return nil, err
	}
	return &out, nil
}

// Build overwrites g with the schema form of t. Each document field is
// written from its own source field.
func (g *Genesis) Build(t configs.GenesisConfig) {
	*g = Genesis{
		GenesisRoot:            hexBytes(t.GenesisRootHash.Bytes()),
		GenesisRollupLeafIndex: ptr(t.RollupLastLeafIndex),
		GenesisBatchCommitment: hexBytes(t.GenesisCommitment.Bytes()),
		GenesisProtocolVersion: ptr(uint32(t.ProtocolVersion)),
		DefaultAAHash:          hexBytes(t.DefaultAAHash.Bytes()),
		BootloaderHash:         hexBytes(t.BootloaderHash.Bytes()),
		FeeAccount:             hexBytes(t.FeeAccount.Bytes()),
		L1ChainID:              ptr(t.L1ChainID),
		L2ChainID:              ptr(t.L2ChainID),
		Prover: &Prover{
			RecursionSchedulerLevelVkHash: hexBytes(t.RecursionSchedulerLevelVkHash.Bytes()),
			RecursionNodeLevelVkHash:      hexBytes(t.RecursionNodeLevelVkHash.Bytes()),
			RecursionLeafLevelVkHash:      hexBytes(t.RecursionLeafLevelVkHash.Bytes()),
			RecursionCircuitsSetVksHash:   hexBytes(t.RecursionCircuitsSetVksHash.Bytes()),
			DummyVerifier:                 ptr(t.DummyProver),
		},
	}

	if sb := t.SharedBridge; sb != nil {
		g.SharedBridge = &SharedBridge{
			BridgehubProxyAddr:        hexBytes(sb.BridgehubProxyAddr.Bytes()),
			StateTransitionProxyAddr:  hexBytes(sb.StateTransitionProxyAddr.Bytes()),
			TransparentProxyAdminAddr: hexBytes(sb.TransparentProxyAdminAddr.Bytes()),
		}
	}
}
