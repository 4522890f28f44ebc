package configs

import "github.com/ethereum/go-ethereum/common"

// MaxL2ChainID is the largest accepted L2 chain ID (2^53 - 1), so that the
// value stays exact in JSON number encodings.
const MaxL2ChainID = 1<<53 - 1

// GenesisConfig describes the chain's genesis batch and the verification
// keys it was produced with.
type GenesisConfig struct {
	ProtocolVersion               uint16
	GenesisRootHash               common.Hash
	RollupLastLeafIndex           uint64
	GenesisCommitment             common.Hash
	BootloaderHash                common.Hash
	DefaultAAHash                 common.Hash
	L1ChainID                     uint64
	L2ChainID                     uint64
	RecursionNodeLevelVkHash      common.Hash
	RecursionLeafLevelVkHash      common.Hash
	RecursionCircuitsSetVksHash   common.Hash
	RecursionSchedulerLevelVkHash common.Hash
	FeeAccount                    common.Address
	SharedBridge                  *SharedBridge
	DummyProver                   bool
}

// SharedBridge holds the L1 addresses of the shared bridge contracts.
type SharedBridge struct {
	BridgehubProxyAddr        common.Address
	StateTransitionProxyAddr  common.Address
	TransparentProxyAdminAddr common.Address
}
