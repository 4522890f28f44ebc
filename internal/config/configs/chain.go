package configs

import (
	"github.com/ethereum/go-ethereum/common"
)

// NetworkConfig identifies the L1 network and the L2 chain.
// Env prefix: CHAIN_ETH_
type NetworkConfig struct {
	Network         string `yaml:"network" env:"NETWORK" envDefault:"localhost"`
	ZkSyncNetwork   string `yaml:"zksync_network" env:"ZKSYNC_NETWORK" envDefault:"localhost"`
	ZkSyncNetworkID uint64 `yaml:"zksync_network_id" env:"ZKSYNC_NETWORK_ID" envDefault:"270"`
}

// CircuitBreakerConfig configures the checks that halt L1 submission.
// Env prefix: CHAIN_CIRCUIT_BREAKER_
type CircuitBreakerConfig struct {
	SyncIntervalMs          uint64 `yaml:"sync_interval_ms" env:"SYNC_INTERVAL_MS" envDefault:"30000"`
	HTTPReqMaxRetryNumber   uint32 `yaml:"http_req_max_retry_number" env:"HTTP_REQ_MAX_RETRY_NUMBER" envDefault:"5"`
	HTTPReqRetryIntervalSec uint8  `yaml:"http_req_retry_interval_sec" env:"HTTP_REQ_RETRY_INTERVAL_SEC" envDefault:"2"`
}

// MempoolConfig configures the state keeper's mempool.
// Env prefix: CHAIN_MEMPOOL_
type MempoolConfig struct {
	SyncIntervalMs  uint64 `yaml:"sync_interval_ms" env:"SYNC_INTERVAL_MS" envDefault:"10"`
	SyncBatchSize   uint32 `yaml:"sync_batch_size" env:"SYNC_BATCH_SIZE" envDefault:"1000"`
	Capacity        uint64 `yaml:"capacity" env:"CAPACITY" envDefault:"10000000"`
	StuckTxTimeout  uint64 `yaml:"stuck_tx_timeout" env:"STUCK_TX_TIMEOUT" envDefault:"86400"`
	RemoveStuckTxs  bool   `yaml:"remove_stuck_txs" env:"REMOVE_STUCK_TXS" envDefault:"true"`
	DelayIntervalMs uint64 `yaml:"delay_interval" env:"DELAY_INTERVAL" envDefault:"100"`
}

// OperationsManagerConfig configures the background operations manager.
// Env prefix: CHAIN_OPERATIONS_MANAGER_
type OperationsManagerConfig struct {
	DelayIntervalMs uint64 `yaml:"delay_interval" env:"DELAY_INTERVAL" envDefault:"100"`
}

// StateKeeperConfig configures the block producer.
// Env prefix: CHAIN_STATE_KEEPER_
type StateKeeperConfig struct {
	TransactionSlots          uint32 `yaml:"transaction_slots" env:"TRANSACTION_SLOTS" envDefault:"250"`
	BlockCommitDeadlineMs     uint64 `yaml:"block_commit_deadline_ms" env:"BLOCK_COMMIT_DEADLINE_MS" envDefault:"2500"`
	MiniblockCommitDeadlineMs uint64 `yaml:"miniblock_commit_deadline_ms" env:"MINIBLOCK_COMMIT_DEADLINE_MS" envDefault:"1000"`
	MaxSingleTxGas            uint32 `yaml:"max_single_tx_gas" env:"MAX_SINGLE_TX_GAS" envDefault:"6000000"`
	MaxGasPerBatch            uint64 `yaml:"max_gas_per_batch" env:"MAX_GAS_PER_BATCH" envDefault:"200000000"`
	ValidationGasLimit        uint32 `yaml:"validation_computational_gas_limit" env:"VALIDATION_COMPUTATIONAL_GAS_LIMIT" envDefault:"300000"`
	SaveCallTraces            bool   `yaml:"save_call_traces" env:"SAVE_CALL_TRACES" envDefault:"true"`

	// FeeAccountAddr is the address that collects fees.
	//
	// Deprecated: the fee account belongs to the genesis config. It is still
	// the only source of the state keeper wallet and is required whenever
	// this section is present.
	FeeAccountAddr *common.Address `yaml:"fee_account_addr" env:"FEE_ACCOUNT_ADDR"`
}

// Clone returns a deep copy of c.
func (c *StateKeeperConfig) Clone() *StateKeeperConfig {
	out := *c
	if c.FeeAccountAddr != nil {
		addr := *c.FeeAccountAddr
		out.FeeAccountAddr = &addr
	}
	return &out
}

// HouseKeeperConfig configures periodic maintenance jobs.
// Env prefix: HOUSE_KEEPER_
type HouseKeeperConfig struct {
	L1BatchMetricsReportingIntervalMs uint64 `yaml:"l1_batch_metrics_reporting_interval_ms" env:"L1_BATCH_METRICS_REPORTING_INTERVAL_MS" envDefault:"10000"`
	GPUProverQueueReportingIntervalMs uint64 `yaml:"gpu_prover_queue_reporting_interval_ms" env:"GPU_PROVER_QUEUE_REPORTING_INTERVAL_MS" envDefault:"10000"`
	ProverJobRetryingIntervalMs       uint64 `yaml:"prover_job_retrying_interval_ms" env:"PROVER_JOB_RETRYING_INTERVAL_MS" envDefault:"30000"`
	FriProverJobRetryingIntervalMs    uint64 `yaml:"fri_prover_job_retrying_interval_ms" env:"FRI_PROVER_JOB_RETRYING_INTERVAL_MS" envDefault:"30000"`
}
