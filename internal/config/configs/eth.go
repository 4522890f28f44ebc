package configs

import (
	"github.com/MKhiriev/node-config/internal/crypto"
)

// ETHConfig configures interaction with L1.
// Env prefix: ETH_
type ETHConfig struct {
	Sender  SenderConfig `yaml:"sender" envPrefix:"SENDER_"`
	Web3URL string       `yaml:"web3_url" env:"CLIENT_WEB3_URL"`
}

// SenderConfig configures the L1 transaction sender.
type SenderConfig struct {
	WaitConfirmations  uint64 `yaml:"wait_confirmations" env:"WAIT_CONFIRMATIONS" envDefault:"1"`
	TxPollPeriodSec    uint64 `yaml:"tx_poll_period" env:"TX_POLL_PERIOD" envDefault:"1"`
	AggregateTxPollSec uint64 `yaml:"aggregate_tx_poll_period" env:"AGGREGATE_TX_POLL_PERIOD" envDefault:"1"`
	MaxTxsInFlight     uint64 `yaml:"max_txs_in_flight" env:"MAX_TXS_IN_FLIGHT" envDefault:"30"`
	ProofSendingMode   string `yaml:"proof_sending_mode" env:"PROOF_SENDING_MODE" envDefault:"SkipEveryProof"`
	PubdataSendingMode string `yaml:"pubdata_sending_mode" env:"PUBDATA_SENDING_MODE" envDefault:"Calldata"`

	// Operator keys are read from the environment only; they never appear in
	// configuration files.
	OperatorPrivateKey      Secret `yaml:"-" env:"OPERATOR_PRIVATE_KEY"`
	OperatorBlobsPrivateKey Secret `yaml:"-" env:"OPERATOR_BLOBS_PRIVATE_KEY"`
}

// PrivateKey parses the operator key. It returns (nil, nil) when no key is
// configured and an error wrapping [crypto.ErrInvalidPrivateKey] when the
// value is not 32 hex-encoded bytes.
func (c *SenderConfig) PrivateKey() (*crypto.PrivateKey, error) {
	return parseOptionalKey(c.OperatorPrivateKey)
}

// PrivateKeyBlobs parses the blob operator key with the same rules as
// [SenderConfig.PrivateKey].
func (c *SenderConfig) PrivateKeyBlobs() (*crypto.PrivateKey, error) {
	return parseOptionalKey(c.OperatorBlobsPrivateKey)
}

func parseOptionalKey(s Secret) (*crypto.PrivateKey, error) {
	if !s.IsSet() {
		return nil, nil
	}
	return crypto.PrivateKeyFromHex(s.Expose())
}

// GasAdjusterConfig configures L1 gas price estimation.
// Env prefix: ETH_SENDER_GAS_ADJUSTER_
type GasAdjusterConfig struct {
	DefaultPriorityFeePerGas uint64  `yaml:"default_priority_fee_per_gas" env:"DEFAULT_PRIORITY_FEE_PER_GAS" envDefault:"1000000000"`
	MaxBaseFeeSamples        uint32  `yaml:"max_base_fee_samples" env:"MAX_BASE_FEE_SAMPLES" envDefault:"10000"`
	PricingFormulaParameterA float64 `yaml:"pricing_formula_parameter_a" env:"PRICING_FORMULA_PARAMETER_A" envDefault:"1.5"`
	PricingFormulaParameterB float64 `yaml:"pricing_formula_parameter_b" env:"PRICING_FORMULA_PARAMETER_B" envDefault:"1.0005"`
	InternalL1PricingMult    float64 `yaml:"internal_l1_pricing_multiplier" env:"INTERNAL_L1_PRICING_MULTIPLIER" envDefault:"0.8"`
	PollPeriodSec            uint64  `yaml:"poll_period" env:"POLL_PERIOD" envDefault:"5"`
	MaxL1GasPrice            uint64  `yaml:"max_l1_gas_price" env:"MAX_L1_GAS_PRICE"`
}

// ETHWatchConfig configures the L1 event watcher.
// Env prefix: ETH_WATCH_
type ETHWatchConfig struct {
	ConfirmationsForEthEvent uint64 `yaml:"confirmations_for_eth_event" env:"CONFIRMATIONS_FOR_ETH_EVENT"`
	EthNodePollIntervalMs    uint64 `yaml:"eth_node_poll_interval" env:"ETH_NODE_POLL_INTERVAL" envDefault:"300"`
}
