// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"reflect"

	"github.com/MKhiriev/node-config/internal/config/configs"
)

// TempConfigStore holds every configuration section the node may load. Each
// section is optional; nil means the section was not configured in any
// layer.
//
// Struct tags:
//   - yaml:      key of the section in the general config file.
//   - envPrefix: environment prefix owning the section. A section is loaded
//     from the environment only when at least one variable it owns is set.
//
// The api section has no prefix: it is composed from its four parts once all
// of them are present.
type TempConfigStore struct {
	PostgresConfig            *configs.PostgresConfig                  `yaml:"postgres,omitempty" envPrefix:"DATABASE_"`
	HealthCheckConfig         *configs.HealthCheckConfig               `yaml:"health_check,omitempty" envPrefix:"API_HEALTHCHECK_"`
	MerkleTreeAPIConfig       *configs.MerkleTreeAPIConfig             `yaml:"merkle_tree_api,omitempty" envPrefix:"API_MERKLE_TREE_"`
	Web3JSONRPCConfig         *configs.Web3JSONRPCConfig               `yaml:"web3_json_rpc,omitempty" envPrefix:"API_WEB3_JSON_RPC_"`
	CircuitBreakerConfig      *configs.CircuitBreakerConfig            `yaml:"circuit_breaker,omitempty" envPrefix:"CHAIN_CIRCUIT_BREAKER_"`
	MempoolConfig             *configs.MempoolConfig                   `yaml:"mempool,omitempty" envPrefix:"CHAIN_MEMPOOL_"`
	NetworkConfig             *configs.NetworkConfig                   `yaml:"network,omitempty" envPrefix:"CHAIN_ETH_"`
	ContractVerifier          *configs.ContractVerifierConfig          `yaml:"contract_verifier,omitempty" envPrefix:"CONTRACT_VERIFIER_"`
	OperationsManagerConfig   *configs.OperationsManagerConfig         `yaml:"operations_manager,omitempty" envPrefix:"CHAIN_OPERATIONS_MANAGER_"`
	StateKeeperConfig         *configs.StateKeeperConfig               `yaml:"state_keeper,omitempty" envPrefix:"CHAIN_STATE_KEEPER_"`
	HouseKeeperConfig         *configs.HouseKeeperConfig               `yaml:"house_keeper,omitempty" envPrefix:"HOUSE_KEEPER_"`
	FriProofCompressorConfig  *configs.FriProofCompressorConfig        `yaml:"fri_proof_compressor,omitempty" envPrefix:"FRI_PROOF_COMPRESSOR_"`
	FriProverConfig           *configs.FriProverConfig                 `yaml:"fri_prover,omitempty" envPrefix:"FRI_PROVER_"`
	FriProverGroupConfig      *configs.FriProverGroupConfig            `yaml:"fri_prover_group,omitempty" envPrefix:"FRI_PROVER_GROUP_"`
	FriProverGatewayConfig    *configs.FriProverGatewayConfig          `yaml:"fri_prover_gateway,omitempty" envPrefix:"FRI_PROVER_GATEWAY_"`
	FriWitnessVectorGenerator *configs.FriWitnessVectorGeneratorConfig `yaml:"fri_witness_vector_generator,omitempty" envPrefix:"FRI_WITNESS_VECTOR_GENERATOR_"`
	FriWitnessGenerator       *configs.FriWitnessGeneratorConfig       `yaml:"fri_witness_generator,omitempty" envPrefix:"FRI_WITNESS_"`
	PrometheusConfig          *configs.PrometheusConfig                `yaml:"prometheus,omitempty" envPrefix:"API_PROMETHEUS_"`
	ProofDataHandlerConfig    *configs.ProofDataHandlerConfig          `yaml:"proof_data_handler,omitempty" envPrefix:"PROOF_DATA_HANDLER_"`
	WitnessGeneratorConfig    *configs.WitnessGeneratorConfig          `yaml:"witness_generator,omitempty" envPrefix:"WITNESS_"`
	APIConfig                 *configs.APIConfig                       `yaml:"api,omitempty"`
	DBConfig                  *configs.DBConfig                        `yaml:"db,omitempty" envPrefix:"DB_"`
	ETHSenderConfig           *configs.ETHConfig                       `yaml:"eth_sender,omitempty" envPrefix:"ETH_"`
	ETHWatchConfig            *configs.ETHWatchConfig                  `yaml:"eth_watch,omitempty" envPrefix:"ETH_WATCH_"`
	GasAdjusterConfig         *configs.GasAdjusterConfig               `yaml:"gas_adjuster,omitempty" envPrefix:"ETH_SENDER_GAS_ADJUSTER_"`
	ObjectStoreConfig         *configs.ObjectStoreConfig               `yaml:"object_store,omitempty" envPrefix:"OBJECT_STORE_"`
}

// General returns the sections handed to node components. Every present
// section is deep-copied; absent sections stay nil.
func (s *TempConfigStore) General() *configs.GeneralConfig {
	return &configs.GeneralConfig{
		PostgresConfig:          cloneSection(s.PostgresConfig),
		APIConfig:               cloneSection(s.APIConfig),
		ContractVerifier:        cloneSection(s.ContractVerifier),
		CircuitBreakerConfig:    cloneSection(s.CircuitBreakerConfig),
		MempoolConfig:           cloneSection(s.MempoolConfig),
		OperationsManagerConfig: cloneSection(s.OperationsManagerConfig),
		StateKeeperConfig:       cloneSection(s.StateKeeperConfig),
		HouseKeeperConfig:       cloneSection(s.HouseKeeperConfig),
		ProofCompressorConfig:   cloneSection(s.FriProofCompressorConfig),
		ProverConfig:            cloneSection(s.FriProverConfig),
		ProverGateway:           cloneSection(s.FriProverGatewayConfig),
		WitnessVectorGenerator:  cloneSection(s.FriWitnessVectorGenerator),
		ProverGroupConfig:       cloneSection(s.FriProverGroupConfig),
		WitnessGenerator:        cloneSection(s.FriWitnessGenerator),
		PrometheusConfig:        cloneSection(s.PrometheusConfig),
		ProofDataHandlerConfig:  cloneSection(s.ProofDataHandlerConfig),
		DBConfig:                cloneSection(s.DBConfig),
		ETH:                     cloneSection(s.ETHSenderConfig),
	}
}

// WalletSources is the part of the store wallet resolution reads.
type WalletSources interface {
	ETHSender() *configs.ETHConfig
	StateKeeper() *configs.StateKeeperConfig
}

var _ WalletSources = (*TempConfigStore)(nil)

// ETHSender returns the eth_sender section, or nil.
func (s *TempConfigStore) ETHSender() *configs.ETHConfig { return s.ETHSenderConfig }

// StateKeeper returns the state_keeper section, or nil.
func (s *TempConfigStore) StateKeeper() *configs.StateKeeperConfig { return s.StateKeeperConfig }

// Lookup returns a copy of the store's section of type T, so a component can
// be handed only the section it owns:
//
//	mempool, ok := config.Lookup[configs.MempoolConfig](store)
//
// ok is false when the section is absent or the store has no section of
// type T.
func Lookup[T any](s *TempConfigStore) (*T, bool) {
	want := reflect.TypeFor[*T]()

	v := reflect.ValueOf(s).Elem()
	for i := range v.NumField() {
		f := v.Field(i)
		if f.Type() != want {
			continue
		}
		if f.IsNil() {
			return nil, false
		}
		return cloneSection(f.Interface().(*T)), true
	}

	return nil, false
}

// composeAPI builds the api section from its parts when it was not loaded
// directly and all four parts are present.
func (s *TempConfigStore) composeAPI() {
	if s.APIConfig != nil {
		return
	}
	if s.Web3JSONRPCConfig == nil || s.PrometheusConfig == nil || s.HealthCheckConfig == nil || s.MerkleTreeAPIConfig == nil {
		return
	}

	s.APIConfig = &configs.APIConfig{
		Web3JSONRPC: *s.Web3JSONRPCConfig,
		Prometheus:  *s.PrometheusConfig,
		HealthCheck: *s.HealthCheckConfig,
		MerkleTree:  *s.MerkleTreeAPIConfig,
	}
}
