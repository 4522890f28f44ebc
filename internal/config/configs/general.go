package configs

import (
	"reflect"
	"strings"
)

// GeneralConfig is the set of sections handed to node components. Each field
// is present exactly when the corresponding source section was loaded.
type GeneralConfig struct {
	PostgresConfig          *PostgresConfig                  `yaml:"postgres"`
	APIConfig               *APIConfig                       `yaml:"api"`
	ContractVerifier        *ContractVerifierConfig          `yaml:"contract_verifier"`
	CircuitBreakerConfig    *CircuitBreakerConfig            `yaml:"circuit_breaker"`
	MempoolConfig           *MempoolConfig                   `yaml:"mempool"`
	OperationsManagerConfig *OperationsManagerConfig         `yaml:"operations_manager"`
	StateKeeperConfig       *StateKeeperConfig               `yaml:"state_keeper"`
	HouseKeeperConfig       *HouseKeeperConfig               `yaml:"house_keeper"`
	ProofCompressorConfig   *FriProofCompressorConfig        `yaml:"proof_compressor"`
	ProverConfig            *FriProverConfig                 `yaml:"prover"`
	ProverGateway           *FriProverGatewayConfig          `yaml:"prover_gateway"`
	WitnessVectorGenerator  *FriWitnessVectorGeneratorConfig `yaml:"witness_vector_generator"`
	ProverGroupConfig       *FriProverGroupConfig            `yaml:"prover_group"`
	WitnessGenerator        *FriWitnessGeneratorConfig       `yaml:"witness_generator"`
	PrometheusConfig        *PrometheusConfig                `yaml:"prometheus"`
	ProofDataHandlerConfig  *ProofDataHandlerConfig          `yaml:"proof_data_handler"`
	DBConfig                *DBConfig                        `yaml:"db"`
	ETH                     *ETHConfig                       `yaml:"eth"`
}

// PresentSections returns the yaml names of the sections that are set, in
// declaration order.
func (c *GeneralConfig) PresentSections() []string {
	v := reflect.ValueOf(c).Elem()
	t := v.Type()

	present := make([]string, 0, t.NumField())
	for i := range t.NumField() {
		if v.Field(i).IsNil() {
			continue
		}
		name, _, _ := strings.Cut(t.Field(i).Tag.Get("yaml"), ",")
		present = append(present, name)
	}

	return present
}
