package configs

import "slices"

// FriProofCompressorConfig configures the proof compressor.
// Env prefix: FRI_PROOF_COMPRESSOR_
type FriProofCompressorConfig struct {
	CompressionMode          uint8  `yaml:"compression_mode" env:"COMPRESSION_MODE" envDefault:"1"`
	PrometheusListenerPort   uint16 `yaml:"prometheus_listener_port" env:"PROMETHEUS_LISTENER_PORT" envDefault:"3321"`
	PrometheusPushgatewayURL string `yaml:"prometheus_pushgateway_url" env:"PROMETHEUS_PUSHGATEWAY_URL"`
	GenerationTimeoutInSecs  uint16 `yaml:"generation_timeout_in_secs" env:"GENERATION_TIMEOUT_IN_SECS" envDefault:"3600"`
	MaxAttempts              uint32 `yaml:"max_attempts" env:"MAX_ATTEMPTS" envDefault:"5"`
	UniversalSetupPath       string `yaml:"universal_setup_path" env:"UNIVERSAL_SETUP_PATH"`
}

// FriProverConfig configures the FRI prover.
// Env prefix: FRI_PROVER_
type FriProverConfig struct {
	SetupDataPath             string `yaml:"setup_data_path" env:"SETUP_DATA_PATH"`
	PrometheusPort            uint16 `yaml:"prometheus_port" env:"PROMETHEUS_PORT" envDefault:"3315"`
	MaxAttempts               uint32 `yaml:"max_attempts" env:"MAX_ATTEMPTS" envDefault:"10"`
	GenerationTimeoutInSecs   uint16 `yaml:"generation_timeout_in_secs" env:"GENERATION_TIMEOUT_IN_SECS" envDefault:"600"`
	SetupLoadMode             string `yaml:"setup_load_mode" env:"SETUP_LOAD_MODE" envDefault:"FromDisk"`
	SpecializedGroupID        uint8  `yaml:"specialized_group_id" env:"SPECIALIZED_GROUP_ID"`
	QueueCapacity             uint32 `yaml:"queue_capacity" env:"QUEUE_CAPACITY" envDefault:"10"`
	WitnessVectorReceiverPort uint16 `yaml:"witness_vector_receiver_port" env:"WITNESS_VECTOR_RECEIVER_PORT" envDefault:"3316"`
	ShallSaveToPublicBucket   bool   `yaml:"shall_save_to_public_bucket" env:"SHALL_SAVE_TO_PUBLIC_BUCKET"`
}

// FriProverGroupConfig assigns circuit IDs to specialized prover groups.
// Env prefix: FRI_PROVER_GROUP_
type FriProverGroupConfig struct {
	Group0 []int `yaml:"group_0" env:"GROUP_0"`
	Group1 []int `yaml:"group_1" env:"GROUP_1"`
	Group2 []int `yaml:"group_2" env:"GROUP_2"`
}

// Clone returns a deep copy of c.
func (c *FriProverGroupConfig) Clone() *FriProverGroupConfig {
	return &FriProverGroupConfig{
		Group0: slices.Clone(c.Group0),
		Group1: slices.Clone(c.Group1),
		Group2: slices.Clone(c.Group2),
	}
}

// FriProverGatewayConfig configures the prover gateway.
// Env prefix: FRI_PROVER_GATEWAY_
type FriProverGatewayConfig struct {
	APIURL                 string `yaml:"api_url" env:"API_URL"`
	APIPollDurationSecs    uint16 `yaml:"api_poll_duration_secs" env:"API_POLL_DURATION_SECS" envDefault:"1000"`
	PrometheusListenerPort uint16 `yaml:"prometheus_listener_port" env:"PROMETHEUS_LISTENER_PORT" envDefault:"3314"`
}

// FriWitnessVectorGeneratorConfig configures the witness vector generator.
// Env prefix: FRI_WITNESS_VECTOR_GENERATOR_
type FriWitnessVectorGeneratorConfig struct {
	MaxProverReservationDurationInSecs uint16 `yaml:"max_prover_reservation_duration_in_secs" env:"MAX_PROVER_RESERVATION_DURATION_IN_SECS" envDefault:"1000"`
	ProverInstanceWaitTimeoutInSecs    uint16 `yaml:"prover_instance_wait_timeout_in_secs" env:"PROVER_INSTANCE_WAIT_TIMEOUT_IN_SECS" envDefault:"200"`
	ProverInstancePollTimeInMilliSecs  uint16 `yaml:"prover_instance_poll_time_in_milli_secs" env:"PROVER_INSTANCE_POLL_TIME_IN_MILLI_SECS" envDefault:"250"`
	PrometheusListenerPort             uint16 `yaml:"prometheus_listener_port" env:"PROMETHEUS_LISTENER_PORT" envDefault:"3314"`
	SpecializedGroupID                 uint8  `yaml:"specialized_group_id" env:"SPECIALIZED_GROUP_ID"`
}

// FriWitnessGeneratorConfig configures the FRI witness generator.
// Env prefix: FRI_WITNESS_
type FriWitnessGeneratorConfig struct {
	GenerationTimeoutInSecs uint16 `yaml:"generation_timeout_in_secs" env:"GENERATION_TIMEOUT_IN_SECS" envDefault:"900"`
	MaxAttempts             uint32 `yaml:"max_attempts" env:"MAX_ATTEMPTS" envDefault:"10"`
	ShallSaveToPublicBucket bool   `yaml:"shall_save_to_public_bucket" env:"SHALL_SAVE_TO_PUBLIC_BUCKET"`
}

// WitnessGeneratorConfig configures the legacy witness generator.
// Env prefix: WITNESS_
type WitnessGeneratorConfig struct {
	GenerationTimeoutInSecs uint16 `yaml:"generation_timeout_in_secs" env:"GENERATION_TIMEOUT_IN_SECS" envDefault:"900"`
	InitialSetupKeyPath     string `yaml:"initial_setup_key_path" env:"INITIAL_SETUP_KEY_PATH"`
	KeyDownloadURL          string `yaml:"key_download_url" env:"KEY_DOWNLOAD_URL"`
	MaxAttempts             uint32 `yaml:"max_attempts" env:"MAX_ATTEMPTS" envDefault:"1"`
	DataSource              string `yaml:"data_source" env:"DATA_SOURCE" envDefault:"AdditionalTables"`
}

// ProofDataHandlerConfig configures the proof data handler server.
// Env prefix: PROOF_DATA_HANDLER_
type ProofDataHandlerConfig struct {
	HTTPPort                     uint16 `yaml:"http_port" env:"HTTP_PORT" envDefault:"3320"`
	ProofGenerationTimeoutInSecs uint16 `yaml:"proof_generation_timeout_in_secs" env:"PROOF_GENERATION_TIMEOUT_IN_SECS" envDefault:"18000"`
}
