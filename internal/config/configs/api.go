package configs

// APIConfig aggregates the API server sections. The loader composes it only
// when all four parts are present.
type APIConfig struct {
	Web3JSONRPC Web3JSONRPCConfig   `yaml:"web3_json_rpc"`
	Prometheus  PrometheusConfig    `yaml:"prometheus"`
	HealthCheck HealthCheckConfig   `yaml:"healthcheck"`
	MerkleTree  MerkleTreeAPIConfig `yaml:"merkle_tree"`
}

// Web3JSONRPCConfig configures the public JSON-RPC endpoints.
// Env prefix: API_WEB3_JSON_RPC_
type Web3JSONRPCConfig struct {
	HTTPPort            uint16  `yaml:"http_port" env:"HTTP_PORT" envDefault:"3050"`
	HTTPURL             string  `yaml:"http_url" env:"HTTP_URL"`
	WSPort              uint16  `yaml:"ws_port" env:"WS_PORT" envDefault:"3051"`
	WSURL               string  `yaml:"ws_url" env:"WS_URL"`
	FiltersLimit        uint32  `yaml:"filters_limit" env:"FILTERS_LIMIT" envDefault:"10000"`
	SubscriptionsLimit  uint32  `yaml:"subscriptions_limit" env:"SUBSCRIPTIONS_LIMIT" envDefault:"10000"`
	PubsubPollingMs     uint64  `yaml:"pubsub_polling_interval" env:"PUBSUB_POLLING_INTERVAL" envDefault:"200"`
	MaxBatchRequestSize uint32  `yaml:"max_batch_request_size" env:"MAX_BATCH_REQUEST_SIZE"`
	EstimateGasScale    float64 `yaml:"estimate_gas_scale_factor" env:"ESTIMATE_GAS_SCALE_FACTOR" envDefault:"1.2"`
}

// PrometheusConfig configures metrics exposition.
// Env prefix: API_PROMETHEUS_
type PrometheusConfig struct {
	ListenerPort   uint16 `yaml:"listener_port" env:"LISTENER_PORT" envDefault:"3312"`
	PushgatewayURL string `yaml:"pushgateway_url" env:"PUSHGATEWAY_URL"`
	PushIntervalMs uint64 `yaml:"push_interval_ms" env:"PUSH_INTERVAL_MS" envDefault:"100"`
}

// HealthCheckConfig configures the health check server.
// Env prefix: API_HEALTHCHECK_
type HealthCheckConfig struct {
	Port uint16 `yaml:"port" env:"PORT" envDefault:"3071"`
}

// MerkleTreeAPIConfig configures the Merkle tree API server.
// Env prefix: API_MERKLE_TREE_
type MerkleTreeAPIConfig struct {
	Port uint16 `yaml:"port" env:"PORT" envDefault:"3072"`
}

// ContractVerifierConfig configures the contract verification service.
// Env prefix: CONTRACT_VERIFIER_
type ContractVerifierConfig struct {
	CompilationTimeoutSec uint64 `yaml:"compilation_timeout" env:"COMPILATION_TIMEOUT" envDefault:"30"`
	PollingIntervalMs     uint64 `yaml:"polling_interval" env:"POLLING_INTERVAL" envDefault:"1000"`
	PrometheusPort        uint16 `yaml:"prometheus_port" env:"PROMETHEUS_PORT" envDefault:"3314"`
	Port                  uint16 `yaml:"port" env:"PORT" envDefault:"3070"`
	URL                   string `yaml:"url" env:"URL"`
	Threads               uint16 `yaml:"threads_per_server" env:"THREADS_PER_SERVER" envDefault:"128"`
}
