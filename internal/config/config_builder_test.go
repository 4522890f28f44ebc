package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/node-config/internal/config/configs"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

const generalDoc = `mempool:
  capacity: 100
  sync_batch_size: 7
state_keeper:
  fee_account_addr: "0x000000000000000000000000000000000000fee0"
eth_sender:
  web3_url: http://file:8545
  sender:
    wait_confirmations: 3
fri_prover_group:
  group_0: [1, 2]
`

const genesisFile = `genesis_root: "0x0101010101010101010101010101010101010101010101010101010101010101"
genesis_rollup_leaf_index: 54
genesis_batch_commitment: "0x0202020202020202020202020202020202020202020202020202020202020202"
genesis_protocol_version: 22
default_aa_hash: "0x0303030303030303030303030303030303030303030303030303030303030303"
bootloader_hash: "0x0404040404040404040404040404040404040404040404040404040404040404"
fee_account: "0x000000000000000000000000000000000000fee0"
l1_chain_id: 9
l2_chain_id: 270
prover:
  recursion_scheduler_level_vk_hash: "0x0606060606060606060606060606060606060606060606060606060606060606"
  recursion_node_level_vk_hash: "0x0707070707070707070707070707070707070707070707070707070707070707"
  recursion_leaf_level_vk_hash: "0x0808080808080808080808080808080808080808080808080808080808080808"
  recursion_circuits_set_vks_hash: "0x0909090909090909090909090909090909090909090909090909090909090909"
  dummy_verifier: false
`

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that building with nothing loaded returns
// an empty store.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder(nil, nil).build()
	require.NoError(t, err)
	assert.Equal(t, &TempConfigStore{}, cfg.Store)
	assert.Nil(t, cfg.Secrets)
	assert.Nil(t, cfg.Genesis)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder(nil, nil)
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_ComposesAPI verifies that build composes the api section from
// the parts loaded so far.
func TestBuild_ComposesAPI(t *testing.T) {
	b := newConfigBuilder(nil, nil)
	b.store = &TempConfigStore{
		Web3JSONRPCConfig:   &configs.Web3JSONRPCConfig{HTTPPort: 1},
		PrometheusConfig:    &configs.PrometheusConfig{},
		HealthCheckConfig:   &configs.HealthCheckConfig{},
		MerkleTreeAPIConfig: &configs.MerkleTreeAPIConfig{},
	}

	cfg, err := b.build()
	require.NoError(t, err)
	require.NotNil(t, cfg.Store.APIConfig)
	assert.Equal(t, uint16(1), cfg.Store.APIConfig.Web3JSONRPC.HTTPPort)
	assert.Nil(t, cfg.Store.PostgresConfig)
}

// ── loadNodeConfig ────────────────────────────────────────────────────────────

// TestLoadNodeConfig_NoSources verifies that nothing configured yields an
// empty store and no error.
func TestLoadNodeConfig_NoSources(t *testing.T) {
	cfg, err := loadNodeConfig(nil, []string{"HOME=/root"})
	require.NoError(t, err)
	assert.Equal(t, &TempConfigStore{}, cfg.Store)
}

// TestLoadNodeConfig_FileAndEnv verifies layering of the general file and
// environment variables, defaults and wallet resolution end to end.
func TestLoadNodeConfig_FileAndEnv(t *testing.T) {
	path := writeTempFile(t, "general.yaml", generalDoc)

	cfg, err := loadNodeConfig([]string{"-config", path}, []string{
		"CHAIN_MEMPOOL_CAPACITY=500",
		"ETH_SENDER_OPERATOR_PRIVATE_KEY=" + operatorKey,
		"ETH_CLIENT_WEB3_URL=http://env:8545",
		"API_WEB3_JSON_RPC_HTTP_PORT=4050",
		"API_PROMETHEUS_LISTENER_PORT=4312",
		"API_HEALTHCHECK_PORT=4071",
		"API_MERKLE_TREE_PORT=4072",
	})
	require.NoError(t, err)
	store := cfg.Store

	// env wins, file fills, defaults complete.
	require.NotNil(t, store.MempoolConfig)
	assert.Equal(t, uint64(500), store.MempoolConfig.Capacity)
	assert.Equal(t, uint32(7), store.MempoolConfig.SyncBatchSize)
	assert.Equal(t, uint64(86400), store.MempoolConfig.StuckTxTimeout)

	require.NotNil(t, store.ETHSenderConfig)
	assert.Equal(t, "http://env:8545", store.ETHSenderConfig.Web3URL)
	assert.Equal(t, uint64(3), store.ETHSenderConfig.Sender.WaitConfirmations)
	assert.Equal(t, uint64(30), store.ETHSenderConfig.Sender.MaxTxsInFlight)

	require.NotNil(t, store.APIConfig)
	assert.Equal(t, uint16(4050), store.APIConfig.Web3JSONRPC.HTTPPort)
	assert.Equal(t, uint16(3051), store.APIConfig.Web3JSONRPC.WSPort)

	assert.Nil(t, store.PostgresConfig)

	ws, err := store.Wallets()
	require.NoError(t, err)
	require.NotNil(t, ws.EthSender)
	assert.Equal(t, common.HexToAddress(operatorAddress), ws.EthSender.Operator.Address())
	assert.Nil(t, ws.EthSender.BlobOperator)
	require.NotNil(t, ws.StateKeeper)
	assert.Equal(t, common.HexToAddress(feeAccount), ws.StateKeeper.FeeAccount.Address())

	g := store.General()
	assert.Equal(t, []string{"api", "mempool", "state_keeper", "prover_group", "prometheus", "eth"}, g.PresentSections())
}

// TestLoadNodeConfig_FileZeroValuesKept verifies that false and 0 written in
// the file are not replaced by non-zero defaults.
func TestLoadNodeConfig_FileZeroValuesKept(t *testing.T) {
	path := writeTempFile(t, "general.yaml", `mempool:
  remove_stuck_txs: false
  delay_interval: 0
state_keeper:
  save_call_traces: false
`)

	cfg, err := loadNodeConfig([]string{"-c", path}, nil)
	require.NoError(t, err)

	require.NotNil(t, cfg.Store.MempoolConfig)
	assert.False(t, cfg.Store.MempoolConfig.RemoveStuckTxs)
	assert.Zero(t, cfg.Store.MempoolConfig.DelayIntervalMs)
	assert.Equal(t, uint32(1000), cfg.Store.MempoolConfig.SyncBatchSize)

	require.NotNil(t, cfg.Store.StateKeeperConfig)
	assert.False(t, cfg.Store.StateKeeperConfig.SaveCallTraces)
	assert.Equal(t, uint32(250), cfg.Store.StateKeeperConfig.TransactionSlots)
}

// TestLoadNodeConfig_EnvFalseOverridesFile verifies that a variable set to
// false or 0 wins over a non-zero value from the file.
func TestLoadNodeConfig_EnvFalseOverridesFile(t *testing.T) {
	path := writeTempFile(t, "general.yaml", "mempool:\n  remove_stuck_txs: true\n  capacity: 100\n")

	cfg, err := loadNodeConfig([]string{"-c", path}, []string{
		"CHAIN_MEMPOOL_REMOVE_STUCK_TXS=false",
		"CHAIN_MEMPOOL_CAPACITY=0",
	})
	require.NoError(t, err)

	require.NotNil(t, cfg.Store.MempoolConfig)
	assert.False(t, cfg.Store.MempoolConfig.RemoveStuckTxs)
	assert.Zero(t, cfg.Store.MempoolConfig.Capacity)
}

// TestLoadNodeConfig_FlagOverridesEnvPath verifies that a path flag wins over
// the matching variable.
func TestLoadNodeConfig_FlagOverridesEnvPath(t *testing.T) {
	flagPath := writeTempFile(t, "flag.yaml", "db:\n  backup_count: 1\n")

	cfg, err := loadNodeConfig([]string{"-c", flagPath}, []string{"GENERAL_CONFIG_PATH=/does/not/exist.yaml"})
	require.NoError(t, err)
	require.NotNil(t, cfg.Store.DBConfig)
	assert.Equal(t, uint32(1), cfg.Store.DBConfig.BackupCount)
}

// TestLoadNodeConfig_SecretsAndGenesis verifies loading of the secrets and
// genesis files from their variables.
func TestLoadNodeConfig_SecretsAndGenesis(t *testing.T) {
	secretsPath := writeTempFile(t, "secrets.yaml", secretsDoc)
	genesisPath := writeTempFile(t, "genesis.yaml", genesisFile)

	cfg, err := loadNodeConfig(nil, []string{"SECRETS_PATH=" + secretsPath, "GENESIS_PATH=" + genesisPath})
	require.NoError(t, err)

	require.NotNil(t, cfg.Secrets)
	require.NotNil(t, cfg.Secrets.Consensus)
	assert.NotNil(t, cfg.Secrets.Consensus.ValidatorKey)

	require.NotNil(t, cfg.Genesis)
	assert.Equal(t, uint16(22), cfg.Genesis.ProtocolVersion)
	assert.Equal(t, uint64(270), cfg.Genesis.L2ChainID)
	assert.Equal(t, common.HexToAddress(feeAccount), cfg.Genesis.FeeAccount)
	assert.Nil(t, cfg.Genesis.SharedBridge)
}

// TestLoadNodeConfig_Errors verifies that unreadable or malformed files fail
// the load.
func TestLoadNodeConfig_Errors(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.yaml")

	tests := []struct {
		name    string
		environ []string
		wantErr error
		wantMsg string
	}{
		{
			name:    "missing general file",
			environ: []string{"GENERAL_CONFIG_PATH=" + missing},
			wantErr: ErrReadingFile,
		},
		{
			name:    "unknown section",
			environ: []string{"GENERAL_CONFIG_PATH=" + writeTempFile(t, "a.yaml", "mempol:\n  capacity: 1\n")},
			wantErr: ErrDecodingFile,
		},
		{
			name:    "operator key in file",
			environ: []string{"GENERAL_CONFIG_PATH=" + writeTempFile(t, "b.yaml", "eth_sender:\n  sender:\n    operator_private_key: \"0x01\"\n")},
			wantErr: ErrDecodingFile,
		},
		{
			name:    "bad env value",
			environ: []string{"CHAIN_MEMPOOL_CAPACITY=lots"},
			wantMsg: "mempool",
		},
		{
			name:    "missing secrets file",
			environ: []string{"SECRETS_PATH=" + missing},
			wantErr: ErrReadingFile,
		},
		{
			name:    "genesis without prover",
			environ: []string{"GENESIS_PATH=" + writeTempFile(t, "g.yaml", "l1_chain_id: 9\n")},
			wantErr: ErrDecodingFile,
			wantMsg: "prover: missing required field",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := loadNodeConfig(nil, tt.environ)
			require.Error(t, err)
			assert.Nil(t, cfg)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}

// TestLoadNodeConfig_FeeAccountRequiredAfterLoad verifies that a state keeper
// section loaded without a fee account fails wallet resolution.
func TestLoadNodeConfig_FeeAccountRequiredAfterLoad(t *testing.T) {
	cfg, err := loadNodeConfig(nil, []string{"CHAIN_STATE_KEEPER_TRANSACTION_SLOTS=10"})
	require.NoError(t, err)
	require.NotNil(t, cfg.Store.StateKeeperConfig)

	_, err = cfg.Store.Wallets()
	assert.Error(t, err)
}
