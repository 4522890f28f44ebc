package configs

import (
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// PostgresConfig holds the connection settings of the node's Postgres
// databases.
// Env prefix: DATABASE_
type PostgresConfig struct {
	// MasterURL is the read-write connection string of the core database.
	MasterURL Secret `yaml:"master_url" env:"URL"`
	// ReplicaURL is an optional read-only replica of the core database.
	ReplicaURL Secret `yaml:"replica_url" env:"REPLICA_URL"`
	// ProverURL is the connection string of the prover database.
	ProverURL Secret `yaml:"prover_url" env:"PROVER_URL"`

	MaxConnections      uint32 `yaml:"max_connections" env:"POOL_SIZE" envDefault:"50"`
	StatementTimeoutSec uint64 `yaml:"statement_timeout_sec" env:"STATEMENT_TIMEOUT_SEC"`
	AcquireTimeoutSec   uint64 `yaml:"acquire_timeout_sec" env:"ACQUIRE_TIMEOUT_SEC" envDefault:"30"`
}

// SafeMasterURL renders MasterURL without the password, suitable for logs.
// The string is parsed with pgx; nothing is dialed.
func (c *PostgresConfig) SafeMasterURL() string {
	return safePostgresURL(c.MasterURL)
}

func safePostgresURL(s Secret) string {
	if !s.IsSet() {
		return ""
	}

	cfg, err := pgconn.ParseConfig(s.Expose())
	if err != nil {
		return "<unparseable>"
	}

	return fmt.Sprintf("postgres://%s@%s:%d/%s", cfg.User, cfg.Host, cfg.Port, cfg.Database)
}

// DBConfig configures the node's local RocksDB instances.
// Env prefix: DB_
type DBConfig struct {
	StateKeeperDBPath string `yaml:"state_keeper_db_path" env:"STATE_KEEPER_DB_PATH" envDefault:"./db/state_keeper"`
	MerkleTreePath    string `yaml:"merkle_tree_path" env:"MERKLE_TREE_PATH" envDefault:"./db/lightweight-new"`
	// MerkleTreeMode is either "full" or "lightweight".
	MerkleTreeMode   string `yaml:"merkle_tree_mode" env:"MERKLE_TREE_MODE" envDefault:"full"`
	BackupCount      uint32 `yaml:"backup_count" env:"BACKUP_COUNT" envDefault:"5"`
	BackupIntervalMs uint64 `yaml:"backup_interval_ms" env:"BACKUP_INTERVAL_MS" envDefault:"60000"`
}
