package configs

// ObjectStoreConfig configures blob storage for prover artifacts.
// Env prefix: OBJECT_STORE_
type ObjectStoreConfig struct {
	// Mode is one of "GCS", "GCSWithCredentialFile", "GCSAnonymousReadOnly"
	// or "FileBacked".
	Mode                  string `yaml:"mode" env:"MODE" envDefault:"FileBacked"`
	BucketBaseURL         string `yaml:"bucket_base_url" env:"BUCKET_BASE_URL"`
	FileBackedBasePath    string `yaml:"file_backed_base_path" env:"FILE_BACKED_BASE_PATH" envDefault:"artifacts"`
	GCSCredentialFilePath string `yaml:"gcs_credential_file_path" env:"GCS_CREDENTIAL_FILE_PATH"`
	MaxRetries            uint16 `yaml:"max_retries" env:"MAX_RETRIES" envDefault:"5"`
}
