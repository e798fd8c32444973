package config

// StorageConfig describes the S3-compatible object store holding task
// materials and keyframes.
type StorageConfig struct {
	// Endpoint host:port of the object store.
	Endpoint string `yaml:"endpoint"`

	// AccessKeyEnv / SecretKeyEnv name the credential environment variables.
	AccessKeyEnv string `yaml:"access_key_env"`
	SecretKeyEnv string `yaml:"secret_key_env"`

	// Bucket for all task objects.
	Bucket string `yaml:"bucket"`

	// UseSSL toggles TLS to the endpoint.
	UseSSL bool `yaml:"use_ssl"`

	// PublicBaseURL is the externally reachable URL prefix for stored objects.
	// URLs under this prefix are treated as already in-namespace and are not
	// re-downloaded during material processing.
	PublicBaseURL string `yaml:"public_base_url"`
}

// DefaultStorageConfig returns the built-in storage defaults.
func DefaultStorageConfig() *StorageConfig {
	return &StorageConfig{
		Endpoint:     "localhost:9000",
		AccessKeyEnv: "STORAGE_ACCESS_KEY",
		SecretKeyEnv: "STORAGE_SECRET_KEY",
		Bucket:       "textloom",
		UseSSL:       false,
		PublicBaseURL: "http://localhost:9000/textloom",
	}
}
