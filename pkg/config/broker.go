package config

// BrokerConfig describes the Redis-backed queue broker.
type BrokerConfig struct {
	// RedisAddr host:port of the Redis instance.
	RedisAddr string `yaml:"redis_addr"`

	// RedisDB selects the logical database.
	RedisDB int `yaml:"redis_db"`

	// PasswordEnv names the environment variable holding the Redis password.
	// Empty means no auth.
	PasswordEnv string `yaml:"password_env"`

	// PipelineQueue / MaintenanceQueue are the two list keys the core uses.
	PipelineQueue    string `yaml:"pipeline_queue"`
	MaintenanceQueue string `yaml:"maintenance_queue"`
}

// DefaultBrokerConfig returns the built-in broker defaults.
func DefaultBrokerConfig() *BrokerConfig {
	return &BrokerConfig{
		RedisAddr:        "localhost:6379",
		RedisDB:          0,
		PipelineQueue:    "textloom:queue:pipeline",
		MaintenanceQueue: "textloom:queue:maintenance",
	}
}
