// Package config loads and validates TextLoom configuration from YAML and
// the environment.
package config

// Config is the umbrella configuration object returned by Initialize()
// and shared by reference across all components.
type Config struct {
	configDir string

	// Queue and worker pool configuration
	Queue *QueueConfig

	// Pipeline stage tuning (pool sizes, limits, retries)
	Pipeline *PipelineConfig

	// LLM providers (vision analysis + script generation)
	LLM *LLMConfig

	// Object storage (S3-compatible)
	Storage *StorageConfig

	// External video-merge service
	VideoMerge *VideoMergeConfig

	// Redis queue broker
	Broker *BrokerConfig

	// Workspace retention cleanup
	Retention *RetentionConfig
}

// ConfigDir returns the configuration directory path.
func (c *Config) ConfigDir() string {
	return c.configDir
}
