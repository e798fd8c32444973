package config

import "time"

// RetentionConfig controls cleanup of on-disk workspaces for finished tasks.
// Cloud objects and database rows are kept; only the local scratch space is
// reclaimed.
type RetentionConfig struct {
	// WorkspaceRetention is how long a terminal task keeps its workspace
	// directory before cleanup removes it.
	WorkspaceRetention time.Duration `yaml:"workspace_retention"`

	// CleanupInterval is the cadence of the cleanup loop.
	CleanupInterval time.Duration `yaml:"cleanup_interval"`

	// BatchSize caps how many workspaces one cleanup pass removes.
	BatchSize int `yaml:"batch_size"`
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		WorkspaceRetention: 24 * time.Hour,
		CleanupInterval:    1 * time.Hour,
		BatchSize:          50,
	}
}
