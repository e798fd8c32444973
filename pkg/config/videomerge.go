package config

import "time"

// VideoMergeConfig describes the external video-merge service.
type VideoMergeConfig struct {
	// BaseURL of the merge service API.
	BaseURL string `yaml:"base_url"`

	// APIKeyEnv names the environment variable holding the API key.
	APIKeyEnv string `yaml:"api_key_env"`

	// Timeout bounds a single submit/query call.
	Timeout time.Duration `yaml:"timeout"`

	// DynamicSubtitles requests the subtitle post-processing path on merge
	// success (sub-tasks pass through processing_subtitles).
	DynamicSubtitles bool `yaml:"dynamic_subtitles"`
}

// DefaultVideoMergeConfig returns the built-in merge-service defaults.
func DefaultVideoMergeConfig() *VideoMergeConfig {
	return &VideoMergeConfig{
		BaseURL:          "http://localhost:8090",
		APIKeyEnv:        "MERGE_API_KEY",
		Timeout:          30 * time.Second,
		DynamicSubtitles: false,
	}
}
