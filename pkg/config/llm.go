package config

import "time"

// LLMProviderConfig describes one OpenAI-compatible chat completion endpoint.
type LLMProviderConfig struct {
	// BaseURL of the chat completion API (without /chat/completions).
	BaseURL string `yaml:"base_url"`

	// APIKeyEnv names the environment variable holding the API key.
	APIKeyEnv string `yaml:"api_key_env"`

	// Model identifier sent with each request.
	Model string `yaml:"model"`

	// MaxTokens caps the completion length.
	MaxTokens int `yaml:"max_tokens"`

	// Temperature for sampling.
	Temperature float64 `yaml:"temperature"`

	// Timeout bounds a single completion call.
	Timeout time.Duration `yaml:"timeout"`
}

// LLMConfig groups the two model endpoints the pipeline depends on.
type LLMConfig struct {
	// Vision is the multimodal model used for material analysis.
	Vision *LLMProviderConfig `yaml:"vision"`

	// Script is the text model used for script generation.
	Script *LLMProviderConfig `yaml:"script"`
}

// DefaultLLMConfig returns the built-in LLM defaults.
func DefaultLLMConfig() *LLMConfig {
	return &LLMConfig{
		Vision: &LLMProviderConfig{
			BaseURL:     "https://api.openai.com/v1",
			APIKeyEnv:   "VISION_API_KEY",
			Model:       "gpt-4o",
			MaxTokens:   2000,
			Temperature: 0.2,
			Timeout:     120 * time.Second,
		},
		Script: &LLMProviderConfig{
			BaseURL:     "https://api.openai.com/v1",
			APIKeyEnv:   "SCRIPT_API_KEY",
			Model:       "gpt-4o",
			MaxTokens:   8000,
			Temperature: 0.7,
			Timeout:     300 * time.Second,
		},
	}
}
