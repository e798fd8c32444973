package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// textloomYAMLConfig represents the complete textloom.yaml file structure.
// Every section is optional; unset sections fall back to built-in defaults.
type textloomYAMLConfig struct {
	Queue      *QueueConfig       `yaml:"queue"`
	Pipeline   *PipelineConfig    `yaml:"pipeline"`
	LLM        *LLMConfig         `yaml:"llm"`
	Storage    *StorageConfig     `yaml:"storage"`
	VideoMerge *VideoMergeConfig  `yaml:"video_merge"`
	Broker     *BrokerConfig      `yaml:"broker"`
	Retention  *RetentionConfig   `yaml:"retention"`
}

// Initialize loads, validates, and returns ready-to-use configuration.
// This is the primary entry point for configuration loading.
//
// Steps performed:
//  1. Read textloom.yaml from configDir (missing file means all defaults)
//  2. Expand environment variables
//  3. Parse YAML into structs
//  4. Merge user values over built-in defaults
//  5. Validate
func Initialize(ctx context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg, err := load(ctx, configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	log.Info("Configuration initialized successfully",
		"workers", cfg.Queue.WorkerCount,
		"max_concurrent_tasks", cfg.Queue.MaxConcurrentTasks,
		"vision_model", cfg.LLM.Vision.Model,
		"script_model", cfg.LLM.Script.Model)

	return cfg, nil
}

// load reads textloom.yaml and overlays it on the built-in defaults.
func load(_ context.Context, configDir string) (*Config, error) {
	yamlCfg := &textloomYAMLConfig{}

	path := filepath.Join(configDir, "textloom.yaml")
	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		slog.Warn("textloom.yaml not found, using built-in defaults", "path", path)
	case err != nil:
		return nil, NewLoadError("textloom.yaml", err)
	default:
		expanded := ExpandEnv(data)
		if err := yaml.Unmarshal(expanded, yamlCfg); err != nil {
			return nil, NewLoadError("textloom.yaml", fmt.Errorf("%w: %v", ErrInvalidYAML, err))
		}
	}

	cfg := &Config{
		configDir:  configDir,
		Queue:      DefaultQueueConfig(),
		Pipeline:   DefaultPipelineConfig(),
		LLM:        DefaultLLMConfig(),
		Storage:    DefaultStorageConfig(),
		VideoMerge: DefaultVideoMergeConfig(),
		Broker:     DefaultBrokerConfig(),
		Retention:  DefaultRetentionConfig(),
	}

	// Merge user-provided sections into defaults (non-zero values override).
	sections := []struct {
		dst, src interface{}
	}{
		{cfg.Queue, yamlCfg.Queue},
		{cfg.Pipeline, yamlCfg.Pipeline},
		{cfg.Storage, yamlCfg.Storage},
		{cfg.VideoMerge, yamlCfg.VideoMerge},
		{cfg.Broker, yamlCfg.Broker},
		{cfg.Retention, yamlCfg.Retention},
	}
	for _, s := range sections {
		if isNilSection(s.src) {
			continue
		}
		if err := mergo.Merge(s.dst, s.src, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge config section: %w", err)
		}
	}

	if yamlCfg.LLM != nil {
		if yamlCfg.LLM.Vision != nil {
			if err := mergo.Merge(cfg.LLM.Vision, yamlCfg.LLM.Vision, mergo.WithOverride); err != nil {
				return nil, fmt.Errorf("failed to merge vision LLM config: %w", err)
			}
		}
		if yamlCfg.LLM.Script != nil {
			if err := mergo.Merge(cfg.LLM.Script, yamlCfg.LLM.Script, mergo.WithOverride); err != nil {
				return nil, fmt.Errorf("failed to merge script LLM config: %w", err)
			}
		}
	}

	return cfg, nil
}

func isNilSection(src interface{}) bool {
	switch v := src.(type) {
	case *QueueConfig:
		return v == nil
	case *PipelineConfig:
		return v == nil
	case *StorageConfig:
		return v == nil
	case *VideoMergeConfig:
		return v == nil
	case *BrokerConfig:
		return v == nil
	case *RetentionConfig:
		return v == nil
	default:
		return src == nil
	}
}

// validate performs range and presence checks on the resolved configuration.
func validate(cfg *Config) error {
	v := newValidator(cfg)
	return v.validateAll()
}
