package config

import "time"

// PipelineConfig contains per-stage tuning for the task pipeline.
// Pool sizes are deliberately low: throughput is bounded by upstream AI and
// video services, not by local CPU.
type PipelineConfig struct {
	// MaxConcurrentDownloads bounds the stage-1 media fetcher pool.
	MaxConcurrentDownloads int `yaml:"max_concurrent_downloads"`

	// MaxConcurrentAnalysis bounds the stage-2 analyzer pool.
	MaxConcurrentAnalysis int `yaml:"max_concurrent_analysis"`

	// MaxConcurrentScripts bounds the stage-4 script generator pool per task.
	MaxConcurrentScripts int `yaml:"max_concurrent_scripts"`

	// MaxFileSize is the download size limit for a single media file, bytes.
	MaxFileSize int64 `yaml:"max_file_size"`

	// MaxSourceChars truncates the manifest text fed into script prompts.
	MaxSourceChars int `yaml:"max_source_chars"`

	// RetryAttempts is the attempt budget for external AI calls.
	RetryAttempts int `yaml:"retry_attempts"`

	// AnalysisFailureThreshold aborts the task when the stage-2 failure rate
	// strictly exceeds it.
	AnalysisFailureThreshold float64 `yaml:"analysis_failure_threshold"`

	// KeyframeCount is the max keyframes extracted per video for analysis.
	KeyframeCount int `yaml:"keyframe_count"`

	// ProbeTimeout bounds a single ffprobe/ffmpeg invocation.
	ProbeTimeout time.Duration `yaml:"probe_timeout"`

	// WorkspaceRoot is the base directory for per-task workspaces.
	WorkspaceRoot string `yaml:"workspace_root"`
}

// DefaultPipelineConfig returns the built-in pipeline defaults.
func DefaultPipelineConfig() *PipelineConfig {
	return &PipelineConfig{
		MaxConcurrentDownloads:   5,
		MaxConcurrentAnalysis:    4,
		MaxConcurrentScripts:     3,
		MaxFileSize:              200 << 20,
		MaxSourceChars:           20000,
		RetryAttempts:            3,
		AnalysisFailureThreshold: 0.9,
		KeyframeCount:            3,
		ProbeTimeout:             15 * time.Second,
		WorkspaceRoot:            "./workspace",
	}
}
