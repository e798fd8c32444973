package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "textloom.yaml"), []byte(content), 0o644))
	return dir
}

func TestInitialize_Defaults(t *testing.T) {
	// Missing textloom.yaml falls back to built-in defaults.
	cfg, err := Initialize(context.Background(), t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Queue.WorkerCount)
	assert.Equal(t, 5, cfg.Queue.MaxConcurrentTasks)
	assert.Equal(t, 600*time.Second, cfg.Queue.SubtitleTimeout)
	assert.Equal(t, 5, cfg.Pipeline.MaxConcurrentDownloads)
	assert.Equal(t, 4, cfg.Pipeline.MaxConcurrentAnalysis)
	assert.Equal(t, 3, cfg.Pipeline.MaxConcurrentScripts)
	assert.Equal(t, 0.9, cfg.Pipeline.AnalysisFailureThreshold)
	assert.Equal(t, 8000, cfg.LLM.Script.MaxTokens)
	assert.Equal(t, "textloom:queue:pipeline", cfg.Broker.PipelineQueue)
	assert.Equal(t, 24*time.Hour, cfg.Retention.WorkspaceRetention)
}

func TestInitialize_UserOverrides(t *testing.T) {
	dir := writeConfigFile(t, `
queue:
  worker_count: 8
  merge_timeout: 10m
pipeline:
  max_concurrent_analysis: 2
llm:
  script:
    model: custom-model
`)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, 8, cfg.Queue.WorkerCount)
	assert.Equal(t, 10*time.Minute, cfg.Queue.MergeTimeout)
	// Unset values keep defaults.
	assert.Equal(t, 5, cfg.Queue.MaxConcurrentTasks)
	assert.Equal(t, 2, cfg.Pipeline.MaxConcurrentAnalysis)
	assert.Equal(t, "custom-model", cfg.LLM.Script.Model)
	assert.Equal(t, "gpt-4o", cfg.LLM.Vision.Model)
}

func TestInitialize_EnvExpansion(t *testing.T) {
	t.Setenv("TEST_MERGE_URL", "https://merge.internal")
	dir := writeConfigFile(t, `
video_merge:
  base_url: "{{.TEST_MERGE_URL}}"
`)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, "https://merge.internal", cfg.VideoMerge.BaseURL)
}

func TestInitialize_ValidationFailure(t *testing.T) {
	dir := writeConfigFile(t, `
pipeline:
  analysis_failure_threshold: 1.5
`)

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "analysis_failure_threshold")
}

func TestReconcileBatchSize(t *testing.T) {
	q := DefaultQueueConfig()
	assert.Equal(t, 10, q.ReconcileBatchSize())

	q.MaxConcurrentTasks = 25
	assert.Equal(t, 25, q.ReconcileBatchSize())
}
