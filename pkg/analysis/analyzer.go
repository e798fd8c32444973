package analysis

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/textloom/textloom/ent"
	"github.com/textloom/textloom/ent/mediaitem"
	"github.com/textloom/textloom/pkg/config"
	"github.com/textloom/textloom/pkg/material"
	"github.com/textloom/textloom/pkg/models"
	"github.com/textloom/textloom/pkg/storage"
)

// VisionModel is the slice of the LLM client the analyzer needs.
type VisionModel interface {
	ChatVision(ctx context.Context, prompt string, imageURLs []string) (string, error)
}

// FrameStore uploads extracted keyframes.
type FrameStore interface {
	UploadFile(ctx context.Context, key, localPath, contentType string) (string, error)
}

// ResultStore persists analysis rows with the completed-wins conflict rule.
type ResultStore interface {
	SaveCompleted(ctx context.Context, taskID string, result *models.AnalysisResult) (*ent.MaterialAnalysis, error)
	SaveFailed(ctx context.Context, taskID string, result *models.AnalysisResult, errorMessage string) (*ent.MaterialAnalysis, error)
}

// Analyzer runs the stage-2 vision analysis fan-out.
type Analyzer struct {
	vision        VisionModel
	frames        FrameStore
	results       ResultStore
	parallelism   int
	keyframeCount int
	cfg           *config.PipelineConfig
	logger        *slog.Logger
}

// NewAnalyzer builds an analyzer from the pipeline configuration.
func NewAnalyzer(cfg *config.PipelineConfig, vision VisionModel, frames FrameStore, results ResultStore, logger *slog.Logger) *Analyzer {
	parallelism := cfg.MaxConcurrentAnalysis
	if parallelism < 1 {
		parallelism = 1
	}
	return &Analyzer{
		vision:        vision,
		frames:        frames,
		results:       results,
		parallelism:   parallelism,
		keyframeCount: cfg.KeyframeCount,
		cfg:           cfg,
		logger:        logger,
	}
}

// AnalyzeMaterials analyzes every item with a fixed worker pool. Per-item
// failures are persisted as failed rows; the summary lets the orchestrator
// apply its failure-rate gate. Results are keyed by media item id.
func (a *Analyzer) AnalyzeMaterials(ctx context.Context, taskID string, items []*ent.MediaItem) (map[string]*models.AnalysisResult, models.AnalysisSummary) {
	results := make([]*models.AnalysisResult, len(items))
	sem := make(chan struct{}, a.parallelism)
	var wg sync.WaitGroup

	for i, item := range items {
		wg.Add(1)
		go func(i int, item *ent.MediaItem) {
			defer wg.Done()
			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				results[i] = &models.AnalysisResult{
					MediaItemID: item.ID,
					OriginalURL: item.OriginalURL,
					Err:         ctx.Err(),
				}
				return
			}
			results[i] = a.analyzeOne(ctx, taskID, item)
		}(i, item)
	}
	wg.Wait()

	byID := make(map[string]*models.AnalysisResult, len(results))
	summary := models.AnalysisSummary{Total: len(results)}
	for _, r := range results {
		byID[r.MediaItemID] = r
		if r.Valid() {
			summary.Completed++
		} else {
			summary.Failed++
		}
	}

	a.logger.Info("Material analysis finished",
		"task_id", taskID,
		"total", summary.Total,
		"completed", summary.Completed,
		"failed", summary.Failed)

	return byID, summary
}

// analyzeOne analyzes a single material and persists the outcome.
func (a *Analyzer) analyzeOne(ctx context.Context, taskID string, item *ent.MediaItem) *models.AnalysisResult {
	result := &models.AnalysisResult{
		MediaItemID: item.ID,
		OriginalURL: item.OriginalURL,
	}

	prompt := BuildPrompt(item)

	var imageURL string
	switch item.MediaType {
	case mediaitem.MediaTypeImage:
		imageURL = item.CloudURL
		result.Width = item.Width
		result.Height = item.Height

	case mediaitem.MediaTypeVideo:
		keyframes, err := a.extractAndUploadKeyframes(ctx, taskID, item)
		if err != nil {
			return a.fail(ctx, taskID, result, fmt.Errorf("keyframe extraction: %w", err))
		}
		result.KeyframeURLs = keyframes
		// The first keyframe stands in for the video.
		imageURL = keyframes[0]
		result.Width = item.Width
		result.Height = item.Height
		result.Duration = item.Duration

	default:
		return a.fail(ctx, taskID, result, fmt.Errorf("media type %s is not analyzable", item.MediaType))
	}

	if imageURL == "" {
		return a.fail(ctx, taskID, result, fmt.Errorf("material has no cloud URL"))
	}

	response, err := a.vision.ChatVision(ctx, prompt, []string{imageURL})
	if err != nil {
		return a.fail(ctx, taskID, result, fmt.Errorf("vision call: %w", err))
	}
	result.RawResponse = response

	parsed, err := ParseResponse(response)
	if err != nil {
		return a.fail(ctx, taskID, result, err)
	}

	result.AIDescription = parsed.Description
	result.KeyObjects = parsed.KeyObjects
	result.EmotionalTone = parsed.EmotionalTone
	result.VisualStyle = parsed.VisualStyle
	result.QualityScore = parsed.QualityScore
	result.QualityLevel = parsed.QualityLevel
	result.Suggestions = parsed.Suggestions

	if _, err := a.results.SaveCompleted(ctx, taskID, result); err != nil {
		a.logger.Error("Failed to persist analysis", "task_id", taskID, "media_item_id", item.ID, "error", err)
		result.Err = err
	}
	return result
}

// fail records a per-item failure and returns the annotated result.
func (a *Analyzer) fail(ctx context.Context, taskID string, result *models.AnalysisResult, cause error) *models.AnalysisResult {
	result.Err = cause
	a.logger.Warn("Material analysis failed",
		"task_id", taskID,
		"media_item_id", result.MediaItemID,
		"error", cause)

	if _, err := a.results.SaveFailed(ctx, taskID, result, cause.Error()); err != nil {
		a.logger.Error("Failed to persist analysis failure", "task_id", taskID, "media_item_id", result.MediaItemID, "error", err)
	}
	return result
}

// extractAndUploadKeyframes pulls evenly spaced frames from the video and
// uploads them, returning their public URLs. The video is read from its
// local workspace copy when still present, otherwise from the cloud URL.
func (a *Analyzer) extractAndUploadKeyframes(ctx context.Context, taskID string, item *ent.MediaItem) ([]string, error) {
	source := item.LocalPath
	if source == "" || !fileExists(source) {
		source = item.CloudURL
	}
	if source == "" {
		return nil, fmt.Errorf("no readable source for video %s", item.ID)
	}

	dir, err := os.MkdirTemp("", "keyframes_"+item.ID+"_")
	if err != nil {
		return nil, fmt.Errorf("failed to create keyframe dir: %w", err)
	}
	defer os.RemoveAll(dir)

	frames, err := material.ExtractKeyframes(ctx, source, dir, a.keyframeCount, item.Duration, a.cfg.ProbeTimeout)
	if err != nil && len(frames) == 0 {
		return nil, err
	}

	var urls []string
	for i, frame := range frames {
		key := storage.KeyframeKey(taskID, item.ID, i)
		url, err := a.frames.UploadFile(ctx, key, frame, "image/jpeg")
		if err != nil {
			return nil, fmt.Errorf("failed to upload keyframe %d: %w", i, err)
		}
		urls = append(urls, url)
	}
	if len(urls) == 0 {
		return nil, fmt.Errorf("no keyframes extracted from %s", filepath.Base(source))
	}

	return urls, nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
