package services

import (
	"context"
	"fmt"
	"time"

	"github.com/textloom/textloom/ent"
	"github.com/textloom/textloom/ent/materialanalysis"
	"github.com/textloom/textloom/pkg/models"
	"github.com/google/uuid"
)

// AnalysisService persists per-material AI analyses. (task_id, original_url)
// is the natural key, and a row that reached completed is sticky: later
// writes for the same key never downgrade it. That conflict rule is what
// makes duplicate pipeline deliveries harmless.
type AnalysisService struct {
	client *ent.Client
}

// NewAnalysisService creates a new AnalysisService
func NewAnalysisService(client *ent.Client) *AnalysisService {
	return &AnalysisService{client: client}
}

// SaveCompleted upserts a successful analysis result.
func (s *AnalysisService) SaveCompleted(ctx context.Context, taskID string, result *models.AnalysisResult) (*ent.MaterialAnalysis, error) {
	if taskID == "" {
		return nil, NewValidationError("task_id", "required")
	}
	if !result.Valid() {
		return nil, NewValidationError("result", "not a usable analysis result")
	}

	return s.upsert(ctx, taskID, result, materialanalysis.StatusCompleted, "")
}

// SaveFailed records a per-item analysis failure. If a completed row already
// exists for the same (task_id, original_url), it is left untouched.
func (s *AnalysisService) SaveFailed(ctx context.Context, taskID string, result *models.AnalysisResult, errorMessage string) (*ent.MaterialAnalysis, error) {
	if taskID == "" {
		return nil, NewValidationError("task_id", "required")
	}
	if result == nil || result.MediaItemID == "" {
		return nil, NewValidationError("media_item_id", "required")
	}

	return s.upsert(ctx, taskID, result, materialanalysis.StatusFailed, errorMessage)
}

// upsert serializes writes for one natural key under a row lock so the
// completed-wins rule holds across concurrent analyzers and re-runs.
func (s *AnalysisService) upsert(ctx context.Context, taskID string, result *models.AnalysisResult, status materialanalysis.Status, errorMessage string) (*ent.MaterialAnalysis, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	existing, err := tx.MaterialAnalysis.Query().
		Where(
			materialanalysis.TaskIDEQ(taskID),
			materialanalysis.OriginalURLEQ(result.OriginalURL),
		).
		ForUpdate().
		Only(writeCtx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to lock analysis: %w", err)
	}

	var row *ent.MaterialAnalysis
	switch {
	case existing == nil:
		builder := tx.MaterialAnalysis.Create().
			SetID(uuid.New().String()).
			SetTaskID(taskID).
			SetMediaItemID(result.MediaItemID).
			SetOriginalURL(result.OriginalURL).
			SetStatus(status)
		applyAnalysisFields(builder.Mutation(), result, errorMessage)
		row, err = builder.Save(writeCtx)
		if err != nil {
			return nil, fmt.Errorf("failed to create analysis: %w", err)
		}

	case existing.Status == materialanalysis.StatusCompleted && status != materialanalysis.StatusCompleted:
		// completed is sticky
		row = existing

	default:
		update := existing.Update().SetStatus(status)
		applyAnalysisFields(update.Mutation(), result, errorMessage)
		row, err = update.Save(writeCtx)
		if err != nil {
			return nil, fmt.Errorf("failed to update analysis: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit analysis: %w", err)
	}

	return row, nil
}

// applyAnalysisFields copies the optional result fields onto a create or
// update mutation.
func applyAnalysisFields(m *ent.MaterialAnalysisMutation, result *models.AnalysisResult, errorMessage string) {
	if result.AIDescription != "" {
		m.SetAiDescription(result.AIDescription)
	}
	if len(result.KeyObjects) > 0 {
		m.SetKeyObjects(result.KeyObjects)
	}
	if result.EmotionalTone != "" {
		m.SetEmotionalTone(result.EmotionalTone)
	}
	if result.VisualStyle != "" {
		m.SetVisualStyle(result.VisualStyle)
	}
	if result.QualityScore > 0 {
		m.SetQualityScore(result.QualityScore)
	}
	if result.QualityLevel != "" {
		m.SetQualityLevel(result.QualityLevel)
	}
	if len(result.Suggestions) > 0 {
		m.SetUsageSuggestions(result.Suggestions)
	}
	if len(result.KeyframeURLs) > 0 {
		m.SetKeyframeUrls(result.KeyframeURLs)
	}
	if result.FPS > 0 {
		m.SetFps(result.FPS)
	}
	if result.Width > 0 {
		m.SetWidth(result.Width)
	}
	if result.Height > 0 {
		m.SetHeight(result.Height)
	}
	if result.Duration > 0 {
		m.SetDuration(result.Duration)
	}
	if result.RawResponse != "" {
		m.SetRawResponse(result.RawResponse)
	}
	if errorMessage != "" {
		m.SetErrorMessage(errorMessage)
	}
}

// GetByURL fetches the analysis stored for one (task, url) pair.
func (s *AnalysisService) GetByURL(ctx context.Context, taskID, originalURL string) (*ent.MaterialAnalysis, error) {
	row, err := s.client.MaterialAnalysis.Query().
		Where(
			materialanalysis.TaskIDEQ(taskID),
			materialanalysis.OriginalURLEQ(originalURL),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get analysis: %w", err)
	}
	return row, nil
}

// ListCompletedByTask returns the usable analyses the script stage builds on.
func (s *AnalysisService) ListCompletedByTask(ctx context.Context, taskID string) ([]*ent.MaterialAnalysis, error) {
	rows, err := s.client.MaterialAnalysis.Query().
		Where(
			materialanalysis.TaskIDEQ(taskID),
			materialanalysis.StatusEQ(materialanalysis.StatusCompleted),
		).
		Order(ent.Asc(materialanalysis.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list completed analyses: %w", err)
	}
	return rows, nil
}

// Summarize tallies a task's analyses for the failure-rate gate.
func (s *AnalysisService) Summarize(ctx context.Context, taskID string) (models.AnalysisSummary, error) {
	rows, err := s.client.MaterialAnalysis.Query().
		Where(materialanalysis.TaskIDEQ(taskID)).
		Select(materialanalysis.FieldStatus).
		All(ctx)
	if err != nil {
		return models.AnalysisSummary{}, fmt.Errorf("failed to summarize analyses: %w", err)
	}

	summary := models.AnalysisSummary{Total: len(rows)}
	for _, r := range rows {
		switch r.Status {
		case materialanalysis.StatusCompleted:
			summary.Completed++
		case materialanalysis.StatusFailed:
			summary.Failed++
		}
	}
	return summary, nil
}
