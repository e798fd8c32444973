package services

import (
	"context"
	"fmt"
	"time"

	"github.com/textloom/textloom/ent"
	"github.com/textloom/textloom/ent/scriptcontent"
	"github.com/textloom/textloom/pkg/models"
	"github.com/google/uuid"
)

// ScriptService persists generated scripts. Each sub-task owns at most one
// ScriptContent row (unique on sub_task_id), created in processing state
// before the LLM call and finalized afterwards.
type ScriptService struct {
	client *ent.Client
}

// NewScriptService creates a new ScriptService
func NewScriptService(client *ent.Client) *ScriptService {
	return &ScriptService{client: client}
}

// BeginGeneration creates (or reclaims) the processing row for a sub-task.
// On re-runs the existing row is returned: if it already completed, the
// caller should skip regeneration.
func (s *ScriptService) BeginGeneration(ctx context.Context, taskID, subTaskID, style string, personaID *string) (*ent.ScriptContent, error) {
	if taskID == "" {
		return nil, NewValidationError("task_id", "required")
	}
	if subTaskID == "" {
		return nil, NewValidationError("sub_task_id", "required")
	}
	if style == "" {
		style = "professional"
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	builder := s.client.ScriptContent.Create().
		SetID(uuid.New().String()).
		SetTaskID(taskID).
		SetSubTaskID(subTaskID).
		SetStyle(style).
		SetGenerationStatus(scriptcontent.GenerationStatusProcessing)
	if personaID != nil {
		builder.SetPersonaID(*personaID)
	}

	row, err := builder.Save(writeCtx)
	if err == nil {
		return row, nil
	}
	if !ent.IsConstraintError(err) {
		return nil, fmt.Errorf("failed to create script row: %w", err)
	}

	existing, err := s.GetBySubTask(writeCtx, subTaskID)
	if err != nil {
		return nil, err
	}
	return existing, nil
}

// CompleteGeneration stores the normalized LLM output on the script row.
func (s *ScriptService) CompleteGeneration(ctx context.Context, scriptID string, result *models.ScriptResult) (*ent.ScriptContent, error) {
	if result == nil {
		return nil, NewValidationError("result", "required")
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	scenes := make([]map[string]interface{}, 0, len(result.Scenes))
	for _, sc := range result.Scenes {
		scene := map[string]interface{}{
			"scene_id":    sc.SceneID,
			"timing":      sc.Timing,
			"narration":   sc.Narration,
			"description": sc.Description,
		}
		if sc.MaterialID != nil {
			scene["material_id"] = *sc.MaterialID
		}
		scenes = append(scenes, scene)
	}

	update := s.client.ScriptContent.UpdateOneID(scriptID).
		SetGenerationStatus(scriptcontent.GenerationStatusCompleted).
		SetTitles(result.Titles).
		SetNarration(result.Narration).
		SetScenes(scenes).
		SetEstimatedDuration(result.EstimatedDuration).
		SetWordCount(result.WordCount).
		SetMaterialCount(result.MaterialCount)

	if result.Description != "" {
		update.SetDescription(result.Description)
	}
	if len(result.MaterialMapping) > 0 {
		update.SetMaterialMapping(result.MaterialMapping)
	}
	if len(result.Tags) > 0 {
		update.SetTags(result.Tags)
	}
	if result.RawPrompt != "" {
		update.SetRawPrompt(result.RawPrompt)
	}
	if result.RawResponse != "" {
		update.SetRawResponse(result.RawResponse)
	}

	row, err := update.Save(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to complete script: %w", err)
	}
	return row, nil
}

// FailGeneration marks the script row failed with the generation error.
func (s *ScriptService) FailGeneration(ctx context.Context, scriptID, errorMessage string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.ScriptContent.UpdateOneID(scriptID).
		SetGenerationStatus(scriptcontent.GenerationStatusFailed).
		SetErrorMessage(errorMessage).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to fail script: %w", err)
	}
	return nil
}

// GetBySubTask fetches the script row owned by one sub-task.
func (s *ScriptService) GetBySubTask(ctx context.Context, subTaskID string) (*ent.ScriptContent, error) {
	row, err := s.client.ScriptContent.Query().
		Where(scriptcontent.SubTaskIDEQ(subTaskID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get script: %w", err)
	}
	return row, nil
}

// ListByTask returns all script rows of a task.
func (s *ScriptService) ListByTask(ctx context.Context, taskID string) ([]*ent.ScriptContent, error) {
	rows, err := s.client.ScriptContent.Query().
		Where(scriptcontent.TaskIDEQ(taskID)).
		Order(ent.Asc(scriptcontent.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list scripts: %w", err)
	}
	return rows, nil
}
