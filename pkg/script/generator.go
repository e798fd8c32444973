package script

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/textloom/textloom/ent"
	"github.com/textloom/textloom/ent/scriptcontent"
	"github.com/textloom/textloom/pkg/config"
	"github.com/textloom/textloom/pkg/models"
)

// Sub-task progress checkpoints for this stage.
const (
	progressGenerating = 25
	progressScriptDone = 50
)

// TextModel is the slice of the LLM client the generator needs.
type TextModel interface {
	ChatText(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// ScriptStore persists script rows.
type ScriptStore interface {
	BeginGeneration(ctx context.Context, taskID, subTaskID, style string, personaID *string) (*ent.ScriptContent, error)
	CompleteGeneration(ctx context.Context, scriptID string, result *models.ScriptResult) (*ent.ScriptContent, error)
	FailGeneration(ctx context.Context, scriptID, errorMessage string) error
}

// SubTaskStore applies script outcomes to sub-task rows.
type SubTaskStore interface {
	MarkProcessing(ctx context.Context, subTaskID string, progress int) error
	SetScript(ctx context.Context, subTaskID, scriptID string, scriptData map[string]interface{}, progress int) error
	MarkFailed(ctx context.Context, subTaskID, errorMessage string) error
}

// TemplateSource resolves prompt fragments from the template catalog.
type TemplateSource interface {
	GetTemplate(ctx context.Context, templateType, templateStyle string) (string, error)
}

// Outcome is the per-sub-task result of the fan-out.
type Outcome struct {
	SubTaskID string
	ScriptID  string
	Result    *models.ScriptResult
	Err       error
}

// Generator runs the per-sub-task script fan-out with a bounded pool.
type Generator struct {
	model       TextModel
	scripts     ScriptStore
	subTasks    SubTaskStore
	templates   TemplateSource
	parallelism int
	maxSource   int
	logger      *slog.Logger
}

// NewGenerator builds a generator from the pipeline configuration.
func NewGenerator(cfg *config.PipelineConfig, model TextModel, scripts ScriptStore, subTasks SubTaskStore, templates TemplateSource, logger *slog.Logger) *Generator {
	parallelism := cfg.MaxConcurrentScripts
	if parallelism < 1 {
		parallelism = 1
	}
	return &Generator{
		model:       model,
		scripts:     scripts,
		subTasks:    subTasks,
		templates:   templates,
		parallelism: parallelism,
		maxSource:   cfg.MaxSourceChars,
		logger:      logger,
	}
}

// Request bundles the shared inputs of one task's script fan-out.
type Request struct {
	Task          *ent.Task
	SubTasks      []*ent.SubVideoTask
	SourceContent string
	Materials     []models.MaterialContext
	Persona       *models.PersonaInfo
}

// GenerateAll produces one script per sub-task. Sub-tasks run concurrently
// under the pool; each outcome is persisted and back-propagated before the
// call returns. The caller decides what a fully failed fan-out means.
func (g *Generator) GenerateAll(ctx context.Context, req Request) []Outcome {
	outcomes := make([]Outcome, len(req.SubTasks))
	sem := make(chan struct{}, g.parallelism)
	var wg sync.WaitGroup

	for i, st := range req.SubTasks {
		wg.Add(1)
		go func(i int, st *ent.SubVideoTask) {
			defer wg.Done()
			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				outcomes[i] = Outcome{SubTaskID: st.ID, Err: ctx.Err()}
				return
			}
			outcomes[i] = g.generateOne(ctx, req, st)
		}(i, st)
	}
	wg.Wait()

	return outcomes
}

// generateOne drives one sub-task: processing marker, script row, LLM call,
// normalization, persistence, back-propagation.
func (g *Generator) generateOne(ctx context.Context, req Request, st *ent.SubVideoTask) Outcome {
	out := Outcome{SubTaskID: st.ID}

	if err := g.subTasks.MarkProcessing(ctx, st.ID, progressGenerating); err != nil {
		out.Err = fmt.Errorf("failed to mark sub-task processing: %w", err)
		return out
	}

	row, err := g.scripts.BeginGeneration(ctx, req.Task.ID, st.ID, st.ScriptStyle, req.Task.PersonaID)
	if err != nil {
		out.Err = err
		return g.failSubTask(ctx, out)
	}
	out.ScriptID = row.ID

	// A resumed run that already completed this script is a no-op.
	if row.GenerationStatus == scriptcontent.GenerationStatusCompleted {
		g.logger.Info("Script already generated, skipping", "sub_task_id", st.ID, "script_id", row.ID)
		out.Result = resultFromRow(row)
		return out
	}

	result, err := g.generateScript(ctx, req, st)
	if err != nil {
		out.Err = err
		if failErr := g.scripts.FailGeneration(ctx, row.ID, err.Error()); failErr != nil {
			g.logger.Error("Failed to record script failure", "script_id", row.ID, "error", failErr)
		}
		return g.failSubTask(ctx, out)
	}

	if _, err := g.scripts.CompleteGeneration(ctx, row.ID, result); err != nil {
		out.Err = fmt.Errorf("failed to persist script: %w", err)
		return g.failSubTask(ctx, out)
	}

	if err := g.subTasks.SetScript(ctx, st.ID, row.ID, result.CondensedScript(), progressScriptDone); err != nil {
		out.Err = fmt.Errorf("failed to back-propagate script: %w", err)
		return g.failSubTask(ctx, out)
	}

	out.Result = result
	g.logger.Info("Generated script", "sub_task_id", st.ID, "script_id", row.ID,
		"scenes", len(result.Scenes), "estimated_duration", result.EstimatedDuration)
	return out
}

// generateScript assembles the prompt, calls the model, and normalizes the
// response against the declared material ids.
func (g *Generator) generateScript(ctx context.Context, req Request, st *ent.SubVideoTask) (*models.ScriptResult, error) {
	style := st.ScriptStyle

	systemRole, err := g.templates.GetTemplate(ctx, "system_role", style)
	if err != nil {
		return nil, fmt.Errorf("failed to load system_role template: %w", err)
	}
	coreTask, err := g.templates.GetTemplate(ctx, "core_task", style)
	if err != nil {
		return nil, fmt.Errorf("failed to load core_task template: %w", err)
	}
	methodology, err := g.templates.GetTemplate(ctx, "methodology", style)
	if err != nil {
		return nil, fmt.Errorf("failed to load methodology template: %w", err)
	}

	systemPrompt, userPrompt := BuildPrompt(PromptInputs{
		SystemRole:       systemRole,
		CoreTask:         coreTask,
		Methodology:      methodology,
		Topic:            req.Task.Title,
		UserRequirements: req.Task.Description,
		SourceContent:    req.SourceContent,
		MaxSourceChars:   g.maxSource,
		Materials:        req.Materials,
		Persona:          req.Persona,
		Style:            style,
	})

	response, err := g.model.ChatText(ctx, systemPrompt, userPrompt)
	if err != nil {
		return nil, fmt.Errorf("script model call: %w", err)
	}

	declaredIDs := make([]string, 0, len(req.Materials))
	for _, m := range req.Materials {
		declaredIDs = append(declaredIDs, m.MaterialID)
	}

	result, err := ParseResponse(response, style, declaredIDs)
	if err != nil {
		return nil, err
	}
	result.RawPrompt = systemPrompt + "\n\n" + userPrompt
	return result, nil
}

// failSubTask marks the sub-task failed and returns the outcome unchanged.
func (g *Generator) failSubTask(ctx context.Context, out Outcome) Outcome {
	g.logger.Warn("Script generation failed", "sub_task_id", out.SubTaskID, "error", out.Err)
	if err := g.subTasks.MarkFailed(ctx, out.SubTaskID, out.Err.Error()); err != nil {
		g.logger.Error("Failed to mark sub-task failed", "sub_task_id", out.SubTaskID, "error", err)
	}
	return out
}

// resultFromRow reconstructs a ScriptResult from a completed row for
// resumed runs.
func resultFromRow(row *ent.ScriptContent) *models.ScriptResult {
	result := &models.ScriptResult{
		Titles:            row.Titles,
		Description:       row.Description,
		Narration:         row.Narration,
		MaterialMapping:   row.MaterialMapping,
		Tags:              row.Tags,
		EstimatedDuration: row.EstimatedDuration,
		WordCount:         row.WordCount,
		MaterialCount:     row.MaterialCount,
	}
	if len(row.Titles) > 0 {
		result.Title = row.Titles[0]
	}
	for _, sc := range row.Scenes {
		scene := models.Scene{}
		if v, ok := sc["scene_id"].(float64); ok {
			scene.SceneID = int(v)
		}
		if v, ok := sc["timing"].(string); ok {
			scene.Timing = v
		}
		if v, ok := sc["narration"].(string); ok {
			scene.Narration = v
		}
		if v, ok := sc["description"].(string); ok {
			scene.Description = v
		}
		if v, ok := sc["material_id"].(string); ok && v != "" {
			scene.MaterialID = &v
		}
		result.Scenes = append(result.Scenes, scene)
	}
	return result
}
