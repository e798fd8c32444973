// Package pipeline drives the five stages of one text-to-video task:
// material acquisition, vision analysis, sub-task fan-out, script
// generation, and merge submission. Everything after submission converges
// asynchronously through the reconciler.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/textloom/textloom/ent"
	"github.com/textloom/textloom/ent/mediaitem"
	"github.com/textloom/textloom/ent/task"
	"github.com/textloom/textloom/pkg/config"
	"github.com/textloom/textloom/pkg/material"
	"github.com/textloom/textloom/pkg/merge"
	"github.com/textloom/textloom/pkg/models"
	"github.com/textloom/textloom/pkg/script"
)

// Stage-level failures. The worker maps these onto the task's terminal state.
var (
	// ErrInvalidInput marks a manifest with no usable text content.
	ErrInvalidInput = errors.New("source manifest has no effective content")

	// ErrCancelled is returned when a cancellation request is observed at a
	// stage boundary.
	ErrCancelled = errors.New("task cancelled")

	// ErrAnalysisFailureRate aborts a task whose material analysis failed
	// almost entirely.
	ErrAnalysisFailureRate = errors.New("material analysis failure rate exceeded")

	// ErrAllScriptsFailed aborts a task with zero usable scripts.
	ErrAllScriptsFailed = errors.New("all script generations failed")

	// ErrAllSubmissionsFailed aborts a task when no sub-task reached the
	// merge service.
	ErrAllSubmissionsFailed = errors.New("all merge submissions failed")
)

// Parent-task progress checkpoints after each stage. Past scripts the parent
// moves only through the reconciler's aggregate formula; submitted sub-tasks
// sit at subTaskSubmitted until their merge settles.
const (
	progressMaterials = 25
	progressAnalysis  = 50
	progressSubTasks  = 55
	progressScripts   = 75

	subTaskSubmitted = 80
)

// TaskStore is the parent-task surface the executor drives.
type TaskStore interface {
	GetTask(ctx context.Context, taskID string, withEdges bool) (*ent.Task, error)
	AdvanceStage(ctx context.Context, taskID string, stage task.CurrentStage) error
	UpdateProgress(ctx context.Context, taskID string, proposed int) error
	IsCancelled(ctx context.Context, taskID string) (bool, error)
}

// SubTaskStore is the sub-task surface the executor drives.
type SubTaskStore interface {
	CreateForTask(ctx context.Context, taskID string, count int, scriptStyle string) ([]*ent.SubVideoTask, error)
	SetMergeSubmission(ctx context.Context, subTaskID, courseMediaID string, progress int) error
	MarkFailed(ctx context.Context, subTaskID, errorMessage string) error
}

// PersonaSource resolves the optional narrator persona.
type PersonaSource interface {
	GetPersonaInfo(ctx context.Context, personaID *string) (*models.PersonaInfo, error)
}

// MaterialStage runs stage 1.
type MaterialStage interface {
	ProcessMaterials(ctx context.Context, taskID, sourceFile, workspaceDir string) (*material.Result, error)
}

// AnalysisStage runs stage 2.
type AnalysisStage interface {
	AnalyzeMaterials(ctx context.Context, taskID string, items []*ent.MediaItem) (map[string]*models.AnalysisResult, models.AnalysisSummary)
}

// ScriptStage runs stage 4.
type ScriptStage interface {
	GenerateAll(ctx context.Context, req script.Request) []script.Outcome
}

// MergeSubmitter sends stage-5 submissions to the merge service.
type MergeSubmitter interface {
	Submit(ctx context.Context, sub models.MergeSubmission) (string, error)
}

// Executor runs one task end to end. A task that crashes mid-run can be
// re-executed from the top: every stage's writes are idempotent on natural
// keys, so completed work is recognized and skipped.
type Executor struct {
	tasks     TaskStore
	subTasks  SubTaskStore
	personas  PersonaSource
	materials MaterialStage
	analyzer  AnalysisStage
	generator ScriptStage
	merger    MergeSubmitter

	failureThreshold float64
	logger           *slog.Logger
}

// NewExecutor wires the five stages together.
func NewExecutor(cfg *config.PipelineConfig, tasks TaskStore, subTasks SubTaskStore, personas PersonaSource,
	materials MaterialStage, analyzer AnalysisStage, generator ScriptStage, merger MergeSubmitter,
	logger *slog.Logger) *Executor {
	return &Executor{
		tasks:            tasks,
		subTasks:         subTasks,
		personas:         personas,
		materials:        materials,
		analyzer:         analyzer,
		generator:        generator,
		merger:           merger,
		failureThreshold: cfg.AnalysisFailureThreshold,
		logger:           logger,
	}
}

// RunTask executes stages 1-5 for one claimed task.
func (e *Executor) RunTask(ctx context.Context, job models.PipelineJob) (*models.TaskResult, error) {
	t, err := e.tasks.GetTask(ctx, job.TaskID, false)
	if err != nil {
		return nil, fmt.Errorf("failed to load task: %w", err)
	}

	logger := e.logger.With("task_id", t.ID)
	result := &models.TaskResult{TaskID: t.ID}

	// Stage 1: material acquisition.
	if err := e.checkCancelled(ctx, t.ID); err != nil {
		return nil, err
	}
	matResult, err := e.materials.ProcessMaterials(ctx, t.ID, t.SourceFile, t.WorkspaceDir)
	if err != nil {
		if errors.Is(err, material.ErrNoEffectiveContent) {
			return nil, fmt.Errorf("%w: %s", ErrInvalidInput, t.SourceFile)
		}
		return nil, fmt.Errorf("material stage: %w", err)
	}
	result.MediaCount = len(matResult.Items)
	logger.Info("Materials acquired", "count", result.MediaCount)

	if err := e.tasks.UpdateProgress(ctx, t.ID, progressMaterials); err != nil {
		return nil, err
	}
	if err := e.tasks.AdvanceStage(ctx, t.ID, task.CurrentStageMaterialAnalysis); err != nil {
		return nil, err
	}

	// Stage 2: vision analysis of the visual materials.
	if err := e.checkCancelled(ctx, t.ID); err != nil {
		return nil, err
	}
	visual := visualItems(matResult.Items)
	analyses, summary := e.analyzer.AnalyzeMaterials(ctx, t.ID, visual)
	if summary.FailureRate() > e.failureThreshold {
		return nil, fmt.Errorf("%w: %d of %d failed", ErrAnalysisFailureRate, summary.Failed, summary.Total)
	}
	result.AnalyzedCount = summary.Completed

	if err := e.tasks.UpdateProgress(ctx, t.ID, progressAnalysis); err != nil {
		return nil, err
	}
	if err := e.tasks.AdvanceStage(ctx, t.ID, task.CurrentStageSubtaskCreation); err != nil {
		return nil, err
	}

	// Stage 3: sub-task fan-out. Deterministic ids make this re-runnable.
	subTasks, err := e.subTasks.CreateForTask(ctx, t.ID, t.SubVideoCount, t.ScriptStyle)
	if err != nil {
		return nil, fmt.Errorf("failed to create sub-tasks: %w", err)
	}
	if err := e.tasks.UpdateProgress(ctx, t.ID, progressSubTasks); err != nil {
		return nil, err
	}
	if err := e.tasks.AdvanceStage(ctx, t.ID, task.CurrentStageScriptGeneration); err != nil {
		return nil, err
	}

	// Stage 4: script generation.
	if err := e.checkCancelled(ctx, t.ID); err != nil {
		return nil, err
	}
	persona, err := e.personas.GetPersonaInfo(ctx, t.PersonaID)
	if err != nil {
		// A missing persona degrades the prompt, not the task.
		logger.Warn("Persona lookup failed", "error", err)
	}

	outcomes := e.generator.GenerateAll(ctx, script.Request{
		Task:          t,
		SubTasks:      subTasks,
		SourceContent: matResult.Content,
		Materials:     materialContexts(visual, analyses),
		Persona:       persona,
	})

	var succeeded []script.Outcome
	for _, out := range outcomes {
		if out.Err == nil && out.Result != nil {
			succeeded = append(succeeded, out)
		}
	}
	result.ScriptCount = len(succeeded)
	if len(succeeded) == 0 {
		return nil, ErrAllScriptsFailed
	}

	if err := e.tasks.UpdateProgress(ctx, t.ID, progressScripts); err != nil {
		return nil, err
	}
	if err := e.tasks.AdvanceStage(ctx, t.ID, task.CurrentStageVideoGeneration); err != nil {
		return nil, err
	}

	// Stage 5: merge submission. The reconciler takes over from here.
	if err := e.checkCancelled(ctx, t.ID); err != nil {
		return nil, err
	}
	result.SubmittedCount = e.submitMerges(ctx, t, subTasks, succeeded, visual)
	if result.SubmittedCount == 0 {
		return nil, ErrAllSubmissionsFailed
	}
	logger.Info("Task handed off to reconciler",
		"media", result.MediaCount,
		"analyzed", result.AnalyzedCount,
		"scripts", result.ScriptCount,
		"submitted", result.SubmittedCount)
	return result, nil
}

// submitMerges sends one merge job per scripted sub-task. Sub-tasks that
// already hold a merge id (resumed runs) count as submitted without a new
// call; per-sub-task submission failures mark only that sub-task failed.
func (e *Executor) submitMerges(ctx context.Context, t *ent.Task, subTasks []*ent.SubVideoTask,
	outcomes []script.Outcome, visual []*ent.MediaItem) int {
	byID := make(map[string]*ent.SubVideoTask, len(subTasks))
	for _, st := range subTasks {
		byID[st.ID] = st
	}

	urls := make(map[string]string, len(visual))
	for _, item := range visual {
		urls[item.ID] = item.CloudURL
	}

	submitted := 0
	for _, out := range outcomes {
		st := byID[out.SubTaskID]
		if st == nil {
			continue
		}
		if st.CourseMediaID != nil {
			submitted++
			continue
		}

		sub := merge.BuildSubmission(t.ID, st.ID, out.Result, urls)
		courseMediaID, err := e.merger.Submit(ctx, sub)
		if err != nil {
			e.logger.Error("Merge submission failed", "task_id", t.ID, "sub_task_id", st.ID, "error", err)
			if failErr := e.subTasks.MarkFailed(ctx, st.ID, fmt.Sprintf("merge submission: %v", err)); failErr != nil {
				e.logger.Error("Failed to mark sub-task failed", "sub_task_id", st.ID, "error", failErr)
			}
			continue
		}

		if err := e.subTasks.SetMergeSubmission(ctx, st.ID, courseMediaID, subTaskSubmitted); err != nil {
			e.logger.Error("Failed to record merge submission", "sub_task_id", st.ID, "error", err)
			continue
		}
		submitted++
	}
	return submitted
}

// checkCancelled enforces cancellation at stage boundaries.
func (e *Executor) checkCancelled(ctx context.Context, taskID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	cancelled, err := e.tasks.IsCancelled(ctx, taskID)
	if err != nil {
		return fmt.Errorf("failed to check cancellation: %w", err)
	}
	if cancelled {
		return ErrCancelled
	}
	return nil
}

// visualItems filters the analyzable materials: images and videos.
func visualItems(items []*ent.MediaItem) []*ent.MediaItem {
	var out []*ent.MediaItem
	for _, item := range items {
		if item.MediaType == mediaitem.MediaTypeImage || item.MediaType == mediaitem.MediaTypeVideo {
			out = append(out, item)
		}
	}
	return out
}

// materialContexts builds the script-prompt material block: one entry per
// visual item, described by its analysis when one succeeded and by its
// manifest caption otherwise.
func materialContexts(items []*ent.MediaItem, analyses map[string]*models.AnalysisResult) []models.MaterialContext {
	contexts := make([]models.MaterialContext, 0, len(items))
	for _, item := range items {
		mc := models.MaterialContext{
			MaterialID: item.ID,
			MediaType:  models.MediaType(item.MediaType),
			URL:        item.CloudURL,
			Duration:   item.Duration,
		}
		if r := analyses[item.ID]; r.Valid() {
			mc.Description = r.AIDescription
		} else if item.Caption != "" {
			mc.Description = item.Caption
		} else {
			mc.Description = item.ContextBefore
		}
		contexts = append(contexts, mc)
	}
	return contexts
}
