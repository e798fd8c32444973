package merge

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/textloom/textloom/ent"
	"github.com/textloom/textloom/ent/subvideotask"
	"github.com/textloom/textloom/ent/task"
	"github.com/textloom/textloom/pkg/config"
	"github.com/textloom/textloom/pkg/models"
	"github.com/textloom/textloom/pkg/services"
)

// Parent progress model while sub-tasks converge: the pipeline leaves the
// task at 75, scripts and finished videos move it toward the 95 ceiling.
const (
	progressBase         = 55
	progressScriptWeight = 20
	progressVideoWeight  = 25
	progressCeiling      = 95
)

// SubTaskStore is the sub-task surface the reconciler converges.
type SubTaskStore interface {
	ListReconcilable(ctx context.Context, limit int) ([]*ent.SubVideoTask, error)
	ListByTask(ctx context.Context, taskID string) ([]*ent.SubVideoTask, error)
	MarkCompleted(ctx context.Context, subTaskID, videoURL, thumbnailURL string, duration float64) error
	MarkCompletedWithNote(ctx context.Context, subTaskID, videoURL, thumbnailURL string, duration float64, note string) error
	MarkFailed(ctx context.Context, subTaskID, errorMessage string) error
	MarkProcessingSubtitles(ctx context.Context, subTaskID, videoURL, thumbnailURL string, duration float64) error
}

// TaskStore is the parent-task surface the reconciler aggregates into.
type TaskStore interface {
	GetTask(ctx context.Context, taskID string, withEdges bool) (*ent.Task, error)
	MarkTerminal(ctx context.Context, taskID string, status task.Status, errorMessage string) error
	UpdateProgress(ctx context.Context, taskID string, proposed int) error
	ForceProgress(ctx context.Context, taskID string, value int) error
	UpdateAggregates(ctx context.Context, taskID string, completedCount int, results []models.VideoResult) error
}

// StatusSource answers merge-service status queries.
type StatusSource interface {
	QueryStatus(ctx context.Context, courseMediaID string) (*models.MergeStatus, error)
	SubtitlesEnabled() bool
}

// Notifier hands completed merges to the subtitle post-processor.
type Notifier interface {
	EnqueueMaintenance(ctx context.Context, job any) error
}

// Reconciler converges sub-tasks submitted to the merge service and keeps
// each parent task's status, progress, and aggregates in step. It runs on a
// timer and is safe to run concurrently on multiple replicas: every write it
// issues is idempotent or guarded by the store's terminal protections.
type Reconciler struct {
	subTasks SubTaskStore
	tasks    TaskStore
	status   StatusSource
	notifier Notifier

	batchSize       int
	mergeTimeout    time.Duration
	subtitleTimeout time.Duration
	logger          *slog.Logger
}

// NewReconciler builds a reconciler from the queue configuration.
func NewReconciler(cfg *config.QueueConfig, subTasks SubTaskStore, tasks TaskStore, status StatusSource, notifier Notifier, logger *slog.Logger) *Reconciler {
	return &Reconciler{
		subTasks:        subTasks,
		tasks:           tasks,
		status:          status,
		notifier:        notifier,
		batchSize:       cfg.ReconcileBatchSize(),
		mergeTimeout:    cfg.MergeTimeout,
		subtitleTimeout: cfg.SubtitleTimeout,
		logger:          logger,
	}
}

// Run ticks the reconciler until the context is cancelled.
func (r *Reconciler) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := r.Reconcile(ctx); err != nil {
				r.logger.Error("Reconcile tick failed", "error", err)
			}
		}
	}
}

// Reconcile performs one tick: query every reconcilable sub-task against the
// merge service, apply the outcome, then refresh each touched parent.
func (r *Reconciler) Reconcile(ctx context.Context) error {
	batch, err := r.subTasks.ListReconcilable(ctx, r.batchSize)
	if err != nil {
		return fmt.Errorf("failed to load reconcilable sub-tasks: %w", err)
	}
	if len(batch) == 0 {
		return nil
	}

	touched := map[string]bool{}
	for _, st := range batch {
		if err := ctx.Err(); err != nil {
			return err
		}
		if r.reconcileSubTask(ctx, st) {
			touched[st.TaskID] = true
		}
	}

	for taskID := range touched {
		if err := r.ReconcileParent(ctx, taskID); err != nil {
			r.logger.Error("Failed to reconcile parent task", "task_id", taskID, "error", err)
		}
	}
	return nil
}

// reconcileSubTask converges one sub-task and reports whether it changed.
func (r *Reconciler) reconcileSubTask(ctx context.Context, st *ent.SubVideoTask) bool {
	age := time.Since(st.UpdatedAt)

	// Subtitles are best effort: a stuck post-processor never holds the
	// merged video hostage.
	if st.Status == subvideotask.StatusProcessingSubtitles {
		if age > r.subtitleTimeout {
			r.logger.Warn("Subtitle processing timed out, completing without subtitles",
				"sub_task_id", st.ID, "age", age)
			if err := r.subTasks.MarkCompletedWithNote(ctx, st.ID, st.VideoURL, st.ThumbnailURL, st.Duration,
				"subtitle processing timed out, completed without subtitles"); err != nil {
				r.logger.Error("Failed to complete sub-task after subtitle timeout", "sub_task_id", st.ID, "error", err)
				return false
			}
			return true
		}
		return false
	}

	if age > r.mergeTimeout {
		r.logger.Warn("Merge timed out", "sub_task_id", st.ID, "course_media_id", *st.CourseMediaID, "age", age)
		if err := r.subTasks.MarkFailed(ctx, st.ID, "video generation timeout"); err != nil {
			r.logger.Error("Failed to fail timed-out sub-task", "sub_task_id", st.ID, "error", err)
			return false
		}
		return true
	}

	status, err := r.status.QueryStatus(ctx, *st.CourseMediaID)
	if err != nil {
		// Transient by assumption; the next tick retries.
		r.logger.Warn("Merge status query failed", "sub_task_id", st.ID,
			"course_media_id", *st.CourseMediaID, "error", err)
		return false
	}

	switch status.Status {
	case models.MergeStatusSucceeded:
		return r.handleMergeSuccess(ctx, st, status)
	case models.MergeStatusFailed:
		reason := "video merge failed"
		if len(status.FailureReasons) > 0 {
			reason = strings.Join(status.FailureReasons, "; ")
		}
		if err := r.subTasks.MarkFailed(ctx, st.ID, reason); err != nil {
			r.logger.Error("Failed to fail merged sub-task", "sub_task_id", st.ID, "error", err)
			return false
		}
		return true
	default:
		// Still rendering.
		return false
	}
}

// handleMergeSuccess finishes a merged sub-task, routing it through the
// subtitle post-processor when enabled.
func (r *Reconciler) handleMergeSuccess(ctx context.Context, st *ent.SubVideoTask, status *models.MergeStatus) bool {
	if !r.status.SubtitlesEnabled() {
		if err := r.subTasks.MarkCompleted(ctx, st.ID, status.MergeVideo, status.SnapshotURL, status.Duration); err != nil {
			r.logger.Error("Failed to complete merged sub-task", "sub_task_id", st.ID, "error", err)
			return false
		}
		return true
	}

	if err := r.subTasks.MarkProcessingSubtitles(ctx, st.ID, status.MergeVideo, status.SnapshotURL, status.Duration); err != nil {
		r.logger.Error("Failed to park sub-task for subtitles", "sub_task_id", st.ID, "error", err)
		return false
	}

	job := models.SubtitleJob{
		TaskID:       st.TaskID,
		SubTaskID:    st.ID,
		VideoURL:     status.MergeVideo,
		SubtitlesURL: status.SubtitlesURL,
		ThumbnailURL: status.SnapshotURL,
		Duration:     status.Duration,
	}
	if err := r.notifier.EnqueueMaintenance(ctx, job); err != nil {
		// The video exists; losing subtitles beats losing the sub-task.
		r.logger.Warn("Subtitle handoff failed, completing without subtitles",
			"sub_task_id", st.ID, "error", err)
		if err := r.subTasks.MarkCompletedWithNote(ctx, st.ID, status.MergeVideo, status.SnapshotURL, status.Duration,
			"subtitle handoff failed, completed without subtitles"); err != nil {
			r.logger.Error("Failed to complete sub-task after subtitle handoff failure", "sub_task_id", st.ID, "error", err)
			return false
		}
	}
	return true
}

// ReconcileParent recomputes one parent task from its sub-tasks: terminal
// status once every sub-task settled, progress and aggregates otherwise.
func (r *Reconciler) ReconcileParent(ctx context.Context, taskID string) error {
	parent, err := r.tasks.GetTask(ctx, taskID, false)
	if err != nil {
		return err
	}
	if taskTerminal(parent.Status) {
		return nil
	}

	subTasks, err := r.subTasks.ListByTask(ctx, taskID)
	if err != nil {
		return err
	}
	if len(subTasks) == 0 {
		return nil
	}

	var completed, failed, scripted int
	results := make([]models.VideoResult, 0, len(subTasks))
	var firstError string
	for _, st := range subTasks {
		if st.ScriptID != nil {
			scripted++
		}
		switch st.Status {
		case subvideotask.StatusCompleted:
			completed++
		case subvideotask.StatusFailed:
			failed++
			if firstError == "" && st.ErrorMessage != nil {
				firstError = *st.ErrorMessage
			}
		}
		results = append(results, videoResult(st))
	}

	if err := r.tasks.UpdateAggregates(ctx, taskID, completed, results); err != nil {
		return err
	}

	total := len(subTasks)
	if completed+failed == total {
		return r.finishParent(ctx, taskID, completed, total, firstError)
	}

	progress := interimProgress(scripted, completed, total)
	if parent.Progress > progress && parent.Progress >= 100 {
		// A stale 100 from a crashed run with unfinished sub-tasks is the one
		// sanctioned downward rewrite.
		r.logger.Warn("Rewriting stale task progress", "task_id", taskID,
			"stored", parent.Progress, "recomputed", progress)
		return r.tasks.ForceProgress(ctx, taskID, progress)
	}
	return r.tasks.UpdateProgress(ctx, taskID, progress)
}

// finishParent applies the terminal status derived from sub-task outcomes.
func (r *Reconciler) finishParent(ctx context.Context, taskID string, completed, total int, firstError string) error {
	switch {
	case completed == total:
		r.logger.Info("Task completed", "task_id", taskID, "videos", total)
		return r.tasks.MarkTerminal(ctx, taskID, task.StatusCompleted, "")
	case completed > 0:
		msg := fmt.Sprintf("%d of %d videos completed", completed, total)
		r.logger.Info("Task partially completed", "task_id", taskID, "completed", completed, "total", total)
		return r.tasks.MarkTerminal(ctx, taskID, task.StatusPartialSuccess, msg)
	default:
		msg := firstError
		if msg == "" {
			msg = "all videos failed"
		}
		r.logger.Warn("Task failed", "task_id", taskID, "error", msg)
		return r.tasks.MarkTerminal(ctx, taskID, task.StatusFailed, msg)
	}
}

// interimProgress maps script and video completion rates into the 55..95
// band. With every script done and no videos yet it sits at 75.
func interimProgress(scripted, completed, total int) int {
	if total == 0 {
		return progressBase
	}
	scriptRate := float64(scripted) / float64(total)
	videoRate := float64(completed) / float64(total)
	p := progressBase + int(progressScriptWeight*scriptRate) + int(progressVideoWeight*videoRate)
	if p > progressCeiling {
		return progressCeiling
	}
	return p
}

func taskTerminal(status task.Status) bool {
	switch status {
	case task.StatusCompleted, task.StatusFailed, task.StatusPartialSuccess, task.StatusCancelled:
		return true
	}
	return false
}

func videoResult(st *ent.SubVideoTask) models.VideoResult {
	vr := models.VideoResult{
		SubTaskID:    st.ID,
		Index:        st.Index,
		Status:       string(st.Status),
		VideoURL:     st.VideoURL,
		ThumbnailURL: st.ThumbnailURL,
		Duration:     st.Duration,
	}
	if st.ErrorMessage != nil {
		vr.ErrorMessage = *st.ErrorMessage
	}
	return vr
}

var _ SubTaskStore = (*services.SubTaskService)(nil)
var _ TaskStore = (*services.TaskService)(nil)
