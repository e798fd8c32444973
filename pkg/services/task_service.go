package services

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/textloom/textloom/ent"
	"github.com/textloom/textloom/ent/task"
	"github.com/textloom/textloom/pkg/models"
)

// stageOrder fixes the forward ordering of pipeline stages. AdvanceStage
// refuses to move a task backwards.
var stageOrder = map[task.CurrentStage]int{
	task.CurrentStageMaterialProcessing: 0,
	task.CurrentStageMaterialAnalysis:   1,
	task.CurrentStageSubtaskCreation:    2,
	task.CurrentStageScriptGeneration:   3,
	task.CurrentStageVideoGeneration:    4,
	task.CurrentStageCompleted:          5,
	task.CurrentStageFailed:             5,
}

// terminalStatuses are the task states no ordinary write may leave.
var terminalStatuses = map[task.Status]bool{
	task.StatusCompleted:      true,
	task.StatusFailed:         true,
	task.StatusPartialSuccess: true,
	task.StatusCancelled:      true,
}

// TaskService manages top-level task lifecycle and enforces the progress
// and terminal-state invariants all writers share.
type TaskService struct {
	client *ent.Client
}

// NewTaskService creates a new TaskService
func NewTaskService(client *ent.Client) *TaskService {
	return &TaskService{client: client}
}

// CreateTask persists a new pending task row.
func (s *TaskService) CreateTask(httpCtx context.Context, req models.CreateTaskRequest) (*ent.Task, error) {
	if req.TaskID == "" {
		return nil, NewValidationError("task_id", "required")
	}
	if req.Title == "" {
		return nil, NewValidationError("title", "required")
	}
	if req.WorkspaceDir == "" {
		return nil, NewValidationError("workspace_dir", "required")
	}
	if req.SourceFile == "" {
		return nil, NewValidationError("source_file", "required")
	}
	if req.SubVideoCount < 1 || req.SubVideoCount > 5 {
		return nil, NewValidationError("sub_video_count", "must be between 1 and 5")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 10*time.Second)
	defer cancel()

	builder := s.client.Task.Create().
		SetID(req.TaskID).
		SetTitle(req.Title).
		SetWorkspaceDir(req.WorkspaceDir).
		SetSourceFile(req.SourceFile).
		SetSubVideoCount(req.SubVideoCount).
		SetStatus(task.StatusPending)

	if req.Description != "" {
		builder.SetDescription(req.Description)
	}
	if req.CreatorID != "" {
		builder.SetCreatorID(req.CreatorID)
	}
	if req.ScriptStyle != "" {
		builder.SetScriptStyle(req.ScriptStyle)
	}
	if req.PersonaID != nil {
		builder.SetPersonaID(*req.PersonaID)
	}

	created, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return created, nil
}

// GetTask retrieves a task by ID with optional edge loading
func (s *TaskService) GetTask(ctx context.Context, taskID string, withEdges bool) (*ent.Task, error) {
	query := s.client.Task.Query().Where(task.IDEQ(taskID))

	if withEdges {
		query = query.
			WithSubTasks().
			WithMediaItems().
			WithAnalyses()
	}

	t, err := query.Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}

	return t, nil
}

// ListTasks lists tasks for one creator, newest first.
func (s *TaskService) ListTasks(ctx context.Context, creatorID string, limit, offset int) ([]*ent.Task, int, error) {
	query := s.client.Task.Query()
	if creatorID != "" {
		query = query.Where(task.CreatorIDEQ(creatorID))
	}

	totalCount, err := query.Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count tasks: %w", err)
	}

	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	tasks, err := query.
		Limit(limit).
		Offset(offset).
		Order(ent.Desc(task.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list tasks: %w", err)
	}

	return tasks, totalCount, nil
}

// ClaimTask atomically moves one named task from pending to processing.
// A nil task with nil error means the task was not claimable: either it no
// longer exists or another delivery of the same message already claimed it.
// Duplicate queue deliveries land here and turn into a no-op.
func (s *TaskService) ClaimTask(ctx context.Context, taskID, podID string) (*ent.Task, error) {
	claimCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tx, err := s.client.Tx(claimCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	t, err := tx.Task.Query().
		Where(
			task.IDEQ(taskID),
			task.StatusEQ(task.StatusPending),
		).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		Only(claimCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to lock pending task: %w", err)
	}

	now := time.Now()
	t, err = t.Update().
		SetStatus(task.StatusProcessing).
		SetStartedAt(now).
		SetPodID(podID).
		SetLastHeartbeatAt(now).
		Save(claimCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim task: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}

	return t, nil
}

// CountProcessing returns how many tasks are currently in processing. An
// empty podID counts across all replicas; workers use that as the capacity
// gate before claiming more work.
func (s *TaskService) CountProcessing(ctx context.Context, podID string) (int, error) {
	query := s.client.Task.Query().
		Where(task.StatusEQ(task.StatusProcessing))
	if podID != "" {
		query.Where(task.PodIDEQ(podID))
	}
	count, err := query.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count processing tasks: %w", err)
	}
	return count, nil
}

// Heartbeat refreshes the task's liveness timestamp.
func (s *TaskService) Heartbeat(ctx context.Context, taskID string) error {
	err := s.client.Task.UpdateOneID(taskID).
		SetLastHeartbeatAt(time.Now()).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to heartbeat task: %w", err)
	}
	return nil
}

// AdvanceStage moves the task's current_stage strictly forward. Writes that
// would move the stage backwards are dropped, which makes re-runs of an
// already-committed stage harmless.
func (s *TaskService) AdvanceStage(ctx context.Context, taskID string, stage task.CurrentStage) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tx, err := s.client.Tx(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	t, err := tx.Task.Query().
		Where(task.IDEQ(taskID)).
		ForUpdate().
		Only(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to lock task: %w", err)
	}

	if stageOrder[stage] <= stageOrder[t.CurrentStage] && t.CurrentStage != stage {
		return tx.Commit()
	}

	if err := t.Update().SetCurrentStage(stage).Exec(writeCtx); err != nil {
		return fmt.Errorf("failed to advance stage: %w", err)
	}

	return tx.Commit()
}

// UpdateProgress applies the monotonic progress rule: the stored value only
// moves up, so concurrent writers racing with stale proposals cannot drag it
// back. The proposed value is clamped to 0..100.
func (s *TaskService) UpdateProgress(ctx context.Context, taskID string, proposed int) error {
	if proposed < 0 {
		proposed = 0
	}
	if proposed > 100 {
		proposed = 100
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tx, err := s.client.Tx(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	t, err := tx.Task.Query().
		Where(task.IDEQ(taskID)).
		ForUpdate().
		Only(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to lock task: %w", err)
	}

	if proposed <= t.Progress {
		return tx.Commit()
	}

	if err := t.Update().SetProgress(proposed).Exec(writeCtx); err != nil {
		return fmt.Errorf("failed to update progress: %w", err)
	}

	return tx.Commit()
}

// ForceProgress rewrites the stored progress even downwards. This is the one
// sanctioned exception to monotonicity: the reconciler calls it when it finds
// progress already at 100 while non-terminal sub-tasks remain.
func (s *TaskService) ForceProgress(ctx context.Context, taskID string, value int) error {
	if value < 0 {
		value = 0
	}
	if value > 100 {
		value = 100
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.Task.UpdateOneID(taskID).
		SetProgress(value).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to force progress: %w", err)
	}
	return nil
}

// MarkTerminal writes a terminal status. Uses background context so the write
// survives pipeline cancellation. Once a task reads completed, any attempt to
// replace it with a different status is silently dropped; re-applying the
// same terminal status is a no-op.
func (s *TaskService) MarkTerminal(ctx context.Context, taskID string, status task.Status, errorMessage string) error {
	if !terminalStatuses[status] {
		return NewValidationError("status", fmt.Sprintf("'%s' is not a terminal status", status))
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	t, err := tx.Task.Query().
		Where(task.IDEQ(taskID)).
		ForUpdate().
		Only(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to lock task: %w", err)
	}

	// Terminal protection: completed stays completed.
	if t.Status == task.StatusCompleted && status != task.StatusCompleted {
		return tx.Commit()
	}
	if t.Status == status {
		return tx.Commit()
	}

	update := t.Update().
		SetStatus(status).
		SetCompletedAt(time.Now())

	switch status {
	case task.StatusCompleted:
		update.SetCurrentStage(task.CurrentStageCompleted).SetProgress(100)
	case task.StatusPartialSuccess:
		update.SetCurrentStage(task.CurrentStageCompleted).SetProgress(100)
	case task.StatusFailed:
		update.SetCurrentStage(task.CurrentStageFailed)
	}
	if errorMessage != "" {
		update.SetErrorMessage(errorMessage)
	}

	if err := update.Exec(writeCtx); err != nil {
		return fmt.Errorf("failed to mark task terminal: %w", err)
	}

	return tx.Commit()
}

// RequestCancel marks a task cancelled. Pending tasks are cancelled outright;
// processing tasks keep running until the orchestrator observes the status at
// its next stage boundary. Terminal tasks are left untouched.
func (s *TaskService) RequestCancel(ctx context.Context, taskID string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tx, err := s.client.Tx(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	t, err := tx.Task.Query().
		Where(task.IDEQ(taskID)).
		ForUpdate().
		Only(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to lock task: %w", err)
	}

	if terminalStatuses[t.Status] {
		return tx.Commit()
	}

	err = t.Update().
		SetStatus(task.StatusCancelled).
		SetCompletedAt(time.Now()).
		Exec(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to cancel task: %w", err)
	}

	return tx.Commit()
}

// IsCancelled reports whether a cancel request has been recorded for the task.
// The orchestrator polls this at stage boundaries.
func (s *TaskService) IsCancelled(ctx context.Context, taskID string) (bool, error) {
	status, err := s.client.Task.Query().
		Where(task.IDEQ(taskID)).
		Select(task.FieldStatus).
		String(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return false, ErrNotFound
		}
		return false, fmt.Errorf("failed to read task status: %w", err)
	}
	return task.Status(status) == task.StatusCancelled, nil
}

// UpdateAggregates stores the reconciler's rollup of sub-task outcomes on
// the parent row.
func (s *TaskService) UpdateAggregates(ctx context.Context, taskID string, completedCount int, results []models.VideoResult) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	blobs := make([]map[string]interface{}, 0, len(results))
	for _, r := range results {
		blobs = append(blobs, map[string]interface{}{
			"sub_task_id":   r.SubTaskID,
			"index":         r.Index,
			"status":        r.Status,
			"video_url":     r.VideoURL,
			"thumbnail_url": r.ThumbnailURL,
			"duration":      r.Duration,
			"error_message": r.ErrorMessage,
		})
	}

	err := s.client.Task.UpdateOneID(taskID).
		SetCompletedCount(completedCount).
		SetVideoResults(blobs).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update task aggregates: %w", err)
	}
	return nil
}

// FindStale returns processing tasks whose heartbeat is older than the
// timeout, oldest heartbeat first.
func (s *TaskService) FindStale(ctx context.Context, timeout time.Duration) ([]*ent.Task, error) {
	threshold := time.Now().Add(-timeout)

	tasks, err := s.client.Task.Query().
		Where(
			task.StatusEQ(task.StatusProcessing),
			task.LastHeartbeatAtNotNil(),
			task.LastHeartbeatAtLT(threshold),
		).
		Order(ent.Asc(task.FieldLastHeartbeatAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to find stale tasks: %w", err)
	}

	return tasks, nil
}

// ResetStale returns an orphaned task to pending so another worker can
// reclaim it. The heartbeat predicate keeps this from racing a live worker:
// a task that heartbeated since the threshold is left alone.
func (s *TaskService) ResetStale(ctx context.Context, taskID string, timeout time.Duration) (bool, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	threshold := time.Now().Add(-timeout)
	count, err := s.client.Task.Update().
		Where(
			task.IDEQ(taskID),
			task.StatusEQ(task.StatusProcessing),
			task.LastHeartbeatAtNotNil(),
			task.LastHeartbeatAtLT(threshold),
		).
		SetStatus(task.StatusPending).
		ClearPodID().
		ClearLastHeartbeatAt().
		Save(writeCtx)
	if err != nil {
		return false, fmt.Errorf("failed to reset stale task: %w", err)
	}
	return count > 0, nil
}

// ListTerminalOlderThan returns terminal tasks whose run finished before the
// retention cutoff and whose workspace has not been cleaned yet, oldest
// first. Used by workspace cleanup.
func (s *TaskService) ListTerminalOlderThan(ctx context.Context, retention time.Duration, limit int) ([]*ent.Task, error) {
	cutoff := time.Now().Add(-retention)

	tasks, err := s.client.Task.Query().
		Where(
			task.StatusIn(task.StatusCompleted, task.StatusFailed,
				task.StatusPartialSuccess, task.StatusCancelled),
			task.CompletedAtNotNil(),
			task.CompletedAtLT(cutoff),
			task.WorkspaceDirNEQ(""),
		).
		Order(ent.Asc(task.FieldCompletedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list terminal tasks: %w", err)
	}

	return tasks, nil
}

// MarkWorkspaceCleaned clears the workspace reference after the directory
// has been removed, so cleanup does not revisit the task.
func (s *TaskService) MarkWorkspaceCleaned(ctx context.Context, taskID string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.client.Task.Update().
		Where(task.IDEQ(taskID)).
		SetWorkspaceDir("").
		Exec(writeCtx); err != nil {
		return fmt.Errorf("failed to mark workspace cleaned: %w", err)
	}
	return nil
}
