package services

import (
	"context"
	"fmt"
	"time"

	"github.com/textloom/textloom/ent"
	"github.com/textloom/textloom/ent/subvideotask"
)

// SubTaskTerminal reports whether a sub-task status is final.
func SubTaskTerminal(status subvideotask.Status) bool {
	return status == subvideotask.StatusCompleted || status == subvideotask.StatusFailed
}

// SubTaskID derives the deterministic sub-task identity for one variant.
func SubTaskID(taskID string, index int) string {
	return fmt.Sprintf("%s_video_%d", taskID, index)
}

// SubTaskService manages the per-variant video sub-tasks of a task.
type SubTaskService struct {
	client *ent.Client
}

// NewSubTaskService creates a new SubTaskService
func NewSubTaskService(client *ent.Client) *SubTaskService {
	return &SubTaskService{client: client}
}

// CreateForTask creates the N sub-task rows for a task. Identities are
// deterministic, so re-running after a crash recreates nothing: rows that
// already exist are kept as-is and returned in index order.
func (s *SubTaskService) CreateForTask(ctx context.Context, taskID string, count int, scriptStyle string) ([]*ent.SubVideoTask, error) {
	if taskID == "" {
		return nil, NewValidationError("task_id", "required")
	}
	if count < 1 || count > 5 {
		return nil, NewValidationError("count", "must be between 1 and 5")
	}
	if scriptStyle == "" {
		scriptStyle = "professional"
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	for i := 1; i <= count; i++ {
		err := s.client.SubVideoTask.Create().
			SetID(SubTaskID(taskID, i)).
			SetTaskID(taskID).
			SetIndex(i).
			SetScriptStyle(scriptStyle).
			SetStatus(subvideotask.StatusPending).
			Exec(writeCtx)
		if err != nil && !ent.IsConstraintError(err) {
			return nil, fmt.Errorf("failed to create sub-task %d: %w", i, err)
		}
	}

	return s.ListByTask(writeCtx, taskID)
}

// GetSubTask retrieves a sub-task by ID.
func (s *SubTaskService) GetSubTask(ctx context.Context, subTaskID string) (*ent.SubVideoTask, error) {
	st, err := s.client.SubVideoTask.Get(ctx, subTaskID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get sub-task: %w", err)
	}
	return st, nil
}

// ListByTask returns a task's sub-tasks in index order.
func (s *SubTaskService) ListByTask(ctx context.Context, taskID string) ([]*ent.SubVideoTask, error) {
	subTasks, err := s.client.SubVideoTask.Query().
		Where(subvideotask.TaskIDEQ(taskID)).
		Order(ent.Asc(subvideotask.FieldIndex)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sub-tasks: %w", err)
	}
	return subTasks, nil
}

// MarkProcessing moves a sub-task to processing at the given progress.
// Terminal sub-tasks are left untouched.
func (s *SubTaskService) MarkProcessing(ctx context.Context, subTaskID string, progress int) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	count, err := s.client.SubVideoTask.Update().
		Where(
			subvideotask.IDEQ(subTaskID),
			subvideotask.StatusNotIn(subvideotask.StatusCompleted, subvideotask.StatusFailed),
		).
		SetStatus(subvideotask.StatusProcessing).
		SetProgress(progress).
		Save(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to mark sub-task processing: %w", err)
	}
	if count == 0 {
		exists, err := s.client.SubVideoTask.Query().Where(subvideotask.IDEQ(subTaskID)).Exist(writeCtx)
		if err != nil {
			return fmt.Errorf("failed to check sub-task: %w", err)
		}
		if !exists {
			return ErrNotFound
		}
	}
	return nil
}

// SetScript records the generated script on the sub-task: the ScriptContent
// reference, the condensed blob served over HTTP, and the stage progress.
func (s *SubTaskService) SetScript(ctx context.Context, subTaskID, scriptID string, scriptData map[string]interface{}, progress int) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.SubVideoTask.UpdateOneID(subTaskID).
		SetScriptID(scriptID).
		SetScriptData(scriptData).
		SetProgress(progress).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to set sub-task script: %w", err)
	}
	return nil
}

// SetMergeSubmission records the external merge-service job id after a
// successful submission.
func (s *SubTaskService) SetMergeSubmission(ctx context.Context, subTaskID, courseMediaID string, progress int) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.SubVideoTask.UpdateOneID(subTaskID).
		SetCourseMediaID(courseMediaID).
		SetStatus(subvideotask.StatusProcessing).
		SetProgress(progress).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to set merge submission: %w", err)
	}
	return nil
}

// MarkProcessingSubtitles parks a merged sub-task while the subtitle
// post-processor runs.
func (s *SubTaskService) MarkProcessingSubtitles(ctx context.Context, subTaskID, videoURL, thumbnailURL string, duration float64) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := s.client.SubVideoTask.Update().
		Where(
			subvideotask.IDEQ(subTaskID),
			subvideotask.StatusNotIn(subvideotask.StatusCompleted, subvideotask.StatusFailed),
		).
		SetStatus(subvideotask.StatusProcessingSubtitles).
		SetVideoURL(videoURL).
		SetThumbnailURL(thumbnailURL).
		SetDuration(duration).
		Save(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to mark sub-task processing_subtitles: %w", err)
	}
	return nil
}

// MarkCompleted finishes a sub-task with its produced video. Re-applying the
// same terminal update is a no-op, and a completed sub-task is never
// overwritten.
func (s *SubTaskService) MarkCompleted(ctx context.Context, subTaskID, videoURL, thumbnailURL string, duration float64) error {
	return s.complete(ctx, subTaskID, videoURL, thumbnailURL, duration, "")
}

// MarkCompletedWithNote finishes a sub-task that produced a usable video but
// hit a non-fatal problem along the way (subtitle timeout, lost handoff). The
// note lands in error_message so the degradation stays visible.
func (s *SubTaskService) MarkCompletedWithNote(ctx context.Context, subTaskID, videoURL, thumbnailURL string, duration float64, note string) error {
	return s.complete(ctx, subTaskID, videoURL, thumbnailURL, duration, note)
}

func (s *SubTaskService) complete(ctx context.Context, subTaskID, videoURL, thumbnailURL string, duration float64, note string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := s.client.SubVideoTask.Update().
		Where(
			subvideotask.IDEQ(subTaskID),
			subvideotask.StatusNEQ(subvideotask.StatusCompleted),
		).
		SetStatus(subvideotask.StatusCompleted).
		SetProgress(100).
		SetCompletedAt(time.Now())

	if note != "" {
		update.SetErrorMessage(note)
	} else {
		update.ClearErrorMessage()
	}

	if videoURL != "" {
		update.SetVideoURL(videoURL)
	}
	if thumbnailURL != "" {
		update.SetThumbnailURL(thumbnailURL)
	}
	if duration > 0 {
		update.SetDuration(duration)
	}

	if _, err := update.Save(writeCtx); err != nil {
		return fmt.Errorf("failed to complete sub-task: %w", err)
	}
	return nil
}

// MarkFailed finishes a sub-task with an error. Completed sub-tasks are
// protected; re-applying failed is a no-op.
func (s *SubTaskService) MarkFailed(ctx context.Context, subTaskID, errorMessage string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := s.client.SubVideoTask.Update().
		Where(
			subvideotask.IDEQ(subTaskID),
			subvideotask.StatusNotIn(subvideotask.StatusCompleted, subvideotask.StatusFailed),
		).
		SetStatus(subvideotask.StatusFailed).
		SetErrorMessage(errorMessage).
		SetCompletedAt(time.Now()).
		Save(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to fail sub-task: %w", err)
	}
	return nil
}

// ListReconcilable returns sub-tasks awaiting external convergence: those
// submitted to the merge service (or parked in subtitle processing) that are
// not yet terminal. Ordered stalest first so no sub-task starves.
func (s *SubTaskService) ListReconcilable(ctx context.Context, limit int) ([]*ent.SubVideoTask, error) {
	if limit <= 0 {
		limit = 10
	}

	subTasks, err := s.client.SubVideoTask.Query().
		Where(
			subvideotask.StatusIn(subvideotask.StatusProcessing, subvideotask.StatusProcessingSubtitles),
			subvideotask.CourseMediaIDNotNil(),
		).
		Order(ent.Asc(subvideotask.FieldUpdatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list reconcilable sub-tasks: %w", err)
	}

	return subTasks, nil
}

// CountByStatus tallies a task's sub-tasks per status.
func (s *SubTaskService) CountByStatus(ctx context.Context, taskID string) (map[subvideotask.Status]int, error) {
	subTasks, err := s.ListByTask(ctx, taskID)
	if err != nil {
		return nil, err
	}

	counts := make(map[subvideotask.Status]int, 4)
	for _, st := range subTasks {
		counts[st.Status]++
	}
	return counts, nil
}
