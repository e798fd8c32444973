package merge

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/textloom/textloom/ent"
	"github.com/textloom/textloom/ent/subvideotask"
	"github.com/textloom/textloom/ent/task"
	"github.com/textloom/textloom/pkg/config"
	"github.com/textloom/textloom/pkg/models"
)

type fakeSubTasks struct {
	byTask map[string][]*ent.SubVideoTask

	completed map[string]models.VideoResult
	notes     map[string]string
	failed    map[string]string
	parked    map[string]string
}

func newFakeSubTasks() *fakeSubTasks {
	return &fakeSubTasks{
		byTask:    map[string][]*ent.SubVideoTask{},
		completed: map[string]models.VideoResult{},
		notes:     map[string]string{},
		failed:    map[string]string{},
		parked:    map[string]string{},
	}
}

func (f *fakeSubTasks) add(st *ent.SubVideoTask) {
	f.byTask[st.TaskID] = append(f.byTask[st.TaskID], st)
}

func (f *fakeSubTasks) ListReconcilable(_ context.Context, limit int) ([]*ent.SubVideoTask, error) {
	var out []*ent.SubVideoTask
	for _, sts := range f.byTask {
		for _, st := range sts {
			if st.CourseMediaID == nil {
				continue
			}
			if st.Status == subvideotask.StatusProcessing || st.Status == subvideotask.StatusProcessingSubtitles {
				out = append(out, st)
			}
		}
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeSubTasks) ListByTask(_ context.Context, taskID string) ([]*ent.SubVideoTask, error) {
	return f.byTask[taskID], nil
}

func (f *fakeSubTasks) MarkCompleted(_ context.Context, subTaskID, videoURL, thumbnailURL string, duration float64) error {
	f.completed[subTaskID] = models.VideoResult{VideoURL: videoURL, ThumbnailURL: thumbnailURL, Duration: duration}
	f.apply(subTaskID, func(st *ent.SubVideoTask) {
		st.Status = subvideotask.StatusCompleted
		st.Progress = 100
		st.VideoURL = videoURL
	})
	return nil
}

func (f *fakeSubTasks) MarkCompletedWithNote(ctx context.Context, subTaskID, videoURL, thumbnailURL string, duration float64, note string) error {
	f.notes[subTaskID] = note
	return f.MarkCompleted(ctx, subTaskID, videoURL, thumbnailURL, duration)
}

func (f *fakeSubTasks) MarkFailed(_ context.Context, subTaskID, errorMessage string) error {
	f.failed[subTaskID] = errorMessage
	f.apply(subTaskID, func(st *ent.SubVideoTask) {
		st.Status = subvideotask.StatusFailed
		st.ErrorMessage = &errorMessage
	})
	return nil
}

func (f *fakeSubTasks) MarkProcessingSubtitles(_ context.Context, subTaskID, videoURL, _ string, _ float64) error {
	f.parked[subTaskID] = videoURL
	f.apply(subTaskID, func(st *ent.SubVideoTask) {
		st.Status = subvideotask.StatusProcessingSubtitles
		st.VideoURL = videoURL
	})
	return nil
}

func (f *fakeSubTasks) apply(subTaskID string, mutate func(*ent.SubVideoTask)) {
	for _, sts := range f.byTask {
		for _, st := range sts {
			if st.ID == subTaskID {
				mutate(st)
			}
		}
	}
}

type fakeTasks struct {
	parents map[string]*ent.Task

	terminal   map[string]task.Status
	progress   map[string]int
	forced     map[string]int
	aggregates map[string]int
}

func newFakeTasks() *fakeTasks {
	return &fakeTasks{
		parents:    map[string]*ent.Task{},
		terminal:   map[string]task.Status{},
		progress:   map[string]int{},
		forced:     map[string]int{},
		aggregates: map[string]int{},
	}
}

func (f *fakeTasks) GetTask(_ context.Context, taskID string, _ bool) (*ent.Task, error) {
	return f.parents[taskID], nil
}

func (f *fakeTasks) MarkTerminal(_ context.Context, taskID string, status task.Status, _ string) error {
	f.terminal[taskID] = status
	f.parents[taskID].Status = status
	return nil
}

func (f *fakeTasks) UpdateProgress(_ context.Context, taskID string, proposed int) error {
	f.progress[taskID] = proposed
	return nil
}

func (f *fakeTasks) ForceProgress(_ context.Context, taskID string, value int) error {
	f.forced[taskID] = value
	return nil
}

func (f *fakeTasks) UpdateAggregates(_ context.Context, taskID string, completedCount int, _ []models.VideoResult) error {
	f.aggregates[taskID] = completedCount
	return nil
}

type fakeStatus struct {
	statuses  map[string]*models.MergeStatus
	errs      map[string]error
	subtitles bool
}

func (f *fakeStatus) QueryStatus(_ context.Context, courseMediaID string) (*models.MergeStatus, error) {
	if err := f.errs[courseMediaID]; err != nil {
		return nil, err
	}
	if st, ok := f.statuses[courseMediaID]; ok {
		return st, nil
	}
	return &models.MergeStatus{CourseMediaID: courseMediaID, Status: 1}, nil
}

func (f *fakeStatus) SubtitlesEnabled() bool { return f.subtitles }

type fakeNotifier struct {
	jobs []models.SubtitleJob
	err  error
}

func (f *fakeNotifier) EnqueueMaintenance(_ context.Context, job any) error {
	if f.err != nil {
		return f.err
	}
	f.jobs = append(f.jobs, job.(models.SubtitleJob))
	return nil
}

func strPtr(s string) *string { return &s }

func subTask(taskID string, index int, status subvideotask.Status, courseMediaID string) *ent.SubVideoTask {
	st := &ent.SubVideoTask{
		ID:          taskID + "_video_" + string(rune('0'+index)),
		TaskID:      taskID,
		Index:       index,
		Status:      status,
		ScriptID:    strPtr("script-" + string(rune('0'+index))),
		UpdatedAt:   time.Now(),
	}
	if courseMediaID != "" {
		st.CourseMediaID = &courseMediaID
	}
	return st
}

func newTestReconciler(subTasks *fakeSubTasks, tasks *fakeTasks, status *fakeStatus, notifier *fakeNotifier) *Reconciler {
	return NewReconciler(config.DefaultQueueConfig(), subTasks, tasks, status, notifier, slog.Default())
}

func TestReconciler_MergeSucceeded(t *testing.T) {
	subTasks := newFakeSubTasks()
	tasks := newFakeTasks()
	tasks.parents["t1"] = &ent.Task{ID: "t1", Status: task.StatusProcessing, Progress: 80}

	subTasks.add(subTask("t1", 1, subvideotask.StatusProcessing, "cm-1"))
	subTasks.add(subTask("t1", 2, subvideotask.StatusProcessing, "cm-2"))

	status := &fakeStatus{statuses: map[string]*models.MergeStatus{
		"cm-1": {Status: models.MergeStatusSucceeded, MergeVideo: "https://cdn/v1.mp4", Duration: 61},
	}}

	r := newTestReconciler(subTasks, tasks, status, &fakeNotifier{})
	require.NoError(t, r.Reconcile(context.Background()))

	assert.Equal(t, "https://cdn/v1.mp4", subTasks.completed["t1_video_1"].VideoURL)
	assert.Empty(t, subTasks.failed)

	// One of two videos done, both scripts done: 55 + 20 + 12.
	assert.Equal(t, 87, tasks.progress["t1"])
	assert.Equal(t, 1, tasks.aggregates["t1"])
	assert.Empty(t, tasks.terminal)
}

func TestReconciler_MergeFailedCarriesReasons(t *testing.T) {
	subTasks := newFakeSubTasks()
	tasks := newFakeTasks()
	tasks.parents["t1"] = &ent.Task{ID: "t1", Status: task.StatusProcessing, Progress: 80}

	subTasks.add(subTask("t1", 1, subvideotask.StatusProcessing, "cm-1"))

	status := &fakeStatus{statuses: map[string]*models.MergeStatus{
		"cm-1": {Status: models.MergeStatusFailed, FailureReasons: []string{"codec mismatch", "asset 404"}},
	}}

	r := newTestReconciler(subTasks, tasks, status, &fakeNotifier{})
	require.NoError(t, r.Reconcile(context.Background()))

	assert.Equal(t, "codec mismatch; asset 404", subTasks.failed["t1_video_1"])
	assert.Equal(t, task.StatusFailed, tasks.terminal["t1"])
}

func TestReconciler_SubtitleHandoff(t *testing.T) {
	subTasks := newFakeSubTasks()
	tasks := newFakeTasks()
	tasks.parents["t1"] = &ent.Task{ID: "t1", Status: task.StatusProcessing, Progress: 80}

	subTasks.add(subTask("t1", 1, subvideotask.StatusProcessing, "cm-1"))

	status := &fakeStatus{
		subtitles: true,
		statuses: map[string]*models.MergeStatus{
			"cm-1": {Status: models.MergeStatusSucceeded, MergeVideo: "https://cdn/v1.mp4", SubtitlesURL: "https://cdn/v1.srt"},
		},
	}
	notifier := &fakeNotifier{}

	r := newTestReconciler(subTasks, tasks, status, notifier)
	require.NoError(t, r.Reconcile(context.Background()))

	assert.Equal(t, "https://cdn/v1.mp4", subTasks.parked["t1_video_1"])
	require.Len(t, notifier.jobs, 1)
	assert.Equal(t, "https://cdn/v1.srt", notifier.jobs[0].SubtitlesURL)
	assert.Empty(t, subTasks.completed)
}

func TestReconciler_SubtitleHandoffFailureCompletesAnyway(t *testing.T) {
	subTasks := newFakeSubTasks()
	tasks := newFakeTasks()
	tasks.parents["t1"] = &ent.Task{ID: "t1", Status: task.StatusProcessing, Progress: 80}

	subTasks.add(subTask("t1", 1, subvideotask.StatusProcessing, "cm-1"))

	status := &fakeStatus{
		subtitles: true,
		statuses: map[string]*models.MergeStatus{
			"cm-1": {Status: models.MergeStatusSucceeded, MergeVideo: "https://cdn/v1.mp4"},
		},
	}

	r := newTestReconciler(subTasks, tasks, status, &fakeNotifier{err: errors.New("queue down")})
	require.NoError(t, r.Reconcile(context.Background()))

	assert.Equal(t, "https://cdn/v1.mp4", subTasks.completed["t1_video_1"].VideoURL)
	// The degradation is recorded on the row, not silently dropped.
	assert.Equal(t, "subtitle handoff failed, completed without subtitles", subTasks.notes["t1_video_1"])
	assert.Equal(t, task.StatusCompleted, tasks.terminal["t1"])
}

func TestReconciler_MergeTimeout(t *testing.T) {
	subTasks := newFakeSubTasks()
	tasks := newFakeTasks()
	tasks.parents["t1"] = &ent.Task{ID: "t1", Status: task.StatusProcessing, Progress: 80}

	st := subTask("t1", 1, subvideotask.StatusProcessing, "cm-1")
	st.UpdatedAt = time.Now().Add(-time.Hour)
	subTasks.add(st)

	r := newTestReconciler(subTasks, tasks, &fakeStatus{}, &fakeNotifier{})
	require.NoError(t, r.Reconcile(context.Background()))

	assert.Equal(t, "video generation timeout", subTasks.failed["t1_video_1"])
	assert.Equal(t, task.StatusFailed, tasks.terminal["t1"])
}

func TestReconciler_SubtitleTimeoutCompletes(t *testing.T) {
	subTasks := newFakeSubTasks()
	tasks := newFakeTasks()
	tasks.parents["t1"] = &ent.Task{ID: "t1", Status: task.StatusProcessing, Progress: 80}

	st := subTask("t1", 1, subvideotask.StatusProcessingSubtitles, "cm-1")
	st.VideoURL = "https://cdn/v1.mp4"
	st.UpdatedAt = time.Now().Add(-15 * time.Minute)
	subTasks.add(st)

	r := newTestReconciler(subTasks, tasks, &fakeStatus{subtitles: true}, &fakeNotifier{})
	require.NoError(t, r.Reconcile(context.Background()))

	assert.Equal(t, "https://cdn/v1.mp4", subTasks.completed["t1_video_1"].VideoURL)
	assert.Equal(t, "subtitle processing timed out, completed without subtitles", subTasks.notes["t1_video_1"])
	assert.Equal(t, task.StatusCompleted, tasks.terminal["t1"])
}

func TestReconciler_QueryErrorRetriesNextTick(t *testing.T) {
	subTasks := newFakeSubTasks()
	tasks := newFakeTasks()
	tasks.parents["t1"] = &ent.Task{ID: "t1", Status: task.StatusProcessing, Progress: 80}

	subTasks.add(subTask("t1", 1, subvideotask.StatusProcessing, "cm-1"))

	status := &fakeStatus{errs: map[string]error{"cm-1": errors.New("merge service unreachable")}}
	r := newTestReconciler(subTasks, tasks, status, &fakeNotifier{})
	require.NoError(t, r.Reconcile(context.Background()))

	assert.Empty(t, subTasks.completed)
	assert.Empty(t, subTasks.failed)
	assert.Empty(t, tasks.progress)
}

func TestReconciler_PartialSuccess(t *testing.T) {
	subTasks := newFakeSubTasks()
	tasks := newFakeTasks()
	tasks.parents["t1"] = &ent.Task{ID: "t1", Status: task.StatusProcessing, Progress: 80}

	failed := subTask("t1", 1, subvideotask.StatusFailed, "cm-1")
	failed.ErrorMessage = strPtr("codec mismatch")
	subTasks.add(failed)
	subTasks.add(subTask("t1", 2, subvideotask.StatusProcessing, "cm-2"))

	status := &fakeStatus{statuses: map[string]*models.MergeStatus{
		"cm-2": {Status: models.MergeStatusSucceeded, MergeVideo: "https://cdn/v2.mp4"},
	}}

	r := newTestReconciler(subTasks, tasks, status, &fakeNotifier{})
	require.NoError(t, r.Reconcile(context.Background()))

	assert.Equal(t, task.StatusPartialSuccess, tasks.terminal["t1"])
	assert.Equal(t, 1, tasks.aggregates["t1"])
}

func TestReconciler_StaleFullProgressIsRewritten(t *testing.T) {
	subTasks := newFakeSubTasks()
	tasks := newFakeTasks()
	// A crashed run left progress at 100 with an unfinished sub-task.
	tasks.parents["t1"] = &ent.Task{ID: "t1", Status: task.StatusProcessing, Progress: 100}

	subTasks.add(subTask("t1", 1, subvideotask.StatusProcessing, "cm-1"))
	done := subTask("t1", 2, subvideotask.StatusCompleted, "cm-2")
	subTasks.add(done)

	r := newTestReconciler(subTasks, tasks, &fakeStatus{}, &fakeNotifier{})
	require.NoError(t, r.ReconcileParent(context.Background(), "t1"))

	// 55 + 20 (both scripts) + 12 (one of two videos).
	assert.Equal(t, 87, tasks.forced["t1"])
	assert.Empty(t, tasks.progress)
}

func TestReconciler_TerminalParentLeftAlone(t *testing.T) {
	subTasks := newFakeSubTasks()
	tasks := newFakeTasks()
	tasks.parents["t1"] = &ent.Task{ID: "t1", Status: task.StatusCancelled}

	subTasks.add(subTask("t1", 1, subvideotask.StatusProcessing, "cm-1"))

	r := newTestReconciler(subTasks, tasks, &fakeStatus{}, &fakeNotifier{})
	require.NoError(t, r.ReconcileParent(context.Background(), "t1"))

	assert.Empty(t, tasks.progress)
	assert.Empty(t, tasks.terminal)
	assert.Empty(t, tasks.aggregates)
}

func TestInterimProgress(t *testing.T) {
	assert.Equal(t, 55, interimProgress(0, 0, 2))
	assert.Equal(t, 75, interimProgress(2, 0, 2))
	assert.Equal(t, 87, interimProgress(2, 1, 2))
	assert.Equal(t, 95, interimProgress(3, 3, 3))
}
