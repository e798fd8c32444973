package queue

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/textloom/textloom/ent"
	"github.com/textloom/textloom/pkg/models"
)

func TestWorkerPool_StartStop(t *testing.T) {
	jobs := newFakeJobs()
	tasks := newFakeTaskStore()
	exec := &fakeExecutor{}

	cfg := testQueueConfig()
	cfg.WorkerCount = 3

	pool := NewWorkerPool("pod-a", cfg, jobs, tasks, exec)
	require.NoError(t, pool.Start(context.Background()))
	// Duplicate Start is a no-op.
	require.NoError(t, pool.Start(context.Background()))
	assert.Len(t, pool.workers, 3)

	pool.Stop()
}

func TestWorkerPool_CancelTask(t *testing.T) {
	jobs := newFakeJobs()
	tasks := newFakeTaskStore()
	tasks.claimable["task-1"] = true

	started := make(chan struct{})
	exec := &fakeExecutor{
		run: func(ctx context.Context, job models.PipelineJob) (*models.TaskResult, error) {
			close(started)
			<-ctx.Done()
			return nil, ctx.Err()
		},
	}

	pool := NewWorkerPool("pod-a", testQueueConfig(), jobs, tasks, exec)
	require.NoError(t, pool.Start(context.Background()))
	defer pool.Stop()

	require.NoError(t, jobs.Enqueue(context.Background(), models.PipelineJob{TaskID: "task-1"}))
	<-started

	assert.True(t, pool.CancelTask("task-1"))
	assert.False(t, pool.CancelTask("not-here"))

	waitFor(t, func() bool {
		pool.mu.RLock()
		defer pool.mu.RUnlock()
		return len(pool.activeTasks) == 0
	}, "task unregistered")
}

func TestWorkerPool_Health(t *testing.T) {
	jobs := newFakeJobs()
	tasks := newFakeTaskStore()
	tasks.processing = 2
	exec := &fakeExecutor{}

	cfg := testQueueConfig()
	cfg.WorkerCount = 2
	cfg.MaxConcurrentTasks = 5

	pool := NewWorkerPool("pod-a", cfg, jobs, tasks, exec)
	require.NoError(t, pool.Start(context.Background()))
	defer pool.Stop()

	health := pool.Health()
	assert.True(t, health.IsHealthy)
	assert.True(t, health.DBReachable)
	assert.Equal(t, "pod-a", health.PodID)
	assert.Equal(t, 2, health.TotalWorkers)
	assert.Equal(t, 2, health.ActiveTasks)
	assert.Equal(t, 5, health.MaxConcurrent)
	assert.Len(t, health.WorkerStats, 2)
}

func TestWorkerPool_OrphanScanRequeuesStaleTasks(t *testing.T) {
	jobs := newFakeJobs()
	tasks := newFakeTaskStore()
	exec := &fakeExecutor{}

	persona := "persona-1"
	pod := "pod-dead"
	tasks.stale = []*ent.Task{{
		ID:            "stale-1",
		SourceFile:    "workspace/task_stale-1/source_manifest.md",
		WorkspaceDir:  "workspace/task_stale-1",
		TaskType:      "text_to_video",
		PersonaID:     &persona,
		SubVideoCount: 3,
		PodID:         &pod,
	}}
	tasks.resetOK["stale-1"] = true

	cfg := testQueueConfig()
	cfg.WorkerCount = 0

	pool := NewWorkerPool("pod-a", cfg, jobs, tasks, exec)
	require.NoError(t, pool.Start(context.Background()))
	defer pool.Stop()

	waitFor(t, func() bool { return len(jobs.enqueuedJobs()) >= 1 }, "orphan requeued")

	job := jobs.enqueuedJobs()[0]
	assert.Equal(t, "stale-1", job.TaskID)
	assert.Equal(t, "workspace/task_stale-1/source_manifest.md", job.SourceFile)
	assert.Equal(t, "workspace/task_stale-1", job.WorkspaceDir)
	assert.Equal(t, "text_to_video", job.Mode)
	require.NotNil(t, job.PersonaID)
	assert.Equal(t, "persona-1", *job.PersonaID)
	assert.Equal(t, 3, job.SubCount)

	waitFor(t, func() bool { return pool.Health().OrphansRequeued >= 1 }, "health metric")
	assert.False(t, pool.Health().LastOrphanScan.IsZero())
}

func TestWorkerPool_OrphanScanSkipsRevivedTasks(t *testing.T) {
	jobs := newFakeJobs()
	tasks := newFakeTaskStore()
	exec := &fakeExecutor{}

	// FindStale returns the task but the reset predicate loses the race:
	// the owning worker heartbeated again in between.
	tasks.stale = []*ent.Task{{ID: "revived-1"}}
	tasks.resetOK["revived-1"] = false

	cfg := testQueueConfig()
	cfg.WorkerCount = 0

	pool := NewWorkerPool("pod-a", cfg, jobs, tasks, exec)
	require.NoError(t, pool.Start(context.Background()))
	defer pool.Stop()

	waitFor(t, func() bool { return !pool.Health().LastOrphanScan.IsZero() }, "scan ran")
	time.Sleep(30 * time.Millisecond)
	assert.Empty(t, jobs.enqueuedJobs())
}
