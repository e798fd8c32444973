package queue

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/textloom/textloom/ent"
	"github.com/textloom/textloom/ent/task"
	"github.com/textloom/textloom/pkg/config"
	"github.com/textloom/textloom/pkg/models"
	"github.com/textloom/textloom/pkg/pipeline"
)

// fakeJobs is an in-memory JobSource backed by a buffered channel.
type fakeJobs struct {
	mu       sync.Mutex
	ch       chan models.PipelineJob
	enqueued []models.PipelineJob
}

func newFakeJobs() *fakeJobs {
	return &fakeJobs{ch: make(chan models.PipelineJob, 1024)}
}

func (f *fakeJobs) Dequeue(ctx context.Context, timeout time.Duration, job any) error {
	select {
	case j := <-f.ch:
		*(job.(*models.PipelineJob)) = j
		return nil
	case <-time.After(timeout):
		return context.DeadlineExceeded
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (f *fakeJobs) Enqueue(ctx context.Context, job any) error {
	j := job.(models.PipelineJob)
	f.mu.Lock()
	f.enqueued = append(f.enqueued, j)
	f.mu.Unlock()
	f.ch <- j
	return nil
}

func (f *fakeJobs) QueueDepth(ctx context.Context) (int64, error) {
	return int64(len(f.ch)), nil
}

func (f *fakeJobs) enqueuedJobs() []models.PipelineJob {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.PipelineJob(nil), f.enqueued...)
}

type terminalWrite struct {
	taskID  string
	status  task.Status
	message string
}

// fakeTaskStore is an in-memory TaskStore.
type fakeTaskStore struct {
	mu          sync.Mutex
	processing  int
	claimable   map[string]bool
	claimErr    error
	heartbeats  int
	terminals   []terminalWrite
	stale      []*ent.Task
	resetOK    map[string]bool
}

func newFakeTaskStore() *fakeTaskStore {
	return &fakeTaskStore{
		claimable: make(map[string]bool),
		resetOK:   make(map[string]bool),
	}
}

func (f *fakeTaskStore) ClaimTask(ctx context.Context, taskID, podID string) (*ent.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.claimErr != nil {
		return nil, f.claimErr
	}
	if !f.claimable[taskID] {
		return nil, nil
	}
	f.claimable[taskID] = false
	return &ent.Task{ID: taskID, Status: task.StatusProcessing}, nil
}

func (f *fakeTaskStore) CountProcessing(ctx context.Context, podID string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.processing, nil
}

func (f *fakeTaskStore) Heartbeat(ctx context.Context, taskID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.heartbeats++
	return nil
}

func (f *fakeTaskStore) MarkTerminal(ctx context.Context, taskID string, status task.Status, errorMessage string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.terminals = append(f.terminals, terminalWrite{taskID, status, errorMessage})
	return nil
}

func (f *fakeTaskStore) FindStale(ctx context.Context, timeout time.Duration) ([]*ent.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*ent.Task(nil), f.stale...), nil
}

func (f *fakeTaskStore) ResetStale(ctx context.Context, taskID string, timeout time.Duration) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.resetOK[taskID], nil
}

func (f *fakeTaskStore) terminalWrites() []terminalWrite {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]terminalWrite(nil), f.terminals...)
}

// fakeExecutor delegates RunTask to a configurable function.
type fakeExecutor struct {
	mu    sync.Mutex
	calls []models.PipelineJob
	run   func(ctx context.Context, job models.PipelineJob) (*models.TaskResult, error)
}

func (f *fakeExecutor) RunTask(ctx context.Context, job models.PipelineJob) (*models.TaskResult, error) {
	f.mu.Lock()
	f.calls = append(f.calls, job)
	f.mu.Unlock()
	if f.run != nil {
		return f.run(ctx, job)
	}
	return &models.TaskResult{TaskID: job.TaskID, SubmittedCount: 1}, nil
}

func (f *fakeExecutor) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func (f *fakeExecutor) callAt(i int) models.PipelineJob {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[i]
}

// nopRegistry satisfies TaskRegistry for workers tested outside a pool.
type nopRegistry struct{}

func (nopRegistry) RegisterTask(string, context.CancelFunc) {}
func (nopRegistry) UnregisterTask(string)                   {}

func testQueueConfig() *config.QueueConfig {
	cfg := config.DefaultQueueConfig()
	cfg.WorkerCount = 1
	cfg.PollInterval = 10 * time.Millisecond
	cfg.PollIntervalJitter = 0
	cfg.TaskTimeout = 5 * time.Second
	cfg.HeartbeatInterval = 10 * time.Millisecond
	cfg.OrphanScanInterval = 10 * time.Millisecond
	cfg.OrphanThreshold = time.Minute
	return cfg
}

func waitFor(t *testing.T, cond func() bool, msg string) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %s", msg)
}

func TestWorker_ProcessesJob(t *testing.T) {
	jobs := newFakeJobs()
	tasks := newFakeTaskStore()
	tasks.claimable["task-1"] = true
	exec := &fakeExecutor{}

	w := NewWorker("w-0", "pod-a", testQueueConfig(), jobs, tasks, exec, nopRegistry{})
	w.Start(context.Background())
	defer w.Stop()

	require.NoError(t, jobs.Enqueue(context.Background(), models.PipelineJob{TaskID: "task-1", SubCount: 2}))

	waitFor(t, func() bool { return exec.callCount() == 1 }, "executor call")

	assert.Equal(t, "task-1", exec.callAt(0).TaskID)
	// Success is not terminal: the reconciler finishes the task later.
	assert.Empty(t, tasks.terminalWrites())
	waitFor(t, func() bool { return w.Health().TasksProcessed == 1 }, "processed count")
}

func TestWorker_DropsUnclaimableDelivery(t *testing.T) {
	jobs := newFakeJobs()
	tasks := newFakeTaskStore()
	exec := &fakeExecutor{}

	w := NewWorker("w-0", "pod-a", testQueueConfig(), jobs, tasks, exec, nopRegistry{})
	w.Start(context.Background())
	defer w.Stop()

	require.NoError(t, jobs.Enqueue(context.Background(), models.PipelineJob{TaskID: "gone"}))

	// The delivery is consumed but never executed.
	waitFor(t, func() bool {
		depth, _ := jobs.QueueDepth(context.Background())
		return depth == 0
	}, "delivery consumed")
	time.Sleep(30 * time.Millisecond)
	assert.Zero(t, exec.callCount())
	assert.Empty(t, tasks.terminalWrites())
}

func TestWorker_CapacityGateSkipsDequeue(t *testing.T) {
	jobs := newFakeJobs()
	tasks := newFakeTaskStore()
	tasks.processing = 5
	tasks.claimable["task-1"] = true
	exec := &fakeExecutor{}

	cfg := testQueueConfig()
	cfg.MaxConcurrentTasks = 5

	w := NewWorker("w-0", "pod-a", cfg, jobs, tasks, exec, nopRegistry{})
	w.Start(context.Background())
	defer w.Stop()

	require.NoError(t, jobs.Enqueue(context.Background(), models.PipelineJob{TaskID: "task-1"}))

	// The job stays queued while the pool is at capacity.
	time.Sleep(60 * time.Millisecond)
	depth, _ := jobs.QueueDepth(context.Background())
	assert.Equal(t, int64(1), depth)
	assert.Zero(t, exec.callCount())

	// Capacity frees up and the job is picked up.
	tasks.mu.Lock()
	tasks.processing = 0
	tasks.mu.Unlock()
	waitFor(t, func() bool { return exec.callCount() == 1 }, "executor call after capacity freed")
}

func TestWorker_FailureWritesTerminalStatus(t *testing.T) {
	jobs := newFakeJobs()
	tasks := newFakeTaskStore()
	tasks.claimable["task-1"] = true
	exec := &fakeExecutor{
		run: func(ctx context.Context, job models.PipelineJob) (*models.TaskResult, error) {
			return nil, errors.New("material processing failed: no effective content")
		},
	}

	w := NewWorker("w-0", "pod-a", testQueueConfig(), jobs, tasks, exec, nopRegistry{})
	w.Start(context.Background())
	defer w.Stop()

	require.NoError(t, jobs.Enqueue(context.Background(), models.PipelineJob{TaskID: "task-1"}))

	waitFor(t, func() bool { return len(tasks.terminalWrites()) == 1 }, "terminal write")
	tw := tasks.terminalWrites()[0]
	assert.Equal(t, "task-1", tw.taskID)
	assert.Equal(t, task.StatusFailed, tw.status)
	assert.Contains(t, tw.message, "no effective content")
}

func TestWorker_CancelledTaskNotOverwritten(t *testing.T) {
	jobs := newFakeJobs()
	tasks := newFakeTaskStore()
	tasks.claimable["task-1"] = true
	exec := &fakeExecutor{
		run: func(ctx context.Context, job models.PipelineJob) (*models.TaskResult, error) {
			return nil, pipeline.ErrCancelled
		},
	}

	w := NewWorker("w-0", "pod-a", testQueueConfig(), jobs, tasks, exec, nopRegistry{})
	w.Start(context.Background())
	defer w.Stop()

	require.NoError(t, jobs.Enqueue(context.Background(), models.PipelineJob{TaskID: "task-1"}))

	waitFor(t, func() bool { return w.Health().TasksProcessed == 1 }, "job settled")
	// The cancel request already wrote the terminal row.
	assert.Empty(t, tasks.terminalWrites())
}

func TestWorker_TimeoutMarksFailed(t *testing.T) {
	jobs := newFakeJobs()
	tasks := newFakeTaskStore()
	tasks.claimable["task-1"] = true
	exec := &fakeExecutor{
		run: func(ctx context.Context, job models.PipelineJob) (*models.TaskResult, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		},
	}

	cfg := testQueueConfig()
	cfg.TaskTimeout = 20 * time.Millisecond

	w := NewWorker("w-0", "pod-a", cfg, jobs, tasks, exec, nopRegistry{})
	w.Start(context.Background())
	defer w.Stop()

	require.NoError(t, jobs.Enqueue(context.Background(), models.PipelineJob{TaskID: "task-1"}))

	waitFor(t, func() bool { return len(tasks.terminalWrites()) == 1 }, "terminal write")
	tw := tasks.terminalWrites()[0]
	assert.Equal(t, task.StatusFailed, tw.status)
	assert.Contains(t, tw.message, "timed out")
}

func TestWorker_ShutdownLeavesTaskForOrphanRecovery(t *testing.T) {
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

	ctx, cancel := context.WithCancel(context.Background())
	w := NewWorker("w-0", "pod-a", testQueueConfig(), jobs, tasks, exec, nopRegistry{})
	w.Start(ctx)

	require.NoError(t, jobs.Enqueue(context.Background(), models.PipelineJob{TaskID: "task-1"}))

	<-started
	cancel()
	w.Stop()

	// No terminal write: the row stays in processing and the orphan scan
	// requeues it after the heartbeat goes stale.
	assert.Empty(t, tasks.terminalWrites())
}

func TestWorker_HeartbeatsWhileProcessing(t *testing.T) {
	jobs := newFakeJobs()
	tasks := newFakeTaskStore()
	tasks.claimable["task-1"] = true

	release := make(chan struct{})
	exec := &fakeExecutor{
		run: func(ctx context.Context, job models.PipelineJob) (*models.TaskResult, error) {
			<-release
			return &models.TaskResult{TaskID: job.TaskID}, nil
		},
	}

	w := NewWorker("w-0", "pod-a", testQueueConfig(), jobs, tasks, exec, nopRegistry{})
	w.Start(context.Background())
	defer w.Stop()

	require.NoError(t, jobs.Enqueue(context.Background(), models.PipelineJob{TaskID: "task-1"}))

	waitFor(t, func() bool {
		tasks.mu.Lock()
		defer tasks.mu.Unlock()
		return tasks.heartbeats >= 2
	}, "heartbeats")
	close(release)
}

func TestWorker_PollIntervalJitterBounds(t *testing.T) {
	cfg := testQueueConfig()
	cfg.PollInterval = 1 * time.Second
	cfg.PollIntervalJitter = 200 * time.Millisecond

	w := NewWorker("w-0", "pod-a", cfg, newFakeJobs(), newFakeTaskStore(), &fakeExecutor{}, nopRegistry{})
	for i := 0; i < 100; i++ {
		d := w.pollInterval()
		assert.GreaterOrEqual(t, d, 800*time.Millisecond)
		assert.LessOrEqual(t, d, 1200*time.Millisecond)
	}
}
