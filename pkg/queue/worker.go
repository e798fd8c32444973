package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/textloom/textloom/ent/task"
	"github.com/textloom/textloom/pkg/broker"
	"github.com/textloom/textloom/pkg/config"
	"github.com/textloom/textloom/pkg/models"
	"github.com/textloom/textloom/pkg/pipeline"
)

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// Worker is a single pipeline worker: it pulls jobs from the broker, claims
// the named task, and runs the executor under timeout and heartbeat.
type Worker struct {
	id       string
	podID    string
	config   *config.QueueConfig
	jobs     JobSource
	tasks    TaskStore
	executor TaskExecutor
	pool     TaskRegistry
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	// Health tracking
	mu             sync.RWMutex
	status         WorkerStatus
	currentTaskID  string
	tasksProcessed int
	lastActivity   time.Time
}

// TaskRegistry is the subset of WorkerPool used by Worker for cancellation
// registration.
type TaskRegistry interface {
	RegisterTask(taskID string, cancel context.CancelFunc)
	UnregisterTask(taskID string)
}

// NewWorker creates a new pipeline worker.
func NewWorker(id, podID string, cfg *config.QueueConfig, jobs JobSource, tasks TaskStore, executor TaskExecutor, pool TaskRegistry) *Worker {
	return &Worker{
		id:           id,
		podID:        podID,
		config:       cfg,
		jobs:         jobs,
		tasks:        tasks,
		executor:     executor,
		pool:         pool,
		stopCh:       make(chan struct{}),
		status:       WorkerStatusIdle,
		lastActivity: time.Now(),
	}
}

// Start begins the worker loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for it to finish its current
// task. It is safe to call Stop multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the current worker health status.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:             w.id,
		Status:         string(w.status),
		CurrentTaskID:  w.currentTaskID,
		TasksProcessed: w.tasksProcessed,
		LastActivity:   w.lastActivity,
	}
}

// run is the main worker loop.
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id, "pod_id", w.podID)
	log.Info("Worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, worker shutting down")
			return
		default:
			if err := w.pollAndProcess(ctx); err != nil {
				switch {
				case errors.Is(err, context.DeadlineExceeded):
					// Empty poll.
				case errors.Is(err, ErrAtCapacity):
					w.sleep(w.pollInterval())
				case errors.Is(err, broker.ErrClosed):
					log.Info("Broker closed, worker shutting down")
					return
				default:
					log.Error("Error processing job", "error", err)
					w.sleep(time.Second)
				}
			}
		}
	}
}

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollAndProcess checks capacity, pulls one job, claims its task, and runs
// the pipeline.
func (w *Worker) pollAndProcess(ctx context.Context) error {
	// Global capacity gate before touching the queue (best-effort; racy with
	// concurrent workers but bounded by WorkerCount per replica).
	active, err := w.tasks.CountProcessing(ctx, "")
	if err != nil {
		return fmt.Errorf("checking active tasks: %w", err)
	}
	if active >= w.config.MaxConcurrentTasks {
		return ErrAtCapacity
	}

	var job models.PipelineJob
	if err := w.jobs.Dequeue(ctx, w.pollInterval(), &job); err != nil {
		return err
	}

	log := slog.With("task_id", job.TaskID, "worker_id", w.id)

	// Delivery is at-least-once: an unclaimable task means another delivery
	// (or another replica) already took it, or it no longer exists.
	claimed, err := w.tasks.ClaimTask(ctx, job.TaskID, w.podID)
	if err != nil {
		return fmt.Errorf("claiming task: %w", err)
	}
	if claimed == nil {
		log.Info("Task not claimable, dropping delivery")
		return nil
	}
	log.Info("Task claimed")

	w.setStatus(WorkerStatusWorking, job.TaskID)
	defer w.setStatus(WorkerStatusIdle, "")

	taskCtx, cancelTask := context.WithTimeout(ctx, w.config.TaskTimeout)
	defer cancelTask()

	// Register cancel function for API-triggered cancellation on this pod.
	w.pool.RegisterTask(job.TaskID, cancelTask)
	defer w.pool.UnregisterTask(job.TaskID)

	heartbeatCtx, cancelHeartbeat := context.WithCancel(taskCtx)
	defer cancelHeartbeat()
	go w.runHeartbeat(heartbeatCtx, job.TaskID)

	result, runErr := w.executor.RunTask(taskCtx, job)
	cancelHeartbeat()

	// Terminal writes use a background context; the task ctx may be dead.
	w.settle(context.Background(), taskCtx, log, job, result, runErr)

	w.mu.Lock()
	w.tasksProcessed++
	w.mu.Unlock()
	return nil
}

// settle maps the executor outcome onto the task row.
func (w *Worker) settle(ctx, taskCtx context.Context, log *slog.Logger, job models.PipelineJob, result *models.TaskResult, runErr error) {
	switch {
	case runErr == nil:
		// Not terminal: the reconciler converges the task once the merge
		// service delivers.
		log.Info("Task processing complete, awaiting merge convergence",
			"submitted", result.SubmittedCount)

	case errors.Is(runErr, pipeline.ErrCancelled):
		// The cancel request already wrote the terminal status.
		log.Info("Task cancelled")

	case errors.Is(taskCtx.Err(), context.DeadlineExceeded):
		log.Warn("Task timed out", "timeout", w.config.TaskTimeout)
		w.markFailed(ctx, log, job.TaskID, fmt.Sprintf("task timed out after %v", w.config.TaskTimeout))

	case errors.Is(taskCtx.Err(), context.Canceled):
		// Shutdown mid-task. Leave the row in processing; once heartbeats
		// stop the orphan scan requeues it for a resumed run.
		log.Warn("Task interrupted by shutdown, leaving for orphan recovery")

	default:
		log.Error("Task failed", "error", runErr)
		w.markFailed(ctx, log, job.TaskID, runErr.Error())
	}
}

func (w *Worker) markFailed(ctx context.Context, log *slog.Logger, taskID, message string) {
	if err := w.tasks.MarkTerminal(ctx, taskID, task.StatusFailed, message); err != nil {
		log.Error("Failed to write terminal task status", "error", err)
	}
}

// runHeartbeat periodically refreshes last_heartbeat_at for orphan detection.
func (w *Worker) runHeartbeat(ctx context.Context, taskID string) {
	ticker := time.NewTicker(w.config.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := w.tasks.Heartbeat(ctx, taskID); err != nil {
				slog.Warn("Heartbeat update failed", "task_id", taskID, "error", err)
			}
		}
	}
}

// pollInterval returns the poll duration with jitter.
func (w *Worker) pollInterval() time.Duration {
	base := w.config.PollInterval
	jitter := w.config.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	// Range: [base - jitter, base + jitter]
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

// setStatus updates the worker's health tracking state.
func (w *Worker) setStatus(status WorkerStatus, taskID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentTaskID = taskID
	w.lastActivity = time.Now()
}
