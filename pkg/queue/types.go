// Package queue provides the pipeline worker pool: consuming task jobs from
// the broker, claiming tasks, running the executor, and recovering orphans.
package queue

import (
	"context"
	"errors"
	"time"

	"github.com/textloom/textloom/ent"
	"github.com/textloom/textloom/ent/task"
	"github.com/textloom/textloom/pkg/broker"
	"github.com/textloom/textloom/pkg/models"
	"github.com/textloom/textloom/pkg/services"
)

// Sentinel errors for queue operations.
var (
	// ErrAtCapacity indicates the global concurrent task limit is reached.
	ErrAtCapacity = errors.New("at capacity")
)

// TaskExecutor runs stages 1-5 of one claimed task.
//
// The executor writes results progressively during execution; the worker only
// handles claiming, heartbeat, and the terminal status of failed runs. A
// successful run is not terminal; the reconciler converges it once the merge
// service finishes.
type TaskExecutor interface {
	RunTask(ctx context.Context, job models.PipelineJob) (*models.TaskResult, error)
}

// JobSource is the broker surface the pool consumes from.
type JobSource interface {
	Dequeue(ctx context.Context, timeout time.Duration, job any) error
	Enqueue(ctx context.Context, job any) error
	QueueDepth(ctx context.Context) (int64, error)
}

// TaskStore is the task-service surface the pool drives.
type TaskStore interface {
	ClaimTask(ctx context.Context, taskID, podID string) (*ent.Task, error)
	CountProcessing(ctx context.Context, podID string) (int, error)
	Heartbeat(ctx context.Context, taskID string) error
	MarkTerminal(ctx context.Context, taskID string, status task.Status, errorMessage string) error
	FindStale(ctx context.Context, timeout time.Duration) ([]*ent.Task, error)
	ResetStale(ctx context.Context, taskID string, timeout time.Duration) (bool, error)
}

// PoolHealth contains health information for the entire worker pool.
type PoolHealth struct {
	IsHealthy       bool           `json:"is_healthy"`
	DBReachable     bool           `json:"db_reachable"`
	DBError         string         `json:"db_error,omitempty"`
	PodID           string         `json:"pod_id"`
	ActiveWorkers   int            `json:"active_workers"`
	TotalWorkers    int            `json:"total_workers"`
	ActiveTasks     int            `json:"active_tasks"`
	MaxConcurrent   int            `json:"max_concurrent"`
	QueueDepth      int64          `json:"queue_depth"`
	WorkerStats     []WorkerHealth `json:"worker_stats"`
	LastOrphanScan  time.Time      `json:"last_orphan_scan"`
	OrphansRequeued int            `json:"orphans_requeued"`
}

var (
	_ JobSource = (*broker.Broker)(nil)
	_ TaskStore = (*services.TaskService)(nil)
)

// WorkerHealth contains health information for a single worker.
type WorkerHealth struct {
	ID             string    `json:"id"`
	Status         string    `json:"status"` // "idle" or "working"
	CurrentTaskID  string    `json:"current_task_id,omitempty"`
	TasksProcessed int       `json:"tasks_processed"`
	LastActivity   time.Time `json:"last_activity"`
}
