package config

import "time"

// QueueConfig contains worker pool and reconciler cadence configuration.
type QueueConfig struct {
	// WorkerCount is the number of pipeline worker goroutines per replica.
	WorkerCount int `yaml:"worker_count"`

	// MaxConcurrentTasks is the global limit of tasks in processing across
	// all replicas. Enforced by a database COUNT(*) check before claiming.
	// Also feeds the reconciler batch size: max(10, MaxConcurrentTasks).
	MaxConcurrentTasks int `yaml:"max_concurrent_tasks"`

	// PollInterval is the base interval for checking the pipeline queue.
	PollInterval time.Duration `yaml:"poll_interval"`

	// PollIntervalJitter is the random jitter added to PollInterval.
	PollIntervalJitter time.Duration `yaml:"poll_interval_jitter"`

	// TaskTimeout is the maximum wall-clock time for stages 1-5 of one task.
	// Sub-tasks already submitted to the merge service are unaffected; the
	// reconciler converges them afterwards.
	TaskTimeout time.Duration `yaml:"task_timeout"`

	// HeartbeatInterval is how often a worker refreshes last_heartbeat_at.
	HeartbeatInterval time.Duration `yaml:"heartbeat_interval"`

	// GracefulShutdownTimeout is the max wait for active tasks on shutdown.
	GracefulShutdownTimeout time.Duration `yaml:"graceful_shutdown_timeout"`

	// ReconcileInterval is the cadence of maintenance ticks enqueued for the
	// video-merge reconciler.
	ReconcileInterval time.Duration `yaml:"reconcile_interval"`

	// MergeTimeout is how long a sub-task may sit in processing at the merge
	// service before the reconciler fails it.
	MergeTimeout time.Duration `yaml:"merge_timeout"`

	// SubtitleTimeout bounds the dynamic-subtitle post-processor; beyond it
	// the reconciler completes the sub-task with an error note.
	SubtitleTimeout time.Duration `yaml:"subtitle_timeout"`

	// OrphanScanInterval is the cadence of the stale-task scan.
	OrphanScanInterval time.Duration `yaml:"orphan_scan_interval"`

	// OrphanThreshold is how long a processing task may go without a
	// heartbeat before it is requeued.
	OrphanThreshold time.Duration `yaml:"orphan_threshold"`
}

// DefaultQueueConfig returns the built-in queue defaults.
func DefaultQueueConfig() *QueueConfig {
	return &QueueConfig{
		WorkerCount:             3,
		MaxConcurrentTasks:      5,
		PollInterval:            1 * time.Second,
		PollIntervalJitter:      500 * time.Millisecond,
		TaskTimeout:             30 * time.Minute,
		HeartbeatInterval:       30 * time.Second,
		GracefulShutdownTimeout: 30 * time.Minute,
		ReconcileInterval:       30 * time.Second,
		MergeTimeout:            30 * time.Minute,
		SubtitleTimeout:         600 * time.Second,
		OrphanScanInterval:      60 * time.Second,
		OrphanThreshold:         5 * time.Minute,
	}
}

// ReconcileBatchSize returns the sub-task batch limit for one reconciler tick.
func (c *QueueConfig) ReconcileBatchSize() int {
	if c.MaxConcurrentTasks > 10 {
		return c.MaxConcurrentTasks
	}
	return 10
}
