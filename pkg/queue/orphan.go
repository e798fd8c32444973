package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/textloom/textloom/ent"
	"github.com/textloom/textloom/pkg/models"
)

// orphanState tracks orphan scan metrics (thread-safe).
type orphanState struct {
	mu       sync.Mutex
	lastScan time.Time
	requeued int
}

// runOrphanScan periodically requeues tasks whose worker stopped
// heartbeating. Every pod runs this scan; the reset predicate keeps
// concurrent scans idempotent.
func (p *WorkerPool) runOrphanScan(ctx context.Context) {
	ticker := time.NewTicker(p.config.OrphanScanInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			if err := p.requeueOrphans(ctx); err != nil {
				slog.Error("Orphan scan failed", "error", err)
			}
		}
	}
}

// requeueOrphans finds processing tasks with stale heartbeats, resets them
// to pending, and puts a fresh job on the queue so the pipeline resumes from
// persisted state.
func (p *WorkerPool) requeueOrphans(ctx context.Context) error {
	stale, err := p.tasks.FindStale(ctx, p.config.OrphanThreshold)
	if err != nil {
		return fmt.Errorf("failed to query stale tasks: %w", err)
	}

	requeued := 0
	for _, t := range stale {
		if err := p.requeueOrphan(ctx, t); err != nil {
			slog.Error("Failed to requeue orphaned task", "task_id", t.ID, "error", err)
			continue
		}
		requeued++
	}

	if requeued > 0 {
		slog.Warn("Requeued orphaned tasks", "count", requeued)
	}

	p.orphans.mu.Lock()
	p.orphans.lastScan = time.Now()
	p.orphans.requeued += requeued
	p.orphans.mu.Unlock()

	return nil
}

// requeueOrphan resets a single stale task and re-enqueues its job.
func (p *WorkerPool) requeueOrphan(ctx context.Context, t *ent.Task) error {
	reset, err := p.tasks.ResetStale(ctx, t.ID, p.config.OrphanThreshold)
	if err != nil {
		return err
	}
	if !reset {
		// The owning worker heartbeated again, or another scan got here first.
		return nil
	}

	podID := "unknown"
	if t.PodID != nil {
		podID = *t.PodID
	}
	slog.Warn("Requeueing orphaned task", "task_id", t.ID, "old_pod_id", podID)

	return p.jobs.Enqueue(ctx, models.PipelineJob{
		TaskID:       t.ID,
		SourceFile:   t.SourceFile,
		WorkspaceDir: t.WorkspaceDir,
		Mode:         t.TaskType,
		PersonaID:    t.PersonaID,
		SubCount:     t.SubVideoCount,
	})
}
