// Package cleanup reclaims on-disk workspaces of finished tasks.
package cleanup

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/textloom/textloom/ent"
	"github.com/textloom/textloom/pkg/config"
	"github.com/textloom/textloom/pkg/services"
)

// TaskSource is the task-service surface cleanup uses.
type TaskSource interface {
	ListTerminalOlderThan(ctx context.Context, retention time.Duration, limit int) ([]*ent.Task, error)
	MarkWorkspaceCleaned(ctx context.Context, taskID string) error
}

var _ TaskSource = (*services.TaskService)(nil)

// Service periodically removes workspace directories of terminal tasks past
// the retention window. Cloud objects and database rows are kept. Removal is
// idempotent and safe to run from multiple pods.
type Service struct {
	config *config.RetentionConfig
	tasks  TaskSource
	logger *slog.Logger

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(cfg *config.RetentionConfig, tasks TaskSource, logger *slog.Logger) *Service {
	return &Service{
		config: cfg,
		tasks:  tasks,
		logger: logger,
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	s.logger.Info("Cleanup service started",
		"workspace_retention", s.config.WorkspaceRetention,
		"interval", s.config.CleanupInterval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	s.logger.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.cleanupWorkspaces(ctx)

	ticker := time.NewTicker(s.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.cleanupWorkspaces(ctx)
		}
	}
}

// cleanupWorkspaces removes one batch of expired workspace directories.
func (s *Service) cleanupWorkspaces(ctx context.Context) {
	tasks, err := s.tasks.ListTerminalOlderThan(ctx, s.config.WorkspaceRetention, s.config.BatchSize)
	if err != nil {
		s.logger.Error("Retention: failed to list expired tasks", "error", err)
		return
	}

	cleaned := 0
	for _, t := range tasks {
		if t.WorkspaceDir == "" {
			continue
		}
		if err := os.RemoveAll(t.WorkspaceDir); err != nil {
			s.logger.Error("Retention: failed to remove workspace",
				"task_id", t.ID, "workspace_dir", t.WorkspaceDir, "error", err)
			continue
		}
		if err := s.tasks.MarkWorkspaceCleaned(ctx, t.ID); err != nil {
			s.logger.Error("Retention: failed to mark workspace cleaned",
				"task_id", t.ID, "error", err)
			continue
		}
		cleaned++
	}

	if cleaned > 0 {
		s.logger.Info("Retention: removed expired workspaces", "count", cleaned)
	}
}
