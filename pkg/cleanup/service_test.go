package cleanup

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/textloom/textloom/ent"
	"github.com/textloom/textloom/pkg/config"
)

type fakeTasks struct {
	mu      sync.Mutex
	expired []*ent.Task
	cleaned []string
	listErr error
}

func (f *fakeTasks) ListTerminalOlderThan(ctx context.Context, retention time.Duration, limit int) ([]*ent.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	if len(f.expired) > limit {
		return f.expired[:limit], nil
	}
	return f.expired, nil
}

func (f *fakeTasks) MarkWorkspaceCleaned(ctx context.Context, taskID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cleaned = append(f.cleaned, taskID)
	for i, t := range f.expired {
		if t.ID == taskID {
			f.expired = append(f.expired[:i], f.expired[i+1:]...)
			break
		}
	}
	return nil
}

func (f *fakeTasks) cleanedIDs() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.cleaned...)
}

func testRetentionConfig() *config.RetentionConfig {
	return &config.RetentionConfig{
		WorkspaceRetention: time.Hour,
		CleanupInterval:    10 * time.Millisecond,
		BatchSize:          50,
	}
}

func makeWorkspace(t *testing.T, root, taskID string) string {
	t.Helper()
	dir := filepath.Join(root, "task_"+taskID)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "materials"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "source_manifest.md"), []byte("# sources"), 0o644))
	return dir
}

func TestService_RemovesExpiredWorkspaces(t *testing.T) {
	root := t.TempDir()
	dir1 := makeWorkspace(t, root, "old-1")
	dir2 := makeWorkspace(t, root, "old-2")

	tasks := &fakeTasks{expired: []*ent.Task{
		{ID: "old-1", WorkspaceDir: dir1},
		{ID: "old-2", WorkspaceDir: dir2},
	}}

	svc := NewService(testRetentionConfig(), tasks, slog.Default())
	svc.Start(context.Background())
	defer svc.Stop()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if len(tasks.cleanedIDs()) == 2 {
			break
		}
		time.Sleep(5 * time.Millisecond)
	}

	assert.ElementsMatch(t, []string{"old-1", "old-2"}, tasks.cleanedIDs())
	assert.NoDirExists(t, dir1)
	assert.NoDirExists(t, dir2)
}

func TestService_MissingWorkspaceIsStillMarkedCleaned(t *testing.T) {
	tasks := &fakeTasks{expired: []*ent.Task{
		{ID: "gone-1", WorkspaceDir: filepath.Join(t.TempDir(), "does-not-exist")},
	}}

	svc := NewService(testRetentionConfig(), tasks, slog.Default())
	svc.Start(context.Background())
	defer svc.Stop()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if len(tasks.cleanedIDs()) == 1 {
			break
		}
		time.Sleep(5 * time.Millisecond)
	}

	assert.Equal(t, []string{"gone-1"}, tasks.cleanedIDs())
}

func TestService_StopIsIdempotent(t *testing.T) {
	svc := NewService(testRetentionConfig(), &fakeTasks{}, slog.Default())
	svc.Start(context.Background())
	svc.Start(context.Background())
	svc.Stop()
	svc.Stop()
}
