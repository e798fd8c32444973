package broker

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/textloom/textloom/pkg/models"
)

func newTestBroker(t *testing.T) *Broker {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewWithClient(client, "textloom:queue:pipeline", "textloom:queue:maintenance", slog.Default())
}

func TestBroker_EnqueueDequeue(t *testing.T) {
	b := newTestBroker(t)
	ctx := context.Background()

	job := models.PipelineJob{
		TaskID:       "task-1",
		SourceFile:   "workspace/task-1/source_manifest.md",
		WorkspaceDir: "workspace/task-1",
		Mode:         "text_to_video",
		SubCount:     2,
	}
	require.NoError(t, b.Enqueue(ctx, job))

	depth, err := b.QueueDepth(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), depth)

	var got models.PipelineJob
	require.NoError(t, b.Dequeue(ctx, time.Second, &got))
	assert.Equal(t, job, got)

	depth, err = b.QueueDepth(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), depth)
}

func TestBroker_FIFOOrder(t *testing.T) {
	b := newTestBroker(t)
	ctx := context.Background()

	for _, id := range []string{"task-1", "task-2", "task-3"} {
		require.NoError(t, b.Enqueue(ctx, models.PipelineJob{TaskID: id}))
	}

	for _, want := range []string{"task-1", "task-2", "task-3"} {
		var got models.PipelineJob
		require.NoError(t, b.Dequeue(ctx, time.Second, &got))
		assert.Equal(t, want, got.TaskID)
	}
}

func TestBroker_MaintenanceQueueIsSeparate(t *testing.T) {
	b := newTestBroker(t)
	ctx := context.Background()

	require.NoError(t, b.EnqueueMaintenance(ctx, models.SubtitleJob{SubTaskID: "task-1_video_1"}))

	depth, err := b.QueueDepth(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), depth)
}

func TestBroker_DequeueTimeout(t *testing.T) {
	b := newTestBroker(t)

	var got models.PipelineJob
	err := b.Dequeue(context.Background(), 50*time.Millisecond, &got)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
