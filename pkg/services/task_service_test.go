package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/textloom/textloom/ent/task"
	"github.com/textloom/textloom/pkg/models"
	testdb "github.com/textloom/textloom/test/database"
)

func TestTaskService_CreateTask(t *testing.T) {
	client := testdb.NewTestClient(t)
	taskService := NewTaskService(client.Client)
	ctx := context.Background()

	t.Run("creates task with defaults", func(t *testing.T) {
		created := createTestTask(t, client.Client, 2)
		assert.Equal(t, task.StatusPending, created.Status)
		assert.Equal(t, task.CurrentStageMaterialProcessing, created.CurrentStage)
		assert.Equal(t, 0, created.Progress)
		assert.Equal(t, "professional", created.ScriptStyle)
		assert.Equal(t, 2, created.SubVideoCount)
	})

	t.Run("rejects duplicate id", func(t *testing.T) {
		created := createTestTask(t, client.Client, 1)
		_, err := taskService.CreateTask(ctx, models.CreateTaskRequest{
			TaskID:        created.ID,
			Title:         "dup",
			WorkspaceDir:  "w",
			SourceFile:    "s",
			SubVideoCount: 1,
		})
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})

	t.Run("validates sub_video_count range", func(t *testing.T) {
		_, err := taskService.CreateTask(ctx, models.CreateTaskRequest{
			TaskID:        uuid.New().String(),
			Title:         "too many",
			WorkspaceDir:  "w",
			SourceFile:    "s",
			SubVideoCount: 6,
		})
		assert.True(t, IsValidationError(err))
	})
}

func TestTaskService_ClaimTask(t *testing.T) {
	client := testdb.NewTestClient(t)
	taskService := NewTaskService(client.Client)
	ctx := context.Background()

	t.Run("claims pending task", func(t *testing.T) {
		created := createTestTask(t, client.Client, 1)

		claimed, err := taskService.ClaimTask(ctx, created.ID, "pod-a")
		require.NoError(t, err)
		require.NotNil(t, claimed)
		assert.Equal(t, task.StatusProcessing, claimed.Status)
		assert.NotNil(t, claimed.StartedAt)
		assert.NotNil(t, claimed.LastHeartbeatAt)
		require.NotNil(t, claimed.PodID)
		assert.Equal(t, "pod-a", *claimed.PodID)
	})

	t.Run("duplicate delivery is a no-op", func(t *testing.T) {
		created := createTestTask(t, client.Client, 1)

		first, err := taskService.ClaimTask(ctx, created.ID, "pod-a")
		require.NoError(t, err)
		require.NotNil(t, first)

		second, err := taskService.ClaimTask(ctx, created.ID, "pod-b")
		require.NoError(t, err)
		assert.Nil(t, second)
	})

	t.Run("unknown task is not claimable", func(t *testing.T) {
		claimed, err := taskService.ClaimTask(ctx, uuid.New().String(), "pod-a")
		require.NoError(t, err)
		assert.Nil(t, claimed)
	})
}

func TestTaskService_UpdateProgress(t *testing.T) {
	client := testdb.NewTestClient(t)
	taskService := NewTaskService(client.Client)
	ctx := context.Background()

	created := createTestTask(t, client.Client, 1)

	t.Run("progress only moves up", func(t *testing.T) {
		require.NoError(t, taskService.UpdateProgress(ctx, created.ID, 50))

		got, err := taskService.GetTask(ctx, created.ID, false)
		require.NoError(t, err)
		assert.Equal(t, 50, got.Progress)

		// A stale lower proposal must not regress the stored value.
		require.NoError(t, taskService.UpdateProgress(ctx, created.ID, 25))

		got, err = taskService.GetTask(ctx, created.ID, false)
		require.NoError(t, err)
		assert.Equal(t, 50, got.Progress)
	})

	t.Run("proposal is clamped to 100", func(t *testing.T) {
		require.NoError(t, taskService.UpdateProgress(ctx, created.ID, 250))

		got, err := taskService.GetTask(ctx, created.ID, false)
		require.NoError(t, err)
		assert.Equal(t, 100, got.Progress)
	})

	t.Run("force progress rewrites downwards", func(t *testing.T) {
		require.NoError(t, taskService.ForceProgress(ctx, created.ID, 75))

		got, err := taskService.GetTask(ctx, created.ID, false)
		require.NoError(t, err)
		assert.Equal(t, 75, got.Progress)
	})
}

func TestTaskService_AdvanceStage(t *testing.T) {
	client := testdb.NewTestClient(t)
	taskService := NewTaskService(client.Client)
	ctx := context.Background()

	created := createTestTask(t, client.Client, 1)

	require.NoError(t, taskService.AdvanceStage(ctx, created.ID, task.CurrentStageScriptGeneration))

	got, err := taskService.GetTask(ctx, created.ID, false)
	require.NoError(t, err)
	assert.Equal(t, task.CurrentStageScriptGeneration, got.CurrentStage)

	// A re-run of an earlier stage must not move the pointer back.
	require.NoError(t, taskService.AdvanceStage(ctx, created.ID, task.CurrentStageMaterialAnalysis))

	got, err = taskService.GetTask(ctx, created.ID, false)
	require.NoError(t, err)
	assert.Equal(t, task.CurrentStageScriptGeneration, got.CurrentStage)
}

func TestTaskService_MarkTerminal(t *testing.T) {
	client := testdb.NewTestClient(t)
	taskService := NewTaskService(client.Client)
	ctx := context.Background()

	t.Run("completed sets stage and full progress", func(t *testing.T) {
		created := createTestTask(t, client.Client, 1)

		require.NoError(t, taskService.MarkTerminal(ctx, created.ID, task.StatusCompleted, ""))

		got, err := taskService.GetTask(ctx, created.ID, false)
		require.NoError(t, err)
		assert.Equal(t, task.StatusCompleted, got.Status)
		assert.Equal(t, task.CurrentStageCompleted, got.CurrentStage)
		assert.Equal(t, 100, got.Progress)
		assert.NotNil(t, got.CompletedAt)
	})

	t.Run("completed cannot be overwritten", func(t *testing.T) {
		created := createTestTask(t, client.Client, 1)
		require.NoError(t, taskService.MarkTerminal(ctx, created.ID, task.StatusCompleted, ""))

		// Swallowed, not an error.
		require.NoError(t, taskService.MarkTerminal(ctx, created.ID, task.StatusFailed, "late failure"))

		got, err := taskService.GetTask(ctx, created.ID, false)
		require.NoError(t, err)
		assert.Equal(t, task.StatusCompleted, got.Status)
	})

	t.Run("partial success sets stage and full progress", func(t *testing.T) {
		created := createTestTask(t, client.Client, 2)
		require.NoError(t, taskService.UpdateProgress(ctx, created.ID, 95))

		require.NoError(t, taskService.MarkTerminal(ctx, created.ID, task.StatusPartialSuccess, "1/2 videos failed"))

		got, err := taskService.GetTask(ctx, created.ID, false)
		require.NoError(t, err)
		assert.Equal(t, task.StatusPartialSuccess, got.Status)
		assert.Equal(t, task.CurrentStageCompleted, got.CurrentStage)
		assert.Equal(t, 100, got.Progress)
		assert.NotNil(t, got.CompletedAt)
	})

	t.Run("failed records error message", func(t *testing.T) {
		created := createTestTask(t, client.Client, 1)

		require.NoError(t, taskService.MarkTerminal(ctx, created.ID, task.StatusFailed, "analysis failure rate exceeded"))

		got, err := taskService.GetTask(ctx, created.ID, false)
		require.NoError(t, err)
		assert.Equal(t, task.StatusFailed, got.Status)
		assert.Equal(t, task.CurrentStageFailed, got.CurrentStage)
		require.NotNil(t, got.ErrorMessage)
		assert.Equal(t, "analysis failure rate exceeded", *got.ErrorMessage)
	})

	t.Run("rejects non-terminal status", func(t *testing.T) {
		created := createTestTask(t, client.Client, 1)
		err := taskService.MarkTerminal(ctx, created.ID, task.StatusProcessing, "")
		assert.True(t, IsValidationError(err))
	})
}

func TestTaskService_RequestCancel(t *testing.T) {
	client := testdb.NewTestClient(t)
	taskService := NewTaskService(client.Client)
	ctx := context.Background()

	t.Run("cancels pending task", func(t *testing.T) {
		created := createTestTask(t, client.Client, 1)

		require.NoError(t, taskService.RequestCancel(ctx, created.ID))

		cancelled, err := taskService.IsCancelled(ctx, created.ID)
		require.NoError(t, err)
		assert.True(t, cancelled)
	})

	t.Run("leaves completed task untouched", func(t *testing.T) {
		created := createTestTask(t, client.Client, 1)
		require.NoError(t, taskService.MarkTerminal(ctx, created.ID, task.StatusCompleted, ""))

		require.NoError(t, taskService.RequestCancel(ctx, created.ID))

		got, err := taskService.GetTask(ctx, created.ID, false)
		require.NoError(t, err)
		assert.Equal(t, task.StatusCompleted, got.Status)
	})
}
