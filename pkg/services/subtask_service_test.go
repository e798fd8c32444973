package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/textloom/textloom/ent/subvideotask"
	testdb "github.com/textloom/textloom/test/database"
)

func TestSubTaskService_CreateForTask(t *testing.T) {
	client := testdb.NewTestClient(t)
	subTaskService := NewSubTaskService(client.Client)
	ctx := context.Background()

	t.Run("creates deterministic ids in index order", func(t *testing.T) {
		parent := createTestTask(t, client.Client, 3)

		subTasks, err := subTaskService.CreateForTask(ctx, parent.ID, 3, "professional")
		require.NoError(t, err)
		require.Len(t, subTasks, 3)

		for i, st := range subTasks {
			assert.Equal(t, SubTaskID(parent.ID, i+1), st.ID)
			assert.Equal(t, i+1, st.Index)
			assert.Equal(t, subvideotask.StatusPending, st.Status)
		}
	})

	t.Run("re-running recreates nothing", func(t *testing.T) {
		parent := createTestTask(t, client.Client, 2)

		first, err := subTaskService.CreateForTask(ctx, parent.ID, 2, "professional")
		require.NoError(t, err)

		// Mutate one row, then re-run the fan-out as a crash-resume would.
		require.NoError(t, subTaskService.MarkProcessing(ctx, first[0].ID, 25))

		again, err := subTaskService.CreateForTask(ctx, parent.ID, 2, "professional")
		require.NoError(t, err)
		require.Len(t, again, 2)
		assert.Equal(t, subvideotask.StatusProcessing, again[0].Status)
		assert.Equal(t, 25, again[0].Progress)
	})

	t.Run("validates count range", func(t *testing.T) {
		parent := createTestTask(t, client.Client, 1)
		_, err := subTaskService.CreateForTask(ctx, parent.ID, 0, "professional")
		assert.True(t, IsValidationError(err))
	})
}

func TestSubTaskService_TerminalIdempotency(t *testing.T) {
	client := testdb.NewTestClient(t)
	subTaskService := NewSubTaskService(client.Client)
	ctx := context.Background()

	parent := createTestTask(t, client.Client, 1)
	subTasks, err := subTaskService.CreateForTask(ctx, parent.ID, 1, "professional")
	require.NoError(t, err)
	subTaskID := subTasks[0].ID

	t.Run("completed is idempotent", func(t *testing.T) {
		require.NoError(t, subTaskService.MarkCompleted(ctx, subTaskID, "https://cdn/v.mp4", "https://cdn/t.jpg", 42.5))
		require.NoError(t, subTaskService.MarkCompleted(ctx, subTaskID, "https://cdn/v.mp4", "https://cdn/t.jpg", 42.5))

		got, err := subTaskService.GetSubTask(ctx, subTaskID)
		require.NoError(t, err)
		assert.Equal(t, subvideotask.StatusCompleted, got.Status)
		assert.Equal(t, 100, got.Progress)
		assert.Equal(t, "https://cdn/v.mp4", got.VideoURL)
	})

	t.Run("failed cannot overwrite completed", func(t *testing.T) {
		require.NoError(t, subTaskService.MarkFailed(ctx, subTaskID, "late merge failure"))

		got, err := subTaskService.GetSubTask(ctx, subTaskID)
		require.NoError(t, err)
		assert.Equal(t, subvideotask.StatusCompleted, got.Status)
		assert.Nil(t, got.ErrorMessage)
	})
}

func TestSubTaskService_MarkCompletedWithNote(t *testing.T) {
	client := testdb.NewTestClient(t)
	subTaskService := NewSubTaskService(client.Client)
	ctx := context.Background()

	parent := createTestTask(t, client.Client, 1)
	subTasks, err := subTaskService.CreateForTask(ctx, parent.ID, 1, "professional")
	require.NoError(t, err)
	subTaskID := subTasks[0].ID

	require.NoError(t, subTaskService.MarkProcessingSubtitles(ctx, subTaskID, "https://cdn/v.mp4", "https://cdn/t.jpg", 42.5))
	require.NoError(t, subTaskService.MarkCompletedWithNote(ctx, subTaskID, "https://cdn/v.mp4", "https://cdn/t.jpg", 42.5,
		"subtitle processing timed out, completed without subtitles"))

	got, err := subTaskService.GetSubTask(ctx, subTaskID)
	require.NoError(t, err)
	assert.Equal(t, subvideotask.StatusCompleted, got.Status)
	assert.Equal(t, 100, got.Progress)
	assert.Equal(t, "https://cdn/v.mp4", got.VideoURL)
	require.NotNil(t, got.ErrorMessage)
	assert.Equal(t, "subtitle processing timed out, completed without subtitles", *got.ErrorMessage)
}

func TestSubTaskService_ListReconcilable(t *testing.T) {
	client := testdb.NewTestClient(t)
	subTaskService := NewSubTaskService(client.Client)
	ctx := context.Background()

	parent := createTestTask(t, client.Client, 3)
	subTasks, err := subTaskService.CreateForTask(ctx, parent.ID, 3, "professional")
	require.NoError(t, err)

	// Only sub-tasks already submitted to the merge service are reconcilable.
	require.NoError(t, subTaskService.SetMergeSubmission(ctx, subTasks[0].ID, "cm-1", 75))
	require.NoError(t, subTaskService.SetMergeSubmission(ctx, subTasks[1].ID, "cm-2", 75))
	require.NoError(t, subTaskService.MarkCompleted(ctx, subTasks[1].ID, "https://cdn/v.mp4", "", 10))

	rows, err := subTaskService.ListReconcilable(ctx, 10)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, subTasks[0].ID, rows[0].ID)
	require.NotNil(t, rows[0].CourseMediaID)
	assert.Equal(t, "cm-1", *rows[0].CourseMediaID)
}
