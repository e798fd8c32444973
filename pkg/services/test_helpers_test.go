package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/textloom/textloom/ent"
	"github.com/textloom/textloom/pkg/models"
)

// createTestTask persists a minimal pending task and returns it.
func createTestTask(t *testing.T, client *ent.Client, subCount int) *ent.Task {
	t.Helper()

	taskID := uuid.New().String()
	created, err := NewTaskService(client).CreateTask(context.Background(), models.CreateTaskRequest{
		TaskID:        taskID,
		Title:         "test task",
		CreatorID:     "user-1",
		WorkspaceDir:  "workspace/task_" + taskID,
		SourceFile:    "workspace/task_" + taskID + "/source_manifest.md",
		SubVideoCount: subCount,
	})
	require.NoError(t, err)
	return created
}
