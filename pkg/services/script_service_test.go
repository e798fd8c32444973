package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/textloom/textloom/ent/scriptcontent"
	"github.com/textloom/textloom/pkg/models"
	testdb "github.com/textloom/textloom/test/database"
)

func TestScriptService_Lifecycle(t *testing.T) {
	client := testdb.NewTestClient(t)
	scriptService := NewScriptService(client.Client)
	subTaskService := NewSubTaskService(client.Client)
	ctx := context.Background()

	parent := createTestTask(t, client.Client, 1)
	subTasks, err := subTaskService.CreateForTask(ctx, parent.ID, 1, "professional")
	require.NoError(t, err)
	subTaskID := subTasks[0].ID

	row, err := scriptService.BeginGeneration(ctx, parent.ID, subTaskID, "professional", nil)
	require.NoError(t, err)
	assert.Equal(t, scriptcontent.GenerationStatusProcessing, row.GenerationStatus)

	t.Run("one script row per sub-task", func(t *testing.T) {
		again, err := scriptService.BeginGeneration(ctx, parent.ID, subTaskID, "professional", nil)
		require.NoError(t, err)
		assert.Equal(t, row.ID, again.ID)
	})

	t.Run("complete stores normalized result", func(t *testing.T) {
		materialID := "mi-1"
		result := &models.ScriptResult{
			Titles:    []string{"Three Go concurrency patterns"},
			Narration: "Today we look at three patterns every Go service uses.",
			Scenes: []models.Scene{
				{SceneID: 1, Timing: "0s-10s", Narration: "Opening hook.", MaterialID: &materialID},
				{SceneID: 2, Timing: "10s-25s", Narration: "Worker pools in practice.", MaterialID: nil},
			},
			MaterialMapping:   map[string]string{"mi-1": "scene 1 background"},
			Tags:              []string{"golang", "concurrency"},
			EstimatedDuration: 25,
			WordCount:         180,
			MaterialCount:     1,
			RawResponse:       `{"titles": ["Three Go concurrency patterns"]}`,
		}

		completed, err := scriptService.CompleteGeneration(ctx, row.ID, result)
		require.NoError(t, err)
		assert.Equal(t, scriptcontent.GenerationStatusCompleted, completed.GenerationStatus)
		assert.Len(t, completed.Scenes, 2)
		assert.Equal(t, "mi-1", completed.Scenes[0]["material_id"])
		_, hasMaterial := completed.Scenes[1]["material_id"]
		assert.False(t, hasMaterial)
		assert.Equal(t, 25, completed.EstimatedDuration)
	})

	t.Run("get by sub-task", func(t *testing.T) {
		got, err := scriptService.GetBySubTask(ctx, subTaskID)
		require.NoError(t, err)
		assert.Equal(t, row.ID, got.ID)
	})
}

func TestScriptService_FailGeneration(t *testing.T) {
	client := testdb.NewTestClient(t)
	scriptService := NewScriptService(client.Client)
	subTaskService := NewSubTaskService(client.Client)
	ctx := context.Background()

	parent := createTestTask(t, client.Client, 1)
	subTasks, err := subTaskService.CreateForTask(ctx, parent.ID, 1, "professional")
	require.NoError(t, err)

	row, err := scriptService.BeginGeneration(ctx, parent.ID, subTasks[0].ID, "professional", nil)
	require.NoError(t, err)

	require.NoError(t, scriptService.FailGeneration(ctx, row.ID, "model returned no usable JSON"))

	got, err := scriptService.GetBySubTask(ctx, subTasks[0].ID)
	require.NoError(t, err)
	assert.Equal(t, scriptcontent.GenerationStatusFailed, got.GenerationStatus)
	require.NotNil(t, got.ErrorMessage)
	assert.Equal(t, "model returned no usable JSON", *got.ErrorMessage)
}

func TestPersonaService_Templates(t *testing.T) {
	client := testdb.NewTestClient(t)
	personaService := NewPersonaService(client.Client)
	ctx := context.Background()

	require.NoError(t, personaService.SeedDefaults(ctx))
	// Seeding twice must be harmless.
	require.NoError(t, personaService.SeedDefaults(ctx))

	t.Run("exact style match", func(t *testing.T) {
		content, err := personaService.GetTemplate(ctx, "core_task", "casual")
		require.NoError(t, err)
		assert.Contains(t, content, "conversational")
	})

	t.Run("falls back to professional", func(t *testing.T) {
		content, err := personaService.GetTemplate(ctx, "methodology", "casual")
		require.NoError(t, err)
		assert.Contains(t, content, "scene by scene")
	})

	t.Run("unknown type is not found", func(t *testing.T) {
		_, err := personaService.GetTemplate(ctx, "nonexistent", "professional")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("nil persona id resolves to nil info", func(t *testing.T) {
		info, err := personaService.GetPersonaInfo(ctx, nil)
		require.NoError(t, err)
		assert.Nil(t, info)
	})

	t.Run("preset persona resolves", func(t *testing.T) {
		id := "persona_lecturer"
		info, err := personaService.GetPersonaInfo(ctx, &id)
		require.NoError(t, err)
		require.NotNil(t, info)
		assert.Equal(t, "Lecturer", info.Name)
	})
}
