package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/textloom/textloom/ent/materialanalysis"
	"github.com/textloom/textloom/pkg/models"
	testdb "github.com/textloom/textloom/test/database"
)

func TestAnalysisService_CompletedWins(t *testing.T) {
	client := testdb.NewTestClient(t)
	analysisService := NewAnalysisService(client.Client)
	ctx := context.Background()

	parent := createTestTask(t, client.Client, 1)
	url := "https://example.com/chart.png"

	completed := &models.AnalysisResult{
		MediaItemID:   "mi-1",
		OriginalURL:   url,
		AIDescription: "a bar chart comparing quarterly revenue",
		KeyObjects:    []string{"bar chart", "axis labels"},
		QualityScore:  0.85,
		QualityLevel:  "high",
	}

	t.Run("completed result is stored", func(t *testing.T) {
		row, err := analysisService.SaveCompleted(ctx, parent.ID, completed)
		require.NoError(t, err)
		assert.Equal(t, materialanalysis.StatusCompleted, row.Status)
		assert.Equal(t, completed.AIDescription, row.AiDescription)
	})

	t.Run("failed write cannot downgrade completed", func(t *testing.T) {
		failed := &models.AnalysisResult{MediaItemID: "mi-1", OriginalURL: url}
		row, err := analysisService.SaveFailed(ctx, parent.ID, failed, "vision call timed out")
		require.NoError(t, err)
		assert.Equal(t, materialanalysis.StatusCompleted, row.Status)
		assert.Equal(t, completed.AIDescription, row.AiDescription)
	})

	t.Run("completed overwrites an earlier failure", func(t *testing.T) {
		url2 := "https://example.com/clip.mp4"
		failed := &models.AnalysisResult{MediaItemID: "mi-2", OriginalURL: url2}
		row, err := analysisService.SaveFailed(ctx, parent.ID, failed, "timeout")
		require.NoError(t, err)
		assert.Equal(t, materialanalysis.StatusFailed, row.Status)

		retry := &models.AnalysisResult{
			MediaItemID:   "mi-2",
			OriginalURL:   url2,
			AIDescription: "a screen recording of a terminal session",
			Duration:      31.2,
			FPS:           30,
		}
		row, err = analysisService.SaveCompleted(ctx, parent.ID, retry)
		require.NoError(t, err)
		assert.Equal(t, materialanalysis.StatusCompleted, row.Status)
		assert.InDelta(t, 31.2, row.Duration, 0.001)
	})

	t.Run("natural key keeps one row per url", func(t *testing.T) {
		rows, err := client.Client.MaterialAnalysis.Query().All(ctx)
		require.NoError(t, err)
		assert.Len(t, rows, 2)
	})
}

func TestAnalysisService_Summarize(t *testing.T) {
	client := testdb.NewTestClient(t)
	analysisService := NewAnalysisService(client.Client)
	ctx := context.Background()

	parent := createTestTask(t, client.Client, 1)

	_, err := analysisService.SaveCompleted(ctx, parent.ID, &models.AnalysisResult{
		MediaItemID:   "mi-1",
		OriginalURL:   "https://example.com/a.png",
		AIDescription: "ok",
	})
	require.NoError(t, err)

	_, err = analysisService.SaveFailed(ctx, parent.ID, &models.AnalysisResult{
		MediaItemID: "mi-2",
		OriginalURL: "https://example.com/b.png",
	}, "unreachable")
	require.NoError(t, err)

	summary, err := analysisService.Summarize(ctx, parent.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Total)
	assert.Equal(t, 1, summary.Completed)
	assert.Equal(t, 1, summary.Failed)
	assert.InDelta(t, 0.5, summary.FailureRate(), 0.001)
}
