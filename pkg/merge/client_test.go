package merge

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/textloom/textloom/pkg/config"
	"github.com/textloom/textloom/pkg/models"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := config.DefaultVideoMergeConfig()
	cfg.BaseURL = srv.URL
	return NewClient(cfg, slog.Default())
}

func TestClient_Submit(t *testing.T) {
	var got models.MergeSubmission
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/v1/merge", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		json.NewEncoder(w).Encode(map[string]string{"course_media_id": "cm-123"})
	}))

	id, err := client.Submit(context.Background(), models.MergeSubmission{
		TaskID:    "task-1",
		SubTaskID: "task-1_video_1",
		Title:     "Demo",
	})
	require.NoError(t, err)
	assert.Equal(t, "cm-123", id)
	assert.Equal(t, "task-1_video_1", got.SubTaskID)
}

func TestClient_SubmitMissingID(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{})
	}))

	_, err := client.Submit(context.Background(), models.MergeSubmission{SubTaskID: "task-1_video_1"})
	assert.ErrorContains(t, err, "no course_media_id")
}

func TestClient_QueryStatus(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/merge/cm-123", r.URL.Path)
		json.NewEncoder(w).Encode(models.MergeStatus{
			Status:      models.MergeStatusSucceeded,
			MergeVideo:  "https://cdn/video.mp4",
			SnapshotURL: "https://cdn/thumb.jpg",
			Duration:    73.5,
		})
	}))

	status, err := client.QueryStatus(context.Background(), "cm-123")
	require.NoError(t, err)
	assert.Equal(t, models.MergeStatusSucceeded, status.Status)
	assert.Equal(t, "https://cdn/video.mp4", status.MergeVideo)
	assert.Equal(t, "cm-123", status.CourseMediaID)
}

func TestClient_ServerErrorSurfacesBody(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "render farm offline", http.StatusBadGateway)
	}))

	_, err := client.QueryStatus(context.Background(), "cm-123")
	assert.ErrorContains(t, err, "502")
	assert.ErrorContains(t, err, "render farm offline")
}

func TestClient_BreakerOpensAfterConsecutiveFailures(t *testing.T) {
	var calls int
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		http.Error(w, "down", http.StatusInternalServerError)
	}))

	for i := 0; i < 10; i++ {
		_, _ = client.QueryStatus(context.Background(), "cm-123")
	}

	// After the trip threshold the breaker short-circuits without calling out.
	assert.Equal(t, 5, calls)
}

func TestBuildSubmission(t *testing.T) {
	matID := "mi-1"
	result := &models.ScriptResult{
		Title:     "Demo",
		Narration: "full narration",
		Scenes: []models.Scene{
			{SceneID: 1, Timing: "0s-12s", Narration: "intro", MaterialID: &matID},
			{SceneID: 2, Timing: "12s-30.5s", Narration: "outro"},
		},
	}

	sub := BuildSubmission("task-1", "task-1_video_1", result, map[string]string{
		"mi-1": "https://cdn/a.png",
	})

	assert.Equal(t, "task-1", sub.TaskID)
	require.Len(t, sub.Scenes, 2)
	assert.Equal(t, 0.0, sub.Scenes[0].Start)
	assert.Equal(t, 12.0, sub.Scenes[0].End)
	assert.Equal(t, 30.5, sub.Scenes[1].End)
	assert.Equal(t, "https://cdn/a.png", sub.Scenes[0].MediaURL)
	assert.Empty(t, sub.Scenes[1].MediaURL)
	assert.Equal(t, []string{"https://cdn/a.png"}, sub.MediaURLs)
}
