package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/textloom/textloom/pkg/models"
	testdb "github.com/textloom/textloom/test/database"
)

func TestMediaService_UpsertMediaItem(t *testing.T) {
	client := testdb.NewTestClient(t)
	mediaService := NewMediaService(client.Client)
	ctx := context.Background()

	parent := createTestTask(t, client.Client, 1)
	url := "https://example.com/demo.mp4"

	t.Run("inserts new item", func(t *testing.T) {
		item, err := mediaService.UpsertMediaItem(ctx, models.CreateMediaItemRequest{
			TaskID:        parent.ID,
			OriginalURL:   url,
			MediaType:     models.MediaTypeVideo,
			Caption:       "product demo",
			ContextBefore: "The following recording shows the feature in action.",
			Position:      120,
		})
		require.NoError(t, err)
		assert.Equal(t, url, item.OriginalURL)
		assert.Equal(t, "product demo", item.Caption)
	})

	t.Run("re-processing converges on the same row", func(t *testing.T) {
		item, err := mediaService.UpsertMediaItem(ctx, models.CreateMediaItemRequest{
			TaskID:      parent.ID,
			OriginalURL: url,
			MediaType:   models.MediaTypeVideo,
			CloudURL:    "https://storage/textloom/x/demo.mp4",
			FileSize:    1 << 20,
			Duration:    33.4,
			Position:    120,
		})
		require.NoError(t, err)
		assert.Equal(t, "https://storage/textloom/x/demo.mp4", item.CloudURL)

		count, err := client.Client.MediaItem.Query().Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("same url under another task is a separate row", func(t *testing.T) {
		other := createTestTask(t, client.Client, 1)
		_, err := mediaService.UpsertMediaItem(ctx, models.CreateMediaItemRequest{
			TaskID:      other.ID,
			OriginalURL: url,
			MediaType:   models.MediaTypeVideo,
		})
		require.NoError(t, err)

		count, err := client.Client.MediaItem.Query().Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, count)
	})
}

func TestMediaService_ListVisualByTask(t *testing.T) {
	client := testdb.NewTestClient(t)
	mediaService := NewMediaService(client.Client)
	ctx := context.Background()

	parent := createTestTask(t, client.Client, 1)

	for _, item := range []struct {
		url       string
		mediaType models.MediaType
		position  int
	}{
		{"https://example.com/b.png", models.MediaTypeImage, 200},
		{"https://example.com/a.mp4", models.MediaTypeVideo, 100},
		{"https://example.com/notes.md", models.MediaTypeMarkdown, 50},
		{"https://example.com/voice.mp3", models.MediaTypeAudio, 300},
	} {
		_, err := mediaService.UpsertMediaItem(ctx, models.CreateMediaItemRequest{
			TaskID:      parent.ID,
			OriginalURL: item.url,
			MediaType:   item.mediaType,
			Position:    item.position,
		})
		require.NoError(t, err)
	}

	visual, err := mediaService.ListVisualByTask(ctx, parent.ID)
	require.NoError(t, err)
	require.Len(t, visual, 2)
	// Document order.
	assert.Equal(t, "https://example.com/a.mp4", visual[0].OriginalURL)
	assert.Equal(t, "https://example.com/b.png", visual[1].OriginalURL)
}
