package services

import (
	"context"
	"fmt"
	"time"

	"github.com/textloom/textloom/ent"
	"github.com/textloom/textloom/ent/mediaitem"
	"github.com/textloom/textloom/pkg/models"
	"github.com/google/uuid"
)

// MediaService persists the media items discovered in a task's source
// manifest. (task_id, original_url) is the natural key, so re-processing the
// same manifest after a crash or a duplicate queue delivery converges on the
// same rows.
type MediaService struct {
	client *ent.Client
}

// NewMediaService creates a new MediaService
func NewMediaService(client *ent.Client) *MediaService {
	return &MediaService{client: client}
}

// UpsertMediaItem inserts or refreshes one media item keyed by
// (task_id, original_url) and returns the stored row.
func (s *MediaService) UpsertMediaItem(ctx context.Context, req models.CreateMediaItemRequest) (*ent.MediaItem, error) {
	if req.TaskID == "" {
		return nil, NewValidationError("task_id", "required")
	}
	if req.OriginalURL == "" {
		return nil, NewValidationError("original_url", "required")
	}
	if req.MediaType == "" {
		return nil, NewValidationError("media_type", "required")
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	builder := s.client.MediaItem.Create().
		SetID(uuid.New().String()).
		SetTaskID(req.TaskID).
		SetOriginalURL(req.OriginalURL).
		SetMediaType(mediaitem.MediaType(req.MediaType)).
		SetPosition(req.Position)

	if req.CloudURL != "" {
		builder.SetCloudURL(req.CloudURL)
	}
	if req.LocalPath != "" {
		builder.SetLocalPath(req.LocalPath)
	}
	if req.Filename != "" {
		builder.SetFilename(req.Filename)
	}
	if req.MimeType != "" {
		builder.SetMimeType(req.MimeType)
	}
	if req.FileSize > 0 {
		builder.SetFileSize(req.FileSize)
	}
	if req.Width > 0 {
		builder.SetWidth(req.Width)
	}
	if req.Height > 0 {
		builder.SetHeight(req.Height)
	}
	if req.Duration > 0 {
		builder.SetDuration(req.Duration)
	}
	if req.ContextBefore != "" {
		builder.SetContextBefore(req.ContextBefore)
	}
	if req.Caption != "" {
		builder.SetCaption(req.Caption)
	}
	if req.ContextAfter != "" {
		builder.SetContextAfter(req.ContextAfter)
	}

	err := builder.
		OnConflictColumns(mediaitem.FieldTaskID, mediaitem.FieldOriginalURL).
		UpdateNewValues().
		Exec(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert media item: %w", err)
	}

	item, err := s.GetByURL(writeCtx, req.TaskID, req.OriginalURL)
	if err != nil {
		return nil, err
	}
	return item, nil
}

// GetByURL fetches the media item stored for one manifest URL.
func (s *MediaService) GetByURL(ctx context.Context, taskID, originalURL string) (*ent.MediaItem, error) {
	item, err := s.client.MediaItem.Query().
		Where(
			mediaitem.TaskIDEQ(taskID),
			mediaitem.OriginalURLEQ(originalURL),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get media item: %w", err)
	}
	return item, nil
}

// ListByTask returns a task's media items in document order.
func (s *MediaService) ListByTask(ctx context.Context, taskID string) ([]*ent.MediaItem, error) {
	items, err := s.client.MediaItem.Query().
		Where(mediaitem.TaskIDEQ(taskID)).
		Order(ent.Asc(mediaitem.FieldPosition)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list media items: %w", err)
	}
	return items, nil
}

// ListVisualByTask returns the task's image and video items, the inputs of
// the analysis stage.
func (s *MediaService) ListVisualByTask(ctx context.Context, taskID string) ([]*ent.MediaItem, error) {
	items, err := s.client.MediaItem.Query().
		Where(
			mediaitem.TaskIDEQ(taskID),
			mediaitem.MediaTypeIn(mediaitem.MediaTypeImage, mediaitem.MediaTypeVideo),
		).
		Order(ent.Asc(mediaitem.FieldPosition)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list visual media items: %w", err)
	}
	return items, nil
}
