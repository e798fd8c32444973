package material

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/textloom/textloom/ent"
	"github.com/textloom/textloom/pkg/config"
	"github.com/textloom/textloom/pkg/models"
	"github.com/textloom/textloom/pkg/storage"
)

// ErrNoEffectiveContent is returned when the manifest has no usable text.
var ErrNoEffectiveContent = errors.New("no effective source content")

// ObjectStore is the slice of the storage client the processor needs.
type ObjectStore interface {
	UploadFile(ctx context.Context, key, localPath, contentType string) (string, error)
	InNamespace(url string) bool
}

// MediaStore persists media item rows.
type MediaStore interface {
	UpsertMediaItem(ctx context.Context, req models.CreateMediaItemRequest) (*ent.MediaItem, error)
}

// Result is the material stage output: the manifest text and the persisted
// media rows.
type Result struct {
	Content string
	Items   []*ent.MediaItem
}

// Processor runs the material acquisition stage for one task.
type Processor struct {
	downloader *Downloader
	store      ObjectStore
	media      MediaStore
	probeLimit time.Duration
	logger     *slog.Logger
}

// NewProcessor builds a material processor from the pipeline configuration.
func NewProcessor(cfg *config.PipelineConfig, store ObjectStore, media MediaStore, logger *slog.Logger) *Processor {
	return &Processor{
		downloader: NewDownloader(cfg.MaxFileSize, cfg.MaxConcurrentDownloads, logger),
		store:      store,
		media:      media,
		probeLimit: cfg.ProbeTimeout,
		logger:     logger,
	}
}

// ProcessMaterials reads the source manifest, extracts and acquires its
// media, and persists one MediaItem row per reference. Per-item acquisition
// failures are logged and skipped; the stage fails only when the manifest
// itself is unusable.
func (p *Processor) ProcessMaterials(ctx context.Context, taskID, sourceFile, workspaceDir string) (*Result, error) {
	raw, err := os.ReadFile(sourceFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read source manifest: %w", err)
	}
	content := string(raw)

	if strings.TrimSpace(content) == "" || !HasEffectiveContent(content) {
		return nil, ErrNoEffectiveContent
	}

	extraction := ExtractMedia(content)
	p.logger.Info("Extracted media references", "task_id", taskID, "count", len(extraction.Media))

	materialsDir := filepath.Join(workspaceDir, "materials")
	if err := os.MkdirAll(materialsDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create materials dir: %w", err)
	}

	// In-namespace URLs are recorded as-is; the rest go through the fetcher.
	var toFetch []models.ExtractedMedia
	result := &Result{Content: content}

	for _, m := range extraction.Media {
		if p.store.InNamespace(m.URL) {
			item, err := p.media.UpsertMediaItem(ctx, models.CreateMediaItemRequest{
				TaskID:        taskID,
				OriginalURL:   m.URL,
				CloudURL:      m.URL,
				MediaType:     m.MediaType,
				ContextBefore: m.ContextBefore,
				Caption:       m.Caption,
				ContextAfter:  m.ContextAfter,
				Position:      m.Position,
			})
			if err != nil {
				p.logger.Error("Failed to persist in-namespace media item", "task_id", taskID, "url", m.URL, "error", err)
				continue
			}
			result.Items = append(result.Items, item)
			continue
		}
		toFetch = append(toFetch, m)
	}

	for _, dl := range p.downloader.DownloadAll(ctx, toFetch, materialsDir) {
		if dl.Err != nil {
			p.logger.Warn("Skipping media item", "task_id", taskID, "url", dl.Media.URL, "error", dl.Err)
			continue
		}

		item, err := p.acquire(ctx, taskID, dl)
		if err != nil {
			p.logger.Error("Failed to acquire media item", "task_id", taskID, "url", dl.Media.URL, "error", err)
			continue
		}
		result.Items = append(result.Items, item)
	}

	return result, nil
}

// acquire re-uploads one downloaded file, probes its visual metadata, and
// persists the MediaItem row.
func (p *Processor) acquire(ctx context.Context, taskID string, dl Downloaded) (*ent.MediaItem, error) {
	key := storage.MaterialKey(taskID, dl.Filename)
	cloudURL, err := p.store.UploadFile(ctx, key, dl.LocalPath, dl.MimeType)
	if err != nil {
		return nil, fmt.Errorf("failed to upload material: %w", err)
	}

	req := models.CreateMediaItemRequest{
		TaskID:        taskID,
		OriginalURL:   dl.Media.URL,
		CloudURL:      cloudURL,
		LocalPath:     dl.LocalPath,
		Filename:      dl.Filename,
		MimeType:      dl.MimeType,
		MediaType:     dl.Media.MediaType,
		FileSize:      dl.Size,
		ContextBefore: dl.Media.ContextBefore,
		Caption:       dl.Media.Caption,
		ContextAfter:  dl.Media.ContextAfter,
		Position:      dl.Media.Position,
	}

	switch dl.Media.MediaType {
	case models.MediaTypeImage:
		if probe, err := ProbeImage(dl.LocalPath); err == nil {
			req.Width = probe.Width
			req.Height = probe.Height
		} else {
			p.logger.Warn("Image probe failed", "url", dl.Media.URL, "error", err)
		}
	case models.MediaTypeVideo, models.MediaTypeAudio:
		probe, err := ProbeVideo(ctx, dl.LocalPath, p.probeLimit)
		if err != nil {
			// Secondary probe over the cloud URL.
			probe, err = ProbeVideo(ctx, cloudURL, p.probeLimit)
		}
		if err == nil {
			req.Width = probe.Width
			req.Height = probe.Height
			req.Duration = probe.Duration
		} else {
			p.logger.Warn("Video probe failed", "url", dl.Media.URL, "error", err)
		}
	}

	return p.media.UpsertMediaItem(ctx, req)
}
