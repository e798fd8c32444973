package material

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gabriel-vasile/mimetype"

	"github.com/textloom/textloom/pkg/models"
)

// Downloaded describes one fetched media file in the workspace.
type Downloaded struct {
	Media     models.ExtractedMedia
	LocalPath string
	Filename  string
	MimeType  string
	Size      int64
	Err       error
}

// Downloader fetches media URLs into the task workspace with bounded
// concurrency and a per-file size cap.
type Downloader struct {
	httpClient  *http.Client
	maxFileSize int64
	parallelism int
	logger      *slog.Logger
}

// NewDownloader builds a downloader. parallelism bounds concurrent fetches;
// maxFileSize bounds each file's size in bytes.
func NewDownloader(maxFileSize int64, parallelism int, logger *slog.Logger) *Downloader {
	if parallelism < 1 {
		parallelism = 1
	}
	return &Downloader{
		httpClient: &http.Client{
			Timeout: 5 * time.Minute,
			Transport: &http.Transport{
				ResponseHeaderTimeout: 30 * time.Second,
				IdleConnTimeout:       90 * time.Second,
			},
		},
		maxFileSize: maxFileSize,
		parallelism: parallelism,
		logger:      logger,
	}
}

// DownloadAll fetches every media reference into dir. Results are returned
// in input order; per-item failures are recorded on the result, not fatal.
func (d *Downloader) DownloadAll(ctx context.Context, media []models.ExtractedMedia, dir string) []Downloaded {
	results := make([]Downloaded, len(media))
	sem := make(chan struct{}, d.parallelism)
	var wg sync.WaitGroup

	for i, m := range media {
		wg.Add(1)
		go func(i int, m models.ExtractedMedia) {
			defer wg.Done()
			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				results[i] = Downloaded{Media: m, Err: ctx.Err()}
				return
			}
			results[i] = d.download(ctx, m, dir)
		}(i, m)
	}
	wg.Wait()

	return results
}

// download fetches one URL to dir and sniffs its mime type.
func (d *Downloader) download(ctx context.Context, m models.ExtractedMedia, dir string) Downloaded {
	res := Downloaded{Media: m}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, m.URL, nil)
	if err != nil {
		res.Err = fmt.Errorf("invalid media URL %s: %w", m.URL, err)
		return res
	}

	resp, err := d.httpClient.Do(req)
	if err != nil {
		res.Err = fmt.Errorf("failed to fetch %s: %w", m.URL, err)
		return res
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		res.Err = fmt.Errorf("fetch %s returned status %d", m.URL, resp.StatusCode)
		return res
	}
	if resp.ContentLength > 0 && resp.ContentLength > d.maxFileSize {
		res.Err = fmt.Errorf("file %s exceeds size limit (%d > %d bytes)", m.URL, resp.ContentLength, d.maxFileSize)
		return res
	}

	filename := filenameFromURL(m.URL)
	localPath := filepath.Join(dir, filename)
	out, err := os.Create(localPath)
	if err != nil {
		res.Err = fmt.Errorf("failed to create %s: %w", localPath, err)
		return res
	}
	defer out.Close()

	// +1 so an exactly-at-limit body is distinguishable from an oversized one.
	written, err := io.Copy(out, io.LimitReader(resp.Body, d.maxFileSize+1))
	if err != nil {
		_ = os.Remove(localPath)
		res.Err = fmt.Errorf("failed to save %s: %w", m.URL, err)
		return res
	}
	if written > d.maxFileSize {
		_ = os.Remove(localPath)
		res.Err = fmt.Errorf("file %s exceeds size limit (%d bytes)", m.URL, d.maxFileSize)
		return res
	}

	res.LocalPath = localPath
	res.Filename = filename
	res.Size = written
	res.MimeType = detectMimeType(localPath, m.URL)

	d.logger.Debug("Downloaded media", "url", m.URL, "bytes", written, "mime", res.MimeType)
	return res
}

// detectMimeType sniffs magic bytes and falls back to the URL suffix.
func detectMimeType(localPath, sourceURL string) string {
	if mt, err := mimetype.DetectFile(localPath); err == nil && mt.String() != "application/octet-stream" {
		return mt.String()
	}
	if ext := path.Ext(strippedURLPath(sourceURL)); ext != "" {
		if byExt := mime.TypeByExtension(ext); byExt != "" {
			return byExt
		}
	}
	return "application/octet-stream"
}

// filenameFromURL derives a workspace filename from the URL path, sanitized
// for the local filesystem.
func filenameFromURL(rawURL string) string {
	name := path.Base(strippedURLPath(rawURL))
	if name == "" || name == "." || name == "/" {
		name = "download"
	}
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '_'
		}
		return r
	}, name)
}

func strippedURLPath(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	return u.Path
}
