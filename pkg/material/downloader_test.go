package material

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/textloom/textloom/pkg/models"
)

// pngHeader is a minimal valid PNG signature, enough for magic-byte sniffing.
var pngHeader = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}

func TestDownloader_DownloadAll(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/img.png":
			_, _ = w.Write(pngHeader)
			_, _ = w.Write(make([]byte, 64))
		case "/missing.png":
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	defer srv.Close()

	d := NewDownloader(1<<20, 2, slog.Default())
	media := []models.ExtractedMedia{
		{URL: srv.URL + "/img.png", MediaType: models.MediaTypeImage},
		{URL: srv.URL + "/missing.png", MediaType: models.MediaTypeImage},
	}

	results := d.DownloadAll(context.Background(), media, t.TempDir())
	require.Len(t, results, 2)

	ok := results[0]
	require.NoError(t, ok.Err)
	assert.Equal(t, "img.png", ok.Filename)
	assert.Equal(t, int64(len(pngHeader)+64), ok.Size)
	assert.Equal(t, "image/png", ok.MimeType)

	assert.Error(t, results[1].Err)
	assert.Contains(t, results[1].Err.Error(), "status 404")
}

func TestDownloader_SizeLimit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write(make([]byte, 2048))
	}))
	defer srv.Close()

	d := NewDownloader(1024, 1, slog.Default())
	results := d.DownloadAll(context.Background(),
		[]models.ExtractedMedia{{URL: srv.URL + "/big.bin", MediaType: models.MediaTypeVideo}},
		t.TempDir())

	require.Len(t, results, 1)
	require.Error(t, results[0].Err)
	assert.Contains(t, results[0].Err.Error(), "size limit")
}

func TestDownloader_BoundedConcurrency(t *testing.T) {
	var inflight, peak int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		cur := atomic.AddInt64(&inflight, 1)
		for {
			old := atomic.LoadInt64(&peak)
			if cur <= old || atomic.CompareAndSwapInt64(&peak, old, cur) {
				break
			}
		}
		_, _ = w.Write([]byte("data"))
		atomic.AddInt64(&inflight, -1)
	}))
	defer srv.Close()

	d := NewDownloader(1<<20, 2, slog.Default())

	var media []models.ExtractedMedia
	for i := 0; i < 8; i++ {
		media = append(media, models.ExtractedMedia{
			URL:       srv.URL + "/f" + strings.Repeat("x", i) + ".bin",
			MediaType: models.MediaTypeImage,
		})
	}

	results := d.DownloadAll(context.Background(), media, t.TempDir())
	for _, r := range results {
		require.NoError(t, r.Err)
	}
	assert.LessOrEqual(t, atomic.LoadInt64(&peak), int64(2))
}

func TestFilenameFromURL(t *testing.T) {
	assert.Equal(t, "demo.mp4", filenameFromURL("https://example.com/videos/demo.mp4?sig=abc"))
	assert.Equal(t, "download", filenameFromURL("https://example.com/"))
}
