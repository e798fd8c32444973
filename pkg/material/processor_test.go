package material

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/textloom/textloom/ent"
	"github.com/textloom/textloom/pkg/config"
	"github.com/textloom/textloom/pkg/models"
)

type fakeObjectStore struct {
	mu       sync.Mutex
	uploads  []string
	baseURL  string
	inScope  map[string]bool
}

func (f *fakeObjectStore) UploadFile(_ context.Context, key, _, _ string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.uploads = append(f.uploads, key)
	return f.baseURL + "/" + key, nil
}

func (f *fakeObjectStore) InNamespace(url string) bool {
	return f.inScope[url]
}

type fakeMediaStore struct {
	mu   sync.Mutex
	reqs []models.CreateMediaItemRequest
}

func (f *fakeMediaStore) UpsertMediaItem(_ context.Context, req models.CreateMediaItemRequest) (*ent.MediaItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reqs = append(f.reqs, req)
	return &ent.MediaItem{
		ID:          "mi-" + req.OriginalURL,
		TaskID:      req.TaskID,
		OriginalURL: req.OriginalURL,
		CloudURL:    req.CloudURL,
	}, nil
}

func writeManifest(t *testing.T, dir, content string) string {
	t.Helper()
	p := filepath.Join(dir, "source_manifest.md")
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestProcessor_ProcessMaterials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, ".png") {
			_, _ = w.Write(pngHeader)
			_, _ = w.Write(make([]byte, 32))
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	inNamespaceURL := "https://store.local/media/textloom/t1/materials/old.png"
	store := &fakeObjectStore{
		baseURL: "https://store.local/media",
		inScope: map[string]bool{inNamespaceURL: true},
	}
	media := &fakeMediaStore{}

	workspace := t.TempDir()
	manifest := writeManifest(t, workspace, strings.Join([]string{
		"A document about release pipelines.",
		"",
		"![new diagram](" + srv.URL + "/diagram.png)",
		"",
		"![old diagram](" + inNamespaceURL + ")",
		"",
		"![broken](" + srv.URL + "/gone.jpg)",
	}, "\n"))

	p := NewProcessor(config.DefaultPipelineConfig(), store, media, slog.Default())
	result, err := p.ProcessMaterials(context.Background(), "t1", manifest, workspace)
	require.NoError(t, err)

	// The broken URL is skipped, not fatal.
	require.Len(t, result.Items, 2)
	assert.Contains(t, result.Content, "release pipelines")

	// In-namespace item recorded without re-upload.
	require.Len(t, store.uploads, 1)
	assert.Equal(t, "textloom/t1/materials/diagram.png", store.uploads[0])

	byURL := map[string]models.CreateMediaItemRequest{}
	for _, r := range media.reqs {
		byURL[r.OriginalURL] = r
	}
	assert.Equal(t, inNamespaceURL, byURL[inNamespaceURL].CloudURL)
	assert.Equal(t, "https://store.local/media/textloom/t1/materials/diagram.png", byURL[srv.URL+"/diagram.png"].CloudURL)
	assert.Equal(t, "image/png", byURL[srv.URL+"/diagram.png"].MimeType)
}

func TestProcessor_MediaOnlyManifest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasSuffix(r.URL.Path, ".jpg"):
			_, _ = w.Write(pngHeader)
			_, _ = w.Write(make([]byte, 32))
		case strings.HasSuffix(r.URL.Path, ".mp4"):
			_, _ = w.Write([]byte("\x00\x00\x00\x18ftypmp42"))
			_, _ = w.Write(make([]byte, 64))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	// No prose at all, only references. The stage still runs.
	workspace := t.TempDir()
	manifest := writeManifest(t, workspace, strings.Join([]string{
		"![](" + srv.URL + "/a.jpg)",
		"",
		`<video src="` + srv.URL + `/b.mp4"></video>`,
	}, "\n"))

	store := &fakeObjectStore{baseURL: "https://store.local/media"}
	media := &fakeMediaStore{}
	p := NewProcessor(config.DefaultPipelineConfig(), store, media, slog.Default())

	result, err := p.ProcessMaterials(context.Background(), "t1", manifest, workspace)
	require.NoError(t, err)
	require.Len(t, result.Items, 2)
	require.Len(t, media.reqs, 2)

	types := map[models.MediaType]bool{}
	for _, r := range media.reqs {
		types[r.MediaType] = true
	}
	assert.True(t, types[models.MediaTypeImage])
	assert.True(t, types[models.MediaTypeVideo])
}

func TestProcessor_NoEffectiveContent(t *testing.T) {
	workspace := t.TempDir()
	manifest := writeManifest(t, workspace, "<!-- nothing here yet -->\n\n   \n")

	p := NewProcessor(config.DefaultPipelineConfig(), &fakeObjectStore{}, &fakeMediaStore{}, slog.Default())
	_, err := p.ProcessMaterials(context.Background(), "t1", manifest, workspace)
	assert.ErrorIs(t, err, ErrNoEffectiveContent)
}

func TestProcessor_MissingManifest(t *testing.T) {
	p := NewProcessor(config.DefaultPipelineConfig(), &fakeObjectStore{}, &fakeMediaStore{}, slog.Default())
	_, err := p.ProcessMaterials(context.Background(), "t1", "/nonexistent/manifest.md", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "source manifest")
}
