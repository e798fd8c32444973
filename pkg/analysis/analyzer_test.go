package analysis

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/textloom/textloom/ent"
	"github.com/textloom/textloom/ent/mediaitem"
	"github.com/textloom/textloom/pkg/config"
	"github.com/textloom/textloom/pkg/models"
)

type fakeVision struct {
	mu        sync.Mutex
	responses map[string]string
	err       error
	inflight  int64
	peak      int64
	calls     []string
}

func (f *fakeVision) ChatVision(_ context.Context, _ string, imageURLs []string) (string, error) {
	cur := atomic.AddInt64(&f.inflight, 1)
	defer atomic.AddInt64(&f.inflight, -1)
	for {
		old := atomic.LoadInt64(&f.peak)
		if cur <= old || atomic.CompareAndSwapInt64(&f.peak, old, cur) {
			break
		}
	}

	f.mu.Lock()
	f.calls = append(f.calls, imageURLs[0])
	f.mu.Unlock()

	if f.err != nil {
		return "", f.err
	}
	if resp, ok := f.responses[imageURLs[0]]; ok {
		return resp, nil
	}
	return `{"visual_description": "something visible"}`, nil
}

type fakeResultStore struct {
	mu        sync.Mutex
	completed []*models.AnalysisResult
	failed    []string
}

func (f *fakeResultStore) SaveCompleted(_ context.Context, _ string, r *models.AnalysisResult) (*ent.MaterialAnalysis, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.completed = append(f.completed, r)
	return &ent.MaterialAnalysis{}, nil
}

func (f *fakeResultStore) SaveFailed(_ context.Context, _ string, r *models.AnalysisResult, msg string) (*ent.MaterialAnalysis, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failed = append(f.failed, r.MediaItemID+": "+msg)
	return &ent.MaterialAnalysis{}, nil
}

type noopFrameStore struct{}

func (noopFrameStore) UploadFile(_ context.Context, key, _, _ string) (string, error) {
	return "https://store.local/" + key, nil
}

func imageItem(id, url string) *ent.MediaItem {
	return &ent.MediaItem{
		ID:          id,
		TaskID:      "t1",
		OriginalURL: url,
		CloudURL:    url,
		MediaType:   mediaitem.MediaTypeImage,
	}
}

func TestAnalyzer_AnalyzeMaterials(t *testing.T) {
	vision := &fakeVision{
		responses: map[string]string{
			"https://cdn/a.png": `{"visual_description": "a diagram of the deployment flow", "quality_score": 0.9}`,
			"https://cdn/b.png": `not json at all`,
		},
	}
	store := &fakeResultStore{}
	a := NewAnalyzer(config.DefaultPipelineConfig(), vision, noopFrameStore{}, store, slog.Default())

	items := []*ent.MediaItem{
		imageItem("mi-a", "https://cdn/a.png"),
		imageItem("mi-b", "https://cdn/b.png"),
	}

	byID, summary := a.AnalyzeMaterials(context.Background(), "t1", items)

	assert.Equal(t, 2, summary.Total)
	assert.Equal(t, 1, summary.Completed)
	assert.Equal(t, 1, summary.Failed)

	require.True(t, byID["mi-a"].Valid())
	assert.Equal(t, "a diagram of the deployment flow", byID["mi-a"].AIDescription)
	assert.False(t, byID["mi-b"].Valid())

	require.Len(t, store.completed, 1)
	require.Len(t, store.failed, 1)
	assert.Contains(t, store.failed[0], "mi-b")
}

func TestAnalyzer_BoundedConcurrency(t *testing.T) {
	cfg := config.DefaultPipelineConfig()
	cfg.MaxConcurrentAnalysis = 2

	vision := &fakeVision{}
	a := NewAnalyzer(cfg, vision, noopFrameStore{}, &fakeResultStore{}, slog.Default())

	var items []*ent.MediaItem
	for i := 0; i < 10; i++ {
		items = append(items, imageItem(
			"mi-"+string(rune('a'+i)),
			"https://cdn/img-"+string(rune('a'+i))+".png"))
	}

	_, summary := a.AnalyzeMaterials(context.Background(), "t1", items)
	assert.Equal(t, 10, summary.Completed)
	assert.LessOrEqual(t, atomic.LoadInt64(&vision.peak), int64(2))
}

func TestAnalyzer_VisionErrorIsPerItem(t *testing.T) {
	vision := &fakeVision{err: errors.New("model unavailable")}
	store := &fakeResultStore{}
	a := NewAnalyzer(config.DefaultPipelineConfig(), vision, noopFrameStore{}, store, slog.Default())

	byID, summary := a.AnalyzeMaterials(context.Background(), "t1",
		[]*ent.MediaItem{imageItem("mi-a", "https://cdn/a.png")})

	assert.Equal(t, 1, summary.Failed)
	assert.ErrorContains(t, byID["mi-a"].Err, "model unavailable")
	assert.Len(t, store.failed, 1)
}

func TestAnalyzer_MissingCloudURL(t *testing.T) {
	store := &fakeResultStore{}
	a := NewAnalyzer(config.DefaultPipelineConfig(), &fakeVision{}, noopFrameStore{}, store, slog.Default())

	item := imageItem("mi-a", "https://origin/a.png")
	item.CloudURL = ""

	byID, summary := a.AnalyzeMaterials(context.Background(), "t1", []*ent.MediaItem{item})
	assert.Equal(t, 1, summary.Failed)
	assert.ErrorContains(t, byID["mi-a"].Err, "no cloud URL")
}
