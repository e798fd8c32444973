package script

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/textloom/textloom/ent"
	"github.com/textloom/textloom/ent/scriptcontent"
	"github.com/textloom/textloom/pkg/config"
	"github.com/textloom/textloom/pkg/models"
)

type fakeModel struct {
	mu       sync.Mutex
	response string
	err      error
	inflight int64
	peak     int64
	prompts  []string
}

func (f *fakeModel) ChatText(_ context.Context, _, userPrompt string) (string, error) {
	cur := atomic.AddInt64(&f.inflight, 1)
	defer atomic.AddInt64(&f.inflight, -1)
	for {
		old := atomic.LoadInt64(&f.peak)
		if cur <= old || atomic.CompareAndSwapInt64(&f.peak, old, cur) {
			break
		}
	}

	f.mu.Lock()
	f.prompts = append(f.prompts, userPrompt)
	f.mu.Unlock()

	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

type fakeScriptStore struct {
	mu        sync.Mutex
	existing  map[string]*ent.ScriptContent
	completed map[string]*models.ScriptResult
	failed    map[string]string
}

func newFakeScriptStore() *fakeScriptStore {
	return &fakeScriptStore{
		existing:  map[string]*ent.ScriptContent{},
		completed: map[string]*models.ScriptResult{},
		failed:    map[string]string{},
	}
}

func (f *fakeScriptStore) BeginGeneration(_ context.Context, taskID, subTaskID, style string, _ *string) (*ent.ScriptContent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if row, ok := f.existing[subTaskID]; ok {
		return row, nil
	}
	row := &ent.ScriptContent{
		ID:               "script-" + subTaskID,
		TaskID:           taskID,
		SubTaskID:        subTaskID,
		Style:            style,
		GenerationStatus: scriptcontent.GenerationStatusProcessing,
	}
	f.existing[subTaskID] = row
	return row, nil
}

func (f *fakeScriptStore) CompleteGeneration(_ context.Context, scriptID string, result *models.ScriptResult) (*ent.ScriptContent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.completed[scriptID] = result
	return &ent.ScriptContent{ID: scriptID}, nil
}

func (f *fakeScriptStore) FailGeneration(_ context.Context, scriptID, errorMessage string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failed[scriptID] = errorMessage
	return nil
}

type fakeSubTaskStore struct {
	mu         sync.Mutex
	processing map[string]int
	scripts    map[string]string
	failed     map[string]string
}

func newFakeSubTaskStore() *fakeSubTaskStore {
	return &fakeSubTaskStore{
		processing: map[string]int{},
		scripts:    map[string]string{},
		failed:     map[string]string{},
	}
}

func (f *fakeSubTaskStore) MarkProcessing(_ context.Context, subTaskID string, progress int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.processing[subTaskID] = progress
	return nil
}

func (f *fakeSubTaskStore) SetScript(_ context.Context, subTaskID, scriptID string, _ map[string]interface{}, progress int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.scripts[subTaskID] = scriptID
	f.processing[subTaskID] = progress
	return nil
}

func (f *fakeSubTaskStore) MarkFailed(_ context.Context, subTaskID, errorMessage string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failed[subTaskID] = errorMessage
	return nil
}

type staticTemplates struct{}

func (staticTemplates) GetTemplate(_ context.Context, templateType, _ string) (string, error) {
	return "template for " + templateType, nil
}

func testRequest(subTasks int) Request {
	task := &ent.Task{ID: "task-1", Title: "Kubernetes in 90 seconds", Description: "keep it punchy"}
	var sts []*ent.SubVideoTask
	for i := 1; i <= subTasks; i++ {
		sts = append(sts, &ent.SubVideoTask{
			ID:          subTaskIDFor("task-1", i),
			TaskID:      "task-1",
			Index:       i,
			ScriptStyle: "professional",
		})
	}
	return Request{
		Task:          task,
		SubTasks:      sts,
		SourceContent: "Kubernetes schedules containers onto nodes.",
		Materials: []models.MaterialContext{
			{MaterialID: "mi-1", MediaType: models.MediaTypeImage, Description: "cluster diagram", URL: "https://cdn/a.png"},
		},
	}
}

// Mirrors the id shape used by the sub-task service.
func subTaskIDFor(taskID string, i int) string {
	return taskID + "_video_" + string(rune('0'+i))
}

const validResponse = `{
	"title": "Kubernetes in 90 seconds",
	"narration": "Kubernetes schedules containers onto nodes so you do not have to.",
	"scenes": [{"scene_id": 1, "timing": "0s-15s", "narration": "Scheduling, explained.", "material_id": "mi-1"}]
}`

func TestGenerator_GenerateAll(t *testing.T) {
	model := &fakeModel{response: validResponse}
	scripts := newFakeScriptStore()
	subTasks := newFakeSubTaskStore()
	g := NewGenerator(config.DefaultPipelineConfig(), model, scripts, subTasks, staticTemplates{}, slog.Default())

	outcomes := g.GenerateAll(context.Background(), testRequest(2))
	require.Len(t, outcomes, 2)

	for _, out := range outcomes {
		require.NoError(t, out.Err)
		require.NotNil(t, out.Result)
		assert.Equal(t, 1, out.Result.MaterialCount)
		assert.Equal(t, "script-"+out.SubTaskID, subTasks.scripts[out.SubTaskID])
		assert.Equal(t, progressScriptDone, subTasks.processing[out.SubTaskID])
	}
	assert.Len(t, scripts.completed, 2)
	assert.Empty(t, subTasks.failed)
}

func TestGenerator_PromptCarriesMaterialsAndSource(t *testing.T) {
	model := &fakeModel{response: validResponse}
	g := NewGenerator(config.DefaultPipelineConfig(), model, newFakeScriptStore(), newFakeSubTaskStore(), staticTemplates{}, slog.Default())

	g.GenerateAll(context.Background(), testRequest(1))

	require.Len(t, model.prompts, 1)
	prompt := model.prompts[0]
	assert.Contains(t, prompt, "mi-1")
	assert.Contains(t, prompt, "cluster diagram")
	assert.Contains(t, prompt, "Kubernetes schedules containers onto nodes.")
	assert.Contains(t, prompt, "template for core_task")
	assert.True(t, strings.Contains(prompt, "exactly one material_id"))
}

func TestGenerator_ModelFailureMarksSubTaskFailed(t *testing.T) {
	model := &fakeModel{err: errors.New("model unavailable")}
	scripts := newFakeScriptStore()
	subTasks := newFakeSubTaskStore()
	g := NewGenerator(config.DefaultPipelineConfig(), model, scripts, subTasks, staticTemplates{}, slog.Default())

	outcomes := g.GenerateAll(context.Background(), testRequest(1))

	require.Len(t, outcomes, 1)
	require.Error(t, outcomes[0].Err)
	assert.Contains(t, subTasks.failed[outcomes[0].SubTaskID], "model unavailable")
	assert.Contains(t, scripts.failed[outcomes[0].ScriptID], "model unavailable")
	assert.Empty(t, scripts.completed)
}

func TestGenerator_SkipsCompletedScripts(t *testing.T) {
	model := &fakeModel{response: validResponse}
	scripts := newFakeScriptStore()
	subTasks := newFakeSubTaskStore()

	req := testRequest(1)
	scripts.existing[req.SubTasks[0].ID] = &ent.ScriptContent{
		ID:               "script-prior",
		SubTaskID:        req.SubTasks[0].ID,
		GenerationStatus: scriptcontent.GenerationStatusCompleted,
		Titles:           []string{"Already Done"},
		Narration:        "prior narration",
		Scenes:           []map[string]interface{}{{"scene_id": float64(1), "narration": "prior"}},
	}

	g := NewGenerator(config.DefaultPipelineConfig(), model, scripts, subTasks, staticTemplates{}, slog.Default())
	outcomes := g.GenerateAll(context.Background(), req)

	require.NoError(t, outcomes[0].Err)
	assert.Equal(t, "Already Done", outcomes[0].Result.Title)
	assert.Empty(t, model.prompts)
	assert.Empty(t, scripts.completed)
}

func TestGenerator_BoundedConcurrency(t *testing.T) {
	cfg := config.DefaultPipelineConfig()
	cfg.MaxConcurrentScripts = 2

	model := &fakeModel{response: validResponse}
	g := NewGenerator(cfg, model, newFakeScriptStore(), newFakeSubTaskStore(), staticTemplates{}, slog.Default())

	outcomes := g.GenerateAll(context.Background(), testRequest(5))
	for _, out := range outcomes {
		require.NoError(t, out.Err)
	}
	assert.LessOrEqual(t, atomic.LoadInt64(&model.peak), int64(2))
}
