package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/textloom/textloom/ent"
	"github.com/textloom/textloom/pkg/config"
	"github.com/textloom/textloom/pkg/models"
	"github.com/textloom/textloom/pkg/queue"
	"github.com/textloom/textloom/pkg/services"
)

type fakeTaskStore struct {
	tasks     map[string]*ent.Task
	created   []models.CreateTaskRequest
	cancelled []string
	cancelErr error
	createErr error
}

func newFakeTaskStore() *fakeTaskStore {
	return &fakeTaskStore{tasks: make(map[string]*ent.Task)}
}

func (f *fakeTaskStore) CreateTask(ctx context.Context, req models.CreateTaskRequest) (*ent.Task, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	if req.SubVideoCount < 1 || req.SubVideoCount > 5 {
		return nil, services.NewValidationError("sub_video_count", "must be between 1 and 5")
	}
	f.created = append(f.created, req)
	t := &ent.Task{
		ID:            req.TaskID,
		Title:         req.Title,
		TaskType:      "text_to_video",
		WorkspaceDir:  req.WorkspaceDir,
		SourceFile:    req.SourceFile,
		PersonaID:     req.PersonaID,
		SubVideoCount: req.SubVideoCount,
	}
	f.tasks[t.ID] = t
	return t, nil
}

func (f *fakeTaskStore) GetTask(ctx context.Context, taskID string, withEdges bool) (*ent.Task, error) {
	t, ok := f.tasks[taskID]
	if !ok {
		return nil, services.ErrNotFound
	}
	return t, nil
}

func (f *fakeTaskStore) ListTasks(ctx context.Context, creatorID string, limit, offset int) ([]*ent.Task, int, error) {
	out := make([]*ent.Task, 0, len(f.tasks))
	for _, t := range f.tasks {
		out = append(out, t)
	}
	return out, len(out), nil
}

func (f *fakeTaskStore) RequestCancel(ctx context.Context, taskID string) error {
	if f.cancelErr != nil {
		return f.cancelErr
	}
	if _, ok := f.tasks[taskID]; !ok {
		return services.ErrNotFound
	}
	f.cancelled = append(f.cancelled, taskID)
	return nil
}

type fakeSubTaskStore struct {
	byTask map[string][]*ent.SubVideoTask
}

func (f *fakeSubTaskStore) ListByTask(ctx context.Context, taskID string) ([]*ent.SubVideoTask, error) {
	return f.byTask[taskID], nil
}

type fakeJobQueue struct {
	enqueued []models.PipelineJob
	enqErr   error
	pingErr  error
}

func (f *fakeJobQueue) Enqueue(ctx context.Context, job any) error {
	if f.enqErr != nil {
		return f.enqErr
	}
	f.enqueued = append(f.enqueued, job.(models.PipelineJob))
	return nil
}

func (f *fakeJobQueue) Ping(ctx context.Context) error { return f.pingErr }

type fakePool struct {
	cancelled []string
	healthy   bool
}

func (f *fakePool) CancelTask(taskID string) bool {
	f.cancelled = append(f.cancelled, taskID)
	return true
}

func (f *fakePool) Health() *queue.PoolHealth {
	return &queue.PoolHealth{IsHealthy: f.healthy, TotalWorkers: 1}
}

type testServer struct {
	server   *Server
	tasks    *fakeTaskStore
	subTasks *fakeSubTaskStore
	jobs     *fakeJobQueue
	pool     *fakePool
	root     string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	root := t.TempDir()
	cfg := &config.Config{Pipeline: &config.PipelineConfig{WorkspaceRoot: root}}
	tasks := newFakeTaskStore()
	subTasks := &fakeSubTaskStore{byTask: make(map[string][]*ent.SubVideoTask)}
	jobs := &fakeJobQueue{}
	pool := &fakePool{healthy: true}
	return &testServer{
		server:   NewServer(cfg, nil, tasks, subTasks, jobs, pool),
		tasks:    tasks,
		subTasks: subTasks,
		jobs:     jobs,
		pool:     pool,
		root:     root,
	}
}

func (ts *testServer) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	ts.server.Router().ServeHTTP(rec, req)
	return rec
}

func TestCreateTask(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodPost, "/api/v1/tasks", map[string]any{
		"title":           "Intro to Go",
		"content":         "# Sources\n\nSome markdown.\n\n![](https://example.com/a.png)",
		"materials_meta":  map[string]string{"https://example.com/a.png": "architecture diagram"},
		"sub_video_count": 3,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	require.Len(t, ts.tasks.created, 1)
	created := ts.tasks.created[0]
	assert.Equal(t, "Intro to Go", created.Title)
	assert.Equal(t, 3, created.SubVideoCount)
	assert.Equal(t, filepath.Join(ts.root, "task_"+created.TaskID), created.WorkspaceDir)

	// Workspace assembled on disk.
	manifest, err := os.ReadFile(created.SourceFile)
	require.NoError(t, err)
	assert.Contains(t, string(manifest), "Some markdown.")

	meta, err := os.ReadFile(filepath.Join(created.WorkspaceDir, "materials_meta.json"))
	require.NoError(t, err)
	assert.Contains(t, string(meta), "architecture diagram")

	// Job enqueued for the new row.
	require.Len(t, ts.jobs.enqueued, 1)
	job := ts.jobs.enqueued[0]
	assert.Equal(t, created.TaskID, job.TaskID)
	assert.Equal(t, created.SourceFile, job.SourceFile)
	assert.Equal(t, "text_to_video", job.Mode)
	assert.Equal(t, 3, job.SubCount)
}

func TestCreateTask_DefaultsSubVideoCount(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodPost, "/api/v1/tasks", map[string]any{
		"title":   "One video",
		"content": "text",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, ts.tasks.created, 1)
	assert.Equal(t, 1, ts.tasks.created[0].SubVideoCount)
}

func TestCreateTask_MissingContent(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodPost, "/api/v1/tasks", map[string]any{"title": "no content"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, ts.jobs.enqueued)
}

func TestCreateTask_InvalidCountCleansWorkspace(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodPost, "/api/v1/tasks", map[string]any{
		"title":           "too many",
		"content":         "text",
		"sub_video_count": 7,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// The half-assembled workspace is removed.
	entries, err := os.ReadDir(ts.root)
	require.NoError(t, err)
	assert.Empty(t, entries)
	assert.Empty(t, ts.jobs.enqueued)
}

func TestCreateTask_EnqueueFailure(t *testing.T) {
	ts := newTestServer(t)
	ts.jobs.enqErr = context.DeadlineExceeded

	rec := ts.do(t, http.MethodPost, "/api/v1/tasks", map[string]any{
		"title":   "queue down",
		"content": "text",
	})
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestGetTask(t *testing.T) {
	ts := newTestServer(t)
	ts.tasks.tasks["task-1"] = &ent.Task{ID: "task-1", Title: "existing"}

	rec := ts.do(t, http.MethodGet, "/api/v1/tasks/task-1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "existing")

	rec = ts.do(t, http.MethodGet, "/api/v1/tasks/nope", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListSubTasks(t *testing.T) {
	ts := newTestServer(t)
	ts.tasks.tasks["task-1"] = &ent.Task{ID: "task-1"}
	ts.subTasks.byTask["task-1"] = []*ent.SubVideoTask{
		{ID: "task-1_sub_1", Index: 1},
		{ID: "task-1_sub_2", Index: 2},
	}

	rec := ts.do(t, http.MethodGet, "/api/v1/tasks/task-1/subtasks", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "task-1_sub_2")

	rec = ts.do(t, http.MethodGet, "/api/v1/tasks/missing/subtasks", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCancelTask(t *testing.T) {
	ts := newTestServer(t)
	ts.tasks.tasks["task-1"] = &ent.Task{ID: "task-1"}

	rec := ts.do(t, http.MethodPost, "/api/v1/tasks/task-1/cancel", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"task-1"}, ts.tasks.cancelled)
	assert.Equal(t, []string{"task-1"}, ts.pool.cancelled)
}

func TestCancelTask_Terminal(t *testing.T) {
	ts := newTestServer(t)
	ts.tasks.tasks["task-1"] = &ent.Task{ID: "task-1"}
	ts.tasks.cancelErr = services.ErrTerminalState

	rec := ts.do(t, http.MethodPost, "/api/v1/tasks/task-1/cancel", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Empty(t, ts.pool.cancelled)
}
