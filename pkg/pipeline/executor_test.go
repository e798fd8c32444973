package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/textloom/textloom/ent"
	"github.com/textloom/textloom/ent/mediaitem"
	"github.com/textloom/textloom/ent/task"
	"github.com/textloom/textloom/pkg/config"
	"github.com/textloom/textloom/pkg/material"
	"github.com/textloom/textloom/pkg/models"
	"github.com/textloom/textloom/pkg/script"
)

type fakeTasks struct {
	task      *ent.Task
	cancelled bool
	stages    []task.CurrentStage
	progress  []int
}

func (f *fakeTasks) GetTask(_ context.Context, _ string, _ bool) (*ent.Task, error) {
	return f.task, nil
}

func (f *fakeTasks) AdvanceStage(_ context.Context, _ string, stage task.CurrentStage) error {
	f.stages = append(f.stages, stage)
	return nil
}

func (f *fakeTasks) UpdateProgress(_ context.Context, _ string, proposed int) error {
	f.progress = append(f.progress, proposed)
	return nil
}

func (f *fakeTasks) IsCancelled(_ context.Context, _ string) (bool, error) {
	return f.cancelled, nil
}

type fakeSubTasks struct {
	created    []*ent.SubVideoTask
	submitted  map[string]string
	failed     map[string]string
}

func (f *fakeSubTasks) CreateForTask(_ context.Context, taskID string, count int, style string) ([]*ent.SubVideoTask, error) {
	if f.created == nil {
		for i := 1; i <= count; i++ {
			f.created = append(f.created, &ent.SubVideoTask{
				ID:          taskID + "_video_" + string(rune('0'+i)),
				TaskID:      taskID,
				Index:       i,
				ScriptStyle: style,
			})
		}
	}
	return f.created, nil
}

func (f *fakeSubTasks) SetMergeSubmission(_ context.Context, subTaskID, courseMediaID string, _ int) error {
	if f.submitted == nil {
		f.submitted = map[string]string{}
	}
	f.submitted[subTaskID] = courseMediaID
	return nil
}

func (f *fakeSubTasks) MarkFailed(_ context.Context, subTaskID, errorMessage string) error {
	if f.failed == nil {
		f.failed = map[string]string{}
	}
	f.failed[subTaskID] = errorMessage
	return nil
}

type fakePersonas struct{}

func (fakePersonas) GetPersonaInfo(_ context.Context, personaID *string) (*models.PersonaInfo, error) {
	if personaID == nil {
		return nil, nil
	}
	return &models.PersonaInfo{Name: "Narrator"}, nil
}

type fakeMaterials struct {
	result *material.Result
	err    error
}

func (f *fakeMaterials) ProcessMaterials(_ context.Context, _, _, _ string) (*material.Result, error) {
	return f.result, f.err
}

type fakeAnalyzer struct {
	failAll bool
}

func (f *fakeAnalyzer) AnalyzeMaterials(_ context.Context, _ string, items []*ent.MediaItem) (map[string]*models.AnalysisResult, models.AnalysisSummary) {
	byID := map[string]*models.AnalysisResult{}
	summary := models.AnalysisSummary{Total: len(items)}
	for _, item := range items {
		r := &models.AnalysisResult{MediaItemID: item.ID, OriginalURL: item.OriginalURL}
		if f.failAll {
			r.Err = errors.New("vision unavailable")
			summary.Failed++
		} else {
			r.AIDescription = "described " + item.ID
			summary.Completed++
		}
		byID[item.ID] = r
	}
	return byID, summary
}

type fakeGenerator struct {
	failAll  bool
	requests []script.Request
}

func (f *fakeGenerator) GenerateAll(_ context.Context, req script.Request) []script.Outcome {
	f.requests = append(f.requests, req)
	outcomes := make([]script.Outcome, len(req.SubTasks))
	for i, st := range req.SubTasks {
		if f.failAll {
			outcomes[i] = script.Outcome{SubTaskID: st.ID, Err: errors.New("generation failed")}
			continue
		}
		outcomes[i] = script.Outcome{
			SubTaskID: st.ID,
			ScriptID:  "script-" + st.ID,
			Result: &models.ScriptResult{
				Title:     "Video " + st.ID,
				Narration: "narration",
				Scenes:    []models.Scene{{SceneID: 1, Timing: "0s-15s", Narration: "narration"}},
			},
		}
	}
	return outcomes
}

type fakeMerger struct {
	err   error
	calls int
}

func (f *fakeMerger) Submit(_ context.Context, sub models.MergeSubmission) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return "cm-" + sub.SubTaskID, nil
}

func testItems() []*ent.MediaItem {
	return []*ent.MediaItem{
		{ID: "mi-1", TaskID: "t1", OriginalURL: "https://a/1.png", CloudURL: "https://cdn/1.png", MediaType: mediaitem.MediaTypeImage},
		{ID: "mi-2", TaskID: "t1", OriginalURL: "https://a/2.mp4", CloudURL: "https://cdn/2.mp4", MediaType: mediaitem.MediaTypeVideo, Duration: 30},
		{ID: "mi-3", TaskID: "t1", OriginalURL: "https://a/3.mp3", CloudURL: "https://cdn/3.mp3", MediaType: mediaitem.MediaTypeAudio},
	}
}

func testTask() *ent.Task {
	return &ent.Task{
		ID:            "t1",
		Title:         "Demo",
		Status:        task.StatusProcessing,
		SourceFile:    "workspace/t1/source_manifest.md",
		WorkspaceDir:  "workspace/t1",
		ScriptStyle:   "professional",
		SubVideoCount: 2,
	}
}

func newTestExecutor(tasks *fakeTasks, subTasks *fakeSubTasks, materials *fakeMaterials,
	analyzer AnalysisStage, generator *fakeGenerator, merger *fakeMerger) *Executor {
	return NewExecutor(config.DefaultPipelineConfig(), tasks, subTasks, fakePersonas{},
		materials, analyzer, generator, merger, slog.Default())
}

func TestExecutor_RunTask(t *testing.T) {
	tasks := &fakeTasks{task: testTask()}
	subTasks := &fakeSubTasks{}
	materials := &fakeMaterials{result: &material.Result{Content: "source text", Items: testItems()}}
	generator := &fakeGenerator{}
	merger := &fakeMerger{}

	e := newTestExecutor(tasks, subTasks, materials, &fakeAnalyzer{}, generator, merger)
	result, err := e.RunTask(context.Background(), models.PipelineJob{TaskID: "t1"})
	require.NoError(t, err)

	assert.Equal(t, 3, result.MediaCount)
	assert.Equal(t, 2, result.AnalyzedCount)
	assert.Equal(t, 2, result.ScriptCount)
	assert.Equal(t, 2, result.SubmittedCount)

	assert.Equal(t, []task.CurrentStage{
		task.CurrentStageMaterialAnalysis,
		task.CurrentStageSubtaskCreation,
		task.CurrentStageScriptGeneration,
		task.CurrentStageVideoGeneration,
	}, tasks.stages)
	// The parent stops at 75; past submission it moves only through the
	// reconciler's aggregate formula.
	assert.Equal(t, []int{25, 50, 55, 75}, tasks.progress)

	assert.Len(t, subTasks.submitted, 2)
	assert.Equal(t, "cm-t1_video_1", subTasks.submitted["t1_video_1"])
}

func TestExecutor_AudioExcludedFromAnalysisButCounted(t *testing.T) {
	tasks := &fakeTasks{task: testTask()}
	materials := &fakeMaterials{result: &material.Result{Content: "x", Items: testItems()}}
	generator := &fakeGenerator{}

	e := newTestExecutor(tasks, &fakeSubTasks{}, materials, &fakeAnalyzer{}, generator, &fakeMerger{})
	result, err := e.RunTask(context.Background(), models.PipelineJob{TaskID: "t1"})
	require.NoError(t, err)

	// Three materials acquired, only the two visual ones analyzed.
	assert.Equal(t, 3, result.MediaCount)
	assert.Equal(t, 2, result.AnalyzedCount)

	require.Len(t, generator.requests, 1)
	require.Len(t, generator.requests[0].Materials, 2)
	assert.Equal(t, "described mi-1", generator.requests[0].Materials[0].Description)
}

func TestExecutor_NoEffectiveContent(t *testing.T) {
	tasks := &fakeTasks{task: testTask()}
	materials := &fakeMaterials{err: material.ErrNoEffectiveContent}

	e := newTestExecutor(tasks, &fakeSubTasks{}, materials, &fakeAnalyzer{}, &fakeGenerator{}, &fakeMerger{})
	_, err := e.RunTask(context.Background(), models.PipelineJob{TaskID: "t1"})
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Empty(t, tasks.stages)
}

func TestExecutor_AnalysisFailureRateGate(t *testing.T) {
	tasks := &fakeTasks{task: testTask()}
	materials := &fakeMaterials{result: &material.Result{Content: "x", Items: testItems()}}

	e := newTestExecutor(tasks, &fakeSubTasks{}, materials, &fakeAnalyzer{failAll: true}, &fakeGenerator{}, &fakeMerger{})
	_, err := e.RunTask(context.Background(), models.PipelineJob{TaskID: "t1"})
	assert.ErrorIs(t, err, ErrAnalysisFailureRate)
}

func TestExecutor_FailureRateAtThresholdProceeds(t *testing.T) {
	// 9 of 10 failed is exactly the 0.9 default threshold: not exceeded.
	items := []*ent.MediaItem{
		{ID: "mi-ok", OriginalURL: "https://a/ok.png", CloudURL: "https://cdn/ok.png", MediaType: mediaitem.MediaTypeImage},
	}
	for i := 0; i < 9; i++ {
		id := "mi-bad-" + string(rune('a'+i))
		items = append(items, &ent.MediaItem{ID: id, OriginalURL: "https://a/" + id, MediaType: mediaitem.MediaTypeImage})
	}

	analyzer := &boundaryAnalyzer{okID: "mi-ok"}
	tasks := &fakeTasks{task: testTask()}
	materials := &fakeMaterials{result: &material.Result{Content: "x", Items: items}}

	e := newTestExecutor(tasks, &fakeSubTasks{}, materials, analyzer, &fakeGenerator{}, &fakeMerger{})
	result, err := e.RunTask(context.Background(), models.PipelineJob{TaskID: "t1"})
	require.NoError(t, err)
	assert.Equal(t, 1, result.AnalyzedCount)
}

type boundaryAnalyzer struct {
	okID string
}

func (b *boundaryAnalyzer) AnalyzeMaterials(_ context.Context, _ string, items []*ent.MediaItem) (map[string]*models.AnalysisResult, models.AnalysisSummary) {
	byID := map[string]*models.AnalysisResult{}
	summary := models.AnalysisSummary{Total: len(items)}
	for _, item := range items {
		r := &models.AnalysisResult{MediaItemID: item.ID}
		if item.ID == b.okID {
			r.AIDescription = "fine"
			summary.Completed++
		} else {
			r.Err = errors.New("bad")
			summary.Failed++
		}
		byID[item.ID] = r
	}
	return byID, summary
}

func TestExecutor_AllScriptsFailed(t *testing.T) {
	tasks := &fakeTasks{task: testTask()}
	materials := &fakeMaterials{result: &material.Result{Content: "x", Items: testItems()}}

	e := newTestExecutor(tasks, &fakeSubTasks{}, materials, &fakeAnalyzer{}, &fakeGenerator{failAll: true}, &fakeMerger{})
	_, err := e.RunTask(context.Background(), models.PipelineJob{TaskID: "t1"})
	assert.ErrorIs(t, err, ErrAllScriptsFailed)
}

func TestExecutor_Cancelled(t *testing.T) {
	tasks := &fakeTasks{task: testTask(), cancelled: true}
	materials := &fakeMaterials{result: &material.Result{Content: "x", Items: testItems()}}

	e := newTestExecutor(tasks, &fakeSubTasks{}, materials, &fakeAnalyzer{}, &fakeGenerator{}, &fakeMerger{})
	_, err := e.RunTask(context.Background(), models.PipelineJob{TaskID: "t1"})
	assert.ErrorIs(t, err, ErrCancelled)
}

func TestExecutor_MergeSubmissionFailureIsPerSubTask(t *testing.T) {
	tasks := &fakeTasks{task: testTask()}
	subTasks := &fakeSubTasks{}
	materials := &fakeMaterials{result: &material.Result{Content: "x", Items: testItems()}}
	merger := &fakeMerger{err: errors.New("merge service down")}

	e := newTestExecutor(tasks, subTasks, materials, &fakeAnalyzer{}, &fakeGenerator{}, merger)
	_, err := e.RunTask(context.Background(), models.PipelineJob{TaskID: "t1"})

	assert.ErrorIs(t, err, ErrAllSubmissionsFailed)
	assert.Len(t, subTasks.failed, 2)
	assert.Contains(t, subTasks.failed["t1_video_1"], "merge service down")
}

func TestExecutor_ResumedSubmissionNotRepeated(t *testing.T) {
	priorID := "cm-prior"
	tasks := &fakeTasks{task: testTask()}
	subTasks := &fakeSubTasks{created: []*ent.SubVideoTask{
		{ID: "t1_video_1", TaskID: "t1", Index: 1, ScriptStyle: "professional", CourseMediaID: &priorID},
		{ID: "t1_video_2", TaskID: "t1", Index: 2, ScriptStyle: "professional"},
	}}
	materials := &fakeMaterials{result: &material.Result{Content: "x", Items: testItems()}}
	merger := &fakeMerger{}

	e := newTestExecutor(tasks, subTasks, materials, &fakeAnalyzer{}, &fakeGenerator{}, merger)
	result, err := e.RunTask(context.Background(), models.PipelineJob{TaskID: "t1"})
	require.NoError(t, err)

	assert.Equal(t, 2, result.SubmittedCount)
	assert.Equal(t, 1, merger.calls)
	assert.NotContains(t, subTasks.submitted, "t1_video_1")
}
