// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/textloom/textloom/ent/materialanalysis"
	"github.com/textloom/textloom/ent/mediaitem"
	"github.com/textloom/textloom/ent/predicate"
	"github.com/textloom/textloom/ent/scriptcontent"
	"github.com/textloom/textloom/ent/subvideotask"
	"github.com/textloom/textloom/ent/task"
)

// TaskUpdate is the builder for updating Task entities.
type TaskUpdate struct {
	config
	hooks    []Hook
	mutation *TaskMutation
}

// Where appends a list predicates to the TaskUpdate builder.
func (_u *TaskUpdate) Where(ps ...predicate.Task) *TaskUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *TaskUpdate) SetTitle(v string) *TaskUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableTitle(v *string) *TaskUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *TaskUpdate) SetDescription(v string) *TaskUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableDescription(v *string) *TaskUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *TaskUpdate) ClearDescription() *TaskUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetCreatorID sets the "creator_id" field.
func (_u *TaskUpdate) SetCreatorID(v string) *TaskUpdate {
	_u.mutation.SetCreatorID(v)
	return _u
}

// SetNillableCreatorID sets the "creator_id" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableCreatorID(v *string) *TaskUpdate {
	if v != nil {
		_u.SetCreatorID(*v)
	}
	return _u
}

// ClearCreatorID clears the value of the "creator_id" field.
func (_u *TaskUpdate) ClearCreatorID() *TaskUpdate {
	_u.mutation.ClearCreatorID()
	return _u
}

// SetTaskType sets the "task_type" field.
func (_u *TaskUpdate) SetTaskType(v string) *TaskUpdate {
	_u.mutation.SetTaskType(v)
	return _u
}

// SetNillableTaskType sets the "task_type" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableTaskType(v *string) *TaskUpdate {
	if v != nil {
		_u.SetTaskType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *TaskUpdate) SetStatus(v task.Status) *TaskUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableStatus(v *task.Status) *TaskUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetProgress sets the "progress" field.
func (_u *TaskUpdate) SetProgress(v int) *TaskUpdate {
	_u.mutation.ResetProgress()
	_u.mutation.SetProgress(v)
	return _u
}

// SetNillableProgress sets the "progress" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableProgress(v *int) *TaskUpdate {
	if v != nil {
		_u.SetProgress(*v)
	}
	return _u
}

// AddProgress adds value to the "progress" field.
func (_u *TaskUpdate) AddProgress(v int) *TaskUpdate {
	_u.mutation.AddProgress(v)
	return _u
}

// SetCurrentStage sets the "current_stage" field.
func (_u *TaskUpdate) SetCurrentStage(v task.CurrentStage) *TaskUpdate {
	_u.mutation.SetCurrentStage(v)
	return _u
}

// SetNillableCurrentStage sets the "current_stage" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableCurrentStage(v *task.CurrentStage) *TaskUpdate {
	if v != nil {
		_u.SetCurrentStage(*v)
	}
	return _u
}

// SetWorkspaceDir sets the "workspace_dir" field.
func (_u *TaskUpdate) SetWorkspaceDir(v string) *TaskUpdate {
	_u.mutation.SetWorkspaceDir(v)
	return _u
}

// SetNillableWorkspaceDir sets the "workspace_dir" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableWorkspaceDir(v *string) *TaskUpdate {
	if v != nil {
		_u.SetWorkspaceDir(*v)
	}
	return _u
}

// SetSourceFile sets the "source_file" field.
func (_u *TaskUpdate) SetSourceFile(v string) *TaskUpdate {
	_u.mutation.SetSourceFile(v)
	return _u
}

// SetNillableSourceFile sets the "source_file" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableSourceFile(v *string) *TaskUpdate {
	if v != nil {
		_u.SetSourceFile(*v)
	}
	return _u
}

// SetScriptStyle sets the "script_style" field.
func (_u *TaskUpdate) SetScriptStyle(v string) *TaskUpdate {
	_u.mutation.SetScriptStyle(v)
	return _u
}

// SetNillableScriptStyle sets the "script_style" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableScriptStyle(v *string) *TaskUpdate {
	if v != nil {
		_u.SetScriptStyle(*v)
	}
	return _u
}

// SetPersonaID sets the "persona_id" field.
func (_u *TaskUpdate) SetPersonaID(v string) *TaskUpdate {
	_u.mutation.SetPersonaID(v)
	return _u
}

// SetNillablePersonaID sets the "persona_id" field if the given value is not nil.
func (_u *TaskUpdate) SetNillablePersonaID(v *string) *TaskUpdate {
	if v != nil {
		_u.SetPersonaID(*v)
	}
	return _u
}

// ClearPersonaID clears the value of the "persona_id" field.
func (_u *TaskUpdate) ClearPersonaID() *TaskUpdate {
	_u.mutation.ClearPersonaID()
	return _u
}

// SetSubVideoCount sets the "sub_video_count" field.
func (_u *TaskUpdate) SetSubVideoCount(v int) *TaskUpdate {
	_u.mutation.ResetSubVideoCount()
	_u.mutation.SetSubVideoCount(v)
	return _u
}

// SetNillableSubVideoCount sets the "sub_video_count" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableSubVideoCount(v *int) *TaskUpdate {
	if v != nil {
		_u.SetSubVideoCount(*v)
	}
	return _u
}

// AddSubVideoCount adds value to the "sub_video_count" field.
func (_u *TaskUpdate) AddSubVideoCount(v int) *TaskUpdate {
	_u.mutation.AddSubVideoCount(v)
	return _u
}

// SetCompletedCount sets the "completed_count" field.
func (_u *TaskUpdate) SetCompletedCount(v int) *TaskUpdate {
	_u.mutation.ResetCompletedCount()
	_u.mutation.SetCompletedCount(v)
	return _u
}

// SetNillableCompletedCount sets the "completed_count" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableCompletedCount(v *int) *TaskUpdate {
	if v != nil {
		_u.SetCompletedCount(*v)
	}
	return _u
}

// AddCompletedCount adds value to the "completed_count" field.
func (_u *TaskUpdate) AddCompletedCount(v int) *TaskUpdate {
	_u.mutation.AddCompletedCount(v)
	return _u
}

// SetVideoResults sets the "video_results" field.
func (_u *TaskUpdate) SetVideoResults(v []map[string]interface{}) *TaskUpdate {
	_u.mutation.SetVideoResults(v)
	return _u
}

// AppendVideoResults appends value to the "video_results" field.
func (_u *TaskUpdate) AppendVideoResults(v []map[string]interface{}) *TaskUpdate {
	_u.mutation.AppendVideoResults(v)
	return _u
}

// ClearVideoResults clears the value of the "video_results" field.
func (_u *TaskUpdate) ClearVideoResults() *TaskUpdate {
	_u.mutation.ClearVideoResults()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *TaskUpdate) SetErrorMessage(v string) *TaskUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableErrorMessage(v *string) *TaskUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *TaskUpdate) ClearErrorMessage() *TaskUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TaskUpdate) SetUpdatedAt(v time.Time) *TaskUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *TaskUpdate) SetStartedAt(v time.Time) *TaskUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableStartedAt(v *time.Time) *TaskUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *TaskUpdate) ClearStartedAt() *TaskUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *TaskUpdate) SetCompletedAt(v time.Time) *TaskUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableCompletedAt(v *time.Time) *TaskUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *TaskUpdate) ClearCompletedAt() *TaskUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *TaskUpdate) SetPodID(v string) *TaskUpdate {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *TaskUpdate) SetNillablePodID(v *string) *TaskUpdate {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *TaskUpdate) ClearPodID() *TaskUpdate {
	_u.mutation.ClearPodID()
	return _u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_u *TaskUpdate) SetLastHeartbeatAt(v time.Time) *TaskUpdate {
	_u.mutation.SetLastHeartbeatAt(v)
	return _u
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableLastHeartbeatAt(v *time.Time) *TaskUpdate {
	if v != nil {
		_u.SetLastHeartbeatAt(*v)
	}
	return _u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (_u *TaskUpdate) ClearLastHeartbeatAt() *TaskUpdate {
	_u.mutation.ClearLastHeartbeatAt()
	return _u
}

// AddSubTaskIDs adds the "sub_tasks" edge to the SubVideoTask entity by IDs.
func (_u *TaskUpdate) AddSubTaskIDs(ids ...string) *TaskUpdate {
	_u.mutation.AddSubTaskIDs(ids...)
	return _u
}

// AddSubTasks adds the "sub_tasks" edges to the SubVideoTask entity.
func (_u *TaskUpdate) AddSubTasks(v ...*SubVideoTask) *TaskUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSubTaskIDs(ids...)
}

// AddMediaItemIDs adds the "media_items" edge to the MediaItem entity by IDs.
func (_u *TaskUpdate) AddMediaItemIDs(ids ...string) *TaskUpdate {
	_u.mutation.AddMediaItemIDs(ids...)
	return _u
}

// AddMediaItems adds the "media_items" edges to the MediaItem entity.
func (_u *TaskUpdate) AddMediaItems(v ...*MediaItem) *TaskUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMediaItemIDs(ids...)
}

// AddAnalysisIDs adds the "analyses" edge to the MaterialAnalysis entity by IDs.
func (_u *TaskUpdate) AddAnalysisIDs(ids ...string) *TaskUpdate {
	_u.mutation.AddAnalysisIDs(ids...)
	return _u
}

// AddAnalyses adds the "analyses" edges to the MaterialAnalysis entity.
func (_u *TaskUpdate) AddAnalyses(v ...*MaterialAnalysis) *TaskUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAnalysisIDs(ids...)
}

// AddScriptIDs adds the "scripts" edge to the ScriptContent entity by IDs.
func (_u *TaskUpdate) AddScriptIDs(ids ...string) *TaskUpdate {
	_u.mutation.AddScriptIDs(ids...)
	return _u
}

// AddScripts adds the "scripts" edges to the ScriptContent entity.
func (_u *TaskUpdate) AddScripts(v ...*ScriptContent) *TaskUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddScriptIDs(ids...)
}

// Mutation returns the TaskMutation object of the builder.
func (_u *TaskUpdate) Mutation() *TaskMutation {
	return _u.mutation
}

// ClearSubTasks clears all "sub_tasks" edges to the SubVideoTask entity.
func (_u *TaskUpdate) ClearSubTasks() *TaskUpdate {
	_u.mutation.ClearSubTasks()
	return _u
}

// RemoveSubTaskIDs removes the "sub_tasks" edge to SubVideoTask entities by IDs.
func (_u *TaskUpdate) RemoveSubTaskIDs(ids ...string) *TaskUpdate {
	_u.mutation.RemoveSubTaskIDs(ids...)
	return _u
}

// RemoveSubTasks removes "sub_tasks" edges to SubVideoTask entities.
func (_u *TaskUpdate) RemoveSubTasks(v ...*SubVideoTask) *TaskUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSubTaskIDs(ids...)
}

// ClearMediaItems clears all "media_items" edges to the MediaItem entity.
func (_u *TaskUpdate) ClearMediaItems() *TaskUpdate {
	_u.mutation.ClearMediaItems()
	return _u
}

// RemoveMediaItemIDs removes the "media_items" edge to MediaItem entities by IDs.
func (_u *TaskUpdate) RemoveMediaItemIDs(ids ...string) *TaskUpdate {
	_u.mutation.RemoveMediaItemIDs(ids...)
	return _u
}

// RemoveMediaItems removes "media_items" edges to MediaItem entities.
func (_u *TaskUpdate) RemoveMediaItems(v ...*MediaItem) *TaskUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMediaItemIDs(ids...)
}

// ClearAnalyses clears all "analyses" edges to the MaterialAnalysis entity.
func (_u *TaskUpdate) ClearAnalyses() *TaskUpdate {
	_u.mutation.ClearAnalyses()
	return _u
}

// RemoveAnalysisIDs removes the "analyses" edge to MaterialAnalysis entities by IDs.
func (_u *TaskUpdate) RemoveAnalysisIDs(ids ...string) *TaskUpdate {
	_u.mutation.RemoveAnalysisIDs(ids...)
	return _u
}

// RemoveAnalyses removes "analyses" edges to MaterialAnalysis entities.
func (_u *TaskUpdate) RemoveAnalyses(v ...*MaterialAnalysis) *TaskUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAnalysisIDs(ids...)
}

// ClearScripts clears all "scripts" edges to the ScriptContent entity.
func (_u *TaskUpdate) ClearScripts() *TaskUpdate {
	_u.mutation.ClearScripts()
	return _u
}

// RemoveScriptIDs removes the "scripts" edge to ScriptContent entities by IDs.
func (_u *TaskUpdate) RemoveScriptIDs(ids ...string) *TaskUpdate {
	_u.mutation.RemoveScriptIDs(ids...)
	return _u
}

// RemoveScripts removes "scripts" edges to ScriptContent entities.
func (_u *TaskUpdate) RemoveScripts(v ...*ScriptContent) *TaskUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveScriptIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TaskUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TaskUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TaskUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := task.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := task.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Task.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CurrentStage(); ok {
		if err := task.CurrentStageValidator(v); err != nil {
			return &ValidationError{Name: "current_stage", err: fmt.Errorf(`ent: validator failed for field "Task.current_stage": %w`, err)}
		}
	}
	return nil
}

func (_u *TaskUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(task.Table, task.Columns, sqlgraph.NewFieldSpec(task.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(task.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(task.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(task.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.CreatorID(); ok {
		_spec.SetField(task.FieldCreatorID, field.TypeString, value)
	}
	if _u.mutation.CreatorIDCleared() {
		_spec.ClearField(task.FieldCreatorID, field.TypeString)
	}
	if value, ok := _u.mutation.TaskType(); ok {
		_spec.SetField(task.FieldTaskType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(task.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Progress(); ok {
		_spec.SetField(task.FieldProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProgress(); ok {
		_spec.AddField(task.FieldProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CurrentStage(); ok {
		_spec.SetField(task.FieldCurrentStage, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.WorkspaceDir(); ok {
		_spec.SetField(task.FieldWorkspaceDir, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceFile(); ok {
		_spec.SetField(task.FieldSourceFile, field.TypeString, value)
	}
	if value, ok := _u.mutation.ScriptStyle(); ok {
		_spec.SetField(task.FieldScriptStyle, field.TypeString, value)
	}
	if value, ok := _u.mutation.PersonaID(); ok {
		_spec.SetField(task.FieldPersonaID, field.TypeString, value)
	}
	if _u.mutation.PersonaIDCleared() {
		_spec.ClearField(task.FieldPersonaID, field.TypeString)
	}
	if value, ok := _u.mutation.SubVideoCount(); ok {
		_spec.SetField(task.FieldSubVideoCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSubVideoCount(); ok {
		_spec.AddField(task.FieldSubVideoCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompletedCount(); ok {
		_spec.SetField(task.FieldCompletedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompletedCount(); ok {
		_spec.AddField(task.FieldCompletedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.VideoResults(); ok {
		_spec.SetField(task.FieldVideoResults, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedVideoResults(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, task.FieldVideoResults, value)
		})
	}
	if _u.mutation.VideoResultsCleared() {
		_spec.ClearField(task.FieldVideoResults, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(task.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(task.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(task.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(task.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(task.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(task.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(task.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(task.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(task.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(task.FieldLastHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatAtCleared() {
		_spec.ClearField(task.FieldLastHeartbeatAt, field.TypeTime)
	}
	if _u.mutation.SubTasksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.SubTasksTable,
			Columns: []string{task.SubTasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(subvideotask.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSubTasksIDs(); len(nodes) > 0 && !_u.mutation.SubTasksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.SubTasksTable,
			Columns: []string{task.SubTasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(subvideotask.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SubTasksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.SubTasksTable,
			Columns: []string{task.SubTasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(subvideotask.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MediaItemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.MediaItemsTable,
			Columns: []string{task.MediaItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(mediaitem.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMediaItemsIDs(); len(nodes) > 0 && !_u.mutation.MediaItemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.MediaItemsTable,
			Columns: []string{task.MediaItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(mediaitem.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MediaItemsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.MediaItemsTable,
			Columns: []string{task.MediaItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(mediaitem.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AnalysesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.AnalysesTable,
			Columns: []string{task.AnalysesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(materialanalysis.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAnalysesIDs(); len(nodes) > 0 && !_u.mutation.AnalysesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.AnalysesTable,
			Columns: []string{task.AnalysesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(materialanalysis.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AnalysesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.AnalysesTable,
			Columns: []string{task.AnalysesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(materialanalysis.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ScriptsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.ScriptsTable,
			Columns: []string{task.ScriptsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(scriptcontent.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedScriptsIDs(); len(nodes) > 0 && !_u.mutation.ScriptsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.ScriptsTable,
			Columns: []string{task.ScriptsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(scriptcontent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ScriptsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.ScriptsTable,
			Columns: []string{task.ScriptsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(scriptcontent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{task.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TaskUpdateOne is the builder for updating a single Task entity.
type TaskUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TaskMutation
}

// SetTitle sets the "title" field.
func (_u *TaskUpdateOne) SetTitle(v string) *TaskUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableTitle(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *TaskUpdateOne) SetDescription(v string) *TaskUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableDescription(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *TaskUpdateOne) ClearDescription() *TaskUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetCreatorID sets the "creator_id" field.
func (_u *TaskUpdateOne) SetCreatorID(v string) *TaskUpdateOne {
	_u.mutation.SetCreatorID(v)
	return _u
}

// SetNillableCreatorID sets the "creator_id" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableCreatorID(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetCreatorID(*v)
	}
	return _u
}

// ClearCreatorID clears the value of the "creator_id" field.
func (_u *TaskUpdateOne) ClearCreatorID() *TaskUpdateOne {
	_u.mutation.ClearCreatorID()
	return _u
}

// SetTaskType sets the "task_type" field.
func (_u *TaskUpdateOne) SetTaskType(v string) *TaskUpdateOne {
	_u.mutation.SetTaskType(v)
	return _u
}

// SetNillableTaskType sets the "task_type" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableTaskType(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetTaskType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *TaskUpdateOne) SetStatus(v task.Status) *TaskUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableStatus(v *task.Status) *TaskUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetProgress sets the "progress" field.
func (_u *TaskUpdateOne) SetProgress(v int) *TaskUpdateOne {
	_u.mutation.ResetProgress()
	_u.mutation.SetProgress(v)
	return _u
}

// SetNillableProgress sets the "progress" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableProgress(v *int) *TaskUpdateOne {
	if v != nil {
		_u.SetProgress(*v)
	}
	return _u
}

// AddProgress adds value to the "progress" field.
func (_u *TaskUpdateOne) AddProgress(v int) *TaskUpdateOne {
	_u.mutation.AddProgress(v)
	return _u
}

// SetCurrentStage sets the "current_stage" field.
func (_u *TaskUpdateOne) SetCurrentStage(v task.CurrentStage) *TaskUpdateOne {
	_u.mutation.SetCurrentStage(v)
	return _u
}

// SetNillableCurrentStage sets the "current_stage" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableCurrentStage(v *task.CurrentStage) *TaskUpdateOne {
	if v != nil {
		_u.SetCurrentStage(*v)
	}
	return _u
}

// SetWorkspaceDir sets the "workspace_dir" field.
func (_u *TaskUpdateOne) SetWorkspaceDir(v string) *TaskUpdateOne {
	_u.mutation.SetWorkspaceDir(v)
	return _u
}

// SetNillableWorkspaceDir sets the "workspace_dir" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableWorkspaceDir(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetWorkspaceDir(*v)
	}
	return _u
}

// SetSourceFile sets the "source_file" field.
func (_u *TaskUpdateOne) SetSourceFile(v string) *TaskUpdateOne {
	_u.mutation.SetSourceFile(v)
	return _u
}

// SetNillableSourceFile sets the "source_file" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableSourceFile(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetSourceFile(*v)
	}
	return _u
}

// SetScriptStyle sets the "script_style" field.
func (_u *TaskUpdateOne) SetScriptStyle(v string) *TaskUpdateOne {
	_u.mutation.SetScriptStyle(v)
	return _u
}

// SetNillableScriptStyle sets the "script_style" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableScriptStyle(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetScriptStyle(*v)
	}
	return _u
}

// SetPersonaID sets the "persona_id" field.
func (_u *TaskUpdateOne) SetPersonaID(v string) *TaskUpdateOne {
	_u.mutation.SetPersonaID(v)
	return _u
}

// SetNillablePersonaID sets the "persona_id" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillablePersonaID(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetPersonaID(*v)
	}
	return _u
}

// ClearPersonaID clears the value of the "persona_id" field.
func (_u *TaskUpdateOne) ClearPersonaID() *TaskUpdateOne {
	_u.mutation.ClearPersonaID()
	return _u
}

// SetSubVideoCount sets the "sub_video_count" field.
func (_u *TaskUpdateOne) SetSubVideoCount(v int) *TaskUpdateOne {
	_u.mutation.ResetSubVideoCount()
	_u.mutation.SetSubVideoCount(v)
	return _u
}

// SetNillableSubVideoCount sets the "sub_video_count" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableSubVideoCount(v *int) *TaskUpdateOne {
	if v != nil {
		_u.SetSubVideoCount(*v)
	}
	return _u
}

// AddSubVideoCount adds value to the "sub_video_count" field.
func (_u *TaskUpdateOne) AddSubVideoCount(v int) *TaskUpdateOne {
	_u.mutation.AddSubVideoCount(v)
	return _u
}

// SetCompletedCount sets the "completed_count" field.
func (_u *TaskUpdateOne) SetCompletedCount(v int) *TaskUpdateOne {
	_u.mutation.ResetCompletedCount()
	_u.mutation.SetCompletedCount(v)
	return _u
}

// SetNillableCompletedCount sets the "completed_count" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableCompletedCount(v *int) *TaskUpdateOne {
	if v != nil {
		_u.SetCompletedCount(*v)
	}
	return _u
}

// AddCompletedCount adds value to the "completed_count" field.
func (_u *TaskUpdateOne) AddCompletedCount(v int) *TaskUpdateOne {
	_u.mutation.AddCompletedCount(v)
	return _u
}

// SetVideoResults sets the "video_results" field.
func (_u *TaskUpdateOne) SetVideoResults(v []map[string]interface{}) *TaskUpdateOne {
	_u.mutation.SetVideoResults(v)
	return _u
}

// AppendVideoResults appends value to the "video_results" field.
func (_u *TaskUpdateOne) AppendVideoResults(v []map[string]interface{}) *TaskUpdateOne {
	_u.mutation.AppendVideoResults(v)
	return _u
}

// ClearVideoResults clears the value of the "video_results" field.
func (_u *TaskUpdateOne) ClearVideoResults() *TaskUpdateOne {
	_u.mutation.ClearVideoResults()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *TaskUpdateOne) SetErrorMessage(v string) *TaskUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableErrorMessage(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *TaskUpdateOne) ClearErrorMessage() *TaskUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TaskUpdateOne) SetUpdatedAt(v time.Time) *TaskUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *TaskUpdateOne) SetStartedAt(v time.Time) *TaskUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableStartedAt(v *time.Time) *TaskUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *TaskUpdateOne) ClearStartedAt() *TaskUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *TaskUpdateOne) SetCompletedAt(v time.Time) *TaskUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableCompletedAt(v *time.Time) *TaskUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *TaskUpdateOne) ClearCompletedAt() *TaskUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *TaskUpdateOne) SetPodID(v string) *TaskUpdateOne {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillablePodID(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *TaskUpdateOne) ClearPodID() *TaskUpdateOne {
	_u.mutation.ClearPodID()
	return _u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_u *TaskUpdateOne) SetLastHeartbeatAt(v time.Time) *TaskUpdateOne {
	_u.mutation.SetLastHeartbeatAt(v)
	return _u
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableLastHeartbeatAt(v *time.Time) *TaskUpdateOne {
	if v != nil {
		_u.SetLastHeartbeatAt(*v)
	}
	return _u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (_u *TaskUpdateOne) ClearLastHeartbeatAt() *TaskUpdateOne {
	_u.mutation.ClearLastHeartbeatAt()
	return _u
}

// AddSubTaskIDs adds the "sub_tasks" edge to the SubVideoTask entity by IDs.
func (_u *TaskUpdateOne) AddSubTaskIDs(ids ...string) *TaskUpdateOne {
	_u.mutation.AddSubTaskIDs(ids...)
	return _u
}

// AddSubTasks adds the "sub_tasks" edges to the SubVideoTask entity.
func (_u *TaskUpdateOne) AddSubTasks(v ...*SubVideoTask) *TaskUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSubTaskIDs(ids...)
}

// AddMediaItemIDs adds the "media_items" edge to the MediaItem entity by IDs.
func (_u *TaskUpdateOne) AddMediaItemIDs(ids ...string) *TaskUpdateOne {
	_u.mutation.AddMediaItemIDs(ids...)
	return _u
}

// AddMediaItems adds the "media_items" edges to the MediaItem entity.
func (_u *TaskUpdateOne) AddMediaItems(v ...*MediaItem) *TaskUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMediaItemIDs(ids...)
}

// AddAnalysisIDs adds the "analyses" edge to the MaterialAnalysis entity by IDs.
func (_u *TaskUpdateOne) AddAnalysisIDs(ids ...string) *TaskUpdateOne {
	_u.mutation.AddAnalysisIDs(ids...)
	return _u
}

// AddAnalyses adds the "analyses" edges to the MaterialAnalysis entity.
func (_u *TaskUpdateOne) AddAnalyses(v ...*MaterialAnalysis) *TaskUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAnalysisIDs(ids...)
}

// AddScriptIDs adds the "scripts" edge to the ScriptContent entity by IDs.
func (_u *TaskUpdateOne) AddScriptIDs(ids ...string) *TaskUpdateOne {
	_u.mutation.AddScriptIDs(ids...)
	return _u
}

// AddScripts adds the "scripts" edges to the ScriptContent entity.
func (_u *TaskUpdateOne) AddScripts(v ...*ScriptContent) *TaskUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddScriptIDs(ids...)
}

// Mutation returns the TaskMutation object of the builder.
func (_u *TaskUpdateOne) Mutation() *TaskMutation {
	return _u.mutation
}

// ClearSubTasks clears all "sub_tasks" edges to the SubVideoTask entity.
func (_u *TaskUpdateOne) ClearSubTasks() *TaskUpdateOne {
	_u.mutation.ClearSubTasks()
	return _u
}

// RemoveSubTaskIDs removes the "sub_tasks" edge to SubVideoTask entities by IDs.
func (_u *TaskUpdateOne) RemoveSubTaskIDs(ids ...string) *TaskUpdateOne {
	_u.mutation.RemoveSubTaskIDs(ids...)
	return _u
}

// RemoveSubTasks removes "sub_tasks" edges to SubVideoTask entities.
func (_u *TaskUpdateOne) RemoveSubTasks(v ...*SubVideoTask) *TaskUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSubTaskIDs(ids...)
}

// ClearMediaItems clears all "media_items" edges to the MediaItem entity.
func (_u *TaskUpdateOne) ClearMediaItems() *TaskUpdateOne {
	_u.mutation.ClearMediaItems()
	return _u
}

// RemoveMediaItemIDs removes the "media_items" edge to MediaItem entities by IDs.
func (_u *TaskUpdateOne) RemoveMediaItemIDs(ids ...string) *TaskUpdateOne {
	_u.mutation.RemoveMediaItemIDs(ids...)
	return _u
}

// RemoveMediaItems removes "media_items" edges to MediaItem entities.
func (_u *TaskUpdateOne) RemoveMediaItems(v ...*MediaItem) *TaskUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMediaItemIDs(ids...)
}

// ClearAnalyses clears all "analyses" edges to the MaterialAnalysis entity.
func (_u *TaskUpdateOne) ClearAnalyses() *TaskUpdateOne {
	_u.mutation.ClearAnalyses()
	return _u
}

// RemoveAnalysisIDs removes the "analyses" edge to MaterialAnalysis entities by IDs.
func (_u *TaskUpdateOne) RemoveAnalysisIDs(ids ...string) *TaskUpdateOne {
	_u.mutation.RemoveAnalysisIDs(ids...)
	return _u
}

// RemoveAnalyses removes "analyses" edges to MaterialAnalysis entities.
func (_u *TaskUpdateOne) RemoveAnalyses(v ...*MaterialAnalysis) *TaskUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAnalysisIDs(ids...)
}

// ClearScripts clears all "scripts" edges to the ScriptContent entity.
func (_u *TaskUpdateOne) ClearScripts() *TaskUpdateOne {
	_u.mutation.ClearScripts()
	return _u
}

// RemoveScriptIDs removes the "scripts" edge to ScriptContent entities by IDs.
func (_u *TaskUpdateOne) RemoveScriptIDs(ids ...string) *TaskUpdateOne {
	_u.mutation.RemoveScriptIDs(ids...)
	return _u
}

// RemoveScripts removes "scripts" edges to ScriptContent entities.
func (_u *TaskUpdateOne) RemoveScripts(v ...*ScriptContent) *TaskUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveScriptIDs(ids...)
}

// Where appends a list predicates to the TaskUpdate builder.
func (_u *TaskUpdateOne) Where(ps ...predicate.Task) *TaskUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TaskUpdateOne) Select(field string, fields ...string) *TaskUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Task entity.
func (_u *TaskUpdateOne) Save(ctx context.Context) (*Task, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskUpdateOne) SaveX(ctx context.Context) *Task {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TaskUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TaskUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := task.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := task.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Task.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CurrentStage(); ok {
		if err := task.CurrentStageValidator(v); err != nil {
			return &ValidationError{Name: "current_stage", err: fmt.Errorf(`ent: validator failed for field "Task.current_stage": %w`, err)}
		}
	}
	return nil
}

func (_u *TaskUpdateOne) sqlSave(ctx context.Context) (_node *Task, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(task.Table, task.Columns, sqlgraph.NewFieldSpec(task.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Task.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, task.FieldID)
		for _, f := range fields {
			if !task.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != task.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(task.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(task.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(task.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.CreatorID(); ok {
		_spec.SetField(task.FieldCreatorID, field.TypeString, value)
	}
	if _u.mutation.CreatorIDCleared() {
		_spec.ClearField(task.FieldCreatorID, field.TypeString)
	}
	if value, ok := _u.mutation.TaskType(); ok {
		_spec.SetField(task.FieldTaskType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(task.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Progress(); ok {
		_spec.SetField(task.FieldProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProgress(); ok {
		_spec.AddField(task.FieldProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CurrentStage(); ok {
		_spec.SetField(task.FieldCurrentStage, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.WorkspaceDir(); ok {
		_spec.SetField(task.FieldWorkspaceDir, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceFile(); ok {
		_spec.SetField(task.FieldSourceFile, field.TypeString, value)
	}
	if value, ok := _u.mutation.ScriptStyle(); ok {
		_spec.SetField(task.FieldScriptStyle, field.TypeString, value)
	}
	if value, ok := _u.mutation.PersonaID(); ok {
		_spec.SetField(task.FieldPersonaID, field.TypeString, value)
	}
	if _u.mutation.PersonaIDCleared() {
		_spec.ClearField(task.FieldPersonaID, field.TypeString)
	}
	if value, ok := _u.mutation.SubVideoCount(); ok {
		_spec.SetField(task.FieldSubVideoCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSubVideoCount(); ok {
		_spec.AddField(task.FieldSubVideoCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompletedCount(); ok {
		_spec.SetField(task.FieldCompletedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompletedCount(); ok {
		_spec.AddField(task.FieldCompletedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.VideoResults(); ok {
		_spec.SetField(task.FieldVideoResults, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedVideoResults(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, task.FieldVideoResults, value)
		})
	}
	if _u.mutation.VideoResultsCleared() {
		_spec.ClearField(task.FieldVideoResults, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(task.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(task.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(task.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(task.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(task.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(task.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(task.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(task.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(task.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(task.FieldLastHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatAtCleared() {
		_spec.ClearField(task.FieldLastHeartbeatAt, field.TypeTime)
	}
	if _u.mutation.SubTasksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.SubTasksTable,
			Columns: []string{task.SubTasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(subvideotask.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSubTasksIDs(); len(nodes) > 0 && !_u.mutation.SubTasksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.SubTasksTable,
			Columns: []string{task.SubTasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(subvideotask.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SubTasksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.SubTasksTable,
			Columns: []string{task.SubTasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(subvideotask.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MediaItemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.MediaItemsTable,
			Columns: []string{task.MediaItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(mediaitem.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMediaItemsIDs(); len(nodes) > 0 && !_u.mutation.MediaItemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.MediaItemsTable,
			Columns: []string{task.MediaItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(mediaitem.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MediaItemsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.MediaItemsTable,
			Columns: []string{task.MediaItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(mediaitem.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AnalysesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.AnalysesTable,
			Columns: []string{task.AnalysesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(materialanalysis.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAnalysesIDs(); len(nodes) > 0 && !_u.mutation.AnalysesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.AnalysesTable,
			Columns: []string{task.AnalysesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(materialanalysis.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AnalysesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.AnalysesTable,
			Columns: []string{task.AnalysesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(materialanalysis.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ScriptsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.ScriptsTable,
			Columns: []string{task.ScriptsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(scriptcontent.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedScriptsIDs(); len(nodes) > 0 && !_u.mutation.ScriptsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.ScriptsTable,
			Columns: []string{task.ScriptsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(scriptcontent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ScriptsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.ScriptsTable,
			Columns: []string{task.ScriptsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(scriptcontent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Task{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{task.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
