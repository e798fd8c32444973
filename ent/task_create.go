// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/textloom/textloom/ent/materialanalysis"
	"github.com/textloom/textloom/ent/mediaitem"
	"github.com/textloom/textloom/ent/scriptcontent"
	"github.com/textloom/textloom/ent/subvideotask"
	"github.com/textloom/textloom/ent/task"
)

// TaskCreate is the builder for creating a Task entity.
type TaskCreate struct {
	config
	mutation *TaskMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTitle sets the "title" field.
func (_c *TaskCreate) SetTitle(v string) *TaskCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *TaskCreate) SetDescription(v string) *TaskCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *TaskCreate) SetNillableDescription(v *string) *TaskCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetCreatorID sets the "creator_id" field.
func (_c *TaskCreate) SetCreatorID(v string) *TaskCreate {
	_c.mutation.SetCreatorID(v)
	return _c
}

// SetNillableCreatorID sets the "creator_id" field if the given value is not nil.
func (_c *TaskCreate) SetNillableCreatorID(v *string) *TaskCreate {
	if v != nil {
		_c.SetCreatorID(*v)
	}
	return _c
}

// SetTaskType sets the "task_type" field.
func (_c *TaskCreate) SetTaskType(v string) *TaskCreate {
	_c.mutation.SetTaskType(v)
	return _c
}

// SetNillableTaskType sets the "task_type" field if the given value is not nil.
func (_c *TaskCreate) SetNillableTaskType(v *string) *TaskCreate {
	if v != nil {
		_c.SetTaskType(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *TaskCreate) SetStatus(v task.Status) *TaskCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *TaskCreate) SetNillableStatus(v *task.Status) *TaskCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetProgress sets the "progress" field.
func (_c *TaskCreate) SetProgress(v int) *TaskCreate {
	_c.mutation.SetProgress(v)
	return _c
}

// SetNillableProgress sets the "progress" field if the given value is not nil.
func (_c *TaskCreate) SetNillableProgress(v *int) *TaskCreate {
	if v != nil {
		_c.SetProgress(*v)
	}
	return _c
}

// SetCurrentStage sets the "current_stage" field.
func (_c *TaskCreate) SetCurrentStage(v task.CurrentStage) *TaskCreate {
	_c.mutation.SetCurrentStage(v)
	return _c
}

// SetNillableCurrentStage sets the "current_stage" field if the given value is not nil.
func (_c *TaskCreate) SetNillableCurrentStage(v *task.CurrentStage) *TaskCreate {
	if v != nil {
		_c.SetCurrentStage(*v)
	}
	return _c
}

// SetWorkspaceDir sets the "workspace_dir" field.
func (_c *TaskCreate) SetWorkspaceDir(v string) *TaskCreate {
	_c.mutation.SetWorkspaceDir(v)
	return _c
}

// SetSourceFile sets the "source_file" field.
func (_c *TaskCreate) SetSourceFile(v string) *TaskCreate {
	_c.mutation.SetSourceFile(v)
	return _c
}

// SetScriptStyle sets the "script_style" field.
func (_c *TaskCreate) SetScriptStyle(v string) *TaskCreate {
	_c.mutation.SetScriptStyle(v)
	return _c
}

// SetNillableScriptStyle sets the "script_style" field if the given value is not nil.
func (_c *TaskCreate) SetNillableScriptStyle(v *string) *TaskCreate {
	if v != nil {
		_c.SetScriptStyle(*v)
	}
	return _c
}

// SetPersonaID sets the "persona_id" field.
func (_c *TaskCreate) SetPersonaID(v string) *TaskCreate {
	_c.mutation.SetPersonaID(v)
	return _c
}

// SetNillablePersonaID sets the "persona_id" field if the given value is not nil.
func (_c *TaskCreate) SetNillablePersonaID(v *string) *TaskCreate {
	if v != nil {
		_c.SetPersonaID(*v)
	}
	return _c
}

// SetSubVideoCount sets the "sub_video_count" field.
func (_c *TaskCreate) SetSubVideoCount(v int) *TaskCreate {
	_c.mutation.SetSubVideoCount(v)
	return _c
}

// SetNillableSubVideoCount sets the "sub_video_count" field if the given value is not nil.
func (_c *TaskCreate) SetNillableSubVideoCount(v *int) *TaskCreate {
	if v != nil {
		_c.SetSubVideoCount(*v)
	}
	return _c
}

// SetCompletedCount sets the "completed_count" field.
func (_c *TaskCreate) SetCompletedCount(v int) *TaskCreate {
	_c.mutation.SetCompletedCount(v)
	return _c
}

// SetNillableCompletedCount sets the "completed_count" field if the given value is not nil.
func (_c *TaskCreate) SetNillableCompletedCount(v *int) *TaskCreate {
	if v != nil {
		_c.SetCompletedCount(*v)
	}
	return _c
}

// SetVideoResults sets the "video_results" field.
func (_c *TaskCreate) SetVideoResults(v []map[string]interface{}) *TaskCreate {
	_c.mutation.SetVideoResults(v)
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *TaskCreate) SetErrorMessage(v string) *TaskCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *TaskCreate) SetNillableErrorMessage(v *string) *TaskCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TaskCreate) SetCreatedAt(v time.Time) *TaskCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TaskCreate) SetNillableCreatedAt(v *time.Time) *TaskCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *TaskCreate) SetUpdatedAt(v time.Time) *TaskCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *TaskCreate) SetNillableUpdatedAt(v *time.Time) *TaskCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *TaskCreate) SetStartedAt(v time.Time) *TaskCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *TaskCreate) SetNillableStartedAt(v *time.Time) *TaskCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *TaskCreate) SetCompletedAt(v time.Time) *TaskCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *TaskCreate) SetNillableCompletedAt(v *time.Time) *TaskCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetPodID sets the "pod_id" field.
func (_c *TaskCreate) SetPodID(v string) *TaskCreate {
	_c.mutation.SetPodID(v)
	return _c
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_c *TaskCreate) SetNillablePodID(v *string) *TaskCreate {
	if v != nil {
		_c.SetPodID(*v)
	}
	return _c
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_c *TaskCreate) SetLastHeartbeatAt(v time.Time) *TaskCreate {
	_c.mutation.SetLastHeartbeatAt(v)
	return _c
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_c *TaskCreate) SetNillableLastHeartbeatAt(v *time.Time) *TaskCreate {
	if v != nil {
		_c.SetLastHeartbeatAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TaskCreate) SetID(v string) *TaskCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddSubTaskIDs adds the "sub_tasks" edge to the SubVideoTask entity by IDs.
func (_c *TaskCreate) AddSubTaskIDs(ids ...string) *TaskCreate {
	_c.mutation.AddSubTaskIDs(ids...)
	return _c
}

// AddSubTasks adds the "sub_tasks" edges to the SubVideoTask entity.
func (_c *TaskCreate) AddSubTasks(v ...*SubVideoTask) *TaskCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddSubTaskIDs(ids...)
}

// AddMediaItemIDs adds the "media_items" edge to the MediaItem entity by IDs.
func (_c *TaskCreate) AddMediaItemIDs(ids ...string) *TaskCreate {
	_c.mutation.AddMediaItemIDs(ids...)
	return _c
}

// AddMediaItems adds the "media_items" edges to the MediaItem entity.
func (_c *TaskCreate) AddMediaItems(v ...*MediaItem) *TaskCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddMediaItemIDs(ids...)
}

// AddAnalysisIDs adds the "analyses" edge to the MaterialAnalysis entity by IDs.
func (_c *TaskCreate) AddAnalysisIDs(ids ...string) *TaskCreate {
	_c.mutation.AddAnalysisIDs(ids...)
	return _c
}

// AddAnalyses adds the "analyses" edges to the MaterialAnalysis entity.
func (_c *TaskCreate) AddAnalyses(v ...*MaterialAnalysis) *TaskCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAnalysisIDs(ids...)
}

// AddScriptIDs adds the "scripts" edge to the ScriptContent entity by IDs.
func (_c *TaskCreate) AddScriptIDs(ids ...string) *TaskCreate {
	_c.mutation.AddScriptIDs(ids...)
	return _c
}

// AddScripts adds the "scripts" edges to the ScriptContent entity.
func (_c *TaskCreate) AddScripts(v ...*ScriptContent) *TaskCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddScriptIDs(ids...)
}

// Mutation returns the TaskMutation object of the builder.
func (_c *TaskCreate) Mutation() *TaskMutation {
	return _c.mutation
}

// Save creates the Task in the database.
func (_c *TaskCreate) Save(ctx context.Context) (*Task, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TaskCreate) SaveX(ctx context.Context) *Task {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TaskCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TaskCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TaskCreate) defaults() {
	if _, ok := _c.mutation.TaskType(); !ok {
		v := task.DefaultTaskType
		_c.mutation.SetTaskType(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := task.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Progress(); !ok {
		v := task.DefaultProgress
		_c.mutation.SetProgress(v)
	}
	if _, ok := _c.mutation.CurrentStage(); !ok {
		v := task.DefaultCurrentStage
		_c.mutation.SetCurrentStage(v)
	}
	if _, ok := _c.mutation.ScriptStyle(); !ok {
		v := task.DefaultScriptStyle
		_c.mutation.SetScriptStyle(v)
	}
	if _, ok := _c.mutation.SubVideoCount(); !ok {
		v := task.DefaultSubVideoCount
		_c.mutation.SetSubVideoCount(v)
	}
	if _, ok := _c.mutation.CompletedCount(); !ok {
		v := task.DefaultCompletedCount
		_c.mutation.SetCompletedCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := task.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := task.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TaskCreate) check() error {
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Task.title"`)}
	}
	if _, ok := _c.mutation.TaskType(); !ok {
		return &ValidationError{Name: "task_type", err: errors.New(`ent: missing required field "Task.task_type"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Task.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := task.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Task.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Progress(); !ok {
		return &ValidationError{Name: "progress", err: errors.New(`ent: missing required field "Task.progress"`)}
	}
	if _, ok := _c.mutation.CurrentStage(); !ok {
		return &ValidationError{Name: "current_stage", err: errors.New(`ent: missing required field "Task.current_stage"`)}
	}
	if v, ok := _c.mutation.CurrentStage(); ok {
		if err := task.CurrentStageValidator(v); err != nil {
			return &ValidationError{Name: "current_stage", err: fmt.Errorf(`ent: validator failed for field "Task.current_stage": %w`, err)}
		}
	}
	if _, ok := _c.mutation.WorkspaceDir(); !ok {
		return &ValidationError{Name: "workspace_dir", err: errors.New(`ent: missing required field "Task.workspace_dir"`)}
	}
	if _, ok := _c.mutation.SourceFile(); !ok {
		return &ValidationError{Name: "source_file", err: errors.New(`ent: missing required field "Task.source_file"`)}
	}
	if _, ok := _c.mutation.ScriptStyle(); !ok {
		return &ValidationError{Name: "script_style", err: errors.New(`ent: missing required field "Task.script_style"`)}
	}
	if _, ok := _c.mutation.SubVideoCount(); !ok {
		return &ValidationError{Name: "sub_video_count", err: errors.New(`ent: missing required field "Task.sub_video_count"`)}
	}
	if _, ok := _c.mutation.CompletedCount(); !ok {
		return &ValidationError{Name: "completed_count", err: errors.New(`ent: missing required field "Task.completed_count"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Task.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Task.updated_at"`)}
	}
	return nil
}

func (_c *TaskCreate) sqlSave(ctx context.Context) (*Task, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Task.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TaskCreate) createSpec() (*Task, *sqlgraph.CreateSpec) {
	var (
		_node = &Task{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(task.Table, sqlgraph.NewFieldSpec(task.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(task.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(task.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.CreatorID(); ok {
		_spec.SetField(task.FieldCreatorID, field.TypeString, value)
		_node.CreatorID = value
	}
	if value, ok := _c.mutation.TaskType(); ok {
		_spec.SetField(task.FieldTaskType, field.TypeString, value)
		_node.TaskType = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(task.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Progress(); ok {
		_spec.SetField(task.FieldProgress, field.TypeInt, value)
		_node.Progress = value
	}
	if value, ok := _c.mutation.CurrentStage(); ok {
		_spec.SetField(task.FieldCurrentStage, field.TypeEnum, value)
		_node.CurrentStage = value
	}
	if value, ok := _c.mutation.WorkspaceDir(); ok {
		_spec.SetField(task.FieldWorkspaceDir, field.TypeString, value)
		_node.WorkspaceDir = value
	}
	if value, ok := _c.mutation.SourceFile(); ok {
		_spec.SetField(task.FieldSourceFile, field.TypeString, value)
		_node.SourceFile = value
	}
	if value, ok := _c.mutation.ScriptStyle(); ok {
		_spec.SetField(task.FieldScriptStyle, field.TypeString, value)
		_node.ScriptStyle = value
	}
	if value, ok := _c.mutation.PersonaID(); ok {
		_spec.SetField(task.FieldPersonaID, field.TypeString, value)
		_node.PersonaID = &value
	}
	if value, ok := _c.mutation.SubVideoCount(); ok {
		_spec.SetField(task.FieldSubVideoCount, field.TypeInt, value)
		_node.SubVideoCount = value
	}
	if value, ok := _c.mutation.CompletedCount(); ok {
		_spec.SetField(task.FieldCompletedCount, field.TypeInt, value)
		_node.CompletedCount = value
	}
	if value, ok := _c.mutation.VideoResults(); ok {
		_spec.SetField(task.FieldVideoResults, field.TypeJSON, value)
		_node.VideoResults = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(task.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(task.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(task.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(task.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(task.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.PodID(); ok {
		_spec.SetField(task.FieldPodID, field.TypeString, value)
		_node.PodID = &value
	}
	if value, ok := _c.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(task.FieldLastHeartbeatAt, field.TypeTime, value)
		_node.LastHeartbeatAt = &value
	}
	if nodes := _c.mutation.SubTasksIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.MediaItemsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AnalysesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ScriptsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Task.Create().
//		SetTitle(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TaskUpsert) {
//			SetTitle(v+v).
//		}).
//		Exec(ctx)
func (_c *TaskCreate) OnConflict(opts ...sql.ConflictOption) *TaskUpsertOne {
	_c.conflict = opts
	return &TaskUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Task.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TaskCreate) OnConflictColumns(columns ...string) *TaskUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TaskUpsertOne{
		create: _c,
	}
}

type (
	// TaskUpsertOne is the builder for "upsert"-ing
	//  one Task node.
	TaskUpsertOne struct {
		create *TaskCreate
	}

	// TaskUpsert is the "OnConflict" setter.
	TaskUpsert struct {
		*sql.UpdateSet
	}
)

// SetTitle sets the "title" field.
func (u *TaskUpsert) SetTitle(v string) *TaskUpsert {
	u.Set(task.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *TaskUpsert) UpdateTitle() *TaskUpsert {
	u.SetExcluded(task.FieldTitle)
	return u
}

// SetDescription sets the "description" field.
func (u *TaskUpsert) SetDescription(v string) *TaskUpsert {
	u.Set(task.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *TaskUpsert) UpdateDescription() *TaskUpsert {
	u.SetExcluded(task.FieldDescription)
	return u
}

// ClearDescription clears the value of the "description" field.
func (u *TaskUpsert) ClearDescription() *TaskUpsert {
	u.SetNull(task.FieldDescription)
	return u
}

// SetCreatorID sets the "creator_id" field.
func (u *TaskUpsert) SetCreatorID(v string) *TaskUpsert {
	u.Set(task.FieldCreatorID, v)
	return u
}

// UpdateCreatorID sets the "creator_id" field to the value that was provided on create.
func (u *TaskUpsert) UpdateCreatorID() *TaskUpsert {
	u.SetExcluded(task.FieldCreatorID)
	return u
}

// ClearCreatorID clears the value of the "creator_id" field.
func (u *TaskUpsert) ClearCreatorID() *TaskUpsert {
	u.SetNull(task.FieldCreatorID)
	return u
}

// SetTaskType sets the "task_type" field.
func (u *TaskUpsert) SetTaskType(v string) *TaskUpsert {
	u.Set(task.FieldTaskType, v)
	return u
}

// UpdateTaskType sets the "task_type" field to the value that was provided on create.
func (u *TaskUpsert) UpdateTaskType() *TaskUpsert {
	u.SetExcluded(task.FieldTaskType)
	return u
}

// SetStatus sets the "status" field.
func (u *TaskUpsert) SetStatus(v task.Status) *TaskUpsert {
	u.Set(task.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *TaskUpsert) UpdateStatus() *TaskUpsert {
	u.SetExcluded(task.FieldStatus)
	return u
}

// SetProgress sets the "progress" field.
func (u *TaskUpsert) SetProgress(v int) *TaskUpsert {
	u.Set(task.FieldProgress, v)
	return u
}

// UpdateProgress sets the "progress" field to the value that was provided on create.
func (u *TaskUpsert) UpdateProgress() *TaskUpsert {
	u.SetExcluded(task.FieldProgress)
	return u
}

// AddProgress adds v to the "progress" field.
func (u *TaskUpsert) AddProgress(v int) *TaskUpsert {
	u.Add(task.FieldProgress, v)
	return u
}

// SetCurrentStage sets the "current_stage" field.
func (u *TaskUpsert) SetCurrentStage(v task.CurrentStage) *TaskUpsert {
	u.Set(task.FieldCurrentStage, v)
	return u
}

// UpdateCurrentStage sets the "current_stage" field to the value that was provided on create.
func (u *TaskUpsert) UpdateCurrentStage() *TaskUpsert {
	u.SetExcluded(task.FieldCurrentStage)
	return u
}

// SetWorkspaceDir sets the "workspace_dir" field.
func (u *TaskUpsert) SetWorkspaceDir(v string) *TaskUpsert {
	u.Set(task.FieldWorkspaceDir, v)
	return u
}

// UpdateWorkspaceDir sets the "workspace_dir" field to the value that was provided on create.
func (u *TaskUpsert) UpdateWorkspaceDir() *TaskUpsert {
	u.SetExcluded(task.FieldWorkspaceDir)
	return u
}

// SetSourceFile sets the "source_file" field.
func (u *TaskUpsert) SetSourceFile(v string) *TaskUpsert {
	u.Set(task.FieldSourceFile, v)
	return u
}

// UpdateSourceFile sets the "source_file" field to the value that was provided on create.
func (u *TaskUpsert) UpdateSourceFile() *TaskUpsert {
	u.SetExcluded(task.FieldSourceFile)
	return u
}

// SetScriptStyle sets the "script_style" field.
func (u *TaskUpsert) SetScriptStyle(v string) *TaskUpsert {
	u.Set(task.FieldScriptStyle, v)
	return u
}

// UpdateScriptStyle sets the "script_style" field to the value that was provided on create.
func (u *TaskUpsert) UpdateScriptStyle() *TaskUpsert {
	u.SetExcluded(task.FieldScriptStyle)
	return u
}

// SetPersonaID sets the "persona_id" field.
func (u *TaskUpsert) SetPersonaID(v string) *TaskUpsert {
	u.Set(task.FieldPersonaID, v)
	return u
}

// UpdatePersonaID sets the "persona_id" field to the value that was provided on create.
func (u *TaskUpsert) UpdatePersonaID() *TaskUpsert {
	u.SetExcluded(task.FieldPersonaID)
	return u
}

// ClearPersonaID clears the value of the "persona_id" field.
func (u *TaskUpsert) ClearPersonaID() *TaskUpsert {
	u.SetNull(task.FieldPersonaID)
	return u
}

// SetSubVideoCount sets the "sub_video_count" field.
func (u *TaskUpsert) SetSubVideoCount(v int) *TaskUpsert {
	u.Set(task.FieldSubVideoCount, v)
	return u
}

// UpdateSubVideoCount sets the "sub_video_count" field to the value that was provided on create.
func (u *TaskUpsert) UpdateSubVideoCount() *TaskUpsert {
	u.SetExcluded(task.FieldSubVideoCount)
	return u
}

// AddSubVideoCount adds v to the "sub_video_count" field.
func (u *TaskUpsert) AddSubVideoCount(v int) *TaskUpsert {
	u.Add(task.FieldSubVideoCount, v)
	return u
}

// SetCompletedCount sets the "completed_count" field.
func (u *TaskUpsert) SetCompletedCount(v int) *TaskUpsert {
	u.Set(task.FieldCompletedCount, v)
	return u
}

// UpdateCompletedCount sets the "completed_count" field to the value that was provided on create.
func (u *TaskUpsert) UpdateCompletedCount() *TaskUpsert {
	u.SetExcluded(task.FieldCompletedCount)
	return u
}

// AddCompletedCount adds v to the "completed_count" field.
func (u *TaskUpsert) AddCompletedCount(v int) *TaskUpsert {
	u.Add(task.FieldCompletedCount, v)
	return u
}

// SetVideoResults sets the "video_results" field.
func (u *TaskUpsert) SetVideoResults(v []map[string]interface{}) *TaskUpsert {
	u.Set(task.FieldVideoResults, v)
	return u
}

// UpdateVideoResults sets the "video_results" field to the value that was provided on create.
func (u *TaskUpsert) UpdateVideoResults() *TaskUpsert {
	u.SetExcluded(task.FieldVideoResults)
	return u
}

// ClearVideoResults clears the value of the "video_results" field.
func (u *TaskUpsert) ClearVideoResults() *TaskUpsert {
	u.SetNull(task.FieldVideoResults)
	return u
}

// SetErrorMessage sets the "error_message" field.
func (u *TaskUpsert) SetErrorMessage(v string) *TaskUpsert {
	u.Set(task.FieldErrorMessage, v)
	return u
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *TaskUpsert) UpdateErrorMessage() *TaskUpsert {
	u.SetExcluded(task.FieldErrorMessage)
	return u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *TaskUpsert) ClearErrorMessage() *TaskUpsert {
	u.SetNull(task.FieldErrorMessage)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *TaskUpsert) SetUpdatedAt(v time.Time) *TaskUpsert {
	u.Set(task.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *TaskUpsert) UpdateUpdatedAt() *TaskUpsert {
	u.SetExcluded(task.FieldUpdatedAt)
	return u
}

// SetStartedAt sets the "started_at" field.
func (u *TaskUpsert) SetStartedAt(v time.Time) *TaskUpsert {
	u.Set(task.FieldStartedAt, v)
	return u
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *TaskUpsert) UpdateStartedAt() *TaskUpsert {
	u.SetExcluded(task.FieldStartedAt)
	return u
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *TaskUpsert) ClearStartedAt() *TaskUpsert {
	u.SetNull(task.FieldStartedAt)
	return u
}

// SetCompletedAt sets the "completed_at" field.
func (u *TaskUpsert) SetCompletedAt(v time.Time) *TaskUpsert {
	u.Set(task.FieldCompletedAt, v)
	return u
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *TaskUpsert) UpdateCompletedAt() *TaskUpsert {
	u.SetExcluded(task.FieldCompletedAt)
	return u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *TaskUpsert) ClearCompletedAt() *TaskUpsert {
	u.SetNull(task.FieldCompletedAt)
	return u
}

// SetPodID sets the "pod_id" field.
func (u *TaskUpsert) SetPodID(v string) *TaskUpsert {
	u.Set(task.FieldPodID, v)
	return u
}

// UpdatePodID sets the "pod_id" field to the value that was provided on create.
func (u *TaskUpsert) UpdatePodID() *TaskUpsert {
	u.SetExcluded(task.FieldPodID)
	return u
}

// ClearPodID clears the value of the "pod_id" field.
func (u *TaskUpsert) ClearPodID() *TaskUpsert {
	u.SetNull(task.FieldPodID)
	return u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (u *TaskUpsert) SetLastHeartbeatAt(v time.Time) *TaskUpsert {
	u.Set(task.FieldLastHeartbeatAt, v)
	return u
}

// UpdateLastHeartbeatAt sets the "last_heartbeat_at" field to the value that was provided on create.
func (u *TaskUpsert) UpdateLastHeartbeatAt() *TaskUpsert {
	u.SetExcluded(task.FieldLastHeartbeatAt)
	return u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (u *TaskUpsert) ClearLastHeartbeatAt() *TaskUpsert {
	u.SetNull(task.FieldLastHeartbeatAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Task.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(task.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TaskUpsertOne) UpdateNewValues() *TaskUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(task.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(task.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Task.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *TaskUpsertOne) Ignore() *TaskUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TaskUpsertOne) DoNothing() *TaskUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TaskCreate.OnConflict
// documentation for more info.
func (u *TaskUpsertOne) Update(set func(*TaskUpsert)) *TaskUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TaskUpsert{UpdateSet: update})
	}))
	return u
}

// SetTitle sets the "title" field.
func (u *TaskUpsertOne) SetTitle(v string) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateTitle() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateTitle()
	})
}

// SetDescription sets the "description" field.
func (u *TaskUpsertOne) SetDescription(v string) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateDescription() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *TaskUpsertOne) ClearDescription() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearDescription()
	})
}

// SetCreatorID sets the "creator_id" field.
func (u *TaskUpsertOne) SetCreatorID(v string) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetCreatorID(v)
	})
}

// UpdateCreatorID sets the "creator_id" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateCreatorID() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateCreatorID()
	})
}

// ClearCreatorID clears the value of the "creator_id" field.
func (u *TaskUpsertOne) ClearCreatorID() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearCreatorID()
	})
}

// SetTaskType sets the "task_type" field.
func (u *TaskUpsertOne) SetTaskType(v string) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetTaskType(v)
	})
}

// UpdateTaskType sets the "task_type" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateTaskType() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateTaskType()
	})
}

// SetStatus sets the "status" field.
func (u *TaskUpsertOne) SetStatus(v task.Status) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateStatus() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateStatus()
	})
}

// SetProgress sets the "progress" field.
func (u *TaskUpsertOne) SetProgress(v int) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetProgress(v)
	})
}

// AddProgress adds v to the "progress" field.
func (u *TaskUpsertOne) AddProgress(v int) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.AddProgress(v)
	})
}

// UpdateProgress sets the "progress" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateProgress() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateProgress()
	})
}

// SetCurrentStage sets the "current_stage" field.
func (u *TaskUpsertOne) SetCurrentStage(v task.CurrentStage) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetCurrentStage(v)
	})
}

// UpdateCurrentStage sets the "current_stage" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateCurrentStage() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateCurrentStage()
	})
}

// SetWorkspaceDir sets the "workspace_dir" field.
func (u *TaskUpsertOne) SetWorkspaceDir(v string) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetWorkspaceDir(v)
	})
}

// UpdateWorkspaceDir sets the "workspace_dir" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateWorkspaceDir() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateWorkspaceDir()
	})
}

// SetSourceFile sets the "source_file" field.
func (u *TaskUpsertOne) SetSourceFile(v string) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetSourceFile(v)
	})
}

// UpdateSourceFile sets the "source_file" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateSourceFile() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateSourceFile()
	})
}

// SetScriptStyle sets the "script_style" field.
func (u *TaskUpsertOne) SetScriptStyle(v string) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetScriptStyle(v)
	})
}

// UpdateScriptStyle sets the "script_style" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateScriptStyle() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateScriptStyle()
	})
}

// SetPersonaID sets the "persona_id" field.
func (u *TaskUpsertOne) SetPersonaID(v string) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetPersonaID(v)
	})
}

// UpdatePersonaID sets the "persona_id" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdatePersonaID() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdatePersonaID()
	})
}

// ClearPersonaID clears the value of the "persona_id" field.
func (u *TaskUpsertOne) ClearPersonaID() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearPersonaID()
	})
}

// SetSubVideoCount sets the "sub_video_count" field.
func (u *TaskUpsertOne) SetSubVideoCount(v int) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetSubVideoCount(v)
	})
}

// AddSubVideoCount adds v to the "sub_video_count" field.
func (u *TaskUpsertOne) AddSubVideoCount(v int) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.AddSubVideoCount(v)
	})
}

// UpdateSubVideoCount sets the "sub_video_count" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateSubVideoCount() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateSubVideoCount()
	})
}

// SetCompletedCount sets the "completed_count" field.
func (u *TaskUpsertOne) SetCompletedCount(v int) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetCompletedCount(v)
	})
}

// AddCompletedCount adds v to the "completed_count" field.
func (u *TaskUpsertOne) AddCompletedCount(v int) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.AddCompletedCount(v)
	})
}

// UpdateCompletedCount sets the "completed_count" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateCompletedCount() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateCompletedCount()
	})
}

// SetVideoResults sets the "video_results" field.
func (u *TaskUpsertOne) SetVideoResults(v []map[string]interface{}) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetVideoResults(v)
	})
}

// UpdateVideoResults sets the "video_results" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateVideoResults() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateVideoResults()
	})
}

// ClearVideoResults clears the value of the "video_results" field.
func (u *TaskUpsertOne) ClearVideoResults() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearVideoResults()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *TaskUpsertOne) SetErrorMessage(v string) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateErrorMessage() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *TaskUpsertOne) ClearErrorMessage() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearErrorMessage()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *TaskUpsertOne) SetUpdatedAt(v time.Time) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateUpdatedAt() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *TaskUpsertOne) SetStartedAt(v time.Time) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateStartedAt() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *TaskUpsertOne) ClearStartedAt() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearStartedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *TaskUpsertOne) SetCompletedAt(v time.Time) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateCompletedAt() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *TaskUpsertOne) ClearCompletedAt() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearCompletedAt()
	})
}

// SetPodID sets the "pod_id" field.
func (u *TaskUpsertOne) SetPodID(v string) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetPodID(v)
	})
}

// UpdatePodID sets the "pod_id" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdatePodID() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdatePodID()
	})
}

// ClearPodID clears the value of the "pod_id" field.
func (u *TaskUpsertOne) ClearPodID() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearPodID()
	})
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (u *TaskUpsertOne) SetLastHeartbeatAt(v time.Time) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetLastHeartbeatAt(v)
	})
}

// UpdateLastHeartbeatAt sets the "last_heartbeat_at" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateLastHeartbeatAt() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateLastHeartbeatAt()
	})
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (u *TaskUpsertOne) ClearLastHeartbeatAt() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearLastHeartbeatAt()
	})
}

// Exec executes the query.
func (u *TaskUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TaskCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TaskUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *TaskUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: TaskUpsertOne.ID is not supported by MySQL driver. Use TaskUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *TaskUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// TaskCreateBulk is the builder for creating many Task entities in bulk.
type TaskCreateBulk struct {
	config
	err      error
	builders []*TaskCreate
	conflict []sql.ConflictOption
}

// Save creates the Task entities in the database.
func (_c *TaskCreateBulk) Save(ctx context.Context) ([]*Task, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Task, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TaskMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *TaskCreateBulk) SaveX(ctx context.Context) []*Task {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TaskCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TaskCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Task.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TaskUpsert) {
//			SetTitle(v+v).
//		}).
//		Exec(ctx)
func (_c *TaskCreateBulk) OnConflict(opts ...sql.ConflictOption) *TaskUpsertBulk {
	_c.conflict = opts
	return &TaskUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Task.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TaskCreateBulk) OnConflictColumns(columns ...string) *TaskUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TaskUpsertBulk{
		create: _c,
	}
}

// TaskUpsertBulk is the builder for "upsert"-ing
// a bulk of Task nodes.
type TaskUpsertBulk struct {
	create *TaskCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Task.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(task.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TaskUpsertBulk) UpdateNewValues() *TaskUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(task.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(task.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Task.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *TaskUpsertBulk) Ignore() *TaskUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TaskUpsertBulk) DoNothing() *TaskUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TaskCreateBulk.OnConflict
// documentation for more info.
func (u *TaskUpsertBulk) Update(set func(*TaskUpsert)) *TaskUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TaskUpsert{UpdateSet: update})
	}))
	return u
}

// SetTitle sets the "title" field.
func (u *TaskUpsertBulk) SetTitle(v string) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateTitle() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateTitle()
	})
}

// SetDescription sets the "description" field.
func (u *TaskUpsertBulk) SetDescription(v string) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateDescription() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *TaskUpsertBulk) ClearDescription() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearDescription()
	})
}

// SetCreatorID sets the "creator_id" field.
func (u *TaskUpsertBulk) SetCreatorID(v string) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetCreatorID(v)
	})
}

// UpdateCreatorID sets the "creator_id" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateCreatorID() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateCreatorID()
	})
}

// ClearCreatorID clears the value of the "creator_id" field.
func (u *TaskUpsertBulk) ClearCreatorID() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearCreatorID()
	})
}

// SetTaskType sets the "task_type" field.
func (u *TaskUpsertBulk) SetTaskType(v string) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetTaskType(v)
	})
}

// UpdateTaskType sets the "task_type" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateTaskType() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateTaskType()
	})
}

// SetStatus sets the "status" field.
func (u *TaskUpsertBulk) SetStatus(v task.Status) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateStatus() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateStatus()
	})
}

// SetProgress sets the "progress" field.
func (u *TaskUpsertBulk) SetProgress(v int) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetProgress(v)
	})
}

// AddProgress adds v to the "progress" field.
func (u *TaskUpsertBulk) AddProgress(v int) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.AddProgress(v)
	})
}

// UpdateProgress sets the "progress" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateProgress() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateProgress()
	})
}

// SetCurrentStage sets the "current_stage" field.
func (u *TaskUpsertBulk) SetCurrentStage(v task.CurrentStage) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetCurrentStage(v)
	})
}

// UpdateCurrentStage sets the "current_stage" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateCurrentStage() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateCurrentStage()
	})
}

// SetWorkspaceDir sets the "workspace_dir" field.
func (u *TaskUpsertBulk) SetWorkspaceDir(v string) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetWorkspaceDir(v)
	})
}

// UpdateWorkspaceDir sets the "workspace_dir" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateWorkspaceDir() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateWorkspaceDir()
	})
}

// SetSourceFile sets the "source_file" field.
func (u *TaskUpsertBulk) SetSourceFile(v string) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetSourceFile(v)
	})
}

// UpdateSourceFile sets the "source_file" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateSourceFile() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateSourceFile()
	})
}

// SetScriptStyle sets the "script_style" field.
func (u *TaskUpsertBulk) SetScriptStyle(v string) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetScriptStyle(v)
	})
}

// UpdateScriptStyle sets the "script_style" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateScriptStyle() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateScriptStyle()
	})
}

// SetPersonaID sets the "persona_id" field.
func (u *TaskUpsertBulk) SetPersonaID(v string) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetPersonaID(v)
	})
}

// UpdatePersonaID sets the "persona_id" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdatePersonaID() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdatePersonaID()
	})
}

// ClearPersonaID clears the value of the "persona_id" field.
func (u *TaskUpsertBulk) ClearPersonaID() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearPersonaID()
	})
}

// SetSubVideoCount sets the "sub_video_count" field.
func (u *TaskUpsertBulk) SetSubVideoCount(v int) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetSubVideoCount(v)
	})
}

// AddSubVideoCount adds v to the "sub_video_count" field.
func (u *TaskUpsertBulk) AddSubVideoCount(v int) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.AddSubVideoCount(v)
	})
}

// UpdateSubVideoCount sets the "sub_video_count" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateSubVideoCount() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateSubVideoCount()
	})
}

// SetCompletedCount sets the "completed_count" field.
func (u *TaskUpsertBulk) SetCompletedCount(v int) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetCompletedCount(v)
	})
}

// AddCompletedCount adds v to the "completed_count" field.
func (u *TaskUpsertBulk) AddCompletedCount(v int) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.AddCompletedCount(v)
	})
}

// UpdateCompletedCount sets the "completed_count" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateCompletedCount() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateCompletedCount()
	})
}

// SetVideoResults sets the "video_results" field.
func (u *TaskUpsertBulk) SetVideoResults(v []map[string]interface{}) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetVideoResults(v)
	})
}

// UpdateVideoResults sets the "video_results" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateVideoResults() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateVideoResults()
	})
}

// ClearVideoResults clears the value of the "video_results" field.
func (u *TaskUpsertBulk) ClearVideoResults() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearVideoResults()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *TaskUpsertBulk) SetErrorMessage(v string) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateErrorMessage() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *TaskUpsertBulk) ClearErrorMessage() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearErrorMessage()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *TaskUpsertBulk) SetUpdatedAt(v time.Time) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateUpdatedAt() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *TaskUpsertBulk) SetStartedAt(v time.Time) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateStartedAt() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *TaskUpsertBulk) ClearStartedAt() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearStartedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *TaskUpsertBulk) SetCompletedAt(v time.Time) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateCompletedAt() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *TaskUpsertBulk) ClearCompletedAt() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearCompletedAt()
	})
}

// SetPodID sets the "pod_id" field.
func (u *TaskUpsertBulk) SetPodID(v string) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetPodID(v)
	})
}

// UpdatePodID sets the "pod_id" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdatePodID() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdatePodID()
	})
}

// ClearPodID clears the value of the "pod_id" field.
func (u *TaskUpsertBulk) ClearPodID() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearPodID()
	})
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (u *TaskUpsertBulk) SetLastHeartbeatAt(v time.Time) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetLastHeartbeatAt(v)
	})
}

// UpdateLastHeartbeatAt sets the "last_heartbeat_at" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateLastHeartbeatAt() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateLastHeartbeatAt()
	})
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (u *TaskUpsertBulk) ClearLastHeartbeatAt() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearLastHeartbeatAt()
	})
}

// Exec executes the query.
func (u *TaskUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the TaskCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TaskCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TaskUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
