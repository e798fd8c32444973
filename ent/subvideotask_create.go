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
	"github.com/textloom/textloom/ent/subvideotask"
	"github.com/textloom/textloom/ent/task"
)

// SubVideoTaskCreate is the builder for creating a SubVideoTask entity.
type SubVideoTaskCreate struct {
	config
	mutation *SubVideoTaskMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTaskID sets the "task_id" field.
func (_c *SubVideoTaskCreate) SetTaskID(v string) *SubVideoTaskCreate {
	_c.mutation.SetTaskID(v)
	return _c
}

// SetIndex sets the "index" field.
func (_c *SubVideoTaskCreate) SetIndex(v int) *SubVideoTaskCreate {
	_c.mutation.SetIndex(v)
	return _c
}

// SetScriptStyle sets the "script_style" field.
func (_c *SubVideoTaskCreate) SetScriptStyle(v string) *SubVideoTaskCreate {
	_c.mutation.SetScriptStyle(v)
	return _c
}

// SetNillableScriptStyle sets the "script_style" field if the given value is not nil.
func (_c *SubVideoTaskCreate) SetNillableScriptStyle(v *string) *SubVideoTaskCreate {
	if v != nil {
		_c.SetScriptStyle(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *SubVideoTaskCreate) SetStatus(v subvideotask.Status) *SubVideoTaskCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *SubVideoTaskCreate) SetNillableStatus(v *subvideotask.Status) *SubVideoTaskCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetProgress sets the "progress" field.
func (_c *SubVideoTaskCreate) SetProgress(v int) *SubVideoTaskCreate {
	_c.mutation.SetProgress(v)
	return _c
}

// SetNillableProgress sets the "progress" field if the given value is not nil.
func (_c *SubVideoTaskCreate) SetNillableProgress(v *int) *SubVideoTaskCreate {
	if v != nil {
		_c.SetProgress(*v)
	}
	return _c
}

// SetScriptID sets the "script_id" field.
func (_c *SubVideoTaskCreate) SetScriptID(v string) *SubVideoTaskCreate {
	_c.mutation.SetScriptID(v)
	return _c
}

// SetNillableScriptID sets the "script_id" field if the given value is not nil.
func (_c *SubVideoTaskCreate) SetNillableScriptID(v *string) *SubVideoTaskCreate {
	if v != nil {
		_c.SetScriptID(*v)
	}
	return _c
}

// SetScriptData sets the "script_data" field.
func (_c *SubVideoTaskCreate) SetScriptData(v map[string]interface{}) *SubVideoTaskCreate {
	_c.mutation.SetScriptData(v)
	return _c
}

// SetCourseMediaID sets the "course_media_id" field.
func (_c *SubVideoTaskCreate) SetCourseMediaID(v string) *SubVideoTaskCreate {
	_c.mutation.SetCourseMediaID(v)
	return _c
}

// SetNillableCourseMediaID sets the "course_media_id" field if the given value is not nil.
func (_c *SubVideoTaskCreate) SetNillableCourseMediaID(v *string) *SubVideoTaskCreate {
	if v != nil {
		_c.SetCourseMediaID(*v)
	}
	return _c
}

// SetVideoURL sets the "video_url" field.
func (_c *SubVideoTaskCreate) SetVideoURL(v string) *SubVideoTaskCreate {
	_c.mutation.SetVideoURL(v)
	return _c
}

// SetNillableVideoURL sets the "video_url" field if the given value is not nil.
func (_c *SubVideoTaskCreate) SetNillableVideoURL(v *string) *SubVideoTaskCreate {
	if v != nil {
		_c.SetVideoURL(*v)
	}
	return _c
}

// SetThumbnailURL sets the "thumbnail_url" field.
func (_c *SubVideoTaskCreate) SetThumbnailURL(v string) *SubVideoTaskCreate {
	_c.mutation.SetThumbnailURL(v)
	return _c
}

// SetNillableThumbnailURL sets the "thumbnail_url" field if the given value is not nil.
func (_c *SubVideoTaskCreate) SetNillableThumbnailURL(v *string) *SubVideoTaskCreate {
	if v != nil {
		_c.SetThumbnailURL(*v)
	}
	return _c
}

// SetDuration sets the "duration" field.
func (_c *SubVideoTaskCreate) SetDuration(v float64) *SubVideoTaskCreate {
	_c.mutation.SetDuration(v)
	return _c
}

// SetNillableDuration sets the "duration" field if the given value is not nil.
func (_c *SubVideoTaskCreate) SetNillableDuration(v *float64) *SubVideoTaskCreate {
	if v != nil {
		_c.SetDuration(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *SubVideoTaskCreate) SetErrorMessage(v string) *SubVideoTaskCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *SubVideoTaskCreate) SetNillableErrorMessage(v *string) *SubVideoTaskCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SubVideoTaskCreate) SetCreatedAt(v time.Time) *SubVideoTaskCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SubVideoTaskCreate) SetNillableCreatedAt(v *time.Time) *SubVideoTaskCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SubVideoTaskCreate) SetUpdatedAt(v time.Time) *SubVideoTaskCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SubVideoTaskCreate) SetNillableUpdatedAt(v *time.Time) *SubVideoTaskCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *SubVideoTaskCreate) SetCompletedAt(v time.Time) *SubVideoTaskCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *SubVideoTaskCreate) SetNillableCompletedAt(v *time.Time) *SubVideoTaskCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SubVideoTaskCreate) SetID(v string) *SubVideoTaskCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetTask sets the "task" edge to the Task entity.
func (_c *SubVideoTaskCreate) SetTask(v *Task) *SubVideoTaskCreate {
	return _c.SetTaskID(v.ID)
}

// Mutation returns the SubVideoTaskMutation object of the builder.
func (_c *SubVideoTaskCreate) Mutation() *SubVideoTaskMutation {
	return _c.mutation
}

// Save creates the SubVideoTask in the database.
func (_c *SubVideoTaskCreate) Save(ctx context.Context) (*SubVideoTask, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SubVideoTaskCreate) SaveX(ctx context.Context) *SubVideoTask {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SubVideoTaskCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SubVideoTaskCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SubVideoTaskCreate) defaults() {
	if _, ok := _c.mutation.ScriptStyle(); !ok {
		v := subvideotask.DefaultScriptStyle
		_c.mutation.SetScriptStyle(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := subvideotask.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Progress(); !ok {
		v := subvideotask.DefaultProgress
		_c.mutation.SetProgress(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := subvideotask.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := subvideotask.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SubVideoTaskCreate) check() error {
	if _, ok := _c.mutation.TaskID(); !ok {
		return &ValidationError{Name: "task_id", err: errors.New(`ent: missing required field "SubVideoTask.task_id"`)}
	}
	if _, ok := _c.mutation.Index(); !ok {
		return &ValidationError{Name: "index", err: errors.New(`ent: missing required field "SubVideoTask.index"`)}
	}
	if _, ok := _c.mutation.ScriptStyle(); !ok {
		return &ValidationError{Name: "script_style", err: errors.New(`ent: missing required field "SubVideoTask.script_style"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "SubVideoTask.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := subvideotask.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "SubVideoTask.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Progress(); !ok {
		return &ValidationError{Name: "progress", err: errors.New(`ent: missing required field "SubVideoTask.progress"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SubVideoTask.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "SubVideoTask.updated_at"`)}
	}
	if len(_c.mutation.TaskIDs()) == 0 {
		return &ValidationError{Name: "task", err: errors.New(`ent: missing required edge "SubVideoTask.task"`)}
	}
	return nil
}

func (_c *SubVideoTaskCreate) sqlSave(ctx context.Context) (*SubVideoTask, error) {
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
			return nil, fmt.Errorf("unexpected SubVideoTask.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SubVideoTaskCreate) createSpec() (*SubVideoTask, *sqlgraph.CreateSpec) {
	var (
		_node = &SubVideoTask{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(subvideotask.Table, sqlgraph.NewFieldSpec(subvideotask.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Index(); ok {
		_spec.SetField(subvideotask.FieldIndex, field.TypeInt, value)
		_node.Index = value
	}
	if value, ok := _c.mutation.ScriptStyle(); ok {
		_spec.SetField(subvideotask.FieldScriptStyle, field.TypeString, value)
		_node.ScriptStyle = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(subvideotask.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Progress(); ok {
		_spec.SetField(subvideotask.FieldProgress, field.TypeInt, value)
		_node.Progress = value
	}
	if value, ok := _c.mutation.ScriptID(); ok {
		_spec.SetField(subvideotask.FieldScriptID, field.TypeString, value)
		_node.ScriptID = &value
	}
	if value, ok := _c.mutation.ScriptData(); ok {
		_spec.SetField(subvideotask.FieldScriptData, field.TypeJSON, value)
		_node.ScriptData = value
	}
	if value, ok := _c.mutation.CourseMediaID(); ok {
		_spec.SetField(subvideotask.FieldCourseMediaID, field.TypeString, value)
		_node.CourseMediaID = &value
	}
	if value, ok := _c.mutation.VideoURL(); ok {
		_spec.SetField(subvideotask.FieldVideoURL, field.TypeString, value)
		_node.VideoURL = value
	}
	if value, ok := _c.mutation.ThumbnailURL(); ok {
		_spec.SetField(subvideotask.FieldThumbnailURL, field.TypeString, value)
		_node.ThumbnailURL = value
	}
	if value, ok := _c.mutation.Duration(); ok {
		_spec.SetField(subvideotask.FieldDuration, field.TypeFloat64, value)
		_node.Duration = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(subvideotask.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(subvideotask.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(subvideotask.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(subvideotask.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if nodes := _c.mutation.TaskIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   subvideotask.TaskTable,
			Columns: []string{subvideotask.TaskColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.TaskID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SubVideoTask.Create().
//		SetTaskID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SubVideoTaskUpsert) {
//			SetTaskID(v+v).
//		}).
//		Exec(ctx)
func (_c *SubVideoTaskCreate) OnConflict(opts ...sql.ConflictOption) *SubVideoTaskUpsertOne {
	_c.conflict = opts
	return &SubVideoTaskUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SubVideoTask.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SubVideoTaskCreate) OnConflictColumns(columns ...string) *SubVideoTaskUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SubVideoTaskUpsertOne{
		create: _c,
	}
}

type (
	// SubVideoTaskUpsertOne is the builder for "upsert"-ing
	//  one SubVideoTask node.
	SubVideoTaskUpsertOne struct {
		create *SubVideoTaskCreate
	}

	// SubVideoTaskUpsert is the "OnConflict" setter.
	SubVideoTaskUpsert struct {
		*sql.UpdateSet
	}
)

// SetIndex sets the "index" field.
func (u *SubVideoTaskUpsert) SetIndex(v int) *SubVideoTaskUpsert {
	u.Set(subvideotask.FieldIndex, v)
	return u
}

// UpdateIndex sets the "index" field to the value that was provided on create.
func (u *SubVideoTaskUpsert) UpdateIndex() *SubVideoTaskUpsert {
	u.SetExcluded(subvideotask.FieldIndex)
	return u
}

// AddIndex adds v to the "index" field.
func (u *SubVideoTaskUpsert) AddIndex(v int) *SubVideoTaskUpsert {
	u.Add(subvideotask.FieldIndex, v)
	return u
}

// SetScriptStyle sets the "script_style" field.
func (u *SubVideoTaskUpsert) SetScriptStyle(v string) *SubVideoTaskUpsert {
	u.Set(subvideotask.FieldScriptStyle, v)
	return u
}

// UpdateScriptStyle sets the "script_style" field to the value that was provided on create.
func (u *SubVideoTaskUpsert) UpdateScriptStyle() *SubVideoTaskUpsert {
	u.SetExcluded(subvideotask.FieldScriptStyle)
	return u
}

// SetStatus sets the "status" field.
func (u *SubVideoTaskUpsert) SetStatus(v subvideotask.Status) *SubVideoTaskUpsert {
	u.Set(subvideotask.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *SubVideoTaskUpsert) UpdateStatus() *SubVideoTaskUpsert {
	u.SetExcluded(subvideotask.FieldStatus)
	return u
}

// SetProgress sets the "progress" field.
func (u *SubVideoTaskUpsert) SetProgress(v int) *SubVideoTaskUpsert {
	u.Set(subvideotask.FieldProgress, v)
	return u
}

// UpdateProgress sets the "progress" field to the value that was provided on create.
func (u *SubVideoTaskUpsert) UpdateProgress() *SubVideoTaskUpsert {
	u.SetExcluded(subvideotask.FieldProgress)
	return u
}

// AddProgress adds v to the "progress" field.
func (u *SubVideoTaskUpsert) AddProgress(v int) *SubVideoTaskUpsert {
	u.Add(subvideotask.FieldProgress, v)
	return u
}

// SetScriptID sets the "script_id" field.
func (u *SubVideoTaskUpsert) SetScriptID(v string) *SubVideoTaskUpsert {
	u.Set(subvideotask.FieldScriptID, v)
	return u
}

// UpdateScriptID sets the "script_id" field to the value that was provided on create.
func (u *SubVideoTaskUpsert) UpdateScriptID() *SubVideoTaskUpsert {
	u.SetExcluded(subvideotask.FieldScriptID)
	return u
}

// ClearScriptID clears the value of the "script_id" field.
func (u *SubVideoTaskUpsert) ClearScriptID() *SubVideoTaskUpsert {
	u.SetNull(subvideotask.FieldScriptID)
	return u
}

// SetScriptData sets the "script_data" field.
func (u *SubVideoTaskUpsert) SetScriptData(v map[string]interface{}) *SubVideoTaskUpsert {
	u.Set(subvideotask.FieldScriptData, v)
	return u
}

// UpdateScriptData sets the "script_data" field to the value that was provided on create.
func (u *SubVideoTaskUpsert) UpdateScriptData() *SubVideoTaskUpsert {
	u.SetExcluded(subvideotask.FieldScriptData)
	return u
}

// ClearScriptData clears the value of the "script_data" field.
func (u *SubVideoTaskUpsert) ClearScriptData() *SubVideoTaskUpsert {
	u.SetNull(subvideotask.FieldScriptData)
	return u
}

// SetCourseMediaID sets the "course_media_id" field.
func (u *SubVideoTaskUpsert) SetCourseMediaID(v string) *SubVideoTaskUpsert {
	u.Set(subvideotask.FieldCourseMediaID, v)
	return u
}

// UpdateCourseMediaID sets the "course_media_id" field to the value that was provided on create.
func (u *SubVideoTaskUpsert) UpdateCourseMediaID() *SubVideoTaskUpsert {
	u.SetExcluded(subvideotask.FieldCourseMediaID)
	return u
}

// ClearCourseMediaID clears the value of the "course_media_id" field.
func (u *SubVideoTaskUpsert) ClearCourseMediaID() *SubVideoTaskUpsert {
	u.SetNull(subvideotask.FieldCourseMediaID)
	return u
}

// SetVideoURL sets the "video_url" field.
func (u *SubVideoTaskUpsert) SetVideoURL(v string) *SubVideoTaskUpsert {
	u.Set(subvideotask.FieldVideoURL, v)
	return u
}

// UpdateVideoURL sets the "video_url" field to the value that was provided on create.
func (u *SubVideoTaskUpsert) UpdateVideoURL() *SubVideoTaskUpsert {
	u.SetExcluded(subvideotask.FieldVideoURL)
	return u
}

// ClearVideoURL clears the value of the "video_url" field.
func (u *SubVideoTaskUpsert) ClearVideoURL() *SubVideoTaskUpsert {
	u.SetNull(subvideotask.FieldVideoURL)
	return u
}

// SetThumbnailURL sets the "thumbnail_url" field.
func (u *SubVideoTaskUpsert) SetThumbnailURL(v string) *SubVideoTaskUpsert {
	u.Set(subvideotask.FieldThumbnailURL, v)
	return u
}

// UpdateThumbnailURL sets the "thumbnail_url" field to the value that was provided on create.
func (u *SubVideoTaskUpsert) UpdateThumbnailURL() *SubVideoTaskUpsert {
	u.SetExcluded(subvideotask.FieldThumbnailURL)
	return u
}

// ClearThumbnailURL clears the value of the "thumbnail_url" field.
func (u *SubVideoTaskUpsert) ClearThumbnailURL() *SubVideoTaskUpsert {
	u.SetNull(subvideotask.FieldThumbnailURL)
	return u
}

// SetDuration sets the "duration" field.
func (u *SubVideoTaskUpsert) SetDuration(v float64) *SubVideoTaskUpsert {
	u.Set(subvideotask.FieldDuration, v)
	return u
}

// UpdateDuration sets the "duration" field to the value that was provided on create.
func (u *SubVideoTaskUpsert) UpdateDuration() *SubVideoTaskUpsert {
	u.SetExcluded(subvideotask.FieldDuration)
	return u
}

// AddDuration adds v to the "duration" field.
func (u *SubVideoTaskUpsert) AddDuration(v float64) *SubVideoTaskUpsert {
	u.Add(subvideotask.FieldDuration, v)
	return u
}

// ClearDuration clears the value of the "duration" field.
func (u *SubVideoTaskUpsert) ClearDuration() *SubVideoTaskUpsert {
	u.SetNull(subvideotask.FieldDuration)
	return u
}

// SetErrorMessage sets the "error_message" field.
func (u *SubVideoTaskUpsert) SetErrorMessage(v string) *SubVideoTaskUpsert {
	u.Set(subvideotask.FieldErrorMessage, v)
	return u
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *SubVideoTaskUpsert) UpdateErrorMessage() *SubVideoTaskUpsert {
	u.SetExcluded(subvideotask.FieldErrorMessage)
	return u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *SubVideoTaskUpsert) ClearErrorMessage() *SubVideoTaskUpsert {
	u.SetNull(subvideotask.FieldErrorMessage)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SubVideoTaskUpsert) SetUpdatedAt(v time.Time) *SubVideoTaskUpsert {
	u.Set(subvideotask.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SubVideoTaskUpsert) UpdateUpdatedAt() *SubVideoTaskUpsert {
	u.SetExcluded(subvideotask.FieldUpdatedAt)
	return u
}

// SetCompletedAt sets the "completed_at" field.
func (u *SubVideoTaskUpsert) SetCompletedAt(v time.Time) *SubVideoTaskUpsert {
	u.Set(subvideotask.FieldCompletedAt, v)
	return u
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *SubVideoTaskUpsert) UpdateCompletedAt() *SubVideoTaskUpsert {
	u.SetExcluded(subvideotask.FieldCompletedAt)
	return u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *SubVideoTaskUpsert) ClearCompletedAt() *SubVideoTaskUpsert {
	u.SetNull(subvideotask.FieldCompletedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.SubVideoTask.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(subvideotask.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SubVideoTaskUpsertOne) UpdateNewValues() *SubVideoTaskUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(subvideotask.FieldID)
		}
		if _, exists := u.create.mutation.TaskID(); exists {
			s.SetIgnore(subvideotask.FieldTaskID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(subvideotask.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SubVideoTask.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *SubVideoTaskUpsertOne) Ignore() *SubVideoTaskUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SubVideoTaskUpsertOne) DoNothing() *SubVideoTaskUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SubVideoTaskCreate.OnConflict
// documentation for more info.
func (u *SubVideoTaskUpsertOne) Update(set func(*SubVideoTaskUpsert)) *SubVideoTaskUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SubVideoTaskUpsert{UpdateSet: update})
	}))
	return u
}

// SetIndex sets the "index" field.
func (u *SubVideoTaskUpsertOne) SetIndex(v int) *SubVideoTaskUpsertOne {
	return u.Update(func(s *SubVideoTaskUpsert) {
		s.SetIndex(v)
	})
}

// AddIndex adds v to the "index" field.
func (u *SubVideoTaskUpsertOne) AddIndex(v int) *SubVideoTaskUpsertOne {
	return u.Update(func(s *SubVideoTaskUpsert) {
		s.AddIndex(v)
	})
}

// UpdateIndex sets the "index" field to the value that was provided on create.
func (u *SubVideoTaskUpsertOne) UpdateIndex() *SubVideoTaskUpsertOne {
	return u.Update(func(s *SubVideoTaskUpsert) {
		s.UpdateIndex()
	})
}

// SetScriptStyle sets the "script_style" field.
func (u *SubVideoTaskUpsertOne) SetScriptStyle(v string) *SubVideoTaskUpsertOne {
	return u.Update(func(s *SubVideoTaskUpsert) {
		s.SetScriptStyle(v)
	})
}

// UpdateScriptStyle sets the "script_style" field to the value that was provided on create.
func (u *SubVideoTaskUpsertOne) UpdateScriptStyle() *SubVideoTaskUpsertOne {
	return u.Update(func(s *SubVideoTaskUpsert) {
		s.UpdateScriptStyle()
	})
}

// SetStatus sets the "status" field.
func (u *SubVideoTaskUpsertOne) SetStatus(v subvideotask.Status) *SubVideoTaskUpsertOne {
	return u.Update(func(s *SubVideoTaskUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *SubVideoTaskUpsertOne) UpdateStatus() *SubVideoTaskUpsertOne {
	return u.Update(func(s *SubVideoTaskUpsert) {
		s.UpdateStatus()
	})
}

// SetProgress sets the "progress" field.
func (u *SubVideoTaskUpsertOne) SetProgress(v int) *SubVideoTaskUpsertOne {
	return u.Update(func(s *SubVideoTaskUpsert) {
		s.SetProgress(v)
	})
}

// AddProgress adds v to the "progress" field.
func (u *SubVideoTaskUpsertOne) AddProgress(v int) *SubVideoTaskUpsertOne {
	return u.Update(func(s *SubVideoTaskUpsert) {
		s.AddProgress(v)
	})
}

// UpdateProgress sets the "progress" field to the value that was provided on create.
func (u *SubVideoTaskUpsertOne) UpdateProgress() *SubVideoTaskUpsertOne {
	return u.Update(func(s *SubVideoTaskUpsert) {
		s.UpdateProgress()
	})
}

// SetScriptID sets the "script_id" field.
func (u *SubVideoTaskUpsertOne) SetScriptID(v string) *SubVideoTaskUpsertOne {
	return u.Update(func(s *SubVideoTaskUpsert) {
		s.SetScriptID(v)
	})
}

// UpdateScriptID sets the "script_id" field to the value that was provided on create.
func (u *SubVideoTaskUpsertOne) UpdateScriptID() *SubVideoTaskUpsertOne {
	return u.Update(func(s *SubVideoTaskUpsert) {
		s.UpdateScriptID()
	})
}

// ClearScriptID clears the value of the "script_id" field.
func (u *SubVideoTaskUpsertOne) ClearScriptID() *SubVideoTaskUpsertOne {
	return u.Update(func(s *SubVideoTaskUpsert) {
		s.ClearScriptID()
	})
}

// SetScriptData sets the "script_data" field.
func (u *SubVideoTaskUpsertOne) SetScriptData(v map[string]interface{}) *SubVideoTaskUpsertOne {
	return u.Update(func(s *SubVideoTaskUpsert) {
		s.SetScriptData(v)
	})
}

// UpdateScriptData sets the "script_data" field to the value that was provided on create.
func (u *SubVideoTaskUpsertOne) UpdateScriptData() *SubVideoTaskUpsertOne {
	return u.Update(func(s *SubVideoTaskUpsert) {
		s.UpdateScriptData()
	})
}

// ClearScriptData clears the value of the "script_data" field.
func (u *SubVideoTaskUpsertOne) ClearScriptData() *SubVideoTaskUpsertOne {
	return u.Update(func(s *SubVideoTaskUpsert) {
		s.ClearScriptData()
	})
}

// SetCourseMediaID sets the "course_media_id" field.
func (u *SubVideoTaskUpsertOne) SetCourseMediaID(v string) *SubVideoTaskUpsertOne {
	return u.Update(func(s *SubVideoTaskUpsert) {
		s.SetCourseMediaID(v)
	})
}

// UpdateCourseMediaID sets the "course_media_id" field to the value that was provided on create.
func (u *SubVideoTaskUpsertOne) UpdateCourseMediaID() *SubVideoTaskUpsertOne {
	return u.Update(func(s *SubVideoTaskUpsert) {
		s.UpdateCourseMediaID()
	})
}

// ClearCourseMediaID clears the value of the "course_media_id" field.
func (u *SubVideoTaskUpsertOne) ClearCourseMediaID() *SubVideoTaskUpsertOne {
	return u.Update(func(s *SubVideoTaskUpsert) {
		s.ClearCourseMediaID()
	})
}

// SetVideoURL sets the "video_url" field.
func (u *SubVideoTaskUpsertOne) SetVideoURL(v string) *SubVideoTaskUpsertOne {
	return u.Update(func(s *SubVideoTaskUpsert) {
		s.SetVideoURL(v)
	})
}

// UpdateVideoURL sets the "video_url" field to the value that was provided on create.
func (u *SubVideoTaskUpsertOne) UpdateVideoURL() *SubVideoTaskUpsertOne {
	return u.Update(func(s *SubVideoTaskUpsert) {
		s.UpdateVideoURL()
	})
}

// ClearVideoURL clears the value of the "video_url" field.
func (u *SubVideoTaskUpsertOne) ClearVideoURL() *SubVideoTaskUpsertOne {
	return u.Update(func(s *SubVideoTaskUpsert) {
		s.ClearVideoURL()
	})
}

// SetThumbnailURL sets the "thumbnail_url" field.
func (u *SubVideoTaskUpsertOne) SetThumbnailURL(v string) *SubVideoTaskUpsertOne {
	return u.Update(func(s *SubVideoTaskUpsert) {
		s.SetThumbnailURL(v)
	})
}

// UpdateThumbnailURL sets the "thumbnail_url" field to the value that was provided on create.
func (u *SubVideoTaskUpsertOne) UpdateThumbnailURL() *SubVideoTaskUpsertOne {
	return u.Update(func(s *SubVideoTaskUpsert) {
		s.UpdateThumbnailURL()
	})
}

// ClearThumbnailURL clears the value of the "thumbnail_url" field.
func (u *SubVideoTaskUpsertOne) ClearThumbnailURL() *SubVideoTaskUpsertOne {
	return u.Update(func(s *SubVideoTaskUpsert) {
		s.ClearThumbnailURL()
	})
}

// SetDuration sets the "duration" field.
func (u *SubVideoTaskUpsertOne) SetDuration(v float64) *SubVideoTaskUpsertOne {
	return u.Update(func(s *SubVideoTaskUpsert) {
		s.SetDuration(v)
	})
}

// AddDuration adds v to the "duration" field.
func (u *SubVideoTaskUpsertOne) AddDuration(v float64) *SubVideoTaskUpsertOne {
	return u.Update(func(s *SubVideoTaskUpsert) {
		s.AddDuration(v)
	})
}

// UpdateDuration sets the "duration" field to the value that was provided on create.
func (u *SubVideoTaskUpsertOne) UpdateDuration() *SubVideoTaskUpsertOne {
	return u.Update(func(s *SubVideoTaskUpsert) {
		s.UpdateDuration()
	})
}

// ClearDuration clears the value of the "duration" field.
func (u *SubVideoTaskUpsertOne) ClearDuration() *SubVideoTaskUpsertOne {
	return u.Update(func(s *SubVideoTaskUpsert) {
		s.ClearDuration()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *SubVideoTaskUpsertOne) SetErrorMessage(v string) *SubVideoTaskUpsertOne {
	return u.Update(func(s *SubVideoTaskUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *SubVideoTaskUpsertOne) UpdateErrorMessage() *SubVideoTaskUpsertOne {
	return u.Update(func(s *SubVideoTaskUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *SubVideoTaskUpsertOne) ClearErrorMessage() *SubVideoTaskUpsertOne {
	return u.Update(func(s *SubVideoTaskUpsert) {
		s.ClearErrorMessage()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SubVideoTaskUpsertOne) SetUpdatedAt(v time.Time) *SubVideoTaskUpsertOne {
	return u.Update(func(s *SubVideoTaskUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SubVideoTaskUpsertOne) UpdateUpdatedAt() *SubVideoTaskUpsertOne {
	return u.Update(func(s *SubVideoTaskUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *SubVideoTaskUpsertOne) SetCompletedAt(v time.Time) *SubVideoTaskUpsertOne {
	return u.Update(func(s *SubVideoTaskUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *SubVideoTaskUpsertOne) UpdateCompletedAt() *SubVideoTaskUpsertOne {
	return u.Update(func(s *SubVideoTaskUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *SubVideoTaskUpsertOne) ClearCompletedAt() *SubVideoTaskUpsertOne {
	return u.Update(func(s *SubVideoTaskUpsert) {
		s.ClearCompletedAt()
	})
}

// Exec executes the query.
func (u *SubVideoTaskUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SubVideoTaskCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SubVideoTaskUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *SubVideoTaskUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: SubVideoTaskUpsertOne.ID is not supported by MySQL driver. Use SubVideoTaskUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *SubVideoTaskUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// SubVideoTaskCreateBulk is the builder for creating many SubVideoTask entities in bulk.
type SubVideoTaskCreateBulk struct {
	config
	err      error
	builders []*SubVideoTaskCreate
	conflict []sql.ConflictOption
}

// Save creates the SubVideoTask entities in the database.
func (_c *SubVideoTaskCreateBulk) Save(ctx context.Context) ([]*SubVideoTask, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SubVideoTask, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SubVideoTaskMutation)
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
func (_c *SubVideoTaskCreateBulk) SaveX(ctx context.Context) []*SubVideoTask {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SubVideoTaskCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SubVideoTaskCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SubVideoTask.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SubVideoTaskUpsert) {
//			SetTaskID(v+v).
//		}).
//		Exec(ctx)
func (_c *SubVideoTaskCreateBulk) OnConflict(opts ...sql.ConflictOption) *SubVideoTaskUpsertBulk {
	_c.conflict = opts
	return &SubVideoTaskUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SubVideoTask.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SubVideoTaskCreateBulk) OnConflictColumns(columns ...string) *SubVideoTaskUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SubVideoTaskUpsertBulk{
		create: _c,
	}
}

// SubVideoTaskUpsertBulk is the builder for "upsert"-ing
// a bulk of SubVideoTask nodes.
type SubVideoTaskUpsertBulk struct {
	create *SubVideoTaskCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.SubVideoTask.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(subvideotask.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SubVideoTaskUpsertBulk) UpdateNewValues() *SubVideoTaskUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(subvideotask.FieldID)
			}
			if _, exists := b.mutation.TaskID(); exists {
				s.SetIgnore(subvideotask.FieldTaskID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(subvideotask.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SubVideoTask.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *SubVideoTaskUpsertBulk) Ignore() *SubVideoTaskUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SubVideoTaskUpsertBulk) DoNothing() *SubVideoTaskUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SubVideoTaskCreateBulk.OnConflict
// documentation for more info.
func (u *SubVideoTaskUpsertBulk) Update(set func(*SubVideoTaskUpsert)) *SubVideoTaskUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SubVideoTaskUpsert{UpdateSet: update})
	}))
	return u
}

// SetIndex sets the "index" field.
func (u *SubVideoTaskUpsertBulk) SetIndex(v int) *SubVideoTaskUpsertBulk {
	return u.Update(func(s *SubVideoTaskUpsert) {
		s.SetIndex(v)
	})
}

// AddIndex adds v to the "index" field.
func (u *SubVideoTaskUpsertBulk) AddIndex(v int) *SubVideoTaskUpsertBulk {
	return u.Update(func(s *SubVideoTaskUpsert) {
		s.AddIndex(v)
	})
}

// UpdateIndex sets the "index" field to the value that was provided on create.
func (u *SubVideoTaskUpsertBulk) UpdateIndex() *SubVideoTaskUpsertBulk {
	return u.Update(func(s *SubVideoTaskUpsert) {
		s.UpdateIndex()
	})
}

// SetScriptStyle sets the "script_style" field.
func (u *SubVideoTaskUpsertBulk) SetScriptStyle(v string) *SubVideoTaskUpsertBulk {
	return u.Update(func(s *SubVideoTaskUpsert) {
		s.SetScriptStyle(v)
	})
}

// UpdateScriptStyle sets the "script_style" field to the value that was provided on create.
func (u *SubVideoTaskUpsertBulk) UpdateScriptStyle() *SubVideoTaskUpsertBulk {
	return u.Update(func(s *SubVideoTaskUpsert) {
		s.UpdateScriptStyle()
	})
}

// SetStatus sets the "status" field.
func (u *SubVideoTaskUpsertBulk) SetStatus(v subvideotask.Status) *SubVideoTaskUpsertBulk {
	return u.Update(func(s *SubVideoTaskUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *SubVideoTaskUpsertBulk) UpdateStatus() *SubVideoTaskUpsertBulk {
	return u.Update(func(s *SubVideoTaskUpsert) {
		s.UpdateStatus()
	})
}

// SetProgress sets the "progress" field.
func (u *SubVideoTaskUpsertBulk) SetProgress(v int) *SubVideoTaskUpsertBulk {
	return u.Update(func(s *SubVideoTaskUpsert) {
		s.SetProgress(v)
	})
}

// AddProgress adds v to the "progress" field.
func (u *SubVideoTaskUpsertBulk) AddProgress(v int) *SubVideoTaskUpsertBulk {
	return u.Update(func(s *SubVideoTaskUpsert) {
		s.AddProgress(v)
	})
}

// UpdateProgress sets the "progress" field to the value that was provided on create.
func (u *SubVideoTaskUpsertBulk) UpdateProgress() *SubVideoTaskUpsertBulk {
	return u.Update(func(s *SubVideoTaskUpsert) {
		s.UpdateProgress()
	})
}

// SetScriptID sets the "script_id" field.
func (u *SubVideoTaskUpsertBulk) SetScriptID(v string) *SubVideoTaskUpsertBulk {
	return u.Update(func(s *SubVideoTaskUpsert) {
		s.SetScriptID(v)
	})
}

// UpdateScriptID sets the "script_id" field to the value that was provided on create.
func (u *SubVideoTaskUpsertBulk) UpdateScriptID() *SubVideoTaskUpsertBulk {
	return u.Update(func(s *SubVideoTaskUpsert) {
		s.UpdateScriptID()
	})
}

// ClearScriptID clears the value of the "script_id" field.
func (u *SubVideoTaskUpsertBulk) ClearScriptID() *SubVideoTaskUpsertBulk {
	return u.Update(func(s *SubVideoTaskUpsert) {
		s.ClearScriptID()
	})
}

// SetScriptData sets the "script_data" field.
func (u *SubVideoTaskUpsertBulk) SetScriptData(v map[string]interface{}) *SubVideoTaskUpsertBulk {
	return u.Update(func(s *SubVideoTaskUpsert) {
		s.SetScriptData(v)
	})
}

// UpdateScriptData sets the "script_data" field to the value that was provided on create.
func (u *SubVideoTaskUpsertBulk) UpdateScriptData() *SubVideoTaskUpsertBulk {
	return u.Update(func(s *SubVideoTaskUpsert) {
		s.UpdateScriptData()
	})
}

// ClearScriptData clears the value of the "script_data" field.
func (u *SubVideoTaskUpsertBulk) ClearScriptData() *SubVideoTaskUpsertBulk {
	return u.Update(func(s *SubVideoTaskUpsert) {
		s.ClearScriptData()
	})
}

// SetCourseMediaID sets the "course_media_id" field.
func (u *SubVideoTaskUpsertBulk) SetCourseMediaID(v string) *SubVideoTaskUpsertBulk {
	return u.Update(func(s *SubVideoTaskUpsert) {
		s.SetCourseMediaID(v)
	})
}

// UpdateCourseMediaID sets the "course_media_id" field to the value that was provided on create.
func (u *SubVideoTaskUpsertBulk) UpdateCourseMediaID() *SubVideoTaskUpsertBulk {
	return u.Update(func(s *SubVideoTaskUpsert) {
		s.UpdateCourseMediaID()
	})
}

// ClearCourseMediaID clears the value of the "course_media_id" field.
func (u *SubVideoTaskUpsertBulk) ClearCourseMediaID() *SubVideoTaskUpsertBulk {
	return u.Update(func(s *SubVideoTaskUpsert) {
		s.ClearCourseMediaID()
	})
}

// SetVideoURL sets the "video_url" field.
func (u *SubVideoTaskUpsertBulk) SetVideoURL(v string) *SubVideoTaskUpsertBulk {
	return u.Update(func(s *SubVideoTaskUpsert) {
		s.SetVideoURL(v)
	})
}

// UpdateVideoURL sets the "video_url" field to the value that was provided on create.
func (u *SubVideoTaskUpsertBulk) UpdateVideoURL() *SubVideoTaskUpsertBulk {
	return u.Update(func(s *SubVideoTaskUpsert) {
		s.UpdateVideoURL()
	})
}

// ClearVideoURL clears the value of the "video_url" field.
func (u *SubVideoTaskUpsertBulk) ClearVideoURL() *SubVideoTaskUpsertBulk {
	return u.Update(func(s *SubVideoTaskUpsert) {
		s.ClearVideoURL()
	})
}

// SetThumbnailURL sets the "thumbnail_url" field.
func (u *SubVideoTaskUpsertBulk) SetThumbnailURL(v string) *SubVideoTaskUpsertBulk {
	return u.Update(func(s *SubVideoTaskUpsert) {
		s.SetThumbnailURL(v)
	})
}

// UpdateThumbnailURL sets the "thumbnail_url" field to the value that was provided on create.
func (u *SubVideoTaskUpsertBulk) UpdateThumbnailURL() *SubVideoTaskUpsertBulk {
	return u.Update(func(s *SubVideoTaskUpsert) {
		s.UpdateThumbnailURL()
	})
}

// ClearThumbnailURL clears the value of the "thumbnail_url" field.
func (u *SubVideoTaskUpsertBulk) ClearThumbnailURL() *SubVideoTaskUpsertBulk {
	return u.Update(func(s *SubVideoTaskUpsert) {
		s.ClearThumbnailURL()
	})
}

// SetDuration sets the "duration" field.
func (u *SubVideoTaskUpsertBulk) SetDuration(v float64) *SubVideoTaskUpsertBulk {
	return u.Update(func(s *SubVideoTaskUpsert) {
		s.SetDuration(v)
	})
}

// AddDuration adds v to the "duration" field.
func (u *SubVideoTaskUpsertBulk) AddDuration(v float64) *SubVideoTaskUpsertBulk {
	return u.Update(func(s *SubVideoTaskUpsert) {
		s.AddDuration(v)
	})
}

// UpdateDuration sets the "duration" field to the value that was provided on create.
func (u *SubVideoTaskUpsertBulk) UpdateDuration() *SubVideoTaskUpsertBulk {
	return u.Update(func(s *SubVideoTaskUpsert) {
		s.UpdateDuration()
	})
}

// ClearDuration clears the value of the "duration" field.
func (u *SubVideoTaskUpsertBulk) ClearDuration() *SubVideoTaskUpsertBulk {
	return u.Update(func(s *SubVideoTaskUpsert) {
		s.ClearDuration()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *SubVideoTaskUpsertBulk) SetErrorMessage(v string) *SubVideoTaskUpsertBulk {
	return u.Update(func(s *SubVideoTaskUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *SubVideoTaskUpsertBulk) UpdateErrorMessage() *SubVideoTaskUpsertBulk {
	return u.Update(func(s *SubVideoTaskUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *SubVideoTaskUpsertBulk) ClearErrorMessage() *SubVideoTaskUpsertBulk {
	return u.Update(func(s *SubVideoTaskUpsert) {
		s.ClearErrorMessage()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SubVideoTaskUpsertBulk) SetUpdatedAt(v time.Time) *SubVideoTaskUpsertBulk {
	return u.Update(func(s *SubVideoTaskUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SubVideoTaskUpsertBulk) UpdateUpdatedAt() *SubVideoTaskUpsertBulk {
	return u.Update(func(s *SubVideoTaskUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *SubVideoTaskUpsertBulk) SetCompletedAt(v time.Time) *SubVideoTaskUpsertBulk {
	return u.Update(func(s *SubVideoTaskUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *SubVideoTaskUpsertBulk) UpdateCompletedAt() *SubVideoTaskUpsertBulk {
	return u.Update(func(s *SubVideoTaskUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *SubVideoTaskUpsertBulk) ClearCompletedAt() *SubVideoTaskUpsertBulk {
	return u.Update(func(s *SubVideoTaskUpsert) {
		s.ClearCompletedAt()
	})
}

// Exec executes the query.
func (u *SubVideoTaskUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the SubVideoTaskCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SubVideoTaskCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SubVideoTaskUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
