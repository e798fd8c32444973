// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/textloom/textloom/ent/predicate"
	"github.com/textloom/textloom/ent/subvideotask"
)

// SubVideoTaskUpdate is the builder for updating SubVideoTask entities.
type SubVideoTaskUpdate struct {
	config
	hooks    []Hook
	mutation *SubVideoTaskMutation
}

// Where appends a list predicates to the SubVideoTaskUpdate builder.
func (_u *SubVideoTaskUpdate) Where(ps ...predicate.SubVideoTask) *SubVideoTaskUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetIndex sets the "index" field.
func (_u *SubVideoTaskUpdate) SetIndex(v int) *SubVideoTaskUpdate {
	_u.mutation.ResetIndex()
	_u.mutation.SetIndex(v)
	return _u
}

// SetNillableIndex sets the "index" field if the given value is not nil.
func (_u *SubVideoTaskUpdate) SetNillableIndex(v *int) *SubVideoTaskUpdate {
	if v != nil {
		_u.SetIndex(*v)
	}
	return _u
}

// AddIndex adds value to the "index" field.
func (_u *SubVideoTaskUpdate) AddIndex(v int) *SubVideoTaskUpdate {
	_u.mutation.AddIndex(v)
	return _u
}

// SetScriptStyle sets the "script_style" field.
func (_u *SubVideoTaskUpdate) SetScriptStyle(v string) *SubVideoTaskUpdate {
	_u.mutation.SetScriptStyle(v)
	return _u
}

// SetNillableScriptStyle sets the "script_style" field if the given value is not nil.
func (_u *SubVideoTaskUpdate) SetNillableScriptStyle(v *string) *SubVideoTaskUpdate {
	if v != nil {
		_u.SetScriptStyle(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *SubVideoTaskUpdate) SetStatus(v subvideotask.Status) *SubVideoTaskUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SubVideoTaskUpdate) SetNillableStatus(v *subvideotask.Status) *SubVideoTaskUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetProgress sets the "progress" field.
func (_u *SubVideoTaskUpdate) SetProgress(v int) *SubVideoTaskUpdate {
	_u.mutation.ResetProgress()
	_u.mutation.SetProgress(v)
	return _u
}

// SetNillableProgress sets the "progress" field if the given value is not nil.
func (_u *SubVideoTaskUpdate) SetNillableProgress(v *int) *SubVideoTaskUpdate {
	if v != nil {
		_u.SetProgress(*v)
	}
	return _u
}

// AddProgress adds value to the "progress" field.
func (_u *SubVideoTaskUpdate) AddProgress(v int) *SubVideoTaskUpdate {
	_u.mutation.AddProgress(v)
	return _u
}

// SetScriptID sets the "script_id" field.
func (_u *SubVideoTaskUpdate) SetScriptID(v string) *SubVideoTaskUpdate {
	_u.mutation.SetScriptID(v)
	return _u
}

// SetNillableScriptID sets the "script_id" field if the given value is not nil.
func (_u *SubVideoTaskUpdate) SetNillableScriptID(v *string) *SubVideoTaskUpdate {
	if v != nil {
		_u.SetScriptID(*v)
	}
	return _u
}

// ClearScriptID clears the value of the "script_id" field.
func (_u *SubVideoTaskUpdate) ClearScriptID() *SubVideoTaskUpdate {
	_u.mutation.ClearScriptID()
	return _u
}

// SetScriptData sets the "script_data" field.
func (_u *SubVideoTaskUpdate) SetScriptData(v map[string]interface{}) *SubVideoTaskUpdate {
	_u.mutation.SetScriptData(v)
	return _u
}

// ClearScriptData clears the value of the "script_data" field.
func (_u *SubVideoTaskUpdate) ClearScriptData() *SubVideoTaskUpdate {
	_u.mutation.ClearScriptData()
	return _u
}

// SetCourseMediaID sets the "course_media_id" field.
func (_u *SubVideoTaskUpdate) SetCourseMediaID(v string) *SubVideoTaskUpdate {
	_u.mutation.SetCourseMediaID(v)
	return _u
}

// SetNillableCourseMediaID sets the "course_media_id" field if the given value is not nil.
func (_u *SubVideoTaskUpdate) SetNillableCourseMediaID(v *string) *SubVideoTaskUpdate {
	if v != nil {
		_u.SetCourseMediaID(*v)
	}
	return _u
}

// ClearCourseMediaID clears the value of the "course_media_id" field.
func (_u *SubVideoTaskUpdate) ClearCourseMediaID() *SubVideoTaskUpdate {
	_u.mutation.ClearCourseMediaID()
	return _u
}

// SetVideoURL sets the "video_url" field.
func (_u *SubVideoTaskUpdate) SetVideoURL(v string) *SubVideoTaskUpdate {
	_u.mutation.SetVideoURL(v)
	return _u
}

// SetNillableVideoURL sets the "video_url" field if the given value is not nil.
func (_u *SubVideoTaskUpdate) SetNillableVideoURL(v *string) *SubVideoTaskUpdate {
	if v != nil {
		_u.SetVideoURL(*v)
	}
	return _u
}

// ClearVideoURL clears the value of the "video_url" field.
func (_u *SubVideoTaskUpdate) ClearVideoURL() *SubVideoTaskUpdate {
	_u.mutation.ClearVideoURL()
	return _u
}

// SetThumbnailURL sets the "thumbnail_url" field.
func (_u *SubVideoTaskUpdate) SetThumbnailURL(v string) *SubVideoTaskUpdate {
	_u.mutation.SetThumbnailURL(v)
	return _u
}

// SetNillableThumbnailURL sets the "thumbnail_url" field if the given value is not nil.
func (_u *SubVideoTaskUpdate) SetNillableThumbnailURL(v *string) *SubVideoTaskUpdate {
	if v != nil {
		_u.SetThumbnailURL(*v)
	}
	return _u
}

// ClearThumbnailURL clears the value of the "thumbnail_url" field.
func (_u *SubVideoTaskUpdate) ClearThumbnailURL() *SubVideoTaskUpdate {
	_u.mutation.ClearThumbnailURL()
	return _u
}

// SetDuration sets the "duration" field.
func (_u *SubVideoTaskUpdate) SetDuration(v float64) *SubVideoTaskUpdate {
	_u.mutation.ResetDuration()
	_u.mutation.SetDuration(v)
	return _u
}

// SetNillableDuration sets the "duration" field if the given value is not nil.
func (_u *SubVideoTaskUpdate) SetNillableDuration(v *float64) *SubVideoTaskUpdate {
	if v != nil {
		_u.SetDuration(*v)
	}
	return _u
}

// AddDuration adds value to the "duration" field.
func (_u *SubVideoTaskUpdate) AddDuration(v float64) *SubVideoTaskUpdate {
	_u.mutation.AddDuration(v)
	return _u
}

// ClearDuration clears the value of the "duration" field.
func (_u *SubVideoTaskUpdate) ClearDuration() *SubVideoTaskUpdate {
	_u.mutation.ClearDuration()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *SubVideoTaskUpdate) SetErrorMessage(v string) *SubVideoTaskUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *SubVideoTaskUpdate) SetNillableErrorMessage(v *string) *SubVideoTaskUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *SubVideoTaskUpdate) ClearErrorMessage() *SubVideoTaskUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SubVideoTaskUpdate) SetUpdatedAt(v time.Time) *SubVideoTaskUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *SubVideoTaskUpdate) SetCompletedAt(v time.Time) *SubVideoTaskUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *SubVideoTaskUpdate) SetNillableCompletedAt(v *time.Time) *SubVideoTaskUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *SubVideoTaskUpdate) ClearCompletedAt() *SubVideoTaskUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the SubVideoTaskMutation object of the builder.
func (_u *SubVideoTaskUpdate) Mutation() *SubVideoTaskMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SubVideoTaskUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SubVideoTaskUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SubVideoTaskUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SubVideoTaskUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SubVideoTaskUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := subvideotask.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SubVideoTaskUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := subvideotask.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "SubVideoTask.status": %w`, err)}
		}
	}
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SubVideoTask.task"`)
	}
	return nil
}

func (_u *SubVideoTaskUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(subvideotask.Table, subvideotask.Columns, sqlgraph.NewFieldSpec(subvideotask.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Index(); ok {
		_spec.SetField(subvideotask.FieldIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIndex(); ok {
		_spec.AddField(subvideotask.FieldIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ScriptStyle(); ok {
		_spec.SetField(subvideotask.FieldScriptStyle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(subvideotask.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Progress(); ok {
		_spec.SetField(subvideotask.FieldProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProgress(); ok {
		_spec.AddField(subvideotask.FieldProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ScriptID(); ok {
		_spec.SetField(subvideotask.FieldScriptID, field.TypeString, value)
	}
	if _u.mutation.ScriptIDCleared() {
		_spec.ClearField(subvideotask.FieldScriptID, field.TypeString)
	}
	if value, ok := _u.mutation.ScriptData(); ok {
		_spec.SetField(subvideotask.FieldScriptData, field.TypeJSON, value)
	}
	if _u.mutation.ScriptDataCleared() {
		_spec.ClearField(subvideotask.FieldScriptData, field.TypeJSON)
	}
	if value, ok := _u.mutation.CourseMediaID(); ok {
		_spec.SetField(subvideotask.FieldCourseMediaID, field.TypeString, value)
	}
	if _u.mutation.CourseMediaIDCleared() {
		_spec.ClearField(subvideotask.FieldCourseMediaID, field.TypeString)
	}
	if value, ok := _u.mutation.VideoURL(); ok {
		_spec.SetField(subvideotask.FieldVideoURL, field.TypeString, value)
	}
	if _u.mutation.VideoURLCleared() {
		_spec.ClearField(subvideotask.FieldVideoURL, field.TypeString)
	}
	if value, ok := _u.mutation.ThumbnailURL(); ok {
		_spec.SetField(subvideotask.FieldThumbnailURL, field.TypeString, value)
	}
	if _u.mutation.ThumbnailURLCleared() {
		_spec.ClearField(subvideotask.FieldThumbnailURL, field.TypeString)
	}
	if value, ok := _u.mutation.Duration(); ok {
		_spec.SetField(subvideotask.FieldDuration, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDuration(); ok {
		_spec.AddField(subvideotask.FieldDuration, field.TypeFloat64, value)
	}
	if _u.mutation.DurationCleared() {
		_spec.ClearField(subvideotask.FieldDuration, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(subvideotask.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(subvideotask.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(subvideotask.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(subvideotask.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(subvideotask.FieldCompletedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{subvideotask.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SubVideoTaskUpdateOne is the builder for updating a single SubVideoTask entity.
type SubVideoTaskUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SubVideoTaskMutation
}

// SetIndex sets the "index" field.
func (_u *SubVideoTaskUpdateOne) SetIndex(v int) *SubVideoTaskUpdateOne {
	_u.mutation.ResetIndex()
	_u.mutation.SetIndex(v)
	return _u
}

// SetNillableIndex sets the "index" field if the given value is not nil.
func (_u *SubVideoTaskUpdateOne) SetNillableIndex(v *int) *SubVideoTaskUpdateOne {
	if v != nil {
		_u.SetIndex(*v)
	}
	return _u
}

// AddIndex adds value to the "index" field.
func (_u *SubVideoTaskUpdateOne) AddIndex(v int) *SubVideoTaskUpdateOne {
	_u.mutation.AddIndex(v)
	return _u
}

// SetScriptStyle sets the "script_style" field.
func (_u *SubVideoTaskUpdateOne) SetScriptStyle(v string) *SubVideoTaskUpdateOne {
	_u.mutation.SetScriptStyle(v)
	return _u
}

// SetNillableScriptStyle sets the "script_style" field if the given value is not nil.
func (_u *SubVideoTaskUpdateOne) SetNillableScriptStyle(v *string) *SubVideoTaskUpdateOne {
	if v != nil {
		_u.SetScriptStyle(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *SubVideoTaskUpdateOne) SetStatus(v subvideotask.Status) *SubVideoTaskUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SubVideoTaskUpdateOne) SetNillableStatus(v *subvideotask.Status) *SubVideoTaskUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetProgress sets the "progress" field.
func (_u *SubVideoTaskUpdateOne) SetProgress(v int) *SubVideoTaskUpdateOne {
	_u.mutation.ResetProgress()
	_u.mutation.SetProgress(v)
	return _u
}

// SetNillableProgress sets the "progress" field if the given value is not nil.
func (_u *SubVideoTaskUpdateOne) SetNillableProgress(v *int) *SubVideoTaskUpdateOne {
	if v != nil {
		_u.SetProgress(*v)
	}
	return _u
}

// AddProgress adds value to the "progress" field.
func (_u *SubVideoTaskUpdateOne) AddProgress(v int) *SubVideoTaskUpdateOne {
	_u.mutation.AddProgress(v)
	return _u
}

// SetScriptID sets the "script_id" field.
func (_u *SubVideoTaskUpdateOne) SetScriptID(v string) *SubVideoTaskUpdateOne {
	_u.mutation.SetScriptID(v)
	return _u
}

// SetNillableScriptID sets the "script_id" field if the given value is not nil.
func (_u *SubVideoTaskUpdateOne) SetNillableScriptID(v *string) *SubVideoTaskUpdateOne {
	if v != nil {
		_u.SetScriptID(*v)
	}
	return _u
}

// ClearScriptID clears the value of the "script_id" field.
func (_u *SubVideoTaskUpdateOne) ClearScriptID() *SubVideoTaskUpdateOne {
	_u.mutation.ClearScriptID()
	return _u
}

// SetScriptData sets the "script_data" field.
func (_u *SubVideoTaskUpdateOne) SetScriptData(v map[string]interface{}) *SubVideoTaskUpdateOne {
	_u.mutation.SetScriptData(v)
	return _u
}

// ClearScriptData clears the value of the "script_data" field.
func (_u *SubVideoTaskUpdateOne) ClearScriptData() *SubVideoTaskUpdateOne {
	_u.mutation.ClearScriptData()
	return _u
}

// SetCourseMediaID sets the "course_media_id" field.
func (_u *SubVideoTaskUpdateOne) SetCourseMediaID(v string) *SubVideoTaskUpdateOne {
	_u.mutation.SetCourseMediaID(v)
	return _u
}

// SetNillableCourseMediaID sets the "course_media_id" field if the given value is not nil.
func (_u *SubVideoTaskUpdateOne) SetNillableCourseMediaID(v *string) *SubVideoTaskUpdateOne {
	if v != nil {
		_u.SetCourseMediaID(*v)
	}
	return _u
}

// ClearCourseMediaID clears the value of the "course_media_id" field.
func (_u *SubVideoTaskUpdateOne) ClearCourseMediaID() *SubVideoTaskUpdateOne {
	_u.mutation.ClearCourseMediaID()
	return _u
}

// SetVideoURL sets the "video_url" field.
func (_u *SubVideoTaskUpdateOne) SetVideoURL(v string) *SubVideoTaskUpdateOne {
	_u.mutation.SetVideoURL(v)
	return _u
}

// SetNillableVideoURL sets the "video_url" field if the given value is not nil.
func (_u *SubVideoTaskUpdateOne) SetNillableVideoURL(v *string) *SubVideoTaskUpdateOne {
	if v != nil {
		_u.SetVideoURL(*v)
	}
	return _u
}

// ClearVideoURL clears the value of the "video_url" field.
func (_u *SubVideoTaskUpdateOne) ClearVideoURL() *SubVideoTaskUpdateOne {
	_u.mutation.ClearVideoURL()
	return _u
}

// SetThumbnailURL sets the "thumbnail_url" field.
func (_u *SubVideoTaskUpdateOne) SetThumbnailURL(v string) *SubVideoTaskUpdateOne {
	_u.mutation.SetThumbnailURL(v)
	return _u
}

// SetNillableThumbnailURL sets the "thumbnail_url" field if the given value is not nil.
func (_u *SubVideoTaskUpdateOne) SetNillableThumbnailURL(v *string) *SubVideoTaskUpdateOne {
	if v != nil {
		_u.SetThumbnailURL(*v)
	}
	return _u
}

// ClearThumbnailURL clears the value of the "thumbnail_url" field.
func (_u *SubVideoTaskUpdateOne) ClearThumbnailURL() *SubVideoTaskUpdateOne {
	_u.mutation.ClearThumbnailURL()
	return _u
}

// SetDuration sets the "duration" field.
func (_u *SubVideoTaskUpdateOne) SetDuration(v float64) *SubVideoTaskUpdateOne {
	_u.mutation.ResetDuration()
	_u.mutation.SetDuration(v)
	return _u
}

// SetNillableDuration sets the "duration" field if the given value is not nil.
func (_u *SubVideoTaskUpdateOne) SetNillableDuration(v *float64) *SubVideoTaskUpdateOne {
	if v != nil {
		_u.SetDuration(*v)
	}
	return _u
}

// AddDuration adds value to the "duration" field.
func (_u *SubVideoTaskUpdateOne) AddDuration(v float64) *SubVideoTaskUpdateOne {
	_u.mutation.AddDuration(v)
	return _u
}

// ClearDuration clears the value of the "duration" field.
func (_u *SubVideoTaskUpdateOne) ClearDuration() *SubVideoTaskUpdateOne {
	_u.mutation.ClearDuration()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *SubVideoTaskUpdateOne) SetErrorMessage(v string) *SubVideoTaskUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *SubVideoTaskUpdateOne) SetNillableErrorMessage(v *string) *SubVideoTaskUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *SubVideoTaskUpdateOne) ClearErrorMessage() *SubVideoTaskUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SubVideoTaskUpdateOne) SetUpdatedAt(v time.Time) *SubVideoTaskUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *SubVideoTaskUpdateOne) SetCompletedAt(v time.Time) *SubVideoTaskUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *SubVideoTaskUpdateOne) SetNillableCompletedAt(v *time.Time) *SubVideoTaskUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *SubVideoTaskUpdateOne) ClearCompletedAt() *SubVideoTaskUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the SubVideoTaskMutation object of the builder.
func (_u *SubVideoTaskUpdateOne) Mutation() *SubVideoTaskMutation {
	return _u.mutation
}

// Where appends a list predicates to the SubVideoTaskUpdate builder.
func (_u *SubVideoTaskUpdateOne) Where(ps ...predicate.SubVideoTask) *SubVideoTaskUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SubVideoTaskUpdateOne) Select(field string, fields ...string) *SubVideoTaskUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SubVideoTask entity.
func (_u *SubVideoTaskUpdateOne) Save(ctx context.Context) (*SubVideoTask, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SubVideoTaskUpdateOne) SaveX(ctx context.Context) *SubVideoTask {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SubVideoTaskUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SubVideoTaskUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SubVideoTaskUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := subvideotask.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SubVideoTaskUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := subvideotask.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "SubVideoTask.status": %w`, err)}
		}
	}
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SubVideoTask.task"`)
	}
	return nil
}

func (_u *SubVideoTaskUpdateOne) sqlSave(ctx context.Context) (_node *SubVideoTask, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(subvideotask.Table, subvideotask.Columns, sqlgraph.NewFieldSpec(subvideotask.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SubVideoTask.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, subvideotask.FieldID)
		for _, f := range fields {
			if !subvideotask.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != subvideotask.FieldID {
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
	if value, ok := _u.mutation.Index(); ok {
		_spec.SetField(subvideotask.FieldIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIndex(); ok {
		_spec.AddField(subvideotask.FieldIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ScriptStyle(); ok {
		_spec.SetField(subvideotask.FieldScriptStyle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(subvideotask.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Progress(); ok {
		_spec.SetField(subvideotask.FieldProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProgress(); ok {
		_spec.AddField(subvideotask.FieldProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ScriptID(); ok {
		_spec.SetField(subvideotask.FieldScriptID, field.TypeString, value)
	}
	if _u.mutation.ScriptIDCleared() {
		_spec.ClearField(subvideotask.FieldScriptID, field.TypeString)
	}
	if value, ok := _u.mutation.ScriptData(); ok {
		_spec.SetField(subvideotask.FieldScriptData, field.TypeJSON, value)
	}
	if _u.mutation.ScriptDataCleared() {
		_spec.ClearField(subvideotask.FieldScriptData, field.TypeJSON)
	}
	if value, ok := _u.mutation.CourseMediaID(); ok {
		_spec.SetField(subvideotask.FieldCourseMediaID, field.TypeString, value)
	}
	if _u.mutation.CourseMediaIDCleared() {
		_spec.ClearField(subvideotask.FieldCourseMediaID, field.TypeString)
	}
	if value, ok := _u.mutation.VideoURL(); ok {
		_spec.SetField(subvideotask.FieldVideoURL, field.TypeString, value)
	}
	if _u.mutation.VideoURLCleared() {
		_spec.ClearField(subvideotask.FieldVideoURL, field.TypeString)
	}
	if value, ok := _u.mutation.ThumbnailURL(); ok {
		_spec.SetField(subvideotask.FieldThumbnailURL, field.TypeString, value)
	}
	if _u.mutation.ThumbnailURLCleared() {
		_spec.ClearField(subvideotask.FieldThumbnailURL, field.TypeString)
	}
	if value, ok := _u.mutation.Duration(); ok {
		_spec.SetField(subvideotask.FieldDuration, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDuration(); ok {
		_spec.AddField(subvideotask.FieldDuration, field.TypeFloat64, value)
	}
	if _u.mutation.DurationCleared() {
		_spec.ClearField(subvideotask.FieldDuration, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(subvideotask.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(subvideotask.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(subvideotask.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(subvideotask.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(subvideotask.FieldCompletedAt, field.TypeTime)
	}
	_node = &SubVideoTask{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{subvideotask.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
