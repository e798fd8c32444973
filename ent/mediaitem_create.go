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
	"github.com/textloom/textloom/ent/mediaitem"
	"github.com/textloom/textloom/ent/task"
)

// MediaItemCreate is the builder for creating a MediaItem entity.
type MediaItemCreate struct {
	config
	mutation *MediaItemMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTaskID sets the "task_id" field.
func (_c *MediaItemCreate) SetTaskID(v string) *MediaItemCreate {
	_c.mutation.SetTaskID(v)
	return _c
}

// SetOriginalURL sets the "original_url" field.
func (_c *MediaItemCreate) SetOriginalURL(v string) *MediaItemCreate {
	_c.mutation.SetOriginalURL(v)
	return _c
}

// SetCloudURL sets the "cloud_url" field.
func (_c *MediaItemCreate) SetCloudURL(v string) *MediaItemCreate {
	_c.mutation.SetCloudURL(v)
	return _c
}

// SetNillableCloudURL sets the "cloud_url" field if the given value is not nil.
func (_c *MediaItemCreate) SetNillableCloudURL(v *string) *MediaItemCreate {
	if v != nil {
		_c.SetCloudURL(*v)
	}
	return _c
}

// SetLocalPath sets the "local_path" field.
func (_c *MediaItemCreate) SetLocalPath(v string) *MediaItemCreate {
	_c.mutation.SetLocalPath(v)
	return _c
}

// SetNillableLocalPath sets the "local_path" field if the given value is not nil.
func (_c *MediaItemCreate) SetNillableLocalPath(v *string) *MediaItemCreate {
	if v != nil {
		_c.SetLocalPath(*v)
	}
	return _c
}

// SetFilename sets the "filename" field.
func (_c *MediaItemCreate) SetFilename(v string) *MediaItemCreate {
	_c.mutation.SetFilename(v)
	return _c
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_c *MediaItemCreate) SetNillableFilename(v *string) *MediaItemCreate {
	if v != nil {
		_c.SetFilename(*v)
	}
	return _c
}

// SetMimeType sets the "mime_type" field.
func (_c *MediaItemCreate) SetMimeType(v string) *MediaItemCreate {
	_c.mutation.SetMimeType(v)
	return _c
}

// SetNillableMimeType sets the "mime_type" field if the given value is not nil.
func (_c *MediaItemCreate) SetNillableMimeType(v *string) *MediaItemCreate {
	if v != nil {
		_c.SetMimeType(*v)
	}
	return _c
}

// SetMediaType sets the "media_type" field.
func (_c *MediaItemCreate) SetMediaType(v mediaitem.MediaType) *MediaItemCreate {
	_c.mutation.SetMediaType(v)
	return _c
}

// SetFileSize sets the "file_size" field.
func (_c *MediaItemCreate) SetFileSize(v int64) *MediaItemCreate {
	_c.mutation.SetFileSize(v)
	return _c
}

// SetNillableFileSize sets the "file_size" field if the given value is not nil.
func (_c *MediaItemCreate) SetNillableFileSize(v *int64) *MediaItemCreate {
	if v != nil {
		_c.SetFileSize(*v)
	}
	return _c
}

// SetWidth sets the "width" field.
func (_c *MediaItemCreate) SetWidth(v int) *MediaItemCreate {
	_c.mutation.SetWidth(v)
	return _c
}

// SetNillableWidth sets the "width" field if the given value is not nil.
func (_c *MediaItemCreate) SetNillableWidth(v *int) *MediaItemCreate {
	if v != nil {
		_c.SetWidth(*v)
	}
	return _c
}

// SetHeight sets the "height" field.
func (_c *MediaItemCreate) SetHeight(v int) *MediaItemCreate {
	_c.mutation.SetHeight(v)
	return _c
}

// SetNillableHeight sets the "height" field if the given value is not nil.
func (_c *MediaItemCreate) SetNillableHeight(v *int) *MediaItemCreate {
	if v != nil {
		_c.SetHeight(*v)
	}
	return _c
}

// SetDuration sets the "duration" field.
func (_c *MediaItemCreate) SetDuration(v float64) *MediaItemCreate {
	_c.mutation.SetDuration(v)
	return _c
}

// SetNillableDuration sets the "duration" field if the given value is not nil.
func (_c *MediaItemCreate) SetNillableDuration(v *float64) *MediaItemCreate {
	if v != nil {
		_c.SetDuration(*v)
	}
	return _c
}

// SetContextBefore sets the "context_before" field.
func (_c *MediaItemCreate) SetContextBefore(v string) *MediaItemCreate {
	_c.mutation.SetContextBefore(v)
	return _c
}

// SetNillableContextBefore sets the "context_before" field if the given value is not nil.
func (_c *MediaItemCreate) SetNillableContextBefore(v *string) *MediaItemCreate {
	if v != nil {
		_c.SetContextBefore(*v)
	}
	return _c
}

// SetCaption sets the "caption" field.
func (_c *MediaItemCreate) SetCaption(v string) *MediaItemCreate {
	_c.mutation.SetCaption(v)
	return _c
}

// SetNillableCaption sets the "caption" field if the given value is not nil.
func (_c *MediaItemCreate) SetNillableCaption(v *string) *MediaItemCreate {
	if v != nil {
		_c.SetCaption(*v)
	}
	return _c
}

// SetContextAfter sets the "context_after" field.
func (_c *MediaItemCreate) SetContextAfter(v string) *MediaItemCreate {
	_c.mutation.SetContextAfter(v)
	return _c
}

// SetNillableContextAfter sets the "context_after" field if the given value is not nil.
func (_c *MediaItemCreate) SetNillableContextAfter(v *string) *MediaItemCreate {
	if v != nil {
		_c.SetContextAfter(*v)
	}
	return _c
}

// SetPosition sets the "position" field.
func (_c *MediaItemCreate) SetPosition(v int) *MediaItemCreate {
	_c.mutation.SetPosition(v)
	return _c
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_c *MediaItemCreate) SetNillablePosition(v *int) *MediaItemCreate {
	if v != nil {
		_c.SetPosition(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *MediaItemCreate) SetCreatedAt(v time.Time) *MediaItemCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MediaItemCreate) SetNillableCreatedAt(v *time.Time) *MediaItemCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *MediaItemCreate) SetID(v string) *MediaItemCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetTask sets the "task" edge to the Task entity.
func (_c *MediaItemCreate) SetTask(v *Task) *MediaItemCreate {
	return _c.SetTaskID(v.ID)
}

// Mutation returns the MediaItemMutation object of the builder.
func (_c *MediaItemCreate) Mutation() *MediaItemMutation {
	return _c.mutation
}

// Save creates the MediaItem in the database.
func (_c *MediaItemCreate) Save(ctx context.Context) (*MediaItem, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MediaItemCreate) SaveX(ctx context.Context) *MediaItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MediaItemCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MediaItemCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MediaItemCreate) defaults() {
	if _, ok := _c.mutation.Position(); !ok {
		v := mediaitem.DefaultPosition
		_c.mutation.SetPosition(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := mediaitem.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MediaItemCreate) check() error {
	if _, ok := _c.mutation.TaskID(); !ok {
		return &ValidationError{Name: "task_id", err: errors.New(`ent: missing required field "MediaItem.task_id"`)}
	}
	if _, ok := _c.mutation.OriginalURL(); !ok {
		return &ValidationError{Name: "original_url", err: errors.New(`ent: missing required field "MediaItem.original_url"`)}
	}
	if _, ok := _c.mutation.MediaType(); !ok {
		return &ValidationError{Name: "media_type", err: errors.New(`ent: missing required field "MediaItem.media_type"`)}
	}
	if v, ok := _c.mutation.MediaType(); ok {
		if err := mediaitem.MediaTypeValidator(v); err != nil {
			return &ValidationError{Name: "media_type", err: fmt.Errorf(`ent: validator failed for field "MediaItem.media_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Position(); !ok {
		return &ValidationError{Name: "position", err: errors.New(`ent: missing required field "MediaItem.position"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "MediaItem.created_at"`)}
	}
	if len(_c.mutation.TaskIDs()) == 0 {
		return &ValidationError{Name: "task", err: errors.New(`ent: missing required edge "MediaItem.task"`)}
	}
	return nil
}

func (_c *MediaItemCreate) sqlSave(ctx context.Context) (*MediaItem, error) {
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
			return nil, fmt.Errorf("unexpected MediaItem.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *MediaItemCreate) createSpec() (*MediaItem, *sqlgraph.CreateSpec) {
	var (
		_node = &MediaItem{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(mediaitem.Table, sqlgraph.NewFieldSpec(mediaitem.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.OriginalURL(); ok {
		_spec.SetField(mediaitem.FieldOriginalURL, field.TypeString, value)
		_node.OriginalURL = value
	}
	if value, ok := _c.mutation.CloudURL(); ok {
		_spec.SetField(mediaitem.FieldCloudURL, field.TypeString, value)
		_node.CloudURL = value
	}
	if value, ok := _c.mutation.LocalPath(); ok {
		_spec.SetField(mediaitem.FieldLocalPath, field.TypeString, value)
		_node.LocalPath = value
	}
	if value, ok := _c.mutation.Filename(); ok {
		_spec.SetField(mediaitem.FieldFilename, field.TypeString, value)
		_node.Filename = value
	}
	if value, ok := _c.mutation.MimeType(); ok {
		_spec.SetField(mediaitem.FieldMimeType, field.TypeString, value)
		_node.MimeType = value
	}
	if value, ok := _c.mutation.MediaType(); ok {
		_spec.SetField(mediaitem.FieldMediaType, field.TypeEnum, value)
		_node.MediaType = value
	}
	if value, ok := _c.mutation.FileSize(); ok {
		_spec.SetField(mediaitem.FieldFileSize, field.TypeInt64, value)
		_node.FileSize = value
	}
	if value, ok := _c.mutation.Width(); ok {
		_spec.SetField(mediaitem.FieldWidth, field.TypeInt, value)
		_node.Width = value
	}
	if value, ok := _c.mutation.Height(); ok {
		_spec.SetField(mediaitem.FieldHeight, field.TypeInt, value)
		_node.Height = value
	}
	if value, ok := _c.mutation.Duration(); ok {
		_spec.SetField(mediaitem.FieldDuration, field.TypeFloat64, value)
		_node.Duration = value
	}
	if value, ok := _c.mutation.ContextBefore(); ok {
		_spec.SetField(mediaitem.FieldContextBefore, field.TypeString, value)
		_node.ContextBefore = value
	}
	if value, ok := _c.mutation.Caption(); ok {
		_spec.SetField(mediaitem.FieldCaption, field.TypeString, value)
		_node.Caption = value
	}
	if value, ok := _c.mutation.ContextAfter(); ok {
		_spec.SetField(mediaitem.FieldContextAfter, field.TypeString, value)
		_node.ContextAfter = value
	}
	if value, ok := _c.mutation.Position(); ok {
		_spec.SetField(mediaitem.FieldPosition, field.TypeInt, value)
		_node.Position = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(mediaitem.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.TaskIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   mediaitem.TaskTable,
			Columns: []string{mediaitem.TaskColumn},
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
//	client.MediaItem.Create().
//		SetTaskID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MediaItemUpsert) {
//			SetTaskID(v+v).
//		}).
//		Exec(ctx)
func (_c *MediaItemCreate) OnConflict(opts ...sql.ConflictOption) *MediaItemUpsertOne {
	_c.conflict = opts
	return &MediaItemUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.MediaItem.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MediaItemCreate) OnConflictColumns(columns ...string) *MediaItemUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MediaItemUpsertOne{
		create: _c,
	}
}

type (
	// MediaItemUpsertOne is the builder for "upsert"-ing
	//  one MediaItem node.
	MediaItemUpsertOne struct {
		create *MediaItemCreate
	}

	// MediaItemUpsert is the "OnConflict" setter.
	MediaItemUpsert struct {
		*sql.UpdateSet
	}
)

// SetOriginalURL sets the "original_url" field.
func (u *MediaItemUpsert) SetOriginalURL(v string) *MediaItemUpsert {
	u.Set(mediaitem.FieldOriginalURL, v)
	return u
}

// UpdateOriginalURL sets the "original_url" field to the value that was provided on create.
func (u *MediaItemUpsert) UpdateOriginalURL() *MediaItemUpsert {
	u.SetExcluded(mediaitem.FieldOriginalURL)
	return u
}

// SetCloudURL sets the "cloud_url" field.
func (u *MediaItemUpsert) SetCloudURL(v string) *MediaItemUpsert {
	u.Set(mediaitem.FieldCloudURL, v)
	return u
}

// UpdateCloudURL sets the "cloud_url" field to the value that was provided on create.
func (u *MediaItemUpsert) UpdateCloudURL() *MediaItemUpsert {
	u.SetExcluded(mediaitem.FieldCloudURL)
	return u
}

// ClearCloudURL clears the value of the "cloud_url" field.
func (u *MediaItemUpsert) ClearCloudURL() *MediaItemUpsert {
	u.SetNull(mediaitem.FieldCloudURL)
	return u
}

// SetLocalPath sets the "local_path" field.
func (u *MediaItemUpsert) SetLocalPath(v string) *MediaItemUpsert {
	u.Set(mediaitem.FieldLocalPath, v)
	return u
}

// UpdateLocalPath sets the "local_path" field to the value that was provided on create.
func (u *MediaItemUpsert) UpdateLocalPath() *MediaItemUpsert {
	u.SetExcluded(mediaitem.FieldLocalPath)
	return u
}

// ClearLocalPath clears the value of the "local_path" field.
func (u *MediaItemUpsert) ClearLocalPath() *MediaItemUpsert {
	u.SetNull(mediaitem.FieldLocalPath)
	return u
}

// SetFilename sets the "filename" field.
func (u *MediaItemUpsert) SetFilename(v string) *MediaItemUpsert {
	u.Set(mediaitem.FieldFilename, v)
	return u
}

// UpdateFilename sets the "filename" field to the value that was provided on create.
func (u *MediaItemUpsert) UpdateFilename() *MediaItemUpsert {
	u.SetExcluded(mediaitem.FieldFilename)
	return u
}

// ClearFilename clears the value of the "filename" field.
func (u *MediaItemUpsert) ClearFilename() *MediaItemUpsert {
	u.SetNull(mediaitem.FieldFilename)
	return u
}

// SetMimeType sets the "mime_type" field.
func (u *MediaItemUpsert) SetMimeType(v string) *MediaItemUpsert {
	u.Set(mediaitem.FieldMimeType, v)
	return u
}

// UpdateMimeType sets the "mime_type" field to the value that was provided on create.
func (u *MediaItemUpsert) UpdateMimeType() *MediaItemUpsert {
	u.SetExcluded(mediaitem.FieldMimeType)
	return u
}

// ClearMimeType clears the value of the "mime_type" field.
func (u *MediaItemUpsert) ClearMimeType() *MediaItemUpsert {
	u.SetNull(mediaitem.FieldMimeType)
	return u
}

// SetMediaType sets the "media_type" field.
func (u *MediaItemUpsert) SetMediaType(v mediaitem.MediaType) *MediaItemUpsert {
	u.Set(mediaitem.FieldMediaType, v)
	return u
}

// UpdateMediaType sets the "media_type" field to the value that was provided on create.
func (u *MediaItemUpsert) UpdateMediaType() *MediaItemUpsert {
	u.SetExcluded(mediaitem.FieldMediaType)
	return u
}

// SetFileSize sets the "file_size" field.
func (u *MediaItemUpsert) SetFileSize(v int64) *MediaItemUpsert {
	u.Set(mediaitem.FieldFileSize, v)
	return u
}

// UpdateFileSize sets the "file_size" field to the value that was provided on create.
func (u *MediaItemUpsert) UpdateFileSize() *MediaItemUpsert {
	u.SetExcluded(mediaitem.FieldFileSize)
	return u
}

// AddFileSize adds v to the "file_size" field.
func (u *MediaItemUpsert) AddFileSize(v int64) *MediaItemUpsert {
	u.Add(mediaitem.FieldFileSize, v)
	return u
}

// ClearFileSize clears the value of the "file_size" field.
func (u *MediaItemUpsert) ClearFileSize() *MediaItemUpsert {
	u.SetNull(mediaitem.FieldFileSize)
	return u
}

// SetWidth sets the "width" field.
func (u *MediaItemUpsert) SetWidth(v int) *MediaItemUpsert {
	u.Set(mediaitem.FieldWidth, v)
	return u
}

// UpdateWidth sets the "width" field to the value that was provided on create.
func (u *MediaItemUpsert) UpdateWidth() *MediaItemUpsert {
	u.SetExcluded(mediaitem.FieldWidth)
	return u
}

// AddWidth adds v to the "width" field.
func (u *MediaItemUpsert) AddWidth(v int) *MediaItemUpsert {
	u.Add(mediaitem.FieldWidth, v)
	return u
}

// ClearWidth clears the value of the "width" field.
func (u *MediaItemUpsert) ClearWidth() *MediaItemUpsert {
	u.SetNull(mediaitem.FieldWidth)
	return u
}

// SetHeight sets the "height" field.
func (u *MediaItemUpsert) SetHeight(v int) *MediaItemUpsert {
	u.Set(mediaitem.FieldHeight, v)
	return u
}

// UpdateHeight sets the "height" field to the value that was provided on create.
func (u *MediaItemUpsert) UpdateHeight() *MediaItemUpsert {
	u.SetExcluded(mediaitem.FieldHeight)
	return u
}

// AddHeight adds v to the "height" field.
func (u *MediaItemUpsert) AddHeight(v int) *MediaItemUpsert {
	u.Add(mediaitem.FieldHeight, v)
	return u
}

// ClearHeight clears the value of the "height" field.
func (u *MediaItemUpsert) ClearHeight() *MediaItemUpsert {
	u.SetNull(mediaitem.FieldHeight)
	return u
}

// SetDuration sets the "duration" field.
func (u *MediaItemUpsert) SetDuration(v float64) *MediaItemUpsert {
	u.Set(mediaitem.FieldDuration, v)
	return u
}

// UpdateDuration sets the "duration" field to the value that was provided on create.
func (u *MediaItemUpsert) UpdateDuration() *MediaItemUpsert {
	u.SetExcluded(mediaitem.FieldDuration)
	return u
}

// AddDuration adds v to the "duration" field.
func (u *MediaItemUpsert) AddDuration(v float64) *MediaItemUpsert {
	u.Add(mediaitem.FieldDuration, v)
	return u
}

// ClearDuration clears the value of the "duration" field.
func (u *MediaItemUpsert) ClearDuration() *MediaItemUpsert {
	u.SetNull(mediaitem.FieldDuration)
	return u
}

// SetContextBefore sets the "context_before" field.
func (u *MediaItemUpsert) SetContextBefore(v string) *MediaItemUpsert {
	u.Set(mediaitem.FieldContextBefore, v)
	return u
}

// UpdateContextBefore sets the "context_before" field to the value that was provided on create.
func (u *MediaItemUpsert) UpdateContextBefore() *MediaItemUpsert {
	u.SetExcluded(mediaitem.FieldContextBefore)
	return u
}

// ClearContextBefore clears the value of the "context_before" field.
func (u *MediaItemUpsert) ClearContextBefore() *MediaItemUpsert {
	u.SetNull(mediaitem.FieldContextBefore)
	return u
}

// SetCaption sets the "caption" field.
func (u *MediaItemUpsert) SetCaption(v string) *MediaItemUpsert {
	u.Set(mediaitem.FieldCaption, v)
	return u
}

// UpdateCaption sets the "caption" field to the value that was provided on create.
func (u *MediaItemUpsert) UpdateCaption() *MediaItemUpsert {
	u.SetExcluded(mediaitem.FieldCaption)
	return u
}

// ClearCaption clears the value of the "caption" field.
func (u *MediaItemUpsert) ClearCaption() *MediaItemUpsert {
	u.SetNull(mediaitem.FieldCaption)
	return u
}

// SetContextAfter sets the "context_after" field.
func (u *MediaItemUpsert) SetContextAfter(v string) *MediaItemUpsert {
	u.Set(mediaitem.FieldContextAfter, v)
	return u
}

// UpdateContextAfter sets the "context_after" field to the value that was provided on create.
func (u *MediaItemUpsert) UpdateContextAfter() *MediaItemUpsert {
	u.SetExcluded(mediaitem.FieldContextAfter)
	return u
}

// ClearContextAfter clears the value of the "context_after" field.
func (u *MediaItemUpsert) ClearContextAfter() *MediaItemUpsert {
	u.SetNull(mediaitem.FieldContextAfter)
	return u
}

// SetPosition sets the "position" field.
func (u *MediaItemUpsert) SetPosition(v int) *MediaItemUpsert {
	u.Set(mediaitem.FieldPosition, v)
	return u
}

// UpdatePosition sets the "position" field to the value that was provided on create.
func (u *MediaItemUpsert) UpdatePosition() *MediaItemUpsert {
	u.SetExcluded(mediaitem.FieldPosition)
	return u
}

// AddPosition adds v to the "position" field.
func (u *MediaItemUpsert) AddPosition(v int) *MediaItemUpsert {
	u.Add(mediaitem.FieldPosition, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.MediaItem.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(mediaitem.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *MediaItemUpsertOne) UpdateNewValues() *MediaItemUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(mediaitem.FieldID)
		}
		if _, exists := u.create.mutation.TaskID(); exists {
			s.SetIgnore(mediaitem.FieldTaskID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(mediaitem.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.MediaItem.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *MediaItemUpsertOne) Ignore() *MediaItemUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MediaItemUpsertOne) DoNothing() *MediaItemUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MediaItemCreate.OnConflict
// documentation for more info.
func (u *MediaItemUpsertOne) Update(set func(*MediaItemUpsert)) *MediaItemUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MediaItemUpsert{UpdateSet: update})
	}))
	return u
}

// SetOriginalURL sets the "original_url" field.
func (u *MediaItemUpsertOne) SetOriginalURL(v string) *MediaItemUpsertOne {
	return u.Update(func(s *MediaItemUpsert) {
		s.SetOriginalURL(v)
	})
}

// UpdateOriginalURL sets the "original_url" field to the value that was provided on create.
func (u *MediaItemUpsertOne) UpdateOriginalURL() *MediaItemUpsertOne {
	return u.Update(func(s *MediaItemUpsert) {
		s.UpdateOriginalURL()
	})
}

// SetCloudURL sets the "cloud_url" field.
func (u *MediaItemUpsertOne) SetCloudURL(v string) *MediaItemUpsertOne {
	return u.Update(func(s *MediaItemUpsert) {
		s.SetCloudURL(v)
	})
}

// UpdateCloudURL sets the "cloud_url" field to the value that was provided on create.
func (u *MediaItemUpsertOne) UpdateCloudURL() *MediaItemUpsertOne {
	return u.Update(func(s *MediaItemUpsert) {
		s.UpdateCloudURL()
	})
}

// ClearCloudURL clears the value of the "cloud_url" field.
func (u *MediaItemUpsertOne) ClearCloudURL() *MediaItemUpsertOne {
	return u.Update(func(s *MediaItemUpsert) {
		s.ClearCloudURL()
	})
}

// SetLocalPath sets the "local_path" field.
func (u *MediaItemUpsertOne) SetLocalPath(v string) *MediaItemUpsertOne {
	return u.Update(func(s *MediaItemUpsert) {
		s.SetLocalPath(v)
	})
}

// UpdateLocalPath sets the "local_path" field to the value that was provided on create.
func (u *MediaItemUpsertOne) UpdateLocalPath() *MediaItemUpsertOne {
	return u.Update(func(s *MediaItemUpsert) {
		s.UpdateLocalPath()
	})
}

// ClearLocalPath clears the value of the "local_path" field.
func (u *MediaItemUpsertOne) ClearLocalPath() *MediaItemUpsertOne {
	return u.Update(func(s *MediaItemUpsert) {
		s.ClearLocalPath()
	})
}

// SetFilename sets the "filename" field.
func (u *MediaItemUpsertOne) SetFilename(v string) *MediaItemUpsertOne {
	return u.Update(func(s *MediaItemUpsert) {
		s.SetFilename(v)
	})
}

// UpdateFilename sets the "filename" field to the value that was provided on create.
func (u *MediaItemUpsertOne) UpdateFilename() *MediaItemUpsertOne {
	return u.Update(func(s *MediaItemUpsert) {
		s.UpdateFilename()
	})
}

// ClearFilename clears the value of the "filename" field.
func (u *MediaItemUpsertOne) ClearFilename() *MediaItemUpsertOne {
	return u.Update(func(s *MediaItemUpsert) {
		s.ClearFilename()
	})
}

// SetMimeType sets the "mime_type" field.
func (u *MediaItemUpsertOne) SetMimeType(v string) *MediaItemUpsertOne {
	return u.Update(func(s *MediaItemUpsert) {
		s.SetMimeType(v)
	})
}

// UpdateMimeType sets the "mime_type" field to the value that was provided on create.
func (u *MediaItemUpsertOne) UpdateMimeType() *MediaItemUpsertOne {
	return u.Update(func(s *MediaItemUpsert) {
		s.UpdateMimeType()
	})
}

// ClearMimeType clears the value of the "mime_type" field.
func (u *MediaItemUpsertOne) ClearMimeType() *MediaItemUpsertOne {
	return u.Update(func(s *MediaItemUpsert) {
		s.ClearMimeType()
	})
}

// SetMediaType sets the "media_type" field.
func (u *MediaItemUpsertOne) SetMediaType(v mediaitem.MediaType) *MediaItemUpsertOne {
	return u.Update(func(s *MediaItemUpsert) {
		s.SetMediaType(v)
	})
}

// UpdateMediaType sets the "media_type" field to the value that was provided on create.
func (u *MediaItemUpsertOne) UpdateMediaType() *MediaItemUpsertOne {
	return u.Update(func(s *MediaItemUpsert) {
		s.UpdateMediaType()
	})
}

// SetFileSize sets the "file_size" field.
func (u *MediaItemUpsertOne) SetFileSize(v int64) *MediaItemUpsertOne {
	return u.Update(func(s *MediaItemUpsert) {
		s.SetFileSize(v)
	})
}

// AddFileSize adds v to the "file_size" field.
func (u *MediaItemUpsertOne) AddFileSize(v int64) *MediaItemUpsertOne {
	return u.Update(func(s *MediaItemUpsert) {
		s.AddFileSize(v)
	})
}

// UpdateFileSize sets the "file_size" field to the value that was provided on create.
func (u *MediaItemUpsertOne) UpdateFileSize() *MediaItemUpsertOne {
	return u.Update(func(s *MediaItemUpsert) {
		s.UpdateFileSize()
	})
}

// ClearFileSize clears the value of the "file_size" field.
func (u *MediaItemUpsertOne) ClearFileSize() *MediaItemUpsertOne {
	return u.Update(func(s *MediaItemUpsert) {
		s.ClearFileSize()
	})
}

// SetWidth sets the "width" field.
func (u *MediaItemUpsertOne) SetWidth(v int) *MediaItemUpsertOne {
	return u.Update(func(s *MediaItemUpsert) {
		s.SetWidth(v)
	})
}

// AddWidth adds v to the "width" field.
func (u *MediaItemUpsertOne) AddWidth(v int) *MediaItemUpsertOne {
	return u.Update(func(s *MediaItemUpsert) {
		s.AddWidth(v)
	})
}

// UpdateWidth sets the "width" field to the value that was provided on create.
func (u *MediaItemUpsertOne) UpdateWidth() *MediaItemUpsertOne {
	return u.Update(func(s *MediaItemUpsert) {
		s.UpdateWidth()
	})
}

// ClearWidth clears the value of the "width" field.
func (u *MediaItemUpsertOne) ClearWidth() *MediaItemUpsertOne {
	return u.Update(func(s *MediaItemUpsert) {
		s.ClearWidth()
	})
}

// SetHeight sets the "height" field.
func (u *MediaItemUpsertOne) SetHeight(v int) *MediaItemUpsertOne {
	return u.Update(func(s *MediaItemUpsert) {
		s.SetHeight(v)
	})
}

// AddHeight adds v to the "height" field.
func (u *MediaItemUpsertOne) AddHeight(v int) *MediaItemUpsertOne {
	return u.Update(func(s *MediaItemUpsert) {
		s.AddHeight(v)
	})
}

// UpdateHeight sets the "height" field to the value that was provided on create.
func (u *MediaItemUpsertOne) UpdateHeight() *MediaItemUpsertOne {
	return u.Update(func(s *MediaItemUpsert) {
		s.UpdateHeight()
	})
}

// ClearHeight clears the value of the "height" field.
func (u *MediaItemUpsertOne) ClearHeight() *MediaItemUpsertOne {
	return u.Update(func(s *MediaItemUpsert) {
		s.ClearHeight()
	})
}

// SetDuration sets the "duration" field.
func (u *MediaItemUpsertOne) SetDuration(v float64) *MediaItemUpsertOne {
	return u.Update(func(s *MediaItemUpsert) {
		s.SetDuration(v)
	})
}

// AddDuration adds v to the "duration" field.
func (u *MediaItemUpsertOne) AddDuration(v float64) *MediaItemUpsertOne {
	return u.Update(func(s *MediaItemUpsert) {
		s.AddDuration(v)
	})
}

// UpdateDuration sets the "duration" field to the value that was provided on create.
func (u *MediaItemUpsertOne) UpdateDuration() *MediaItemUpsertOne {
	return u.Update(func(s *MediaItemUpsert) {
		s.UpdateDuration()
	})
}

// ClearDuration clears the value of the "duration" field.
func (u *MediaItemUpsertOne) ClearDuration() *MediaItemUpsertOne {
	return u.Update(func(s *MediaItemUpsert) {
		s.ClearDuration()
	})
}

// SetContextBefore sets the "context_before" field.
func (u *MediaItemUpsertOne) SetContextBefore(v string) *MediaItemUpsertOne {
	return u.Update(func(s *MediaItemUpsert) {
		s.SetContextBefore(v)
	})
}

// UpdateContextBefore sets the "context_before" field to the value that was provided on create.
func (u *MediaItemUpsertOne) UpdateContextBefore() *MediaItemUpsertOne {
	return u.Update(func(s *MediaItemUpsert) {
		s.UpdateContextBefore()
	})
}

// ClearContextBefore clears the value of the "context_before" field.
func (u *MediaItemUpsertOne) ClearContextBefore() *MediaItemUpsertOne {
	return u.Update(func(s *MediaItemUpsert) {
		s.ClearContextBefore()
	})
}

// SetCaption sets the "caption" field.
func (u *MediaItemUpsertOne) SetCaption(v string) *MediaItemUpsertOne {
	return u.Update(func(s *MediaItemUpsert) {
		s.SetCaption(v)
	})
}

// UpdateCaption sets the "caption" field to the value that was provided on create.
func (u *MediaItemUpsertOne) UpdateCaption() *MediaItemUpsertOne {
	return u.Update(func(s *MediaItemUpsert) {
		s.UpdateCaption()
	})
}

// ClearCaption clears the value of the "caption" field.
func (u *MediaItemUpsertOne) ClearCaption() *MediaItemUpsertOne {
	return u.Update(func(s *MediaItemUpsert) {
		s.ClearCaption()
	})
}

// SetContextAfter sets the "context_after" field.
func (u *MediaItemUpsertOne) SetContextAfter(v string) *MediaItemUpsertOne {
	return u.Update(func(s *MediaItemUpsert) {
		s.SetContextAfter(v)
	})
}

// UpdateContextAfter sets the "context_after" field to the value that was provided on create.
func (u *MediaItemUpsertOne) UpdateContextAfter() *MediaItemUpsertOne {
	return u.Update(func(s *MediaItemUpsert) {
		s.UpdateContextAfter()
	})
}

// ClearContextAfter clears the value of the "context_after" field.
func (u *MediaItemUpsertOne) ClearContextAfter() *MediaItemUpsertOne {
	return u.Update(func(s *MediaItemUpsert) {
		s.ClearContextAfter()
	})
}

// SetPosition sets the "position" field.
func (u *MediaItemUpsertOne) SetPosition(v int) *MediaItemUpsertOne {
	return u.Update(func(s *MediaItemUpsert) {
		s.SetPosition(v)
	})
}

// AddPosition adds v to the "position" field.
func (u *MediaItemUpsertOne) AddPosition(v int) *MediaItemUpsertOne {
	return u.Update(func(s *MediaItemUpsert) {
		s.AddPosition(v)
	})
}

// UpdatePosition sets the "position" field to the value that was provided on create.
func (u *MediaItemUpsertOne) UpdatePosition() *MediaItemUpsertOne {
	return u.Update(func(s *MediaItemUpsert) {
		s.UpdatePosition()
	})
}

// Exec executes the query.
func (u *MediaItemUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for MediaItemCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MediaItemUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *MediaItemUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: MediaItemUpsertOne.ID is not supported by MySQL driver. Use MediaItemUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *MediaItemUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// MediaItemCreateBulk is the builder for creating many MediaItem entities in bulk.
type MediaItemCreateBulk struct {
	config
	err      error
	builders []*MediaItemCreate
	conflict []sql.ConflictOption
}

// Save creates the MediaItem entities in the database.
func (_c *MediaItemCreateBulk) Save(ctx context.Context) ([]*MediaItem, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MediaItem, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MediaItemMutation)
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
func (_c *MediaItemCreateBulk) SaveX(ctx context.Context) []*MediaItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MediaItemCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MediaItemCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.MediaItem.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MediaItemUpsert) {
//			SetTaskID(v+v).
//		}).
//		Exec(ctx)
func (_c *MediaItemCreateBulk) OnConflict(opts ...sql.ConflictOption) *MediaItemUpsertBulk {
	_c.conflict = opts
	return &MediaItemUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.MediaItem.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MediaItemCreateBulk) OnConflictColumns(columns ...string) *MediaItemUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MediaItemUpsertBulk{
		create: _c,
	}
}

// MediaItemUpsertBulk is the builder for "upsert"-ing
// a bulk of MediaItem nodes.
type MediaItemUpsertBulk struct {
	create *MediaItemCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.MediaItem.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(mediaitem.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *MediaItemUpsertBulk) UpdateNewValues() *MediaItemUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(mediaitem.FieldID)
			}
			if _, exists := b.mutation.TaskID(); exists {
				s.SetIgnore(mediaitem.FieldTaskID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(mediaitem.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.MediaItem.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *MediaItemUpsertBulk) Ignore() *MediaItemUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MediaItemUpsertBulk) DoNothing() *MediaItemUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MediaItemCreateBulk.OnConflict
// documentation for more info.
func (u *MediaItemUpsertBulk) Update(set func(*MediaItemUpsert)) *MediaItemUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MediaItemUpsert{UpdateSet: update})
	}))
	return u
}

// SetOriginalURL sets the "original_url" field.
func (u *MediaItemUpsertBulk) SetOriginalURL(v string) *MediaItemUpsertBulk {
	return u.Update(func(s *MediaItemUpsert) {
		s.SetOriginalURL(v)
	})
}

// UpdateOriginalURL sets the "original_url" field to the value that was provided on create.
func (u *MediaItemUpsertBulk) UpdateOriginalURL() *MediaItemUpsertBulk {
	return u.Update(func(s *MediaItemUpsert) {
		s.UpdateOriginalURL()
	})
}

// SetCloudURL sets the "cloud_url" field.
func (u *MediaItemUpsertBulk) SetCloudURL(v string) *MediaItemUpsertBulk {
	return u.Update(func(s *MediaItemUpsert) {
		s.SetCloudURL(v)
	})
}

// UpdateCloudURL sets the "cloud_url" field to the value that was provided on create.
func (u *MediaItemUpsertBulk) UpdateCloudURL() *MediaItemUpsertBulk {
	return u.Update(func(s *MediaItemUpsert) {
		s.UpdateCloudURL()
	})
}

// ClearCloudURL clears the value of the "cloud_url" field.
func (u *MediaItemUpsertBulk) ClearCloudURL() *MediaItemUpsertBulk {
	return u.Update(func(s *MediaItemUpsert) {
		s.ClearCloudURL()
	})
}

// SetLocalPath sets the "local_path" field.
func (u *MediaItemUpsertBulk) SetLocalPath(v string) *MediaItemUpsertBulk {
	return u.Update(func(s *MediaItemUpsert) {
		s.SetLocalPath(v)
	})
}

// UpdateLocalPath sets the "local_path" field to the value that was provided on create.
func (u *MediaItemUpsertBulk) UpdateLocalPath() *MediaItemUpsertBulk {
	return u.Update(func(s *MediaItemUpsert) {
		s.UpdateLocalPath()
	})
}

// ClearLocalPath clears the value of the "local_path" field.
func (u *MediaItemUpsertBulk) ClearLocalPath() *MediaItemUpsertBulk {
	return u.Update(func(s *MediaItemUpsert) {
		s.ClearLocalPath()
	})
}

// SetFilename sets the "filename" field.
func (u *MediaItemUpsertBulk) SetFilename(v string) *MediaItemUpsertBulk {
	return u.Update(func(s *MediaItemUpsert) {
		s.SetFilename(v)
	})
}

// UpdateFilename sets the "filename" field to the value that was provided on create.
func (u *MediaItemUpsertBulk) UpdateFilename() *MediaItemUpsertBulk {
	return u.Update(func(s *MediaItemUpsert) {
		s.UpdateFilename()
	})
}

// ClearFilename clears the value of the "filename" field.
func (u *MediaItemUpsertBulk) ClearFilename() *MediaItemUpsertBulk {
	return u.Update(func(s *MediaItemUpsert) {
		s.ClearFilename()
	})
}

// SetMimeType sets the "mime_type" field.
func (u *MediaItemUpsertBulk) SetMimeType(v string) *MediaItemUpsertBulk {
	return u.Update(func(s *MediaItemUpsert) {
		s.SetMimeType(v)
	})
}

// UpdateMimeType sets the "mime_type" field to the value that was provided on create.
func (u *MediaItemUpsertBulk) UpdateMimeType() *MediaItemUpsertBulk {
	return u.Update(func(s *MediaItemUpsert) {
		s.UpdateMimeType()
	})
}

// ClearMimeType clears the value of the "mime_type" field.
func (u *MediaItemUpsertBulk) ClearMimeType() *MediaItemUpsertBulk {
	return u.Update(func(s *MediaItemUpsert) {
		s.ClearMimeType()
	})
}

// SetMediaType sets the "media_type" field.
func (u *MediaItemUpsertBulk) SetMediaType(v mediaitem.MediaType) *MediaItemUpsertBulk {
	return u.Update(func(s *MediaItemUpsert) {
		s.SetMediaType(v)
	})
}

// UpdateMediaType sets the "media_type" field to the value that was provided on create.
func (u *MediaItemUpsertBulk) UpdateMediaType() *MediaItemUpsertBulk {
	return u.Update(func(s *MediaItemUpsert) {
		s.UpdateMediaType()
	})
}

// SetFileSize sets the "file_size" field.
func (u *MediaItemUpsertBulk) SetFileSize(v int64) *MediaItemUpsertBulk {
	return u.Update(func(s *MediaItemUpsert) {
		s.SetFileSize(v)
	})
}

// AddFileSize adds v to the "file_size" field.
func (u *MediaItemUpsertBulk) AddFileSize(v int64) *MediaItemUpsertBulk {
	return u.Update(func(s *MediaItemUpsert) {
		s.AddFileSize(v)
	})
}

// UpdateFileSize sets the "file_size" field to the value that was provided on create.
func (u *MediaItemUpsertBulk) UpdateFileSize() *MediaItemUpsertBulk {
	return u.Update(func(s *MediaItemUpsert) {
		s.UpdateFileSize()
	})
}

// ClearFileSize clears the value of the "file_size" field.
func (u *MediaItemUpsertBulk) ClearFileSize() *MediaItemUpsertBulk {
	return u.Update(func(s *MediaItemUpsert) {
		s.ClearFileSize()
	})
}

// SetWidth sets the "width" field.
func (u *MediaItemUpsertBulk) SetWidth(v int) *MediaItemUpsertBulk {
	return u.Update(func(s *MediaItemUpsert) {
		s.SetWidth(v)
	})
}

// AddWidth adds v to the "width" field.
func (u *MediaItemUpsertBulk) AddWidth(v int) *MediaItemUpsertBulk {
	return u.Update(func(s *MediaItemUpsert) {
		s.AddWidth(v)
	})
}

// UpdateWidth sets the "width" field to the value that was provided on create.
func (u *MediaItemUpsertBulk) UpdateWidth() *MediaItemUpsertBulk {
	return u.Update(func(s *MediaItemUpsert) {
		s.UpdateWidth()
	})
}

// ClearWidth clears the value of the "width" field.
func (u *MediaItemUpsertBulk) ClearWidth() *MediaItemUpsertBulk {
	return u.Update(func(s *MediaItemUpsert) {
		s.ClearWidth()
	})
}

// SetHeight sets the "height" field.
func (u *MediaItemUpsertBulk) SetHeight(v int) *MediaItemUpsertBulk {
	return u.Update(func(s *MediaItemUpsert) {
		s.SetHeight(v)
	})
}

// AddHeight adds v to the "height" field.
func (u *MediaItemUpsertBulk) AddHeight(v int) *MediaItemUpsertBulk {
	return u.Update(func(s *MediaItemUpsert) {
		s.AddHeight(v)
	})
}

// UpdateHeight sets the "height" field to the value that was provided on create.
func (u *MediaItemUpsertBulk) UpdateHeight() *MediaItemUpsertBulk {
	return u.Update(func(s *MediaItemUpsert) {
		s.UpdateHeight()
	})
}

// ClearHeight clears the value of the "height" field.
func (u *MediaItemUpsertBulk) ClearHeight() *MediaItemUpsertBulk {
	return u.Update(func(s *MediaItemUpsert) {
		s.ClearHeight()
	})
}

// SetDuration sets the "duration" field.
func (u *MediaItemUpsertBulk) SetDuration(v float64) *MediaItemUpsertBulk {
	return u.Update(func(s *MediaItemUpsert) {
		s.SetDuration(v)
	})
}

// AddDuration adds v to the "duration" field.
func (u *MediaItemUpsertBulk) AddDuration(v float64) *MediaItemUpsertBulk {
	return u.Update(func(s *MediaItemUpsert) {
		s.AddDuration(v)
	})
}

// UpdateDuration sets the "duration" field to the value that was provided on create.
func (u *MediaItemUpsertBulk) UpdateDuration() *MediaItemUpsertBulk {
	return u.Update(func(s *MediaItemUpsert) {
		s.UpdateDuration()
	})
}

// ClearDuration clears the value of the "duration" field.
func (u *MediaItemUpsertBulk) ClearDuration() *MediaItemUpsertBulk {
	return u.Update(func(s *MediaItemUpsert) {
		s.ClearDuration()
	})
}

// SetContextBefore sets the "context_before" field.
func (u *MediaItemUpsertBulk) SetContextBefore(v string) *MediaItemUpsertBulk {
	return u.Update(func(s *MediaItemUpsert) {
		s.SetContextBefore(v)
	})
}

// UpdateContextBefore sets the "context_before" field to the value that was provided on create.
func (u *MediaItemUpsertBulk) UpdateContextBefore() *MediaItemUpsertBulk {
	return u.Update(func(s *MediaItemUpsert) {
		s.UpdateContextBefore()
	})
}

// ClearContextBefore clears the value of the "context_before" field.
func (u *MediaItemUpsertBulk) ClearContextBefore() *MediaItemUpsertBulk {
	return u.Update(func(s *MediaItemUpsert) {
		s.ClearContextBefore()
	})
}

// SetCaption sets the "caption" field.
func (u *MediaItemUpsertBulk) SetCaption(v string) *MediaItemUpsertBulk {
	return u.Update(func(s *MediaItemUpsert) {
		s.SetCaption(v)
	})
}

// UpdateCaption sets the "caption" field to the value that was provided on create.
func (u *MediaItemUpsertBulk) UpdateCaption() *MediaItemUpsertBulk {
	return u.Update(func(s *MediaItemUpsert) {
		s.UpdateCaption()
	})
}

// ClearCaption clears the value of the "caption" field.
func (u *MediaItemUpsertBulk) ClearCaption() *MediaItemUpsertBulk {
	return u.Update(func(s *MediaItemUpsert) {
		s.ClearCaption()
	})
}

// SetContextAfter sets the "context_after" field.
func (u *MediaItemUpsertBulk) SetContextAfter(v string) *MediaItemUpsertBulk {
	return u.Update(func(s *MediaItemUpsert) {
		s.SetContextAfter(v)
	})
}

// UpdateContextAfter sets the "context_after" field to the value that was provided on create.
func (u *MediaItemUpsertBulk) UpdateContextAfter() *MediaItemUpsertBulk {
	return u.Update(func(s *MediaItemUpsert) {
		s.UpdateContextAfter()
	})
}

// ClearContextAfter clears the value of the "context_after" field.
func (u *MediaItemUpsertBulk) ClearContextAfter() *MediaItemUpsertBulk {
	return u.Update(func(s *MediaItemUpsert) {
		s.ClearContextAfter()
	})
}

// SetPosition sets the "position" field.
func (u *MediaItemUpsertBulk) SetPosition(v int) *MediaItemUpsertBulk {
	return u.Update(func(s *MediaItemUpsert) {
		s.SetPosition(v)
	})
}

// AddPosition adds v to the "position" field.
func (u *MediaItemUpsertBulk) AddPosition(v int) *MediaItemUpsertBulk {
	return u.Update(func(s *MediaItemUpsert) {
		s.AddPosition(v)
	})
}

// UpdatePosition sets the "position" field to the value that was provided on create.
func (u *MediaItemUpsertBulk) UpdatePosition() *MediaItemUpsertBulk {
	return u.Update(func(s *MediaItemUpsert) {
		s.UpdatePosition()
	})
}

// Exec executes the query.
func (u *MediaItemUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the MediaItemCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for MediaItemCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MediaItemUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
