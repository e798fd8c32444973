// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/textloom/textloom/ent/mediaitem"
	"github.com/textloom/textloom/ent/predicate"
)

// MediaItemUpdate is the builder for updating MediaItem entities.
type MediaItemUpdate struct {
	config
	hooks    []Hook
	mutation *MediaItemMutation
}

// Where appends a list predicates to the MediaItemUpdate builder.
func (_u *MediaItemUpdate) Where(ps ...predicate.MediaItem) *MediaItemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOriginalURL sets the "original_url" field.
func (_u *MediaItemUpdate) SetOriginalURL(v string) *MediaItemUpdate {
	_u.mutation.SetOriginalURL(v)
	return _u
}

// SetNillableOriginalURL sets the "original_url" field if the given value is not nil.
func (_u *MediaItemUpdate) SetNillableOriginalURL(v *string) *MediaItemUpdate {
	if v != nil {
		_u.SetOriginalURL(*v)
	}
	return _u
}

// SetCloudURL sets the "cloud_url" field.
func (_u *MediaItemUpdate) SetCloudURL(v string) *MediaItemUpdate {
	_u.mutation.SetCloudURL(v)
	return _u
}

// SetNillableCloudURL sets the "cloud_url" field if the given value is not nil.
func (_u *MediaItemUpdate) SetNillableCloudURL(v *string) *MediaItemUpdate {
	if v != nil {
		_u.SetCloudURL(*v)
	}
	return _u
}

// ClearCloudURL clears the value of the "cloud_url" field.
func (_u *MediaItemUpdate) ClearCloudURL() *MediaItemUpdate {
	_u.mutation.ClearCloudURL()
	return _u
}

// SetLocalPath sets the "local_path" field.
func (_u *MediaItemUpdate) SetLocalPath(v string) *MediaItemUpdate {
	_u.mutation.SetLocalPath(v)
	return _u
}

// SetNillableLocalPath sets the "local_path" field if the given value is not nil.
func (_u *MediaItemUpdate) SetNillableLocalPath(v *string) *MediaItemUpdate {
	if v != nil {
		_u.SetLocalPath(*v)
	}
	return _u
}

// ClearLocalPath clears the value of the "local_path" field.
func (_u *MediaItemUpdate) ClearLocalPath() *MediaItemUpdate {
	_u.mutation.ClearLocalPath()
	return _u
}

// SetFilename sets the "filename" field.
func (_u *MediaItemUpdate) SetFilename(v string) *MediaItemUpdate {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *MediaItemUpdate) SetNillableFilename(v *string) *MediaItemUpdate {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// ClearFilename clears the value of the "filename" field.
func (_u *MediaItemUpdate) ClearFilename() *MediaItemUpdate {
	_u.mutation.ClearFilename()
	return _u
}

// SetMimeType sets the "mime_type" field.
func (_u *MediaItemUpdate) SetMimeType(v string) *MediaItemUpdate {
	_u.mutation.SetMimeType(v)
	return _u
}

// SetNillableMimeType sets the "mime_type" field if the given value is not nil.
func (_u *MediaItemUpdate) SetNillableMimeType(v *string) *MediaItemUpdate {
	if v != nil {
		_u.SetMimeType(*v)
	}
	return _u
}

// ClearMimeType clears the value of the "mime_type" field.
func (_u *MediaItemUpdate) ClearMimeType() *MediaItemUpdate {
	_u.mutation.ClearMimeType()
	return _u
}

// SetMediaType sets the "media_type" field.
func (_u *MediaItemUpdate) SetMediaType(v mediaitem.MediaType) *MediaItemUpdate {
	_u.mutation.SetMediaType(v)
	return _u
}

// SetNillableMediaType sets the "media_type" field if the given value is not nil.
func (_u *MediaItemUpdate) SetNillableMediaType(v *mediaitem.MediaType) *MediaItemUpdate {
	if v != nil {
		_u.SetMediaType(*v)
	}
	return _u
}

// SetFileSize sets the "file_size" field.
func (_u *MediaItemUpdate) SetFileSize(v int64) *MediaItemUpdate {
	_u.mutation.ResetFileSize()
	_u.mutation.SetFileSize(v)
	return _u
}

// SetNillableFileSize sets the "file_size" field if the given value is not nil.
func (_u *MediaItemUpdate) SetNillableFileSize(v *int64) *MediaItemUpdate {
	if v != nil {
		_u.SetFileSize(*v)
	}
	return _u
}

// AddFileSize adds value to the "file_size" field.
func (_u *MediaItemUpdate) AddFileSize(v int64) *MediaItemUpdate {
	_u.mutation.AddFileSize(v)
	return _u
}

// ClearFileSize clears the value of the "file_size" field.
func (_u *MediaItemUpdate) ClearFileSize() *MediaItemUpdate {
	_u.mutation.ClearFileSize()
	return _u
}

// SetWidth sets the "width" field.
func (_u *MediaItemUpdate) SetWidth(v int) *MediaItemUpdate {
	_u.mutation.ResetWidth()
	_u.mutation.SetWidth(v)
	return _u
}

// SetNillableWidth sets the "width" field if the given value is not nil.
func (_u *MediaItemUpdate) SetNillableWidth(v *int) *MediaItemUpdate {
	if v != nil {
		_u.SetWidth(*v)
	}
	return _u
}

// AddWidth adds value to the "width" field.
func (_u *MediaItemUpdate) AddWidth(v int) *MediaItemUpdate {
	_u.mutation.AddWidth(v)
	return _u
}

// ClearWidth clears the value of the "width" field.
func (_u *MediaItemUpdate) ClearWidth() *MediaItemUpdate {
	_u.mutation.ClearWidth()
	return _u
}

// SetHeight sets the "height" field.
func (_u *MediaItemUpdate) SetHeight(v int) *MediaItemUpdate {
	_u.mutation.ResetHeight()
	_u.mutation.SetHeight(v)
	return _u
}

// SetNillableHeight sets the "height" field if the given value is not nil.
func (_u *MediaItemUpdate) SetNillableHeight(v *int) *MediaItemUpdate {
	if v != nil {
		_u.SetHeight(*v)
	}
	return _u
}

// AddHeight adds value to the "height" field.
func (_u *MediaItemUpdate) AddHeight(v int) *MediaItemUpdate {
	_u.mutation.AddHeight(v)
	return _u
}

// ClearHeight clears the value of the "height" field.
func (_u *MediaItemUpdate) ClearHeight() *MediaItemUpdate {
	_u.mutation.ClearHeight()
	return _u
}

// SetDuration sets the "duration" field.
func (_u *MediaItemUpdate) SetDuration(v float64) *MediaItemUpdate {
	_u.mutation.ResetDuration()
	_u.mutation.SetDuration(v)
	return _u
}

// SetNillableDuration sets the "duration" field if the given value is not nil.
func (_u *MediaItemUpdate) SetNillableDuration(v *float64) *MediaItemUpdate {
	if v != nil {
		_u.SetDuration(*v)
	}
	return _u
}

// AddDuration adds value to the "duration" field.
func (_u *MediaItemUpdate) AddDuration(v float64) *MediaItemUpdate {
	_u.mutation.AddDuration(v)
	return _u
}

// ClearDuration clears the value of the "duration" field.
func (_u *MediaItemUpdate) ClearDuration() *MediaItemUpdate {
	_u.mutation.ClearDuration()
	return _u
}

// SetContextBefore sets the "context_before" field.
func (_u *MediaItemUpdate) SetContextBefore(v string) *MediaItemUpdate {
	_u.mutation.SetContextBefore(v)
	return _u
}

// SetNillableContextBefore sets the "context_before" field if the given value is not nil.
func (_u *MediaItemUpdate) SetNillableContextBefore(v *string) *MediaItemUpdate {
	if v != nil {
		_u.SetContextBefore(*v)
	}
	return _u
}

// ClearContextBefore clears the value of the "context_before" field.
func (_u *MediaItemUpdate) ClearContextBefore() *MediaItemUpdate {
	_u.mutation.ClearContextBefore()
	return _u
}

// SetCaption sets the "caption" field.
func (_u *MediaItemUpdate) SetCaption(v string) *MediaItemUpdate {
	_u.mutation.SetCaption(v)
	return _u
}

// SetNillableCaption sets the "caption" field if the given value is not nil.
func (_u *MediaItemUpdate) SetNillableCaption(v *string) *MediaItemUpdate {
	if v != nil {
		_u.SetCaption(*v)
	}
	return _u
}

// ClearCaption clears the value of the "caption" field.
func (_u *MediaItemUpdate) ClearCaption() *MediaItemUpdate {
	_u.mutation.ClearCaption()
	return _u
}

// SetContextAfter sets the "context_after" field.
func (_u *MediaItemUpdate) SetContextAfter(v string) *MediaItemUpdate {
	_u.mutation.SetContextAfter(v)
	return _u
}

// SetNillableContextAfter sets the "context_after" field if the given value is not nil.
func (_u *MediaItemUpdate) SetNillableContextAfter(v *string) *MediaItemUpdate {
	if v != nil {
		_u.SetContextAfter(*v)
	}
	return _u
}

// ClearContextAfter clears the value of the "context_after" field.
func (_u *MediaItemUpdate) ClearContextAfter() *MediaItemUpdate {
	_u.mutation.ClearContextAfter()
	return _u
}

// SetPosition sets the "position" field.
func (_u *MediaItemUpdate) SetPosition(v int) *MediaItemUpdate {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *MediaItemUpdate) SetNillablePosition(v *int) *MediaItemUpdate {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *MediaItemUpdate) AddPosition(v int) *MediaItemUpdate {
	_u.mutation.AddPosition(v)
	return _u
}

// Mutation returns the MediaItemMutation object of the builder.
func (_u *MediaItemUpdate) Mutation() *MediaItemMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MediaItemUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MediaItemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MediaItemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MediaItemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MediaItemUpdate) check() error {
	if v, ok := _u.mutation.MediaType(); ok {
		if err := mediaitem.MediaTypeValidator(v); err != nil {
			return &ValidationError{Name: "media_type", err: fmt.Errorf(`ent: validator failed for field "MediaItem.media_type": %w`, err)}
		}
	}
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "MediaItem.task"`)
	}
	return nil
}

func (_u *MediaItemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(mediaitem.Table, mediaitem.Columns, sqlgraph.NewFieldSpec(mediaitem.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.OriginalURL(); ok {
		_spec.SetField(mediaitem.FieldOriginalURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.CloudURL(); ok {
		_spec.SetField(mediaitem.FieldCloudURL, field.TypeString, value)
	}
	if _u.mutation.CloudURLCleared() {
		_spec.ClearField(mediaitem.FieldCloudURL, field.TypeString)
	}
	if value, ok := _u.mutation.LocalPath(); ok {
		_spec.SetField(mediaitem.FieldLocalPath, field.TypeString, value)
	}
	if _u.mutation.LocalPathCleared() {
		_spec.ClearField(mediaitem.FieldLocalPath, field.TypeString)
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(mediaitem.FieldFilename, field.TypeString, value)
	}
	if _u.mutation.FilenameCleared() {
		_spec.ClearField(mediaitem.FieldFilename, field.TypeString)
	}
	if value, ok := _u.mutation.MimeType(); ok {
		_spec.SetField(mediaitem.FieldMimeType, field.TypeString, value)
	}
	if _u.mutation.MimeTypeCleared() {
		_spec.ClearField(mediaitem.FieldMimeType, field.TypeString)
	}
	if value, ok := _u.mutation.MediaType(); ok {
		_spec.SetField(mediaitem.FieldMediaType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.FileSize(); ok {
		_spec.SetField(mediaitem.FieldFileSize, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedFileSize(); ok {
		_spec.AddField(mediaitem.FieldFileSize, field.TypeInt64, value)
	}
	if _u.mutation.FileSizeCleared() {
		_spec.ClearField(mediaitem.FieldFileSize, field.TypeInt64)
	}
	if value, ok := _u.mutation.Width(); ok {
		_spec.SetField(mediaitem.FieldWidth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWidth(); ok {
		_spec.AddField(mediaitem.FieldWidth, field.TypeInt, value)
	}
	if _u.mutation.WidthCleared() {
		_spec.ClearField(mediaitem.FieldWidth, field.TypeInt)
	}
	if value, ok := _u.mutation.Height(); ok {
		_spec.SetField(mediaitem.FieldHeight, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHeight(); ok {
		_spec.AddField(mediaitem.FieldHeight, field.TypeInt, value)
	}
	if _u.mutation.HeightCleared() {
		_spec.ClearField(mediaitem.FieldHeight, field.TypeInt)
	}
	if value, ok := _u.mutation.Duration(); ok {
		_spec.SetField(mediaitem.FieldDuration, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDuration(); ok {
		_spec.AddField(mediaitem.FieldDuration, field.TypeFloat64, value)
	}
	if _u.mutation.DurationCleared() {
		_spec.ClearField(mediaitem.FieldDuration, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ContextBefore(); ok {
		_spec.SetField(mediaitem.FieldContextBefore, field.TypeString, value)
	}
	if _u.mutation.ContextBeforeCleared() {
		_spec.ClearField(mediaitem.FieldContextBefore, field.TypeString)
	}
	if value, ok := _u.mutation.Caption(); ok {
		_spec.SetField(mediaitem.FieldCaption, field.TypeString, value)
	}
	if _u.mutation.CaptionCleared() {
		_spec.ClearField(mediaitem.FieldCaption, field.TypeString)
	}
	if value, ok := _u.mutation.ContextAfter(); ok {
		_spec.SetField(mediaitem.FieldContextAfter, field.TypeString, value)
	}
	if _u.mutation.ContextAfterCleared() {
		_spec.ClearField(mediaitem.FieldContextAfter, field.TypeString)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(mediaitem.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(mediaitem.FieldPosition, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{mediaitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MediaItemUpdateOne is the builder for updating a single MediaItem entity.
type MediaItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MediaItemMutation
}

// SetOriginalURL sets the "original_url" field.
func (_u *MediaItemUpdateOne) SetOriginalURL(v string) *MediaItemUpdateOne {
	_u.mutation.SetOriginalURL(v)
	return _u
}

// SetNillableOriginalURL sets the "original_url" field if the given value is not nil.
func (_u *MediaItemUpdateOne) SetNillableOriginalURL(v *string) *MediaItemUpdateOne {
	if v != nil {
		_u.SetOriginalURL(*v)
	}
	return _u
}

// SetCloudURL sets the "cloud_url" field.
func (_u *MediaItemUpdateOne) SetCloudURL(v string) *MediaItemUpdateOne {
	_u.mutation.SetCloudURL(v)
	return _u
}

// SetNillableCloudURL sets the "cloud_url" field if the given value is not nil.
func (_u *MediaItemUpdateOne) SetNillableCloudURL(v *string) *MediaItemUpdateOne {
	if v != nil {
		_u.SetCloudURL(*v)
	}
	return _u
}

// ClearCloudURL clears the value of the "cloud_url" field.
func (_u *MediaItemUpdateOne) ClearCloudURL() *MediaItemUpdateOne {
	_u.mutation.ClearCloudURL()
	return _u
}

// SetLocalPath sets the "local_path" field.
func (_u *MediaItemUpdateOne) SetLocalPath(v string) *MediaItemUpdateOne {
	_u.mutation.SetLocalPath(v)
	return _u
}

// SetNillableLocalPath sets the "local_path" field if the given value is not nil.
func (_u *MediaItemUpdateOne) SetNillableLocalPath(v *string) *MediaItemUpdateOne {
	if v != nil {
		_u.SetLocalPath(*v)
	}
	return _u
}

// ClearLocalPath clears the value of the "local_path" field.
func (_u *MediaItemUpdateOne) ClearLocalPath() *MediaItemUpdateOne {
	_u.mutation.ClearLocalPath()
	return _u
}

// SetFilename sets the "filename" field.
func (_u *MediaItemUpdateOne) SetFilename(v string) *MediaItemUpdateOne {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *MediaItemUpdateOne) SetNillableFilename(v *string) *MediaItemUpdateOne {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// ClearFilename clears the value of the "filename" field.
func (_u *MediaItemUpdateOne) ClearFilename() *MediaItemUpdateOne {
	_u.mutation.ClearFilename()
	return _u
}

// SetMimeType sets the "mime_type" field.
func (_u *MediaItemUpdateOne) SetMimeType(v string) *MediaItemUpdateOne {
	_u.mutation.SetMimeType(v)
	return _u
}

// SetNillableMimeType sets the "mime_type" field if the given value is not nil.
func (_u *MediaItemUpdateOne) SetNillableMimeType(v *string) *MediaItemUpdateOne {
	if v != nil {
		_u.SetMimeType(*v)
	}
	return _u
}

// ClearMimeType clears the value of the "mime_type" field.
func (_u *MediaItemUpdateOne) ClearMimeType() *MediaItemUpdateOne {
	_u.mutation.ClearMimeType()
	return _u
}

// SetMediaType sets the "media_type" field.
func (_u *MediaItemUpdateOne) SetMediaType(v mediaitem.MediaType) *MediaItemUpdateOne {
	_u.mutation.SetMediaType(v)
	return _u
}

// SetNillableMediaType sets the "media_type" field if the given value is not nil.
func (_u *MediaItemUpdateOne) SetNillableMediaType(v *mediaitem.MediaType) *MediaItemUpdateOne {
	if v != nil {
		_u.SetMediaType(*v)
	}
	return _u
}

// SetFileSize sets the "file_size" field.
func (_u *MediaItemUpdateOne) SetFileSize(v int64) *MediaItemUpdateOne {
	_u.mutation.ResetFileSize()
	_u.mutation.SetFileSize(v)
	return _u
}

// SetNillableFileSize sets the "file_size" field if the given value is not nil.
func (_u *MediaItemUpdateOne) SetNillableFileSize(v *int64) *MediaItemUpdateOne {
	if v != nil {
		_u.SetFileSize(*v)
	}
	return _u
}

// AddFileSize adds value to the "file_size" field.
func (_u *MediaItemUpdateOne) AddFileSize(v int64) *MediaItemUpdateOne {
	_u.mutation.AddFileSize(v)
	return _u
}

// ClearFileSize clears the value of the "file_size" field.
func (_u *MediaItemUpdateOne) ClearFileSize() *MediaItemUpdateOne {
	_u.mutation.ClearFileSize()
	return _u
}

// SetWidth sets the "width" field.
func (_u *MediaItemUpdateOne) SetWidth(v int) *MediaItemUpdateOne {
	_u.mutation.ResetWidth()
	_u.mutation.SetWidth(v)
	return _u
}

// SetNillableWidth sets the "width" field if the given value is not nil.
func (_u *MediaItemUpdateOne) SetNillableWidth(v *int) *MediaItemUpdateOne {
	if v != nil {
		_u.SetWidth(*v)
	}
	return _u
}

// AddWidth adds value to the "width" field.
func (_u *MediaItemUpdateOne) AddWidth(v int) *MediaItemUpdateOne {
	_u.mutation.AddWidth(v)
	return _u
}

// ClearWidth clears the value of the "width" field.
func (_u *MediaItemUpdateOne) ClearWidth() *MediaItemUpdateOne {
	_u.mutation.ClearWidth()
	return _u
}

// SetHeight sets the "height" field.
func (_u *MediaItemUpdateOne) SetHeight(v int) *MediaItemUpdateOne {
	_u.mutation.ResetHeight()
	_u.mutation.SetHeight(v)
	return _u
}

// SetNillableHeight sets the "height" field if the given value is not nil.
func (_u *MediaItemUpdateOne) SetNillableHeight(v *int) *MediaItemUpdateOne {
	if v != nil {
		_u.SetHeight(*v)
	}
	return _u
}

// AddHeight adds value to the "height" field.
func (_u *MediaItemUpdateOne) AddHeight(v int) *MediaItemUpdateOne {
	_u.mutation.AddHeight(v)
	return _u
}

// ClearHeight clears the value of the "height" field.
func (_u *MediaItemUpdateOne) ClearHeight() *MediaItemUpdateOne {
	_u.mutation.ClearHeight()
	return _u
}

// SetDuration sets the "duration" field.
func (_u *MediaItemUpdateOne) SetDuration(v float64) *MediaItemUpdateOne {
	_u.mutation.ResetDuration()
	_u.mutation.SetDuration(v)
	return _u
}

// SetNillableDuration sets the "duration" field if the given value is not nil.
func (_u *MediaItemUpdateOne) SetNillableDuration(v *float64) *MediaItemUpdateOne {
	if v != nil {
		_u.SetDuration(*v)
	}
	return _u
}

// AddDuration adds value to the "duration" field.
func (_u *MediaItemUpdateOne) AddDuration(v float64) *MediaItemUpdateOne {
	_u.mutation.AddDuration(v)
	return _u
}

// ClearDuration clears the value of the "duration" field.
func (_u *MediaItemUpdateOne) ClearDuration() *MediaItemUpdateOne {
	_u.mutation.ClearDuration()
	return _u
}

// SetContextBefore sets the "context_before" field.
func (_u *MediaItemUpdateOne) SetContextBefore(v string) *MediaItemUpdateOne {
	_u.mutation.SetContextBefore(v)
	return _u
}

// SetNillableContextBefore sets the "context_before" field if the given value is not nil.
func (_u *MediaItemUpdateOne) SetNillableContextBefore(v *string) *MediaItemUpdateOne {
	if v != nil {
		_u.SetContextBefore(*v)
	}
	return _u
}

// ClearContextBefore clears the value of the "context_before" field.
func (_u *MediaItemUpdateOne) ClearContextBefore() *MediaItemUpdateOne {
	_u.mutation.ClearContextBefore()
	return _u
}

// SetCaption sets the "caption" field.
func (_u *MediaItemUpdateOne) SetCaption(v string) *MediaItemUpdateOne {
	_u.mutation.SetCaption(v)
	return _u
}

// SetNillableCaption sets the "caption" field if the given value is not nil.
func (_u *MediaItemUpdateOne) SetNillableCaption(v *string) *MediaItemUpdateOne {
	if v != nil {
		_u.SetCaption(*v)
	}
	return _u
}

// ClearCaption clears the value of the "caption" field.
func (_u *MediaItemUpdateOne) ClearCaption() *MediaItemUpdateOne {
	_u.mutation.ClearCaption()
	return _u
}

// SetContextAfter sets the "context_after" field.
func (_u *MediaItemUpdateOne) SetContextAfter(v string) *MediaItemUpdateOne {
	_u.mutation.SetContextAfter(v)
	return _u
}

// SetNillableContextAfter sets the "context_after" field if the given value is not nil.
func (_u *MediaItemUpdateOne) SetNillableContextAfter(v *string) *MediaItemUpdateOne {
	if v != nil {
		_u.SetContextAfter(*v)
	}
	return _u
}

// ClearContextAfter clears the value of the "context_after" field.
func (_u *MediaItemUpdateOne) ClearContextAfter() *MediaItemUpdateOne {
	_u.mutation.ClearContextAfter()
	return _u
}

// SetPosition sets the "position" field.
func (_u *MediaItemUpdateOne) SetPosition(v int) *MediaItemUpdateOne {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *MediaItemUpdateOne) SetNillablePosition(v *int) *MediaItemUpdateOne {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *MediaItemUpdateOne) AddPosition(v int) *MediaItemUpdateOne {
	_u.mutation.AddPosition(v)
	return _u
}

// Mutation returns the MediaItemMutation object of the builder.
func (_u *MediaItemUpdateOne) Mutation() *MediaItemMutation {
	return _u.mutation
}

// Where appends a list predicates to the MediaItemUpdate builder.
func (_u *MediaItemUpdateOne) Where(ps ...predicate.MediaItem) *MediaItemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MediaItemUpdateOne) Select(field string, fields ...string) *MediaItemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MediaItem entity.
func (_u *MediaItemUpdateOne) Save(ctx context.Context) (*MediaItem, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MediaItemUpdateOne) SaveX(ctx context.Context) *MediaItem {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MediaItemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MediaItemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MediaItemUpdateOne) check() error {
	if v, ok := _u.mutation.MediaType(); ok {
		if err := mediaitem.MediaTypeValidator(v); err != nil {
			return &ValidationError{Name: "media_type", err: fmt.Errorf(`ent: validator failed for field "MediaItem.media_type": %w`, err)}
		}
	}
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "MediaItem.task"`)
	}
	return nil
}

func (_u *MediaItemUpdateOne) sqlSave(ctx context.Context) (_node *MediaItem, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(mediaitem.Table, mediaitem.Columns, sqlgraph.NewFieldSpec(mediaitem.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MediaItem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, mediaitem.FieldID)
		for _, f := range fields {
			if !mediaitem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != mediaitem.FieldID {
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
	if value, ok := _u.mutation.OriginalURL(); ok {
		_spec.SetField(mediaitem.FieldOriginalURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.CloudURL(); ok {
		_spec.SetField(mediaitem.FieldCloudURL, field.TypeString, value)
	}
	if _u.mutation.CloudURLCleared() {
		_spec.ClearField(mediaitem.FieldCloudURL, field.TypeString)
	}
	if value, ok := _u.mutation.LocalPath(); ok {
		_spec.SetField(mediaitem.FieldLocalPath, field.TypeString, value)
	}
	if _u.mutation.LocalPathCleared() {
		_spec.ClearField(mediaitem.FieldLocalPath, field.TypeString)
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(mediaitem.FieldFilename, field.TypeString, value)
	}
	if _u.mutation.FilenameCleared() {
		_spec.ClearField(mediaitem.FieldFilename, field.TypeString)
	}
	if value, ok := _u.mutation.MimeType(); ok {
		_spec.SetField(mediaitem.FieldMimeType, field.TypeString, value)
	}
	if _u.mutation.MimeTypeCleared() {
		_spec.ClearField(mediaitem.FieldMimeType, field.TypeString)
	}
	if value, ok := _u.mutation.MediaType(); ok {
		_spec.SetField(mediaitem.FieldMediaType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.FileSize(); ok {
		_spec.SetField(mediaitem.FieldFileSize, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedFileSize(); ok {
		_spec.AddField(mediaitem.FieldFileSize, field.TypeInt64, value)
	}
	if _u.mutation.FileSizeCleared() {
		_spec.ClearField(mediaitem.FieldFileSize, field.TypeInt64)
	}
	if value, ok := _u.mutation.Width(); ok {
		_spec.SetField(mediaitem.FieldWidth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWidth(); ok {
		_spec.AddField(mediaitem.FieldWidth, field.TypeInt, value)
	}
	if _u.mutation.WidthCleared() {
		_spec.ClearField(mediaitem.FieldWidth, field.TypeInt)
	}
	if value, ok := _u.mutation.Height(); ok {
		_spec.SetField(mediaitem.FieldHeight, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHeight(); ok {
		_spec.AddField(mediaitem.FieldHeight, field.TypeInt, value)
	}
	if _u.mutation.HeightCleared() {
		_spec.ClearField(mediaitem.FieldHeight, field.TypeInt)
	}
	if value, ok := _u.mutation.Duration(); ok {
		_spec.SetField(mediaitem.FieldDuration, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDuration(); ok {
		_spec.AddField(mediaitem.FieldDuration, field.TypeFloat64, value)
	}
	if _u.mutation.DurationCleared() {
		_spec.ClearField(mediaitem.FieldDuration, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ContextBefore(); ok {
		_spec.SetField(mediaitem.FieldContextBefore, field.TypeString, value)
	}
	if _u.mutation.ContextBeforeCleared() {
		_spec.ClearField(mediaitem.FieldContextBefore, field.TypeString)
	}
	if value, ok := _u.mutation.Caption(); ok {
		_spec.SetField(mediaitem.FieldCaption, field.TypeString, value)
	}
	if _u.mutation.CaptionCleared() {
		_spec.ClearField(mediaitem.FieldCaption, field.TypeString)
	}
	if value, ok := _u.mutation.ContextAfter(); ok {
		_spec.SetField(mediaitem.FieldContextAfter, field.TypeString, value)
	}
	if _u.mutation.ContextAfterCleared() {
		_spec.ClearField(mediaitem.FieldContextAfter, field.TypeString)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(mediaitem.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(mediaitem.FieldPosition, field.TypeInt, value)
	}
	_node = &MediaItem{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{mediaitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
