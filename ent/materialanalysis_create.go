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
	"github.com/textloom/textloom/ent/task"
)

// MaterialAnalysisCreate is the builder for creating a MaterialAnalysis entity.
type MaterialAnalysisCreate struct {
	config
	mutation *MaterialAnalysisMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTaskID sets the "task_id" field.
func (_c *MaterialAnalysisCreate) SetTaskID(v string) *MaterialAnalysisCreate {
	_c.mutation.SetTaskID(v)
	return _c
}

// SetMediaItemID sets the "media_item_id" field.
func (_c *MaterialAnalysisCreate) SetMediaItemID(v string) *MaterialAnalysisCreate {
	_c.mutation.SetMediaItemID(v)
	return _c
}

// SetOriginalURL sets the "original_url" field.
func (_c *MaterialAnalysisCreate) SetOriginalURL(v string) *MaterialAnalysisCreate {
	_c.mutation.SetOriginalURL(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *MaterialAnalysisCreate) SetStatus(v materialanalysis.Status) *MaterialAnalysisCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *MaterialAnalysisCreate) SetNillableStatus(v *materialanalysis.Status) *MaterialAnalysisCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetAiDescription sets the "ai_description" field.
func (_c *MaterialAnalysisCreate) SetAiDescription(v string) *MaterialAnalysisCreate {
	_c.mutation.SetAiDescription(v)
	return _c
}

// SetNillableAiDescription sets the "ai_description" field if the given value is not nil.
func (_c *MaterialAnalysisCreate) SetNillableAiDescription(v *string) *MaterialAnalysisCreate {
	if v != nil {
		_c.SetAiDescription(*v)
	}
	return _c
}

// SetKeyObjects sets the "key_objects" field.
func (_c *MaterialAnalysisCreate) SetKeyObjects(v []string) *MaterialAnalysisCreate {
	_c.mutation.SetKeyObjects(v)
	return _c
}

// SetEmotionalTone sets the "emotional_tone" field.
func (_c *MaterialAnalysisCreate) SetEmotionalTone(v string) *MaterialAnalysisCreate {
	_c.mutation.SetEmotionalTone(v)
	return _c
}

// SetNillableEmotionalTone sets the "emotional_tone" field if the given value is not nil.
func (_c *MaterialAnalysisCreate) SetNillableEmotionalTone(v *string) *MaterialAnalysisCreate {
	if v != nil {
		_c.SetEmotionalTone(*v)
	}
	return _c
}

// SetVisualStyle sets the "visual_style" field.
func (_c *MaterialAnalysisCreate) SetVisualStyle(v string) *MaterialAnalysisCreate {
	_c.mutation.SetVisualStyle(v)
	return _c
}

// SetNillableVisualStyle sets the "visual_style" field if the given value is not nil.
func (_c *MaterialAnalysisCreate) SetNillableVisualStyle(v *string) *MaterialAnalysisCreate {
	if v != nil {
		_c.SetVisualStyle(*v)
	}
	return _c
}

// SetQualityScore sets the "quality_score" field.
func (_c *MaterialAnalysisCreate) SetQualityScore(v float64) *MaterialAnalysisCreate {
	_c.mutation.SetQualityScore(v)
	return _c
}

// SetNillableQualityScore sets the "quality_score" field if the given value is not nil.
func (_c *MaterialAnalysisCreate) SetNillableQualityScore(v *float64) *MaterialAnalysisCreate {
	if v != nil {
		_c.SetQualityScore(*v)
	}
	return _c
}

// SetQualityLevel sets the "quality_level" field.
func (_c *MaterialAnalysisCreate) SetQualityLevel(v string) *MaterialAnalysisCreate {
	_c.mutation.SetQualityLevel(v)
	return _c
}

// SetNillableQualityLevel sets the "quality_level" field if the given value is not nil.
func (_c *MaterialAnalysisCreate) SetNillableQualityLevel(v *string) *MaterialAnalysisCreate {
	if v != nil {
		_c.SetQualityLevel(*v)
	}
	return _c
}

// SetUsageSuggestions sets the "usage_suggestions" field.
func (_c *MaterialAnalysisCreate) SetUsageSuggestions(v []string) *MaterialAnalysisCreate {
	_c.mutation.SetUsageSuggestions(v)
	return _c
}

// SetKeyframeUrls sets the "keyframe_urls" field.
func (_c *MaterialAnalysisCreate) SetKeyframeUrls(v []string) *MaterialAnalysisCreate {
	_c.mutation.SetKeyframeUrls(v)
	return _c
}

// SetFps sets the "fps" field.
func (_c *MaterialAnalysisCreate) SetFps(v float64) *MaterialAnalysisCreate {
	_c.mutation.SetFps(v)
	return _c
}

// SetNillableFps sets the "fps" field if the given value is not nil.
func (_c *MaterialAnalysisCreate) SetNillableFps(v *float64) *MaterialAnalysisCreate {
	if v != nil {
		_c.SetFps(*v)
	}
	return _c
}

// SetWidth sets the "width" field.
func (_c *MaterialAnalysisCreate) SetWidth(v int) *MaterialAnalysisCreate {
	_c.mutation.SetWidth(v)
	return _c
}

// SetNillableWidth sets the "width" field if the given value is not nil.
func (_c *MaterialAnalysisCreate) SetNillableWidth(v *int) *MaterialAnalysisCreate {
	if v != nil {
		_c.SetWidth(*v)
	}
	return _c
}

// SetHeight sets the "height" field.
func (_c *MaterialAnalysisCreate) SetHeight(v int) *MaterialAnalysisCreate {
	_c.mutation.SetHeight(v)
	return _c
}

// SetNillableHeight sets the "height" field if the given value is not nil.
func (_c *MaterialAnalysisCreate) SetNillableHeight(v *int) *MaterialAnalysisCreate {
	if v != nil {
		_c.SetHeight(*v)
	}
	return _c
}

// SetDuration sets the "duration" field.
func (_c *MaterialAnalysisCreate) SetDuration(v float64) *MaterialAnalysisCreate {
	_c.mutation.SetDuration(v)
	return _c
}

// SetNillableDuration sets the "duration" field if the given value is not nil.
func (_c *MaterialAnalysisCreate) SetNillableDuration(v *float64) *MaterialAnalysisCreate {
	if v != nil {
		_c.SetDuration(*v)
	}
	return _c
}

// SetRawResponse sets the "raw_response" field.
func (_c *MaterialAnalysisCreate) SetRawResponse(v string) *MaterialAnalysisCreate {
	_c.mutation.SetRawResponse(v)
	return _c
}

// SetNillableRawResponse sets the "raw_response" field if the given value is not nil.
func (_c *MaterialAnalysisCreate) SetNillableRawResponse(v *string) *MaterialAnalysisCreate {
	if v != nil {
		_c.SetRawResponse(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *MaterialAnalysisCreate) SetErrorMessage(v string) *MaterialAnalysisCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *MaterialAnalysisCreate) SetNillableErrorMessage(v *string) *MaterialAnalysisCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *MaterialAnalysisCreate) SetCreatedAt(v time.Time) *MaterialAnalysisCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MaterialAnalysisCreate) SetNillableCreatedAt(v *time.Time) *MaterialAnalysisCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *MaterialAnalysisCreate) SetUpdatedAt(v time.Time) *MaterialAnalysisCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *MaterialAnalysisCreate) SetNillableUpdatedAt(v *time.Time) *MaterialAnalysisCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *MaterialAnalysisCreate) SetID(v string) *MaterialAnalysisCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetTask sets the "task" edge to the Task entity.
func (_c *MaterialAnalysisCreate) SetTask(v *Task) *MaterialAnalysisCreate {
	return _c.SetTaskID(v.ID)
}

// Mutation returns the MaterialAnalysisMutation object of the builder.
func (_c *MaterialAnalysisCreate) Mutation() *MaterialAnalysisMutation {
	return _c.mutation
}

// Save creates the MaterialAnalysis in the database.
func (_c *MaterialAnalysisCreate) Save(ctx context.Context) (*MaterialAnalysis, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MaterialAnalysisCreate) SaveX(ctx context.Context) *MaterialAnalysis {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MaterialAnalysisCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MaterialAnalysisCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MaterialAnalysisCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := materialanalysis.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := materialanalysis.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := materialanalysis.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MaterialAnalysisCreate) check() error {
	if _, ok := _c.mutation.TaskID(); !ok {
		return &ValidationError{Name: "task_id", err: errors.New(`ent: missing required field "MaterialAnalysis.task_id"`)}
	}
	if _, ok := _c.mutation.MediaItemID(); !ok {
		return &ValidationError{Name: "media_item_id", err: errors.New(`ent: missing required field "MaterialAnalysis.media_item_id"`)}
	}
	if _, ok := _c.mutation.OriginalURL(); !ok {
		return &ValidationError{Name: "original_url", err: errors.New(`ent: missing required field "MaterialAnalysis.original_url"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "MaterialAnalysis.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := materialanalysis.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "MaterialAnalysis.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "MaterialAnalysis.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "MaterialAnalysis.updated_at"`)}
	}
	if len(_c.mutation.TaskIDs()) == 0 {
		return &ValidationError{Name: "task", err: errors.New(`ent: missing required edge "MaterialAnalysis.task"`)}
	}
	return nil
}

func (_c *MaterialAnalysisCreate) sqlSave(ctx context.Context) (*MaterialAnalysis, error) {
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
			return nil, fmt.Errorf("unexpected MaterialAnalysis.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *MaterialAnalysisCreate) createSpec() (*MaterialAnalysis, *sqlgraph.CreateSpec) {
	var (
		_node = &MaterialAnalysis{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(materialanalysis.Table, sqlgraph.NewFieldSpec(materialanalysis.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.MediaItemID(); ok {
		_spec.SetField(materialanalysis.FieldMediaItemID, field.TypeString, value)
		_node.MediaItemID = value
	}
	if value, ok := _c.mutation.OriginalURL(); ok {
		_spec.SetField(materialanalysis.FieldOriginalURL, field.TypeString, value)
		_node.OriginalURL = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(materialanalysis.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.AiDescription(); ok {
		_spec.SetField(materialanalysis.FieldAiDescription, field.TypeString, value)
		_node.AiDescription = value
	}
	if value, ok := _c.mutation.KeyObjects(); ok {
		_spec.SetField(materialanalysis.FieldKeyObjects, field.TypeJSON, value)
		_node.KeyObjects = value
	}
	if value, ok := _c.mutation.EmotionalTone(); ok {
		_spec.SetField(materialanalysis.FieldEmotionalTone, field.TypeString, value)
		_node.EmotionalTone = value
	}
	if value, ok := _c.mutation.VisualStyle(); ok {
		_spec.SetField(materialanalysis.FieldVisualStyle, field.TypeString, value)
		_node.VisualStyle = value
	}
	if value, ok := _c.mutation.QualityScore(); ok {
		_spec.SetField(materialanalysis.FieldQualityScore, field.TypeFloat64, value)
		_node.QualityScore = value
	}
	if value, ok := _c.mutation.QualityLevel(); ok {
		_spec.SetField(materialanalysis.FieldQualityLevel, field.TypeString, value)
		_node.QualityLevel = value
	}
	if value, ok := _c.mutation.UsageSuggestions(); ok {
		_spec.SetField(materialanalysis.FieldUsageSuggestions, field.TypeJSON, value)
		_node.UsageSuggestions = value
	}
	if value, ok := _c.mutation.KeyframeUrls(); ok {
		_spec.SetField(materialanalysis.FieldKeyframeUrls, field.TypeJSON, value)
		_node.KeyframeUrls = value
	}
	if value, ok := _c.mutation.Fps(); ok {
		_spec.SetField(materialanalysis.FieldFps, field.TypeFloat64, value)
		_node.Fps = value
	}
	if value, ok := _c.mutation.Width(); ok {
		_spec.SetField(materialanalysis.FieldWidth, field.TypeInt, value)
		_node.Width = value
	}
	if value, ok := _c.mutation.Height(); ok {
		_spec.SetField(materialanalysis.FieldHeight, field.TypeInt, value)
		_node.Height = value
	}
	if value, ok := _c.mutation.Duration(); ok {
		_spec.SetField(materialanalysis.FieldDuration, field.TypeFloat64, value)
		_node.Duration = value
	}
	if value, ok := _c.mutation.RawResponse(); ok {
		_spec.SetField(materialanalysis.FieldRawResponse, field.TypeString, value)
		_node.RawResponse = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(materialanalysis.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(materialanalysis.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(materialanalysis.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.TaskIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   materialanalysis.TaskTable,
			Columns: []string{materialanalysis.TaskColumn},
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
//	client.MaterialAnalysis.Create().
//		SetTaskID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MaterialAnalysisUpsert) {
//			SetTaskID(v+v).
//		}).
//		Exec(ctx)
func (_c *MaterialAnalysisCreate) OnConflict(opts ...sql.ConflictOption) *MaterialAnalysisUpsertOne {
	_c.conflict = opts
	return &MaterialAnalysisUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.MaterialAnalysis.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MaterialAnalysisCreate) OnConflictColumns(columns ...string) *MaterialAnalysisUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MaterialAnalysisUpsertOne{
		create: _c,
	}
}

type (
	// MaterialAnalysisUpsertOne is the builder for "upsert"-ing
	//  one MaterialAnalysis node.
	MaterialAnalysisUpsertOne struct {
		create *MaterialAnalysisCreate
	}

	// MaterialAnalysisUpsert is the "OnConflict" setter.
	MaterialAnalysisUpsert struct {
		*sql.UpdateSet
	}
)

// SetMediaItemID sets the "media_item_id" field.
func (u *MaterialAnalysisUpsert) SetMediaItemID(v string) *MaterialAnalysisUpsert {
	u.Set(materialanalysis.FieldMediaItemID, v)
	return u
}

// UpdateMediaItemID sets the "media_item_id" field to the value that was provided on create.
func (u *MaterialAnalysisUpsert) UpdateMediaItemID() *MaterialAnalysisUpsert {
	u.SetExcluded(materialanalysis.FieldMediaItemID)
	return u
}

// SetOriginalURL sets the "original_url" field.
func (u *MaterialAnalysisUpsert) SetOriginalURL(v string) *MaterialAnalysisUpsert {
	u.Set(materialanalysis.FieldOriginalURL, v)
	return u
}

// UpdateOriginalURL sets the "original_url" field to the value that was provided on create.
func (u *MaterialAnalysisUpsert) UpdateOriginalURL() *MaterialAnalysisUpsert {
	u.SetExcluded(materialanalysis.FieldOriginalURL)
	return u
}

// SetStatus sets the "status" field.
func (u *MaterialAnalysisUpsert) SetStatus(v materialanalysis.Status) *MaterialAnalysisUpsert {
	u.Set(materialanalysis.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *MaterialAnalysisUpsert) UpdateStatus() *MaterialAnalysisUpsert {
	u.SetExcluded(materialanalysis.FieldStatus)
	return u
}

// SetAiDescription sets the "ai_description" field.
func (u *MaterialAnalysisUpsert) SetAiDescription(v string) *MaterialAnalysisUpsert {
	u.Set(materialanalysis.FieldAiDescription, v)
	return u
}

// UpdateAiDescription sets the "ai_description" field to the value that was provided on create.
func (u *MaterialAnalysisUpsert) UpdateAiDescription() *MaterialAnalysisUpsert {
	u.SetExcluded(materialanalysis.FieldAiDescription)
	return u
}

// ClearAiDescription clears the value of the "ai_description" field.
func (u *MaterialAnalysisUpsert) ClearAiDescription() *MaterialAnalysisUpsert {
	u.SetNull(materialanalysis.FieldAiDescription)
	return u
}

// SetKeyObjects sets the "key_objects" field.
func (u *MaterialAnalysisUpsert) SetKeyObjects(v []string) *MaterialAnalysisUpsert {
	u.Set(materialanalysis.FieldKeyObjects, v)
	return u
}

// UpdateKeyObjects sets the "key_objects" field to the value that was provided on create.
func (u *MaterialAnalysisUpsert) UpdateKeyObjects() *MaterialAnalysisUpsert {
	u.SetExcluded(materialanalysis.FieldKeyObjects)
	return u
}

// ClearKeyObjects clears the value of the "key_objects" field.
func (u *MaterialAnalysisUpsert) ClearKeyObjects() *MaterialAnalysisUpsert {
	u.SetNull(materialanalysis.FieldKeyObjects)
	return u
}

// SetEmotionalTone sets the "emotional_tone" field.
func (u *MaterialAnalysisUpsert) SetEmotionalTone(v string) *MaterialAnalysisUpsert {
	u.Set(materialanalysis.FieldEmotionalTone, v)
	return u
}

// UpdateEmotionalTone sets the "emotional_tone" field to the value that was provided on create.
func (u *MaterialAnalysisUpsert) UpdateEmotionalTone() *MaterialAnalysisUpsert {
	u.SetExcluded(materialanalysis.FieldEmotionalTone)
	return u
}

// ClearEmotionalTone clears the value of the "emotional_tone" field.
func (u *MaterialAnalysisUpsert) ClearEmotionalTone() *MaterialAnalysisUpsert {
	u.SetNull(materialanalysis.FieldEmotionalTone)
	return u
}

// SetVisualStyle sets the "visual_style" field.
func (u *MaterialAnalysisUpsert) SetVisualStyle(v string) *MaterialAnalysisUpsert {
	u.Set(materialanalysis.FieldVisualStyle, v)
	return u
}

// UpdateVisualStyle sets the "visual_style" field to the value that was provided on create.
func (u *MaterialAnalysisUpsert) UpdateVisualStyle() *MaterialAnalysisUpsert {
	u.SetExcluded(materialanalysis.FieldVisualStyle)
	return u
}

// ClearVisualStyle clears the value of the "visual_style" field.
func (u *MaterialAnalysisUpsert) ClearVisualStyle() *MaterialAnalysisUpsert {
	u.SetNull(materialanalysis.FieldVisualStyle)
	return u
}

// SetQualityScore sets the "quality_score" field.
func (u *MaterialAnalysisUpsert) SetQualityScore(v float64) *MaterialAnalysisUpsert {
	u.Set(materialanalysis.FieldQualityScore, v)
	return u
}

// UpdateQualityScore sets the "quality_score" field to the value that was provided on create.
func (u *MaterialAnalysisUpsert) UpdateQualityScore() *MaterialAnalysisUpsert {
	u.SetExcluded(materialanalysis.FieldQualityScore)
	return u
}

// AddQualityScore adds v to the "quality_score" field.
func (u *MaterialAnalysisUpsert) AddQualityScore(v float64) *MaterialAnalysisUpsert {
	u.Add(materialanalysis.FieldQualityScore, v)
	return u
}

// ClearQualityScore clears the value of the "quality_score" field.
func (u *MaterialAnalysisUpsert) ClearQualityScore() *MaterialAnalysisUpsert {
	u.SetNull(materialanalysis.FieldQualityScore)
	return u
}

// SetQualityLevel sets the "quality_level" field.
func (u *MaterialAnalysisUpsert) SetQualityLevel(v string) *MaterialAnalysisUpsert {
	u.Set(materialanalysis.FieldQualityLevel, v)
	return u
}

// UpdateQualityLevel sets the "quality_level" field to the value that was provided on create.
func (u *MaterialAnalysisUpsert) UpdateQualityLevel() *MaterialAnalysisUpsert {
	u.SetExcluded(materialanalysis.FieldQualityLevel)
	return u
}

// ClearQualityLevel clears the value of the "quality_level" field.
func (u *MaterialAnalysisUpsert) ClearQualityLevel() *MaterialAnalysisUpsert {
	u.SetNull(materialanalysis.FieldQualityLevel)
	return u
}

// SetUsageSuggestions sets the "usage_suggestions" field.
func (u *MaterialAnalysisUpsert) SetUsageSuggestions(v []string) *MaterialAnalysisUpsert {
	u.Set(materialanalysis.FieldUsageSuggestions, v)
	return u
}

// UpdateUsageSuggestions sets the "usage_suggestions" field to the value that was provided on create.
func (u *MaterialAnalysisUpsert) UpdateUsageSuggestions() *MaterialAnalysisUpsert {
	u.SetExcluded(materialanalysis.FieldUsageSuggestions)
	return u
}

// ClearUsageSuggestions clears the value of the "usage_suggestions" field.
func (u *MaterialAnalysisUpsert) ClearUsageSuggestions() *MaterialAnalysisUpsert {
	u.SetNull(materialanalysis.FieldUsageSuggestions)
	return u
}

// SetKeyframeUrls sets the "keyframe_urls" field.
func (u *MaterialAnalysisUpsert) SetKeyframeUrls(v []string) *MaterialAnalysisUpsert {
	u.Set(materialanalysis.FieldKeyframeUrls, v)
	return u
}

// UpdateKeyframeUrls sets the "keyframe_urls" field to the value that was provided on create.
func (u *MaterialAnalysisUpsert) UpdateKeyframeUrls() *MaterialAnalysisUpsert {
	u.SetExcluded(materialanalysis.FieldKeyframeUrls)
	return u
}

// ClearKeyframeUrls clears the value of the "keyframe_urls" field.
func (u *MaterialAnalysisUpsert) ClearKeyframeUrls() *MaterialAnalysisUpsert {
	u.SetNull(materialanalysis.FieldKeyframeUrls)
	return u
}

// SetFps sets the "fps" field.
func (u *MaterialAnalysisUpsert) SetFps(v float64) *MaterialAnalysisUpsert {
	u.Set(materialanalysis.FieldFps, v)
	return u
}

// UpdateFps sets the "fps" field to the value that was provided on create.
func (u *MaterialAnalysisUpsert) UpdateFps() *MaterialAnalysisUpsert {
	u.SetExcluded(materialanalysis.FieldFps)
	return u
}

// AddFps adds v to the "fps" field.
func (u *MaterialAnalysisUpsert) AddFps(v float64) *MaterialAnalysisUpsert {
	u.Add(materialanalysis.FieldFps, v)
	return u
}

// ClearFps clears the value of the "fps" field.
func (u *MaterialAnalysisUpsert) ClearFps() *MaterialAnalysisUpsert {
	u.SetNull(materialanalysis.FieldFps)
	return u
}

// SetWidth sets the "width" field.
func (u *MaterialAnalysisUpsert) SetWidth(v int) *MaterialAnalysisUpsert {
	u.Set(materialanalysis.FieldWidth, v)
	return u
}

// UpdateWidth sets the "width" field to the value that was provided on create.
func (u *MaterialAnalysisUpsert) UpdateWidth() *MaterialAnalysisUpsert {
	u.SetExcluded(materialanalysis.FieldWidth)
	return u
}

// AddWidth adds v to the "width" field.
func (u *MaterialAnalysisUpsert) AddWidth(v int) *MaterialAnalysisUpsert {
	u.Add(materialanalysis.FieldWidth, v)
	return u
}

// ClearWidth clears the value of the "width" field.
func (u *MaterialAnalysisUpsert) ClearWidth() *MaterialAnalysisUpsert {
	u.SetNull(materialanalysis.FieldWidth)
	return u
}

// SetHeight sets the "height" field.
func (u *MaterialAnalysisUpsert) SetHeight(v int) *MaterialAnalysisUpsert {
	u.Set(materialanalysis.FieldHeight, v)
	return u
}

// UpdateHeight sets the "height" field to the value that was provided on create.
func (u *MaterialAnalysisUpsert) UpdateHeight() *MaterialAnalysisUpsert {
	u.SetExcluded(materialanalysis.FieldHeight)
	return u
}

// AddHeight adds v to the "height" field.
func (u *MaterialAnalysisUpsert) AddHeight(v int) *MaterialAnalysisUpsert {
	u.Add(materialanalysis.FieldHeight, v)
	return u
}

// ClearHeight clears the value of the "height" field.
func (u *MaterialAnalysisUpsert) ClearHeight() *MaterialAnalysisUpsert {
	u.SetNull(materialanalysis.FieldHeight)
	return u
}

// SetDuration sets the "duration" field.
func (u *MaterialAnalysisUpsert) SetDuration(v float64) *MaterialAnalysisUpsert {
	u.Set(materialanalysis.FieldDuration, v)
	return u
}

// UpdateDuration sets the "duration" field to the value that was provided on create.
func (u *MaterialAnalysisUpsert) UpdateDuration() *MaterialAnalysisUpsert {
	u.SetExcluded(materialanalysis.FieldDuration)
	return u
}

// AddDuration adds v to the "duration" field.
func (u *MaterialAnalysisUpsert) AddDuration(v float64) *MaterialAnalysisUpsert {
	u.Add(materialanalysis.FieldDuration, v)
	return u
}

// ClearDuration clears the value of the "duration" field.
func (u *MaterialAnalysisUpsert) ClearDuration() *MaterialAnalysisUpsert {
	u.SetNull(materialanalysis.FieldDuration)
	return u
}

// SetRawResponse sets the "raw_response" field.
func (u *MaterialAnalysisUpsert) SetRawResponse(v string) *MaterialAnalysisUpsert {
	u.Set(materialanalysis.FieldRawResponse, v)
	return u
}

// UpdateRawResponse sets the "raw_response" field to the value that was provided on create.
func (u *MaterialAnalysisUpsert) UpdateRawResponse() *MaterialAnalysisUpsert {
	u.SetExcluded(materialanalysis.FieldRawResponse)
	return u
}

// ClearRawResponse clears the value of the "raw_response" field.
func (u *MaterialAnalysisUpsert) ClearRawResponse() *MaterialAnalysisUpsert {
	u.SetNull(materialanalysis.FieldRawResponse)
	return u
}

// SetErrorMessage sets the "error_message" field.
func (u *MaterialAnalysisUpsert) SetErrorMessage(v string) *MaterialAnalysisUpsert {
	u.Set(materialanalysis.FieldErrorMessage, v)
	return u
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *MaterialAnalysisUpsert) UpdateErrorMessage() *MaterialAnalysisUpsert {
	u.SetExcluded(materialanalysis.FieldErrorMessage)
	return u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *MaterialAnalysisUpsert) ClearErrorMessage() *MaterialAnalysisUpsert {
	u.SetNull(materialanalysis.FieldErrorMessage)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *MaterialAnalysisUpsert) SetUpdatedAt(v time.Time) *MaterialAnalysisUpsert {
	u.Set(materialanalysis.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *MaterialAnalysisUpsert) UpdateUpdatedAt() *MaterialAnalysisUpsert {
	u.SetExcluded(materialanalysis.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.MaterialAnalysis.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(materialanalysis.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *MaterialAnalysisUpsertOne) UpdateNewValues() *MaterialAnalysisUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(materialanalysis.FieldID)
		}
		if _, exists := u.create.mutation.TaskID(); exists {
			s.SetIgnore(materialanalysis.FieldTaskID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(materialanalysis.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.MaterialAnalysis.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *MaterialAnalysisUpsertOne) Ignore() *MaterialAnalysisUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MaterialAnalysisUpsertOne) DoNothing() *MaterialAnalysisUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MaterialAnalysisCreate.OnConflict
// documentation for more info.
func (u *MaterialAnalysisUpsertOne) Update(set func(*MaterialAnalysisUpsert)) *MaterialAnalysisUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MaterialAnalysisUpsert{UpdateSet: update})
	}))
	return u
}

// SetMediaItemID sets the "media_item_id" field.
func (u *MaterialAnalysisUpsertOne) SetMediaItemID(v string) *MaterialAnalysisUpsertOne {
	return u.Update(func(s *MaterialAnalysisUpsert) {
		s.SetMediaItemID(v)
	})
}

// UpdateMediaItemID sets the "media_item_id" field to the value that was provided on create.
func (u *MaterialAnalysisUpsertOne) UpdateMediaItemID() *MaterialAnalysisUpsertOne {
	return u.Update(func(s *MaterialAnalysisUpsert) {
		s.UpdateMediaItemID()
	})
}

// SetOriginalURL sets the "original_url" field.
func (u *MaterialAnalysisUpsertOne) SetOriginalURL(v string) *MaterialAnalysisUpsertOne {
	return u.Update(func(s *MaterialAnalysisUpsert) {
		s.SetOriginalURL(v)
	})
}

// UpdateOriginalURL sets the "original_url" field to the value that was provided on create.
func (u *MaterialAnalysisUpsertOne) UpdateOriginalURL() *MaterialAnalysisUpsertOne {
	return u.Update(func(s *MaterialAnalysisUpsert) {
		s.UpdateOriginalURL()
	})
}

// SetStatus sets the "status" field.
func (u *MaterialAnalysisUpsertOne) SetStatus(v materialanalysis.Status) *MaterialAnalysisUpsertOne {
	return u.Update(func(s *MaterialAnalysisUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *MaterialAnalysisUpsertOne) UpdateStatus() *MaterialAnalysisUpsertOne {
	return u.Update(func(s *MaterialAnalysisUpsert) {
		s.UpdateStatus()
	})
}

// SetAiDescription sets the "ai_description" field.
func (u *MaterialAnalysisUpsertOne) SetAiDescription(v string) *MaterialAnalysisUpsertOne {
	return u.Update(func(s *MaterialAnalysisUpsert) {
		s.SetAiDescription(v)
	})
}

// UpdateAiDescription sets the "ai_description" field to the value that was provided on create.
func (u *MaterialAnalysisUpsertOne) UpdateAiDescription() *MaterialAnalysisUpsertOne {
	return u.Update(func(s *MaterialAnalysisUpsert) {
		s.UpdateAiDescription()
	})
}

// ClearAiDescription clears the value of the "ai_description" field.
func (u *MaterialAnalysisUpsertOne) ClearAiDescription() *MaterialAnalysisUpsertOne {
	return u.Update(func(s *MaterialAnalysisUpsert) {
		s.ClearAiDescription()
	})
}

// SetKeyObjects sets the "key_objects" field.
func (u *MaterialAnalysisUpsertOne) SetKeyObjects(v []string) *MaterialAnalysisUpsertOne {
	return u.Update(func(s *MaterialAnalysisUpsert) {
		s.SetKeyObjects(v)
	})
}

// UpdateKeyObjects sets the "key_objects" field to the value that was provided on create.
func (u *MaterialAnalysisUpsertOne) UpdateKeyObjects() *MaterialAnalysisUpsertOne {
	return u.Update(func(s *MaterialAnalysisUpsert) {
		s.UpdateKeyObjects()
	})
}

// ClearKeyObjects clears the value of the "key_objects" field.
func (u *MaterialAnalysisUpsertOne) ClearKeyObjects() *MaterialAnalysisUpsertOne {
	return u.Update(func(s *MaterialAnalysisUpsert) {
		s.ClearKeyObjects()
	})
}

// SetEmotionalTone sets the "emotional_tone" field.
func (u *MaterialAnalysisUpsertOne) SetEmotionalTone(v string) *MaterialAnalysisUpsertOne {
	return u.Update(func(s *MaterialAnalysisUpsert) {
		s.SetEmotionalTone(v)
	})
}

// UpdateEmotionalTone sets the "emotional_tone" field to the value that was provided on create.
func (u *MaterialAnalysisUpsertOne) UpdateEmotionalTone() *MaterialAnalysisUpsertOne {
	return u.Update(func(s *MaterialAnalysisUpsert) {
		s.UpdateEmotionalTone()
	})
}

// ClearEmotionalTone clears the value of the "emotional_tone" field.
func (u *MaterialAnalysisUpsertOne) ClearEmotionalTone() *MaterialAnalysisUpsertOne {
	return u.Update(func(s *MaterialAnalysisUpsert) {
		s.ClearEmotionalTone()
	})
}

// SetVisualStyle sets the "visual_style" field.
func (u *MaterialAnalysisUpsertOne) SetVisualStyle(v string) *MaterialAnalysisUpsertOne {
	return u.Update(func(s *MaterialAnalysisUpsert) {
		s.SetVisualStyle(v)
	})
}

// UpdateVisualStyle sets the "visual_style" field to the value that was provided on create.
func (u *MaterialAnalysisUpsertOne) UpdateVisualStyle() *MaterialAnalysisUpsertOne {
	return u.Update(func(s *MaterialAnalysisUpsert) {
		s.UpdateVisualStyle()
	})
}

// ClearVisualStyle clears the value of the "visual_style" field.
func (u *MaterialAnalysisUpsertOne) ClearVisualStyle() *MaterialAnalysisUpsertOne {
	return u.Update(func(s *MaterialAnalysisUpsert) {
		s.ClearVisualStyle()
	})
}

// SetQualityScore sets the "quality_score" field.
func (u *MaterialAnalysisUpsertOne) SetQualityScore(v float64) *MaterialAnalysisUpsertOne {
	return u.Update(func(s *MaterialAnalysisUpsert) {
		s.SetQualityScore(v)
	})
}

// AddQualityScore adds v to the "quality_score" field.
func (u *MaterialAnalysisUpsertOne) AddQualityScore(v float64) *MaterialAnalysisUpsertOne {
	return u.Update(func(s *MaterialAnalysisUpsert) {
		s.AddQualityScore(v)
	})
}

// UpdateQualityScore sets the "quality_score" field to the value that was provided on create.
func (u *MaterialAnalysisUpsertOne) UpdateQualityScore() *MaterialAnalysisUpsertOne {
	return u.Update(func(s *MaterialAnalysisUpsert) {
		s.UpdateQualityScore()
	})
}

// ClearQualityScore clears the value of the "quality_score" field.
func (u *MaterialAnalysisUpsertOne) ClearQualityScore() *MaterialAnalysisUpsertOne {
	return u.Update(func(s *MaterialAnalysisUpsert) {
		s.ClearQualityScore()
	})
}

// SetQualityLevel sets the "quality_level" field.
func (u *MaterialAnalysisUpsertOne) SetQualityLevel(v string) *MaterialAnalysisUpsertOne {
	return u.Update(func(s *MaterialAnalysisUpsert) {
		s.SetQualityLevel(v)
	})
}

// UpdateQualityLevel sets the "quality_level" field to the value that was provided on create.
func (u *MaterialAnalysisUpsertOne) UpdateQualityLevel() *MaterialAnalysisUpsertOne {
	return u.Update(func(s *MaterialAnalysisUpsert) {
		s.UpdateQualityLevel()
	})
}

// ClearQualityLevel clears the value of the "quality_level" field.
func (u *MaterialAnalysisUpsertOne) ClearQualityLevel() *MaterialAnalysisUpsertOne {
	return u.Update(func(s *MaterialAnalysisUpsert) {
		s.ClearQualityLevel()
	})
}

// SetUsageSuggestions sets the "usage_suggestions" field.
func (u *MaterialAnalysisUpsertOne) SetUsageSuggestions(v []string) *MaterialAnalysisUpsertOne {
	return u.Update(func(s *MaterialAnalysisUpsert) {
		s.SetUsageSuggestions(v)
	})
}

// UpdateUsageSuggestions sets the "usage_suggestions" field to the value that was provided on create.
func (u *MaterialAnalysisUpsertOne) UpdateUsageSuggestions() *MaterialAnalysisUpsertOne {
	return u.Update(func(s *MaterialAnalysisUpsert) {
		s.UpdateUsageSuggestions()
	})
}

// ClearUsageSuggestions clears the value of the "usage_suggestions" field.
func (u *MaterialAnalysisUpsertOne) ClearUsageSuggestions() *MaterialAnalysisUpsertOne {
	return u.Update(func(s *MaterialAnalysisUpsert) {
		s.ClearUsageSuggestions()
	})
}

// SetKeyframeUrls sets the "keyframe_urls" field.
func (u *MaterialAnalysisUpsertOne) SetKeyframeUrls(v []string) *MaterialAnalysisUpsertOne {
	return u.Update(func(s *MaterialAnalysisUpsert) {
		s.SetKeyframeUrls(v)
	})
}

// UpdateKeyframeUrls sets the "keyframe_urls" field to the value that was provided on create.
func (u *MaterialAnalysisUpsertOne) UpdateKeyframeUrls() *MaterialAnalysisUpsertOne {
	return u.Update(func(s *MaterialAnalysisUpsert) {
		s.UpdateKeyframeUrls()
	})
}

// ClearKeyframeUrls clears the value of the "keyframe_urls" field.
func (u *MaterialAnalysisUpsertOne) ClearKeyframeUrls() *MaterialAnalysisUpsertOne {
	return u.Update(func(s *MaterialAnalysisUpsert) {
		s.ClearKeyframeUrls()
	})
}

// SetFps sets the "fps" field.
func (u *MaterialAnalysisUpsertOne) SetFps(v float64) *MaterialAnalysisUpsertOne {
	return u.Update(func(s *MaterialAnalysisUpsert) {
		s.SetFps(v)
	})
}

// AddFps adds v to the "fps" field.
func (u *MaterialAnalysisUpsertOne) AddFps(v float64) *MaterialAnalysisUpsertOne {
	return u.Update(func(s *MaterialAnalysisUpsert) {
		s.AddFps(v)
	})
}

// UpdateFps sets the "fps" field to the value that was provided on create.
func (u *MaterialAnalysisUpsertOne) UpdateFps() *MaterialAnalysisUpsertOne {
	return u.Update(func(s *MaterialAnalysisUpsert) {
		s.UpdateFps()
	})
}

// ClearFps clears the value of the "fps" field.
func (u *MaterialAnalysisUpsertOne) ClearFps() *MaterialAnalysisUpsertOne {
	return u.Update(func(s *MaterialAnalysisUpsert) {
		s.ClearFps()
	})
}

// SetWidth sets the "width" field.
func (u *MaterialAnalysisUpsertOne) SetWidth(v int) *MaterialAnalysisUpsertOne {
	return u.Update(func(s *MaterialAnalysisUpsert) {
		s.SetWidth(v)
	})
}

// AddWidth adds v to the "width" field.
func (u *MaterialAnalysisUpsertOne) AddWidth(v int) *MaterialAnalysisUpsertOne {
	return u.Update(func(s *MaterialAnalysisUpsert) {
		s.AddWidth(v)
	})
}

// UpdateWidth sets the "width" field to the value that was provided on create.
func (u *MaterialAnalysisUpsertOne) UpdateWidth() *MaterialAnalysisUpsertOne {
	return u.Update(func(s *MaterialAnalysisUpsert) {
		s.UpdateWidth()
	})
}

// ClearWidth clears the value of the "width" field.
func (u *MaterialAnalysisUpsertOne) ClearWidth() *MaterialAnalysisUpsertOne {
	return u.Update(func(s *MaterialAnalysisUpsert) {
		s.ClearWidth()
	})
}

// SetHeight sets the "height" field.
func (u *MaterialAnalysisUpsertOne) SetHeight(v int) *MaterialAnalysisUpsertOne {
	return u.Update(func(s *MaterialAnalysisUpsert) {
		s.SetHeight(v)
	})
}

// AddHeight adds v to the "height" field.
func (u *MaterialAnalysisUpsertOne) AddHeight(v int) *MaterialAnalysisUpsertOne {
	return u.Update(func(s *MaterialAnalysisUpsert) {
		s.AddHeight(v)
	})
}

// UpdateHeight sets the "height" field to the value that was provided on create.
func (u *MaterialAnalysisUpsertOne) UpdateHeight() *MaterialAnalysisUpsertOne {
	return u.Update(func(s *MaterialAnalysisUpsert) {
		s.UpdateHeight()
	})
}

// ClearHeight clears the value of the "height" field.
func (u *MaterialAnalysisUpsertOne) ClearHeight() *MaterialAnalysisUpsertOne {
	return u.Update(func(s *MaterialAnalysisUpsert) {
		s.ClearHeight()
	})
}

// SetDuration sets the "duration" field.
func (u *MaterialAnalysisUpsertOne) SetDuration(v float64) *MaterialAnalysisUpsertOne {
	return u.Update(func(s *MaterialAnalysisUpsert) {
		s.SetDuration(v)
	})
}

// AddDuration adds v to the "duration" field.
func (u *MaterialAnalysisUpsertOne) AddDuration(v float64) *MaterialAnalysisUpsertOne {
	return u.Update(func(s *MaterialAnalysisUpsert) {
		s.AddDuration(v)
	})
}

// UpdateDuration sets the "duration" field to the value that was provided on create.
func (u *MaterialAnalysisUpsertOne) UpdateDuration() *MaterialAnalysisUpsertOne {
	return u.Update(func(s *MaterialAnalysisUpsert) {
		s.UpdateDuration()
	})
}

// ClearDuration clears the value of the "duration" field.
func (u *MaterialAnalysisUpsertOne) ClearDuration() *MaterialAnalysisUpsertOne {
	return u.Update(func(s *MaterialAnalysisUpsert) {
		s.ClearDuration()
	})
}

// SetRawResponse sets the "raw_response" field.
func (u *MaterialAnalysisUpsertOne) SetRawResponse(v string) *MaterialAnalysisUpsertOne {
	return u.Update(func(s *MaterialAnalysisUpsert) {
		s.SetRawResponse(v)
	})
}

// UpdateRawResponse sets the "raw_response" field to the value that was provided on create.
func (u *MaterialAnalysisUpsertOne) UpdateRawResponse() *MaterialAnalysisUpsertOne {
	return u.Update(func(s *MaterialAnalysisUpsert) {
		s.UpdateRawResponse()
	})
}

// ClearRawResponse clears the value of the "raw_response" field.
func (u *MaterialAnalysisUpsertOne) ClearRawResponse() *MaterialAnalysisUpsertOne {
	return u.Update(func(s *MaterialAnalysisUpsert) {
		s.ClearRawResponse()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *MaterialAnalysisUpsertOne) SetErrorMessage(v string) *MaterialAnalysisUpsertOne {
	return u.Update(func(s *MaterialAnalysisUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *MaterialAnalysisUpsertOne) UpdateErrorMessage() *MaterialAnalysisUpsertOne {
	return u.Update(func(s *MaterialAnalysisUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *MaterialAnalysisUpsertOne) ClearErrorMessage() *MaterialAnalysisUpsertOne {
	return u.Update(func(s *MaterialAnalysisUpsert) {
		s.ClearErrorMessage()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *MaterialAnalysisUpsertOne) SetUpdatedAt(v time.Time) *MaterialAnalysisUpsertOne {
	return u.Update(func(s *MaterialAnalysisUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *MaterialAnalysisUpsertOne) UpdateUpdatedAt() *MaterialAnalysisUpsertOne {
	return u.Update(func(s *MaterialAnalysisUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *MaterialAnalysisUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for MaterialAnalysisCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MaterialAnalysisUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *MaterialAnalysisUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: MaterialAnalysisUpsertOne.ID is not supported by MySQL driver. Use MaterialAnalysisUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *MaterialAnalysisUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// MaterialAnalysisCreateBulk is the builder for creating many MaterialAnalysis entities in bulk.
type MaterialAnalysisCreateBulk struct {
	config
	err      error
	builders []*MaterialAnalysisCreate
	conflict []sql.ConflictOption
}

// Save creates the MaterialAnalysis entities in the database.
func (_c *MaterialAnalysisCreateBulk) Save(ctx context.Context) ([]*MaterialAnalysis, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MaterialAnalysis, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MaterialAnalysisMutation)
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
func (_c *MaterialAnalysisCreateBulk) SaveX(ctx context.Context) []*MaterialAnalysis {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MaterialAnalysisCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MaterialAnalysisCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.MaterialAnalysis.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MaterialAnalysisUpsert) {
//			SetTaskID(v+v).
//		}).
//		Exec(ctx)
func (_c *MaterialAnalysisCreateBulk) OnConflict(opts ...sql.ConflictOption) *MaterialAnalysisUpsertBulk {
	_c.conflict = opts
	return &MaterialAnalysisUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.MaterialAnalysis.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MaterialAnalysisCreateBulk) OnConflictColumns(columns ...string) *MaterialAnalysisUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MaterialAnalysisUpsertBulk{
		create: _c,
	}
}

// MaterialAnalysisUpsertBulk is the builder for "upsert"-ing
// a bulk of MaterialAnalysis nodes.
type MaterialAnalysisUpsertBulk struct {
	create *MaterialAnalysisCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.MaterialAnalysis.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(materialanalysis.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *MaterialAnalysisUpsertBulk) UpdateNewValues() *MaterialAnalysisUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(materialanalysis.FieldID)
			}
			if _, exists := b.mutation.TaskID(); exists {
				s.SetIgnore(materialanalysis.FieldTaskID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(materialanalysis.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.MaterialAnalysis.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *MaterialAnalysisUpsertBulk) Ignore() *MaterialAnalysisUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MaterialAnalysisUpsertBulk) DoNothing() *MaterialAnalysisUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MaterialAnalysisCreateBulk.OnConflict
// documentation for more info.
func (u *MaterialAnalysisUpsertBulk) Update(set func(*MaterialAnalysisUpsert)) *MaterialAnalysisUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MaterialAnalysisUpsert{UpdateSet: update})
	}))
	return u
}

// SetMediaItemID sets the "media_item_id" field.
func (u *MaterialAnalysisUpsertBulk) SetMediaItemID(v string) *MaterialAnalysisUpsertBulk {
	return u.Update(func(s *MaterialAnalysisUpsert) {
		s.SetMediaItemID(v)
	})
}

// UpdateMediaItemID sets the "media_item_id" field to the value that was provided on create.
func (u *MaterialAnalysisUpsertBulk) UpdateMediaItemID() *MaterialAnalysisUpsertBulk {
	return u.Update(func(s *MaterialAnalysisUpsert) {
		s.UpdateMediaItemID()
	})
}

// SetOriginalURL sets the "original_url" field.
func (u *MaterialAnalysisUpsertBulk) SetOriginalURL(v string) *MaterialAnalysisUpsertBulk {
	return u.Update(func(s *MaterialAnalysisUpsert) {
		s.SetOriginalURL(v)
	})
}

// UpdateOriginalURL sets the "original_url" field to the value that was provided on create.
func (u *MaterialAnalysisUpsertBulk) UpdateOriginalURL() *MaterialAnalysisUpsertBulk {
	return u.Update(func(s *MaterialAnalysisUpsert) {
		s.UpdateOriginalURL()
	})
}

// SetStatus sets the "status" field.
func (u *MaterialAnalysisUpsertBulk) SetStatus(v materialanalysis.Status) *MaterialAnalysisUpsertBulk {
	return u.Update(func(s *MaterialAnalysisUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *MaterialAnalysisUpsertBulk) UpdateStatus() *MaterialAnalysisUpsertBulk {
	return u.Update(func(s *MaterialAnalysisUpsert) {
		s.UpdateStatus()
	})
}

// SetAiDescription sets the "ai_description" field.
func (u *MaterialAnalysisUpsertBulk) SetAiDescription(v string) *MaterialAnalysisUpsertBulk {
	return u.Update(func(s *MaterialAnalysisUpsert) {
		s.SetAiDescription(v)
	})
}

// UpdateAiDescription sets the "ai_description" field to the value that was provided on create.
func (u *MaterialAnalysisUpsertBulk) UpdateAiDescription() *MaterialAnalysisUpsertBulk {
	return u.Update(func(s *MaterialAnalysisUpsert) {
		s.UpdateAiDescription()
	})
}

// ClearAiDescription clears the value of the "ai_description" field.
func (u *MaterialAnalysisUpsertBulk) ClearAiDescription() *MaterialAnalysisUpsertBulk {
	return u.Update(func(s *MaterialAnalysisUpsert) {
		s.ClearAiDescription()
	})
}

// SetKeyObjects sets the "key_objects" field.
func (u *MaterialAnalysisUpsertBulk) SetKeyObjects(v []string) *MaterialAnalysisUpsertBulk {
	return u.Update(func(s *MaterialAnalysisUpsert) {
		s.SetKeyObjects(v)
	})
}

// UpdateKeyObjects sets the "key_objects" field to the value that was provided on create.
func (u *MaterialAnalysisUpsertBulk) UpdateKeyObjects() *MaterialAnalysisUpsertBulk {
	return u.Update(func(s *MaterialAnalysisUpsert) {
		s.UpdateKeyObjects()
	})
}

// ClearKeyObjects clears the value of the "key_objects" field.
func (u *MaterialAnalysisUpsertBulk) ClearKeyObjects() *MaterialAnalysisUpsertBulk {
	return u.Update(func(s *MaterialAnalysisUpsert) {
		s.ClearKeyObjects()
	})
}

// SetEmotionalTone sets the "emotional_tone" field.
func (u *MaterialAnalysisUpsertBulk) SetEmotionalTone(v string) *MaterialAnalysisUpsertBulk {
	return u.Update(func(s *MaterialAnalysisUpsert) {
		s.SetEmotionalTone(v)
	})
}

// UpdateEmotionalTone sets the "emotional_tone" field to the value that was provided on create.
func (u *MaterialAnalysisUpsertBulk) UpdateEmotionalTone() *MaterialAnalysisUpsertBulk {
	return u.Update(func(s *MaterialAnalysisUpsert) {
		s.UpdateEmotionalTone()
	})
}

// ClearEmotionalTone clears the value of the "emotional_tone" field.
func (u *MaterialAnalysisUpsertBulk) ClearEmotionalTone() *MaterialAnalysisUpsertBulk {
	return u.Update(func(s *MaterialAnalysisUpsert) {
		s.ClearEmotionalTone()
	})
}

// SetVisualStyle sets the "visual_style" field.
func (u *MaterialAnalysisUpsertBulk) SetVisualStyle(v string) *MaterialAnalysisUpsertBulk {
	return u.Update(func(s *MaterialAnalysisUpsert) {
		s.SetVisualStyle(v)
	})
}

// UpdateVisualStyle sets the "visual_style" field to the value that was provided on create.
func (u *MaterialAnalysisUpsertBulk) UpdateVisualStyle() *MaterialAnalysisUpsertBulk {
	return u.Update(func(s *MaterialAnalysisUpsert) {
		s.UpdateVisualStyle()
	})
}

// ClearVisualStyle clears the value of the "visual_style" field.
func (u *MaterialAnalysisUpsertBulk) ClearVisualStyle() *MaterialAnalysisUpsertBulk {
	return u.Update(func(s *MaterialAnalysisUpsert) {
		s.ClearVisualStyle()
	})
}

// SetQualityScore sets the "quality_score" field.
func (u *MaterialAnalysisUpsertBulk) SetQualityScore(v float64) *MaterialAnalysisUpsertBulk {
	return u.Update(func(s *MaterialAnalysisUpsert) {
		s.SetQualityScore(v)
	})
}

// AddQualityScore adds v to the "quality_score" field.
func (u *MaterialAnalysisUpsertBulk) AddQualityScore(v float64) *MaterialAnalysisUpsertBulk {
	return u.Update(func(s *MaterialAnalysisUpsert) {
		s.AddQualityScore(v)
	})
}

// UpdateQualityScore sets the "quality_score" field to the value that was provided on create.
func (u *MaterialAnalysisUpsertBulk) UpdateQualityScore() *MaterialAnalysisUpsertBulk {
	return u.Update(func(s *MaterialAnalysisUpsert) {
		s.UpdateQualityScore()
	})
}

// ClearQualityScore clears the value of the "quality_score" field.
func (u *MaterialAnalysisUpsertBulk) ClearQualityScore() *MaterialAnalysisUpsertBulk {
	return u.Update(func(s *MaterialAnalysisUpsert) {
		s.ClearQualityScore()
	})
}

// SetQualityLevel sets the "quality_level" field.
func (u *MaterialAnalysisUpsertBulk) SetQualityLevel(v string) *MaterialAnalysisUpsertBulk {
	return u.Update(func(s *MaterialAnalysisUpsert) {
		s.SetQualityLevel(v)
	})
}

// UpdateQualityLevel sets the "quality_level" field to the value that was provided on create.
func (u *MaterialAnalysisUpsertBulk) UpdateQualityLevel() *MaterialAnalysisUpsertBulk {
	return u.Update(func(s *MaterialAnalysisUpsert) {
		s.UpdateQualityLevel()
	})
}

// ClearQualityLevel clears the value of the "quality_level" field.
func (u *MaterialAnalysisUpsertBulk) ClearQualityLevel() *MaterialAnalysisUpsertBulk {
	return u.Update(func(s *MaterialAnalysisUpsert) {
		s.ClearQualityLevel()
	})
}

// SetUsageSuggestions sets the "usage_suggestions" field.
func (u *MaterialAnalysisUpsertBulk) SetUsageSuggestions(v []string) *MaterialAnalysisUpsertBulk {
	return u.Update(func(s *MaterialAnalysisUpsert) {
		s.SetUsageSuggestions(v)
	})
}

// UpdateUsageSuggestions sets the "usage_suggestions" field to the value that was provided on create.
func (u *MaterialAnalysisUpsertBulk) UpdateUsageSuggestions() *MaterialAnalysisUpsertBulk {
	return u.Update(func(s *MaterialAnalysisUpsert) {
		s.UpdateUsageSuggestions()
	})
}

// ClearUsageSuggestions clears the value of the "usage_suggestions" field.
func (u *MaterialAnalysisUpsertBulk) ClearUsageSuggestions() *MaterialAnalysisUpsertBulk {
	return u.Update(func(s *MaterialAnalysisUpsert) {
		s.ClearUsageSuggestions()
	})
}

// SetKeyframeUrls sets the "keyframe_urls" field.
func (u *MaterialAnalysisUpsertBulk) SetKeyframeUrls(v []string) *MaterialAnalysisUpsertBulk {
	return u.Update(func(s *MaterialAnalysisUpsert) {
		s.SetKeyframeUrls(v)
	})
}

// UpdateKeyframeUrls sets the "keyframe_urls" field to the value that was provided on create.
func (u *MaterialAnalysisUpsertBulk) UpdateKeyframeUrls() *MaterialAnalysisUpsertBulk {
	return u.Update(func(s *MaterialAnalysisUpsert) {
		s.UpdateKeyframeUrls()
	})
}

// ClearKeyframeUrls clears the value of the "keyframe_urls" field.
func (u *MaterialAnalysisUpsertBulk) ClearKeyframeUrls() *MaterialAnalysisUpsertBulk {
	return u.Update(func(s *MaterialAnalysisUpsert) {
		s.ClearKeyframeUrls()
	})
}

// SetFps sets the "fps" field.
func (u *MaterialAnalysisUpsertBulk) SetFps(v float64) *MaterialAnalysisUpsertBulk {
	return u.Update(func(s *MaterialAnalysisUpsert) {
		s.SetFps(v)
	})
}

// AddFps adds v to the "fps" field.
func (u *MaterialAnalysisUpsertBulk) AddFps(v float64) *MaterialAnalysisUpsertBulk {
	return u.Update(func(s *MaterialAnalysisUpsert) {
		s.AddFps(v)
	})
}

// UpdateFps sets the "fps" field to the value that was provided on create.
func (u *MaterialAnalysisUpsertBulk) UpdateFps() *MaterialAnalysisUpsertBulk {
	return u.Update(func(s *MaterialAnalysisUpsert) {
		s.UpdateFps()
	})
}

// ClearFps clears the value of the "fps" field.
func (u *MaterialAnalysisUpsertBulk) ClearFps() *MaterialAnalysisUpsertBulk {
	return u.Update(func(s *MaterialAnalysisUpsert) {
		s.ClearFps()
	})
}

// SetWidth sets the "width" field.
func (u *MaterialAnalysisUpsertBulk) SetWidth(v int) *MaterialAnalysisUpsertBulk {
	return u.Update(func(s *MaterialAnalysisUpsert) {
		s.SetWidth(v)
	})
}

// AddWidth adds v to the "width" field.
func (u *MaterialAnalysisUpsertBulk) AddWidth(v int) *MaterialAnalysisUpsertBulk {
	return u.Update(func(s *MaterialAnalysisUpsert) {
		s.AddWidth(v)
	})
}

// UpdateWidth sets the "width" field to the value that was provided on create.
func (u *MaterialAnalysisUpsertBulk) UpdateWidth() *MaterialAnalysisUpsertBulk {
	return u.Update(func(s *MaterialAnalysisUpsert) {
		s.UpdateWidth()
	})
}

// ClearWidth clears the value of the "width" field.
func (u *MaterialAnalysisUpsertBulk) ClearWidth() *MaterialAnalysisUpsertBulk {
	return u.Update(func(s *MaterialAnalysisUpsert) {
		s.ClearWidth()
	})
}

// SetHeight sets the "height" field.
func (u *MaterialAnalysisUpsertBulk) SetHeight(v int) *MaterialAnalysisUpsertBulk {
	return u.Update(func(s *MaterialAnalysisUpsert) {
		s.SetHeight(v)
	})
}

// AddHeight adds v to the "height" field.
func (u *MaterialAnalysisUpsertBulk) AddHeight(v int) *MaterialAnalysisUpsertBulk {
	return u.Update(func(s *MaterialAnalysisUpsert) {
		s.AddHeight(v)
	})
}

// UpdateHeight sets the "height" field to the value that was provided on create.
func (u *MaterialAnalysisUpsertBulk) UpdateHeight() *MaterialAnalysisUpsertBulk {
	return u.Update(func(s *MaterialAnalysisUpsert) {
		s.UpdateHeight()
	})
}

// ClearHeight clears the value of the "height" field.
func (u *MaterialAnalysisUpsertBulk) ClearHeight() *MaterialAnalysisUpsertBulk {
	return u.Update(func(s *MaterialAnalysisUpsert) {
		s.ClearHeight()
	})
}

// SetDuration sets the "duration" field.
func (u *MaterialAnalysisUpsertBulk) SetDuration(v float64) *MaterialAnalysisUpsertBulk {
	return u.Update(func(s *MaterialAnalysisUpsert) {
		s.SetDuration(v)
	})
}

// AddDuration adds v to the "duration" field.
func (u *MaterialAnalysisUpsertBulk) AddDuration(v float64) *MaterialAnalysisUpsertBulk {
	return u.Update(func(s *MaterialAnalysisUpsert) {
		s.AddDuration(v)
	})
}

// UpdateDuration sets the "duration" field to the value that was provided on create.
func (u *MaterialAnalysisUpsertBulk) UpdateDuration() *MaterialAnalysisUpsertBulk {
	return u.Update(func(s *MaterialAnalysisUpsert) {
		s.UpdateDuration()
	})
}

// ClearDuration clears the value of the "duration" field.
func (u *MaterialAnalysisUpsertBulk) ClearDuration() *MaterialAnalysisUpsertBulk {
	return u.Update(func(s *MaterialAnalysisUpsert) {
		s.ClearDuration()
	})
}

// SetRawResponse sets the "raw_response" field.
func (u *MaterialAnalysisUpsertBulk) SetRawResponse(v string) *MaterialAnalysisUpsertBulk {
	return u.Update(func(s *MaterialAnalysisUpsert) {
		s.SetRawResponse(v)
	})
}

// UpdateRawResponse sets the "raw_response" field to the value that was provided on create.
func (u *MaterialAnalysisUpsertBulk) UpdateRawResponse() *MaterialAnalysisUpsertBulk {
	return u.Update(func(s *MaterialAnalysisUpsert) {
		s.UpdateRawResponse()
	})
}

// ClearRawResponse clears the value of the "raw_response" field.
func (u *MaterialAnalysisUpsertBulk) ClearRawResponse() *MaterialAnalysisUpsertBulk {
	return u.Update(func(s *MaterialAnalysisUpsert) {
		s.ClearRawResponse()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *MaterialAnalysisUpsertBulk) SetErrorMessage(v string) *MaterialAnalysisUpsertBulk {
	return u.Update(func(s *MaterialAnalysisUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *MaterialAnalysisUpsertBulk) UpdateErrorMessage() *MaterialAnalysisUpsertBulk {
	return u.Update(func(s *MaterialAnalysisUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *MaterialAnalysisUpsertBulk) ClearErrorMessage() *MaterialAnalysisUpsertBulk {
	return u.Update(func(s *MaterialAnalysisUpsert) {
		s.ClearErrorMessage()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *MaterialAnalysisUpsertBulk) SetUpdatedAt(v time.Time) *MaterialAnalysisUpsertBulk {
	return u.Update(func(s *MaterialAnalysisUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *MaterialAnalysisUpsertBulk) UpdateUpdatedAt() *MaterialAnalysisUpsertBulk {
	return u.Update(func(s *MaterialAnalysisUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *MaterialAnalysisUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the MaterialAnalysisCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for MaterialAnalysisCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MaterialAnalysisUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
