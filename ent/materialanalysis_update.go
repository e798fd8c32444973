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
	"github.com/textloom/textloom/ent/predicate"
)

// MaterialAnalysisUpdate is the builder for updating MaterialAnalysis entities.
type MaterialAnalysisUpdate struct {
	config
	hooks    []Hook
	mutation *MaterialAnalysisMutation
}

// Where appends a list predicates to the MaterialAnalysisUpdate builder.
func (_u *MaterialAnalysisUpdate) Where(ps ...predicate.MaterialAnalysis) *MaterialAnalysisUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetMediaItemID sets the "media_item_id" field.
func (_u *MaterialAnalysisUpdate) SetMediaItemID(v string) *MaterialAnalysisUpdate {
	_u.mutation.SetMediaItemID(v)
	return _u
}

// SetNillableMediaItemID sets the "media_item_id" field if the given value is not nil.
func (_u *MaterialAnalysisUpdate) SetNillableMediaItemID(v *string) *MaterialAnalysisUpdate {
	if v != nil {
		_u.SetMediaItemID(*v)
	}
	return _u
}

// SetOriginalURL sets the "original_url" field.
func (_u *MaterialAnalysisUpdate) SetOriginalURL(v string) *MaterialAnalysisUpdate {
	_u.mutation.SetOriginalURL(v)
	return _u
}

// SetNillableOriginalURL sets the "original_url" field if the given value is not nil.
func (_u *MaterialAnalysisUpdate) SetNillableOriginalURL(v *string) *MaterialAnalysisUpdate {
	if v != nil {
		_u.SetOriginalURL(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *MaterialAnalysisUpdate) SetStatus(v materialanalysis.Status) *MaterialAnalysisUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *MaterialAnalysisUpdate) SetNillableStatus(v *materialanalysis.Status) *MaterialAnalysisUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAiDescription sets the "ai_description" field.
func (_u *MaterialAnalysisUpdate) SetAiDescription(v string) *MaterialAnalysisUpdate {
	_u.mutation.SetAiDescription(v)
	return _u
}

// SetNillableAiDescription sets the "ai_description" field if the given value is not nil.
func (_u *MaterialAnalysisUpdate) SetNillableAiDescription(v *string) *MaterialAnalysisUpdate {
	if v != nil {
		_u.SetAiDescription(*v)
	}
	return _u
}

// ClearAiDescription clears the value of the "ai_description" field.
func (_u *MaterialAnalysisUpdate) ClearAiDescription() *MaterialAnalysisUpdate {
	_u.mutation.ClearAiDescription()
	return _u
}

// SetKeyObjects sets the "key_objects" field.
func (_u *MaterialAnalysisUpdate) SetKeyObjects(v []string) *MaterialAnalysisUpdate {
	_u.mutation.SetKeyObjects(v)
	return _u
}

// AppendKeyObjects appends value to the "key_objects" field.
func (_u *MaterialAnalysisUpdate) AppendKeyObjects(v []string) *MaterialAnalysisUpdate {
	_u.mutation.AppendKeyObjects(v)
	return _u
}

// ClearKeyObjects clears the value of the "key_objects" field.
func (_u *MaterialAnalysisUpdate) ClearKeyObjects() *MaterialAnalysisUpdate {
	_u.mutation.ClearKeyObjects()
	return _u
}

// SetEmotionalTone sets the "emotional_tone" field.
func (_u *MaterialAnalysisUpdate) SetEmotionalTone(v string) *MaterialAnalysisUpdate {
	_u.mutation.SetEmotionalTone(v)
	return _u
}

// SetNillableEmotionalTone sets the "emotional_tone" field if the given value is not nil.
func (_u *MaterialAnalysisUpdate) SetNillableEmotionalTone(v *string) *MaterialAnalysisUpdate {
	if v != nil {
		_u.SetEmotionalTone(*v)
	}
	return _u
}

// ClearEmotionalTone clears the value of the "emotional_tone" field.
func (_u *MaterialAnalysisUpdate) ClearEmotionalTone() *MaterialAnalysisUpdate {
	_u.mutation.ClearEmotionalTone()
	return _u
}

// SetVisualStyle sets the "visual_style" field.
func (_u *MaterialAnalysisUpdate) SetVisualStyle(v string) *MaterialAnalysisUpdate {
	_u.mutation.SetVisualStyle(v)
	return _u
}

// SetNillableVisualStyle sets the "visual_style" field if the given value is not nil.
func (_u *MaterialAnalysisUpdate) SetNillableVisualStyle(v *string) *MaterialAnalysisUpdate {
	if v != nil {
		_u.SetVisualStyle(*v)
	}
	return _u
}

// ClearVisualStyle clears the value of the "visual_style" field.
func (_u *MaterialAnalysisUpdate) ClearVisualStyle() *MaterialAnalysisUpdate {
	_u.mutation.ClearVisualStyle()
	return _u
}

// SetQualityScore sets the "quality_score" field.
func (_u *MaterialAnalysisUpdate) SetQualityScore(v float64) *MaterialAnalysisUpdate {
	_u.mutation.ResetQualityScore()
	_u.mutation.SetQualityScore(v)
	return _u
}

// SetNillableQualityScore sets the "quality_score" field if the given value is not nil.
func (_u *MaterialAnalysisUpdate) SetNillableQualityScore(v *float64) *MaterialAnalysisUpdate {
	if v != nil {
		_u.SetQualityScore(*v)
	}
	return _u
}

// AddQualityScore adds value to the "quality_score" field.
func (_u *MaterialAnalysisUpdate) AddQualityScore(v float64) *MaterialAnalysisUpdate {
	_u.mutation.AddQualityScore(v)
	return _u
}

// ClearQualityScore clears the value of the "quality_score" field.
func (_u *MaterialAnalysisUpdate) ClearQualityScore() *MaterialAnalysisUpdate {
	_u.mutation.ClearQualityScore()
	return _u
}

// SetQualityLevel sets the "quality_level" field.
func (_u *MaterialAnalysisUpdate) SetQualityLevel(v string) *MaterialAnalysisUpdate {
	_u.mutation.SetQualityLevel(v)
	return _u
}

// SetNillableQualityLevel sets the "quality_level" field if the given value is not nil.
func (_u *MaterialAnalysisUpdate) SetNillableQualityLevel(v *string) *MaterialAnalysisUpdate {
	if v != nil {
		_u.SetQualityLevel(*v)
	}
	return _u
}

// ClearQualityLevel clears the value of the "quality_level" field.
func (_u *MaterialAnalysisUpdate) ClearQualityLevel() *MaterialAnalysisUpdate {
	_u.mutation.ClearQualityLevel()
	return _u
}

// SetUsageSuggestions sets the "usage_suggestions" field.
func (_u *MaterialAnalysisUpdate) SetUsageSuggestions(v []string) *MaterialAnalysisUpdate {
	_u.mutation.SetUsageSuggestions(v)
	return _u
}

// AppendUsageSuggestions appends value to the "usage_suggestions" field.
func (_u *MaterialAnalysisUpdate) AppendUsageSuggestions(v []string) *MaterialAnalysisUpdate {
	_u.mutation.AppendUsageSuggestions(v)
	return _u
}

// ClearUsageSuggestions clears the value of the "usage_suggestions" field.
func (_u *MaterialAnalysisUpdate) ClearUsageSuggestions() *MaterialAnalysisUpdate {
	_u.mutation.ClearUsageSuggestions()
	return _u
}

// SetKeyframeUrls sets the "keyframe_urls" field.
func (_u *MaterialAnalysisUpdate) SetKeyframeUrls(v []string) *MaterialAnalysisUpdate {
	_u.mutation.SetKeyframeUrls(v)
	return _u
}

// AppendKeyframeUrls appends value to the "keyframe_urls" field.
func (_u *MaterialAnalysisUpdate) AppendKeyframeUrls(v []string) *MaterialAnalysisUpdate {
	_u.mutation.AppendKeyframeUrls(v)
	return _u
}

// ClearKeyframeUrls clears the value of the "keyframe_urls" field.
func (_u *MaterialAnalysisUpdate) ClearKeyframeUrls() *MaterialAnalysisUpdate {
	_u.mutation.ClearKeyframeUrls()
	return _u
}

// SetFps sets the "fps" field.
func (_u *MaterialAnalysisUpdate) SetFps(v float64) *MaterialAnalysisUpdate {
	_u.mutation.ResetFps()
	_u.mutation.SetFps(v)
	return _u
}

// SetNillableFps sets the "fps" field if the given value is not nil.
func (_u *MaterialAnalysisUpdate) SetNillableFps(v *float64) *MaterialAnalysisUpdate {
	if v != nil {
		_u.SetFps(*v)
	}
	return _u
}

// AddFps adds value to the "fps" field.
func (_u *MaterialAnalysisUpdate) AddFps(v float64) *MaterialAnalysisUpdate {
	_u.mutation.AddFps(v)
	return _u
}

// ClearFps clears the value of the "fps" field.
func (_u *MaterialAnalysisUpdate) ClearFps() *MaterialAnalysisUpdate {
	_u.mutation.ClearFps()
	return _u
}

// SetWidth sets the "width" field.
func (_u *MaterialAnalysisUpdate) SetWidth(v int) *MaterialAnalysisUpdate {
	_u.mutation.ResetWidth()
	_u.mutation.SetWidth(v)
	return _u
}

// SetNillableWidth sets the "width" field if the given value is not nil.
func (_u *MaterialAnalysisUpdate) SetNillableWidth(v *int) *MaterialAnalysisUpdate {
	if v != nil {
		_u.SetWidth(*v)
	}
	return _u
}

// AddWidth adds value to the "width" field.
func (_u *MaterialAnalysisUpdate) AddWidth(v int) *MaterialAnalysisUpdate {
	_u.mutation.AddWidth(v)
	return _u
}

// ClearWidth clears the value of the "width" field.
func (_u *MaterialAnalysisUpdate) ClearWidth() *MaterialAnalysisUpdate {
	_u.mutation.ClearWidth()
	return _u
}

// SetHeight sets the "height" field.
func (_u *MaterialAnalysisUpdate) SetHeight(v int) *MaterialAnalysisUpdate {
	_u.mutation.ResetHeight()
	_u.mutation.SetHeight(v)
	return _u
}

// SetNillableHeight sets the "height" field if the given value is not nil.
func (_u *MaterialAnalysisUpdate) SetNillableHeight(v *int) *MaterialAnalysisUpdate {
	if v != nil {
		_u.SetHeight(*v)
	}
	return _u
}

// AddHeight adds value to the "height" field.
func (_u *MaterialAnalysisUpdate) AddHeight(v int) *MaterialAnalysisUpdate {
	_u.mutation.AddHeight(v)
	return _u
}

// ClearHeight clears the value of the "height" field.
func (_u *MaterialAnalysisUpdate) ClearHeight() *MaterialAnalysisUpdate {
	_u.mutation.ClearHeight()
	return _u
}

// SetDuration sets the "duration" field.
func (_u *MaterialAnalysisUpdate) SetDuration(v float64) *MaterialAnalysisUpdate {
	_u.mutation.ResetDuration()
	_u.mutation.SetDuration(v)
	return _u
}

// SetNillableDuration sets the "duration" field if the given value is not nil.
func (_u *MaterialAnalysisUpdate) SetNillableDuration(v *float64) *MaterialAnalysisUpdate {
	if v != nil {
		_u.SetDuration(*v)
	}
	return _u
}

// AddDuration adds value to the "duration" field.
func (_u *MaterialAnalysisUpdate) AddDuration(v float64) *MaterialAnalysisUpdate {
	_u.mutation.AddDuration(v)
	return _u
}

// ClearDuration clears the value of the "duration" field.
func (_u *MaterialAnalysisUpdate) ClearDuration() *MaterialAnalysisUpdate {
	_u.mutation.ClearDuration()
	return _u
}

// SetRawResponse sets the "raw_response" field.
func (_u *MaterialAnalysisUpdate) SetRawResponse(v string) *MaterialAnalysisUpdate {
	_u.mutation.SetRawResponse(v)
	return _u
}

// SetNillableRawResponse sets the "raw_response" field if the given value is not nil.
func (_u *MaterialAnalysisUpdate) SetNillableRawResponse(v *string) *MaterialAnalysisUpdate {
	if v != nil {
		_u.SetRawResponse(*v)
	}
	return _u
}

// ClearRawResponse clears the value of the "raw_response" field.
func (_u *MaterialAnalysisUpdate) ClearRawResponse() *MaterialAnalysisUpdate {
	_u.mutation.ClearRawResponse()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *MaterialAnalysisUpdate) SetErrorMessage(v string) *MaterialAnalysisUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *MaterialAnalysisUpdate) SetNillableErrorMessage(v *string) *MaterialAnalysisUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *MaterialAnalysisUpdate) ClearErrorMessage() *MaterialAnalysisUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MaterialAnalysisUpdate) SetUpdatedAt(v time.Time) *MaterialAnalysisUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the MaterialAnalysisMutation object of the builder.
func (_u *MaterialAnalysisUpdate) Mutation() *MaterialAnalysisMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MaterialAnalysisUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MaterialAnalysisUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MaterialAnalysisUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MaterialAnalysisUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MaterialAnalysisUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := materialanalysis.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MaterialAnalysisUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := materialanalysis.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "MaterialAnalysis.status": %w`, err)}
		}
	}
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "MaterialAnalysis.task"`)
	}
	return nil
}

func (_u *MaterialAnalysisUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(materialanalysis.Table, materialanalysis.Columns, sqlgraph.NewFieldSpec(materialanalysis.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.MediaItemID(); ok {
		_spec.SetField(materialanalysis.FieldMediaItemID, field.TypeString, value)
	}
	if value, ok := _u.mutation.OriginalURL(); ok {
		_spec.SetField(materialanalysis.FieldOriginalURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(materialanalysis.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AiDescription(); ok {
		_spec.SetField(materialanalysis.FieldAiDescription, field.TypeString, value)
	}
	if _u.mutation.AiDescriptionCleared() {
		_spec.ClearField(materialanalysis.FieldAiDescription, field.TypeString)
	}
	if value, ok := _u.mutation.KeyObjects(); ok {
		_spec.SetField(materialanalysis.FieldKeyObjects, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedKeyObjects(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, materialanalysis.FieldKeyObjects, value)
		})
	}
	if _u.mutation.KeyObjectsCleared() {
		_spec.ClearField(materialanalysis.FieldKeyObjects, field.TypeJSON)
	}
	if value, ok := _u.mutation.EmotionalTone(); ok {
		_spec.SetField(materialanalysis.FieldEmotionalTone, field.TypeString, value)
	}
	if _u.mutation.EmotionalToneCleared() {
		_spec.ClearField(materialanalysis.FieldEmotionalTone, field.TypeString)
	}
	if value, ok := _u.mutation.VisualStyle(); ok {
		_spec.SetField(materialanalysis.FieldVisualStyle, field.TypeString, value)
	}
	if _u.mutation.VisualStyleCleared() {
		_spec.ClearField(materialanalysis.FieldVisualStyle, field.TypeString)
	}
	if value, ok := _u.mutation.QualityScore(); ok {
		_spec.SetField(materialanalysis.FieldQualityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedQualityScore(); ok {
		_spec.AddField(materialanalysis.FieldQualityScore, field.TypeFloat64, value)
	}
	if _u.mutation.QualityScoreCleared() {
		_spec.ClearField(materialanalysis.FieldQualityScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.QualityLevel(); ok {
		_spec.SetField(materialanalysis.FieldQualityLevel, field.TypeString, value)
	}
	if _u.mutation.QualityLevelCleared() {
		_spec.ClearField(materialanalysis.FieldQualityLevel, field.TypeString)
	}
	if value, ok := _u.mutation.UsageSuggestions(); ok {
		_spec.SetField(materialanalysis.FieldUsageSuggestions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedUsageSuggestions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, materialanalysis.FieldUsageSuggestions, value)
		})
	}
	if _u.mutation.UsageSuggestionsCleared() {
		_spec.ClearField(materialanalysis.FieldUsageSuggestions, field.TypeJSON)
	}
	if value, ok := _u.mutation.KeyframeUrls(); ok {
		_spec.SetField(materialanalysis.FieldKeyframeUrls, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedKeyframeUrls(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, materialanalysis.FieldKeyframeUrls, value)
		})
	}
	if _u.mutation.KeyframeUrlsCleared() {
		_spec.ClearField(materialanalysis.FieldKeyframeUrls, field.TypeJSON)
	}
	if value, ok := _u.mutation.Fps(); ok {
		_spec.SetField(materialanalysis.FieldFps, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFps(); ok {
		_spec.AddField(materialanalysis.FieldFps, field.TypeFloat64, value)
	}
	if _u.mutation.FpsCleared() {
		_spec.ClearField(materialanalysis.FieldFps, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Width(); ok {
		_spec.SetField(materialanalysis.FieldWidth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWidth(); ok {
		_spec.AddField(materialanalysis.FieldWidth, field.TypeInt, value)
	}
	if _u.mutation.WidthCleared() {
		_spec.ClearField(materialanalysis.FieldWidth, field.TypeInt)
	}
	if value, ok := _u.mutation.Height(); ok {
		_spec.SetField(materialanalysis.FieldHeight, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHeight(); ok {
		_spec.AddField(materialanalysis.FieldHeight, field.TypeInt, value)
	}
	if _u.mutation.HeightCleared() {
		_spec.ClearField(materialanalysis.FieldHeight, field.TypeInt)
	}
	if value, ok := _u.mutation.Duration(); ok {
		_spec.SetField(materialanalysis.FieldDuration, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDuration(); ok {
		_spec.AddField(materialanalysis.FieldDuration, field.TypeFloat64, value)
	}
	if _u.mutation.DurationCleared() {
		_spec.ClearField(materialanalysis.FieldDuration, field.TypeFloat64)
	}
	if value, ok := _u.mutation.RawResponse(); ok {
		_spec.SetField(materialanalysis.FieldRawResponse, field.TypeString, value)
	}
	if _u.mutation.RawResponseCleared() {
		_spec.ClearField(materialanalysis.FieldRawResponse, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(materialanalysis.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(materialanalysis.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(materialanalysis.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{materialanalysis.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MaterialAnalysisUpdateOne is the builder for updating a single MaterialAnalysis entity.
type MaterialAnalysisUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MaterialAnalysisMutation
}

// SetMediaItemID sets the "media_item_id" field.
func (_u *MaterialAnalysisUpdateOne) SetMediaItemID(v string) *MaterialAnalysisUpdateOne {
	_u.mutation.SetMediaItemID(v)
	return _u
}

// SetNillableMediaItemID sets the "media_item_id" field if the given value is not nil.
func (_u *MaterialAnalysisUpdateOne) SetNillableMediaItemID(v *string) *MaterialAnalysisUpdateOne {
	if v != nil {
		_u.SetMediaItemID(*v)
	}
	return _u
}

// SetOriginalURL sets the "original_url" field.
func (_u *MaterialAnalysisUpdateOne) SetOriginalURL(v string) *MaterialAnalysisUpdateOne {
	_u.mutation.SetOriginalURL(v)
	return _u
}

// SetNillableOriginalURL sets the "original_url" field if the given value is not nil.
func (_u *MaterialAnalysisUpdateOne) SetNillableOriginalURL(v *string) *MaterialAnalysisUpdateOne {
	if v != nil {
		_u.SetOriginalURL(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *MaterialAnalysisUpdateOne) SetStatus(v materialanalysis.Status) *MaterialAnalysisUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *MaterialAnalysisUpdateOne) SetNillableStatus(v *materialanalysis.Status) *MaterialAnalysisUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAiDescription sets the "ai_description" field.
func (_u *MaterialAnalysisUpdateOne) SetAiDescription(v string) *MaterialAnalysisUpdateOne {
	_u.mutation.SetAiDescription(v)
	return _u
}

// SetNillableAiDescription sets the "ai_description" field if the given value is not nil.
func (_u *MaterialAnalysisUpdateOne) SetNillableAiDescription(v *string) *MaterialAnalysisUpdateOne {
	if v != nil {
		_u.SetAiDescription(*v)
	}
	return _u
}

// ClearAiDescription clears the value of the "ai_description" field.
func (_u *MaterialAnalysisUpdateOne) ClearAiDescription() *MaterialAnalysisUpdateOne {
	_u.mutation.ClearAiDescription()
	return _u
}

// SetKeyObjects sets the "key_objects" field.
func (_u *MaterialAnalysisUpdateOne) SetKeyObjects(v []string) *MaterialAnalysisUpdateOne {
	_u.mutation.SetKeyObjects(v)
	return _u
}

// AppendKeyObjects appends value to the "key_objects" field.
func (_u *MaterialAnalysisUpdateOne) AppendKeyObjects(v []string) *MaterialAnalysisUpdateOne {
	_u.mutation.AppendKeyObjects(v)
	return _u
}

// ClearKeyObjects clears the value of the "key_objects" field.
func (_u *MaterialAnalysisUpdateOne) ClearKeyObjects() *MaterialAnalysisUpdateOne {
	_u.mutation.ClearKeyObjects()
	return _u
}

// SetEmotionalTone sets the "emotional_tone" field.
func (_u *MaterialAnalysisUpdateOne) SetEmotionalTone(v string) *MaterialAnalysisUpdateOne {
	_u.mutation.SetEmotionalTone(v)
	return _u
}

// SetNillableEmotionalTone sets the "emotional_tone" field if the given value is not nil.
func (_u *MaterialAnalysisUpdateOne) SetNillableEmotionalTone(v *string) *MaterialAnalysisUpdateOne {
	if v != nil {
		_u.SetEmotionalTone(*v)
	}
	return _u
}

// ClearEmotionalTone clears the value of the "emotional_tone" field.
func (_u *MaterialAnalysisUpdateOne) ClearEmotionalTone() *MaterialAnalysisUpdateOne {
	_u.mutation.ClearEmotionalTone()
	return _u
}

// SetVisualStyle sets the "visual_style" field.
func (_u *MaterialAnalysisUpdateOne) SetVisualStyle(v string) *MaterialAnalysisUpdateOne {
	_u.mutation.SetVisualStyle(v)
	return _u
}

// SetNillableVisualStyle sets the "visual_style" field if the given value is not nil.
func (_u *MaterialAnalysisUpdateOne) SetNillableVisualStyle(v *string) *MaterialAnalysisUpdateOne {
	if v != nil {
		_u.SetVisualStyle(*v)
	}
	return _u
}

// ClearVisualStyle clears the value of the "visual_style" field.
func (_u *MaterialAnalysisUpdateOne) ClearVisualStyle() *MaterialAnalysisUpdateOne {
	_u.mutation.ClearVisualStyle()
	return _u
}

// SetQualityScore sets the "quality_score" field.
func (_u *MaterialAnalysisUpdateOne) SetQualityScore(v float64) *MaterialAnalysisUpdateOne {
	_u.mutation.ResetQualityScore()
	_u.mutation.SetQualityScore(v)
	return _u
}

// SetNillableQualityScore sets the "quality_score" field if the given value is not nil.
func (_u *MaterialAnalysisUpdateOne) SetNillableQualityScore(v *float64) *MaterialAnalysisUpdateOne {
	if v != nil {
		_u.SetQualityScore(*v)
	}
	return _u
}

// AddQualityScore adds value to the "quality_score" field.
func (_u *MaterialAnalysisUpdateOne) AddQualityScore(v float64) *MaterialAnalysisUpdateOne {
	_u.mutation.AddQualityScore(v)
	return _u
}

// ClearQualityScore clears the value of the "quality_score" field.
func (_u *MaterialAnalysisUpdateOne) ClearQualityScore() *MaterialAnalysisUpdateOne {
	_u.mutation.ClearQualityScore()
	return _u
}

// SetQualityLevel sets the "quality_level" field.
func (_u *MaterialAnalysisUpdateOne) SetQualityLevel(v string) *MaterialAnalysisUpdateOne {
	_u.mutation.SetQualityLevel(v)
	return _u
}

// SetNillableQualityLevel sets the "quality_level" field if the given value is not nil.
func (_u *MaterialAnalysisUpdateOne) SetNillableQualityLevel(v *string) *MaterialAnalysisUpdateOne {
	if v != nil {
		_u.SetQualityLevel(*v)
	}
	return _u
}

// ClearQualityLevel clears the value of the "quality_level" field.
func (_u *MaterialAnalysisUpdateOne) ClearQualityLevel() *MaterialAnalysisUpdateOne {
	_u.mutation.ClearQualityLevel()
	return _u
}

// SetUsageSuggestions sets the "usage_suggestions" field.
func (_u *MaterialAnalysisUpdateOne) SetUsageSuggestions(v []string) *MaterialAnalysisUpdateOne {
	_u.mutation.SetUsageSuggestions(v)
	return _u
}

// AppendUsageSuggestions appends value to the "usage_suggestions" field.
func (_u *MaterialAnalysisUpdateOne) AppendUsageSuggestions(v []string) *MaterialAnalysisUpdateOne {
	_u.mutation.AppendUsageSuggestions(v)
	return _u
}

// ClearUsageSuggestions clears the value of the "usage_suggestions" field.
func (_u *MaterialAnalysisUpdateOne) ClearUsageSuggestions() *MaterialAnalysisUpdateOne {
	_u.mutation.ClearUsageSuggestions()
	return _u
}

// SetKeyframeUrls sets the "keyframe_urls" field.
func (_u *MaterialAnalysisUpdateOne) SetKeyframeUrls(v []string) *MaterialAnalysisUpdateOne {
	_u.mutation.SetKeyframeUrls(v)
	return _u
}

// AppendKeyframeUrls appends value to the "keyframe_urls" field.
func (_u *MaterialAnalysisUpdateOne) AppendKeyframeUrls(v []string) *MaterialAnalysisUpdateOne {
	_u.mutation.AppendKeyframeUrls(v)
	return _u
}

// ClearKeyframeUrls clears the value of the "keyframe_urls" field.
func (_u *MaterialAnalysisUpdateOne) ClearKeyframeUrls() *MaterialAnalysisUpdateOne {
	_u.mutation.ClearKeyframeUrls()
	return _u
}

// SetFps sets the "fps" field.
func (_u *MaterialAnalysisUpdateOne) SetFps(v float64) *MaterialAnalysisUpdateOne {
	_u.mutation.ResetFps()
	_u.mutation.SetFps(v)
	return _u
}

// SetNillableFps sets the "fps" field if the given value is not nil.
func (_u *MaterialAnalysisUpdateOne) SetNillableFps(v *float64) *MaterialAnalysisUpdateOne {
	if v != nil {
		_u.SetFps(*v)
	}
	return _u
}

// AddFps adds value to the "fps" field.
func (_u *MaterialAnalysisUpdateOne) AddFps(v float64) *MaterialAnalysisUpdateOne {
	_u.mutation.AddFps(v)
	return _u
}

// ClearFps clears the value of the "fps" field.
func (_u *MaterialAnalysisUpdateOne) ClearFps() *MaterialAnalysisUpdateOne {
	_u.mutation.ClearFps()
	return _u
}

// SetWidth sets the "width" field.
func (_u *MaterialAnalysisUpdateOne) SetWidth(v int) *MaterialAnalysisUpdateOne {
	_u.mutation.ResetWidth()
	_u.mutation.SetWidth(v)
	return _u
}

// SetNillableWidth sets the "width" field if the given value is not nil.
func (_u *MaterialAnalysisUpdateOne) SetNillableWidth(v *int) *MaterialAnalysisUpdateOne {
	if v != nil {
		_u.SetWidth(*v)
	}
	return _u
}

// AddWidth adds value to the "width" field.
func (_u *MaterialAnalysisUpdateOne) AddWidth(v int) *MaterialAnalysisUpdateOne {
	_u.mutation.AddWidth(v)
	return _u
}

// ClearWidth clears the value of the "width" field.
func (_u *MaterialAnalysisUpdateOne) ClearWidth() *MaterialAnalysisUpdateOne {
	_u.mutation.ClearWidth()
	return _u
}

// SetHeight sets the "height" field.
func (_u *MaterialAnalysisUpdateOne) SetHeight(v int) *MaterialAnalysisUpdateOne {
	_u.mutation.ResetHeight()
	_u.mutation.SetHeight(v)
	return _u
}

// SetNillableHeight sets the "height" field if the given value is not nil.
func (_u *MaterialAnalysisUpdateOne) SetNillableHeight(v *int) *MaterialAnalysisUpdateOne {
	if v != nil {
		_u.SetHeight(*v)
	}
	return _u
}

// AddHeight adds value to the "height" field.
func (_u *MaterialAnalysisUpdateOne) AddHeight(v int) *MaterialAnalysisUpdateOne {
	_u.mutation.AddHeight(v)
	return _u
}

// ClearHeight clears the value of the "height" field.
func (_u *MaterialAnalysisUpdateOne) ClearHeight() *MaterialAnalysisUpdateOne {
	_u.mutation.ClearHeight()
	return _u
}

// SetDuration sets the "duration" field.
func (_u *MaterialAnalysisUpdateOne) SetDuration(v float64) *MaterialAnalysisUpdateOne {
	_u.mutation.ResetDuration()
	_u.mutation.SetDuration(v)
	return _u
}

// SetNillableDuration sets the "duration" field if the given value is not nil.
func (_u *MaterialAnalysisUpdateOne) SetNillableDuration(v *float64) *MaterialAnalysisUpdateOne {
	if v != nil {
		_u.SetDuration(*v)
	}
	return _u
}

// AddDuration adds value to the "duration" field.
func (_u *MaterialAnalysisUpdateOne) AddDuration(v float64) *MaterialAnalysisUpdateOne {
	_u.mutation.AddDuration(v)
	return _u
}

// ClearDuration clears the value of the "duration" field.
func (_u *MaterialAnalysisUpdateOne) ClearDuration() *MaterialAnalysisUpdateOne {
	_u.mutation.ClearDuration()
	return _u
}

// SetRawResponse sets the "raw_response" field.
func (_u *MaterialAnalysisUpdateOne) SetRawResponse(v string) *MaterialAnalysisUpdateOne {
	_u.mutation.SetRawResponse(v)
	return _u
}

// SetNillableRawResponse sets the "raw_response" field if the given value is not nil.
func (_u *MaterialAnalysisUpdateOne) SetNillableRawResponse(v *string) *MaterialAnalysisUpdateOne {
	if v != nil {
		_u.SetRawResponse(*v)
	}
	return _u
}

// ClearRawResponse clears the value of the "raw_response" field.
func (_u *MaterialAnalysisUpdateOne) ClearRawResponse() *MaterialAnalysisUpdateOne {
	_u.mutation.ClearRawResponse()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *MaterialAnalysisUpdateOne) SetErrorMessage(v string) *MaterialAnalysisUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *MaterialAnalysisUpdateOne) SetNillableErrorMessage(v *string) *MaterialAnalysisUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *MaterialAnalysisUpdateOne) ClearErrorMessage() *MaterialAnalysisUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MaterialAnalysisUpdateOne) SetUpdatedAt(v time.Time) *MaterialAnalysisUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the MaterialAnalysisMutation object of the builder.
func (_u *MaterialAnalysisUpdateOne) Mutation() *MaterialAnalysisMutation {
	return _u.mutation
}

// Where appends a list predicates to the MaterialAnalysisUpdate builder.
func (_u *MaterialAnalysisUpdateOne) Where(ps ...predicate.MaterialAnalysis) *MaterialAnalysisUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MaterialAnalysisUpdateOne) Select(field string, fields ...string) *MaterialAnalysisUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MaterialAnalysis entity.
func (_u *MaterialAnalysisUpdateOne) Save(ctx context.Context) (*MaterialAnalysis, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MaterialAnalysisUpdateOne) SaveX(ctx context.Context) *MaterialAnalysis {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MaterialAnalysisUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MaterialAnalysisUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MaterialAnalysisUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := materialanalysis.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MaterialAnalysisUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := materialanalysis.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "MaterialAnalysis.status": %w`, err)}
		}
	}
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "MaterialAnalysis.task"`)
	}
	return nil
}

func (_u *MaterialAnalysisUpdateOne) sqlSave(ctx context.Context) (_node *MaterialAnalysis, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(materialanalysis.Table, materialanalysis.Columns, sqlgraph.NewFieldSpec(materialanalysis.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MaterialAnalysis.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, materialanalysis.FieldID)
		for _, f := range fields {
			if !materialanalysis.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != materialanalysis.FieldID {
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
	if value, ok := _u.mutation.MediaItemID(); ok {
		_spec.SetField(materialanalysis.FieldMediaItemID, field.TypeString, value)
	}
	if value, ok := _u.mutation.OriginalURL(); ok {
		_spec.SetField(materialanalysis.FieldOriginalURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(materialanalysis.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AiDescription(); ok {
		_spec.SetField(materialanalysis.FieldAiDescription, field.TypeString, value)
	}
	if _u.mutation.AiDescriptionCleared() {
		_spec.ClearField(materialanalysis.FieldAiDescription, field.TypeString)
	}
	if value, ok := _u.mutation.KeyObjects(); ok {
		_spec.SetField(materialanalysis.FieldKeyObjects, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedKeyObjects(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, materialanalysis.FieldKeyObjects, value)
		})
	}
	if _u.mutation.KeyObjectsCleared() {
		_spec.ClearField(materialanalysis.FieldKeyObjects, field.TypeJSON)
	}
	if value, ok := _u.mutation.EmotionalTone(); ok {
		_spec.SetField(materialanalysis.FieldEmotionalTone, field.TypeString, value)
	}
	if _u.mutation.EmotionalToneCleared() {
		_spec.ClearField(materialanalysis.FieldEmotionalTone, field.TypeString)
	}
	if value, ok := _u.mutation.VisualStyle(); ok {
		_spec.SetField(materialanalysis.FieldVisualStyle, field.TypeString, value)
	}
	if _u.mutation.VisualStyleCleared() {
		_spec.ClearField(materialanalysis.FieldVisualStyle, field.TypeString)
	}
	if value, ok := _u.mutation.QualityScore(); ok {
		_spec.SetField(materialanalysis.FieldQualityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedQualityScore(); ok {
		_spec.AddField(materialanalysis.FieldQualityScore, field.TypeFloat64, value)
	}
	if _u.mutation.QualityScoreCleared() {
		_spec.ClearField(materialanalysis.FieldQualityScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.QualityLevel(); ok {
		_spec.SetField(materialanalysis.FieldQualityLevel, field.TypeString, value)
	}
	if _u.mutation.QualityLevelCleared() {
		_spec.ClearField(materialanalysis.FieldQualityLevel, field.TypeString)
	}
	if value, ok := _u.mutation.UsageSuggestions(); ok {
		_spec.SetField(materialanalysis.FieldUsageSuggestions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedUsageSuggestions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, materialanalysis.FieldUsageSuggestions, value)
		})
	}
	if _u.mutation.UsageSuggestionsCleared() {
		_spec.ClearField(materialanalysis.FieldUsageSuggestions, field.TypeJSON)
	}
	if value, ok := _u.mutation.KeyframeUrls(); ok {
		_spec.SetField(materialanalysis.FieldKeyframeUrls, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedKeyframeUrls(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, materialanalysis.FieldKeyframeUrls, value)
		})
	}
	if _u.mutation.KeyframeUrlsCleared() {
		_spec.ClearField(materialanalysis.FieldKeyframeUrls, field.TypeJSON)
	}
	if value, ok := _u.mutation.Fps(); ok {
		_spec.SetField(materialanalysis.FieldFps, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFps(); ok {
		_spec.AddField(materialanalysis.FieldFps, field.TypeFloat64, value)
	}
	if _u.mutation.FpsCleared() {
		_spec.ClearField(materialanalysis.FieldFps, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Width(); ok {
		_spec.SetField(materialanalysis.FieldWidth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWidth(); ok {
		_spec.AddField(materialanalysis.FieldWidth, field.TypeInt, value)
	}
	if _u.mutation.WidthCleared() {
		_spec.ClearField(materialanalysis.FieldWidth, field.TypeInt)
	}
	if value, ok := _u.mutation.Height(); ok {
		_spec.SetField(materialanalysis.FieldHeight, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHeight(); ok {
		_spec.AddField(materialanalysis.FieldHeight, field.TypeInt, value)
	}
	if _u.mutation.HeightCleared() {
		_spec.ClearField(materialanalysis.FieldHeight, field.TypeInt)
	}
	if value, ok := _u.mutation.Duration(); ok {
		_spec.SetField(materialanalysis.FieldDuration, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDuration(); ok {
		_spec.AddField(materialanalysis.FieldDuration, field.TypeFloat64, value)
	}
	if _u.mutation.DurationCleared() {
		_spec.ClearField(materialanalysis.FieldDuration, field.TypeFloat64)
	}
	if value, ok := _u.mutation.RawResponse(); ok {
		_spec.SetField(materialanalysis.FieldRawResponse, field.TypeString, value)
	}
	if _u.mutation.RawResponseCleared() {
		_spec.ClearField(materialanalysis.FieldRawResponse, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(materialanalysis.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(materialanalysis.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(materialanalysis.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &MaterialAnalysis{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{materialanalysis.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
