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
	"github.com/textloom/textloom/ent/predicate"
	"github.com/textloom/textloom/ent/scriptcontent"
)

// ScriptContentUpdate is the builder for updating ScriptContent entities.
type ScriptContentUpdate struct {
	config
	hooks    []Hook
	mutation *ScriptContentMutation
}

// Where appends a list predicates to the ScriptContentUpdate builder.
func (_u *ScriptContentUpdate) Where(ps ...predicate.ScriptContent) *ScriptContentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPersonaID sets the "persona_id" field.
func (_u *ScriptContentUpdate) SetPersonaID(v string) *ScriptContentUpdate {
	_u.mutation.SetPersonaID(v)
	return _u
}

// SetNillablePersonaID sets the "persona_id" field if the given value is not nil.
func (_u *ScriptContentUpdate) SetNillablePersonaID(v *string) *ScriptContentUpdate {
	if v != nil {
		_u.SetPersonaID(*v)
	}
	return _u
}

// ClearPersonaID clears the value of the "persona_id" field.
func (_u *ScriptContentUpdate) ClearPersonaID() *ScriptContentUpdate {
	_u.mutation.ClearPersonaID()
	return _u
}

// SetStyle sets the "style" field.
func (_u *ScriptContentUpdate) SetStyle(v string) *ScriptContentUpdate {
	_u.mutation.SetStyle(v)
	return _u
}

// SetNillableStyle sets the "style" field if the given value is not nil.
func (_u *ScriptContentUpdate) SetNillableStyle(v *string) *ScriptContentUpdate {
	if v != nil {
		_u.SetStyle(*v)
	}
	return _u
}

// SetGenerationStatus sets the "generation_status" field.
func (_u *ScriptContentUpdate) SetGenerationStatus(v scriptcontent.GenerationStatus) *ScriptContentUpdate {
	_u.mutation.SetGenerationStatus(v)
	return _u
}

// SetNillableGenerationStatus sets the "generation_status" field if the given value is not nil.
func (_u *ScriptContentUpdate) SetNillableGenerationStatus(v *scriptcontent.GenerationStatus) *ScriptContentUpdate {
	if v != nil {
		_u.SetGenerationStatus(*v)
	}
	return _u
}

// SetTitles sets the "titles" field.
func (_u *ScriptContentUpdate) SetTitles(v []string) *ScriptContentUpdate {
	_u.mutation.SetTitles(v)
	return _u
}

// AppendTitles appends value to the "titles" field.
func (_u *ScriptContentUpdate) AppendTitles(v []string) *ScriptContentUpdate {
	_u.mutation.AppendTitles(v)
	return _u
}

// ClearTitles clears the value of the "titles" field.
func (_u *ScriptContentUpdate) ClearTitles() *ScriptContentUpdate {
	_u.mutation.ClearTitles()
	return _u
}

// SetNarration sets the "narration" field.
func (_u *ScriptContentUpdate) SetNarration(v string) *ScriptContentUpdate {
	_u.mutation.SetNarration(v)
	return _u
}

// SetNillableNarration sets the "narration" field if the given value is not nil.
func (_u *ScriptContentUpdate) SetNillableNarration(v *string) *ScriptContentUpdate {
	if v != nil {
		_u.SetNarration(*v)
	}
	return _u
}

// ClearNarration clears the value of the "narration" field.
func (_u *ScriptContentUpdate) ClearNarration() *ScriptContentUpdate {
	_u.mutation.ClearNarration()
	return _u
}

// SetDescription sets the "description" field.
func (_u *ScriptContentUpdate) SetDescription(v string) *ScriptContentUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ScriptContentUpdate) SetNillableDescription(v *string) *ScriptContentUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ScriptContentUpdate) ClearDescription() *ScriptContentUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetScenes sets the "scenes" field.
func (_u *ScriptContentUpdate) SetScenes(v []map[string]interface{}) *ScriptContentUpdate {
	_u.mutation.SetScenes(v)
	return _u
}

// AppendScenes appends value to the "scenes" field.
func (_u *ScriptContentUpdate) AppendScenes(v []map[string]interface{}) *ScriptContentUpdate {
	_u.mutation.AppendScenes(v)
	return _u
}

// ClearScenes clears the value of the "scenes" field.
func (_u *ScriptContentUpdate) ClearScenes() *ScriptContentUpdate {
	_u.mutation.ClearScenes()
	return _u
}

// SetMaterialMapping sets the "material_mapping" field.
func (_u *ScriptContentUpdate) SetMaterialMapping(v map[string]string) *ScriptContentUpdate {
	_u.mutation.SetMaterialMapping(v)
	return _u
}

// ClearMaterialMapping clears the value of the "material_mapping" field.
func (_u *ScriptContentUpdate) ClearMaterialMapping() *ScriptContentUpdate {
	_u.mutation.ClearMaterialMapping()
	return _u
}

// SetTags sets the "tags" field.
func (_u *ScriptContentUpdate) SetTags(v []string) *ScriptContentUpdate {
	_u.mutation.SetTags(v)
	return _u
}

// AppendTags appends value to the "tags" field.
func (_u *ScriptContentUpdate) AppendTags(v []string) *ScriptContentUpdate {
	_u.mutation.AppendTags(v)
	return _u
}

// ClearTags clears the value of the "tags" field.
func (_u *ScriptContentUpdate) ClearTags() *ScriptContentUpdate {
	_u.mutation.ClearTags()
	return _u
}

// SetEstimatedDuration sets the "estimated_duration" field.
func (_u *ScriptContentUpdate) SetEstimatedDuration(v int) *ScriptContentUpdate {
	_u.mutation.ResetEstimatedDuration()
	_u.mutation.SetEstimatedDuration(v)
	return _u
}

// SetNillableEstimatedDuration sets the "estimated_duration" field if the given value is not nil.
func (_u *ScriptContentUpdate) SetNillableEstimatedDuration(v *int) *ScriptContentUpdate {
	if v != nil {
		_u.SetEstimatedDuration(*v)
	}
	return _u
}

// AddEstimatedDuration adds value to the "estimated_duration" field.
func (_u *ScriptContentUpdate) AddEstimatedDuration(v int) *ScriptContentUpdate {
	_u.mutation.AddEstimatedDuration(v)
	return _u
}

// SetWordCount sets the "word_count" field.
func (_u *ScriptContentUpdate) SetWordCount(v int) *ScriptContentUpdate {
	_u.mutation.ResetWordCount()
	_u.mutation.SetWordCount(v)
	return _u
}

// SetNillableWordCount sets the "word_count" field if the given value is not nil.
func (_u *ScriptContentUpdate) SetNillableWordCount(v *int) *ScriptContentUpdate {
	if v != nil {
		_u.SetWordCount(*v)
	}
	return _u
}

// AddWordCount adds value to the "word_count" field.
func (_u *ScriptContentUpdate) AddWordCount(v int) *ScriptContentUpdate {
	_u.mutation.AddWordCount(v)
	return _u
}

// SetMaterialCount sets the "material_count" field.
func (_u *ScriptContentUpdate) SetMaterialCount(v int) *ScriptContentUpdate {
	_u.mutation.ResetMaterialCount()
	_u.mutation.SetMaterialCount(v)
	return _u
}

// SetNillableMaterialCount sets the "material_count" field if the given value is not nil.
func (_u *ScriptContentUpdate) SetNillableMaterialCount(v *int) *ScriptContentUpdate {
	if v != nil {
		_u.SetMaterialCount(*v)
	}
	return _u
}

// AddMaterialCount adds value to the "material_count" field.
func (_u *ScriptContentUpdate) AddMaterialCount(v int) *ScriptContentUpdate {
	_u.mutation.AddMaterialCount(v)
	return _u
}

// SetRawPrompt sets the "raw_prompt" field.
func (_u *ScriptContentUpdate) SetRawPrompt(v string) *ScriptContentUpdate {
	_u.mutation.SetRawPrompt(v)
	return _u
}

// SetNillableRawPrompt sets the "raw_prompt" field if the given value is not nil.
func (_u *ScriptContentUpdate) SetNillableRawPrompt(v *string) *ScriptContentUpdate {
	if v != nil {
		_u.SetRawPrompt(*v)
	}
	return _u
}

// ClearRawPrompt clears the value of the "raw_prompt" field.
func (_u *ScriptContentUpdate) ClearRawPrompt() *ScriptContentUpdate {
	_u.mutation.ClearRawPrompt()
	return _u
}

// SetRawResponse sets the "raw_response" field.
func (_u *ScriptContentUpdate) SetRawResponse(v string) *ScriptContentUpdate {
	_u.mutation.SetRawResponse(v)
	return _u
}

// SetNillableRawResponse sets the "raw_response" field if the given value is not nil.
func (_u *ScriptContentUpdate) SetNillableRawResponse(v *string) *ScriptContentUpdate {
	if v != nil {
		_u.SetRawResponse(*v)
	}
	return _u
}

// ClearRawResponse clears the value of the "raw_response" field.
func (_u *ScriptContentUpdate) ClearRawResponse() *ScriptContentUpdate {
	_u.mutation.ClearRawResponse()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ScriptContentUpdate) SetErrorMessage(v string) *ScriptContentUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ScriptContentUpdate) SetNillableErrorMessage(v *string) *ScriptContentUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ScriptContentUpdate) ClearErrorMessage() *ScriptContentUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ScriptContentUpdate) SetUpdatedAt(v time.Time) *ScriptContentUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ScriptContentMutation object of the builder.
func (_u *ScriptContentUpdate) Mutation() *ScriptContentMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ScriptContentUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScriptContentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ScriptContentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScriptContentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ScriptContentUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := scriptcontent.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScriptContentUpdate) check() error {
	if v, ok := _u.mutation.GenerationStatus(); ok {
		if err := scriptcontent.GenerationStatusValidator(v); err != nil {
			return &ValidationError{Name: "generation_status", err: fmt.Errorf(`ent: validator failed for field "ScriptContent.generation_status": %w`, err)}
		}
	}
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ScriptContent.task"`)
	}
	return nil
}

func (_u *ScriptContentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(scriptcontent.Table, scriptcontent.Columns, sqlgraph.NewFieldSpec(scriptcontent.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PersonaID(); ok {
		_spec.SetField(scriptcontent.FieldPersonaID, field.TypeString, value)
	}
	if _u.mutation.PersonaIDCleared() {
		_spec.ClearField(scriptcontent.FieldPersonaID, field.TypeString)
	}
	if value, ok := _u.mutation.Style(); ok {
		_spec.SetField(scriptcontent.FieldStyle, field.TypeString, value)
	}
	if value, ok := _u.mutation.GenerationStatus(); ok {
		_spec.SetField(scriptcontent.FieldGenerationStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Titles(); ok {
		_spec.SetField(scriptcontent.FieldTitles, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTitles(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, scriptcontent.FieldTitles, value)
		})
	}
	if _u.mutation.TitlesCleared() {
		_spec.ClearField(scriptcontent.FieldTitles, field.TypeJSON)
	}
	if value, ok := _u.mutation.Narration(); ok {
		_spec.SetField(scriptcontent.FieldNarration, field.TypeString, value)
	}
	if _u.mutation.NarrationCleared() {
		_spec.ClearField(scriptcontent.FieldNarration, field.TypeString)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(scriptcontent.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(scriptcontent.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Scenes(); ok {
		_spec.SetField(scriptcontent.FieldScenes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedScenes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, scriptcontent.FieldScenes, value)
		})
	}
	if _u.mutation.ScenesCleared() {
		_spec.ClearField(scriptcontent.FieldScenes, field.TypeJSON)
	}
	if value, ok := _u.mutation.MaterialMapping(); ok {
		_spec.SetField(scriptcontent.FieldMaterialMapping, field.TypeJSON, value)
	}
	if _u.mutation.MaterialMappingCleared() {
		_spec.ClearField(scriptcontent.FieldMaterialMapping, field.TypeJSON)
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(scriptcontent.FieldTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, scriptcontent.FieldTags, value)
		})
	}
	if _u.mutation.TagsCleared() {
		_spec.ClearField(scriptcontent.FieldTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.EstimatedDuration(); ok {
		_spec.SetField(scriptcontent.FieldEstimatedDuration, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEstimatedDuration(); ok {
		_spec.AddField(scriptcontent.FieldEstimatedDuration, field.TypeInt, value)
	}
	if value, ok := _u.mutation.WordCount(); ok {
		_spec.SetField(scriptcontent.FieldWordCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWordCount(); ok {
		_spec.AddField(scriptcontent.FieldWordCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaterialCount(); ok {
		_spec.SetField(scriptcontent.FieldMaterialCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaterialCount(); ok {
		_spec.AddField(scriptcontent.FieldMaterialCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RawPrompt(); ok {
		_spec.SetField(scriptcontent.FieldRawPrompt, field.TypeString, value)
	}
	if _u.mutation.RawPromptCleared() {
		_spec.ClearField(scriptcontent.FieldRawPrompt, field.TypeString)
	}
	if value, ok := _u.mutation.RawResponse(); ok {
		_spec.SetField(scriptcontent.FieldRawResponse, field.TypeString, value)
	}
	if _u.mutation.RawResponseCleared() {
		_spec.ClearField(scriptcontent.FieldRawResponse, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(scriptcontent.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(scriptcontent.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(scriptcontent.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scriptcontent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ScriptContentUpdateOne is the builder for updating a single ScriptContent entity.
type ScriptContentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ScriptContentMutation
}

// SetPersonaID sets the "persona_id" field.
func (_u *ScriptContentUpdateOne) SetPersonaID(v string) *ScriptContentUpdateOne {
	_u.mutation.SetPersonaID(v)
	return _u
}

// SetNillablePersonaID sets the "persona_id" field if the given value is not nil.
func (_u *ScriptContentUpdateOne) SetNillablePersonaID(v *string) *ScriptContentUpdateOne {
	if v != nil {
		_u.SetPersonaID(*v)
	}
	return _u
}

// ClearPersonaID clears the value of the "persona_id" field.
func (_u *ScriptContentUpdateOne) ClearPersonaID() *ScriptContentUpdateOne {
	_u.mutation.ClearPersonaID()
	return _u
}

// SetStyle sets the "style" field.
func (_u *ScriptContentUpdateOne) SetStyle(v string) *ScriptContentUpdateOne {
	_u.mutation.SetStyle(v)
	return _u
}

// SetNillableStyle sets the "style" field if the given value is not nil.
func (_u *ScriptContentUpdateOne) SetNillableStyle(v *string) *ScriptContentUpdateOne {
	if v != nil {
		_u.SetStyle(*v)
	}
	return _u
}

// SetGenerationStatus sets the "generation_status" field.
func (_u *ScriptContentUpdateOne) SetGenerationStatus(v scriptcontent.GenerationStatus) *ScriptContentUpdateOne {
	_u.mutation.SetGenerationStatus(v)
	return _u
}

// SetNillableGenerationStatus sets the "generation_status" field if the given value is not nil.
func (_u *ScriptContentUpdateOne) SetNillableGenerationStatus(v *scriptcontent.GenerationStatus) *ScriptContentUpdateOne {
	if v != nil {
		_u.SetGenerationStatus(*v)
	}
	return _u
}

// SetTitles sets the "titles" field.
func (_u *ScriptContentUpdateOne) SetTitles(v []string) *ScriptContentUpdateOne {
	_u.mutation.SetTitles(v)
	return _u
}

// AppendTitles appends value to the "titles" field.
func (_u *ScriptContentUpdateOne) AppendTitles(v []string) *ScriptContentUpdateOne {
	_u.mutation.AppendTitles(v)
	return _u
}

// ClearTitles clears the value of the "titles" field.
func (_u *ScriptContentUpdateOne) ClearTitles() *ScriptContentUpdateOne {
	_u.mutation.ClearTitles()
	return _u
}

// SetNarration sets the "narration" field.
func (_u *ScriptContentUpdateOne) SetNarration(v string) *ScriptContentUpdateOne {
	_u.mutation.SetNarration(v)
	return _u
}

// SetNillableNarration sets the "narration" field if the given value is not nil.
func (_u *ScriptContentUpdateOne) SetNillableNarration(v *string) *ScriptContentUpdateOne {
	if v != nil {
		_u.SetNarration(*v)
	}
	return _u
}

// ClearNarration clears the value of the "narration" field.
func (_u *ScriptContentUpdateOne) ClearNarration() *ScriptContentUpdateOne {
	_u.mutation.ClearNarration()
	return _u
}

// SetDescription sets the "description" field.
func (_u *ScriptContentUpdateOne) SetDescription(v string) *ScriptContentUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ScriptContentUpdateOne) SetNillableDescription(v *string) *ScriptContentUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ScriptContentUpdateOne) ClearDescription() *ScriptContentUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetScenes sets the "scenes" field.
func (_u *ScriptContentUpdateOne) SetScenes(v []map[string]interface{}) *ScriptContentUpdateOne {
	_u.mutation.SetScenes(v)
	return _u
}

// AppendScenes appends value to the "scenes" field.
func (_u *ScriptContentUpdateOne) AppendScenes(v []map[string]interface{}) *ScriptContentUpdateOne {
	_u.mutation.AppendScenes(v)
	return _u
}

// ClearScenes clears the value of the "scenes" field.
func (_u *ScriptContentUpdateOne) ClearScenes() *ScriptContentUpdateOne {
	_u.mutation.ClearScenes()
	return _u
}

// SetMaterialMapping sets the "material_mapping" field.
func (_u *ScriptContentUpdateOne) SetMaterialMapping(v map[string]string) *ScriptContentUpdateOne {
	_u.mutation.SetMaterialMapping(v)
	return _u
}

// ClearMaterialMapping clears the value of the "material_mapping" field.
func (_u *ScriptContentUpdateOne) ClearMaterialMapping() *ScriptContentUpdateOne {
	_u.mutation.ClearMaterialMapping()
	return _u
}

// SetTags sets the "tags" field.
func (_u *ScriptContentUpdateOne) SetTags(v []string) *ScriptContentUpdateOne {
	_u.mutation.SetTags(v)
	return _u
}

// AppendTags appends value to the "tags" field.
func (_u *ScriptContentUpdateOne) AppendTags(v []string) *ScriptContentUpdateOne {
	_u.mutation.AppendTags(v)
	return _u
}

// ClearTags clears the value of the "tags" field.
func (_u *ScriptContentUpdateOne) ClearTags() *ScriptContentUpdateOne {
	_u.mutation.ClearTags()
	return _u
}

// SetEstimatedDuration sets the "estimated_duration" field.
func (_u *ScriptContentUpdateOne) SetEstimatedDuration(v int) *ScriptContentUpdateOne {
	_u.mutation.ResetEstimatedDuration()
	_u.mutation.SetEstimatedDuration(v)
	return _u
}

// SetNillableEstimatedDuration sets the "estimated_duration" field if the given value is not nil.
func (_u *ScriptContentUpdateOne) SetNillableEstimatedDuration(v *int) *ScriptContentUpdateOne {
	if v != nil {
		_u.SetEstimatedDuration(*v)
	}
	return _u
}

// AddEstimatedDuration adds value to the "estimated_duration" field.
func (_u *ScriptContentUpdateOne) AddEstimatedDuration(v int) *ScriptContentUpdateOne {
	_u.mutation.AddEstimatedDuration(v)
	return _u
}

// SetWordCount sets the "word_count" field.
func (_u *ScriptContentUpdateOne) SetWordCount(v int) *ScriptContentUpdateOne {
	_u.mutation.ResetWordCount()
	_u.mutation.SetWordCount(v)
	return _u
}

// SetNillableWordCount sets the "word_count" field if the given value is not nil.
func (_u *ScriptContentUpdateOne) SetNillableWordCount(v *int) *ScriptContentUpdateOne {
	if v != nil {
		_u.SetWordCount(*v)
	}
	return _u
}

// AddWordCount adds value to the "word_count" field.
func (_u *ScriptContentUpdateOne) AddWordCount(v int) *ScriptContentUpdateOne {
	_u.mutation.AddWordCount(v)
	return _u
}

// SetMaterialCount sets the "material_count" field.
func (_u *ScriptContentUpdateOne) SetMaterialCount(v int) *ScriptContentUpdateOne {
	_u.mutation.ResetMaterialCount()
	_u.mutation.SetMaterialCount(v)
	return _u
}

// SetNillableMaterialCount sets the "material_count" field if the given value is not nil.
func (_u *ScriptContentUpdateOne) SetNillableMaterialCount(v *int) *ScriptContentUpdateOne {
	if v != nil {
		_u.SetMaterialCount(*v)
	}
	return _u
}

// AddMaterialCount adds value to the "material_count" field.
func (_u *ScriptContentUpdateOne) AddMaterialCount(v int) *ScriptContentUpdateOne {
	_u.mutation.AddMaterialCount(v)
	return _u
}

// SetRawPrompt sets the "raw_prompt" field.
func (_u *ScriptContentUpdateOne) SetRawPrompt(v string) *ScriptContentUpdateOne {
	_u.mutation.SetRawPrompt(v)
	return _u
}

// SetNillableRawPrompt sets the "raw_prompt" field if the given value is not nil.
func (_u *ScriptContentUpdateOne) SetNillableRawPrompt(v *string) *ScriptContentUpdateOne {
	if v != nil {
		_u.SetRawPrompt(*v)
	}
	return _u
}

// ClearRawPrompt clears the value of the "raw_prompt" field.
func (_u *ScriptContentUpdateOne) ClearRawPrompt() *ScriptContentUpdateOne {
	_u.mutation.ClearRawPrompt()
	return _u
}

// SetRawResponse sets the "raw_response" field.
func (_u *ScriptContentUpdateOne) SetRawResponse(v string) *ScriptContentUpdateOne {
	_u.mutation.SetRawResponse(v)
	return _u
}

// SetNillableRawResponse sets the "raw_response" field if the given value is not nil.
func (_u *ScriptContentUpdateOne) SetNillableRawResponse(v *string) *ScriptContentUpdateOne {
	if v != nil {
		_u.SetRawResponse(*v)
	}
	return _u
}

// ClearRawResponse clears the value of the "raw_response" field.
func (_u *ScriptContentUpdateOne) ClearRawResponse() *ScriptContentUpdateOne {
	_u.mutation.ClearRawResponse()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ScriptContentUpdateOne) SetErrorMessage(v string) *ScriptContentUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ScriptContentUpdateOne) SetNillableErrorMessage(v *string) *ScriptContentUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ScriptContentUpdateOne) ClearErrorMessage() *ScriptContentUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ScriptContentUpdateOne) SetUpdatedAt(v time.Time) *ScriptContentUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ScriptContentMutation object of the builder.
func (_u *ScriptContentUpdateOne) Mutation() *ScriptContentMutation {
	return _u.mutation
}

// Where appends a list predicates to the ScriptContentUpdate builder.
func (_u *ScriptContentUpdateOne) Where(ps ...predicate.ScriptContent) *ScriptContentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ScriptContentUpdateOne) Select(field string, fields ...string) *ScriptContentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ScriptContent entity.
func (_u *ScriptContentUpdateOne) Save(ctx context.Context) (*ScriptContent, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScriptContentUpdateOne) SaveX(ctx context.Context) *ScriptContent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ScriptContentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScriptContentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ScriptContentUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := scriptcontent.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScriptContentUpdateOne) check() error {
	if v, ok := _u.mutation.GenerationStatus(); ok {
		if err := scriptcontent.GenerationStatusValidator(v); err != nil {
			return &ValidationError{Name: "generation_status", err: fmt.Errorf(`ent: validator failed for field "ScriptContent.generation_status": %w`, err)}
		}
	}
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ScriptContent.task"`)
	}
	return nil
}

func (_u *ScriptContentUpdateOne) sqlSave(ctx context.Context) (_node *ScriptContent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(scriptcontent.Table, scriptcontent.Columns, sqlgraph.NewFieldSpec(scriptcontent.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ScriptContent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, scriptcontent.FieldID)
		for _, f := range fields {
			if !scriptcontent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != scriptcontent.FieldID {
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
	if value, ok := _u.mutation.PersonaID(); ok {
		_spec.SetField(scriptcontent.FieldPersonaID, field.TypeString, value)
	}
	if _u.mutation.PersonaIDCleared() {
		_spec.ClearField(scriptcontent.FieldPersonaID, field.TypeString)
	}
	if value, ok := _u.mutation.Style(); ok {
		_spec.SetField(scriptcontent.FieldStyle, field.TypeString, value)
	}
	if value, ok := _u.mutation.GenerationStatus(); ok {
		_spec.SetField(scriptcontent.FieldGenerationStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Titles(); ok {
		_spec.SetField(scriptcontent.FieldTitles, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTitles(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, scriptcontent.FieldTitles, value)
		})
	}
	if _u.mutation.TitlesCleared() {
		_spec.ClearField(scriptcontent.FieldTitles, field.TypeJSON)
	}
	if value, ok := _u.mutation.Narration(); ok {
		_spec.SetField(scriptcontent.FieldNarration, field.TypeString, value)
	}
	if _u.mutation.NarrationCleared() {
		_spec.ClearField(scriptcontent.FieldNarration, field.TypeString)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(scriptcontent.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(scriptcontent.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Scenes(); ok {
		_spec.SetField(scriptcontent.FieldScenes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedScenes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, scriptcontent.FieldScenes, value)
		})
	}
	if _u.mutation.ScenesCleared() {
		_spec.ClearField(scriptcontent.FieldScenes, field.TypeJSON)
	}
	if value, ok := _u.mutation.MaterialMapping(); ok {
		_spec.SetField(scriptcontent.FieldMaterialMapping, field.TypeJSON, value)
	}
	if _u.mutation.MaterialMappingCleared() {
		_spec.ClearField(scriptcontent.FieldMaterialMapping, field.TypeJSON)
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(scriptcontent.FieldTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, scriptcontent.FieldTags, value)
		})
	}
	if _u.mutation.TagsCleared() {
		_spec.ClearField(scriptcontent.FieldTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.EstimatedDuration(); ok {
		_spec.SetField(scriptcontent.FieldEstimatedDuration, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEstimatedDuration(); ok {
		_spec.AddField(scriptcontent.FieldEstimatedDuration, field.TypeInt, value)
	}
	if value, ok := _u.mutation.WordCount(); ok {
		_spec.SetField(scriptcontent.FieldWordCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWordCount(); ok {
		_spec.AddField(scriptcontent.FieldWordCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaterialCount(); ok {
		_spec.SetField(scriptcontent.FieldMaterialCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaterialCount(); ok {
		_spec.AddField(scriptcontent.FieldMaterialCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RawPrompt(); ok {
		_spec.SetField(scriptcontent.FieldRawPrompt, field.TypeString, value)
	}
	if _u.mutation.RawPromptCleared() {
		_spec.ClearField(scriptcontent.FieldRawPrompt, field.TypeString)
	}
	if value, ok := _u.mutation.RawResponse(); ok {
		_spec.SetField(scriptcontent.FieldRawResponse, field.TypeString, value)
	}
	if _u.mutation.RawResponseCleared() {
		_spec.ClearField(scriptcontent.FieldRawResponse, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(scriptcontent.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(scriptcontent.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(scriptcontent.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &ScriptContent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scriptcontent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
