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
	"github.com/textloom/textloom/ent/scriptcontent"
	"github.com/textloom/textloom/ent/task"
)

// ScriptContentCreate is the builder for creating a ScriptContent entity.
type ScriptContentCreate struct {
	config
	mutation *ScriptContentMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTaskID sets the "task_id" field.
func (_c *ScriptContentCreate) SetTaskID(v string) *ScriptContentCreate {
	_c.mutation.SetTaskID(v)
	return _c
}

// SetSubTaskID sets the "sub_task_id" field.
func (_c *ScriptContentCreate) SetSubTaskID(v string) *ScriptContentCreate {
	_c.mutation.SetSubTaskID(v)
	return _c
}

// SetPersonaID sets the "persona_id" field.
func (_c *ScriptContentCreate) SetPersonaID(v string) *ScriptContentCreate {
	_c.mutation.SetPersonaID(v)
	return _c
}

// SetNillablePersonaID sets the "persona_id" field if the given value is not nil.
func (_c *ScriptContentCreate) SetNillablePersonaID(v *string) *ScriptContentCreate {
	if v != nil {
		_c.SetPersonaID(*v)
	}
	return _c
}

// SetStyle sets the "style" field.
func (_c *ScriptContentCreate) SetStyle(v string) *ScriptContentCreate {
	_c.mutation.SetStyle(v)
	return _c
}

// SetNillableStyle sets the "style" field if the given value is not nil.
func (_c *ScriptContentCreate) SetNillableStyle(v *string) *ScriptContentCreate {
	if v != nil {
		_c.SetStyle(*v)
	}
	return _c
}

// SetGenerationStatus sets the "generation_status" field.
func (_c *ScriptContentCreate) SetGenerationStatus(v scriptcontent.GenerationStatus) *ScriptContentCreate {
	_c.mutation.SetGenerationStatus(v)
	return _c
}

// SetNillableGenerationStatus sets the "generation_status" field if the given value is not nil.
func (_c *ScriptContentCreate) SetNillableGenerationStatus(v *scriptcontent.GenerationStatus) *ScriptContentCreate {
	if v != nil {
		_c.SetGenerationStatus(*v)
	}
	return _c
}

// SetTitles sets the "titles" field.
func (_c *ScriptContentCreate) SetTitles(v []string) *ScriptContentCreate {
	_c.mutation.SetTitles(v)
	return _c
}

// SetNarration sets the "narration" field.
func (_c *ScriptContentCreate) SetNarration(v string) *ScriptContentCreate {
	_c.mutation.SetNarration(v)
	return _c
}

// SetNillableNarration sets the "narration" field if the given value is not nil.
func (_c *ScriptContentCreate) SetNillableNarration(v *string) *ScriptContentCreate {
	if v != nil {
		_c.SetNarration(*v)
	}
	return _c
}

// SetDescription sets the "description" field.
func (_c *ScriptContentCreate) SetDescription(v string) *ScriptContentCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *ScriptContentCreate) SetNillableDescription(v *string) *ScriptContentCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetScenes sets the "scenes" field.
func (_c *ScriptContentCreate) SetScenes(v []map[string]interface{}) *ScriptContentCreate {
	_c.mutation.SetScenes(v)
	return _c
}

// SetMaterialMapping sets the "material_mapping" field.
func (_c *ScriptContentCreate) SetMaterialMapping(v map[string]string) *ScriptContentCreate {
	_c.mutation.SetMaterialMapping(v)
	return _c
}

// SetTags sets the "tags" field.
func (_c *ScriptContentCreate) SetTags(v []string) *ScriptContentCreate {
	_c.mutation.SetTags(v)
	return _c
}

// SetEstimatedDuration sets the "estimated_duration" field.
func (_c *ScriptContentCreate) SetEstimatedDuration(v int) *ScriptContentCreate {
	_c.mutation.SetEstimatedDuration(v)
	return _c
}

// SetNillableEstimatedDuration sets the "estimated_duration" field if the given value is not nil.
func (_c *ScriptContentCreate) SetNillableEstimatedDuration(v *int) *ScriptContentCreate {
	if v != nil {
		_c.SetEstimatedDuration(*v)
	}
	return _c
}

// SetWordCount sets the "word_count" field.
func (_c *ScriptContentCreate) SetWordCount(v int) *ScriptContentCreate {
	_c.mutation.SetWordCount(v)
	return _c
}

// SetNillableWordCount sets the "word_count" field if the given value is not nil.
func (_c *ScriptContentCreate) SetNillableWordCount(v *int) *ScriptContentCreate {
	if v != nil {
		_c.SetWordCount(*v)
	}
	return _c
}

// SetMaterialCount sets the "material_count" field.
func (_c *ScriptContentCreate) SetMaterialCount(v int) *ScriptContentCreate {
	_c.mutation.SetMaterialCount(v)
	return _c
}

// SetNillableMaterialCount sets the "material_count" field if the given value is not nil.
func (_c *ScriptContentCreate) SetNillableMaterialCount(v *int) *ScriptContentCreate {
	if v != nil {
		_c.SetMaterialCount(*v)
	}
	return _c
}

// SetRawPrompt sets the "raw_prompt" field.
func (_c *ScriptContentCreate) SetRawPrompt(v string) *ScriptContentCreate {
	_c.mutation.SetRawPrompt(v)
	return _c
}

// SetNillableRawPrompt sets the "raw_prompt" field if the given value is not nil.
func (_c *ScriptContentCreate) SetNillableRawPrompt(v *string) *ScriptContentCreate {
	if v != nil {
		_c.SetRawPrompt(*v)
	}
	return _c
}

// SetRawResponse sets the "raw_response" field.
func (_c *ScriptContentCreate) SetRawResponse(v string) *ScriptContentCreate {
	_c.mutation.SetRawResponse(v)
	return _c
}

// SetNillableRawResponse sets the "raw_response" field if the given value is not nil.
func (_c *ScriptContentCreate) SetNillableRawResponse(v *string) *ScriptContentCreate {
	if v != nil {
		_c.SetRawResponse(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *ScriptContentCreate) SetErrorMessage(v string) *ScriptContentCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *ScriptContentCreate) SetNillableErrorMessage(v *string) *ScriptContentCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ScriptContentCreate) SetCreatedAt(v time.Time) *ScriptContentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ScriptContentCreate) SetNillableCreatedAt(v *time.Time) *ScriptContentCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ScriptContentCreate) SetUpdatedAt(v time.Time) *ScriptContentCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ScriptContentCreate) SetNillableUpdatedAt(v *time.Time) *ScriptContentCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ScriptContentCreate) SetID(v string) *ScriptContentCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetTask sets the "task" edge to the Task entity.
func (_c *ScriptContentCreate) SetTask(v *Task) *ScriptContentCreate {
	return _c.SetTaskID(v.ID)
}

// Mutation returns the ScriptContentMutation object of the builder.
func (_c *ScriptContentCreate) Mutation() *ScriptContentMutation {
	return _c.mutation
}

// Save creates the ScriptContent in the database.
func (_c *ScriptContentCreate) Save(ctx context.Context) (*ScriptContent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ScriptContentCreate) SaveX(ctx context.Context) *ScriptContent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScriptContentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScriptContentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ScriptContentCreate) defaults() {
	if _, ok := _c.mutation.Style(); !ok {
		v := scriptcontent.DefaultStyle
		_c.mutation.SetStyle(v)
	}
	if _, ok := _c.mutation.GenerationStatus(); !ok {
		v := scriptcontent.DefaultGenerationStatus
		_c.mutation.SetGenerationStatus(v)
	}
	if _, ok := _c.mutation.EstimatedDuration(); !ok {
		v := scriptcontent.DefaultEstimatedDuration
		_c.mutation.SetEstimatedDuration(v)
	}
	if _, ok := _c.mutation.WordCount(); !ok {
		v := scriptcontent.DefaultWordCount
		_c.mutation.SetWordCount(v)
	}
	if _, ok := _c.mutation.MaterialCount(); !ok {
		v := scriptcontent.DefaultMaterialCount
		_c.mutation.SetMaterialCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := scriptcontent.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := scriptcontent.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ScriptContentCreate) check() error {
	if _, ok := _c.mutation.TaskID(); !ok {
		return &ValidationError{Name: "task_id", err: errors.New(`ent: missing required field "ScriptContent.task_id"`)}
	}
	if _, ok := _c.mutation.SubTaskID(); !ok {
		return &ValidationError{Name: "sub_task_id", err: errors.New(`ent: missing required field "ScriptContent.sub_task_id"`)}
	}
	if _, ok := _c.mutation.Style(); !ok {
		return &ValidationError{Name: "style", err: errors.New(`ent: missing required field "ScriptContent.style"`)}
	}
	if _, ok := _c.mutation.GenerationStatus(); !ok {
		return &ValidationError{Name: "generation_status", err: errors.New(`ent: missing required field "ScriptContent.generation_status"`)}
	}
	if v, ok := _c.mutation.GenerationStatus(); ok {
		if err := scriptcontent.GenerationStatusValidator(v); err != nil {
			return &ValidationError{Name: "generation_status", err: fmt.Errorf(`ent: validator failed for field "ScriptContent.generation_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EstimatedDuration(); !ok {
		return &ValidationError{Name: "estimated_duration", err: errors.New(`ent: missing required field "ScriptContent.estimated_duration"`)}
	}
	if _, ok := _c.mutation.WordCount(); !ok {
		return &ValidationError{Name: "word_count", err: errors.New(`ent: missing required field "ScriptContent.word_count"`)}
	}
	if _, ok := _c.mutation.MaterialCount(); !ok {
		return &ValidationError{Name: "material_count", err: errors.New(`ent: missing required field "ScriptContent.material_count"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ScriptContent.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ScriptContent.updated_at"`)}
	}
	if len(_c.mutation.TaskIDs()) == 0 {
		return &ValidationError{Name: "task", err: errors.New(`ent: missing required edge "ScriptContent.task"`)}
	}
	return nil
}

func (_c *ScriptContentCreate) sqlSave(ctx context.Context) (*ScriptContent, error) {
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
			return nil, fmt.Errorf("unexpected ScriptContent.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ScriptContentCreate) createSpec() (*ScriptContent, *sqlgraph.CreateSpec) {
	var (
		_node = &ScriptContent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(scriptcontent.Table, sqlgraph.NewFieldSpec(scriptcontent.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.SubTaskID(); ok {
		_spec.SetField(scriptcontent.FieldSubTaskID, field.TypeString, value)
		_node.SubTaskID = value
	}
	if value, ok := _c.mutation.PersonaID(); ok {
		_spec.SetField(scriptcontent.FieldPersonaID, field.TypeString, value)
		_node.PersonaID = &value
	}
	if value, ok := _c.mutation.Style(); ok {
		_spec.SetField(scriptcontent.FieldStyle, field.TypeString, value)
		_node.Style = value
	}
	if value, ok := _c.mutation.GenerationStatus(); ok {
		_spec.SetField(scriptcontent.FieldGenerationStatus, field.TypeEnum, value)
		_node.GenerationStatus = value
	}
	if value, ok := _c.mutation.Titles(); ok {
		_spec.SetField(scriptcontent.FieldTitles, field.TypeJSON, value)
		_node.Titles = value
	}
	if value, ok := _c.mutation.Narration(); ok {
		_spec.SetField(scriptcontent.FieldNarration, field.TypeString, value)
		_node.Narration = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(scriptcontent.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Scenes(); ok {
		_spec.SetField(scriptcontent.FieldScenes, field.TypeJSON, value)
		_node.Scenes = value
	}
	if value, ok := _c.mutation.MaterialMapping(); ok {
		_spec.SetField(scriptcontent.FieldMaterialMapping, field.TypeJSON, value)
		_node.MaterialMapping = value
	}
	if value, ok := _c.mutation.Tags(); ok {
		_spec.SetField(scriptcontent.FieldTags, field.TypeJSON, value)
		_node.Tags = value
	}
	if value, ok := _c.mutation.EstimatedDuration(); ok {
		_spec.SetField(scriptcontent.FieldEstimatedDuration, field.TypeInt, value)
		_node.EstimatedDuration = value
	}
	if value, ok := _c.mutation.WordCount(); ok {
		_spec.SetField(scriptcontent.FieldWordCount, field.TypeInt, value)
		_node.WordCount = value
	}
	if value, ok := _c.mutation.MaterialCount(); ok {
		_spec.SetField(scriptcontent.FieldMaterialCount, field.TypeInt, value)
		_node.MaterialCount = value
	}
	if value, ok := _c.mutation.RawPrompt(); ok {
		_spec.SetField(scriptcontent.FieldRawPrompt, field.TypeString, value)
		_node.RawPrompt = value
	}
	if value, ok := _c.mutation.RawResponse(); ok {
		_spec.SetField(scriptcontent.FieldRawResponse, field.TypeString, value)
		_node.RawResponse = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(scriptcontent.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(scriptcontent.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(scriptcontent.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.TaskIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   scriptcontent.TaskTable,
			Columns: []string{scriptcontent.TaskColumn},
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
//	client.ScriptContent.Create().
//		SetTaskID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ScriptContentUpsert) {
//			SetTaskID(v+v).
//		}).
//		Exec(ctx)
func (_c *ScriptContentCreate) OnConflict(opts ...sql.ConflictOption) *ScriptContentUpsertOne {
	_c.conflict = opts
	return &ScriptContentUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ScriptContent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ScriptContentCreate) OnConflictColumns(columns ...string) *ScriptContentUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ScriptContentUpsertOne{
		create: _c,
	}
}

type (
	// ScriptContentUpsertOne is the builder for "upsert"-ing
	//  one ScriptContent node.
	ScriptContentUpsertOne struct {
		create *ScriptContentCreate
	}

	// ScriptContentUpsert is the "OnConflict" setter.
	ScriptContentUpsert struct {
		*sql.UpdateSet
	}
)

// SetPersonaID sets the "persona_id" field.
func (u *ScriptContentUpsert) SetPersonaID(v string) *ScriptContentUpsert {
	u.Set(scriptcontent.FieldPersonaID, v)
	return u
}

// UpdatePersonaID sets the "persona_id" field to the value that was provided on create.
func (u *ScriptContentUpsert) UpdatePersonaID() *ScriptContentUpsert {
	u.SetExcluded(scriptcontent.FieldPersonaID)
	return u
}

// ClearPersonaID clears the value of the "persona_id" field.
func (u *ScriptContentUpsert) ClearPersonaID() *ScriptContentUpsert {
	u.SetNull(scriptcontent.FieldPersonaID)
	return u
}

// SetStyle sets the "style" field.
func (u *ScriptContentUpsert) SetStyle(v string) *ScriptContentUpsert {
	u.Set(scriptcontent.FieldStyle, v)
	return u
}

// UpdateStyle sets the "style" field to the value that was provided on create.
func (u *ScriptContentUpsert) UpdateStyle() *ScriptContentUpsert {
	u.SetExcluded(scriptcontent.FieldStyle)
	return u
}

// SetGenerationStatus sets the "generation_status" field.
func (u *ScriptContentUpsert) SetGenerationStatus(v scriptcontent.GenerationStatus) *ScriptContentUpsert {
	u.Set(scriptcontent.FieldGenerationStatus, v)
	return u
}

// UpdateGenerationStatus sets the "generation_status" field to the value that was provided on create.
func (u *ScriptContentUpsert) UpdateGenerationStatus() *ScriptContentUpsert {
	u.SetExcluded(scriptcontent.FieldGenerationStatus)
	return u
}

// SetTitles sets the "titles" field.
func (u *ScriptContentUpsert) SetTitles(v []string) *ScriptContentUpsert {
	u.Set(scriptcontent.FieldTitles, v)
	return u
}

// UpdateTitles sets the "titles" field to the value that was provided on create.
func (u *ScriptContentUpsert) UpdateTitles() *ScriptContentUpsert {
	u.SetExcluded(scriptcontent.FieldTitles)
	return u
}

// ClearTitles clears the value of the "titles" field.
func (u *ScriptContentUpsert) ClearTitles() *ScriptContentUpsert {
	u.SetNull(scriptcontent.FieldTitles)
	return u
}

// SetNarration sets the "narration" field.
func (u *ScriptContentUpsert) SetNarration(v string) *ScriptContentUpsert {
	u.Set(scriptcontent.FieldNarration, v)
	return u
}

// UpdateNarration sets the "narration" field to the value that was provided on create.
func (u *ScriptContentUpsert) UpdateNarration() *ScriptContentUpsert {
	u.SetExcluded(scriptcontent.FieldNarration)
	return u
}

// ClearNarration clears the value of the "narration" field.
func (u *ScriptContentUpsert) ClearNarration() *ScriptContentUpsert {
	u.SetNull(scriptcontent.FieldNarration)
	return u
}

// SetDescription sets the "description" field.
func (u *ScriptContentUpsert) SetDescription(v string) *ScriptContentUpsert {
	u.Set(scriptcontent.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *ScriptContentUpsert) UpdateDescription() *ScriptContentUpsert {
	u.SetExcluded(scriptcontent.FieldDescription)
	return u
}

// ClearDescription clears the value of the "description" field.
func (u *ScriptContentUpsert) ClearDescription() *ScriptContentUpsert {
	u.SetNull(scriptcontent.FieldDescription)
	return u
}

// SetScenes sets the "scenes" field.
func (u *ScriptContentUpsert) SetScenes(v []map[string]interface{}) *ScriptContentUpsert {
	u.Set(scriptcontent.FieldScenes, v)
	return u
}

// UpdateScenes sets the "scenes" field to the value that was provided on create.
func (u *ScriptContentUpsert) UpdateScenes() *ScriptContentUpsert {
	u.SetExcluded(scriptcontent.FieldScenes)
	return u
}

// ClearScenes clears the value of the "scenes" field.
func (u *ScriptContentUpsert) ClearScenes() *ScriptContentUpsert {
	u.SetNull(scriptcontent.FieldScenes)
	return u
}

// SetMaterialMapping sets the "material_mapping" field.
func (u *ScriptContentUpsert) SetMaterialMapping(v map[string]string) *ScriptContentUpsert {
	u.Set(scriptcontent.FieldMaterialMapping, v)
	return u
}

// UpdateMaterialMapping sets the "material_mapping" field to the value that was provided on create.
func (u *ScriptContentUpsert) UpdateMaterialMapping() *ScriptContentUpsert {
	u.SetExcluded(scriptcontent.FieldMaterialMapping)
	return u
}

// ClearMaterialMapping clears the value of the "material_mapping" field.
func (u *ScriptContentUpsert) ClearMaterialMapping() *ScriptContentUpsert {
	u.SetNull(scriptcontent.FieldMaterialMapping)
	return u
}

// SetTags sets the "tags" field.
func (u *ScriptContentUpsert) SetTags(v []string) *ScriptContentUpsert {
	u.Set(scriptcontent.FieldTags, v)
	return u
}

// UpdateTags sets the "tags" field to the value that was provided on create.
func (u *ScriptContentUpsert) UpdateTags() *ScriptContentUpsert {
	u.SetExcluded(scriptcontent.FieldTags)
	return u
}

// ClearTags clears the value of the "tags" field.
func (u *ScriptContentUpsert) ClearTags() *ScriptContentUpsert {
	u.SetNull(scriptcontent.FieldTags)
	return u
}

// SetEstimatedDuration sets the "estimated_duration" field.
func (u *ScriptContentUpsert) SetEstimatedDuration(v int) *ScriptContentUpsert {
	u.Set(scriptcontent.FieldEstimatedDuration, v)
	return u
}

// UpdateEstimatedDuration sets the "estimated_duration" field to the value that was provided on create.
func (u *ScriptContentUpsert) UpdateEstimatedDuration() *ScriptContentUpsert {
	u.SetExcluded(scriptcontent.FieldEstimatedDuration)
	return u
}

// AddEstimatedDuration adds v to the "estimated_duration" field.
func (u *ScriptContentUpsert) AddEstimatedDuration(v int) *ScriptContentUpsert {
	u.Add(scriptcontent.FieldEstimatedDuration, v)
	return u
}

// SetWordCount sets the "word_count" field.
func (u *ScriptContentUpsert) SetWordCount(v int) *ScriptContentUpsert {
	u.Set(scriptcontent.FieldWordCount, v)
	return u
}

// UpdateWordCount sets the "word_count" field to the value that was provided on create.
func (u *ScriptContentUpsert) UpdateWordCount() *ScriptContentUpsert {
	u.SetExcluded(scriptcontent.FieldWordCount)
	return u
}

// AddWordCount adds v to the "word_count" field.
func (u *ScriptContentUpsert) AddWordCount(v int) *ScriptContentUpsert {
	u.Add(scriptcontent.FieldWordCount, v)
	return u
}

// SetMaterialCount sets the "material_count" field.
func (u *ScriptContentUpsert) SetMaterialCount(v int) *ScriptContentUpsert {
	u.Set(scriptcontent.FieldMaterialCount, v)
	return u
}

// UpdateMaterialCount sets the "material_count" field to the value that was provided on create.
func (u *ScriptContentUpsert) UpdateMaterialCount() *ScriptContentUpsert {
	u.SetExcluded(scriptcontent.FieldMaterialCount)
	return u
}

// AddMaterialCount adds v to the "material_count" field.
func (u *ScriptContentUpsert) AddMaterialCount(v int) *ScriptContentUpsert {
	u.Add(scriptcontent.FieldMaterialCount, v)
	return u
}

// SetRawPrompt sets the "raw_prompt" field.
func (u *ScriptContentUpsert) SetRawPrompt(v string) *ScriptContentUpsert {
	u.Set(scriptcontent.FieldRawPrompt, v)
	return u
}

// UpdateRawPrompt sets the "raw_prompt" field to the value that was provided on create.
func (u *ScriptContentUpsert) UpdateRawPrompt() *ScriptContentUpsert {
	u.SetExcluded(scriptcontent.FieldRawPrompt)
	return u
}

// ClearRawPrompt clears the value of the "raw_prompt" field.
func (u *ScriptContentUpsert) ClearRawPrompt() *ScriptContentUpsert {
	u.SetNull(scriptcontent.FieldRawPrompt)
	return u
}

// SetRawResponse sets the "raw_response" field.
func (u *ScriptContentUpsert) SetRawResponse(v string) *ScriptContentUpsert {
	u.Set(scriptcontent.FieldRawResponse, v)
	return u
}

// UpdateRawResponse sets the "raw_response" field to the value that was provided on create.
func (u *ScriptContentUpsert) UpdateRawResponse() *ScriptContentUpsert {
	u.SetExcluded(scriptcontent.FieldRawResponse)
	return u
}

// ClearRawResponse clears the value of the "raw_response" field.
func (u *ScriptContentUpsert) ClearRawResponse() *ScriptContentUpsert {
	u.SetNull(scriptcontent.FieldRawResponse)
	return u
}

// SetErrorMessage sets the "error_message" field.
func (u *ScriptContentUpsert) SetErrorMessage(v string) *ScriptContentUpsert {
	u.Set(scriptcontent.FieldErrorMessage, v)
	return u
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *ScriptContentUpsert) UpdateErrorMessage() *ScriptContentUpsert {
	u.SetExcluded(scriptcontent.FieldErrorMessage)
	return u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *ScriptContentUpsert) ClearErrorMessage() *ScriptContentUpsert {
	u.SetNull(scriptcontent.FieldErrorMessage)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ScriptContentUpsert) SetUpdatedAt(v time.Time) *ScriptContentUpsert {
	u.Set(scriptcontent.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ScriptContentUpsert) UpdateUpdatedAt() *ScriptContentUpsert {
	u.SetExcluded(scriptcontent.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ScriptContent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(scriptcontent.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ScriptContentUpsertOne) UpdateNewValues() *ScriptContentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(scriptcontent.FieldID)
		}
		if _, exists := u.create.mutation.TaskID(); exists {
			s.SetIgnore(scriptcontent.FieldTaskID)
		}
		if _, exists := u.create.mutation.SubTaskID(); exists {
			s.SetIgnore(scriptcontent.FieldSubTaskID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(scriptcontent.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ScriptContent.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ScriptContentUpsertOne) Ignore() *ScriptContentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ScriptContentUpsertOne) DoNothing() *ScriptContentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ScriptContentCreate.OnConflict
// documentation for more info.
func (u *ScriptContentUpsertOne) Update(set func(*ScriptContentUpsert)) *ScriptContentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ScriptContentUpsert{UpdateSet: update})
	}))
	return u
}

// SetPersonaID sets the "persona_id" field.
func (u *ScriptContentUpsertOne) SetPersonaID(v string) *ScriptContentUpsertOne {
	return u.Update(func(s *ScriptContentUpsert) {
		s.SetPersonaID(v)
	})
}

// UpdatePersonaID sets the "persona_id" field to the value that was provided on create.
func (u *ScriptContentUpsertOne) UpdatePersonaID() *ScriptContentUpsertOne {
	return u.Update(func(s *ScriptContentUpsert) {
		s.UpdatePersonaID()
	})
}

// ClearPersonaID clears the value of the "persona_id" field.
func (u *ScriptContentUpsertOne) ClearPersonaID() *ScriptContentUpsertOne {
	return u.Update(func(s *ScriptContentUpsert) {
		s.ClearPersonaID()
	})
}

// SetStyle sets the "style" field.
func (u *ScriptContentUpsertOne) SetStyle(v string) *ScriptContentUpsertOne {
	return u.Update(func(s *ScriptContentUpsert) {
		s.SetStyle(v)
	})
}

// UpdateStyle sets the "style" field to the value that was provided on create.
func (u *ScriptContentUpsertOne) UpdateStyle() *ScriptContentUpsertOne {
	return u.Update(func(s *ScriptContentUpsert) {
		s.UpdateStyle()
	})
}

// SetGenerationStatus sets the "generation_status" field.
func (u *ScriptContentUpsertOne) SetGenerationStatus(v scriptcontent.GenerationStatus) *ScriptContentUpsertOne {
	return u.Update(func(s *ScriptContentUpsert) {
		s.SetGenerationStatus(v)
	})
}

// UpdateGenerationStatus sets the "generation_status" field to the value that was provided on create.
func (u *ScriptContentUpsertOne) UpdateGenerationStatus() *ScriptContentUpsertOne {
	return u.Update(func(s *ScriptContentUpsert) {
		s.UpdateGenerationStatus()
	})
}

// SetTitles sets the "titles" field.
func (u *ScriptContentUpsertOne) SetTitles(v []string) *ScriptContentUpsertOne {
	return u.Update(func(s *ScriptContentUpsert) {
		s.SetTitles(v)
	})
}

// UpdateTitles sets the "titles" field to the value that was provided on create.
func (u *ScriptContentUpsertOne) UpdateTitles() *ScriptContentUpsertOne {
	return u.Update(func(s *ScriptContentUpsert) {
		s.UpdateTitles()
	})
}

// ClearTitles clears the value of the "titles" field.
func (u *ScriptContentUpsertOne) ClearTitles() *ScriptContentUpsertOne {
	return u.Update(func(s *ScriptContentUpsert) {
		s.ClearTitles()
	})
}

// SetNarration sets the "narration" field.
func (u *ScriptContentUpsertOne) SetNarration(v string) *ScriptContentUpsertOne {
	return u.Update(func(s *ScriptContentUpsert) {
		s.SetNarration(v)
	})
}

// UpdateNarration sets the "narration" field to the value that was provided on create.
func (u *ScriptContentUpsertOne) UpdateNarration() *ScriptContentUpsertOne {
	return u.Update(func(s *ScriptContentUpsert) {
		s.UpdateNarration()
	})
}

// ClearNarration clears the value of the "narration" field.
func (u *ScriptContentUpsertOne) ClearNarration() *ScriptContentUpsertOne {
	return u.Update(func(s *ScriptContentUpsert) {
		s.ClearNarration()
	})
}

// SetDescription sets the "description" field.
func (u *ScriptContentUpsertOne) SetDescription(v string) *ScriptContentUpsertOne {
	return u.Update(func(s *ScriptContentUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *ScriptContentUpsertOne) UpdateDescription() *ScriptContentUpsertOne {
	return u.Update(func(s *ScriptContentUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *ScriptContentUpsertOne) ClearDescription() *ScriptContentUpsertOne {
	return u.Update(func(s *ScriptContentUpsert) {
		s.ClearDescription()
	})
}

// SetScenes sets the "scenes" field.
func (u *ScriptContentUpsertOne) SetScenes(v []map[string]interface{}) *ScriptContentUpsertOne {
	return u.Update(func(s *ScriptContentUpsert) {
		s.SetScenes(v)
	})
}

// UpdateScenes sets the "scenes" field to the value that was provided on create.
func (u *ScriptContentUpsertOne) UpdateScenes() *ScriptContentUpsertOne {
	return u.Update(func(s *ScriptContentUpsert) {
		s.UpdateScenes()
	})
}

// ClearScenes clears the value of the "scenes" field.
func (u *ScriptContentUpsertOne) ClearScenes() *ScriptContentUpsertOne {
	return u.Update(func(s *ScriptContentUpsert) {
		s.ClearScenes()
	})
}

// SetMaterialMapping sets the "material_mapping" field.
func (u *ScriptContentUpsertOne) SetMaterialMapping(v map[string]string) *ScriptContentUpsertOne {
	return u.Update(func(s *ScriptContentUpsert) {
		s.SetMaterialMapping(v)
	})
}

// UpdateMaterialMapping sets the "material_mapping" field to the value that was provided on create.
func (u *ScriptContentUpsertOne) UpdateMaterialMapping() *ScriptContentUpsertOne {
	return u.Update(func(s *ScriptContentUpsert) {
		s.UpdateMaterialMapping()
	})
}

// ClearMaterialMapping clears the value of the "material_mapping" field.
func (u *ScriptContentUpsertOne) ClearMaterialMapping() *ScriptContentUpsertOne {
	return u.Update(func(s *ScriptContentUpsert) {
		s.ClearMaterialMapping()
	})
}

// SetTags sets the "tags" field.
func (u *ScriptContentUpsertOne) SetTags(v []string) *ScriptContentUpsertOne {
	return u.Update(func(s *ScriptContentUpsert) {
		s.SetTags(v)
	})
}

// UpdateTags sets the "tags" field to the value that was provided on create.
func (u *ScriptContentUpsertOne) UpdateTags() *ScriptContentUpsertOne {
	return u.Update(func(s *ScriptContentUpsert) {
		s.UpdateTags()
	})
}

// ClearTags clears the value of the "tags" field.
func (u *ScriptContentUpsertOne) ClearTags() *ScriptContentUpsertOne {
	return u.Update(func(s *ScriptContentUpsert) {
		s.ClearTags()
	})
}

// SetEstimatedDuration sets the "estimated_duration" field.
func (u *ScriptContentUpsertOne) SetEstimatedDuration(v int) *ScriptContentUpsertOne {
	return u.Update(func(s *ScriptContentUpsert) {
		s.SetEstimatedDuration(v)
	})
}

// AddEstimatedDuration adds v to the "estimated_duration" field.
func (u *ScriptContentUpsertOne) AddEstimatedDuration(v int) *ScriptContentUpsertOne {
	return u.Update(func(s *ScriptContentUpsert) {
		s.AddEstimatedDuration(v)
	})
}

// UpdateEstimatedDuration sets the "estimated_duration" field to the value that was provided on create.
func (u *ScriptContentUpsertOne) UpdateEstimatedDuration() *ScriptContentUpsertOne {
	return u.Update(func(s *ScriptContentUpsert) {
		s.UpdateEstimatedDuration()
	})
}

// SetWordCount sets the "word_count" field.
func (u *ScriptContentUpsertOne) SetWordCount(v int) *ScriptContentUpsertOne {
	return u.Update(func(s *ScriptContentUpsert) {
		s.SetWordCount(v)
	})
}

// AddWordCount adds v to the "word_count" field.
func (u *ScriptContentUpsertOne) AddWordCount(v int) *ScriptContentUpsertOne {
	return u.Update(func(s *ScriptContentUpsert) {
		s.AddWordCount(v)
	})
}

// UpdateWordCount sets the "word_count" field to the value that was provided on create.
func (u *ScriptContentUpsertOne) UpdateWordCount() *ScriptContentUpsertOne {
	return u.Update(func(s *ScriptContentUpsert) {
		s.UpdateWordCount()
	})
}

// SetMaterialCount sets the "material_count" field.
func (u *ScriptContentUpsertOne) SetMaterialCount(v int) *ScriptContentUpsertOne {
	return u.Update(func(s *ScriptContentUpsert) {
		s.SetMaterialCount(v)
	})
}

// AddMaterialCount adds v to the "material_count" field.
func (u *ScriptContentUpsertOne) AddMaterialCount(v int) *ScriptContentUpsertOne {
	return u.Update(func(s *ScriptContentUpsert) {
		s.AddMaterialCount(v)
	})
}

// UpdateMaterialCount sets the "material_count" field to the value that was provided on create.
func (u *ScriptContentUpsertOne) UpdateMaterialCount() *ScriptContentUpsertOne {
	return u.Update(func(s *ScriptContentUpsert) {
		s.UpdateMaterialCount()
	})
}

// SetRawPrompt sets the "raw_prompt" field.
func (u *ScriptContentUpsertOne) SetRawPrompt(v string) *ScriptContentUpsertOne {
	return u.Update(func(s *ScriptContentUpsert) {
		s.SetRawPrompt(v)
	})
}

// UpdateRawPrompt sets the "raw_prompt" field to the value that was provided on create.
func (u *ScriptContentUpsertOne) UpdateRawPrompt() *ScriptContentUpsertOne {
	return u.Update(func(s *ScriptContentUpsert) {
		s.UpdateRawPrompt()
	})
}

// ClearRawPrompt clears the value of the "raw_prompt" field.
func (u *ScriptContentUpsertOne) ClearRawPrompt() *ScriptContentUpsertOne {
	return u.Update(func(s *ScriptContentUpsert) {
		s.ClearRawPrompt()
	})
}

// SetRawResponse sets the "raw_response" field.
func (u *ScriptContentUpsertOne) SetRawResponse(v string) *ScriptContentUpsertOne {
	return u.Update(func(s *ScriptContentUpsert) {
		s.SetRawResponse(v)
	})
}

// UpdateRawResponse sets the "raw_response" field to the value that was provided on create.
func (u *ScriptContentUpsertOne) UpdateRawResponse() *ScriptContentUpsertOne {
	return u.Update(func(s *ScriptContentUpsert) {
		s.UpdateRawResponse()
	})
}

// ClearRawResponse clears the value of the "raw_response" field.
func (u *ScriptContentUpsertOne) ClearRawResponse() *ScriptContentUpsertOne {
	return u.Update(func(s *ScriptContentUpsert) {
		s.ClearRawResponse()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *ScriptContentUpsertOne) SetErrorMessage(v string) *ScriptContentUpsertOne {
	return u.Update(func(s *ScriptContentUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *ScriptContentUpsertOne) UpdateErrorMessage() *ScriptContentUpsertOne {
	return u.Update(func(s *ScriptContentUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *ScriptContentUpsertOne) ClearErrorMessage() *ScriptContentUpsertOne {
	return u.Update(func(s *ScriptContentUpsert) {
		s.ClearErrorMessage()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ScriptContentUpsertOne) SetUpdatedAt(v time.Time) *ScriptContentUpsertOne {
	return u.Update(func(s *ScriptContentUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ScriptContentUpsertOne) UpdateUpdatedAt() *ScriptContentUpsertOne {
	return u.Update(func(s *ScriptContentUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ScriptContentUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ScriptContentCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ScriptContentUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ScriptContentUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ScriptContentUpsertOne.ID is not supported by MySQL driver. Use ScriptContentUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ScriptContentUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ScriptContentCreateBulk is the builder for creating many ScriptContent entities in bulk.
type ScriptContentCreateBulk struct {
	config
	err      error
	builders []*ScriptContentCreate
	conflict []sql.ConflictOption
}

// Save creates the ScriptContent entities in the database.
func (_c *ScriptContentCreateBulk) Save(ctx context.Context) ([]*ScriptContent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ScriptContent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ScriptContentMutation)
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
func (_c *ScriptContentCreateBulk) SaveX(ctx context.Context) []*ScriptContent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScriptContentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScriptContentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ScriptContent.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ScriptContentUpsert) {
//			SetTaskID(v+v).
//		}).
//		Exec(ctx)
func (_c *ScriptContentCreateBulk) OnConflict(opts ...sql.ConflictOption) *ScriptContentUpsertBulk {
	_c.conflict = opts
	return &ScriptContentUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ScriptContent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ScriptContentCreateBulk) OnConflictColumns(columns ...string) *ScriptContentUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ScriptContentUpsertBulk{
		create: _c,
	}
}

// ScriptContentUpsertBulk is the builder for "upsert"-ing
// a bulk of ScriptContent nodes.
type ScriptContentUpsertBulk struct {
	create *ScriptContentCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ScriptContent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(scriptcontent.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ScriptContentUpsertBulk) UpdateNewValues() *ScriptContentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(scriptcontent.FieldID)
			}
			if _, exists := b.mutation.TaskID(); exists {
				s.SetIgnore(scriptcontent.FieldTaskID)
			}
			if _, exists := b.mutation.SubTaskID(); exists {
				s.SetIgnore(scriptcontent.FieldSubTaskID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(scriptcontent.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ScriptContent.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ScriptContentUpsertBulk) Ignore() *ScriptContentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ScriptContentUpsertBulk) DoNothing() *ScriptContentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ScriptContentCreateBulk.OnConflict
// documentation for more info.
func (u *ScriptContentUpsertBulk) Update(set func(*ScriptContentUpsert)) *ScriptContentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ScriptContentUpsert{UpdateSet: update})
	}))
	return u
}

// SetPersonaID sets the "persona_id" field.
func (u *ScriptContentUpsertBulk) SetPersonaID(v string) *ScriptContentUpsertBulk {
	return u.Update(func(s *ScriptContentUpsert) {
		s.SetPersonaID(v)
	})
}

// UpdatePersonaID sets the "persona_id" field to the value that was provided on create.
func (u *ScriptContentUpsertBulk) UpdatePersonaID() *ScriptContentUpsertBulk {
	return u.Update(func(s *ScriptContentUpsert) {
		s.UpdatePersonaID()
	})
}

// ClearPersonaID clears the value of the "persona_id" field.
func (u *ScriptContentUpsertBulk) ClearPersonaID() *ScriptContentUpsertBulk {
	return u.Update(func(s *ScriptContentUpsert) {
		s.ClearPersonaID()
	})
}

// SetStyle sets the "style" field.
func (u *ScriptContentUpsertBulk) SetStyle(v string) *ScriptContentUpsertBulk {
	return u.Update(func(s *ScriptContentUpsert) {
		s.SetStyle(v)
	})
}

// UpdateStyle sets the "style" field to the value that was provided on create.
func (u *ScriptContentUpsertBulk) UpdateStyle() *ScriptContentUpsertBulk {
	return u.Update(func(s *ScriptContentUpsert) {
		s.UpdateStyle()
	})
}

// SetGenerationStatus sets the "generation_status" field.
func (u *ScriptContentUpsertBulk) SetGenerationStatus(v scriptcontent.GenerationStatus) *ScriptContentUpsertBulk {
	return u.Update(func(s *ScriptContentUpsert) {
		s.SetGenerationStatus(v)
	})
}

// UpdateGenerationStatus sets the "generation_status" field to the value that was provided on create.
func (u *ScriptContentUpsertBulk) UpdateGenerationStatus() *ScriptContentUpsertBulk {
	return u.Update(func(s *ScriptContentUpsert) {
		s.UpdateGenerationStatus()
	})
}

// SetTitles sets the "titles" field.
func (u *ScriptContentUpsertBulk) SetTitles(v []string) *ScriptContentUpsertBulk {
	return u.Update(func(s *ScriptContentUpsert) {
		s.SetTitles(v)
	})
}

// UpdateTitles sets the "titles" field to the value that was provided on create.
func (u *ScriptContentUpsertBulk) UpdateTitles() *ScriptContentUpsertBulk {
	return u.Update(func(s *ScriptContentUpsert) {
		s.UpdateTitles()
	})
}

// ClearTitles clears the value of the "titles" field.
func (u *ScriptContentUpsertBulk) ClearTitles() *ScriptContentUpsertBulk {
	return u.Update(func(s *ScriptContentUpsert) {
		s.ClearTitles()
	})
}

// SetNarration sets the "narration" field.
func (u *ScriptContentUpsertBulk) SetNarration(v string) *ScriptContentUpsertBulk {
	return u.Update(func(s *ScriptContentUpsert) {
		s.SetNarration(v)
	})
}

// UpdateNarration sets the "narration" field to the value that was provided on create.
func (u *ScriptContentUpsertBulk) UpdateNarration() *ScriptContentUpsertBulk {
	return u.Update(func(s *ScriptContentUpsert) {
		s.UpdateNarration()
	})
}

// ClearNarration clears the value of the "narration" field.
func (u *ScriptContentUpsertBulk) ClearNarration() *ScriptContentUpsertBulk {
	return u.Update(func(s *ScriptContentUpsert) {
		s.ClearNarration()
	})
}

// SetDescription sets the "description" field.
func (u *ScriptContentUpsertBulk) SetDescription(v string) *ScriptContentUpsertBulk {
	return u.Update(func(s *ScriptContentUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *ScriptContentUpsertBulk) UpdateDescription() *ScriptContentUpsertBulk {
	return u.Update(func(s *ScriptContentUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *ScriptContentUpsertBulk) ClearDescription() *ScriptContentUpsertBulk {
	return u.Update(func(s *ScriptContentUpsert) {
		s.ClearDescription()
	})
}

// SetScenes sets the "scenes" field.
func (u *ScriptContentUpsertBulk) SetScenes(v []map[string]interface{}) *ScriptContentUpsertBulk {
	return u.Update(func(s *ScriptContentUpsert) {
		s.SetScenes(v)
	})
}

// UpdateScenes sets the "scenes" field to the value that was provided on create.
func (u *ScriptContentUpsertBulk) UpdateScenes() *ScriptContentUpsertBulk {
	return u.Update(func(s *ScriptContentUpsert) {
		s.UpdateScenes()
	})
}

// ClearScenes clears the value of the "scenes" field.
func (u *ScriptContentUpsertBulk) ClearScenes() *ScriptContentUpsertBulk {
	return u.Update(func(s *ScriptContentUpsert) {
		s.ClearScenes()
	})
}

// SetMaterialMapping sets the "material_mapping" field.
func (u *ScriptContentUpsertBulk) SetMaterialMapping(v map[string]string) *ScriptContentUpsertBulk {
	return u.Update(func(s *ScriptContentUpsert) {
		s.SetMaterialMapping(v)
	})
}

// UpdateMaterialMapping sets the "material_mapping" field to the value that was provided on create.
func (u *ScriptContentUpsertBulk) UpdateMaterialMapping() *ScriptContentUpsertBulk {
	return u.Update(func(s *ScriptContentUpsert) {
		s.UpdateMaterialMapping()
	})
}

// ClearMaterialMapping clears the value of the "material_mapping" field.
func (u *ScriptContentUpsertBulk) ClearMaterialMapping() *ScriptContentUpsertBulk {
	return u.Update(func(s *ScriptContentUpsert) {
		s.ClearMaterialMapping()
	})
}

// SetTags sets the "tags" field.
func (u *ScriptContentUpsertBulk) SetTags(v []string) *ScriptContentUpsertBulk {
	return u.Update(func(s *ScriptContentUpsert) {
		s.SetTags(v)
	})
}

// UpdateTags sets the "tags" field to the value that was provided on create.
func (u *ScriptContentUpsertBulk) UpdateTags() *ScriptContentUpsertBulk {
	return u.Update(func(s *ScriptContentUpsert) {
		s.UpdateTags()
	})
}

// ClearTags clears the value of the "tags" field.
func (u *ScriptContentUpsertBulk) ClearTags() *ScriptContentUpsertBulk {
	return u.Update(func(s *ScriptContentUpsert) {
		s.ClearTags()
	})
}

// SetEstimatedDuration sets the "estimated_duration" field.
func (u *ScriptContentUpsertBulk) SetEstimatedDuration(v int) *ScriptContentUpsertBulk {
	return u.Update(func(s *ScriptContentUpsert) {
		s.SetEstimatedDuration(v)
	})
}

// AddEstimatedDuration adds v to the "estimated_duration" field.
func (u *ScriptContentUpsertBulk) AddEstimatedDuration(v int) *ScriptContentUpsertBulk {
	return u.Update(func(s *ScriptContentUpsert) {
		s.AddEstimatedDuration(v)
	})
}

// UpdateEstimatedDuration sets the "estimated_duration" field to the value that was provided on create.
func (u *ScriptContentUpsertBulk) UpdateEstimatedDuration() *ScriptContentUpsertBulk {
	return u.Update(func(s *ScriptContentUpsert) {
		s.UpdateEstimatedDuration()
	})
}

// SetWordCount sets the "word_count" field.
func (u *ScriptContentUpsertBulk) SetWordCount(v int) *ScriptContentUpsertBulk {
	return u.Update(func(s *ScriptContentUpsert) {
		s.SetWordCount(v)
	})
}

// AddWordCount adds v to the "word_count" field.
func (u *ScriptContentUpsertBulk) AddWordCount(v int) *ScriptContentUpsertBulk {
	return u.Update(func(s *ScriptContentUpsert) {
		s.AddWordCount(v)
	})
}

// UpdateWordCount sets the "word_count" field to the value that was provided on create.
func (u *ScriptContentUpsertBulk) UpdateWordCount() *ScriptContentUpsertBulk {
	return u.Update(func(s *ScriptContentUpsert) {
		s.UpdateWordCount()
	})
}

// SetMaterialCount sets the "material_count" field.
func (u *ScriptContentUpsertBulk) SetMaterialCount(v int) *ScriptContentUpsertBulk {
	return u.Update(func(s *ScriptContentUpsert) {
		s.SetMaterialCount(v)
	})
}

// AddMaterialCount adds v to the "material_count" field.
func (u *ScriptContentUpsertBulk) AddMaterialCount(v int) *ScriptContentUpsertBulk {
	return u.Update(func(s *ScriptContentUpsert) {
		s.AddMaterialCount(v)
	})
}

// UpdateMaterialCount sets the "material_count" field to the value that was provided on create.
func (u *ScriptContentUpsertBulk) UpdateMaterialCount() *ScriptContentUpsertBulk {
	return u.Update(func(s *ScriptContentUpsert) {
		s.UpdateMaterialCount()
	})
}

// SetRawPrompt sets the "raw_prompt" field.
func (u *ScriptContentUpsertBulk) SetRawPrompt(v string) *ScriptContentUpsertBulk {
	return u.Update(func(s *ScriptContentUpsert) {
		s.SetRawPrompt(v)
	})
}

// UpdateRawPrompt sets the "raw_prompt" field to the value that was provided on create.
func (u *ScriptContentUpsertBulk) UpdateRawPrompt() *ScriptContentUpsertBulk {
	return u.Update(func(s *ScriptContentUpsert) {
		s.UpdateRawPrompt()
	})
}

// ClearRawPrompt clears the value of the "raw_prompt" field.
func (u *ScriptContentUpsertBulk) ClearRawPrompt() *ScriptContentUpsertBulk {
	return u.Update(func(s *ScriptContentUpsert) {
		s.ClearRawPrompt()
	})
}

// SetRawResponse sets the "raw_response" field.
func (u *ScriptContentUpsertBulk) SetRawResponse(v string) *ScriptContentUpsertBulk {
	return u.Update(func(s *ScriptContentUpsert) {
		s.SetRawResponse(v)
	})
}

// UpdateRawResponse sets the "raw_response" field to the value that was provided on create.
func (u *ScriptContentUpsertBulk) UpdateRawResponse() *ScriptContentUpsertBulk {
	return u.Update(func(s *ScriptContentUpsert) {
		s.UpdateRawResponse()
	})
}

// ClearRawResponse clears the value of the "raw_response" field.
func (u *ScriptContentUpsertBulk) ClearRawResponse() *ScriptContentUpsertBulk {
	return u.Update(func(s *ScriptContentUpsert) {
		s.ClearRawResponse()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *ScriptContentUpsertBulk) SetErrorMessage(v string) *ScriptContentUpsertBulk {
	return u.Update(func(s *ScriptContentUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *ScriptContentUpsertBulk) UpdateErrorMessage() *ScriptContentUpsertBulk {
	return u.Update(func(s *ScriptContentUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *ScriptContentUpsertBulk) ClearErrorMessage() *ScriptContentUpsertBulk {
	return u.Update(func(s *ScriptContentUpsert) {
		s.ClearErrorMessage()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ScriptContentUpsertBulk) SetUpdatedAt(v time.Time) *ScriptContentUpsertBulk {
	return u.Update(func(s *ScriptContentUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ScriptContentUpsertBulk) UpdateUpdatedAt() *ScriptContentUpsertBulk {
	return u.Update(func(s *ScriptContentUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ScriptContentUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ScriptContentCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ScriptContentCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ScriptContentUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
