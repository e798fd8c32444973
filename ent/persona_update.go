// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/textloom/textloom/ent/persona"
	"github.com/textloom/textloom/ent/predicate"
)

// PersonaUpdate is the builder for updating Persona entities.
type PersonaUpdate struct {
	config
	hooks    []Hook
	mutation *PersonaMutation
}

// Where appends a list predicates to the PersonaUpdate builder.
func (_u *PersonaUpdate) Where(ps ...predicate.Persona) *PersonaUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *PersonaUpdate) SetName(v string) *PersonaUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *PersonaUpdate) SetNillableName(v *string) *PersonaUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetPersonaType sets the "persona_type" field.
func (_u *PersonaUpdate) SetPersonaType(v string) *PersonaUpdate {
	_u.mutation.SetPersonaType(v)
	return _u
}

// SetNillablePersonaType sets the "persona_type" field if the given value is not nil.
func (_u *PersonaUpdate) SetNillablePersonaType(v *string) *PersonaUpdate {
	if v != nil {
		_u.SetPersonaType(*v)
	}
	return _u
}

// ClearPersonaType clears the value of the "persona_type" field.
func (_u *PersonaUpdate) ClearPersonaType() *PersonaUpdate {
	_u.mutation.ClearPersonaType()
	return _u
}

// SetStyle sets the "style" field.
func (_u *PersonaUpdate) SetStyle(v string) *PersonaUpdate {
	_u.mutation.SetStyle(v)
	return _u
}

// SetNillableStyle sets the "style" field if the given value is not nil.
func (_u *PersonaUpdate) SetNillableStyle(v *string) *PersonaUpdate {
	if v != nil {
		_u.SetStyle(*v)
	}
	return _u
}

// ClearStyle clears the value of the "style" field.
func (_u *PersonaUpdate) ClearStyle() *PersonaUpdate {
	_u.mutation.ClearStyle()
	return _u
}

// SetTargetAudience sets the "target_audience" field.
func (_u *PersonaUpdate) SetTargetAudience(v string) *PersonaUpdate {
	_u.mutation.SetTargetAudience(v)
	return _u
}

// SetNillableTargetAudience sets the "target_audience" field if the given value is not nil.
func (_u *PersonaUpdate) SetNillableTargetAudience(v *string) *PersonaUpdate {
	if v != nil {
		_u.SetTargetAudience(*v)
	}
	return _u
}

// ClearTargetAudience clears the value of the "target_audience" field.
func (_u *PersonaUpdate) ClearTargetAudience() *PersonaUpdate {
	_u.mutation.ClearTargetAudience()
	return _u
}

// SetCharacteristics sets the "characteristics" field.
func (_u *PersonaUpdate) SetCharacteristics(v []string) *PersonaUpdate {
	_u.mutation.SetCharacteristics(v)
	return _u
}

// AppendCharacteristics appends value to the "characteristics" field.
func (_u *PersonaUpdate) AppendCharacteristics(v []string) *PersonaUpdate {
	_u.mutation.AppendCharacteristics(v)
	return _u
}

// ClearCharacteristics clears the value of the "characteristics" field.
func (_u *PersonaUpdate) ClearCharacteristics() *PersonaUpdate {
	_u.mutation.ClearCharacteristics()
	return _u
}

// SetTone sets the "tone" field.
func (_u *PersonaUpdate) SetTone(v string) *PersonaUpdate {
	_u.mutation.SetTone(v)
	return _u
}

// SetNillableTone sets the "tone" field if the given value is not nil.
func (_u *PersonaUpdate) SetNillableTone(v *string) *PersonaUpdate {
	if v != nil {
		_u.SetTone(*v)
	}
	return _u
}

// ClearTone clears the value of the "tone" field.
func (_u *PersonaUpdate) ClearTone() *PersonaUpdate {
	_u.mutation.ClearTone()
	return _u
}

// SetKeywords sets the "keywords" field.
func (_u *PersonaUpdate) SetKeywords(v []string) *PersonaUpdate {
	_u.mutation.SetKeywords(v)
	return _u
}

// AppendKeywords appends value to the "keywords" field.
func (_u *PersonaUpdate) AppendKeywords(v []string) *PersonaUpdate {
	_u.mutation.AppendKeywords(v)
	return _u
}

// ClearKeywords clears the value of the "keywords" field.
func (_u *PersonaUpdate) ClearKeywords() *PersonaUpdate {
	_u.mutation.ClearKeywords()
	return _u
}

// SetCustomPrompt sets the "custom_prompt" field.
func (_u *PersonaUpdate) SetCustomPrompt(v string) *PersonaUpdate {
	_u.mutation.SetCustomPrompt(v)
	return _u
}

// SetNillableCustomPrompt sets the "custom_prompt" field if the given value is not nil.
func (_u *PersonaUpdate) SetNillableCustomPrompt(v *string) *PersonaUpdate {
	if v != nil {
		_u.SetCustomPrompt(*v)
	}
	return _u
}

// ClearCustomPrompt clears the value of the "custom_prompt" field.
func (_u *PersonaUpdate) ClearCustomPrompt() *PersonaUpdate {
	_u.mutation.ClearCustomPrompt()
	return _u
}

// SetIsPreset sets the "is_preset" field.
func (_u *PersonaUpdate) SetIsPreset(v bool) *PersonaUpdate {
	_u.mutation.SetIsPreset(v)
	return _u
}

// SetNillableIsPreset sets the "is_preset" field if the given value is not nil.
func (_u *PersonaUpdate) SetNillableIsPreset(v *bool) *PersonaUpdate {
	if v != nil {
		_u.SetIsPreset(*v)
	}
	return _u
}

// Mutation returns the PersonaMutation object of the builder.
func (_u *PersonaUpdate) Mutation() *PersonaMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PersonaUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PersonaUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PersonaUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PersonaUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *PersonaUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(persona.Table, persona.Columns, sqlgraph.NewFieldSpec(persona.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(persona.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.PersonaType(); ok {
		_spec.SetField(persona.FieldPersonaType, field.TypeString, value)
	}
	if _u.mutation.PersonaTypeCleared() {
		_spec.ClearField(persona.FieldPersonaType, field.TypeString)
	}
	if value, ok := _u.mutation.Style(); ok {
		_spec.SetField(persona.FieldStyle, field.TypeString, value)
	}
	if _u.mutation.StyleCleared() {
		_spec.ClearField(persona.FieldStyle, field.TypeString)
	}
	if value, ok := _u.mutation.TargetAudience(); ok {
		_spec.SetField(persona.FieldTargetAudience, field.TypeString, value)
	}
	if _u.mutation.TargetAudienceCleared() {
		_spec.ClearField(persona.FieldTargetAudience, field.TypeString)
	}
	if value, ok := _u.mutation.Characteristics(); ok {
		_spec.SetField(persona.FieldCharacteristics, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCharacteristics(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, persona.FieldCharacteristics, value)
		})
	}
	if _u.mutation.CharacteristicsCleared() {
		_spec.ClearField(persona.FieldCharacteristics, field.TypeJSON)
	}
	if value, ok := _u.mutation.Tone(); ok {
		_spec.SetField(persona.FieldTone, field.TypeString, value)
	}
	if _u.mutation.ToneCleared() {
		_spec.ClearField(persona.FieldTone, field.TypeString)
	}
	if value, ok := _u.mutation.Keywords(); ok {
		_spec.SetField(persona.FieldKeywords, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedKeywords(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, persona.FieldKeywords, value)
		})
	}
	if _u.mutation.KeywordsCleared() {
		_spec.ClearField(persona.FieldKeywords, field.TypeJSON)
	}
	if value, ok := _u.mutation.CustomPrompt(); ok {
		_spec.SetField(persona.FieldCustomPrompt, field.TypeString, value)
	}
	if _u.mutation.CustomPromptCleared() {
		_spec.ClearField(persona.FieldCustomPrompt, field.TypeString)
	}
	if value, ok := _u.mutation.IsPreset(); ok {
		_spec.SetField(persona.FieldIsPreset, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{persona.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PersonaUpdateOne is the builder for updating a single Persona entity.
type PersonaUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PersonaMutation
}

// SetName sets the "name" field.
func (_u *PersonaUpdateOne) SetName(v string) *PersonaUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *PersonaUpdateOne) SetNillableName(v *string) *PersonaUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetPersonaType sets the "persona_type" field.
func (_u *PersonaUpdateOne) SetPersonaType(v string) *PersonaUpdateOne {
	_u.mutation.SetPersonaType(v)
	return _u
}

// SetNillablePersonaType sets the "persona_type" field if the given value is not nil.
func (_u *PersonaUpdateOne) SetNillablePersonaType(v *string) *PersonaUpdateOne {
	if v != nil {
		_u.SetPersonaType(*v)
	}
	return _u
}

// ClearPersonaType clears the value of the "persona_type" field.
func (_u *PersonaUpdateOne) ClearPersonaType() *PersonaUpdateOne {
	_u.mutation.ClearPersonaType()
	return _u
}

// SetStyle sets the "style" field.
func (_u *PersonaUpdateOne) SetStyle(v string) *PersonaUpdateOne {
	_u.mutation.SetStyle(v)
	return _u
}

// SetNillableStyle sets the "style" field if the given value is not nil.
func (_u *PersonaUpdateOne) SetNillableStyle(v *string) *PersonaUpdateOne {
	if v != nil {
		_u.SetStyle(*v)
	}
	return _u
}

// ClearStyle clears the value of the "style" field.
func (_u *PersonaUpdateOne) ClearStyle() *PersonaUpdateOne {
	_u.mutation.ClearStyle()
	return _u
}

// SetTargetAudience sets the "target_audience" field.
func (_u *PersonaUpdateOne) SetTargetAudience(v string) *PersonaUpdateOne {
	_u.mutation.SetTargetAudience(v)
	return _u
}

// SetNillableTargetAudience sets the "target_audience" field if the given value is not nil.
func (_u *PersonaUpdateOne) SetNillableTargetAudience(v *string) *PersonaUpdateOne {
	if v != nil {
		_u.SetTargetAudience(*v)
	}
	return _u
}

// ClearTargetAudience clears the value of the "target_audience" field.
func (_u *PersonaUpdateOne) ClearTargetAudience() *PersonaUpdateOne {
	_u.mutation.ClearTargetAudience()
	return _u
}

// SetCharacteristics sets the "characteristics" field.
func (_u *PersonaUpdateOne) SetCharacteristics(v []string) *PersonaUpdateOne {
	_u.mutation.SetCharacteristics(v)
	return _u
}

// AppendCharacteristics appends value to the "characteristics" field.
func (_u *PersonaUpdateOne) AppendCharacteristics(v []string) *PersonaUpdateOne {
	_u.mutation.AppendCharacteristics(v)
	return _u
}

// ClearCharacteristics clears the value of the "characteristics" field.
func (_u *PersonaUpdateOne) ClearCharacteristics() *PersonaUpdateOne {
	_u.mutation.ClearCharacteristics()
	return _u
}

// SetTone sets the "tone" field.
func (_u *PersonaUpdateOne) SetTone(v string) *PersonaUpdateOne {
	_u.mutation.SetTone(v)
	return _u
}

// SetNillableTone sets the "tone" field if the given value is not nil.
func (_u *PersonaUpdateOne) SetNillableTone(v *string) *PersonaUpdateOne {
	if v != nil {
		_u.SetTone(*v)
	}
	return _u
}

// ClearTone clears the value of the "tone" field.
func (_u *PersonaUpdateOne) ClearTone() *PersonaUpdateOne {
	_u.mutation.ClearTone()
	return _u
}

// SetKeywords sets the "keywords" field.
func (_u *PersonaUpdateOne) SetKeywords(v []string) *PersonaUpdateOne {
	_u.mutation.SetKeywords(v)
	return _u
}

// AppendKeywords appends value to the "keywords" field.
func (_u *PersonaUpdateOne) AppendKeywords(v []string) *PersonaUpdateOne {
	_u.mutation.AppendKeywords(v)
	return _u
}

// ClearKeywords clears the value of the "keywords" field.
func (_u *PersonaUpdateOne) ClearKeywords() *PersonaUpdateOne {
	_u.mutation.ClearKeywords()
	return _u
}

// SetCustomPrompt sets the "custom_prompt" field.
func (_u *PersonaUpdateOne) SetCustomPrompt(v string) *PersonaUpdateOne {
	_u.mutation.SetCustomPrompt(v)
	return _u
}

// SetNillableCustomPrompt sets the "custom_prompt" field if the given value is not nil.
func (_u *PersonaUpdateOne) SetNillableCustomPrompt(v *string) *PersonaUpdateOne {
	if v != nil {
		_u.SetCustomPrompt(*v)
	}
	return _u
}

// ClearCustomPrompt clears the value of the "custom_prompt" field.
func (_u *PersonaUpdateOne) ClearCustomPrompt() *PersonaUpdateOne {
	_u.mutation.ClearCustomPrompt()
	return _u
}

// SetIsPreset sets the "is_preset" field.
func (_u *PersonaUpdateOne) SetIsPreset(v bool) *PersonaUpdateOne {
	_u.mutation.SetIsPreset(v)
	return _u
}

// SetNillableIsPreset sets the "is_preset" field if the given value is not nil.
func (_u *PersonaUpdateOne) SetNillableIsPreset(v *bool) *PersonaUpdateOne {
	if v != nil {
		_u.SetIsPreset(*v)
	}
	return _u
}

// Mutation returns the PersonaMutation object of the builder.
func (_u *PersonaUpdateOne) Mutation() *PersonaMutation {
	return _u.mutation
}

// Where appends a list predicates to the PersonaUpdate builder.
func (_u *PersonaUpdateOne) Where(ps ...predicate.Persona) *PersonaUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PersonaUpdateOne) Select(field string, fields ...string) *PersonaUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Persona entity.
func (_u *PersonaUpdateOne) Save(ctx context.Context) (*Persona, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PersonaUpdateOne) SaveX(ctx context.Context) *Persona {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PersonaUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PersonaUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *PersonaUpdateOne) sqlSave(ctx context.Context) (_node *Persona, err error) {
	_spec := sqlgraph.NewUpdateSpec(persona.Table, persona.Columns, sqlgraph.NewFieldSpec(persona.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Persona.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, persona.FieldID)
		for _, f := range fields {
			if !persona.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != persona.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(persona.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.PersonaType(); ok {
		_spec.SetField(persona.FieldPersonaType, field.TypeString, value)
	}
	if _u.mutation.PersonaTypeCleared() {
		_spec.ClearField(persona.FieldPersonaType, field.TypeString)
	}
	if value, ok := _u.mutation.Style(); ok {
		_spec.SetField(persona.FieldStyle, field.TypeString, value)
	}
	if _u.mutation.StyleCleared() {
		_spec.ClearField(persona.FieldStyle, field.TypeString)
	}
	if value, ok := _u.mutation.TargetAudience(); ok {
		_spec.SetField(persona.FieldTargetAudience, field.TypeString, value)
	}
	if _u.mutation.TargetAudienceCleared() {
		_spec.ClearField(persona.FieldTargetAudience, field.TypeString)
	}
	if value, ok := _u.mutation.Characteristics(); ok {
		_spec.SetField(persona.FieldCharacteristics, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCharacteristics(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, persona.FieldCharacteristics, value)
		})
	}
	if _u.mutation.CharacteristicsCleared() {
		_spec.ClearField(persona.FieldCharacteristics, field.TypeJSON)
	}
	if value, ok := _u.mutation.Tone(); ok {
		_spec.SetField(persona.FieldTone, field.TypeString, value)
	}
	if _u.mutation.ToneCleared() {
		_spec.ClearField(persona.FieldTone, field.TypeString)
	}
	if value, ok := _u.mutation.Keywords(); ok {
		_spec.SetField(persona.FieldKeywords, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedKeywords(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, persona.FieldKeywords, value)
		})
	}
	if _u.mutation.KeywordsCleared() {
		_spec.ClearField(persona.FieldKeywords, field.TypeJSON)
	}
	if value, ok := _u.mutation.CustomPrompt(); ok {
		_spec.SetField(persona.FieldCustomPrompt, field.TypeString, value)
	}
	if _u.mutation.CustomPromptCleared() {
		_spec.ClearField(persona.FieldCustomPrompt, field.TypeString)
	}
	if value, ok := _u.mutation.IsPreset(); ok {
		_spec.SetField(persona.FieldIsPreset, field.TypeBool, value)
	}
	_node = &Persona{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{persona.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
