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
	"github.com/textloom/textloom/ent/persona"
)

// PersonaCreate is the builder for creating a Persona entity.
type PersonaCreate struct {
	config
	mutation *PersonaMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetName sets the "name" field.
func (_c *PersonaCreate) SetName(v string) *PersonaCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetPersonaType sets the "persona_type" field.
func (_c *PersonaCreate) SetPersonaType(v string) *PersonaCreate {
	_c.mutation.SetPersonaType(v)
	return _c
}

// SetNillablePersonaType sets the "persona_type" field if the given value is not nil.
func (_c *PersonaCreate) SetNillablePersonaType(v *string) *PersonaCreate {
	if v != nil {
		_c.SetPersonaType(*v)
	}
	return _c
}

// SetStyle sets the "style" field.
func (_c *PersonaCreate) SetStyle(v string) *PersonaCreate {
	_c.mutation.SetStyle(v)
	return _c
}

// SetNillableStyle sets the "style" field if the given value is not nil.
func (_c *PersonaCreate) SetNillableStyle(v *string) *PersonaCreate {
	if v != nil {
		_c.SetStyle(*v)
	}
	return _c
}

// SetTargetAudience sets the "target_audience" field.
func (_c *PersonaCreate) SetTargetAudience(v string) *PersonaCreate {
	_c.mutation.SetTargetAudience(v)
	return _c
}

// SetNillableTargetAudience sets the "target_audience" field if the given value is not nil.
func (_c *PersonaCreate) SetNillableTargetAudience(v *string) *PersonaCreate {
	if v != nil {
		_c.SetTargetAudience(*v)
	}
	return _c
}

// SetCharacteristics sets the "characteristics" field.
func (_c *PersonaCreate) SetCharacteristics(v []string) *PersonaCreate {
	_c.mutation.SetCharacteristics(v)
	return _c
}

// SetTone sets the "tone" field.
func (_c *PersonaCreate) SetTone(v string) *PersonaCreate {
	_c.mutation.SetTone(v)
	return _c
}

// SetNillableTone sets the "tone" field if the given value is not nil.
func (_c *PersonaCreate) SetNillableTone(v *string) *PersonaCreate {
	if v != nil {
		_c.SetTone(*v)
	}
	return _c
}

// SetKeywords sets the "keywords" field.
func (_c *PersonaCreate) SetKeywords(v []string) *PersonaCreate {
	_c.mutation.SetKeywords(v)
	return _c
}

// SetCustomPrompt sets the "custom_prompt" field.
func (_c *PersonaCreate) SetCustomPrompt(v string) *PersonaCreate {
	_c.mutation.SetCustomPrompt(v)
	return _c
}

// SetNillableCustomPrompt sets the "custom_prompt" field if the given value is not nil.
func (_c *PersonaCreate) SetNillableCustomPrompt(v *string) *PersonaCreate {
	if v != nil {
		_c.SetCustomPrompt(*v)
	}
	return _c
}

// SetIsPreset sets the "is_preset" field.
func (_c *PersonaCreate) SetIsPreset(v bool) *PersonaCreate {
	_c.mutation.SetIsPreset(v)
	return _c
}

// SetNillableIsPreset sets the "is_preset" field if the given value is not nil.
func (_c *PersonaCreate) SetNillableIsPreset(v *bool) *PersonaCreate {
	if v != nil {
		_c.SetIsPreset(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PersonaCreate) SetCreatedAt(v time.Time) *PersonaCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PersonaCreate) SetNillableCreatedAt(v *time.Time) *PersonaCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PersonaCreate) SetID(v string) *PersonaCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the PersonaMutation object of the builder.
func (_c *PersonaCreate) Mutation() *PersonaMutation {
	return _c.mutation
}

// Save creates the Persona in the database.
func (_c *PersonaCreate) Save(ctx context.Context) (*Persona, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PersonaCreate) SaveX(ctx context.Context) *Persona {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PersonaCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PersonaCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PersonaCreate) defaults() {
	if _, ok := _c.mutation.IsPreset(); !ok {
		v := persona.DefaultIsPreset
		_c.mutation.SetIsPreset(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := persona.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PersonaCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Persona.name"`)}
	}
	if _, ok := _c.mutation.IsPreset(); !ok {
		return &ValidationError{Name: "is_preset", err: errors.New(`ent: missing required field "Persona.is_preset"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Persona.created_at"`)}
	}
	return nil
}

func (_c *PersonaCreate) sqlSave(ctx context.Context) (*Persona, error) {
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
			return nil, fmt.Errorf("unexpected Persona.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PersonaCreate) createSpec() (*Persona, *sqlgraph.CreateSpec) {
	var (
		_node = &Persona{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(persona.Table, sqlgraph.NewFieldSpec(persona.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(persona.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.PersonaType(); ok {
		_spec.SetField(persona.FieldPersonaType, field.TypeString, value)
		_node.PersonaType = value
	}
	if value, ok := _c.mutation.Style(); ok {
		_spec.SetField(persona.FieldStyle, field.TypeString, value)
		_node.Style = value
	}
	if value, ok := _c.mutation.TargetAudience(); ok {
		_spec.SetField(persona.FieldTargetAudience, field.TypeString, value)
		_node.TargetAudience = value
	}
	if value, ok := _c.mutation.Characteristics(); ok {
		_spec.SetField(persona.FieldCharacteristics, field.TypeJSON, value)
		_node.Characteristics = value
	}
	if value, ok := _c.mutation.Tone(); ok {
		_spec.SetField(persona.FieldTone, field.TypeString, value)
		_node.Tone = value
	}
	if value, ok := _c.mutation.Keywords(); ok {
		_spec.SetField(persona.FieldKeywords, field.TypeJSON, value)
		_node.Keywords = value
	}
	if value, ok := _c.mutation.CustomPrompt(); ok {
		_spec.SetField(persona.FieldCustomPrompt, field.TypeString, value)
		_node.CustomPrompt = value
	}
	if value, ok := _c.mutation.IsPreset(); ok {
		_spec.SetField(persona.FieldIsPreset, field.TypeBool, value)
		_node.IsPreset = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(persona.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Persona.Create().
//		SetName(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PersonaUpsert) {
//			SetName(v+v).
//		}).
//		Exec(ctx)
func (_c *PersonaCreate) OnConflict(opts ...sql.ConflictOption) *PersonaUpsertOne {
	_c.conflict = opts
	return &PersonaUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Persona.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PersonaCreate) OnConflictColumns(columns ...string) *PersonaUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PersonaUpsertOne{
		create: _c,
	}
}

type (
	// PersonaUpsertOne is the builder for "upsert"-ing
	//  one Persona node.
	PersonaUpsertOne struct {
		create *PersonaCreate
	}

	// PersonaUpsert is the "OnConflict" setter.
	PersonaUpsert struct {
		*sql.UpdateSet
	}
)

// SetName sets the "name" field.
func (u *PersonaUpsert) SetName(v string) *PersonaUpsert {
	u.Set(persona.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *PersonaUpsert) UpdateName() *PersonaUpsert {
	u.SetExcluded(persona.FieldName)
	return u
}

// SetPersonaType sets the "persona_type" field.
func (u *PersonaUpsert) SetPersonaType(v string) *PersonaUpsert {
	u.Set(persona.FieldPersonaType, v)
	return u
}

// UpdatePersonaType sets the "persona_type" field to the value that was provided on create.
func (u *PersonaUpsert) UpdatePersonaType() *PersonaUpsert {
	u.SetExcluded(persona.FieldPersonaType)
	return u
}

// ClearPersonaType clears the value of the "persona_type" field.
func (u *PersonaUpsert) ClearPersonaType() *PersonaUpsert {
	u.SetNull(persona.FieldPersonaType)
	return u
}

// SetStyle sets the "style" field.
func (u *PersonaUpsert) SetStyle(v string) *PersonaUpsert {
	u.Set(persona.FieldStyle, v)
	return u
}

// UpdateStyle sets the "style" field to the value that was provided on create.
func (u *PersonaUpsert) UpdateStyle() *PersonaUpsert {
	u.SetExcluded(persona.FieldStyle)
	return u
}

// ClearStyle clears the value of the "style" field.
func (u *PersonaUpsert) ClearStyle() *PersonaUpsert {
	u.SetNull(persona.FieldStyle)
	return u
}

// SetTargetAudience sets the "target_audience" field.
func (u *PersonaUpsert) SetTargetAudience(v string) *PersonaUpsert {
	u.Set(persona.FieldTargetAudience, v)
	return u
}

// UpdateTargetAudience sets the "target_audience" field to the value that was provided on create.
func (u *PersonaUpsert) UpdateTargetAudience() *PersonaUpsert {
	u.SetExcluded(persona.FieldTargetAudience)
	return u
}

// ClearTargetAudience clears the value of the "target_audience" field.
func (u *PersonaUpsert) ClearTargetAudience() *PersonaUpsert {
	u.SetNull(persona.FieldTargetAudience)
	return u
}

// SetCharacteristics sets the "characteristics" field.
func (u *PersonaUpsert) SetCharacteristics(v []string) *PersonaUpsert {
	u.Set(persona.FieldCharacteristics, v)
	return u
}

// UpdateCharacteristics sets the "characteristics" field to the value that was provided on create.
func (u *PersonaUpsert) UpdateCharacteristics() *PersonaUpsert {
	u.SetExcluded(persona.FieldCharacteristics)
	return u
}

// ClearCharacteristics clears the value of the "characteristics" field.
func (u *PersonaUpsert) ClearCharacteristics() *PersonaUpsert {
	u.SetNull(persona.FieldCharacteristics)
	return u
}

// SetTone sets the "tone" field.
func (u *PersonaUpsert) SetTone(v string) *PersonaUpsert {
	u.Set(persona.FieldTone, v)
	return u
}

// UpdateTone sets the "tone" field to the value that was provided on create.
func (u *PersonaUpsert) UpdateTone() *PersonaUpsert {
	u.SetExcluded(persona.FieldTone)
	return u
}

// ClearTone clears the value of the "tone" field.
func (u *PersonaUpsert) ClearTone() *PersonaUpsert {
	u.SetNull(persona.FieldTone)
	return u
}

// SetKeywords sets the "keywords" field.
func (u *PersonaUpsert) SetKeywords(v []string) *PersonaUpsert {
	u.Set(persona.FieldKeywords, v)
	return u
}

// UpdateKeywords sets the "keywords" field to the value that was provided on create.
func (u *PersonaUpsert) UpdateKeywords() *PersonaUpsert {
	u.SetExcluded(persona.FieldKeywords)
	return u
}

// ClearKeywords clears the value of the "keywords" field.
func (u *PersonaUpsert) ClearKeywords() *PersonaUpsert {
	u.SetNull(persona.FieldKeywords)
	return u
}

// SetCustomPrompt sets the "custom_prompt" field.
func (u *PersonaUpsert) SetCustomPrompt(v string) *PersonaUpsert {
	u.Set(persona.FieldCustomPrompt, v)
	return u
}

// UpdateCustomPrompt sets the "custom_prompt" field to the value that was provided on create.
func (u *PersonaUpsert) UpdateCustomPrompt() *PersonaUpsert {
	u.SetExcluded(persona.FieldCustomPrompt)
	return u
}

// ClearCustomPrompt clears the value of the "custom_prompt" field.
func (u *PersonaUpsert) ClearCustomPrompt() *PersonaUpsert {
	u.SetNull(persona.FieldCustomPrompt)
	return u
}

// SetIsPreset sets the "is_preset" field.
func (u *PersonaUpsert) SetIsPreset(v bool) *PersonaUpsert {
	u.Set(persona.FieldIsPreset, v)
	return u
}

// UpdateIsPreset sets the "is_preset" field to the value that was provided on create.
func (u *PersonaUpsert) UpdateIsPreset() *PersonaUpsert {
	u.SetExcluded(persona.FieldIsPreset)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Persona.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(persona.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PersonaUpsertOne) UpdateNewValues() *PersonaUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(persona.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(persona.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Persona.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PersonaUpsertOne) Ignore() *PersonaUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PersonaUpsertOne) DoNothing() *PersonaUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PersonaCreate.OnConflict
// documentation for more info.
func (u *PersonaUpsertOne) Update(set func(*PersonaUpsert)) *PersonaUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PersonaUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *PersonaUpsertOne) SetName(v string) *PersonaUpsertOne {
	return u.Update(func(s *PersonaUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *PersonaUpsertOne) UpdateName() *PersonaUpsertOne {
	return u.Update(func(s *PersonaUpsert) {
		s.UpdateName()
	})
}

// SetPersonaType sets the "persona_type" field.
func (u *PersonaUpsertOne) SetPersonaType(v string) *PersonaUpsertOne {
	return u.Update(func(s *PersonaUpsert) {
		s.SetPersonaType(v)
	})
}

// UpdatePersonaType sets the "persona_type" field to the value that was provided on create.
func (u *PersonaUpsertOne) UpdatePersonaType() *PersonaUpsertOne {
	return u.Update(func(s *PersonaUpsert) {
		s.UpdatePersonaType()
	})
}

// ClearPersonaType clears the value of the "persona_type" field.
func (u *PersonaUpsertOne) ClearPersonaType() *PersonaUpsertOne {
	return u.Update(func(s *PersonaUpsert) {
		s.ClearPersonaType()
	})
}

// SetStyle sets the "style" field.
func (u *PersonaUpsertOne) SetStyle(v string) *PersonaUpsertOne {
	return u.Update(func(s *PersonaUpsert) {
		s.SetStyle(v)
	})
}

// UpdateStyle sets the "style" field to the value that was provided on create.
func (u *PersonaUpsertOne) UpdateStyle() *PersonaUpsertOne {
	return u.Update(func(s *PersonaUpsert) {
		s.UpdateStyle()
	})
}

// ClearStyle clears the value of the "style" field.
func (u *PersonaUpsertOne) ClearStyle() *PersonaUpsertOne {
	return u.Update(func(s *PersonaUpsert) {
		s.ClearStyle()
	})
}

// SetTargetAudience sets the "target_audience" field.
func (u *PersonaUpsertOne) SetTargetAudience(v string) *PersonaUpsertOne {
	return u.Update(func(s *PersonaUpsert) {
		s.SetTargetAudience(v)
	})
}

// UpdateTargetAudience sets the "target_audience" field to the value that was provided on create.
func (u *PersonaUpsertOne) UpdateTargetAudience() *PersonaUpsertOne {
	return u.Update(func(s *PersonaUpsert) {
		s.UpdateTargetAudience()
	})
}

// ClearTargetAudience clears the value of the "target_audience" field.
func (u *PersonaUpsertOne) ClearTargetAudience() *PersonaUpsertOne {
	return u.Update(func(s *PersonaUpsert) {
		s.ClearTargetAudience()
	})
}

// SetCharacteristics sets the "characteristics" field.
func (u *PersonaUpsertOne) SetCharacteristics(v []string) *PersonaUpsertOne {
	return u.Update(func(s *PersonaUpsert) {
		s.SetCharacteristics(v)
	})
}

// UpdateCharacteristics sets the "characteristics" field to the value that was provided on create.
func (u *PersonaUpsertOne) UpdateCharacteristics() *PersonaUpsertOne {
	return u.Update(func(s *PersonaUpsert) {
		s.UpdateCharacteristics()
	})
}

// ClearCharacteristics clears the value of the "characteristics" field.
func (u *PersonaUpsertOne) ClearCharacteristics() *PersonaUpsertOne {
	return u.Update(func(s *PersonaUpsert) {
		s.ClearCharacteristics()
	})
}

// SetTone sets the "tone" field.
func (u *PersonaUpsertOne) SetTone(v string) *PersonaUpsertOne {
	return u.Update(func(s *PersonaUpsert) {
		s.SetTone(v)
	})
}

// UpdateTone sets the "tone" field to the value that was provided on create.
func (u *PersonaUpsertOne) UpdateTone() *PersonaUpsertOne {
	return u.Update(func(s *PersonaUpsert) {
		s.UpdateTone()
	})
}

// ClearTone clears the value of the "tone" field.
func (u *PersonaUpsertOne) ClearTone() *PersonaUpsertOne {
	return u.Update(func(s *PersonaUpsert) {
		s.ClearTone()
	})
}

// SetKeywords sets the "keywords" field.
func (u *PersonaUpsertOne) SetKeywords(v []string) *PersonaUpsertOne {
	return u.Update(func(s *PersonaUpsert) {
		s.SetKeywords(v)
	})
}

// UpdateKeywords sets the "keywords" field to the value that was provided on create.
func (u *PersonaUpsertOne) UpdateKeywords() *PersonaUpsertOne {
	return u.Update(func(s *PersonaUpsert) {
		s.UpdateKeywords()
	})
}

// ClearKeywords clears the value of the "keywords" field.
func (u *PersonaUpsertOne) ClearKeywords() *PersonaUpsertOne {
	return u.Update(func(s *PersonaUpsert) {
		s.ClearKeywords()
	})
}

// SetCustomPrompt sets the "custom_prompt" field.
func (u *PersonaUpsertOne) SetCustomPrompt(v string) *PersonaUpsertOne {
	return u.Update(func(s *PersonaUpsert) {
		s.SetCustomPrompt(v)
	})
}

// UpdateCustomPrompt sets the "custom_prompt" field to the value that was provided on create.
func (u *PersonaUpsertOne) UpdateCustomPrompt() *PersonaUpsertOne {
	return u.Update(func(s *PersonaUpsert) {
		s.UpdateCustomPrompt()
	})
}

// ClearCustomPrompt clears the value of the "custom_prompt" field.
func (u *PersonaUpsertOne) ClearCustomPrompt() *PersonaUpsertOne {
	return u.Update(func(s *PersonaUpsert) {
		s.ClearCustomPrompt()
	})
}

// SetIsPreset sets the "is_preset" field.
func (u *PersonaUpsertOne) SetIsPreset(v bool) *PersonaUpsertOne {
	return u.Update(func(s *PersonaUpsert) {
		s.SetIsPreset(v)
	})
}

// UpdateIsPreset sets the "is_preset" field to the value that was provided on create.
func (u *PersonaUpsertOne) UpdateIsPreset() *PersonaUpsertOne {
	return u.Update(func(s *PersonaUpsert) {
		s.UpdateIsPreset()
	})
}

// Exec executes the query.
func (u *PersonaUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PersonaCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PersonaUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PersonaUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: PersonaUpsertOne.ID is not supported by MySQL driver. Use PersonaUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PersonaUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PersonaCreateBulk is the builder for creating many Persona entities in bulk.
type PersonaCreateBulk struct {
	config
	err      error
	builders []*PersonaCreate
	conflict []sql.ConflictOption
}

// Save creates the Persona entities in the database.
func (_c *PersonaCreateBulk) Save(ctx context.Context) ([]*Persona, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Persona, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PersonaMutation)
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
func (_c *PersonaCreateBulk) SaveX(ctx context.Context) []*Persona {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PersonaCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PersonaCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Persona.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PersonaUpsert) {
//			SetName(v+v).
//		}).
//		Exec(ctx)
func (_c *PersonaCreateBulk) OnConflict(opts ...sql.ConflictOption) *PersonaUpsertBulk {
	_c.conflict = opts
	return &PersonaUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Persona.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PersonaCreateBulk) OnConflictColumns(columns ...string) *PersonaUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PersonaUpsertBulk{
		create: _c,
	}
}

// PersonaUpsertBulk is the builder for "upsert"-ing
// a bulk of Persona nodes.
type PersonaUpsertBulk struct {
	create *PersonaCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Persona.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(persona.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PersonaUpsertBulk) UpdateNewValues() *PersonaUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(persona.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(persona.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Persona.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PersonaUpsertBulk) Ignore() *PersonaUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PersonaUpsertBulk) DoNothing() *PersonaUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PersonaCreateBulk.OnConflict
// documentation for more info.
func (u *PersonaUpsertBulk) Update(set func(*PersonaUpsert)) *PersonaUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PersonaUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *PersonaUpsertBulk) SetName(v string) *PersonaUpsertBulk {
	return u.Update(func(s *PersonaUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *PersonaUpsertBulk) UpdateName() *PersonaUpsertBulk {
	return u.Update(func(s *PersonaUpsert) {
		s.UpdateName()
	})
}

// SetPersonaType sets the "persona_type" field.
func (u *PersonaUpsertBulk) SetPersonaType(v string) *PersonaUpsertBulk {
	return u.Update(func(s *PersonaUpsert) {
		s.SetPersonaType(v)
	})
}

// UpdatePersonaType sets the "persona_type" field to the value that was provided on create.
func (u *PersonaUpsertBulk) UpdatePersonaType() *PersonaUpsertBulk {
	return u.Update(func(s *PersonaUpsert) {
		s.UpdatePersonaType()
	})
}

// ClearPersonaType clears the value of the "persona_type" field.
func (u *PersonaUpsertBulk) ClearPersonaType() *PersonaUpsertBulk {
	return u.Update(func(s *PersonaUpsert) {
		s.ClearPersonaType()
	})
}

// SetStyle sets the "style" field.
func (u *PersonaUpsertBulk) SetStyle(v string) *PersonaUpsertBulk {
	return u.Update(func(s *PersonaUpsert) {
		s.SetStyle(v)
	})
}

// UpdateStyle sets the "style" field to the value that was provided on create.
func (u *PersonaUpsertBulk) UpdateStyle() *PersonaUpsertBulk {
	return u.Update(func(s *PersonaUpsert) {
		s.UpdateStyle()
	})
}

// ClearStyle clears the value of the "style" field.
func (u *PersonaUpsertBulk) ClearStyle() *PersonaUpsertBulk {
	return u.Update(func(s *PersonaUpsert) {
		s.ClearStyle()
	})
}

// SetTargetAudience sets the "target_audience" field.
func (u *PersonaUpsertBulk) SetTargetAudience(v string) *PersonaUpsertBulk {
	return u.Update(func(s *PersonaUpsert) {
		s.SetTargetAudience(v)
	})
}

// UpdateTargetAudience sets the "target_audience" field to the value that was provided on create.
func (u *PersonaUpsertBulk) UpdateTargetAudience() *PersonaUpsertBulk {
	return u.Update(func(s *PersonaUpsert) {
		s.UpdateTargetAudience()
	})
}

// ClearTargetAudience clears the value of the "target_audience" field.
func (u *PersonaUpsertBulk) ClearTargetAudience() *PersonaUpsertBulk {
	return u.Update(func(s *PersonaUpsert) {
		s.ClearTargetAudience()
	})
}

// SetCharacteristics sets the "characteristics" field.
func (u *PersonaUpsertBulk) SetCharacteristics(v []string) *PersonaUpsertBulk {
	return u.Update(func(s *PersonaUpsert) {
		s.SetCharacteristics(v)
	})
}

// UpdateCharacteristics sets the "characteristics" field to the value that was provided on create.
func (u *PersonaUpsertBulk) UpdateCharacteristics() *PersonaUpsertBulk {
	return u.Update(func(s *PersonaUpsert) {
		s.UpdateCharacteristics()
	})
}

// ClearCharacteristics clears the value of the "characteristics" field.
func (u *PersonaUpsertBulk) ClearCharacteristics() *PersonaUpsertBulk {
	return u.Update(func(s *PersonaUpsert) {
		s.ClearCharacteristics()
	})
}

// SetTone sets the "tone" field.
func (u *PersonaUpsertBulk) SetTone(v string) *PersonaUpsertBulk {
	return u.Update(func(s *PersonaUpsert) {
		s.SetTone(v)
	})
}

// UpdateTone sets the "tone" field to the value that was provided on create.
func (u *PersonaUpsertBulk) UpdateTone() *PersonaUpsertBulk {
	return u.Update(func(s *PersonaUpsert) {
		s.UpdateTone()
	})
}

// ClearTone clears the value of the "tone" field.
func (u *PersonaUpsertBulk) ClearTone() *PersonaUpsertBulk {
	return u.Update(func(s *PersonaUpsert) {
		s.ClearTone()
	})
}

// SetKeywords sets the "keywords" field.
func (u *PersonaUpsertBulk) SetKeywords(v []string) *PersonaUpsertBulk {
	return u.Update(func(s *PersonaUpsert) {
		s.SetKeywords(v)
	})
}

// UpdateKeywords sets the "keywords" field to the value that was provided on create.
func (u *PersonaUpsertBulk) UpdateKeywords() *PersonaUpsertBulk {
	return u.Update(func(s *PersonaUpsert) {
		s.UpdateKeywords()
	})
}

// ClearKeywords clears the value of the "keywords" field.
func (u *PersonaUpsertBulk) ClearKeywords() *PersonaUpsertBulk {
	return u.Update(func(s *PersonaUpsert) {
		s.ClearKeywords()
	})
}

// SetCustomPrompt sets the "custom_prompt" field.
func (u *PersonaUpsertBulk) SetCustomPrompt(v string) *PersonaUpsertBulk {
	return u.Update(func(s *PersonaUpsert) {
		s.SetCustomPrompt(v)
	})
}

// UpdateCustomPrompt sets the "custom_prompt" field to the value that was provided on create.
func (u *PersonaUpsertBulk) UpdateCustomPrompt() *PersonaUpsertBulk {
	return u.Update(func(s *PersonaUpsert) {
		s.UpdateCustomPrompt()
	})
}

// ClearCustomPrompt clears the value of the "custom_prompt" field.
func (u *PersonaUpsertBulk) ClearCustomPrompt() *PersonaUpsertBulk {
	return u.Update(func(s *PersonaUpsert) {
		s.ClearCustomPrompt()
	})
}

// SetIsPreset sets the "is_preset" field.
func (u *PersonaUpsertBulk) SetIsPreset(v bool) *PersonaUpsertBulk {
	return u.Update(func(s *PersonaUpsert) {
		s.SetIsPreset(v)
	})
}

// UpdateIsPreset sets the "is_preset" field to the value that was provided on create.
func (u *PersonaUpsertBulk) UpdateIsPreset() *PersonaUpsertBulk {
	return u.Update(func(s *PersonaUpsert) {
		s.UpdateIsPreset()
	})
}

// Exec executes the query.
func (u *PersonaUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the PersonaCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PersonaCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PersonaUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
