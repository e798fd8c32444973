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
	"github.com/textloom/textloom/ent/prompttemplate"
)

// PromptTemplateCreate is the builder for creating a PromptTemplate entity.
type PromptTemplateCreate struct {
	config
	mutation *PromptTemplateMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTemplateType sets the "template_type" field.
func (_c *PromptTemplateCreate) SetTemplateType(v string) *PromptTemplateCreate {
	_c.mutation.SetTemplateType(v)
	return _c
}

// SetTemplateStyle sets the "template_style" field.
func (_c *PromptTemplateCreate) SetTemplateStyle(v string) *PromptTemplateCreate {
	_c.mutation.SetTemplateStyle(v)
	return _c
}

// SetNillableTemplateStyle sets the "template_style" field if the given value is not nil.
func (_c *PromptTemplateCreate) SetNillableTemplateStyle(v *string) *PromptTemplateCreate {
	if v != nil {
		_c.SetTemplateStyle(*v)
	}
	return _c
}

// SetName sets the "name" field.
func (_c *PromptTemplateCreate) SetName(v string) *PromptTemplateCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_c *PromptTemplateCreate) SetNillableName(v *string) *PromptTemplateCreate {
	if v != nil {
		_c.SetName(*v)
	}
	return _c
}

// SetContent sets the "content" field.
func (_c *PromptTemplateCreate) SetContent(v string) *PromptTemplateCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PromptTemplateCreate) SetCreatedAt(v time.Time) *PromptTemplateCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PromptTemplateCreate) SetNillableCreatedAt(v *time.Time) *PromptTemplateCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PromptTemplateCreate) SetID(v string) *PromptTemplateCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the PromptTemplateMutation object of the builder.
func (_c *PromptTemplateCreate) Mutation() *PromptTemplateMutation {
	return _c.mutation
}

// Save creates the PromptTemplate in the database.
func (_c *PromptTemplateCreate) Save(ctx context.Context) (*PromptTemplate, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PromptTemplateCreate) SaveX(ctx context.Context) *PromptTemplate {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PromptTemplateCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PromptTemplateCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PromptTemplateCreate) defaults() {
	if _, ok := _c.mutation.TemplateStyle(); !ok {
		v := prompttemplate.DefaultTemplateStyle
		_c.mutation.SetTemplateStyle(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := prompttemplate.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PromptTemplateCreate) check() error {
	if _, ok := _c.mutation.TemplateType(); !ok {
		return &ValidationError{Name: "template_type", err: errors.New(`ent: missing required field "PromptTemplate.template_type"`)}
	}
	if _, ok := _c.mutation.TemplateStyle(); !ok {
		return &ValidationError{Name: "template_style", err: errors.New(`ent: missing required field "PromptTemplate.template_style"`)}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "PromptTemplate.content"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PromptTemplate.created_at"`)}
	}
	return nil
}

func (_c *PromptTemplateCreate) sqlSave(ctx context.Context) (*PromptTemplate, error) {
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
			return nil, fmt.Errorf("unexpected PromptTemplate.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PromptTemplateCreate) createSpec() (*PromptTemplate, *sqlgraph.CreateSpec) {
	var (
		_node = &PromptTemplate{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(prompttemplate.Table, sqlgraph.NewFieldSpec(prompttemplate.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TemplateType(); ok {
		_spec.SetField(prompttemplate.FieldTemplateType, field.TypeString, value)
		_node.TemplateType = value
	}
	if value, ok := _c.mutation.TemplateStyle(); ok {
		_spec.SetField(prompttemplate.FieldTemplateStyle, field.TypeString, value)
		_node.TemplateStyle = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(prompttemplate.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(prompttemplate.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(prompttemplate.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PromptTemplate.Create().
//		SetTemplateType(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PromptTemplateUpsert) {
//			SetTemplateType(v+v).
//		}).
//		Exec(ctx)
func (_c *PromptTemplateCreate) OnConflict(opts ...sql.ConflictOption) *PromptTemplateUpsertOne {
	_c.conflict = opts
	return &PromptTemplateUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PromptTemplate.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PromptTemplateCreate) OnConflictColumns(columns ...string) *PromptTemplateUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PromptTemplateUpsertOne{
		create: _c,
	}
}

type (
	// PromptTemplateUpsertOne is the builder for "upsert"-ing
	//  one PromptTemplate node.
	PromptTemplateUpsertOne struct {
		create *PromptTemplateCreate
	}

	// PromptTemplateUpsert is the "OnConflict" setter.
	PromptTemplateUpsert struct {
		*sql.UpdateSet
	}
)

// SetTemplateType sets the "template_type" field.
func (u *PromptTemplateUpsert) SetTemplateType(v string) *PromptTemplateUpsert {
	u.Set(prompttemplate.FieldTemplateType, v)
	return u
}

// UpdateTemplateType sets the "template_type" field to the value that was provided on create.
func (u *PromptTemplateUpsert) UpdateTemplateType() *PromptTemplateUpsert {
	u.SetExcluded(prompttemplate.FieldTemplateType)
	return u
}

// SetTemplateStyle sets the "template_style" field.
func (u *PromptTemplateUpsert) SetTemplateStyle(v string) *PromptTemplateUpsert {
	u.Set(prompttemplate.FieldTemplateStyle, v)
	return u
}

// UpdateTemplateStyle sets the "template_style" field to the value that was provided on create.
func (u *PromptTemplateUpsert) UpdateTemplateStyle() *PromptTemplateUpsert {
	u.SetExcluded(prompttemplate.FieldTemplateStyle)
	return u
}

// SetName sets the "name" field.
func (u *PromptTemplateUpsert) SetName(v string) *PromptTemplateUpsert {
	u.Set(prompttemplate.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *PromptTemplateUpsert) UpdateName() *PromptTemplateUpsert {
	u.SetExcluded(prompttemplate.FieldName)
	return u
}

// ClearName clears the value of the "name" field.
func (u *PromptTemplateUpsert) ClearName() *PromptTemplateUpsert {
	u.SetNull(prompttemplate.FieldName)
	return u
}

// SetContent sets the "content" field.
func (u *PromptTemplateUpsert) SetContent(v string) *PromptTemplateUpsert {
	u.Set(prompttemplate.FieldContent, v)
	return u
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *PromptTemplateUpsert) UpdateContent() *PromptTemplateUpsert {
	u.SetExcluded(prompttemplate.FieldContent)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.PromptTemplate.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(prompttemplate.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PromptTemplateUpsertOne) UpdateNewValues() *PromptTemplateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(prompttemplate.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(prompttemplate.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PromptTemplate.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PromptTemplateUpsertOne) Ignore() *PromptTemplateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PromptTemplateUpsertOne) DoNothing() *PromptTemplateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PromptTemplateCreate.OnConflict
// documentation for more info.
func (u *PromptTemplateUpsertOne) Update(set func(*PromptTemplateUpsert)) *PromptTemplateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PromptTemplateUpsert{UpdateSet: update})
	}))
	return u
}

// SetTemplateType sets the "template_type" field.
func (u *PromptTemplateUpsertOne) SetTemplateType(v string) *PromptTemplateUpsertOne {
	return u.Update(func(s *PromptTemplateUpsert) {
		s.SetTemplateType(v)
	})
}

// UpdateTemplateType sets the "template_type" field to the value that was provided on create.
func (u *PromptTemplateUpsertOne) UpdateTemplateType() *PromptTemplateUpsertOne {
	return u.Update(func(s *PromptTemplateUpsert) {
		s.UpdateTemplateType()
	})
}

// SetTemplateStyle sets the "template_style" field.
func (u *PromptTemplateUpsertOne) SetTemplateStyle(v string) *PromptTemplateUpsertOne {
	return u.Update(func(s *PromptTemplateUpsert) {
		s.SetTemplateStyle(v)
	})
}

// UpdateTemplateStyle sets the "template_style" field to the value that was provided on create.
func (u *PromptTemplateUpsertOne) UpdateTemplateStyle() *PromptTemplateUpsertOne {
	return u.Update(func(s *PromptTemplateUpsert) {
		s.UpdateTemplateStyle()
	})
}

// SetName sets the "name" field.
func (u *PromptTemplateUpsertOne) SetName(v string) *PromptTemplateUpsertOne {
	return u.Update(func(s *PromptTemplateUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *PromptTemplateUpsertOne) UpdateName() *PromptTemplateUpsertOne {
	return u.Update(func(s *PromptTemplateUpsert) {
		s.UpdateName()
	})
}

// ClearName clears the value of the "name" field.
func (u *PromptTemplateUpsertOne) ClearName() *PromptTemplateUpsertOne {
	return u.Update(func(s *PromptTemplateUpsert) {
		s.ClearName()
	})
}

// SetContent sets the "content" field.
func (u *PromptTemplateUpsertOne) SetContent(v string) *PromptTemplateUpsertOne {
	return u.Update(func(s *PromptTemplateUpsert) {
		s.SetContent(v)
	})
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *PromptTemplateUpsertOne) UpdateContent() *PromptTemplateUpsertOne {
	return u.Update(func(s *PromptTemplateUpsert) {
		s.UpdateContent()
	})
}

// Exec executes the query.
func (u *PromptTemplateUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PromptTemplateCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PromptTemplateUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PromptTemplateUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: PromptTemplateUpsertOne.ID is not supported by MySQL driver. Use PromptTemplateUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PromptTemplateUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PromptTemplateCreateBulk is the builder for creating many PromptTemplate entities in bulk.
type PromptTemplateCreateBulk struct {
	config
	err      error
	builders []*PromptTemplateCreate
	conflict []sql.ConflictOption
}

// Save creates the PromptTemplate entities in the database.
func (_c *PromptTemplateCreateBulk) Save(ctx context.Context) ([]*PromptTemplate, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PromptTemplate, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PromptTemplateMutation)
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
func (_c *PromptTemplateCreateBulk) SaveX(ctx context.Context) []*PromptTemplate {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PromptTemplateCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PromptTemplateCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PromptTemplate.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PromptTemplateUpsert) {
//			SetTemplateType(v+v).
//		}).
//		Exec(ctx)
func (_c *PromptTemplateCreateBulk) OnConflict(opts ...sql.ConflictOption) *PromptTemplateUpsertBulk {
	_c.conflict = opts
	return &PromptTemplateUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PromptTemplate.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PromptTemplateCreateBulk) OnConflictColumns(columns ...string) *PromptTemplateUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PromptTemplateUpsertBulk{
		create: _c,
	}
}

// PromptTemplateUpsertBulk is the builder for "upsert"-ing
// a bulk of PromptTemplate nodes.
type PromptTemplateUpsertBulk struct {
	create *PromptTemplateCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.PromptTemplate.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(prompttemplate.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PromptTemplateUpsertBulk) UpdateNewValues() *PromptTemplateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(prompttemplate.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(prompttemplate.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PromptTemplate.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PromptTemplateUpsertBulk) Ignore() *PromptTemplateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PromptTemplateUpsertBulk) DoNothing() *PromptTemplateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PromptTemplateCreateBulk.OnConflict
// documentation for more info.
func (u *PromptTemplateUpsertBulk) Update(set func(*PromptTemplateUpsert)) *PromptTemplateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PromptTemplateUpsert{UpdateSet: update})
	}))
	return u
}

// SetTemplateType sets the "template_type" field.
func (u *PromptTemplateUpsertBulk) SetTemplateType(v string) *PromptTemplateUpsertBulk {
	return u.Update(func(s *PromptTemplateUpsert) {
		s.SetTemplateType(v)
	})
}

// UpdateTemplateType sets the "template_type" field to the value that was provided on create.
func (u *PromptTemplateUpsertBulk) UpdateTemplateType() *PromptTemplateUpsertBulk {
	return u.Update(func(s *PromptTemplateUpsert) {
		s.UpdateTemplateType()
	})
}

// SetTemplateStyle sets the "template_style" field.
func (u *PromptTemplateUpsertBulk) SetTemplateStyle(v string) *PromptTemplateUpsertBulk {
	return u.Update(func(s *PromptTemplateUpsert) {
		s.SetTemplateStyle(v)
	})
}

// UpdateTemplateStyle sets the "template_style" field to the value that was provided on create.
func (u *PromptTemplateUpsertBulk) UpdateTemplateStyle() *PromptTemplateUpsertBulk {
	return u.Update(func(s *PromptTemplateUpsert) {
		s.UpdateTemplateStyle()
	})
}

// SetName sets the "name" field.
func (u *PromptTemplateUpsertBulk) SetName(v string) *PromptTemplateUpsertBulk {
	return u.Update(func(s *PromptTemplateUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *PromptTemplateUpsertBulk) UpdateName() *PromptTemplateUpsertBulk {
	return u.Update(func(s *PromptTemplateUpsert) {
		s.UpdateName()
	})
}

// ClearName clears the value of the "name" field.
func (u *PromptTemplateUpsertBulk) ClearName() *PromptTemplateUpsertBulk {
	return u.Update(func(s *PromptTemplateUpsert) {
		s.ClearName()
	})
}

// SetContent sets the "content" field.
func (u *PromptTemplateUpsertBulk) SetContent(v string) *PromptTemplateUpsertBulk {
	return u.Update(func(s *PromptTemplateUpsert) {
		s.SetContent(v)
	})
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *PromptTemplateUpsertBulk) UpdateContent() *PromptTemplateUpsertBulk {
	return u.Update(func(s *PromptTemplateUpsert) {
		s.UpdateContent()
	})
}

// Exec executes the query.
func (u *PromptTemplateUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the PromptTemplateCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PromptTemplateCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PromptTemplateUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
