// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/spitali-app/spitali_backend/internal/repo/doctor"
)

// DoctorCreate is the builder for creating a Doctor entity.
type DoctorCreate struct {
	config
	mutation *DoctorMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *DoctorCreate) SetCreatedAt(v time.Time) *DoctorCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DoctorCreate) SetNillableCreatedAt(v *time.Time) *DoctorCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *DoctorCreate) SetUpdatedAt(v time.Time) *DoctorCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *DoctorCreate) SetNillableUpdatedAt(v *time.Time) *DoctorCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *DoctorCreate) SetUserID(v uuid.UUID) *DoctorCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *DoctorCreate) SetName(v string) *DoctorCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_c *DoctorCreate) SetNillableName(v *string) *DoctorCreate {
	if v != nil {
		_c.SetName(*v)
	}
	return _c
}

// SetSpecialty sets the "specialty" field.
func (_c *DoctorCreate) SetSpecialty(v string) *DoctorCreate {
	_c.mutation.SetSpecialty(v)
	return _c
}

// SetNillableSpecialty sets the "specialty" field if the given value is not nil.
func (_c *DoctorCreate) SetNillableSpecialty(v *string) *DoctorCreate {
	if v != nil {
		_c.SetSpecialty(*v)
	}
	return _c
}

// SetCity sets the "city" field.
func (_c *DoctorCreate) SetCity(v string) *DoctorCreate {
	_c.mutation.SetCity(v)
	return _c
}

// SetNillableCity sets the "city" field if the given value is not nil.
func (_c *DoctorCreate) SetNillableCity(v *string) *DoctorCreate {
	if v != nil {
		_c.SetCity(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DoctorCreate) SetID(v uuid.UUID) *DoctorCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *DoctorCreate) SetNillableID(v *uuid.UUID) *DoctorCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the DoctorMutation object of the builder.
func (_c *DoctorCreate) Mutation() *DoctorMutation {
	return _c.mutation
}

// Save creates the Doctor in the database.
func (_c *DoctorCreate) Save(ctx context.Context) (*Doctor, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DoctorCreate) SaveX(ctx context.Context) *Doctor {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DoctorCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DoctorCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DoctorCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := doctor.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := doctor.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := doctor.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DoctorCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Doctor.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Doctor.updated_at"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`repo: missing required field "Doctor.user_id"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := doctor.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "Doctor.name": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Specialty(); ok {
		if err := doctor.SpecialtyValidator(v); err != nil {
			return &ValidationError{Name: "specialty", err: fmt.Errorf(`repo: validator failed for field "Doctor.specialty": %w`, err)}
		}
	}
	if v, ok := _c.mutation.City(); ok {
		if err := doctor.CityValidator(v); err != nil {
			return &ValidationError{Name: "city", err: fmt.Errorf(`repo: validator failed for field "Doctor.city": %w`, err)}
		}
	}
	return nil
}

func (_c *DoctorCreate) sqlSave(ctx context.Context) (*Doctor, error) {
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
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DoctorCreate) createSpec() (*Doctor, *sqlgraph.CreateSpec) {
	var (
		_node = &Doctor{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(doctor.Table, sqlgraph.NewFieldSpec(doctor.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(doctor.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(doctor.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(doctor.FieldUserID, field.TypeUUID, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(doctor.FieldName, field.TypeString, value)
		_node.Name = &value
	}
	if value, ok := _c.mutation.Specialty(); ok {
		_spec.SetField(doctor.FieldSpecialty, field.TypeString, value)
		_node.Specialty = &value
	}
	if value, ok := _c.mutation.City(); ok {
		_spec.SetField(doctor.FieldCity, field.TypeString, value)
		_node.City = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Doctor.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DoctorUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *DoctorCreate) OnConflict(opts ...sql.ConflictOption) *DoctorUpsertOne {
	_c.conflict = opts
	return &DoctorUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Doctor.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DoctorCreate) OnConflictColumns(columns ...string) *DoctorUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DoctorUpsertOne{
		create: _c,
	}
}

type (
	// DoctorUpsertOne is the builder for "upsert"-ing
	//  one Doctor node.
	DoctorUpsertOne struct {
		create *DoctorCreate
	}

	// DoctorUpsert is the "OnConflict" setter.
	DoctorUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *DoctorUpsert) SetUpdatedAt(v time.Time) *DoctorUpsert {
	u.Set(doctor.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DoctorUpsert) UpdateUpdatedAt() *DoctorUpsert {
	u.SetExcluded(doctor.FieldUpdatedAt)
	return u
}

// SetUserID sets the "user_id" field.
func (u *DoctorUpsert) SetUserID(v uuid.UUID) *DoctorUpsert {
	u.Set(doctor.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *DoctorUpsert) UpdateUserID() *DoctorUpsert {
	u.SetExcluded(doctor.FieldUserID)
	return u
}

// SetName sets the "name" field.
func (u *DoctorUpsert) SetName(v string) *DoctorUpsert {
	u.Set(doctor.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *DoctorUpsert) UpdateName() *DoctorUpsert {
	u.SetExcluded(doctor.FieldName)
	return u
}

// ClearName clears the value of the "name" field.
func (u *DoctorUpsert) ClearName() *DoctorUpsert {
	u.SetNull(doctor.FieldName)
	return u
}

// SetSpecialty sets the "specialty" field.
func (u *DoctorUpsert) SetSpecialty(v string) *DoctorUpsert {
	u.Set(doctor.FieldSpecialty, v)
	return u
}

// UpdateSpecialty sets the "specialty" field to the value that was provided on create.
func (u *DoctorUpsert) UpdateSpecialty() *DoctorUpsert {
	u.SetExcluded(doctor.FieldSpecialty)
	return u
}

// ClearSpecialty clears the value of the "specialty" field.
func (u *DoctorUpsert) ClearSpecialty() *DoctorUpsert {
	u.SetNull(doctor.FieldSpecialty)
	return u
}

// SetCity sets the "city" field.
func (u *DoctorUpsert) SetCity(v string) *DoctorUpsert {
	u.Set(doctor.FieldCity, v)
	return u
}

// UpdateCity sets the "city" field to the value that was provided on create.
func (u *DoctorUpsert) UpdateCity() *DoctorUpsert {
	u.SetExcluded(doctor.FieldCity)
	return u
}

// ClearCity clears the value of the "city" field.
func (u *DoctorUpsert) ClearCity() *DoctorUpsert {
	u.SetNull(doctor.FieldCity)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Doctor.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(doctor.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DoctorUpsertOne) UpdateNewValues() *DoctorUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(doctor.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(doctor.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Doctor.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *DoctorUpsertOne) Ignore() *DoctorUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DoctorUpsertOne) DoNothing() *DoctorUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DoctorCreate.OnConflict
// documentation for more info.
func (u *DoctorUpsertOne) Update(set func(*DoctorUpsert)) *DoctorUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DoctorUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *DoctorUpsertOne) SetUpdatedAt(v time.Time) *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DoctorUpsertOne) UpdateUpdatedAt() *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetUserID sets the "user_id" field.
func (u *DoctorUpsertOne) SetUserID(v uuid.UUID) *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *DoctorUpsertOne) UpdateUserID() *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateUserID()
	})
}

// SetName sets the "name" field.
func (u *DoctorUpsertOne) SetName(v string) *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *DoctorUpsertOne) UpdateName() *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateName()
	})
}

// ClearName clears the value of the "name" field.
func (u *DoctorUpsertOne) ClearName() *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.ClearName()
	})
}

// SetSpecialty sets the "specialty" field.
func (u *DoctorUpsertOne) SetSpecialty(v string) *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.SetSpecialty(v)
	})
}

// UpdateSpecialty sets the "specialty" field to the value that was provided on create.
func (u *DoctorUpsertOne) UpdateSpecialty() *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateSpecialty()
	})
}

// ClearSpecialty clears the value of the "specialty" field.
func (u *DoctorUpsertOne) ClearSpecialty() *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.ClearSpecialty()
	})
}

// SetCity sets the "city" field.
func (u *DoctorUpsertOne) SetCity(v string) *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.SetCity(v)
	})
}

// UpdateCity sets the "city" field to the value that was provided on create.
func (u *DoctorUpsertOne) UpdateCity() *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateCity()
	})
}

// ClearCity clears the value of the "city" field.
func (u *DoctorUpsertOne) ClearCity() *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.ClearCity()
	})
}

// Exec executes the query.
func (u *DoctorUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for DoctorCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DoctorUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *DoctorUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: DoctorUpsertOne.ID is not supported by MySQL driver. Use DoctorUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *DoctorUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// DoctorCreateBulk is the builder for creating many Doctor entities in bulk.
type DoctorCreateBulk struct {
	config
	err      error
	builders []*DoctorCreate
	conflict []sql.ConflictOption
}

// Save creates the Doctor entities in the database.
func (_c *DoctorCreateBulk) Save(ctx context.Context) ([]*Doctor, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Doctor, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DoctorMutation)
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
func (_c *DoctorCreateBulk) SaveX(ctx context.Context) []*Doctor {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DoctorCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DoctorCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Doctor.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DoctorUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *DoctorCreateBulk) OnConflict(opts ...sql.ConflictOption) *DoctorUpsertBulk {
	_c.conflict = opts
	return &DoctorUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Doctor.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DoctorCreateBulk) OnConflictColumns(columns ...string) *DoctorUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DoctorUpsertBulk{
		create: _c,
	}
}

// DoctorUpsertBulk is the builder for "upsert"-ing
// a bulk of Doctor nodes.
type DoctorUpsertBulk struct {
	create *DoctorCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Doctor.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(doctor.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DoctorUpsertBulk) UpdateNewValues() *DoctorUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(doctor.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(doctor.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Doctor.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *DoctorUpsertBulk) Ignore() *DoctorUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DoctorUpsertBulk) DoNothing() *DoctorUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DoctorCreateBulk.OnConflict
// documentation for more info.
func (u *DoctorUpsertBulk) Update(set func(*DoctorUpsert)) *DoctorUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DoctorUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *DoctorUpsertBulk) SetUpdatedAt(v time.Time) *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DoctorUpsertBulk) UpdateUpdatedAt() *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetUserID sets the "user_id" field.
func (u *DoctorUpsertBulk) SetUserID(v uuid.UUID) *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *DoctorUpsertBulk) UpdateUserID() *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateUserID()
	})
}

// SetName sets the "name" field.
func (u *DoctorUpsertBulk) SetName(v string) *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *DoctorUpsertBulk) UpdateName() *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateName()
	})
}

// ClearName clears the value of the "name" field.
func (u *DoctorUpsertBulk) ClearName() *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.ClearName()
	})
}

// SetSpecialty sets the "specialty" field.
func (u *DoctorUpsertBulk) SetSpecialty(v string) *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.SetSpecialty(v)
	})
}

// UpdateSpecialty sets the "specialty" field to the value that was provided on create.
func (u *DoctorUpsertBulk) UpdateSpecialty() *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateSpecialty()
	})
}

// ClearSpecialty clears the value of the "specialty" field.
func (u *DoctorUpsertBulk) ClearSpecialty() *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.ClearSpecialty()
	})
}

// SetCity sets the "city" field.
func (u *DoctorUpsertBulk) SetCity(v string) *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.SetCity(v)
	})
}

// UpdateCity sets the "city" field to the value that was provided on create.
func (u *DoctorUpsertBulk) UpdateCity() *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateCity()
	})
}

// ClearCity clears the value of the "city" field.
func (u *DoctorUpsertBulk) ClearCity() *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.ClearCity()
	})
}

// Exec executes the query.
func (u *DoctorUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the DoctorCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for DoctorCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DoctorUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
