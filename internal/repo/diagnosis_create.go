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
	"github.com/spitali-app/spitali_backend/internal/repo/diagnosis"
)

// DiagnosisCreate is the builder for creating a Diagnosis entity.
type DiagnosisCreate struct {
	config
	mutation *DiagnosisMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *DiagnosisCreate) SetCreatedAt(v time.Time) *DiagnosisCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DiagnosisCreate) SetNillableCreatedAt(v *time.Time) *DiagnosisCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetPatientID sets the "patient_id" field.
func (_c *DiagnosisCreate) SetPatientID(v uuid.UUID) *DiagnosisCreate {
	_c.mutation.SetPatientID(v)
	return _c
}

// SetDoctorID sets the "doctor_id" field.
func (_c *DiagnosisCreate) SetDoctorID(v uuid.UUID) *DiagnosisCreate {
	_c.mutation.SetDoctorID(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *DiagnosisCreate) SetTitle(v string) *DiagnosisCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *DiagnosisCreate) SetDescription(v string) *DiagnosisCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *DiagnosisCreate) SetNillableDescription(v *string) *DiagnosisCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DiagnosisCreate) SetID(v uuid.UUID) *DiagnosisCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *DiagnosisCreate) SetNillableID(v *uuid.UUID) *DiagnosisCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the DiagnosisMutation object of the builder.
func (_c *DiagnosisCreate) Mutation() *DiagnosisMutation {
	return _c.mutation
}

// Save creates the Diagnosis in the database.
func (_c *DiagnosisCreate) Save(ctx context.Context) (*Diagnosis, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DiagnosisCreate) SaveX(ctx context.Context) *Diagnosis {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DiagnosisCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DiagnosisCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DiagnosisCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := diagnosis.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := diagnosis.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DiagnosisCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Diagnosis.created_at"`)}
	}
	if _, ok := _c.mutation.PatientID(); !ok {
		return &ValidationError{Name: "patient_id", err: errors.New(`repo: missing required field "Diagnosis.patient_id"`)}
	}
	if _, ok := _c.mutation.DoctorID(); !ok {
		return &ValidationError{Name: "doctor_id", err: errors.New(`repo: missing required field "Diagnosis.doctor_id"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`repo: missing required field "Diagnosis.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := diagnosis.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`repo: validator failed for field "Diagnosis.title": %w`, err)}
		}
	}
	return nil
}

func (_c *DiagnosisCreate) sqlSave(ctx context.Context) (*Diagnosis, error) {
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

func (_c *DiagnosisCreate) createSpec() (*Diagnosis, *sqlgraph.CreateSpec) {
	var (
		_node = &Diagnosis{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(diagnosis.Table, sqlgraph.NewFieldSpec(diagnosis.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(diagnosis.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.PatientID(); ok {
		_spec.SetField(diagnosis.FieldPatientID, field.TypeUUID, value)
		_node.PatientID = value
	}
	if value, ok := _c.mutation.DoctorID(); ok {
		_spec.SetField(diagnosis.FieldDoctorID, field.TypeUUID, value)
		_node.DoctorID = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(diagnosis.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(diagnosis.FieldDescription, field.TypeString, value)
		_node.Description = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Diagnosis.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DiagnosisUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *DiagnosisCreate) OnConflict(opts ...sql.ConflictOption) *DiagnosisUpsertOne {
	_c.conflict = opts
	return &DiagnosisUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Diagnosis.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DiagnosisCreate) OnConflictColumns(columns ...string) *DiagnosisUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DiagnosisUpsertOne{
		create: _c,
	}
}

type (
	// DiagnosisUpsertOne is the builder for "upsert"-ing
	//  one Diagnosis node.
	DiagnosisUpsertOne struct {
		create *DiagnosisCreate
	}

	// DiagnosisUpsert is the "OnConflict" setter.
	DiagnosisUpsert struct {
		*sql.UpdateSet
	}
)

// SetPatientID sets the "patient_id" field.
func (u *DiagnosisUpsert) SetPatientID(v uuid.UUID) *DiagnosisUpsert {
	u.Set(diagnosis.FieldPatientID, v)
	return u
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *DiagnosisUpsert) UpdatePatientID() *DiagnosisUpsert {
	u.SetExcluded(diagnosis.FieldPatientID)
	return u
}

// SetDoctorID sets the "doctor_id" field.
func (u *DiagnosisUpsert) SetDoctorID(v uuid.UUID) *DiagnosisUpsert {
	u.Set(diagnosis.FieldDoctorID, v)
	return u
}

// UpdateDoctorID sets the "doctor_id" field to the value that was provided on create.
func (u *DiagnosisUpsert) UpdateDoctorID() *DiagnosisUpsert {
	u.SetExcluded(diagnosis.FieldDoctorID)
	return u
}

// SetTitle sets the "title" field.
func (u *DiagnosisUpsert) SetTitle(v string) *DiagnosisUpsert {
	u.Set(diagnosis.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *DiagnosisUpsert) UpdateTitle() *DiagnosisUpsert {
	u.SetExcluded(diagnosis.FieldTitle)
	return u
}

// SetDescription sets the "description" field.
func (u *DiagnosisUpsert) SetDescription(v string) *DiagnosisUpsert {
	u.Set(diagnosis.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *DiagnosisUpsert) UpdateDescription() *DiagnosisUpsert {
	u.SetExcluded(diagnosis.FieldDescription)
	return u
}

// ClearDescription clears the value of the "description" field.
func (u *DiagnosisUpsert) ClearDescription() *DiagnosisUpsert {
	u.SetNull(diagnosis.FieldDescription)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Diagnosis.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(diagnosis.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DiagnosisUpsertOne) UpdateNewValues() *DiagnosisUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(diagnosis.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(diagnosis.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Diagnosis.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *DiagnosisUpsertOne) Ignore() *DiagnosisUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DiagnosisUpsertOne) DoNothing() *DiagnosisUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DiagnosisCreate.OnConflict
// documentation for more info.
func (u *DiagnosisUpsertOne) Update(set func(*DiagnosisUpsert)) *DiagnosisUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DiagnosisUpsert{UpdateSet: update})
	}))
	return u
}

// SetPatientID sets the "patient_id" field.
func (u *DiagnosisUpsertOne) SetPatientID(v uuid.UUID) *DiagnosisUpsertOne {
	return u.Update(func(s *DiagnosisUpsert) {
		s.SetPatientID(v)
	})
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *DiagnosisUpsertOne) UpdatePatientID() *DiagnosisUpsertOne {
	return u.Update(func(s *DiagnosisUpsert) {
		s.UpdatePatientID()
	})
}

// SetDoctorID sets the "doctor_id" field.
func (u *DiagnosisUpsertOne) SetDoctorID(v uuid.UUID) *DiagnosisUpsertOne {
	return u.Update(func(s *DiagnosisUpsert) {
		s.SetDoctorID(v)
	})
}

// UpdateDoctorID sets the "doctor_id" field to the value that was provided on create.
func (u *DiagnosisUpsertOne) UpdateDoctorID() *DiagnosisUpsertOne {
	return u.Update(func(s *DiagnosisUpsert) {
		s.UpdateDoctorID()
	})
}

// SetTitle sets the "title" field.
func (u *DiagnosisUpsertOne) SetTitle(v string) *DiagnosisUpsertOne {
	return u.Update(func(s *DiagnosisUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *DiagnosisUpsertOne) UpdateTitle() *DiagnosisUpsertOne {
	return u.Update(func(s *DiagnosisUpsert) {
		s.UpdateTitle()
	})
}

// SetDescription sets the "description" field.
func (u *DiagnosisUpsertOne) SetDescription(v string) *DiagnosisUpsertOne {
	return u.Update(func(s *DiagnosisUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *DiagnosisUpsertOne) UpdateDescription() *DiagnosisUpsertOne {
	return u.Update(func(s *DiagnosisUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *DiagnosisUpsertOne) ClearDescription() *DiagnosisUpsertOne {
	return u.Update(func(s *DiagnosisUpsert) {
		s.ClearDescription()
	})
}

// Exec executes the query.
func (u *DiagnosisUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for DiagnosisCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DiagnosisUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *DiagnosisUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: DiagnosisUpsertOne.ID is not supported by MySQL driver. Use DiagnosisUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *DiagnosisUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// DiagnosisCreateBulk is the builder for creating many Diagnosis entities in bulk.
type DiagnosisCreateBulk struct {
	config
	err      error
	builders []*DiagnosisCreate
	conflict []sql.ConflictOption
}

// Save creates the Diagnosis entities in the database.
func (_c *DiagnosisCreateBulk) Save(ctx context.Context) ([]*Diagnosis, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Diagnosis, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DiagnosisMutation)
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
func (_c *DiagnosisCreateBulk) SaveX(ctx context.Context) []*Diagnosis {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DiagnosisCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DiagnosisCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Diagnosis.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DiagnosisUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *DiagnosisCreateBulk) OnConflict(opts ...sql.ConflictOption) *DiagnosisUpsertBulk {
	_c.conflict = opts
	return &DiagnosisUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Diagnosis.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DiagnosisCreateBulk) OnConflictColumns(columns ...string) *DiagnosisUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DiagnosisUpsertBulk{
		create: _c,
	}
}

// DiagnosisUpsertBulk is the builder for "upsert"-ing
// a bulk of Diagnosis nodes.
type DiagnosisUpsertBulk struct {
	create *DiagnosisCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Diagnosis.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(diagnosis.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DiagnosisUpsertBulk) UpdateNewValues() *DiagnosisUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(diagnosis.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(diagnosis.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Diagnosis.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *DiagnosisUpsertBulk) Ignore() *DiagnosisUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DiagnosisUpsertBulk) DoNothing() *DiagnosisUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DiagnosisCreateBulk.OnConflict
// documentation for more info.
func (u *DiagnosisUpsertBulk) Update(set func(*DiagnosisUpsert)) *DiagnosisUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DiagnosisUpsert{UpdateSet: update})
	}))
	return u
}

// SetPatientID sets the "patient_id" field.
func (u *DiagnosisUpsertBulk) SetPatientID(v uuid.UUID) *DiagnosisUpsertBulk {
	return u.Update(func(s *DiagnosisUpsert) {
		s.SetPatientID(v)
	})
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *DiagnosisUpsertBulk) UpdatePatientID() *DiagnosisUpsertBulk {
	return u.Update(func(s *DiagnosisUpsert) {
		s.UpdatePatientID()
	})
}

// SetDoctorID sets the "doctor_id" field.
func (u *DiagnosisUpsertBulk) SetDoctorID(v uuid.UUID) *DiagnosisUpsertBulk {
	return u.Update(func(s *DiagnosisUpsert) {
		s.SetDoctorID(v)
	})
}

// UpdateDoctorID sets the "doctor_id" field to the value that was provided on create.
func (u *DiagnosisUpsertBulk) UpdateDoctorID() *DiagnosisUpsertBulk {
	return u.Update(func(s *DiagnosisUpsert) {
		s.UpdateDoctorID()
	})
}

// SetTitle sets the "title" field.
func (u *DiagnosisUpsertBulk) SetTitle(v string) *DiagnosisUpsertBulk {
	return u.Update(func(s *DiagnosisUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *DiagnosisUpsertBulk) UpdateTitle() *DiagnosisUpsertBulk {
	return u.Update(func(s *DiagnosisUpsert) {
		s.UpdateTitle()
	})
}

// SetDescription sets the "description" field.
func (u *DiagnosisUpsertBulk) SetDescription(v string) *DiagnosisUpsertBulk {
	return u.Update(func(s *DiagnosisUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *DiagnosisUpsertBulk) UpdateDescription() *DiagnosisUpsertBulk {
	return u.Update(func(s *DiagnosisUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *DiagnosisUpsertBulk) ClearDescription() *DiagnosisUpsertBulk {
	return u.Update(func(s *DiagnosisUpsert) {
		s.ClearDescription()
	})
}

// Exec executes the query.
func (u *DiagnosisUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the DiagnosisCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for DiagnosisCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DiagnosisUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
