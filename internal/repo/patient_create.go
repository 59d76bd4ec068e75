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
	"github.com/spitali-app/spitali_backend/internal/repo/patient"
)

// PatientCreate is the builder for creating a Patient entity.
type PatientCreate struct {
	config
	mutation *PatientMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *PatientCreate) SetCreatedAt(v time.Time) *PatientCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PatientCreate) SetNillableCreatedAt(v *time.Time) *PatientCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PatientCreate) SetUpdatedAt(v time.Time) *PatientCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PatientCreate) SetNillableUpdatedAt(v *time.Time) *PatientCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *PatientCreate) SetUserID(v uuid.UUID) *PatientCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_c *PatientCreate) SetNillableUserID(v *uuid.UUID) *PatientCreate {
	if v != nil {
		_c.SetUserID(*v)
	}
	return _c
}

// SetFirstName sets the "first_name" field.
func (_c *PatientCreate) SetFirstName(v string) *PatientCreate {
	_c.mutation.SetFirstName(v)
	return _c
}

// SetNillableFirstName sets the "first_name" field if the given value is not nil.
func (_c *PatientCreate) SetNillableFirstName(v *string) *PatientCreate {
	if v != nil {
		_c.SetFirstName(*v)
	}
	return _c
}

// SetLastName sets the "last_name" field.
func (_c *PatientCreate) SetLastName(v string) *PatientCreate {
	_c.mutation.SetLastName(v)
	return _c
}

// SetNillableLastName sets the "last_name" field if the given value is not nil.
func (_c *PatientCreate) SetNillableLastName(v *string) *PatientCreate {
	if v != nil {
		_c.SetLastName(*v)
	}
	return _c
}

// SetName sets the "name" field.
func (_c *PatientCreate) SetName(v string) *PatientCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_c *PatientCreate) SetNillableName(v *string) *PatientCreate {
	if v != nil {
		_c.SetName(*v)
	}
	return _c
}

// SetEmail sets the "email" field.
func (_c *PatientCreate) SetEmail(v string) *PatientCreate {
	_c.mutation.SetEmail(v)
	return _c
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_c *PatientCreate) SetNillableEmail(v *string) *PatientCreate {
	if v != nil {
		_c.SetEmail(*v)
	}
	return _c
}

// SetPhone sets the "phone" field.
func (_c *PatientCreate) SetPhone(v string) *PatientCreate {
	_c.mutation.SetPhone(v)
	return _c
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_c *PatientCreate) SetNillablePhone(v *string) *PatientCreate {
	if v != nil {
		_c.SetPhone(*v)
	}
	return _c
}

// SetGender sets the "gender" field.
func (_c *PatientCreate) SetGender(v patient.Gender) *PatientCreate {
	_c.mutation.SetGender(v)
	return _c
}

// SetNillableGender sets the "gender" field if the given value is not nil.
func (_c *PatientCreate) SetNillableGender(v *patient.Gender) *PatientCreate {
	if v != nil {
		_c.SetGender(*v)
	}
	return _c
}

// SetDob sets the "dob" field.
func (_c *PatientCreate) SetDob(v time.Time) *PatientCreate {
	_c.mutation.SetDob(v)
	return _c
}

// SetNillableDob sets the "dob" field if the given value is not nil.
func (_c *PatientCreate) SetNillableDob(v *time.Time) *PatientCreate {
	if v != nil {
		_c.SetDob(*v)
	}
	return _c
}

// SetCreatedByDoctorID sets the "created_by_doctor_id" field.
func (_c *PatientCreate) SetCreatedByDoctorID(v uuid.UUID) *PatientCreate {
	_c.mutation.SetCreatedByDoctorID(v)
	return _c
}

// SetNillableCreatedByDoctorID sets the "created_by_doctor_id" field if the given value is not nil.
func (_c *PatientCreate) SetNillableCreatedByDoctorID(v *uuid.UUID) *PatientCreate {
	if v != nil {
		_c.SetCreatedByDoctorID(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PatientCreate) SetID(v uuid.UUID) *PatientCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *PatientCreate) SetNillableID(v *uuid.UUID) *PatientCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the PatientMutation object of the builder.
func (_c *PatientCreate) Mutation() *PatientMutation {
	return _c.mutation
}

// Save creates the Patient in the database.
func (_c *PatientCreate) Save(ctx context.Context) (*Patient, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PatientCreate) SaveX(ctx context.Context) *Patient {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PatientCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PatientCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PatientCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := patient.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := patient.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := patient.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PatientCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Patient.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Patient.updated_at"`)}
	}
	if v, ok := _c.mutation.FirstName(); ok {
		if err := patient.FirstNameValidator(v); err != nil {
			return &ValidationError{Name: "first_name", err: fmt.Errorf(`repo: validator failed for field "Patient.first_name": %w`, err)}
		}
	}
	if v, ok := _c.mutation.LastName(); ok {
		if err := patient.LastNameValidator(v); err != nil {
			return &ValidationError{Name: "last_name", err: fmt.Errorf(`repo: validator failed for field "Patient.last_name": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := patient.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "Patient.name": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Email(); ok {
		if err := patient.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`repo: validator failed for field "Patient.email": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Phone(); ok {
		if err := patient.PhoneValidator(v); err != nil {
			return &ValidationError{Name: "phone", err: fmt.Errorf(`repo: validator failed for field "Patient.phone": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Gender(); ok {
		if err := patient.GenderValidator(v); err != nil {
			return &ValidationError{Name: "gender", err: fmt.Errorf(`repo: validator failed for field "Patient.gender": %w`, err)}
		}
	}
	return nil
}

func (_c *PatientCreate) sqlSave(ctx context.Context) (*Patient, error) {
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

func (_c *PatientCreate) createSpec() (*Patient, *sqlgraph.CreateSpec) {
	var (
		_node = &Patient{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(patient.Table, sqlgraph.NewFieldSpec(patient.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(patient.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(patient.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(patient.FieldUserID, field.TypeUUID, value)
		_node.UserID = &value
	}
	if value, ok := _c.mutation.FirstName(); ok {
		_spec.SetField(patient.FieldFirstName, field.TypeString, value)
		_node.FirstName = &value
	}
	if value, ok := _c.mutation.LastName(); ok {
		_spec.SetField(patient.FieldLastName, field.TypeString, value)
		_node.LastName = &value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(patient.FieldName, field.TypeString, value)
		_node.Name = &value
	}
	if value, ok := _c.mutation.Email(); ok {
		_spec.SetField(patient.FieldEmail, field.TypeString, value)
		_node.Email = &value
	}
	if value, ok := _c.mutation.Phone(); ok {
		_spec.SetField(patient.FieldPhone, field.TypeString, value)
		_node.Phone = &value
	}
	if value, ok := _c.mutation.Gender(); ok {
		_spec.SetField(patient.FieldGender, field.TypeEnum, value)
		_node.Gender = &value
	}
	if value, ok := _c.mutation.Dob(); ok {
		_spec.SetField(patient.FieldDob, field.TypeTime, value)
		_node.Dob = &value
	}
	if value, ok := _c.mutation.CreatedByDoctorID(); ok {
		_spec.SetField(patient.FieldCreatedByDoctorID, field.TypeUUID, value)
		_node.CreatedByDoctorID = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Patient.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PatientUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *PatientCreate) OnConflict(opts ...sql.ConflictOption) *PatientUpsertOne {
	_c.conflict = opts
	return &PatientUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Patient.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PatientCreate) OnConflictColumns(columns ...string) *PatientUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PatientUpsertOne{
		create: _c,
	}
}

type (
	// PatientUpsertOne is the builder for "upsert"-ing
	//  one Patient node.
	PatientUpsertOne struct {
		create *PatientCreate
	}

	// PatientUpsert is the "OnConflict" setter.
	PatientUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *PatientUpsert) SetUpdatedAt(v time.Time) *PatientUpsert {
	u.Set(patient.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PatientUpsert) UpdateUpdatedAt() *PatientUpsert {
	u.SetExcluded(patient.FieldUpdatedAt)
	return u
}

// SetUserID sets the "user_id" field.
func (u *PatientUpsert) SetUserID(v uuid.UUID) *PatientUpsert {
	u.Set(patient.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *PatientUpsert) UpdateUserID() *PatientUpsert {
	u.SetExcluded(patient.FieldUserID)
	return u
}

// ClearUserID clears the value of the "user_id" field.
func (u *PatientUpsert) ClearUserID() *PatientUpsert {
	u.SetNull(patient.FieldUserID)
	return u
}

// SetFirstName sets the "first_name" field.
func (u *PatientUpsert) SetFirstName(v string) *PatientUpsert {
	u.Set(patient.FieldFirstName, v)
	return u
}

// UpdateFirstName sets the "first_name" field to the value that was provided on create.
func (u *PatientUpsert) UpdateFirstName() *PatientUpsert {
	u.SetExcluded(patient.FieldFirstName)
	return u
}

// ClearFirstName clears the value of the "first_name" field.
func (u *PatientUpsert) ClearFirstName() *PatientUpsert {
	u.SetNull(patient.FieldFirstName)
	return u
}

// SetLastName sets the "last_name" field.
func (u *PatientUpsert) SetLastName(v string) *PatientUpsert {
	u.Set(patient.FieldLastName, v)
	return u
}

// UpdateLastName sets the "last_name" field to the value that was provided on create.
func (u *PatientUpsert) UpdateLastName() *PatientUpsert {
	u.SetExcluded(patient.FieldLastName)
	return u
}

// ClearLastName clears the value of the "last_name" field.
func (u *PatientUpsert) ClearLastName() *PatientUpsert {
	u.SetNull(patient.FieldLastName)
	return u
}

// SetName sets the "name" field.
func (u *PatientUpsert) SetName(v string) *PatientUpsert {
	u.Set(patient.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *PatientUpsert) UpdateName() *PatientUpsert {
	u.SetExcluded(patient.FieldName)
	return u
}

// ClearName clears the value of the "name" field.
func (u *PatientUpsert) ClearName() *PatientUpsert {
	u.SetNull(patient.FieldName)
	return u
}

// SetEmail sets the "email" field.
func (u *PatientUpsert) SetEmail(v string) *PatientUpsert {
	u.Set(patient.FieldEmail, v)
	return u
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *PatientUpsert) UpdateEmail() *PatientUpsert {
	u.SetExcluded(patient.FieldEmail)
	return u
}

// ClearEmail clears the value of the "email" field.
func (u *PatientUpsert) ClearEmail() *PatientUpsert {
	u.SetNull(patient.FieldEmail)
	return u
}

// SetPhone sets the "phone" field.
func (u *PatientUpsert) SetPhone(v string) *PatientUpsert {
	u.Set(patient.FieldPhone, v)
	return u
}

// UpdatePhone sets the "phone" field to the value that was provided on create.
func (u *PatientUpsert) UpdatePhone() *PatientUpsert {
	u.SetExcluded(patient.FieldPhone)
	return u
}

// ClearPhone clears the value of the "phone" field.
func (u *PatientUpsert) ClearPhone() *PatientUpsert {
	u.SetNull(patient.FieldPhone)
	return u
}

// SetGender sets the "gender" field.
func (u *PatientUpsert) SetGender(v patient.Gender) *PatientUpsert {
	u.Set(patient.FieldGender, v)
	return u
}

// UpdateGender sets the "gender" field to the value that was provided on create.
func (u *PatientUpsert) UpdateGender() *PatientUpsert {
	u.SetExcluded(patient.FieldGender)
	return u
}

// ClearGender clears the value of the "gender" field.
func (u *PatientUpsert) ClearGender() *PatientUpsert {
	u.SetNull(patient.FieldGender)
	return u
}

// SetDob sets the "dob" field.
func (u *PatientUpsert) SetDob(v time.Time) *PatientUpsert {
	u.Set(patient.FieldDob, v)
	return u
}

// UpdateDob sets the "dob" field to the value that was provided on create.
func (u *PatientUpsert) UpdateDob() *PatientUpsert {
	u.SetExcluded(patient.FieldDob)
	return u
}

// ClearDob clears the value of the "dob" field.
func (u *PatientUpsert) ClearDob() *PatientUpsert {
	u.SetNull(patient.FieldDob)
	return u
}

// SetCreatedByDoctorID sets the "created_by_doctor_id" field.
func (u *PatientUpsert) SetCreatedByDoctorID(v uuid.UUID) *PatientUpsert {
	u.Set(patient.FieldCreatedByDoctorID, v)
	return u
}

// UpdateCreatedByDoctorID sets the "created_by_doctor_id" field to the value that was provided on create.
func (u *PatientUpsert) UpdateCreatedByDoctorID() *PatientUpsert {
	u.SetExcluded(patient.FieldCreatedByDoctorID)
	return u
}

// ClearCreatedByDoctorID clears the value of the "created_by_doctor_id" field.
func (u *PatientUpsert) ClearCreatedByDoctorID() *PatientUpsert {
	u.SetNull(patient.FieldCreatedByDoctorID)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Patient.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(patient.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PatientUpsertOne) UpdateNewValues() *PatientUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(patient.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(patient.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Patient.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PatientUpsertOne) Ignore() *PatientUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PatientUpsertOne) DoNothing() *PatientUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PatientCreate.OnConflict
// documentation for more info.
func (u *PatientUpsertOne) Update(set func(*PatientUpsert)) *PatientUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PatientUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PatientUpsertOne) SetUpdatedAt(v time.Time) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PatientUpsertOne) UpdateUpdatedAt() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetUserID sets the "user_id" field.
func (u *PatientUpsertOne) SetUserID(v uuid.UUID) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *PatientUpsertOne) UpdateUserID() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateUserID()
	})
}

// ClearUserID clears the value of the "user_id" field.
func (u *PatientUpsertOne) ClearUserID() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.ClearUserID()
	})
}

// SetFirstName sets the "first_name" field.
func (u *PatientUpsertOne) SetFirstName(v string) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.SetFirstName(v)
	})
}

// UpdateFirstName sets the "first_name" field to the value that was provided on create.
func (u *PatientUpsertOne) UpdateFirstName() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateFirstName()
	})
}

// ClearFirstName clears the value of the "first_name" field.
func (u *PatientUpsertOne) ClearFirstName() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.ClearFirstName()
	})
}

// SetLastName sets the "last_name" field.
func (u *PatientUpsertOne) SetLastName(v string) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.SetLastName(v)
	})
}

// UpdateLastName sets the "last_name" field to the value that was provided on create.
func (u *PatientUpsertOne) UpdateLastName() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateLastName()
	})
}

// ClearLastName clears the value of the "last_name" field.
func (u *PatientUpsertOne) ClearLastName() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.ClearLastName()
	})
}

// SetName sets the "name" field.
func (u *PatientUpsertOne) SetName(v string) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *PatientUpsertOne) UpdateName() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateName()
	})
}

// ClearName clears the value of the "name" field.
func (u *PatientUpsertOne) ClearName() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.ClearName()
	})
}

// SetEmail sets the "email" field.
func (u *PatientUpsertOne) SetEmail(v string) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.SetEmail(v)
	})
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *PatientUpsertOne) UpdateEmail() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateEmail()
	})
}

// ClearEmail clears the value of the "email" field.
func (u *PatientUpsertOne) ClearEmail() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.ClearEmail()
	})
}

// SetPhone sets the "phone" field.
func (u *PatientUpsertOne) SetPhone(v string) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.SetPhone(v)
	})
}

// UpdatePhone sets the "phone" field to the value that was provided on create.
func (u *PatientUpsertOne) UpdatePhone() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.UpdatePhone()
	})
}

// ClearPhone clears the value of the "phone" field.
func (u *PatientUpsertOne) ClearPhone() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.ClearPhone()
	})
}

// SetGender sets the "gender" field.
func (u *PatientUpsertOne) SetGender(v patient.Gender) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.SetGender(v)
	})
}

// UpdateGender sets the "gender" field to the value that was provided on create.
func (u *PatientUpsertOne) UpdateGender() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateGender()
	})
}

// ClearGender clears the value of the "gender" field.
func (u *PatientUpsertOne) ClearGender() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.ClearGender()
	})
}

// SetDob sets the "dob" field.
func (u *PatientUpsertOne) SetDob(v time.Time) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.SetDob(v)
	})
}

// UpdateDob sets the "dob" field to the value that was provided on create.
func (u *PatientUpsertOne) UpdateDob() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateDob()
	})
}

// ClearDob clears the value of the "dob" field.
func (u *PatientUpsertOne) ClearDob() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.ClearDob()
	})
}

// SetCreatedByDoctorID sets the "created_by_doctor_id" field.
func (u *PatientUpsertOne) SetCreatedByDoctorID(v uuid.UUID) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.SetCreatedByDoctorID(v)
	})
}

// UpdateCreatedByDoctorID sets the "created_by_doctor_id" field to the value that was provided on create.
func (u *PatientUpsertOne) UpdateCreatedByDoctorID() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateCreatedByDoctorID()
	})
}

// ClearCreatedByDoctorID clears the value of the "created_by_doctor_id" field.
func (u *PatientUpsertOne) ClearCreatedByDoctorID() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.ClearCreatedByDoctorID()
	})
}

// Exec executes the query.
func (u *PatientUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for PatientCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PatientUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PatientUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: PatientUpsertOne.ID is not supported by MySQL driver. Use PatientUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PatientUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PatientCreateBulk is the builder for creating many Patient entities in bulk.
type PatientCreateBulk struct {
	config
	err      error
	builders []*PatientCreate
	conflict []sql.ConflictOption
}

// Save creates the Patient entities in the database.
func (_c *PatientCreateBulk) Save(ctx context.Context) ([]*Patient, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Patient, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PatientMutation)
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
func (_c *PatientCreateBulk) SaveX(ctx context.Context) []*Patient {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PatientCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PatientCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Patient.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PatientUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *PatientCreateBulk) OnConflict(opts ...sql.ConflictOption) *PatientUpsertBulk {
	_c.conflict = opts
	return &PatientUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Patient.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PatientCreateBulk) OnConflictColumns(columns ...string) *PatientUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PatientUpsertBulk{
		create: _c,
	}
}

// PatientUpsertBulk is the builder for "upsert"-ing
// a bulk of Patient nodes.
type PatientUpsertBulk struct {
	create *PatientCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Patient.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(patient.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PatientUpsertBulk) UpdateNewValues() *PatientUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(patient.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(patient.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Patient.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PatientUpsertBulk) Ignore() *PatientUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PatientUpsertBulk) DoNothing() *PatientUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PatientCreateBulk.OnConflict
// documentation for more info.
func (u *PatientUpsertBulk) Update(set func(*PatientUpsert)) *PatientUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PatientUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PatientUpsertBulk) SetUpdatedAt(v time.Time) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PatientUpsertBulk) UpdateUpdatedAt() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetUserID sets the "user_id" field.
func (u *PatientUpsertBulk) SetUserID(v uuid.UUID) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *PatientUpsertBulk) UpdateUserID() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateUserID()
	})
}

// ClearUserID clears the value of the "user_id" field.
func (u *PatientUpsertBulk) ClearUserID() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.ClearUserID()
	})
}

// SetFirstName sets the "first_name" field.
func (u *PatientUpsertBulk) SetFirstName(v string) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.SetFirstName(v)
	})
}

// UpdateFirstName sets the "first_name" field to the value that was provided on create.
func (u *PatientUpsertBulk) UpdateFirstName() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateFirstName()
	})
}

// ClearFirstName clears the value of the "first_name" field.
func (u *PatientUpsertBulk) ClearFirstName() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.ClearFirstName()
	})
}

// SetLastName sets the "last_name" field.
func (u *PatientUpsertBulk) SetLastName(v string) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.SetLastName(v)
	})
}

// UpdateLastName sets the "last_name" field to the value that was provided on create.
func (u *PatientUpsertBulk) UpdateLastName() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateLastName()
	})
}

// ClearLastName clears the value of the "last_name" field.
func (u *PatientUpsertBulk) ClearLastName() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.ClearLastName()
	})
}

// SetName sets the "name" field.
func (u *PatientUpsertBulk) SetName(v string) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *PatientUpsertBulk) UpdateName() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateName()
	})
}

// ClearName clears the value of the "name" field.
func (u *PatientUpsertBulk) ClearName() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.ClearName()
	})
}

// SetEmail sets the "email" field.
func (u *PatientUpsertBulk) SetEmail(v string) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.SetEmail(v)
	})
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *PatientUpsertBulk) UpdateEmail() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateEmail()
	})
}

// ClearEmail clears the value of the "email" field.
func (u *PatientUpsertBulk) ClearEmail() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.ClearEmail()
	})
}

// SetPhone sets the "phone" field.
func (u *PatientUpsertBulk) SetPhone(v string) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.SetPhone(v)
	})
}

// UpdatePhone sets the "phone" field to the value that was provided on create.
func (u *PatientUpsertBulk) UpdatePhone() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.UpdatePhone()
	})
}

// ClearPhone clears the value of the "phone" field.
func (u *PatientUpsertBulk) ClearPhone() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.ClearPhone()
	})
}

// SetGender sets the "gender" field.
func (u *PatientUpsertBulk) SetGender(v patient.Gender) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.SetGender(v)
	})
}

// UpdateGender sets the "gender" field to the value that was provided on create.
func (u *PatientUpsertBulk) UpdateGender() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateGender()
	})
}

// ClearGender clears the value of the "gender" field.
func (u *PatientUpsertBulk) ClearGender() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.ClearGender()
	})
}

// SetDob sets the "dob" field.
func (u *PatientUpsertBulk) SetDob(v time.Time) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.SetDob(v)
	})
}

// UpdateDob sets the "dob" field to the value that was provided on create.
func (u *PatientUpsertBulk) UpdateDob() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateDob()
	})
}

// ClearDob clears the value of the "dob" field.
func (u *PatientUpsertBulk) ClearDob() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.ClearDob()
	})
}

// SetCreatedByDoctorID sets the "created_by_doctor_id" field.
func (u *PatientUpsertBulk) SetCreatedByDoctorID(v uuid.UUID) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.SetCreatedByDoctorID(v)
	})
}

// UpdateCreatedByDoctorID sets the "created_by_doctor_id" field to the value that was provided on create.
func (u *PatientUpsertBulk) UpdateCreatedByDoctorID() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateCreatedByDoctorID()
	})
}

// ClearCreatedByDoctorID clears the value of the "created_by_doctor_id" field.
func (u *PatientUpsertBulk) ClearCreatedByDoctorID() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.ClearCreatedByDoctorID()
	})
}

// Exec executes the query.
func (u *PatientUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the PatientCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for PatientCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PatientUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
