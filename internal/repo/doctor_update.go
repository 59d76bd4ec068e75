// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/spitali-app/spitali_backend/internal/repo/doctor"
	"github.com/spitali-app/spitali_backend/internal/repo/predicate"
)

// DoctorUpdate is the builder for updating Doctor entities.
type DoctorUpdate struct {
	config
	hooks    []Hook
	mutation *DoctorMutation
}

// Where appends a list predicates to the DoctorUpdate builder.
func (_u *DoctorUpdate) Where(ps ...predicate.Doctor) *DoctorUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DoctorUpdate) SetUpdatedAt(v time.Time) *DoctorUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *DoctorUpdate) SetUserID(v uuid.UUID) *DoctorUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *DoctorUpdate) SetNillableUserID(v *uuid.UUID) *DoctorUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *DoctorUpdate) SetName(v string) *DoctorUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *DoctorUpdate) SetNillableName(v *string) *DoctorUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// ClearName clears the value of the "name" field.
func (_u *DoctorUpdate) ClearName() *DoctorUpdate {
	_u.mutation.ClearName()
	return _u
}

// SetSpecialty sets the "specialty" field.
func (_u *DoctorUpdate) SetSpecialty(v string) *DoctorUpdate {
	_u.mutation.SetSpecialty(v)
	return _u
}

// SetNillableSpecialty sets the "specialty" field if the given value is not nil.
func (_u *DoctorUpdate) SetNillableSpecialty(v *string) *DoctorUpdate {
	if v != nil {
		_u.SetSpecialty(*v)
	}
	return _u
}

// ClearSpecialty clears the value of the "specialty" field.
func (_u *DoctorUpdate) ClearSpecialty() *DoctorUpdate {
	_u.mutation.ClearSpecialty()
	return _u
}

// SetCity sets the "city" field.
func (_u *DoctorUpdate) SetCity(v string) *DoctorUpdate {
	_u.mutation.SetCity(v)
	return _u
}

// SetNillableCity sets the "city" field if the given value is not nil.
func (_u *DoctorUpdate) SetNillableCity(v *string) *DoctorUpdate {
	if v != nil {
		_u.SetCity(*v)
	}
	return _u
}

// ClearCity clears the value of the "city" field.
func (_u *DoctorUpdate) ClearCity() *DoctorUpdate {
	_u.mutation.ClearCity()
	return _u
}

// Mutation returns the DoctorMutation object of the builder.
func (_u *DoctorUpdate) Mutation() *DoctorMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DoctorUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DoctorUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DoctorUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DoctorUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DoctorUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := doctor.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DoctorUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := doctor.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "Doctor.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Specialty(); ok {
		if err := doctor.SpecialtyValidator(v); err != nil {
			return &ValidationError{Name: "specialty", err: fmt.Errorf(`repo: validator failed for field "Doctor.specialty": %w`, err)}
		}
	}
	if v, ok := _u.mutation.City(); ok {
		if err := doctor.CityValidator(v); err != nil {
			return &ValidationError{Name: "city", err: fmt.Errorf(`repo: validator failed for field "Doctor.city": %w`, err)}
		}
	}
	return nil
}

func (_u *DoctorUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(doctor.Table, doctor.Columns, sqlgraph.NewFieldSpec(doctor.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(doctor.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(doctor.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(doctor.FieldName, field.TypeString, value)
	}
	if _u.mutation.NameCleared() {
		_spec.ClearField(doctor.FieldName, field.TypeString)
	}
	if value, ok := _u.mutation.Specialty(); ok {
		_spec.SetField(doctor.FieldSpecialty, field.TypeString, value)
	}
	if _u.mutation.SpecialtyCleared() {
		_spec.ClearField(doctor.FieldSpecialty, field.TypeString)
	}
	if value, ok := _u.mutation.City(); ok {
		_spec.SetField(doctor.FieldCity, field.TypeString, value)
	}
	if _u.mutation.CityCleared() {
		_spec.ClearField(doctor.FieldCity, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{doctor.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DoctorUpdateOne is the builder for updating a single Doctor entity.
type DoctorUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DoctorMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DoctorUpdateOne) SetUpdatedAt(v time.Time) *DoctorUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *DoctorUpdateOne) SetUserID(v uuid.UUID) *DoctorUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *DoctorUpdateOne) SetNillableUserID(v *uuid.UUID) *DoctorUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *DoctorUpdateOne) SetName(v string) *DoctorUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *DoctorUpdateOne) SetNillableName(v *string) *DoctorUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// ClearName clears the value of the "name" field.
func (_u *DoctorUpdateOne) ClearName() *DoctorUpdateOne {
	_u.mutation.ClearName()
	return _u
}

// SetSpecialty sets the "specialty" field.
func (_u *DoctorUpdateOne) SetSpecialty(v string) *DoctorUpdateOne {
	_u.mutation.SetSpecialty(v)
	return _u
}

// SetNillableSpecialty sets the "specialty" field if the given value is not nil.
func (_u *DoctorUpdateOne) SetNillableSpecialty(v *string) *DoctorUpdateOne {
	if v != nil {
		_u.SetSpecialty(*v)
	}
	return _u
}

// ClearSpecialty clears the value of the "specialty" field.
func (_u *DoctorUpdateOne) ClearSpecialty() *DoctorUpdateOne {
	_u.mutation.ClearSpecialty()
	return _u
}

// SetCity sets the "city" field.
func (_u *DoctorUpdateOne) SetCity(v string) *DoctorUpdateOne {
	_u.mutation.SetCity(v)
	return _u
}

// SetNillableCity sets the "city" field if the given value is not nil.
func (_u *DoctorUpdateOne) SetNillableCity(v *string) *DoctorUpdateOne {
	if v != nil {
		_u.SetCity(*v)
	}
	return _u
}

// ClearCity clears the value of the "city" field.
func (_u *DoctorUpdateOne) ClearCity() *DoctorUpdateOne {
	_u.mutation.ClearCity()
	return _u
}

// Mutation returns the DoctorMutation object of the builder.
func (_u *DoctorUpdateOne) Mutation() *DoctorMutation {
	return _u.mutation
}

// Where appends a list predicates to the DoctorUpdate builder.
func (_u *DoctorUpdateOne) Where(ps ...predicate.Doctor) *DoctorUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DoctorUpdateOne) Select(field string, fields ...string) *DoctorUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Doctor entity.
func (_u *DoctorUpdateOne) Save(ctx context.Context) (*Doctor, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DoctorUpdateOne) SaveX(ctx context.Context) *Doctor {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DoctorUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DoctorUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DoctorUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := doctor.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DoctorUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := doctor.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "Doctor.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Specialty(); ok {
		if err := doctor.SpecialtyValidator(v); err != nil {
			return &ValidationError{Name: "specialty", err: fmt.Errorf(`repo: validator failed for field "Doctor.specialty": %w`, err)}
		}
	}
	if v, ok := _u.mutation.City(); ok {
		if err := doctor.CityValidator(v); err != nil {
			return &ValidationError{Name: "city", err: fmt.Errorf(`repo: validator failed for field "Doctor.city": %w`, err)}
		}
	}
	return nil
}

func (_u *DoctorUpdateOne) sqlSave(ctx context.Context) (_node *Doctor, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(doctor.Table, doctor.Columns, sqlgraph.NewFieldSpec(doctor.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Doctor.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, doctor.FieldID)
		for _, f := range fields {
			if !doctor.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != doctor.FieldID {
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
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(doctor.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(doctor.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(doctor.FieldName, field.TypeString, value)
	}
	if _u.mutation.NameCleared() {
		_spec.ClearField(doctor.FieldName, field.TypeString)
	}
	if value, ok := _u.mutation.Specialty(); ok {
		_spec.SetField(doctor.FieldSpecialty, field.TypeString, value)
	}
	if _u.mutation.SpecialtyCleared() {
		_spec.ClearField(doctor.FieldSpecialty, field.TypeString)
	}
	if value, ok := _u.mutation.City(); ok {
		_spec.SetField(doctor.FieldCity, field.TypeString, value)
	}
	if _u.mutation.CityCleared() {
		_spec.ClearField(doctor.FieldCity, field.TypeString)
	}
	_node = &Doctor{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{doctor.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
