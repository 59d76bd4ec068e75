// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/spitali-app/spitali_backend/internal/repo/diagnosis"
	"github.com/spitali-app/spitali_backend/internal/repo/predicate"
)

// DiagnosisUpdate is the builder for updating Diagnosis entities.
type DiagnosisUpdate struct {
	config
	hooks    []Hook
	mutation *DiagnosisMutation
}

// Where appends a list predicates to the DiagnosisUpdate builder.
func (_u *DiagnosisUpdate) Where(ps ...predicate.Diagnosis) *DiagnosisUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *DiagnosisUpdate) SetPatientID(v uuid.UUID) *DiagnosisUpdate {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *DiagnosisUpdate) SetNillablePatientID(v *uuid.UUID) *DiagnosisUpdate {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetDoctorID sets the "doctor_id" field.
func (_u *DiagnosisUpdate) SetDoctorID(v uuid.UUID) *DiagnosisUpdate {
	_u.mutation.SetDoctorID(v)
	return _u
}

// SetNillableDoctorID sets the "doctor_id" field if the given value is not nil.
func (_u *DiagnosisUpdate) SetNillableDoctorID(v *uuid.UUID) *DiagnosisUpdate {
	if v != nil {
		_u.SetDoctorID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *DiagnosisUpdate) SetTitle(v string) *DiagnosisUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *DiagnosisUpdate) SetNillableTitle(v *string) *DiagnosisUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *DiagnosisUpdate) SetDescription(v string) *DiagnosisUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *DiagnosisUpdate) SetNillableDescription(v *string) *DiagnosisUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *DiagnosisUpdate) ClearDescription() *DiagnosisUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// Mutation returns the DiagnosisMutation object of the builder.
func (_u *DiagnosisUpdate) Mutation() *DiagnosisMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DiagnosisUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DiagnosisUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DiagnosisUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DiagnosisUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DiagnosisUpdate) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := diagnosis.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`repo: validator failed for field "Diagnosis.title": %w`, err)}
		}
	}
	return nil
}

func (_u *DiagnosisUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(diagnosis.Table, diagnosis.Columns, sqlgraph.NewFieldSpec(diagnosis.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PatientID(); ok {
		_spec.SetField(diagnosis.FieldPatientID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.DoctorID(); ok {
		_spec.SetField(diagnosis.FieldDoctorID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(diagnosis.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(diagnosis.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(diagnosis.FieldDescription, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{diagnosis.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DiagnosisUpdateOne is the builder for updating a single Diagnosis entity.
type DiagnosisUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DiagnosisMutation
}

// SetPatientID sets the "patient_id" field.
func (_u *DiagnosisUpdateOne) SetPatientID(v uuid.UUID) *DiagnosisUpdateOne {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *DiagnosisUpdateOne) SetNillablePatientID(v *uuid.UUID) *DiagnosisUpdateOne {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetDoctorID sets the "doctor_id" field.
func (_u *DiagnosisUpdateOne) SetDoctorID(v uuid.UUID) *DiagnosisUpdateOne {
	_u.mutation.SetDoctorID(v)
	return _u
}

// SetNillableDoctorID sets the "doctor_id" field if the given value is not nil.
func (_u *DiagnosisUpdateOne) SetNillableDoctorID(v *uuid.UUID) *DiagnosisUpdateOne {
	if v != nil {
		_u.SetDoctorID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *DiagnosisUpdateOne) SetTitle(v string) *DiagnosisUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *DiagnosisUpdateOne) SetNillableTitle(v *string) *DiagnosisUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *DiagnosisUpdateOne) SetDescription(v string) *DiagnosisUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *DiagnosisUpdateOne) SetNillableDescription(v *string) *DiagnosisUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *DiagnosisUpdateOne) ClearDescription() *DiagnosisUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// Mutation returns the DiagnosisMutation object of the builder.
func (_u *DiagnosisUpdateOne) Mutation() *DiagnosisMutation {
	return _u.mutation
}

// Where appends a list predicates to the DiagnosisUpdate builder.
func (_u *DiagnosisUpdateOne) Where(ps ...predicate.Diagnosis) *DiagnosisUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DiagnosisUpdateOne) Select(field string, fields ...string) *DiagnosisUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Diagnosis entity.
func (_u *DiagnosisUpdateOne) Save(ctx context.Context) (*Diagnosis, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DiagnosisUpdateOne) SaveX(ctx context.Context) *Diagnosis {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DiagnosisUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DiagnosisUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DiagnosisUpdateOne) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := diagnosis.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`repo: validator failed for field "Diagnosis.title": %w`, err)}
		}
	}
	return nil
}

func (_u *DiagnosisUpdateOne) sqlSave(ctx context.Context) (_node *Diagnosis, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(diagnosis.Table, diagnosis.Columns, sqlgraph.NewFieldSpec(diagnosis.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Diagnosis.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, diagnosis.FieldID)
		for _, f := range fields {
			if !diagnosis.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != diagnosis.FieldID {
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
	if value, ok := _u.mutation.PatientID(); ok {
		_spec.SetField(diagnosis.FieldPatientID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.DoctorID(); ok {
		_spec.SetField(diagnosis.FieldDoctorID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(diagnosis.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(diagnosis.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(diagnosis.FieldDescription, field.TypeString)
	}
	_node = &Diagnosis{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{diagnosis.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
