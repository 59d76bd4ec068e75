// Code generated by ent, DO NOT EDIT.

package repo

import (
	"time"

	"github.com/google/uuid"
	"github.com/spitali-app/spitali_backend/internal/repo/appointment"
	"github.com/spitali-app/spitali_backend/internal/repo/diagnosis"
	"github.com/spitali-app/spitali_backend/internal/repo/doctor"
	"github.com/spitali-app/spitali_backend/internal/repo/patient"
	"github.com/spitali-app/spitali_backend/internal/repo/user"
	"github.com/spitali-app/spitali_backend/internal/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	appointmentMixin := schema.Appointment{}.Mixin()
	appointmentMixinFields0 := appointmentMixin[0].Fields()
	_ = appointmentMixinFields0
	appointmentMixinFields1 := appointmentMixin[1].Fields()
	_ = appointmentMixinFields1
	appointmentFields := schema.Appointment{}.Fields()
	_ = appointmentFields
	// appointmentDescCreatedAt is the schema descriptor for created_at field.
	appointmentDescCreatedAt := appointmentMixinFields1[0].Descriptor()
	// appointment.DefaultCreatedAt holds the default value on creation for the created_at field.
	appointment.DefaultCreatedAt = appointmentDescCreatedAt.Default.(func() time.Time)
	// appointmentDescUpdatedAt is the schema descriptor for updated_at field.
	appointmentDescUpdatedAt := appointmentMixinFields1[1].Descriptor()
	// appointment.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	appointment.DefaultUpdatedAt = appointmentDescUpdatedAt.Default.(func() time.Time)
	// appointment.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	appointment.UpdateDefaultUpdatedAt = appointmentDescUpdatedAt.UpdateDefault.(func() time.Time)
	// appointmentDescID is the schema descriptor for id field.
	appointmentDescID := appointmentMixinFields0[0].Descriptor()
	// appointment.DefaultID holds the default value on creation for the id field.
	appointment.DefaultID = appointmentDescID.Default.(func() uuid.UUID)
	diagnosisMixin := schema.Diagnosis{}.Mixin()
	diagnosisMixinFields0 := diagnosisMixin[0].Fields()
	_ = diagnosisMixinFields0
	diagnosisMixinFields1 := diagnosisMixin[1].Fields()
	_ = diagnosisMixinFields1
	diagnosisFields := schema.Diagnosis{}.Fields()
	_ = diagnosisFields
	// diagnosisDescCreatedAt is the schema descriptor for created_at field.
	diagnosisDescCreatedAt := diagnosisMixinFields1[0].Descriptor()
	// diagnosis.DefaultCreatedAt holds the default value on creation for the created_at field.
	diagnosis.DefaultCreatedAt = diagnosisDescCreatedAt.Default.(func() time.Time)
	// diagnosisDescTitle is the schema descriptor for title field.
	diagnosisDescTitle := diagnosisFields[2].Descriptor()
	// diagnosis.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	diagnosis.TitleValidator = diagnosisDescTitle.Validators[0].(func(string) error)
	// diagnosisDescID is the schema descriptor for id field.
	diagnosisDescID := diagnosisMixinFields0[0].Descriptor()
	// diagnosis.DefaultID holds the default value on creation for the id field.
	diagnosis.DefaultID = diagnosisDescID.Default.(func() uuid.UUID)
	doctorMixin := schema.Doctor{}.Mixin()
	doctorMixinFields0 := doctorMixin[0].Fields()
	_ = doctorMixinFields0
	doctorMixinFields1 := doctorMixin[1].Fields()
	_ = doctorMixinFields1
	doctorFields := schema.Doctor{}.Fields()
	_ = doctorFields
	// doctorDescCreatedAt is the schema descriptor for created_at field.
	doctorDescCreatedAt := doctorMixinFields1[0].Descriptor()
	// doctor.DefaultCreatedAt holds the default value on creation for the created_at field.
	doctor.DefaultCreatedAt = doctorDescCreatedAt.Default.(func() time.Time)
	// doctorDescUpdatedAt is the schema descriptor for updated_at field.
	doctorDescUpdatedAt := doctorMixinFields1[1].Descriptor()
	// doctor.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	doctor.DefaultUpdatedAt = doctorDescUpdatedAt.Default.(func() time.Time)
	// doctor.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	doctor.UpdateDefaultUpdatedAt = doctorDescUpdatedAt.UpdateDefault.(func() time.Time)
	// doctorDescName is the schema descriptor for name field.
	doctorDescName := doctorFields[1].Descriptor()
	// doctor.NameValidator is a validator for the "name" field. It is called by the builders before save.
	doctor.NameValidator = doctorDescName.Validators[0].(func(string) error)
	// doctorDescSpecialty is the schema descriptor for specialty field.
	doctorDescSpecialty := doctorFields[2].Descriptor()
	// doctor.SpecialtyValidator is a validator for the "specialty" field. It is called by the builders before save.
	doctor.SpecialtyValidator = doctorDescSpecialty.Validators[0].(func(string) error)
	// doctorDescCity is the schema descriptor for city field.
	doctorDescCity := doctorFields[3].Descriptor()
	// doctor.CityValidator is a validator for the "city" field. It is called by the builders before save.
	doctor.CityValidator = doctorDescCity.Validators[0].(func(string) error)
	// doctorDescID is the schema descriptor for id field.
	doctorDescID := doctorMixinFields0[0].Descriptor()
	// doctor.DefaultID holds the default value on creation for the id field.
	doctor.DefaultID = doctorDescID.Default.(func() uuid.UUID)
	patientMixin := schema.Patient{}.Mixin()
	patientMixinFields0 := patientMixin[0].Fields()
	_ = patientMixinFields0
	patientMixinFields1 := patientMixin[1].Fields()
	_ = patientMixinFields1
	patientFields := schema.Patient{}.Fields()
	_ = patientFields
	// patientDescCreatedAt is the schema descriptor for created_at field.
	patientDescCreatedAt := patientMixinFields1[0].Descriptor()
	// patient.DefaultCreatedAt holds the default value on creation for the created_at field.
	patient.DefaultCreatedAt = patientDescCreatedAt.Default.(func() time.Time)
	// patientDescUpdatedAt is the schema descriptor for updated_at field.
	patientDescUpdatedAt := patientMixinFields1[1].Descriptor()
	// patient.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	patient.DefaultUpdatedAt = patientDescUpdatedAt.Default.(func() time.Time)
	// patient.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	patient.UpdateDefaultUpdatedAt = patientDescUpdatedAt.UpdateDefault.(func() time.Time)
	// patientDescFirstName is the schema descriptor for first_name field.
	patientDescFirstName := patientFields[1].Descriptor()
	// patient.FirstNameValidator is a validator for the "first_name" field. It is called by the builders before save.
	patient.FirstNameValidator = patientDescFirstName.Validators[0].(func(string) error)
	// patientDescLastName is the schema descriptor for last_name field.
	patientDescLastName := patientFields[2].Descriptor()
	// patient.LastNameValidator is a validator for the "last_name" field. It is called by the builders before save.
	patient.LastNameValidator = patientDescLastName.Validators[0].(func(string) error)
	// patientDescName is the schema descriptor for name field.
	patientDescName := patientFields[3].Descriptor()
	// patient.NameValidator is a validator for the "name" field. It is called by the builders before save.
	patient.NameValidator = patientDescName.Validators[0].(func(string) error)
	// patientDescEmail is the schema descriptor for email field.
	patientDescEmail := patientFields[4].Descriptor()
	// patient.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	patient.EmailValidator = patientDescEmail.Validators[0].(func(string) error)
	// patientDescPhone is the schema descriptor for phone field.
	patientDescPhone := patientFields[5].Descriptor()
	// patient.PhoneValidator is a validator for the "phone" field. It is called by the builders before save.
	patient.PhoneValidator = patientDescPhone.Validators[0].(func(string) error)
	// patientDescID is the schema descriptor for id field.
	patientDescID := patientMixinFields0[0].Descriptor()
	// patient.DefaultID holds the default value on creation for the id field.
	patient.DefaultID = patientDescID.Default.(func() uuid.UUID)
	userMixin := schema.User{}.Mixin()
	userMixinFields0 := userMixin[0].Fields()
	_ = userMixinFields0
	userMixinFields1 := userMixin[1].Fields()
	_ = userMixinFields1
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userMixinFields1[0].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userMixinFields1[1].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[0].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = userDescEmail.Validators[0].(func(string) error)
	// userDescID is the schema descriptor for id field.
	userDescID := userMixinFields0[0].Descriptor()
	// user.DefaultID holds the default value on creation for the id field.
	user.DefaultID = userDescID.Default.(func() uuid.UUID)
}
