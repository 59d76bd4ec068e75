// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AppointmentsColumns holds the columns for the "appointments" table.
	AppointmentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "doctor_id", Type: field.TypeUUID},
		{Name: "patient_id", Type: field.TypeUUID},
		{Name: "scheduled_at", Type: field.TypeTime},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"SCHEDULED", "DONE", "CANCELLED"}, Default: "SCHEDULED"},
		{Name: "reason", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "cancelled_at", Type: field.TypeTime, Nullable: true},
	}
	// AppointmentsTable holds the schema information for the "appointments" table.
	AppointmentsTable = &schema.Table{
		Name:       "appointments",
		Columns:    AppointmentsColumns,
		PrimaryKey: []*schema.Column{AppointmentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "appointment_doctor_id_scheduled_at",
				Unique:  true,
				Columns: []*schema.Column{AppointmentsColumns[3], AppointmentsColumns[5]},
				Annotation: &entsql.IndexAnnotation{
					Where: "status <> 'CANCELLED'",
				},
			},
			{
				Name:    "appointment_patient_id_status",
				Unique:  false,
				Columns: []*schema.Column{AppointmentsColumns[4], AppointmentsColumns[6]},
			},
			{
				Name:    "appointment_doctor_id_status_scheduled_at",
				Unique:  false,
				Columns: []*schema.Column{AppointmentsColumns[3], AppointmentsColumns[6], AppointmentsColumns[5]},
			},
		},
	}
	// DiagnosesColumns holds the columns for the "diagnoses" table.
	DiagnosesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "patient_id", Type: field.TypeUUID},
		{Name: "doctor_id", Type: field.TypeUUID},
		{Name: "title", Type: field.TypeString, Size: 255},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
	}
	// DiagnosesTable holds the schema information for the "diagnoses" table.
	DiagnosesTable = &schema.Table{
		Name:       "diagnoses",
		Columns:    DiagnosesColumns,
		PrimaryKey: []*schema.Column{DiagnosesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "diagnosis_doctor_id",
				Unique:  false,
				Columns: []*schema.Column{DiagnosesColumns[3]},
			},
			{
				Name:    "diagnosis_patient_id",
				Unique:  false,
				Columns: []*schema.Column{DiagnosesColumns[2]},
			},
		},
	}
	// DoctorsColumns holds the columns for the "doctors" table.
	DoctorsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeUUID, Unique: true},
		{Name: "name", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "specialty", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "city", Type: field.TypeString, Nullable: true, Size: 255},
	}
	// DoctorsTable holds the schema information for the "doctors" table.
	DoctorsTable = &schema.Table{
		Name:       "doctors",
		Columns:    DoctorsColumns,
		PrimaryKey: []*schema.Column{DoctorsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "doctor_specialty",
				Unique:  false,
				Columns: []*schema.Column{DoctorsColumns[5]},
			},
			{
				Name:    "doctor_city",
				Unique:  false,
				Columns: []*schema.Column{DoctorsColumns[6]},
			},
		},
	}
	// PatientsColumns holds the columns for the "patients" table.
	PatientsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeUUID, Unique: true, Nullable: true},
		{Name: "first_name", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "last_name", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "name", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "email", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "phone", Type: field.TypeString, Nullable: true, Size: 20},
		{Name: "gender", Type: field.TypeEnum, Nullable: true, Enums: []string{"Male", "Female"}},
		{Name: "dob", Type: field.TypeTime, Nullable: true},
		{Name: "created_by_doctor_id", Type: field.TypeUUID, Nullable: true},
	}
	// PatientsTable holds the schema information for the "patients" table.
	PatientsTable = &schema.Table{
		Name:       "patients",
		Columns:    PatientsColumns,
		PrimaryKey: []*schema.Column{PatientsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "patient_user_id",
				Unique:  false,
				Columns: []*schema.Column{PatientsColumns[3]},
			},
			{
				Name:    "patient_created_by_doctor_id",
				Unique:  false,
				Columns: []*schema.Column{PatientsColumns[11]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "email", Type: field.TypeString, Unique: true, Size: 255},
		{Name: "password_hash", Type: field.TypeString},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"ADMIN", "DOCTOR", "PATIENT"}},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AppointmentsTable,
		DiagnosesTable,
		DoctorsTable,
		PatientsTable,
		UsersTable,
	}
)

func init() {
}
