package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Appointment is a booked visit between a doctor and a patient.
type Appointment struct {
	ent.Schema
}

func (Appointment) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Appointment) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("doctor_id", uuid.UUID{}).
			Comment("FK → doctors.id"),

		field.UUID("patient_id", uuid.UUID{}).
			Comment("FK → patients.id"),

		field.Time("scheduled_at").
			Comment("Minute granularity; seconds are always zero"),

		field.Enum("status").
			Values("SCHEDULED", "DONE", "CANCELLED").
			Default("SCHEDULED"),

		field.Text("reason").
			Optional().
			Nillable(),

		field.Time("cancelled_at").
			Optional().
			Nillable(),
	}
}

func (Appointment) Indexes() []ent.Index {
	return []ent.Index{
		// A doctor has at most one live appointment per time slot. Cancelled
		// rows are excluded so the slot can be rebooked.
		index.Fields("doctor_id", "scheduled_at").
			Unique().
			Annotations(entsql.IndexWhere("status <> 'CANCELLED'")),
		index.Fields("patient_id", "status"),
		index.Fields("doctor_id", "status", "scheduled_at"),
	}
}
