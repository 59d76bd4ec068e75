package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Diagnosis is written by the treating doctor; readable by that doctor and
// by admins.
type Diagnosis struct {
	ent.Schema
}

func (Diagnosis) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (Diagnosis) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("patient_id", uuid.UUID{}).
			Comment("FK → patients.id"),

		field.UUID("doctor_id", uuid.UUID{}).
			Comment("FK → doctors.id (author)"),

		field.String("title").
			MaxLen(255),

		field.Text("description").
			Optional().
			Nillable(),
	}
}

func (Diagnosis) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("doctor_id"),
		index.Fields("patient_id"),
	}
}
