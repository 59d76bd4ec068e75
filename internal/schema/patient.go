package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Patient is a medical record subject. A patient row may exist without a
// login account: staff can register walk-in patients, in which case user_id
// stays empty and created_by_doctor_id marks who registered them.
type Patient struct {
	ent.Schema
}

func (Patient) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Patient) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("user_id", uuid.UUID{}).
			Optional().
			Nillable().
			Unique().
			Comment("FK → users.id; empty for staff-created patients"),

		field.String("first_name").
			Optional().
			Nillable().
			MaxLen(100),

		field.String("last_name").
			Optional().
			Nillable().
			MaxLen(100),

		field.String("name").
			Optional().
			Nillable().
			MaxLen(255).
			Comment("Display name, derived from first/last when both present"),

		field.String("email").
			Optional().
			Nillable().
			MaxLen(255),

		field.String("phone").
			Optional().
			Nillable().
			MaxLen(20),

		field.Enum("gender").
			Values("Male", "Female").
			Optional().
			Nillable(),

		field.Time("dob").
			Optional().
			Nillable(),

		field.UUID("created_by_doctor_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("Ownership marker, not a lifetime dependency"),
	}
}

func (Patient) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("created_by_doctor_id"),
	}
}
