package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Doctor is the public profile of a DOCTOR user. Lifetime is tied to its
// user account.
type Doctor struct {
	ent.Schema
}

func (Doctor) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Doctor) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("user_id", uuid.UUID{}).
			Unique().
			Comment("FK → users.id"),

		field.String("name").
			Optional().
			Nillable().
			MaxLen(255),

		field.String("specialty").
			Optional().
			Nillable().
			MaxLen(255),

		field.String("city").
			Optional().
			Nillable().
			MaxLen(255),
	}
}

func (Doctor) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("specialty"),
		index.Fields("city"),
	}
}
