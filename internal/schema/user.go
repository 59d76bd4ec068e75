package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// User is a login account. Every authenticated principal is a User; the role
// is fixed at creation and never changes afterwards.
type User struct {
	ent.Schema
}

func (User) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("email").
			Unique().
			MaxLen(255),

		field.String("password_hash").
			Sensitive(),

		field.Enum("role").
			Values("ADMIN", "DOCTOR", "PATIENT").
			Immutable(),
	}
}
