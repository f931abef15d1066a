package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// User carries the minimal identity fields the notification pipeline needs.
// Account management itself lives in the auth layer in front of this service.
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
		field.String("name").
			MaxLen(255),

		field.String("email").
			Unique().
			MaxLen(255),

		field.String("global_role").
			Default("user").
			MaxLen(32).
			Comment("user | super_admin"),

		field.Bool("is_active").
			Default(true).
			Comment("Inactive users are excluded from broadcasts and digests"),
	}
}

func (User) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("is_active"),
	}
}
