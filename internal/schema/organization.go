package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Organization is a municipal secretariat owning projects and memberships.
type Organization struct {
	ent.Schema
}

func (Organization) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Organization) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			MaxLen(255),

		field.String("slug").
			Unique().
			MaxLen(100),
	}
}
