package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Membership links a user to an organization with a role. Role-targeted
// broadcasts resolve recipients through this table.
type Membership struct {
	ent.Schema
}

func (Membership) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (Membership) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("user_id", uuid.UUID{}),

		field.UUID("organization_id", uuid.UUID{}),

		field.Enum("role").
			Values("viewer", "gestor", "secretario").
			Default("viewer"),
	}
}

func (Membership) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "organization_id").
			Unique(),
		index.Fields("organization_id", "role"),
	}
}
