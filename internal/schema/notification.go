package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Notification is a unit of information delivered to exactly one user.
// Title, message and data are immutable once created; only the read and
// email flags mutate.
type Notification struct {
	ent.Schema
}

func (Notification) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (Notification) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("user_id", uuid.UUID{}).
			Comment("Owning user"),

		field.Enum("type").
			Values("activity", "system"),

		field.String("title").
			MaxLen(255).
			Immutable(),

		field.Text("message").
			Immutable(),

		field.Text("data").
			Optional().
			Nillable().
			Immutable().
			Comment("JSON payload: link, priority, project/task ids"),

		field.Bool("is_read").
			Default(false),

		field.Bool("is_email_sent").
			Default(false).
			Comment("Set by the daily digest job"),
	}
}

func (Notification) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "is_read", "created_at"),
		index.Fields("created_at"),
	}
}
