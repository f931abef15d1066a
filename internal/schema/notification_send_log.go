package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// NotificationSendLog is the append-only audit record of one immediate
// broadcast fan-out.
type NotificationSendLog struct {
	ent.Schema
}

func (NotificationSendLog) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
	}
}

func (NotificationSendLog) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("creator_id", uuid.UUID{}),

		field.UUID("organization_id", uuid.UUID{}).
			Optional().
			Nillable(),

		field.String("title").
			MaxLen(255),

		field.Text("message"),

		field.Enum("type").
			Values("activity", "system"),

		field.Enum("priority").
			Values("normal", "high", "urgent").
			Default("normal"),

		field.String("link").
			Optional().
			Nillable().
			MaxLen(2048),

		field.Enum("target_type").
			Values("user", "organization", "role", "multi_org", "all"),

		field.Int("target_count"),

		field.Int("sent_count"),

		field.Int("failed_count").
			Default(0),

		field.Time("sent_at"),
	}
}

func (NotificationSendLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("creator_id", "sent_at"),
		index.Fields("organization_id"),
	}
}
