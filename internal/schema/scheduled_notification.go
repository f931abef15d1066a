package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// ScheduledNotification is a deferred broadcast request. Status moves from
// pending through processing to exactly one of sent/cancelled/failed;
// content and target fields may only change while pending. Processing is a
// short-lived claim state that keeps concurrent workers from double-sending.
type ScheduledNotification struct {
	ent.Schema
}

func (ScheduledNotification) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (ScheduledNotification) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("creator_id", uuid.UUID{}),

		field.UUID("organization_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("Nil for system-wide broadcasts"),

		field.Enum("target_type").
			Values("user", "organization", "role", "multi_org", "all"),

		field.JSON("target_ids", []string{}).
			Optional().
			Comment("User ids, org ids or role names depending on target_type"),

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

		field.Time("scheduled_for"),

		field.Enum("status").
			Values("pending", "processing", "sent", "cancelled", "failed").
			Default("pending"),

		field.Text("failure_reason").
			Optional().
			Nillable(),

		field.Time("sent_at").
			Optional().
			Nillable(),
	}
}

func (ScheduledNotification) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "scheduled_for"),
		index.Fields("creator_id"),
		index.Fields("organization_id"),
	}
}
