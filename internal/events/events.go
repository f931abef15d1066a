package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
)

// NATS subjects for the notification pipeline.
const (
	// SubjectNotificationCreated carries a notification that is already
	// stored; consumers must not store it again.
	SubjectNotificationCreated = "gerenciador.notification.created"

	// SubjectAnnouncement is a broadcast intent resolved against all active
	// users by the announcement worker.
	SubjectAnnouncement = "gerenciador.notification.announcement"

	// SubjectScheduled arms a wake timer for a pending scheduled broadcast.
	SubjectScheduled = "gerenciador.notification.scheduled"

	// SubjectCancelled tears down the wake timer armed for the same id.
	SubjectCancelled = "gerenciador.notification.cancelled"
)

type CreatedEvent struct {
	NotificationID uuid.UUID      `json:"notification_id"`
	UserID         uuid.UUID      `json:"user_id"`
	Type           string         `json:"type"`
	Title          string         `json:"title"`
	Message        string         `json:"message"`
	Data           map[string]any `json:"data,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
}

type AnnouncementEvent struct {
	Title   string         `json:"title"`
	Message string         `json:"message"`
	Data    map[string]any `json:"data,omitempty"`
}

type ScheduledEvent struct {
	ScheduledID  uuid.UUID `json:"scheduled_id"`
	ScheduledFor time.Time `json:"scheduled_for"`
}

type CancelledEvent struct {
	ScheduledID uuid.UUID `json:"scheduled_id"`
}

// Publisher sends a domain event to the bus. Implementations must be safe
// for concurrent use.
type Publisher interface {
	Publish(ctx context.Context, subject string, payload any) error
}

type natsPublisher struct {
	nc *nats.Conn
}

// NewNatsPublisher wraps a NATS connection as an event Publisher.
func NewNatsPublisher(nc *nats.Conn) Publisher {
	return &natsPublisher{nc: nc}
}

func (p *natsPublisher) Publish(_ context.Context, subject string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return p.nc.Publish(subject, data)
}
