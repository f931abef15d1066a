package notification

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/rchdlps/gerenciador-projetos-sub002/internal/events"
)

// Pusher is the live push channel. It never errors; the bool reports whether
// at least one live session accepted the payload.
type Pusher interface {
	Push(userID uuid.UUID, payload any) bool
}

// PushPayload is the wire shape sent over the live channel.
type PushPayload struct {
	ID        uuid.UUID      `json:"id"`
	Type      string         `json:"type"`
	Title     string         `json:"title"`
	Message   string         `json:"message"`
	Data      map[string]any `json:"data,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

// Emitter is the single synchronous entry point application code uses to
// notify one user. The store write is the durability guarantee; the live
// push and the bus event are best-effort side channels.
type Emitter struct {
	store Service
	hub   Pusher
	bus   events.Publisher
}

func NewEmitter(store Service, hub Pusher, bus events.Publisher) *Emitter {
	return &Emitter{store: store, hub: hub, bus: bus}
}

// Emit stores the notification, pushes it to any live session, and publishes
// a created event for cross-process side effects. A store failure is
// returned; push and publish failures are logged and swallowed, since the
// event consumers only re-push and losing the event never loses the
// notification itself.
func (e *Emitter) Emit(ctx context.Context, req CreateRequest) (*Notification, error) {
	n, err := e.store.Create(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("emit notification: %w", err)
	}

	if e.hub != nil {
		if !e.hub.Push(n.UserID, pushPayload(n)) {
			slog.Debug("emitter: no live session for user", "user_id", n.UserID)
		}
	}

	if err := e.bus.Publish(ctx, events.SubjectNotificationCreated, events.CreatedEvent{
		NotificationID: n.ID,
		UserID:         n.UserID,
		Type:           n.Type,
		Title:          n.Title,
		Message:        n.Message,
		Data:           n.Data,
		CreatedAt:      n.CreatedAt,
	}); err != nil {
		slog.Warn("emitter: publish created event failed", "notification_id", n.ID, "err", err)
	}

	return n, nil
}

// EmitSystemAnnouncement queues a broadcast intent consumed by the
// announcement worker, which resolves all active users and emits per user.
// Here a publish failure IS returned: the event is the only delivery
// vehicle for the announcement.
func (e *Emitter) EmitSystemAnnouncement(ctx context.Context, title, message string, data map[string]any) error {
	err := e.bus.Publish(ctx, events.SubjectAnnouncement, events.AnnouncementEvent{
		Title:   title,
		Message: message,
		Data:    data,
	})
	if err != nil {
		return fmt.Errorf("publish announcement: %w", err)
	}
	return nil
}

func pushPayload(n *Notification) PushPayload {
	return PushPayload{
		ID:        n.ID,
		Type:      n.Type,
		Title:     n.Title,
		Message:   n.Message,
		Data:      n.Data,
		CreatedAt: n.CreatedAt,
	}
}
