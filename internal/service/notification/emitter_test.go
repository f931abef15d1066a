package notification

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/rchdlps/gerenciador-projetos-sub002/internal/events"
)

type fakeStore struct {
	Service

	created []CreateRequest
	err     error
}

func (f *fakeStore) Create(_ context.Context, req CreateRequest) (*Notification, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.created = append(f.created, req)
	return &Notification{
		ID:        uuid.New(),
		UserID:    req.UserID,
		Type:      req.Type,
		Title:     req.Title,
		Message:   req.Message,
		Data:      req.Data,
		CreatedAt: time.Now().UTC(),
	}, nil
}

type fakePusher struct {
	pushed    []any
	delivered bool
}

func (f *fakePusher) Push(_ uuid.UUID, payload any) bool {
	f.pushed = append(f.pushed, payload)
	return f.delivered
}

type fakeBus struct {
	published []string
	err       error
}

func (f *fakeBus) Publish(_ context.Context, subject string, _ any) error {
	if f.err != nil {
		return f.err
	}
	f.published = append(f.published, subject)
	return nil
}

func TestEmit_StoresPushesAndPublishes(t *testing.T) {
	store := &fakeStore{}
	pusher := &fakePusher{delivered: true}
	bus := &fakeBus{}
	emitter := NewEmitter(store, pusher, bus)

	userID := uuid.New()
	n, err := emitter.Emit(context.Background(), CreateRequest{
		UserID:  userID,
		Type:    "activity",
		Title:   "Nova tarefa",
		Message: "Você foi designado para a tarefa X",
		Data:    map[string]any{"task_id": "42"},
	})
	if err != nil {
		t.Fatalf("Emit failed: %v", err)
	}
	if n.UserID != userID {
		t.Errorf("notification bound to wrong user")
	}

	if len(store.created) != 1 {
		t.Errorf("expected one store write, got %d", len(store.created))
	}
	if len(pusher.pushed) != 1 {
		t.Fatalf("expected one push, got %d", len(pusher.pushed))
	}
	payload, ok := pusher.pushed[0].(PushPayload)
	if !ok {
		t.Fatalf("pushed payload has wrong type %T", pusher.pushed[0])
	}
	if payload.ID != n.ID || payload.Title != "Nova tarefa" {
		t.Errorf("push payload mismatch: %+v", payload)
	}
	if len(bus.published) != 1 || bus.published[0] != events.SubjectNotificationCreated {
		t.Errorf("expected created event, got %v", bus.published)
	}
}

func TestEmit_StoreFailureIsFatal(t *testing.T) {
	store := &fakeStore{err: errors.New("db down")}
	pusher := &fakePusher{}
	bus := &fakeBus{}
	emitter := NewEmitter(store, pusher, bus)

	_, err := emitter.Emit(context.Background(), CreateRequest{
		UserID: uuid.New(),
		Type:   "activity",
		Title:  "t",
	})
	if err == nil {
		t.Fatal("expected error when the store write fails")
	}
	if len(pusher.pushed) != 0 {
		t.Error("nothing should be pushed when the store write fails")
	}
	if len(bus.published) != 0 {
		t.Error("nothing should be published when the store write fails")
	}
}

func TestEmit_OfflineUserStillSucceeds(t *testing.T) {
	store := &fakeStore{}
	pusher := &fakePusher{delivered: false}
	emitter := NewEmitter(store, pusher, &fakeBus{})

	_, err := emitter.Emit(context.Background(), CreateRequest{
		UserID:  uuid.New(),
		Type:    "activity",
		Title:   "Aviso",
		Message: "m",
	})
	if err != nil {
		t.Fatalf("an offline user must not fail the emit: %v", err)
	}
	if len(store.created) != 1 {
		t.Errorf("store write must still happen, got %d", len(store.created))
	}
}

func TestEmit_PublishFailureIsSwallowed(t *testing.T) {
	store := &fakeStore{}
	bus := &fakeBus{err: errors.New("bus down")}
	emitter := NewEmitter(store, &fakePusher{delivered: true}, bus)

	_, err := emitter.Emit(context.Background(), CreateRequest{
		UserID:  uuid.New(),
		Type:    "system",
		Title:   "Aviso",
		Message: "m",
	})
	if err != nil {
		t.Fatalf("the store is the durability guarantee; a bus failure must not surface: %v", err)
	}
}

func TestEmitSystemAnnouncement_PublishFailureSurfaces(t *testing.T) {
	bus := &fakeBus{err: errors.New("bus down")}
	emitter := NewEmitter(&fakeStore{}, &fakePusher{}, bus)

	err := emitter.EmitSystemAnnouncement(context.Background(), "Manutenção", "Sistema fora do ar às 22h", nil)
	if err == nil {
		t.Fatal("the event is the only vehicle for an announcement; a bus failure must surface")
	}
}

func TestEmitSystemAnnouncement_Publishes(t *testing.T) {
	bus := &fakeBus{}
	emitter := NewEmitter(&fakeStore{}, &fakePusher{}, bus)

	if err := emitter.EmitSystemAnnouncement(context.Background(), "Aviso", "m", map[string]any{"k": "v"}); err != nil {
		t.Fatalf("EmitSystemAnnouncement failed: %v", err)
	}
	if len(bus.published) != 1 || bus.published[0] != events.SubjectAnnouncement {
		t.Errorf("expected announcement event, got %v", bus.published)
	}
}
