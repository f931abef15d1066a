package broadcast

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/rchdlps/gerenciador-projetos-sub002/internal/service/audience"
	"github.com/rchdlps/gerenciador-projetos-sub002/internal/service/notification"
)

type fakeDirectory struct {
	active  []uuid.UUID
	members map[uuid.UUID][]uuid.UUID
}

func (f *fakeDirectory) ActiveUserIDs(_ context.Context) ([]uuid.UUID, error) {
	return f.active, nil
}

func (f *fakeDirectory) OrganizationMemberIDs(_ context.Context, orgIDs []uuid.UUID) ([]uuid.UUID, error) {
	var out []uuid.UUID
	for _, orgID := range orgIDs {
		out = append(out, f.members[orgID]...)
	}
	return out, nil
}

func (f *fakeDirectory) RoleMemberIDs(_ context.Context, _ uuid.UUID, _ []string) ([]uuid.UUID, error) {
	return nil, nil
}

func (f *fakeDirectory) ActiveUsers(_ context.Context) ([]audience.ActiveUser, error) {
	return nil, nil
}

type fakeEmitter struct {
	mu      sync.Mutex
	emitted []notification.CreateRequest
	failFor map[uuid.UUID]bool
}

func (f *fakeEmitter) Emit(_ context.Context, req notification.CreateRequest) (*notification.Notification, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failFor[req.UserID] {
		return nil, errors.New("store down")
	}
	f.emitted = append(f.emitted, req)
	return &notification.Notification{ID: uuid.New(), UserID: req.UserID}, nil
}

type fakeStore struct {
	logs    []CreateLogRequest
	logErr  error
	history []*SendLog
}

func (f *fakeStore) CreateSendLog(_ context.Context, req CreateLogRequest) (*SendLog, error) {
	if f.logErr != nil {
		return nil, f.logErr
	}
	f.logs = append(f.logs, req)
	return &SendLog{ID: uuid.New(), TargetCount: req.TargetCount}, nil
}

func (f *fakeStore) History(_ context.Context, _, _ int) ([]*SendLog, int, error) {
	return f.history, len(f.history), nil
}

func (f *fakeStore) GetSendLog(_ context.Context, _ uuid.UUID) (*SendLog, error) {
	return nil, ErrNotFound
}

func (f *fakeStore) Stats(_ context.Context, _ time.Time) (*Stats, error) {
	return &Stats{}, nil
}

func TestSend_FansOutToEveryRecipient(t *testing.T) {
	users := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
	dir := &fakeDirectory{active: users}
	emitter := &fakeEmitter{}
	store := &fakeStore{}
	svc := New(dir, emitter, store, 4)

	result, err := svc.Send(context.Background(), SendRequest{
		CreatorID: uuid.New(),
		Target:    audience.Target{Type: audience.TargetAll},
		Title:     "Manutenção programada",
		Message:   "O sistema ficará indisponível às 22h.",
		Type:      "system",
		Priority:  "high",
	})
	if err != nil {
		t.Fatalf("Send failed: %v", err)
	}

	if result.TargetCount != 3 || result.SentCount != 3 || result.FailedCount != 0 {
		t.Errorf("expected 3/3/0, got %d/%d/%d", result.TargetCount, result.SentCount, result.FailedCount)
	}
	if len(emitter.emitted) != 3 {
		t.Errorf("expected 3 emits, got %d", len(emitter.emitted))
	}
	if len(store.logs) != 1 {
		t.Fatalf("expected one send log, got %d", len(store.logs))
	}
	log := store.logs[0]
	if log.TargetCount != 3 || log.SentCount != 3 || log.FailedCount != 0 {
		t.Errorf("send log counts wrong: %d/%d/%d", log.TargetCount, log.SentCount, log.FailedCount)
	}
	if log.TargetType != "all" {
		t.Errorf("expected target type all, got %q", log.TargetType)
	}
}

func TestSend_PartialFailureStillLogs(t *testing.T) {
	users := []uuid.UUID{uuid.New(), uuid.New(), uuid.New(), uuid.New()}
	dir := &fakeDirectory{active: users}
	emitter := &fakeEmitter{failFor: map[uuid.UUID]bool{users[1]: true, users[3]: true}}
	store := &fakeStore{}
	svc := New(dir, emitter, store, 2)

	result, err := svc.Send(context.Background(), SendRequest{
		CreatorID: uuid.New(),
		Target:    audience.Target{Type: audience.TargetAll},
		Title:     "Aviso",
		Message:   "Mensagem",
		Type:      "system",
		Priority:  "normal",
	})
	if err != nil {
		t.Fatalf("partial failure must not fail the send: %v", err)
	}

	if result.TargetCount != 4 || result.SentCount != 2 || result.FailedCount != 2 {
		t.Errorf("expected 4/2/2, got %d/%d/%d", result.TargetCount, result.SentCount, result.FailedCount)
	}
	if len(store.logs) != 1 {
		t.Fatalf("expected one send log, got %d", len(store.logs))
	}
	if store.logs[0].FailedCount != 2 {
		t.Errorf("send log should record 2 failures, got %d", store.logs[0].FailedCount)
	}
}

func TestSend_EmptyAudience(t *testing.T) {
	dir := &fakeDirectory{}
	emitter := &fakeEmitter{}
	store := &fakeStore{}
	svc := New(dir, emitter, store, 2)

	_, err := svc.Send(context.Background(), SendRequest{
		CreatorID: uuid.New(),
		Target:    audience.Target{Type: audience.TargetAll},
		Title:     "Aviso",
		Message:   "Mensagem",
		Type:      "system",
	})
	if !errors.Is(err, ErrNoRecipients) {
		t.Fatalf("expected ErrNoRecipients, got %v", err)
	}
	if len(emitter.emitted) != 0 {
		t.Errorf("nothing should be emitted for an empty audience")
	}
	if len(store.logs) != 0 {
		t.Errorf("no send log should be written for an empty audience")
	}
}

func TestSend_LogWriteFailureDoesNotFailSend(t *testing.T) {
	users := []uuid.UUID{uuid.New()}
	dir := &fakeDirectory{active: users}
	emitter := &fakeEmitter{}
	store := &fakeStore{logErr: errors.New("db down")}
	svc := New(dir, emitter, store, 1)

	result, err := svc.Send(context.Background(), SendRequest{
		CreatorID: uuid.New(),
		Target:    audience.Target{Type: audience.TargetAll},
		Title:     "Aviso",
		Message:   "Mensagem",
		Type:      "system",
	})
	if err != nil {
		t.Fatalf("notifications were delivered; losing the audit row must not error: %v", err)
	}
	if result.SentCount != 1 {
		t.Errorf("expected 1 sent, got %d", result.SentCount)
	}
	if result.SendLogID != uuid.Nil {
		t.Errorf("expected zero send log id when the log write fails")
	}
}

func TestSend_PriorityAndLinkCarriedInData(t *testing.T) {
	user := uuid.New()
	dir := &fakeDirectory{active: []uuid.UUID{user}}
	emitter := &fakeEmitter{}
	svc := New(dir, emitter, &fakeStore{}, 1)

	_, err := svc.Send(context.Background(), SendRequest{
		CreatorID: uuid.New(),
		Target:    audience.Target{Type: audience.TargetAll},
		Title:     "Prazo",
		Message:   "Projeto vence amanhã",
		Type:      "activity",
		Priority:  "urgent",
		Link:      "/projects/42",
	})
	if err != nil {
		t.Fatalf("Send failed: %v", err)
	}

	if len(emitter.emitted) != 1 {
		t.Fatalf("expected 1 emit, got %d", len(emitter.emitted))
	}
	data := emitter.emitted[0].Data
	if data["priority"] != "urgent" {
		t.Errorf("expected priority in data, got %v", data["priority"])
	}
	if data["link"] != "/projects/42" {
		t.Errorf("expected link in data, got %v", data["link"])
	}
}

func TestSend_OrganizationScenario(t *testing.T) {
	// Organization with three members; a fourth user belongs elsewhere.
	orgID := uuid.New()
	members := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
	dir := &fakeDirectory{
		members: map[uuid.UUID][]uuid.UUID{orgID: members},
	}
	emitter := &fakeEmitter{}
	store := &fakeStore{}
	svc := New(dir, emitter, store, 4)

	result, err := svc.Send(context.Background(), SendRequest{
		CreatorID: uuid.New(),
		Target:    audience.Target{Type: audience.TargetOrganization, OrganizationID: &orgID},
		Title:     "Reunião",
		Message:   "Reunião geral sexta-feira",
		Type:      "activity",
		Priority:  "normal",
	})
	if err != nil {
		t.Fatalf("Send failed: %v", err)
	}
	if result.TargetCount != 3 {
		t.Errorf("expected 3 recipients, got %d", result.TargetCount)
	}
	if store.logs[0].OrganizationID == nil || *store.logs[0].OrganizationID != orgID {
		t.Errorf("send log should carry the organization id")
	}
}
