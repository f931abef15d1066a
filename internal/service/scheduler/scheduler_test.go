package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/rchdlps/gerenciador-projetos-sub002/internal/service/audience"
	"github.com/rchdlps/gerenciador-projetos-sub002/internal/service/broadcast"
)

// memStore is an in-memory Store with the same conditional transition
// semantics as the database implementation.
type memStore struct {
	mu   sync.Mutex
	rows map[uuid.UUID]*Scheduled
}

func newMemStore() *memStore {
	return &memStore{rows: make(map[uuid.UUID]*Scheduled)}
}

func (m *memStore) Create(_ context.Context, req ScheduleRequest) (*Scheduled, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now().UTC()
	row := &Scheduled{
		ID:           uuid.New(),
		CreatorID:    req.CreatorID,
		TargetType:   string(req.Target.Type),
		TargetIDs:    req.Target.IDs,
		Title:        req.Title,
		Message:      req.Message,
		Type:         req.Type,
		Priority:     req.Priority,
		Link:         req.Link,
		ScheduledFor: req.ScheduledFor,
		Status:       "pending",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if req.Target.OrganizationID != nil {
		id := *req.Target.OrganizationID
		row.OrganizationID = &id
	}
	m.rows[row.ID] = row
	return copyRow(row), nil
}

func (m *memStore) Get(_ context.Context, id uuid.UUID) (*Scheduled, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	row, ok := m.rows[id]
	if !ok {
		return nil, ErrNotFound
	}
	return copyRow(row), nil
}

func (m *memStore) List(_ context.Context, f ListFilter, limit, offset int) ([]*Scheduled, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*Scheduled
	for _, row := range m.rows {
		if f.Status != "" && f.Status != "all" && row.Status != f.Status {
			continue
		}
		out = append(out, copyRow(row))
	}
	return out, len(out), nil
}

func (m *memStore) ListPending(_ context.Context) ([]*Scheduled, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*Scheduled
	for _, row := range m.rows {
		if row.Status == "pending" {
			out = append(out, copyRow(row))
		}
	}
	return out, nil
}

func (m *memStore) DuePending(_ context.Context, now time.Time, limit int) ([]*Scheduled, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*Scheduled
	for _, row := range m.rows {
		if row.Status == "pending" && !row.ScheduledFor.After(now) {
			out = append(out, copyRow(row))
			if limit > 0 && len(out) == limit {
				break
			}
		}
	}
	return out, nil
}

func (m *memStore) CountDuePending(_ context.Context, now time.Time) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, row := range m.rows {
		if row.Status == "pending" && !row.ScheduledFor.After(now) {
			n++
		}
	}
	return n, nil
}

func (m *memStore) ReleaseStale(_ context.Context, staleBefore time.Time) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, row := range m.rows {
		if row.Status == "processing" && row.UpdatedAt.Before(staleBefore) {
			row.Status = "pending"
			row.UpdatedAt = time.Now().UTC()
			n++
		}
	}
	return n, nil
}

func (m *memStore) transition(id uuid.UUID, from, to string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	row, ok := m.rows[id]
	if !ok || row.Status != from {
		return false
	}
	row.Status = to
	row.UpdatedAt = time.Now().UTC()
	return true
}

func (m *memStore) ClaimPending(_ context.Context, id uuid.UUID) (bool, error) {
	return m.transition(id, "pending", "processing"), nil
}

func (m *memStore) MarkSent(_ context.Context, id uuid.UUID, at time.Time) (bool, error) {
	ok := m.transition(id, "processing", "sent")
	if ok {
		m.mu.Lock()
		m.rows[id].SentAt = &at
		m.mu.Unlock()
	}
	return ok, nil
}

func (m *memStore) MarkFailed(_ context.Context, id uuid.UUID, reason string) (bool, error) {
	ok := m.transition(id, "processing", "failed")
	if ok {
		m.mu.Lock()
		m.rows[id].FailureReason = reason
		m.mu.Unlock()
	}
	return ok, nil
}

func (m *memStore) CancelPending(_ context.Context, id, creatorID uuid.UUID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	row, ok := m.rows[id]
	if !ok || row.CreatorID != creatorID || row.Status != "pending" {
		return false, nil
	}
	row.Status = "cancelled"
	row.UpdatedAt = time.Now().UTC()
	return true, nil
}

func (m *memStore) UpdatePending(_ context.Context, id, creatorID uuid.UUID, req UpdateRequest) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	row, ok := m.rows[id]
	if !ok || row.CreatorID != creatorID || row.Status != "pending" {
		return false, nil
	}
	if req.Title != nil {
		row.Title = *req.Title
	}
	if req.Message != nil {
		row.Message = *req.Message
	}
	if req.Priority != nil {
		row.Priority = *req.Priority
	}
	if req.Link != nil {
		row.Link = *req.Link
	}
	if req.ScheduledFor != nil {
		row.ScheduledFor = *req.ScheduledFor
	}
	row.UpdatedAt = time.Now().UTC()
	return true, nil
}

func copyRow(row *Scheduled) *Scheduled {
	c := *row
	return &c
}

type fakeSender struct {
	mu    sync.Mutex
	sends []broadcast.SendRequest
	err   error
}

func (f *fakeSender) Send(_ context.Context, req broadcast.SendRequest) (*broadcast.SendResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	f.sends = append(f.sends, req)
	return &broadcast.SendResult{TargetCount: 1, SentCount: 1}, nil
}

func (f *fakeSender) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sends)
}

type fakePublisher struct {
	mu       sync.Mutex
	subjects []string
	err      error
}

func (f *fakePublisher) Publish(_ context.Context, subject string, _ any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.subjects = append(f.subjects, subject)
	return nil
}

func scheduleOne(t *testing.T, svc *Service, at time.Time) *Scheduled {
	t.Helper()
	row, err := svc.Schedule(context.Background(), ScheduleRequest{
		CreatorID:    uuid.New(),
		Target:       audience.Target{Type: audience.TargetAll},
		Title:        "Assembleia",
		Message:      "Assembleia geral na câmara municipal",
		Type:         "system",
		Priority:     "normal",
		ScheduledFor: at,
	})
	if err != nil {
		t.Fatalf("Schedule failed: %v", err)
	}
	return row
}

func TestSchedule_PublishFailureIsNotFatal(t *testing.T) {
	store := newMemStore()
	svc := New(store, &fakeSender{}, &fakePublisher{err: errors.New("bus down")})

	row := scheduleOne(t, svc, time.Now().Add(time.Hour))

	got, err := store.Get(context.Background(), row.ID)
	if err != nil {
		t.Fatalf("row must exist even when the wake event fails: %v", err)
	}
	if got.Status != "pending" {
		t.Errorf("expected pending, got %q", got.Status)
	}
}

func TestProcessDue_ExactlyOneWinner(t *testing.T) {
	store := newMemStore()
	sender := &fakeSender{}
	svc := New(store, sender, &fakePublisher{})

	row := scheduleOne(t, svc, time.Now().Add(-time.Minute))

	// Timer and sweep racing for the same row.
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = svc.ProcessDue(context.Background(), row.ID)
		}()
	}
	wg.Wait()

	if sender.count() != 1 {
		t.Fatalf("expected exactly one send, got %d", sender.count())
	}
	got, _ := store.Get(context.Background(), row.ID)
	if got.Status != "sent" {
		t.Errorf("expected sent, got %q", got.Status)
	}
	if got.SentAt == nil {
		t.Error("sent_at should be set")
	}
}

func TestProcessDue_SendFailureMarksFailed(t *testing.T) {
	store := newMemStore()
	sender := &fakeSender{err: errors.New("resolve exploded")}
	svc := New(store, sender, &fakePublisher{})

	row := scheduleOne(t, svc, time.Now().Add(-time.Minute))

	if err := svc.ProcessDue(context.Background(), row.ID); err == nil {
		t.Fatal("expected error from failed send")
	}

	got, _ := store.Get(context.Background(), row.ID)
	if got.Status != "failed" {
		t.Errorf("expected failed, got %q", got.Status)
	}
	if got.FailureReason == "" {
		t.Error("failure reason should be recorded")
	}
}

func TestCancel_BeforeFire(t *testing.T) {
	store := newMemStore()
	sender := &fakeSender{}
	bus := &fakePublisher{}
	svc := New(store, sender, bus)

	row := scheduleOne(t, svc, time.Now().Add(time.Hour))

	if err := svc.Cancel(context.Background(), row.ID, row.CreatorID); err != nil {
		t.Fatalf("Cancel failed: %v", err)
	}

	got, _ := store.Get(context.Background(), row.ID)
	if got.Status != "cancelled" {
		t.Errorf("expected cancelled, got %q", got.Status)
	}

	// A late timer firing after the cancel must not send anything.
	if err := svc.ProcessDue(context.Background(), row.ID); err != nil {
		t.Fatalf("ProcessDue on cancelled row must be a no-op: %v", err)
	}
	if sender.count() != 0 {
		t.Errorf("cancelled broadcast must never send, got %d sends", sender.count())
	}
}

func TestCancel_Idempotent(t *testing.T) {
	store := newMemStore()
	svc := New(store, &fakeSender{}, &fakePublisher{})

	row := scheduleOne(t, svc, time.Now().Add(time.Hour))

	if err := svc.Cancel(context.Background(), row.ID, row.CreatorID); err != nil {
		t.Fatalf("first cancel failed: %v", err)
	}
	if err := svc.Cancel(context.Background(), row.ID, row.CreatorID); err != nil {
		t.Fatalf("second cancel must be a no-op: %v", err)
	}
}

func TestCancel_SentBroadcast(t *testing.T) {
	store := newMemStore()
	svc := New(store, &fakeSender{}, &fakePublisher{})

	row := scheduleOne(t, svc, time.Now().Add(-time.Minute))
	if err := svc.ProcessDue(context.Background(), row.ID); err != nil {
		t.Fatalf("ProcessDue failed: %v", err)
	}

	if err := svc.Cancel(context.Background(), row.ID, row.CreatorID); !errors.Is(err, ErrNotPending) {
		t.Errorf("expected ErrNotPending for a sent broadcast, got %v", err)
	}
}

func TestCancel_NotFound(t *testing.T) {
	svc := New(newMemStore(), &fakeSender{}, &fakePublisher{})
	if err := svc.Cancel(context.Background(), uuid.New(), uuid.New()); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestCancel_ForeignCreator(t *testing.T) {
	store := newMemStore()
	svc := New(store, &fakeSender{}, &fakePublisher{})

	row := scheduleOne(t, svc, time.Now().Add(time.Hour))

	if err := svc.Cancel(context.Background(), row.ID, uuid.New()); !errors.Is(err, ErrNotFound) {
		t.Errorf("another creator's broadcast must read as not found, got %v", err)
	}
	got, _ := store.Get(context.Background(), row.ID)
	if got.Status != "pending" {
		t.Errorf("row must stay pending, got %q", got.Status)
	}
}

func TestUpdate_ForeignCreator(t *testing.T) {
	store := newMemStore()
	svc := New(store, &fakeSender{}, &fakePublisher{})

	row := scheduleOne(t, svc, time.Now().Add(time.Hour))

	title := "intruso"
	if _, err := svc.Update(context.Background(), row.ID, uuid.New(), UpdateRequest{Title: &title}); !errors.Is(err, ErrNotFound) {
		t.Errorf("another creator's broadcast must read as not found, got %v", err)
	}
	got, _ := store.Get(context.Background(), row.ID)
	if got.Title == title {
		t.Error("title must not change")
	}
}

func TestUpdate_MovedFireTimeRearmsTimer(t *testing.T) {
	store := newMemStore()
	bus := &fakePublisher{}
	svc := New(store, &fakeSender{}, bus)

	row := scheduleOne(t, svc, time.Now().Add(time.Hour))
	bus.mu.Lock()
	bus.subjects = nil
	bus.mu.Unlock()

	newTime := time.Now().Add(2 * time.Hour).UTC()
	updated, err := svc.Update(context.Background(), row.ID, row.CreatorID, UpdateRequest{ScheduledFor: &newTime})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if !updated.ScheduledFor.Equal(newTime) {
		t.Errorf("scheduled_for not updated")
	}

	bus.mu.Lock()
	defer bus.mu.Unlock()
	if len(bus.subjects) != 2 {
		t.Fatalf("moving the fire time should publish cancel then schedule, got %v", bus.subjects)
	}
}

func TestUpdate_ContentOnlyDoesNotRearm(t *testing.T) {
	store := newMemStore()
	bus := &fakePublisher{}
	svc := New(store, &fakeSender{}, bus)

	row := scheduleOne(t, svc, time.Now().Add(time.Hour))
	bus.mu.Lock()
	bus.subjects = nil
	bus.mu.Unlock()

	title := "Novo título"
	if _, err := svc.Update(context.Background(), row.ID, row.CreatorID, UpdateRequest{Title: &title}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	bus.mu.Lock()
	defer bus.mu.Unlock()
	if len(bus.subjects) != 0 {
		t.Errorf("content-only update must not publish timer events, got %v", bus.subjects)
	}
}

func TestUpdate_AfterSend(t *testing.T) {
	store := newMemStore()
	svc := New(store, &fakeSender{}, &fakePublisher{})

	row := scheduleOne(t, svc, time.Now().Add(-time.Minute))
	if err := svc.ProcessDue(context.Background(), row.ID); err != nil {
		t.Fatalf("ProcessDue failed: %v", err)
	}

	title := "tarde demais"
	if _, err := svc.Update(context.Background(), row.ID, row.CreatorID, UpdateRequest{Title: &title}); !errors.Is(err, ErrNotPending) {
		t.Errorf("expected ErrNotPending, got %v", err)
	}
}

func TestSweep_ProcessesOverdueRows(t *testing.T) {
	store := newMemStore()
	sender := &fakeSender{}
	svc := New(store, sender, &fakePublisher{})

	overdue := scheduleOne(t, svc, time.Now().Add(-3*24*time.Hour))
	future := scheduleOne(t, svc, time.Now().Add(time.Hour))

	res, err := svc.Sweep(context.Background(), 50)
	if err != nil {
		t.Fatalf("Sweep failed: %v", err)
	}

	if res.Processed != 1 || res.Failed != 0 {
		t.Errorf("expected processed=1 failed=0, got %d/%d", res.Processed, res.Failed)
	}
	if res.Remaining != 0 {
		t.Errorf("expected no remaining due rows, got %d", res.Remaining)
	}

	got, _ := store.Get(context.Background(), overdue.ID)
	if got.Status != "sent" {
		t.Errorf("days-old row should still fire, got %q", got.Status)
	}
	got, _ = store.Get(context.Background(), future.ID)
	if got.Status != "pending" {
		t.Errorf("future row must stay pending, got %q", got.Status)
	}
}

func TestSweep_ReclaimsStaleClaims(t *testing.T) {
	store := newMemStore()
	sender := &fakeSender{}
	svc := New(store, sender, &fakePublisher{})

	row := scheduleOne(t, svc, time.Now().Add(-time.Hour))

	// Simulate a worker that claimed the row and crashed long ago.
	if ok, _ := store.ClaimPending(context.Background(), row.ID); !ok {
		t.Fatal("claim should succeed")
	}
	store.mu.Lock()
	store.rows[row.ID].UpdatedAt = time.Now().Add(-time.Hour)
	store.mu.Unlock()

	res, err := svc.Sweep(context.Background(), 50)
	if err != nil {
		t.Fatalf("Sweep failed: %v", err)
	}
	if res.Processed != 1 {
		t.Errorf("stale claim should be released and processed, got %d", res.Processed)
	}
	got, _ := store.Get(context.Background(), row.ID)
	if got.Status != "sent" {
		t.Errorf("expected sent after reclaim, got %q", got.Status)
	}
}

func TestSweep_RespectsBatchLimit(t *testing.T) {
	store := newMemStore()
	sender := &fakeSender{}
	svc := New(store, sender, &fakePublisher{})

	for i := 0; i < 5; i++ {
		scheduleOne(t, svc, time.Now().Add(-time.Minute))
	}

	res, err := svc.Sweep(context.Background(), 2)
	if err != nil {
		t.Fatalf("Sweep failed: %v", err)
	}
	if res.Processed != 2 {
		t.Errorf("expected batch of 2, got %d", res.Processed)
	}
	if res.Remaining != 3 {
		t.Errorf("expected 3 remaining, got %d", res.Remaining)
	}
}
