package digest

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/rchdlps/gerenciador-projetos-sub002/internal/service/audience"
	"github.com/rchdlps/gerenciador-projetos-sub002/internal/service/notification"
	"github.com/rchdlps/gerenciador-projetos-sub002/pkg/email"
)

type fakeStore struct {
	items     map[uuid.UUID][]*notification.Notification
	itemsErr  error
	marked    [][]uuid.UUID
	markedErr error
}

func (f *fakeStore) DigestItems(_ context.Context, userID uuid.UUID, _ time.Time) ([]*notification.Notification, error) {
	if f.itemsErr != nil {
		return nil, f.itemsErr
	}
	return f.items[userID], nil
}

func (f *fakeStore) MarkEmailed(_ context.Context, ids []uuid.UUID) error {
	if f.markedErr != nil {
		return f.markedErr
	}
	f.marked = append(f.marked, ids)
	return nil
}

type fakeDirectory struct {
	users []audience.ActiveUser
}

func (f *fakeDirectory) ActiveUsers(_ context.Context) ([]audience.ActiveUser, error) {
	return f.users, nil
}

type fakeMailer struct {
	sent    []email.Message
	failFor map[string]bool
}

func (f *fakeMailer) Send(_ context.Context, m email.Message) error {
	if len(m.To) > 0 && f.failFor[m.To[0]] {
		return errors.New("smtp down")
	}
	f.sent = append(f.sent, m)
	return nil
}

func unreadItem(title string) *notification.Notification {
	return &notification.Notification{
		ID:        uuid.New(),
		Title:     title,
		Message:   "detalhes",
		CreatedAt: time.Now().UTC().Add(-2 * time.Hour),
	}
}

func TestRun_SendsOneEmailPerUserWithItems(t *testing.T) {
	withItems := audience.ActiveUser{ID: uuid.New(), Name: "Ana", Email: "ana@example.com"}
	without := audience.ActiveUser{ID: uuid.New(), Name: "Bruno", Email: "bruno@example.com"}

	store := &fakeStore{
		items: map[uuid.UUID][]*notification.Notification{
			withItems.ID: {unreadItem("Tarefa vencida"), unreadItem("Novo comentário")},
		},
	}
	mailer := &fakeMailer{}
	job := NewJob(store, &fakeDirectory{users: []audience.ActiveUser{withItems, without}}, mailer, 24*time.Hour, "Gerenciador", "https://app.example.com")

	res, err := job.Run(context.Background())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if res.UsersChecked != 2 {
		t.Errorf("expected 2 users checked, got %d", res.UsersChecked)
	}
	if res.EmailsSent != 1 {
		t.Errorf("users with no unread items must be skipped, got %d emails", res.EmailsSent)
	}
	if len(mailer.sent) != 1 {
		t.Fatalf("expected exactly one email, got %d", len(mailer.sent))
	}
	if mailer.sent[0].To[0] != "ana@example.com" {
		t.Errorf("email went to the wrong user: %v", mailer.sent[0].To)
	}
	if len(store.marked) != 1 || len(store.marked[0]) != 2 {
		t.Errorf("both digest items should be marked emailed, got %v", store.marked)
	}
}

func TestRun_FailedSendLeavesItemsEligible(t *testing.T) {
	user := audience.ActiveUser{ID: uuid.New(), Name: "Ana", Email: "ana@example.com"}
	store := &fakeStore{
		items: map[uuid.UUID][]*notification.Notification{
			user.ID: {unreadItem("Tarefa")},
		},
	}
	mailer := &fakeMailer{failFor: map[string]bool{"ana@example.com": true}}
	job := NewJob(store, &fakeDirectory{users: []audience.ActiveUser{user}}, mailer, 24*time.Hour, "Gerenciador", "")

	res, err := job.Run(context.Background())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if res.Failures != 1 || res.EmailsSent != 0 {
		t.Errorf("expected 1 failure and 0 emails, got %d/%d", res.Failures, res.EmailsSent)
	}
	if len(store.marked) != 0 {
		t.Error("items must stay eligible when the email fails")
	}
}

func TestRun_PerUserFailureDoesNotStopThePass(t *testing.T) {
	broken := audience.ActiveUser{ID: uuid.New(), Name: "Ana", Email: "ana@example.com"}
	healthy := audience.ActiveUser{ID: uuid.New(), Name: "Bruno", Email: "bruno@example.com"}
	store := &fakeStore{
		items: map[uuid.UUID][]*notification.Notification{
			broken.ID:  {unreadItem("a")},
			healthy.ID: {unreadItem("b")},
		},
	}
	mailer := &fakeMailer{failFor: map[string]bool{"ana@example.com": true}}
	job := NewJob(store, &fakeDirectory{users: []audience.ActiveUser{broken, healthy}}, mailer, 24*time.Hour, "Gerenciador", "")

	res, err := job.Run(context.Background())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if res.EmailsSent != 1 || res.Failures != 1 {
		t.Errorf("expected 1 sent and 1 failure, got %d/%d", res.EmailsSent, res.Failures)
	}
}

func TestRun_MarkEmailedFailureDoesNotFailUser(t *testing.T) {
	user := audience.ActiveUser{ID: uuid.New(), Name: "Ana", Email: "ana@example.com"}
	store := &fakeStore{
		items: map[uuid.UUID][]*notification.Notification{
			user.ID: {unreadItem("Tarefa")},
		},
		markedErr: errors.New("db down"),
	}
	mailer := &fakeMailer{}
	job := NewJob(store, &fakeDirectory{users: []audience.ActiveUser{user}}, mailer, 24*time.Hour, "Gerenciador", "")

	res, err := job.Run(context.Background())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if res.EmailsSent != 1 || res.Failures != 0 {
		t.Errorf("the email went out; a mark failure must not count as a user failure, got %d/%d", res.EmailsSent, res.Failures)
	}
}
