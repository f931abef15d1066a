package notification

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/rchdlps/gerenciador-projetos-sub002/internal/repo"
)

// openTestClient runs the service against an in-memory sqlite database so
// the real query predicates are exercised, not a fake.
func openTestClient(t *testing.T) *repo.Client {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:?_pragma=foreign_keys(1)")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	// A single connection keeps every query on the same in-memory database.
	db.SetMaxOpenConns(1)

	client := repo.NewClient(repo.Driver(entsql.OpenDB(dialect.SQLite, db)))
	t.Cleanup(func() { client.Close() })

	if err := client.Schema.Create(context.Background()); err != nil {
		t.Fatalf("create schema: %v", err)
	}
	return client
}

func createFor(t *testing.T, svc Service, userID uuid.UUID, title string) *Notification {
	t.Helper()
	n, err := svc.Create(context.Background(), CreateRequest{
		UserID:  userID,
		Type:    "activity",
		Title:   title,
		Message: "Nova tarefa atribuída no projeto da praça central",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	return n
}

func TestService_MarkReadIdempotent(t *testing.T) {
	svc := New(openTestClient(t))
	ctx := context.Background()
	userID := uuid.New()

	n := createFor(t, svc, userID, "Tarefa atribuída")

	count, err := svc.UnreadCount(ctx, userID)
	if err != nil {
		t.Fatalf("UnreadCount failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 unread after create, got %d", count)
	}

	changed, err := svc.MarkRead(ctx, n.ID, userID)
	if err != nil {
		t.Fatalf("MarkRead failed: %v", err)
	}
	if !changed {
		t.Error("first mark should report a change")
	}

	changed, err = svc.MarkRead(ctx, n.ID, userID)
	if err != nil {
		t.Fatalf("second MarkRead must not error: %v", err)
	}
	if changed {
		t.Error("second mark must be a no-op")
	}

	count, _ = svc.UnreadCount(ctx, userID)
	if count != 0 {
		t.Errorf("expected 0 unread after mark, got %d", count)
	}
}

func TestService_MarkReadUnknownID(t *testing.T) {
	svc := New(openTestClient(t))

	_, err := svc.MarkRead(context.Background(), uuid.New(), uuid.New())
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestService_OwnershipIsolation(t *testing.T) {
	svc := New(openTestClient(t))
	ctx := context.Background()
	userA, userB := uuid.New(), uuid.New()

	n := createFor(t, svc, userA, "Só para o usuário A")

	items, total, err := svc.List(ctx, userB, Filter{}, 10, 0)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if total != 0 || len(items) != 0 {
		t.Errorf("user B must not see user A's rows, got %d", total)
	}

	if _, err := svc.MarkRead(ctx, n.ID, userB); !errors.Is(err, ErrNotFound) {
		t.Errorf("user B marking user A's row must read as not found, got %v", err)
	}
	if err := svc.MarkSelectedRead(ctx, []uuid.UUID{n.ID}, userB); err != nil {
		t.Fatalf("MarkSelectedRead with foreign ids must be silent: %v", err)
	}

	count, _ := svc.UnreadCount(ctx, userA)
	if count != 1 {
		t.Errorf("user A's row must stay unread, got %d unread", count)
	}
}

func TestService_MarkAllReadScopedToUser(t *testing.T) {
	svc := New(openTestClient(t))
	ctx := context.Background()
	userA, userB := uuid.New(), uuid.New()

	createFor(t, svc, userA, "a1")
	createFor(t, svc, userA, "a2")
	createFor(t, svc, userB, "b1")

	if err := svc.MarkAllRead(ctx, userA); err != nil {
		t.Fatalf("MarkAllRead failed: %v", err)
	}

	countA, _ := svc.UnreadCount(ctx, userA)
	countB, _ := svc.UnreadCount(ctx, userB)
	if countA != 0 {
		t.Errorf("user A should have 0 unread, got %d", countA)
	}
	if countB != 1 {
		t.Errorf("user B must be untouched, got %d unread", countB)
	}
}
