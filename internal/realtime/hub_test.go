package realtime

import (
	"encoding/json"
	"sync"
	"testing"

	"github.com/google/uuid"
)

func TestHub_PushReachesAllUserSessions(t *testing.T) {
	hub := NewHub()
	userID := uuid.New()

	s1 := hub.Register(userID, 4)
	s2 := hub.Register(userID, 4)
	defer s1.Close()
	defer s2.Close()

	if !hub.Push(userID, map[string]string{"title": "oi"}) {
		t.Fatal("push to a connected user should report delivered")
	}

	for i, s := range []*Session{s1, s2} {
		select {
		case raw := <-s.Send:
			var got map[string]string
			if err := json.Unmarshal(raw, &got); err != nil {
				t.Fatalf("session %d received invalid JSON: %v", i, err)
			}
			if got["title"] != "oi" {
				t.Errorf("session %d payload mismatch: %v", i, got)
			}
		default:
			t.Errorf("session %d did not receive the payload", i)
		}
	}
}

func TestHub_PushToOfflineUser(t *testing.T) {
	hub := NewHub()
	if hub.Push(uuid.New(), "payload") {
		t.Error("push to a user with no sessions should report not delivered")
	}
}

func TestHub_PushDoesNotReachOtherUsers(t *testing.T) {
	hub := NewHub()
	a, b := uuid.New(), uuid.New()

	sa := hub.Register(a, 4)
	sb := hub.Register(b, 4)
	defer sa.Close()
	defer sb.Close()

	hub.Push(a, "for-a")

	select {
	case <-sb.Send:
		t.Error("user b must not receive user a's notification")
	default:
	}
}

func TestHub_SlowSessionDoesNotBlock(t *testing.T) {
	hub := NewHub()
	userID := uuid.New()

	s := hub.Register(userID, 1)
	defer s.Close()

	// Fill the buffer; further pushes must drop, not block.
	hub.Push(userID, "first")
	done := make(chan struct{})
	go func() {
		hub.Push(userID, "second")
		close(done)
	}()
	<-done

	if len(s.Send) != 1 {
		t.Errorf("expected exactly the buffered message, got %d", len(s.Send))
	}
}

func TestHub_CloseUnregisters(t *testing.T) {
	hub := NewHub()
	userID := uuid.New()

	s := hub.Register(userID, 4)
	if hub.SessionCount() != 1 {
		t.Fatalf("expected 1 session, got %d", hub.SessionCount())
	}

	s.Close()
	if hub.SessionCount() != 0 {
		t.Errorf("expected 0 sessions after close, got %d", hub.SessionCount())
	}
	if hub.Push(userID, "late") {
		t.Error("push after the only session closed should report not delivered")
	}

	// Double close must be safe.
	s.Close()
}

func TestHub_PushDuringCloseDoesNotPanic(t *testing.T) {
	hub := NewHub()
	userID := uuid.New()

	stop := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-stop:
				return
			default:
				hub.Push(userID, "payload")
			}
		}
	}()

	// Sessions come and go while pushes are in flight.
	for i := 0; i < 500; i++ {
		s := hub.Register(userID, 1)
		s.Close()
	}
	close(stop)
	wg.Wait()

	if hub.SessionCount() != 0 {
		t.Errorf("expected 0 sessions, got %d", hub.SessionCount())
	}
}

func TestHub_DoneSignalsOnClose(t *testing.T) {
	hub := NewHub()
	s := hub.Register(uuid.New(), 4)

	select {
	case <-s.Done():
		t.Fatal("done must not fire before close")
	default:
	}

	s.Close()
	select {
	case <-s.Done():
	default:
		t.Error("done must fire after close")
	}
}
