package realtime

import (
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

// Session is one live client connection. The hub never blocks on a slow
// session; writes that cannot be buffered are dropped.
type Session struct {
	UserID uuid.UUID
	Send   chan []byte

	hub    *Hub
	mu     sync.Mutex
	done   chan struct{}
	closed bool
}

// Done is closed when the session is closed. The Send channel itself is
// never closed: Push may still be writing to it from another goroutine.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

func (s *Session) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	close(s.done)
	s.mu.Unlock()

	if s.hub != nil {
		s.hub.unregister(s)
	}
}

// Hub tracks the live sessions of each user and delivers notification
// payloads to them. It is a best-effort latency optimization: the store is
// the source of truth, and an offline user simply sees the notification on
// the next list call.
type Hub struct {
	mu     sync.RWMutex
	byUser map[uuid.UUID]map[*Session]struct{}
}

func NewHub() *Hub {
	return &Hub{
		byUser: make(map[uuid.UUID]map[*Session]struct{}),
	}
}

// Register creates and tracks a session for the user. sendBuf bounds the
// per-session write queue.
func (h *Hub) Register(userID uuid.UUID, sendBuf int) *Session {
	if sendBuf <= 0 {
		sendBuf = 16
	}
	s := &Session{
		UserID: userID,
		Send:   make(chan []byte, sendBuf),
		done:   make(chan struct{}),
		hub:    h,
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.byUser[userID] == nil {
		h.byUser[userID] = make(map[*Session]struct{})
	}
	h.byUser[userID][s] = struct{}{}
	return s
}

func (h *Hub) unregister(s *Session) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if m := h.byUser[s.UserID]; m != nil {
		delete(m, s)
		if len(m) == 0 {
			delete(h.byUser, s.UserID)
		}
	}
}

// Push delivers a payload to every live session of the user. It never
// blocks and never returns an error; the result reports whether at least
// one session accepted the payload.
func (h *Hub) Push(userID uuid.UUID, payload any) bool {
	data, err := json.Marshal(payload)
	if err != nil {
		slog.Warn("realtime: payload marshal failed", "user_id", userID, "err", err)
		return false
	}

	h.mu.RLock()
	m := h.byUser[userID]
	if len(m) == 0 {
		h.mu.RUnlock()
		return false
	}
	sessions := make([]*Session, 0, len(m))
	for s := range m {
		sessions = append(sessions, s)
	}
	h.mu.RUnlock()

	delivered := false
	for _, s := range sessions {
		select {
		case <-s.done:
			// Session closed between the snapshot and the send.
		case s.Send <- data:
			delivered = true
		default:
			// Slow consumer; drop rather than block the emit path.
		}
	}
	return delivered
}

// SessionCount reports the number of live sessions across all users.
func (h *Hub) SessionCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	n := 0
	for _, m := range h.byUser {
		n += len(m)
	}
	return n
}
