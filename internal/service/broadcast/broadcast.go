package broadcast

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/rchdlps/gerenciador-projetos-sub002/internal/service/audience"
	"github.com/rchdlps/gerenciador-projetos-sub002/internal/service/notification"
)

// SendRequest is an immediate broadcast: resolve the target now, emit one
// notification per recipient, record the outcome.
type SendRequest struct {
	CreatorID uuid.UUID
	Target    audience.Target
	Title     string
	Message   string
	Type      string // activity | system
	Priority  string // normal | high | urgent
	Link      string
}

// SendResult reports the fan-out outcome. SentCount+FailedCount always
// equals TargetCount.
type SendResult struct {
	SendLogID   uuid.UUID
	TargetCount int
	SentCount   int
	FailedCount int
}

// SendLog is one row of broadcast history.
type SendLog struct {
	ID             uuid.UUID
	CreatorID      uuid.UUID
	OrganizationID *uuid.UUID
	Title          string
	Message        string
	Type           string
	Priority       string
	Link           string
	TargetType     string
	TargetCount    int
	SentCount      int
	FailedCount    int
	SentAt         time.Time
}

// Stats aggregates send log rows since a point in time.
type Stats struct {
	Broadcasts  int
	TargetCount int
	SentCount   int
	FailedCount int
}

type CreateLogRequest struct {
	CreatorID      uuid.UUID
	OrganizationID *uuid.UUID
	Title          string
	Message        string
	Type           string
	Priority       string
	Link           string
	TargetType     string
	TargetCount    int
	SentCount      int
	FailedCount    int
	SentAt         time.Time
}

// Store persists and reads broadcast history.
type Store interface {
	CreateSendLog(ctx context.Context, req CreateLogRequest) (*SendLog, error)
	History(ctx context.Context, limit, offset int) ([]*SendLog, int, error)
	GetSendLog(ctx context.Context, id uuid.UUID) (*SendLog, error)
	Stats(ctx context.Context, since time.Time) (*Stats, error)
}

// Emitter is the per-recipient delivery dependency.
type Emitter interface {
	Emit(ctx context.Context, req notification.CreateRequest) (*notification.Notification, error)
}

type Service struct {
	dir     audience.Directory
	emitter Emitter
	store   Store
	workers int
}

func New(dir audience.Directory, emitter Emitter, store Store, workers int) *Service {
	if workers < 1 {
		workers = 1
	}
	return &Service{dir: dir, emitter: emitter, store: store, workers: workers}
}

// Send resolves the target and emits one notification per recipient with
// bounded concurrency. Each recipient fails independently; a partial
// failure still records the log row and returns the counts. An empty
// audience returns ErrNoRecipients without writing anything.
func (s *Service) Send(ctx context.Context, req SendRequest) (*SendResult, error) {
	recipients, err := audience.Resolve(ctx, s.dir, req.Target)
	if err != nil {
		return nil, fmt.Errorf("resolve broadcast target: %w", err)
	}
	if len(recipients) == 0 {
		return nil, ErrNoRecipients
	}

	data := notificationData(req.Priority, req.Link)

	var (
		failed int64
		wg     sync.WaitGroup
		sem    = make(chan struct{}, s.workers)
	)
	for _, userID := range recipients {
		wg.Add(1)
		sem <- struct{}{}
		go func(userID uuid.UUID) {
			defer wg.Done()
			defer func() { <-sem }()
			_, err := s.emitter.Emit(ctx, notification.CreateRequest{
				UserID:  userID,
				Type:    req.Type,
				Title:   req.Title,
				Message: req.Message,
				Data:    data,
			})
			if err != nil {
				atomic.AddInt64(&failed, 1)
				slog.Warn("broadcast: emit failed",
					"user_id", userID,
					"err", err,
				)
			}
		}(userID)
	}
	wg.Wait()

	result := &SendResult{
		TargetCount: len(recipients),
		SentCount:   len(recipients) - int(failed),
		FailedCount: int(failed),
	}
	if result.FailedCount > 0 {
		slog.Warn("broadcast: partial delivery",
			"target_count", result.TargetCount,
			"failed_count", result.FailedCount,
		)
	}

	log, err := s.store.CreateSendLog(ctx, CreateLogRequest{
		CreatorID:      req.CreatorID,
		OrganizationID: req.Target.OrganizationID,
		Title:          req.Title,
		Message:        req.Message,
		Type:           req.Type,
		Priority:       req.Priority,
		Link:           req.Link,
		TargetType:     string(req.Target.Type),
		TargetCount:    result.TargetCount,
		SentCount:      result.SentCount,
		FailedCount:    result.FailedCount,
		SentAt:         time.Now().UTC(),
	})
	if err != nil {
		// The notifications are already delivered. Losing the audit row
		// should not fail the request.
		slog.Error("broadcast: write send log failed", "err", err)
		return result, nil
	}
	result.SendLogID = log.ID
	return result, nil
}

// History pages through past broadcasts, newest first.
func (s *Service) History(ctx context.Context, limit, offset int) ([]*SendLog, int, error) {
	return s.store.History(ctx, limit, offset)
}

// Get returns a single send log row, ErrNotFound if it does not exist.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*SendLog, error) {
	return s.store.GetSendLog(ctx, id)
}

// DeliveryStats aggregates broadcast outcomes since the given time.
func (s *Service) DeliveryStats(ctx context.Context, since time.Time) (*Stats, error) {
	return s.store.Stats(ctx, since)
}

func notificationData(priority, link string) map[string]any {
	if priority == "" && link == "" {
		return nil
	}
	data := make(map[string]any, 2)
	if priority != "" {
		data["priority"] = priority
	}
	if link != "" {
		data["link"] = link
	}
	return data
}
