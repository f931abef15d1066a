package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/rchdlps/gerenciador-projetos-sub002/internal/events"
	"github.com/rchdlps/gerenciador-projetos-sub002/internal/service/audience"
	"github.com/rchdlps/gerenciador-projetos-sub002/internal/service/broadcast"
)

// staleClaimAge is how long a row may sit in processing before the sweep
// treats its worker as crashed and releases it back to pending.
const staleClaimAge = 10 * time.Minute

// Scheduled is one deferred broadcast.
type Scheduled struct {
	ID             uuid.UUID
	CreatorID      uuid.UUID
	OrganizationID *uuid.UUID
	TargetType     string
	TargetIDs      []string
	Title          string
	Message        string
	Type           string
	Priority       string
	Link           string
	ScheduledFor   time.Time
	Status         string
	FailureReason  string
	SentAt         *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Target rebuilds the audience target stored on the row.
func (s *Scheduled) Target() audience.Target {
	return audience.Target{
		Type:           audience.TargetType(s.TargetType),
		IDs:            s.TargetIDs,
		OrganizationID: s.OrganizationID,
	}
}

type ScheduleRequest struct {
	CreatorID    uuid.UUID
	Target       audience.Target
	Title        string
	Message      string
	Type         string
	Priority     string
	Link         string
	ScheduledFor time.Time
}

// UpdateRequest changes a pending broadcast. Nil fields are left untouched.
type UpdateRequest struct {
	Title        *string
	Message      *string
	Priority     *string
	Link         *string
	ScheduledFor *time.Time
}

// ListFilter narrows a List call. Zero values mean "no constraint".
type ListFilter struct {
	Status    string
	CreatorID *uuid.UUID
}

// SweepResult reports one reconciliation pass.
type SweepResult struct {
	Processed int
	Failed    int
	Remaining int
}

// Store is the durable record of scheduled broadcasts. Claim and the Mark
// methods are conditional status transitions; the bool reports whether this
// caller won the transition.
type Store interface {
	Create(ctx context.Context, req ScheduleRequest) (*Scheduled, error)
	Get(ctx context.Context, id uuid.UUID) (*Scheduled, error)
	List(ctx context.Context, f ListFilter, limit, offset int) ([]*Scheduled, int, error)
	ListPending(ctx context.Context) ([]*Scheduled, error)
	DuePending(ctx context.Context, now time.Time, limit int) ([]*Scheduled, error)
	CountDuePending(ctx context.Context, now time.Time) (int, error)
	ReleaseStale(ctx context.Context, staleBefore time.Time) (int, error)
	ClaimPending(ctx context.Context, id uuid.UUID) (bool, error)
	MarkSent(ctx context.Context, id uuid.UUID, at time.Time) (bool, error)
	MarkFailed(ctx context.Context, id uuid.UUID, reason string) (bool, error)
	CancelPending(ctx context.Context, id, creatorID uuid.UUID) (bool, error)
	UpdatePending(ctx context.Context, id, creatorID uuid.UUID, req UpdateRequest) (bool, error)
}

// Sender performs the actual fan-out when a broadcast comes due.
type Sender interface {
	Send(ctx context.Context, req broadcast.SendRequest) (*broadcast.SendResult, error)
}

type Service struct {
	store  Store
	sender Sender
	bus    events.Publisher
}

func New(store Store, sender Sender, bus events.Publisher) *Service {
	return &Service{store: store, sender: sender, bus: bus}
}

// Schedule records a deferred broadcast and publishes a wake event so a
// worker can arm a timer for it. The row is the durability guarantee; if
// the publish fails the periodic sweep still picks the row up, so the
// failure is logged, not returned.
func (s *Service) Schedule(ctx context.Context, req ScheduleRequest) (*Scheduled, error) {
	row, err := s.store.Create(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("schedule broadcast: %w", err)
	}

	if err := s.bus.Publish(ctx, events.SubjectScheduled, events.ScheduledEvent{
		ScheduledID:  row.ID,
		ScheduledFor: row.ScheduledFor,
	}); err != nil {
		slog.Warn("scheduler: publish scheduled event failed",
			"scheduled_id", row.ID,
			"err", err,
		)
	}
	return row, nil
}

// Cancel stops a pending broadcast owned by creatorID. Cancelling an
// already cancelled broadcast is a no-op; one that was already sent or
// failed is an error. Another creator's broadcast reads as not found.
func (s *Service) Cancel(ctx context.Context, id, creatorID uuid.UUID) error {
	ok, err := s.store.CancelPending(ctx, id, creatorID)
	if err != nil {
		return fmt.Errorf("cancel broadcast: %w", err)
	}
	if !ok {
		row, err := s.store.Get(ctx, id)
		if err != nil {
			return err
		}
		if row.CreatorID != creatorID {
			return ErrNotFound
		}
		if row.Status == "cancelled" {
			return nil
		}
		return ErrNotPending
	}

	if err := s.bus.Publish(ctx, events.SubjectCancelled, events.CancelledEvent{
		ScheduledID: id,
	}); err != nil {
		slog.Warn("scheduler: publish cancelled event failed",
			"scheduled_id", id,
			"err", err,
		)
	}
	return nil
}

// Update edits a pending broadcast owned by creatorID. If the fire time
// moves, the old timer is torn down and a new one armed via the bus.
func (s *Service) Update(ctx context.Context, id, creatorID uuid.UUID, req UpdateRequest) (*Scheduled, error) {
	ok, err := s.store.UpdatePending(ctx, id, creatorID, req)
	if err != nil {
		return nil, fmt.Errorf("update broadcast: %w", err)
	}
	if !ok {
		row, err := s.store.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		if row.CreatorID != creatorID {
			return nil, ErrNotFound
		}
		return nil, ErrNotPending
	}

	row, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.ScheduledFor != nil {
		if err := s.bus.Publish(ctx, events.SubjectCancelled, events.CancelledEvent{ScheduledID: id}); err != nil {
			slog.Warn("scheduler: publish cancelled event failed", "scheduled_id", id, "err", err)
		}
		if err := s.bus.Publish(ctx, events.SubjectScheduled, events.ScheduledEvent{
			ScheduledID:  id,
			ScheduledFor: row.ScheduledFor,
		}); err != nil {
			slog.Warn("scheduler: publish scheduled event failed", "scheduled_id", id, "err", err)
		}
	}
	return row, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Scheduled, error) {
	return s.store.Get(ctx, id)
}

func (s *Service) List(ctx context.Context, f ListFilter, limit, offset int) ([]*Scheduled, int, error) {
	return s.store.List(ctx, f, limit, offset)
}

// ListPending returns every pending broadcast, soonest first. Workers use
// it on boot to re-arm timers.
func (s *Service) ListPending(ctx context.Context) ([]*Scheduled, error) {
	return s.store.ListPending(ctx)
}

// ProcessDue fires one broadcast. The conditional claim makes this safe to
// call from a timer and the sweep at once; the loser sees the row already
// claimed and walks away. Send failures and empty audiences mark the row
// failed so it is never retried forever.
func (s *Service) ProcessDue(ctx context.Context, id uuid.UUID) error {
	row, err := s.store.Get(ctx, id)
	if err != nil {
		return err
	}
	if row.Status != "pending" {
		return nil
	}

	claimed, err := s.store.ClaimPending(ctx, id)
	if err != nil {
		return fmt.Errorf("claim broadcast: %w", err)
	}
	if !claimed {
		return nil
	}

	result, err := s.sender.Send(ctx, broadcast.SendRequest{
		CreatorID: row.CreatorID,
		Target:    row.Target(),
		Title:     row.Title,
		Message:   row.Message,
		Type:      row.Type,
		Priority:  row.Priority,
		Link:      row.Link,
	})
	if err != nil {
		reason := err.Error()
		if _, markErr := s.store.MarkFailed(ctx, id, reason); markErr != nil {
			slog.Error("scheduler: mark failed failed", "scheduled_id", id, "err", markErr)
		}
		return fmt.Errorf("send scheduled broadcast %s: %w", id, err)
	}

	if _, err := s.store.MarkSent(ctx, id, time.Now().UTC()); err != nil {
		return fmt.Errorf("mark sent: %w", err)
	}
	slog.Info("scheduler: broadcast sent",
		"scheduled_id", id,
		"target_count", result.TargetCount,
		"failed_count", result.FailedCount,
	)
	return nil
}

// Sweep is the reconciliation pass: release crashed claims, then process
// every due pending broadcast up to limit, oldest first. There is no
// lookback window; a row missed for days still fires on the next sweep.
func (s *Service) Sweep(ctx context.Context, limit int) (*SweepResult, error) {
	now := time.Now().UTC()

	released, err := s.store.ReleaseStale(ctx, now.Add(-staleClaimAge))
	if err != nil {
		return nil, fmt.Errorf("release stale claims: %w", err)
	}
	if released > 0 {
		slog.Warn("scheduler: released stale claims", "count", released)
	}

	due, err := s.store.DuePending(ctx, now, limit)
	if err != nil {
		return nil, fmt.Errorf("list due broadcasts: %w", err)
	}

	res := &SweepResult{}
	for _, row := range due {
		if err := s.ProcessDue(ctx, row.ID); err != nil {
			res.Failed++
			slog.Warn("scheduler: sweep process failed", "scheduled_id", row.ID, "err", err)
			continue
		}
		res.Processed++
	}

	if len(due) > 0 {
		// Due rows found by the sweep mean the timer path missed them,
		// usually a restart or a failed wake event.
		slog.Warn("scheduler: sweep found due broadcasts",
			"due", len(due),
			"processed", res.Processed,
			"failed", res.Failed,
		)
	}

	res.Remaining, err = s.store.CountDuePending(ctx, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("count remaining broadcasts: %w", err)
	}
	return res, nil
}
