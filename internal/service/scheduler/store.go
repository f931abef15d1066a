package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/rchdlps/gerenciador-projetos-sub002/internal/repo"
	"github.com/rchdlps/gerenciador-projetos-sub002/internal/repo/schedulednotification"
)

type entStore struct {
	db *repo.Client
}

// NewStore builds the database-backed scheduled broadcast store.
func NewStore(db *repo.Client) Store {
	return &entStore{db: db}
}

func (s *entStore) Create(ctx context.Context, req ScheduleRequest) (*Scheduled, error) {
	create := s.db.ScheduledNotification.Create().
		SetCreatorID(req.CreatorID).
		SetTargetType(schedulednotification.TargetType(req.Target.Type)).
		SetTargetIds(req.Target.IDs).
		SetTitle(req.Title).
		SetMessage(req.Message).
		SetType(schedulednotification.Type(req.Type)).
		SetScheduledFor(req.ScheduledFor)
	if req.Target.OrganizationID != nil {
		create.SetOrganizationID(*req.Target.OrganizationID)
	}
	if req.Priority != "" {
		create.SetPriority(schedulednotification.Priority(req.Priority))
	}
	if req.Link != "" {
		create.SetLink(req.Link)
	}

	row, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create scheduled broadcast: %w", err)
	}
	return scheduledFromRow(row), nil
}

func (s *entStore) Get(ctx context.Context, id uuid.UUID) (*Scheduled, error) {
	row, err := s.db.ScheduledNotification.Get(ctx, id)
	if repo.IsNotFound(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get scheduled broadcast: %w", err)
	}
	return scheduledFromRow(row), nil
}

func (s *entStore) List(ctx context.Context, f ListFilter, limit, offset int) ([]*Scheduled, int, error) {
	q := s.db.ScheduledNotification.Query()
	if f.Status != "" && f.Status != "all" {
		q = q.Where(schedulednotification.StatusEQ(schedulednotification.Status(f.Status)))
	}
	if f.CreatorID != nil {
		q = q.Where(schedulednotification.CreatorID(*f.CreatorID))
	}

	total, err := q.Clone().Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("count scheduled broadcasts: %w", err)
	}

	rows, err := q.
		Order(repo.Asc(schedulednotification.FieldScheduledFor)).
		Limit(limit).
		Offset(offset).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("list scheduled broadcasts: %w", err)
	}
	return scheduledFromRows(rows), total, nil
}

func (s *entStore) ListPending(ctx context.Context) ([]*Scheduled, error) {
	rows, err := s.db.ScheduledNotification.Query().
		Where(schedulednotification.StatusEQ(schedulednotification.StatusPending)).
		Order(repo.Asc(schedulednotification.FieldScheduledFor)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list pending broadcasts: %w", err)
	}
	return scheduledFromRows(rows), nil
}

func (s *entStore) DuePending(ctx context.Context, now time.Time, limit int) ([]*Scheduled, error) {
	q := s.db.ScheduledNotification.Query().
		Where(
			schedulednotification.StatusEQ(schedulednotification.StatusPending),
			schedulednotification.ScheduledForLTE(now),
		).
		Order(repo.Asc(schedulednotification.FieldScheduledFor))
	if limit > 0 {
		q = q.Limit(limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list due broadcasts: %w", err)
	}
	return scheduledFromRows(rows), nil
}

func (s *entStore) CountDuePending(ctx context.Context, now time.Time) (int, error) {
	n, err := s.db.ScheduledNotification.Query().
		Where(
			schedulednotification.StatusEQ(schedulednotification.StatusPending),
			schedulednotification.ScheduledForLTE(now),
		).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count due broadcasts: %w", err)
	}
	return n, nil
}

func (s *entStore) ReleaseStale(ctx context.Context, staleBefore time.Time) (int, error) {
	n, err := s.db.ScheduledNotification.Update().
		Where(
			schedulednotification.StatusEQ(schedulednotification.StatusProcessing),
			schedulednotification.UpdatedAtLT(staleBefore),
		).
		SetStatus(schedulednotification.StatusPending).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("release stale claims: %w", err)
	}
	return n, nil
}

func (s *entStore) ClaimPending(ctx context.Context, id uuid.UUID) (bool, error) {
	n, err := s.db.ScheduledNotification.Update().
		Where(
			schedulednotification.ID(id),
			schedulednotification.StatusEQ(schedulednotification.StatusPending),
		).
		SetStatus(schedulednotification.StatusProcessing).
		Save(ctx)
	if err != nil {
		return false, fmt.Errorf("claim broadcast: %w", err)
	}
	return n > 0, nil
}

func (s *entStore) MarkSent(ctx context.Context, id uuid.UUID, at time.Time) (bool, error) {
	n, err := s.db.ScheduledNotification.Update().
		Where(
			schedulednotification.ID(id),
			schedulednotification.StatusEQ(schedulednotification.StatusProcessing),
		).
		SetStatus(schedulednotification.StatusSent).
		SetSentAt(at).
		Save(ctx)
	if err != nil {
		return false, fmt.Errorf("mark broadcast sent: %w", err)
	}
	return n > 0, nil
}

func (s *entStore) MarkFailed(ctx context.Context, id uuid.UUID, reason string) (bool, error) {
	n, err := s.db.ScheduledNotification.Update().
		Where(
			schedulednotification.ID(id),
			schedulednotification.StatusEQ(schedulednotification.StatusProcessing),
		).
		SetStatus(schedulednotification.StatusFailed).
		SetFailureReason(reason).
		Save(ctx)
	if err != nil {
		return false, fmt.Errorf("mark broadcast failed: %w", err)
	}
	return n > 0, nil
}

func (s *entStore) CancelPending(ctx context.Context, id, creatorID uuid.UUID) (bool, error) {
	n, err := s.db.ScheduledNotification.Update().
		Where(
			schedulednotification.ID(id),
			schedulednotification.CreatorID(creatorID),
			schedulednotification.StatusEQ(schedulednotification.StatusPending),
		).
		SetStatus(schedulednotification.StatusCancelled).
		Save(ctx)
	if err != nil {
		return false, fmt.Errorf("cancel broadcast: %w", err)
	}
	return n > 0, nil
}

func (s *entStore) UpdatePending(ctx context.Context, id, creatorID uuid.UUID, req UpdateRequest) (bool, error) {
	update := s.db.ScheduledNotification.Update().
		Where(
			schedulednotification.ID(id),
			schedulednotification.CreatorID(creatorID),
			schedulednotification.StatusEQ(schedulednotification.StatusPending),
		)
	if req.Title != nil {
		update.SetTitle(*req.Title)
	}
	if req.Message != nil {
		update.SetMessage(*req.Message)
	}
	if req.Priority != nil {
		update.SetPriority(schedulednotification.Priority(*req.Priority))
	}
	if req.Link != nil {
		if *req.Link == "" {
			update.ClearLink()
		} else {
			update.SetLink(*req.Link)
		}
	}
	if req.ScheduledFor != nil {
		update.SetScheduledFor(*req.ScheduledFor)
	}

	n, err := update.Save(ctx)
	if err != nil {
		return false, fmt.Errorf("update scheduled broadcast: %w", err)
	}
	return n > 0, nil
}

func scheduledFromRow(row *repo.ScheduledNotification) *Scheduled {
	s := &Scheduled{
		ID:           row.ID,
		CreatorID:    row.CreatorID,
		TargetType:   string(row.TargetType),
		TargetIDs:    row.TargetIds,
		Title:        row.Title,
		Message:      row.Message,
		Type:         string(row.Type),
		Priority:     string(row.Priority),
		ScheduledFor: row.ScheduledFor,
		Status:       string(row.Status),
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
	if row.OrganizationID != nil {
		id := *row.OrganizationID
		s.OrganizationID = &id
	}
	if row.Link != nil {
		s.Link = *row.Link
	}
	if row.FailureReason != nil {
		s.FailureReason = *row.FailureReason
	}
	if row.SentAt != nil {
		at := *row.SentAt
		s.SentAt = &at
	}
	return s
}

func scheduledFromRows(rows []*repo.ScheduledNotification) []*Scheduled {
	out := make([]*Scheduled, 0, len(rows))
	for _, row := range rows {
		out = append(out, scheduledFromRow(row))
	}
	return out
}
