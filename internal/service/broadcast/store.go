package broadcast

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/rchdlps/gerenciador-projetos-sub002/internal/repo"
	"github.com/rchdlps/gerenciador-projetos-sub002/internal/repo/notificationsendlog"
)

type entStore struct {
	db *repo.Client
}

// NewStore builds the database-backed send log store.
func NewStore(db *repo.Client) Store {
	return &entStore{db: db}
}

func (s *entStore) CreateSendLog(ctx context.Context, req CreateLogRequest) (*SendLog, error) {
	create := s.db.NotificationSendLog.Create().
		SetCreatorID(req.CreatorID).
		SetTitle(req.Title).
		SetMessage(req.Message).
		SetType(notificationsendlog.Type(req.Type)).
		SetPriority(notificationsendlog.Priority(req.Priority)).
		SetTargetType(notificationsendlog.TargetType(req.TargetType)).
		SetTargetCount(req.TargetCount).
		SetSentCount(req.SentCount).
		SetFailedCount(req.FailedCount).
		SetSentAt(req.SentAt)
	if req.OrganizationID != nil {
		create.SetOrganizationID(*req.OrganizationID)
	}
	if req.Link != "" {
		create.SetLink(req.Link)
	}

	row, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create send log: %w", err)
	}
	return logFromRow(row), nil
}

func (s *entStore) History(ctx context.Context, limit, offset int) ([]*SendLog, int, error) {
	q := s.db.NotificationSendLog.Query()

	total, err := q.Clone().Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("count send logs: %w", err)
	}

	rows, err := q.
		Order(repo.Desc(notificationsendlog.FieldSentAt)).
		Limit(limit).
		Offset(offset).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("list send logs: %w", err)
	}

	out := make([]*SendLog, 0, len(rows))
	for _, row := range rows {
		out = append(out, logFromRow(row))
	}
	return out, total, nil
}

func (s *entStore) GetSendLog(ctx context.Context, id uuid.UUID) (*SendLog, error) {
	row, err := s.db.NotificationSendLog.Get(ctx, id)
	if repo.IsNotFound(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get send log: %w", err)
	}
	return logFromRow(row), nil
}

func (s *entStore) Stats(ctx context.Context, since time.Time) (*Stats, error) {
	var agg []struct {
		Count       int           `json:"count"`
		TargetCount sql.NullInt64 `json:"target_count"`
		SentCount   sql.NullInt64 `json:"sent_count"`
		FailedCount sql.NullInt64 `json:"failed_count"`
	}
	err := s.db.NotificationSendLog.Query().
		Where(notificationsendlog.SentAtGTE(since)).
		Aggregate(
			repo.Count(),
			repo.As(repo.Sum(notificationsendlog.FieldTargetCount), "target_count"),
			repo.As(repo.Sum(notificationsendlog.FieldSentCount), "sent_count"),
			repo.As(repo.Sum(notificationsendlog.FieldFailedCount), "failed_count"),
		).
		Scan(ctx, &agg)
	if err != nil {
		return nil, fmt.Errorf("aggregate send logs: %w", err)
	}
	if len(agg) == 0 {
		return &Stats{}, nil
	}
	return &Stats{
		Broadcasts:  agg[0].Count,
		TargetCount: int(agg[0].TargetCount.Int64),
		SentCount:   int(agg[0].SentCount.Int64),
		FailedCount: int(agg[0].FailedCount.Int64),
	}, nil
}

func logFromRow(row *repo.NotificationSendLog) *SendLog {
	l := &SendLog{
		ID:          row.ID,
		CreatorID:   row.CreatorID,
		Title:       row.Title,
		Message:     row.Message,
		Type:        string(row.Type),
		Priority:    string(row.Priority),
		TargetType:  string(row.TargetType),
		TargetCount: row.TargetCount,
		SentCount:   row.SentCount,
		FailedCount: row.FailedCount,
		SentAt:      row.SentAt,
	}
	if row.OrganizationID != nil {
		id := *row.OrganizationID
		l.OrganizationID = &id
	}
	if row.Link != nil {
		l.Link = *row.Link
	}
	return l
}
