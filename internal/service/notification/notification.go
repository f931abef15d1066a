package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/rchdlps/gerenciador-projetos-sub002/internal/repo"
	entnotif "github.com/rchdlps/gerenciador-projetos-sub002/internal/repo/notification"
	"github.com/rchdlps/gerenciador-projetos-sub002/internal/repo/predicate"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

// Notification is the plain representation returned by the service. The
// layers above (emitter, broadcast fan-out, handlers, workers) only ever see
// this type, never the generated row.
type Notification struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Type        string
	Title       string
	Message     string
	Data        map[string]any
	IsRead      bool
	IsEmailSent bool
	CreatedAt   time.Time
}

type CreateRequest struct {
	UserID  uuid.UUID
	Type    string // activity | system
	Title   string
	Message string
	Data    map[string]any
}

// Filter narrows a List call. Zero values mean "no constraint".
type Filter struct {
	Status string // all | unread | read
	Type   string // all | activity | system
	Search string // case-insensitive substring over title+message
	From   *time.Time
	To     *time.Time
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Notification, error)
	List(ctx context.Context, userID uuid.UUID, f Filter, limit, offset int) ([]*Notification, int, error)
	UnreadCount(ctx context.Context, userID uuid.UUID) (int, error)
	MarkRead(ctx context.Context, notifID, userID uuid.UUID) (bool, error)
	MarkAllRead(ctx context.Context, userID uuid.UUID) error
	MarkSelectedRead(ctx context.Context, ids []uuid.UUID, userID uuid.UUID) error
	DigestItems(ctx context.Context, userID uuid.UUID, since time.Time) ([]*Notification, error)
	MarkEmailed(ctx context.Context, ids []uuid.UUID) error
	PurgeOlderThan(ctx context.Context, days int) (int, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type notificationService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &notificationService{db: db}
}

func (s *notificationService) Create(ctx context.Context, req CreateRequest) (*Notification, error) {
	c := s.db.Notification.Create().
		SetUserID(req.UserID).
		SetType(entnotif.Type(req.Type)).
		SetTitle(req.Title).
		SetMessage(req.Message)

	if req.Data != nil {
		raw, err := json.Marshal(req.Data)
		if err != nil {
			return nil, fmt.Errorf("marshal notification data: %w", err)
		}
		c = c.SetData(string(raw))
	}

	n, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create notification: %w", err)
	}
	return fromRow(n), nil
}

func (s *notificationService) List(ctx context.Context, userID uuid.UUID, f Filter, limit, offset int) ([]*Notification, int, error) {
	if limit < 1 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	preds := []predicate.Notification{entnotif.UserID(userID)}

	switch f.Status {
	case "unread":
		preds = append(preds, entnotif.IsRead(false))
	case "read":
		preds = append(preds, entnotif.IsRead(true))
	}

	if f.Type == "activity" || f.Type == "system" {
		preds = append(preds, entnotif.TypeEQ(entnotif.Type(f.Type)))
	}

	if f.Search != "" {
		preds = append(preds, entnotif.Or(
			entnotif.TitleContainsFold(f.Search),
			entnotif.MessageContainsFold(f.Search),
		))
	}

	if f.From != nil {
		preds = append(preds, entnotif.CreatedAtGTE(*f.From))
	}
	if f.To != nil {
		preds = append(preds, entnotif.CreatedAtLTE(*f.To))
	}

	q := s.db.Notification.Query().Where(preds...)

	total, err := q.Clone().Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("count notifications: %w", err)
	}

	rows, err := q.
		Order(entnotif.ByCreatedAt(sql.OrderDesc())).
		Offset(offset).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("list notifications: %w", err)
	}

	return fromRows(rows), total, nil
}

func (s *notificationService) UnreadCount(ctx context.Context, userID uuid.UUID) (int, error) {
	n, err := s.db.Notification.Query().
		Where(entnotif.UserID(userID), entnotif.IsRead(false)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count unread: %w", err)
	}
	return n, nil
}

// MarkRead flips is_read for a row owned by the user. The bool reports
// whether a row actually changed; marking an already-read row is a no-op,
// not an error. A row that does not exist, or belongs to someone else,
// is ErrNotFound.
func (s *notificationService) MarkRead(ctx context.Context, notifID, userID uuid.UUID) (bool, error) {
	n, err := s.db.Notification.Update().
		Where(
			entnotif.ID(notifID),
			entnotif.UserID(userID),
			entnotif.IsRead(false),
		).
		SetIsRead(true).
		Save(ctx)
	if err != nil {
		return false, fmt.Errorf("mark read: %w", err)
	}
	if n > 0 {
		return true, nil
	}

	exists, err := s.db.Notification.Query().
		Where(entnotif.ID(notifID), entnotif.UserID(userID)).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("mark read: %w", err)
	}
	if !exists {
		return false, ErrNotFound
	}
	return false, nil
}

func (s *notificationService) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	err := s.db.Notification.Update().
		Where(entnotif.UserID(userID), entnotif.IsRead(false)).
		SetIsRead(true).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("mark all read: %w", err)
	}
	return nil
}

// MarkSelectedRead marks the listed ids read; ids not owned by the user are
// silently ignored.
func (s *notificationService) MarkSelectedRead(ctx context.Context, ids []uuid.UUID, userID uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	err := s.db.Notification.Update().
		Where(
			entnotif.IDIn(ids...),
			entnotif.UserID(userID),
			entnotif.IsRead(false),
		).
		SetIsRead(true).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("mark selected read: %w", err)
	}
	return nil
}

func (s *notificationService) DigestItems(ctx context.Context, userID uuid.UUID, since time.Time) ([]*Notification, error) {
	rows, err := s.db.Notification.Query().
		Where(
			entnotif.UserID(userID),
			entnotif.IsEmailSent(false),
			entnotif.CreatedAtGTE(since),
		).
		Order(entnotif.ByCreatedAt(sql.OrderDesc())).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("digest items: %w", err)
	}
	return fromRows(rows), nil
}

func (s *notificationService) MarkEmailed(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	err := s.db.Notification.Update().
		Where(entnotif.IDIn(ids...)).
		SetIsEmailSent(true).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("mark emailed: %w", err)
	}
	return nil
}

func (s *notificationService) PurgeOlderThan(ctx context.Context, days int) (int, error) {
	if days <= 0 {
		days = 90
	}
	cutoff := time.Now().AddDate(0, 0, -days)

	n, err := s.db.Notification.Delete().
		Where(entnotif.CreatedAtLT(cutoff)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("purge notifications: %w", err)
	}
	return n, nil
}

// ---------------------------------------------------------------------------
// Row mapping
// ---------------------------------------------------------------------------

func fromRow(n *repo.Notification) *Notification {
	out := &Notification{
		ID:          n.ID,
		UserID:      n.UserID,
		Type:        string(n.Type),
		Title:       n.Title,
		Message:     n.Message,
		IsRead:      n.IsRead,
		IsEmailSent: n.IsEmailSent,
		CreatedAt:   n.CreatedAt,
	}
	if n.Data != nil && *n.Data != "" {
		var data map[string]any
		if err := json.Unmarshal([]byte(*n.Data), &data); err == nil {
			out.Data = data
		}
	}
	return out
}

func fromRows(rows []*repo.Notification) []*Notification {
	out := make([]*Notification, 0, len(rows))
	for _, r := range rows {
		out = append(out, fromRow(r))
	}
	return out
}
