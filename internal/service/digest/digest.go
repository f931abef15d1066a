// Package digest assembles the daily unread email summary. One run walks
// every active user, collects the unread notifications from the window that
// were never emailed, and sends a single summary message per user.
package digest

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/rchdlps/gerenciador-projetos-sub002/internal/service/audience"
	"github.com/rchdlps/gerenciador-projetos-sub002/internal/service/notification"
	"github.com/rchdlps/gerenciador-projetos-sub002/pkg/email"
)

// Store is the slice of the notification store the digest needs.
type Store interface {
	DigestItems(ctx context.Context, userID uuid.UUID, since time.Time) ([]*notification.Notification, error)
	MarkEmailed(ctx context.Context, ids []uuid.UUID) error
}

// Directory lists the users eligible for a digest.
type Directory interface {
	ActiveUsers(ctx context.Context) ([]audience.ActiveUser, error)
}

// Mailer sends one digest message.
type Mailer interface {
	Send(ctx context.Context, m email.Message) error
}

// Result reports one digest run.
type Result struct {
	UsersChecked int
	EmailsSent   int
	Failures     int
}

type Job struct {
	store   Store
	dir     Directory
	mailer  Mailer
	window  time.Duration
	appName string
	baseURL string
}

func NewJob(store Store, dir Directory, mailer Mailer, window time.Duration, appName, baseURL string) *Job {
	if window <= 0 {
		window = 24 * time.Hour
	}
	return &Job{
		store:   store,
		dir:     dir,
		mailer:  mailer,
		window:  window,
		appName: appName,
		baseURL: baseURL,
	}
}

// Run executes one digest pass. Users with no eligible items are skipped.
// Notifications are marked emailed only after the message goes out, so a
// failed send leaves them eligible for the next run. Per-user failures do
// not stop the pass.
func (j *Job) Run(ctx context.Context) (*Result, error) {
	users, err := j.dir.ActiveUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("digest: list active users: %w", err)
	}

	since := time.Now().UTC().Add(-j.window)
	res := &Result{UsersChecked: len(users)}

	for _, u := range users {
		sent, err := j.runForUser(ctx, u, since)
		if err != nil {
			res.Failures++
			slog.Warn("digest: user failed", "user_id", u.ID, "err", err)
			continue
		}
		if sent {
			res.EmailsSent++
		}
	}

	slog.Info("digest: run complete",
		"users_checked", res.UsersChecked,
		"emails_sent", res.EmailsSent,
		"failures", res.Failures,
	)
	return res, nil
}

func (j *Job) runForUser(ctx context.Context, u audience.ActiveUser, since time.Time) (bool, error) {
	items, err := j.store.DigestItems(ctx, u.ID, since)
	if err != nil {
		return false, fmt.Errorf("collect items: %w", err)
	}
	if len(items) == 0 {
		return false, nil
	}

	data := email.DigestEmailData{
		Name:    u.Name,
		Email:   u.Email,
		AppName: j.appName,
		BaseURL: j.baseURL,
	}
	ids := make([]uuid.UUID, 0, len(items))
	for _, it := range items {
		data.Items = append(data.Items, email.DigestItem{
			Title:     it.Title,
			Message:   it.Message,
			CreatedAt: it.CreatedAt,
		})
		ids = append(ids, it.ID)
	}

	if err := j.mailer.Send(ctx, email.BuildDailyDigestEmail(data)); err != nil {
		return false, fmt.Errorf("send digest: %w", err)
	}

	if err := j.store.MarkEmailed(ctx, ids); err != nil {
		// The email went out; the items will reappear in tomorrow's
		// digest. Worth logging, not worth failing the user.
		slog.Warn("digest: mark emailed failed", "user_id", u.ID, "err", err)
	}
	return true, nil
}
