package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/rchdlps/gerenciador-projetos-sub002/internal/api/http/middleware"
	"github.com/rchdlps/gerenciador-projetos-sub002/internal/service/notification"
)

type NotificationHandler struct {
	svc notification.Service
}

func NewNotificationHandler(svc notification.Service) *NotificationHandler {
	return &NotificationHandler{svc: svc}
}

func mapNotificationError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, notification.ErrNotFound):
		return notFound(c, err.Error())
	default:
		return internalError(c)
	}
}

type notificationView struct {
	ID          uuid.UUID      `json:"id"`
	Type        string         `json:"type"`
	Title       string         `json:"title"`
	Message     string         `json:"message"`
	Data        map[string]any `json:"data,omitempty"`
	IsRead      bool           `json:"is_read"`
	IsEmailSent bool           `json:"is_email_sent"`
	CreatedAt   time.Time      `json:"created_at"`
}

func notificationViews(notifs []*notification.Notification) []notificationView {
	out := make([]notificationView, 0, len(notifs))
	for _, n := range notifs {
		out = append(out, notificationView{
			ID:          n.ID,
			Type:        n.Type,
			Title:       n.Title,
			Message:     n.Message,
			Data:        n.Data,
			IsRead:      n.IsRead,
			IsEmailSent: n.IsEmailSent,
			CreatedAt:   n.CreatedAt,
		})
	}
	return out
}

// GET /notifications
func (h *NotificationHandler) List(c fiber.Ctx) error {
	claims, claimsOK := middleware.ClaimsFromFiber(c)
	if !claimsOK {
		return unauthorized(c)
	}

	var q struct {
		Status  string `query:"status"`
		Type    string `query:"type"`
		Search  string `query:"search"`
		From    string `query:"from"`
		To      string `query:"to"`
		Page    int    `query:"page"`
		PerPage int    `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	f := notification.Filter{
		Status: q.Status,
		Type:   q.Type,
		Search: q.Search,
	}
	if q.From != "" {
		t, err := time.Parse(time.RFC3339, q.From)
		if err != nil {
			return badRequest(c, "invalid from timestamp")
		}
		f.From = &t
	}
	if q.To != "" {
		t, err := time.Parse(time.RFC3339, q.To)
		if err != nil {
			return badRequest(c, "invalid to timestamp")
		}
		f.To = &t
	}

	limit, offset := pageToRange(q.Page, q.PerPage)
	notifs, total, err := h.svc.List(c.Context(), claims.UserID, f, limit, offset)
	if err != nil {
		return mapNotificationError(c, err)
	}

	return ok(c, fiber.Map{
		"items": notificationViews(notifs),
		"total": total,
	})
}

// GET /notifications/unread-count
func (h *NotificationHandler) UnreadCount(c fiber.Ctx) error {
	claims, claimsOK := middleware.ClaimsFromFiber(c)
	if !claimsOK {
		return unauthorized(c)
	}

	count, err := h.svc.UnreadCount(c.Context(), claims.UserID)
	if err != nil {
		return mapNotificationError(c, err)
	}
	return ok(c, fiber.Map{"count": count})
}

// PATCH /notifications/:id/read
func (h *NotificationHandler) MarkRead(c fiber.Ctx) error {
	claims, claimsOK := middleware.ClaimsFromFiber(c)
	if !claimsOK {
		return unauthorized(c)
	}

	notifID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid notification id")
	}

	// Marking an already-read notification reports success; only a
	// notification that is not yours or does not exist is a 404.
	if _, err := h.svc.MarkRead(c.Context(), notifID, claims.UserID); err != nil {
		return mapNotificationError(c, err)
	}

	return noContent(c)
}

// PATCH /notifications/read-all
func (h *NotificationHandler) MarkAllRead(c fiber.Ctx) error {
	claims, claimsOK := middleware.ClaimsFromFiber(c)
	if !claimsOK {
		return unauthorized(c)
	}

	if err := h.svc.MarkAllRead(c.Context(), claims.UserID); err != nil {
		return mapNotificationError(c, err)
	}
	return noContent(c)
}

// PATCH /notifications/read-selected
func (h *NotificationHandler) MarkSelectedRead(c fiber.Ctx) error {
	claims, claimsOK := middleware.ClaimsFromFiber(c)
	if !claimsOK {
		return unauthorized(c)
	}

	var body struct {
		IDs []string `json:"ids"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if len(body.IDs) == 0 {
		return badRequest(c, "ids is required")
	}

	ids := make([]uuid.UUID, 0, len(body.IDs))
	for _, raw := range body.IDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return badRequest(c, "invalid notification id")
		}
		ids = append(ids, id)
	}

	if err := h.svc.MarkSelectedRead(c.Context(), ids, claims.UserID); err != nil {
		return mapNotificationError(c, err)
	}
	return noContent(c)
}

func pageToRange(page, perPage int) (limit, offset int) {
	if perPage <= 0 || perPage > 100 {
		perPage = 20
	}
	if page <= 0 {
		page = 1
	}
	return perPage, (page - 1) * perPage
}
