package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/rchdlps/gerenciador-projetos-sub002/internal/api/http/middleware"
	"github.com/rchdlps/gerenciador-projetos-sub002/internal/service/audience"
	"github.com/rchdlps/gerenciador-projetos-sub002/internal/service/broadcast"
	"github.com/rchdlps/gerenciador-projetos-sub002/internal/service/notification"
	"github.com/rchdlps/gerenciador-projetos-sub002/internal/service/scheduler"
)

// AdminNotificationHandler is the super-admin broadcast surface: immediate
// sends, scheduling, history and stats.
type AdminNotificationHandler struct {
	broadcaster *broadcast.Service
	sched       *scheduler.Service
	emitter     *notification.Emitter
}

func NewAdminNotificationHandler(
	broadcaster *broadcast.Service,
	sched *scheduler.Service,
	emitter *notification.Emitter,
) *AdminNotificationHandler {
	return &AdminNotificationHandler{
		broadcaster: broadcaster,
		sched:       sched,
		emitter:     emitter,
	}
}

func mapAdminError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, broadcast.ErrNoRecipients):
		return unprocessable(c, "target resolved to no recipients")
	case errors.Is(err, broadcast.ErrNotFound), errors.Is(err, scheduler.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, scheduler.ErrNotPending):
		return conflict(c, "broadcast is no longer pending")
	default:
		return internalError(c)
	}
}

// broadcastBody is the shared payload of send and schedule requests.
type broadcastBody struct {
	TargetType     string   `json:"target_type"`
	TargetIDs      []string `json:"target_ids"`
	OrganizationID string   `json:"organization_id"`
	Title          string   `json:"title"`
	Message        string   `json:"message"`
	Type           string   `json:"type"`
	Priority       string   `json:"priority"`
	Link           string   `json:"link"`
}

func (b *broadcastBody) validate() (audience.Target, error) {
	if b.Title == "" || b.Message == "" {
		return audience.Target{}, errors.New("title and message are required")
	}
	if b.Type == "" {
		b.Type = "system"
	}
	if b.Type != "activity" && b.Type != "system" {
		return audience.Target{}, errors.New("type must be activity or system")
	}
	if b.Priority == "" {
		b.Priority = "normal"
	}
	switch b.Priority {
	case "normal", "high", "urgent":
	default:
		return audience.Target{}, errors.New("priority must be normal, high or urgent")
	}

	tt, err := audience.ParseTargetType(b.TargetType)
	if err != nil {
		return audience.Target{}, err
	}
	target := audience.Target{Type: tt, IDs: b.TargetIDs}
	if b.OrganizationID != "" {
		orgID, err := uuid.Parse(b.OrganizationID)
		if err != nil {
			return audience.Target{}, errors.New("invalid organization_id")
		}
		target.OrganizationID = &orgID
	}
	return target, nil
}

// POST /admin/notifications/send
func (h *AdminNotificationHandler) Send(c fiber.Ctx) error {
	claims, claimsOK := middleware.ClaimsFromFiber(c)
	if !claimsOK {
		return unauthorized(c)
	}

	var body broadcastBody
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	target, err := body.validate()
	if err != nil {
		return badRequest(c, err.Error())
	}

	result, err := h.broadcaster.Send(c.Context(), broadcast.SendRequest{
		CreatorID: claims.UserID,
		Target:    target,
		Title:     body.Title,
		Message:   body.Message,
		Type:      body.Type,
		Priority:  body.Priority,
		Link:      body.Link,
	})
	if err != nil {
		return mapAdminError(c, err)
	}

	return ok(c, fiber.Map{
		"send_log_id":  result.SendLogID,
		"target_count": result.TargetCount,
		"sent_count":   result.SentCount,
		"failed_count": result.FailedCount,
	})
}

// POST /notifications/system
func (h *AdminNotificationHandler) Announce(c fiber.Ctx) error {
	var body struct {
		Title   string         `json:"title"`
		Message string         `json:"message"`
		Data    map[string]any `json:"data"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Title == "" || body.Message == "" {
		return badRequest(c, "title and message are required")
	}

	if err := h.emitter.EmitSystemAnnouncement(c.Context(), body.Title, body.Message, body.Data); err != nil {
		return mapAdminError(c, err)
	}
	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{"data": fiber.Map{"queued": true}})
}

type scheduledView struct {
	ID             uuid.UUID  `json:"id"`
	CreatorID      uuid.UUID  `json:"creator_id"`
	OrganizationID *uuid.UUID `json:"organization_id,omitempty"`
	TargetType     string     `json:"target_type"`
	TargetIDs      []string   `json:"target_ids,omitempty"`
	Title          string     `json:"title"`
	Message        string     `json:"message"`
	Type           string     `json:"type"`
	Priority       string     `json:"priority"`
	Link           string     `json:"link,omitempty"`
	ScheduledFor   time.Time  `json:"scheduled_for"`
	Status         string     `json:"status"`
	FailureReason  string     `json:"failure_reason,omitempty"`
	SentAt         *time.Time `json:"sent_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

func scheduledToView(s *scheduler.Scheduled) scheduledView {
	return scheduledView{
		ID:             s.ID,
		CreatorID:      s.CreatorID,
		OrganizationID: s.OrganizationID,
		TargetType:     s.TargetType,
		TargetIDs:      s.TargetIDs,
		Title:          s.Title,
		Message:        s.Message,
		Type:           s.Type,
		Priority:       s.Priority,
		Link:           s.Link,
		ScheduledFor:   s.ScheduledFor,
		Status:         s.Status,
		FailureReason:  s.FailureReason,
		SentAt:         s.SentAt,
		CreatedAt:      s.CreatedAt,
	}
}

// POST /admin/notifications/schedule
func (h *AdminNotificationHandler) Schedule(c fiber.Ctx) error {
	claims, claimsOK := middleware.ClaimsFromFiber(c)
	if !claimsOK {
		return unauthorized(c)
	}

	var body struct {
		broadcastBody
		ScheduledFor string `json:"scheduled_for"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	target, err := body.validate()
	if err != nil {
		return badRequest(c, err.Error())
	}
	scheduledFor, err := time.Parse(time.RFC3339, body.ScheduledFor)
	if err != nil {
		return badRequest(c, "invalid scheduled_for timestamp")
	}

	row, err := h.sched.Schedule(c.Context(), scheduler.ScheduleRequest{
		CreatorID:    claims.UserID,
		Target:       target,
		Title:        body.Title,
		Message:      body.Message,
		Type:         body.Type,
		Priority:     body.Priority,
		Link:         body.Link,
		ScheduledFor: scheduledFor.UTC(),
	})
	if err != nil {
		return mapAdminError(c, err)
	}
	return created(c, scheduledToView(row))
}

// GET /admin/notifications/scheduled
func (h *AdminNotificationHandler) ListScheduled(c fiber.Ctx) error {
	var q struct {
		Status  string `query:"status"`
		Page    int    `query:"page"`
		PerPage int    `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	limit, offset := pageToRange(q.Page, q.PerPage)
	rows, total, err := h.sched.List(c.Context(), scheduler.ListFilter{Status: q.Status}, limit, offset)
	if err != nil {
		return mapAdminError(c, err)
	}

	items := make([]scheduledView, 0, len(rows))
	for _, row := range rows {
		items = append(items, scheduledToView(row))
	}
	return ok(c, fiber.Map{"items": items, "total": total})
}

// PATCH /admin/notifications/scheduled/:id
func (h *AdminNotificationHandler) UpdateScheduled(c fiber.Ctx) error {
	claims, claimsOK := middleware.ClaimsFromFiber(c)
	if !claimsOK {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid broadcast id")
	}

	var body struct {
		Title        *string `json:"title"`
		Message      *string `json:"message"`
		Priority     *string `json:"priority"`
		Link         *string `json:"link"`
		ScheduledFor *string `json:"scheduled_for"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	req := scheduler.UpdateRequest{
		Title:    body.Title,
		Message:  body.Message,
		Priority: body.Priority,
		Link:     body.Link,
	}
	if body.ScheduledFor != nil {
		t, err := time.Parse(time.RFC3339, *body.ScheduledFor)
		if err != nil {
			return badRequest(c, "invalid scheduled_for timestamp")
		}
		utc := t.UTC()
		req.ScheduledFor = &utc
	}

	row, err := h.sched.Update(c.Context(), id, claims.UserID, req)
	if err != nil {
		return mapAdminError(c, err)
	}
	return ok(c, scheduledToView(row))
}

// DELETE /admin/notifications/scheduled/:id
func (h *AdminNotificationHandler) CancelScheduled(c fiber.Ctx) error {
	claims, claimsOK := middleware.ClaimsFromFiber(c)
	if !claimsOK {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid broadcast id")
	}

	if err := h.sched.Cancel(c.Context(), id, claims.UserID); err != nil {
		return mapAdminError(c, err)
	}
	return noContent(c)
}

type sendLogView struct {
	ID             uuid.UUID  `json:"id"`
	CreatorID      uuid.UUID  `json:"creator_id"`
	OrganizationID *uuid.UUID `json:"organization_id,omitempty"`
	Title          string     `json:"title"`
	Message        string     `json:"message"`
	Type           string     `json:"type"`
	Priority       string     `json:"priority"`
	Link           string     `json:"link,omitempty"`
	TargetType     string     `json:"target_type"`
	TargetCount    int        `json:"target_count"`
	SentCount      int        `json:"sent_count"`
	FailedCount    int        `json:"failed_count"`
	SentAt         time.Time  `json:"sent_at"`
}

func sendLogToView(l *broadcast.SendLog) sendLogView {
	return sendLogView{
		ID:             l.ID,
		CreatorID:      l.CreatorID,
		OrganizationID: l.OrganizationID,
		Title:          l.Title,
		Message:        l.Message,
		Type:           l.Type,
		Priority:       l.Priority,
		Link:           l.Link,
		TargetType:     l.TargetType,
		TargetCount:    l.TargetCount,
		SentCount:      l.SentCount,
		FailedCount:    l.FailedCount,
		SentAt:         l.SentAt,
	}
}

// GET /admin/notifications/history
func (h *AdminNotificationHandler) History(c fiber.Ctx) error {
	var q struct {
		Page    int `query:"page"`
		PerPage int `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	limit, offset := pageToRange(q.Page, q.PerPage)
	logs, total, err := h.broadcaster.History(c.Context(), limit, offset)
	if err != nil {
		return mapAdminError(c, err)
	}

	items := make([]sendLogView, 0, len(logs))
	for _, l := range logs {
		items = append(items, sendLogToView(l))
	}
	return ok(c, fiber.Map{"items": items, "total": total})
}

// GET /admin/notifications/history/:id/stats
func (h *AdminNotificationHandler) HistoryStats(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid send log id")
	}

	l, err := h.broadcaster.Get(c.Context(), id)
	if err != nil {
		return mapAdminError(c, err)
	}
	return ok(c, sendLogToView(l))
}

// GET /admin/notifications/stats
func (h *AdminNotificationHandler) Stats(c fiber.Ctx) error {
	var q struct {
		Days int `query:"days"`
	}
	_ = c.Bind().Query(&q)
	if q.Days <= 0 {
		q.Days = 30
	}

	stats, err := h.broadcaster.DeliveryStats(c.Context(), time.Now().UTC().AddDate(0, 0, -q.Days))
	if err != nil {
		return mapAdminError(c, err)
	}
	return ok(c, fiber.Map{
		"broadcasts":   stats.Broadcasts,
		"target_count": stats.TargetCount,
		"sent_count":   stats.SentCount,
		"failed_count": stats.FailedCount,
		"window_days":  q.Days,
	})
}
