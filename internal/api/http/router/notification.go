package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/rchdlps/gerenciador-projetos-sub002/internal/api/http/handler"
)

func (r *Router) registerNotificationRoutes(
	api fiber.Router,
	nh *handler.NotificationHandler,
	rh *handler.RealtimeHandler,
	ah *handler.AdminNotificationHandler,
	authRequired fiber.Handler,
	adminOnly fiber.Handler,
) {
	notifs := api.Group("/notifications", authRequired)

	notifs.Get("/", nh.List)
	notifs.Get("/unread-count", nh.UnreadCount)
	notifs.Get("/stream", rh.Stream)
	notifs.Patch("/read-all", nh.MarkAllRead)
	notifs.Patch("/read-selected", nh.MarkSelectedRead)
	notifs.Patch("/:id/read", nh.MarkRead)
	notifs.Post("/system", adminOnly, ah.Announce)
}
