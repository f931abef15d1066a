package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/rchdlps/gerenciador-projetos-sub002/internal/api/http/handler"
)

func (r *Router) registerAdminRoutes(
	api fiber.Router,
	ah *handler.AdminNotificationHandler,
	authRequired fiber.Handler,
	adminOnly fiber.Handler,
) {
	admin := api.Group("/admin/notifications", authRequired, adminOnly)

	admin.Post("/send", ah.Send)
	admin.Post("/schedule", ah.Schedule)
	admin.Get("/scheduled", ah.ListScheduled)
	admin.Patch("/scheduled/:id", ah.UpdateScheduled)
	admin.Delete("/scheduled/:id", ah.CancelScheduled)
	admin.Get("/history", ah.History)
	admin.Get("/history/:id/stats", ah.HistoryStats)
	admin.Get("/stats", ah.Stats)
}
