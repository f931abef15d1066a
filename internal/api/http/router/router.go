package router

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"go.uber.org/fx"

	"github.com/rchdlps/gerenciador-projetos-sub002/config"
	"github.com/rchdlps/gerenciador-projetos-sub002/internal/api/http/handler"
	"github.com/rchdlps/gerenciador-projetos-sub002/internal/api/http/middleware"
	"github.com/rchdlps/gerenciador-projetos-sub002/internal/realtime"
	"github.com/rchdlps/gerenciador-projetos-sub002/internal/service/broadcast"
	"github.com/rchdlps/gerenciador-projetos-sub002/internal/service/notification"
	"github.com/rchdlps/gerenciador-projetos-sub002/internal/service/scheduler"
)

// Module provides the Router to the fx graph.
var Module = fx.Module("router", fx.Provide(NewRouter))

type Params struct {
	fx.In

	Cfg             *config.Config
	Hub             *realtime.Hub
	NotificationSvc notification.Service
	Emitter         *notification.Emitter
	BroadcastSvc    *broadcast.Service
	SchedulerSvc    *scheduler.Service
}

type Router struct {
	p Params
}

func NewRouter(p Params) *Router {
	return &Router{p: p}
}

func (r *Router) Register(app *fiber.App) {
	r.registerSystemRoutes(app)

	authRequired := middleware.AuthRequired(r.p.Cfg)
	adminOnly := middleware.RequireSuperAdmin()

	notificationH := handler.NewNotificationHandler(r.p.NotificationSvc)
	adminH := handler.NewAdminNotificationHandler(r.p.BroadcastSvc, r.p.SchedulerSvc, r.p.Emitter)
	realtimeH := handler.NewRealtimeHandler(r.p.Hub)

	api := app.Group("/api/v1")

	r.registerNotificationRoutes(api, notificationH, realtimeH, adminH, authRequired, adminOnly)
	r.registerAdminRoutes(api, adminH, authRequired, adminOnly)
}

func (r *Router) registerSystemRoutes(app *fiber.App) {
	app.Get(healthcheck.LivenessEndpoint, healthcheck.New())
	app.Get(healthcheck.ReadinessEndpoint, healthcheck.New())
	app.Get(healthcheck.StartupEndpoint, healthcheck.New())
}
