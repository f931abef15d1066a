package http

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/fx"

	"github.com/rchdlps/gerenciador-projetos-sub002/config"
	"github.com/rchdlps/gerenciador-projetos-sub002/internal/api/http/router"
	"github.com/rchdlps/gerenciador-projetos-sub002/internal/app"
)

func Start(cfg *config.Config, timeout time.Duration) {
	fx.New(
		fx.Supply(cfg),
		app.InfraModule,
		app.ServiceModule,
		app.WorkerModule,
		router.Module,
		Module,

		// Invoke *fiber.App so the server is constructed and its OnStart
		// hook registered.
		fx.Invoke(func(*fiber.App) {}),

		fx.StopTimeout(timeout),
	).Run()
}
