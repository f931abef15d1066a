package app

import (
	"time"

	"go.uber.org/fx"

	"github.com/rchdlps/gerenciador-projetos-sub002/config"
	"github.com/rchdlps/gerenciador-projetos-sub002/internal/events"
	"github.com/rchdlps/gerenciador-projetos-sub002/internal/realtime"
	"github.com/rchdlps/gerenciador-projetos-sub002/internal/repo"
	"github.com/rchdlps/gerenciador-projetos-sub002/internal/service/audience"
	"github.com/rchdlps/gerenciador-projetos-sub002/internal/service/broadcast"
	"github.com/rchdlps/gerenciador-projetos-sub002/internal/service/digest"
	"github.com/rchdlps/gerenciador-projetos-sub002/internal/service/notification"
	"github.com/rchdlps/gerenciador-projetos-sub002/internal/service/scheduler"
	"github.com/rchdlps/gerenciador-projetos-sub002/pkg/email"
)

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(
		ProvideNotificationService,
		ProvideEmitter,
		ProvideDirectory,
		ProvideBroadcastService,
		ProvideSchedulerService,
		ProvideDigestJob,
	),
)

func ProvideNotificationService(db *repo.Client) notification.Service {
	return notification.New(db)
}

func ProvideEmitter(svc notification.Service, hub *realtime.Hub, bus events.Publisher) *notification.Emitter {
	return notification.NewEmitter(svc, hub, bus)
}

func ProvideDirectory(db *repo.Client) audience.Directory {
	return audience.NewDirectory(db)
}

func ProvideBroadcastService(
	db *repo.Client,
	dir audience.Directory,
	emitter *notification.Emitter,
	cfg *config.Config,
) *broadcast.Service {
	return broadcast.New(dir, emitter, broadcast.NewStore(db), cfg.Notifications.BroadcastWorkers)
}

func ProvideSchedulerService(db *repo.Client, sender *broadcast.Service, bus events.Publisher) *scheduler.Service {
	return scheduler.New(scheduler.NewStore(db), sender, bus)
}

func ProvideDigestJob(
	svc notification.Service,
	dir audience.Directory,
	mailer *email.Client,
	cfg *config.Config,
) *digest.Job {
	window := time.Duration(cfg.Notifications.DigestWindowHrs) * time.Hour
	return digest.NewJob(svc, dir, mailer, window, "Gerenciador de Projetos", cfg.Server.Domain)
}
