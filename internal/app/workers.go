package app

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/rchdlps/gerenciador-projetos-sub002/config"
	"github.com/rchdlps/gerenciador-projetos-sub002/internal/events"
	"github.com/rchdlps/gerenciador-projetos-sub002/internal/realtime"
	"github.com/rchdlps/gerenciador-projetos-sub002/internal/service/audience"
	"github.com/rchdlps/gerenciador-projetos-sub002/internal/service/digest"
	"github.com/rchdlps/gerenciador-projetos-sub002/internal/service/notification"
	"github.com/rchdlps/gerenciador-projetos-sub002/internal/service/scheduler"
	redispkg "github.com/rchdlps/gerenciador-projetos-sub002/pkg/redis"
)

// workQueue is the NATS queue group shared by all instances, so broadcast
// intents are processed exactly once across the fleet.
const workQueue = "gerenciador-workers"

// WorkerModule registers all NATS event workers and periodic jobs.
var WorkerModule = fx.Module("workers",
	fx.Invoke(RegisterWorkers),
)

type WorkerParams struct {
	fx.In

	Lc      fx.Lifecycle
	NC      *nats.Conn
	RDB     *redis.Client
	Cfg     *config.Config
	Hub     *realtime.Hub
	Dir     audience.Directory
	Emitter *notification.Emitter
	Sched   *scheduler.Service
	Digest  *digest.Job
	Notifs  notification.Service
}

func RegisterWorkers(p WorkerParams) {
	runCtx, cancel := context.WithCancel(context.Background())

	p.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			startRepushWorker(p.NC, p.Hub)
			startAnnouncementWorker(p.NC, p.Dir, p.Emitter)

			timers := newTimerWorker(p.Sched)
			timers.subscribe(p.NC)
			if err := timers.rearmPending(ctx); err != nil {
				return err
			}

			startSweepTicker(runCtx, p.RDB, p.Sched, p.Cfg.Notifications)
			startDigestTicker(runCtx, p.RDB, p.Digest, p.Cfg.Notifications)
			startRetentionTicker(runCtx, p.RDB, p.Notifs, p.Cfg.Notifications)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			cancel()
			// Subscription teardown handled by ProvideNatsClient's drain.
			return nil
		},
	})
}

// ---------------------------------------------------------------------------
// repush_worker
// ---------------------------------------------------------------------------

// Every instance subscribes so each one can deliver to its own live
// sessions. Clients dedupe by notification id.
func startRepushWorker(nc *nats.Conn, hub *realtime.Hub) {
	_, err := nc.Subscribe(events.SubjectNotificationCreated, func(msg *nats.Msg) {
		var ev events.CreatedEvent
		if err := json.Unmarshal(msg.Data, &ev); err != nil {
			slog.Warn("repush_worker: bad created event", "err", err)
			return
		}
		hub.Push(ev.UserID, notification.PushPayload{
			ID:        ev.NotificationID,
			Type:      ev.Type,
			Title:     ev.Title,
			Message:   ev.Message,
			Data:      ev.Data,
			CreatedAt: ev.CreatedAt,
		})
	})
	if err != nil {
		slog.Error("repush_worker: subscribe failed", "err", err)
		return
	}
	slog.Info("repush_worker: started")
}

// ---------------------------------------------------------------------------
// announcement_worker
// ---------------------------------------------------------------------------

// Queue subscription: exactly one instance fans a system announcement out
// to every active user.
func startAnnouncementWorker(nc *nats.Conn, dir audience.Directory, emitter *notification.Emitter) {
	_, err := nc.QueueSubscribe(events.SubjectAnnouncement, workQueue, func(msg *nats.Msg) {
		var ev events.AnnouncementEvent
		if err := json.Unmarshal(msg.Data, &ev); err != nil {
			slog.Warn("announcement_worker: bad announcement event", "err", err)
			return
		}

		ctx := context.Background()
		userIDs, err := dir.ActiveUserIDs(ctx)
		if err != nil {
			slog.Error("announcement_worker: list active users failed", "err", err)
			return
		}

		var failed int
		for _, userID := range userIDs {
			_, err := emitter.Emit(ctx, notification.CreateRequest{
				UserID:  userID,
				Type:    "system",
				Title:   ev.Title,
				Message: ev.Message,
				Data:    ev.Data,
			})
			if err != nil {
				failed++
				slog.Warn("announcement_worker: emit failed", "user_id", userID, "err", err)
			}
		}
		slog.Info("announcement_worker: announcement delivered",
			"title", ev.Title,
			"recipients", len(userIDs)-failed,
			"failed", failed,
		)
	})
	if err != nil {
		slog.Error("announcement_worker: subscribe failed", "err", err)
		return
	}
	slog.Info("announcement_worker: started")
}

// ---------------------------------------------------------------------------
// timer_worker
// ---------------------------------------------------------------------------

// timerWorker holds one in-process timer per pending scheduled broadcast.
// The database row is the durable record; timers are just the fast path and
// are rebuilt from pending rows on boot. The sweep catches anything a lost
// timer misses.
type timerWorker struct {
	sched *scheduler.Service

	mu     sync.Mutex
	timers map[uuid.UUID]*time.Timer
}

func newTimerWorker(sched *scheduler.Service) *timerWorker {
	return &timerWorker{
		sched:  sched,
		timers: make(map[uuid.UUID]*time.Timer),
	}
}

func (w *timerWorker) subscribe(nc *nats.Conn) {
	_, err := nc.Subscribe(events.SubjectScheduled, func(msg *nats.Msg) {
		var ev events.ScheduledEvent
		if err := json.Unmarshal(msg.Data, &ev); err != nil {
			slog.Warn("timer_worker: bad scheduled event", "err", err)
			return
		}
		w.arm(ev.ScheduledID, ev.ScheduledFor)
	})
	if err != nil {
		slog.Error("timer_worker: subscribe scheduled failed", "err", err)
	}

	_, err = nc.Subscribe(events.SubjectCancelled, func(msg *nats.Msg) {
		var ev events.CancelledEvent
		if err := json.Unmarshal(msg.Data, &ev); err != nil {
			slog.Warn("timer_worker: bad cancelled event", "err", err)
			return
		}
		w.disarm(ev.ScheduledID)
	})
	if err != nil {
		slog.Error("timer_worker: subscribe cancelled failed", "err", err)
	}
	slog.Info("timer_worker: started")
}

// rearmPending rebuilds timers for every pending row after a restart.
func (w *timerWorker) rearmPending(ctx context.Context) error {
	pending, err := w.sched.ListPending(ctx)
	if err != nil {
		return err
	}
	for _, row := range pending {
		w.arm(row.ID, row.ScheduledFor)
	}
	if len(pending) > 0 {
		slog.Info("timer_worker: rearmed pending broadcasts", "count", len(pending))
	}
	return nil
}

// arm replaces any existing timer for the id. Every instance arms its own
// timer; the conditional claim in ProcessDue makes the race harmless.
func (w *timerWorker) arm(id uuid.UUID, at time.Time) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if old, ok := w.timers[id]; ok {
		old.Stop()
	}
	delay := time.Until(at)
	if delay < 0 {
		delay = 0
	}
	w.timers[id] = time.AfterFunc(delay, func() {
		w.mu.Lock()
		delete(w.timers, id)
		w.mu.Unlock()

		if err := w.sched.ProcessDue(context.Background(), id); err != nil {
			slog.Warn("timer_worker: process due failed", "scheduled_id", id, "err", err)
		}
	})
}

func (w *timerWorker) disarm(id uuid.UUID) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if t, ok := w.timers[id]; ok {
		t.Stop()
		delete(w.timers, id)
	}
}

// ---------------------------------------------------------------------------
// periodic jobs
// ---------------------------------------------------------------------------

func startSweepTicker(ctx context.Context, rdb *redis.Client, sched *scheduler.Service, cfg config.NotificationsConfig) {
	interval := time.Duration(cfg.SweepIntervalMinutes) * time.Minute
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				runLocked(ctx, rdb, "scheduled-sweep", interval/2, func(ctx context.Context) {
					res, err := sched.Sweep(ctx, cfg.SweepBatchLimit)
					if err != nil {
						slog.Error("sweep: run failed", "err", err)
						return
					}
					if res.Processed > 0 || res.Failed > 0 || res.Remaining > 0 {
						slog.Info("sweep: run complete",
							"processed", res.Processed,
							"failed", res.Failed,
							"remaining", res.Remaining,
						)
					}
				})
			}
		}
	}()
	slog.Info("sweep: scheduled", "interval", interval)
}

func startDigestTicker(ctx context.Context, rdb *redis.Client, job *digest.Job, cfg config.NotificationsConfig) {
	go runDaily(ctx, cfg.DigestHourUTC, func(ctx context.Context) {
		runLocked(ctx, rdb, "daily-digest", time.Hour, func(ctx context.Context) {
			if _, err := job.Run(ctx); err != nil {
				slog.Error("digest: run failed", "err", err)
			}
		})
	})
	slog.Info("digest: scheduled", "hour_utc", cfg.DigestHourUTC)
}

// retentionHourUTC keeps the purge clear of the digest window.
const retentionHourUTC = 3

func startRetentionTicker(ctx context.Context, rdb *redis.Client, notifs notification.Service, cfg config.NotificationsConfig) {
	if cfg.RetentionDays <= 0 {
		slog.Info("retention: disabled")
		return
	}
	go runDaily(ctx, retentionHourUTC, func(ctx context.Context) {
		runLocked(ctx, rdb, "notification-retention", time.Hour, func(ctx context.Context) {
			n, err := notifs.PurgeOlderThan(ctx, cfg.RetentionDays)
			if err != nil {
				slog.Error("retention: purge failed", "err", err)
				return
			}
			if n > 0 {
				slog.Info("retention: purged notifications", "count", n, "older_than_days", cfg.RetentionDays)
			}
		})
	})
	slog.Info("retention: scheduled", "hour_utc", retentionHourUTC, "days", cfg.RetentionDays)
}

// runDaily fires fn once a day at the given UTC hour.
func runDaily(ctx context.Context, hour int, fn func(context.Context)) {
	for {
		now := time.Now().UTC()
		next := time.Date(now.Year(), now.Month(), now.Day(), hour, 0, 0, 0, time.UTC)
		if !next.After(now) {
			next = next.Add(24 * time.Hour)
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(time.Until(next)):
			fn(ctx)
		}
	}
}

// runLocked runs fn only if this instance wins the shared job lock, so a
// periodic job fires once per fleet per tick.
func runLocked(ctx context.Context, rdb *redis.Client, name string, ttl time.Duration, fn func(context.Context)) {
	ok, err := redispkg.AcquireJobLock(ctx, rdb, name, ttl)
	if err != nil {
		slog.Error("job lock: acquire failed", "job", name, "err", err)
		return
	}
	if !ok {
		return
	}
	defer func() {
		if err := redispkg.ReleaseJobLock(context.Background(), rdb, name); err != nil {
			slog.Warn("job lock: release failed", "job", name, "err", err)
		}
	}()
	fn(ctx)
}
