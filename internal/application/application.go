package application

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/hibiken/asynq"
	"github.com/mymmrac/telego"
	"golang.org/x/sync/errgroup"

	"valuebets/internal/config"
	"valuebets/internal/domain/service/cycle"
	"valuebets/internal/domain/service/dedup"
	"valuebets/internal/domain/service/roi"
	"valuebets/internal/domain/service/userbet"
	"valuebets/internal/domain/service/valuebet"
	"valuebets/internal/domain/value"
	"valuebets/internal/infrastructure/notifier"
	"valuebets/internal/infrastructure/oddsapi"
	"valuebets/internal/infrastructure/persistence"
	"valuebets/internal/server"
	"valuebets/internal/transport/bot"
	"valuebets/internal/transport/bot/handler"
	"valuebets/internal/worker"
	"valuebets/pkg/application/connectors"
	"valuebets/pkg/application/modules"
	"valuebets/pkg/contextx"
	"valuebets/pkg/logx"
)

const (
	schedulerCron  = "cron"
	schedulerAsynq = "asynq"

	dedupRedis = "redis"

	httpServerReadHeaderTimeout = 5 * time.Second
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

type storage interface {
	cycle.BetStore
	roi.Source
	userbet.Repository
}

// Run собирает зависимости и блокируется до отмены ctx или падения любого модуля.
func Run(ctx context.Context, cfg config.Config) error { //nolint:funlen
	if err := validate(cfg); err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)

	// 1. Хранилища
	store := storage(persistence.Nop{})

	if cfg.Postgres.Enabled() {
		pg := &connectors.Postgres{
			DSN:             cfg.Postgres.DSN,
			MaxOpenConns:    cfg.Postgres.MaxOpenConns,
			MaxIdleConns:    cfg.Postgres.MaxIdleConns,
			ConnMaxLifetime: cfg.Postgres.ConnMaxLifetime,
		}
		db := pg.Client(ctx)
		defer pg.Close(context.WithoutCancel(ctx))

		if cfg.Postgres.Migrate {
			if err := persistence.Migrate(ctx, db); err != nil {
				return fmt.Errorf("persistence.Migrate: %w", err)
			}
		}

		store = persistence.NewStore(db)
	} else {
		logger(ctx).Warn("PG_DSN is empty, bets will not be stored")
	}

	var rds *connectors.Redis

	if cfg.Redis.Enabled() {
		rds = &connectors.Redis{
			Address:            cfg.Redis.Address,
			Username:           cfg.Redis.Username,
			Password:           cfg.Redis.Password,
			DatabaseNumber:     cfg.Redis.DatabaseNumber,
			PoolSize:           cfg.Redis.PoolSize,
			MinIdleConnections: cfg.Redis.MinIdleConnections,
			MaxIdleConnections: cfg.Redis.MaxIdleConnections,
		}
		defer rds.Close(context.WithoutCancel(ctx))
	}

	var dedupStore dedup.Store = dedup.NewMemoryStore(cfg.Schedule.DedupTTL)
	if cfg.Schedule.DedupBackend == dedupRedis {
		dedupStore = dedup.NewRedisStore(rds.Client(ctx), cfg.Schedule.DedupTTL)
	}

	// 2. Уведомления
	tgAPI, err := telego.NewBot(cfg.Bot.Token)
	if err != nil {
		return fmt.Errorf("telego.NewBot: %w", err)
	}

	notifiers := notifier.NewMulti(cfg.Schedule.NotifyTimeout,
		notifier.NewTelegram(tgAPI, map[value.Tier]int64{
			value.TierBest:  cfg.Bot.ChatBest,
			value.TierQuick: cfg.Bot.ChatQuick,
			value.TierLong:  cfg.Bot.ChatLong,
			value.TierValue: cfg.Bot.ChatValue,
		}, cfg.Engine.EdgeThreshold).WithStakeButtons(store.Enabled()),
	)

	if cfg.Discord.Enabled() {
		session, err := notifier.NewDiscordSession(cfg.Discord.Token)
		if err != nil {
			return fmt.Errorf("notifier.NewDiscordSession: %w", err)
		}

		notifiers.Add(notifier.NewDiscord(session, map[value.Tier]string{
			value.TierBest:  cfg.Discord.ChannelBest,
			value.TierQuick: cfg.Discord.ChannelQuick,
			value.TierLong:  cfg.Discord.ChannelLong,
			value.TierValue: cfg.Discord.ChannelValue,
		}, cfg.Engine.EdgeThreshold))
	}

	// 3. Цикл
	books := valuebet.NewAllowList(cfg.Engine.AllowedBookmakers...)

	engine := valuebet.NewEngine(valuebet.Config{
		BankrollUnits:        cfg.Engine.BankrollUnits,
		ConservativeFraction: cfg.Engine.ConservativeFraction,
		EdgeThreshold:        cfg.Engine.EdgeThreshold,
		QuickWindow:          cfg.Engine.QuickWindow,
		Horizon:              cfg.Engine.Horizon,
	}, books)

	oddsClient := oddsapi.NewClient(oddsapi.Options{
		BaseURL:   cfg.Odds.BaseURL,
		APIKey:    cfg.Odds.APIKey,
		Regions:   cfg.Odds.Regions,
		Markets:   cfg.Odds.Markets,
		LogMaxLen: cfg.Odds.LogMaxLen,
	})

	recent := userbet.NewRecent(cfg.Schedule.RecentTTL)

	runner := cycle.NewRunner(oddsClient, engine, dedupStore, notifiers, store).
		WithTimeouts(cfg.Odds.FetchTimeout, cfg.Schedule.PersistTimeout).
		WithRecorder(recent)

	// 4. Планировщик
	var scheduler handler.Scheduler

	switch cfg.Schedule.Scheduler {
	case schedulerAsynq:
		scheduler, err = runAsynq(ctx, g, cfg, runner)
		if err != nil {
			return err
		}
	default:
		cronScheduler := worker.NewCycleScheduler(runner, cfg.Schedule.Interval).
			WithRunOnStart(cfg.Schedule.RunOnStart)
		modules.Worker{Name: "cycleScheduler"}.Run(ctx, g, cronScheduler)
		scheduler = cronScheduler
	}

	// 5. Бот
	reporter := roi.NewReporter(store).WithTimeout(cfg.Schedule.PersistTimeout)
	userBets := userbet.NewService(store, recent).WithTimeout(cfg.Schedule.PersistTimeout)

	h := handler.New(runner, reporter, userBets, scheduler, books).
		WithBaseContext(ctx)

	telegramBot := bot.New(tgAPI, h, cfg.Bot.AdminID)

	if cfg.Bot.StartupPing {
		if err := telegramBot.Ping(ctx, "🚀 Value bets started"); err != nil {
			logger(ctx).Warn("startup ping failed", logx.Error(err))
		}
	}

	modules.Worker{Name: "telegramBot"}.Run(ctx, g, telegramBot)

	// 6. HTTP
	router := server.NewRouter(
		server.NewServer(server.NewCycleServer(runner), server.NewROIServer(reporter)),
		server.RouterOptions{
			Logger:              logger(ctx),
			SensitiveDataMasker: logx.NewSensitiveDataMasker(),
			LogFieldMaxLen:      cfg.Server.LogFieldMaxLen,
			AllowedOrigins:      cfg.Server.CORSOrigins,
		},
	)

	modules.HTTPServer{ShutdownTimeout: cfg.Server.ShutdownTimeout}.Run(ctx, g, &http.Server{
		Addr:              cfg.Server.HTTPAddress,
		Handler:           router,
		ReadHeaderTimeout: httpServerReadHeaderTimeout,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	})

	modules.ProbeServer{
		Name:          cfg.App.Name,
		Version:       cfg.App.Version,
		ListenAddress: cfg.Server.ProbeAddress,
	}.Run(ctx, g)

	modules.MetricServer{ListenAddress: cfg.Server.MetricsAddress}.Run(ctx, g)

	logger(ctx).Info("application started",
		slog.String("scheduler", cfg.Schedule.Scheduler),
		slog.String("dedup", cfg.Schedule.DedupBackend),
		slog.Bool("storage", store.Enabled()),
		slog.Int("notifiers", notifiers.Len()),
	)

	if err := g.Wait(); err != nil {
		return fmt.Errorf("errgroup.Wait: %w", err)
	}

	return nil
}

// runAsynq периодическая задача в Redis вместо cron в процессе.
func runAsynq(
	ctx context.Context,
	g *errgroup.Group,
	cfg config.Config,
	runner worker.CycleRunner,
) (*worker.CycleTaskHandler, error) {
	redisOpt := asynq.RedisClientOpt{
		Addr:     cfg.Redis.Address,
		Username: cfg.Redis.Username,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DatabaseNumber,
	}

	taskHandler := worker.NewCycleTaskHandler(runner)

	modules.AsynqServer{
		Redis:  redisOpt,
		Queues: modules.AsynqQueues{"default": 1},
	}.Run(ctx, g, modules.AsynqHandler{Pattern: worker.TypeCycle, Handler: taskHandler})

	modules.AsynqScheduler{Redis: redisOpt}.Run(ctx, g, modules.AsynqPeriodicTask{
		Cronspec: "@every " + cfg.Schedule.Interval.String(),
		Task:     worker.NewCycleTask(),
	})

	if cfg.Schedule.RunOnStart {
		client := asynq.NewClient(redisOpt)
		defer client.Close()

		if _, err := client.EnqueueContext(ctx, worker.NewCycleTask()); err != nil {
			return nil, fmt.Errorf("client.Enqueue: %w", err)
		}
	}

	return taskHandler, nil
}

func validate(cfg config.Config) error {
	switch cfg.Schedule.Scheduler {
	case schedulerCron, schedulerAsynq:
	default:
		return fmt.Errorf("unknown SCHEDULER %q", cfg.Schedule.Scheduler)
	}

	needRedis := cfg.Schedule.Scheduler == schedulerAsynq || cfg.Schedule.DedupBackend == dedupRedis
	if needRedis && !cfg.Redis.Enabled() {
		return fmt.Errorf("REDIS_ADDRESS is required for SCHEDULER=%s DEDUP_BACKEND=%s",
			cfg.Schedule.Scheduler, cfg.Schedule.DedupBackend)
	}

	return nil
}
