package modules

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hibiken/asynq"
	"golang.org/x/sync/errgroup"
)

type AsynqQueues map[string]int

type AsynqHandler struct {
	Pattern string
	Handler asynq.Handler
}

type AsynqServer struct {
	Redis  asynq.RedisConnOpt
	Queues AsynqQueues
}

func (s AsynqServer) Run(
	ctx context.Context,
	g *errgroup.Group,
	handlers ...AsynqHandler,
) {
	g.Go(func() error {
		worker := asynq.NewServer(s.Redis, asynq.Config{
			BaseContext: func() context.Context { return ctx },
			Queues:      s.Queues,
			Concurrency: 1,
			Logger:      asynqLogger{ctx: ctx},
		})

		mux := asynq.NewServeMux()

		for _, h := range handlers {
			mux.Handle(h.Pattern, h.Handler)
		}

		if err := worker.Start(mux); err != nil {
			return fmt.Errorf("asynqServer.Start: %w", err)
		}

		logger(ctx).Info("asynq server started", slog.Int("handlers", len(handlers)))

		<-ctx.Done()
		worker.Shutdown()

		logger(ctx).Info("asynq server stopped")

		return nil
	})
}

type AsynqPeriodicTask struct {
	Cronspec string
	Task     *asynq.Task
}

// AsynqScheduler ставит периодические задачи в очередь.
type AsynqScheduler struct {
	Redis asynq.RedisConnOpt
}

func (s AsynqScheduler) Run(
	ctx context.Context,
	g *errgroup.Group,
	tasks ...AsynqPeriodicTask,
) {
	g.Go(func() error {
		scheduler := asynq.NewScheduler(s.Redis, &asynq.SchedulerOpts{
			Logger: asynqLogger{ctx: ctx},
		})

		for _, t := range tasks {
			if _, err := scheduler.Register(t.Cronspec, t.Task); err != nil {
				return fmt.Errorf("scheduler.Register %s: %w", t.Task.Type(), err)
			}

			logger(ctx).Info("asynq task scheduled",
				slog.String("task", t.Task.Type()),
				slog.String("spec", t.Cronspec),
			)
		}

		if err := scheduler.Start(); err != nil {
			return fmt.Errorf("asynqScheduler.Start: %w", err)
		}

		<-ctx.Done()
		scheduler.Shutdown()

		logger(ctx).Info("asynq scheduler stopped")

		return nil
	})
}

// asynqLogger пишет логи asynq в slog из контекста.
type asynqLogger struct {
	ctx context.Context //nolint:containedctx
}

func (l asynqLogger) Debug(args ...any) { logger(l.ctx).Debug(fmt.Sprint(args...)) }
func (l asynqLogger) Info(args ...any)  { logger(l.ctx).Info(fmt.Sprint(args...)) }
func (l asynqLogger) Warn(args ...any)  { logger(l.ctx).Warn(fmt.Sprint(args...)) }
func (l asynqLogger) Error(args ...any) { logger(l.ctx).Error(fmt.Sprint(args...)) }
func (l asynqLogger) Fatal(args ...any) { logger(l.ctx).Error(fmt.Sprint(args...)) }
