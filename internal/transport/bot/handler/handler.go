package handler

import (
	"context"

	"valuebets/internal/domain/entity"
	"valuebets/internal/domain/service/cycle"
	"valuebets/internal/domain/service/roi"
	"valuebets/internal/domain/service/valuebet"
)

type Cycles interface {
	RunCycle(ctx context.Context) (cycle.Result, error)
	Busy() bool
	LastResult() (cycle.Result, bool)
}

type Reporter interface {
	Report(ctx context.Context, filter string) (roi.Report, error)
}

type UserBets interface {
	Enabled() bool
	Log(ctx context.Context, userID int64, username, ref, strategy string) (entity.UserBet, error)
	Stats(ctx context.Context, userID int64) (entity.UserStats, error)
}

// Scheduler периодический запуск циклов (cron или asynq).
type Scheduler interface {
	Start(ctx context.Context) error
	Stop()
	IsRunning() bool
}

type Handler struct {
	cycles    Cycles
	reporter  Reporter
	bets      UserBets
	scheduler Scheduler
	books     *valuebet.AllowList

	// baseCtx контекст приложения для планировщика, запущенного из чата.
	baseCtx context.Context //nolint:containedctx
}

func New(
	cycles Cycles,
	reporter Reporter,
	bets UserBets,
	scheduler Scheduler,
	books *valuebet.AllowList,
) *Handler {
	return &Handler{
		cycles:    cycles,
		reporter:  reporter,
		bets:      bets,
		scheduler: scheduler,
		books:     books,
		baseCtx:   context.Background(),
	}
}

func (h *Handler) WithBaseContext(ctx context.Context) *Handler {
	h.baseCtx = ctx
	return h
}
