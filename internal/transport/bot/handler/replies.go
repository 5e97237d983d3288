package handler

import (
	"context"
	"errors"
	"strings"

	"valuebets/internal/domain/service/cycle"
	"valuebets/internal/domain/service/userbet"
	"valuebets/internal/infrastructure/notifier"
	"valuebets/internal/transport/bot/view"
	"valuebets/pkg/logx"
)

// Здесь только тексты ответов; отправка в commands.go и callbacks.go.

func (h *Handler) roiReply(ctx context.Context, args []string) string {
	// ROI и журнал пользователей живут в одной базе.
	if !h.bets.Enabled() {
		return view.NoDatabaseROI
	}

	filter := ""
	if len(args) > 0 {
		filter = strings.ToLower(args[0])
	}

	report, err := h.reporter.Report(ctx, filter)
	if err != nil {
		logger(ctx).Error("reporter.Report", logx.Error(err))
		return view.ROIFailed
	}

	return view.ROI(report)
}

func (h *Handler) statsReply(ctx context.Context, userID int64) string {
	stats, err := h.bets.Stats(ctx, userID)
	if errors.Is(err, userbet.ErrStorageDisabled) {
		return view.NoDatabaseStats
	}
	if err != nil {
		logger(ctx).Error("bets.Stats", logx.Error(err))
		return view.StatsFailed
	}

	return view.Stats(stats)
}

func (h *Handler) fetchReply(ctx context.Context) string {
	res, err := h.cycles.RunCycle(ctx)
	if errors.Is(err, cycle.ErrBusy) {
		return view.FetchBusy
	}
	if err != nil {
		logger(ctx).Error("cycles.RunCycle", logx.Error(err))
		return view.FetchFailed
	}

	return view.FetchResult(res)
}

func (h *Handler) statusReply() string {
	var last *cycle.Result
	if res, ok := h.cycles.LastResult(); ok {
		last = &res
	}

	return view.Status(h.scheduler.IsRunning(), h.cycles.Busy(), h.books.Len(), last)
}

func (h *Handler) startScanReply() string {
	if h.scheduler.IsRunning() {
		return view.ScanAlreadyRunning
	}

	if err := h.scheduler.Start(h.baseCtx); err != nil {
		logger(h.baseCtx).Error("scheduler.Start", logx.Error(err))
		return view.ScanAlreadyRunning
	}

	return view.ScanStarted
}

func (h *Handler) stopScanReply() string {
	if !h.scheduler.IsRunning() {
		return view.ScanNotRunning
	}

	h.scheduler.Stop()

	return view.ScanStopped
}

func (h *Handler) addBookReply(args []string) string {
	if len(args) == 0 {
		return view.AddBookUsage
	}
	return view.BookAdded(args[0], h.books.Add(args[0]))
}

func (h *Handler) removeBookReply(args []string) string {
	if len(args) == 0 {
		return view.RemoveBookUsage
	}
	return view.BookRemoved(args[0], h.books.Remove(args[0]))
}

func (h *Handler) setBooksReply(args []string) string {
	if len(args) == 0 {
		return view.SetBooksUsage
	}

	h.books.Set(args)

	return view.Books(h.books.Snapshot())
}

// stakeReply разбирает callback "stake:<strategy>:<ref>" и пишет ставку пользователя.
func (h *Handler) stakeReply(ctx context.Context, userID int64, username, data string) (string, bool) {
	strategy, ref, ok := strings.Cut(strings.TrimPrefix(data, notifier.StakeCallbackPrefix), ":")
	if !ok || ref == "" {
		return view.BadStrategy, false
	}

	bet, err := h.bets.Log(ctx, userID, username, ref, strategy)
	switch {
	case err == nil:
		return view.BetLogged(bet), true
	case errors.Is(err, userbet.ErrStorageDisabled):
		return view.NoDatabaseBet, false
	case errors.Is(err, userbet.ErrBetExpired):
		return view.BetExpired, false
	case errors.Is(err, userbet.ErrUnknownStrategy):
		return view.BadStrategy, false
	default:
		logger(ctx).Error("bets.Log", logx.Error(err))
		return view.BetFailed, false
	}
}

// commandArgs аргументы команды без самой команды.
func commandArgs(text string) []string {
	fields := strings.Fields(text)
	if len(fields) < 2 {
		return nil
	}
	return fields[1:]
}
