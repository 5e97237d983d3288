package handler

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"valuebets/internal/domain/entity"
	"valuebets/internal/domain/service/cycle"
	"valuebets/internal/domain/service/roi"
	"valuebets/internal/domain/service/userbet"
	"valuebets/internal/domain/service/valuebet"
	"valuebets/internal/domain/value"
	"valuebets/internal/transport/bot/view"
)

type fakeCycles struct {
	res  cycle.Result
	err  error
	busy bool
	last *cycle.Result
}

func (f *fakeCycles) RunCycle(context.Context) (cycle.Result, error) { return f.res, f.err }
func (f *fakeCycles) Busy() bool                                     { return f.busy }
func (f *fakeCycles) LastResult() (cycle.Result, bool) {
	if f.last == nil {
		return cycle.Result{}, false
	}
	return *f.last, true
}

type fakeReporter struct {
	filter string
	report roi.Report
	err    error
}

func (f *fakeReporter) Report(_ context.Context, filter string) (roi.Report, error) {
	f.filter = filter
	return f.report, f.err
}

type fakeBets struct {
	enabled bool
	bet     entity.UserBet
	stats   entity.UserStats
	err     error

	strategy, ref string
}

func (f *fakeBets) Enabled() bool { return f.enabled }

func (f *fakeBets) Log(_ context.Context, _ int64, _, ref, strategy string) (entity.UserBet, error) {
	f.ref, f.strategy = ref, strategy
	return f.bet, f.err
}

func (f *fakeBets) Stats(context.Context, int64) (entity.UserStats, error) { return f.stats, f.err }

type fakeScheduler struct {
	running bool
	starts  int
}

func (f *fakeScheduler) Start(context.Context) error {
	if f.running {
		return errors.New("already running")
	}
	f.running = true
	f.starts++
	return nil
}
func (f *fakeScheduler) Stop()           { f.running = false }
func (f *fakeScheduler) IsRunning() bool { return f.running }

type fixture struct {
	cycles    *fakeCycles
	reporter  *fakeReporter
	bets      *fakeBets
	scheduler *fakeScheduler
	handler   *Handler
}

func newFixture() fixture {
	f := fixture{
		cycles:    &fakeCycles{},
		reporter:  &fakeReporter{},
		bets:      &fakeBets{enabled: true},
		scheduler: &fakeScheduler{},
	}
	f.handler = New(f.cycles, f.reporter, f.bets, f.scheduler, valuebet.NewAllowList("pinnacle"))

	return f
}

func TestFetchReply(t *testing.T) {
	t.Run("busy", func(t *testing.T) {
		f := newFixture()
		f.cycles.err = cycle.ErrBusy

		require.Equal(t, view.FetchBusy, f.handler.fetchReply(context.Background()))
	})

	t.Run("ok", func(t *testing.T) {
		f := newFixture()
		f.cycles.res = cycle.Result{Candidates: 4, Best: 1}

		require.Contains(t, f.handler.fetchReply(context.Background()), "Fetched 4 candidate bets")
	})
}

func TestROIReply(t *testing.T) {
	t.Run("no database", func(t *testing.T) {
		f := newFixture()
		f.bets.enabled = false

		require.Equal(t, view.NoDatabaseROI, f.handler.roiReply(context.Background(), nil))
	})

	t.Run("filter is lowercased", func(t *testing.T) {
		rq := require.New(t)
		f := newFixture()
		f.reporter.report = roi.Report{Category: "quick", ROI: 5, Bets: 2}

		text := f.handler.roiReply(context.Background(), []string{"QUICK"})
		rq.Equal("quick", f.reporter.filter)
		rq.Contains(text, "<b>5.00%</b>")
	})

	t.Run("storage error", func(t *testing.T) {
		f := newFixture()
		f.reporter.err = errors.New("boom")

		require.Equal(t, view.ROIFailed, f.handler.roiReply(context.Background(), nil))
	})
}

func TestStatsReply(t *testing.T) {
	rq := require.New(t)
	f := newFixture()

	f.bets.err = userbet.ErrStorageDisabled
	rq.Equal(view.NoDatabaseStats, f.handler.statsReply(context.Background(), 1))

	f.bets.err = nil
	rq.Equal(view.NoStats, f.handler.statsReply(context.Background(), 1))
}

func TestStakeReply(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		err    error
		want   string
		wantOK bool
	}{
		{
			name:   "logged",
			data:   "stake:smart:abcdef",
			want:   "✅ Logged your smart bet (2u).",
			wantOK: true,
		},
		{name: "malformed", data: "stake:smart", want: view.BadStrategy},
		{name: "no database", data: "stake:smart:abc", err: userbet.ErrStorageDisabled, want: view.NoDatabaseBet},
		{name: "expired", data: "stake:smart:abc", err: userbet.ErrBetExpired, want: view.BetExpired},
		{name: "unknown strategy", data: "stake:yolo:abc", err: userbet.ErrUnknownStrategy, want: view.BadStrategy},
		{name: "storage failure", data: "stake:smart:abc", err: errors.New("pg down"), want: view.BetFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rq := require.New(t)
			f := newFixture()
			f.bets.err = tt.err
			f.bets.bet = entity.UserBet{Strategy: value.StrategySmart, StakeUnits: 2}

			text, ok := f.handler.stakeReply(context.Background(), 1, "neo", tt.data)
			rq.Equal(tt.want, text)
			rq.Equal(tt.wantOK, ok)
		})
	}

	t.Run("passes strategy and ref", func(t *testing.T) {
		rq := require.New(t)
		f := newFixture()

		_, _ = f.handler.stakeReply(context.Background(), 1, "neo", "stake:aggressive:0011")
		rq.Equal("aggressive", f.bets.strategy)
		rq.Equal("0011", f.bets.ref)
	})
}

func TestScanReplies(t *testing.T) {
	rq := require.New(t)
	f := newFixture()

	rq.Equal(view.ScanNotRunning, f.handler.stopScanReply())
	rq.Equal(view.ScanStarted, f.handler.startScanReply())
	rq.Equal(view.ScanAlreadyRunning, f.handler.startScanReply())
	rq.Equal(1, f.scheduler.starts)
	rq.Contains(f.handler.statusReply(), "🟢 running")
	rq.Equal(view.ScanStopped, f.handler.stopScanReply())
	rq.False(f.scheduler.running)
}

func TestBookReplies(t *testing.T) {
	rq := require.New(t)
	f := newFixture()

	rq.Equal(view.AddBookUsage, f.handler.addBookReply(nil))
	rq.Contains(f.handler.addBookReply([]string{"betfair_ex_uk"}), "added")
	rq.Contains(f.handler.addBookReply([]string{"betfair_ex_uk"}), "already")
	rq.Contains(f.handler.removeBookReply([]string{"pinnacle"}), "removed")
	rq.Contains(f.handler.removeBookReply([]string{"pinnacle"}), "not in the list")

	text := f.handler.setBooksReply([]string{"a", "b"})
	rq.Contains(text, "(2)")
	rq.Equal(2, f.handler.books.Len())
}

func TestCommandArgs(t *testing.T) {
	rq := require.New(t)

	rq.Nil(commandArgs("/roi"))
	rq.Equal([]string{"best"}, commandArgs("/roi  best"))
}
