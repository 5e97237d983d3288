package view_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"valuebets/internal/domain/entity"
	"valuebets/internal/domain/service/cycle"
	"valuebets/internal/domain/service/roi"
	"valuebets/internal/domain/value"
	"valuebets/internal/transport/bot/view"
)

func TestROI(t *testing.T) {
	rq := require.New(t)

	rq.Equal("📈 Expected ROI: <b>12.50%</b> (from <b>4</b> posted bets).",
		view.ROI(roi.Report{Category: "all", ROI: 12.5, Bets: 4}))

	rq.Contains(view.ROI(roi.Report{Category: "quick", ROI: -3, Bets: 1}), "for <b>quick</b>")
}

func TestStats(t *testing.T) {
	rq := require.New(t)

	rq.Equal(view.NoStats, view.Stats(entity.UserStats{}))

	text := view.Stats(entity.UserStats{Bets: 3, Staked: 7.5, TopStrategyShare: 2.0 / 3})
	rq.Contains(text, "Bets logged: <b>3</b>")
	rq.Contains(text, "<b>7.50u</b>")
	rq.Contains(text, "<b>67%</b>")
}

func TestStatus(t *testing.T) {
	rq := require.New(t)

	text := view.Status(true, false, 5, nil)
	rq.Contains(text, "🟢 running")
	rq.Contains(text, "idle")
	rq.Contains(text, "5 allowed")
	rq.NotContains(text, "Last cycle")

	last := cycle.Result{
		StartedAt:  time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		Candidates: 9,
		Best:       1,
		Quick:      2,
		Value:      1,
	}
	text = view.Status(false, true, 0, &last)
	rq.Contains(text, "🔴 stopped")
	rq.Contains(text, "in progress")
	rq.Contains(text, "2026-03-01T12:00:00Z, 9 candidates, 4 posted")
}

func TestBooks(t *testing.T) {
	rq := require.New(t)

	rq.Contains(view.Books(nil), "empty")

	text := view.Books([]string{"pinnacle", "<b>"})
	rq.Contains(text, "(2)")
	rq.Contains(text, "1. <code>pinnacle</code>")
	rq.Contains(text, "&lt;b&gt;")
}

func TestBetLogged(t *testing.T) {
	rq := require.New(t)

	text := view.BetLogged(entity.UserBet{Strategy: value.StrategySmart, StakeUnits: 2.5})
	rq.Equal("✅ Logged your smart bet (2.5u).", text)
}

func TestFetchResult(t *testing.T) {
	rq := require.New(t)

	rq.Contains(view.FetchResult(cycle.Result{SourceFailed: true}), "unavailable")
	rq.Contains(view.FetchResult(cycle.Result{Candidates: 3, Best: 1}), "Fetched 3 candidate bets")
}
