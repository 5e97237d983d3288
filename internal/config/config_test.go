package config_test

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"valuebets/internal/config"
)

func TestLoadRequiresCredentials(t *testing.T) {
	rq := require.New(t)

	t.Setenv("BOT_TOKEN", "")
	t.Setenv("ODDS_API_KEY", "")

	_, err := config.Load()
	rq.Error(err)
}

func TestLoadDefaults(t *testing.T) {
	rq := require.New(t)

	t.Setenv("BOT_TOKEN", "123:abc")
	t.Setenv("ODDS_API_KEY", "key")
	t.Setenv("ALLOWED_BOOKMAKERS", "sportsbet,tab")

	cfg, err := config.Load()
	rq.NoError(err)

	rq.Equal(1000.0, cfg.Engine.BankrollUnits)
	rq.Equal(0.015, cfg.Engine.ConservativeFraction)
	rq.Equal(2.0, cfg.Engine.EdgeThreshold)
	rq.Equal(48*time.Hour, cfg.Engine.QuickWindow)
	rq.Equal(150*24*time.Hour, cfg.Engine.Horizon)
	rq.Equal([]string{"sportsbet", "tab"}, cfg.Engine.AllowedBookmakers)
	rq.Equal(10*time.Minute, cfg.Schedule.Interval)
	rq.Equal(25*time.Second, cfg.Odds.FetchTimeout)
	rq.Equal("au,us,uk", cfg.Odds.Regions)
	rq.False(cfg.Postgres.Enabled())
	rq.False(cfg.Discord.Enabled())
}

func TestAppLevel(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		raw   string
		level slog.Level
	}{
		{raw: "debug", level: slog.LevelDebug},
		{raw: "WARN", level: slog.LevelWarn},
		{raw: "error", level: slog.LevelError},
		{raw: "verbose", level: slog.LevelInfo},
	}

	for _, tc := range testCases {
		rq.Equal(tc.level, config.App{LogLevel: tc.raw}.Level(), tc.raw)
	}
}
