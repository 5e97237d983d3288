package config

import "time"

type Engine struct {
	BankrollUnits        float64       `env:"BANKROLL_UNITS" envDefault:"1000"`
	ConservativeFraction float64       `env:"CONSERVATIVE_FRACTION" envDefault:"0.015"`
	EdgeThreshold        float64       `env:"EDGE_VALUE_THRESHOLD" envDefault:"2.0"`
	QuickWindow          time.Duration `env:"QUICK_WINDOW" envDefault:"48h"`
	Horizon              time.Duration `env:"ACTIONABLE_HORIZON" envDefault:"3600h"`
	AllowedBookmakers    []string      `env:"ALLOWED_BOOKMAKERS" envSeparator:"," envDefault:"sportsbet,bet365,ladbrokes,tabtouch,neds,pointsbet,dabble,betfair,tab"`
}

// Schedule управляет запуском циклов и побочными таймаутами.
type Schedule struct {
	// cron (в процессе) или asynq (через Redis)
	Scheduler      string        `env:"SCHEDULER" envDefault:"cron"`
	Interval       time.Duration `env:"CYCLE_INTERVAL" envDefault:"10m"`
	RunOnStart     bool          `env:"CYCLE_RUN_ON_START" envDefault:"true"`
	NotifyTimeout  time.Duration `env:"NOTIFY_TIMEOUT" envDefault:"10s"`
	PersistTimeout time.Duration `env:"PERSIST_TIMEOUT" envDefault:"10s"`
	// memory или redis
	DedupBackend string        `env:"DEDUP_BACKEND" envDefault:"memory"`
	DedupTTL     time.Duration `env:"DEDUP_TTL" envDefault:"0s"`
	RecentTTL    time.Duration `env:"RECENT_TTL" envDefault:"24h"`
}
