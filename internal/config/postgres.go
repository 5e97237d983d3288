package config

import "time"

// Postgres опционален: пустой PG_DSN отключает хранение ставок.
type Postgres struct {
	DSN             string        `env:"PG_DSN" json:"-"`
	MaxIdleConns    int           `env:"PG_MAX_IDLE_CONNS" envDefault:"2"`
	MaxOpenConns    int           `env:"PG_MAX_OPEN_CONNS" envDefault:"4"`
	ConnMaxLifetime time.Duration `env:"PG_CONN_MAX_LIFETIME" envDefault:"5m"`
	Migrate         bool          `env:"PG_MIGRATE" envDefault:"true"`
}

func (p Postgres) Enabled() bool {
	return p.DSN != ""
}
