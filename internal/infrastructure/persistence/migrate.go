package persistence

import (
	"context"
	"embed"

	"github.com/jmoiron/sqlx"

	"valuebets/pkg/dbx"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Migrate создаёт таблицы bets и user_bets, если их нет.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	return dbx.MigrateFS(ctx, db, migrations, "migrations")
}
