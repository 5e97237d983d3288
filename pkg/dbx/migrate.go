package dbx

import (
	"context"
	"fmt"
	"io/fs"
	"path"
	"slices"

	"github.com/jmoiron/sqlx"
)

// MigrateFS executes every *.sql file under dir in lexical order. Files are
// expected to be idempotent (CREATE ... IF NOT EXISTS).
func MigrateFS(ctx context.Context, db *sqlx.DB, fsys fs.FS, dir string) error {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return fmt.Errorf("fs.ReadDir: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() && path.Ext(e.Name()) == ".sql" {
			names = append(names, e.Name())
		}
	}

	slices.Sort(names)

	for _, name := range names {
		fileBytes, err := fs.ReadFile(fsys, path.Join(dir, name))
		if err != nil {
			return fmt.Errorf("fs.ReadFile: %w", err)
		}

		if _, err = db.ExecContext(ctx, string(fileBytes)); err != nil {
			return fmt.Errorf("db.Exec %s: %w", name, err)
		}
	}

	return nil
}
