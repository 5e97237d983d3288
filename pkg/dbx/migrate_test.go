package dbx_test

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"valuebets/pkg/dbx"
)

func TestMigrateFS(t *testing.T) {
	rq := require.New(t)

	mockDB, mock, err := sqlmock.New()
	rq.NoError(err)
	defer mockDB.Close()

	db := sqlx.NewDb(mockDB, "pgx")

	fsys := fstest.MapFS{
		"m/002_b.sql":  {Data: []byte("CREATE TABLE b (id INT)")},
		"m/001_a.sql":  {Data: []byte("CREATE TABLE a (id INT)")},
		"m/README.txt": {Data: []byte("ignored")},
	}

	mock.ExpectExec("CREATE TABLE a").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("CREATE TABLE b").WillReturnResult(sqlmock.NewResult(0, 0))

	rq.NoError(dbx.MigrateFS(context.Background(), db, fsys, "m"))
	rq.NoError(mock.ExpectationsWereMet())
}
