package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib" // driver: pgx
	_ "modernc.org/sqlite"             // driver: sqlite
)

type Driver string

const (
	DriverSQLite   Driver = "sqlite"
	DriverPostgres Driver = "postgres"
)

// Open opens a DB and ensures the run-log schema exists.
func Open(ctx context.Context, driver Driver, dsn string) (*sql.DB, error) {
	var drvName string
	switch driver {
	case DriverSQLite:
		drvName = "sqlite" // modernc driver
		if dsn == "" {
			dsn = "file:spk.db?cache=shared&mode=rwc&_pragma=busy_timeout(5000)"
		}
	case DriverPostgres:
		drvName = "pgx" // pgx stdlib driver
		if dsn == "" {
			dsn = "postgres://localhost:5432/spk?sslmode=disable"
		}
	default:
		return nil, fmt.Errorf("unsupported driver: %s", driver)
	}

	db, err := sql.Open(drvName, dsn)
	if err != nil {
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	if err := ensureSchema(ctx, db, driver); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	return db, nil
}

func ensureSchema(ctx context.Context, db *sql.DB, driver Driver) error {
	var schema string
	switch driver {
	case DriverSQLite:
		schema = schemaSQLite
	case DriverPostgres:
		schema = schemaPostgres
	}
	_, err := db.ExecContext(ctx, schema)
	return err
}

// ranking_runs holds one row per successful computation. It stores counts,
// weights and cluster sizes only, never student rows.
const schemaSQLite = `
CREATE TABLE IF NOT EXISTS ranking_runs (
  id TEXT PRIMARY KEY,
  request_id TEXT NOT NULL DEFAULT '',
  students INTEGER NOT NULL,
  module_columns TEXT NOT NULL,
  weights_json TEXT NOT NULL,
  cluster_sizes_json TEXT NOT NULL,
  created_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS ranking_runs_created_at ON ranking_runs(created_at);
`

const schemaPostgres = `
CREATE TABLE IF NOT EXISTS ranking_runs (
  id TEXT PRIMARY KEY,
  request_id TEXT NOT NULL DEFAULT '',
  students INTEGER NOT NULL,
  module_columns TEXT NOT NULL,
  weights_json TEXT NOT NULL,
  cluster_sizes_json TEXT NOT NULL,
  created_at BIGINT NOT NULL
);
CREATE INDEX IF NOT EXISTS ranking_runs_created_at ON ranking_runs(created_at);
`
