package db_test

import (
	"context"
	"testing"

	"github.com/mind-engage/mindengage-spk/internal/db"
)

func TestOpen_SQLiteCreatesSchema(t *testing.T) {
	ctx := context.Background()
	h, err := db.Open(ctx, db.DriverSQLite, "file:connect_test?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer h.Close()

	var n int
	if err := h.QueryRowContext(ctx, `SELECT COUNT(*) FROM ranking_runs`).Scan(&n); err != nil {
		t.Fatalf("ranking_runs missing: %v", err)
	}
	if n != 0 {
		t.Fatalf("expected empty table, got %d rows", n)
	}
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	if _, err := db.Open(context.Background(), db.Driver("oracle"), ""); err == nil {
		t.Fatalf("expected error for unsupported driver")
	}
}
