// Package runlog records metadata about completed ranking runs.
package runlog

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mind-engage/mindengage-spk/internal/spk"
)

// Run describes one successful computation. Student rows are never recorded.
type Run struct {
	ID            string      `json:"id"`
	RequestID     string      `json:"request_id,omitempty"`
	Students      int         `json:"students"`
	ModuleColumns []string    `json:"module_columns"`
	Weights       spk.Weights `json:"weights"`
	ClusterSizes  []int       `json:"cluster_sizes"`
	CreatedAt     time.Time   `json:"created_at"`
}

// FromResult summarizes res.
func FromResult(res spk.Result, w spk.Weights, requestID string) Run {
	sizes := make([]int, len(res.Clusters))
	for i, c := range res.Clusters {
		sizes[i] = c.Size
	}
	return Run{
		RequestID:     requestID,
		Students:      len(res.Data),
		ModuleColumns: res.ModuleColumns,
		Weights:       w,
		ClusterSizes:  sizes,
	}
}

type Repo struct {
	db  *sql.DB
	now func() time.Time
}

func NewRepo(db *sql.DB) *Repo { return &Repo{db: db, now: time.Now} }

// WithClock replaces the time source; used by tests.
func (r *Repo) WithClock(now func() time.Time) *Repo {
	r.now = now
	return r
}

// Append stores run, assigning its ID and timestamp.
func (r *Repo) Append(ctx context.Context, run Run) (Run, error) {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	run.CreatedAt = r.now().UTC().Truncate(time.Millisecond)

	mods, err := json.Marshal(run.ModuleColumns)
	if err != nil {
		return run, err
	}
	weights, err := json.Marshal(run.Weights)
	if err != nil {
		return run, err
	}
	sizes, err := json.Marshal(run.ClusterSizes)
	if err != nil {
		return run, err
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO ranking_runs (id, request_id, students, module_columns, weights_json, cluster_sizes_json, created_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		run.ID, run.RequestID, run.Students, string(mods), string(weights), string(sizes), run.CreatedAt.UnixMilli())
	if err != nil {
		return run, fmt.Errorf("append run: %w", err)
	}
	return run, nil
}

// List returns up to limit runs, newest first.
func (r *Repo) List(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 || limit > 500 {
		limit = 50
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, request_id, students, module_columns, weights_json, cluster_sizes_json, created_at
		 FROM ranking_runs ORDER BY created_at DESC, id DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Run{}
	for rows.Next() {
		var (
			run                  Run
			mods, weights, sizes string
			createdAt            int64
		)
		if err := rows.Scan(&run.ID, &run.RequestID, &run.Students, &mods, &weights, &sizes, &createdAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(mods), &run.ModuleColumns); err != nil {
			return nil, fmt.Errorf("run %s: module_columns: %w", run.ID, err)
		}
		if err := json.Unmarshal([]byte(weights), &run.Weights); err != nil {
			return nil, fmt.Errorf("run %s: weights: %w", run.ID, err)
		}
		if err := json.Unmarshal([]byte(sizes), &run.ClusterSizes); err != nil {
			return nil, fmt.Errorf("run %s: cluster_sizes: %w", run.ID, err)
		}
		run.CreatedAt = time.UnixMilli(createdAt).UTC()
		out = append(out, run)
	}
	return out, rows.Err()
}
