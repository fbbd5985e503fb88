package runlog_test

import (
	"context"
	"reflect"
	"testing"
	"time"

	"github.com/mind-engage/mindengage-spk/internal/db"
	"github.com/mind-engage/mindengage-spk/internal/runlog"
	"github.com/mind-engage/mindengage-spk/internal/spk"
)

func openRepo(t *testing.T, name string) *runlog.Repo {
	t.Helper()
	h, err := db.Open(context.Background(), db.DriverSQLite, "file:"+name+"?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = h.Close() })
	return runlog.NewRepo(h)
}

func TestAppendAndList(t *testing.T) {
	repo := openRepo(t, "runlog_append")
	base := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	tick := 0
	repo.WithClock(func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Minute)
	})

	ctx := context.Background()
	w := spk.Weights{Modul: 0.4, UTP: 0.2, UAP: 0.3, Keaktifan: 0.1}
	first, err := repo.Append(ctx, runlog.Run{RequestID: "req-1", Students: 5, ModuleColumns: []string{"Modul1"}, Weights: w, ClusterSizes: []int{2, 2, 1}})
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	if first.ID == "" {
		t.Fatalf("expected generated id")
	}
	if _, err := repo.Append(ctx, runlog.Run{RequestID: "req-2", Students: 3, ModuleColumns: []string{"M1", "M2"}, Weights: w, ClusterSizes: []int{1, 1, 1}}); err != nil {
		t.Fatalf("append: %v", err)
	}

	runs, err := repo.List(ctx, 10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	if runs[0].RequestID != "req-2" || runs[1].RequestID != "req-1" {
		t.Fatalf("expected newest first, got %s then %s", runs[0].RequestID, runs[1].RequestID)
	}
	got := runs[1]
	if got.ID != first.ID || got.Weights != w || !reflect.DeepEqual(got.ClusterSizes, []int{2, 2, 1}) || !got.CreatedAt.Equal(first.CreatedAt) {
		t.Fatalf("round trip mismatch: %+v vs %+v", got, first)
	}
}

func TestFromResult(t *testing.T) {
	res := spk.Result{
		Data:          make([]spk.Record, 4),
		ModuleColumns: []string{"Modul 1", "Modul 2"},
		Clusters:      []spk.ClusterProfile{{Cluster: 0, Size: 2}, {Cluster: 1, Size: 1}, {Cluster: 2, Size: 1}},
	}
	run := runlog.FromResult(res, spk.Weights{Modul: 1}, "abc")
	if run.Students != 4 || run.RequestID != "abc" || !reflect.DeepEqual(run.ClusterSizes, []int{2, 1, 1}) {
		t.Fatalf("unexpected run: %+v", run)
	}
}
