package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"

	api "github.com/mind-engage/mindengage-spk/internal/api/http"
	"github.com/mind-engage/mindengage-spk/internal/config"
	"github.com/mind-engage/mindengage-spk/internal/db"
	"github.com/mind-engage/mindengage-spk/internal/runlog"
	"github.com/mind-engage/mindengage-spk/internal/spk"
)

func main() {
	// .env is optional; real env vars win
	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	engine := spk.NewEngine(
		spk.WithSeed(cfg.Cluster.Seed),
		spk.WithRestarts(cfg.Cluster.Restarts),
		spk.WithMaxIterations(cfg.Cluster.MaxIter),
		spk.WithTolerance(cfg.Cluster.Tolerance),
	)

	opts := api.RouterOptions{
		Engine:         engine,
		CORSOrigins:    cfg.CORSOrigins,
		MaxUploadBytes: cfg.MaxUploadBytes,
		RequestTimeout: cfg.RequestTimeout,
	}

	// --- Run log (optional) ---
	if cfg.EnableRunLog {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		dbh, err := db.Open(ctx, db.Driver(cfg.DBDriver), cfg.DBDSN)
		cancel()
		if err != nil {
			log.Fatalf("db open failed: %v", err)
		}
		defer dbh.Close()
		opts.Runs = runlog.NewRepo(dbh)
	}

	s := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           api.NewRouter(opts),
		ReadHeaderTimeout: 5 * time.Second,
	}
	log.Printf("listening on %s (run_log=%t, db=%s, seed=%d, restarts=%d)",
		cfg.HTTPAddr, cfg.EnableRunLog, cfg.DBDriver, cfg.Cluster.Seed, cfg.Cluster.Restarts)
	log.Fatal(s.ListenAndServe())
}
