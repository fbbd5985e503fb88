package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type RouterOptions struct {
	Engine         Computer
	Runs           RunStore // nil: runs are neither recorded nor listed
	CORSOrigins    []string
	MaxUploadBytes int64
	RequestTimeout time.Duration
}

// NewRouter mounts the ranking API with the standard middleware stack.
func NewRouter(o RouterOptions) http.Handler {
	if o.MaxUploadBytes <= 0 {
		o.MaxUploadBytes = 10 << 20
	}
	if len(o.CORSOrigins) == 0 {
		o.CORSOrigins = []string{"*"}
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	if o.RequestTimeout > 0 {
		r.Use(middleware.Timeout(o.RequestTimeout))
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: o.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS", "HEAD"},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{"Content-Length", "X-Request-Id"},
		MaxAge:         300,
	}))

	compute := ComputeRankingHandler(o.Engine, o.Runs, o.MaxUploadBytes)
	r.Post("/compute-ranking", compute)
	r.Post("/proses-otomatis/", compute) // path used by the first UI release

	if o.Runs != nil {
		r.Get("/runs", ListRunsHandler(o.Runs))
	}

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })
	return r
}
