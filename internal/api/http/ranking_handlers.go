package http

import (
	"context"
	"errors"
	"io"
	"log"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/mind-engage/mindengage-spk/internal/ingest"
	"github.com/mind-engage/mindengage-spk/internal/runlog"
	"github.com/mind-engage/mindengage-spk/internal/spk"
)

// Computer runs the ranking pipeline over one uploaded table.
type Computer interface {
	Compute(ctx context.Context, t spk.Table, w spk.Weights) (spk.Result, error)
}

// RunStore records and lists completed runs.
type RunStore interface {
	Append(ctx context.Context, run runlog.Run) (runlog.Run, error)
	List(ctx context.Context, limit int) ([]runlog.Run, error)
}

// POST /compute-ranking  multipart: file, w_modul, w_utp, w_uap, w_keaktifan
//
// runs may be nil, in which case nothing is recorded.
func ComputeRankingHandler(eng Computer, runs RunStore, maxBytes int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.ContentLength > maxBytes {
			writeErr(w, http.StatusRequestEntityTooLarge, "upload_too_large", "request body too large")
			return
		}
		r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
		if err := r.ParseMultipartForm(maxBytes); err != nil {
			var tooBig *http.MaxBytesError
			if errors.As(err, &tooBig) {
				writeErr(w, http.StatusRequestEntityTooLarge, "upload_too_large", err.Error())
				return
			}
			writeErr(w, http.StatusBadRequest, "bad_form", "expected multipart/form-data: "+err.Error())
			return
		}
		f, hdr, err := r.FormFile("file")
		if err != nil {
			writeErr(w, http.StatusBadRequest, "bad_form", "file required")
			return
		}
		defer f.Close()
		data, err := io.ReadAll(f)
		if err != nil {
			writeErr(w, http.StatusBadRequest, "bad_form", "read file: "+err.Error())
			return
		}

		weights, err := parseWeights(r)
		if err != nil {
			writeErr(w, http.StatusBadRequest, "bad_weight", err.Error())
			return
		}

		table, err := ingest.Read(hdr.Filename, data)
		if err != nil {
			writeErr(w, http.StatusBadRequest, "bad_file", err.Error())
			return
		}

		res, err := eng.Compute(r.Context(), table, weights)
		if err != nil {
			if ve, ok := spk.IsValidation(err); ok {
				writeErr(w, http.StatusUnprocessableEntity, string(ve.Kind), ve.Error())
				return
			}
			// middleware.Timeout answers 504 once the deadline passes
			if errors.Is(err, context.DeadlineExceeded) {
				return
			}
			if errors.Is(err, context.Canceled) {
				writeErr(w, http.StatusServiceUnavailable, "canceled", err.Error())
				return
			}
			log.Printf("compute ranking: %v", err)
			writeErr(w, http.StatusInternalServerError, "internal", "compute failed")
			return
		}

		if runs != nil {
			run, err := runs.Append(r.Context(), runlog.FromResult(res, weights, middleware.GetReqID(r.Context())))
			if err != nil {
				log.Printf("run log: %v", err)
			} else {
				res.RunID = run.ID
			}
		}
		writeJSON(w, http.StatusOK, res)
	}
}

// GET /runs?limit=N
func ListRunsHandler(runs RunStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := 50
		if v := r.URL.Query().Get("limit"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 500 {
				limit = n
			}
		}
		out, err := runs.List(r.Context(), limit)
		if err != nil {
			writeErr(w, http.StatusInternalServerError, "internal", "list runs: "+err.Error())
			return
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func parseWeights(r *http.Request) (spk.Weights, error) {
	var w spk.Weights
	fields := []struct {
		name string
		dst  *float64
	}{
		{"w_modul", &w.Modul},
		{"w_utp", &w.UTP},
		{"w_uap", &w.UAP},
		{"w_keaktifan", &w.Keaktifan},
	}
	for _, f := range fields {
		v := strings.TrimSpace(r.FormValue(f.name))
		if v == "" {
			return w, errors.New(f.name + " required")
		}
		x, err := strconv.ParseFloat(v, 64)
		if err != nil || math.IsNaN(x) || math.IsInf(x, 0) {
			return w, errors.New(f.name + " must be a finite number")
		}
		*f.dst = x
	}
	return w, nil
}
