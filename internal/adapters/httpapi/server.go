// Package httpapi exposes the computed run statistics to the
// visualization front-end over HTTP.
package httpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"go.trai.ch/runviz/internal/adapters/config"
	"go.trai.ch/runviz/internal/core/domain"
	"go.trai.ch/runviz/internal/core/ports"
	"go.trai.ch/runviz/internal/metrics"
)

// Runtime is the subset of the runtime engine the HTTP layer consumes.
type Runtime interface {
	ReloadIfNeeded(ctx context.Context) (bool, error)
	EnsureTemplate(ctx context.Context, template string) (bool, error)
	Snapshot() *domain.Dataset
	TaskStats() []domain.TaskStat
}

// Server is the runviz HTTP API server.
type Server struct {
	rt       Runtime
	log      ports.Logger
	sampling config.SamplingConfig
}

// NewServer creates a new API server.
func NewServer(rt Runtime, log ports.Logger, sampling config.SamplingConfig) *Server {
	return &Server{rt: rt, log: log, sampling: sampling}
}

// Handler returns the chi router with all routes mounted.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Use(s.freshness)
		r.Use(s.responseSize)

		r.Get("/runtime-template/{name}", s.handleEnsureTemplate)

		r.Get("/task-execution-time", s.handleExecutionTime)
		r.Get("/task-execution-time/export-csv", s.handleExecutionTimeCSV)
		r.Get("/task-response-time", s.handleResponseTime)
		r.Get("/task-response-time/export-csv", s.handleResponseTimeCSV)
		r.Get("/task-retrieval-time", s.handleRetrievalTime)
		r.Get("/task-retrieval-time/export-csv", s.handleRetrievalTimeCSV)
	})

	return r
}

// freshness runs the staleness check before each request. A failed
// reload is logged and the request proceeds on the published snapshot:
// stale data is servable, a broken reload is not the reader's problem.
func (s *Server) freshness(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := s.rt.ReloadIfNeeded(r.Context()); err != nil {
			s.log.Error(err)
		}
		next.ServeHTTP(w, r)
	})
}

// responseSize records the response body size of each request.
func (s *Server) responseSize(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cw := &countingWriter{ResponseWriter: w}
		next.ServeHTTP(cw, r)

		metrics.ResponseSize.Observe(float64(cw.written))
		s.log.Info(fmt.Sprintf("route %s response size: %.2f MB",
			r.URL.Path, float64(cw.written)/1024/1024))
	})
}

type countingWriter struct {
	http.ResponseWriter
	written int64
}

func (w *countingWriter) Write(p []byte) (int, error) {
	n, err := w.ResponseWriter.Write(p)
	w.written += int64(n)
	return n, err
}

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
