// Package server exposes schedule generation and the run history over a
// JSON HTTP API.
package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/derekprior/rrsched/internal/metrics"
	"github.com/derekprior/rrsched/internal/store"
)

// Server is the rrsched HTTP API.
type Server struct {
	router    chi.Router
	logger    *slog.Logger
	store     store.Store
	metrics   *metrics.Manager
	startTime time.Time
}

// New creates a Server with all routes registered. A nil m gets a private
// metrics manager.
func New(st store.Store, m *metrics.Manager, logger *slog.Logger) *Server {
	if m == nil {
		m = metrics.NewManager()
	}
	s := &Server{
		router:    chi.NewRouter(),
		logger:    logger.With("component", "server"),
		store:     st,
		metrics:   m,
		startTime: time.Now(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	r := s.router

	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(requestIDMiddleware)
	r.Use(observeMiddleware(s.logger, s.metrics))

	r.Get("/healthz", s.handleHealth)
	r.Handle("/metrics", s.metrics.Handler())

	r.Route("/api/v1/schedules", func(r chi.Router) {
		r.Get("/", s.handleListSchedules)
		r.Post("/", s.handleCreateSchedule)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.handleGetSchedule)
			r.Get("/stats", s.handleGetScheduleStats)
		})
	})
}
