// Package ui exposes the scoring core over HTTP.
package ui

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"govmaf/adapters/excel"
	"govmaf/internal"
	"govmaf/internal/config"
	"govmaf/ports"
)

// Server is the HTTP application
type Server struct {
	router   *chi.Mux
	repo     ports.RunRepository
	exporter *excel.RunExporter
	scoring  config.ScoringConfig
	logger   *internal.Logger
}

// NewServer wires the scoring service routes. repo must not be nil; wire
// the in-memory repository when Postgres is not configured.
func NewServer(repo ports.RunRepository, scoring config.ScoringConfig, logger *internal.Logger) *Server {
	s := &Server{
		router:   chi.NewRouter(),
		repo:     repo,
		exporter: excel.NewRunExporter(),
		scoring:  scoring,
		logger:   logger,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.Recoverer)

	s.router.Route("/api", func(r chi.Router) {
		r.Post("/score", s.handleScore)
		r.Get("/runs", s.handleListRuns)
		r.Route("/runs/{id}", func(r chi.Router) {
			r.Get("/", s.handleGetRun)
			r.Get("/report", s.handleRunReport)
			r.Get("/export", s.handleRunExport)
		})
	})
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start runs the HTTP server on addr.
func (s *Server) Start(addr string) error {
	s.logger.Info("scoring service listening on %s", addr)
	return http.ListenAndServe(addr, s.router)
}
