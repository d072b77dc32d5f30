// Package httpadapter serves the porutham JSON API alongside the health,
// readiness and metrics endpoints.
package httpadapter

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/couchcryptid/porutham-service/internal/adapter/store"
	"github.com/couchcryptid/porutham-service/internal/domain"
	"github.com/couchcryptid/porutham-service/internal/observability"
)

// ChartComputer computes a birth profile from raw birth details.
type ChartComputer interface {
	Compute(ctx context.Context, d domain.BirthDetails) (domain.BirthProfile, error)
}

// Options are the collaborators behind the API routes.
type Options struct {
	Ready        sharedobs.ReadinessChecker
	Charts       ChartComputer
	Profiles     store.ProfileRepo
	Matches      store.MatchRepo
	Metrics      *observability.Metrics
	MatchOptions domain.MatchOptions
}

// Server exposes the API plus /healthz, /readyz and /metrics.
type Server struct {
	httpServer *http.Server
	opts       Options
	logger     *slog.Logger
}

// NewServer creates the HTTP server and registers every route.
func NewServer(addr string, opts Options, logger *slog.Logger) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		opts:   opts,
		logger: logger,
	}

	mux.HandleFunc("GET /healthz", sharedobs.LivenessHandler())
	mux.HandleFunc("GET /readyz", sharedobs.ReadinessHandler(opts.Ready))
	mux.Handle("GET /metrics", promhttp.Handler())

	mux.HandleFunc("POST /api/v1/charts", s.handleChart)
	mux.HandleFunc("POST /api/v1/porutham", s.handlePorutham)
	mux.HandleFunc("GET /api/v1/matches", s.handleMatches)

	mux.HandleFunc("POST /api/v1/profiles", s.handleCreateProfile)
	mux.HandleFunc("GET /api/v1/profiles", s.handleListProfiles)
	mux.HandleFunc("GET /api/v1/profiles/{id}", s.handleGetProfile)

	mux.HandleFunc("GET /api/v1/history", s.handleListHistory)
	mux.HandleFunc("GET /api/v1/history/{id}", s.handleGetHistory)

	mux.HandleFunc("GET /api/v1/stars", s.handleStars)
	mux.HandleFunc("GET /api/v1/rasis", s.handleRasis)
	mux.HandleFunc("GET /api/v1/spans", s.handleSpans)
	mux.HandleFunc("GET /api/v1/cities", s.handleCities)

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

// Checks is a ReadinessChecker that is ready only when every member is.
type Checks []sharedobs.ReadinessChecker

// CheckReadiness returns the first member error.
func (c Checks) CheckReadiness(ctx context.Context) error {
	for _, check := range c {
		if err := check.CheckReadiness(ctx); err != nil {
			return err
		}
	}
	return nil
}
