package ops

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	ports "blog-admin-service/internal/domain/ports/output"
)

// HealthCheck reports whether a dependency is reachable.
type HealthCheck func(ctx context.Context) error

// Server exposes /metrics and /health for the process.
type Server struct {
	server  *http.Server
	log     ports.Logger
	metrics ports.MetricsProvider
	checks  map[string]HealthCheck
}

func NewServer(address string, port int, log ports.Logger, metrics ports.MetricsProvider, checks map[string]HealthCheck) *Server {
	s := &Server{
		log:     log,
		metrics: metrics,
		checks:  checks,
	}
	s.server = &http.Server{
		Addr:              fmt.Sprintf("%s:%d", address, port),
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
	r.Get("/health", s.health)
	return r
}

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	resp := healthResponse{Status: "ok", Checks: make(map[string]string, len(s.checks))}
	code := http.StatusOK
	for name, check := range s.checks {
		if err := check(ctx); err != nil {
			s.log.Warn("Health check failed", slog.String("check", name), slog.String("error", err.Error()))
			resp.Checks[name] = err.Error()
			resp.Status = "fail"
			code = http.StatusServiceUnavailable
			continue
		}
		resp.Checks[name] = "ok"
	}
	s.metrics.SetServiceHealth(code == http.StatusOK)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(resp)
}

// Run blocks until the server stops. A shutdown is not reported as an error.
func (s *Server) Run() error {
	s.log.Info("Starting ops server", slog.String("address", s.server.Addr))
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		s.log.Error("Ops server failed", slog.String("error", err.Error()))
		return fmt.Errorf("ops server: %w", err)
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info("Shutting down ops server")
	return s.server.Shutdown(ctx)
}
