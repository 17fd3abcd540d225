package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/cwilder/lifequest/internal/handler"
	"github.com/cwilder/lifequest/internal/metrics"
	"github.com/cwilder/lifequest/internal/quest"
)

type Server struct {
	httpServer   *http.Server
	questService quest.Service
}

// Options carries the non-service wiring for the router.
type Options struct {
	Port        int
	Version     string
	Environment string

	// Primary is the storage medium probed by /readyz; nil disables the probe.
	Primary handler.Pinger
}

// New builds the router and the HTTP server around the quest service.
func New(opts Options, questService quest.Service) *Server {
	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	r.Use(SecurityHeadersMiddleware())
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(opts.Primary))

	// Version endpoint for deployment verification
	r.Get("/version", handler.HandleVersion(opts.Version, opts.Environment))

	// Metrics endpoint for Prometheus scraping
	r.Handle("/metrics", promhttp.Handler())

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/profile", handler.HandleGetProfile(questService))
		r.Put("/profile", handler.HandleUpdateProfile(questService))

		r.Route("/quests", func(r chi.Router) {
			r.Get("/daily", handler.HandleGetDailyQuests(questService))
			r.Post("/daily/{id}/complete", handler.HandleCompleteDailyQuest(questService))
			r.Post("/daily/reset", handler.HandleResetDailyQuests(questService))

			r.Get("/main", handler.HandleGetMainQuests(questService))
			r.Post("/main/{questID}/steps/{stepID}/toggle", handler.HandleToggleStep(questService))
			r.Post("/main/reset", handler.HandleResetMainQuests(questService))
		})
	})

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
		questService: questService,
	}
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
