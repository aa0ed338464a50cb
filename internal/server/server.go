// internal/server/server.go

// Package server exposes the decision engine over HTTP.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"vendor-advisor/internal/common/config"
	"vendor-advisor/internal/common/logger"
	"vendor-advisor/internal/common/observability"
	"vendor-advisor/internal/engine/orchestrator"
	"vendor-advisor/internal/models"
)

// Store is the persistence surface the handlers need. The concrete
// implementation is store.CachedStore.
type Store interface {
	FetchLatestSnapshot(ctx context.Context, userID string) (models.FinancialSnapshot, error)
	FetchProfile(ctx context.Context, userID string) (models.VendorProfile, error)
	SaveDecision(ctx context.Context, userID string, intent models.Intent, question string, result models.DecisionResult) (string, error)
	UpsertFeedback(ctx context.Context, decisionID string, helpful bool, comment string) error
	InsertSnapshot(ctx context.Context, userID string, snap models.FinancialSnapshot) error
}

// Decider runs one conversational turn.
type Decider interface {
	Decide(intent models.Intent, question string, payload models.Payload, snap models.FinancialSnapshot, profile models.VendorProfile) (orchestrator.TurnResult, error)
}

// Pinger reports backing-service health.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Server struct {
	store  Store
	engine Decider
	db     Pinger
	obs    *observability.Observability
	logger logger.Logger
	router *chi.Mux
}

func New(cfg config.ServerConfig, st Store, engine Decider, db Pinger, obs *observability.Observability, log logger.Logger) *Server {
	s := &Server{
		store:  st,
		engine: engine,
		db:     db,
		obs:    obs,
		logger: log.WithFields(map[string]interface{}{
			"component": "http",
		}),
	}
	s.setupRoutes(cfg)
	return s
}

func (s *Server) setupRoutes(cfg config.ServerConfig) {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(time.Duration(cfg.RequestTimeout) * time.Millisecond))

	r.Get("/api/v1/health", s.handleHealth)
	r.Post("/api/v1/decisions", s.handleDecision)
	r.Post("/api/v1/feedback", s.handleFeedback)
	r.Post("/api/v1/webhooks/snapshots", s.handleSnapshotWebhook)
	r.Handle("/metrics", promhttp.Handler())

	s.router = r
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}
