// Package handler implements the HTTP surface of the Trip Planner API.
// All handlers are methods on Server. Methods are split into files by concern
// (health.go, trip.go, docs.go) but share the same Server struct so they can
// access its dependencies.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pkordes/trip-planner/backend/internal/domain"
)

// TripServicer defines the business operations the trip handlers depend on.
// Defining the interface here (in the consumer package) lets handler tests
// inject a fake without touching the database or service layer.
type TripServicer interface {
	List(ctx context.Context, q domain.TripQuery) (domain.TripPage, error)
	GetByID(ctx context.Context, id string) (domain.TripPlan, error)
	Create(ctx context.Context, fields domain.TripPatch) (domain.TripPlan, error)
	Update(ctx context.Context, id string, patch domain.TripPatch) (domain.TripPlan, error)
}

// Pinger reports whether the store is reachable. *pgxpool.Pool satisfies it.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Server holds the dependencies shared by every handler.
type Server struct {
	trips TripServicer
	db    Pinger
	log   *slog.Logger
}

// NewServer constructs the Server with all its dependencies.
// A nil logger falls back to slog.Default().
func NewServer(trips TripServicer, db Pinger, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{trips: trips, db: db, log: log}
}

// NewHealthHandler returns a Server for health-check-only use.
func NewHealthHandler() *Server {
	return NewServer(nil, nil, nil)
}

// Routes returns the router for the whole HTTP surface. Cross-cutting
// middleware (request id, logging, CORS, limits) is applied by the caller.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)
	r.Get("/readyz", s.GetReady)
	r.Get("/openapi.yaml", s.GetOpenAPI)

	r.Route("/api/trips", func(r chi.Router) {
		r.Get("/", s.ListTrips)
		r.Post("/", s.CreateTrip)
		r.Get("/{id}", s.GetTrip)
		r.Put("/{id}", s.UpdateTrip)
	})

	r.Handle("/*", s.UI())

	return r
}
