// Package service contains the business logic for the Trip Planner API.
// Services validate inputs and orchestrate repo calls.
// No SQL lives here. Services depend on repo interfaces, not implementations.
package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pkordes/trip-planner/backend/internal/domain"
	"github.com/pkordes/trip-planner/backend/internal/repo"
)

// TripService implements the four trip plan operations.
// Every entry point validates before the repo is touched.
type TripService struct {
	repo repo.TripRepo
}

// NewTripService constructs a TripService backed by the provided TripRepo.
func NewTripService(r repo.TripRepo) *TripService {
	return &TripService{repo: r}
}

// List returns one page of matching trip plans plus pagination metadata.
// An empty result is not an error.
func (s *TripService) List(ctx context.Context, q domain.TripQuery) (domain.TripPage, error) {
	trips, err := s.repo.List(ctx, q)
	if err != nil {
		return domain.TripPage{}, fmt.Errorf("service.TripService.List: %w", err)
	}
	total, err := s.repo.Count(ctx, q.Filter)
	if err != nil {
		return domain.TripPage{}, fmt.Errorf("service.TripService.List: %w", err)
	}
	if trips == nil {
		trips = []domain.TripPlan{}
	}
	return domain.TripPage{Trips: trips, Pagination: domain.NewPagination(q.Window, total)}, nil
}

// GetByID returns a single trip plan. The id must be a well-formed UUID.
func (s *TripService) GetByID(ctx context.Context, id string) (domain.TripPlan, error) {
	uid, err := parseID(id)
	if err != nil {
		return domain.TripPlan{}, fmt.Errorf("service.TripService.GetByID: %w", err)
	}
	trip, err := s.repo.GetByID(ctx, uid)
	if err != nil {
		return domain.TripPlan{}, fmt.Errorf("service.TripService.GetByID: %w", err)
	}
	return trip, nil
}

// Create validates every field and persists a new trip plan.
func (s *TripService) Create(ctx context.Context, fields domain.TripPatch) (domain.TripPlan, error) {
	fields = fields.Normalize()
	if err := fields.ValidateCreate(); err != nil {
		return domain.TripPlan{}, fmt.Errorf("service.TripService.Create: %w", err)
	}
	trip, err := s.repo.Create(ctx, fields)
	if err != nil {
		return domain.TripPlan{}, fmt.Errorf("service.TripService.Create: %w", err)
	}
	return trip, nil
}

// Update validates the provided fields and writes them to an existing trip
// plan. Concurrent updates to the same id are last-write-wins.
func (s *TripService) Update(ctx context.Context, id string, patch domain.TripPatch) (domain.TripPlan, error) {
	uid, err := parseID(id)
	if err != nil {
		return domain.TripPlan{}, fmt.Errorf("service.TripService.Update: %w", err)
	}
	patch = patch.Normalize()
	if err := patch.ValidateUpdate(); err != nil {
		return domain.TripPlan{}, fmt.Errorf("service.TripService.Update: %w", err)
	}
	trip, err := s.repo.Update(ctx, uid, patch)
	if err != nil {
		return domain.TripPlan{}, fmt.Errorf("service.TripService.Update: %w", err)
	}
	return trip, nil
}

func parseID(id string) (uuid.UUID, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %q", domain.ErrInvalidID, id)
	}
	return uid, nil
}
