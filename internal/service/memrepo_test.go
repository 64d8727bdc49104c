package service_test

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/trip-planner/backend/internal/domain"
	"github.com/pkordes/trip-planner/backend/internal/repo"
)

// memRepo is an in-memory repo.TripRepo that evaluates filters in Go.
// It lets the property tests exercise list semantics without Postgres.
// Each created record gets a strictly later CreatedAt so ordering is deterministic.
type memRepo struct {
	mu    sync.Mutex
	trips map[uuid.UUID]domain.TripPlan
	clock time.Time
}

var _ repo.TripRepo = (*memRepo)(nil)

func newMemRepo() *memRepo {
	return &memRepo{
		trips: map[uuid.UUID]domain.TripPlan{},
		clock: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (m *memRepo) Create(_ context.Context, f domain.TripPatch) (domain.TripPlan, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.clock = m.clock.Add(time.Millisecond)
	t := domain.TripPlan{
		ID:          uuid.New(),
		Title:       *f.Title,
		Destination: *f.Destination,
		Days:        *f.Days,
		Budget:      *f.Budget,
		CreatedAt:   m.clock,
	}
	m.trips[t.ID] = t
	return t, nil
}

func (m *memRepo) GetByID(_ context.Context, id uuid.UUID) (domain.TripPlan, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	t, ok := m.trips[id]
	if !ok {
		return domain.TripPlan{}, domain.ErrNotFound
	}
	return t, nil
}

func (m *memRepo) List(_ context.Context, q domain.TripQuery) ([]domain.TripPlan, error) {
	matched := m.matching(q.Filter)
	sort.Slice(matched, func(i, j int) bool { return matched[i].CreatedAt.After(matched[j].CreatedAt) })

	start := min(q.Window.Skip(), len(matched))
	end := min(start+q.Window.Limit, len(matched))
	return matched[start:end], nil
}

func (m *memRepo) Count(_ context.Context, f domain.TripFilter) (int64, error) {
	return int64(len(m.matching(f))), nil
}

func (m *memRepo) Update(_ context.Context, id uuid.UUID, p domain.TripPatch) (domain.TripPlan, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	t, ok := m.trips[id]
	if !ok {
		return domain.TripPlan{}, domain.ErrNotFound
	}
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Destination != nil {
		t.Destination = *p.Destination
	}
	if p.Days != nil {
		t.Days = *p.Days
	}
	if p.Budget != nil {
		t.Budget = *p.Budget
	}
	m.trips[id] = t
	return t, nil
}

func (m *memRepo) matching(f domain.TripFilter) []domain.TripPlan {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := []domain.TripPlan{}
	for _, t := range m.trips {
		if matches(f, t) {
			out = append(out, t)
		}
	}
	return out
}

func matches(f domain.TripFilter, t domain.TripPlan) bool {
	for _, c := range f.Conditions {
		switch c := c.(type) {
		case domain.TextMatch:
			hit := false
			for _, field := range c.Fields {
				v := t.Title
				if field == domain.FieldDestination {
					v = t.Destination
				}
				hit = hit || containsFold(v, c.Term)
			}
			if !hit {
				return false
			}
		case domain.BudgetRange:
			if c.Min != nil && t.Budget < *c.Min {
				return false
			}
			if c.Max != nil && t.Budget > *c.Max {
				return false
			}
		}
	}
	return true
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}
