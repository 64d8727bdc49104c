// Package repo contains all database access logic for the Trip Planner API.
// It holds the TripRepo interface and its Postgres implementation.
// No business logic lives here, only SQL and type mapping.
package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/trip-planner/backend/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// TripRepo defines the persistence operations for trip plans.
// The service layer depends on this interface, not the concrete Postgres
// implementation, which allows the service to be unit-tested with a fake.
type TripRepo interface {
	// Create inserts a new trip plan and returns the persisted record with the
	// DB-generated id and created_at populated.
	Create(ctx context.Context, fields domain.TripPatch) (domain.TripPlan, error)

	// GetByID retrieves a single trip plan by its UUID primary key.
	// Returns domain.ErrNotFound if no record with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.TripPlan, error)

	// List returns the window of records matching the filter, newest first.
	List(ctx context.Context, q domain.TripQuery) ([]domain.TripPlan, error)

	// Count returns how many records match the filter.
	Count(ctx context.Context, f domain.TripFilter) (int64, error)

	// Update writes every provided field of the patch in a single statement
	// and returns the full record. Returns domain.ErrNotFound if no record
	// with that ID exists.
	Update(ctx context.Context, id uuid.UUID, patch domain.TripPatch) (domain.TripPlan, error)
}

// pgTripRepo is the Postgres implementation of TripRepo.
type pgTripRepo struct {
	db db
}

// NewTripRepo constructs a TripRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewTripRepo(db db) TripRepo {
	return &pgTripRepo{db: db}
}

const tripColumns = `id, title, destination, days, budget, created_at`

// Create inserts a new trip_plans row and returns the full persisted record.
func (r *pgTripRepo) Create(ctx context.Context, fields domain.TripPatch) (domain.TripPlan, error) {
	const q = `
		INSERT INTO trip_plans (title, destination, days, budget)
		VALUES (@title, @destination, @days, @budget)
		RETURNING ` + tripColumns

	args := pgx.NamedArgs{
		"title":       fields.Title,
		"destination": fields.Destination,
		"days":        fields.Days,
		"budget":      fields.Budget,
	}

	result, err := scanTrip(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.TripPlan{}, fmt.Errorf("repo.TripRepo.Create: %w", mapErr(err))
	}
	return result, nil
}

// GetByID retrieves a trip plan by primary key.
func (r *pgTripRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.TripPlan, error) {
	const q = `SELECT ` + tripColumns + ` FROM trip_plans WHERE id = @id`

	result, err := scanTrip(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.TripPlan{}, fmt.Errorf("repo.TripRepo.GetByID: %w", mapErr(err))
	}
	return result, nil
}

// List returns one page of matching trip plans ordered by created_at descending.
// The id tie-breaker keeps pages stable when timestamps collide.
func (r *pgTripRepo) List(ctx context.Context, tq domain.TripQuery) ([]domain.TripPlan, error) {
	where, args, err := whereClause(tq.Filter)
	if err != nil {
		return nil, fmt.Errorf("repo.TripRepo.List: %w", err)
	}
	args["limit"] = tq.Window.Limit
	args["offset"] = tq.Window.Skip()

	q := `SELECT ` + tripColumns + ` FROM trip_plans ` + where + `
		ORDER BY created_at DESC, id DESC
		LIMIT @limit OFFSET @offset`

	rows, err := r.db.Query(ctx, q, args)
	if err != nil {
		return nil, fmt.Errorf("repo.TripRepo.List: %w", mapErr(err))
	}
	defer rows.Close()

	trips := []domain.TripPlan{}
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.TripRepo.List: scan: %w", mapErr(err))
		}
		trips = append(trips, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.TripRepo.List: rows: %w", mapErr(err))
	}

	return trips, nil
}

// Count returns the number of trip plans matching f.
func (r *pgTripRepo) Count(ctx context.Context, f domain.TripFilter) (int64, error) {
	where, args, err := whereClause(f)
	if err != nil {
		return 0, fmt.Errorf("repo.TripRepo.Count: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM trip_plans `+where, args).Scan(&total); err != nil {
		return 0, fmt.Errorf("repo.TripRepo.Count: %w", mapErr(err))
	}
	return total, nil
}

// Update applies the provided fields of patch. NULL parameters keep the
// current column value, so an empty patch returns the record unchanged.
func (r *pgTripRepo) Update(ctx context.Context, id uuid.UUID, patch domain.TripPatch) (domain.TripPlan, error) {
	const q = `
		UPDATE trip_plans
		SET title       = COALESCE(@title::varchar, title),
		    destination = COALESCE(@destination::varchar, destination),
		    days        = COALESCE(@days::integer, days),
		    budget      = COALESCE(@budget::double precision, budget)
		WHERE id = @id
		RETURNING ` + tripColumns

	args := pgx.NamedArgs{
		"id":          id,
		"title":       patch.Title,
		"destination": patch.Destination,
		"days":        patch.Days,
		"budget":      patch.Budget,
	}

	result, err := scanTrip(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.TripPlan{}, fmt.Errorf("repo.TripRepo.Update: %w", mapErr(err))
	}
	return result, nil
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing scanTrip to be
// reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// scanTrip maps a single database row into a domain.TripPlan.
func scanTrip(s scanner) (domain.TripPlan, error) {
	var (
		t  domain.TripPlan
		id pgtype.UUID
	)

	if err := s.Scan(&id, &t.Title, &t.Destination, &t.Days, &t.Budget, &t.CreatedAt); err != nil {
		return domain.TripPlan{}, err
	}

	t.ID = uuid.UUID(id.Bytes)
	t.CreatedAt = t.CreatedAt.UTC()
	return t, nil
}

// mapErr translates driver errors into domain sentinels. Anything else is
// returned unchanged for the caller to wrap.
func mapErr(err error) error {
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		return domain.ErrNotFound
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return fmt.Errorf("%w: %w", domain.ErrUnavailable, err)
	default:
		return err
	}
}
