// Package repo contains all database access logic for the travel planner API.
// Each resource has its own file with an interface and a Postgres implementation.
// No business logic lives here — only SQL and type mapping.
package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"travelplanner/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test, giving free
// per-test isolation without any manual cleanup.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing the scan helpers
// to be reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// TripRepo defines the persistence operations for Trips.
// The service layer depends on this interface, not the concrete Postgres
// implementation, which allows the service to be unit-tested with a mock.
type TripRepo interface {
	// Create inserts a new trip and returns the persisted record (with
	// DB-generated id and created_at populated).
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)

	// GetByID retrieves a single trip by its UUID primary key.
	// Returns domain.ErrNotFound if no trip with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error)

	// List returns one page of trips in the requested order plus the total
	// number of trips ignoring pagination.
	List(ctx context.Context, sort domain.TripSort, p domain.PageParams) ([]domain.Trip, int64, error)

	// Update overwrites the mutable fields of an existing trip and returns the
	// updated record. Returns domain.ErrNotFound if no trip with that ID exists.
	Update(ctx context.Context, trip domain.Trip) (domain.Trip, error)

	// Delete removes a trip by ID. The database cascades the delete to the
	// trip's itinerary items, notes, and reminders in the same transaction.
	// Returns domain.ErrNotFound if the trip does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
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

func (r *pgTripRepo) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	const q = `
		INSERT INTO trips (name, start_date, end_date)
		VALUES (@name, @start_date, @end_date)
		RETURNING id, name, start_date, end_date, created_at`

	args := pgx.NamedArgs{
		"name":       trip.Name,
		"start_date": dateArg(trip.StartDate),
		"end_date":   dateArg(trip.EndDate),
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanTrip(row)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgTripRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	const q = `
		SELECT id, name, start_date, end_date, created_at
		FROM trips
		WHERE id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := scanTrip(row)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.GetByID: %w", err)
	}
	return result, nil
}

// List pages through trips with a deterministic secondary order on id so
// consecutive pages never overlap even when the sort key has duplicates.
func (r *pgTripRepo) List(ctx context.Context, sort domain.TripSort, p domain.PageParams) ([]domain.Trip, int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM trips`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("repo.TripRepo.List: count: %w", err)
	}

	// sort comes from a closed enum validated in domain.NewTripSort, so the
	// ORDER BY clause can be assembled from constants.
	col := "created_at"
	if sort.Field == domain.TripSortName {
		col = "name"
	}
	dir := "DESC"
	if sort.Dir == domain.SortAsc {
		dir = "ASC"
	}
	q := fmt.Sprintf(`
		SELECT id, name, start_date, end_date, created_at
		FROM trips
		ORDER BY %s %s, id ASC
		LIMIT @limit OFFSET @offset`, col, dir)

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"limit": p.Limit, "offset": p.Offset})
	if err != nil {
		return nil, 0, fmt.Errorf("repo.TripRepo.List: %w", err)
	}
	defer rows.Close()

	var trips []domain.Trip
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("repo.TripRepo.List: scan: %w", err)
		}
		trips = append(trips, t)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("repo.TripRepo.List: rows: %w", err)
	}

	return trips, total, nil
}

func (r *pgTripRepo) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	const q = `
		UPDATE trips
		SET name       = @name,
		    start_date = @start_date,
		    end_date   = @end_date
		WHERE id = @id
		RETURNING id, name, start_date, end_date, created_at`

	args := pgx.NamedArgs{
		"id":         trip.ID,
		"name":       trip.Name,
		"start_date": dateArg(trip.StartDate),
		"end_date":   dateArg(trip.EndDate),
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanTrip(row)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Update: %w", err)
	}
	return result, nil
}

func (r *pgTripRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM trips WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.TripRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.TripRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// dateArg converts an optional time.Time into a pgtype.Date so nil maps to
// SQL NULL and a set value maps to a date-only column value.
func dateArg(t *time.Time) pgtype.Date {
	if t == nil {
		return pgtype.Date{}
	}
	return pgtype.Date{Time: *t, Valid: true}
}

// scanTrip maps a single database row into a domain.Trip.
// It handles the UUID and nullable date conversions.
func scanTrip(s scanner) (domain.Trip, error) {
	var (
		t         domain.Trip
		id        pgtype.UUID
		startDate pgtype.Date
		endDate   pgtype.Date
	)

	err := s.Scan(&id, &t.Name, &startDate, &endDate, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Trip{}, domain.ErrNotFound
		}
		return domain.Trip{}, err
	}

	t.ID = uuid.UUID(id.Bytes)
	if startDate.Valid {
		sd := startDate.Time
		t.StartDate = &sd
	}
	if endDate.Valid {
		ed := endDate.Time
		t.EndDate = &ed
	}

	return t, nil
}
