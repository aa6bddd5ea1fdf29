package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"travelplanner/internal/domain"
)

// ItineraryRepo defines the persistence operations for ItineraryItems.
// All single-item operations are scoped by tripID so an item that exists
// under a different trip behaves exactly like a missing item.
type ItineraryRepo interface {
	// Create inserts a new itinerary item and returns the persisted record.
	Create(ctx context.Context, item domain.ItineraryItem) (domain.ItineraryItem, error)

	// GetByID retrieves a single item by its UUID, scoped to the given tripID.
	// Returns domain.ErrNotFound if no item with that ID exists under that trip.
	GetByID(ctx context.Context, tripID, itemID uuid.UUID) (domain.ItineraryItem, error)

	// ListByTrip returns one page of a trip's items ordered by day, then
	// start time (unset start times last), then title, plus the total count.
	ListByTrip(ctx context.Context, tripID uuid.UUID, p domain.PageParams) ([]domain.ItineraryItem, int64, error)

	// Update overwrites the mutable fields of an item, scoped by its TripID.
	// Returns domain.ErrNotFound if no item with that ID exists under that trip.
	Update(ctx context.Context, item domain.ItineraryItem) (domain.ItineraryItem, error)

	// Delete removes an item by ID, scoped to the given tripID.
	// Returns domain.ErrNotFound if no item with that ID exists under that trip.
	Delete(ctx context.Context, tripID, itemID uuid.UUID) error
}

// pgItineraryRepo is the Postgres implementation of ItineraryRepo.
type pgItineraryRepo struct {
	db db
}

// NewItineraryRepo constructs an ItineraryRepo backed by the provided db connection.
func NewItineraryRepo(db db) ItineraryRepo {
	return &pgItineraryRepo{db: db}
}

func (r *pgItineraryRepo) Create(ctx context.Context, item domain.ItineraryItem) (domain.ItineraryItem, error) {
	const q = `
		INSERT INTO itinerary_items (trip_id, day, title, description, start_time, end_time, destination_id)
		VALUES (@trip_id, @day, @title, @description, @start_time, @end_time, @destination_id)
		RETURNING id, trip_id, day, title, description, start_time, end_time, destination_id`

	args := pgx.NamedArgs{
		"trip_id":        item.TripID,
		"day":            item.Day,
		"title":          item.Title,
		"description":    item.Description,
		"start_time":     item.StartTime,
		"end_time":       item.EndTime,
		"destination_id": item.DestinationID,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanItineraryItem(row)
	if err != nil {
		return domain.ItineraryItem{}, fmt.Errorf("repo.ItineraryRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgItineraryRepo) GetByID(ctx context.Context, tripID, itemID uuid.UUID) (domain.ItineraryItem, error) {
	const q = `
		SELECT id, trip_id, day, title, description, start_time, end_time, destination_id
		FROM itinerary_items
		WHERE id = @id AND trip_id = @trip_id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": itemID, "trip_id": tripID})
	result, err := scanItineraryItem(row)
	if err != nil {
		return domain.ItineraryItem{}, fmt.Errorf("repo.ItineraryRepo.GetByID: %w", err)
	}
	return result, nil
}

// ListByTrip orders by (day, start_time NULLS LAST, title, id) — the id
// tie-break keeps pages stable when two items share day, time, and title.
func (r *pgItineraryRepo) ListByTrip(ctx context.Context, tripID uuid.UUID, p domain.PageParams) ([]domain.ItineraryItem, int64, error) {
	args := pgx.NamedArgs{"trip_id": tripID}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM itinerary_items WHERE trip_id = @trip_id`, args).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("repo.ItineraryRepo.ListByTrip: count: %w", err)
	}

	const q = `
		SELECT id, trip_id, day, title, description, start_time, end_time, destination_id
		FROM itinerary_items
		WHERE trip_id = @trip_id
		ORDER BY day ASC, start_time ASC NULLS LAST, title ASC, id ASC
		LIMIT @limit OFFSET @offset`

	args["limit"] = p.Limit
	args["offset"] = p.Offset
	rows, err := r.db.Query(ctx, q, args)
	if err != nil {
		return nil, 0, fmt.Errorf("repo.ItineraryRepo.ListByTrip: %w", err)
	}
	defer rows.Close()

	var items []domain.ItineraryItem
	for rows.Next() {
		item, err := scanItineraryItem(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("repo.ItineraryRepo.ListByTrip: scan: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("repo.ItineraryRepo.ListByTrip: rows: %w", err)
	}

	return items, total, nil
}

func (r *pgItineraryRepo) Update(ctx context.Context, item domain.ItineraryItem) (domain.ItineraryItem, error) {
	const q = `
		UPDATE itinerary_items
		SET day            = @day,
		    title          = @title,
		    description    = @description,
		    start_time     = @start_time,
		    end_time       = @end_time,
		    destination_id = @destination_id
		WHERE id = @id AND trip_id = @trip_id
		RETURNING id, trip_id, day, title, description, start_time, end_time, destination_id`

	args := pgx.NamedArgs{
		"id":             item.ID,
		"trip_id":        item.TripID,
		"day":            item.Day,
		"title":          item.Title,
		"description":    item.Description,
		"start_time":     item.StartTime,
		"end_time":       item.EndTime,
		"destination_id": item.DestinationID,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanItineraryItem(row)
	if err != nil {
		return domain.ItineraryItem{}, fmt.Errorf("repo.ItineraryRepo.Update: %w", err)
	}
	return result, nil
}

func (r *pgItineraryRepo) Delete(ctx context.Context, tripID, itemID uuid.UUID) error {
	const q = `DELETE FROM itinerary_items WHERE id = @id AND trip_id = @trip_id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": itemID, "trip_id": tripID})
	if err != nil {
		return fmt.Errorf("repo.ItineraryRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.ItineraryRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// scanItineraryItem maps a single database row into a domain.ItineraryItem.
func scanItineraryItem(s scanner) (domain.ItineraryItem, error) {
	var (
		item      domain.ItineraryItem
		id        pgtype.UUID
		tripID    pgtype.UUID
		desc      pgtype.Text
		startTime pgtype.Timestamptz
		endTime   pgtype.Timestamptz
		destID    pgtype.UUID
	)

	err := s.Scan(&id, &tripID, &item.Day, &item.Title, &desc, &startTime, &endTime, &destID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ItineraryItem{}, domain.ErrNotFound
		}
		return domain.ItineraryItem{}, err
	}

	item.ID = uuid.UUID(id.Bytes)
	item.TripID = uuid.UUID(tripID.Bytes)
	if desc.Valid {
		v := desc.String
		item.Description = &v
	}
	if startTime.Valid {
		v := startTime.Time
		item.StartTime = &v
	}
	if endTime.Valid {
		v := endTime.Time
		item.EndTime = &v
	}
	if destID.Valid {
		v := uuid.UUID(destID.Bytes)
		item.DestinationID = &v
	}

	return item, nil
}
