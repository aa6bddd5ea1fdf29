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

// DestinationRepo defines the persistence operations for Destinations.
type DestinationRepo interface {
	// Create inserts a new destination and returns the persisted record.
	Create(ctx context.Context, dest domain.Destination) (domain.Destination, error)

	// GetByID retrieves a single destination by its UUID primary key.
	// Returns domain.ErrNotFound if no destination with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Destination, error)

	// Search returns one page of destinations matching the query plus the
	// total matching count ignoring pagination. Matching is a
	// case-insensitive substring test against name, and against country/city
	// when the corresponding toggle is on, combined with OR.
	Search(ctx context.Context, s domain.DestinationSearch) ([]domain.Destination, int64, error)

	// Update overwrites the mutable fields of a destination and returns the
	// updated record. Returns domain.ErrNotFound if it does not exist.
	Update(ctx context.Context, dest domain.Destination) (domain.Destination, error)

	// Delete removes a destination by ID. Itinerary items referencing it keep
	// existing; the database clears their destination_id instead.
	// Returns domain.ErrNotFound if the destination does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}

// pgDestinationRepo is the Postgres implementation of DestinationRepo.
type pgDestinationRepo struct {
	db db
}

// NewDestinationRepo constructs a DestinationRepo backed by the provided db connection.
func NewDestinationRepo(db db) DestinationRepo {
	return &pgDestinationRepo{db: db}
}

func (r *pgDestinationRepo) Create(ctx context.Context, dest domain.Destination) (domain.Destination, error) {
	const q = `
		INSERT INTO destinations (name, country, city, description, popularity)
		VALUES (@name, @country, @city, @description, @popularity)
		RETURNING id, name, country, city, description, popularity`

	args := pgx.NamedArgs{
		"name":        dest.Name,
		"country":     dest.Country, // nil becomes NULL
		"city":        dest.City,
		"description": dest.Description,
		"popularity":  dest.Popularity,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanDestination(row)
	if err != nil {
		return domain.Destination{}, fmt.Errorf("repo.DestinationRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgDestinationRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Destination, error) {
	const q = `
		SELECT id, name, country, city, description, popularity
		FROM destinations
		WHERE id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := scanDestination(row)
	if err != nil {
		return domain.Destination{}, fmt.Errorf("repo.DestinationRepo.GetByID: %w", err)
	}
	return result, nil
}

// Search matches with ILIKE so the pg_trgm GIN indexes accelerate the
// substring scans. Rows with no popularity sort after every ranked row, then
// name and id keep pagination stable across pages.
func (r *pgDestinationRepo) Search(ctx context.Context, s domain.DestinationSearch) ([]domain.Destination, int64, error) {
	const where = `
		WHERE name ILIKE @pattern
		   OR (@include_country AND country ILIKE @pattern)
		   OR (@include_city AND city ILIKE @pattern)`

	args := pgx.NamedArgs{
		"pattern":         "%" + s.Query + "%",
		"include_country": s.IncludeCountry,
		"include_city":    s.IncludeCity,
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM destinations`+where, args).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("repo.DestinationRepo.Search: count: %w", err)
	}

	args["limit"] = s.Page.Limit
	args["offset"] = s.Page.Offset
	const q = `
		SELECT id, name, country, city, description, popularity
		FROM destinations` + where + `
		ORDER BY popularity DESC NULLS LAST, name ASC, id ASC
		LIMIT @limit OFFSET @offset`

	rows, err := r.db.Query(ctx, q, args)
	if err != nil {
		return nil, 0, fmt.Errorf("repo.DestinationRepo.Search: %w", err)
	}
	defer rows.Close()

	var dests []domain.Destination
	for rows.Next() {
		d, err := scanDestination(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("repo.DestinationRepo.Search: scan: %w", err)
		}
		dests = append(dests, d)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("repo.DestinationRepo.Search: rows: %w", err)
	}

	return dests, total, nil
}

func (r *pgDestinationRepo) Update(ctx context.Context, dest domain.Destination) (domain.Destination, error) {
	const q = `
		UPDATE destinations
		SET name        = @name,
		    country     = @country,
		    city        = @city,
		    description = @description,
		    popularity  = @popularity
		WHERE id = @id
		RETURNING id, name, country, city, description, popularity`

	args := pgx.NamedArgs{
		"id":          dest.ID,
		"name":        dest.Name,
		"country":     dest.Country,
		"city":        dest.City,
		"description": dest.Description,
		"popularity":  dest.Popularity,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanDestination(row)
	if err != nil {
		return domain.Destination{}, fmt.Errorf("repo.DestinationRepo.Update: %w", err)
	}
	return result, nil
}

func (r *pgDestinationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM destinations WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.DestinationRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.DestinationRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// scanDestination maps a single database row into a domain.Destination,
// converting the nullable text and integer columns to pointers.
func scanDestination(s scanner) (domain.Destination, error) {
	var (
		d          domain.Destination
		id         pgtype.UUID
		country    pgtype.Text
		city       pgtype.Text
		desc       pgtype.Text
		popularity pgtype.Int4
	)

	err := s.Scan(&id, &d.Name, &country, &city, &desc, &popularity)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Destination{}, domain.ErrNotFound
		}
		return domain.Destination{}, err
	}

	d.ID = uuid.UUID(id.Bytes)
	if country.Valid {
		v := country.String
		d.Country = &v
	}
	if city.Valid {
		v := city.String
		d.City = &v
	}
	if desc.Valid {
		v := desc.String
		d.Description = &v
	}
	if popularity.Valid {
		v := int(popularity.Int32)
		d.Popularity = &v
	}

	return d, nil
}
