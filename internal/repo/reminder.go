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

// ReminderRepo defines the persistence operations for Reminders.
// All single-reminder operations are scoped by tripID to enforce ownership.
type ReminderRepo interface {
	// Create inserts a new reminder and returns the persisted record.
	Create(ctx context.Context, rem domain.Reminder) (domain.Reminder, error)

	// GetByID retrieves a single reminder by its UUID, scoped to the given tripID.
	// Returns domain.ErrNotFound if no reminder with that ID exists under that trip.
	GetByID(ctx context.Context, tripID, remID uuid.UUID) (domain.Reminder, error)

	// ListByTrip returns one page of a trip's reminders ordered by remind_at
	// descending, plus the total count ignoring pagination.
	ListByTrip(ctx context.Context, tripID uuid.UUID, p domain.PageParams) ([]domain.Reminder, int64, error)

	// Update overwrites the mutable fields of a reminder, scoped by its TripID.
	// Returns domain.ErrNotFound if no reminder with that ID exists under that trip.
	Update(ctx context.Context, rem domain.Reminder) (domain.Reminder, error)

	// Delete removes a reminder by ID, scoped to the given tripID.
	// Returns domain.ErrNotFound if no reminder with that ID exists under that trip.
	Delete(ctx context.Context, tripID, remID uuid.UUID) error
}

// pgReminderRepo is the Postgres implementation of ReminderRepo.
type pgReminderRepo struct {
	db db
}

// NewReminderRepo constructs a ReminderRepo backed by the provided db connection.
func NewReminderRepo(db db) ReminderRepo {
	return &pgReminderRepo{db: db}
}

func (r *pgReminderRepo) Create(ctx context.Context, rem domain.Reminder) (domain.Reminder, error) {
	const q = `
		INSERT INTO reminders (trip_id, message, remind_at, created_at)
		VALUES (@trip_id, @message, @remind_at, now())
		RETURNING id, trip_id, message, remind_at, created_at`

	args := pgx.NamedArgs{
		"trip_id":   rem.TripID,
		"message":   rem.Message,
		"remind_at": rem.RemindAt,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanReminder(row)
	if err != nil {
		return domain.Reminder{}, fmt.Errorf("repo.ReminderRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgReminderRepo) GetByID(ctx context.Context, tripID, remID uuid.UUID) (domain.Reminder, error) {
	const q = `
		SELECT id, trip_id, message, remind_at, created_at
		FROM reminders
		WHERE id = @id AND trip_id = @trip_id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": remID, "trip_id": tripID})
	result, err := scanReminder(row)
	if err != nil {
		return domain.Reminder{}, fmt.Errorf("repo.ReminderRepo.GetByID: %w", err)
	}
	return result, nil
}

func (r *pgReminderRepo) ListByTrip(ctx context.Context, tripID uuid.UUID, p domain.PageParams) ([]domain.Reminder, int64, error) {
	args := pgx.NamedArgs{"trip_id": tripID}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM reminders WHERE trip_id = @trip_id`, args).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("repo.ReminderRepo.ListByTrip: count: %w", err)
	}

	const q = `
		SELECT id, trip_id, message, remind_at, created_at
		FROM reminders
		WHERE trip_id = @trip_id
		ORDER BY remind_at DESC, id ASC
		LIMIT @limit OFFSET @offset`

	args["limit"] = p.Limit
	args["offset"] = p.Offset
	rows, err := r.db.Query(ctx, q, args)
	if err != nil {
		return nil, 0, fmt.Errorf("repo.ReminderRepo.ListByTrip: %w", err)
	}
	defer rows.Close()

	var rems []domain.Reminder
	for rows.Next() {
		rem, err := scanReminder(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("repo.ReminderRepo.ListByTrip: scan: %w", err)
		}
		rems = append(rems, rem)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("repo.ReminderRepo.ListByTrip: rows: %w", err)
	}

	return rems, total, nil
}

func (r *pgReminderRepo) Update(ctx context.Context, rem domain.Reminder) (domain.Reminder, error) {
	const q = `
		UPDATE reminders
		SET message   = @message,
		    remind_at = @remind_at
		WHERE id = @id AND trip_id = @trip_id
		RETURNING id, trip_id, message, remind_at, created_at`

	args := pgx.NamedArgs{
		"id":        rem.ID,
		"trip_id":   rem.TripID,
		"message":   rem.Message,
		"remind_at": rem.RemindAt,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanReminder(row)
	if err != nil {
		return domain.Reminder{}, fmt.Errorf("repo.ReminderRepo.Update: %w", err)
	}
	return result, nil
}

func (r *pgReminderRepo) Delete(ctx context.Context, tripID, remID uuid.UUID) error {
	const q = `DELETE FROM reminders WHERE id = @id AND trip_id = @trip_id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": remID, "trip_id": tripID})
	if err != nil {
		return fmt.Errorf("repo.ReminderRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.ReminderRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// scanReminder maps a single database row into a domain.Reminder.
func scanReminder(s scanner) (domain.Reminder, error) {
	var (
		rem    domain.Reminder
		id     pgtype.UUID
		tripID pgtype.UUID
	)

	err := s.Scan(&id, &tripID, &rem.Message, &rem.RemindAt, &rem.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Reminder{}, domain.ErrNotFound
		}
		return domain.Reminder{}, err
	}

	rem.ID = uuid.UUID(id.Bytes)
	rem.TripID = uuid.UUID(tripID.Bytes)
	return rem, nil
}
