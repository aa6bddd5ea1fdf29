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

// NoteRepo defines the persistence operations for Notes.
// All single-note operations are scoped by tripID to enforce ownership.
type NoteRepo interface {
	// Create inserts a new note and returns the persisted record.
	Create(ctx context.Context, note domain.Note) (domain.Note, error)

	// GetByID retrieves a single note by its UUID, scoped to the given tripID.
	// Returns domain.ErrNotFound if no note with that ID exists under that trip.
	GetByID(ctx context.Context, tripID, noteID uuid.UUID) (domain.Note, error)

	// ListByTrip returns one page of a trip's notes, newest first, plus the
	// total count ignoring pagination.
	ListByTrip(ctx context.Context, tripID uuid.UUID, p domain.PageParams) ([]domain.Note, int64, error)

	// Update overwrites the content of a note, scoped by its TripID.
	// Returns domain.ErrNotFound if no note with that ID exists under that trip.
	Update(ctx context.Context, note domain.Note) (domain.Note, error)

	// Delete removes a note by ID, scoped to the given tripID.
	// Returns domain.ErrNotFound if no note with that ID exists under that trip.
	Delete(ctx context.Context, tripID, noteID uuid.UUID) error
}

// pgNoteRepo is the Postgres implementation of NoteRepo.
type pgNoteRepo struct {
	db db
}

// NewNoteRepo constructs a NoteRepo backed by the provided db connection.
func NewNoteRepo(db db) NoteRepo {
	return &pgNoteRepo{db: db}
}

func (r *pgNoteRepo) Create(ctx context.Context, note domain.Note) (domain.Note, error) {
	// clock_timestamp() rather than now(): notes list newest-first, and
	// now() is frozen per transaction, which would make two notes created in
	// one transaction tie on created_at.
	const q = `
		INSERT INTO notes (trip_id, content, created_at)
		VALUES (@trip_id, @content, clock_timestamp())
		RETURNING id, trip_id, content, created_at`

	args := pgx.NamedArgs{
		"trip_id": note.TripID,
		"content": note.Content,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanNote(row)
	if err != nil {
		return domain.Note{}, fmt.Errorf("repo.NoteRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgNoteRepo) GetByID(ctx context.Context, tripID, noteID uuid.UUID) (domain.Note, error) {
	const q = `
		SELECT id, trip_id, content, created_at
		FROM notes
		WHERE id = @id AND trip_id = @trip_id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": noteID, "trip_id": tripID})
	result, err := scanNote(row)
	if err != nil {
		return domain.Note{}, fmt.Errorf("repo.NoteRepo.GetByID: %w", err)
	}
	return result, nil
}

func (r *pgNoteRepo) ListByTrip(ctx context.Context, tripID uuid.UUID, p domain.PageParams) ([]domain.Note, int64, error) {
	args := pgx.NamedArgs{"trip_id": tripID}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM notes WHERE trip_id = @trip_id`, args).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("repo.NoteRepo.ListByTrip: count: %w", err)
	}

	const q = `
		SELECT id, trip_id, content, created_at
		FROM notes
		WHERE trip_id = @trip_id
		ORDER BY created_at DESC, id ASC
		LIMIT @limit OFFSET @offset`

	args["limit"] = p.Limit
	args["offset"] = p.Offset
	rows, err := r.db.Query(ctx, q, args)
	if err != nil {
		return nil, 0, fmt.Errorf("repo.NoteRepo.ListByTrip: %w", err)
	}
	defer rows.Close()

	var notes []domain.Note
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("repo.NoteRepo.ListByTrip: scan: %w", err)
		}
		notes = append(notes, n)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("repo.NoteRepo.ListByTrip: rows: %w", err)
	}

	return notes, total, nil
}

func (r *pgNoteRepo) Update(ctx context.Context, note domain.Note) (domain.Note, error) {
	const q = `
		UPDATE notes
		SET content = @content
		WHERE id = @id AND trip_id = @trip_id
		RETURNING id, trip_id, content, created_at`

	args := pgx.NamedArgs{
		"id":      note.ID,
		"trip_id": note.TripID,
		"content": note.Content,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanNote(row)
	if err != nil {
		return domain.Note{}, fmt.Errorf("repo.NoteRepo.Update: %w", err)
	}
	return result, nil
}

func (r *pgNoteRepo) Delete(ctx context.Context, tripID, noteID uuid.UUID) error {
	const q = `DELETE FROM notes WHERE id = @id AND trip_id = @trip_id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": noteID, "trip_id": tripID})
	if err != nil {
		return fmt.Errorf("repo.NoteRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.NoteRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// scanNote maps a single database row into a domain.Note.
func scanNote(s scanner) (domain.Note, error) {
	var (
		n      domain.Note
		id     pgtype.UUID
		tripID pgtype.UUID
	)

	err := s.Scan(&id, &tripID, &n.Content, &n.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Note{}, domain.ErrNotFound
		}
		return domain.Note{}, err
	}

	n.ID = uuid.UUID(id.Bytes)
	n.TripID = uuid.UUID(tripID.Bytes)
	return n, nil
}
