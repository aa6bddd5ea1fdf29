package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"travelplanner/internal/domain"
	"travelplanner/internal/repo"
)

// NoteService implements business logic for Note operations.
type NoteService struct {
	trips repo.TripRepo
	notes repo.NoteRepo
}

// NewNoteService constructs a NoteService backed by the provided repos.
func NewNoteService(trips repo.TripRepo, notes repo.NoteRepo) *NoteService {
	return &NoteService{trips: trips, notes: notes}
}

// Create persists a new note under the trip identified by tripID.
// Content is stored as provided once it is non-blank after trimming.
func (s *NoteService) Create(ctx context.Context, tripID uuid.UUID, note domain.Note) (domain.Note, error) {
	if _, err := s.trips.GetByID(ctx, tripID); err != nil {
		return domain.Note{}, fmt.Errorf("service.NoteService.Create: %w", err)
	}
	if note.TripID != tripID {
		return domain.Note{}, fmt.Errorf("%w: trip_id must match the trip_id path parameter", domain.ErrValidation)
	}
	if strings.TrimSpace(note.Content) == "" {
		return domain.Note{}, fmt.Errorf("%w: content must not be blank", domain.ErrValidation)
	}

	result, err := s.notes.Create(ctx, note)
	if err != nil {
		return domain.Note{}, fmt.Errorf("service.NoteService.Create: %w", err)
	}
	return result, nil
}

// GetByID returns a single note scoped to the given trip.
func (s *NoteService) GetByID(ctx context.Context, tripID, noteID uuid.UUID) (domain.Note, error) {
	if _, err := s.trips.GetByID(ctx, tripID); err != nil {
		return domain.Note{}, fmt.Errorf("service.NoteService.GetByID: %w", err)
	}
	result, err := s.notes.GetByID(ctx, tripID, noteID)
	if err != nil {
		return domain.Note{}, fmt.Errorf("service.NoteService.GetByID: %w", err)
	}
	return result, nil
}

// ListByTrip returns one page of a trip's notes, newest first, plus the total.
// Always returns a non-nil slice.
func (s *NoteService) ListByTrip(ctx context.Context, tripID uuid.UUID, p domain.PageParams) ([]domain.Note, int64, error) {
	if _, err := s.trips.GetByID(ctx, tripID); err != nil {
		return nil, 0, fmt.Errorf("service.NoteService.ListByTrip: %w", err)
	}
	notes, total, err := s.notes.ListByTrip(ctx, tripID, p)
	if err != nil {
		return nil, 0, fmt.Errorf("service.NoteService.ListByTrip: %w", err)
	}
	if notes == nil {
		notes = []domain.Note{}
	}
	return notes, total, nil
}

// Update applies a partial update to a note scoped to the given trip.
func (s *NoteService) Update(ctx context.Context, tripID, noteID uuid.UUID, upd domain.NoteUpdate) (domain.Note, error) {
	if _, err := s.trips.GetByID(ctx, tripID); err != nil {
		return domain.Note{}, fmt.Errorf("service.NoteService.Update: %w", err)
	}
	note, err := s.notes.GetByID(ctx, tripID, noteID)
	if err != nil {
		return domain.Note{}, fmt.Errorf("service.NoteService.Update: %w", err)
	}

	if upd.Content.Set {
		if strings.TrimSpace(upd.Content.Value) == "" {
			return domain.Note{}, fmt.Errorf("%w: content must not be blank", domain.ErrValidation)
		}
		note.Content = upd.Content.Value
	}

	result, err := s.notes.Update(ctx, note)
	if err != nil {
		return domain.Note{}, fmt.Errorf("service.NoteService.Update: %w", err)
	}
	return result, nil
}

// Delete removes a note scoped to the given trip.
func (s *NoteService) Delete(ctx context.Context, tripID, noteID uuid.UUID) error {
	if _, err := s.trips.GetByID(ctx, tripID); err != nil {
		return fmt.Errorf("service.NoteService.Delete: %w", err)
	}
	if err := s.notes.Delete(ctx, tripID, noteID); err != nil {
		return fmt.Errorf("service.NoteService.Delete: %w", err)
	}
	return nil
}
