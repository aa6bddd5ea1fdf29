// Package service contains the business logic for the travel planner API.
// Services validate inputs, enforce business rules, and orchestrate repo calls.
// No SQL lives here — services depend on repo interfaces, not implementations.
package service

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"travelplanner/internal/domain"
	"travelplanner/internal/repo"
)

// TripService implements business logic for Trip operations.
type TripService struct {
	trips repo.TripRepo
}

// NewTripService constructs a TripService backed by the provided TripRepo.
func NewTripService(r repo.TripRepo) *TripService {
	return &TripService{trips: r}
}

// Create validates and persists a new trip. The stored name is the trimmed form.
// Returns domain.ErrValidation if input violates business rules.
func (s *TripService) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	trip.Name = strings.TrimSpace(trip.Name)
	if err := validateTrip(trip); err != nil {
		return domain.Trip{}, err
	}
	result, err := s.trips.Create(ctx, trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
	}
	return result, nil
}

// GetByID returns a single trip by ID.
// Returns domain.ErrNotFound if no trip with that ID exists.
func (s *TripService) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	result, err := s.trips.GetByID(ctx, id)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.GetByID: %w", err)
	}
	return result, nil
}

// List returns one page of trips plus the total count.
// Always returns a non-nil slice so callers can safely range over it.
func (s *TripService) List(ctx context.Context, sort domain.TripSort, p domain.PageParams) ([]domain.Trip, int64, error) {
	trips, total, err := s.trips.List(ctx, sort, p)
	if err != nil {
		return nil, 0, fmt.Errorf("service.TripService.List: %w", err)
	}
	if trips == nil {
		trips = []domain.Trip{}
	}
	return trips, total, nil
}

// Update applies a partial update to an existing trip. Only fields present in
// upd change; the merged record is re-validated as a whole, so a single-field
// change that makes end_date precede start_date is rejected.
// Returns domain.ErrNotFound if the trip does not exist.
func (s *TripService) Update(ctx context.Context, id uuid.UUID, upd domain.TripUpdate) (domain.Trip, error) {
	trip, err := s.trips.GetByID(ctx, id)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Update: %w", err)
	}

	if upd.Name.Set {
		trip.Name = strings.TrimSpace(upd.Name.Value)
	}
	if upd.StartDate.Set {
		v := upd.StartDate.Value
		trip.StartDate = &v
	}
	if upd.EndDate.Set {
		v := upd.EndDate.Value
		trip.EndDate = &v
	}

	if err := validateTrip(trip); err != nil {
		return domain.Trip{}, err
	}

	result, err := s.trips.Update(ctx, trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Update: %w", err)
	}
	return result, nil
}

// Delete removes a trip by ID. The store cascades to the trip's itinerary
// items, notes, and reminders.
// Returns domain.ErrNotFound if the trip does not exist.
func (s *TripService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.trips.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.TripService.Delete: %w", err)
	}
	return nil
}

// validateTrip enforces business rules common to both Create and Update.
// Callers trim the name before validating so the blank check and the stored
// value agree.
func validateTrip(trip domain.Trip) error {
	if trip.Name == "" {
		return fmt.Errorf("%w: name must not be blank", domain.ErrValidation)
	}
	if tooLong(trip.Name, 200) {
		return fmt.Errorf("%w: name must be at most 200 characters", domain.ErrValidation)
	}
	if trip.StartDate != nil && trip.EndDate != nil && trip.EndDate.Before(*trip.StartDate) {
		return fmt.Errorf("%w: end_date must be on or after start_date", domain.ErrValidation)
	}
	return nil
}

// tooLong reports whether s exceeds max characters. Lengths are counted in
// runes, matching the varchar(n) column semantics.
func tooLong(s string, max int) bool {
	return utf8.RuneCountInString(s) > max
}
