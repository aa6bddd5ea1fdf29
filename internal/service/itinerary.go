package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"travelplanner/internal/domain"
	"travelplanner/internal/repo"
)

// ItineraryService implements business logic for ItineraryItem operations.
// It holds the trips repo as well because every operation must first verify
// the parent trip named in the URL path actually exists.
type ItineraryService struct {
	trips repo.TripRepo
	items repo.ItineraryRepo
}

// NewItineraryService constructs an ItineraryService backed by the provided repos.
func NewItineraryService(trips repo.TripRepo, items repo.ItineraryRepo) *ItineraryService {
	return &ItineraryService{trips: trips, items: items}
}

// Create persists a new itinerary item under the trip identified by tripID.
// The payload carries its own trip reference; a reference that contradicts
// the path is a validation error, not a not-found. The parent check runs
// first so a missing trip is always reported as 404.
func (s *ItineraryService) Create(ctx context.Context, tripID uuid.UUID, item domain.ItineraryItem) (domain.ItineraryItem, error) {
	if _, err := s.trips.GetByID(ctx, tripID); err != nil {
		return domain.ItineraryItem{}, fmt.Errorf("service.ItineraryService.Create: %w", err)
	}
	if item.TripID != tripID {
		return domain.ItineraryItem{}, fmt.Errorf("%w: trip_id must match the trip_id path parameter", domain.ErrValidation)
	}

	item.Title = strings.TrimSpace(item.Title)
	if err := validateItineraryItem(item); err != nil {
		return domain.ItineraryItem{}, err
	}

	result, err := s.items.Create(ctx, item)
	if err != nil {
		return domain.ItineraryItem{}, fmt.Errorf("service.ItineraryService.Create: %w", err)
	}
	return result, nil
}

// GetByID returns a single itinerary item scoped to the given trip.
// An item that exists under a different trip is reported as not found.
func (s *ItineraryService) GetByID(ctx context.Context, tripID, itemID uuid.UUID) (domain.ItineraryItem, error) {
	if _, err := s.trips.GetByID(ctx, tripID); err != nil {
		return domain.ItineraryItem{}, fmt.Errorf("service.ItineraryService.GetByID: %w", err)
	}
	result, err := s.items.GetByID(ctx, tripID, itemID)
	if err != nil {
		return domain.ItineraryItem{}, fmt.Errorf("service.ItineraryService.GetByID: %w", err)
	}
	return result, nil
}

// ListByTrip returns one page of a trip's itinerary items plus the total count.
// Always returns a non-nil slice.
func (s *ItineraryService) ListByTrip(ctx context.Context, tripID uuid.UUID, p domain.PageParams) ([]domain.ItineraryItem, int64, error) {
	if _, err := s.trips.GetByID(ctx, tripID); err != nil {
		return nil, 0, fmt.Errorf("service.ItineraryService.ListByTrip: %w", err)
	}
	items, total, err := s.items.ListByTrip(ctx, tripID, p)
	if err != nil {
		return nil, 0, fmt.Errorf("service.ItineraryService.ListByTrip: %w", err)
	}
	if items == nil {
		items = []domain.ItineraryItem{}
	}
	return items, total, nil
}

// Update applies a partial update to an itinerary item scoped to the given
// trip. TripID never changes. The merged record is re-validated, so setting
// only end_time to a value before the stored start_time is rejected.
func (s *ItineraryService) Update(ctx context.Context, tripID, itemID uuid.UUID, upd domain.ItineraryItemUpdate) (domain.ItineraryItem, error) {
	if _, err := s.trips.GetByID(ctx, tripID); err != nil {
		return domain.ItineraryItem{}, fmt.Errorf("service.ItineraryService.Update: %w", err)
	}
	item, err := s.items.GetByID(ctx, tripID, itemID)
	if err != nil {
		return domain.ItineraryItem{}, fmt.Errorf("service.ItineraryService.Update: %w", err)
	}

	if upd.Day.Set {
		item.Day = upd.Day.Value
	}
	if upd.Title.Set {
		item.Title = strings.TrimSpace(upd.Title.Value)
	}
	if upd.Description.Set {
		v := upd.Description.Value
		item.Description = &v
	}
	if upd.StartTime.Set {
		v := upd.StartTime.Value
		item.StartTime = &v
	}
	if upd.EndTime.Set {
		v := upd.EndTime.Value
		item.EndTime = &v
	}
	if upd.DestinationID.Set {
		v := upd.DestinationID.Value
		item.DestinationID = &v
	}

	if err := validateItineraryItem(item); err != nil {
		return domain.ItineraryItem{}, err
	}

	result, err := s.items.Update(ctx, item)
	if err != nil {
		return domain.ItineraryItem{}, fmt.Errorf("service.ItineraryService.Update: %w", err)
	}
	return result, nil
}

// Delete removes an itinerary item scoped to the given trip.
func (s *ItineraryService) Delete(ctx context.Context, tripID, itemID uuid.UUID) error {
	if _, err := s.trips.GetByID(ctx, tripID); err != nil {
		return fmt.Errorf("service.ItineraryService.Delete: %w", err)
	}
	if err := s.items.Delete(ctx, tripID, itemID); err != nil {
		return fmt.Errorf("service.ItineraryService.Delete: %w", err)
	}
	return nil
}

// validateItineraryItem enforces field rules shared by Create and Update.
// Callers trim the title before validating.
func validateItineraryItem(item domain.ItineraryItem) error {
	if item.Day < 1 {
		return fmt.Errorf("%w: day must be at least 1", domain.ErrValidation)
	}
	if item.Title == "" {
		return fmt.Errorf("%w: title must not be blank", domain.ErrValidation)
	}
	if tooLong(item.Title, 200) {
		return fmt.Errorf("%w: title must be at most 200 characters", domain.ErrValidation)
	}
	if item.StartTime != nil && item.EndTime != nil && item.EndTime.Before(*item.StartTime) {
		return fmt.Errorf("%w: end_time must be on or after start_time", domain.ErrValidation)
	}
	return nil
}
