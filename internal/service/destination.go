package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"travelplanner/internal/domain"
	"travelplanner/internal/repo"
)

// DestinationService implements business logic for Destination operations.
type DestinationService struct {
	dests repo.DestinationRepo
}

// NewDestinationService constructs a DestinationService backed by the provided repo.
func NewDestinationService(r repo.DestinationRepo) *DestinationService {
	return &DestinationService{dests: r}
}

// Create validates and persists a new destination.
// Returns domain.ErrValidation if input violates business rules.
func (s *DestinationService) Create(ctx context.Context, dest domain.Destination) (domain.Destination, error) {
	dest.Name = strings.TrimSpace(dest.Name)
	if err := validateDestination(dest); err != nil {
		return domain.Destination{}, err
	}
	result, err := s.dests.Create(ctx, dest)
	if err != nil {
		return domain.Destination{}, fmt.Errorf("service.DestinationService.Create: %w", err)
	}
	return result, nil
}

// GetByID returns a single destination by ID.
func (s *DestinationService) GetByID(ctx context.Context, id uuid.UUID) (domain.Destination, error) {
	result, err := s.dests.GetByID(ctx, id)
	if err != nil {
		return domain.Destination{}, fmt.Errorf("service.DestinationService.GetByID: %w", err)
	}
	return result, nil
}

// Search validates the query and returns one page of matches plus the total.
// The query is trimmed; a query that is blank after trimming is rejected.
// Always returns a non-nil slice.
func (s *DestinationService) Search(ctx context.Context, search domain.DestinationSearch) ([]domain.Destination, int64, error) {
	search.Query = strings.TrimSpace(search.Query)
	if search.Query == "" {
		return nil, 0, fmt.Errorf("%w: q must not be blank", domain.ErrValidation)
	}

	dests, total, err := s.dests.Search(ctx, search)
	if err != nil {
		return nil, 0, fmt.Errorf("service.DestinationService.Search: %w", err)
	}
	if dests == nil {
		dests = []domain.Destination{}
	}
	return dests, total, nil
}

// Update applies a partial update to an existing destination.
// Returns domain.ErrNotFound if the destination does not exist.
func (s *DestinationService) Update(ctx context.Context, id uuid.UUID, upd domain.DestinationUpdate) (domain.Destination, error) {
	dest, err := s.dests.GetByID(ctx, id)
	if err != nil {
		return domain.Destination{}, fmt.Errorf("service.DestinationService.Update: %w", err)
	}

	if upd.Name.Set {
		dest.Name = strings.TrimSpace(upd.Name.Value)
	}
	if upd.Country.Set {
		v := upd.Country.Value
		dest.Country = &v
	}
	if upd.City.Set {
		v := upd.City.Value
		dest.City = &v
	}
	if upd.Description.Set {
		v := upd.Description.Value
		dest.Description = &v
	}
	if upd.Popularity.Set {
		v := upd.Popularity.Value
		dest.Popularity = &v
	}

	if err := validateDestination(dest); err != nil {
		return domain.Destination{}, err
	}

	result, err := s.dests.Update(ctx, dest)
	if err != nil {
		return domain.Destination{}, fmt.Errorf("service.DestinationService.Update: %w", err)
	}
	return result, nil
}

// Delete removes a destination by ID. Itinerary items referencing it survive
// with their destination reference cleared by the store.
func (s *DestinationService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.dests.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.DestinationService.Delete: %w", err)
	}
	return nil
}

// validateDestination enforces field rules shared by Create and Update.
func validateDestination(dest domain.Destination) error {
	if dest.Name == "" {
		return fmt.Errorf("%w: name must not be blank", domain.ErrValidation)
	}
	if tooLong(dest.Name, 200) {
		return fmt.Errorf("%w: name must be at most 200 characters", domain.ErrValidation)
	}
	if dest.Country != nil && tooLong(*dest.Country, 100) {
		return fmt.Errorf("%w: country must be at most 100 characters", domain.ErrValidation)
	}
	if dest.City != nil && tooLong(*dest.City, 100) {
		return fmt.Errorf("%w: city must be at most 100 characters", domain.ErrValidation)
	}
	return nil
}
