package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"travelplanner/internal/domain"
	"travelplanner/internal/repo"
)

// ReminderService implements business logic for Reminder operations.
type ReminderService struct {
	trips repo.TripRepo
	rems  repo.ReminderRepo
}

// NewReminderService constructs a ReminderService backed by the provided repos.
func NewReminderService(trips repo.TripRepo, rems repo.ReminderRepo) *ReminderService {
	return &ReminderService{trips: trips, rems: rems}
}

// Create persists a new reminder under the trip identified by tripID.
// The stored message is the trimmed form; remind_at is required.
func (s *ReminderService) Create(ctx context.Context, tripID uuid.UUID, rem domain.Reminder) (domain.Reminder, error) {
	if _, err := s.trips.GetByID(ctx, tripID); err != nil {
		return domain.Reminder{}, fmt.Errorf("service.ReminderService.Create: %w", err)
	}
	if rem.TripID != tripID {
		return domain.Reminder{}, fmt.Errorf("%w: trip_id must match the trip_id path parameter", domain.ErrValidation)
	}

	rem.Message = strings.TrimSpace(rem.Message)
	if err := validateReminder(rem); err != nil {
		return domain.Reminder{}, err
	}

	result, err := s.rems.Create(ctx, rem)
	if err != nil {
		return domain.Reminder{}, fmt.Errorf("service.ReminderService.Create: %w", err)
	}
	return result, nil
}

// GetByID returns a single reminder scoped to the given trip.
func (s *ReminderService) GetByID(ctx context.Context, tripID, remID uuid.UUID) (domain.Reminder, error) {
	if _, err := s.trips.GetByID(ctx, tripID); err != nil {
		return domain.Reminder{}, fmt.Errorf("service.ReminderService.GetByID: %w", err)
	}
	result, err := s.rems.GetByID(ctx, tripID, remID)
	if err != nil {
		return domain.Reminder{}, fmt.Errorf("service.ReminderService.GetByID: %w", err)
	}
	return result, nil
}

// ListByTrip returns one page of a trip's reminders ordered by remind_at
// descending plus the total. Always returns a non-nil slice.
func (s *ReminderService) ListByTrip(ctx context.Context, tripID uuid.UUID, p domain.PageParams) ([]domain.Reminder, int64, error) {
	if _, err := s.trips.GetByID(ctx, tripID); err != nil {
		return nil, 0, fmt.Errorf("service.ReminderService.ListByTrip: %w", err)
	}
	rems, total, err := s.rems.ListByTrip(ctx, tripID, p)
	if err != nil {
		return nil, 0, fmt.Errorf("service.ReminderService.ListByTrip: %w", err)
	}
	if rems == nil {
		rems = []domain.Reminder{}
	}
	return rems, total, nil
}

// Update applies a partial update to a reminder scoped to the given trip.
func (s *ReminderService) Update(ctx context.Context, tripID, remID uuid.UUID, upd domain.ReminderUpdate) (domain.Reminder, error) {
	if _, err := s.trips.GetByID(ctx, tripID); err != nil {
		return domain.Reminder{}, fmt.Errorf("service.ReminderService.Update: %w", err)
	}
	rem, err := s.rems.GetByID(ctx, tripID, remID)
	if err != nil {
		return domain.Reminder{}, fmt.Errorf("service.ReminderService.Update: %w", err)
	}

	if upd.Message.Set {
		rem.Message = strings.TrimSpace(upd.Message.Value)
	}
	if upd.RemindAt.Set {
		rem.RemindAt = upd.RemindAt.Value
	}

	if err := validateReminder(rem); err != nil {
		return domain.Reminder{}, err
	}

	result, err := s.rems.Update(ctx, rem)
	if err != nil {
		return domain.Reminder{}, fmt.Errorf("service.ReminderService.Update: %w", err)
	}
	return result, nil
}

// Delete removes a reminder scoped to the given trip.
func (s *ReminderService) Delete(ctx context.Context, tripID, remID uuid.UUID) error {
	if _, err := s.trips.GetByID(ctx, tripID); err != nil {
		return fmt.Errorf("service.ReminderService.Delete: %w", err)
	}
	if err := s.rems.Delete(ctx, tripID, remID); err != nil {
		return fmt.Errorf("service.ReminderService.Delete: %w", err)
	}
	return nil
}

// validateReminder enforces field rules shared by Create and Update.
// Callers trim the message before validating.
func validateReminder(rem domain.Reminder) error {
	if rem.Message == "" {
		return fmt.Errorf("%w: message must not be blank", domain.ErrValidation)
	}
	if tooLong(rem.Message, 255) {
		return fmt.Errorf("%w: message must be at most 255 characters", domain.ErrValidation)
	}
	if rem.RemindAt.IsZero() {
		return fmt.Errorf("%w: remind_at is required", domain.ErrValidation)
	}
	return nil
}
