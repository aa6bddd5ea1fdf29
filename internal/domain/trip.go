// Package domain contains the core data types for the travel planner backend.
// This package has zero external dependencies beyond uuid and is imported by
// every other internal package (repo, service, handler).
package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Trip is the top-level planning unit. Itinerary items, notes, and reminders
// all belong to exactly one trip and are removed when it is deleted.
type Trip struct {
	ID        uuid.UUID
	Name      string
	StartDate *time.Time // date-only; nil when not planned yet
	EndDate   *time.Time // date-only; must not precede StartDate when both set
	CreatedAt time.Time
}

// TripUpdate is a partial-update payload for a trip.
// Fields with Set == false leave the stored value unchanged.
type TripUpdate struct {
	Name      Optional[string]
	StartDate Optional[time.Time]
	EndDate   Optional[time.Time]
}

// TripSortField selects the column trips are ordered by.
type TripSortField string

// SortDir selects ascending or descending order.
type SortDir string

const (
	TripSortCreatedAt TripSortField = "created_at"
	TripSortName      TripSortField = "name"

	SortAsc  SortDir = "asc"
	SortDesc SortDir = "desc"
)

// TripSort is a validated sort specification for trip listings.
type TripSort struct {
	Field TripSortField
	Dir   SortDir
}

// NewTripSort builds a TripSort from optional query params, defaulting to
// created_at descending (newest first). Unknown values are rejected with
// ErrValidation.
func NewTripSort(sortBy, sortDir *string) (TripSort, error) {
	s := TripSort{Field: TripSortCreatedAt, Dir: SortDesc}
	if sortBy != nil {
		switch TripSortField(*sortBy) {
		case TripSortCreatedAt, TripSortName:
			s.Field = TripSortField(*sortBy)
		default:
			return TripSort{}, fmt.Errorf("%w: sort_by must be one of created_at, name", ErrValidation)
		}
	}
	if sortDir != nil {
		switch SortDir(*sortDir) {
		case SortAsc, SortDesc:
			s.Dir = SortDir(*sortDir)
		default:
			return TripSort{}, fmt.Errorf("%w: sort_dir must be one of asc, desc", ErrValidation)
		}
	}
	return s, nil
}
