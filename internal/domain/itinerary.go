package domain

import (
	"time"

	"github.com/google/uuid"
)

// ItineraryItem is a scheduled activity on a specific day of a trip.
// TripID is fixed at creation; ownership is controlled by the URL path and
// never changes afterwards.
type ItineraryItem struct {
	ID            uuid.UUID
	TripID        uuid.UUID
	Day           int // 1-based day number within the trip
	Title         string
	Description   *string
	StartTime     *time.Time
	EndTime       *time.Time // must not precede StartTime when both set
	DestinationID *uuid.UUID // cleared when the destination is deleted
}

// ItineraryItemUpdate is a partial-update payload for an itinerary item.
// TripID is deliberately absent: trip ownership is not transferable.
type ItineraryItemUpdate struct {
	Day           Optional[int]
	Title         Optional[string]
	Description   Optional[string]
	StartTime     Optional[time.Time]
	EndTime       Optional[time.Time]
	DestinationID Optional[uuid.UUID]
}
