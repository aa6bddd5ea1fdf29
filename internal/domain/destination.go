package domain

import "github.com/google/uuid"

// Destination is a global place catalog entry. Destinations are not owned by
// any trip; itinerary items may reference one, and deleting a destination
// clears that reference instead of deleting the item.
type Destination struct {
	ID          uuid.UUID
	Name        string
	Country     *string
	City        *string
	Description *string
	Popularity  *int // higher means more popular; nil sorts after any value
}

// DestinationUpdate is a partial-update payload for a destination.
type DestinationUpdate struct {
	Name        Optional[string]
	Country     Optional[string]
	City        Optional[string]
	Description Optional[string]
	Popularity  Optional[int]
}

// DestinationSearch carries a validated search request.
// Query is matched case-insensitively as a substring against name, and
// against country/city when the corresponding toggle is on.
type DestinationSearch struct {
	Query          string
	IncludeCountry bool
	IncludeCity    bool
	Page           PageParams
}
