package domain

import (
	"time"

	"github.com/google/uuid"
)

// Note is free-form text attached to a trip.
type Note struct {
	ID        uuid.UUID
	TripID    uuid.UUID
	Content   string
	CreatedAt time.Time
}

// NoteUpdate is a partial-update payload for a note.
// Only the content is editable; trip ownership comes from the URL path.
type NoteUpdate struct {
	Content Optional[string]
}
