package domain

import (
	"time"

	"github.com/google/uuid"
)

// Reminder is a dated prompt attached to a trip.
type Reminder struct {
	ID        uuid.UUID
	TripID    uuid.UUID
	Message   string
	RemindAt  time.Time
	CreatedAt time.Time
}

// ReminderUpdate is a partial-update payload for a reminder.
type ReminderUpdate struct {
	Message  Optional[string]
	RemindAt Optional[time.Time]
}
