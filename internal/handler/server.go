// Package handler implements the HTTP handlers for the travel planner API.
// All handlers are methods on Server. Methods are split into resource-specific
// files (trip.go, destination.go, etc.) but all share the same Server struct
// so they can access its dependencies.
package handler

import (
	"context"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"travelplanner/internal/domain"
)

// TripServicer defines the business operations the trip handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or service layer.
type TripServicer interface {
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	List(ctx context.Context, sort domain.TripSort, p domain.PageParams) ([]domain.Trip, int64, error)
	Update(ctx context.Context, id uuid.UUID, upd domain.TripUpdate) (domain.Trip, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// DestinationServicer defines the business operations the destination handlers depend on.
type DestinationServicer interface {
	Create(ctx context.Context, dest domain.Destination) (domain.Destination, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Destination, error)
	Search(ctx context.Context, search domain.DestinationSearch) ([]domain.Destination, int64, error)
	Update(ctx context.Context, id uuid.UUID, upd domain.DestinationUpdate) (domain.Destination, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ItineraryServicer defines the business operations the itinerary handlers depend on.
type ItineraryServicer interface {
	Create(ctx context.Context, tripID uuid.UUID, item domain.ItineraryItem) (domain.ItineraryItem, error)
	GetByID(ctx context.Context, tripID, itemID uuid.UUID) (domain.ItineraryItem, error)
	ListByTrip(ctx context.Context, tripID uuid.UUID, p domain.PageParams) ([]domain.ItineraryItem, int64, error)
	Update(ctx context.Context, tripID, itemID uuid.UUID, upd domain.ItineraryItemUpdate) (domain.ItineraryItem, error)
	Delete(ctx context.Context, tripID, itemID uuid.UUID) error
}

// NoteServicer defines the business operations the note handlers depend on.
type NoteServicer interface {
	Create(ctx context.Context, tripID uuid.UUID, note domain.Note) (domain.Note, error)
	GetByID(ctx context.Context, tripID, noteID uuid.UUID) (domain.Note, error)
	ListByTrip(ctx context.Context, tripID uuid.UUID, p domain.PageParams) ([]domain.Note, int64, error)
	Update(ctx context.Context, tripID, noteID uuid.UUID, upd domain.NoteUpdate) (domain.Note, error)
	Delete(ctx context.Context, tripID, noteID uuid.UUID) error
}

// ReminderServicer defines the business operations the reminder handlers depend on.
type ReminderServicer interface {
	Create(ctx context.Context, tripID uuid.UUID, rem domain.Reminder) (domain.Reminder, error)
	GetByID(ctx context.Context, tripID, remID uuid.UUID) (domain.Reminder, error)
	ListByTrip(ctx context.Context, tripID uuid.UUID, p domain.PageParams) ([]domain.Reminder, int64, error)
	Update(ctx context.Context, tripID, remID uuid.UUID, upd domain.ReminderUpdate) (domain.Reminder, error)
	Delete(ctx context.Context, tripID, remID uuid.UUID) error
}

// Pinger is the subset of *pgxpool.Pool the DB health probe needs.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Server holds the handler dependencies for all API endpoints.
// Methods live in resource-specific files but all operate on this struct.
type Server struct {
	trips        TripServicer
	destinations DestinationServicer
	itinerary    ItineraryServicer
	notes        NoteServicer
	reminders    ReminderServicer
	db           Pinger
}

// NewServer constructs the Server with all its dependencies.
func NewServer(trips TripServicer, destinations DestinationServicer, itinerary ItineraryServicer, notes NoteServicer, reminders ReminderServicer, db Pinger) *Server {
	return &Server{
		trips:        trips,
		destinations: destinations,
		itinerary:    itinerary,
		notes:        notes,
		reminders:    reminders,
		db:           db,
	}
}

// Routes builds the chi router for the full API surface.
// Wire the returned handler into the middleware chain in main.go.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.getHealth)
	r.Get("/health/db", s.getDBHealth)
	r.Get("/openapi.yaml", s.getOpenAPI)

	r.Route("/api", func(r chi.Router) {
		r.Route("/trips", func(r chi.Router) {
			r.Get("/", s.listTrips)
			r.Post("/", s.createTrip)
			r.Route("/{trip_id}", func(r chi.Router) {
				r.Get("/", s.getTrip)
				r.Put("/", s.updateTrip)
				r.Delete("/", s.deleteTrip)

				r.Route("/itinerary", func(r chi.Router) {
					r.Get("/", s.listItineraryItems)
					r.Post("/", s.createItineraryItem)
					r.Get("/{item_id}", s.getItineraryItem)
					r.Put("/{item_id}", s.updateItineraryItem)
					r.Delete("/{item_id}", s.deleteItineraryItem)
				})
				r.Route("/notes", func(r chi.Router) {
					r.Get("/", s.listNotes)
					r.Post("/", s.createNote)
					r.Get("/{note_id}", s.getNote)
					r.Put("/{note_id}", s.updateNote)
					r.Delete("/{note_id}", s.deleteNote)
				})
				r.Route("/reminders", func(r chi.Router) {
					r.Get("/", s.listReminders)
					r.Post("/", s.createReminder)
					r.Get("/{reminder_id}", s.getReminder)
					r.Put("/{reminder_id}", s.updateReminder)
					r.Delete("/{reminder_id}", s.deleteReminder)
				})
			})
		})

		r.Route("/destinations", func(r chi.Router) {
			r.Get("/search", s.searchDestinations)
			r.Post("/", s.createDestination)
			r.Get("/{destination_id}", s.getDestination)
			r.Put("/{destination_id}", s.updateDestination)
			r.Delete("/{destination_id}", s.deleteDestination)
		})
	})

	return r
}

// listResponse is the uniform pagination envelope shared by every list and
// search endpoint. Total always counts the full matching set, ignoring
// limit/offset.
type listResponse[T any] struct {
	Total  int64 `json:"total"`
	Limit  int   `json:"limit"`
	Offset int   `json:"offset"`
	Items  []T   `json:"items"`
}
