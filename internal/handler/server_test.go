package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"travelplanner/internal/domain"
	"travelplanner/internal/handler"
)

// Mocks in this file are hand-written test doubles for the servicer
// interfaces. Each method is a function field — set only the ones your test
// needs; unset methods panic, which surfaces unexpected calls immediately.

type mockTripServicer struct {
	create  func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	getByID func(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	list    func(ctx context.Context, sort domain.TripSort, p domain.PageParams) ([]domain.Trip, int64, error)
	update  func(ctx context.Context, id uuid.UUID, upd domain.TripUpdate) (domain.Trip, error)
	delete  func(ctx context.Context, id uuid.UUID) error
}

func (m *mockTripServicer) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	return m.create(ctx, trip)
}
func (m *mockTripServicer) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	return m.getByID(ctx, id)
}
func (m *mockTripServicer) List(ctx context.Context, sort domain.TripSort, p domain.PageParams) ([]domain.Trip, int64, error) {
	return m.list(ctx, sort, p)
}
func (m *mockTripServicer) Update(ctx context.Context, id uuid.UUID, upd domain.TripUpdate) (domain.Trip, error) {
	return m.update(ctx, id, upd)
}
func (m *mockTripServicer) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

var _ handler.TripServicer = (*mockTripServicer)(nil)

type mockDestinationServicer struct {
	create  func(ctx context.Context, dest domain.Destination) (domain.Destination, error)
	getByID func(ctx context.Context, id uuid.UUID) (domain.Destination, error)
	search  func(ctx context.Context, s domain.DestinationSearch) ([]domain.Destination, int64, error)
	update  func(ctx context.Context, id uuid.UUID, upd domain.DestinationUpdate) (domain.Destination, error)
	delete  func(ctx context.Context, id uuid.UUID) error
}

func (m *mockDestinationServicer) Create(ctx context.Context, dest domain.Destination) (domain.Destination, error) {
	return m.create(ctx, dest)
}
func (m *mockDestinationServicer) GetByID(ctx context.Context, id uuid.UUID) (domain.Destination, error) {
	return m.getByID(ctx, id)
}
func (m *mockDestinationServicer) Search(ctx context.Context, s domain.DestinationSearch) ([]domain.Destination, int64, error) {
	return m.search(ctx, s)
}
func (m *mockDestinationServicer) Update(ctx context.Context, id uuid.UUID, upd domain.DestinationUpdate) (domain.Destination, error) {
	return m.update(ctx, id, upd)
}
func (m *mockDestinationServicer) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

var _ handler.DestinationServicer = (*mockDestinationServicer)(nil)

type mockItineraryServicer struct {
	create     func(ctx context.Context, tripID uuid.UUID, item domain.ItineraryItem) (domain.ItineraryItem, error)
	getByID    func(ctx context.Context, tripID, itemID uuid.UUID) (domain.ItineraryItem, error)
	listByTrip func(ctx context.Context, tripID uuid.UUID, p domain.PageParams) ([]domain.ItineraryItem, int64, error)
	update     func(ctx context.Context, tripID, itemID uuid.UUID, upd domain.ItineraryItemUpdate) (domain.ItineraryItem, error)
	delete     func(ctx context.Context, tripID, itemID uuid.UUID) error
}

func (m *mockItineraryServicer) Create(ctx context.Context, tripID uuid.UUID, item domain.ItineraryItem) (domain.ItineraryItem, error) {
	return m.create(ctx, tripID, item)
}
func (m *mockItineraryServicer) GetByID(ctx context.Context, tripID, itemID uuid.UUID) (domain.ItineraryItem, error) {
	return m.getByID(ctx, tripID, itemID)
}
func (m *mockItineraryServicer) ListByTrip(ctx context.Context, tripID uuid.UUID, p domain.PageParams) ([]domain.ItineraryItem, int64, error) {
	return m.listByTrip(ctx, tripID, p)
}
func (m *mockItineraryServicer) Update(ctx context.Context, tripID, itemID uuid.UUID, upd domain.ItineraryItemUpdate) (domain.ItineraryItem, error) {
	return m.update(ctx, tripID, itemID, upd)
}
func (m *mockItineraryServicer) Delete(ctx context.Context, tripID, itemID uuid.UUID) error {
	return m.delete(ctx, tripID, itemID)
}

var _ handler.ItineraryServicer = (*mockItineraryServicer)(nil)

type mockNoteServicer struct {
	create     func(ctx context.Context, tripID uuid.UUID, note domain.Note) (domain.Note, error)
	getByID    func(ctx context.Context, tripID, noteID uuid.UUID) (domain.Note, error)
	listByTrip func(ctx context.Context, tripID uuid.UUID, p domain.PageParams) ([]domain.Note, int64, error)
	update     func(ctx context.Context, tripID, noteID uuid.UUID, upd domain.NoteUpdate) (domain.Note, error)
	delete     func(ctx context.Context, tripID, noteID uuid.UUID) error
}

func (m *mockNoteServicer) Create(ctx context.Context, tripID uuid.UUID, note domain.Note) (domain.Note, error) {
	return m.create(ctx, tripID, note)
}
func (m *mockNoteServicer) GetByID(ctx context.Context, tripID, noteID uuid.UUID) (domain.Note, error) {
	return m.getByID(ctx, tripID, noteID)
}
func (m *mockNoteServicer) ListByTrip(ctx context.Context, tripID uuid.UUID, p domain.PageParams) ([]domain.Note, int64, error) {
	return m.listByTrip(ctx, tripID, p)
}
func (m *mockNoteServicer) Update(ctx context.Context, tripID, noteID uuid.UUID, upd domain.NoteUpdate) (domain.Note, error) {
	return m.update(ctx, tripID, noteID, upd)
}
func (m *mockNoteServicer) Delete(ctx context.Context, tripID, noteID uuid.UUID) error {
	return m.delete(ctx, tripID, noteID)
}

var _ handler.NoteServicer = (*mockNoteServicer)(nil)

type mockReminderServicer struct {
	create     func(ctx context.Context, tripID uuid.UUID, rem domain.Reminder) (domain.Reminder, error)
	getByID    func(ctx context.Context, tripID, remID uuid.UUID) (domain.Reminder, error)
	listByTrip func(ctx context.Context, tripID uuid.UUID, p domain.PageParams) ([]domain.Reminder, int64, error)
	update     func(ctx context.Context, tripID, remID uuid.UUID, upd domain.ReminderUpdate) (domain.Reminder, error)
	delete     func(ctx context.Context, tripID, remID uuid.UUID) error
}

func (m *mockReminderServicer) Create(ctx context.Context, tripID uuid.UUID, rem domain.Reminder) (domain.Reminder, error) {
	return m.create(ctx, tripID, rem)
}
func (m *mockReminderServicer) GetByID(ctx context.Context, tripID, remID uuid.UUID) (domain.Reminder, error) {
	return m.getByID(ctx, tripID, remID)
}
func (m *mockReminderServicer) ListByTrip(ctx context.Context, tripID uuid.UUID, p domain.PageParams) ([]domain.Reminder, int64, error) {
	return m.listByTrip(ctx, tripID, p)
}
func (m *mockReminderServicer) Update(ctx context.Context, tripID, remID uuid.UUID, upd domain.ReminderUpdate) (domain.Reminder, error) {
	return m.update(ctx, tripID, remID, upd)
}
func (m *mockReminderServicer) Delete(ctx context.Context, tripID, remID uuid.UUID) error {
	return m.delete(ctx, tripID, remID)
}

var _ handler.ReminderServicer = (*mockReminderServicer)(nil)

// pingFunc adapts a function to handler.Pinger.
type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

// ---- wiring helpers --------------------------------------------------------

// deps bundles the mocks a test wants to wire in. Zero-value fields stay nil;
// a request reaching an unwired servicer panics, pointing at the test bug.
type deps struct {
	trips        handler.TripServicer
	destinations handler.DestinationServicer
	itinerary    handler.ItineraryServicer
	notes        handler.NoteServicer
	reminders    handler.ReminderServicer
	db           handler.Pinger
}

// newTestRouter builds the full chi router around the given mocks, mirroring
// how main.go wires the Server in production.
func newTestRouter(d deps) http.Handler {
	srv := handler.NewServer(d.trips, d.destinations, d.itinerary, d.notes, d.reminders, d.db)
	return srv.Routes()
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

// decodeBody unmarshals a recorded response body into T.
func decodeBody[T any](t *testing.T, body *bytes.Buffer) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(body.Bytes(), &v))
	return v
}

// errorBody mirrors the error envelope for assertions.
type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func dateStr(t time.Time) string {
	return t.Format("2006-01-02")
}
