package handler_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travelplanner/internal/domain"
)

func tripFixture() domain.Trip {
	start := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 4, 14, 0, 0, 0, 0, time.UTC)
	return domain.Trip{
		ID:        uuid.New(),
		Name:      "Japan Spring Tour",
		StartDate: &start,
		EndDate:   &end,
		CreatedAt: time.Now().UTC(),
	}
}

// tripJSON mirrors the trip response shape for assertions.
type tripJSON struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	StartDate *string   `json:"start_date"`
	EndDate   *string   `json:"end_date"`
	CreatedAt time.Time `json:"created_at"`
}

type tripPageJSON struct {
	Total  int64      `json:"total"`
	Limit  int        `json:"limit"`
	Offset int        `json:"offset"`
	Items  []tripJSON `json:"items"`
}

// ---- POST /api/trips -------------------------------------------------------

func TestCreateTrip_201(t *testing.T) {
	fixture := tripFixture()
	router := newTestRouter(deps{trips: &mockTripServicer{
		create: func(_ context.Context, _ domain.Trip) (domain.Trip, error) { return fixture, nil },
	}})

	body := jsonBody(t, map[string]any{
		"name":       "Japan Spring Tour",
		"start_date": dateStr(*fixture.StartDate),
		"end_date":   dateStr(*fixture.EndDate),
	})
	req := httptest.NewRequest(http.MethodPost, "/api/trips", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	resp := decodeBody[tripJSON](t, rec.Body)
	assert.Equal(t, fixture.ID, resp.ID)
	assert.Equal(t, fixture.Name, resp.Name)
	require.NotNil(t, resp.StartDate)
	assert.Equal(t, "2026-04-01", *resp.StartDate)
}

func TestCreateTrip_422_Validation(t *testing.T) {
	router := newTestRouter(deps{trips: &mockTripServicer{
		create: func(_ context.Context, _ domain.Trip) (domain.Trip, error) {
			return domain.Trip{}, fmt.Errorf("%w: name must not be blank", domain.ErrValidation)
		},
	}})

	req := httptest.NewRequest(http.MethodPost, "/api/trips", jsonBody(t, map[string]any{"name": "  "}))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	resp := decodeBody[errorBody](t, rec.Body)
	assert.Equal(t, "validation_error", resp.Error.Code)
	assert.Equal(t, "name must not be blank", resp.Error.Message, "wrapping prefixes must be stripped")
}

func TestCreateTrip_422_EmptyBody(t *testing.T) {
	router := newTestRouter(deps{trips: &mockTripServicer{}})

	req := httptest.NewRequest(http.MethodPost, "/api/trips", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	resp := decodeBody[errorBody](t, rec.Body)
	assert.Equal(t, "validation_error", resp.Error.Code)
}

// ---- GET /api/trips --------------------------------------------------------

func TestListTrips_200(t *testing.T) {
	fixture := tripFixture()
	var gotSort domain.TripSort
	var gotPage domain.PageParams
	router := newTestRouter(deps{trips: &mockTripServicer{
		list: func(_ context.Context, sort domain.TripSort, p domain.PageParams) ([]domain.Trip, int64, error) {
			gotSort, gotPage = sort, p
			return []domain.Trip{fixture}, 41, nil
		},
	}})

	req := httptest.NewRequest(http.MethodGet, "/api/trips?limit=5&offset=10&sort_by=name&sort_dir=asc", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody[tripPageJSON](t, rec.Body)
	assert.EqualValues(t, 41, resp.Total)
	assert.Equal(t, 5, resp.Limit)
	assert.Equal(t, 10, resp.Offset)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, fixture.ID, resp.Items[0].ID)

	assert.Equal(t, domain.TripSortName, gotSort.Field)
	assert.Equal(t, domain.SortAsc, gotSort.Dir)
	assert.Equal(t, domain.PageParams{Limit: 5, Offset: 10}, gotPage)
}

func TestListTrips_Defaults(t *testing.T) {
	var gotSort domain.TripSort
	var gotPage domain.PageParams
	router := newTestRouter(deps{trips: &mockTripServicer{
		list: func(_ context.Context, sort domain.TripSort, p domain.PageParams) ([]domain.Trip, int64, error) {
			gotSort, gotPage = sort, p
			return []domain.Trip{}, 0, nil
		},
	}})

	req := httptest.NewRequest(http.MethodGet, "/api/trips", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.TripSortCreatedAt, gotSort.Field)
	assert.Equal(t, domain.SortDesc, gotSort.Dir)
	assert.Equal(t, domain.PageParams{Limit: 20, Offset: 0}, gotPage)
	assert.Contains(t, rec.Body.String(), `"items":[]`, "empty page must serialize as [], not null")
}

func TestListTrips_422_BadLimit(t *testing.T) {
	router := newTestRouter(deps{trips: &mockTripServicer{}})

	for _, query := range []string{"limit=0", "limit=101", "offset=-1", "limit=abc", "sort_by=bogus", "sort_dir=sideways"} {
		req := httptest.NewRequest(http.MethodGet, "/api/trips?"+query, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code, "query %q", query)
	}
}

// ---- GET /api/trips/{trip_id} ----------------------------------------------

func TestGetTrip_200(t *testing.T) {
	fixture := tripFixture()
	router := newTestRouter(deps{trips: &mockTripServicer{
		getByID: func(_ context.Context, id uuid.UUID) (domain.Trip, error) {
			require.Equal(t, fixture.ID, id)
			return fixture, nil
		},
	}})

	req := httptest.NewRequest(http.MethodGet, "/api/trips/"+fixture.ID.String(), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody[tripJSON](t, rec.Body)
	assert.Equal(t, fixture.Name, resp.Name)
}

func TestGetTrip_404(t *testing.T) {
	router := newTestRouter(deps{trips: &mockTripServicer{
		getByID: func(_ context.Context, _ uuid.UUID) (domain.Trip, error) {
			return domain.Trip{}, domain.ErrNotFound
		},
	}})

	req := httptest.NewRequest(http.MethodGet, "/api/trips/"+uuid.NewString(), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	resp := decodeBody[errorBody](t, rec.Body)
	assert.Equal(t, "not_found", resp.Error.Code)
}

func TestGetTrip_422_MalformedID(t *testing.T) {
	router := newTestRouter(deps{trips: &mockTripServicer{}})

	req := httptest.NewRequest(http.MethodGet, "/api/trips/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

// ---- PUT /api/trips/{trip_id} ----------------------------------------------

// The handler must translate field presence faithfully: an absent field stays
// Set == false, a present one carries its value.
func TestUpdateTrip_PartialPayload(t *testing.T) {
	fixture := tripFixture()
	var gotUpd domain.TripUpdate
	router := newTestRouter(deps{trips: &mockTripServicer{
		update: func(_ context.Context, _ uuid.UUID, upd domain.TripUpdate) (domain.Trip, error) {
			gotUpd = upd
			return fixture, nil
		},
	}})

	body := jsonBody(t, map[string]any{"end_date": "2026-04-20"})
	req := httptest.NewRequest(http.MethodPut, "/api/trips/"+fixture.ID.String(), body)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, gotUpd.Name.Set, "name was absent")
	assert.False(t, gotUpd.StartDate.Set, "start_date was absent")
	require.True(t, gotUpd.EndDate.Set)
	assert.Equal(t, time.Date(2026, 4, 20, 0, 0, 0, 0, time.UTC), gotUpd.EndDate.Value)
}

func TestUpdateTrip_404(t *testing.T) {
	router := newTestRouter(deps{trips: &mockTripServicer{
		update: func(_ context.Context, _ uuid.UUID, _ domain.TripUpdate) (domain.Trip, error) {
			return domain.Trip{}, domain.ErrNotFound
		},
	}})

	body := jsonBody(t, map[string]any{"name": "Renamed"})
	req := httptest.NewRequest(http.MethodPut, "/api/trips/"+uuid.NewString(), body)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// ---- DELETE /api/trips/{trip_id} -------------------------------------------

func TestDeleteTrip_204(t *testing.T) {
	router := newTestRouter(deps{trips: &mockTripServicer{
		delete: func(_ context.Context, _ uuid.UUID) error { return nil },
	}})

	req := httptest.NewRequest(http.MethodDelete, "/api/trips/"+uuid.NewString(), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestDeleteTrip_404(t *testing.T) {
	router := newTestRouter(deps{trips: &mockTripServicer{
		delete: func(_ context.Context, _ uuid.UUID) error { return domain.ErrNotFound },
	}})

	req := httptest.NewRequest(http.MethodDelete, "/api/trips/"+uuid.NewString(), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
