package handler_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travelplanner/internal/domain"
)

func ptr[T any](v T) *T { return &v }

func destinationFixture() domain.Destination {
	return domain.Destination{
		ID:         uuid.New(),
		Name:       "Kyoto",
		Country:    ptr("Japan"),
		City:       ptr("Kyoto"),
		Popularity: ptr(90),
	}
}

type destinationJSON struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Country     *string   `json:"country"`
	City        *string   `json:"city"`
	Description *string   `json:"description"`
	Popularity  *int      `json:"popularity"`
}

type searchResultJSON struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Popularity *int      `json:"popularity"`
	Score      *float64  `json:"score"`
}

type searchPageJSON struct {
	Total  int64              `json:"total"`
	Limit  int                `json:"limit"`
	Offset int                `json:"offset"`
	Items  []searchResultJSON `json:"items"`
}

// ---- POST /api/destinations ------------------------------------------------

func TestCreateDestination_201(t *testing.T) {
	fixture := destinationFixture()
	router := newTestRouter(deps{destinations: &mockDestinationServicer{
		create: func(_ context.Context, d domain.Destination) (domain.Destination, error) {
			assert.Equal(t, "Kyoto", d.Name)
			return fixture, nil
		},
	}})

	body := jsonBody(t, map[string]any{"name": "Kyoto", "country": "Japan", "city": "Kyoto", "popularity": 90})
	req := httptest.NewRequest(http.MethodPost, "/api/destinations", body)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	resp := decodeBody[destinationJSON](t, rec.Body)
	assert.Equal(t, fixture.ID, resp.ID)
	require.NotNil(t, resp.Country)
	assert.Equal(t, "Japan", *resp.Country)
}

func TestCreateDestination_422(t *testing.T) {
	router := newTestRouter(deps{destinations: &mockDestinationServicer{
		create: func(_ context.Context, _ domain.Destination) (domain.Destination, error) {
			return domain.Destination{}, fmt.Errorf("%w: name must not be blank", domain.ErrValidation)
		},
	}})

	req := httptest.NewRequest(http.MethodPost, "/api/destinations", jsonBody(t, map[string]any{"name": " "}))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

// ---- GET /api/destinations/search --------------------------------------------

func TestSearchDestinations_200(t *testing.T) {
	fixture := destinationFixture()
	var gotSearch domain.DestinationSearch
	router := newTestRouter(deps{destinations: &mockDestinationServicer{
		search: func(_ context.Context, s domain.DestinationSearch) ([]domain.Destination, int64, error) {
			gotSearch = s
			return []domain.Destination{fixture}, 1, nil
		},
	}})

	req := httptest.NewRequest(http.MethodGet, "/api/destinations/search?q=kyo&include_country=false&limit=10", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "kyo", gotSearch.Query)
	assert.False(t, gotSearch.IncludeCountry, "explicitly disabled")
	assert.True(t, gotSearch.IncludeCity, "defaults to on")
	assert.Equal(t, 10, gotSearch.Page.Limit)

	resp := decodeBody[searchPageJSON](t, rec.Body)
	assert.EqualValues(t, 1, resp.Total)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, fixture.ID, resp.Items[0].ID)
	assert.Nil(t, resp.Items[0].Score, "score is reserved and always null")
	// The key itself must be present even though the value is null.
	assert.Contains(t, rec.Body.String(), `"score":null`)
}

func TestSearchDestinations_422_BlankQuery(t *testing.T) {
	router := newTestRouter(deps{destinations: &mockDestinationServicer{
		search: func(_ context.Context, _ domain.DestinationSearch) ([]domain.Destination, int64, error) {
			return nil, 0, fmt.Errorf("%w: q must not be blank", domain.ErrValidation)
		},
	}})

	req := httptest.NewRequest(http.MethodGet, "/api/destinations/search?q=++", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	resp := decodeBody[errorBody](t, rec.Body)
	assert.Equal(t, "q must not be blank", resp.Error.Message)
}

func TestSearchDestinations_422_BadToggle(t *testing.T) {
	router := newTestRouter(deps{destinations: &mockDestinationServicer{}})

	req := httptest.NewRequest(http.MethodGet, "/api/destinations/search?q=x&include_city=maybe", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

// ---- GET /api/destinations/{destination_id} ----------------------------------

func TestGetDestination_404(t *testing.T) {
	router := newTestRouter(deps{destinations: &mockDestinationServicer{
		getByID: func(_ context.Context, _ uuid.UUID) (domain.Destination, error) {
			return domain.Destination{}, domain.ErrNotFound
		},
	}})

	req := httptest.NewRequest(http.MethodGet, "/api/destinations/"+uuid.NewString(), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// ---- PUT /api/destinations/{destination_id} ----------------------------------

func TestUpdateDestination_PartialPayload(t *testing.T) {
	fixture := destinationFixture()
	var gotUpd domain.DestinationUpdate
	router := newTestRouter(deps{destinations: &mockDestinationServicer{
		update: func(_ context.Context, _ uuid.UUID, upd domain.DestinationUpdate) (domain.Destination, error) {
			gotUpd = upd
			return fixture, nil
		},
	}})

	body := jsonBody(t, map[string]any{"popularity": 95})
	req := httptest.NewRequest(http.MethodPut, "/api/destinations/"+fixture.ID.String(), body)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, gotUpd.Name.Set)
	assert.False(t, gotUpd.Country.Set)
	require.True(t, gotUpd.Popularity.Set)
	assert.Equal(t, 95, gotUpd.Popularity.Value)
}

// ---- DELETE /api/destinations/{destination_id} -------------------------------

func TestDeleteDestination_204(t *testing.T) {
	router := newTestRouter(deps{destinations: &mockDestinationServicer{
		delete: func(_ context.Context, _ uuid.UUID) error { return nil },
	}})

	req := httptest.NewRequest(http.MethodDelete, "/api/destinations/"+uuid.NewString(), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}
