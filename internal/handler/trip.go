package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"travelplanner/internal/domain"
)

// createTripRequest is the body of POST /api/trips.
type createTripRequest struct {
	Name      string              `json:"name"`
	StartDate *openapi_types.Date `json:"start_date"`
	EndDate   *openapi_types.Date `json:"end_date"`
}

// updateTripRequest is the body of PUT /api/trips/{trip_id}.
// Optional fields distinguish "absent" from "provided"; absent fields leave
// the stored value unchanged.
type updateTripRequest struct {
	Name      domain.Optional[string]             `json:"name"`
	StartDate domain.Optional[openapi_types.Date] `json:"start_date"`
	EndDate   domain.Optional[openapi_types.Date] `json:"end_date"`
}

// tripResponse is the canonical read representation of a trip.
type tripResponse struct {
	ID        uuid.UUID           `json:"id"`
	Name      string              `json:"name"`
	StartDate *openapi_types.Date `json:"start_date"`
	EndDate   *openapi_types.Date `json:"end_date"`
	CreatedAt time.Time           `json:"created_at"`
}

// listTrips handles GET /api/trips.
// Supports ?limit=&offset=&sort_by={created_at|name}&sort_dir={asc|desc}
// (defaults: limit=20, offset=0, created_at desc).
func (s *Server) listTrips(w http.ResponseWriter, r *http.Request) {
	page, err := pageFromQuery(r, 20)
	if err != nil {
		respondValidation(w, err)
		return
	}
	sort, err := domain.NewTripSort(stringQuery(r, "sort_by"), stringQuery(r, "sort_dir"))
	if err != nil {
		respondValidation(w, err)
		return
	}

	trips, total, err := s.trips.List(r.Context(), sort, page)
	if err != nil {
		respondInternal(w)
		return
	}

	items := make([]tripResponse, len(trips))
	for i, t := range trips {
		items[i] = tripToResponse(t)
	}
	writeJSON(w, http.StatusOK, listResponse[tripResponse]{
		Total:  total,
		Limit:  page.Limit,
		Offset: page.Offset,
		Items:  items,
	})
}

// createTrip handles POST /api/trips.
func (s *Server) createTrip(w http.ResponseWriter, r *http.Request) {
	var req createTripRequest
	if err := decodeJSON(r, &req); err != nil {
		respondRequestError(w, err.Error())
		return
	}

	trip := domain.Trip{Name: req.Name}
	if req.StartDate != nil {
		sd := req.StartDate.Time
		trip.StartDate = &sd
	}
	if req.EndDate != nil {
		ed := req.EndDate.Time
		trip.EndDate = &ed
	}

	created, err := s.trips.Create(r.Context(), trip)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			respondValidation(w, err)
			return
		}
		respondInternal(w)
		return
	}

	writeJSON(w, http.StatusCreated, tripToResponse(created))
}

// getTrip handles GET /api/trips/{trip_id}.
func (s *Server) getTrip(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "trip_id")
	if err != nil {
		respondRequestError(w, err.Error())
		return
	}

	trip, err := s.trips.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondNotFound(w, "trip not found")
			return
		}
		respondInternal(w)
		return
	}

	writeJSON(w, http.StatusOK, tripToResponse(trip))
}

// updateTrip handles PUT /api/trips/{trip_id}. Only provided fields change.
func (s *Server) updateTrip(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "trip_id")
	if err != nil {
		respondRequestError(w, err.Error())
		return
	}

	var req updateTripRequest
	if err := decodeJSON(r, &req); err != nil {
		respondRequestError(w, err.Error())
		return
	}

	upd := domain.TripUpdate{Name: req.Name}
	if req.StartDate.Set {
		upd.StartDate = domain.Some(req.StartDate.Value.Time)
	}
	if req.EndDate.Set {
		upd.EndDate = domain.Some(req.EndDate.Value.Time)
	}

	updated, err := s.trips.Update(r.Context(), id, upd)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondNotFound(w, "trip not found")
			return
		}
		if errors.Is(err, domain.ErrValidation) {
			respondValidation(w, err)
			return
		}
		respondInternal(w)
		return
	}

	writeJSON(w, http.StatusOK, tripToResponse(updated))
}

// deleteTrip handles DELETE /api/trips/{trip_id}.
func (s *Server) deleteTrip(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "trip_id")
	if err != nil {
		respondRequestError(w, err.Error())
		return
	}

	if err := s.trips.Delete(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondNotFound(w, "trip not found")
			return
		}
		respondInternal(w)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// tripToResponse converts a domain.Trip into its JSON representation.
func tripToResponse(t domain.Trip) tripResponse {
	resp := tripResponse{
		ID:        t.ID,
		Name:      t.Name,
		CreatedAt: t.CreatedAt,
	}
	if t.StartDate != nil {
		resp.StartDate = &openapi_types.Date{Time: *t.StartDate}
	}
	if t.EndDate != nil {
		resp.EndDate = &openapi_types.Date{Time: *t.EndDate}
	}
	return resp
}
