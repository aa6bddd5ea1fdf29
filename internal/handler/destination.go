package handler

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"travelplanner/internal/domain"
)

// createDestinationRequest is the body of POST /api/destinations.
type createDestinationRequest struct {
	Name        string  `json:"name"`
	Country     *string `json:"country"`
	City        *string `json:"city"`
	Description *string `json:"description"`
	Popularity  *int    `json:"popularity"`
}

// updateDestinationRequest is the body of PUT /api/destinations/{destination_id}.
type updateDestinationRequest struct {
	Name        domain.Optional[string] `json:"name"`
	Country     domain.Optional[string] `json:"country"`
	City        domain.Optional[string] `json:"city"`
	Description domain.Optional[string] `json:"description"`
	Popularity  domain.Optional[int]    `json:"popularity"`
}

// destinationResponse is the canonical read representation of a destination.
type destinationResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Country     *string   `json:"country"`
	City        *string   `json:"city"`
	Description *string   `json:"description"`
	Popularity  *int      `json:"popularity"`
}

// destinationSearchResult is one row of the search response. Score is
// reserved for a future relevance ranking and is always null today; ordering
// falls back to popularity, then name.
type destinationSearchResult struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Country    *string   `json:"country"`
	City       *string   `json:"city"`
	Popularity *int      `json:"popularity"`
	Score      *float64  `json:"score"`
}

// searchDestinations handles GET /api/destinations/search.
// Supports ?q=&limit=&offset=&include_country=&include_city=
// (defaults: limit=20, offset=0, both toggles on).
func (s *Server) searchDestinations(w http.ResponseWriter, r *http.Request) {
	page, err := pageFromQuery(r, 20)
	if err != nil {
		respondValidation(w, err)
		return
	}
	includeCountry, err := boolQuery(r, "include_country", true)
	if err != nil {
		respondRequestError(w, err.Error())
		return
	}
	includeCity, err := boolQuery(r, "include_city", true)
	if err != nil {
		respondRequestError(w, err.Error())
		return
	}

	search := domain.DestinationSearch{
		Query:          r.URL.Query().Get("q"),
		IncludeCountry: includeCountry,
		IncludeCity:    includeCity,
		Page:           page,
	}

	dests, total, err := s.destinations.Search(r.Context(), search)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			respondValidation(w, err)
			return
		}
		respondInternal(w)
		return
	}

	items := make([]destinationSearchResult, len(dests))
	for i, d := range dests {
		items[i] = destinationSearchResult{
			ID:         d.ID,
			Name:       d.Name,
			Country:    d.Country,
			City:       d.City,
			Popularity: d.Popularity,
		}
	}
	writeJSON(w, http.StatusOK, listResponse[destinationSearchResult]{
		Total:  total,
		Limit:  page.Limit,
		Offset: page.Offset,
		Items:  items,
	})
}

// createDestination handles POST /api/destinations.
func (s *Server) createDestination(w http.ResponseWriter, r *http.Request) {
	var req createDestinationRequest
	if err := decodeJSON(r, &req); err != nil {
		respondRequestError(w, err.Error())
		return
	}

	dest := domain.Destination{
		Name:        req.Name,
		Country:     req.Country,
		City:        req.City,
		Description: req.Description,
		Popularity:  req.Popularity,
	}

	created, err := s.destinations.Create(r.Context(), dest)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			respondValidation(w, err)
			return
		}
		respondInternal(w)
		return
	}

	writeJSON(w, http.StatusCreated, destinationToResponse(created))
}

// getDestination handles GET /api/destinations/{destination_id}.
func (s *Server) getDestination(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "destination_id")
	if err != nil {
		respondRequestError(w, err.Error())
		return
	}

	dest, err := s.destinations.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondNotFound(w, "destination not found")
			return
		}
		respondInternal(w)
		return
	}

	writeJSON(w, http.StatusOK, destinationToResponse(dest))
}

// updateDestination handles PUT /api/destinations/{destination_id}.
func (s *Server) updateDestination(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "destination_id")
	if err != nil {
		respondRequestError(w, err.Error())
		return
	}

	var req updateDestinationRequest
	if err := decodeJSON(r, &req); err != nil {
		respondRequestError(w, err.Error())
		return
	}

	upd := domain.DestinationUpdate{
		Name:        req.Name,
		Country:     req.Country,
		City:        req.City,
		Description: req.Description,
		Popularity:  req.Popularity,
	}

	updated, err := s.destinations.Update(r.Context(), id, upd)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondNotFound(w, "destination not found")
			return
		}
		if errors.Is(err, domain.ErrValidation) {
			respondValidation(w, err)
			return
		}
		respondInternal(w)
		return
	}

	writeJSON(w, http.StatusOK, destinationToResponse(updated))
}

// deleteDestination handles DELETE /api/destinations/{destination_id}.
// Itinerary items referencing the destination survive with the reference cleared.
func (s *Server) deleteDestination(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "destination_id")
	if err != nil {
		respondRequestError(w, err.Error())
		return
	}

	if err := s.destinations.Delete(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondNotFound(w, "destination not found")
			return
		}
		respondInternal(w)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// destinationToResponse converts a domain.Destination into its JSON representation.
func destinationToResponse(d domain.Destination) destinationResponse {
	return destinationResponse{
		ID:          d.ID,
		Name:        d.Name,
		Country:     d.Country,
		City:        d.City,
		Description: d.Description,
		Popularity:  d.Popularity,
	}
}
