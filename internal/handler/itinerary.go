package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"travelplanner/internal/domain"
)

// createItineraryItemRequest is the body of POST /api/trips/{trip_id}/itinerary.
// The body carries trip_id for compatibility with the canonical schema; it
// must match the path parameter.
type createItineraryItemRequest struct {
	TripID        uuid.UUID  `json:"trip_id"`
	Day           int        `json:"day"`
	Title         string     `json:"title"`
	Description   *string    `json:"description"`
	StartTime     *time.Time `json:"start_time"`
	EndTime       *time.Time `json:"end_time"`
	DestinationID *uuid.UUID `json:"destination_id"`
}

// updateItineraryItemRequest is the body of PUT .../itinerary/{item_id}.
// trip_id is deliberately not accepted: ownership is not transferable.
type updateItineraryItemRequest struct {
	Day           domain.Optional[int]       `json:"day"`
	Title         domain.Optional[string]    `json:"title"`
	Description   domain.Optional[string]    `json:"description"`
	StartTime     domain.Optional[time.Time] `json:"start_time"`
	EndTime       domain.Optional[time.Time] `json:"end_time"`
	DestinationID domain.Optional[uuid.UUID] `json:"destination_id"`
}

// itineraryItemResponse is the canonical read representation of an itinerary item.
type itineraryItemResponse struct {
	ID            uuid.UUID  `json:"id"`
	TripID        uuid.UUID  `json:"trip_id"`
	Day           int        `json:"day"`
	Title         string     `json:"title"`
	Description   *string    `json:"description"`
	StartTime     *time.Time `json:"start_time"`
	EndTime       *time.Time `json:"end_time"`
	DestinationID *uuid.UUID `json:"destination_id"`
}

// listItineraryItems handles GET /api/trips/{trip_id}/itinerary.
// Supports ?limit=&offset= (defaults: limit=50, offset=0).
func (s *Server) listItineraryItems(w http.ResponseWriter, r *http.Request) {
	tripID, err := uuidParam(r, "trip_id")
	if err != nil {
		respondRequestError(w, err.Error())
		return
	}
	page, err := pageFromQuery(r, 50)
	if err != nil {
		respondValidation(w, err)
		return
	}

	items, total, err := s.itinerary.ListByTrip(r.Context(), tripID, page)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondNotFound(w, "trip not found")
			return
		}
		respondInternal(w)
		return
	}

	data := make([]itineraryItemResponse, len(items))
	for i, item := range items {
		data[i] = itineraryItemToResponse(item)
	}
	writeJSON(w, http.StatusOK, listResponse[itineraryItemResponse]{
		Total:  total,
		Limit:  page.Limit,
		Offset: page.Offset,
		Items:  data,
	})
}

// createItineraryItem handles POST /api/trips/{trip_id}/itinerary.
func (s *Server) createItineraryItem(w http.ResponseWriter, r *http.Request) {
	tripID, err := uuidParam(r, "trip_id")
	if err != nil {
		respondRequestError(w, err.Error())
		return
	}

	var req createItineraryItemRequest
	if err := decodeJSON(r, &req); err != nil {
		respondRequestError(w, err.Error())
		return
	}
	if req.TripID == uuid.Nil {
		respondRequestError(w, "trip_id is required")
		return
	}

	item := domain.ItineraryItem{
		TripID:        req.TripID,
		Day:           req.Day,
		Title:         req.Title,
		Description:   req.Description,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		DestinationID: req.DestinationID,
	}

	created, err := s.itinerary.Create(r.Context(), tripID, item)
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

	writeJSON(w, http.StatusCreated, itineraryItemToResponse(created))
}

// getItineraryItem handles GET /api/trips/{trip_id}/itinerary/{item_id}.
func (s *Server) getItineraryItem(w http.ResponseWriter, r *http.Request) {
	tripID, itemID, ok := s.scopedIDs(w, r, "item_id")
	if !ok {
		return
	}

	item, err := s.itinerary.GetByID(r.Context(), tripID, itemID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondNotFound(w, "itinerary item not found")
			return
		}
		respondInternal(w)
		return
	}

	writeJSON(w, http.StatusOK, itineraryItemToResponse(item))
}

// updateItineraryItem handles PUT /api/trips/{trip_id}/itinerary/{item_id}.
func (s *Server) updateItineraryItem(w http.ResponseWriter, r *http.Request) {
	tripID, itemID, ok := s.scopedIDs(w, r, "item_id")
	if !ok {
		return
	}

	var req updateItineraryItemRequest
	if err := decodeJSON(r, &req); err != nil {
		respondRequestError(w, err.Error())
		return
	}

	upd := domain.ItineraryItemUpdate{
		Day:           req.Day,
		Title:         req.Title,
		Description:   req.Description,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		DestinationID: req.DestinationID,
	}

	updated, err := s.itinerary.Update(r.Context(), tripID, itemID, upd)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondNotFound(w, "itinerary item not found")
			return
		}
		if errors.Is(err, domain.ErrValidation) {
			respondValidation(w, err)
			return
		}
		respondInternal(w)
		return
	}

	writeJSON(w, http.StatusOK, itineraryItemToResponse(updated))
}

// deleteItineraryItem handles DELETE /api/trips/{trip_id}/itinerary/{item_id}.
func (s *Server) deleteItineraryItem(w http.ResponseWriter, r *http.Request) {
	tripID, itemID, ok := s.scopedIDs(w, r, "item_id")
	if !ok {
		return
	}

	if err := s.itinerary.Delete(r.Context(), tripID, itemID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondNotFound(w, "itinerary item not found")
			return
		}
		respondInternal(w)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// scopedIDs parses the trip_id path parameter plus the named child parameter,
// writing a 422 and returning ok=false when either is malformed.
func (s *Server) scopedIDs(w http.ResponseWriter, r *http.Request, childParam string) (tripID, childID uuid.UUID, ok bool) {
	tripID, err := uuidParam(r, "trip_id")
	if err != nil {
		respondRequestError(w, err.Error())
		return uuid.Nil, uuid.Nil, false
	}
	childID, err = uuidParam(r, childParam)
	if err != nil {
		respondRequestError(w, err.Error())
		return uuid.Nil, uuid.Nil, false
	}
	return tripID, childID, true
}

// itineraryItemToResponse converts a domain.ItineraryItem into its JSON representation.
func itineraryItemToResponse(item domain.ItineraryItem) itineraryItemResponse {
	return itineraryItemResponse{
		ID:            item.ID,
		TripID:        item.TripID,
		Day:           item.Day,
		Title:         item.Title,
		Description:   item.Description,
		StartTime:     item.StartTime,
		EndTime:       item.EndTime,
		DestinationID: item.DestinationID,
	}
}
