package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"travelplanner/internal/domain"
)

// createReminderRequest is the body of POST /api/trips/{trip_id}/reminders.
type createReminderRequest struct {
	TripID   uuid.UUID  `json:"trip_id"`
	Message  string     `json:"message"`
	RemindAt *time.Time `json:"remind_at"`
}

// updateReminderRequest is the body of PUT .../reminders/{reminder_id}.
type updateReminderRequest struct {
	Message  domain.Optional[string]    `json:"message"`
	RemindAt domain.Optional[time.Time] `json:"remind_at"`
}

// reminderResponse is the canonical read representation of a reminder.
type reminderResponse struct {
	ID        uuid.UUID `json:"id"`
	TripID    uuid.UUID `json:"trip_id"`
	Message   string    `json:"message"`
	RemindAt  time.Time `json:"remind_at"`
	CreatedAt time.Time `json:"created_at"`
}

// listReminders handles GET /api/trips/{trip_id}/reminders.
// Supports ?limit=&offset= (defaults: limit=50, offset=0); latest remind_at first.
func (s *Server) listReminders(w http.ResponseWriter, r *http.Request) {
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

	rems, total, err := s.reminders.ListByTrip(r.Context(), tripID, page)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondNotFound(w, "trip not found")
			return
		}
		respondInternal(w)
		return
	}

	data := make([]reminderResponse, len(rems))
	for i, rem := range rems {
		data[i] = reminderToResponse(rem)
	}
	writeJSON(w, http.StatusOK, listResponse[reminderResponse]{
		Total:  total,
		Limit:  page.Limit,
		Offset: page.Offset,
		Items:  data,
	})
}

// createReminder handles POST /api/trips/{trip_id}/reminders.
func (s *Server) createReminder(w http.ResponseWriter, r *http.Request) {
	tripID, err := uuidParam(r, "trip_id")
	if err != nil {
		respondRequestError(w, err.Error())
		return
	}

	var req createReminderRequest
	if err := decodeJSON(r, &req); err != nil {
		respondRequestError(w, err.Error())
		return
	}
	if req.TripID == uuid.Nil {
		respondRequestError(w, "trip_id is required")
		return
	}

	rem := domain.Reminder{TripID: req.TripID, Message: req.Message}
	if req.RemindAt != nil {
		rem.RemindAt = *req.RemindAt
	}

	created, err := s.reminders.Create(r.Context(), tripID, rem)
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

	writeJSON(w, http.StatusCreated, reminderToResponse(created))
}

// getReminder handles GET /api/trips/{trip_id}/reminders/{reminder_id}.
func (s *Server) getReminder(w http.ResponseWriter, r *http.Request) {
	tripID, remID, ok := s.scopedIDs(w, r, "reminder_id")
	if !ok {
		return
	}

	rem, err := s.reminders.GetByID(r.Context(), tripID, remID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondNotFound(w, "reminder not found")
			return
		}
		respondInternal(w)
		return
	}

	writeJSON(w, http.StatusOK, reminderToResponse(rem))
}

// updateReminder handles PUT /api/trips/{trip_id}/reminders/{reminder_id}.
func (s *Server) updateReminder(w http.ResponseWriter, r *http.Request) {
	tripID, remID, ok := s.scopedIDs(w, r, "reminder_id")
	if !ok {
		return
	}

	var req updateReminderRequest
	if err := decodeJSON(r, &req); err != nil {
		respondRequestError(w, err.Error())
		return
	}

	upd := domain.ReminderUpdate{Message: req.Message, RemindAt: req.RemindAt}

	updated, err := s.reminders.Update(r.Context(), tripID, remID, upd)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondNotFound(w, "reminder not found")
			return
		}
		if errors.Is(err, domain.ErrValidation) {
			respondValidation(w, err)
			return
		}
		respondInternal(w)
		return
	}

	writeJSON(w, http.StatusOK, reminderToResponse(updated))
}

// deleteReminder handles DELETE /api/trips/{trip_id}/reminders/{reminder_id}.
func (s *Server) deleteReminder(w http.ResponseWriter, r *http.Request) {
	tripID, remID, ok := s.scopedIDs(w, r, "reminder_id")
	if !ok {
		return
	}

	if err := s.reminders.Delete(r.Context(), tripID, remID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondNotFound(w, "reminder not found")
			return
		}
		respondInternal(w)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// reminderToResponse converts a domain.Reminder into its JSON representation.
func reminderToResponse(rem domain.Reminder) reminderResponse {
	return reminderResponse{
		ID:        rem.ID,
		TripID:    rem.TripID,
		Message:   rem.Message,
		RemindAt:  rem.RemindAt,
		CreatedAt: rem.CreatedAt,
	}
}
