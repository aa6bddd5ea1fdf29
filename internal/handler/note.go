package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"travelplanner/internal/domain"
)

// createNoteRequest is the body of POST /api/trips/{trip_id}/notes.
type createNoteRequest struct {
	TripID  uuid.UUID `json:"trip_id"`
	Content string    `json:"content"`
}

// updateNoteRequest is the body of PUT .../notes/{note_id}.
type updateNoteRequest struct {
	Content domain.Optional[string] `json:"content"`
}

// noteResponse is the canonical read representation of a note.
type noteResponse struct {
	ID        uuid.UUID `json:"id"`
	TripID    uuid.UUID `json:"trip_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// listNotes handles GET /api/trips/{trip_id}/notes.
// Supports ?limit=&offset= (defaults: limit=50, offset=0); newest first.
func (s *Server) listNotes(w http.ResponseWriter, r *http.Request) {
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

	notes, total, err := s.notes.ListByTrip(r.Context(), tripID, page)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondNotFound(w, "trip not found")
			return
		}
		respondInternal(w)
		return
	}

	data := make([]noteResponse, len(notes))
	for i, n := range notes {
		data[i] = noteToResponse(n)
	}
	writeJSON(w, http.StatusOK, listResponse[noteResponse]{
		Total:  total,
		Limit:  page.Limit,
		Offset: page.Offset,
		Items:  data,
	})
}

// createNote handles POST /api/trips/{trip_id}/notes.
func (s *Server) createNote(w http.ResponseWriter, r *http.Request) {
	tripID, err := uuidParam(r, "trip_id")
	if err != nil {
		respondRequestError(w, err.Error())
		return
	}

	var req createNoteRequest
	if err := decodeJSON(r, &req); err != nil {
		respondRequestError(w, err.Error())
		return
	}
	if req.TripID == uuid.Nil {
		respondRequestError(w, "trip_id is required")
		return
	}

	note := domain.Note{TripID: req.TripID, Content: req.Content}

	created, err := s.notes.Create(r.Context(), tripID, note)
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

	writeJSON(w, http.StatusCreated, noteToResponse(created))
}

// getNote handles GET /api/trips/{trip_id}/notes/{note_id}.
func (s *Server) getNote(w http.ResponseWriter, r *http.Request) {
	tripID, noteID, ok := s.scopedIDs(w, r, "note_id")
	if !ok {
		return
	}

	note, err := s.notes.GetByID(r.Context(), tripID, noteID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondNotFound(w, "note not found")
			return
		}
		respondInternal(w)
		return
	}

	writeJSON(w, http.StatusOK, noteToResponse(note))
}

// updateNote handles PUT /api/trips/{trip_id}/notes/{note_id}.
func (s *Server) updateNote(w http.ResponseWriter, r *http.Request) {
	tripID, noteID, ok := s.scopedIDs(w, r, "note_id")
	if !ok {
		return
	}

	var req updateNoteRequest
	if err := decodeJSON(r, &req); err != nil {
		respondRequestError(w, err.Error())
		return
	}

	updated, err := s.notes.Update(r.Context(), tripID, noteID, domain.NoteUpdate{Content: req.Content})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondNotFound(w, "note not found")
			return
		}
		if errors.Is(err, domain.ErrValidation) {
			respondValidation(w, err)
			return
		}
		respondInternal(w)
		return
	}

	writeJSON(w, http.StatusOK, noteToResponse(updated))
}

// deleteNote handles DELETE /api/trips/{trip_id}/notes/{note_id}.
func (s *Server) deleteNote(w http.ResponseWriter, r *http.Request) {
	tripID, noteID, ok := s.scopedIDs(w, r, "note_id")
	if !ok {
		return
	}

	if err := s.notes.Delete(r.Context(), tripID, noteID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondNotFound(w, "note not found")
			return
		}
		respondInternal(w)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// noteToResponse converts a domain.Note into its JSON representation.
func noteToResponse(n domain.Note) noteResponse {
	return noteResponse{
		ID:        n.ID,
		TripID:    n.TripID,
		Content:   n.Content,
		CreatedAt: n.CreatedAt,
	}
}
