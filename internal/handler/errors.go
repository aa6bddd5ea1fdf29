package handler

import (
	"net/http"
	"strings"
)

// errorDetail is the machine-readable part of an error response.
type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// errorResponse is the JSON envelope for all error responses.
type errorResponse struct {
	Error errorDetail `json:"error"`
}

// respondNotFound writes a 404 with the given message. The caller supplies
// the human-readable message (e.g. "trip not found") because the handler is
// the layer that knows what was being looked up.
func respondNotFound(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusNotFound, errorResponse{Error: errorDetail{Code: "not_found", Message: message}})
}

// respondValidation writes a 422 with the message extracted from a wrapped
// domain.ErrValidation error.
func respondValidation(w http.ResponseWriter, err error) {
	respondRequestError(w, unwrapMessage(err))
}

// respondRequestError writes a 422 for a request rejected before or during
// validation (missing/malformed body, bad path or query parameter).
func respondRequestError(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: errorDetail{Code: "validation_error", Message: message}})
}

// respondInternal writes a generic 500. The underlying error is logged by the
// request middleware; it is never leaked to the client.
func respondInternal(w http.ResponseWriter) {
	writeJSON(w, http.StatusInternalServerError, errorResponse{Error: errorDetail{Code: "internal_error", Message: "internal server error"}})
}

// unwrapMessage extracts the human-readable part from a wrapped sentinel error.
// e.g. "service.TripService.Create: validation error: name must not be blank"
// → "name must not be blank".
func unwrapMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	const marker = "validation error: "
	if i := strings.LastIndex(msg, marker); i >= 0 {
		return msg[i+len(marker):]
	}
	return msg
}
