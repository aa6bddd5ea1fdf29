package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"travelplanner/internal/domain"
)

// writeJSON serializes v as the response body with the given status code.
// Encoding failures at this point cannot be reported to the client; the
// status line has already been written.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// decodeJSON reads the request body into dst. An empty body and malformed
// JSON both return an error; callers map it to a 422.
func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("request body is required")
		}
		return fmt.Errorf("invalid request body: %v", err)
	}
	return nil
}

// uuidParam parses the named chi URL parameter as a UUID.
func uuidParam(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s must be a valid UUID", name)
	}
	return id, nil
}

// intQuery parses the named query parameter as an int, returning nil when
// the parameter is absent.
func intQuery(r *http.Request, name string) (*int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("%s must be an integer", name)
	}
	return &v, nil
}

// stringQuery returns a pointer to the named query parameter, or nil when absent.
func stringQuery(r *http.Request, name string) *string {
	if !r.URL.Query().Has(name) {
		return nil
	}
	v := r.URL.Query().Get(name)
	return &v
}

// boolQuery parses the named query parameter as a bool, falling back to def
// when the parameter is absent.
func boolQuery(r *http.Request, name string, def bool) (bool, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean", name)
	}
	return v, nil
}

// pageFromQuery builds PageParams from the limit/offset query parameters.
func pageFromQuery(r *http.Request, defaultLimit int) (domain.PageParams, error) {
	limit, err := intQuery(r, "limit")
	if err != nil {
		return domain.PageParams{}, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	offset, err := intQuery(r, "offset")
	if err != nil {
		return domain.PageParams{}, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	return domain.NewPageParams(limit, offset, defaultLimit)
}
