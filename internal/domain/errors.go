package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist — or exists but belongs to a different trip than
// the one named in the URL path. Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned when input fails business rule validation
// (blank required field, length/range violation, end before start, or a
// payload trip_id that contradicts the URL path).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")
