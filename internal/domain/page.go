package domain

import "fmt"

// PageParams carries limit/offset values from the HTTP layer to the repo layer.
type PageParams struct {
	// Limit is the maximum number of items to return (1..100).
	Limit int
	// Offset is the number of matching rows to skip.
	Offset int
}

// NewPageParams builds a PageParams from optional HTTP query params.
// Nil pointers fall back to defaults (offset=0; the limit default varies per
// resource, so callers pass it in). Out-of-range values are rejected with
// ErrValidation rather than silently clamped, matching the documented
// contract (limit 1..100, offset >= 0).
func NewPageParams(limit, offset *int, defaultLimit int) (PageParams, error) {
	p := PageParams{Limit: defaultLimit, Offset: 0}
	if limit != nil {
		if *limit < 1 || *limit > 100 {
			return PageParams{}, fmt.Errorf("%w: limit must be between 1 and 100", ErrValidation)
		}
		p.Limit = *limit
	}
	if offset != nil {
		if *offset < 0 {
			return PageParams{}, fmt.Errorf("%w: offset must not be negative", ErrValidation)
		}
		p.Offset = *offset
	}
	return p, nil
}
