package domain

import "encoding/json"

// Optional wraps a value that may be absent from a partial-update payload.
// It distinguishes "field not provided" (Set == false) from "field provided
// with a value" (Set == true), which plain pointers cannot express once a
// payload has been decoded and re-encoded.
//
// An explicit JSON null is treated the same as an absent field: none of the
// update contracts allow clearing a field back to empty, so null never
// carries meaning here.
type Optional[T any] struct {
	Value T
	Set   bool
}

// Some returns an Optional holding v with Set == true.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Value: v, Set: true}
}

// UnmarshalJSON implements json.Unmarshaler. The method is only invoked when
// the field is present in the payload, so absence leaves the zero Optional
// (Set == false) untouched.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	if err := json.Unmarshal(data, &o.Value); err != nil {
		return err
	}
	o.Set = true
	return nil
}
