package core

import (
	"bytes"
	"encoding/json"
)

// Optional is a JSON field that knows whether it appeared in the payload.
// Absent fields leave Set false; an explicit null marks the field as set with
// the zero value of T. Patch types use it so a partial update only touches
// the fields the caller actually supplied.
type Optional[T any] struct {
	Value T
	Set   bool
}

// Some wraps a value as an explicitly supplied Optional.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Value: v, Set: true}
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		var zero T
		o.Value = zero
		return nil
	}
	return json.Unmarshal(data, &o.Value)
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Set {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}
