package models

import (
	"bytes"
	"encoding/json"
)

var jsonNull = []byte("null")

// Optional is a JSON field that remembers whether the caller supplied it.
// A missing key and an explicit null both leave it unset; false, 0 and ""
// are set values. A value that does not decode as T is kept verbatim and
// written back unchanged, so a shape mismatch never fails the request.
type Optional[T any] struct {
	value T
	raw   json.RawMessage
	set   bool
}

// Some returns a set Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, set: true}
}

// IsSet reports whether a value is present.
func (o Optional[T]) IsSet() bool {
	return o.set
}

// Get returns the typed value. ok is false when the field is unset or held a
// value of another JSON type.
func (o Optional[T]) Get() (v T, ok bool) {
	if !o.set || o.raw != nil {
		return v, false
	}
	return o.value, true
}

// Or returns o when set, otherwise Some(def).
func (o Optional[T]) Or(def T) Optional[T] {
	if o.set {
		return o
	}
	return Some(def)
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	*o = Optional[T]{}
	if bytes.Equal(bytes.TrimSpace(data), jsonNull) {
		return nil
	}
	o.set = true
	if err := json.Unmarshal(data, &o.value); err != nil {
		var zero T
		o.value = zero
		o.raw = append(json.RawMessage(nil), data...)
	}
	return nil
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	switch {
	case !o.set:
		return jsonNull, nil
	case o.raw != nil:
		return o.raw, nil
	default:
		return json.Marshal(o.value)
	}
}
