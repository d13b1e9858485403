// Package optional models a JSON field that can be absent, explicitly null,
// or carry a value. Plain pointers conflate the first two states; update
// payloads need all three.
package optional

import "encoding/json"

type state int

const (
	stateUnset state = iota
	stateNull
	stateSet
)

type Optional[T any] struct {
	st    state
	value T
}

func Value[T any](v T) Optional[T] {
	return Optional[T]{st: stateSet, value: v}
}

func Null[T any]() Optional[T] {
	return Optional[T]{st: stateNull}
}

// IsUnset reports that the field was missing from the payload.
func (o Optional[T]) IsUnset() bool { return o.st == stateUnset }

// IsNull reports that the field was present with an explicit null.
func (o Optional[T]) IsNull() bool { return o.st == stateNull }

// IsSet reports that the field carried a value.
func (o Optional[T]) IsSet() bool { return o.st == stateSet }

// Present reports that the field appeared in the payload at all (null or value).
func (o Optional[T]) Present() bool { return o.st != stateUnset }

func (o Optional[T]) Get() (T, bool) {
	return o.value, o.st == stateSet
}

func (o Optional[T]) ValueOrZero() T {
	return o.value
}

// UnmarshalJSON is only invoked by encoding/json when the key is present,
// so the zero Optional naturally means "unset".
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		o.st = stateNull
		return nil
	}
	if err := json.Unmarshal(data, &o.value); err != nil {
		return err
	}
	o.st = stateSet
	return nil
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if o.st == stateSet {
		return json.Marshal(o.value)
	}
	return []byte("null"), nil
}
