package common

import "fmt"

// Optional holds a value that may be missing from the source document.
// A field that is absent or set to null decodes as missing; any other JSON
// value, including an empty array, decodes as present.
type Optional[T any] struct {
	value   T
	present bool
}

func Some[T any](value T) Optional[T] {
	return Optional[T]{value: value, present: true}
}

func None[T any]() Optional[T] {
	return Optional[T]{}
}

func (o Optional[T]) IsPresent() bool {
	return o.present
}

// Get returns the value and whether it was present.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.present
}

// Or returns the value when present and fallback otherwise.
func (o Optional[T]) Or(fallback T) T {
	if !o.present {
		return fallback
	}
	return o.value
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		*o = Optional[T]{}
		return nil
	}
	var value T
	if err := JSON.Unmarshal(data, &value); err != nil {
		return fmt.Errorf("expected %T: %w", value, err)
	}
	*o = Optional[T]{value: value, present: true}
	return nil
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.present {
		return []byte("null"), nil
	}
	return JSON.Marshal(o.value)
}
