package domain

import "encoding/json"

// Optional holds a value together with whether it was supplied at all.
// Decoding a JSON object into a struct of Optional fields leaves Set false
// for absent keys and true for present ones, including explicit null, which
// decodes to the zero value.
type Optional[T any] struct {
	Value T
	Set   bool
}

// Some returns a set Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Value: v, Set: true}
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		var zero T
		o.Value = zero
		return nil
	}
	return json.Unmarshal(data, &o.Value)
}
