// Package pointer is a syntax sugar package for taking the pointer of values.
package pointer

// Of takes the pointer of a value.
// It makes it easy to reference the value of a literal or a function result.
func Of[T any](v T) *T { return &v }

// Deref will return the referenced value,
// or if the pointer has no value,
// then it returns with the zero value.
func Deref[T any](v *T) T {
	if v == nil {
		return *new(T)
	}
	return *v
}
