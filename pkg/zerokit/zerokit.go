// Package zerokit helps with zero value related use-cases.
package zerokit

import "reflect"

// Coalesce will return the first non-zero value from the provided values.
// When every value is zero, the type's zero value is returned.
func Coalesce[T any](vs ...T) T {
	for _, v := range vs {
		if !IsZero(v) {
			return v
		}
	}
	var zero T
	return zero
}

// IsZero reports whether v is the zero value of its type.
// When the value implements `IsZero() bool`, that takes precedence.
func IsZero[T any](v T) bool {
	if izr, ok := any(v).(interface{ IsZero() bool }); ok {
		return izr.IsZero()
	}
	return isValueZero(reflect.ValueOf(v))
}

func isValueZero(val reflect.Value) bool {
	switch val.Kind() {
	case reflect.Interface:
		return val.IsNil() || isValueZero(val.Elem())
	case reflect.Slice, reflect.Map, reflect.Ptr, reflect.Chan, reflect.Func:
		return val.IsNil()
	default:
		return !val.IsValid() || val.IsZero()
	}
}
