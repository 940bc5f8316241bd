// Package slicekit provides generic convenience functions for working with slices.
//
// The slicekit package is considered as a `lite` package,
// and therefore its dependencies are strictly restricted.
package slicekit

import "fmt"

// Concat returns a new slice containing all elements of the given slices,
// in argument order, keeping each input slice's own element order.
//
// The output length is computed up front by summing the input lengths,
// and the result is allocated exactly once with that capacity,
// so appending the elements never triggers intermediate growth.
// The inputs are not mutated, and the result does not share
// backing storage with any of them.
//
// Calling Concat with no arguments returns an empty slice,
// and calling it with a single slice returns an equal copy in fresh storage.
func Concat[T any](slices ...[]T) []T {
	var total int
	for _, s := range slices {
		total += len(s)
	}
	out := make([]T, 0, total)
	for _, s := range slices {
		out = append(out, s...)
	}
	return out
}

// Reverse returns a new slice with the elements of s in reverse order.
// The input slice is not mutated; use ReverseInPlace for that.
// A nil input yields a nil output.
func Reverse[T any](s []T) []T {
	if s == nil {
		return nil
	}
	out := make([]T, len(s))
	for i, v := range s {
		out[len(s)-1-i] = v
	}
	return out
}

// ReverseInPlace reverses s through its backing array.
// Unlike Reverse it mutates the input and allocates nothing.
func ReverseInPlace[T any](s []T) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

// Must is a syntax sugar to unwrap the result of the error capable functions,
// like slicekit.Must(slicekit.Map[int](strs, strconv.Atoi)).
func Must[T any](v T, err error) T {
	if err != nil {
		panic(fmt.Errorf("slicekit.Must: %w", err))
	}
	return v
}

// Map will do a mapping from an input type into an output type.
func Map[O, I any, FN mapFunc[O, I]](s []I, fn FN) ([]O, error) {
	if s == nil {
		return nil, nil
	}
	var (
		out    = make([]O, len(s))
		mapper = toMapFunc[O, I](fn)
	)
	for index, v := range s {
		o, err := mapper(v)
		if err != nil {
			return out, err
		}
		out[index] = o
	}
	return out, nil
}

// Reduce iterates over a slice, combining elements using the reducer function.
func Reduce[O, I any, FN reduceFunc[O, I]](s []I, initial O, fn FN) (O, error) {
	var (
		result  = initial
		reducer = toReduceFunc[O, I](fn)
	)
	for _, i := range s {
		o, err := reducer(result, i)
		if err != nil {
			return result, err
		}
		result = o
	}
	return result, nil
}

// --------------------------------------------------------------------------------- //

type reduceFunc[O, I any] interface {
	func(O, I) O | func(O, I) (O, error)
}

func toReduceFunc[O, I any, FN reduceFunc[O, I]](m FN) func(O, I) (O, error) {
	switch fn := any(m).(type) {
	case func(O, I) O:
		return func(o O, i I) (O, error) {
			return fn(o, i), nil
		}
	case func(O, I) (O, error):
		return fn
	default:
		panic("unexpected")
	}
}

type mapFunc[O, I any] interface {
	func(I) O | func(I) (O, error)
}

func toMapFunc[O, I any, MF mapFunc[O, I]](m MF) func(I) (O, error) {
	switch fn := any(m).(type) {
	case func(I) O:
		return func(i I) (O, error) {
			return fn(i), nil
		}
	case func(I) (O, error):
		return fn
	default:
		panic("unexpected")
	}
}
