// Package ternary is a syntax sugar package that emulates
// the conditional (ternary) expression of other languages.
//
//	v := ternary.If(isAdmin, "admin", "user")
//
// Since If is an ordinary function call, Go evaluates both branch values
// eagerly, before the condition is checked.
// When one of the branches is expensive to produce or has side effects,
// use a regular if statement instead.
package ternary

// If returns whenTrue when cond is true, otherwise it returns whenFalse.
//
// Both whenTrue and whenFalse are evaluated at the call site regardless of cond,
// as with any Go function call.
func If[T any](cond bool, whenTrue, whenFalse T) T {
	if cond {
		return whenTrue
	}
	return whenFalse
}
