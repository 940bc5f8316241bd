// Package sugarkit is a collection of small generic convenience functions
// inspired by constructs found in other programming languages.
//
// Each subpackage under pkg covers one focused concern:
//
//   - slicekit: slice conveniences such as Concat, Reverse, Map and Reduce
//   - ternary:  the conditional (ternary) expression
//   - zerokit:  zero value helpers such as Coalesce
//   - must:     unwrap style error handling sugar
//   - pointer:  taking the pointer of a literal value
//
// The packages are intentionally kept lite,
// they depend only on the standard library,
// and every function is pure: no shared state is read or written,
// and input values are never mutated unless the function name says so.
package sugarkit
