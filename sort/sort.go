/*
Package sort provides instrumented sorting algorithms that count the
comparisons and swaps they perform.

An Engine owns a sequence of elements for its whole lifetime. Every
element comparison made by an algorithm goes through the engine's
counted compare primitive, and every positional exchange goes through its
counted swap primitive, so the counters reflect the exact cost of a sort
in terms of operations rather than wall-clock time.

Text elements are ordered case-insensitively: both operands are
upper-cased before they are compared.
*/
package sort

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

/*
Element is the set of element types an Engine can sort: signed integers
or text. A sequence never mixes element types.
*/
type Element interface {
	int | int8 | int16 | int32 | int64 | string
}

// newCaser returns the case mapping used to fold text before ordering.
// A cases.Caser is stateful, so each owner needs its own.
func newCaser() cases.Caser {
	return cases.Upper(language.Und)
}

// lessFunc returns the ascending order relation for T. Text operands are
// folded with c first.
func lessFunc[T Element](c cases.Caser) func(a, b T) bool {
	var zero T
	if _, isString := any(zero).(string); isString {
		return func(a, b T) bool {
			return c.String(any(a).(string)) < c.String(any(b).(string))
		}
	}
	return func(a, b T) bool {
		return a < b
	}
}

/*
Less reports whether a sorts before b under the same ordering relation
that Engine uses, without counting anything.
*/
func Less[T Element](a, b T) bool {
	return lessFunc[T](newCaser())(a, b)
}

/*
IsSorted reports whether s is in ascending order, case-insensitively for
text. It does not count comparisons and is meant for verifying the
results of an Engine.
*/
func IsSorted[T Element](s []T) bool {
	less := lessFunc[T](newCaser())
	for i := 1; i < len(s); i++ {
		if less(s[i], s[i-1]) {
			return false
		}
	}
	return true
}
