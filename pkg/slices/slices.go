// Copyright: This file is part of timeassert, released under https://github.com/korrel8r/timeassert/blob/main/LICENSE

// package slices has generic slice helpers missing from the standard slices package.
package slices

import (
	"fmt"
)

// Transform returns a new slice with f applied to each element of t.
func Transform[T, U any](t []T, f func(T) U) []U {
	u := make([]U, len(t))
	for i := range t {
		u[i] = f(t[i])
	}
	return u
}

// Strings formats each element of t with %v.
func Strings[T any](t []T) []string {
	return Transform(t, func(v T) string { return fmt.Sprintf("%v", v) })
}
