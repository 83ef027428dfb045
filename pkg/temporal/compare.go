// Copyright: This file is part of timeassert, released under https://github.com/korrel8r/timeassert/blob/main/LICENSE

package temporal

import (
	"fmt"
	"slices"
)

// Order returns -1 if a is before b, +1 if a is after b, 0 if they are the same instant.
// Zoned values in different locations are compared as instants.
func Order(a, b Value) int { return a.t.Compare(b.t) }

// Project returns the retained field values of v, most significant first.
func Project(v Value, ignore Mask) []int {
	retained := ignore.Retained()
	p := make([]int, len(retained))
	for i, f := range retained {
		p[i] = v.Field(f)
	}
	return p
}

// Compare returns the verdict of comparing actual to reference with mode.
//
// For EqualIgnoring, a zoned reference is first converted to the location of a zoned actual,
// then the retained fields must be equal.
func Compare(actual, reference Value, mode Mode) bool {
	switch mode.Op {
	case Before:
		return Order(actual, reference) < 0
	case BeforeOrEqual:
		return Order(actual, reference) <= 0
	case After:
		return Order(actual, reference) > 0
	case AfterOrEqual:
		return Order(actual, reference) >= 0
	case EqualIgnoring:
		if !actual.local {
			reference = reference.In(actual.Location())
		}
		return slices.Equal(Project(actual, mode.Ignore), Project(reference, mode.Ignore))
	}
	panic(fmt.Sprintf("invalid comparison: %v", mode.Op))
}

// Check compares values that may be absent.
// Returns [InvalidArgumentError] for param if reference is absent,
// [ActualIsNullError] if actual is absent, otherwise the result of [Compare].
func Check(actual, reference Option, mode Mode, param Param) (bool, error) {
	r, ok := reference.Get()
	if !ok {
		return false, InvalidArgumentError{Param: param}
	}
	a, ok := actual.Get()
	if !ok {
		return false, ActualIsNullError{}
	}
	return Compare(a, r, mode), nil
}
