// Copyright: This file is part of timeassert, released under https://github.com/korrel8r/timeassert/blob/main/LICENSE

// package timeassert provides fluent testify assertions for date-time values.
//
//	timeassert.That(t, deadline).IsAfter(start).IsBeforeOrEqualTo(end)
//	timeassert.That(t, strfmt.DateTime(created)).IsBeforeOrEqualToString("2024-01-01T00:00:00Z")
//	timeassert.ThatLocal(t, temporal.LocalOf(got)).IsEqualToIgnoringHours(temporal.LocalOf(want))
//
// Failed comparisons are reported with [assert.Fail] and do not stop the test,
// use [Require] or [RequireLocal] to stop at the first failure.
// Absent references (zero values, nil pointers, empty strings) are invalid arguments:
// they are reported and stop the test if the TestingT has a FailNow method.
//
// The zero value of a date-time type is treated as absent.
package timeassert

import (
	"time"

	"github.com/korrel8r/timeassert/pkg/temporal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Assert is a fluent assertion on a zoned date-time value.
// Methods return the receiver so assertions can be chained.
type Assert struct{ base }

// That starts assertions on actual.
func That[T temporal.Instant](t assert.TestingT, actual T) *Assert {
	return newAssert(t, temporal.Of(actual), false)
}

// ThatPtr starts assertions on *actual, a nil actual is absent.
func ThatPtr[T temporal.Instant](t assert.TestingT, actual *T) *Assert {
	return newAssert(t, temporal.OfPtr(actual), false)
}

// Require is like [That] but the test stops at the first failure.
func Require[T temporal.Instant](t require.TestingT, actual T) *Assert {
	return newAssert(t, temporal.Of(actual), true)
}

// RequirePtr is like [ThatPtr] but the test stops at the first failure.
func RequirePtr[T temporal.Instant](t require.TestingT, actual *T) *Assert {
	return newAssert(t, temporal.OfPtr(actual), true)
}

func newAssert(t assert.TestingT, actual temporal.Option, failNow bool) *Assert {
	return &Assert{base{
		t:         t,
		actual:    actual,
		param:     temporal.TimeParam,
		textParam: temporal.StringParam,
		failNow:   failNow,
	}}
}

// As adds a description to failure messages, same as testify msgAndArgs.
func (a *Assert) As(msgAndArgs ...any) *Assert { a.msgAndArgs = msgAndArgs; return a }

// Passed is true if no assertion has failed.
func (a *Assert) Passed() bool { return len(a.failures) == 0 }

// Failures returns the failure messages reported so far.
func (a *Assert) Failures() []string { return a.failures }

// IsBefore asserts actual is strictly before reference.
func (a *Assert) IsBefore(reference time.Time) *Assert {
	a.helper()
	a.check(temporal.Of(reference), a.param, temporal.ModeBefore)
	return a
}

// IsBeforeOrEqualTo asserts actual is before or the same instant as reference.
func (a *Assert) IsBeforeOrEqualTo(reference time.Time) *Assert {
	a.helper()
	a.check(temporal.Of(reference), a.param, temporal.ModeBeforeOrEqual)
	return a
}

// IsAfter asserts actual is strictly after reference.
func (a *Assert) IsAfter(reference time.Time) *Assert {
	a.helper()
	a.check(temporal.Of(reference), a.param, temporal.ModeAfter)
	return a
}

// IsAfterOrEqualTo asserts actual is after or the same instant as reference.
func (a *Assert) IsAfterOrEqualTo(reference time.Time) *Assert {
	a.helper()
	a.check(temporal.Of(reference), a.param, temporal.ModeAfterOrEqual)
	return a
}

// IsEqualToIgnoring asserts actual has the same fields as reference, except for the ignored fields.
// Fields are compared in the location of actual.
func (a *Assert) IsEqualToIgnoring(ignore temporal.Mask, reference time.Time) *Assert {
	a.helper()
	a.check(temporal.Of(reference), a.param, temporal.Ignoring(ignore))
	return a
}

// IsEqualToIgnoringHours asserts actual has the same year, month and day as reference.
func (a *Assert) IsEqualToIgnoringHours(reference time.Time) *Assert {
	a.helper()
	return a.IsEqualToIgnoring(temporal.IgnoreHours, reference)
}

func (a *Assert) IsEqualToIgnoringMinutes(reference time.Time) *Assert {
	a.helper()
	return a.IsEqualToIgnoring(temporal.IgnoreMinutes, reference)
}

func (a *Assert) IsEqualToIgnoringSeconds(reference time.Time) *Assert {
	a.helper()
	return a.IsEqualToIgnoring(temporal.IgnoreSeconds, reference)
}

func (a *Assert) IsEqualToIgnoringMillis(reference time.Time) *Assert {
	a.helper()
	return a.IsEqualToIgnoring(temporal.IgnoreMillis, reference)
}

// IsBeforeString is like IsBefore with a textual reference, see [temporal.Parse].
func (a *Assert) IsBeforeString(reference string) *Assert {
	a.helper()
	a.checkText(reference, temporal.ModeBefore)
	return a
}

func (a *Assert) IsBeforeOrEqualToString(reference string) *Assert {
	a.helper()
	a.checkText(reference, temporal.ModeBeforeOrEqual)
	return a
}

func (a *Assert) IsAfterString(reference string) *Assert {
	a.helper()
	a.checkText(reference, temporal.ModeAfter)
	return a
}

func (a *Assert) IsAfterOrEqualToString(reference string) *Assert {
	a.helper()
	a.checkText(reference, temporal.ModeAfterOrEqual)
	return a
}

func (a *Assert) IsEqualToIgnoringString(ignore temporal.Mask, reference string) *Assert {
	a.helper()
	a.checkText(reference, temporal.Ignoring(ignore))
	return a
}

func (a *Assert) IsEqualToIgnoringHoursString(reference string) *Assert {
	a.helper()
	return a.IsEqualToIgnoringString(temporal.IgnoreHours, reference)
}

func (a *Assert) IsEqualToIgnoringMinutesString(reference string) *Assert {
	a.helper()
	return a.IsEqualToIgnoringString(temporal.IgnoreMinutes, reference)
}

func (a *Assert) IsEqualToIgnoringSecondsString(reference string) *Assert {
	a.helper()
	return a.IsEqualToIgnoringString(temporal.IgnoreSeconds, reference)
}

func (a *Assert) IsEqualToIgnoringMillisString(reference string) *Assert {
	a.helper()
	return a.IsEqualToIgnoringString(temporal.IgnoreMillis, reference)
}
