// Copyright: This file is part of timeassert, released under https://github.com/korrel8r/timeassert/blob/main/LICENSE

package timeassert

import (
	"github.com/korrel8r/timeassert/pkg/temporal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// LocalAssert is a fluent assertion on a [temporal.LocalDateTime].
type LocalAssert struct{ base }

// ThatLocal starts assertions on actual.
func ThatLocal(t assert.TestingT, actual temporal.LocalDateTime) *LocalAssert {
	return newLocalAssert(t, actual, false)
}

// RequireLocal is like [ThatLocal] but the test stops at the first failure.
func RequireLocal(t require.TestingT, actual temporal.LocalDateTime) *LocalAssert {
	return newLocalAssert(t, actual, true)
}

func newLocalAssert(t assert.TestingT, actual temporal.LocalDateTime, failNow bool) *LocalAssert {
	return &LocalAssert{base{
		t:         t,
		actual:    temporal.OfLocal(actual),
		param:     temporal.LocalParam,
		textParam: temporal.LocalStringParam,
		failNow:   failNow,
	}}
}

func (a *LocalAssert) As(msgAndArgs ...any) *LocalAssert { a.msgAndArgs = msgAndArgs; return a }
func (a *LocalAssert) Passed() bool                      { return len(a.failures) == 0 }
func (a *LocalAssert) Failures() []string                { return a.failures }

func (a *LocalAssert) IsBefore(reference temporal.LocalDateTime) *LocalAssert {
	a.helper()
	a.check(temporal.OfLocal(reference), a.param, temporal.ModeBefore)
	return a
}

func (a *LocalAssert) IsBeforeOrEqualTo(reference temporal.LocalDateTime) *LocalAssert {
	a.helper()
	a.check(temporal.OfLocal(reference), a.param, temporal.ModeBeforeOrEqual)
	return a
}

func (a *LocalAssert) IsAfter(reference temporal.LocalDateTime) *LocalAssert {
	a.helper()
	a.check(temporal.OfLocal(reference), a.param, temporal.ModeAfter)
	return a
}

func (a *LocalAssert) IsAfterOrEqualTo(reference temporal.LocalDateTime) *LocalAssert {
	a.helper()
	a.check(temporal.OfLocal(reference), a.param, temporal.ModeAfterOrEqual)
	return a
}

func (a *LocalAssert) IsEqualToIgnoring(ignore temporal.Mask, reference temporal.LocalDateTime) *LocalAssert {
	a.helper()
	a.check(temporal.OfLocal(reference), a.param, temporal.Ignoring(ignore))
	return a
}

func (a *LocalAssert) IsEqualToIgnoringHours(reference temporal.LocalDateTime) *LocalAssert {
	a.helper()
	return a.IsEqualToIgnoring(temporal.IgnoreHours, reference)
}

func (a *LocalAssert) IsEqualToIgnoringMinutes(reference temporal.LocalDateTime) *LocalAssert {
	a.helper()
	return a.IsEqualToIgnoring(temporal.IgnoreMinutes, reference)
}

func (a *LocalAssert) IsEqualToIgnoringSeconds(reference temporal.LocalDateTime) *LocalAssert {
	a.helper()
	return a.IsEqualToIgnoring(temporal.IgnoreSeconds, reference)
}

func (a *LocalAssert) IsEqualToIgnoringMillis(reference temporal.LocalDateTime) *LocalAssert {
	a.helper()
	return a.IsEqualToIgnoring(temporal.IgnoreMillis, reference)
}

func (a *LocalAssert) IsBeforeString(reference string) *LocalAssert {
	a.helper()
	a.checkText(reference, temporal.ModeBefore)
	return a
}

func (a *LocalAssert) IsBeforeOrEqualToString(reference string) *LocalAssert {
	a.helper()
	a.checkText(reference, temporal.ModeBeforeOrEqual)
	return a
}

func (a *LocalAssert) IsAfterString(reference string) *LocalAssert {
	a.helper()
	a.checkText(reference, temporal.ModeAfter)
	return a
}

func (a *LocalAssert) IsAfterOrEqualToString(reference string) *LocalAssert {
	a.helper()
	a.checkText(reference, temporal.ModeAfterOrEqual)
	return a
}

func (a *LocalAssert) IsEqualToIgnoringString(ignore temporal.Mask, reference string) *LocalAssert {
	a.helper()
	a.checkText(reference, temporal.Ignoring(ignore))
	return a
}

func (a *LocalAssert) IsEqualToIgnoringHoursString(reference string) *LocalAssert {
	a.helper()
	return a.IsEqualToIgnoringString(temporal.IgnoreHours, reference)
}

func (a *LocalAssert) IsEqualToIgnoringMinutesString(reference string) *LocalAssert {
	a.helper()
	return a.IsEqualToIgnoringString(temporal.IgnoreMinutes, reference)
}

func (a *LocalAssert) IsEqualToIgnoringSecondsString(reference string) *LocalAssert {
	a.helper()
	return a.IsEqualToIgnoringString(temporal.IgnoreSeconds, reference)
}

func (a *LocalAssert) IsEqualToIgnoringMillisString(reference string) *LocalAssert {
	a.helper()
	return a.IsEqualToIgnoringString(temporal.IgnoreMillis, reference)
}
