// Copyright: This file is part of timeassert, released under https://github.com/korrel8r/timeassert/blob/main/LICENSE

package timeassert

import (
	"strings"

	"github.com/korrel8r/timeassert/pkg/report"
	"github.com/korrel8r/timeassert/pkg/temporal"
	"github.com/stretchr/testify/assert"
)

type tHelper interface{ Helper() }

type failNower interface{ FailNow() }

// base is the state shared by [Assert] and [LocalAssert].
type base struct {
	t          assert.TestingT
	actual     temporal.Option
	param      temporal.Param // Name of a value reference parameter.
	textParam  temporal.Param // Name of a string reference parameter.
	failNow    bool
	msgAndArgs []any
	failures   []string
}

func (b *base) helper() {
	if h, ok := b.t.(tHelper); ok {
		h.Helper()
	}
}

func (b *base) check(reference temporal.Option, param temporal.Param, mode temporal.Mode) {
	b.helper()
	ok, err := temporal.Check(b.actual, reference, mode, param)
	switch {
	case temporal.IsInvalidArgumentError(err):
		b.fail(err.Error(), true)
	case temporal.IsActualIsNullError(err):
		b.fail(report.ActualIsNull(), false)
	case !ok:
		actual, _ := b.actual.Get()
		ref, _ := reference.Get()
		b.fail(report.Format(mode, actual, ref), false)
	}
}

// checkText parses the reference in the zone of the actual value.
func (b *base) checkText(reference string, mode temporal.Mode) {
	b.helper()
	if strings.TrimSpace(reference) == "" {
		b.check(temporal.None(), b.textParam, mode)
		return
	}
	actual, ok := b.actual.Get()
	if !ok {
		b.fail(report.ActualIsNull(), false)
		return
	}
	ref, err := temporal.Parse(reference, actual)
	if err != nil {
		b.fail(err.Error(), true)
		return
	}
	b.check(temporal.Some(ref), b.textParam, mode)
}

// fail reports a failure, stop is true for misuse of the assertion rather than a failed comparison.
func (b *base) fail(msg string, stop bool) {
	b.helper()
	b.failures = append(b.failures, msg)
	assert.Fail(b.t, msg, b.msgAndArgs...)
	if stop || b.failNow {
		if f, ok := b.t.(failNower); ok {
			f.FailNow()
		}
	}
}
