// Copyright: This file is part of timeassert, released under https://github.com/korrel8r/timeassert/blob/main/LICENSE

package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/korrel8r/timeassert/pkg/ptr"
	"github.com/korrel8r/timeassert/pkg/report"
	"github.com/korrel8r/timeassert/pkg/temporal"
	"github.com/korrel8r/timeassert/pkg/unique"
)

// Result of running a [Check].
type Result struct {
	Name      string `json:"name"`
	Mode      string `json:"mode"`
	Actual    string `json:"actual,omitempty"`
	Reference string `json:"reference,omitempty"`
	// Passed is true if the comparison held.
	Passed bool `json:"passed"`
	// Message is the failure message if the comparison did not hold.
	Message string `json:"message,omitempty"`
	// Error is set if the check could not be evaluated.
	Error string `json:"error,omitempty"`

	Err error `json:"-"`
}

// EffectiveMode returns the mode with Ignore applied.
func (c Check) EffectiveMode() (temporal.Mode, error) {
	if c.Mode == nil {
		return temporal.Mode{}, errors.New("missing mode")
	}
	mode := *c.Mode
	if c.Ignore != nil {
		if mode.Op != temporal.EqualIgnoring {
			return mode, fmt.Errorf("ignore is not allowed with mode %v", mode)
		}
		mode.Ignore = ptr.ValueOf(c.Ignore)
	}
	return mode, nil
}

// Run evaluates the check.
//
// An absent reference or text that cannot be parsed is an error.
// An absent actual is a failed check with the actual-is-null message.
func (c Check) Run() Result {
	r := Result{Name: c.Name, Actual: c.Actual, Reference: c.Reference}
	mode, err := c.EffectiveMode()
	if err != nil {
		return r.failed(err)
	}
	r.Mode = mode.String()

	like, param := temporal.Zoned(time.Time{}.UTC()), temporal.StringParam
	if c.Local {
		like, param = temporal.LocalDateTime{}.Value(), temporal.LocalStringParam
	}
	actual := temporal.None()
	if strings.TrimSpace(c.Actual) != "" {
		v, err := temporal.Parse(c.Actual, like)
		if err != nil {
			return r.failed(fmt.Errorf("actual: %w", err))
		}
		actual, like = temporal.Some(v), v
	}
	reference := temporal.None()
	if strings.TrimSpace(c.Reference) != "" {
		v, err := temporal.Parse(c.Reference, like)
		if err != nil {
			return r.failed(fmt.Errorf("reference: %w", err))
		}
		reference = temporal.Some(v)
	}

	ok, err := temporal.Check(actual, reference, mode, param)
	switch {
	case temporal.IsActualIsNullError(err):
		r.Message = report.ActualIsNull()
	case err != nil:
		return r.failed(err)
	case !ok:
		a, _ := actual.Get()
		ref, _ := reference.Get()
		r.Message = report.Format(mode, a, ref)
	default:
		r.Passed = true
	}
	log.V(3).Info("Check", "name", r.Name, "mode", r.Mode, "passed", r.Passed)
	return r
}

func (r Result) failed(err error) Result {
	r.Err = err
	r.Error = err.Error()
	return r
}

// Run evaluates all checks and returns their results in order.
// The error joins the unique errors of checks that could not be evaluated,
// and duplicate check names.
func Run(checks []Check) ([]Result, error) {
	var errs unique.Errors
	names := unique.NewDeduplicator(func(c Check) string { return c.Name })
	results := make([]Result, 0, len(checks))
	for _, c := range checks {
		if c.Name != "" && !names.Unique(c) {
			errs.Add(fmt.Errorf("duplicate check name %q", c.Name))
		}
		r := c.Run()
		if r.Err != nil {
			errs.Add(fmt.Errorf("%v: %w", c.Name, r.Err))
		}
		results = append(results, r)
	}
	return results, errs.Err()
}
