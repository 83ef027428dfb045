// Copyright: This file is part of timeassert, released under https://github.com/korrel8r/timeassert/blob/main/LICENSE

// package test contains helpers for writing tests
package test

import (
	"fmt"
	"os/exec"
	"strings"
	"sync"
)

// ExecError extracts stderr if err is an exec.ExitError
func ExecError(err error) error {
	if ex, ok := err.(*exec.ExitError); ok {
		return fmt.Errorf("%v: %v", err, string(ex.Stderr))
	}
	return err
}

// PanicErr panics if err is not nil
func PanicErr(err error) {
	if err != nil {
		panic(err)
	}
}

// Must panics if err is not nil, else returns v.
func Must[T any](v T, err error) T { PanicErr(err); return v }

// T records failures reported to it, for testing assertions that should fail.
// It implements the testify assert.TestingT and require.TestingT interfaces.
// Safe for concurrent use.
type T struct {
	m       sync.Mutex
	errors  []string
	stopped bool
}

func (t *T) Helper() {}

func (t *T) Errorf(format string, args ...any) {
	t.m.Lock()
	defer t.m.Unlock()
	t.errors = append(t.errors, fmt.Sprintf(format, args...))
}

// FailNow records that the test was stopped. Unlike testing.T it does not exit the goroutine.
func (t *T) FailNow() {
	t.m.Lock()
	defer t.m.Unlock()
	t.stopped = true
}

// Errors returns the recorded error messages.
func (t *T) Errors() []string {
	t.m.Lock()
	defer t.m.Unlock()
	return append([]string(nil), t.errors...)
}

// Output returns all recorded messages joined by newlines.
func (t *T) Output() string { return strings.Join(t.Errors(), "\n") }

func (t *T) Failed() bool {
	t.m.Lock()
	defer t.m.Unlock()
	return len(t.errors) > 0
}

// Stopped is true if FailNow was called.
func (t *T) Stopped() bool {
	t.m.Lock()
	defer t.m.Unlock()
	return t.stopped
}
