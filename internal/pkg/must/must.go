// Copyright: This file is part of timeassert, released under https://github.com/korrel8r/timeassert/blob/main/LICENSE

// package must contains functions to handle errors via panic.
// Used by commands and for templates that are known to be valid.
package must

import (
	"fmt"
)

// Must panics if err != nil.
// If format is provided, panic contains fmt.Errorf(format, args..., err) else it contains err.
func Must(err error, format ...any) {
	if err == nil {
		return
	}
	if len(format) > 0 {
		err = fmt.Errorf(format[0].(string)+": %w", append(format[1:], err)...)
	}
	panic(err)
}

// Must1 calls Must(err), then returns v.
func Must1[T any](v T, err error) T { Must(err); return v }
