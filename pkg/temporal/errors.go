// Copyright: This file is part of timeassert, released under https://github.com/korrel8r/timeassert/blob/main/LICENSE

package temporal

import (
	"errors"
	"fmt"
)

// Param names the reference parameter of a comparison.
type Param string

const (
	TimeParam        Param = "time"
	StringParam      Param = "string representing the time"
	LocalParam       Param = "local date-time"
	LocalStringParam Param = "string representing the local date-time"
)

// InvalidArgumentError is returned when a required reference parameter is absent.
type InvalidArgumentError struct{ Param Param }

func (e InvalidArgumentError) Error() string {
	absent := "nil"
	if e.Param == StringParam || e.Param == LocalStringParam {
		absent = "empty"
	}
	return fmt.Sprintf("the %v to compare actual with should not be %v", e.Param, absent)
}

// ActualIsNullError is returned when the value under test is absent but the reference is present.
type ActualIsNullError struct{}

func (ActualIsNullError) Error() string { return "actual is nil" }

func IsInvalidArgumentError(err error) bool { return IsErrorType[InvalidArgumentError](err) }
func IsActualIsNullError(err error) bool    { return IsErrorType[ActualIsNullError](err) }

func IsErrorType[T error](err error) bool {
	var target T
	return errors.As(err, &target)
}
