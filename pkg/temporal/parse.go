// Copyright: This file is part of timeassert, released under https://github.com/korrel8r/timeassert/blob/main/LICENSE

package temporal

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-openapi/strfmt"
)

// Layouts with no zone, parsed in the location of the value being compared.
var localLayouts = []string{
	strfmt.ISO8601LocalTime,
	strfmt.ISO8601TimeWithReducedPrecisionLocaltime,
	strfmt.ISO8601TimeUniversalSortableDateTimePattern,
	time.DateOnly,
}

// Parse parses the text form of a value to be compared with like.
//
// Text with no zone is interpreted in the location of like.
// Text with a zone is parsed by [strfmt.ParseDateTime].
// If like is local, the result is local: the zone is discarded and the wall clock fields are kept.
func Parse(s string, like Value) (Value, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		if like.local {
			return Value{}, InvalidArgumentError{Param: LocalStringParam}
		}
		return Value{}, InvalidArgumentError{Param: StringParam}
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, s, like.Location()); err == nil {
			return Value{t: t, local: like.local}, nil
		}
	}
	dt, err := strfmt.ParseDateTime(s)
	if err != nil {
		return Value{}, fmt.Errorf("invalid time %q: %w", s, err)
	}
	if like.local {
		return LocalOf(time.Time(dt)).Value(), nil
	}
	return Zoned(time.Time(dt)), nil
}

// ParseZoned parses s as a zoned value, text with no zone is UTC.
func ParseZoned(s string) (Value, error) { return Parse(s, Zoned(time.Time{}.UTC())) }

// ParseLocal parses s as a local value, any zone in s is discarded.
func ParseLocal(s string) (Value, error) { return Parse(s, LocalDateTime{}.Value()) }
