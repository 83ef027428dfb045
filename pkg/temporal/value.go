// Copyright: This file is part of timeassert, released under https://github.com/korrel8r/timeassert/blob/main/LICENSE

package temporal

import (
	"time"

	"github.com/go-openapi/strfmt"
	"github.com/prometheus/common/model"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// Layouts used to render values.
const (
	ZonedLayout = strfmt.RFC3339Millis
	LocalLayout = "2006-01-02T15:04:05.000"
)

// Instant is a zoned date-time type that can be converted to a Value.
type Instant interface {
	time.Time | strfmt.DateTime | model.Time | metav1.Time
}

// Time converts an Instant to a time.Time.
// A model.Time has no zone, it is converted to UTC.
func Time[T Instant](v T) time.Time {
	switch v := any(v).(type) {
	case time.Time:
		return v
	case strfmt.DateTime:
		return time.Time(v)
	case model.Time:
		return v.Time().UTC()
	case metav1.Time:
		return v.Time
	}
	panic("unreachable")
}

// Value is an immutable temporal value with calendar fields.
// A zoned value has a location, a local value is a calendar date and time with no zone.
type Value struct {
	t     time.Time
	local bool
}

// Zoned returns the Value of a zoned time.
func Zoned(t time.Time) Value { return Value{t: t} }

// Time returns the value as a time.Time. For a local value the location is UTC.
func (v Value) Time() time.Time { return v.t }

func (v Value) IsLocal() bool { return v.local }

// Location for a zoned value, UTC for a local value.
func (v Value) Location() *time.Location { return v.t.Location() }

// In returns a zoned value converted to loc. Local values are returned unchanged.
func (v Value) In(loc *time.Location) Value {
	if v.local {
		return v
	}
	return Value{t: v.t.In(loc)}
}

// Field returns the value of a calendar field.
func (v Value) Field(f Field) int {
	switch f {
	case Year:
		return v.t.Year()
	case Month:
		return int(v.t.Month())
	case Day:
		return v.t.Day()
	case Hour:
		return v.t.Hour()
	case Minute:
		return v.t.Minute()
	case Second:
		return v.t.Second()
	case Millisecond:
		return v.t.Nanosecond() / int(time.Millisecond)
	}
	panic("invalid field: " + f.String())
}

// String renders the value with millisecond precision, zoned values have a zone suffix.
func (v Value) String() string {
	if v.local {
		return v.t.Format(LocalLayout)
	}
	return v.t.Format(ZonedLayout)
}

// LocalDateTime is a calendar date and time without a time zone.
// The zero LocalDateTime is treated as absent.
type LocalDateTime struct {
	t time.Time // Always UTC
}

// NewLocalDateTime returns a LocalDateTime, out of range values are normalized like [time.Date].
func NewLocalDateTime(year int, month time.Month, day, hour, minute, sec, msec int) LocalDateTime {
	return LocalDateTime{t: time.Date(year, month, day, hour, minute, sec, msec*int(time.Millisecond), time.UTC)}
}

// LocalOf returns the local date and time shown by t's wall clock, discarding the zone.
func LocalOf(t time.Time) LocalDateTime {
	if t.IsZero() {
		return LocalDateTime{}
	}
	y, mo, d := t.Date()
	h, mi, s := t.Clock()
	return LocalDateTime{t: time.Date(y, mo, d, h, mi, s, t.Nanosecond(), time.UTC)}
}

func (l LocalDateTime) IsZero() bool { return l.t.IsZero() }

// Add returns l+d.
func (l LocalDateTime) Add(d time.Duration) LocalDateTime { return LocalDateTime{t: l.t.Add(d)} }

// Value returns the local Value of l.
func (l LocalDateTime) Value() Value { return Value{t: l.t, local: true} }

func (l LocalDateTime) String() string { return l.Value().String() }
