// Copyright: This file is part of timeassert, released under https://github.com/korrel8r/timeassert/blob/main/LICENSE

package temporal

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"
)

// Field is a calendar field of a temporal value.
type Field uint8

// Fields in descending order of significance.
const (
	Year Field = iota
	Month
	Day
	Hour
	Minute
	Second
	Millisecond

	numFields
)

var fieldNames = [numFields]string{"year", "month", "day", "hour", "minute", "second", "millisecond"}

// Fields returns all fields, most significant first.
func Fields() []Field {
	fields := make([]Field, numFields)
	for i := range fields {
		fields[i] = Field(i)
	}
	return fields
}

func (f Field) String() string {
	if f < numFields {
		return fieldNames[f]
	}
	return fmt.Sprintf("Field(%d)", f)
}

// ParseField parses a field name, case insensitive.
func ParseField(s string) (Field, error) {
	i := slices.Index(fieldNames[:], strings.ToLower(strings.TrimSpace(s)))
	if i < 0 {
		return 0, fmt.Errorf("invalid field %q, expected one of %v", s, fieldNames)
	}
	return Field(i), nil
}

func (f Field) MarshalText() ([]byte, error) {
	if f >= numFields {
		return nil, fmt.Errorf("invalid field: %v", f)
	}
	return []byte(f.String()), nil
}

func (f *Field) UnmarshalText(b []byte) (err error) {
	*f, err = ParseField(string(b))
	return err
}

// Mask is a set of fields that are ignored when comparing temporal values.
// Iteration over a Mask is always in descending order of significance.
type Mask uint8

// Masks for the common "ignoring" comparisons.
var (
	IgnoreHours   = MaskOf(Hour, Minute, Second, Millisecond)
	IgnoreMinutes = MaskOf(Minute, Second, Millisecond)
	IgnoreSeconds = MaskOf(Second, Millisecond)
	IgnoreMillis  = MaskOf(Millisecond)
)

// MaskOf returns a mask containing fields.
func MaskOf(fields ...Field) Mask { return Mask(0).With(fields...) }

// With returns a copy of m with fields added.
func (m Mask) With(fields ...Field) Mask {
	for _, f := range fields {
		m |= 1 << f
	}
	return m
}

// Has returns true if f is masked.
func (m Mask) Has(f Field) bool { return f < numFields && m&(1<<f) != 0 }

// Fields returns the masked fields.
func (m Mask) Fields() []Field { return m.filter(true) }

// Retained returns the fields that are not masked, these are the fields that are compared.
func (m Mask) Retained() []Field { return m.filter(false) }

func (m Mask) filter(masked bool) []Field {
	var fields []Field
	for _, f := range Fields() {
		if m.Has(f) == masked {
			fields = append(fields, f)
		}
	}
	return fields
}

// String returns a comma separated list of masked field names.
func (m Mask) String() string {
	names := make([]string, 0, numFields)
	for _, f := range m.Fields() {
		names = append(names, f.String())
	}
	return strings.Join(names, ",")
}

// ParseMask parses a comma separated list of field names. Empty string is the empty mask.
func ParseMask(s string) (Mask, error) {
	var m Mask
	for name := range strings.SplitSeq(s, ",") {
		if strings.TrimSpace(name) == "" {
			continue
		}
		f, err := ParseField(name)
		if err != nil {
			return 0, err
		}
		m = m.With(f)
	}
	return m, nil
}

// MarshalJSON marshals a mask as a list of field names.
func (m Mask) MarshalJSON() ([]byte, error) {
	fields := m.Fields()
	if fields == nil {
		fields = []Field{}
	}
	return json.Marshal(fields)
}

// UnmarshalJSON accepts a list of field names or a comma separated string.
func (m *Mask) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*m, err = ParseMask(s)
		return err
	}
	// Field is a uint8, a JSON string would decode into []Field as base64, so strings are handled above.
	var fields []Field
	if err := json.Unmarshal(b, &fields); err != nil {
		return fmt.Errorf("invalid field mask %s: %w", string(b), err)
	}
	*m = MaskOf(fields...)
	return nil
}
