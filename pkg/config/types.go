// Copyright: This file is part of timeassert, released under https://github.com/korrel8r/timeassert/blob/main/LICENSE

// Package config contains configuration types for batches of date-time checks.
// Configuration files may be JSON or YAML.
package config

import "github.com/korrel8r/timeassert/pkg/temporal"

// Config is the contents of one configuration file.
type Config struct {
	// Checks to evaluate.
	Checks []Check `json:"checks,omitempty"`

	// Include lists additional configuration files or URLs to include.
	// Relative paths are relative to the including file.
	Include []string `json:"include,omitempty"`
}

// Check compares an actual date-time with a reference.
type Check struct {
	// Name is a short, descriptive name.
	// If omitted, a name is generated from the source and position of the check.
	Name string `json:"name,omitempty"`

	// Actual is the text form of the value being checked.
	// An empty actual is reported as a failure, not an error.
	Actual string `json:"actual"`

	// Reference is the text form of the value to compare with.
	// Text with no zone is in the zone of Actual.
	Reference string `json:"reference"`

	// Mode is the comparison, for example "before-or-equal" or "equal-ignoring(hour,minute)".
	Mode *temporal.Mode `json:"mode"`

	// Ignore overrides the fields ignored by an equal-ignoring Mode.
	Ignore *temporal.Mask `json:"ignore,omitempty"`

	// Local compares wall-clock fields with any zone discarded.
	Local bool `json:"local,omitempty"`
}
