// Copyright: This file is part of timeassert, released under https://github.com/korrel8r/timeassert/blob/main/LICENSE

package temporal

import (
	"fmt"
	"slices"
	"strings"
)

// Op is a comparison operator.
type Op uint8

const (
	Before Op = iota
	BeforeOrEqual
	After
	AfterOrEqual
	EqualIgnoring

	numOps
)

var opNames = [numOps]string{"before", "before-or-equal", "after", "after-or-equal", "equal-ignoring"}

// Ops returns all operators.
func Ops() []Op {
	ops := make([]Op, numOps)
	for i := range ops {
		ops[i] = Op(i)
	}
	return ops
}

func (op Op) String() string {
	if op < numOps {
		return opNames[op]
	}
	return fmt.Sprintf("Op(%d)", op)
}

func ParseOp(s string) (Op, error) {
	i := slices.Index(opNames[:], strings.TrimSpace(s))
	if i < 0 {
		return 0, fmt.Errorf("invalid comparison %q, expected one of %v", s, opNames)
	}
	return Op(i), nil
}

// Mode is a comparison mode: an operator and, for EqualIgnoring, the mask of ignored fields.
type Mode struct {
	Op     Op
	Ignore Mask // Only used by EqualIgnoring.
}

// Modes with no mask.
var (
	ModeBefore        = Mode{Op: Before}
	ModeBeforeOrEqual = Mode{Op: BeforeOrEqual}
	ModeAfter         = Mode{Op: After}
	ModeAfterOrEqual  = Mode{Op: AfterOrEqual}
)

// Ignoring returns the EqualIgnoring mode for mask m.
func Ignoring(m Mask) Mode { return Mode{Op: EqualIgnoring, Ignore: m} }

// Short names for the common EqualIgnoring modes.
var aliases = map[string]Mode{
	"equal-ignoring-hours":   Ignoring(IgnoreHours),
	"equal-ignoring-minutes": Ignoring(IgnoreMinutes),
	"equal-ignoring-seconds": Ignoring(IgnoreSeconds),
	"equal-ignoring-millis":  Ignoring(IgnoreMillis),
}

// String for EqualIgnoring includes the mask, e.g. "equal-ignoring(second,millisecond)".
func (m Mode) String() string {
	if m.Op == EqualIgnoring {
		return fmt.Sprintf("%v(%v)", m.Op, m.Ignore)
	}
	return m.Op.String()
}

// ParseMode parses the [Mode.String] form, or one of the aliases "equal-ignoring-hours",
// "equal-ignoring-minutes", "equal-ignoring-seconds", "equal-ignoring-millis".
func ParseMode(s string) (Mode, error) {
	s = strings.TrimSpace(s)
	if m, ok := aliases[s]; ok {
		return m, nil
	}
	name, rest, hasMask := strings.Cut(s, "(")
	op, err := ParseOp(name)
	if err != nil {
		return Mode{}, err
	}
	m := Mode{Op: op}
	if hasMask {
		if op != EqualIgnoring {
			return Mode{}, fmt.Errorf("invalid comparison %q: %v does not take fields", s, op)
		}
		fields, ok := strings.CutSuffix(rest, ")")
		if !ok {
			return Mode{}, fmt.Errorf("invalid comparison %q: missing ')'", s)
		}
		if m.Ignore, err = ParseMask(fields); err != nil {
			return Mode{}, fmt.Errorf("invalid comparison %q: %w", s, err)
		}
	}
	return m, nil
}

func (m Mode) MarshalText() ([]byte, error) {
	if m.Op >= numOps {
		return nil, fmt.Errorf("invalid comparison: %v", m.Op)
	}
	return []byte(m.String()), nil
}

func (m *Mode) UnmarshalText(b []byte) (err error) {
	*m, err = ParseMode(string(b))
	return err
}
