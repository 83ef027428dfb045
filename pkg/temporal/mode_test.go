// Copyright: This file is part of timeassert, released under https://github.com/korrel8r/timeassert/blob/main/LICENSE

package temporal

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMode(t *testing.T) {
	for _, x := range []struct {
		in   string
		want Mode
		str  string
	}{
		{"before", ModeBefore, "before"},
		{"before-or-equal", ModeBeforeOrEqual, "before-or-equal"},
		{"after", ModeAfter, "after"},
		{" after-or-equal ", ModeAfterOrEqual, "after-or-equal"},
		{"equal-ignoring", Ignoring(0), "equal-ignoring()"},
		{"equal-ignoring()", Ignoring(0), "equal-ignoring()"},
		{"equal-ignoring(second,millisecond)", Ignoring(IgnoreSeconds), "equal-ignoring(second,millisecond)"},
		{"equal-ignoring-hours", Ignoring(IgnoreHours), "equal-ignoring(hour,minute,second,millisecond)"},
		{"equal-ignoring-minutes", Ignoring(IgnoreMinutes), "equal-ignoring(minute,second,millisecond)"},
		{"equal-ignoring-seconds", Ignoring(IgnoreSeconds), "equal-ignoring(second,millisecond)"},
		{"equal-ignoring-millis", Ignoring(IgnoreMillis), "equal-ignoring(millisecond)"},
	} {
		t.Run(x.in, func(t *testing.T) {
			got, err := ParseMode(x.in)
			require.NoError(t, err)
			assert.Equal(t, x.want, got)
			assert.Equal(t, x.str, got.String())
			again, err := ParseMode(got.String())
			require.NoError(t, err)
			assert.Equal(t, got, again)
		})
	}
}

func TestParseMode_Error(t *testing.T) {
	for _, x := range []struct{ in, err string }{
		{"sooner", `invalid comparison "sooner", expected one of [before before-or-equal after after-or-equal equal-ignoring]`},
		{"before(hour)", `invalid comparison "before(hour)": before does not take fields`},
		{"equal-ignoring(hour", `invalid comparison "equal-ignoring(hour": missing ')'`},
		{"equal-ignoring(hour,week)", `invalid comparison "equal-ignoring(hour,week)": invalid field "week", expected one of [year month day hour minute second millisecond]`},
	} {
		t.Run(x.in, func(t *testing.T) {
			_, err := ParseMode(x.in)
			assert.EqualError(t, err, x.err)
		})
	}
}

func TestMode_JSON(t *testing.T) {
	type wrapper struct{ Mode Mode }
	b, err := json.Marshal(wrapper{Mode: Ignoring(IgnoreMinutes)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"Mode":"equal-ignoring(minute,second,millisecond)"}`, string(b))

	var w wrapper
	require.NoError(t, json.Unmarshal([]byte(`{"Mode":"before-or-equal"}`), &w))
	assert.Equal(t, ModeBeforeOrEqual, w.Mode)
}

func TestOps(t *testing.T) {
	assert.Equal(t, []Op{Before, BeforeOrEqual, After, AfterOrEqual, EqualIgnoring}, Ops())
	assert.Equal(t, "Op(9)", Op(9).String())
}
