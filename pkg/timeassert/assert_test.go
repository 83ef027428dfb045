// Copyright: This file is part of timeassert, released under https://github.com/korrel8r/timeassert/blob/main/LICENSE

package timeassert

import (
	"sync"
	"testing"
	"time"

	"github.com/go-openapi/strfmt"
	"github.com/korrel8r/timeassert/internal/pkg/test"
	"github.com/korrel8r/timeassert/pkg/temporal"
	"github.com/prometheus/common/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

func TestMain(m *testing.M) { goleak.VerifyTestMain(m) }

var (
	referenceDate = time.Date(2000, 1, 5, 3, 0, 5, 0, time.UTC)
	dateBefore    = referenceDate.Add(-time.Hour)
	dateAfter     = referenceDate.Add(time.Hour)
)

func TestIsBeforeOrEqualTo(t *testing.T) {
	That(t, dateBefore).IsBeforeOrEqualTo(referenceDate)
	That(t, dateBefore).IsBeforeOrEqualToString(referenceDate.Format(time.RFC3339))
	That(t, referenceDate).IsBeforeOrEqualTo(referenceDate)
	That(t, referenceDate).IsBeforeOrEqualToString(referenceDate.Format(time.RFC3339Nano))

	var ft test.T
	a := That(&ft, dateAfter).IsBeforeOrEqualTo(referenceDate).IsBeforeOrEqualToString(referenceDate.String()[:19])
	assert.False(t, a.Passed())
	assert.Len(t, a.Failures(), 2)
	assert.Len(t, ft.Errors(), 2)
	assert.False(t, ft.Stopped())
}

func TestIsAfterOrEqualTo(t *testing.T) {
	That(t, dateAfter).IsAfterOrEqualTo(referenceDate)
	That(t, dateAfter).IsAfterOrEqualToString(referenceDate.Format(time.RFC3339))
	That(t, referenceDate).IsAfterOrEqualTo(referenceDate)
	That(t, referenceDate).IsAfterOrEqualToString(referenceDate.Format(temporal.ZonedLayout))

	var ft test.T
	a := That(&ft, dateBefore).IsAfterOrEqualTo(referenceDate).IsAfterOrEqualToString(referenceDate.Format(time.RFC3339))
	assert.Len(t, a.Failures(), 2)
}

func TestIsBefore_IsAfter(t *testing.T) {
	That(t, dateBefore).IsBefore(referenceDate).IsBeforeString("2000-01-05T03:00:05Z")
	That(t, dateAfter).IsAfter(referenceDate).IsAfterString("2000-01-05T03:00:05Z")

	var ft test.T
	a := That(&ft, referenceDate).IsBefore(referenceDate).IsAfter(referenceDate)
	assert.Equal(t, []string{
		"\nExpecting:\n  <2000-01-05T03:00:05.000Z>\nto be strictly before:\n  <2000-01-05T03:00:05.000Z>\n",
		"\nExpecting:\n  <2000-01-05T03:00:05.000Z>\nto be strictly after:\n  <2000-01-05T03:00:05.000Z>\n",
	}, a.Failures())
}

func TestIsBeforeOrEqualTo_ErrorMessage(t *testing.T) {
	var ft test.T
	a := That(&ft, time.Date(2000, 1, 5, 3, 0, 5, 0, time.UTC)).
		IsBeforeOrEqualTo(time.Date(1998, 1, 1, 3, 3, 3, 0, time.UTC))
	want := "\nExpecting:\n  <2000-01-05T03:00:05.000Z>\nto be before or equals to:\n  <1998-01-01T03:03:03.000Z>\n"
	assert.Equal(t, []string{want}, a.Failures())
	assert.Contains(t, ft.Output(), "to be before or equals to:")
	assert.Contains(t, ft.Output(), "<1998-01-01T03:03:03.000Z>")
}

func TestIsAfterOrEqualTo_ErrorMessage(t *testing.T) {
	var ft test.T
	a := That(&ft, time.Date(2000, 1, 5, 3, 0, 5, 0, time.UTC)).
		IsAfterOrEqualToString("2012-01-01T03:03:03.000Z")
	want := "\nExpecting:\n  <2000-01-05T03:00:05.000Z>\nto be after or equals to:\n  <2012-01-01T03:03:03.000Z>\n"
	assert.Equal(t, []string{want}, a.Failures())
}

func TestIsBeforeOrEqualTo_ActualTimeZone(t *testing.T) {
	berlin, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)
	utc := time.Date(2013, 6, 10, 0, 0, 0, 0, time.UTC)
	cest1 := time.Date(2013, 6, 10, 2, 0, 0, 0, berlin)
	cest2 := time.Date(2013, 6, 10, 3, 0, 0, 0, berlin)
	That(t, utc).As("in UTC time zone").IsBeforeOrEqualTo(cest1).IsBeforeOrEqualTo(cest2).IsAfterOrEqualTo(cest1)
	// Zone-less text is in the actual's zone.
	That(t, cest1).IsBeforeOrEqualToString("2013-06-10T02:00:00").IsAfterOrEqualToString("2013-06-10T02:00:00")

	var ft test.T
	That(&ft, cest2).As("in %v", "CEST").IsBeforeOrEqualTo(utc)
	assert.Contains(t, ft.Output(), "in CEST")
	assert.Contains(t, ft.Output(), "<2013-06-10T02:00:00.000+02:00>", "reference in the actual's zone")
}

func TestIsEqualToIgnoringHours_ActualTimeZone(t *testing.T) {
	actual := time.Date(2000, 1, 2, 0, 30, 0, 0, time.UTC)
	plus2 := time.FixedZone("", 2*60*60)
	// Same day in UTC, the reference wall clock is a different day.
	That(t, actual).IsEqualToIgnoringHours(time.Date(2000, 1, 2, 3, 30, 0, 0, plus2))

	var ft test.T
	a := That(&ft, actual).IsEqualToIgnoringHours(time.Date(2000, 1, 2, 1, 30, 0, 0, plus2))
	assert.Equal(t, []string{
		"\nExpecting:\n  <2000-01-02T00:30:00.000Z>\nto have same year, month and day as:\n  <2000-01-01T23:30:00.000Z>\nbut had not.",
	}, a.Failures())
}

func TestActualIsNull(t *testing.T) {
	for name, check := range map[string]func(*Assert){
		"IsBefore":                 func(a *Assert) { a.IsBefore(time.Now()) },
		"IsBeforeOrEqualTo":        func(a *Assert) { a.IsBeforeOrEqualTo(time.Now()) },
		"IsAfter":                  func(a *Assert) { a.IsAfter(time.Now()) },
		"IsAfterOrEqualTo":         func(a *Assert) { a.IsAfterOrEqualTo(time.Now()) },
		"IsEqualToIgnoringHours":   func(a *Assert) { a.IsEqualToIgnoringHours(time.Now()) },
		"IsBeforeOrEqualToString":  func(a *Assert) { a.IsBeforeOrEqualToString(time.Now().Format(time.RFC3339)) },
		"IsAfterOrEqualToString":   func(a *Assert) { a.IsAfterOrEqualToString(time.Now().Format(time.RFC3339)) },
		"IsEqualToIgnoringHoursSt": func(a *Assert) { a.IsEqualToIgnoringHoursString("2000-01-01") },
	} {
		t.Run(name, func(t *testing.T) {
			var ft test.T
			a := That(&ft, time.Time{})
			check(a)
			assert.Equal(t, []string{"\nExpecting actual not to be nil"}, a.Failures())
			assert.False(t, ft.Stopped())
		})
	}
}

func TestThatPtr_Nil(t *testing.T) {
	var ft test.T
	var actual *time.Time
	a := ThatPtr(&ft, actual).IsAfterOrEqualTo(time.Now())
	assert.Equal(t, []string{"\nExpecting actual not to be nil"}, a.Failures())

	now := time.Now()
	ThatPtr(t, &now).IsAfterOrEqualTo(now)
}

func TestInvalidArgument(t *testing.T) {
	for _, x := range []struct {
		name  string
		check func(*Assert)
		want  string
	}{
		{"time", func(a *Assert) { a.IsBeforeOrEqualTo(time.Time{}) }, "the time to compare actual with should not be nil"},
		{"after", func(a *Assert) { a.IsAfterOrEqualTo(time.Time{}) }, "the time to compare actual with should not be nil"},
		{"string", func(a *Assert) { a.IsBeforeOrEqualToString("") }, "the string representing the time to compare actual with should not be empty"},
		{"after string", func(a *Assert) { a.IsAfterOrEqualToString(" ") }, "the string representing the time to compare actual with should not be empty"},
	} {
		t.Run(x.name, func(t *testing.T) {
			for _, actual := range []time.Time{time.Now(), {}} {
				var ft test.T
				a := That(&ft, actual)
				x.check(a)
				assert.Equal(t, []string{x.want}, a.Failures())
				assert.True(t, ft.Stopped(), "invalid argument should stop the test")
			}
		})
	}
}

func TestInvalidString(t *testing.T) {
	var ft test.T
	a := That(&ft, referenceDate).IsBeforeString("last tuesday")
	require.Len(t, a.Failures(), 1)
	assert.Contains(t, a.Failures()[0], `invalid time "last tuesday"`)
	assert.True(t, ft.Stopped())
}

func TestRequirePtr(t *testing.T) {
	var ft test.T
	var actual *time.Time
	a := RequirePtr(&ft, actual).IsBefore(referenceDate)
	assert.Equal(t, []string{"\nExpecting actual not to be nil"}, a.Failures())
	assert.True(t, ft.Stopped())

	RequirePtr(t, &dateBefore).IsBefore(referenceDate)
}

func TestRequire(t *testing.T) {
	var ft test.T
	a := Require(&ft, dateAfter).IsBeforeOrEqualTo(referenceDate)
	assert.False(t, a.Passed())
	assert.True(t, ft.Stopped())

	Require(t, dateBefore).IsBefore(referenceDate).IsBeforeOrEqualTo(referenceDate)
}

func TestIsEqualToIgnoring(t *testing.T) {
	ref := time.Date(2000, 1, 2, 0, 0, 0, 0, time.UTC)
	That(t, ref).
		IsEqualToIgnoringHours(ref.Add(time.Hour)).
		IsEqualToIgnoringMinutes(ref.Add(time.Minute)).
		IsEqualToIgnoringSeconds(ref.Add(time.Second)).
		IsEqualToIgnoringMillis(ref.Add(time.Millisecond)).
		IsEqualToIgnoring(temporal.MaskOf(temporal.Year), ref.AddDate(3, 0, 0)).
		IsEqualToIgnoringHoursString("2000-01-02T22:00:00Z")

	var ft test.T
	a := That(&ft, ref).IsEqualToIgnoringHours(ref.Add(-time.Millisecond))
	assert.Equal(t, []string{
		"\nExpecting:\n  <2000-01-02T00:00:00.000Z>\nto have same year, month and day as:\n  <2000-01-01T23:59:59.999Z>\nbut had not.",
	}, a.Failures())
}

func TestInstantTypes(t *testing.T) {
	That(t, strfmt.DateTime(dateBefore)).IsBefore(referenceDate)
	That(t, model.TimeFromUnixNano(dateAfter.UnixNano())).IsAfter(referenceDate)
	That(t, metav1.NewTime(referenceDate)).IsAfterOrEqualTo(referenceDate).IsBeforeOrEqualTo(referenceDate)
	That(t, metav1.NewTime(referenceDate)).IsEqualToIgnoringMillis(temporal.Time(strfmt.DateTime(referenceDate)))
}

func TestConcurrent(t *testing.T) {
	var wg sync.WaitGroup
	var ft test.T
	for i := range 10 {
		wg.Go(func() {
			That(&ft, referenceDate.Add(time.Duration(i)*time.Second)).IsAfterOrEqualTo(referenceDate)
			That(&ft, referenceDate).IsAfter(referenceDate)
		})
	}
	wg.Wait()
	assert.Len(t, ft.Errors(), 10)
}

func TestIsEqualToIgnoringString(t *testing.T) {
	ref := time.Date(2000, 1, 2, 3, 4, 5, 6_000_000, time.UTC)
	That(t, ref).
		IsEqualToIgnoringMinutesString("2000-01-02T03:59:59Z").
		IsEqualToIgnoringSecondsString("2000-01-02T03:04:00").
		IsEqualToIgnoringMillisString("2000-01-02T03:04:05.999Z")
	ThatLocal(t, temporal.LocalOf(ref)).
		IsEqualToIgnoringHoursString("2000-01-02").
		IsEqualToIgnoringMinutesString("2000-01-02T03:00:00").
		IsEqualToIgnoringSecondsString("2000-01-02T03:04:59.999").
		IsEqualToIgnoringMillisString("2000-01-02T03:04:05")

	var ft test.T
	a := That(&ft, ref).IsEqualToIgnoringSecondsString("2000-01-02T03:05:00Z")
	assert.Equal(t, []string{
		"\nExpecting:\n  <2000-01-02T03:04:05.006Z>\nto have same year, month, day, hour and minute as:\n  <2000-01-02T03:05:00.000Z>\nbut had not.",
	}, a.Failures())
}
