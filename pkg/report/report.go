// Copyright: This file is part of timeassert, released under https://github.com/korrel8r/timeassert/blob/main/LICENSE

// package report formats failure messages for temporal comparisons.
//
// Messages are deterministic: the same mode and values always give the same bytes.
package report

import (
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/korrel8r/timeassert/internal/pkg/must"
	"github.com/korrel8r/timeassert/pkg/slices"
	"github.com/korrel8r/timeassert/pkg/temporal"
)

// phrases describe the expectation of each comparison operator.
var phrases = map[temporal.Op]string{
	temporal.Before:        `to be strictly before`,
	temporal.BeforeOrEqual: `to be before or equals to`,
	temporal.After:         `to be strictly after`,
	temporal.AfterOrEqual:  `to be after or equals to`,
	temporal.EqualIgnoring: `{{ with .Retained }}to have same {{ with initial . }}{{ join ", " . }} and {{ end }}{{ last . }} as{{ else }}to be equal ignoring all fields to{{ end }}`,
}

const message = `
Expecting:
  <{{ .Actual }}>
{{ template "phrase" . }}:
  <{{ .Reference }}>
{{ if eq .Op "equal-ignoring" }}but had not.{{ end }}`

var templates = map[temporal.Op]*template.Template{}

func init() {
	for _, op := range temporal.Ops() {
		phrase, ok := phrases[op]
		if !ok {
			panic("no failure message for comparison: " + op.String())
		}
		t := template.Must(template.New(op.String()).Funcs(sprig.TxtFuncMap()).Parse(message))
		templates[op] = template.Must(t.New("phrase").Parse(phrase))
	}
}

type data struct {
	Op                string
	Actual, Reference string
	Retained          []string
}

// Format returns the failure message for actual compared to reference with mode.
// A zoned reference is rendered in the location of a zoned actual, where the comparison is made.
func Format(mode temporal.Mode, actual, reference temporal.Value) string {
	if !actual.IsLocal() {
		reference = reference.In(actual.Location())
	}
	t, ok := templates[mode.Op]
	if !ok {
		panic("invalid comparison: " + mode.Op.String())
	}
	w := &strings.Builder{}
	must.Must(t.ExecuteTemplate(w, mode.Op.String(), data{
		Op:        mode.Op.String(),
		Actual:    actual.String(),
		Reference: reference.String(),
		Retained:  slices.Strings(mode.Ignore.Retained()),
	}))
	return w.String()
}

// ActualIsNull is the failure message when the value under test is absent.
func ActualIsNull() string { return "\nExpecting actual not to be nil" }
