// Copyright: This file is part of timeassert, released under https://github.com/korrel8r/timeassert/blob/main/LICENSE

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/korrel8r/timeassert/internal/pkg/must"
	"github.com/korrel8r/timeassert/internal/pkg/text"
	"github.com/korrel8r/timeassert/pkg/config"
	"sigs.k8s.io/yaml"
)

type printer interface {
	Print(any)
}

type jsonPrinter struct{ *json.Encoder }

func (p jsonPrinter) Print(v any) { _ = p.Encode(v) }

type yamlPrinter struct{ io.Writer }

func (p yamlPrinter) Print(v any) { b, _ := yaml.Marshal(v); _, _ = p.Write(b) }

// textPrinter prints results as a table, other values with fmt.
type textPrinter struct{ io.Writer }

func (p textPrinter) Print(v any) {
	switch v := v.(type) {
	case []config.Result:
		text.Results(p, v)
		if len(v) > 1 {
			_, _ = fmt.Fprintln(p)
			text.Summary(p, v)
		}
	case config.Result:
		text.Results(p, []config.Result{v})
	default:
		_, _ = fmt.Fprintln(p, v)
	}
}

func newPrinter(w io.Writer) printer {
	switch outputFlag.String() {
	case "json":
		p := jsonPrinter{Encoder: json.NewEncoder(w)}
		p.SetIndent("", "  ")
		return p
	case "yaml":
		return yamlPrinter{Writer: w}
	case "text":
		return textPrinter{Writer: w}
	default:
		must.Must(fmt.Errorf("invalid output type: %v", outputFlag))
		return nil
	}
}
