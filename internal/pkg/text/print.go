// Copyright: This file is part of timeassert, released under https://github.com/korrel8r/timeassert/blob/main/LICENSE

// package text prints check results as text for the command line.
package text

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/korrel8r/timeassert/pkg/config"
)

// Status is PASS, FAIL or ERROR.
func Status(r config.Result) string {
	switch {
	case r.Err != nil || r.Error != "":
		return "ERROR"
	case r.Passed:
		return "PASS"
	default:
		return "FAIL"
	}
}

// Results prints a table of results, followed by the messages of results that did not pass.
func Results(w io.Writer, results []config.Result) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, r := range results {
		fmt.Fprintf(tw, "%v\t%v\t%v\n", Status(r), r.Name, r.Mode)
	}
	_ = tw.Flush()
	for _, r := range results {
		switch Status(r) {
		case "FAIL":
			fmt.Fprintf(w, "\n%v:%v\n", r.Name, strings.TrimSuffix(r.Message, "\n"))
		case "ERROR":
			fmt.Fprintf(w, "\n%v: Error: %v\n", r.Name, r.Error)
		}
	}
}

// Summary counts results by status.
func Summary(w io.Writer, results []config.Result) {
	counts := map[string]int{}
	for _, r := range results {
		counts[Status(r)]++
	}
	fmt.Fprintf(w, "%v passed, %v failed, %v errors\n", counts["PASS"], counts["FAIL"], counts["ERROR"])
}
