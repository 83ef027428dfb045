// Copyright: This file is part of timeassert, released under https://github.com/korrel8r/timeassert/blob/main/LICENSE

package main

import (
	"fmt"
	"os"

	"github.com/korrel8r/timeassert/internal/pkg/logging"
	"github.com/korrel8r/timeassert/internal/pkg/must"
	"github.com/korrel8r/timeassert/pkg/config"
	"github.com/korrel8r/timeassert/pkg/temporal"
	"github.com/spf13/cobra"
)

var (
	compareCmd = &cobra.Command{
		Use:   "compare MODE ACTUAL REFERENCE",
		Short: "Compare ACTUAL with REFERENCE, print the failure message and exit 1 if the comparison does not hold.",
		Long: `Compare ACTUAL with REFERENCE.

MODE is one of before, before-or-equal, after, after-or-equal, equal-ignoring(FIELD,...)
or one of the shortcuts equal-ignoring-hours, equal-ignoring-minutes, equal-ignoring-seconds, equal-ignoring-millis.

A REFERENCE with no zone is in the zone of ACTUAL.`,
		Args: cobra.ExactArgs(3),
		Run: func(cmd *cobra.Command, args []string) {
			mode := must.Must1(temporal.ParseMode(args[0]))
			check := config.Check{
				Name:      "compare",
				Mode:      &mode,
				Actual:    args[1],
				Reference: args[2],
				Local:     *compareLocal,
			}
			if cmd.Flags().Changed("ignore") {
				check.Ignore = &compareIgnore
			}
			log.V(3).Info("Compare", "check", logging.JSON(check))
			r := check.Run()
			must.Must(r.Err)
			if outputFlag.String() == "text" {
				if !r.Passed {
					fmt.Fprintln(os.Stdout, r.Message)
				}
			} else {
				newPrinter(os.Stdout).Print(r)
			}
			if !r.Passed {
				panic(errFailed(1))
			}
		},
	}
	compareIgnore temporal.Mask
	compareLocal  *bool
)

func init() {
	rootCmd.AddCommand(compareCmd)
	compareCmd.Flags().Var(maskFlag{&compareIgnore}, "ignore", "Comma separated fields to ignore for equal-ignoring")
	compareLocal = compareCmd.Flags().Bool("local", false, "Compare wall clock fields, discarding any zone")
}

// maskFlag is a pflag.Value for a field mask.
type maskFlag struct{ *temporal.Mask }

func (f maskFlag) Set(s string) (err error) { *f.Mask, err = temporal.ParseMask(s); return err }
func (f maskFlag) Type() string             { return "fields" }
