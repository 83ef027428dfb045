// Copyright: This file is part of timeassert, released under https://github.com/korrel8r/timeassert/blob/main/LICENSE

package main

import (
	"os"

	"github.com/korrel8r/timeassert/internal/pkg/must"
	"github.com/korrel8r/timeassert/pkg/config"
	"github.com/spf13/cobra"
)

var (
	runCmd = &cobra.Command{
		Use:   "run -c FILE...",
		Short: "Run checks from configuration files or URLs, exit 1 if any check does not pass.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			var checks []config.Check
			for _, source := range *runConfigs {
				configs := must.Must1(config.Load(source))
				checks = append(checks, configs.Checks()...)
			}
			results, err := config.Run(checks)
			p := newPrinter(os.Stdout)
			p.Print(results)
			must.Must(err)
			failed := 0
			for _, r := range results {
				if !r.Passed {
					failed++
				}
			}
			if failed > 0 {
				panic(errFailed(failed))
			}
		},
	}
	runConfigs *[]string
)

func init() {
	rootCmd.AddCommand(runCmd)
	runConfigs = runCmd.Flags().StringArrayP("config", "c", nil, "Check configuration file or URL, may be repeated")
	_ = runCmd.MarkFlagRequired("config")
}
