// Copyright: This file is part of timeassert, released under https://github.com/korrel8r/timeassert/blob/main/LICENSE

// timecheck compares date-time values from the command line or from check configuration files.
package main

import (
	"fmt"
	"os"

	"github.com/korrel8r/timeassert/internal/pkg/enumflag"
	"github.com/korrel8r/timeassert/internal/pkg/logging"
	"github.com/korrel8r/timeassert/internal/pkg/must"
	"github.com/korrel8r/timeassert/pkg/build"
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:     "timecheck",
		Short:   "Compare date-time values",
		Version: build.Version,
	}
	log = logging.Log()

	// Global Flags
	outputFlag = enumflag.New("text", []string{"text", "json", "yaml"})
	verbose    *int
	panicOnErr *bool

	profiler interface{ Stop() } = noopStop{}
)

func init() {
	panicOnErr = rootCmd.PersistentFlags().Bool("panic", false, "panic on error instead of exit code 1")
	rootCmd.PersistentFlags().VarP(outputFlag, "output", "o", outputFlag.DocString("Output format"))
	verbose = rootCmd.PersistentFlags().IntP("verbose", "v", 0, "Verbosity for logging")

	cobra.OnInitialize(func() { logging.Init(*verbose) }) // After flags are parsed
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) { profiler = StartProfile() }
	rootCmd.PersistentPostRun = func(cmd *cobra.Command, args []string) { profiler.Stop() }
}

// errFailed is panicked to exit 1 when checks ran but did not all pass.
type errFailed int

func (n errFailed) Error() string { return fmt.Sprintf("%v check(s) failed", int(n)) }

func main() {
	// Code in this package panics with an error to exit.
	defer func() {
		if r := recover(); r != nil {
			profiler.Stop()
			fmt.Fprintln(os.Stderr, r)
			if _, ok := r.(errFailed); !ok && *panicOnErr {
				panic(r)
			}
			os.Exit(1)
		}
		os.Exit(0)
	}()
	must.Must(rootCmd.Execute())
}
