// Copyright: This file is part of timeassert, released under https://github.com/korrel8r/timeassert/blob/main/LICENSE

package main

import (
	"fmt"
	"os"

	"github.com/korrel8r/timeassert/pkg/temporal"
	"github.com/spf13/cobra"
)

var fieldsCmd = &cobra.Command{
	Use:   "fields",
	Short: "List date-time field names, most significant first.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, f := range temporal.Fields() {
			fmt.Fprintln(os.Stdout, f)
		}
	},
}

func init() {
	rootCmd.AddCommand(fieldsCmd)
}
