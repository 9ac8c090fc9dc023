package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"solution_calc/solution"
)

var unitsCmd = &cobra.Command{
	Use:   "units",
	Short: "List the recognised amount units",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, u := range solution.Units() {
			fmt.Fprintln(cmd.OutOrStdout(), u)
		}
	},
}

func init() {
	rootCmd.AddCommand(unitsCmd)
}
