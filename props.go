package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var propsCmd = &cobra.Command{
	Use:   "props <solution.yaml>",
	Short: "Report bulk and per-species properties of a solution",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		unit, _ := cmd.Flags().GetString("unit")
		format, _ := cmd.Flags().GetString("format")

		s, err := loadSolution(args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if err := writeProperties(out, bulkProperties(s), format); err != nil {
			return err
		}
		fmt.Fprintln(out)

		rows, err := speciesTable(s, unit)
		if err != nil {
			return err
		}
		return writeSpecies(out, rows, format)
	},
}

func init() {
	propsCmd.Flags().String("unit", "mol/L", "Amount unit of the species table")
	propsCmd.Flags().String("format", "table", "Output format: table or csv")
	rootCmd.AddCommand(propsCmd)
}
