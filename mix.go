package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"solution_calc/solution"
)

var mixCmd = &cobra.Command{
	Use:   "mix <a.yaml> <b.yaml>",
	Short: "Mix two solutions and report the blend and the energies of mixing",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		unit, _ := cmd.Flags().GetString("unit")
		format, _ := cmd.Flags().GetString("format")

		a, err := loadSolution(args[0])
		if err != nil {
			return err
		}
		b, err := loadSolution(args[1])
		if err != nil {
			return err
		}

		blend, err := solution.Mix(a, b)
		if err != nil {
			return err
		}
		entropy, err := solution.EntropyMix(a, b)
		if err != nil {
			return err
		}
		gibbs, err := solution.GibbsMix(a, b)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		props := append(bulkProperties(blend),
			&propertyRow{"entropy_of_mixing_term", entropy, "J"},
			&propertyRow{"gibbs_energy_of_mixing", gibbs, "J"},
		)
		if err := writeProperties(out, props, format); err != nil {
			return err
		}
		fmt.Fprintln(out)

		rows, err := speciesTable(blend, unit)
		if err != nil {
			return err
		}
		return writeSpecies(out, rows, format)
	},
}

func init() {
	mixCmd.Flags().String("unit", "mol/L", "Amount unit of the species table")
	mixCmd.Flags().String("format", "table", "Output format: table or csv")
	rootCmd.AddCommand(mixCmd)
}
