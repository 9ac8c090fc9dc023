package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"solution_calc/solution"
)

var donnanCmd = &cobra.Command{
	Use:   "donnan <solution.yaml>",
	Short: "Equilibrate the dominant salt with a charged ion exchange phase",
	Long: `Computes the composition inside an ion exchange phase in Donnan equilibrium
with the solution. The fixed charge is given either directly with --fixed-charge
(positive for anion exchange) or through a membrane type and its fixed charge
density.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fixedCharge, _ := cmd.Flags().GetFloat64("fixed-charge")
		unit, _ := cmd.Flags().GetString("unit")
		membraneType, _ := cmd.Flags().GetString("membrane")
		density, _ := cmd.Flags().GetFloat64("charge-density")
		format, _ := cmd.Flags().GetString("format")

		s, err := loadSolution(args[0])
		if err != nil {
			return err
		}

		var inside *solution.Solution
		if membraneType != "" {
			m := &solution.Membrane{
				Name:               membraneType,
				Type:               solution.MembraneType(membraneType),
				FixedChargeDensity: density,
			}
			app.logger.Info("equilibrating with membrane", "membrane", m.String())
			inside, err = m.Equilibrate(s)
			unit = "mol/L"
		} else {
			inside, err = solution.DonnanEquilibrium(s, fixedCharge, unit)
		}
		if err != nil {
			return err
		}

		rows, err := speciesTable(inside, unit)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "ionic strength inside: %.6g mol/L\n\n", inside.IonicStrength())
		return writeSpecies(out, rows, format)
	},
}

func init() {
	donnanCmd.Flags().Float64("fixed-charge", 0, "Fixed charge concentration of the exchange phase, in --unit")
	donnanCmd.Flags().String("unit", "mol/L", "Amount unit of the fixed charge and of the report")
	donnanCmd.Flags().String("membrane", "", "Membrane type (aem, cem, bpem, mf, uf, ro, fo); overrides --fixed-charge")
	donnanCmd.Flags().Float64("charge-density", 0, "Fixed charge density of the membrane, eq/m3")
	donnanCmd.Flags().String("format", "table", "Output format: table or csv")
	rootCmd.AddCommand(donnanCmd)
}
