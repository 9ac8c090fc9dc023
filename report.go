package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/gocarina/gocsv"

	"solution_calc/solution"
)

// speciesRow is one line of the per-species report.
type speciesRow struct {
	Formula             string  `csv:"formula"`
	Charge              int     `csv:"charge"`
	Amount              float64 `csv:"amount"`
	Unit                string  `csv:"unit"`
	ActivityCoefficient float64 `csv:"activity_coefficient"`
	Activity            float64 `csv:"activity"`
	Regime              string  `csv:"regime"`
}

// propertyRow is one line of the bulk property report.
type propertyRow struct {
	Property string  `csv:"property"`
	Value    float64 `csv:"value"`
	Unit     string  `csv:"unit"`
}

func speciesTable(s *solution.Solution, unit string) ([]*speciesRow, error) {
	rows := make([]*speciesRow, 0, len(s.ListSolutes()))
	for _, f := range s.ListSolutes() {
		amount, err := s.Amount(f, unit)
		if err != nil {
			return nil, err
		}
		solute, _ := s.Solute(f)
		row := &speciesRow{
			Formula: f,
			Charge:  solute.Charge(),
			Amount:  amount,
			Unit:    unit,
		}

		if f == s.Solvent() {
			row.ActivityCoefficient = 1
			row.Activity = s.WaterActivity()
			row.Regime = "osmotic"
		} else {
			gamma, regime, err := s.ActivityCoefficientDetail(f)
			if err != nil {
				return nil, err
			}
			activity, err := s.Activity(f)
			if err != nil {
				return nil, err
			}
			row.ActivityCoefficient = gamma
			row.Activity = activity
			row.Regime = regime.String()
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// bulkProperties collects the whole-solution properties. Properties whose
// water correlation is out of range are left out.
func bulkProperties(s *solution.Solution) []*propertyRow {
	rows := []*propertyRow{
		{"temperature", s.Temperature(), "degC"},
		{"pressure", s.Pressure(), "Pa"},
		{"volume", s.Volume(), "L"},
		{"mass", s.Mass(), "kg"},
		{"solvent_mass", s.SolventMass(), "kg"},
		{"density", s.Density(), "kg/m3"},
		{"ionic_strength", s.IonicStrength(), "mol/L"},
		{"water_activity", s.WaterActivity(), "-"},
	}
	if v, err := s.OsmoticPressure(); err == nil {
		rows = append(rows, &propertyRow{"osmotic_pressure", v, "Pa"})
	}
	if v, err := s.VaporPressure(); err == nil {
		rows = append(rows, &propertyRow{"vapor_pressure", v, "Pa"})
	}
	if v, err := s.EquilibriumRelativeHumidity(); err == nil {
		rows = append(rows, &propertyRow{"equilibrium_relative_humidity", v, "%"})
	}
	if v, err := s.Viscosity(); err == nil {
		rows = append(rows, &propertyRow{"viscosity", v, "Pa.s"})
	}
	return rows
}

func writeSpecies(w io.Writer, rows []*speciesRow, format string) error {
	switch format {
	case "csv":
		out, err := gocsv.MarshalString(&rows)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, out)
		return err
	case "table":
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "FORMULA\tCHARGE\tAMOUNT\tGAMMA\tACTIVITY\tREGIME")
		for _, r := range rows {
			fmt.Fprintf(tw, "%s\t%d\t%.6g %s\t%.6g\t%.6g\t%s\n",
				r.Formula, r.Charge, r.Amount, r.Unit, r.ActivityCoefficient, r.Activity, r.Regime)
		}
		return tw.Flush()
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func writeProperties(w io.Writer, rows []*propertyRow, format string) error {
	switch format {
	case "csv":
		out, err := gocsv.MarshalString(&rows)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, out)
		return err
	case "table":
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		for _, r := range rows {
			fmt.Fprintf(tw, "%s\t%.6g\t%s\n", r.Property, r.Value, r.Unit)
		}
		return tw.Flush()
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
