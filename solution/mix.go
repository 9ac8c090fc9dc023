package solution

import (
	"fmt"
	"log/slog"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"solution_calc/phys"
)

func isWater(formula string) bool {
	return formula == "H2O" || strings.EqualFold(formula, "water")
}

/*
Mix combines two solutions into a new one. Neither input is modified.

	Notes:
		Both solutions must share the same water solvent.
		Volumes are assumed additive; the density follows from the total mass.
		Mole counts add species by species. A species present in both keeps
		the molar mass and parameters of a.
		Temperature and pressure are the volume-weighted means.
*/
func Mix(a, b *Solution) (*Solution, error) {
	if a.solvent != b.solvent {
		return nil, fmt.Errorf("%w: %s and %s", ErrIncompatibleSolvent, a.solvent, b.solvent)
	}
	if !isWater(a.solvent) {
		return nil, fmt.Errorf("%w: only water is supported, got %s", ErrIncompatibleSolvent, a.solvent)
	}

	c := a.Copy()
	for _, f := range b.order {
		other := b.solutes[f]
		if solute, ok := c.solutes[f]; ok {
			solute.moles += other.moles
			continue
		}
		c.solutes[f] = other.clone()
		c.order = append(c.order, f)
	}

	weights := []float64{a.volume, b.volume}
	c.volume = floats.Sum(weights)
	c.density = (a.Mass() + b.Mass()) / c.volume * 1000
	c.temperature = stat.Mean([]float64{a.temperature, b.temperature}, weights)
	c.pressure = stat.Mean([]float64{a.pressure, b.pressure}, weights)

	c.sink.Emit(Event{
		Kind:    EventMixing,
		Level:   slog.LevelDebug,
		Message: fmt.Sprintf("mixed %g L and %g L into %g L", a.volume, b.volume, c.volume),
	})
	return c, nil
}

// sumMolesLog returns sum(n_i ln v_i) over every species with a nonzero mole
// fraction.
func (s *Solution) sumMolesLog(value func(string) (float64, error)) (float64, error) {
	terms := make([]float64, 0, len(s.order))
	for _, f := range s.order {
		x, err := s.MoleFraction(f)
		if err != nil {
			return 0, err
		}
		if x == 0 {
			continue
		}
		v, err := value(f)
		if err != nil {
			return 0, err
		}
		terms = append(terms, s.solutes[f].moles*math.Log(v))
	}
	return floats.Sum(terms), nil
}

func mixingEnergy(a, b *Solution, value func(*Solution) func(string) (float64, error)) (float64, error) {
	blend, err := Mix(a, b)
	if err != nil {
		return 0, err
	}
	parts := make([]float64, 3)
	for i, s := range []*Solution{blend, a, b} {
		parts[i], err = s.sumMolesLog(value(s))
		if err != nil {
			return 0, err
		}
	}
	return phys.GasConstant * phys.Kelvin(blend.temperature) * (parts[0] - parts[1] - parts[2]), nil
}

/*
EntropyMix returns the ideal entropy of mixing term of two solutions.

	Returns:
		R T [sum_blend n ln x - sum_a n ln x - sum_b n ln x], J
*/
func EntropyMix(a, b *Solution) (float64, error) {
	return mixingEnergy(a, b, func(s *Solution) func(string) (float64, error) {
		return s.MoleFraction
	})
}

/*
GibbsMix returns the Gibbs energy of mixing two solutions.

	Returns:
		R T [sum_blend n ln a - sum_a n ln a - sum_b n ln a], J
	Notes:
		Koga, Yoshikata, 2007. Solution Thermodynamics and its Application to
		Aqueous Solutions: A differential approach. Elsevier, 2007, pp. 23-37.
*/
func GibbsMix(a, b *Solution) (float64, error) {
	return mixingEnergy(a, b, func(s *Solution) func(string) (float64, error) {
		return s.Activity
	})
}
