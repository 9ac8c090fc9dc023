package solution

import (
	"fmt"
	"log/slog"
	"math"
)

type unitClass int

const (
	classMoles         unitClass = iota // mol per unit
	classMolal                          // mol per kg of solvent
	classMoleFraction                   // mol per mol of solution
	classMolar                          // mol per L per unit
	classMassPerVolume                  // g per L per unit
	classMass                           // g per unit
	classMassFraction                   // kg per kg of solution per unit
)

type unitDef struct {
	name  string
	class unitClass
	scale float64
}

// recognised amount units, in listing order
var unitTable = []unitDef{
	{"mol", classMoles, 1},
	{"mmol", classMoles, 1e-3},
	{"mol/kg", classMolal, 1},
	{"fraction", classMoleFraction, 1},
	{"mol/L", classMolar, 1},
	{"mmol/L", classMolar, 1e-3},
	{"ng/L", classMassPerVolume, 1e-9},
	{"ug/L", classMassPerVolume, 1e-6},
	{"mg/L", classMassPerVolume, 1e-3},
	{"g/L", classMassPerVolume, 1},
	{"kg/L", classMassPerVolume, 1e3},
	{"ng", classMass, 1e-9},
	{"ug", classMass, 1e-6},
	{"mg", classMass, 1e-3},
	{"g", classMass, 1},
	{"kg", classMass, 1e3},
	{"ppt", classMassFraction, 1e-3},
	{"g/kg", classMassFraction, 1e-3},
	{"ppm", classMassFraction, 1e-6},
	{"mg/kg", classMassFraction, 1e-6},
	{"ppb", classMassFraction, 1e-9},
	{"ug/kg", classMassFraction, 1e-9},
	{"%", classMassFraction, 1e-2},
	{"g/g", classMassFraction, 1},
	{"mg/mg", classMassFraction, 1},
	{"kg/kg", classMassFraction, 1},
}

var unitIndex = func() map[string]unitDef {
	m := make(map[string]unitDef, len(unitTable))
	for _, u := range unitTable {
		m[u.name] = u
	}
	return m
}()

// Units lists every amount unit understood by Amount and SetAmount.
func Units() []string {
	names := make([]string, len(unitTable))
	for i, u := range unitTable {
		names[i] = u.name
	}
	return names
}

func lookupUnit(unit string) (unitDef, error) {
	u, ok := unitIndex[unit]
	if !ok {
		return unitDef{}, fmt.Errorf("%w: %q", ErrInvalidUnit, unit)
	}
	return u, nil
}

// intrinsic units do not depend on the solution volume or on the amounts of
// the other components
func (u unitDef) intrinsic() bool {
	switch u.class {
	case classMoles, classMolal, classMass:
		return true
	}
	return false
}

// Amount returns the amount of a solute in the given unit. Volumetric units
// use the cached volume; the temperature argument is accepted for symmetry
// with SetAmount and does not trigger a volume recomputation.
func (s *Solution) Amount(formula, unit string) (float64, error) {
	return s.AmountAt(formula, unit, s.temperature)
}

// AmountAt is Amount evaluated at a given temperature in degC.
func (s *Solution) AmountAt(formula, unit string, temperature float64) (float64, error) {
	solute, err := s.lookup(formula)
	if err != nil {
		return 0, err
	}
	u, err := lookupUnit(unit)
	if err != nil {
		return 0, err
	}

	n := solute.moles
	switch u.class {
	case classMoles:
		return n / u.scale, nil
	case classMolal:
		return n / s.SolventMass(), nil
	case classMoleFraction:
		total := s.totalMoles()
		if total == 0 {
			return 0, nil
		}
		return n / total, nil
	case classMolar:
		return n / s.volume / u.scale, nil
	case classMassPerVolume:
		return n * solute.molarMass / s.volume / u.scale, nil
	case classMass:
		return n * solute.molarMass / u.scale, nil
	default:
		total := s.Mass() * 1000
		if total == 0 {
			return 0, nil
		}
		return n * solute.molarMass / total / u.scale, nil
	}
}

// SetAmount overwrites the mole count of a solute from a value in the given
// unit. It is the exact inverse of Amount. On error the solute is unchanged.
// The cached volume is not updated; call RecomputeVolume when needed.
func (s *Solution) SetAmount(formula string, value float64, unit string) error {
	return s.SetAmountAt(formula, value, unit, s.temperature)
}

// SetAmountAt is SetAmount evaluated at a given temperature in degC.
func (s *Solution) SetAmountAt(formula string, value float64, unit string, temperature float64) error {
	solute, err := s.lookup(formula)
	if err != nil {
		return err
	}
	u, err := lookupUnit(unit)
	if err != nil {
		return err
	}
	n, err := s.molesFrom(solute, value, u)
	if err != nil {
		return fmt.Errorf("set %s to %g %s: %w", formula, value, unit, err)
	}

	solute.moles = n
	s.sink.Emit(Event{
		Kind:    EventUnitConversion,
		Level:   slog.LevelDebug,
		Solute:  formula,
		Message: fmt.Sprintf("converted %g %s to %g mol", value, unit, n),
	})
	return nil
}

func (s *Solution) molesFrom(solute *Solute, value float64, u unitDef) (float64, error) {
	if value < 0 || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, ErrInvalidAmount
	}

	switch u.class {
	case classMoles:
		return value * u.scale, nil
	case classMolal:
		if solute.formula == s.solvent {
			return 0, fmt.Errorf("%w: molality of the solvent is circular", ErrInvalidUnit)
		}
		return value * s.SolventMass(), nil
	case classMoleFraction:
		if value >= 1 {
			return 0, fmt.Errorf("%w: mole fraction must be below 1", ErrInvalidAmount)
		}
		other := s.totalMoles() - solute.moles
		if value > 0 && other <= 0 {
			return 0, fmt.Errorf("%w: no other components to balance mole fraction", ErrInvalidAmount)
		}
		return value * other / (1 - value), nil
	case classMolar:
		return value * u.scale * s.volume, nil
	case classMassPerVolume:
		return value * u.scale * s.volume / solute.molarMass, nil
	case classMass:
		return value * u.scale / solute.molarMass, nil
	default:
		w := value * u.scale
		if w >= 1 {
			return 0, fmt.Errorf("%w: mass fraction must be below 1", ErrInvalidAmount)
		}
		other := s.Mass()*1000 - solute.moles*solute.molarMass
		if w > 0 && other <= 0 {
			return 0, fmt.Errorf("%w: no other components to balance mass fraction", ErrInvalidAmount)
		}
		return w * other / (1 - w) / solute.molarMass, nil
	}
}
