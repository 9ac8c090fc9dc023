package solution

import (
	"fmt"
	"math"

	"solution_calc/phys"
)

// Salt is the dominant cation and anion of a solution with the
// stoichiometry of the neutral salt they form.
type Salt struct {
	Cation   string
	Anion    string
	ZCation  int
	ZAnion   int
	NuCation int
	NuAnion  int
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// Salt returns the cation and the anion with the greatest mole counts,
// the first in insertion order on ties.
func (s *Solution) Salt() (Salt, error) {
	var (
		cation, anion           *Solute
		cationMoles, anionMoles float64
	)
	for _, f := range s.order {
		solute := s.solutes[f]
		switch {
		case solute.charge > 0 && (cation == nil || solute.moles > cationMoles):
			cation, cationMoles = solute, solute.moles
		case solute.charge < 0 && (anion == nil || solute.moles > anionMoles):
			anion, anionMoles = solute, solute.moles
		}
	}
	if cation == nil || anion == nil {
		return Salt{}, ErrNoSalt
	}

	zc, za := cation.charge, anion.charge
	g := gcd(zc, -za)
	return Salt{
		Cation:   cation.formula,
		Anion:    anion.formula,
		ZCation:  zc,
		ZAnion:   za,
		NuCation: -za / g,
		NuAnion:  zc / g,
	}, nil
}

// settings of the Donnan co-ion search
const (
	donnanLowerBound = 1e-10
	donnanTolerance  = 1e-12
	donnanMaxIter    = 200
)

/*
DonnanEquilibrium returns a copy of s in which the dominant salt has been
equilibrated with an ion exchange phase carrying a fixed charge.

	Args:
		s: external solution
		fixedCharge: fixed charge concentration of the exchange phase, in unit;
		             positive for anion exchange, negative for cation exchange
		unit: amount unit of fixedCharge, e.g. "mol/L"
	Returns:
		the solution inside the exchange phase

	Notes:
		(a_-/a_-')^(1/z_-) (a_+'/a_+)^(1/z_+) = exp(dpi V / (R T z_+ nu_+))
		with primes for the exchange phase, V the partial molar volume of the
		salt and dpi the osmotic pressure difference, together with the
		electroneutrality condition C_+' z_+ + X + C_-' z_- = 0.
		Both ions need a "partial_molar_volume" parameter in m3/mol.
		A zero fixed charge or an absent ion returns an unchanged copy.
		Strathmann, H., ed. Membrane Science and Technology vol. 9, 2004. Chapter 2, p. 51.
*/
func DonnanEquilibrium(s *Solution, fixedCharge float64, unit string) (*Solution, error) {
	if _, err := lookupUnit(unit); err != nil {
		return nil, err
	}
	salt, err := s.Salt()
	if err != nil {
		return nil, err
	}

	concCation, err := s.Amount(salt.Cation, unit)
	if err != nil {
		return nil, err
	}
	concAnion, err := s.Amount(salt.Anion, unit)
	if err != nil {
		return nil, err
	}

	donnan := s.Copy()
	if fixedCharge == 0 || concCation == 0 || concAnion == 0 {
		return donnan, nil
	}

	cationVolume, ok := s.solutes[salt.Cation].Parameter("partial_molar_volume")
	if !ok {
		return nil, fmt.Errorf("%w: partial_molar_volume of %s", ErrMissingParameter, salt.Cation)
	}
	anionVolume, ok := s.solutes[salt.Anion].Parameter("partial_molar_volume")
	if !ok {
		return nil, fmt.Errorf("%w: partial_molar_volume of %s", ErrMissingParameter, salt.Anion)
	}

	actCation, err := s.Activity(salt.Cation)
	if err != nil {
		return nil, err
	}
	actAnion, err := s.Activity(salt.Anion)
	if err != nil {
		return nil, err
	}
	piSolution, err := s.OsmoticPressure()
	if err != nil {
		return nil, err
	}

	zc, za := float64(salt.ZCation), float64(salt.ZAnion)
	// 1/Pa
	expTerm := (cationVolume + anionVolume) / (phys.GasConstant * phys.Kelvin(s.temperature) * zc * float64(salt.NuCation))

	// x is the co-ion concentration in the exchange phase, in equivalents
	var solveErr error
	residual := func(x float64) float64 {
		var cationMem, anionMem float64
		if fixedCharge > 0 {
			cationMem = x / zc
			anionMem = -(cationMem*zc + fixedCharge) / za
		} else {
			anionMem = x / -za
			cationMem = -(anionMem*za + fixedCharge) / zc
		}

		if err := donnan.SetAmount(salt.Cation, cationMem, unit); err != nil {
			solveErr = err
			return math.NaN()
		}
		if err := donnan.SetAmount(salt.Anion, anionMem, unit); err != nil {
			solveErr = err
			return math.NaN()
		}

		// both ions are present in donnan
		actCationMem, _ := donnan.Activity(salt.Cation)
		actAnionMem, _ := donnan.Activity(salt.Anion)
		piMem, err := donnan.OsmoticPressure()
		if err != nil {
			solveErr = err
			return math.NaN()
		}

		return math.Pow(actCationMem/actCation, 1/zc)*math.Pow(actAnion/actAnionMem, 1/za) -
			math.Exp((piMem-piSolution)*expTerm)
	}

	upper := concCation
	if fixedCharge < 0 {
		upper = concAnion
	}
	// the search is silent, only the final state reports diagnostics
	sink := donnan.sink
	donnan.sink = NopSink
	root, err := findRoot(residual, donnanLowerBound, upper, donnanTolerance, donnanMaxIter)
	if solveErr != nil {
		return nil, solveErr
	}
	if err != nil {
		return nil, fmt.Errorf("donnan equilibrium of %s/%s: %w", salt.Cation, salt.Anion, err)
	}

	donnan.sink = sink
	residual(root)
	if solveErr != nil {
		return nil, solveErr
	}
	return donnan, nil
}
