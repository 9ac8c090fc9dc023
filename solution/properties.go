package solution

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"solution_calc/phys"
	"solution_calc/water"
)

// ActivityCoefficient returns the activity coefficient of a species on the
// molar scale, using the correlation appropriate to the ionic strength.
func (s *Solution) ActivityCoefficient(formula string) (float64, error) {
	gamma, _, err := s.ActivityCoefficientDetail(formula)
	return gamma, err
}

/*
ActivityCoefficientDetail returns the activity coefficient of a species
together with the regime that produced it.

Regimes by ionic strength I, first match wins:

	I <= 0.005             Debye-Huckel limiting law
	I <= 0.1               Guntelberg
	I <= 0.5               Davies
	I > 0.5 with TCPC      modified TCPC correlation
	otherwise              ideal, gamma = 1, with a warning event

A water property out of range also yields gamma = 1 with a warning. Only an
unknown formula is an error.
*/
func (s *Solution) ActivityCoefficientDetail(formula string) (float64, Regime, error) {
	solute, err := s.lookup(formula)
	if err != nil {
		return 0, RegimeIdealFallback, err
	}

	ionicStrength := s.IonicStrength()
	params, hasParams := solute.TCPC()
	regime := SelectRegime(ionicStrength, hasParams)

	var gamma float64
	switch regime {
	case RegimeLimitingLaw:
		gamma, err = ActivityCoefficientDebyeHuckel(ionicStrength, solute.charge, s.temperature)
	case RegimeGuntelberg:
		gamma, err = ActivityCoefficientGuntelberg(ionicStrength, solute.charge, s.temperature)
	case RegimeDavies:
		gamma, err = ActivityCoefficientDavies(ionicStrength, solute.charge, s.temperature)
	case RegimeConcentrated:
		gamma, err = ActivityCoefficientTCPC(ionicStrength, &params, s.temperature)
	case RegimeIdealFallback:
		s.sink.Emit(Event{
			Kind:          EventMissingParameters,
			Level:         slog.LevelWarn,
			Solute:        formula,
			Regime:        regime,
			IonicStrength: ionicStrength,
			Message:       "ionic strength too high for Davies equation and no TCPC parameters set, assuming ideal behavior",
		})
		return 1, regime, nil
	}

	if err != nil {
		s.degrade(formula, regime, ionicStrength, err)
		return 1, RegimeIdealFallback, nil
	}

	s.sink.Emit(Event{
		Kind:          EventRegimeSelected,
		Level:         slog.LevelDebug,
		Solute:        formula,
		Regime:        regime,
		IonicStrength: ionicStrength,
		Message:       fmt.Sprintf("activity coefficient %g", gamma),
	})
	return gamma, regime, nil
}

// degrade reports a correlation failure as a warning event.
func (s *Solution) degrade(formula string, regime Regime, ionicStrength float64, err error) {
	kind := EventOutOfRange
	if errors.Is(err, ErrMissingCorrelationParameters) {
		kind = EventMissingParameters
	}
	s.sink.Emit(Event{
		Kind:          kind,
		Level:         slog.LevelWarn,
		Solute:        formula,
		Regime:        regime,
		IonicStrength: ionicStrength,
		Message:       "correlation could not be evaluated, assuming ideal behavior",
		Err:           err,
	})
}

// Activity returns the activity of a species. For the solvent it is the
// water activity; for every other species gamma times the molar
// concentration.
func (s *Solution) Activity(formula string) (float64, error) {
	if formula == s.solvent {
		return s.WaterActivity(), nil
	}
	gamma, err := s.ActivityCoefficient(formula)
	if err != nil {
		return 0, err
	}
	c, err := s.MolarConcentration(formula)
	if err != nil {
		return 0, err
	}
	return gamma * c, nil
}

// Activities returns the activity of every species keyed by formula.
func (s *Solution) Activities() map[string]float64 {
	out := make(map[string]float64, len(s.order))
	for _, f := range s.order {
		// every formula in order is known
		a, _ := s.Activity(f)
		out[f] = a
	}
	return out
}

// Amounts returns the amount of every species in unit, keyed by formula.
func (s *Solution) Amounts(unit string) (map[string]float64, error) {
	if _, err := lookupUnit(unit); err != nil {
		return nil, err
	}
	out := make(map[string]float64, len(s.order))
	for _, f := range s.order {
		v, err := s.Amount(f, unit)
		if err != nil {
			return nil, err
		}
		out[f] = v
	}
	return out, nil
}

// OsmoticCoefficient returns the osmotic coefficient of the solution based
// on the TCPC parameters of formula. Without parameters, or when the
// correlation cannot be evaluated, it is 1 and a warning is emitted.
func (s *Solution) OsmoticCoefficient(formula string) (float64, error) {
	solute, err := s.lookup(formula)
	if err != nil {
		return 0, err
	}
	ionicStrength := s.IonicStrength()

	params, ok := solute.TCPC()
	if !ok {
		s.sink.Emit(Event{
			Kind:          EventMissingParameters,
			Level:         slog.LevelWarn,
			Solute:        formula,
			Regime:        RegimeIdealFallback,
			IonicStrength: ionicStrength,
			Message:       "no TCPC parameters set, assuming unit osmotic coefficient",
		})
		return 1, nil
	}

	phi, err := OsmoticCoefficientTCPC(ionicStrength, &params, s.temperature)
	if err != nil {
		s.degrade(formula, RegimeConcentrated, ionicStrength, err)
		return 1, nil
	}
	return phi, nil
}

// dominantSolute returns the non-solvent species with the strictly greatest
// mole count, the first one in insertion order on ties.
func (s *Solution) dominantSolute() (string, bool) {
	var (
		best  string
		moles float64
	)
	for _, f := range s.order {
		if f == s.solvent {
			continue
		}
		if n := s.solutes[f].moles; n > moles {
			best, moles = f, n
		}
	}
	return best, best != ""
}

/*
WaterActivity returns the activity of the solvent.

	Notes:
		a_w = exp(-phi M_w m), where m is the total non-solvent molality and
		phi the osmotic coefficient based on the dominant solute.
		Blandamer, Mike J., et al. "Activity of water in aqueous systems: A
		frequently neglected property." Chemical Society Review 34, 440-458, 2005.
*/
func (s *Solution) WaterActivity() float64 {
	dominant, ok := s.dominantSolute()
	if !ok {
		return 1
	}
	// dominant is known
	phi, _ := s.OsmoticCoefficient(dominant)
	w := s.solutes[s.solvent]
	molality := s.TotalSoluteMoles() / s.SolventMass()
	return math.Exp(-phi * w.molarMass / 1000 * molality)
}

/*
OsmoticPressure returns the osmotic pressure of the solution.

	Returns:
		osmotic pressure, Pa
	Notes:
		pi = -R T / V_w ln(a_w), V_w the partial molar volume of pure water
		at the solution temperature and pressure.
*/
func (s *Solution) OsmoticPressure() (float64, error) {
	rho, err := water.Density(s.temperature, s.pressure)
	if err != nil {
		return 0, err
	}
	w := s.solutes[s.solvent]
	partialMolarVolume := w.molarMass / 1000 / rho
	return -phys.GasConstant * phys.Kelvin(s.temperature) / partialMolarVolume * math.Log(s.WaterActivity()), nil
}

// VaporPressure returns the vapour pressure of water over the solution in Pa
// from Raoult's law with the water activity.
func (s *Solution) VaporPressure() (float64, error) {
	pvs, err := water.SaturationVaporPressure(s.temperature)
	if err != nil {
		return 0, err
	}
	return s.WaterActivity() * pvs, nil
}

// EquilibriumRelativeHumidity returns the relative humidity in % of air in
// equilibrium with the solution.
func (s *Solution) EquilibriumRelativeHumidity() (float64, error) {
	pv, err := s.VaporPressure()
	if err != nil {
		return 0, err
	}
	pvs, err := water.SaturationVaporPressure(s.temperature)
	if err != nil {
		return 0, err
	}
	return water.RelativeHumidity(pv, pvs), nil
}

/*
Viscosity returns the dynamic viscosity of the solution.

	Returns:
		dynamic viscosity, Pa s
	Notes:
		Pure water viscosity at the solution temperature and pressure. Species
		carrying a "hydrodynamic_radius" parameter (m) add the Einstein
		correction mu = mu_w (1 + 2.5 phi), phi their volume fraction.
*/
func (s *Solution) Viscosity() (float64, error) {
	mu, err := water.ViscosityDynamic(s.temperature, s.pressure)
	if err != nil {
		return 0, err
	}

	var volumeFraction float64
	for _, f := range s.order {
		solute := s.solutes[f]
		r, ok := solute.Parameter("hydrodynamic_radius")
		if !ok {
			continue
		}
		// mol/L to particles per m3
		number := solute.moles / s.volume * 1000 * phys.Avogadro
		volumeFraction += number * 4.0 / 3.0 * math.Pi * r * r * r
	}
	return mu * (1 + 2.5*volumeFraction), nil
}

/*
MolarConductivity returns the molar conductivity of a species from its
"diffusion_coefficient" parameter (m2/s at the solution temperature).

	Returns:
		molar conductivity, S m2/mol
	Notes:
		lambda = |z| F mu = z^2 F^2 D / (R T), Nernst-Einstein.
*/
func (s *Solution) MolarConductivity(formula string) (float64, error) {
	solute, err := s.lookup(formula)
	if err != nil {
		return 0, err
	}
	d, ok := solute.Parameter("diffusion_coefficient")
	if !ok {
		return 0, fmt.Errorf("%w: diffusion_coefficient of %s", ErrMissingParameter, formula)
	}
	mobility := phys.Mobility(d, solute.charge, s.temperature)
	return math.Abs(float64(solute.charge)) * phys.Faraday * mobility, nil
}
