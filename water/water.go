// Package water provides the physical properties of pure water substance as
// functions of temperature and pressure. Every property has a documented
// range of validity; requests outside it return ErrOutOfRange instead of an
// extrapolated value.
package water

import (
	"errors"
	"fmt"
	"math"

	"solution_calc/phys"
)

// ErrOutOfRange is returned when a temperature or pressure lies outside the
// range a correlation was fitted over.
var ErrOutOfRange = errors.New("water: outside valid range of correlation")

// valid range of the density correlation, degree C
const (
	densityMinTemp = 0.0
	densityMaxTemp = 100.0
)

// valid range of the dielectric constant fit, K
const (
	dielectricMinTemp = 273.0
	dielectricMaxTemp = 372.0
)

func outOfRange(quantity string, value float64, unit string) error {
	return fmt.Errorf("%w: %s = %g %s", ErrOutOfRange, quantity, value, unit)
}

/*
Density of pure water.

	Args:
		temperature: degree C
		pressure: Pa (accepted for interface symmetry, the fit is pressure independent)
	Returns:
		density of water, kg/m3
	Notes:
		rho = 999.65 + 0.20438 T - 6.1744e-2 T^1.5
		Sohnel and Novotny, Densities of Aqueous Solutions of Inorganic Substances, 1985.
		Valid for 0 - 100 degree C.
*/
func Density(temperature, pressure float64) (float64, error) {
	if temperature < densityMinTemp || temperature > densityMaxTemp {
		return 0, outOfRange("temperature", temperature, "degree C")
	}
	return 999.65 + 0.20438*temperature - 6.1744e-2*math.Pow(temperature, 1.5), nil
}

// SpecificWeight returns the specific weight of water in N/m3.
func SpecificWeight(temperature, pressure float64) (float64, error) {
	rho, err := Density(temperature, pressure)
	if err != nil {
		return 0, err
	}
	return rho * phys.Gravity, nil
}

/*
Dielectric constant of pure water.

	Args:
		temperature: degree C
	Returns:
		dielectric constant relative to vacuum, -
	Notes:
		Quadratic fit eps = a + b T + c T^2 (T in K) to the CRC Handbook data,
		"Permittivity (Dielectric Constant) of Liquids", 92nd ed.
		Valid for 273 - 372 K.
*/
func DielectricConstant(temperature float64) (float64, error) {
	t := phys.Kelvin(temperature)
	if t < dielectricMinTemp || t > dielectricMaxTemp {
		return 0, outOfRange("temperature", t, "K")
	}

	const a = 0.24921e3
	const b = -0.79069e0
	const c = 0.72997e-3

	return a + b*t + c*t*t, nil
}

/*
Debye-Huckel limiting law constant A (base 10).

	Args:
		temperature: degree C
	Returns:
		A, (L/mol)^0.5
	Notes:
		A = 1.8246e6 (eps T)^-1.5, Stumm and Morgan, Aquatic Chemistry 3rd ed, p 103.
		Only valid with ionic strengths on the molar (mol/L) scale.
		About 0.51 at 25 degree C.
*/
func DebyeParameterActivity(temperature float64) (float64, error) {
	eps, err := DielectricConstant(temperature)
	if err != nil {
		return 0, err
	}
	return 1.8246e6 * math.Pow(eps*phys.Kelvin(temperature), -1.5), nil
}

/*
Debye-Huckel constant A_phi for osmotic coefficients.

	Args:
		temperature: degree C
	Returns:
		A_phi, (kg/mol)^0.5
	Notes:
		A_phi = 1/3 (2 pi N_A rho_w)^0.5 (e^2 / (4 pi eps_0 eps k T))^1.5
		Kim and Frederick, J. Chem. Eng. Data 33, 177-184, 1988.
		Takes the value 0.392 at 25 degree C.
*/
func DebyeParameterOsmotic(temperature float64) (float64, error) {
	eps, err := DielectricConstant(temperature)
	if err != nil {
		return 0, err
	}
	rho, err := Density(temperature, phys.StandardPressure)
	if err != nil {
		return 0, err
	}

	bjerrum := phys.ElementaryCharge * phys.ElementaryCharge /
		(4 * math.Pi * phys.VacuumPermittivity * eps * phys.Boltzmann * phys.Kelvin(temperature))

	return 1.0 / 3.0 * math.Sqrt(2*math.Pi*phys.Avogadro*rho) * math.Pow(bjerrum, 1.5), nil
}
