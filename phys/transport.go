package phys

import "math"

/*
Ionic mobility of a species from its diffusion coefficient.

	Args:
		diffusionCoefficient: diffusion coefficient, m2/s
		valence: charge on the species, including sign
		temperature: degree C
	Returns:
		ionic mobility, m2/V s
	Notes:
		Einstein relation, mu = F |z| D / (R T).
		Smedley, The Interpretation of Ionic Conductivity in Liquids, 1980.
*/
func Mobility(diffusionCoefficient float64, valence int, temperature float64) float64 {
	return Faraday * math.Abs(float64(valence)) * diffusionCoefficient / (GasConstant * Kelvin(temperature))
}

/*
Debye length of a solution.

	Args:
		dielectricConstant: relative permittivity of the solvent, -
		ionicStrength: ionic strength, mol/m3
		temperature: degree C
	Returns:
		Debye length, m
*/
func DebyeLength(dielectricConstant, ionicStrength, temperature float64) float64 {
	return math.Sqrt(dielectricConstant * VacuumPermittivity * GasConstant * Kelvin(temperature) /
		(2 * Faraday * Faraday * ionicStrength))
}
