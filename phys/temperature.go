package phys

import "math"

/*
Convert a temperature in degree C to K.

	Args:
		tempCelsius: temperature, degree C
	Returns:
		temperature, K
*/
func Kelvin(tempCelsius float64) float64 {
	return tempCelsius + ZeroCelsius
}

// Celsius converts a temperature in K to degree C.
func Celsius(tempKelvin float64) float64 {
	return tempKelvin - ZeroCelsius
}

/*
Adjust a reaction equilibrium constant from one temperature to another.

	Args:
		equilibriumConstant: equilibrium constant valid at referenceTemperature
		enthalpy: reaction enthalpy change, kJ/mol
		temperature: target temperature, degree C
		referenceTemperature: temperature at which equilibriumConstant is valid, degree C
	Returns:
		adjusted equilibrium constant
	Notes:
		Van't Hoff equation, ln(K2/K1) = dH/R (1/T1 - 1/T2).
		The enthalpy is taken as independent of temperature over the range.
		Stumm and Morgan, Aquatic Chemistry 3rd ed, 1996.
*/
func AdjustTempVantHoff(equilibriumConstant, enthalpy, temperature, referenceTemperature float64) float64 {
	return equilibriumConstant * math.Exp(enthalpy*1000/GasConstant*(1/Kelvin(referenceTemperature)-1/Kelvin(temperature)))
}

/*
Adjust a rate constant (or any Arrhenius-type parameter) to another temperature.

	Args:
		rateConstant: parameter value valid at referenceTemperature
		activationEnergy: activation energy of the process, kJ/mol
		temperature: target temperature, degree C
		referenceTemperature: temperature at which rateConstant is valid, degree C
	Returns:
		adjusted parameter value
	Notes:
		ln(K2/K1) = Ea/R (1/T1 - 1/T2)
*/
func AdjustTempArrhenius(rateConstant, activationEnergy, temperature, referenceTemperature float64) float64 {
	return rateConstant * math.Exp(activationEnergy*1000/GasConstant*(1/Kelvin(referenceTemperature)-1/Kelvin(temperature)))
}
