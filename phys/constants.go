// Package phys holds the fundamental constants table and stateless scalar
// transforms (temperature adjustment, acid-base distribution, transport).
package phys

// Values are the 2019 SI exact / CODATA 2018 recommended values.

// Avogadro's number, 1/mol
const Avogadro = 6.02214076e23

// Universal gas constant, J/mol K
const GasConstant = 8.314462618

// Elementary charge, C
const ElementaryCharge = 1.602176634e-19

// Permittivity of free space, F/m
const VacuumPermittivity = 8.8541878128e-12

// Boltzmann constant, J/K
const Boltzmann = 1.380649e-23

// Faraday constant, C/mol
const Faraday = ElementaryCharge * Avogadro

// Standard acceleration of gravity, m/s2
const Gravity = 9.80665

// 0 degree C in Kelvin
const ZeroCelsius = 273.15

// Standard atmosphere, Pa
const StandardPressure = 101325.0

// Standard temperature, degree C
const StandardTemperature = 25.0
