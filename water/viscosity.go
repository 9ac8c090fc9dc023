package water

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"solution_calc/phys"
)

// valid range of the viscosity equation
const (
	viscosityMinTemp     = 273.0 // K
	viscosityMaxTemp     = 1073.0
	viscosityMinPressure = 0.0 // Pa
	viscosityMaxPressure = 100000000.0
)

// reducing constants of the viscosity equation
const (
	tStar   = 647.27  // K
	rhoStar = 317.763 // kg/m3
	muStar  = 1e-6    // Pa s
)

// coefficients a_i of the dilute gas term
var viscosityA = []float64{0.0181583, 0.0177624, 0.0105287, -0.0036477}

// coefficients b_ij of the residual term, [i, j] (i=6, j=5)
var viscosityB = mat.NewDense(6, 5, []float64{
	0.501938, 0.235622, -0.274637, 0.145831, -0.0270448,
	0.162888, 0.789393, -0.743539, 0.263129, -0.0253093,
	-0.130356, 0.673665, -0.959456, 0.347247, -0.0267758,
	0.907919, 1.207552, -0.687343, 0.213486, -0.0822904,
	-0.551119, 0.0670665, -0.497089, 0.100754, 0.0602253,
	0.146543, -0.0843370, 0.195286, -0.032932, -0.0202595,
})

/*
Dynamic (absolute) viscosity of pure water.

	Args:
		temperature: degree C
		pressure: Pa
	Returns:
		dynamic viscosity, Pa s
	Notes:
		International equation for the viscosity of water substance,
		Sengers, J. Phys. Chem. Ref. Data 13(1), 1984.
		mu = mu0(T) mu1(T, rho)
		Valid for 273 - 1073 K and 0 - 1e8 Pa, and limited further by Density.
*/
func ViscosityDynamic(temperature, pressure float64) (float64, error) {
	t := phys.Kelvin(temperature)
	if t < viscosityMinTemp || t > viscosityMaxTemp {
		return 0, outOfRange("temperature", t, "K")
	}
	if pressure < viscosityMinPressure || pressure > viscosityMaxPressure {
		return 0, outOfRange("pressure", pressure, "Pa")
	}

	rho, err := Density(temperature, pressure)
	if err != nil {
		return 0, err
	}

	// dimensionless temperature and density
	tBar := t / tStar
	rhoBar := rho / rhoStar

	var sum0 float64
	for i, a := range viscosityA {
		sum0 += a * math.Pow(tBar, -float64(i))
	}
	mu0 := muStar * math.Sqrt(tBar) / sum0

	r, c := viscosityB.Dims()
	var sum1 float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			sum1 += viscosityB.At(i, j) * math.Pow(1/tBar-1, float64(i)) * math.Pow(rhoBar-1, float64(j))
		}
	}
	mu1 := math.Exp(rhoBar * sum1)

	return mu0 * mu1, nil
}

// ViscosityKinematic returns the kinematic viscosity of water in m2/s.
func ViscosityKinematic(temperature, pressure float64) (float64, error) {
	mu, err := ViscosityDynamic(temperature, pressure)
	if err != nil {
		return 0, err
	}
	rho, err := Density(temperature, pressure)
	if err != nil {
		return 0, err
	}
	return mu / rho, nil
}

/*
Adjust a diffusion coefficient to another temperature.

	Args:
		diffusionCoefficient: diffusion coefficient at referenceTemperature, m2/s
		temperature: target temperature, degree C
		referenceTemperature: degree C
	Returns:
		diffusion coefficient at temperature, m2/s
	Notes:
		D_T = D_ref (T / T_ref) (mu_ref / mu_T), Stokes-Einstein scaling with
		the viscosity of water at atmospheric pressure.
*/
func AdjustTempDiffusion(diffusionCoefficient, temperature, referenceTemperature float64) (float64, error) {
	muRef, err := ViscosityDynamic(referenceTemperature, phys.StandardPressure)
	if err != nil {
		return 0, err
	}
	mu, err := ViscosityDynamic(temperature, phys.StandardPressure)
	if err != nil {
		return 0, err
	}
	return diffusionCoefficient * phys.Kelvin(temperature) / phys.Kelvin(referenceTemperature) * muRef / mu, nil
}
