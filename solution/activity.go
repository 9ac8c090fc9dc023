package solution

import (
	"fmt"
	"math"

	"solution_calc/phys"
	"solution_calc/water"
)

// Regime identifies the activity correlation chosen for an ionic strength.
type Regime int

const (
	RegimeLimitingLaw Regime = iota
	RegimeGuntelberg
	RegimeDavies
	RegimeConcentrated
	RegimeIdealFallback
)

// upper ionic strength bound (mol/L) of each Debye-Huckel family regime
const (
	limitingLawMaxIonicStrength = 0.005
	guntelbergMaxIonicStrength  = 0.1
	daviesMaxIonicStrength      = 0.5
)

func (r Regime) String() string {
	switch r {
	case RegimeLimitingLaw:
		return "limiting_law"
	case RegimeGuntelberg:
		return "guntelberg"
	case RegimeDavies:
		return "davies"
	case RegimeConcentrated:
		return "tcpc"
	case RegimeIdealFallback:
		return "ideal"
	default:
		return fmt.Sprintf("regime(%d)", int(r))
	}
}

// SelectRegime picks the activity correlation for ionic strength I (mol/L).
// Bounds are inclusive on the upper side; the first matching regime wins.
func SelectRegime(ionicStrength float64, hasParams bool) Regime {
	switch {
	case ionicStrength <= limitingLawMaxIonicStrength:
		return RegimeLimitingLaw
	case ionicStrength <= guntelbergMaxIonicStrength:
		return RegimeGuntelberg
	case ionicStrength <= daviesMaxIonicStrength:
		return RegimeDavies
	case hasParams:
		return RegimeConcentrated
	default:
		return RegimeIdealFallback
	}
}

/*
ActivityCoefficientDebyeHuckel returns the activity coefficient of an ion
from the Debye-Huckel limiting law.

	Args:
		ionicStrength: ionic strength, mol/L
		valence: charge of the ion including sign
		temperature: solution temperature, degC
	Returns:
		activity coefficient, -

	Notes:
		log10(gamma) = -A z^2 sqrt(I), valid for I < 0.005
		Stumm, W. and Morgan, J. Aquatic Chemistry, 3rd ed, pp 103. Wiley, 1996.
*/
func ActivityCoefficientDebyeHuckel(ionicStrength float64, valence int, temperature float64) (float64, error) {
	a, err := water.DebyeParameterActivity(temperature)
	if err != nil {
		return 1, err
	}
	z := float64(valence)
	return math.Pow(10, -a*z*z*math.Sqrt(ionicStrength)), nil
}

/*
ActivityCoefficientGuntelberg returns the activity coefficient from the
Guntelberg approximation of the extended Debye-Huckel equation.

	Notes:
		log10(gamma) = -A z^2 sqrt(I) / (1 + sqrt(I)), valid for I < 0.1
*/
func ActivityCoefficientGuntelberg(ionicStrength float64, valence int, temperature float64) (float64, error) {
	a, err := water.DebyeParameterActivity(temperature)
	if err != nil {
		return 1, err
	}
	z := float64(valence)
	sqrtI := math.Sqrt(ionicStrength)
	return math.Pow(10, -a*z*z*sqrtI/(1+sqrtI)), nil
}

/*
ActivityCoefficientDavies returns the activity coefficient from the Davies
equation.

	Notes:
		log10(gamma) = -A z^2 (sqrt(I) / (1 + sqrt(I)) - 0.2 I), valid for I < 0.5
*/
func ActivityCoefficientDavies(ionicStrength float64, valence int, temperature float64) (float64, error) {
	a, err := water.DebyeParameterActivity(temperature)
	if err != nil {
		return 1, err
	}
	z := float64(valence)
	sqrtI := math.Sqrt(ionicStrength)
	return math.Pow(10, -a*z*z*(sqrtI/(1+sqrtI)-0.2*ionicStrength)), nil
}

/*
ActivityCoefficientTCPC returns the mean activity coefficient of a salt from
the modified three-characteristic-parameter correlation.

	Args:
		ionicStrength: ionic strength, mol/L
		params: correlation parameters of the salt
		temperature: solution temperature, degC
	Returns:
		activity coefficient, -

	Notes:
		PDH = -|z z_c| A_phi (sqrt(I) / (1 + b sqrt(I)) + 2/b ln(1 + b sqrt(I)))
		SV  = S / T I^(2n) / (nu + nu_c)
		gamma = exp(PDH + SV)
		valid for I up to about 6 mol/kg
*/
func ActivityCoefficientTCPC(ionicStrength float64, params *TCPCParams, temperature float64) (float64, error) {
	if params == nil {
		return 0, ErrMissingCorrelationParameters
	}
	if err := params.Validate(); err != nil {
		return 0, err
	}
	aPhi, err := water.DebyeParameterOsmotic(temperature)
	if err != nil {
		return 0, err
	}

	sqrtI := math.Sqrt(ionicStrength)
	b := params.B
	zz := math.Abs(float64(params.Z * params.CounterZ))
	nu := float64(params.Nu + params.CounterNu)

	pdh := -zz * aPhi * (sqrtI/(1+b*sqrtI) + 2/b*math.Log(1+b*sqrtI))
	sv := params.S / phys.Kelvin(temperature) * math.Pow(ionicStrength, 2*params.N) / nu
	return math.Exp(pdh + sv), nil
}

/*
OsmoticCoefficientTCPC returns the osmotic coefficient of a salt solution
from the modified three-characteristic-parameter correlation.

	Notes:
		phi = 1 - [-|z z_c| A_phi sqrt(I) / (1 + b sqrt(I))]
		        + [S / (T (nu + nu_c)) 2n / (2n + 1) I^(2n)]
*/
func OsmoticCoefficientTCPC(ionicStrength float64, params *TCPCParams, temperature float64) (float64, error) {
	if params == nil {
		return 0, ErrMissingCorrelationParameters
	}
	if err := params.Validate(); err != nil {
		return 0, err
	}
	aPhi, err := water.DebyeParameterOsmotic(temperature)
	if err != nil {
		return 0, err
	}

	sqrtI := math.Sqrt(ionicStrength)
	zz := math.Abs(float64(params.Z * params.CounterZ))
	nu := float64(params.Nu + params.CounterNu)
	twoN := 2 * params.N

	pdh := -zz * aPhi * sqrtI / (1 + params.B*sqrtI)
	sv := params.S / (phys.Kelvin(temperature) * nu) * twoN / (twoN + 1) * math.Pow(ionicStrength, twoN)
	return 1 - pdh + sv, nil
}
