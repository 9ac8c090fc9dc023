package water

import (
	"math"

	"solution_calc/phys"
)

// valid range of the saturation vapour pressure correlation, degree C
const (
	vaporMinTemp = -100.0
	vaporMaxTemp = 200.0
)

/*
飽和水蒸気圧を計算する。

	Args:
		temperature: degree C
	Returns:
		saturation vapour pressure of pure water (over ice below 0 degree C), Pa
	Notes:
		Wexler-Hyland type correlation as used in the Japanese energy
		conservation standard, chapter 11 section 5 "moist air".
*/
func SaturationVaporPressure(temperature float64) (float64, error) {
	if temperature < vaporMinTemp || temperature > vaporMaxTemp {
		return 0, outOfRange("temperature", temperature, "degree C")
	}

	// 絶対温度
	t := phys.Kelvin(temperature)

	const a1 = -6096.9385
	const a2 = 21.2409642
	const a3 = -0.02711193
	const a4 = 0.00001673952
	const a5 = 2.433502
	const b1 = -6024.5282
	const b2 = 29.32707
	const b3 = 0.010613863
	const b4 = -0.000013198825
	const b5 = -0.49382577

	if temperature >= 0.0 {
		return math.Exp(a1/t + a2 + a3*t + a4*t*t + a5*math.Log(t)), nil
	}
	return math.Exp(b1/t + b2 + b3*t + b4*t*t + b5*math.Log(t)), nil
}

/*
相対湿度を計算する。

	Args:
		pV: vapour pressure, Pa
		pVs: saturation vapour pressure, Pa
	Returns:
		relative humidity, %
*/
func RelativeHumidity(pV, pVs float64) float64 {
	return pV / pVs * 100.0
}
