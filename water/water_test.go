package water

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solution_calc/phys"
)

func TestDensity(t *testing.T) {
	rho, err := Density(25, phys.StandardPressure)
	require.NoError(t, err)
	assert.InDelta(t, 997.04, rho, 0.01)

	_, err = Density(-5, phys.StandardPressure)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = Density(120, phys.StandardPressure)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestSpecificWeight(t *testing.T) {
	w, err := SpecificWeight(25, phys.StandardPressure)
	require.NoError(t, err)
	assert.InDelta(t, 9777.6, w, 1.0)
}

func TestDielectricConstant(t *testing.T) {
	tests := []struct {
		name        string
		temperature float64
		want        float64
	}{
		{"20 degree C", 20, 80.15},
		{"25 degree C", 25, 78.35},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eps, err := DielectricConstant(tt.temperature)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, eps, 0.01)
		})
	}

	_, err := DielectricConstant(-5)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = DielectricConstant(100)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestDebyeParameters(t *testing.T) {
	a, err := DebyeParameterActivity(25)
	require.NoError(t, err)
	assert.InDelta(t, 0.511, a, 0.002)

	aPhi, err := DebyeParameterOsmotic(25)
	require.NoError(t, err)
	assert.InDelta(t, 0.392, aPhi, 0.001)

	_, err = DebyeParameterActivity(150)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestViscosityDynamic(t *testing.T) {
	mu, err := ViscosityDynamic(20, phys.StandardPressure)
	require.NoError(t, err)
	assert.InEpsilon(t, 1.002e-3, mu, 1e-2)

	mu25, err := ViscosityDynamic(25, phys.StandardPressure)
	require.NoError(t, err)
	assert.Less(t, mu25, mu)

	_, err = ViscosityDynamic(25, -1)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = ViscosityDynamic(25, 2e8)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = ViscosityDynamic(-10, phys.StandardPressure)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestViscosityKinematic(t *testing.T) {
	nu, err := ViscosityKinematic(20, phys.StandardPressure)
	require.NoError(t, err)
	assert.InEpsilon(t, 1.004e-6, nu, 1e-2)
}

func TestAdjustTempDiffusion(t *testing.T) {
	d, err := AdjustTempDiffusion(1.334e-9, 25, 25)
	require.NoError(t, err)
	assert.InDelta(t, 1.334e-9, d, 1e-20)

	warm, err := AdjustTempDiffusion(1.334e-9, 40, 25)
	require.NoError(t, err)
	assert.Greater(t, warm, 1.334e-9)
}

func TestSaturationVaporPressure(t *testing.T) {
	p, err := SaturationVaporPressure(25)
	require.NoError(t, err)
	assert.InDelta(t, 3169, p, 5)

	ice, err := SaturationVaporPressure(-10)
	require.NoError(t, err)
	assert.InDelta(t, 260, ice, 5)

	_, err = SaturationVaporPressure(250)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestRelativeHumidity(t *testing.T) {
	assert.InDelta(t, 50.0, RelativeHumidity(1500, 3000), 1e-12)
}
