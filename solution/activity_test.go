package solution

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solution_calc/water"
)

func TestSelectRegime(t *testing.T) {
	const eps = 1e-9
	tests := []struct {
		name      string
		ionic     float64
		hasParams bool
		want      Regime
	}{
		{"pure water", 0, false, RegimeLimitingLaw},
		{"limiting law upper bound", 0.005, false, RegimeLimitingLaw},
		{"just above limiting law", 0.005 + eps, false, RegimeGuntelberg},
		{"guntelberg upper bound", 0.1, false, RegimeGuntelberg},
		{"just above guntelberg", 0.1 + eps, false, RegimeDavies},
		{"davies upper bound", 0.5, true, RegimeDavies},
		{"just above davies with params", 0.5 + eps, true, RegimeConcentrated},
		{"just above davies without params", 0.5 + eps, false, RegimeIdealFallback},
		{"params ignored when dilute", 0.001, true, RegimeLimitingLaw},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SelectRegime(tt.ionic, tt.hasParams))
		})
	}
}

func TestRegimeString(t *testing.T) {
	assert.Equal(t, "limiting_law", RegimeLimitingLaw.String())
	assert.Equal(t, "guntelberg", RegimeGuntelberg.String())
	assert.Equal(t, "davies", RegimeDavies.String())
	assert.Equal(t, "tcpc", RegimeConcentrated.String())
	assert.Equal(t, "ideal", RegimeIdealFallback.String())
	assert.Equal(t, "regime(9)", Regime(9).String())
}

func TestDebyeHuckelFamily(t *testing.T) {
	a, err := water.DebyeParameterActivity(25)
	require.NoError(t, err)

	t.Run("limiting law", func(t *testing.T) {
		got, err := ActivityCoefficientDebyeHuckel(0.003, -2, 25)
		require.NoError(t, err)
		assert.InDelta(t, math.Pow(10, -a*4*math.Sqrt(0.003)), got, 1e-12)
	})

	t.Run("guntelberg", func(t *testing.T) {
		got, err := ActivityCoefficientGuntelberg(0.05, 1, 25)
		require.NoError(t, err)
		sqrtI := math.Sqrt(0.05)
		assert.InDelta(t, math.Pow(10, -a*sqrtI/(1+sqrtI)), got, 1e-12)
	})

	t.Run("davies", func(t *testing.T) {
		got, err := ActivityCoefficientDavies(0.1, 1, 25)
		require.NoError(t, err)
		assert.InDelta(t, 0.771, got, 2e-3)
	})

	t.Run("neutral species are ideal", func(t *testing.T) {
		got, err := ActivityCoefficientDavies(0.3, 0, 25)
		require.NoError(t, err)
		assert.Equal(t, 1.0, got)
	})

	t.Run("higher charge lowers gamma", func(t *testing.T) {
		g1, _ := ActivityCoefficientGuntelberg(0.05, 1, 25)
		g2, _ := ActivityCoefficientGuntelberg(0.05, 2, 25)
		assert.Less(t, g2, g1)
		assert.Less(t, g1, 1.0)
	})

	t.Run("out of range temperature", func(t *testing.T) {
		_, err := ActivityCoefficientDebyeHuckel(0.001, 1, 150)
		assert.ErrorIs(t, err, water.ErrOutOfRange)
	})
}

func TestTCPC(t *testing.T) {
	pdhOnly := NewTCPCParams(0, 1, 0.5)

	t.Run("missing parameters", func(t *testing.T) {
		_, err := ActivityCoefficientTCPC(1, nil, 25)
		assert.ErrorIs(t, err, ErrMissingCorrelationParameters)
		_, err = OsmoticCoefficientTCPC(1, nil, 25)
		assert.ErrorIs(t, err, ErrMissingCorrelationParameters)

		incomplete := &TCPCParams{S: 10}
		_, err = ActivityCoefficientTCPC(1, incomplete, 25)
		assert.ErrorIs(t, err, ErrMissingCorrelationParameters)
	})

	t.Run("activity coefficient", func(t *testing.T) {
		// PDH = -A_phi (1/2 + 2 ln 2) at I = 1, b = 1
		got, err := ActivityCoefficientTCPC(1, &pdhOnly, 25)
		require.NoError(t, err)
		assert.InDelta(t, 0.4777, got, 3e-3)
	})

	t.Run("solvation term raises gamma", func(t *testing.T) {
		withS := NewTCPCParams(50, 1, 0.5)
		base, _ := ActivityCoefficientTCPC(1, &pdhOnly, 25)
		got, err := ActivityCoefficientTCPC(1, &withS, 25)
		require.NoError(t, err)
		assert.InDelta(t, base*math.Exp(50/298.15/2), got, 1e-9)
	})

	t.Run("osmotic coefficient", func(t *testing.T) {
		got, err := OsmoticCoefficientTCPC(1, &pdhOnly, 25)
		require.NoError(t, err)
		assert.InDelta(t, 1.1959, got, 2e-3)

		withS := NewTCPCParams(50, 1, 0.5)
		got2, err := OsmoticCoefficientTCPC(1, &withS, 25)
		require.NoError(t, err)
		assert.InDelta(t, got+50/(298.15*2)*0.5, got2, 1e-9)
	})

	t.Run("dilute limit", func(t *testing.T) {
		got, err := ActivityCoefficientTCPC(1e-12, &pdhOnly, 25)
		require.NoError(t, err)
		assert.InDelta(t, 1.0, got, 1e-4)

		phi, err := OsmoticCoefficientTCPC(1e-12, &pdhOnly, 25)
		require.NoError(t, err)
		assert.InDelta(t, 1.0, phi, 1e-4)
	})
}
