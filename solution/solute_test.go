package solution

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCharge(t *testing.T) {
	tests := []struct {
		formula string
		want    int
	}{
		{"Na+", 1},
		{"Cl-", -1},
		{"SO4-2", -2},
		{"Ca+2", 2},
		{"Fe+++", 3},
		{"PO4---", -3},
		{"H2O", 0},
		{"NaCl", 0},
		{"La+7", 7},
	}
	for _, tt := range tests {
		t.Run(tt.formula, func(t *testing.T) {
			got, err := ParseCharge(tt.formula)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	for _, formula := range []string{"X+8", "Na++2", "C2H5-OH", "Na+0", "Fe++++++++", "Cl-1.5"} {
		t.Run("invalid "+formula, func(t *testing.T) {
			_, err := ParseCharge(formula)
			assert.ErrorIs(t, err, ErrInvalidCharge)
		})
	}
}

func TestTCPCParams(t *testing.T) {
	t.Run("validate", func(t *testing.T) {
		assert.NoError(t, NewTCPCParams(10, 1.5, 0.5).Validate())

		bad := NewTCPCParams(10, 0, 0.5)
		assert.ErrorIs(t, bad.Validate(), ErrMissingCorrelationParameters)

		bad = NewTCPCParams(10, 1.5, 0.5)
		bad.CounterNu = 0
		assert.ErrorIs(t, bad.Validate(), ErrMissingCorrelationParameters)
	})

	t.Run("stored value is a copy", func(t *testing.T) {
		s := &Solute{formula: "Na+"}
		_, ok := s.TCPC()
		assert.False(t, ok)

		p := NewTCPCParams(10, 1.5, 0.5)
		require.NoError(t, s.SetTCPC(p))
		p.S = 99

		got, ok := s.TCPC()
		require.True(t, ok)
		assert.Equal(t, 10.0, got.S)

		got.B = 42
		again, _ := s.TCPC()
		assert.Equal(t, 1.5, again.B)
	})

	t.Run("set replaces wholesale", func(t *testing.T) {
		s := &Solute{formula: "Na+"}
		require.NoError(t, s.SetTCPC(NewTCPCParams(10, 1.5, 0.5)))
		require.NoError(t, s.SetTCPC(TCPCParams{S: 1, B: 2, N: 3, Z: 2, CounterZ: -1, Nu: 1, CounterNu: 2}))

		got, _ := s.TCPC()
		assert.Equal(t, TCPCParams{S: 1, B: 2, N: 3, Z: 2, CounterZ: -1, Nu: 1, CounterNu: 2}, got)
	})

	t.Run("invalid set keeps previous", func(t *testing.T) {
		s := &Solute{formula: "Na+"}
		require.NoError(t, s.SetTCPC(NewTCPCParams(10, 1.5, 0.5)))
		assert.Error(t, s.SetTCPC(NewTCPCParams(10, -1, 0.5)))

		got, _ := s.TCPC()
		assert.Equal(t, 1.5, got.B)
	})
}

func TestSoluteClone(t *testing.T) {
	s := &Solute{formula: "Na+", molarMass: sodiumMass, moles: 1, charge: 1}
	s.SetParameter("diffusion_coefficient", 1.334e-9)
	require.NoError(t, s.SetTCPC(NewTCPCParams(10, 1.5, 0.5)))

	c := s.clone()
	c.moles = 2
	c.SetParameter("diffusion_coefficient", 0)
	require.NoError(t, c.SetTCPC(NewTCPCParams(1, 1, 1)))

	assert.Equal(t, 1.0, s.Moles())
	d, _ := s.Parameter("diffusion_coefficient")
	assert.Equal(t, 1.334e-9, d)
	p, _ := s.TCPC()
	assert.Equal(t, 10.0, p.S)
}
