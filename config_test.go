package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solution_calc/solution"
)

func TestLoadSolutionConfig(t *testing.T) {
	cfg, err := LoadSolutionConfig(filepath.Join("testdata", "seawater.yaml"))
	require.NoError(t, err)

	require.NotNil(t, cfg.Temperature)
	assert.Equal(t, 25.0, *cfg.Temperature)
	require.NotNil(t, cfg.Density)
	assert.Equal(t, 1025.0, *cfg.Density)
	require.NotNil(t, cfg.Solvent)
	assert.Equal(t, "H2O", cfg.Solvent.Formula)

	formulas := make([]string, 0, len(cfg.Solutes))
	for _, sc := range cfg.Solutes {
		formulas = append(formulas, sc.Formula)
	}
	assert.Equal(t, []string{"Na+", "Cl-", "Mg+2", "SO4-2", "Ca+2", "K+"}, formulas)
	assert.Equal(t, "mg/L", cfg.Solutes[4].Unit)
	assert.Equal(t, 412.0, cfg.Solutes[4].Amount)
}

func TestBuild(t *testing.T) {
	cfg, err := LoadSolutionConfig(filepath.Join("testdata", "seawater.yaml"))
	require.NoError(t, err)

	s, err := cfg.Build()
	require.NoError(t, err)

	assert.Equal(t, 1025.0, s.Density())
	na, ok := s.Solute("Na+")
	require.True(t, ok)
	d, ok := na.Parameter("diffusion_coefficient")
	require.True(t, ok)
	assert.Equal(t, 1.334e-9, d)

	mg, err := s.Amount("Mg+2", "g/L")
	require.NoError(t, err)
	assert.InDelta(t, 1.28, mg, 1e-9)

	molality, err := s.Amount("Cl-", "mol/kg")
	require.NoError(t, err)
	assert.InDelta(t, 0.546, molality, 1e-9)
}

func TestDecodeParameters(t *testing.T) {
	t.Run("tcpc with defaults", func(t *testing.T) {
		tcpc, named, err := decodeParameters(map[string]any{
			"S": 10, "b": 1.8, "n": 0.5, "diffusion_coefficient": 1.3e-9,
		})
		require.NoError(t, err)
		require.NotNil(t, tcpc)
		assert.Equal(t, solution.TCPCParams{S: 10, B: 1.8, N: 0.5, Z: 1, CounterZ: -1, Nu: 1, CounterNu: 1}, *tcpc)
		assert.Equal(t, map[string]float64{"diffusion_coefficient": 1.3e-9}, named)
	})

	t.Run("explicit stoichiometry", func(t *testing.T) {
		tcpc, named, err := decodeParameters(map[string]any{
			"S": 5.0, "b": 2.0, "n": 0.4, "z": 2, "counter_z": -1, "nu": 1, "counter_nu": 2,
		})
		require.NoError(t, err)
		assert.Nil(t, named)
		assert.Equal(t, 2, tcpc.Z)
		assert.Equal(t, 2, tcpc.CounterNu)
	})

	t.Run("incomplete tcpc", func(t *testing.T) {
		_, _, err := decodeParameters(map[string]any{"S": 5.0, "b": 2.0})
		assert.ErrorIs(t, err, solution.ErrMissingCorrelationParameters)
	})

	t.Run("non numeric parameter", func(t *testing.T) {
		_, _, err := decodeParameters(map[string]any{"radius": "big"})
		assert.Error(t, err)
	})

	t.Run("only named parameters", func(t *testing.T) {
		tcpc, named, err := decodeParameters(map[string]any{"partial_molar_volume": -1.21e-6})
		require.NoError(t, err)
		assert.Nil(t, tcpc)
		assert.Len(t, named, 1)
	})
}

func TestLoadSolutionConfigErrors(t *testing.T) {
	_, err := LoadSolutionConfig(filepath.Join("testdata", "missing.yaml"))
	assert.Error(t, err)

	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("solutes: [unterminated"), 0o644))
	_, err = LoadSolutionConfig(bad)
	assert.Error(t, err)

	noCSV := filepath.Join(dir, "nocsv.yaml")
	require.NoError(t, os.WriteFile(noCSV, []byte("solutes_csv: nowhere.csv\n"), 0o644))
	_, err = LoadSolutionConfig(noCSV)
	assert.Error(t, err)
}
