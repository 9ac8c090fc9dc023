package solution

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMembraneValidate(t *testing.T) {
	good := Membrane{Name: "AMX", Type: MembraneAEM, Permselectivity: 0.95, AreaResistance: 2.4e-4, UnitCost: 100, Thickness: 1.4e-4, FixedChargeDensity: 2000}
	assert.NoError(t, good.Validate())

	bad := good
	bad.Type = "nf"
	assert.ErrorIs(t, bad.Validate(), ErrInvalidMembrane)

	bad = good
	bad.Permselectivity = 1.2
	assert.ErrorIs(t, bad.Validate(), ErrInvalidMembrane)

	bad = good
	bad.Thickness = -1
	assert.ErrorIs(t, bad.Validate(), ErrInvalidMembrane)
}

func TestMembraneFixedCharge(t *testing.T) {
	tests := []struct {
		typ  MembraneType
		want float64
	}{
		{MembraneAEM, 2},
		{MembraneCEM, -2},
		{MembraneBPEM, 0},
		{MembraneRO, 0},
	}
	for _, tt := range tests {
		t.Run(string(tt.typ), func(t *testing.T) {
			m := Membrane{Type: tt.typ, FixedChargeDensity: 2000}
			assert.Equal(t, tt.want, m.FixedCharge())
		})
	}
}

func TestMembraneEquilibrate(t *testing.T) {
	feed := newDonnanFeed(t, 0.01)

	aem := &Membrane{Name: "test", Type: MembraneAEM, FixedChargeDensity: 50}
	mem, err := aem.Equilibrate(feed)
	require.NoError(t, err)

	na, _ := mem.Amount("Na+", "mol/L")
	cl, _ := mem.Amount("Cl-", "mol/L")
	assert.InDelta(t, 0.05, cl-na, 1e-9)

	ro := &Membrane{Type: MembraneRO}
	same, err := ro.Equilibrate(feed)
	require.NoError(t, err)
	got, _ := same.Amount("Na+", "mol/L")
	assert.InDelta(t, 0.01, got, 1e-12)

	_, err = (&Membrane{Type: "xx"}).Equilibrate(feed)
	assert.ErrorIs(t, err, ErrInvalidMembrane)
}

func TestMembraneString(t *testing.T) {
	m := &Membrane{Name: "AMX", Type: MembraneAEM, Permselectivity: 0.95, AreaResistance: 2.4e-4, UnitCost: 100}
	assert.Equal(t, "AMX -- Type: aem  Permselectivity: 0.950 Resistance: 0.00024 ohm-m2  Cost: 100 $/m2", m.String())
}
