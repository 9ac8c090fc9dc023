package solution

import "fmt"

// MembraneType is the kind of a water treatment membrane.
type MembraneType string

const (
	MembraneAEM  MembraneType = "aem"  // anion exchange
	MembraneCEM  MembraneType = "cem"  // cation exchange
	MembraneBPEM MembraneType = "bpem" // bipolar
	MembraneMF   MembraneType = "mf"   // microfiltration
	MembraneUF   MembraneType = "uf"   // ultrafiltration
	MembraneRO   MembraneType = "ro"   // reverse osmosis
	MembraneFO   MembraneType = "fo"   // forward osmosis
)

func (t MembraneType) valid() bool {
	switch t {
	case MembraneAEM, MembraneCEM, MembraneBPEM, MembraneMF, MembraneUF, MembraneRO, MembraneFO:
		return true
	}
	return false
}

// Membrane describes a membrane used in water treatment.
type Membrane struct {
	Name               string
	Type               MembraneType
	Permselectivity    float64 // -, between 0 and 1
	AreaResistance     float64 // ohm m2
	UnitCost           float64 // $/m2
	Thickness          float64 // m
	FixedChargeDensity float64 // eq/m3, magnitude
}

// Validate reports whether the descriptor holds a known type and physical values.
func (m *Membrane) Validate() error {
	if !m.Type.valid() {
		return fmt.Errorf("%w: unknown type %q", ErrInvalidMembrane, m.Type)
	}
	if m.Permselectivity < 0 || m.Permselectivity > 1 {
		return fmt.Errorf("%w: permselectivity %g outside [0, 1]", ErrInvalidMembrane, m.Permselectivity)
	}
	if m.AreaResistance < 0 || m.UnitCost < 0 || m.Thickness < 0 || m.FixedChargeDensity < 0 {
		return fmt.Errorf("%w: negative property", ErrInvalidMembrane)
	}
	return nil
}

// FixedCharge returns the signed fixed charge concentration in mol/L per
// unit charge: positive for anion exchange membranes, negative for cation
// exchange membranes and zero otherwise.
func (m *Membrane) FixedCharge() float64 {
	// eq/m3 to eq/L
	x := m.FixedChargeDensity / 1000
	switch m.Type {
	case MembraneAEM:
		return x
	case MembraneCEM:
		return -x
	default:
		return 0
	}
}

// Equilibrate returns the solution inside the membrane when it is in
// Donnan equilibrium with s.
func (m *Membrane) Equilibrate(s *Solution) (*Solution, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return DonnanEquilibrium(s, m.FixedCharge(), "mol/L")
}

func (m *Membrane) String() string {
	return fmt.Sprintf("%s -- Type: %s  Permselectivity: %.3f Resistance: %g ohm-m2  Cost: %g $/m2",
		m.Name, m.Type, m.Permselectivity, m.AreaResistance, m.UnitCost)
}
