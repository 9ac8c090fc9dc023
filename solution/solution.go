// Package solution models the composition of an aqueous solution and derives
// its non-ideal properties: ionic strength, activity and osmotic
// coefficients, species activities, and the thermodynamics of mixing.
package solution

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"strings"

	"gonum.org/v1/gonum/floats"

	"solution_calc/phys"
)

// molar mass of water, g/mol
const waterMolarMass = 18.01528

// default bulk density, kg/m3
const defaultDensity = 1000.0

// Descriptor describes one component of a Solution at construction.
type Descriptor struct {
	Formula    string
	MolarMass  float64 // g/mol
	Amount     float64
	Unit       string
	TCPC       *TCPCParams
	Parameters map[string]float64
}

// DefaultSolvent returns 1 kg of water.
func DefaultSolvent() Descriptor {
	return Descriptor{Formula: "H2O", MolarMass: waterMolarMass, Amount: 1, Unit: "kg"}
}

// Option configures a Solution at construction.
type Option func(*Solution)

// WithSink routes diagnostics events to sink.
func WithSink(sink Sink) Option {
	return func(s *Solution) {
		if sink != nil {
			s.sink = sink
		}
	}
}

// WithTemperature sets the solution temperature in degC.
func WithTemperature(temperature float64) Option {
	return func(s *Solution) { s.temperature = temperature }
}

// WithPressure sets the solution pressure in Pa.
func WithPressure(pressure float64) Option {
	return func(s *Solution) { s.pressure = pressure }
}

// WithDensity sets the declared bulk density in kg/m3.
func WithDensity(density float64) Option {
	return func(s *Solution) { s.density = density }
}

// Solution is a solvent plus a set of dissolved species at a bulk
// temperature, pressure and density.
//
// The volume is computed once at construction from the total mass and the
// declared density and is then cached. Changing amounts with SetAmount does
// not update it; call RecomputeVolume explicitly.
//
// A Solution is not safe for concurrent use. Callers must serialize calls
// that mutate amounts.
type Solution struct {
	solutes     map[string]*Solute
	order       []string
	solvent     string
	density     float64 // kg/m3
	temperature float64 // degree C
	pressure    float64 // Pa
	volume      float64 // L
	sink        Sink
}

/*
New builds a Solution from a solvent descriptor and an ordered list of solute
descriptors.

Components are added in a fixed order: the solvent first, then every solute
given in a mole, mass or molal unit. The volume is then computed and frozen,
and the remaining solutes (volumetric and fraction units) are converted
against it in descriptor order. An empty solvent unit means kg.
*/
func New(solvent Descriptor, solutes []Descriptor, opts ...Option) (*Solution, error) {
	s := &Solution{
		solutes:     make(map[string]*Solute, len(solutes)+1),
		density:     defaultDensity,
		temperature: phys.StandardTemperature,
		pressure:    phys.StandardPressure,
		sink:        NopSink,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.density <= 0 {
		return nil, fmt.Errorf("%w: density must be positive, got %g kg/m3", ErrInvalidAmount, s.density)
	}

	if solvent.Unit == "" {
		solvent.Unit = "kg"
	}
	u, err := lookupUnit(solvent.Unit)
	if err != nil {
		return nil, fmt.Errorf("solvent %s: %w", solvent.Formula, err)
	}
	if u.class != classMoles && u.class != classMass {
		return nil, fmt.Errorf("solvent %s: %w: amount must be given in a mole or mass unit", solvent.Formula, ErrInvalidUnit)
	}
	if err := s.insert(solvent); err != nil {
		return nil, err
	}
	s.solvent = solvent.Formula
	if err := s.SetAmount(solvent.Formula, solvent.Amount, solvent.Unit); err != nil {
		return nil, err
	}
	if s.SolventMoles() <= 0 {
		return nil, fmt.Errorf("solvent %s: %w: amount must be positive", solvent.Formula, ErrInvalidAmount)
	}

	var deferred []Descriptor
	for _, d := range solutes {
		if err := s.insert(d); err != nil {
			return nil, err
		}
		u, err := lookupUnit(d.Unit)
		if err != nil {
			return nil, fmt.Errorf("solute %s: %w", d.Formula, err)
		}
		if !u.intrinsic() {
			deferred = append(deferred, d)
			continue
		}
		if err := s.SetAmount(d.Formula, d.Amount, d.Unit); err != nil {
			return nil, err
		}
	}

	s.RecomputeVolume()

	for _, d := range deferred {
		if err := s.SetAmount(d.Formula, d.Amount, d.Unit); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *Solution) insert(d Descriptor) error {
	if d.Formula == "" || d.MolarMass <= 0 {
		return fmt.Errorf("%w: formula %q, molar mass %g", ErrInvalidSolute, d.Formula, d.MolarMass)
	}
	if _, ok := s.solutes[d.Formula]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateSolute, d.Formula)
	}

	charge, err := ParseCharge(d.Formula)
	if err != nil {
		s.sink.Emit(Event{
			Kind:    EventInvalidCharge,
			Level:   slog.LevelWarn,
			Solute:  d.Formula,
			Message: "charge could not be parsed, treating species as neutral",
			Err:     err,
		})
	}

	solute := &Solute{
		formula:    d.Formula,
		molarMass:  d.MolarMass,
		charge:     charge,
		parameters: maps.Clone(d.Parameters),
	}
	if d.TCPC != nil {
		if err := solute.SetTCPC(*d.TCPC); err != nil {
			return err
		}
	}

	s.solutes[d.Formula] = solute
	s.order = append(s.order, d.Formula)
	return nil
}

func (s *Solution) lookup(formula string) (*Solute, error) {
	solute, ok := s.solutes[formula]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSolute, formula)
	}
	return solute, nil
}

// Solute returns the species stored under formula.
func (s *Solution) Solute(formula string) (*Solute, bool) {
	solute, ok := s.solutes[formula]
	return solute, ok
}

// ListSolutes returns every formula, solvent included, in insertion order.
func (s *Solution) ListSolutes() []string {
	return slices.Clone(s.order)
}

// Solvent returns the formula of the solvent.
func (s *Solution) Solvent() string { return s.solvent }

// Temperature returns the temperature in degC.
func (s *Solution) Temperature() float64 { return s.temperature }

// Pressure returns the pressure in Pa.
func (s *Solution) Pressure() float64 { return s.pressure }

// Density returns the declared density in kg/m3.
func (s *Solution) Density() float64 { return s.density }

// Volume returns the cached volume in L.
func (s *Solution) Volume() float64 { return s.volume }

// RecomputeVolume refreshes the cached volume from the current total mass
// and density.
func (s *Solution) RecomputeVolume() {
	s.volume = s.Mass() / s.density * 1000
	s.sink.Emit(Event{
		Kind:    EventVolume,
		Level:   slog.LevelDebug,
		Message: fmt.Sprintf("volume set to %g L", s.volume),
	})
}

// Mass returns the total mass of the solution in kg.
func (s *Solution) Mass() float64 {
	masses := make([]float64, 0, len(s.order))
	for _, f := range s.order {
		solute := s.solutes[f]
		masses = append(masses, solute.moles*solute.molarMass)
	}
	return floats.Sum(masses) / 1000
}

// SolventMass returns the mass of the solvent in kg.
func (s *Solution) SolventMass() float64 {
	w := s.solutes[s.solvent]
	return w.moles * w.molarMass / 1000
}

// SolventMoles returns the amount of solvent in mol.
func (s *Solution) SolventMoles() float64 {
	return s.solutes[s.solvent].moles
}

// TotalSoluteMoles returns the amount of every species except the solvent, in mol.
func (s *Solution) TotalSoluteMoles() float64 {
	moles := make([]float64, 0, len(s.order))
	for _, f := range s.order {
		if f != s.solvent {
			moles = append(moles, s.solutes[f].moles)
		}
	}
	return floats.Sum(moles)
}

func (s *Solution) totalMoles() float64 {
	return s.TotalSoluteMoles() + s.SolventMoles()
}

// MoleFraction returns the mole fraction of a species.
func (s *Solution) MoleFraction(formula string) (float64, error) {
	return s.Amount(formula, "fraction")
}

// MolarConcentration returns the concentration of a species in mol/L.
func (s *Solution) MolarConcentration(formula string) (float64, error) {
	return s.Amount(formula, "mol/L")
}

// IonicStrength returns 0.5 sum(c_i z_i^2) in mol/L over every species.
// It always reflects the current composition.
func (s *Solution) IonicStrength() float64 {
	terms := make([]float64, 0, len(s.order))
	for _, f := range s.order {
		solute := s.solutes[f]
		z := float64(solute.charge)
		terms = append(terms, solute.moles/s.volume*z*z)
	}
	return 0.5 * floats.Sum(terms)
}

// Copy returns a deep copy sharing no species with s.
func (s *Solution) Copy() *Solution {
	c := *s
	c.order = slices.Clone(s.order)
	c.solutes = make(map[string]*Solute, len(s.solutes))
	for f, solute := range s.solutes {
		c.solutes[f] = solute.clone()
	}
	return &c
}

func (s *Solution) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Solution: %g L at %g degC, %g Pa, %g kg/m3\n", s.volume, s.temperature, s.pressure, s.density)
	for _, f := range s.order {
		solute := s.solutes[f]
		c := solute.moles / s.volume
		fmt.Fprintf(&b, "  %-12s %g mol/L\n", f, c)
	}
	return b.String()
}
