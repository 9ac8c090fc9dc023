package solution

import (
	"fmt"
	"maps"
	"strconv"
	"strings"
)

// largest charge magnitude recognised in formula notation
const maxCharge = 7

/*
ParseCharge derives the valence of a species from the trailing charge token
of its formula.

	Examples:
		"Na+" -> 1, "Cl-" -> -1, "SO4-2" -> -2, "Fe+++" -> 3, "H2O" -> 0
	Returns:
		valence in [-7, 7]; ErrInvalidCharge when a sign token is present but
		cannot be read or is out of range
*/
func ParseCharge(formula string) (int, error) {
	i := strings.LastIndexAny(formula, "+-")
	if i < 0 {
		return 0, nil
	}

	sign := 1
	if formula[i] == '-' {
		sign = -1
	}

	suffix := formula[i+1:]
	if suffix == "" {
		// run of repeated sign characters, e.g. Fe+++
		j := i
		for j > 0 && formula[j-1] == formula[i] {
			j--
		}
		magnitude := i - j + 1
		if magnitude > maxCharge {
			return 0, fmt.Errorf("%w: %q", ErrInvalidCharge, formula)
		}
		return sign * magnitude, nil
	}

	if i > 0 && (formula[i-1] == '+' || formula[i-1] == '-') {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCharge, formula)
	}
	for _, r := range suffix {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("%w: %q", ErrInvalidCharge, formula)
		}
	}
	magnitude, err := strconv.Atoi(suffix)
	if err != nil || magnitude < 1 || magnitude > maxCharge {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCharge, formula)
	}
	return sign * magnitude, nil
}

/*
TCPCParams holds the parameters of the modified three-characteristic-parameter
correlation for one salt.

	S: solvation parameter, K
	B: approach parameter (b), (kg/mol)^0.5
	N: exponent parameter (n), -
	Z, CounterZ: valence of the ion and of its counter-ion, including sign
	Nu, CounterNu: stoichiometric coefficients in the parent salt (ZnCl2: 1 and 2)

	Ge, Wang, Zhang and Seetharaman, J. Chem. Eng. Data 52, 538-547, 2007.
*/
type TCPCParams struct {
	S         float64
	B         float64
	N         float64
	Z         int
	CounterZ  int
	Nu        int
	CounterNu int
}

// NewTCPCParams returns a parameter set for a 1:1 salt, the common case.
func NewTCPCParams(s, b, n float64) TCPCParams {
	return TCPCParams{S: s, B: b, N: n, Z: 1, CounterZ: -1, Nu: 1, CounterNu: 1}
}

// Validate reports whether the set can be evaluated.
func (p TCPCParams) Validate() error {
	if p.B <= 0 {
		return fmt.Errorf("%w: approach parameter b must be positive, got %g", ErrMissingCorrelationParameters, p.B)
	}
	if p.Nu <= 0 || p.CounterNu <= 0 {
		return fmt.Errorf("%w: stoichiometric coefficients must be positive, got %d and %d",
			ErrMissingCorrelationParameters, p.Nu, p.CounterNu)
	}
	return nil
}

// Solute is one chemical species of a Solution. The mole count is the only
// stored quantity; every other amount is derived by the owning Solution.
type Solute struct {
	formula    string
	molarMass  float64 // g/mol
	moles      float64 // mol
	charge     int
	tcpc       *TCPCParams
	parameters map[string]float64
}

func (s *Solute) Formula() string { return s.formula }

// MolarMass returns the molar mass in g/mol.
func (s *Solute) MolarMass() float64 { return s.molarMass }

// Moles returns the amount of the species in mol.
func (s *Solute) Moles() float64 { return s.moles }

// Charge returns the valence, including sign.
func (s *Solute) Charge() int { return s.charge }

// TCPC returns a copy of the correlation parameters and whether they are set.
func (s *Solute) TCPC() (TCPCParams, bool) {
	if s.tcpc == nil {
		return TCPCParams{}, false
	}
	return *s.tcpc, true
}

// SetTCPC replaces the correlation parameters wholesale.
func (s *Solute) SetTCPC(p TCPCParams) error {
	if err := p.Validate(); err != nil {
		return fmt.Errorf("solute %s: %w", s.formula, err)
	}
	s.tcpc = &p
	return nil
}

// Parameter returns a named parameter such as "diffusion_coefficient".
func (s *Solute) Parameter(name string) (float64, bool) {
	v, ok := s.parameters[name]
	return v, ok
}

// SetParameter stores a named parameter, replacing any previous value.
func (s *Solute) SetParameter(name string, value float64) {
	if s.parameters == nil {
		s.parameters = make(map[string]float64)
	}
	s.parameters[name] = value
}

func (s *Solute) clone() *Solute {
	c := *s
	if s.tcpc != nil {
		p := *s.tcpc
		c.tcpc = &p
	}
	c.parameters = maps.Clone(s.parameters)
	return &c
}

func (s *Solute) String() string {
	return fmt.Sprintf("Species %s MW=%g Valence=%d Amount=%g mol", s.formula, s.molarMass, s.charge, s.moles)
}
