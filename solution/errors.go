package solution

import "errors"

// Domain errors for solution operations.
var (
	// ErrInvalidUnit indicates an amount unit string that is not recognised.
	ErrInvalidUnit = errors.New("solution: invalid amount unit")

	// ErrInvalidAmount indicates a negative, non-finite or unreachable amount.
	ErrInvalidAmount = errors.New("solution: invalid amount")

	// ErrUnknownSolute indicates a formula that is not part of the solution.
	ErrUnknownSolute = errors.New("solution: unknown solute")

	// ErrDuplicateSolute indicates a formula given twice at construction.
	ErrDuplicateSolute = errors.New("solution: duplicate solute")

	// ErrInvalidSolute indicates a descriptor with an empty formula or a non-positive molar mass.
	ErrInvalidSolute = errors.New("solution: invalid solute")

	// ErrInvalidCharge indicates a charge token that cannot be parsed or lies outside [-7, 7].
	ErrInvalidCharge = errors.New("solution: invalid charge notation")

	// ErrMissingCorrelationParameters indicates the TCPC correlation was
	// requested without a complete parameter set.
	ErrMissingCorrelationParameters = errors.New("solution: missing correlation parameters")

	// ErrMissingParameter indicates a named solute parameter that has not been set.
	ErrMissingParameter = errors.New("solution: missing solute parameter")

	// ErrIncompatibleSolvent indicates two solutions that cannot be mixed.
	ErrIncompatibleSolvent = errors.New("solution: incompatible solvent")

	// ErrNoSalt indicates a solution without both a cation and an anion.
	ErrNoSalt = errors.New("solution: no salt found")

	// ErrNoRoot indicates the bisection search did not bracket or converge on a root.
	ErrNoRoot = errors.New("solution: no root found")

	// ErrInvalidMembrane indicates a membrane descriptor with an unknown type or bad values.
	ErrInvalidMembrane = errors.New("solution: invalid membrane")
)
