package phys

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrNoPKa is returned when a distribution coefficient is requested without pKa values.
	ErrNoPKa = errors.New("phys: no pKa values given")

	// ErrInsufficientPKa is returned when n exceeds the number of pKa values.
	ErrInsufficientPKa = errors.New("phys: insufficient number of pKa values")
)

// P returns the negative log10 of x, e.g. pH from [H+].
func P(x float64) float64 {
	return -1 * math.Log10(x)
}

/*
Acid-base distribution coefficient (alpha) of an acid in the n-deprotonated form.

	Args:
		n: number of protons lost by the form of interest (1 for HCO3- from H2CO3)
		pH: solution pH
		pKa: pKa values of the acid, ascending dissociation order
	Returns:
		fraction of the total acid present in the n-deprotonated form, -
	Notes:
		alpha_n = term_n / sum(term_k), term_k = Ka1...Kak [H+]^(N-k)
		Stumm and Morgan, Aquatic Chemistry 3rd ed, pp 127-130.
*/
func Alpha(n int, pH float64, pKa []float64) (float64, error) {
	if len(pKa) == 0 {
		return 0, ErrNoPKa
	}
	if n < 0 || n > len(pKa) {
		return 0, fmt.Errorf("%w: n=%d with %d pKa values", ErrInsufficientPKa, n, len(pKa))
	}

	hplus := math.Pow(10, -pH)
	numProtons := len(pKa)

	terms := make([]float64, numProtons+1)
	kTerm := 1.0
	for k := 0; k <= numProtons; k++ {
		if k > 0 {
			kTerm *= math.Pow(10, -pKa[k-1])
		}
		terms[k] = kTerm * math.Pow(hplus, float64(numProtons-k))
	}

	var denominator float64
	for _, t := range terms {
		denominator += t
	}

	return terms[n] / denominator, nil
}
