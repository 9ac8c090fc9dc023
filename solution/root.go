package solution

import "fmt"

// findRoot locates a root of f inside [a, b] by bisection. f(a) and f(b)
// must have opposite signs.
func findRoot(f func(float64) float64, a, b, tol float64, maxIter int) (float64, error) {
	fa := f(a)
	if fa*f(b) >= 0 {
		return 0, fmt.Errorf("%w: interval [%g, %g] does not bracket a root", ErrNoRoot, a, b)
	}

	var c float64
	for i := 0; i < maxIter; i++ {
		c = (a + b) / 2
		fc := f(c)

		if fc == 0 || (b-a)/2 < tol {
			return c, nil
		}

		if fc*fa < 0 {
			b = c
		} else {
			a, fa = c, fc
		}
	}
	return 0, fmt.Errorf("%w: no convergence within %d iterations", ErrNoRoot, maxIter)
}
