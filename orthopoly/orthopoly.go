// Package orthopoly computes three-term recurrence coefficients of
// orthogonal polynomial families in monic normalization.
//
// A family orthogonal with respect to a weight w on [-1, 1] satisfies
//
//	p_{k+1}(x) = (x - alpha_k) p_k(x) - beta_k p_{k-1}(x)
//
// with beta_0 set to the total mass of the weight. The coefficients are
// everything downstream consumers need: they define the symmetric
// tridiagonal (Jacobi) matrix whose spectrum yields Gauss quadrature
// nodes and weights, and they are the input of the Kronrod extension.
package orthopoly

import (
	"fmt"
	"math"
)

// Coefficients holds the monic recurrence coefficients alpha[0..L-1],
// beta[0..L-1] of an orthogonal polynomial family. Immutable once
// produced.
type Coefficients struct {
	Alpha []float64
	Beta  []float64
}

// Len returns the number of recurrence coefficients.
func (c Coefficients) Len() int {
	return len(c.Alpha)
}

// Truncate returns the first count coefficients, sharing the backing
// arrays.
func (c Coefficients) Truncate(count int) Coefficients {
	return Coefficients{Alpha: c.Alpha[:count], Beta: c.Beta[:count]}
}

// Jacobi returns the first count monic recurrence coefficients of the
// Jacobi polynomials with weight (1-x)^a (1+x)^b on [-1, 1].
// The exponents a and b must be greater than -1 for the weight to be
// integrable.
func Jacobi(count int, a, b float64) (Coefficients, error) {

	if count < 1 {
		return Coefficients{}, fmt.Errorf("cannot Jacobi: count=%d < 1", count)
	}

	if a <= -1 || b <= -1 {
		return Coefficients{}, fmt.Errorf("cannot Jacobi: exponents (%f, %f) must be > -1", a, b)
	}

	alpha := make([]float64, count)
	beta := make([]float64, count)

	alpha[0] = (b - a) / (a + b + 2)
	beta[0] = math.Pow(2, a+b+1) * math.Gamma(a+1) * math.Gamma(b+1) / math.Gamma(a+b+2)

	for k := 1; k < count; k++ {
		fk := float64(k)
		q := 2*fk + a + b
		alpha[k] = (b*b - a*a) / (q * (q + 2))
		if k == 1 {
			// The general beta formula is 0/0 at k=1 when a+b = -1.
			beta[1] = 4 * (a + 1) * (b + 1) / ((a + b + 2) * (a + b + 2) * (a + b + 3))
		} else {
			beta[k] = 4 * fk * (fk + a) * (fk + b) * (fk + a + b) / (q * q * (q + 1) * (q - 1))
		}
	}

	return Coefficients{Alpha: alpha, Beta: beta}, nil
}

// Legendre returns the first count monic recurrence coefficients of the
// Legendre polynomials (unit weight on [-1, 1]): alpha_k = 0,
// beta_0 = 2 and beta_k = k^2/(4k^2-1).
func Legendre(count int) (Coefficients, error) {

	if count < 1 {
		return Coefficients{}, fmt.Errorf("cannot Legendre: count=%d < 1", count)
	}

	alpha := make([]float64, count)
	beta := make([]float64, count)

	beta[0] = 2
	for k := 1; k < count; k++ {
		fk := float64(k)
		beta[k] = fk * fk / (4*fk*fk - 1)
	}

	return Coefficients{Alpha: alpha, Beta: beta}, nil
}
