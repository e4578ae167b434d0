// Package kronrod extends the recurrence coefficients of an n-point
// Gauss rule to those of its (2n+1)-point Kronrod rule.
//
// The extension follows the algorithm of Laurie, "Calculation of
// Gauss-Kronrod quadrature rules", Math. Comp. 66 (1997) 1133-1145: a
// two-pass recursion over a pair of auxiliary buffers that never forms
// the Jacobi matrix of the extended rule, runs in O(n^2) time and O(n)
// space, and is numerically stabler than solving the defining linear
// system directly.
package kronrod

import (
	"fmt"
	"math"

	"github.com/numkit/quadrature/orthopoly"
)

// InputLen returns the number of Gauss recurrence coefficients the
// extension of order n consumes: ceil(3n/2)+1.
func InputLen(n int) int {
	return (3*n+1)/2 + 1
}

// Extend computes the recurrence coefficients of the (2n+1)-point
// Kronrod extension from the first ceil(3n/2)+1 coefficients of the
// underlying family. The returned coefficients have length 2n+1 and
// agree with the input on their first floor(3n/2)+1 alpha and
// ceil(3n/2)+1 beta entries.
func Extend(n int, c orthopoly.Coefficients) (orthopoly.Coefficients, error) {

	if n < 1 {
		return orthopoly.Coefficients{}, fmt.Errorf("cannot Extend: n=%d < 1", n)
	}

	if c.Len() != InputLen(n) {
		return orthopoly.Coefficients{}, fmt.Errorf("cannot Extend: got %d recurrence coefficients, order %d requires exactly %d", c.Len(), n, InputLen(n))
	}

	a := make([]float64, 2*n+1)
	b := make([]float64, 2*n+1)
	copy(a, c.Alpha[:3*n/2+1])
	copy(b, c.Beta[:(3*n+1)/2+1])

	// Double-buffered auxiliary sequences. The recursion reads one
	// buffer while writing the other; swapping after each m preserves
	// the read-before-write order it depends on.
	s := make([]float64, n/2+2)
	t := make([]float64, n/2+2)
	t[1] = b[n+1]

	// Forward pass.
	for m := 0; m <= n-2; m++ {
		acc := 0.0
		for k := (m + 1) / 2; k >= 0; k-- {
			l := m - k
			acc += (a[k+n+1]-a[l])*t[k+1] + b[k+n+1]*s[k] - b[l]*s[k+1]
			s[k+1] = acc
		}
		s, t = t, s
	}

	// Realign indices for the transition to the backward pass.
	// copy is overlap-safe.
	copy(s[1:n/2+2], s[:n/2+1])

	// Backward pass. Even m yields a new alpha, odd m a new beta.
	for m := n - 1; m <= 2*n-3; m++ {
		acc := 0.0
		j := 0
		for k := m + 1 - n; k <= (m-1)/2; k++ {
			l := m - k
			j = n - 1 - l
			acc += -(a[k+n+1]-a[l])*t[j+1] - b[k+n+1]*s[j+1] + b[l]*s[j+2]
			s[j+1] = acc
		}
		k := (m + 1) / 2
		if m%2 == 0 {
			a[k+n+1] = a[k] + (s[j+1]-b[k+n+1]*s[j+2])/t[j+2]
		} else {
			b[k+n+1] = s[j+1] / s[j+2]
		}
		s, t = t, s
	}

	a[2*n] = a[n-1] - b[2*n]*s[1]/t[1]

	for i := range a {
		if math.IsNaN(a[i]) || math.IsInf(a[i], 0) || math.IsNaN(b[i]) || math.IsInf(b[i], 0) {
			return orthopoly.Coefficients{}, fmt.Errorf("cannot Extend: recursion broke down at index %d (non-finite coefficient)", i)
		}
	}

	return orthopoly.Coefficients{Alpha: a, Beta: b}, nil
}
