package kronrod

import (
	"fmt"
	"math/big"

	"github.com/numkit/quadrature/bignum"
	"github.com/numkit/quadrature/orthopoly"
)

// ExtendBig is the arbitrary-precision twin of Extend, running the
// Laurie recursion over *big.Float at prec bits. The layout of the
// recursion is identical to the float64 version; only the arithmetic
// changes.
func ExtendBig(n int, c orthopoly.BigCoefficients, prec uint) (orthopoly.BigCoefficients, error) {

	if n < 1 {
		return orthopoly.BigCoefficients{}, fmt.Errorf("cannot ExtendBig: n=%d < 1", n)
	}

	if c.Len() != InputLen(n) {
		return orthopoly.BigCoefficients{}, fmt.Errorf("cannot ExtendBig: got %d recurrence coefficients, order %d requires exactly %d", c.Len(), n, InputLen(n))
	}

	a := make([]*big.Float, 2*n+1)
	b := make([]*big.Float, 2*n+1)
	for i := range a {
		a[i] = bignum.NewFloat(0, prec)
		b[i] = bignum.NewFloat(0, prec)
	}
	for i := 0; i < 3*n/2+1; i++ {
		a[i].Set(c.Alpha[i])
	}
	for i := 0; i < (3*n+1)/2+1; i++ {
		b[i].Set(c.Beta[i])
	}

	s := make([]*big.Float, n/2+2)
	t := make([]*big.Float, n/2+2)
	for i := range s {
		s[i] = bignum.NewFloat(0, prec)
		t[i] = bignum.NewFloat(0, prec)
	}
	t[1].Set(b[n+1])

	acc := bignum.NewFloat(0, prec)
	u := bignum.NewFloat(0, prec)
	v := bignum.NewFloat(0, prec)

	// Forward pass.
	for m := 0; m <= n-2; m++ {
		acc.SetInt64(0)
		for k := (m + 1) / 2; k >= 0; k-- {
			l := m - k
			// acc += (a[k+n+1]-a[l])*t[k+1] + b[k+n+1]*s[k] - b[l]*s[k+1]
			u.Sub(a[k+n+1], a[l])
			u.Mul(u, t[k+1])
			acc.Add(acc, u)
			u.Mul(b[k+n+1], s[k])
			acc.Add(acc, u)
			u.Mul(b[l], s[k+1])
			acc.Sub(acc, u)
			s[k+1].Set(acc)
		}
		s, t = t, s
	}

	for i := n/2 + 1; i >= 1; i-- {
		s[i].Set(s[i-1])
	}

	// Backward pass.
	for m := n - 1; m <= 2*n-3; m++ {
		acc.SetInt64(0)
		j := 0
		for k := m + 1 - n; k <= (m-1)/2; k++ {
			l := m - k
			j = n - 1 - l
			// acc += -(a[k+n+1]-a[l])*t[j+1] - b[k+n+1]*s[j+1] + b[l]*s[j+2]
			u.Sub(a[k+n+1], a[l])
			u.Mul(u, t[j+1])
			acc.Sub(acc, u)
			u.Mul(b[k+n+1], s[j+1])
			acc.Sub(acc, u)
			u.Mul(b[l], s[j+2])
			acc.Add(acc, u)
			s[j+1].Set(acc)
		}
		k := (m + 1) / 2
		if m%2 == 0 {
			// a[k+n+1] = a[k] + (s[j+1] - b[k+n+1]*s[j+2]) / t[j+2]
			if t[j+2].Sign() == 0 {
				return orthopoly.BigCoefficients{}, fmt.Errorf("cannot ExtendBig: recursion broke down at m=%d (zero divisor)", m)
			}
			u.Mul(b[k+n+1], s[j+2])
			u.Sub(s[j+1], u)
			u.Quo(u, t[j+2])
			a[k+n+1].Add(a[k], u)
		} else {
			// b[k+n+1] = s[j+1] / s[j+2]
			if s[j+2].Sign() == 0 {
				return orthopoly.BigCoefficients{}, fmt.Errorf("cannot ExtendBig: recursion broke down at m=%d (zero divisor)", m)
			}
			b[k+n+1].Quo(s[j+1], s[j+2])
		}
		s, t = t, s
	}

	// a[2n] = a[n-1] - b[2n]*s[1]/t[1]
	if t[1].Sign() == 0 {
		return orthopoly.BigCoefficients{}, fmt.Errorf("cannot ExtendBig: recursion broke down at finalization (zero divisor)")
	}
	u.Mul(b[2*n], s[1])
	u.Quo(u, t[1])
	v.Sub(a[n-1], u)
	a[2*n].Set(v)

	return orthopoly.BigCoefficients{Alpha: a, Beta: b}, nil
}
