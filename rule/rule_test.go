package rule

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/numkit/quadrature/orthopoly"
)

// apply evaluates sum_i w_i f(x_i).
func apply(r *Rule, f func(float64) float64) (s float64) {
	for i := range r.Points {
		s += r.Weights[i] * f(r.Points[i])
	}
	return
}

// monomialIntegral is int_{-1}^{1} x^k dx.
func monomialIntegral(k int) float64 {
	if k%2 == 1 {
		return 0
	}
	return 2 / float64(k+1)
}

func TestFromRecurrence(t *testing.T) {

	t.Run("GaussTwo", func(t *testing.T) {
		c, err := orthopoly.Legendre(2)
		require.NoError(t, err)
		r, err := FromRecurrence(c, 3)
		require.NoError(t, err)

		require.Equal(t, 2, r.Len())
		require.InDelta(t, -1/math.Sqrt(3), r.Points[0], 1e-14)
		require.InDelta(t, +1/math.Sqrt(3), r.Points[1], 1e-14)
		require.InDelta(t, 1.0, r.Weights[0], 1e-14)
		require.InDelta(t, 1.0, r.Weights[1], 1e-14)
	})

	t.Run("GaussThree", func(t *testing.T) {
		c, err := orthopoly.Legendre(3)
		require.NoError(t, err)
		r, err := FromRecurrence(c, 5)
		require.NoError(t, err)

		require.InDelta(t, -math.Sqrt(3.0/5.0), r.Points[0], 1e-14)
		require.InDelta(t, 0, r.Points[1], 1e-14)
		require.InDelta(t, +math.Sqrt(3.0/5.0), r.Points[2], 1e-14)
		require.InDelta(t, 5.0/9.0, r.Weights[0], 1e-14)
		require.InDelta(t, 8.0/9.0, r.Weights[1], 1e-14)
		require.InDelta(t, 5.0/9.0, r.Weights[2], 1e-14)
	})

	t.Run("GaussExactness", func(t *testing.T) {
		for m := 1; m <= 10; m++ {
			c, err := orthopoly.Legendre(m)
			require.NoError(t, err)
			r, err := FromRecurrence(c, 2*m-1)
			require.NoError(t, err)

			for k := 0; k <= r.Degree; k++ {
				k := k
				got := apply(r, func(x float64) float64 { return math.Pow(x, float64(k)) })
				require.InDelta(t, monomialIntegral(k), got, 1e-12, "m=%d k=%d", m, k)
			}
		}
	})

	t.Run("SortedNodes", func(t *testing.T) {
		c, err := orthopoly.Jacobi(7, 0.5, 1.5)
		require.NoError(t, err)
		r, err := FromRecurrence(c, 13)
		require.NoError(t, err)
		for i := 1; i < r.Len(); i++ {
			require.Less(t, r.Points[i-1], r.Points[i])
		}
	})

	t.Run("RejectsNonPositiveBeta", func(t *testing.T) {
		_, err := FromRecurrence(orthopoly.Coefficients{
			Alpha: []float64{0, 0},
			Beta:  []float64{2, -1},
		}, 3)
		require.Error(t, err)

		_, err = FromRecurrence(orthopoly.Coefficients{
			Alpha: []float64{0},
			Beta:  []float64{0},
		}, 1)
		require.Error(t, err)
	})
}
