package rule

import (
	"bytes"
	"math"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	"github.com/numkit/quadrature/kronrod"
	"github.com/numkit/quadrature/utils/buffer"
)

func TestPair(t *testing.T) {

	for n := 1; n <= 10; n++ {

		p, err := New(n)
		require.NoError(t, err)

		require.Equal(t, 2*n+1, p.Kronrod.Len())
		require.Equal(t, n, p.Gauss.Len())
		require.Equal(t, 2*kronrod.InputLen(n)-1, p.Kronrod.Degree)
		require.Equal(t, 2*n-1, p.Gauss.Degree)

		// The Gauss nodes are the odd-indexed nodes of the sorted
		// Kronrod rule.
		odd := make([]float64, n)
		for i := range odd {
			odd[i] = p.Kronrod.Points[2*i+1]
		}
		require.Empty(t, cmp.Diff(p.Gauss.Points, odd, cmpopts.EquateApprox(0, 1e-10)))

		// Legendre weight is symmetric: nodes come in +-x pairs.
		m := p.Kronrod.Len()
		for i := 0; i < m/2; i++ {
			require.InDelta(t, -p.Kronrod.Points[i], p.Kronrod.Points[m-1-i], 1e-10, "n=%d", n)
		}

		// Kronrod weights are positive for the Legendre weight, and
		// both weight sets integrate the constant to the full mass.
		var wk, wg float64
		for _, w := range p.Kronrod.Weights {
			require.Greater(t, w, 0.0)
			wk += w
		}
		for _, w := range p.Gauss.Weights {
			wg += w
		}
		require.InDelta(t, 2.0, wk, 1e-12)
		require.InDelta(t, 2.0, wg, 1e-12)

		// Exactness up to degree 3n+1.
		for k := 0; k <= 3*n+1; k++ {
			k := k
			got := apply(p.Kronrod, func(x float64) float64 { return math.Pow(x, float64(k)) })
			require.InDelta(t, monomialIntegral(k), got, 1e-10, "n=%d k=%d", n, k)
		}
	}

	_, err := New(0)
	require.Error(t, err)
}

func TestPairPrec(t *testing.T) {

	const n = 6

	p, err := New(n)
	require.NoError(t, err)

	q, err := NewPrec(n, 256)
	require.NoError(t, err)

	require.Empty(t, cmp.Diff(p.Kronrod.Points, q.Kronrod.Points, cmpopts.EquateApprox(0, 1e-12)))
	require.Empty(t, cmp.Diff(p.Kronrod.Weights, q.Kronrod.Weights, cmpopts.EquateApprox(0, 1e-12)))
}

func TestCache(t *testing.T) {

	c := NewCache()

	p, err := c.Pair(4)
	require.NoError(t, err)

	q, err := c.Pair(4)
	require.NoError(t, err)
	require.Same(t, p, q)

	// Concurrent readers all observe the same pair per order.
	var wg sync.WaitGroup
	pairs := make([]*Pair, 16)
	for i := range pairs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			pairs[i], _ = c.Pair(7)
		}(i)
	}
	wg.Wait()

	for i := 1; i < len(pairs); i++ {
		require.Same(t, pairs[0], pairs[i])
	}

	require.Equal(t, []int{4, 7}, c.Orders())
}

func TestSerialization(t *testing.T) {

	p, err := GaussKronrod(3)
	require.NoError(t, err)

	t.Run("Buffer", func(t *testing.T) {
		b := buffer.NewBufferSize(p.BinarySize())

		n, err := p.WriteTo(b)
		require.NoError(t, err)
		require.Equal(t, int64(p.BinarySize()), n)

		q := new(Pair)
		_, err = q.ReadFrom(b)
		require.NoError(t, err)

		require.Equal(t, p.Order, q.Order)
		require.Equal(t, p.Kronrod, q.Kronrod)
		require.Equal(t, p.Gauss, q.Gauss)
	})

	t.Run("IoWriter", func(t *testing.T) {
		var b bytes.Buffer

		_, err := p.WriteTo(&b)
		require.NoError(t, err)

		q := new(Pair)
		_, err = q.ReadFrom(&b)
		require.NoError(t, err)
		require.Equal(t, p.Kronrod, q.Kronrod)
	})
}
