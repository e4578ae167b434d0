package bignum

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFloat(t *testing.T) {
	testFunc2("Pow", 2, 1.4142135623730951, math.Pow, Pow, 1e-15, t)
	testFunc2("PowFractional", 2, -0.5, math.Pow, Pow, 1e-15, t)
}

func testFunc2(name string, x, e float64, f func(x, e float64) (y float64), g func(x, e *big.Float) (y *big.Float), delta float64, t *testing.T) {
	t.Run(name, func(t *testing.T) {
		require.InDelta(t, f(x, e), Float64(g(NewFloat(x, 53), NewFloat(e, 53))), delta)
	})
}

func TestFloat64Slice(t *testing.T) {
	x := []*big.Float{NewFloat(0.5, 128), NewFloat(2, 128)}
	require.Equal(t, []float64{0.5, 2}, Float64Slice(x))
}
