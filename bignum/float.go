// Package bignum provides arbitrary precision arithmetic helpers for the
// high-precision coefficient mode of the quadrature rules.
package bignum

import (
	"fmt"
	"math/big"

	"github.com/ALTree/bigfloat"
)

// NewFloat creates a new big.Float element with "prec" bits of precision.
// Valid types for x are: int, int64, uint, uint64, float64, *big.Int or *big.Float.
func NewFloat(x interface{}, prec uint) (y *big.Float) {

	y = new(big.Float)
	y.SetPrec(prec)

	if x == nil {
		return
	}

	switch x := x.(type) {
	case int:
		y.SetInt64(int64(x))
	case int64:
		y.SetInt64(x)
	case uint:
		y.SetUint64(uint64(x))
	case uint64:
		y.SetUint64(x)
	case float64:
		y.SetFloat64(x)
	case *big.Int:
		y.SetInt(x)
	case *big.Float:
		y.Set(x)
	default:
		panic(fmt.Errorf("invalid x.(type): valid types are int, int64, uint, uint64, float64, *big.Int or *big.Float but is %T", x))
	}

	return
}

// Pow returns x^y at the precision of x.
func Pow(x, y *big.Float) (pow *big.Float) {
	return bigfloat.Pow(x, y)
}

// Float64 lowers x to float64, discarding the extra precision.
func Float64(x *big.Float) float64 {
	f, _ := x.Float64()
	return f
}

// Float64Slice lowers a slice of big.Float to float64.
func Float64Slice(x []*big.Float) (y []float64) {
	y = make([]float64, len(x))
	for i := range x {
		y[i] = Float64(x[i])
	}
	return
}
