package rule

import (
	"fmt"
	"math"

	"github.com/numkit/quadrature/kronrod"
	"github.com/numkit/quadrature/orthopoly"
)

// interleaveTol bounds the distance between a Gauss node and the
// odd-indexed Kronrod node it must coincide with.
const interleaveTol = 1e-10

// Pair is a (2n+1)-point Kronrod rule together with its embedded
// n-point Gauss companion. The Gauss nodes equal the odd-indexed
// (1-based) nodes of the sorted Kronrod rule, which is what lets an
// integrator share evaluations between the two.
type Pair struct {
	Order   int
	Kronrod *Rule
	Gauss   *Rule
}

// New builds the Gauss-Kronrod pair of order n for the Legendre weight
// on [-1, 1].
func New(n int) (*Pair, error) {
	return NewJacobi(n, 0, 0)
}

// NewJacobi builds the Gauss-Kronrod pair of order n for the Jacobi
// weight (1-x)^a (1+x)^b on [-1, 1].
func NewJacobi(n int, a, b float64) (*Pair, error) {

	if n < 1 {
		return nil, fmt.Errorf("cannot NewJacobi: n=%d < 1", n)
	}

	c, err := orthopoly.Jacobi(kronrod.InputLen(n), a, b)
	if err != nil {
		return nil, fmt.Errorf("cannot NewJacobi: %w", err)
	}

	return build(n, c)
}

// NewPrec builds the Legendre Gauss-Kronrod pair of order n with the
// recurrence coefficients and the Kronrod extension carried out at prec
// bits of precision. The eigensolve still runs in float64 on the
// rounded coefficients.
func NewPrec(n int, prec uint) (*Pair, error) {

	if n < 1 {
		return nil, fmt.Errorf("cannot NewPrec: n=%d < 1", n)
	}

	cb, err := orthopoly.LegendreBig(kronrod.InputLen(n), prec)
	if err != nil {
		return nil, fmt.Errorf("cannot NewPrec: %w", err)
	}

	ext, err := kronrod.ExtendBig(n, cb, prec)
	if err != nil {
		return nil, fmt.Errorf("cannot NewPrec: %w", err)
	}

	return assemble(n, cb.Float64(), ext.Float64())
}

func build(n int, c orthopoly.Coefficients) (*Pair, error) {

	ext, err := kronrod.Extend(n, c)
	if err != nil {
		return nil, err
	}

	return assemble(n, c, ext)
}

// assemble realizes both rules and cross-checks the embedding. The
// directly computed Gauss rule is the rule of record; the odd-indexed
// Kronrod nodes only validate it.
func assemble(n int, c, ext orthopoly.Coefficients) (*Pair, error) {

	kr, err := FromRecurrence(ext, 2*c.Len()-1)
	if err != nil {
		return nil, err
	}

	gs, err := FromRecurrence(c.Truncate(n), 2*n-1)
	if err != nil {
		return nil, err
	}

	for i := 0; i < n; i++ {
		if d := math.Abs(gs.Points[i] - kr.Points[2*i+1]); d > interleaveTol {
			return nil, fmt.Errorf("cannot assemble pair: Gauss node %d and Kronrod node %d differ by %v, embedding lost to numerical error", i, 2*i+1, d)
		}
	}

	return &Pair{Order: n, Kronrod: kr, Gauss: gs}, nil
}
