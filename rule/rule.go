// Package rule realizes recurrence coefficients as quadrature rules and
// caches matched Gauss/Kronrod pairs.
//
// Nodes and weights are recovered from the symmetric tridiagonal
// (Jacobi) matrix of the coefficients by the Golub-Welsch construction:
// the eigenvalues are the nodes, and beta[0] times the squared first
// component of each normalized eigenvector is the corresponding weight.
package rule

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/numkit/quadrature/orthopoly"
)

// Rule is a quadrature rule: nodes sorted ascending, weights aligned to
// the same permutation, and the maximal polynomial degree the rule
// integrates exactly.
type Rule struct {
	Points  []float64
	Weights []float64
	Degree  int
}

// Len returns the number of nodes.
func (r *Rule) Len() int {
	return len(r.Points)
}

// FromRecurrence builds the quadrature rule whose Jacobi matrix has
// diagonal c.Alpha and off-diagonal sqrt(c.Beta[1:]). The caller states
// the exactness degree: realizing all coefficients of one family gives
// a Gauss rule of degree 2*Len-1, while Kronrod coefficients certify a
// lower degree than their length suggests.
//
// The eigenproblem is always solved in float64; use the big-coefficient
// constructors upstream when more precision is needed in the
// coefficients themselves.
func FromRecurrence(c orthopoly.Coefficients, degree int) (*Rule, error) {

	m := c.Len()
	if m < 1 {
		return nil, fmt.Errorf("cannot FromRecurrence: no recurrence coefficients")
	}

	if c.Beta[0] <= 0 {
		return nil, fmt.Errorf("cannot FromRecurrence: beta[0]=%v must be positive (total mass of the weight)", c.Beta[0])
	}

	jac := mat.NewSymDense(m, nil)
	for i := 0; i < m; i++ {
		jac.SetSym(i, i, c.Alpha[i])
		if i > 0 {
			if c.Beta[i] <= 0 {
				return nil, fmt.Errorf("cannot FromRecurrence: beta[%d]=%v must be positive", i, c.Beta[i])
			}
			jac.SetSym(i-1, i, math.Sqrt(c.Beta[i]))
		}
	}

	var eig mat.EigenSym
	if !eig.Factorize(jac, true) {
		return nil, fmt.Errorf("cannot FromRecurrence: eigendecomposition of the %d-point Jacobi matrix failed", m)
	}

	// Eigenvalues are returned in ascending order, so the nodes come
	// out sorted with the weights aligned.
	points := eig.Values(nil)

	var vecs mat.Dense
	eig.VectorsTo(&vecs)

	weights := make([]float64, m)
	for i := 0; i < m; i++ {
		v0 := vecs.At(0, i)
		weights[i] = c.Beta[0] * v0 * v0
	}

	return &Rule{Points: points, Weights: weights, Degree: degree}, nil
}
