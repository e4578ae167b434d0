// Package integrate applies a Gauss-Kronrod pair to batches of
// segments, producing for every segment and range component the Kronrod
// estimate, the embedded lower-order Gauss estimate and an error
// estimate derived from their discrepancy.
//
// The integrand is evaluated exactly once, at the mapped Kronrod nodes
// of every segment; the Gauss estimate reuses the odd-indexed subset of
// those evaluations. Whether to accept a result or subdivide a segment
// is left to the caller.
package integrate

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/numkit/quadrature/rule"
)

// Error-estimate tunables, following the QUADPACK heuristic in the form
// reviewed by Gonnet, "A Review of Error Estimation in Adaptive
// Quadrature", ACM Comput. Surv. 44 (2012). The exponent makes
// (errScale*x)^errExponent approximately x at 1e-6, the relative noise
// floor assumed for the integrand evaluations; both are calibration
// constants, not derived quantities.
const (
	errScale    = 200
	errExponent = 1.5
)

// Sentinel errors for the shape validation of a batch call.
var (
	// ErrDomainShape indicates segment endpoints of inconsistent or
	// zero dimension.
	ErrDomainShape = errors.New("integrate: segment endpoints must share one dimension >= 1")
	// ErrRangeShape indicates integrand values of inconsistent or zero
	// dimension, or the wrong number of values.
	ErrRangeShape = errors.New("integrate: integrand values must share one dimension >= 1")
)

// Segment is a straight 1-D integration path from Lo to Hi. The
// endpoints may live in R^d for d > 1, in which case the integral is
// taken along the embedded line segment.
type Segment struct {
	Lo, Hi []float64
}

// Interval returns the segment [lo, hi] on the real line.
func Interval(lo, hi float64) Segment {
	return Segment{Lo: []float64{lo}, Hi: []float64{hi}}
}

// Partition splits [lo, hi] into k equal segments.
func Partition(lo, hi float64, k int) []Segment {
	segs := make([]Segment, k)
	step := (hi - lo) / float64(k)
	for i := range segs {
		segs[i] = Interval(lo+float64(i)*step, lo+float64(i+1)*step)
	}
	return segs
}

// Integrand evaluates the integrand at a block of sample points and
// returns one value vector per point. All value vectors must have the
// same length; that length is the range dimension of the result. The
// function must be pure: it is called exactly once per integration and
// its values are shared between the Kronrod and Gauss estimates.
type Integrand func(points [][]float64) [][]float64

// Scalar adapts a scalar function on the real line to an Integrand for
// 1-D segments.
func Scalar(f func(x float64) float64) Integrand {
	return func(points [][]float64) [][]float64 {
		values := make([][]float64, len(points))
		for i, p := range points {
			values[i] = []float64{f(p[0])}
		}
		return values
	}
}

// Result holds the per-segment, per-range-component estimates of a
// batch integration. Kronrod, Gauss and Error are indexed
// [segment][component]; Alpha is the per-segment scale factor
// sqrt(sum_d (hi-lo)^2), the length of the segment.
type Result struct {
	Kronrod [][]float64
	Gauss   [][]float64
	Error   [][]float64
	Alpha   []float64

	DomainDim int
	RangeDim  int
}

// GaussKronrod integrates f over the segments with the cached
// Gauss-Kronrod pair of order n and returns both estimates together
// with the error estimate.
func GaussKronrod(n int, f Integrand, segments []Segment) (*Result, error) {

	p, err := rule.GaussKronrod(n)
	if err != nil {
		return nil, err
	}

	return WithPair(p, f, segments)
}

// WithPair integrates f over the segments with an already realized
// pair.
func WithPair(p *rule.Pair, f Integrand, segments []Segment) (*Result, error) {

	dim, err := domainDim(segments)
	if err != nil {
		return nil, err
	}

	nodes := p.Kronrod.Points
	m := len(nodes)
	nseg := len(segments)

	// Map the canonical nodes onto every segment through the affine
	// combination lo*x0 + hi*x1 with x0 = (1-t)/2, x1 = (1+t)/2.
	points := make([][]float64, nseg*m)
	for b, seg := range segments {
		for i, t := range nodes {
			x0 := 0.5 * (1 - t)
			x1 := 0.5 * (1 + t)
			pt := make([]float64, dim)
			for c := 0; c < dim; c++ {
				pt[c] = seg.Lo[c]*x0 + seg.Hi[c]*x1
			}
			points[b*m+i] = pt
		}
	}

	values := f(points)

	rdim, err := rangeDim(values, nseg*m)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Kronrod:   make([][]float64, nseg),
		Gauss:     make([][]float64, nseg),
		Error:     make([][]float64, nseg),
		Alpha:     make([]float64, nseg),
		DomainDim: dim,
		RangeDim:  rdim,
	}

	order := p.Gauss.Len()
	fk := make([]float64, m)
	fg := make([]float64, order)

	for b, seg := range segments {

		var alpha float64
		for c := 0; c < dim; c++ {
			d := seg.Hi[c] - seg.Lo[c]
			alpha += d * d
		}
		alpha = math.Sqrt(alpha)
		res.Alpha[b] = alpha

		res.Kronrod[b] = make([]float64, rdim)
		res.Gauss[b] = make([]float64, rdim)
		res.Error[b] = make([]float64, rdim)

		// Degenerate zero-length segment: every estimate is zero and
		// there is nothing to divide by.
		if alpha == 0 {
			continue
		}

		for c := 0; c < rdim; c++ {

			for i := 0; i < m; i++ {
				fk[i] = values[b*m+i][c]
			}
			// The Gauss estimate reuses the odd-indexed evaluations;
			// f is never re-evaluated.
			for j := 0; j < order; j++ {
				fg[j] = fk[2*j+1]
			}

			valK := 0.5 * alpha * floats.Dot(fk, p.Kronrod.Weights)
			valG := 0.5 * alpha * floats.Dot(fg, p.Gauss.Weights)

			res.Kronrod[b][c] = valK
			res.Gauss[b][c] = valG
			res.Error[b][c] = estimate(fk, p.Kronrod.Weights, valK, valG, alpha)
		}
	}

	return res, nil
}

// estimate computes the error estimate from the two embedded values and
// the spread of the evaluations around their weighted mean.
func estimate(fk, weights []float64, valK, valG, alpha float64) float64 {

	average := valK / alpha

	var itilde float64
	for i := range fk {
		itilde += weights[i] * math.Abs(fk[i]-average)
	}
	itilde *= 0.5 * alpha

	// A perfectly flat integrand leaves no spread to scale by.
	if itilde == 0 {
		return 0
	}

	return itilde * math.Min(1, math.Pow(errScale*math.Abs(valK-valG)/itilde, errExponent))
}

func domainDim(segments []Segment) (int, error) {

	if len(segments) == 0 {
		return 0, fmt.Errorf("%w: empty batch", ErrDomainShape)
	}

	dim := len(segments[0].Lo)
	if dim < 1 {
		return 0, fmt.Errorf("%w: segment 0 has no coordinates", ErrDomainShape)
	}

	for b, seg := range segments {
		if len(seg.Lo) != dim || len(seg.Hi) != dim {
			return 0, fmt.Errorf("%w: segment %d has endpoints of dimension (%d, %d), want %d", ErrDomainShape, b, len(seg.Lo), len(seg.Hi), dim)
		}
	}

	return dim, nil
}

func rangeDim(values [][]float64, want int) (int, error) {

	if len(values) != want {
		return 0, fmt.Errorf("%w: integrand returned %d values for %d points", ErrRangeShape, len(values), want)
	}

	dim := len(values[0])
	if dim < 1 {
		return 0, fmt.Errorf("%w: value 0 has no components", ErrRangeShape)
	}

	for i := range values {
		if len(values[i]) != dim {
			return 0, fmt.Errorf("%w: value %d has %d components, want %d", ErrRangeShape, i, len(values[i]), dim)
		}
	}

	return dim, nil
}
