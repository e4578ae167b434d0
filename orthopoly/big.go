package orthopoly

import (
	"fmt"
	"math"
	"math/big"

	"github.com/numkit/quadrature/bignum"
)

// BigCoefficients holds monic recurrence coefficients at an arbitrary
// binary precision. It mirrors Coefficients for the high-precision
// coefficient mode; the eigensolve consuming them always runs in
// float64, so the extra precision pays off only in the coefficients
// and the Kronrod extension.
type BigCoefficients struct {
	Alpha []*big.Float
	Beta  []*big.Float
}

// Len returns the number of recurrence coefficients.
func (c BigCoefficients) Len() int {
	return len(c.Alpha)
}

// Float64 lowers the coefficients to float64.
func (c BigCoefficients) Float64() Coefficients {
	return Coefficients{
		Alpha: bignum.Float64Slice(c.Alpha),
		Beta:  bignum.Float64Slice(c.Beta),
	}
}

// JacobiBig returns the first count monic Jacobi recurrence
// coefficients computed with prec bits of precision.
//
// beta[0] = 2^(a+b+1) Gamma(a+1) Gamma(b+1) / Gamma(a+b+2). The power
// term is evaluated at full precision; the Gamma ratio is evaluated
// exactly through factorials when a and b are non-negative integers and
// in float64 otherwise, which caps the accuracy of beta[0] (only) at
// double precision for fractional exponents.
func JacobiBig(count int, a, b float64, prec uint) (BigCoefficients, error) {

	if count < 1 {
		return BigCoefficients{}, fmt.Errorf("cannot JacobiBig: count=%d < 1", count)
	}

	if a <= -1 || b <= -1 {
		return BigCoefficients{}, fmt.Errorf("cannot JacobiBig: exponents (%f, %f) must be > -1", a, b)
	}

	alpha := make([]*big.Float, count)
	beta := make([]*big.Float, count)

	bigA := bignum.NewFloat(a, prec)
	bigB := bignum.NewFloat(b, prec)

	// alpha_0 = (b-a)/(a+b+2)
	alpha[0] = new(big.Float).Sub(bigB, bigA)
	den := new(big.Float).Add(bigA, bigB)
	den.Add(den, bignum.NewFloat(2, prec))
	alpha[0].Quo(alpha[0], den)

	beta[0] = betaZero(a, b, prec)

	one := bignum.NewFloat(1, prec)
	two := bignum.NewFloat(2, prec)

	for k := 1; k < count; k++ {

		fk := bignum.NewFloat(k, prec)

		// q = 2k+a+b
		q := new(big.Float).Mul(two, fk)
		q.Add(q, bigA)
		q.Add(q, bigB)

		// alpha_k = (b^2-a^2)/(q(q+2))
		num := new(big.Float).Mul(bigB, bigB)
		num.Sub(num, new(big.Float).Mul(bigA, bigA))
		den = new(big.Float).Add(q, two)
		den.Mul(den, q)
		alpha[k] = num.Quo(num, den)

		if k == 1 {
			// 4(a+1)(b+1)/((a+b+2)^2 (a+b+3))
			num = new(big.Float).Add(bigA, one)
			num.Mul(num, new(big.Float).Add(bigB, one))
			num.Mul(num, bignum.NewFloat(4, prec))
			den = new(big.Float).Add(bigA, bigB)
			den.Add(den, two)
			den.Mul(den, den)
			den.Mul(den, new(big.Float).Add(new(big.Float).Add(bigA, bigB), bignum.NewFloat(3, prec)))
			beta[1] = num.Quo(num, den)
			continue
		}

		// beta_k = 4k(k+a)(k+b)(k+a+b)/(q^2(q+1)(q-1))
		num = new(big.Float).Mul(bignum.NewFloat(4, prec), fk)
		num.Mul(num, new(big.Float).Add(fk, bigA))
		num.Mul(num, new(big.Float).Add(fk, bigB))
		num.Mul(num, new(big.Float).Add(new(big.Float).Add(fk, bigA), bigB))
		den = new(big.Float).Mul(q, q)
		den.Mul(den, new(big.Float).Add(q, one))
		den.Mul(den, new(big.Float).Sub(q, one))
		beta[k] = num.Quo(num, den)
	}

	return BigCoefficients{Alpha: alpha, Beta: beta}, nil
}

// LegendreBig returns the first count monic Legendre recurrence
// coefficients computed with prec bits of precision.
func LegendreBig(count int, prec uint) (BigCoefficients, error) {

	if count < 1 {
		return BigCoefficients{}, fmt.Errorf("cannot LegendreBig: count=%d < 1", count)
	}

	alpha := make([]*big.Float, count)
	beta := make([]*big.Float, count)

	for k := range alpha {
		alpha[k] = bignum.NewFloat(0, prec)
	}

	beta[0] = bignum.NewFloat(2, prec)
	for k := 1; k < count; k++ {
		k2 := bignum.NewFloat(k*k, prec)
		beta[k] = new(big.Float).Quo(k2, bignum.NewFloat(4*k*k-1, prec))
	}

	return BigCoefficients{Alpha: alpha, Beta: beta}, nil
}

// betaZero computes 2^(a+b+1) Gamma(a+1) Gamma(b+1) / Gamma(a+b+2).
func betaZero(a, b float64, prec uint) *big.Float {

	pow := bignum.Pow(bignum.NewFloat(2, prec), bignum.NewFloat(a+b+1, prec))

	if ia, ib := int64(a), int64(b); a >= 0 && b >= 0 && float64(ia) == a && float64(ib) == b {
		// Gamma(n+1) = n!, so the ratio is exact in integer arithmetic.
		num := new(big.Int).Mul(factorial(ia), factorial(ib))
		den := factorial(ia + ib + 1)
		ratio := new(big.Float).SetPrec(prec).SetInt(num)
		ratio.Quo(ratio, new(big.Float).SetPrec(prec).SetInt(den))
		return pow.Mul(pow, ratio)
	}

	ratio := math.Gamma(a+1) * math.Gamma(b+1) / math.Gamma(a+b+2)
	return pow.Mul(pow, bignum.NewFloat(ratio, prec))
}

func factorial(n int64) (f *big.Int) {
	f = big.NewInt(1)
	for i := int64(2); i <= n; i++ {
		f.Mul(f, big.NewInt(i))
	}
	return
}
