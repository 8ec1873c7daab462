// ============================================================================
// numtower - Numerischer Turm
// ============================================================================
//
// Package:     number
// Description: Exponentiation
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package number

import (
	"math"
	"math/big"
	"math/cmplx"
)

// Expt returns base raised to power. An exact base with an Integer power
// stays exact; a negative power gives the exact reciprocal. Every other
// combination is evaluated in floating point after contagion.
func Expt(base, power Number) (Number, error) {
	if power.IsInteger() {
		return exptInteger(base, power)
	}

	if base.IsExact() && base.Zerop() {
		if power.Realpart().sign() < 0 {
			return Zero, divisionByZero("expt", base, power)
		}
	}

	if base.kind == KindComplex || power.kind == KindComplex {
		k := complexFloatKind(base, power)
		z := cmplx.Pow(complex128Of(base, k), complex128Of(power, k))
		return makeComplexFloat(k, z), nil
	}

	k := KindSingleFloat
	switch {
	case base.kind.IsFloat() && power.kind.IsFloat():
		k = widerFloat(base.kind, power.kind)
	case base.kind.IsFloat():
		k = base.kind
	case power.kind.IsFloat():
		k = power.kind
	}
	return floatPow(k, floatValue(toFloat(base, k)), floatValue(toFloat(power, k))), nil
}

func exptInteger(base, power Number) (Number, error) {
	if power.Zerop() {
		return unitOf(base), nil
	}

	switch {
	case base.IsRational():
		return exptRational(base, power)
	case base.kind == KindComplex && base.IsExact():
		return exptExactComplex(base, power)
	case base.kind == KindComplex:
		k := complexFloatKind(base)
		p := power.Float64()
		return makeComplexFloat(k, cmplx.Pow(complex128Of(base, k), complex(p, 0))), nil
	}
	return makeFloat(base.kind, math.Pow(floatValue(base), power.Float64())), nil
}

// unitOf returns 1 in the kind of x
func unitOf(x Number) Number {
	switch {
	case x.kind.IsFloat():
		return makeFloat(x.kind, 1)
	case x.kind == KindComplex && !x.IsExact():
		return makeComplexFloat(x.complex().re.kind, 1)
	}
	return One
}

func exptRational(base, power Number) (Number, error) {
	if base.Zerop() {
		if power.sign() < 0 {
			return Zero, divisionByZero("expt", base, power)
		}
		return Zero, nil
	}
	e := bigOf(power)
	negative := e.Sign() < 0
	e.Abs(e)

	n, d := numDen(base)
	if !isUnit(n, d) && exceedsExactBits(max(n.BitLen(), d.BitLen()), e) {
		return Zero, domainError("expt", "power with a result below the exact size limit", power)
	}
	n.Exp(n, e, nil)
	d.Exp(d, e, nil)
	if negative {
		n, d = d, n
	}
	return normRatio(n, d), nil
}

// isUnit reports whether n/d is 1 or -1
func isUnit(n, d *big.Int) bool {
	return d.Cmp(bigOne) == 0 && n.CmpAbs(bigOne) == 0
}

// exptExactComplex squares repeatedly so Gaussian rationals stay exact
func exptExactComplex(base, power Number) (Number, error) {
	e := bigOf(power)
	negative := e.Sign() < 0
	e.Abs(e)

	re, im := base.Realpart(), base.Imagpart()
	if !re.Zerop() || !(im.kind == KindFixnum && (im.fixnum() == 1 || im.fixnum() == -1)) {
		bits := 0
		for _, part := range []Number{re, im} {
			n, d := numDen(part)
			bits = max(bits, n.BitLen(), d.BitLen())
		}
		if exceedsExactBits(bits+1, e) {
			return Zero, domainError("expt", "power with a result below the exact size limit", power)
		}
	}

	result, sq := One, base
	for i := 0; i < e.BitLen(); i++ {
		if e.Bit(i) == 1 {
			result = Mul(result, sq)
		}
		if i+1 < e.BitLen() {
			sq = Mul(sq, sq)
		}
	}
	if negative {
		return Div(One, result)
	}
	return result, nil
}

