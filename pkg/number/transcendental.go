// ============================================================================
// numtower - Numerischer Turm
// ============================================================================
//
// Package:     number
// Description: Exponential, logarithmic, trigonometric and hyperbolic
//              functions with extension into the complex plane
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package number

import (
	"math"
	"math/cmplx"
)

// transcendental evaluates a real function at the argument's float kind
// and falls back to the complex function where the real one is undefined
type transcendental struct {
	real     func(float64) float64
	complex  func(complex128) complex128
	inDomain func(float64) bool
}

func (t transcendental) apply(x Number) Number {
	if x.kind == KindComplex {
		k := complexFloatKind(x)
		return makeComplexFloat(k, t.complex(complex128Of(x, k)))
	}
	k := realFloatKind(x)
	f := floatValue(toFloat(x, k))
	if t.inDomain != nil && !t.inDomain(f) {
		return makeComplexFloat(k, t.complex(complex(f, 0)))
	}
	return makeFloat(k, t.real(f))
}

func nonNegative(f float64) bool {
	return !(f < 0)
}

var (
	expFn  = transcendental{real: math.Exp, complex: cmplx.Exp}
	logFn  = transcendental{real: math.Log, complex: cmplx.Log, inDomain: nonNegative}
	sqrtFn = transcendental{real: math.Sqrt, complex: cmplx.Sqrt, inDomain: nonNegative}
	sinFn  = transcendental{real: math.Sin, complex: cmplx.Sin}
	cosFn  = transcendental{real: math.Cos, complex: cmplx.Cos}
	tanFn  = transcendental{real: math.Tan, complex: cmplx.Tan}
	sinhFn = transcendental{real: math.Sinh, complex: cmplx.Sinh}
	coshFn = transcendental{real: math.Cosh, complex: cmplx.Cosh}
	tanhFn = transcendental{real: math.Tanh, complex: cmplx.Tanh}
)

// Exp returns e**x
func Exp(x Number) Number { return expFn.apply(x) }

// Log returns the natural logarithm. A negative real yields the principal
// complex value log|x| + πi; zero yields -Inf.
func Log(x Number) Number { return logFn.apply(x) }

// Sqrt returns the principal square root. A negative real yields a Complex
// with zero real part.
func Sqrt(x Number) Number { return sqrtFn.apply(x) }

func Sin(x Number) Number  { return sinFn.apply(x) }
func Cos(x Number) Number  { return cosFn.apply(x) }
func Tan(x Number) Number  { return tanFn.apply(x) }
func Sinh(x Number) Number { return sinhFn.apply(x) }
func Cosh(x Number) Number { return coshFn.apply(x) }
func Tanh(x Number) Number { return tanhFn.apply(x) }

// LogBase returns the logarithm of x in the given base
func LogBase(x, base Number) Number {
	r, _ := Div(Log(x), Log(base))
	return r
}

// Log1p returns log(1+x) computed as log(u)*x/(u-1) with u = 1+x rounded to
// the argument's precision. When u rounds to 1 the result is the exact 0.
func Log1p(x Number) Number {
	if x.kind == KindComplex {
		return Log(OnePlus(x))
	}
	k := realFloatKind(x)
	f := floatValue(toFloat(x, k))
	if math.IsNaN(f) {
		return x
	}
	u := floatValue(makeFloat(k, 1+f))
	switch {
	case u == 1:
		return Zero
	case u < 0:
		return makeComplexFloat(k, cmplx.Log(complex(u, 0)))
	}
	l := floatValue(makeFloat(k, math.Log(u)))
	return makeFloat(k, l*f/(u-1))
}

// Atan2 returns the angle of the point (x, y) in radians
func Atan2(y, x Number) (Number, error) {
	if y.kind == KindComplex {
		return Zero, domainError("atan", "real", y)
	}
	if x.kind == KindComplex {
		return Zero, domainError("atan", "real", x)
	}
	k := KindSingleFloat
	switch {
	case y.kind.IsFloat() && x.kind.IsFloat():
		k = widerFloat(y.kind, x.kind)
	case y.kind.IsFloat():
		k = y.kind
	case x.kind.IsFloat():
		k = x.kind
	}
	return makeFloat(k, math.Atan2(floatValue(toFloat(y, k)), floatValue(toFloat(x, k)))), nil
}

// Isqrt returns the greatest Integer not exceeding the square root of a
// non-negative Integer
func Isqrt(n Number) (Number, error) {
	if !n.IsInteger() || n.sign() < 0 {
		return Zero, domainError("isqrt", "non-negative integer", n)
	}
	b := bigOf(n)
	return normInt(b.Sqrt(b)), nil
}

// floatPow evaluates x**y for finite-precision reals at kind k, returning
// a Complex when a negative base meets a non-integral power
func floatPow(k Kind, x, y float64) Number {
	if x < 0 && y != math.Trunc(y) && !math.IsInf(y, 0) {
		return makeComplexFloat(k, cmplx.Pow(complex(x, 0), complex(y, 0)))
	}
	return makeFloat(k, math.Pow(x, y))
}

