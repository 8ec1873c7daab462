// ============================================================================
// numtower - Numerischer Turm
// ============================================================================
//
// Package:     number
// Description: Float kinds, conversions and float predicates
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package number

import (
	"math"
	"math/big"
)

// floatValue returns the payload of a float kind
func floatValue(x Number) float64 {
	if x.kind == KindSingleFloat {
		return float64(x.single())
	}
	return x.box.(*floatBox).v
}

// toFloat converts a Real to the float kind k
func toFloat(x Number, k Kind) Number {
	if x.kind == k {
		return x
	}
	switch x.kind {
	case KindFixnum:
		if halfPrecision(k) {
			return makeFloat(k, float64(float32(x.fixnum())))
		}
		return makeFloat(k, float64(x.fixnum()))
	case KindBignum, KindRatio:
		r := ratOf(x)
		if halfPrecision(k) {
			f, _ := r.Float32()
			return makeFloat(k, float64(f))
		}
		f, _ := r.Float64()
		return makeFloat(k, f)
	}
	return makeFloat(k, floatValue(x))
}

// Rational returns the exact rational value of a float. Rationals are
// returned unchanged.
func Rational(x Number) (Number, error) {
	switch {
	case x.IsRational():
		return x, nil
	case x.kind.IsFloat():
		f := floatValue(x)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return Zero, domainError("rational", "finite float", x)
		}
		return fromRat(new(big.Rat).SetFloat64(f)), nil
	}
	return Zero, domainError("rational", "real", x)
}

// Coerce converts x to kind k. Rationals convert to any float kind, floats
// convert between float kinds, and any number can be promoted to Complex.
// Demotion that loses information is a DomainTypeError.
func Coerce(x Number, k Kind) (Number, error) {
	if x.kind == k {
		return x, nil
	}
	switch {
	case k.IsFloat() && x.IsReal():
		return toFloat(x, k), nil
	case k == KindComplex:
		return promoteComplex(x), nil
	case (k == KindFixnum || k == KindBignum) && x.IsInteger():
		return x, nil
	case k == KindRatio && x.IsRational():
		return x, nil
	}
	return Zero, domainError("coerce", k.String(), x)
}

// FloatNaNp reports whether x is a float NaN
func FloatNaNp(x Number) bool {
	return x.kind.IsFloat() && math.IsNaN(floatValue(x))
}

// FloatInfinityp reports whether x is a float infinity
func FloatInfinityp(x Number) bool {
	return x.kind.IsFloat() && math.IsInf(floatValue(x), 0)
}
