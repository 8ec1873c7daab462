// ============================================================================
// numtower - Numerischer Turm
// ============================================================================
//
// Package:     number
// Description: Numeric comparison and identity
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package number

import (
	"math"
	"math/big"
)

// Compare orders two Reals, returning -1, 0 or +1. A Complex operand is a
// DomainTypeError, and so is a NaN since it is unordered.
func Compare(a, b Number) (int, error) {
	if a.kind == KindComplex {
		return 0, domainError("compare", "real", a)
	}
	if b.kind == KindComplex {
		return 0, domainError("compare", "real", b)
	}
	c, ordered := compareReal(a, b)
	if !ordered {
		if FloatNaNp(a) {
			return 0, domainError("compare", "ordered real", a)
		}
		return 0, domainError("compare", "ordered real", b)
	}
	return c, nil
}

// compareReal compares two Reals at their contagion rank. A float against a
// rational compares exact values.
func compareReal(a, b Number) (int, bool) {
	if a.kind == KindFixnum && b.kind == KindFixnum {
		x, y := a.fixnum(), b.fixnum()
		switch {
		case x < y:
			return -1, true
		case x > y:
			return 1, true
		}
		return 0, true
	}

	switch r := Contagion(a, b); r {
	case RankInteger:
		return integerCmp(a, b), true
	case RankRatio:
		return ratOf(a).Cmp(ratOf(b)), true
	default:
		if a.IsRational() {
			c, ordered := compareFloatRational(b, a)
			return -c, ordered
		}
		if b.IsRational() {
			return compareFloatRational(a, b)
		}
		k := floatKindOfRank(r)
		x, y := floatValue(toFloat(a, k)), floatValue(toFloat(b, k))
		switch {
		case math.IsNaN(x) || math.IsNaN(y):
			return 0, false
		case x < y:
			return -1, true
		case x > y:
			return 1, true
		}
		return 0, true
	}
}

// compareFloatRational compares the exact value of a float with a rational
func compareFloatRational(f, q Number) (int, bool) {
	x := floatValue(f)
	switch {
	case math.IsNaN(x):
		return 0, false
	case math.IsInf(x, 1):
		return 1, true
	case math.IsInf(x, -1):
		return -1, true
	}
	return new(big.Rat).SetFloat64(x).Cmp(ratOf(q)), true
}

func integerCmp(a, b Number) int {
	var x, y *big.Int
	if a.kind == KindBignum {
		x = a.bignum()
	} else {
		x = big.NewInt(a.fixnum())
	}
	if b.kind == KindBignum {
		y = b.bignum()
	} else {
		y = big.NewInt(b.fixnum())
	}
	return x.Cmp(y)
}

// NumEqual reports numeric equality across kinds (Lisp =). Complex numbers
// compare by parts. NaN is never equal to anything.
func NumEqual(a, b Number) bool {
	if a.kind == KindComplex || b.kind == KindComplex {
		return NumEqual(a.Realpart(), b.Realpart()) && NumEqual(a.Imagpart(), b.Imagpart())
	}
	c, ordered := compareReal(a, b)
	return ordered && c == 0
}

func ordering(name string, a, b Number, accept func(int) bool) (bool, error) {
	if a.kind == KindComplex {
		return false, domainError(name, "real", a)
	}
	if b.kind == KindComplex {
		return false, domainError(name, "real", b)
	}
	c, ordered := compareReal(a, b)
	return ordered && accept(c), nil
}

// Lt reports a < b
func Lt(a, b Number) (bool, error) {
	return ordering("<", a, b, func(c int) bool { return c < 0 })
}

// Le reports a <= b
func Le(a, b Number) (bool, error) {
	return ordering("<=", a, b, func(c int) bool { return c <= 0 })
}

// Gt reports a > b
func Gt(a, b Number) (bool, error) {
	return ordering(">", a, b, func(c int) bool { return c > 0 })
}

// Ge reports a >= b
func Ge(a, b Number) (bool, error) {
	return ordering(">=", a, b, func(c int) bool { return c >= 0 })
}

// Max returns the greater argument unchanged
func Max(a, b Number) (Number, error) {
	c, err := Compare(a, b)
	if err != nil {
		return Zero, err
	}
	if c < 0 {
		return b, nil
	}
	return a, nil
}

// Min returns the lesser argument unchanged
func Min(a, b Number) (Number, error) {
	c, err := Compare(a, b)
	if err != nil {
		return Zero, err
	}
	if c > 0 {
		return b, nil
	}
	return a, nil
}

// Eql reports identity in kind and value. Floats compare by bit pattern, so
// 0.0 and -0.0 differ; all NaNs of one kind are eql.
func Eql(a, b Number) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindFixnum, KindSingleFloat:
		if a.kind == KindSingleFloat && math.IsNaN(float64(a.single())) {
			return math.IsNaN(float64(b.single()))
		}
		return a.word == b.word
	case KindBignum:
		return a.bignum().Cmp(b.bignum()) == 0
	case KindRatio:
		x, y := a.ratio(), b.ratio()
		return x.num.Cmp(y.num) == 0 && x.den.Cmp(y.den) == 0
	case KindComplex:
		x, y := a.complex(), b.complex()
		return Eql(x.re, y.re) && Eql(x.im, y.im)
	}
	x, y := floatValue(a), floatValue(b)
	if math.IsNaN(x) {
		return math.IsNaN(y)
	}
	return math.Float64bits(x) == math.Float64bits(y)
}

// Equal is the method form of Eql
func (x Number) Equal(y Number) bool {
	return Eql(x, y)
}
