// ============================================================================
// numtower - Numerischer Turm
// ============================================================================
//
// Package:     number
// Description: Type and value predicates
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package number

func (x Number) IsFixnum() bool   { return x.kind == KindFixnum }
func (x Number) IsBignum() bool   { return x.kind == KindBignum }
func (x Number) IsRatio() bool    { return x.kind == KindRatio }
func (x Number) IsFloat() bool    { return x.kind.IsFloat() }
func (x Number) IsComplex() bool  { return x.kind == KindComplex }
func (x Number) IsReal() bool     { return x.kind != KindComplex }
func (x Number) IsInteger() bool  { return x.kind == KindFixnum || x.kind == KindBignum }
func (x Number) IsRational() bool { return x.kind <= KindRatio }

// IsExact reports whether x is rational, or a Complex with rational parts
func (x Number) IsExact() bool {
	if x.kind == KindComplex {
		return x.complex().re.IsRational()
	}
	return x.IsRational()
}

// Zerop reports whether x is zero. A float -0.0 is zero.
func (x Number) Zerop() bool {
	switch x.kind {
	case KindFixnum:
		return x.word == 0
	case KindBignum, KindRatio:
		return false
	case KindComplex:
		c := x.complex()
		return c.re.Zerop() && c.im.Zerop()
	}
	return floatValue(x) == 0
}

// sign returns -1, 0 or 1 for a Real. NaN reports 0.
func (x Number) sign() int {
	switch x.kind {
	case KindFixnum:
		switch v := x.fixnum(); {
		case v < 0:
			return -1
		case v > 0:
			return 1
		}
		return 0
	case KindBignum:
		return x.bignum().Sign()
	case KindRatio:
		return x.ratio().num.Sign()
	}
	f := floatValue(x)
	switch {
	case f < 0:
		return -1
	case f > 0:
		return 1
	}
	return 0
}

// Plusp reports whether a Real is strictly positive
func Plusp(x Number) (bool, error) {
	if x.kind == KindComplex {
		return false, domainError("plusp", "real", x)
	}
	return x.sign() > 0, nil
}

// Minusp reports whether a Real is strictly negative
func Minusp(x Number) (bool, error) {
	if x.kind == KindComplex {
		return false, domainError("minusp", "real", x)
	}
	return x.sign() < 0, nil
}

// Zerop reports whether x is zero
func Zerop(x Number) bool {
	return x.Zerop()
}

// Evenp reports whether an Integer is even
func Evenp(x Number) (bool, error) {
	switch x.kind {
	case KindFixnum:
		return x.fixnum()&1 == 0, nil
	case KindBignum:
		return x.bignum().Bit(0) == 0, nil
	}
	return false, domainError("evenp", "integer", x)
}

// Oddp reports whether an Integer is odd
func Oddp(x Number) (bool, error) {
	even, err := Evenp(x)
	if err != nil {
		return false, domainError("oddp", "integer", x)
	}
	return !even, nil
}

