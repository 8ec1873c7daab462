// ============================================================================
// numtower - Numerischer Turm
// ============================================================================
//
// Package:     number
// Description: Generic arithmetic over the numeric tower
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

// The tables are assigned in init since their exact complex routines call
// back into Add, Sub, Mul and Div.
var addOp, subOp, mulOp, divOp *binop

func init() {
	addOp = &binop{
		name: "+",
		fixnum: func(a, b int64) (Number, bool) {
			// Two fixnums never overflow int64; Int64 promotes out of range sums.
			return Int64(a + b), true
		},
		integer: func(a, b *big.Int) (Number, error) {
			return normInt(a.Add(a, b)), nil
		},
		ratio: func(an, ad, bn, bd *big.Int) (Number, error) {
			n := new(big.Int).Mul(an, bd)
			n.Add(n, new(big.Int).Mul(bn, ad))
			return normRatio(n, ad.Mul(ad, bd)), nil
		},
		float: func(a, b float64) float64 { return a + b },
		exact: func(ar, ai, br, bi Number) (Number, error) {
			return makeComplex(Add(ar, br), Add(ai, bi)), nil
		},
		inexact: func(a, b complex128) complex128 { return a + b },
	}

	subOp = &binop{
		name: "-",
		fixnum: func(a, b int64) (Number, bool) {
			return Int64(a - b), true
		},
		integer: func(a, b *big.Int) (Number, error) {
			return normInt(a.Sub(a, b)), nil
		},
		ratio: func(an, ad, bn, bd *big.Int) (Number, error) {
			n := new(big.Int).Mul(an, bd)
			n.Sub(n, new(big.Int).Mul(bn, ad))
			return normRatio(n, ad.Mul(ad, bd)), nil
		},
		float: func(a, b float64) float64 { return a - b },
		exact: func(ar, ai, br, bi Number) (Number, error) {
			return makeComplex(Sub(ar, br), Sub(ai, bi)), nil
		},
		inexact: func(a, b complex128) complex128 { return a - b },
	}

	mulOp = &binop{
		name: "*",
		fixnum: func(a, b int64) (Number, bool) {
			if a == 0 || b == 0 {
				return Zero, true
			}
			p := a * b
			if p/b != a {
				return Zero, false
			}
			return Int64(p), true
		},
		integer: func(a, b *big.Int) (Number, error) {
			return normInt(a.Mul(a, b)), nil
		},
		ratio: func(an, ad, bn, bd *big.Int) (Number, error) {
			return normRatio(an.Mul(an, bn), ad.Mul(ad, bd)), nil
		},
		float: func(a, b float64) float64 { return a * b },
		exact: func(ar, ai, br, bi Number) (Number, error) {
			re := Sub(Mul(ar, br), Mul(ai, bi))
			im := Add(Mul(ar, bi), Mul(ai, br))
			return makeComplex(re, im), nil
		},
		inexact: func(a, b complex128) complex128 { return a * b },
	}

	divOp = &binop{
		name: "/",
		fixnum: func(a, b int64) (Number, bool) {
			if b == 0 || a%b != 0 {
				return Zero, false
			}
			return Int64(a / b), true
		},
		integer: func(a, b *big.Int) (Number, error) {
			return normRatio(a, b), nil
		},
		ratio: func(an, ad, bn, bd *big.Int) (Number, error) {
			return normRatio(an.Mul(an, bd), ad.Mul(ad, bn)), nil
		},
		float: func(a, b float64) float64 { return a / b },
		exact: func(ar, ai, br, bi Number) (Number, error) {
			den := Add(Mul(br, br), Mul(bi, bi))
			re, err := Div(Add(Mul(ar, br), Mul(ai, bi)), den)
			if err != nil {
				return Zero, err
			}
			im, err := Div(Sub(Mul(ai, br), Mul(ar, bi)), den)
			if err != nil {
				return Zero, err
			}
			return makeComplex(re, im), nil
		},
		inexact: func(a, b complex128) complex128 { return a / b },
	}
}

// Add returns a + b
func Add(a, b Number) Number {
	r, _ := addOp.apply(a, b)
	return r
}

// Sub returns a - b
func Sub(a, b Number) Number {
	r, _ := subOp.apply(a, b)
	return r
}

// Mul returns a * b
func Mul(a, b Number) Number {
	r, _ := mulOp.apply(a, b)
	return r
}

// Div returns a / b. An exact zero divisor is a DivisionByZero error
// whatever the dividend; a float zero divisor follows IEEE 754.
func Div(a, b Number) (Number, error) {
	if b.IsRational() && b.Zerop() {
		return Zero, divisionByZero("/", a, b)
	}
	return divOp.apply(a, b)
}

// OnePlus returns x + 1
func OnePlus(x Number) Number {
	return Add(x, One)
}

// OneMinus returns x - 1
func OneMinus(x Number) Number {
	return Sub(x, One)
}

// Reciprocal returns 1/x
func Reciprocal(x Number) (Number, error) {
	return Div(One, x)
}

// Negate returns -x. Negating MostNegativeFixnum yields a Bignum.
func Negate(x Number) Number {
	switch x.kind {
	case KindFixnum:
		return Int64(-x.fixnum())
	case KindBignum:
		return normInt(new(big.Int).Neg(x.bignum()))
	case KindRatio:
		r := x.ratio()
		return Number{kind: KindRatio, box: &ratioBox{num: new(big.Int).Neg(r.num), den: r.den}}
	case KindComplex:
		c := x.complex()
		return Number{kind: KindComplex, box: &complexBox{re: Negate(c.re), im: Negate(c.im)}}
	}
	return makeFloat(x.kind, -floatValue(x))
}

// Abs returns the magnitude of x. For a Complex it is the float hypotenuse
// of its parts, single precision for exact parts.
func Abs(x Number) Number {
	switch {
	case x.kind == KindComplex:
		k := complexFloatKind(x)
		return makeFloat(k, cmplx.Abs(complex128Of(x, k)))
	case x.kind.IsFloat():
		return makeFloat(x.kind, math.Abs(floatValue(x)))
	case x.sign() < 0:
		return Negate(x)
	}
	return x
}

// Signum returns the sign of x. Rationals give -1, 0 or 1; floats give a
// unit or zero of their own kind with the sign kept; NaN stays NaN; a
// Complex gives x/|x|.
func Signum(x Number) Number {
	switch {
	case x.kind == KindComplex:
		if x.Zerop() {
			return x
		}
		k := complexFloatKind(x)
		z := complex128Of(x, k)
		return makeComplexFloat(k, z/complex(cmplx.Abs(z), 0))
	case x.kind.IsFloat():
		f := floatValue(x)
		if f == 0 || math.IsNaN(f) {
			return x
		}
		return makeFloat(x.kind, math.Copysign(1, f))
	}
	return Fixnum(int64(x.sign()))
}

// Conjugate returns the complex conjugate; a Real is its own conjugate
func Conjugate(x Number) Number {
	if x.kind != KindComplex {
		return x
	}
	c := x.complex()
	return Number{kind: KindComplex, box: &complexBox{re: c.re, im: Negate(c.im)}}
}

// Phase returns the angle of x in radians as a float
func Phase(x Number) Number {
	if x.kind == KindComplex {
		k := complexFloatKind(x)
		return makeFloat(k, cmplx.Phase(complex128Of(x, k)))
	}
	k := realFloatKind(x)
	return makeFloat(k, math.Atan2(0, floatValue(toFloat(x, k))))
}

// realFloatKind is the float kind a real function evaluates at: the kind
// of a float argument, single precision for rationals
func realFloatKind(x Number) Kind {
	if x.kind.IsFloat() {
		return x.kind
	}
	return KindSingleFloat
}
