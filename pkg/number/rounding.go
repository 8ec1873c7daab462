// ============================================================================
// numtower - Numerischer Turm
// ============================================================================
//
// Package:     number
// Description: Rounding division returning quotient and remainder
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package number

import (
	"math"
	"math/big"
)

// RoundingMode selects how QuoRem rounds the quotient
type RoundingMode int

const (
	RoundingModeFloor    RoundingMode = iota // toward negative infinity
	RoundingModeCeiling                      // toward positive infinity
	RoundingModeTruncate                     // toward zero
	RoundingModeHalfEven                     // to nearest, ties to even
)

// String returns the Lisp operator name of the mode
func (m RoundingMode) String() string {
	switch m {
	case RoundingModeFloor:
		return "floor"
	case RoundingModeCeiling:
		return "ceiling"
	case RoundingModeTruncate:
		return "truncate"
	case RoundingModeHalfEven:
		return "round"
	default:
		return "unknown"
	}
}

// QuoRem divides x by y and rounds the quotient to an Integer according to
// mode. The remainder satisfies q*y + r = x, exactly for rational inputs.
// With float inputs a non-finite quotient is returned as that float
// together with a NaN remainder.
func QuoRem(mode RoundingMode, x, y Number) (q, r Number, err error) {
	name := mode.String()
	if x.kind == KindComplex {
		return Zero, Zero, domainError(name, "real", x)
	}
	if y.kind == KindComplex {
		return Zero, Zero, domainError(name, "real", y)
	}
	if y.IsRational() && y.Zerop() {
		return Zero, Zero, divisionByZero(name, x, y)
	}

	switch rank := Contagion(x, y); {
	case x.kind == KindFixnum && y.kind == KindFixnum:
		q, r = fixnumQuoRem(mode, x.fixnum(), y.fixnum())
		return q, r, nil
	case rank <= RankRatio:
		q = rationalQuo(mode, x, y)
		return q, Sub(x, Mul(q, y)), nil
	default:
		return floatQuoRem(mode, floatKindOfRank(rank), x, y)
	}
}

func fixnumQuoRem(mode RoundingMode, a, b int64) (Number, Number) {
	q, r := a/b, a%b
	if r != 0 {
		sameSign := (r < 0) == (b < 0)
		switch mode {
		case RoundingModeFloor:
			if !sameSign {
				q, r = q-1, r+b
			}
		case RoundingModeCeiling:
			if sameSign {
				q, r = q+1, r-b
			}
		case RoundingModeHalfEven:
			r2, b2 := r, b
			if r2 < 0 {
				r2 = -r2
			}
			if b2 < 0 {
				b2 = -b2
			}
			if 2*r2 > b2 || (2*r2 == b2 && q&1 != 0) {
				if sameSign {
					q, r = q+1, r-b
				} else {
					q, r = q-1, r+b
				}
			}
		}
	}
	return Int64(q), Int64(r)
}

// rationalQuo rounds N/D where x/y = N/D with D > 0
func rationalQuo(mode RoundingMode, x, y Number) Number {
	xn, xd := numDen(x)
	yn, yd := numDen(y)
	n := xn.Mul(xn, yd)
	d := xd.Mul(xd, yn)
	if d.Sign() < 0 {
		n.Neg(n)
		d.Neg(d)
	}

	q := new(big.Int)
	switch mode {
	case RoundingModeFloor:
		// Euclidean division with d > 0 is floor division.
		q.Div(n, d)
	case RoundingModeCeiling:
		q.Div(new(big.Int).Neg(n), d)
		q.Neg(q)
	case RoundingModeTruncate:
		q.Quo(n, d)
	case RoundingModeHalfEven:
		rem := new(big.Int)
		q.DivMod(n, d, rem)
		switch rem.Lsh(rem, 1).Cmp(d) {
		case 1:
			q.Add(q, bigOne)
		case 0:
			if q.Bit(0) == 1 {
				q.Add(q, bigOne)
			}
		}
	}
	return normInt(q)
}

func floatQuoRem(mode RoundingMode, k Kind, x, y Number) (Number, Number, error) {
	fx, fy := floatValue(toFloat(x, k)), floatValue(toFloat(y, k))
	quo := floatValue(makeFloat(k, fx/fy))
	if math.IsNaN(quo) || math.IsInf(quo, 0) {
		return makeFloat(k, quo), makeFloat(k, math.NaN()), nil
	}

	var qf float64
	switch mode {
	case RoundingModeFloor:
		qf = math.Floor(quo)
	case RoundingModeCeiling:
		qf = math.Ceil(quo)
	case RoundingModeTruncate:
		qf = math.Trunc(quo)
	default:
		qf = math.RoundToEven(quo)
	}
	q, err := IntegerFromFloat(qf)
	if err != nil {
		return Zero, Zero, err
	}
	return q, makeFloat(k, fx-qf*fy), nil
}

// Floor divides x by y rounding toward negative infinity
func Floor(x, y Number) (Number, Number, error) {
	return QuoRem(RoundingModeFloor, x, y)
}

// Ceiling divides x by y rounding toward positive infinity
func Ceiling(x, y Number) (Number, Number, error) {
	return QuoRem(RoundingModeCeiling, x, y)
}

// Truncate divides x by y rounding toward zero
func Truncate(x, y Number) (Number, Number, error) {
	return QuoRem(RoundingModeTruncate, x, y)
}

// Round divides x by y rounding to the nearest integer, ties to even
func Round(x, y Number) (Number, Number, error) {
	return QuoRem(RoundingModeHalfEven, x, y)
}

func Floor1(x Number) (Number, Number, error)    { return Floor(x, One) }
func Ceiling1(x Number) (Number, Number, error)  { return Ceiling(x, One) }
func Truncate1(x Number) (Number, Number, error) { return Truncate(x, One) }
func Round1(x Number) (Number, Number, error)    { return Round(x, One) }

// FQuoRem is QuoRem with the quotient returned as a float: of the operands'
// float kind, or Single when both are rational
func FQuoRem(mode RoundingMode, x, y Number) (q, r Number, err error) {
	q, r, err = QuoRem(mode, x, y)
	if err != nil {
		return Zero, Zero, err
	}
	k := KindSingleFloat
	if rank := Contagion(x, y); rank > RankRatio {
		k = floatKindOfRank(rank)
	}
	return toFloat(q, k), r, nil
}

func FFloor(x, y Number) (Number, Number, error)    { return FQuoRem(RoundingModeFloor, x, y) }
func FCeiling(x, y Number) (Number, Number, error)  { return FQuoRem(RoundingModeCeiling, x, y) }
func FTruncate(x, y Number) (Number, Number, error) { return FQuoRem(RoundingModeTruncate, x, y) }
func FRound(x, y Number) (Number, Number, error)    { return FQuoRem(RoundingModeHalfEven, x, y) }

// Mod returns the remainder of Floor
func Mod(x, y Number) (Number, error) {
	_, r, err := Floor(x, y)
	return r, err
}

// Rem returns the remainder of Truncate
func Rem(x, y Number) (Number, error) {
	_, r, err := Truncate(x, y)
	return r, err
}
