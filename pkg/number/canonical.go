// ============================================================================
// numtower - Numerischer Turm
// ============================================================================
//
// Package:     number
// Description: Canonical forms and exact conversions
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package number

import "math/big"

var (
	bigMinFixnum = big.NewInt(MostNegativeFixnum)
	bigMaxFixnum = big.NewInt(MostPositiveFixnum)
	bigOne       = big.NewInt(1)
)

// normInt takes ownership of b and returns a Fixnum when it fits
func normInt(b *big.Int) Number {
	if b.Cmp(bigMinFixnum) >= 0 && b.Cmp(bigMaxFixnum) <= 0 {
		return Number{kind: KindFixnum, word: uint64(b.Int64())}
	}
	return Number{kind: KindBignum, box: b}
}

// normRatio takes ownership of num and den (den != 0) and returns the
// canonical rational
func normRatio(num, den *big.Int) Number {
	if den.Sign() < 0 {
		num.Neg(num)
		den.Neg(den)
	}
	g := new(big.Int).GCD(nil, nil, num, den)
	if g.Cmp(bigOne) != 0 {
		num.Quo(num, g)
		den.Quo(den, g)
	}
	if den.Cmp(bigOne) == 0 {
		return normInt(num)
	}
	return Number{kind: KindRatio, box: &ratioBox{num: num, den: den}}
}

// bigOf returns a fresh big.Int for an Integer
func bigOf(x Number) *big.Int {
	if x.kind == KindFixnum {
		return big.NewInt(x.fixnum())
	}
	return new(big.Int).Set(x.bignum())
}

// numDen returns fresh copies of numerator and denominator of a rational
func numDen(x Number) (*big.Int, *big.Int) {
	if x.kind == KindRatio {
		r := x.ratio()
		return new(big.Int).Set(r.num), new(big.Int).Set(r.den)
	}
	return bigOf(x), big.NewInt(1)
}

// ratOf converts a rational to big.Rat
func ratOf(x Number) *big.Rat {
	n, d := numDen(x)
	return new(big.Rat).SetFrac(n, d)
}

// fromRat returns the canonical rational for r
func fromRat(r *big.Rat) Number {
	return normRatio(new(big.Int).Set(r.Num()), new(big.Int).Set(r.Denom()))
}

