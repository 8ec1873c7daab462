// ============================================================================
// numtower - Numerischer Turm
// ============================================================================
//
// Package:     number
// Description: Type contagion for mixed-kind binary operations
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package number

import "math/big"

// Contagion returns the rank at which a binary operation on a and b runs
func Contagion(a, b Number) Rank {
	ra, rb := a.kind.Rank(), b.kind.Rank()
	if ra > rb {
		return ra
	}
	return rb
}

// binop holds one routine per rank group. Each routine receives operands
// already promoted to its group.
type binop struct {
	name    string
	fixnum  func(a, b int64) (Number, bool)
	integer func(a, b *big.Int) (Number, error)
	ratio   func(an, ad, bn, bd *big.Int) (Number, error)
	float   func(a, b float64) float64
	exact   func(ar, ai, br, bi Number) (Number, error)
	inexact func(a, b complex128) complex128
}

// apply promotes the lower-ranked operand and dispatches
func (op *binop) apply(a, b Number) (Number, error) {
	if a.kind == KindFixnum && b.kind == KindFixnum && op.fixnum != nil {
		if r, ok := op.fixnum(a.fixnum(), b.fixnum()); ok {
			return r, nil
		}
	}

	switch r := Contagion(a, b); r {
	case RankInteger:
		return op.integer(bigOf(a), bigOf(b))
	case RankRatio:
		an, ad := numDen(a)
		bn, bd := numDen(b)
		return op.ratio(an, ad, bn, bd)
	case RankComplex:
		return op.complex(a, b)
	default:
		k := floatKindOfRank(r)
		fa := floatValue(toFloat(a, k))
		fb := floatValue(toFloat(b, k))
		return makeFloat(k, op.float(fa, fb)), nil
	}
}

func (op *binop) complex(a, b Number) (Number, error) {
	ar, ai := a.Realpart(), a.Imagpart()
	br, bi := b.Realpart(), b.Imagpart()
	if a.IsExact() && b.IsExact() {
		return op.exact(ar, ai, br, bi)
	}
	k := complexFloatKind(a, b)
	z := op.inexact(complex128Of(a, k), complex128Of(b, k))
	return makeComplexFloat(k, z), nil
}

