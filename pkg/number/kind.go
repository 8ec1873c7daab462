// ============================================================================
// numtower - Numerischer Turm
// ============================================================================
//
// Package:     number
// Description: Numeric kinds and the promotion rank
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package number

// Kind identifies the concrete representation of a Number
type Kind uint8

const (
	KindFixnum Kind = iota
	KindBignum
	KindRatio
	KindShortFloat
	KindSingleFloat
	KindDoubleFloat
	KindLongFloat
	KindComplex
)

var kindNames = [...]string{
	KindFixnum:      "fixnum",
	KindBignum:      "bignum",
	KindRatio:       "ratio",
	KindShortFloat:  "short-float",
	KindSingleFloat: "single-float",
	KindDoubleFloat: "double-float",
	KindLongFloat:   "long-float",
	KindComplex:     "complex",
}

// String returns the Lisp type name of the kind
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// IsFloat reports whether k is one of the four float kinds
func (k Kind) IsFloat() bool {
	return k >= KindShortFloat && k <= KindLongFloat
}

// Rank orders the numeric groups for contagion
type Rank uint8

const (
	RankInteger Rank = iota
	RankRatio
	RankShort
	RankSingle
	RankDouble
	RankLong
	RankComplex
)

var rankNames = [...]string{"integer", "ratio", "short-float", "single-float", "double-float", "long-float", "complex"}

// String returns the group name of the rank
func (r Rank) String() string {
	if int(r) < len(rankNames) {
		return rankNames[r]
	}
	return "unknown"
}

// Rank returns the promotion rank of the kind. Fixnum and Bignum share
// RankInteger.
func (k Kind) Rank() Rank {
	switch k {
	case KindFixnum, KindBignum:
		return RankInteger
	case KindRatio:
		return RankRatio
	case KindShortFloat:
		return RankShort
	case KindSingleFloat:
		return RankSingle
	case KindDoubleFloat:
		return RankDouble
	case KindLongFloat:
		return RankLong
	default:
		return RankComplex
	}
}

// floatKindOfRank maps a float rank back to its kind
func floatKindOfRank(r Rank) Kind {
	switch r {
	case RankShort:
		return KindShortFloat
	case RankDouble:
		return KindDoubleFloat
	case RankLong:
		return KindLongFloat
	default:
		return KindSingleFloat
	}
}

// widerFloat returns the float kind of higher rank
func widerFloat(a, b Kind) Kind {
	if a.Rank() >= b.Rank() {
		return a
	}
	return b
}

// halfPrecision reports whether arithmetic of kind k runs at float32
func halfPrecision(k Kind) bool {
	return k == KindShortFloat || k == KindSingleFloat
}
