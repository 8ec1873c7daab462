// ============================================================================
// numtower - Numerischer Turm
// ============================================================================
//
// Package:     number
// Description: Hash contribution for eql-keyed tables
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package number

import (
	"hash"
	"hash/fnv"
	"math"
	"math/big"
)

// HashGenerator accumulates hash parts. Add returns false once the
// generator accepts no further parts.
type HashGenerator interface {
	Add(part uint64) bool
}

// canonicalNaN is hashed for every NaN since all NaNs of a kind are eql
const canonicalNaN = 0x7ff8000000000001

// Sxhash feeds x into hg. Eql numbers contribute identical parts.
func (x Number) Sxhash(hg HashGenerator) {
	if !hg.Add(uint64(x.kind)) {
		return
	}
	switch x.kind {
	case KindFixnum:
		hg.Add(x.word)
	case KindBignum:
		hashBig(hg, x.bignum())
	case KindRatio:
		r := x.ratio()
		if hashBig(hg, r.num) {
			hashBig(hg, r.den)
		}
	case KindComplex:
		c := x.complex()
		c.re.Sxhash(hg)
		c.im.Sxhash(hg)
	default:
		f := floatValue(x)
		if math.IsNaN(f) {
			hg.Add(canonicalNaN)
			return
		}
		hg.Add(math.Float64bits(f))
	}
}

func hashBig(hg HashGenerator, b *big.Int) bool {
	if !hg.Add(uint64(b.Sign() + 1)) {
		return false
	}
	for _, w := range b.Bits() {
		if !hg.Add(uint64(w)) {
			return false
		}
	}
	return true
}

// fnvGenerator is an unbounded HashGenerator over FNV-1a
type fnvGenerator struct {
	buf [8]byte
	h   hash.Hash64
}

func (g *fnvGenerator) Add(part uint64) bool {
	for i := range g.buf {
		g.buf[i] = byte(part >> (8 * i))
	}
	g.h.Write(g.buf[:])
	return true
}

// Hash returns a 64-bit FNV-1a hash of x consistent with Eql
func Hash(x Number) uint64 {
	g := &fnvGenerator{h: fnv.New64a()}
	x.Sxhash(g)
	return g.h.Sum64()
}
