// ============================================================================
// numtower - Numerischer Turm
// ============================================================================
//
// Package:     number
// Description: Integer bit operations, gcd and lcm
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package number

import "math/big"

// Bitwise operations use two's complement semantics on the infinite-width
// representation of an Integer.

func requireIntegers(op string, nums ...Number) error {
	for _, n := range nums {
		if !n.IsInteger() {
			return domainError(op, "integer", n)
		}
	}
	return nil
}

// maxExactBits bounds the magnitude of exact integers produced by Ash and
// Expt, whose result size grows with an operand rather than with the inputs'
// own size.
const maxExactBits = 1 << 28

// exceedsExactBits reports whether bits*|e| is above maxExactBits
func exceedsExactBits(bits int, e *big.Int) bool {
	est := new(big.Int).Abs(e)
	est.Mul(est, big.NewInt(int64(bits)))
	return est.Cmp(big.NewInt(maxExactBits)) > 0
}

// Ash shifts x left by count bits, or right when count is negative. A left
// shift whose result would exceed maxExactBits is a DomainTypeError.
func Ash(x, count Number) (Number, error) {
	if err := requireIntegers("ash", x, count); err != nil {
		return Zero, err
	}
	c, ok := count.Int64()
	if !ok {
		if x.sign() == 0 {
			return Zero, nil
		}
		if count.sign() < 0 {
			if x.sign() < 0 {
				return MinusOne, nil
			}
			return Zero, nil
		}
		return Zero, domainError("ash", "shift count in fixnum range", count)
	}
	if c == 0 || x.sign() == 0 {
		return x, nil
	}
	b := bigOf(x)
	if c > 0 && int64(b.BitLen())+c > maxExactBits {
		return Zero, domainError("ash", "shift with a result below the exact size limit", count)
	}
	if c > 0 {
		return normInt(b.Lsh(b, uint(c))), nil
	}
	// big.Int.Rsh rounds toward negative infinity, which is the arithmetic shift.
	return normInt(b.Rsh(b, uint(-c))), nil
}

// IntegerLength returns the number of bits needed to represent x in two's
// complement, excluding the sign bit
func IntegerLength(x Number) (Number, error) {
	if err := requireIntegers("integer-length", x); err != nil {
		return Zero, err
	}
	b := bigOf(x)
	if b.Sign() < 0 {
		b.Not(b)
	}
	return Int64(int64(b.BitLen())), nil
}

func logical(op string, a, b Number, fix func(x, y int64) int64, big2 func(z, x, y *big.Int) *big.Int) (Number, error) {
	if err := requireIntegers(op, a, b); err != nil {
		return Zero, err
	}
	if a.kind == KindFixnum && b.kind == KindFixnum {
		return Int64(fix(a.fixnum(), b.fixnum())), nil
	}
	x, y := bigOf(a), bigOf(b)
	return normInt(big2(x, x, y)), nil
}

// Logand returns the bitwise and
func Logand(a, b Number) (Number, error) {
	return logical("logand", a, b, func(x, y int64) int64 { return x & y }, (*big.Int).And)
}

// Logior returns the bitwise inclusive or
func Logior(a, b Number) (Number, error) {
	return logical("logior", a, b, func(x, y int64) int64 { return x | y }, (*big.Int).Or)
}

// Logxor returns the bitwise exclusive or
func Logxor(a, b Number) (Number, error) {
	return logical("logxor", a, b, func(x, y int64) int64 { return x ^ y }, (*big.Int).Xor)
}

// Lognot returns the bitwise complement, -x-1
func Lognot(x Number) (Number, error) {
	if err := requireIntegers("lognot", x); err != nil {
		return Zero, err
	}
	if x.kind == KindFixnum {
		return Int64(^x.fixnum()), nil
	}
	b := bigOf(x)
	return normInt(b.Not(b)), nil
}

// Gcd returns the non-negative greatest common divisor
func Gcd(a, b Number) (Number, error) {
	if err := requireIntegers("gcd", a, b); err != nil {
		return Zero, err
	}
	x, y := bigOf(a), bigOf(b)
	return normInt(new(big.Int).GCD(nil, nil, x.Abs(x), y.Abs(y))), nil
}

// Lcm returns the non-negative least common multiple; 0 when either
// argument is 0
func Lcm(a, b Number) (Number, error) {
	if err := requireIntegers("lcm", a, b); err != nil {
		return Zero, err
	}
	if a.Zerop() || b.Zerop() {
		return Zero, nil
	}
	x, y := bigOf(a), bigOf(b)
	x.Abs(x)
	y.Abs(y)
	g := new(big.Int).GCD(nil, nil, x, y)
	return normInt(x.Mul(x.Quo(x, g), y)), nil
}
