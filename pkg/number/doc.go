// Package number implements the numeric tower of a Lisp-family runtime.
//
// Package: number
// Title: Numeric Tower
// Description: Fixnums, bignums, ratios, four float kinds and complex
//              numbers as one immutable value type. Mixed-kind operations
//              promote along Integer < Ratio < Short < Single < Double <
//              Long < Complex; exact results are always canonical and
//              fixnum arithmetic never wraps.
// Author: msto63
// Version: v0.3.0
// Created: 2025-12-06
// Modified: 2026-01-12
//
// Change History:
// - 2025-12-06 v0.1.0: Representation, contagion, arithmetic and comparison
// - 2025-12-20 v0.2.0: Rounding division, transcendentals, expt
// - 2026-01-12 v0.3.0: Bit operations, Sxhash and canonical text
//
// Errors:
//
// Exact division by zero returns a DivisionByZero error and an operand of
// the wrong kind returns a DomainTypeError, both as *error.Error values
// from foundation/core/error. Float operations follow IEEE 754 and never
// fail. Overflow is never an error.
//
// Usage:
//
//	a, _ := number.MakeRatio(number.Fixnum(1), number.Fixnum(3))
//	sum := number.Add(a, number.DoubleFloat(0.5)) // 0.8333333333333333d0
//
//	q, r, err := number.Floor(number.Fixnum(-7), number.Fixnum(2)) // -4, 1
//	if number.IsDivisionByZero(err) {
//		// ...
//	}
package number
