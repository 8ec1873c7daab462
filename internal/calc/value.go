// ============================================================================
// numtower - Numerischer Turm
// ============================================================================
//
// Package:     calc
// Description: Evaluation results
// Author:      Mike Stoffels
// Created:     2025-12-22
// License:     MIT
// ============================================================================

package calc

import (
	"strings"

	"github.com/msto63/numtower/foundation/core/errors"
	"github.com/msto63/numtower/pkg/number"
)

// Value is a number or a generalized boolean (T / NIL)
type Value struct {
	boolean bool
	truth   bool
	num     number.Number
}

// Num wraps a number
func Num(n number.Number) Value {
	return Value{num: n}
}

// Bool wraps a truth value
func Bool(b bool) Value {
	return Value{boolean: true, truth: b}
}

// IsNumber reports whether v holds a number
func (v Value) IsNumber() bool {
	return !v.boolean
}

// Number returns the wrapped number
func (v Value) Number() number.Number {
	return v.num
}

// Truth returns the truth value; every number is true
func (v Value) Truth() bool {
	return !v.boolean || v.truth
}

// String prints numbers canonically and booleans as T or NIL
func (v Value) String() string {
	switch {
	case !v.boolean:
		return v.num.String()
	case v.truth:
		return "T"
	default:
		return "NIL"
	}
}

// Values holds every value an operator returns; the first is the primary
// value
type Values []Value

// Primary returns the first value or NIL
func (vs Values) Primary() Value {
	if len(vs) == 0 {
		return Bool(false)
	}
	return vs[0]
}

// String joins the printed values with spaces
func (vs Values) String() string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = v.String()
	}
	return strings.Join(parts, " ")
}

func numbers(op string, args []Value) ([]number.Number, error) {
	out := make([]number.Number, len(args))
	for i, a := range args {
		if !a.IsNumber() {
			return nil, errors.DomainTypeError(errors.ModuleCalc, op, "number", a)
		}
		out[i] = a.num
	}
	return out, nil
}

func one(n number.Number) Values {
	return Values{Num(n)}
}

func two(a, b number.Number) Values {
	return Values{Num(a), Num(b)}
}
