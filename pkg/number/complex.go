// ============================================================================
// numtower - Numerischer Turm
// ============================================================================
//
// Package:     number
// Description: Complex construction and component helpers
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package number

// MakeComplex builds re + im*i. An exact rational im of 0 collapses to re.
// When either part is a float both parts are converted to the wider float
// kind and the result is always a Complex.
func MakeComplex(re, im Number) (Number, error) {
	if !re.IsReal() {
		return Zero, domainError("complex", "real", re)
	}
	if !im.IsReal() {
		return Zero, domainError("complex", "real", im)
	}
	return makeComplex(re, im), nil
}

func makeComplex(re, im Number) Number {
	reFloat, imFloat := re.kind.IsFloat(), im.kind.IsFloat()
	switch {
	case reFloat || imFloat:
		var k Kind
		switch {
		case reFloat && imFloat:
			k = widerFloat(re.kind, im.kind)
		case reFloat:
			k = re.kind
		default:
			k = im.kind
		}
		re, im = toFloat(re, k), toFloat(im, k)
	case im.Zerop():
		return re
	}
	return Number{kind: KindComplex, box: &complexBox{re: re, im: im}}
}

// promoteComplex returns x as a Complex. The imaginary part of a float is a
// zero of its kind; for a rational the result stays canonical.
func promoteComplex(x Number) Number {
	if x.kind == KindComplex {
		return x
	}
	if x.kind.IsFloat() {
		return Number{kind: KindComplex, box: &complexBox{re: x, im: makeFloat(x.kind, 0)}}
	}
	return x
}

// complexFloatKind is the component kind of an inexact complex result.
// Exact operands contribute single precision.
func complexFloatKind(nums ...Number) Kind {
	k := KindSingleFloat
	first := true
	for _, n := range nums {
		c := n.Realpart().kind
		if !c.IsFloat() {
			continue
		}
		if first {
			k, first = c, false
			continue
		}
		k = widerFloat(k, c)
	}
	return k
}

func complex128Of(x Number, k Kind) complex128 {
	re := floatValue(toFloat(x.Realpart(), k))
	im := floatValue(toFloat(x.Imagpart(), k))
	return complex(re, im)
}

// makeComplexFloat builds a Complex with float components of kind k. Float
// components never collapse.
func makeComplexFloat(k Kind, z complex128) Number {
	return Number{kind: KindComplex, box: &complexBox{re: makeFloat(k, real(z)), im: makeFloat(k, imag(z))}}
}
