// ============================================================================
// numtower - Numerischer Turm
// ============================================================================
//
// Package:     number
// Description: Canonical printed representation
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package number

import (
	"math"
	"strconv"
	"strings"
)

// ExponentMarker returns the exponent letter that tags a float kind in
// printed form. Single floats print without a marker.
func ExponentMarker(k Kind) byte {
	switch k {
	case KindShortFloat:
		return 's'
	case KindDoubleFloat:
		return 'd'
	case KindLongFloat:
		return 'l'
	default:
		return 'f'
	}
}

// String returns the canonical text of x: 42, -3/2, 1.5, 1.5d0, #C(1 2)
func (x Number) String() string {
	switch x.kind {
	case KindFixnum:
		return strconv.FormatInt(x.fixnum(), 10)
	case KindBignum:
		return x.bignum().String()
	case KindRatio:
		r := x.ratio()
		return r.num.String() + "/" + r.den.String()
	case KindComplex:
		c := x.complex()
		return "#C(" + c.re.String() + " " + c.im.String() + ")"
	}
	return formatFloat(x.kind, floatValue(x))
}

func formatFloat(k Kind, f float64) string {
	var text string
	switch {
	case math.IsNaN(f):
		text = "NaN.0"
	case math.IsInf(f, 1):
		text = "+Inf.0"
	case math.IsInf(f, -1):
		text = "-Inf.0"
	}

	marker := ExponentMarker(k)
	if text != "" {
		if k == KindSingleFloat {
			return text
		}
		return text + string(marker) + "0"
	}

	bitSize := 64
	if halfPrecision(k) {
		bitSize = 32
	}
	s := strconv.FormatFloat(f, 'g', -1, bitSize)
	mantissa, exponent, hasExp := strings.Cut(s, "e")
	if !strings.ContainsAny(mantissa, ".") {
		mantissa += ".0"
	}
	if hasExp {
		exponent = strings.TrimPrefix(exponent, "+")
		neg := strings.HasPrefix(exponent, "-")
		exponent = strings.TrimLeft(strings.TrimPrefix(exponent, "-"), "0")
		if neg {
			exponent = "-" + exponent
		}
	} else {
		exponent = "0"
	}

	if k == KindSingleFloat {
		if hasExp {
			return mantissa + "e" + exponent
		}
		return mantissa
	}
	return mantissa + string(marker) + exponent
}
