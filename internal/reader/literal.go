// ============================================================================
// numtower - Numerischer Turm
// ============================================================================
//
// Package:     reader
// Description: Numeric literal syntax
// Author:      Mike Stoffels
// Created:     2025-12-21
// License:     MIT
// ============================================================================

package reader

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/msto63/numtower/foundation/core/errors"
	"github.com/msto63/numtower/pkg/number"
)

var (
	integerPattern = regexp.MustCompile(`^[+-]?[0-9]+\.?$`)
	ratioPattern   = regexp.MustCompile(`^([+-]?[0-9]+)/([0-9]+)$`)
	floatPattern   = regexp.MustCompile(`^([+-]?(?:[0-9]+\.[0-9]+|\.[0-9]+|[0-9]+\.?))(?:([esfdlESFDL])([+-]?[0-9]+))?$`)
	specialPattern = regexp.MustCompile(`^([+-]Inf|NaN)\.0(?:([sfdl])0)?$`)
)

// ParseFloatKind maps a configuration name (short, single, double, long) to
// its float kind
func ParseFloatKind(name string) (number.Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "short", "short-float":
		return number.KindShortFloat, nil
	case "single", "single-float", "":
		return number.KindSingleFloat, nil
	case "double", "double-float":
		return number.KindDoubleFloat, nil
	case "long", "long-float":
		return number.KindLongFloat, nil
	}
	return number.KindSingleFloat, errors.InvalidFormat(errors.ModuleReader, name, "float kind (short|single|double|long)")
}

func markerKind(marker string, defaultFloat number.Kind) number.Kind {
	switch strings.ToLower(marker) {
	case "s":
		return number.KindShortFloat
	case "f":
		return number.KindSingleFloat
	case "d":
		return number.KindDoubleFloat
	case "l":
		return number.KindLongFloat
	}
	return defaultFloat
}

// ParseNumber reads text as a numeric literal. ok is false when text is not
// numeric syntax at all; err is set when it is numeric syntax naming an
// invalid value such as 1/0.
func ParseNumber(text string, defaultFloat number.Kind) (n number.Number, ok bool, err error) {
	switch {
	case integerPattern.MatchString(text):
		n, err = number.ParseInteger(strings.TrimSuffix(text, "."))
		return n, err == nil, err

	case ratioPattern.MatchString(text):
		m := ratioPattern.FindStringSubmatch(text)
		num, err := number.ParseInteger(m[1])
		if err != nil {
			return number.Zero, false, err
		}
		den, err := number.ParseInteger(m[2])
		if err != nil {
			return number.Zero, false, err
		}
		n, err = number.MakeRatio(num, den)
		return n, err == nil, err

	case specialPattern.MatchString(text):
		m := specialPattern.FindStringSubmatch(text)
		k := number.KindSingleFloat
		if m[2] != "" {
			k = markerKind(m[2], defaultFloat)
		}
		var f float64
		switch m[1] {
		case "+Inf":
			f = math.Inf(1)
		case "-Inf":
			f = math.Inf(-1)
		default:
			f = math.NaN()
		}
		return floatOfKind(k, f), true, nil

	case floatPattern.MatchString(text):
		m := floatPattern.FindStringSubmatch(text)
		if m[2] == "" && !strings.Contains(m[1], ".") {
			return number.Zero, false, nil
		}
		k := markerKind(m[2], defaultFloat)
		literal := m[1]
		if m[3] != "" {
			literal += "e" + m[3]
		}
		bitSize := 64
		if k == number.KindShortFloat || k == number.KindSingleFloat {
			bitSize = 32
		}
		f, perr := strconv.ParseFloat(literal, bitSize)
		if perr != nil && !isRangeError(perr) {
			return number.Zero, false, errors.InvalidFormat(errors.ModuleReader, text, "float literal")
		}
		return floatOfKind(k, f), true, nil
	}
	return number.Zero, false, nil
}

// isRangeError accepts overflow to infinity and underflow to zero
func isRangeError(err error) bool {
	ne, ok := err.(*strconv.NumError)
	return ok && ne.Err == strconv.ErrRange
}

func floatOfKind(k number.Kind, f float64) number.Number {
	switch k {
	case number.KindShortFloat:
		return number.ShortFloat(float32(f))
	case number.KindDoubleFloat:
		return number.DoubleFloat(f)
	case number.KindLongFloat:
		return number.LongFloat(f)
	}
	return number.SingleFloat(float32(f))
}
