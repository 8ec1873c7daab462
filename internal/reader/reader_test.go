// ============================================================================
// numtower - Numerischer Turm
// ============================================================================
//
// Package:     reader
// Description: Tests for the s-expression reader
// Author:      Mike Stoffels
// Created:     2025-12-21
// License:     MIT
// ============================================================================

package reader

import (
	"math"
	"testing"

	mdwerror "github.com/msto63/numtower/foundation/core/error"
	"github.com/msto63/numtower/pkg/number"
)

func readNumber(t *testing.T, text string) number.Number {
	t.Helper()
	f, err := ReadString(text, DefaultOptions())
	if err != nil {
		t.Fatalf("ReadString(%q) failed: %v", text, err)
	}
	if f.Kind != FormNumber {
		t.Fatalf("ReadString(%q) = %v, want a number", text, f)
	}
	return f.Number
}

func TestReadLiterals(t *testing.T) {
	tests := []struct {
		text string
		kind number.Kind
		want string
	}{
		{"42", number.KindFixnum, "42"},
		{"+7", number.KindFixnum, "7"},
		{"-13.", number.KindFixnum, "-13"},
		{"123456789012345678901234567890", number.KindBignum, "123456789012345678901234567890"},
		{"6/4", number.KindRatio, "3/2"},
		{"-4/2", number.KindFixnum, "-2"},
		{"1.5", number.KindSingleFloat, "1.5"},
		{".5", number.KindSingleFloat, "0.5"},
		{"1e3", number.KindSingleFloat, "1000.0"},
		{"1.5f0", number.KindSingleFloat, "1.5"},
		{"1.5s0", number.KindShortFloat, "1.5s0"},
		{"1.5d0", number.KindDoubleFloat, "1.5d0"},
		{"2.5D2", number.KindDoubleFloat, "250.0d0"},
		{"1.5l0", number.KindLongFloat, "1.5l0"},
		{"1.5d-7", number.KindDoubleFloat, "1.5d-7"},
		{"#C(1 2)", number.KindComplex, "#C(1 2)"},
		{"#c(1/2 -1)", number.KindComplex, "#C(1/2 -1)"},
		{"#C(3 0)", number.KindFixnum, "3"},
		{"#C(1 2.0d0)", number.KindComplex, "#C(1.0d0 2.0d0)"},
		{"+Inf.0", number.KindSingleFloat, "+Inf.0"},
		{"-Inf.0d0", number.KindDoubleFloat, "-Inf.0d0"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			n := readNumber(t, tt.text)
			if n.Kind() != tt.kind || n.String() != tt.want {
				t.Errorf("read %q = %v (%v), want %s (%v)", tt.text, n, n.Kind(), tt.want, tt.kind)
			}
		})
	}
}

func TestReadNaN(t *testing.T) {
	n := readNumber(t, "NaN.0d0")
	if !number.FloatNaNp(n) || n.Kind() != number.KindDoubleFloat {
		t.Errorf("NaN.0d0 = %v (%v)", n, n.Kind())
	}
}

func TestRoundTrip(t *testing.T) {
	big, _ := number.ParseInteger("-98765432109876543210")
	ratio, _ := number.MakeRatio(number.Fixnum(-22), number.Fixnum(7))
	c, _ := number.MakeComplex(ratio, number.Fixnum(3))
	fc, _ := number.MakeComplex(number.DoubleFloat(0.25), number.DoubleFloat(-1e30))

	values := []number.Number{
		number.Fixnum(0),
		number.Fixnum(number.MostNegativeFixnum),
		big,
		ratio,
		c,
		number.SingleFloat(0.1),
		number.SingleFloat(-3.25e-20),
		number.ShortFloat(2.5),
		number.DoubleFloat(math.Pi),
		number.DoubleFloat(math.Copysign(0, -1)),
		number.LongFloat(1e300),
		fc,
		number.DoubleFloat(math.Inf(1)),
	}

	for _, v := range values {
		t.Run(v.String(), func(t *testing.T) {
			got := readNumber(t, v.String())
			if !number.Eql(got, v) {
				t.Errorf("read(print(%v)) = %v (%v)", v, got, got.Kind())
			}
		})
	}
}

func TestDefaultFloatOption(t *testing.T) {
	opts := Options{DefaultFloat: number.KindDoubleFloat}
	f, err := ReadString("1.5", opts)
	if err != nil || !number.Eql(f.Number, number.DoubleFloat(1.5)) {
		t.Errorf("1.5 with double default = %v, %v", f, err)
	}
	f, _ = ReadString("1.5e0", opts)
	if f.Number.Kind() != number.KindDoubleFloat {
		t.Errorf("1.5e0 with double default kind = %v", f.Number.Kind())
	}
	f, _ = ReadString("1.5f0", opts)
	if f.Number.Kind() != number.KindSingleFloat {
		t.Errorf("1.5f0 with double default kind = %v", f.Number.Kind())
	}
}

func TestParseFloatKind(t *testing.T) {
	tests := map[string]number.Kind{
		"short":  number.KindShortFloat,
		"single": number.KindSingleFloat,
		"Double": number.KindDoubleFloat,
		"long":   number.KindLongFloat,
		"":       number.KindSingleFloat,
	}
	for name, want := range tests {
		got, err := ParseFloatKind(name)
		if err != nil || got != want {
			t.Errorf("ParseFloatKind(%q) = %v, %v; want %v", name, got, err, want)
		}
	}
	if _, err := ParseFloatKind("quad"); !mdwerror.HasCode(err, mdwerror.CodeInvalidFormat) {
		t.Errorf("ParseFloatKind(quad) error = %v", err)
	}
}

func TestReadLists(t *testing.T) {
	forms, err := ReadAll("(+ 1/2 0.5d0) ; sum\n(FLOOR -7 2)", DefaultOptions())
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if len(forms) != 2 {
		t.Fatalf("ReadAll returned %d forms, want 2", len(forms))
	}
	if got := forms[0].String(); got != "(+ 1/2 0.5d0)" {
		t.Errorf("first form = %q", got)
	}
	if got := forms[1].String(); got != "(floor -7 2)" {
		t.Errorf("second form = %q", got)
	}

	nested, err := ReadString("(sqrt (- 0 4))", DefaultOptions())
	if err != nil || nested.Kind != FormList || nested.List[1].Kind != FormList {
		t.Errorf("nested form = %v, %v", nested, err)
	}
	empty, err := ReadString("()", DefaultOptions())
	if err != nil || empty.Kind != FormList || len(empty.List) != 0 {
		t.Errorf("empty list = %v, %v", empty, err)
	}
}

func TestReadSymbols(t *testing.T) {
	for _, text := range []string{"+", "-", "1+", "expt", "1/", "x1.5"} {
		f, err := ReadString(text, DefaultOptions())
		if err != nil || f.Kind != FormSymbol {
			t.Errorf("ReadString(%q) = %v (%v), %v; want a symbol", text, f, f.Kind, err)
		}
	}
}

func TestReadErrors(t *testing.T) {
	tests := []string{
		"(+ 1 2",
		")",
		"#C(1)",
		"#C(1 2 3)",
		"#X10",
		"1 2",
		"",
	}
	for _, text := range tests {
		if _, err := ReadString(text, DefaultOptions()); !mdwerror.HasCode(err, mdwerror.CodeInvalidFormat) {
			t.Errorf("ReadString(%q) error = %v, want INVALID_FORMAT", text, err)
		}
	}

	if _, err := ReadString("1/0", DefaultOptions()); !number.IsDivisionByZero(err) {
		t.Errorf("ReadString(1/0) error = %v, want division by zero", err)
	}
	if _, err := ReadString("#C(#C(1 2) 3)", DefaultOptions()); !number.IsDomainTypeError(err) {
		t.Errorf("nested complex error = %v, want domain type error", err)
	}
}
