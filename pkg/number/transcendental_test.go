// ============================================================================
// numtower - Numerischer Turm
// ============================================================================
//
// Package:     number
// Description: Tests for transcendental functions and expt
// Author:      Mike Stoffels
// Created:     2025-12-20
// License:     MIT
// ============================================================================

package number

import (
	"math"
	"testing"
)

func TestSqrt(t *testing.T) {
	z := Sqrt(Fixnum(-4))
	if !z.IsComplex() {
		t.Fatalf("Sqrt(-4) = %v, want a complex", z)
	}
	if !Zerop(z.Realpart()) || !Eql(z.Imagpart(), SingleFloat(2)) {
		t.Errorf("Sqrt(-4) = %v, want #C(0.0 2.0)", z)
	}
	if got := Sqrt(Fixnum(4)); !Eql(got, SingleFloat(2)) {
		t.Errorf("Sqrt(4) = %v", got)
	}
	if got := Sqrt(DoubleFloat(2.25)); !Eql(got, DoubleFloat(1.5)) {
		t.Errorf("Sqrt(2.25d0) = %v", got)
	}
	z = Sqrt(DoubleFloat(-9))
	if !z.IsComplex() || !Eql(z.Imagpart(), DoubleFloat(3)) {
		t.Errorf("Sqrt(-9d0) = %v", z)
	}

	z = Sqrt(mustComplex(t, DoubleFloat(0), DoubleFloat(2)))
	if !approx(z.Realpart().Float64(), 1, 1e-12) || !approx(z.Imagpart().Float64(), 1, 1e-12) {
		t.Errorf("Sqrt(#C(0d0 2d0)) = %v", z)
	}
}

func TestLog(t *testing.T) {
	z := Log(MinusOne)
	if !z.IsComplex() || !Zerop(z.Realpart()) || !Eql(z.Imagpart(), SingleFloat(math.Pi)) {
		t.Errorf("Log(-1) = %v", z)
	}
	if got := Log(Zero); !FloatInfinityp(got) || got.Float64() > 0 {
		t.Errorf("Log(0) = %v, want -Inf", got)
	}
	if got := Log(One); !Eql(got, SingleFloat(0)) {
		t.Errorf("Log(1) = %v", got)
	}
	if got := Log(DoubleFloat(math.E)); !approx(got.Float64(), 1, 1e-15) || got.Kind() != KindDoubleFloat {
		t.Errorf("Log(e) = %v", got)
	}
	if got := LogBase(Fixnum(8), Fixnum(2)); !approx(got.Float64(), 3, 1e-6) {
		t.Errorf("LogBase(8, 2) = %v", got)
	}
	if got := LogBase(DoubleFloat(1000), DoubleFloat(10)); !approx(got.Float64(), 3, 1e-12) {
		t.Errorf("LogBase(1000d0, 10d0) = %v", got)
	}
}

func TestLog1p(t *testing.T) {
	if got := Log1p(DoubleFloat(1e-20)); !Eql(got, Zero) {
		t.Errorf("Log1p(1d-20) = %v, want exact 0", got)
	}
	if got := Log1p(Zero); !Eql(got, Zero) {
		t.Errorf("Log1p(0) = %v, want exact 0", got)
	}
	if got := Log1p(DoubleFloat(1)); !approx(got.Float64(), math.Ln2, 1e-15) || got.Kind() != KindDoubleFloat {
		t.Errorf("Log1p(1d0) = %v", got)
	}
	if got := Log1p(DoubleFloat(1e-10)); !approx(got.Float64(), math.Log1p(1e-10), 1e-24) {
		t.Errorf("Log1p(1d-10) = %v, want %v", got, math.Log1p(1e-10))
	}
	if got := Log1p(DoubleFloat(math.NaN())); !FloatNaNp(got) {
		t.Errorf("Log1p(NaN) = %v", got)
	}

	z := Log1p(DoubleFloat(-2))
	if !z.IsComplex() || !approx(z.Realpart().Float64(), 0, 1e-15) || !approx(z.Imagpart().Float64(), math.Pi, 1e-15) {
		t.Errorf("Log1p(-2d0) = %v", z)
	}
}

func TestExpAndTrig(t *testing.T) {
	tests := []struct {
		name string
		got  Number
		want Number
	}{
		{"exp 0", Exp(Zero), SingleFloat(1)},
		{"sin 0", Sin(Zero), SingleFloat(0)},
		{"cos 0d0", Cos(DoubleFloat(0)), DoubleFloat(1)},
		{"tan 0s0", Tan(ShortFloat(0)), ShortFloat(0)},
		{"sinh 0", Sinh(Zero), SingleFloat(0)},
		{"cosh 0l0", Cosh(LongFloat(0)), LongFloat(1)},
		{"tanh 0", Tanh(Zero), SingleFloat(0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !Eql(tt.got, tt.want) {
				t.Errorf("got %v (%v), want %v", tt.got, tt.got.Kind(), tt.want)
			}
		})
	}

	if got := Exp(DoubleFloat(1)); !approx(got.Float64(), math.E, 1e-15) {
		t.Errorf("Exp(1d0) = %v", got)
	}
	z := Exp(mustComplex(t, DoubleFloat(0), DoubleFloat(math.Pi)))
	if !approx(z.Realpart().Float64(), -1, 1e-15) || !approx(z.Imagpart().Float64(), 0, 1e-15) {
		t.Errorf("Exp(#C(0 pi)) = %v", z)
	}
	if z := Sin(mustComplex(t, Zero, One)); !z.IsComplex() || z.Realpart().Kind() != KindSingleFloat {
		t.Errorf("Sin(#C(0 1)) = %v", z)
	}
}

func TestAtan2(t *testing.T) {
	got, err := Atan2(One, One)
	if err != nil || got.Kind() != KindSingleFloat || !approx(got.Float64(), math.Pi/4, 1e-7) {
		t.Errorf("Atan2(1, 1) = %v, %v", got, err)
	}
	got, err = Atan2(DoubleFloat(1), MinusOne)
	if err != nil || got.Kind() != KindDoubleFloat || !approx(got.Float64(), 3*math.Pi/4, 1e-15) {
		t.Errorf("Atan2(1d0, -1) = %v, %v", got, err)
	}
	if _, err := Atan2(mustComplex(t, One, One), One); !IsDomainTypeError(err) {
		t.Errorf("Atan2(complex) error = %v", err)
	}
}

func TestIsqrt(t *testing.T) {
	tests := []struct {
		in   Number
		want string
	}{
		{Fixnum(17), "4"},
		{Fixnum(16), "4"},
		{Zero, "0"},
		{mustParse(t, "10000000000000000000000000000000000000000"), "100000000000000000000"},
	}
	for _, tt := range tests {
		got, err := Isqrt(tt.in)
		if err != nil || got.String() != tt.want {
			t.Errorf("Isqrt(%v) = %v, %v; want %s", tt.in, got, err, tt.want)
		}
	}

	for _, bad := range []Number{MinusOne, SingleFloat(4), mustRatio(t, 1, 4)} {
		if _, err := Isqrt(bad); !IsDomainTypeError(err) {
			t.Errorf("Isqrt(%v) error = %v", bad, err)
		}
	}
}

func TestExpt(t *testing.T) {
	i := mustComplex(t, Zero, One)

	tests := []struct {
		name        string
		base, power Number
		want        Number
	}{
		{"2^10", Fixnum(2), Fixnum(10), Fixnum(1024)},
		{"2^100", Fixnum(2), Fixnum(100), mustParse(t, "1267650600228229401496703205376")},
		{"2^-2", Fixnum(2), Fixnum(-2), mustRatio(t, 1, 4)},
		{"(2/3)^2", mustRatio(t, 2, 3), Fixnum(2), mustRatio(t, 4, 9)},
		{"(-2/3)^-3", mustRatio(t, -2, 3), Fixnum(-3), mustRatio(t, -27, 8)},
		{"0^0", Zero, Zero, One},
		{"0^5", Zero, Fixnum(5), Zero},
		{"2.5d0^0", DoubleFloat(2.5), Zero, DoubleFloat(1)},
		{"2d0^3", DoubleFloat(2), Fixnum(3), DoubleFloat(8)},
		{"i^2", i, Fixnum(2), MinusOne},
		{"i^-1", i, MinusOne, Negate(i)},
		{"i^0", i, Zero, One},
		{"4^1/2", Fixnum(4), mustRatio(t, 1, 2), SingleFloat(2)},
		{"0^1/2", Zero, mustRatio(t, 1, 2), SingleFloat(0)},
		{"9d0^0.5", DoubleFloat(9), SingleFloat(0.5), DoubleFloat(3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Expt(tt.base, tt.power)
			if err != nil || !Eql(got, tt.want) {
				t.Errorf("Expt(%v, %v) = %v, %v; want %v", tt.base, tt.power, got, err, tt.want)
			}
		})
	}
}

func TestExptSpecialCases(t *testing.T) {
	if _, err := Expt(Zero, MinusOne); !IsDivisionByZero(err) {
		t.Errorf("Expt(0, -1) error = %v", err)
	}
	if _, err := Expt(Zero, mustRatio(t, -1, 2)); !IsDivisionByZero(err) {
		t.Errorf("Expt(0, -1/2) error = %v", err)
	}

	unit, err := Expt(mustComplex(t, DoubleFloat(1), DoubleFloat(2)), Zero)
	if err != nil || !unit.IsComplex() || !Eql(unit.Realpart(), DoubleFloat(1)) || !Eql(unit.Imagpart(), DoubleFloat(0)) {
		t.Errorf("Expt(#C(1d0 2d0), 0) = %v, %v", unit, err)
	}

	z, err := Expt(Fixnum(-8), mustRatio(t, 1, 3))
	if err != nil || !z.IsComplex() {
		t.Fatalf("Expt(-8, 1/3) = %v, %v; want a complex", z, err)
	}
	if !approx(z.Realpart().Float64(), 1, 1e-5) || !approx(z.Imagpart().Float64(), math.Sqrt(3), 1e-5) {
		t.Errorf("Expt(-8, 1/3) = %v", z)
	}

	z, err = Expt(mustComplex(t, DoubleFloat(0), DoubleFloat(1)), DoubleFloat(2))
	if err != nil || !approx(z.Realpart().Float64(), -1, 1e-15) {
		t.Errorf("Expt(#C(0d0 1d0), 2d0) = %v, %v", z, err)
	}
}

func TestExptSizeLimit(t *testing.T) {
	i := mustComplex(t, Zero, One)
	most := Fixnum(MostPositiveFixnum)
	huge := mustParse(t, "1180591620717411303424")

	for _, tt := range []struct {
		name        string
		base, power Number
	}{
		{"2^most-positive-fixnum", Fixnum(2), most},
		{"2^2^70", Fixnum(2), huge},
		{"(1/2)^-most-positive-fixnum", mustRatio(t, 1, 2), Negate(most)},
		{"#C(1 1)^most-positive-fixnum", mustComplex(t, One, One), most},
	} {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Expt(tt.base, tt.power); !IsDomainTypeError(err) {
				t.Errorf("Expt(%v, %v) error = %v, want DomainTypeError", tt.base, tt.power, err)
			}
		})
	}

	units := []struct {
		name        string
		base, power Number
		want        Number
	}{
		{"1^2^70", One, huge, One},
		{"-1^most-positive-fixnum", MinusOne, most, MinusOne},
		{"i^most-positive-fixnum", i, most, Negate(i)},
	}
	for _, tt := range units {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Expt(tt.base, tt.power)
			if err != nil || !Eql(got, tt.want) {
				t.Errorf("Expt(%v, %v) = %v, %v; want %v", tt.base, tt.power, got, err, tt.want)
			}
		})
	}

	got, err := Expt(Fixnum(2), Fixnum(1<<20))
	if err != nil {
		t.Fatalf("Expt(2, 2^20) error = %v", err)
	}
	if n, _ := IntegerLength(got); !Eql(n, Fixnum(1<<20+1)) {
		t.Errorf("integer-length of 2^2^20 = %v", n)
	}
}
