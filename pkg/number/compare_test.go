package number

import (
	"math"
	"testing"
)

func TestCompare(t *testing.T) {
	big := mustParse(t, "100000000000000000000")

	tests := []struct {
		name string
		a, b Number
		want int
	}{
		{"fixnums", Fixnum(1), Fixnum(2), -1},
		{"ratio vs single", mustRatio(t, 1, 2), SingleFloat(0.5), 0},
		{"bignum vs fixnum", big, Fixnum(MostPositiveFixnum), 1},
		{"negative bignum", Negate(big), Fixnum(MostNegativeFixnum), -1},
		{"ratios", mustRatio(t, 1, 3), mustRatio(t, 1, 2), -1},
		{"double vs long", DoubleFloat(2), LongFloat(2), 0},
		{"infinity", DoubleFloat(math.Inf(1)), big, 1},
		{"negative infinity", big, DoubleFloat(math.Inf(-1)), 1},
		{"fixnum above double precision", Fixnum(1<<53 + 1), DoubleFloat(1 << 53), 1},
		{"ratio vs nearest single", mustRatio(t, 1, 3), SingleFloat(1.0 / 3), -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Compare(tt.a, tt.b)
			if err != nil || got != tt.want {
				t.Errorf("Compare(%v, %v) = %d, %v; want %d", tt.a, tt.b, got, err, tt.want)
			}
		})
	}
}

func TestCompareErrors(t *testing.T) {
	c := mustComplex(t, One, Fixnum(2))
	if _, err := Compare(c, One); !IsDomainTypeError(err) {
		t.Errorf("Compare(complex, 1) error = %v", err)
	}
	if _, err := Compare(One, c); !IsDomainTypeError(err) {
		t.Errorf("Compare(1, complex) error = %v", err)
	}
	if _, err := Compare(DoubleFloat(math.NaN()), One); !IsDomainTypeError(err) {
		t.Errorf("Compare(NaN, 1) error = %v", err)
	}
	if _, err := Lt(c, One); !IsDomainTypeError(err) {
		t.Errorf("Lt(complex, 1) error = %v", err)
	}
	if _, err := Max(c, One); !IsDomainTypeError(err) {
		t.Errorf("Max(complex, 1) error = %v", err)
	}
}

func TestOrderingPredicates(t *testing.T) {
	nan := DoubleFloat(math.NaN())

	tests := []struct {
		name string
		fn   func(a, b Number) (bool, error)
		a, b Number
		want bool
	}{
		{"1<2", Lt, One, Fixnum(2), true},
		{"2<1", Lt, Fixnum(2), One, false},
		{"2<=2d0", Le, Fixnum(2), DoubleFloat(2), true},
		{"1/2>1/3", Gt, mustRatio(t, 1, 2), mustRatio(t, 1, 3), true},
		{"2>=2.0", Ge, Fixnum(2), SingleFloat(2), true},
		{"NaN<1", Lt, nan, One, false},
		{"1<NaN", Lt, One, nan, false},
		{"NaN>=NaN", Ge, nan, nan, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.fn(tt.a, tt.b)
			if err != nil || got != tt.want {
				t.Errorf("got %v, %v; want %v", got, err, tt.want)
			}
		})
	}
}

func TestNumEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Number
		want bool
	}{
		{"1 = 1.0", One, SingleFloat(1), true},
		{"1/2 = 0.5d0", mustRatio(t, 1, 2), DoubleFloat(0.5), true},
		{"complex parts", mustComplex(t, One, Fixnum(2)), mustComplex(t, SingleFloat(1), SingleFloat(2)), true},
		{"complex vs real", mustComplex(t, SingleFloat(1), SingleFloat(0)), One, true},
		{"different", One, Fixnum(2), false},
		{"NaN", DoubleFloat(math.NaN()), DoubleFloat(math.NaN()), false},
		{"signed zeros", DoubleFloat(0), DoubleFloat(math.Copysign(0, -1)), true},
		{"2^53+1 = 2^53d0", Fixnum(1<<53 + 1), DoubleFloat(1 << 53), false},
		{"-0.0 = 0", DoubleFloat(math.Copysign(0, -1)), Zero, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NumEqual(tt.a, tt.b); got != tt.want {
				t.Errorf("NumEqual(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestNumEqualTransitive(t *testing.T) {
	a, b, c := Fixnum(1<<53), DoubleFloat(1<<53), Fixnum(1<<53+1)
	if !NumEqual(a, b) {
		t.Fatalf("NumEqual(%v, %v) = false", a, b)
	}
	if NumEqual(b, c) {
		t.Errorf("NumEqual(%v, %v) = true although %v /= %v", b, c, a, c)
	}
}

func TestMaxMin(t *testing.T) {
	hi, err := Max(One, SingleFloat(2.5))
	if err != nil || !Eql(hi, SingleFloat(2.5)) {
		t.Errorf("Max(1, 2.5) = %v, %v", hi, err)
	}
	lo, err := Min(mustRatio(t, -1, 2), DoubleFloat(0))
	if err != nil || lo.String() != "-1/2" {
		t.Errorf("Min(-1/2, 0d0) = %v, %v", lo, err)
	}
}

func TestEql(t *testing.T) {
	negZero := DoubleFloat(math.Copysign(0, -1))
	otherNaN := DoubleFloat(math.Float64frombits(0x7ff8000000000002))

	tests := []struct {
		name string
		a, b Number
		want bool
	}{
		{"fixnums", Fixnum(3), Fixnum(3), true},
		{"fixnum vs single", One, SingleFloat(1), false},
		{"singles", SingleFloat(1), SingleFloat(1), true},
		{"short vs single", ShortFloat(1), SingleFloat(1), false},
		{"signed zeros", DoubleFloat(0), negZero, false},
		{"NaN payloads", DoubleFloat(math.NaN()), otherNaN, true},
		{"bignums", mustParse(t, "100000000000000000000"), Mul(mustParse(t, "10000000000"), mustParse(t, "10000000000")), true},
		{"ratios", mustRatio(t, 2, 4), mustRatio(t, 1, 2), true},
		{"complexes", mustComplex(t, One, Fixnum(2)), Add(mustComplex(t, Zero, Fixnum(2)), One), true},
		{"complex kinds", mustComplex(t, SingleFloat(1), SingleFloat(2)), mustComplex(t, DoubleFloat(1), DoubleFloat(2)), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Eql(tt.a, tt.b); got != tt.want {
				t.Errorf("Eql(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("%v.Equal(%v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}
