// ============================================================================
// numtower - Numerischer Turm
// ============================================================================
//
// Package:     number
// Description: Number representation, constructors and accessors
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package number

import (
	"math"
	"math/big"
	"unsafe"

	"golang.org/x/exp/constraints"

	"github.com/msto63/numtower/foundation/core/errors"
)

// Fixnum range: a 64-bit word minus two tag bits
const (
	FixnumBits               = 62
	MostPositiveFixnum int64 = 1<<(FixnumBits-1) - 1
	MostNegativeFixnum int64 = -1 << (FixnumBits - 1)
)

// Number is an immutable value of the numeric tower. Fixnum and SingleFloat
// keep their payload in word and never allocate; every other kind points to
// an immutable box. The zero value is the Fixnum 0.
type Number struct {
	kind Kind
	word uint64
	box  interface{}
}

// ratioBox holds a reduced fraction with den > 1
type ratioBox struct {
	num, den *big.Int
}

// floatBox holds Short, Double and Long floats. Short values are float32
// values widened without loss.
type floatBox struct {
	v float64
}

// complexBox holds two Real components of the same exactness
type complexBox struct {
	re, im Number
}

var (
	Zero     = Number{}
	One      = Fixnum(1)
	MinusOne = Fixnum(-1)
)

// Fixnum returns v as an immediate integer. It panics when v is outside
// [MostNegativeFixnum, MostPositiveFixnum]; use Int64 for arbitrary values.
func Fixnum(v int64) Number {
	if v < MostNegativeFixnum || v > MostPositiveFixnum {
		panic("number: fixnum out of range")
	}
	return Number{kind: KindFixnum, word: uint64(v)}
}

// Int64 returns v as a Fixnum, or a Bignum when v is outside the fixnum range
func Int64(v int64) Number {
	if v < MostNegativeFixnum || v > MostPositiveFixnum {
		return Number{kind: KindBignum, box: big.NewInt(v)}
	}
	return Number{kind: KindFixnum, word: uint64(v)}
}

// Uint64 returns v as an Integer
func Uint64(v uint64) Number {
	if v <= uint64(MostPositiveFixnum) {
		return Number{kind: KindFixnum, word: v}
	}
	return Number{kind: KindBignum, box: new(big.Int).SetUint64(v)}
}

// FromInt converts any Go integer type
func FromInt[T constraints.Integer](v T) Number {
	var zero T
	if zero-1 < zero {
		return Int64(int64(v))
	}
	return Uint64(uint64(v))
}

// FromBigInt returns the canonical Integer for b. b is copied.
func FromBigInt(b *big.Int) Number {
	return normInt(new(big.Int).Set(b))
}

// ParseInteger parses a signed decimal integer
func ParseInteger(s string) (Number, error) {
	b, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Zero, errors.InvalidFormat(errors.ModuleNumber, s, "decimal integer")
	}
	return normInt(b), nil
}

// ShortFloat returns a short float
func ShortFloat(v float32) Number {
	return Number{kind: KindShortFloat, box: &floatBox{v: float64(v)}}
}

// SingleFloat returns an immediate single float
func SingleFloat(v float32) Number {
	return Number{kind: KindSingleFloat, word: uint64(math.Float32bits(v))}
}

// DoubleFloat returns a double float
func DoubleFloat(v float64) Number {
	return Number{kind: KindDoubleFloat, box: &floatBox{v: v}}
}

// LongFloat returns a long float. Long floats carry float64 precision.
func LongFloat(v float64) Number {
	return Number{kind: KindLongFloat, box: &floatBox{v: v}}
}

// FromFloat converts float32 to SingleFloat and float64 to DoubleFloat
func FromFloat[T constraints.Float](v T) Number {
	if unsafe.Sizeof(v) == 4 {
		return SingleFloat(float32(v))
	}
	return DoubleFloat(float64(v))
}

// makeFloat builds a float of kind k, rounding v to the kind's precision
func makeFloat(k Kind, v float64) Number {
	switch k {
	case KindShortFloat:
		return ShortFloat(float32(v))
	case KindDoubleFloat:
		return DoubleFloat(v)
	case KindLongFloat:
		return LongFloat(v)
	default:
		return SingleFloat(float32(v))
	}
}

// MakeRatio returns num/den in canonical form: an Integer when den divides
// num, otherwise a reduced Ratio with positive denominator.
func MakeRatio(num, den Number) (Number, error) {
	if !num.IsInteger() {
		return Zero, domainError("make-ratio", "integer", num)
	}
	if !den.IsInteger() {
		return Zero, domainError("make-ratio", "integer", den)
	}
	if den.Zerop() {
		return Zero, divisionByZero("make-ratio", num, den)
	}
	return normRatio(bigOf(num), bigOf(den)), nil
}

// IntegerFromFloat returns the Integer obtained by truncating f toward zero
func IntegerFromFloat(f float64) (Number, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Zero, domainError("truncate", "finite float", DoubleFloat(f))
	}
	t := math.Trunc(f)
	if t >= float64(MostNegativeFixnum) && t <= float64(MostPositiveFixnum) {
		return Int64(int64(t)), nil
	}
	b, _ := new(big.Float).SetFloat64(t).Int(nil)
	return normInt(b), nil
}

// Kind returns the representation kind
func (x Number) Kind() Kind {
	return x.kind
}

// KindOf returns the representation kind of x
func KindOf(x Number) Kind {
	return x.kind
}

// Numerator returns the numerator of a rational; an Integer is its own
// numerator
func (x Number) Numerator() (Number, error) {
	switch x.kind {
	case KindFixnum, KindBignum:
		return x, nil
	case KindRatio:
		return normInt(new(big.Int).Set(x.ratio().num)), nil
	}
	return Zero, domainError("numerator", "rational", x)
}

// Denominator returns the positive denominator of a rational; 1 for an
// Integer
func (x Number) Denominator() (Number, error) {
	switch x.kind {
	case KindFixnum, KindBignum:
		return One, nil
	case KindRatio:
		return normInt(new(big.Int).Set(x.ratio().den)), nil
	}
	return Zero, domainError("denominator", "rational", x)
}

// Realpart returns the real component; a Real is its own realpart
func (x Number) Realpart() Number {
	if x.kind == KindComplex {
		return x.complex().re
	}
	return x
}

// Imagpart returns the imaginary component. For a float it is a zero of the
// same kind, for a rational the exact 0.
func (x Number) Imagpart() Number {
	switch {
	case x.kind == KindComplex:
		return x.complex().im
	case x.kind.IsFloat():
		return makeFloat(x.kind, 0)
	default:
		return Zero
	}
}

// Int64 returns the value of an Integer that fits int64
func (x Number) Int64() (int64, bool) {
	switch x.kind {
	case KindFixnum:
		return int64(x.word), true
	case KindBignum:
		b := x.bignum()
		if b.IsInt64() {
			return b.Int64(), true
		}
	}
	return 0, false
}

// BigInt returns a fresh copy of an Integer's value, nil for other kinds
func (x Number) BigInt() *big.Int {
	if !x.IsInteger() {
		return nil
	}
	return bigOf(x)
}

// Float64 returns the value of a Real as float64, NaN for a Complex
func (x Number) Float64() float64 {
	switch x.kind {
	case KindFixnum:
		return float64(int64(x.word))
	case KindSingleFloat:
		return float64(x.single())
	case KindShortFloat, KindDoubleFloat, KindLongFloat:
		return x.box.(*floatBox).v
	case KindBignum, KindRatio:
		f, _ := ratOf(x).Float64()
		return f
	}
	return math.NaN()
}

// Float32 returns the value of a Real as float32, NaN for a Complex
func (x Number) Float32() float32 {
	switch x.kind {
	case KindSingleFloat:
		return x.single()
	case KindFixnum:
		return float32(x.fixnum())
	case KindBignum, KindRatio:
		f, _ := ratOf(x).Float32()
		return f
	}
	return float32(x.Float64())
}

func (x Number) fixnum() int64 {
	return int64(x.word)
}

func (x Number) single() float32 {
	return math.Float32frombits(uint32(x.word))
}

func (x Number) bignum() *big.Int {
	return x.box.(*big.Int)
}

func (x Number) ratio() *ratioBox {
	return x.box.(*ratioBox)
}

func (x Number) complex() *complexBox {
	return x.box.(*complexBox)
}
