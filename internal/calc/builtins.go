// ============================================================================
// numtower - Numerischer Turm
// ============================================================================
//
// Package:     calc
// Description: Builtin numeric operators
// Author:      Mike Stoffels
// Created:     2025-12-22
// License:     MIT
// ============================================================================

package calc

import (
	"github.com/msto63/numtower/foundation/core/errors"
	"github.com/msto63/numtower/pkg/number"
)

type (
	unaryFn      func(number.Number) number.Number
	unaryErrFn   func(number.Number) (number.Number, error)
	binaryFn     func(a, b number.Number) number.Number
	binaryErrFn  func(a, b number.Number) (number.Number, error)
	comparisonFn func(a, b number.Number) (bool, error)
	roundingFn   func(x, y number.Number) (number.Number, number.Number, error)
	predicateFn  func(number.Number) bool
	predicateEFn func(number.Number) (bool, error)
)

func unary(name, doc string, f unaryFn) *Operator {
	return &Operator{Name: name, MinArgs: 1, MaxArgs: 1, Doc: doc,
		Apply: func(args []number.Number) (Values, error) {
			return one(f(args[0])), nil
		}}
}

func unaryErr(name, doc string, f unaryErrFn) *Operator {
	return &Operator{Name: name, MinArgs: 1, MaxArgs: 1, Doc: doc,
		Apply: func(args []number.Number) (Values, error) {
			r, err := f(args[0])
			if err != nil {
				return nil, err
			}
			return one(r), nil
		}}
}

func binaryErr(name, doc string, f binaryErrFn) *Operator {
	return &Operator{Name: name, MinArgs: 2, MaxArgs: 2, Doc: doc,
		Apply: func(args []number.Number) (Values, error) {
			r, err := f(args[0], args[1])
			if err != nil {
				return nil, err
			}
			return one(r), nil
		}}
}

// arithmetic folds left from the first argument; with no arguments it
// returns identity
func arithmetic(name, doc string, identity number.Number, f binaryFn) *Operator {
	return &Operator{Name: name, MinArgs: 0, MaxArgs: Variadic, Doc: doc,
		Apply: func(args []number.Number) (Values, error) {
			if len(args) == 0 {
				return one(identity), nil
			}
			acc := args[0]
			for _, a := range args[1:] {
				acc = f(acc, a)
			}
			return one(acc), nil
		}}
}

// accumulate folds every argument into identity, so a single argument is
// still type checked by f
func accumulate(name, doc string, identity number.Number, f binaryErrFn) *Operator {
	return &Operator{Name: name, MinArgs: 0, MaxArgs: Variadic, Doc: doc,
		Apply: func(args []number.Number) (Values, error) {
			acc := identity
			for _, a := range args {
				var err error
				if acc, err = f(acc, a); err != nil {
					return nil, err
				}
			}
			return one(acc), nil
		}}
}

// inverse applies unary to one argument and folds f over several, as
// Lisp - and / do
func inverse(name, doc string, unary unaryErrFn, f binaryErrFn) *Operator {
	return &Operator{Name: name, MinArgs: 1, MaxArgs: Variadic, Doc: doc,
		Apply: func(args []number.Number) (Values, error) {
			if len(args) == 1 {
				r, err := unary(args[0])
				if err != nil {
					return nil, err
				}
				return one(r), nil
			}
			acc := args[0]
			for _, a := range args[1:] {
				var err error
				if acc, err = f(acc, a); err != nil {
					return nil, err
				}
			}
			return one(acc), nil
		}}
}

// chain holds when f holds for every adjacent pair
func chain(name, doc string, f comparisonFn) *Operator {
	return &Operator{Name: name, MinArgs: 1, MaxArgs: Variadic, Doc: doc,
		Apply: func(args []number.Number) (Values, error) {
			result := true
			for i := 1; i < len(args); i++ {
				ok, err := f(args[i-1], args[i])
				if err != nil {
					return nil, err
				}
				result = result && ok
			}
			if len(args) == 1 {
				if _, err := f(args[0], args[0]); err != nil {
					return nil, err
				}
			}
			return Values{Bool(result)}, nil
		}}
}

func predicate(name, doc string, f predicateFn) *Operator {
	return &Operator{Name: name, MinArgs: 1, MaxArgs: 1, Doc: doc,
		Apply: func(args []number.Number) (Values, error) {
			return Values{Bool(f(args[0]))}, nil
		}}
}

func predicateErr(name, doc string, f predicateEFn) *Operator {
	return &Operator{Name: name, MinArgs: 1, MaxArgs: 1, Doc: doc,
		Apply: func(args []number.Number) (Values, error) {
			ok, err := f(args[0])
			if err != nil {
				return nil, err
			}
			return Values{Bool(ok)}, nil
		}}
}

// rounding returns quotient and remainder; the divisor defaults to 1
func rounding(name, doc string, f roundingFn) *Operator {
	return &Operator{Name: name, MinArgs: 1, MaxArgs: 2, Doc: doc,
		Apply: func(args []number.Number) (Values, error) {
			y := number.One
			if len(args) == 2 {
				y = args[1]
			}
			q, r, err := f(args[0], y)
			if err != nil {
				return nil, err
			}
			return two(q, r), nil
		}}
}

func numEqual(a, b number.Number) (bool, error) {
	return number.NumEqual(a, b), nil
}

func builtins() []*Operator {
	return []*Operator{
		// arithmetic
		arithmetic("+", "sum of the arguments", number.Zero, number.Add),
		arithmetic("*", "product of the arguments", number.One, number.Mul),
		inverse("-", "negation, or the first argument minus the rest",
			func(x number.Number) (number.Number, error) { return number.Negate(x), nil },
			func(a, b number.Number) (number.Number, error) { return number.Sub(a, b), nil }),
		inverse("/", "reciprocal, or the first argument divided by the rest", number.Reciprocal, number.Div),
		unary("1+", "argument plus one", number.OnePlus),
		unary("1-", "argument minus one", number.OneMinus),
		unary("abs", "magnitude", number.Abs),
		unary("signum", "sign as a number of the argument's kind", number.Signum),
		unary("conjugate", "complex conjugate", number.Conjugate),
		unary("phase", "angle in radians", number.Phase),
		unary("realpart", "real component", func(x number.Number) number.Number { return x.Realpart() }),
		unary("imagpart", "imaginary component", func(x number.Number) number.Number { return x.Imagpart() }),
		unaryErr("numerator", "numerator of a rational", func(x number.Number) (number.Number, error) { return x.Numerator() }),
		unaryErr("denominator", "denominator of a rational", func(x number.Number) (number.Number, error) { return x.Denominator() }),
		unaryErr("rational", "exact rational value", number.Rational),
		floatOperator(),
		complexOperator(),

		// comparison
		chain("=", "numeric equality", numEqual),
		notEqualOperator(),
		chain("<", "strictly increasing", number.Lt),
		chain(">", "strictly decreasing", number.Gt),
		chain("<=", "non-decreasing", number.Le),
		chain(">=", "non-increasing", number.Ge),
		inverse("max", "greatest argument",
			func(x number.Number) (number.Number, error) { return number.Max(x, x) },
			number.Max),
		inverse("min", "least argument",
			func(x number.Number) (number.Number, error) { return number.Min(x, x) },
			number.Min),
		{Name: "eql", MinArgs: 2, MaxArgs: 2, Doc: "same kind and value",
			Apply: func(args []number.Number) (Values, error) {
				return Values{Bool(number.Eql(args[0], args[1]))}, nil
			}},

		// predicates
		predicate("zerop", "argument is zero", number.Zerop),
		predicateErr("plusp", "argument is positive", number.Plusp),
		predicateErr("minusp", "argument is negative", number.Minusp),
		predicateErr("evenp", "integer is even", number.Evenp),
		predicateErr("oddp", "integer is odd", number.Oddp),
		predicate("numberp", "argument is a number", func(number.Number) bool { return true }),
		predicate("integerp", "argument is an integer", number.Number.IsInteger),
		predicate("rationalp", "argument is rational", number.Number.IsRational),
		predicate("floatp", "argument is a float", number.Number.IsFloat),
		predicate("realp", "argument is real", number.Number.IsReal),
		predicate("complexp", "argument is complex", number.Number.IsComplex),
		predicate("float-nan-p", "argument is a float NaN", number.FloatNaNp),
		predicate("float-infinity-p", "argument is a float infinity", number.FloatInfinityp),

		// rounding
		rounding("floor", "quotient rounded toward negative infinity and remainder", number.Floor),
		rounding("ceiling", "quotient rounded toward positive infinity and remainder", number.Ceiling),
		rounding("truncate", "quotient rounded toward zero and remainder", number.Truncate),
		rounding("round", "quotient rounded to even and remainder", number.Round),
		rounding("ffloor", "floor with a float quotient", number.FFloor),
		rounding("fceiling", "ceiling with a float quotient", number.FCeiling),
		rounding("ftruncate", "truncate with a float quotient", number.FTruncate),
		rounding("fround", "round with a float quotient", number.FRound),
		binaryErr("mod", "remainder of floor", number.Mod),
		binaryErr("rem", "remainder of truncate", number.Rem),

		// transcendental
		unary("exp", "e raised to the argument", number.Exp),
		logOperator(),
		unary("log1p", "natural logarithm of one plus the argument", number.Log1p),
		unary("sqrt", "principal square root", number.Sqrt),
		unaryErr("isqrt", "integer square root", number.Isqrt),
		unary("sin", "sine", number.Sin),
		unary("cos", "cosine", number.Cos),
		unary("tan", "tangent", number.Tan),
		unary("sinh", "hyperbolic sine", number.Sinh),
		unary("cosh", "hyperbolic cosine", number.Cosh),
		unary("tanh", "hyperbolic tangent", number.Tanh),
		atanOperator(),
		binaryErr("expt", "base raised to power", number.Expt),

		// integers
		binaryErr("ash", "arithmetic shift", number.Ash),
		unaryErr("integer-length", "bits needed in two's complement", number.IntegerLength),
		accumulate("logand", "bitwise and", number.MinusOne, number.Logand),
		accumulate("logior", "bitwise inclusive or", number.Zero, number.Logior),
		accumulate("logxor", "bitwise exclusive or", number.Zero, number.Logxor),
		unaryErr("lognot", "bitwise complement", number.Lognot),
		accumulate("gcd", "greatest common divisor", number.Zero, number.Gcd),
		accumulate("lcm", "least common multiple", number.One, number.Lcm),

		unary("sxhash", "hash code consistent with eql",
			func(x number.Number) number.Number { return number.Uint64(number.Hash(x)) }),
	}
}

func notEqualOperator() *Operator {
	return &Operator{Name: "/=", MinArgs: 1, MaxArgs: Variadic, Doc: "all arguments pairwise different",
		Apply: func(args []number.Number) (Values, error) {
			for i := range args {
				for j := i + 1; j < len(args); j++ {
					if number.NumEqual(args[i], args[j]) {
						return Values{Bool(false)}, nil
					}
				}
			}
			return Values{Bool(true)}, nil
		}}
}

// floatOperator converts to single float or to the kind of a float
// prototype
func floatOperator() *Operator {
	return &Operator{Name: "float", MinArgs: 1, MaxArgs: 2, Doc: "convert to a float, optionally of the prototype's kind",
		Apply: func(args []number.Number) (Values, error) {
			kind := number.KindSingleFloat
			if len(args) == 2 {
				if !args[1].IsFloat() {
					return nil, errors.DomainTypeError(errors.ModuleCalc, "float", "float", args[1])
				}
				kind = args[1].Kind()
			}
			if args[0].IsFloat() && len(args) == 1 {
				return one(args[0]), nil
			}
			r, err := number.Coerce(args[0], kind)
			if err != nil {
				return nil, err
			}
			return one(r), nil
		}}
}

func complexOperator() *Operator {
	return &Operator{Name: "complex", MinArgs: 1, MaxArgs: 2, Doc: "complex number from real and imaginary parts",
		Apply: func(args []number.Number) (Values, error) {
			im := number.Zero
			if len(args) == 2 {
				im = args[1]
			} else if args[0].IsFloat() {
				im, _ = number.Coerce(number.Zero, args[0].Kind())
			}
			r, err := number.MakeComplex(args[0], im)
			if err != nil {
				return nil, err
			}
			return one(r), nil
		}}
}

func logOperator() *Operator {
	return &Operator{Name: "log", MinArgs: 1, MaxArgs: 2, Doc: "natural logarithm, or logarithm in a base",
		Apply: func(args []number.Number) (Values, error) {
			if len(args) == 2 {
				return one(number.LogBase(args[0], args[1])), nil
			}
			return one(number.Log(args[0])), nil
		}}
}

func atanOperator() *Operator {
	return &Operator{Name: "atan", MinArgs: 1, MaxArgs: 2, Doc: "arc tangent of y, or of y/x by quadrant",
		Apply: func(args []number.Number) (Values, error) {
			x := number.One
			if len(args) == 2 {
				x = args[1]
			}
			r, err := number.Atan2(args[0], x)
			if err != nil {
				return nil, err
			}
			return one(r), nil
		}}
}
