// Released under an MIT license. See LICENSE.

// Package rational implements the four exact-arithmetic helpers and the
// three-way numeric compare spec.md §4.1 describes, operating uniformly on
// any Int/Rational mix. Grounded on oh's commands/arithmetic.go (add/
// sub/mul/div/mod folds over operands) and num.go (a Value wrapping
// math/big.Rat) -- but where oh stores numbers as big.Rat end to end (so
// they never overflow), this package keeps the Value layer on native
// int64 per spec.md §3.1/§9 ("all arithmetic uses host-native fixed-width
// signed integers ... this matches source behavior") and reaches for
// math/big only as scratch space: to compute a gcd, and to widen Expt's
// intermediate products so overflow against the int64 range can be
// detected exactly, matching original_source/src/evaluation.cpp's
// INT_MAX/INT_MIN overflow check.
package rational

import (
	"math/big"

	"github.com/schemecore/schemecore/internal/schemerr"
	"github.com/schemecore/schemecore/internal/value"
)

// pair is the (numerator, denominator) promotion of an Int or Rational
// Value (spec.md §4.1: "promote both to (num, den) form (Int n -> (n,1))").
type pair struct {
	num int64
	den int64
}

func promote(v value.Value, context string) pair {
	switch n := v.(type) {
	case value.Integer:
		return pair{num: int64(n), den: 1}
	case value.Rat:
		return pair{num: n.Num, den: n.Den}
	default:
		schemerr.Raise(schemerr.TypeMismatch, "%s: expected a number, got %s", context, v.Kind())
		panic("unreachable")
	}
}

func gcd(a, b int64) int64 {
	x := new(big.Int).SetInt64(a)
	y := new(big.Int).SetInt64(b)

	return new(big.Int).GCD(nil, nil, x.Abs(x), y.Abs(y)).Int64()
}

// normalize reduces num/den to lowest terms, forces den positive, and
// collapses den=1 to an Integer (spec.md §3.1, §4.1).
func normalize(num, den int64) value.Value {
	if den == 0 {
		schemerr.Raise(schemerr.DivisionByZero, "division by zero")
	}

	if den < 0 {
		num, den = -num, -den
	}

	if num == 0 {
		return value.NewInt(0)
	}

	if g := gcd(num, den); g > 1 {
		num /= g
		den /= g
	}

	if den == 1 {
		return value.NewInt(num)
	}

	return value.Rat{Num: num, Den: den}
}

// New builds the normalized Value for a literal num/den rational parsed
// from source text, reducing and collapsing to Integer exactly as any
// other rational result would (spec.md §3.1, §6.1).
func New(num, den int64) value.Value {
	return normalize(num, den)
}

// Add implements + on a single pair of Int/Rational operands.
func Add(a, b value.Value) value.Value {
	pa, pb := promote(a, "+"), promote(b, "+")

	return normalize(pa.num*pb.den+pb.num*pa.den, pa.den*pb.den)
}

// Sub implements binary -.
func Sub(a, b value.Value) value.Value {
	pa, pb := promote(a, "-"), promote(b, "-")

	return normalize(pa.num*pb.den-pb.num*pa.den, pa.den*pb.den)
}

// Mul implements binary *.
func Mul(a, b value.Value) value.Value {
	pa, pb := promote(a, "*"), promote(b, "*")

	return normalize(pa.num*pb.num, pa.den*pb.den)
}

// Div implements binary /. A zero divisor fails with DivisionByZero;
// 0/0 is not special-cased beyond that check (spec.md §4.1).
func Div(a, b value.Value) value.Value {
	pa, pb := promote(a, "/"), promote(b, "/")

	if pb.num == 0 {
		schemerr.Raise(schemerr.DivisionByZero, "division by zero")
	}

	return normalize(pa.num*pb.den, pa.den*pb.num)
}

// Negate implements unary - (negates numerator/integer; spec.md §4.1).
func Negate(a value.Value) value.Value {
	switch n := a.(type) {
	case value.Integer:
		return value.NewInt(-int64(n))
	case value.Rat:
		return value.Rat{Num: -n.Num, Den: n.Den}
	default:
		schemerr.Raise(schemerr.TypeMismatch, "-: expected a number, got %s", a.Kind())
		panic("unreachable")
	}
}

// Invert implements unary / (1 divided by the argument; spec.md §4.1).
func Invert(a value.Value) value.Value {
	return Div(value.NewInt(1), a)
}

// Modulo is defined only for two Ints (spec.md §4.1).
func Modulo(a, b value.Value) value.Value {
	an, aok := a.(value.Integer)
	bn, bok := b.(value.Integer)

	if !aok || !bok {
		schemerr.Raise(schemerr.TypeMismatch, "modulo is only defined for integers")
	}

	if bn == 0 {
		schemerr.Raise(schemerr.DivisionByZero, "division by zero")
	}

	return value.NewInt(int64(an) % int64(bn))
}

// Expt is defined only for an Int base and a non-negative Int exponent;
// base=0 and exp=0 fails, and overflow of an intermediate product against
// the int64 range fails with NumericOverflow (spec.md §4.1).
func Expt(base, exp value.Value) value.Value {
	b, bok := base.(value.Integer)
	e, eok := exp.(value.Integer)

	if !bok || !eok {
		schemerr.Raise(schemerr.TypeMismatch, "expt is only defined for integers")
	}

	if e < 0 {
		schemerr.Raise(schemerr.TypeMismatch, "expt: negative exponent not supported for integers")
	}

	if b == 0 && e == 0 {
		schemerr.Raise(schemerr.TypeMismatch, "0^0 is undefined")
	}

	result := big.NewInt(1)
	bb := big.NewInt(int64(b))

	for i := int64(0); i < int64(e); i++ {
		result.Mul(result, bb)

		if !result.IsInt64() {
			schemerr.Raise(schemerr.NumericOverflow, "integer overflow")
		}
	}

	return value.NewInt(result.Int64())
}

// Compare returns -1, 0, or 1 for a<b, a=b, a>b via cross-multiplication
// (spec.md §4.1). Only Int/Rational operand pairs are accepted.
func Compare(a, b value.Value) int {
	pa, pb := promote(a, "comparison"), promote(b, "comparison")

	// pa.den and pb.den are always > 0 (normalize enforces this), so the
	// sign of the cross product reflects the sign of (pa - pb).
	l := pa.num * pb.den
	r := pb.num * pa.den

	switch {
	case l < r:
		return -1
	case l > r:
		return 1
	default:
		return 0
	}
}
