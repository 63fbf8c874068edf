// Released under an MIT license. See LICENSE.

package eval

import (
	"github.com/schemecore/schemecore/internal/env"
	"github.com/schemecore/schemecore/internal/expr"
	"github.com/schemecore/schemecore/internal/rational"
	"github.com/schemecore/schemecore/internal/schemerr"
	"github.com/schemecore/schemecore/internal/value"
)

// evalArith is the second half of eval's type switch: the binary
// arithmetic/comparison/pair-mutation primitives and their variadic
// counterparts. Split into its own file and function the way oh splits
// commands by category (arithmetic.go, relational.go, pair.go) rather
// than folding every primitive into one switch statement.
func evalArith(e expr.Expr, en *env.Env) value.Value {
	switch n := e.(type) {
	case expr.Plus:
		return rational.Add(eval(n.Rand1, en), eval(n.Rand2, en))
	case expr.Minus:
		return rational.Sub(eval(n.Rand1, en), eval(n.Rand2, en))
	case expr.Mult:
		return rational.Mul(eval(n.Rand1, en), eval(n.Rand2, en))
	case expr.Div:
		return rational.Div(eval(n.Rand1, en), eval(n.Rand2, en))
	case expr.Modulo:
		return rational.Modulo(eval(n.Rand1, en), eval(n.Rand2, en))
	case expr.Expt:
		return rational.Expt(eval(n.Rand1, en), eval(n.Rand2, en))
	case expr.Less:
		return value.Boolean(rational.Compare(eval(n.Rand1, en), eval(n.Rand2, en)) < 0)
	case expr.LessEq:
		return value.Boolean(rational.Compare(eval(n.Rand1, en), eval(n.Rand2, en)) <= 0)
	case expr.Equal:
		return value.Boolean(rational.Compare(eval(n.Rand1, en), eval(n.Rand2, en)) == 0)
	case expr.GreaterEq:
		return value.Boolean(rational.Compare(eval(n.Rand1, en), eval(n.Rand2, en)) >= 0)
	case expr.Greater:
		return value.Boolean(rational.Compare(eval(n.Rand1, en), eval(n.Rand2, en)) > 0)
	case expr.Cons:
		return value.NewPair(eval(n.Rand1, en), eval(n.Rand2, en))
	case expr.SetCar:
		return evalSetCar(n, en)
	case expr.SetCdr:
		return evalSetCdr(n, en)
	case expr.IsEq:
		return value.Boolean(eval(n.Rand1, en).Equal(eval(n.Rand2, en)))

	case expr.PlusVar:
		return foldArith(n.Rands, en, value.NewInt(0), rational.Add)
	case expr.MinusVar:
		return evalMinusVar(n, en)
	case expr.MultVar:
		return foldArith(n.Rands, en, value.NewInt(1), rational.Mul)
	case expr.DivVar:
		return evalDivVar(n, en)
	case expr.LessVar:
		return evalChain(n.Rands, en, func(c int) bool { return c < 0 })
	case expr.LessEqVar:
		return evalChain(n.Rands, en, func(c int) bool { return c <= 0 })
	case expr.EqualVar:
		return evalChain(n.Rands, en, func(c int) bool { return c == 0 })
	case expr.GreaterEqVar:
		return evalChain(n.Rands, en, func(c int) bool { return c >= 0 })
	case expr.GreaterVar:
		return evalChain(n.Rands, en, func(c int) bool { return c > 0 })
	case expr.ListFunc:
		return value.List(evalAll(n.Rands, en)...)
	case expr.AndVar:
		return evalAnd(n, en)
	case expr.OrVar:
		return evalOr(n, en)

	default:
		schemerr.Raise(schemerr.Internal, "eval: unhandled expr node %T", e)
		panic("unreachable")
	}
}

func evalAll(rands []expr.Expr, en *env.Env) []value.Value {
	out := make([]value.Value, len(rands))
	for i, r := range rands {
		out[i] = eval(r, en)
	}

	return out
}

// foldArith left-folds op over rands' evaluated values, starting from
// identity when rands is empty (spec.md §6.2: (+) = 0, (*) = 1).
func foldArith(rands []expr.Expr, en *env.Env, identity value.Value, op func(a, b value.Value) value.Value) value.Value {
	if len(rands) == 0 {
		return identity
	}

	acc := eval(rands[0], en)
	for _, r := range rands[1:] {
		acc = op(acc, eval(r, en))
	}

	return acc
}

func evalSetCar(n expr.SetCar, en *env.Env) value.Value {
	target := eval(n.Rand1, en)

	p, ok := target.(*value.Pair)
	if !ok {
		schemerr.Raise(schemerr.TypeMismatch, "set-car!: expected a pair, got %s", target.Kind())
	}

	p.Car = eval(n.Rand2, en)

	return value.TheVoid
}

func evalSetCdr(n expr.SetCdr, en *env.Env) value.Value {
	target := eval(n.Rand1, en)

	p, ok := target.(*value.Pair)
	if !ok {
		schemerr.Raise(schemerr.TypeMismatch, "set-cdr!: expected a pair, got %s", target.Kind())
	}

	p.Cdr = eval(n.Rand2, en)

	return value.TheVoid
}

// evalMinusVar: (-) is an arity error, (- x) negates, (- x y z...) folds
// subtraction left to right (spec.md §6.2).
func evalMinusVar(n expr.MinusVar, en *env.Env) value.Value {
	if len(n.Rands) == 0 {
		schemerr.Raise(schemerr.ArityMismatch, "-: expected at least 1 argument, got 0")
	}

	if len(n.Rands) == 1 {
		return rational.Negate(eval(n.Rands[0], en))
	}

	acc := eval(n.Rands[0], en)
	for _, r := range n.Rands[1:] {
		acc = rational.Sub(acc, eval(r, en))
	}

	return acc
}

// evalDivVar: (/) is an arity error, (/ x) inverts, (/ x y z...) folds
// division left to right (spec.md §6.2).
func evalDivVar(n expr.DivVar, en *env.Env) value.Value {
	if len(n.Rands) == 0 {
		schemerr.Raise(schemerr.ArityMismatch, "/: expected at least 1 argument, got 0")
	}

	if len(n.Rands) == 1 {
		return rational.Invert(eval(n.Rands[0], en))
	}

	acc := eval(n.Rands[0], en)
	for _, r := range n.Rands[1:] {
		acc = rational.Div(acc, eval(r, en))
	}

	return acc
}

// evalChain reports whether pred holds for every adjacent pair of rands'
// evaluated values; zero or one operand is vacuously true.
func evalChain(rands []expr.Expr, en *env.Env, pred func(cmp int) bool) value.Value {
	if len(rands) < 2 {
		for _, r := range rands {
			eval(r, en)
		}

		return value.True
	}

	prev := eval(rands[0], en)

	for _, r := range rands[1:] {
		cur := eval(r, en)
		if !pred(rational.Compare(prev, cur)) {
			return value.False
		}

		prev = cur
	}

	return value.True
}

// evalAnd evaluates left to right, stopping at the first falsy value
// (spec.md §6.2); an empty And is #t.
func evalAnd(n expr.AndVar, en *env.Env) value.Value {
	var result value.Value = value.True

	for _, r := range n.Rands {
		result = eval(r, en)
		if !value.Truthy(result) {
			return result
		}
	}

	return result
}

// evalOr evaluates left to right, stopping at the first truthy value
// (spec.md §6.2); an empty Or is #f.
func evalOr(n expr.OrVar, en *env.Env) value.Value {
	var result value.Value = value.False

	for _, r := range n.Rands {
		result = eval(r, en)
		if value.Truthy(result) {
			return result
		}
	}

	return result
}
