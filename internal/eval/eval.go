// Released under an MIT license. See LICENSE.

// Package eval is the evaluator spec.md §4.2 describes: a single
// recursive function dispatching on expr.Expr's concrete type, wrapped
// by the one public recovery boundary for runtime faults (spec.md §7).
//
// Grounded on oh's engine/task.T, whose Step method runs one command and
// recovers exactly once around it, turning any panic into a "throw"
// rather than letting it escape to the scheduler; here Eval plays the
// same role for a single top-level form, and every helper below panics
// freely via schemerr.Raise the way oh's engine/commands functions panic
// on a validate.Fixed/Variadic arity failure.
package eval

import (
	"github.com/schemecore/schemecore/internal/closure"
	"github.com/schemecore/schemecore/internal/env"
	"github.com/schemecore/schemecore/internal/expr"
	"github.com/schemecore/schemecore/internal/printer"
	"github.com/schemecore/schemecore/internal/primitive"
	"github.com/schemecore/schemecore/internal/schemerr"
	"github.com/schemecore/schemecore/internal/value"
)

// Eval evaluates e in en, recovering any panic raised during evaluation
// into a returned error.
func Eval(e expr.Expr, en *env.Env) (result value.Value, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = schemerr.Recover(r)
			result = nil
		}
	}()

	return eval(e, en), nil
}

func eval(e expr.Expr, en *env.Env) value.Value {
	switch n := e.(type) {
	case expr.Lit:
		return n.Value
	case expr.Quote:
		return n.Datum
	case expr.MakeVoid:
		return value.TheVoid
	case expr.Exit:
		return value.TheTerminate
	case expr.Var:
		return evalVar(n, en)

	case expr.If:
		return evalIf(n, en)
	case expr.Cond:
		return evalCond(n, en)
	case expr.Begin:
		return evalBegin(n, en)
	case expr.Lambda:
		return closure.New(n.Params, n.Body, en)
	case expr.Apply:
		return evalApply(n, en)
	case expr.Define:
		return evalDefine(n, en)
	case expr.Let:
		return evalLet(n, en)
	case expr.Letrec:
		return evalLetrec(n, en)
	case expr.Set:
		return evalSet(n, en)

	case expr.Car:
		return evalCar(n, en)
	case expr.Cdr:
		return evalCdr(n, en)
	case expr.Not:
		return value.Boolean(!value.Truthy(eval(n.Rand, en)))
	case expr.IsBoolean:
		return value.Boolean(eval(n.Rand, en).Kind() == value.BoolKind)
	case expr.IsFixnum:
		// Fixnum? is Int-only: a Rat is a distinct numeric kind, and the
		// ground evaluator's IsFixnum checks V_INT alone, not V_RATIONAL.
		return value.Boolean(eval(n.Rand, en).Kind() == value.IntKind)
	case expr.IsNull:
		return value.Boolean(eval(n.Rand, en).Kind() == value.NullKind)
	case expr.IsPair:
		return value.Boolean(eval(n.Rand, en).Kind() == value.PairKind)
	case expr.IsProcedure:
		return value.Boolean(eval(n.Rand, en).Kind() == value.ProcedureKind)
	case expr.IsSymbol:
		return value.Boolean(eval(n.Rand, en).Kind() == value.SymbolKind)
	case expr.IsString:
		return value.Boolean(eval(n.Rand, en).Kind() == value.StringKind)
	case expr.IsList:
		return value.Boolean(isProperList(eval(n.Rand, en)))
	case expr.Display:
		v := eval(n.Rand, en)
		printer.Display(v)

		return value.TheVoid

	default:
		return evalArith(e, en)
	}
}

func evalVar(n expr.Var, en *env.Env) value.Value {
	if v, ok := en.Find(n.Name); ok {
		return v
	}

	if primitive.IsPrimitive(n.Name) {
		// Primitive promotion (spec.md §4.2, §9): a primitive referenced
		// as a bare Var, not called, becomes a zero-parameter procedure
		// whose body re-reads the same name. Applying it to any argument
		// fails with an arity mismatch -- a preserved source defect.
		return closure.New(nil, expr.Var{Name: n.Name}, en)
	}

	schemerr.Raise(schemerr.UnboundVariable, "unbound variable: %s", n.Name)
	panic("unreachable")
}

func evalApply(n expr.Apply, en *env.Env) value.Value {
	proc := eval(n.Rator, en)

	args := make([]value.Value, len(n.Rands))
	for i, r := range n.Rands {
		args[i] = eval(r, en)
	}

	return apply(proc, args)
}

func apply(proc value.Value, args []value.Value) value.Value {
	p, ok := proc.(*closure.Procedure)
	if !ok {
		schemerr.Raise(schemerr.NonProcedureApplication, "cannot apply %s as a procedure", proc.Kind())
	}

	if len(p.Params) != len(args) {
		schemerr.Raise(schemerr.ArityMismatch, "procedure expected %d argument(s), got %d", len(p.Params), len(args))
	}

	callEnv := p.Env.Extend(p.Params, args)

	return eval(p.Body, callEnv)
}

func evalCar(n expr.Car, en *env.Env) value.Value {
	v := eval(n.Rand, en)

	p, ok := v.(*value.Pair)
	if !ok {
		schemerr.Raise(schemerr.TypeMismatch, "car: expected a pair, got %s", v.Kind())
	}

	return p.Car
}

func evalCdr(n expr.Cdr, en *env.Env) value.Value {
	v := eval(n.Rand, en)

	p, ok := v.(*value.Pair)
	if !ok {
		schemerr.Raise(schemerr.TypeMismatch, "cdr: expected a pair, got %s", v.Kind())
	}

	return p.Cdr
}

// isProperList reports whether v is a chain of Pairs ending in Nil
// (spec.md §6.2 list?).
func isProperList(v value.Value) bool {
	for {
		switch t := v.(type) {
		case value.NullValue:
			return true
		case *value.Pair:
			v = t.Cdr
		default:
			return false
		}
	}
}
