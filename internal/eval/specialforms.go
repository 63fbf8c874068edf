// Released under an MIT license. See LICENSE.

package eval

import (
	"github.com/schemecore/schemecore/internal/env"
	"github.com/schemecore/schemecore/internal/expr"
	"github.com/schemecore/schemecore/internal/primitive"
	"github.com/schemecore/schemecore/internal/schemerr"
	"github.com/schemecore/schemecore/internal/value"
)

func evalIf(n expr.If, en *env.Env) value.Value {
	if value.Truthy(eval(n.Test, en)) {
		return eval(n.Conseq, en)
	}

	if n.Alt != nil {
		return eval(n.Alt, en)
	}

	return value.TheVoid
}

func evalCond(n expr.Cond, en *env.Env) value.Value {
	for _, c := range n.Clauses {
		if c.IsElse {
			if c.Body == nil {
				return value.TheVoid
			}

			return eval(c.Body, en)
		}

		test := eval(c.Test, en)
		if !value.Truthy(test) {
			continue
		}

		if c.Body == nil {
			return test
		}

		return eval(c.Body, en)
	}

	return value.TheVoid
}

func evalBegin(n expr.Begin, en *env.Env) value.Value {
	var result value.Value = value.TheVoid

	for _, e := range n.Exprs {
		result = eval(e, en)
	}

	return result
}

// evalDefine mutates en in place -- the in-out reference spec.md §9
// requires, implemented by env.Env.Define. The same guard the parser
// applies to a literal (define name ...) form is re-checked here: Define
// nodes can also arise from other call paths, and redefining a reserved
// word or primitive is an error either way (spec.md §7, §8).
func evalDefine(n expr.Define, en *env.Env) value.Value {
	if primitive.IsReserved(n.Name) || primitive.IsPrimitive(n.Name) {
		schemerr.Raise(schemerr.RedefineReserved, "define: %q is a reserved word or primitive", n.Name)
	}

	en.Define(n.Name, eval(n.ValueExpr, en))

	return value.TheVoid
}

// evalLet evaluates every binding's Rand in the enclosing Environment,
// then extends with all bindings as a single new frame (spec.md §4.2).
func evalLet(n expr.Let, en *env.Env) value.Value {
	vals := make([]value.Value, len(n.Rands))
	for i, r := range n.Rands {
		vals[i] = eval(r, en)
	}

	return eval(n.Body, en.Extend(n.Names, vals))
}

// evalLetrec extends en with placeholders for every name first, so each
// Rand can see every other Name, then fixes each binding up in place via
// Modify once its Rand is evaluated (spec.md §4.2).
func evalLetrec(n expr.Letrec, en *env.Env) value.Value {
	placeholders := make([]value.Value, len(n.Names))
	for i := range placeholders {
		placeholders[i] = value.TheVoid
	}

	inner := en.Extend(n.Names, placeholders)

	for i, r := range n.Rands {
		inner.Modify(n.Names[i], eval(r, inner))
	}

	return eval(n.Body, inner)
}

func evalSet(n expr.Set, en *env.Env) value.Value {
	if !en.Modify(n.Name, eval(n.ValueExpr, en)) {
		schemerr.Raise(schemerr.UnboundVariable, "set!: unbound variable: %s", n.Name)
	}

	return value.TheVoid
}
