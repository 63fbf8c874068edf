// Released under an MIT license. See LICENSE.

// Package parser turns a syntax.Syntax tree into an expr.Expr tree
// (spec.md §4.3), sorting each list form into a special form, a
// primitive call of the right arity shape, or a procedure application --
// the one place oh's cell.I-downcast style and this core's tagged-sum
// style meet: oh's evaluator re-inspects a cell.I at every command
// dispatch (see engine/commands), while here that sorting happens once,
// recursively, and the evaluator (internal/eval) never sees raw syntax
// again.
//
// Grounded on oh's internal/reader/parser (a recursive-descent parser
// driven by a peek/consume token cursor that panics on malformed input
// and recovers once at its own Parse entry point) and internal/common/
// validate (the Fixed/Variadic operand-count helpers); arity failures
// here panic through schemerr.Raise instead of validate's bare
// panic(string), since spec.md §7 asks for a typed error taxonomy.
package parser

import (
	"strconv"

	"github.com/schemecore/schemecore/internal/env"
	"github.com/schemecore/schemecore/internal/expr"
	"github.com/schemecore/schemecore/internal/primitive"
	"github.com/schemecore/schemecore/internal/rational"
	"github.com/schemecore/schemecore/internal/schemerr"
	"github.com/schemecore/schemecore/internal/syntax"
	"github.com/schemecore/schemecore/internal/value"
)

// Parse converts one top-level Syntax form into an Expr using en as the
// parse-time Environment (spec.md §4.3): consulted only to test whether a
// symbol names a variable already bound in en, which shadows a same-named
// primitive at every call site that resolves through it. Parsing never
// binds anything in en itself. It is the single recovery boundary for
// parse-time faults (spec.md §7): internal parsing functions panic via
// schemerr.Raise, and Parse turns that panic into a returned error instead
// of propagating it.
func Parse(s syntax.Syntax, en *env.Env) (result expr.Expr, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = schemerr.Recover(r)
			result = nil
		}
	}()

	return parse(s, en), nil
}

func parse(s syntax.Syntax, en *env.Env) expr.Expr {
	switch s.Kind {
	case syntax.NumberKind:
		return expr.Lit{Value: value.NewInt(s.Int)}
	case syntax.RationalKind:
		return expr.Lit{Value: rational.New(s.Num, s.Den)}
	case syntax.StringKind:
		return expr.Lit{Value: value.Str(s.Text)}
	case syntax.TrueKind:
		return expr.Lit{Value: value.True}
	case syntax.FalseKind:
		return expr.Lit{Value: value.False}
	case syntax.SymbolKind:
		return expr.Var{Name: s.Text}
	case syntax.ListKind:
		return parseList(s.Children, en)
	default:
		schemerr.Raise(schemerr.MalformedSyntax, "unrecognized syntax node")
		panic("unreachable")
	}
}

func parseAll(ss []syntax.Syntax, en *env.Env) []expr.Expr {
	out := make([]expr.Expr, len(ss))
	for i, s := range ss {
		out[i] = parse(s, en)
	}

	return out
}

func parseList(children []syntax.Syntax, en *env.Env) expr.Expr {
	if len(children) == 0 {
		schemerr.Raise(schemerr.MalformedSyntax, "empty combination ()")
	}

	head := children[0]
	rands := children[1:]

	if head.Kind != syntax.SymbolKind {
		return expr.Apply{Rator: parse(head, en), Rands: parseAll(rands, en)}
	}

	name := head.Text

	// spec.md §4.3's precedence order: a name already bound in the
	// parse-time Environment always resolves to an application, even when
	// it also names a primitive or reserved word. define refuses primitive
	// and reserved names (checkDefineTarget), so such a binding can only
	// come from a caller that placed it in en directly.
	if _, bound := en.Find(name); bound {
		return expr.Apply{Rator: expr.Var{Name: name}, Rands: parseAll(rands, en)}
	}

	if class, ok := primitive.Table[name]; ok {
		return buildPrimitive(name, class, rands, en)
	}

	if fn, ok := specialForms[name]; ok {
		return fn(rands, en)
	}

	return expr.Apply{Rator: expr.Var{Name: name}, Rands: parseAll(rands, en)}
}

func buildPrimitive(name string, class primitive.Class, rands []syntax.Syntax, en *env.Env) expr.Expr {
	switch class {
	case primitive.Nullary:
		arity(name, rands, 0, 0)

		switch name {
		case "void":
			return expr.MakeVoid{}
		case "exit":
			return expr.Exit{}
		}
	case primitive.Unary:
		arity(name, rands, 1, 1)

		return unaryBuilders[name](parse(rands[0], en))
	case primitive.Binary:
		arity(name, rands, 2, 2)

		return binaryOnlyBuilders[name](parse(rands[0], en), parse(rands[1], en))
	case primitive.DualArity:
		b := dualArityBuilders[name]

		if len(rands) == 2 {
			return b.binary(parse(rands[0], en), parse(rands[1], en))
		}

		return b.variadic(parseAll(rands, en))
	case primitive.Variadic:
		return variadicOnlyBuilders[name](parseAll(rands, en))
	}

	schemerr.Raise(schemerr.Internal, "%s: unhandled primitive class", name)
	panic("unreachable")
}

func arity(name string, rands []syntax.Syntax, min, max int) {
	n := len(rands)
	if n < min || n > max {
		schemerr.Raise(schemerr.ArityMismatch, "%s: expected %s, got %d", name, arityLabel(min, max), n)
	}
}

func arityLabel(min, max int) string {
	if min == max {
		return strconv.Itoa(min) + " argument(s)"
	}

	return strconv.Itoa(min) + " to " + strconv.Itoa(max) + " argument(s)"
}
