// Released under an MIT license. See LICENSE.

package parser

import (
	"github.com/schemecore/schemecore/internal/env"
	"github.com/schemecore/schemecore/internal/expr"
	"github.com/schemecore/schemecore/internal/primitive"
	"github.com/schemecore/schemecore/internal/rational"
	"github.com/schemecore/schemecore/internal/schemerr"
	"github.com/schemecore/schemecore/internal/syntax"
	"github.com/schemecore/schemecore/internal/value"
)

// specialForms maps each reserved word (primitive.Reserved) to the
// function that parses its operand list, mirroring the unary/binary/
// variadic builder tables but for forms the parser must recurse into
// rather than evaluate its operands normally -- quote, if, and the
// binding forms all treat at least one of their operands specially. Every
// entry receives the same parse-time Environment passed to Parse, unchanged:
// the ground evaluator never extends it for lambda/let/letrec parameters,
// so nested bodies see only the outer, already-bound names (original_source
// /src/parser.cpp never calls extend).
var specialForms map[string]func([]syntax.Syntax, *env.Env) expr.Expr

func init() {
	specialForms = map[string]func([]syntax.Syntax, *env.Env) expr.Expr{
		"quote":  parseQuote,
		"if":     parseIf,
		"cond":   parseCond,
		"begin":  parseBegin,
		"lambda": parseLambda,
		"define": parseDefine,
		"let":    parseLet,
		"letrec": parseLetrec,
		"set!":   parseSet,
	}
}

func parseQuote(rands []syntax.Syntax, _ *env.Env) expr.Expr {
	arity("quote", rands, 1, 1)

	return expr.Quote{Datum: materialize(rands[0])}
}

// materialize builds the Value a quoted datum denotes directly from
// Syntax, without treating any symbol as a special form or primitive
// name (spec.md §4.2, §6.1).
func materialize(s syntax.Syntax) value.Value {
	switch s.Kind {
	case syntax.NumberKind:
		return value.NewInt(s.Int)
	case syntax.RationalKind:
		return rational.New(s.Num, s.Den)
	case syntax.StringKind:
		return value.Str(s.Text)
	case syntax.SymbolKind:
		return value.NewSym(s.Text)
	case syntax.TrueKind:
		return value.True
	case syntax.FalseKind:
		return value.False
	case syntax.ListKind:
		elems := make([]value.Value, len(s.Children))
		for i, c := range s.Children {
			elems[i] = materialize(c)
		}

		return value.List(elems...)
	default:
		schemerr.Raise(schemerr.MalformedSyntax, "unrecognized quoted datum")
		panic("unreachable")
	}
}

func parseIf(rands []syntax.Syntax, en *env.Env) expr.Expr {
	arity("if", rands, 2, 3)

	node := expr.If{Test: parse(rands[0], en), Conseq: parse(rands[1], en)}
	if len(rands) == 3 {
		node.Alt = parse(rands[2], en)
	}

	return node
}

// parseCond builds one CondClause per clause. A clause's body is optional:
// "(test)" with no body expressions is valid and, per spec.md §4.2 and
// original_source/src/evaluation.cpp's clause.size() == 1 case, evaluates
// to the test's own (truthy) value rather than a separate body -- Body is
// left nil to signal that at eval time.
func parseCond(rands []syntax.Syntax, en *env.Env) expr.Expr {
	clauses := make([]expr.CondClause, len(rands))

	for i, c := range rands {
		if c.Kind != syntax.ListKind || len(c.Children) == 0 {
			schemerr.Raise(schemerr.MalformedSyntax, "cond: malformed clause")
		}

		head := c.Children[0]

		var body expr.Expr
		if len(c.Children) > 1 {
			body = wrapBody(c.Children[1:], en)
		}

		if head.Kind == syntax.SymbolKind && head.Text == "else" {
			if i != len(rands)-1 {
				schemerr.Raise(schemerr.MalformedSyntax, "cond: else must be the last clause")
			}

			clauses[i] = expr.CondClause{IsElse: true, Body: body}

			continue
		}

		clauses[i] = expr.CondClause{Test: parse(head, en), Body: body}
	}

	return expr.Cond{Clauses: clauses}
}

func parseBegin(rands []syntax.Syntax, en *env.Env) expr.Expr {
	return expr.Begin{Exprs: parseAll(rands, en)}
}

func parseLambda(rands []syntax.Syntax, en *env.Env) expr.Expr {
	if len(rands) < 2 {
		schemerr.Raise(schemerr.MalformedSyntax, "lambda: expected a parameter list and a body")
	}

	if rands[0].Kind != syntax.ListKind {
		schemerr.Raise(schemerr.MalformedSyntax, "lambda: parameter list must be a list")
	}

	params := make([]string, len(rands[0].Children))
	for i, p := range rands[0].Children {
		if p.Kind != syntax.SymbolKind {
			schemerr.Raise(schemerr.MalformedSyntax, "lambda: parameter names must be symbols")
		}

		params[i] = p.Text
	}

	return expr.Lambda{Params: params, Body: wrapBody(rands[1:], en)}
}

func parseDefine(rands []syntax.Syntax, en *env.Env) expr.Expr {
	arity("define", rands, 2, 2)

	if rands[0].Kind != syntax.SymbolKind {
		schemerr.Raise(schemerr.MalformedSyntax, "define: name must be a symbol")
	}

	name := rands[0].Text
	checkDefineTarget(name)

	return expr.Define{Name: name, ValueExpr: parse(rands[1], en)}
}

// checkDefineTarget raises RedefineReserved for any name define may not
// rebind: a reserved word or a primitive (spec.md §7, §8: "(define + 1)"
// is an error, not a silent rebinding of +).
func checkDefineTarget(name string) {
	if primitive.IsReserved(name) || primitive.IsPrimitive(name) {
		schemerr.Raise(schemerr.RedefineReserved, "define: %q is a reserved word or primitive", name)
	}
}

func parseLet(rands []syntax.Syntax, en *env.Env) expr.Expr {
	if len(rands) < 2 {
		schemerr.Raise(schemerr.MalformedSyntax, "let: expected a binding list and a body")
	}

	names, values := parseBindings("let", rands[0], en)

	return expr.Let{Names: names, Rands: values, Body: wrapBody(rands[1:], en)}
}

func parseLetrec(rands []syntax.Syntax, en *env.Env) expr.Expr {
	if len(rands) < 2 {
		schemerr.Raise(schemerr.MalformedSyntax, "letrec: expected a binding list and a body")
	}

	names, values := parseBindings("letrec", rands[0], en)

	return expr.Letrec{Names: names, Rands: values, Body: wrapBody(rands[1:], en)}
}

func parseBindings(form string, s syntax.Syntax, en *env.Env) ([]string, []expr.Expr) {
	if s.Kind != syntax.ListKind {
		schemerr.Raise(schemerr.MalformedSyntax, "%s: binding list must be a list", form)
	}

	names := make([]string, len(s.Children))
	values := make([]expr.Expr, len(s.Children))

	for i, b := range s.Children {
		if b.Kind != syntax.ListKind || len(b.Children) != 2 || b.Children[0].Kind != syntax.SymbolKind {
			schemerr.Raise(schemerr.MalformedSyntax, "%s: each binding must be (name expr)", form)
		}

		names[i] = b.Children[0].Text
		values[i] = parse(b.Children[1], en)
	}

	return names, values
}

func parseSet(rands []syntax.Syntax, en *env.Env) expr.Expr {
	arity("set!", rands, 2, 2)

	if rands[0].Kind != syntax.SymbolKind {
		schemerr.Raise(schemerr.MalformedSyntax, "set!: name must be a symbol")
	}

	return expr.Set{Name: rands[0].Text, ValueExpr: parse(rands[1], en)}
}

// wrapBody collapses a special form's body exprs into one Expr, wrapping
// more than one in a Begin (spec.md §4.3).
func wrapBody(body []syntax.Syntax, en *env.Env) expr.Expr {
	if len(body) == 0 {
		schemerr.Raise(schemerr.MalformedSyntax, "expected a non-empty body")
	}

	if len(body) == 1 {
		return parse(body[0], en)
	}

	return expr.Begin{Exprs: parseAll(body, en)}
}
