// Released under an MIT license. See LICENSE.

package eval

import (
	"testing"

	"github.com/schemecore/schemecore/internal/env"
	"github.com/schemecore/schemecore/internal/expr"
	"github.com/schemecore/schemecore/internal/parser"
	"github.com/schemecore/schemecore/internal/schemerr"
	"github.com/schemecore/schemecore/internal/syntax"
	"github.com/schemecore/schemecore/internal/value"
)

func run(t *testing.T, s syntax.Syntax, en *env.Env) value.Value {
	t.Helper()

	e, err := parser.Parse(s, en)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	v, err := Eval(e, en)
	if err != nil {
		t.Fatalf("eval error: %v", err)
	}

	return v
}

func TestIfTruthyBranches(t *testing.T) {
	en := env.New()

	got := run(t, syntax.List(syntax.Symbol("if"), syntax.True(), syntax.Number(1), syntax.Number(2)), en)
	if !got.Equal(value.NewInt(1)) {
		t.Fatalf("expected 1, got %v", got)
	}

	got = run(t, syntax.List(syntax.Symbol("if"), syntax.False(), syntax.Number(1), syntax.Number(2)), en)
	if !got.Equal(value.NewInt(2)) {
		t.Fatalf("expected 2, got %v", got)
	}
}

func TestIfWithoutElseIsVoidOnFalse(t *testing.T) {
	en := env.New()

	got := run(t, syntax.List(syntax.Symbol("if"), syntax.False(), syntax.Number(1)), en)
	if got.Kind() != value.VoidKind {
		t.Fatalf("expected void, got %v", got)
	}
}

func TestLambdaApply(t *testing.T) {
	en := env.New()

	prog := syntax.List(
		syntax.List(syntax.Symbol("lambda"), syntax.List(syntax.Symbol("x"), syntax.Symbol("y")),
			syntax.List(syntax.Symbol("+"), syntax.Symbol("x"), syntax.Symbol("y"))),
		syntax.Number(3), syntax.Number(4),
	)

	got := run(t, prog, en)
	if !got.Equal(value.NewInt(7)) {
		t.Fatalf("expected 7, got %v", got)
	}
}

func TestDefineThenVar(t *testing.T) {
	en := env.New()

	run(t, syntax.List(syntax.Symbol("define"), syntax.Symbol("x"), syntax.Number(10)), en)
	got := run(t, syntax.Symbol("x"), en)

	if !got.Equal(value.NewInt(10)) {
		t.Fatalf("expected 10, got %v", got)
	}
}

func TestLetrecMutualReference(t *testing.T) {
	en := env.New()

	// (letrec ((even? (lambda (n) (if (= n 0) #t (odd? (- n 1)))))
	//          (odd?  (lambda (n) (if (= n 0) #f (even? (- n 1))))))
	//   (even? 10))
	evenLambda := syntax.List(syntax.Symbol("lambda"), syntax.List(syntax.Symbol("n")),
		syntax.List(syntax.Symbol("if"),
			syntax.List(syntax.Symbol("="), syntax.Symbol("n"), syntax.Number(0)),
			syntax.True(),
			syntax.List(syntax.Symbol("odd?"), syntax.List(syntax.Symbol("-"), syntax.Symbol("n"), syntax.Number(1))),
		))

	oddLambda := syntax.List(syntax.Symbol("lambda"), syntax.List(syntax.Symbol("n")),
		syntax.List(syntax.Symbol("if"),
			syntax.List(syntax.Symbol("="), syntax.Symbol("n"), syntax.Number(0)),
			syntax.False(),
			syntax.List(syntax.Symbol("even?"), syntax.List(syntax.Symbol("-"), syntax.Symbol("n"), syntax.Number(1))),
		))

	prog := syntax.List(syntax.Symbol("letrec"),
		syntax.List(
			syntax.List(syntax.Symbol("even?"), evenLambda),
			syntax.List(syntax.Symbol("odd?"), oddLambda),
		),
		syntax.List(syntax.Symbol("even?"), syntax.Number(10)),
	)

	got := run(t, prog, en)
	if !got.Equal(value.True) {
		t.Fatalf("expected #t, got %v", got)
	}
}

func TestSetMutatesEnclosingBinding(t *testing.T) {
	en := env.New()

	run(t, syntax.List(syntax.Symbol("define"), syntax.Symbol("x"), syntax.Number(1)), en)
	run(t, syntax.List(syntax.Symbol("set!"), syntax.Symbol("x"), syntax.Number(2)), en)

	got := run(t, syntax.Symbol("x"), en)
	if !got.Equal(value.NewInt(2)) {
		t.Fatalf("expected 2, got %v", got)
	}
}

func TestVariadicArithmetic(t *testing.T) {
	en := env.New()

	got := run(t, syntax.List(syntax.Symbol("+"), syntax.Number(1), syntax.Number(2), syntax.Number(3)), en)
	if !got.Equal(value.NewInt(6)) {
		t.Fatalf("expected 6, got %v", got)
	}

	got = run(t, syntax.List(syntax.Symbol("+")), en)
	if !got.Equal(value.NewInt(0)) {
		t.Fatalf("expected 0, got %v", got)
	}

	got = run(t, syntax.List(syntax.Symbol("*")), en)
	if !got.Equal(value.NewInt(1)) {
		t.Fatalf("expected 1, got %v", got)
	}
}

func TestAndOrShortCircuit(t *testing.T) {
	en := env.New()

	got := run(t, syntax.List(syntax.Symbol("and"), syntax.True(), syntax.Number(5)), en)
	if !got.Equal(value.NewInt(5)) {
		t.Fatalf("expected 5, got %v", got)
	}

	got = run(t, syntax.List(syntax.Symbol("and"), syntax.False(), syntax.Number(5)), en)
	if !got.Equal(value.False) {
		t.Fatalf("expected #f, got %v", got)
	}

	got = run(t, syntax.List(syntax.Symbol("or")), en)
	if !got.Equal(value.False) {
		t.Fatalf("expected #f for empty or, got %v", got)
	}
}

func TestPrimitivePromotionRejectsArguments(t *testing.T) {
	en := env.New()

	// car (not applied) promotes to a zero-arg procedure; applying that
	// procedure to an argument must fail with ArityMismatch, since the
	// promoted lambda has no parameters (spec.md §4.2, §9).
	prog := syntax.List(syntax.Symbol("car"), syntax.List(syntax.Symbol("quote"),
		syntax.List(syntax.Number(1), syntax.Number(2))))

	got := run(t, prog, en)
	if !got.Equal(value.NewInt(1)) {
		t.Fatalf("expected 1 from a directly-called primitive, got %v", got)
	}

	e, err := parser.Parse(syntax.List(
		syntax.List(syntax.Symbol("lambda"), syntax.List(syntax.Symbol("f")),
			syntax.List(syntax.Symbol("f"), syntax.Number(1))),
		syntax.Symbol("car"),
	), en)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	_, err = Eval(e, en)

	schemeErr, ok := err.(*schemerr.Error)
	if !ok || schemeErr.Kind != schemerr.ArityMismatch {
		t.Fatalf("expected ArityMismatch from promoted primitive, got %v", err)
	}
}

func TestUnboundVariable(t *testing.T) {
	en := env.New()

	_, err := Eval(mustVar(t, "nope", en), en)

	schemeErr, ok := err.(*schemerr.Error)
	if !ok || schemeErr.Kind != schemerr.UnboundVariable {
		t.Fatalf("expected UnboundVariable, got %v", err)
	}
}

// TestEqPairsAreIdentityNotStructure exercises the ground-truth eq?
// semantics: two freshly consed pairs with identical contents are not eq?,
// since IsEq falls through to pointer identity (original_source
// /src/evaluation.cpp's IsEq::evalRator).
func TestEqPairsAreIdentityNotStructure(t *testing.T) {
	en := env.New()

	distinct := run(t, syntax.List(syntax.Symbol("eq?"),
		syntax.List(syntax.Symbol("cons"), syntax.Number(1), syntax.Number(2)),
		syntax.List(syntax.Symbol("cons"), syntax.Number(1), syntax.Number(2)),
	), en)
	if !distinct.Equal(value.False) {
		t.Fatalf("expected (eq? (cons 1 2) (cons 1 2)) = #f, got %v", distinct)
	}

	run(t, syntax.List(syntax.Symbol("define"), syntax.Symbol("p"),
		syntax.List(syntax.Symbol("cons"), syntax.Number(1), syntax.Number(2))), en)

	same := run(t, syntax.List(syntax.Symbol("eq?"), syntax.Symbol("p"), syntax.Symbol("p")), en)
	if !same.Equal(value.True) {
		t.Fatalf("expected (eq? p p) = #t, got %v", same)
	}
}

// TestNumberPredicateIsFixnumOnly exercises number?'s narrowed semantics:
// a Rat is not a Fixnum (original_source/src/evaluation.cpp's IsFixnum
// checks V_INT alone).
func TestNumberPredicateIsFixnumOnly(t *testing.T) {
	en := env.New()

	got := run(t, syntax.List(syntax.Symbol("number?"), syntax.Number(1)), en)
	if !got.Equal(value.True) {
		t.Fatalf("expected (number? 1) = #t, got %v", got)
	}

	got = run(t, syntax.List(syntax.Symbol("number?"), syntax.Rational(1, 2)), en)
	if !got.Equal(value.False) {
		t.Fatalf("expected (number? 1/2) = #f, got %v", got)
	}
}

// TestDefineRejectsPrimitiveName covers the redefine-primitive guard
// (spec.md §8: "(define + 1)" is an error) at the evaluator layer, in
// addition to the parser's own check.
func TestDefineRejectsPrimitiveName(t *testing.T) {
	en := env.New()

	_, err := Eval(expr.Define{Name: "+", ValueExpr: expr.Lit{Value: value.NewInt(1)}}, en)

	schemeErr, ok := err.(*schemerr.Error)
	if !ok || schemeErr.Kind != schemerr.RedefineReserved {
		t.Fatalf("expected RedefineReserved, got %v", err)
	}
}

// TestCondClauseWithoutBodyReturnsTestValue covers spec.md §4.2's
// single-expression clause rule end to end.
func TestCondClauseWithoutBodyReturnsTestValue(t *testing.T) {
	en := env.New()

	got := run(t, syntax.List(syntax.Symbol("cond"),
		syntax.List(syntax.List(syntax.Symbol("="), syntax.Number(1), syntax.Number(1)))), en)
	if !got.Equal(value.True) {
		t.Fatalf("expected the test's own value #t, got %v", got)
	}

	got = run(t, syntax.List(syntax.Symbol("cond"), syntax.List(syntax.Symbol("else"))), en)
	if got.Kind() != value.VoidKind {
		t.Fatalf("expected void for a bodyless else clause, got %v", got)
	}
}

func mustVar(t *testing.T, name string, en *env.Env) expr.Expr {
	t.Helper()

	e, err := parser.Parse(syntax.Symbol(name), en)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	return e
}
