// Released under an MIT license. See LICENSE.

package expr

// If evaluates Test, then Conseq or Alt. Alt is nil when the source had no
// else branch, in which case a false Test evaluates to value.TheVoid
// (spec.md §4.2).
type If struct {
	Test, Conseq, Alt Expr
}

func (If) exprNode() {}

// CondClause is one (test body...) clause of a Cond. Body is a single
// Expr because the parser wraps a multi-expression clause body in a
// Begin (spec.md §4.3), and is nil when the clause has no body at all --
// "(test)" with nothing following, which evaluates to the test's own
// value when the test is truthy (spec.md §4.2; original_source
// /src/evaluation.cpp's Cond::eval, the clause.size() == 1 case). IsElse
// marks the (else body...) clause, which must be last and has no Test to
// evaluate; a bodyless (else) evaluates to value.TheVoid.
type CondClause struct {
	Test   Expr
	IsElse bool
	Body   Expr
}

// Cond evaluates each clause's Test in order, taking the first whose Test
// is truthy (or the else clause). If no clause matches and there is no
// else, Cond evaluates to value.TheVoid (spec.md §4.2).
type Cond struct {
	Clauses []CondClause
}

func (Cond) exprNode() {}

// Begin evaluates Exprs in order, yielding the last one's value. An empty
// Begin evaluates to value.TheVoid.
type Begin struct {
	Exprs []Expr
}

func (Begin) exprNode() {}

// Lambda captures Params and Body with the defining Environment at eval
// time, producing a closure.Procedure (spec.md §3.2, §4.2).
type Lambda struct {
	Params []string
	Body   Expr
}

func (Lambda) exprNode() {}

// Apply evaluates Rator to a procedure, evaluates Rands left to right,
// and invokes the procedure with the results (spec.md §4.2).
type Apply struct {
	Rator Expr
	Rands []Expr
}

func (Apply) exprNode() {}

// Define binds Name to the result of evaluating ValueExpr in the current
// Environment, mutating that Environment in place -- the in-out
// reference behavior spec.md §9 requires, distinct from Let's
// value-based extension (see internal/env.Env.Define).
type Define struct {
	Name      string
	ValueExpr Expr
}

func (Define) exprNode() {}

// Let evaluates each of Rands in the enclosing Environment, then
// evaluates Body in one new frame binding every Names[i] to the
// corresponding evaluated Rands[i] (spec.md §4.2: "extend with all
// bindings" as a single frame, not one frame per binding).
type Let struct {
	Names []string
	Rands []Expr
	Body  Expr
}

func (Let) exprNode() {}

// Letrec extends the Environment with Names first, bound to placeholders,
// then evaluates each Rands[i] in that extended frame and fixes the
// binding up via Modify, so mutually recursive definitions among Names
// can see each other (spec.md §4.2).
type Letrec struct {
	Names []string
	Rands []Expr
	Body  Expr
}

func (Letrec) exprNode() {}

// Set evaluates ValueExpr and mutates Name's existing binding in place via
// Env.Modify; it is an error for Name to be unbound (spec.md §4.2).
type Set struct {
	Name      string
	ValueExpr Expr
}

func (Set) exprNode() {}
