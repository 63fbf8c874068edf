// Released under an MIT license. See LICENSE.

// Package closure holds Procedure, the runtime representation of a
// lambda: its parameter list, its body Expr, and the Environment it
// closed over. Procedure lives outside internal/value, which otherwise
// holds every Value variant, because a Procedure's Body is an expr.Expr
// and its Env is an *env.Env -- value importing either would cycle back
// through env (which imports value for its frame maps). Grounded on oh's
// Closure interface (cell.I wrapping a Body/Params/Scope trio); flattened
// here to one concrete struct per the tagged-sum-type mandate of
// spec.md §9, since this core has exactly one kind of closure, not oh's
// open-ended set of cell.I implementations.
package closure

import (
	"github.com/schemecore/schemecore/internal/env"
	"github.com/schemecore/schemecore/internal/expr"
	"github.com/schemecore/schemecore/internal/value"
)

// Procedure is a Scheme closure: a parameter list, a body, and the
// defining Environment. It implements value.Value so it can flow through
// Var, Apply, and display like any other first-class value.
//
// A primitive referenced as a value is also represented as a Procedure:
// when Var resolves a name to a primitive instead of a user binding, it
// promotes that primitive to a zero-parameter Procedure whose Body is
// Var{Name}. Because Params is empty, applying the promoted procedure to
// any argument fails with an arity mismatch, and applying it to none
// re-evaluates the bare primitive reference, yielding another promoted
// procedure; the primitive itself is never invoked. This mirrors a defect
// in the original source and is preserved deliberately, not corrected.
type Procedure struct {
	Params []string
	Body   expr.Expr
	Env    *env.Env
}

func (*Procedure) Kind() value.Kind { return value.ProcedureKind }

func (p *Procedure) String() string {
	return "#<procedure>"
}

// Equal follows spec.md §3.3's identity rule for procedures: two
// Procedures are Equal only if they are the same allocation, matching
// eq?'s pointer-identity semantics for every non-atomic Value.
func (p *Procedure) Equal(other value.Value) bool {
	o, ok := other.(*Procedure)
	return ok && p == o
}

// New constructs a Procedure closing over the given Environment.
func New(params []string, body expr.Expr, e *env.Env) *Procedure {
	return &Procedure{Params: params, Body: body, Env: e}
}
