// Released under an MIT license. See LICENSE.

package expr

// Variadic primitives take any number of operands. PlusVar..GreaterVar
// are the variadic counterpart the dual-arity dispatch in binary.go falls
// back to; ListFunc, AndVar, and OrVar have no binary form at all, since
// (list), (list x), (and), (and x) and friends are all legal and each
// shape needs its own evaluation rule regardless of count (spec.md §6.2).

type PlusVar struct{ Rands []Expr }

func (PlusVar) exprNode() {}

type MinusVar struct{ Rands []Expr }

func (MinusVar) exprNode() {}

type MultVar struct{ Rands []Expr }

func (MultVar) exprNode() {}

type DivVar struct{ Rands []Expr }

func (DivVar) exprNode() {}

type LessVar struct{ Rands []Expr }

func (LessVar) exprNode() {}

type LessEqVar struct{ Rands []Expr }

func (LessEqVar) exprNode() {}

type EqualVar struct{ Rands []Expr }

func (EqualVar) exprNode() {}

type GreaterEqVar struct{ Rands []Expr }

func (GreaterEqVar) exprNode() {}

type GreaterVar struct{ Rands []Expr }

func (GreaterVar) exprNode() {}

// ListFunc builds a proper list out of its evaluated operands --
// distinct from IsList (unary.go), the list? predicate.
type ListFunc struct{ Rands []Expr }

func (ListFunc) exprNode() {}

// AndVar short-circuits on the first falsy operand, evaluating left to
// right; an empty And evaluates to #t (spec.md §6.2).
type AndVar struct{ Rands []Expr }

func (AndVar) exprNode() {}

// OrVar short-circuits on the first truthy operand, evaluating left to
// right; an empty Or evaluates to #f (spec.md §6.2).
type OrVar struct{ Rands []Expr }

func (OrVar) exprNode() {}
