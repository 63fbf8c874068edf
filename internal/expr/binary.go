// Released under an MIT license. See LICENSE.

package expr

// Binary primitives take exactly two operands. Plus/Minus/Mult/Div and
// the comparisons also have a variadic counterpart in variadic.go; the
// parser picks one or the other per spec.md §4.3's dual-arity dispatch
// rule (exactly two operands parses to the binary node here, any other
// count parses to the variadic node). Modulo, Expt, Cons, SetCar, SetCdr,
// and IsEq have no variadic form -- they are binary-only (spec.md §6.2).

type Plus struct{ Rand1, Rand2 Expr }

func (Plus) exprNode() {}

type Minus struct{ Rand1, Rand2 Expr }

func (Minus) exprNode() {}

type Mult struct{ Rand1, Rand2 Expr }

func (Mult) exprNode() {}

type Div struct{ Rand1, Rand2 Expr }

func (Div) exprNode() {}

type Modulo struct{ Rand1, Rand2 Expr }

func (Modulo) exprNode() {}

type Expt struct{ Rand1, Rand2 Expr }

func (Expt) exprNode() {}

type Less struct{ Rand1, Rand2 Expr }

func (Less) exprNode() {}

type LessEq struct{ Rand1, Rand2 Expr }

func (LessEq) exprNode() {}

type Equal struct{ Rand1, Rand2 Expr }

func (Equal) exprNode() {}

type GreaterEq struct{ Rand1, Rand2 Expr }

func (GreaterEq) exprNode() {}

type Greater struct{ Rand1, Rand2 Expr }

func (Greater) exprNode() {}

type Cons struct{ Rand1, Rand2 Expr }

func (Cons) exprNode() {}

type SetCar struct{ Rand1, Rand2 Expr }

func (SetCar) exprNode() {}

type SetCdr struct{ Rand1, Rand2 Expr }

func (SetCdr) exprNode() {}

type IsEq struct{ Rand1, Rand2 Expr }

func (IsEq) exprNode() {}
