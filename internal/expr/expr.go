// Released under an MIT license. See LICENSE.

// Package expr is the parsed-program tree spec.md §3.2 and §4.2 describe:
// the parser's output and the evaluator's input. Each node kind is its own
// concrete type implementing the Expr marker interface, dispatched in
// internal/eval by a type switch -- the tagged-sum-type design spec.md §9
// mandates in place of oh's cell.I class hierarchy with type-assertion
// downcasts (oh's commands receive a cell.I and assert pair.T/sym.T/etc;
// here the parser has already done that sorting once, at parse time, so
// the evaluator never re-inspects raw data shapes).
//
// Files are grouped by category the way spec.md §3.2 and oh's
// engine/commands package both group things: literals.go, var.go,
// unary.go, binary.go, variadic.go, specialforms.go.
package expr

// Expr is implemented by every node in a parsed program.
type Expr interface {
	exprNode()
}
