// Released under an MIT license. See LICENSE.

package expr

import "github.com/schemecore/schemecore/internal/value"

// Lit wraps a self-evaluating literal the parser already reduced to a
// value.Value: numbers, rationals, strings, and booleans (spec.md §4.3).
type Lit struct {
	Value value.Value
}

func (Lit) exprNode() {}

// Quote wraps a datum the parser built directly from Syntax without
// interpreting any of it as code -- the list structure behind 'x
// (spec.md §4.2, §6.1). Evaluating Quote returns Datum unchanged.
type Quote struct {
	Datum value.Value
}

func (Quote) exprNode() {}

// MakeVoid is the zero-operand (void) literal form.
type MakeVoid struct{}

func (MakeVoid) exprNode() {}

// Exit is the zero-operand (exit) literal form; evaluating it produces
// value.TheTerminate, the sentinel the driver loop checks for
// (spec.md §3.1, §6.3).
type Exit struct{}

func (Exit) exprNode() {}
