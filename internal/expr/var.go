// Released under an MIT license. See LICENSE.

package expr

// Var looks a name up in the current Environment at eval time
// (spec.md §4.2). Per the source-inherited primitive-promotion bug
// (spec.md §4.2, §9): when Name resolves to a primitive rather than a
// user binding, Var evaluates to a zero-parameter Procedure whose body is
// itself a Var referencing Name -- the promoted lambda has no parameters,
// so applying it to any argument fails with an arity mismatch instead of
// invoking the primitive. This is a defect inherited from the
// original source; it is preserved here, not corrected.
type Var struct {
	Name string
}

func (Var) exprNode() {}
