// Released under an MIT license. See LICENSE.

// Package primitive is the name table spec.md §6.2 enumerates: every
// built-in operator's name and how many operands the parser requires for
// it, plus the reserved-word set (§6.2) that cannot be shadowed by define.
//
// Grounded on oh's engine/commands package, which keeps one function per
// primitive grouped into per-category files (arithmetic.go, relational.go,
// list.go, ...) and a commands.go table mapping names to those functions;
// here the table maps names to an arity Class instead, since this core's
// parser (not a runtime dispatch table) is what needs to know how many
// operands a name expects, per spec.md §4.3.
package primitive

// Class classifies how many operands a primitive's parser rule expects.
type Class int

const (
	// Nullary primitives take no operands: void, exit.
	Nullary Class = iota

	// Unary primitives take exactly one operand.
	Unary

	// Binary primitives take exactly two operands, with no variadic form.
	Binary

	// DualArity primitives parse to the binary Expr node when given
	// exactly two operands, and to the variadic Expr node otherwise
	// (spec.md §4.3: "dispatch to the binary node when exactly two
	// operands are given, else the variadic node (including zero/one
	// operand)").
	DualArity

	// Variadic primitives always parse to the variadic Expr node,
	// regardless of operand count -- there is no binary counterpart.
	Variadic
)

// Table maps every primitive name (spec.md §6.2) to its arity class.
var Table = map[string]Class{
	// control/io
	"void":    Nullary,
	"exit":    Nullary,
	"display": Unary,

	// list/pair
	"car":      Unary,
	"cdr":      Unary,
	"cons":     Binary,
	"set-car!": Binary,
	"set-cdr!": Binary,
	"list":     Variadic,

	// predicate
	"boolean?":   Unary,
	"number?":    Unary,
	"null?":      Unary,
	"pair?":      Unary,
	"procedure?": Unary,
	"symbol?":    Unary,
	"string?":    Unary,
	"list?":      Unary,
	"eq?":        Binary,

	// boolean
	"not": Unary,
	"and": Variadic,
	"or":  Variadic,

	// arithmetic
	"+":      DualArity,
	"-":      DualArity,
	"*":      DualArity,
	"/":      DualArity,
	"modulo": Binary,
	"expt":   Binary,

	// comparison
	"<":  DualArity,
	"<=": DualArity,
	"=":  DualArity,
	">=": DualArity,
	">":  DualArity,
}

// IsPrimitive reports whether name is a recognized primitive.
func IsPrimitive(name string) bool {
	_, ok := Table[name]
	return ok
}

// Reserved is the set of special-form keywords (spec.md §6.2): parsed as
// special forms, never shadowable by define.
var Reserved = map[string]bool{
	"begin":   true,
	"quote":   true,
	"if":      true,
	"cond":    true,
	"lambda":  true,
	"define":  true,
	"let":     true,
	"letrec":  true,
	"set!":    true,
}

// IsReserved reports whether name is a reserved word.
func IsReserved(name string) bool {
	return Reserved[name]
}
