// Released under an MIT license. See LICENSE.

// Package syntax defines the reader's output tree, the parser's input
// (spec.md §6.1). Deliberately a thin, separate tagged type from expr.Expr:
// the parser is the only thing that interprets Syntax, and a Syntax tree
// carries no notion of special forms or primitives yet -- just literal
// atoms and lists of them, exactly the reader contract names.
package syntax

// Kind tags the Syntax node.
type Kind int

const (
	NumberKind Kind = iota
	RationalKind
	StringKind
	SymbolKind
	TrueKind
	FalseKind
	ListKind
)

// Syntax is a node in the reader's output tree.
type Syntax struct {
	Kind Kind

	// Number
	Int int64

	// Rational
	Num int64
	Den int64

	// String, Symbol
	Text string

	// List
	Children []Syntax
}

func Number(n int64) Syntax { return Syntax{Kind: NumberKind, Int: n} }

func Rational(num, den int64) Syntax { return Syntax{Kind: RationalKind, Num: num, Den: den} }

func String(s string) Syntax { return Syntax{Kind: StringKind, Text: s} }

func Symbol(s string) Syntax { return Syntax{Kind: SymbolKind, Text: s} }

func True() Syntax { return Syntax{Kind: TrueKind} }

func False() Syntax { return Syntax{Kind: FalseKind} }

func List(children ...Syntax) Syntax { return Syntax{Kind: ListKind, Children: children} }
