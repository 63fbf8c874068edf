// Released under an MIT license. See LICENSE.

package value

// NullValue is the empty list (spec.md §3.1 Null). There is exactly one:
// the package-level Nil.
type NullValue struct{}

// Nil is the sole NullValue instance.
var Nil = NullValue{}

func (NullValue) Kind() Kind { return NullKind }

func (NullValue) String() string { return "()" }

func (NullValue) Equal(other Value) bool {
	_, ok := other.(NullValue)
	return ok
}

// Pair is the cons cell (spec.md §3.1 Pair). It is the only mutable Value
// kind; set-car!/set-cdr! mutate Car/Cdr in place, and since Pairs are
// always handled by pointer (*Pair implements Value, not Pair), every
// holder of a given cons cell observes the mutation -- grounded on oh's
// pair.T, whose SetCar/SetCdr write directly through a *pair.
type Pair struct {
	Car Value
	Cdr Value
}

// NewPair conses car and cdr together.
func NewPair(car, cdr Value) *Pair {
	return &Pair{Car: car, Cdr: cdr}
}

func (*Pair) Kind() Kind { return PairKind }

// Equal is pointer identity, not structural comparison: eq? on two pairs
// must answer #f even when their contents match, grounded on oh's pair.T
// (compared by the interface's underlying pointer, never field by field)
// and on the original evaluator's IsEq, which falls through to a raw
// pointer comparison for every non-atomic operand. Use StructurallyEqual
// for a deep comparison (e.g. in tests asserting list contents).
func (p *Pair) Equal(other Value) bool {
	o, ok := other.(*Pair)
	if !ok {
		return false
	}

	return p == o
}

// StructurallyEqual reports whether two Values denote the same tree of
// pairs and atoms, walking Car/Cdr recursively. This is the deep
// comparison eq? deliberately does not perform (see Pair.Equal); it
// exists for callers -- tests, primarily -- that do want content
// equality rather than identity.
func StructurallyEqual(a, b Value) bool {
	pa, aIsPair := a.(*Pair)
	pb, bIsPair := b.(*Pair)

	if aIsPair != bIsPair {
		return false
	}

	if aIsPair {
		return StructurallyEqual(pa.Car, pb.Car) && StructurallyEqual(pa.Cdr, pb.Cdr)
	}

	return a.Equal(b)
}

// String renders the proper/improper list form used by the literal
// (quoted) representation. internal/printer reuses this same cdr-walk for
// the display contract's pair rule (spec.md §6.3), grounded on oh's
// pair.Literal().
func (p *Pair) String() string {
	s := "(" + p.Car.String()

	tail := p.Cdr

	for {
		switch t := tail.(type) {
		case NullValue:
			return s + ")"
		case *Pair:
			s += " " + t.Car.String()
			tail = t.Cdr
		default:
			return s + " . " + tail.String() + ")"
		}
	}
}

// List builds a proper list from elements, right-nested and Nil-terminated
// (used by Quote materialization of list syntax and by the evaluator's
// `list` primitive).
func List(elements ...Value) Value {
	var result Value = Nil

	for i := len(elements) - 1; i >= 0; i-- {
		result = NewPair(elements[i], result)
	}

	return result
}
