// Released under an MIT license. See LICENSE.

package value

// Boolean wraps Go's bool, grounded on oh's boolean.T -- but unlike oh,
// which interns two package-level *boolean singletons and compares by
// identity, Boolean here is a plain value type since Go value equality on
// a one-word bool-backed type is already as cheap as pointer comparison.
type Boolean bool

const (
	False = Boolean(false)
	True  = Boolean(true)
)

func (Boolean) Kind() Kind { return BoolKind }

func (b Boolean) String() string {
	if b {
		return "#t"
	}

	return "#f"
}

func (b Boolean) Equal(other Value) bool {
	o, ok := other.(Boolean)
	return ok && b == o
}

// Truthy reports whether v counts as true in a conditional context.
// Every value other than the boolean #f is truthy (spec.md §4.2 If).
func Truthy(v Value) bool {
	b, ok := v.(Boolean)
	return !ok || bool(b)
}
