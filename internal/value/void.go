// Released under an MIT license. See LICENSE.

package value

// VoidValue is the result of side-effecting forms: (void), define, set!,
// set-car!, set-cdr!, display, and a cond with no matching clause
// (spec.md §3.1, §4.2).
type VoidValue struct{}

// TheVoid is the sole VoidValue instance.
var TheVoid = VoidValue{}

func (VoidValue) Kind() Kind { return VoidKind }

func (VoidValue) String() string { return "#<void>" }

func (VoidValue) Equal(other Value) bool {
	_, ok := other.(VoidValue)
	return ok
}

// TerminateValue is the sentinel (exit) evaluates to; the REPL driver
// (cmd/schemecore) inspects the result of each top-level evaluation for
// this value and stops (spec.md §3.1, §4.2).
type TerminateValue struct{}

// TheTerminate is the sole TerminateValue instance.
var TheTerminate = TerminateValue{}

func (TerminateValue) Kind() Kind { return TerminateKind }

func (TerminateValue) String() string { return "#<terminate>" }

func (TerminateValue) Equal(other Value) bool {
	_, ok := other.(TerminateValue)
	return ok
}
