// Released under an MIT license. See LICENSE.

package value

import "strconv"

// Integer is an exact machine-width signed integer (spec.md §3.1 Int).
type Integer int64

func NewInt(n int64) Integer { return Integer(n) }

func (Integer) Kind() Kind { return IntKind }

func (n Integer) String() string {
	return strconv.FormatInt(int64(n), 10)
}

func (n Integer) Equal(other Value) bool {
	o, ok := other.(Integer)
	return ok && n == o
}

// Rat is a normalized exact fraction: gcd(|Num|, Den) = 1, Den >= 2.
// The rational package (rational.New and its arithmetic helpers) is the
// only place these fields should be set; a denominator of 1 must collapse
// to Integer instead (spec.md §3.1).
type Rat struct {
	Num int64
	Den int64
}

func (Rat) Kind() Kind { return RationalKind }

func (r Rat) String() string {
	return strconv.FormatInt(r.Num, 10) + "/" + strconv.FormatInt(r.Den, 10)
}

func (r Rat) Equal(other Value) bool {
	o, ok := other.(Rat)
	return ok && r == o
}
