// Released under an MIT license. See LICENSE.

// Package printer renders a value.Value for the two output contracts
// spec.md §6.3 distinguishes: Display, for the (display x) primitive,
// which writes a String's raw bytes unquoted; and Literal, for the REPL
// driver's echo of a top-level result, which always uses each Value's
// canonical (quoted, for strings) form.
//
// Grounded on oh's literal.String/pair.T.Literal pairing: oh's literal
// package picks a cell.I's Literal() method when one exists and falls
// back to String() otherwise, and pair.T.Literal() does the same
// cdr-walk this package's value.Pair.String() already implements (reused
// here rather than duplicated).
package printer

import (
	"fmt"
	"os"

	"github.com/schemecore/schemecore/internal/value"
)

// Display writes v to standard output per the display contract
// (spec.md §6.3): a Str's raw bytes, unquoted; every other Value's
// String() form.
func Display(v value.Value) {
	fmt.Fprint(os.Stdout, Text(v))
}

// Text returns the display-contract rendering of v without writing it.
func Text(v value.Value) string {
	if s, ok := v.(value.Str); ok {
		return string(s)
	}

	return v.String()
}

// Literal returns the REPL echo rendering of v: always the canonical,
// quoted-for-strings form (spec.md §6.3), i.e. v.String() unchanged.
func Literal(v value.Value) string {
	return v.String()
}
