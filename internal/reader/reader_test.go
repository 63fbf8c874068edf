// Released under an MIT license. See LICENSE.

package reader

import (
	"testing"

	"github.com/schemecore/schemecore/internal/syntax"
)

func TestReadAllMultipleForms(t *testing.T) {
	forms, err := ReadAll("(+ 1 2) (define x 3)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(forms) != 2 {
		t.Fatalf("expected 2 forms, got %d", len(forms))
	}

	if forms[0].Kind != syntax.ListKind || len(forms[0].Children) != 3 {
		t.Fatalf("unexpected first form: %#v", forms[0])
	}
}

func TestReadQuoteSugar(t *testing.T) {
	forms, err := ReadAll("'(1 2)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(forms) != 1 || forms[0].Kind != syntax.ListKind || len(forms[0].Children) != 2 {
		t.Fatalf("unexpected form: %#v", forms[0])
	}

	if forms[0].Children[0].Kind != syntax.SymbolKind || forms[0].Children[0].Text != "quote" {
		t.Fatalf("expected (quote ...), got %#v", forms[0])
	}
}

func TestReadUnterminatedListErrors(t *testing.T) {
	_, err := ReadAll("(+ 1 2")
	if err == nil {
		t.Fatalf("expected an error for an unterminated list")
	}
}

func TestReadUnexpectedCloseParenErrors(t *testing.T) {
	_, err := ReadAll(")")
	if err == nil {
		t.Fatalf("expected an error for an unexpected )")
	}
}
