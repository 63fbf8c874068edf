// Released under an MIT license. See LICENSE.

// Package reader turns source text into syntax.Syntax forms
// (spec.md §6.1), the reader contract internal/parser consumes.
//
// Grounded on oh's reader.T, which wires its lexer and parser together
// behind a Scan(line) method the REPL driver calls one line at a time,
// using goroutines and channels to let the parser pull tokens across
// multiple Scan calls for multi-line input. This core has no shell-style
// continuation state to manage -- an s-expression form is complete
// exactly when its parentheses balance -- so Reader simply reports an
// unterminated list as an error, and the REPL driver (cmd/schemecore)
// re-reads its accumulated input until that error goes away, instead of
// the goroutine/channel plumbing oh needs.
package reader

import (
	"fmt"

	"github.com/schemecore/schemecore/internal/reader/lexer"
	"github.com/schemecore/schemecore/internal/reader/token"
	"github.com/schemecore/schemecore/internal/syntax"
)

// Reader consumes a token stream and emits completed syntax.Syntax forms.
type Reader struct {
	toks []token.Token
	pos  int
}

// New tokenizes src and returns a Reader positioned at its first token.
func New(src string) (*Reader, error) {
	toks, err := lexer.Tokenize(src)
	if err != nil {
		return nil, err
	}

	return &Reader{toks: toks}, nil
}

// ReadAll reads every top-level form out of src.
func ReadAll(src string) ([]syntax.Syntax, error) {
	r, err := New(src)
	if err != nil {
		return nil, err
	}

	var forms []syntax.Syntax

	for {
		s, ok, err := r.Read()
		if err != nil {
			return nil, err
		}

		if !ok {
			return forms, nil
		}

		forms = append(forms, s)
	}
}

func (r *Reader) peek() token.Token {
	return r.toks[r.pos]
}

func (r *Reader) consume() token.Token {
	t := r.toks[r.pos]
	if t.Kind != token.EOF {
		r.pos++
	}

	return t
}

// Read reads one top-level form. ok is false, with a nil error, when the
// stream is exhausted cleanly.
func (r *Reader) Read() (syntax.Syntax, bool, error) {
	if r.peek().Kind == token.EOF {
		return syntax.Syntax{}, false, nil
	}

	s, err := r.form()
	if err != nil {
		return syntax.Syntax{}, false, err
	}

	return s, true, nil
}

func (r *Reader) form() (syntax.Syntax, error) {
	t := r.consume()

	switch t.Kind {
	case token.LParen:
		return r.list()
	case token.QuoteMark:
		datum, err := r.form()
		if err != nil {
			return syntax.Syntax{}, err
		}

		return syntax.List(syntax.Symbol("quote"), datum), nil
	case token.Number:
		return syntax.Number(t.Int), nil
	case token.Rational:
		return syntax.Rational(t.Num, t.Den), nil
	case token.String:
		return syntax.String(t.Text), nil
	case token.Symbol:
		return syntax.Symbol(t.Text), nil
	case token.True:
		return syntax.True(), nil
	case token.False:
		return syntax.False(), nil
	case token.RParen:
		return syntax.Syntax{}, fmt.Errorf("unexpected )")
	default:
		return syntax.Syntax{}, fmt.Errorf("unexpected end of input")
	}
}

func (r *Reader) list() (syntax.Syntax, error) {
	var children []syntax.Syntax

	for {
		if r.peek().Kind == token.EOF {
			return syntax.Syntax{}, fmt.Errorf("unterminated list: missing )")
		}

		if r.peek().Kind == token.RParen {
			r.consume()
			return syntax.List(children...), nil
		}

		child, err := r.form()
		if err != nil {
			return syntax.Syntax{}, err
		}

		children = append(children, child)
	}
}
