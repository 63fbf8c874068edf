// Released under an MIT license. See LICENSE.

// Command schemecore is the driver spec.md §2 and §11 describe: it wires
// the reader, parser, and evaluator together behind a script runner and
// an interactive REPL.
//
// Grounded on oh's internal/system/options (docopt-go usage parsing) and
// internal/ui (a peterh/liner prompt loop with go-isatty interactivity
// detection and persisted history); oh toggles liner's cooked/uncooked
// terminal mode around each prompt to cooperate with job control, which
// this single-threaded core has no need of (spec.md §5), so the loop
// below keeps liner's history persistence and Ctrl-C handling but not
// that mode dance. Multi-line input is handled by accumulating lines
// until internal/reader reports a paren-balanced form.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"
	"github.com/peterh/liner"

	"github.com/schemecore/schemecore/internal/env"
	"github.com/schemecore/schemecore/internal/eval"
	"github.com/schemecore/schemecore/internal/parser"
	"github.com/schemecore/schemecore/internal/printer"
	"github.com/schemecore/schemecore/internal/reader"
	"github.com/schemecore/schemecore/internal/syntax"
	"github.com/schemecore/schemecore/internal/value"
)

const usage = `schemecore

Usage:
  schemecore [SCRIPT]
  schemecore -c EXPR
  schemecore -h
  schemecore -v

Arguments:
  SCRIPT  Path to a source file to run non-interactively.

Options:
  -c, --command=EXPR  Evaluate EXPR and exit.
  -h, --help          Display this help.
  -v, --version       Print the version.
`

const version = "schemecore 0.1.0"

func main() {
	opts, err := docopt.ParseArgs(usage, os.Args[1:], version)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	en := env.New()

	if command, _ := opts.String("--command"); command != "" {
		runSource(en, command, true)
		return
	}

	if path, _ := opts.String("SCRIPT"); path != "" {
		src, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		runSource(en, string(src), false)
		return
	}

	if isatty.IsTerminal(os.Stdin.Fd()) {
		repl(en)
		return
	}

	src, err := io.ReadAll(os.Stdin)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	runSource(en, string(src), false)
}

// runSource reads and evaluates every top-level form in src in order,
// stopping early on the first error or on (exit). echo controls whether
// each result's literal form is printed, the behavior -c EXPR wants.
func runSource(en *env.Env, src string, echo bool) {
	forms, err := reader.ReadAll(src)
	if err != nil {
		fmt.Fprintln(os.Stderr, "schemecore:", err)
		os.Exit(1)
	}

	for _, s := range forms {
		e, err := parser.Parse(s, en)
		if err != nil {
			fmt.Fprintln(os.Stderr, "schemecore:", err)
			os.Exit(1)
		}

		v, err := eval.Eval(e, en)
		if err != nil {
			fmt.Fprintln(os.Stderr, "schemecore:", err)
			os.Exit(1)
		}

		if v.Kind() == value.TerminateKind {
			return
		}

		if echo && v.Kind() != value.VoidKind {
			fmt.Println(printer.Literal(v))
		}
	}
}

func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(home, ".schemecore_history")
}

// repl runs the interactive read-eval-print loop, grounded on oh's
// internal/ui.Run: a peterh/liner prompt with persisted history, reading
// one line at a time and handing it to the reader, which reports
// whether a complete, paren-balanced form has accumulated yet.
func repl(en *env.Env) {
	cli := liner.NewLiner()
	defer cli.Close()

	cli.SetCtrlCAborts(true)

	if path := historyPath(); path != "" {
		if f, err := os.Open(path); err == nil {
			cli.ReadHistory(f)
			f.Close()
		}
	}

	var pending strings.Builder

	prompt := "> "

	for {
		line, err := cli.Prompt(prompt)

		switch err {
		case nil:
			cli.AppendHistory(line)
		case liner.ErrPromptAborted:
			pending.Reset()
			prompt = "> "

			continue
		default:
			saveHistory(cli)
			return
		}

		pending.WriteString(line)
		pending.WriteString("\n")

		forms, err := reader.ReadAll(pending.String())
		if err != nil {
			// Treat any reader error as "more input needed" until the
			// user closes every open paren; a malformed form still
			// surfaces once parsed.
			prompt = ".. "

			continue
		}

		pending.Reset()
		prompt = "> "

		if done := evalForms(en, forms); done {
			saveHistory(cli)
			return
		}
	}
}

// evalForms parses and evaluates each form in turn, echoing non-void
// results the way the -c EXPR path does. It reports whether (exit) was
// reached, so the REPL loop knows to stop.
func evalForms(en *env.Env, forms []syntax.Syntax) bool {
	for _, s := range forms {
		e, err := parser.Parse(s, en)
		if err != nil {
			fmt.Fprintln(os.Stderr, "schemecore:", err)
			continue
		}

		v, err := eval.Eval(e, en)
		if err != nil {
			fmt.Fprintln(os.Stderr, "schemecore:", err)
			continue
		}

		if v.Kind() == value.TerminateKind {
			return true
		}

		if v.Kind() != value.VoidKind {
			fmt.Println(printer.Literal(v))
		}
	}

	return false
}

func saveHistory(cli *liner.State) {
	path := historyPath()
	if path == "" {
		return
	}

	f, err := os.Create(path)
	if err != nil {
		return
	}

	defer f.Close()

	w := bufio.NewWriter(f)
	cli.WriteHistory(w)
	w.Flush()
}
