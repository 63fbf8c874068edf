// Released under an MIT license. See LICENSE.

// Package env provides the lexical Environment of spec.md §3.3: an ordered
// chain of frames, each binding names to Values, searched from most
// recently extended to oldest.
//
// Grounded on oh's frame.T (a parent-linked activation record holding a
// scope.I) and hash.T (a mutable map[string]reference.I) collapsed into one
// type, since this core has no public/private scope split and no need for
// oh's sync.RWMutex -- the evaluator is single-threaded end to end
// (spec.md §5), unlike oh, which runs pipeline stages and background jobs
// as concurrent tasks sharing scopes.
package env

import "github.com/schemecore/schemecore/internal/value"

// Env is one frame in the chain. A Let/Letrec's entire binding list becomes
// one Env frame (spec.md §4.2: "extend with all bindings"), not one frame
// per binding.
type Env struct {
	parent *Env
	vars   map[string]value.Value
}

// New creates an empty top-level Env with no parent -- the global frame a
// REPL driver holds for the lifetime of the process.
func New() *Env {
	return &Env{vars: map[string]value.Value{}}
}

// Extend returns a new Env, one frame longer, binding each names[i] to
// vals[i]. It never mutates e or any frame reachable from e, so closures
// that captured e are unaffected (spec.md §3.3, §9).
func (e *Env) Extend(names []string, vals []value.Value) *Env {
	vars := make(map[string]value.Value, len(names))

	for i, n := range names {
		vars[n] = vals[i]
	}

	return &Env{parent: e, vars: vars}
}

// Find walks the chain from e outward, returning the first matching
// binding (lexical shadowing: most recent wins).
func (e *Env) Find(name string) (value.Value, bool) {
	for f := e; f != nil; f = f.parent {
		if v, ok := f.vars[name]; ok {
			return v, true
		}
	}

	return nil, false
}

// Modify mutates the first matching binding in place, visible to every
// holder of that frame's *Env (used by set! and Letrec's placeholder
// fixup; spec.md §3.3, §4.2). It reports whether a binding was found.
func (e *Env) Modify(name string, v value.Value) bool {
	for f := e; f != nil; f = f.parent {
		if _, ok := f.vars[name]; ok {
			f.vars[name] = v
			return true
		}
	}

	return false
}

// Define binds name to v in e itself -- not a new frame. Because Go maps
// are reference types, this mutation is visible to anyone else holding
// this same *Env, which is exactly the in-out reference spec.md §9 asks
// for: a top-level Define made through the REPL's persistent *Env is
// visible on every subsequent top-level evaluation without the evaluator
// needing to thread environments through its return values.
func (e *Env) Define(name string, v value.Value) {
	e.vars[name] = v
}
