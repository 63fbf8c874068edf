// Released under an MIT license. See LICENSE.

package parser

import "github.com/schemecore/schemecore/internal/expr"

// The builder tables below map a primitive name to the Expr constructor
// for its arity shape, grounded on oh's commands.Functions()/Builtins()
// maps (name -> func(cell.I) cell.I); here the maps are consulted once,
// at parse time, to pick which concrete Expr node a call site becomes.

var unaryBuilders = map[string]func(expr.Expr) expr.Expr{
	"car":        func(r expr.Expr) expr.Expr { return expr.Car{Rand: r} },
	"cdr":        func(r expr.Expr) expr.Expr { return expr.Cdr{Rand: r} },
	"not":        func(r expr.Expr) expr.Expr { return expr.Not{Rand: r} },
	"boolean?":   func(r expr.Expr) expr.Expr { return expr.IsBoolean{Rand: r} },
	"number?":    func(r expr.Expr) expr.Expr { return expr.IsFixnum{Rand: r} },
	"null?":      func(r expr.Expr) expr.Expr { return expr.IsNull{Rand: r} },
	"pair?":      func(r expr.Expr) expr.Expr { return expr.IsPair{Rand: r} },
	"procedure?": func(r expr.Expr) expr.Expr { return expr.IsProcedure{Rand: r} },
	"symbol?":    func(r expr.Expr) expr.Expr { return expr.IsSymbol{Rand: r} },
	"string?":    func(r expr.Expr) expr.Expr { return expr.IsString{Rand: r} },
	"list?":      func(r expr.Expr) expr.Expr { return expr.IsList{Rand: r} },
	"display":    func(r expr.Expr) expr.Expr { return expr.Display{Rand: r} },
}

var binaryOnlyBuilders = map[string]func(expr.Expr, expr.Expr) expr.Expr{
	"modulo":   func(a, b expr.Expr) expr.Expr { return expr.Modulo{Rand1: a, Rand2: b} },
	"expt":     func(a, b expr.Expr) expr.Expr { return expr.Expt{Rand1: a, Rand2: b} },
	"cons":     func(a, b expr.Expr) expr.Expr { return expr.Cons{Rand1: a, Rand2: b} },
	"set-car!": func(a, b expr.Expr) expr.Expr { return expr.SetCar{Rand1: a, Rand2: b} },
	"set-cdr!": func(a, b expr.Expr) expr.Expr { return expr.SetCdr{Rand1: a, Rand2: b} },
	"eq?":      func(a, b expr.Expr) expr.Expr { return expr.IsEq{Rand1: a, Rand2: b} },
}

// dualArityBuilder holds both constructors for a primitive that dispatches
// on operand count (spec.md §4.3).
type dualArityBuilder struct {
	binary   func(a, b expr.Expr) expr.Expr
	variadic func(rands []expr.Expr) expr.Expr
}

var dualArityBuilders = map[string]dualArityBuilder{
	"+": {
		binary:   func(a, b expr.Expr) expr.Expr { return expr.Plus{Rand1: a, Rand2: b} },
		variadic: func(r []expr.Expr) expr.Expr { return expr.PlusVar{Rands: r} },
	},
	"-": {
		binary:   func(a, b expr.Expr) expr.Expr { return expr.Minus{Rand1: a, Rand2: b} },
		variadic: func(r []expr.Expr) expr.Expr { return expr.MinusVar{Rands: r} },
	},
	"*": {
		binary:   func(a, b expr.Expr) expr.Expr { return expr.Mult{Rand1: a, Rand2: b} },
		variadic: func(r []expr.Expr) expr.Expr { return expr.MultVar{Rands: r} },
	},
	"/": {
		binary:   func(a, b expr.Expr) expr.Expr { return expr.Div{Rand1: a, Rand2: b} },
		variadic: func(r []expr.Expr) expr.Expr { return expr.DivVar{Rands: r} },
	},
	"<": {
		binary:   func(a, b expr.Expr) expr.Expr { return expr.Less{Rand1: a, Rand2: b} },
		variadic: func(r []expr.Expr) expr.Expr { return expr.LessVar{Rands: r} },
	},
	"<=": {
		binary:   func(a, b expr.Expr) expr.Expr { return expr.LessEq{Rand1: a, Rand2: b} },
		variadic: func(r []expr.Expr) expr.Expr { return expr.LessEqVar{Rands: r} },
	},
	"=": {
		binary:   func(a, b expr.Expr) expr.Expr { return expr.Equal{Rand1: a, Rand2: b} },
		variadic: func(r []expr.Expr) expr.Expr { return expr.EqualVar{Rands: r} },
	},
	">=": {
		binary:   func(a, b expr.Expr) expr.Expr { return expr.GreaterEq{Rand1: a, Rand2: b} },
		variadic: func(r []expr.Expr) expr.Expr { return expr.GreaterEqVar{Rands: r} },
	},
	">": {
		binary:   func(a, b expr.Expr) expr.Expr { return expr.Greater{Rand1: a, Rand2: b} },
		variadic: func(r []expr.Expr) expr.Expr { return expr.GreaterVar{Rands: r} },
	},
}

var variadicOnlyBuilders = map[string]func([]expr.Expr) expr.Expr{
	"list": func(r []expr.Expr) expr.Expr { return expr.ListFunc{Rands: r} },
	"and":  func(r []expr.Expr) expr.Expr { return expr.AndVar{Rands: r} },
	"or":   func(r []expr.Expr) expr.Expr { return expr.OrVar{Rands: r} },
}
