// Package klug is the core API: parse Klug source into an AST, evaluate
// that AST against a persistent scope, or do both in one call. Grounded
// on go-mix's root main.go, which wires parser.NewParser and
// eval.NewEvaluator together ad hoc at each call site; here that wiring
// is collected into one small driver so every caller — the REPL, a
// batch runner, a test — shares the same parse-then-evaluate contract.
package klug

import (
	"github.com/klugscript/klug/ast"
	"github.com/klugscript/klug/diag"
	"github.com/klugscript/klug/eval"
	"github.com/klugscript/klug/parser"
	"github.com/klugscript/klug/scope"
	"github.com/klugscript/klug/value"
)

// NewEnv creates a fresh top-level environment. Its lifetime is meant
// to span an entire session: callers reuse the same *scope.Scope across
// successive Run calls so that let and fn declarations persist.
func NewEnv() *scope.Scope {
	return scope.New()
}

// Parse compiles source into a closed AST, or returns a diagnostic
// describing the first lexical or syntactic error encountered.
func Parse(source string) (*ast.Program, *diag.Diagnostic) {
	return parser.New(source).Parse()
}

// Evaluate walks prog against env, mutating env with any new bindings
// and returning the value of the last top-level declaration (Unit if
// the program was empty or ended in one).
func Evaluate(prog *ast.Program, env *scope.Scope) (value.Value, *diag.Diagnostic) {
	return eval.Program(prog, env)
}

// Run parses and evaluates source against env in one step. The second
// return value is false when evaluation produced no useful result
// (value.Unit), mirroring the core API's "no result" convention; it is
// true for every other value.
func Run(source string, env *scope.Scope) (value.Value, bool, *diag.Diagnostic) {
	prog, err := Parse(source)
	if err != nil {
		return nil, false, err
	}

	v, err := Evaluate(prog, env)
	if err != nil {
		return nil, false, err
	}

	if _, isUnit := v.(value.Unit); isUnit {
		return nil, false, nil
	}
	return v, true, nil
}
