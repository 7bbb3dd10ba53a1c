// Package eval walks the AST produced by the parser and executes it
// against a scope.Scope, producing value.Value results. Grounded on
// go-mix's eval/eval.go (a single recursive Eval(node, scope) dispatch
// over the AST's concrete types), narrowed to the arithmetic/boolean
// value space value.Value names and to Klug's dynamic (caller-scope)
// function-call semantics from
// original_source/klug/crates/klug/src/eval/mod.rs's FuncCall::eval,
// which builds the call frame as a child of the CALLER's environment
// rather than the definition environment.
package eval

import (
	"github.com/klugscript/klug/ast"
	"github.com/klugscript/klug/diag"
	"github.com/klugscript/klug/scope"
	"github.com/klugscript/klug/value"
)

// Program evaluates every declaration in prog against sc in order,
// returning the value of the last one (Unit for an empty program).
// Evaluation stops at the first runtime diagnostic.
func Program(prog *ast.Program, sc *scope.Scope) (value.Value, *diag.Diagnostic) {
	var last value.Value = value.Unit{}
	for _, decl := range prog.Declarations {
		v, err := Declaration(decl, sc)
		if err != nil {
			return nil, err
		}
		last = v
	}
	return last, nil
}

// Declaration evaluates one top-level declaration.
func Declaration(d ast.Declaration, sc *scope.Scope) (value.Value, *diag.Diagnostic) {
	switch decl := d.(type) {
	case *ast.LetDecl:
		if decl.Init == nil {
			return nil, diag.Other("let %q has no initialiser", decl.Name)
		}
		v, err := Expression(decl.Init, sc)
		if err != nil {
			return nil, err
		}
		sc.Extend(decl.Name, v)
		return value.Unit{}, nil

	case *ast.FuncDef:
		sc.ExtendFunc(decl.Name, decl.Params, decl.Body)
		return value.Unit{}, nil

	case *ast.StmtDecl:
		return Statement(decl.Stmt, sc)

	default:
		return nil, diag.Other("unhandled declaration %T", d)
	}
}

// Statement evaluates one statement.
func Statement(s ast.Statement, sc *scope.Scope) (value.Value, *diag.Diagnostic) {
	switch stmt := s.(type) {
	case *ast.ExprStmt:
		return Expression(stmt.Expr, sc)
	default:
		return nil, diag.Other("unhandled statement %T", s)
	}
}

// Expression evaluates e in sc.
func Expression(e ast.Expression, sc *scope.Scope) (value.Value, *diag.Diagnostic) {
	switch expr := e.(type) {
	case *ast.NumberLiteral:
		return value.Number(expr.Value), nil

	case *ast.StringLiteral:
		return value.String(expr.Value), nil

	case *ast.BoolLiteral:
		return value.Bool(expr.Value), nil

	case *ast.Identifier:
		return evalIdentifier(expr, sc)

	case *ast.Unary:
		return evalUnary(expr, sc)

	case *ast.Binary:
		return evalBinary(expr, sc)

	case *ast.Grouping:
		return Expression(expr.Inner, sc)

	case *ast.Block:
		return evalBlock(expr, sc)

	case *ast.Call:
		return evalCall(expr, sc)

	default:
		return nil, diag.Other("unhandled expression %T", e)
	}
}

func evalIdentifier(id *ast.Identifier, sc *scope.Scope) (value.Value, *diag.Diagnostic) {
	v, found, isFunc := sc.Lookup(id.Name)
	if found {
		return v, nil
	}
	if isFunc {
		return nil, diag.Name("%s is not a value", id.Name)
	}
	return nil, diag.Name("%s not bound", id.Name)
}

func evalUnary(u *ast.Unary, sc *scope.Scope) (value.Value, *diag.Diagnostic) {
	operand, err := Expression(u.Operand, sc)
	if err != nil {
		return nil, err
	}

	switch u.Op {
	case ast.Negate:
		n, ok := value.AsNumber(operand)
		if !ok {
			return nil, diag.Type("cannot negate a %s", operand.Type())
		}
		return -n, nil
	case ast.Not:
		b, ok := value.AsBool(operand)
		if !ok {
			return nil, diag.Type("cannot apply ! to a %s", operand.Type())
		}
		return !b, nil
	default:
		return nil, diag.Other("unhandled unary operator %v", u.Op)
	}
}

func evalBinary(b *ast.Binary, sc *scope.Scope) (value.Value, *diag.Diagnostic) {
	left, err := Expression(b.Left, sc)
	if err != nil {
		return nil, err
	}
	right, err := Expression(b.Right, sc)
	if err != nil {
		return nil, err
	}

	ln, lok := value.AsNumber(left)
	rn, rok := value.AsNumber(right)
	if !lok || !rok {
		return nil, diag.Type("operator %s requires two numbers, got %s and %s", b.Op, left.Type(), right.Type())
	}

	switch b.Op {
	case ast.Add:
		return ln + rn, nil
	case ast.Sub:
		return ln - rn, nil
	case ast.Mul:
		return ln * rn, nil
	case ast.Div:
		if rn == 0 {
			return nil, diag.DivByZero()
		}
		return ln / rn, nil
	default:
		return nil, diag.Other("unhandled binary operator %v", b.Op)
	}
}

// evalBlock evaluates each statement in a fresh child of sc, keeping
// only the last statement's value. An empty block evaluates to Unit.
func evalBlock(b *ast.Block, sc *scope.Scope) (value.Value, *diag.Diagnostic) {
	inner := sc.NewChild()
	var last value.Value = value.Unit{}
	for _, stmt := range b.Statements {
		v, err := Statement(stmt, inner)
		if err != nil {
			return nil, err
		}
		last = v
	}
	return last, nil
}

// evalCall invokes a function binding. Per Klug's dynamic-scoping
// semantics, the call frame is a child of the CALLER's scope (sc), not
// the scope active when the function was defined.
func evalCall(c *ast.Call, sc *scope.Scope) (value.Value, *diag.Diagnostic) {
	fn, found, isValue := sc.LookupFunction(c.Callee)
	if !found {
		if isValue {
			return nil, diag.Name("%s is not a function", c.Callee)
		}
		return nil, diag.Name("%s not bound", c.Callee)
	}

	if len(c.Args) != len(fn.Params) {
		return nil, diag.Arity("wrong arity")
	}

	args := make([]value.Value, len(c.Args))
	for i, a := range c.Args {
		v, err := Expression(a, sc)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	call := sc.NewChild()
	for i, param := range fn.Params {
		call.Extend(param, args[i])
	}

	return Statement(fn.Body, call)
}
