// Package ast defines the tagged-sum-type tree produced by the parser:
// expressions, statements, and declarations, per the Klug data model.
package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Expression is any node that evaluates to a runtime value.
type Expression interface {
	exprNode()
	String() string
}

// Statement is a construct evaluated for its value.
type Statement interface {
	stmtNode()
	String() string
}

// Declaration is a top-level construct: a binding, a function
// definition, or a bare statement.
type Declaration interface {
	declNode()
	String() string
}

// Program is the result of parsing: an ordered list of declarations.
type Program struct {
	Declarations []Declaration
}

// --- Expressions ---

// NumberLiteral is a floating-point literal.
type NumberLiteral struct {
	Value float64
}

func (*NumberLiteral) exprNode() {}
func (n *NumberLiteral) String() string {
	return strconv.FormatFloat(n.Value, 'g', -1, 64)
}

// StringLiteral holds the unescaped contents between the single quotes
// (quotes already stripped by the parser).
type StringLiteral struct {
	Value string
}

func (*StringLiteral) exprNode() {}
func (s *StringLiteral) String() string {
	return "'" + s.Value + "'"
}

// BoolLiteral is the literal true or false.
type BoolLiteral struct {
	Value bool
}

func (*BoolLiteral) exprNode() {}
func (b *BoolLiteral) String() string {
	if b.Value {
		return "true"
	}
	return "false"
}

// Identifier references a name bound in the environment.
type Identifier struct {
	Name string
}

func (*Identifier) exprNode() {}
func (i *Identifier) String() string { return i.Name }

// UnaryOp is a prefix operator.
type UnaryOp int

const (
	Negate UnaryOp = iota
	Not
)

func (op UnaryOp) String() string {
	switch op {
	case Negate:
		return "-"
	case Not:
		return "!"
	default:
		return "?"
	}
}

// Unary is a prefix-operator expression: -e or !e.
type Unary struct {
	Op      UnaryOp
	Operand Expression
}

func (*Unary) exprNode() {}
func (u *Unary) String() string {
	return fmt.Sprintf("%s%s", u.Op, u.Operand)
}

// BinaryOp is an infix arithmetic operator.
type BinaryOp int

const (
	Add BinaryOp = iota
	Sub
	Mul
	Div
)

func (op BinaryOp) String() string {
	switch op {
	case Add:
		return "+"
	case Sub:
		return "-"
	case Mul:
		return "*"
	case Div:
		return "/"
	default:
		return "?"
	}
}

// Binary is a left-op-right infix expression.
type Binary struct {
	Left  Expression
	Op    BinaryOp
	Right Expression
}

func (*Binary) exprNode() {}
func (b *Binary) String() string {
	return fmt.Sprintf("%s %s %s", b.Left, b.Op, b.Right)
}

// Grouping is a parenthesized expression: semantically transparent,
// kept in the tree only so pretty-printing round-trips faithfully.
type Grouping struct {
	Inner Expression
}

func (*Grouping) exprNode() {}
func (g *Grouping) String() string {
	return fmt.Sprintf("(%s)", g.Inner)
}

// Block is a brace-delimited sequence of statements, evaluating to the
// value of its last statement (or Unit if empty).
type Block struct {
	Statements []Statement
}

func (*Block) exprNode() {}
func (b *Block) String() string {
	parts := make([]string, len(b.Statements))
	for i, s := range b.Statements {
		parts[i] = s.String()
	}
	return "{ " + strings.Join(parts, "; ") + " }"
}

// Call is a function invocation in expression position: an identifier
// followed by whitespace-separated argument expressions.
type Call struct {
	Callee string
	Args   []Expression
}

func (*Call) exprNode() {}
func (c *Call) String() string {
	parts := make([]string, len(c.Args))
	for i, a := range c.Args {
		parts[i] = a.String()
	}
	if len(parts) == 0 {
		return c.Callee
	}
	return c.Callee + " " + strings.Join(parts, " ")
}

// --- Statements ---

// ExprStmt wraps an expression as a statement.
type ExprStmt struct {
	Expr Expression
}

func (*ExprStmt) stmtNode() {}
func (e *ExprStmt) String() string { return e.Expr.String() }

// --- Declarations ---

// LetDecl introduces a new binding in the current scope. Init is nil
// when the source omitted an initializer, which the parser rejects as
// a parse error (see spec's open question); the AST shape still allows
// it for callers that construct trees directly (e.g. tests).
type LetDecl struct {
	Name string
	Init Expression
}

func (*LetDecl) declNode() {}
func (l *LetDecl) String() string {
	if l.Init == nil {
		return fmt.Sprintf("let %s", l.Name)
	}
	return fmt.Sprintf("let %s = %s", l.Name, l.Init)
}

// FuncDef introduces a callable with fixed arity.
type FuncDef struct {
	Name   string
	Params []string
	Body   Statement
}

func (*FuncDef) declNode() {}
func (f *FuncDef) String() string {
	return fmt.Sprintf("fn %s %s => %s", f.Name, strings.Join(f.Params, " "), f.Body)
}

// StmtDecl is a bare statement at the top level.
type StmtDecl struct {
	Stmt Statement
}

func (*StmtDecl) declNode() {}
func (s *StmtDecl) String() string { return s.Stmt.String() }
