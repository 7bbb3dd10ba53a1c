package parser

import (
	"testing"

	"github.com/klugscript/klug/ast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseExpr(t *testing.T, src string) ast.Expression {
	t.Helper()
	prog, err := New(src).Parse()
	require.Nil(t, err, "unexpected parse error: %v", err)
	require.Len(t, prog.Declarations, 1)
	decl, ok := prog.Declarations[0].(*ast.StmtDecl)
	require.True(t, ok)
	stmt, ok := decl.Stmt.(*ast.ExprStmt)
	require.True(t, ok)
	return stmt.Expr
}

func TestParse_SimpleBinary(t *testing.T) {
	expr := parseExpr(t, "1 + 2")
	bin, ok := expr.(*ast.Binary)
	require.True(t, ok)
	assert.Equal(t, ast.Add, bin.Op)
}

func TestParse_PrecedenceMulBindsTighterThanAdd(t *testing.T) {
	// 1 + 2 * 3 parses as 1 + (2 * 3)
	expr := parseExpr(t, "1 + 2 * 3")
	bin, ok := expr.(*ast.Binary)
	require.True(t, ok)
	assert.Equal(t, ast.Add, bin.Op)
	_, lhsIsNum := bin.Left.(*ast.NumberLiteral)
	assert.True(t, lhsIsNum)
	rhs, ok := bin.Right.(*ast.Binary)
	require.True(t, ok)
	assert.Equal(t, ast.Mul, rhs.Op)
}

func TestParse_PrecedenceOtherOrder(t *testing.T) {
	// 1 * 2 - 3 parses as (1 * 2) - 3
	expr := parseExpr(t, "1 * 2 - 3")
	bin, ok := expr.(*ast.Binary)
	require.True(t, ok)
	assert.Equal(t, ast.Sub, bin.Op)
	lhs, ok := bin.Left.(*ast.Binary)
	require.True(t, ok)
	assert.Equal(t, ast.Mul, lhs.Op)
	_, rhsIsNum := bin.Right.(*ast.NumberLiteral)
	assert.True(t, rhsIsNum)
}

func TestParse_LeftAssociativityAtEqualPrecedence(t *testing.T) {
	// a - b - c parses as (a - b) - c
	expr := parseExpr(t, "10 - 3 - 2")
	outer, ok := expr.(*ast.Binary)
	require.True(t, ok)
	assert.Equal(t, ast.Sub, outer.Op)
	inner, ok := outer.Left.(*ast.Binary)
	require.True(t, ok)
	assert.Equal(t, ast.Sub, inner.Op)
	_, rightIsLeafNumber := outer.Right.(*ast.NumberLiteral)
	assert.True(t, rightIsLeafNumber)
}

func TestParse_Grouping(t *testing.T) {
	expr := parseExpr(t, "(1 + 2) * 3")
	bin, ok := expr.(*ast.Binary)
	require.True(t, ok)
	assert.Equal(t, ast.Mul, bin.Op)
	_, ok = bin.Left.(*ast.Grouping)
	assert.True(t, ok)
}

func TestParse_UnaryMinusAndNot(t *testing.T) {
	expr := parseExpr(t, "-5 + 20")
	bin, ok := expr.(*ast.Binary)
	require.True(t, ok)
	un, ok := bin.Left.(*ast.Unary)
	require.True(t, ok)
	assert.Equal(t, ast.Negate, un.Op)

	expr2 := parseExpr(t, "!true")
	un2, ok := expr2.(*ast.Unary)
	require.True(t, ok)
	assert.Equal(t, ast.Not, un2.Op)
}

func TestParse_StringLiteralStripsQuotes(t *testing.T) {
	expr := parseExpr(t, "'hello'")
	s, ok := expr.(*ast.StringLiteral)
	require.True(t, ok)
	assert.Equal(t, "hello", s.Value)
}

func TestParse_FunctionCallExpression(t *testing.T) {
	expr := parseExpr(t, "square 6")
	call, ok := expr.(*ast.Call)
	require.True(t, ok)
	assert.Equal(t, "square", call.Callee)
	require.Len(t, call.Args, 1)
}

func TestParse_FunctionCallWithMultipleArgs(t *testing.T) {
	expr := parseExpr(t, "add 1 2")
	call, ok := expr.(*ast.Call)
	require.True(t, ok)
	assert.Equal(t, "add", call.Callee)
	assert.Len(t, call.Args, 2)
}

func TestParse_IdentifierWithoutArgsIsNotACall(t *testing.T) {
	expr := parseExpr(t, "x")
	_, ok := expr.(*ast.Identifier)
	assert.True(t, ok)
}

func TestParse_LetDeclaration(t *testing.T) {
	prog, err := New("let x = 10\n").Parse()
	require.Nil(t, err)
	require.Len(t, prog.Declarations, 1)
	let, ok := prog.Declarations[0].(*ast.LetDecl)
	require.True(t, ok)
	assert.Equal(t, "x", let.Name)
	num, ok := let.Init.(*ast.NumberLiteral)
	require.True(t, ok)
	assert.Equal(t, 10.0, num.Value)
}

func TestParse_LetWithoutInitialiserIsParseError(t *testing.T) {
	_, err := New("let x\n").Parse()
	require.NotNil(t, err)
}

func TestParse_FuncDef(t *testing.T) {
	prog, err := New("fn square n => n * n\n").Parse()
	require.Nil(t, err)
	require.Len(t, prog.Declarations, 1)
	fn, ok := prog.Declarations[0].(*ast.FuncDef)
	require.True(t, ok)
	assert.Equal(t, "square", fn.Name)
	assert.Equal(t, []string{"n"}, fn.Params)
}

func TestParse_EmptyBlock(t *testing.T) {
	expr := parseExpr(t, "{}")
	block, ok := expr.(*ast.Block)
	require.True(t, ok)
	assert.Empty(t, block.Statements)
}

func TestParse_BlockWithStatements(t *testing.T) {
	expr := parseExpr(t, "{ 1\n2\n }")
	block, ok := expr.(*ast.Block)
	require.True(t, ok)
	assert.Len(t, block.Statements, 2)
}

func TestParse_MultipleDeclarationsOnSeparateLines(t *testing.T) {
	prog, err := New("let x = 10\nx + 5\n").Parse()
	require.Nil(t, err)
	require.Len(t, prog.Declarations, 2)
}

func TestParse_ExpectedExpressionTokenError(t *testing.T) {
	_, err := New("+ 1").Parse()
	require.NotNil(t, err)
}

func TestParse_UnrecognizedByteSurfacesAsDiagnostic(t *testing.T) {
	_, err := New("1 @ 2\n").Parse()
	require.NotNil(t, err)
}

func TestParse_Deterministic(t *testing.T) {
	src := "1 + 2 * 3 - (4 / 2)\n"
	p1, err1 := New(src).Parse()
	require.Nil(t, err1)
	p2, err2 := New(src).Parse()
	require.Nil(t, err2)
	assert.Equal(t, p1.Declarations[0].String(), p2.Declarations[0].String())
}

func TestParse_GroupingTransparencyOnPrettyPrint(t *testing.T) {
	expr := parseExpr(t, "1 + 2 * 3")
	reparsed := parseExpr(t, "("+expr.String()+")")
	grouped, ok := reparsed.(*ast.Grouping)
	require.True(t, ok)
	assert.Equal(t, expr.String(), grouped.Inner.String())
}
