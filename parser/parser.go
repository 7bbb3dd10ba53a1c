// Package parser implements Klug's Pratt expression parser and the
// statement/declaration layers built on top of it. Grounded on
// go-mix's parser/parser.go (Parser wraps a token-lookahead cursor,
// registers prefix/infix handlers, Parse() loops to EOF) and on
// original_source/klug/crates/klug/src/parser/expr.rs's
// expr_binding_power algorithm for the Pratt loop itself.
package parser

import (
	"strconv"

	"github.com/klugscript/klug/ast"
	"github.com/klugscript/klug/cursor"
	"github.com/klugscript/klug/diag"
	"github.com/klugscript/klug/lexer"
)

// Parser turns Klug source text into an ast.Program. Unlike go-mix's
// error-accumulating parser, Parser stops at the first error: spec.md
// §7 fixes parse errors as non-recoverable for the current line.
type Parser struct {
	c *cursor.Cursor
}

// New creates a Parser over src.
func New(src string) *Parser {
	return &Parser{c: cursor.New(src)}
}

// Parse repeatedly parses declarations until end of input.
func (p *Parser) Parse() (*ast.Program, *diag.Diagnostic) {
	prog := &ast.Program{}
	p.c.SkipNewlines()
	for !p.c.IsEnd() {
		decl, err := p.parseDeclaration()
		if err != nil {
			return nil, err
		}
		prog.Declarations = append(prog.Declarations, decl)
		p.c.SkipNewlines()
	}
	return prog, nil
}

// --- Declarations ---

func (p *Parser) parseDeclaration() (ast.Declaration, *diag.Diagnostic) {
	switch p.c.Current().Kind {
	case lexer.LET:
		return p.parseLetDecl()
	case lexer.FN:
		return p.parseFuncDef()
	default:
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		if err := p.expectTerminator(); err != nil {
			return nil, err
		}
		return &ast.StmtDecl{Stmt: stmt}, nil
	}
}

func (p *Parser) parseLetDecl() (ast.Declaration, *diag.Diagnostic) {
	p.c.Consume() // 'let'

	nameTok, ok := p.c.Expect(lexer.IDENT)
	if !ok {
		return nil, unexpected("identifier", p.c.Current())
	}

	if p.c.Current().Kind != lexer.ASSIGN {
		return nil, diag.Parse("let without initialiser")
	}
	p.c.Consume() // '='

	init, err := p.parseExpression(minBindingPower)
	if err != nil {
		return nil, err
	}

	if err := p.expectTerminator(); err != nil {
		return nil, err
	}

	return &ast.LetDecl{Name: nameTok.Literal, Init: init}, nil
}

func (p *Parser) parseFuncDef() (ast.Declaration, *diag.Diagnostic) {
	p.c.Consume() // 'fn'

	nameTok, ok := p.c.Expect(lexer.IDENT)
	if !ok {
		return nil, unexpected("identifier", p.c.Current())
	}

	var params []string
	for p.c.Current().Kind == lexer.IDENT {
		params = append(params, p.c.Next().Literal)
	}

	if p.c.Current().Kind != lexer.ASSIGN {
		return nil, unexpected("'=>'", p.c.Current())
	}
	p.c.Consume() // the lexer has no dedicated '=>' token; '=' opens it
	if p.c.Current().Kind != lexer.GT {
		return nil, unexpected("'=>'", p.c.Current())
	}
	p.c.Consume()

	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}

	if err := p.expectTerminator(); err != nil {
		return nil, err
	}

	return &ast.FuncDef{Name: nameTok.Literal, Params: params, Body: body}, nil
}

// expectTerminator consumes a trailing newline, if present. End of
// input also terminates a declaration. Extended, per spec.md §9's
// redesign note, to every declaration form rather than just `let`.
func (p *Parser) expectTerminator() *diag.Diagnostic {
	switch p.c.Current().Kind {
	case lexer.NEWLINE:
		p.c.Consume()
		return nil
	case lexer.EOF:
		return nil
	default:
		return unexpected("newline", p.c.Current())
	}
}

// --- Statements ---

func (p *Parser) parseStatement() (ast.Statement, *diag.Diagnostic) {
	expr, err := p.parseExpression(minBindingPower)
	if err != nil {
		return nil, err
	}
	return &ast.ExprStmt{Expr: expr}, nil
}

// --- Expressions ---

func (p *Parser) parseExpression(minBP int) (ast.Expression, *diag.Diagnostic) {
	left, err := p.parsePrefix()
	if err != nil {
		return nil, err
	}

	for {
		kind := p.c.Current().Kind
		leftBP, rightBP, ok := infixBindingPower(kind)
		if !ok || leftBP < minBP {
			return left, nil
		}

		op := binaryOpFor(kind)
		p.c.Consume()

		right, err := p.parseExpression(rightBP)
		if err != nil {
			return nil, err
		}
		left = &ast.Binary{Left: left, Op: op, Right: right}
	}
}

func (p *Parser) parsePrefix() (ast.Expression, *diag.Diagnostic) {
	tok := p.c.Current()

	switch tok.Kind {
	case lexer.NUMBER:
		p.c.Consume()
		n, perr := strconv.ParseFloat(tok.Literal, 64)
		if perr != nil {
			return nil, diag.Parse("invalid number literal %q", tok.Literal)
		}
		return &ast.NumberLiteral{Value: n}, nil

	case lexer.STRING:
		p.c.Consume()
		return &ast.StringLiteral{Value: stripQuotes(tok.Literal)}, nil

	case lexer.TRUE:
		p.c.Consume()
		return &ast.BoolLiteral{Value: true}, nil

	case lexer.FALSE:
		p.c.Consume()
		return &ast.BoolLiteral{Value: false}, nil

	case lexer.IDENT:
		p.c.Consume()
		if argumentStart(p.c.Current().Kind) {
			return p.parseCallArgs(tok.Literal)
		}
		return &ast.Identifier{Name: tok.Literal}, nil

	case lexer.MINUS:
		p.c.Consume()
		operand, err := p.parseExpression(prefixRightBP)
		if err != nil {
			return nil, err
		}
		return &ast.Unary{Op: ast.Negate, Operand: operand}, nil

	case lexer.BANG:
		p.c.Consume()
		operand, err := p.parseExpression(prefixRightBP)
		if err != nil {
			return nil, err
		}
		return &ast.Unary{Op: ast.Not, Operand: operand}, nil

	case lexer.LPAREN:
		p.c.Consume()
		inner, err := p.parseExpression(minBindingPower)
		if err != nil {
			return nil, err
		}
		if _, ok := p.c.Expect(lexer.RPAREN); !ok {
			return nil, unexpected("')'", p.c.Current())
		}
		return &ast.Grouping{Inner: inner}, nil

	case lexer.LBRACE:
		return p.parseBlock()

	default:
		return nil, diag.Parse("expected expression token, got %q", tok.Literal)
	}
}

// parseCallArgs parses the one-or-more argument atoms that follow an
// identifier directly, producing a Call node. If no argument follows,
// the caller never reaches here (see parsePrefix), so a bare identifier
// is never a call.
func (p *Parser) parseCallArgs(callee string) (ast.Expression, *diag.Diagnostic) {
	var args []ast.Expression
	for argumentStart(p.c.Current().Kind) {
		arg, err := p.parseArgument()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}
	return &ast.Call{Callee: callee, Args: args}, nil
}

// parseArgument parses a single call argument: a literal, a plain
// identifier reference, or a parenthesized expression. Arguments never
// themselves chain into further calls without parentheses.
func (p *Parser) parseArgument() (ast.Expression, *diag.Diagnostic) {
	tok := p.c.Current()
	switch tok.Kind {
	case lexer.NUMBER:
		p.c.Consume()
		n, perr := strconv.ParseFloat(tok.Literal, 64)
		if perr != nil {
			return nil, diag.Parse("invalid number literal %q", tok.Literal)
		}
		return &ast.NumberLiteral{Value: n}, nil
	case lexer.STRING:
		p.c.Consume()
		return &ast.StringLiteral{Value: stripQuotes(tok.Literal)}, nil
	case lexer.TRUE:
		p.c.Consume()
		return &ast.BoolLiteral{Value: true}, nil
	case lexer.FALSE:
		p.c.Consume()
		return &ast.BoolLiteral{Value: false}, nil
	case lexer.IDENT:
		p.c.Consume()
		return &ast.Identifier{Name: tok.Literal}, nil
	case lexer.LPAREN:
		p.c.Consume()
		inner, err := p.parseExpression(minBindingPower)
		if err != nil {
			return nil, err
		}
		if _, ok := p.c.Expect(lexer.RPAREN); !ok {
			return nil, unexpected("')'", p.c.Current())
		}
		return &ast.Grouping{Inner: inner}, nil
	default:
		return nil, diag.Parse("expected call argument, got %q", tok.Literal)
	}
}

func (p *Parser) parseBlock() (ast.Expression, *diag.Diagnostic) {
	p.c.Consume() // '{'
	p.c.SkipNewlines()

	var stmts []ast.Statement
	for p.c.Current().Kind != lexer.RBRACE {
		if p.c.IsEnd() {
			return nil, unexpected("'}'", p.c.Current())
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
		p.c.SkipNewlines()
	}
	p.c.Consume() // '}'

	return &ast.Block{Statements: stmts}, nil
}

func binaryOpFor(kind lexer.Kind) ast.BinaryOp {
	switch kind {
	case lexer.PLUS:
		return ast.Add
	case lexer.MINUS:
		return ast.Sub
	case lexer.STAR:
		return ast.Mul
	case lexer.SLASH:
		return ast.Div
	default:
		panic("binaryOpFor: not an infix operator kind")
	}
}

func stripQuotes(lit string) string {
	if len(lit) >= 2 {
		return lit[1 : len(lit)-1]
	}
	return lit
}

func unexpected(expected string, got lexer.Token) *diag.Diagnostic {
	return diag.Parse("expected %s, got %s", expected, describe(got))
}

func describe(tok lexer.Token) string {
	if tok.Kind == lexer.EOF {
		return "end of input"
	}
	return "'" + tok.Literal + "'"
}
