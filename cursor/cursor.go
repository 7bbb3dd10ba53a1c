// Package cursor provides a peek/advance facade over the lexer shared
// by every parser stage (expression, statement, declaration). It
// generalizes the two-token lookahead go-mix's parser inlines directly
// on the Parser struct (parser/parser.go: CurrToken/NextToken) into its
// own reusable type.
package cursor

import "github.com/klugscript/klug/lexer"

// Cursor wraps a lexer.Lexer with one token of lookahead.
type Cursor struct {
	lex  *lexer.Lexer
	curr lexer.Token
	next lexer.Token
}

// New creates a Cursor over src, priming both the current and
// lookahead tokens.
func New(src string) *Cursor {
	c := &Cursor{lex: lexer.New(src)}
	c.curr = c.lex.Next()
	c.next = c.lex.Next()
	return c
}

// Current returns the token the cursor is positioned on, without
// consuming it.
func (c *Cursor) Current() lexer.Token {
	return c.curr
}

// Peek returns the kind of the upcoming token without consuming
// anything.
func (c *Cursor) Peek() lexer.Kind {
	return c.next.Kind
}

// PeekToken returns the upcoming token itself, without consuming it.
func (c *Cursor) PeekToken() lexer.Token {
	return c.next
}

// Next consumes the current token and returns it, advancing the
// cursor by one.
func (c *Cursor) Next() lexer.Token {
	t := c.curr
	c.advance()
	return t
}

// Consume discards the current token and advances.
func (c *Cursor) Consume() {
	c.advance()
}

func (c *Cursor) advance() {
	c.curr = c.next
	c.next = c.lex.Next()
}

// Expect consumes the current token if it matches kind, returning it.
// Otherwise it returns ok=false and leaves the cursor untouched so the
// caller can build a diagnostic from the unexpected token.
func (c *Cursor) Expect(kind lexer.Kind) (lexer.Token, bool) {
	if c.curr.Kind != kind {
		return c.curr, false
	}
	return c.Next(), true
}

// IsEnd reports whether the cursor has reached end of input.
func (c *Cursor) IsEnd() bool {
	return c.curr.Kind == lexer.EOF
}

// SkipNewlines consumes any run of newline tokens at the current
// position. Declarations may be separated by blank lines.
func (c *Cursor) SkipNewlines() {
	for c.curr.Kind == lexer.NEWLINE {
		c.Consume()
	}
}
