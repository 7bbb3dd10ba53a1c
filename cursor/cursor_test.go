package cursor

import (
	"testing"

	"github.com/klugscript/klug/lexer"
	"github.com/stretchr/testify/assert"
)

func TestCursor_CurrentAndPeek(t *testing.T) {
	c := New("1 + 2")
	assert.Equal(t, lexer.NUMBER, c.Current().Kind)
	assert.Equal(t, lexer.PLUS, c.Peek())
}

func TestCursor_NextAdvances(t *testing.T) {
	c := New("1 + 2")
	first := c.Next()
	assert.Equal(t, lexer.NUMBER, first.Kind)
	assert.Equal(t, lexer.PLUS, c.Current().Kind)
}

func TestCursor_ExpectSucceeds(t *testing.T) {
	c := New("let x")
	tok, ok := c.Expect(lexer.LET)
	assert.True(t, ok)
	assert.Equal(t, lexer.LET, tok.Kind)
	assert.Equal(t, lexer.IDENT, c.Current().Kind)
}

func TestCursor_ExpectFailsLeavesCursorUntouched(t *testing.T) {
	c := New("1 + 2")
	before := c.Current()
	_, ok := c.Expect(lexer.LET)
	assert.False(t, ok)
	assert.Equal(t, before, c.Current())
}

func TestCursor_IsEnd(t *testing.T) {
	c := New("1")
	assert.False(t, c.IsEnd())
	c.Consume()
	assert.True(t, c.IsEnd())
}

func TestCursor_SkipNewlines(t *testing.T) {
	c := New("\n\n\nlet")
	c.SkipNewlines()
	assert.Equal(t, lexer.LET, c.Current().Kind)
}
