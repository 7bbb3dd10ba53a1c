package scope

import (
	"testing"

	"github.com/klugscript/klug/ast"
	"github.com/klugscript/klug/value"
	"github.com/stretchr/testify/assert"
)

func TestLookup_FindsInnermostFirst(t *testing.T) {
	root := New()
	root.Extend("x", value.Number(1))

	child := root.NewChild()
	child.Extend("x", value.Number(2))

	v, found, isFunc := child.Lookup("x")
	assert.True(t, found)
	assert.False(t, isFunc)
	assert.Equal(t, value.Number(2), v)

	// Shadowing does not alter the parent.
	pv, _, _ := root.Lookup("x")
	assert.Equal(t, value.Number(1), pv)
}

func TestLookup_WalksToParentWhenNotInChild(t *testing.T) {
	root := New()
	root.Extend("y", value.Number(42))
	child := root.NewChild()

	v, found, _ := child.Lookup("y")
	assert.True(t, found)
	assert.Equal(t, value.Number(42), v)
}

func TestLookup_NotFound(t *testing.T) {
	root := New()
	_, found, isFunc := root.Lookup("missing")
	assert.False(t, found)
	assert.False(t, isFunc)
}

func TestLookup_ReportsFunctionBindingAsNotAValue(t *testing.T) {
	root := New()
	root.ExtendFunc("square", []string{"n"}, &ast.ExprStmt{Expr: &ast.Identifier{Name: "n"}})

	_, found, isFunc := root.Lookup("square")
	assert.False(t, found)
	assert.True(t, isFunc)
}

func TestLookupFunction_ReportsValueBindingAsNotAFunction(t *testing.T) {
	root := New()
	root.Extend("x", value.Number(1))

	_, found, isValue := root.LookupFunction("x")
	assert.False(t, found)
	assert.True(t, isValue)
}

func TestLookupFunction_WalksChain(t *testing.T) {
	root := New()
	root.ExtendFunc("square", []string{"n"}, &ast.ExprStmt{Expr: &ast.Identifier{Name: "n"}})
	child := root.NewChild()

	fn, found, _ := child.LookupFunction("square")
	assert.True(t, found)
	assert.Equal(t, []string{"n"}, fn.Params)
}

func TestIdempotentReLookup(t *testing.T) {
	root := New()
	root.Extend("x", value.Number(7))

	v1, _, _ := root.Lookup("x")
	v2, _, _ := root.Lookup("x")
	assert.Equal(t, v1, v2)
}

func TestChildDoesNotLeakIntoParent(t *testing.T) {
	root := New()
	child := root.NewChild()
	child.Extend("local", value.Number(9))

	_, found, _ := root.Lookup("local")
	assert.False(t, found)
}
