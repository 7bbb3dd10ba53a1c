// Package scope implements Klug's lexically scoped environment: a
// chain of frames, each owning its own bindings, with a parent
// pointer. Grounded on go-mix's scope/scope.go (NewScope(parent),
// map-per-frame, LookUp walking the parent chain) narrowed to the two
// binding kinds the Klug data model names (value bindings and function
// bindings) — go-mix's extra Consts/LetVars/LetTypes bookkeeping
// belongs to a type system Klug's spec does not have.
package scope

import (
	"github.com/klugscript/klug/ast"
	"github.com/klugscript/klug/value"
)

// FuncBinding is a function definition: its fixed parameter names and
// the statement evaluated as its body.
type FuncBinding struct {
	Params []string
	Body   ast.Statement
}

// Scope is one frame of the lexical chain. A nil Parent marks the
// root (top-level) frame, whose lifetime spans the whole session;
// child frames are created for function calls and blocks and are
// bounded by the evaluation that created them.
type Scope struct {
	values    map[string]value.Value
	functions map[string]FuncBinding
	parent    *Scope
}

// New creates a root scope with no parent.
func New() *Scope {
	return &Scope{
		values:    make(map[string]value.Value),
		functions: make(map[string]FuncBinding),
	}
}

// NewChild creates a new empty frame whose parent is s. The child must
// not outlive the evaluation that created it; nothing enforces that in
// Go beyond normal garbage collection, but callers never retain a
// child scope past the call/block it was created for.
func (s *Scope) NewChild() *Scope {
	return &Scope{
		values:    make(map[string]value.Value),
		functions: make(map[string]FuncBinding),
		parent:    s,
	}
}

// Extend inserts or overwrites a value binding in the innermost frame.
func (s *Scope) Extend(name string, v value.Value) {
	s.values[name] = v
}

// ExtendFunc inserts or overwrites a function binding in the innermost
// frame.
func (s *Scope) ExtendFunc(name string, params []string, body ast.Statement) {
	s.functions[name] = FuncBinding{Params: params, Body: body}
}

// Lookup walks from this frame outward for a value binding. found is
// false if no binding exists anywhere in the chain; isFunc is true if
// the first match along the chain is a function binding instead of a
// value (spec.md: "not a value" case).
func (s *Scope) Lookup(name string) (v value.Value, found bool, isFunc bool) {
	for frame := s; frame != nil; frame = frame.parent {
		if val, ok := frame.values[name]; ok {
			return val, true, false
		}
		if _, ok := frame.functions[name]; ok {
			return nil, false, true
		}
	}
	return nil, false, false
}

// LookupFunction walks from this frame outward for a function binding.
// isValue is true if the first match is a value binding instead.
func (s *Scope) LookupFunction(name string) (fn FuncBinding, found bool, isValue bool) {
	for frame := s; frame != nil; frame = frame.parent {
		if f, ok := frame.functions[name]; ok {
			return f, true, false
		}
		if _, ok := frame.values[name]; ok {
			return FuncBinding{}, false, true
		}
	}
	return FuncBinding{}, false, false
}
