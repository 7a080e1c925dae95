package types

import "github.com/lil-lang/lil/internal/ast"

// Scope maps variable names to their declared types. A child scope never
// writes to its parent, so bindings made while checking one method body
// disappear once the walk leaves it.
type Scope struct {
	Parent  *Scope
	Symbols map[string]ast.Type
}

// NewScope creates a new scope with an optional parent.
func NewScope(parent *Scope) *Scope {
	return &Scope{
		Parent:  parent,
		Symbols: make(map[string]ast.Type),
	}
}

// Insert binds name in the current scope, shadowing any outer binding.
func (s *Scope) Insert(name string, typ ast.Type) {
	s.Symbols[name] = typ
}

// Lookup finds a binding in the current scope or any parent scope.
func (s *Scope) Lookup(name string) (ast.Type, bool) {
	if typ, ok := s.Symbols[name]; ok {
		return typ, true
	}
	if s.Parent != nil {
		return s.Parent.Lookup(name)
	}
	return ast.Type{}, false
}
