package types

import (
	"github.com/lil-lang/lil/internal/ast"
)

// TypeMapper receives the type computed for an arena node.
type TypeMapper func(ast.Index, Type)

type Option func(*Checker)

// WithTypeMapper registers fn to be told the type of every expression and
// every declared type the checker resolves.
func WithTypeMapper(fn TypeMapper) Option {
	return func(c *Checker) {
		c.mapper = fn
	}
}

// Checker validates declarations read from an arena. It never writes to
// the arena; results go to the type mapper.
type Checker struct {
	arena *ast.Arena
	// GlobalScope holds bindings visible to every method. Type
	// declarations introduce none, so it starts empty.
	GlobalScope *Scope

	mapper TypeMapper
}

// NewChecker creates a new type checker over a.
func NewChecker(a *ast.Arena, opts ...Option) *Checker {
	c := &Checker{
		arena:       a,
		GlobalScope: NewScope(nil),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Check validates one declaration and returns the first error found, as
// a *SyntaxError.
func (c *Checker) Check(d ast.Decl) error {
	switch n := c.arena.Decl(d).(type) {
	case ast.TypeDecl:
		_, err := c.resolve(n.Type)
		return err
	case ast.MethodDecl:
		return c.checkMethod(n)
	default:
		return internalFailure(d.Index(), "unexpected declaration %T", n)
	}
}

// checkMethod binds the parameters in a scope of their own and checks the
// body under it. The scope is dropped on return.
func (c *Checker) checkMethod(m ast.MethodDecl) error {
	if _, err := c.resolve(m.Return); err != nil {
		return err
	}

	scope := NewScope(c.GlobalScope)
	for _, p := range m.Params {
		if _, err := c.resolve(p.Declared); err != nil {
			return err
		}
		scope.Insert(c.arena.Name(p.Name), p.Declared)
	}

	return c.CheckStmt(m.Body, scope)
}

func (c *Checker) record(i ast.Index, t Type) Type {
	if c.mapper != nil {
		c.mapper(i, t)
	}
	return t
}
