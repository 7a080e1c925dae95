package types

import (
	"github.com/lil-lang/lil/internal/ast"
)

// TypeOf computes the type of e under scope.
func (c *Checker) TypeOf(e ast.Expr, scope *Scope) (Type, error) {
	var typ Type

	switch n := c.arena.Expr(e).(type) {
	case ast.BoolLiteral:
		typ = TypeBool
	case ast.IntLiteral:
		// Integer literals are always i32; the width is not taken from
		// context.
		typ = TypeI32
	case ast.VarRef:
		name := c.arena.Name(n.Name)
		declared, ok := scope.Lookup(name)
		if !ok {
			return nil, variableNotFound(e.Index(), name)
		}
		t, err := c.resolve(declared)
		if err != nil {
			return nil, err
		}
		typ = t
	case ast.LessThan:
		lhs, err := c.TypeOf(n.LHS, scope)
		if err != nil {
			return nil, err
		}
		if !IsInteger(lhs) {
			return nil, expectedSubtype(n.LHS.Index(), "an integer type", lhs)
		}
		if err := c.expectIdentical(n.RHS, lhs, scope); err != nil {
			return nil, err
		}
		typ = TypeBool
	case ast.Equals:
		if err := c.checkEquality(n.LHS, n.RHS, scope); err != nil {
			return nil, err
		}
		typ = TypeBool
	case ast.NotEquals:
		if err := c.checkEquality(n.LHS, n.RHS, scope); err != nil {
			return nil, err
		}
		typ = TypeBool
	default:
		return nil, internalFailure(e.Index(), "unexpected expression %T", n)
	}

	return c.record(e.Index(), typ), nil
}

// checkEquality accepts operands of any type as long as both sides agree.
func (c *Checker) checkEquality(lhs, rhs ast.Expr, scope *Scope) error {
	lt, err := c.TypeOf(lhs, scope)
	if err != nil {
		return err
	}
	return c.expectIdentical(rhs, lt, scope)
}

func (c *Checker) expectIdentical(e ast.Expr, want Type, scope *Scope) error {
	got, err := c.TypeOf(e, scope)
	if err != nil {
		return err
	}
	if !Identical(got, want) {
		return expectedSubtype(e.Index(), "`"+want.String()+"`", got)
	}
	return nil
}
