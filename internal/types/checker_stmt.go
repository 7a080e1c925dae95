package types

import (
	"github.com/lil-lang/lil/internal/ast"
)

// CheckStmt checks s under scope, stopping at the first error.
func (c *Checker) CheckStmt(s ast.Stmt, scope *Scope) error {
	switch n := c.arena.Stmt(s).(type) {
	case ast.BlockStmt:
		for _, inner := range n.Stmts {
			if err := c.CheckStmt(inner, scope); err != nil {
				return err
			}
		}
		return nil
	case ast.AssertStmt:
		t, err := c.TypeOf(n.Cond, scope)
		if err != nil {
			return err
		}
		if !Identical(t, TypeBool) {
			return expectedSubtype(n.Cond.Index(), "`bool`", t)
		}
		return nil
	case ast.SkipStmt:
		return nil
	default:
		return internalFailure(s.Index(), "unexpected statement %T", n)
	}
}
