package ast

import "fmt"

// IsType reports whether the node at i is a well-formed type: a primitive,
// or an array, reference or record whose components are well-formed types.
func IsType(a *Arena, i Index) bool {
	switch n := a.Get(i).(type) {
	case BoolType, NullType, VoidType:
		return true
	case IntType:
		switch n.Width {
		case 8, 16, 32, 64:
			return true
		}
		return false
	case ArrayType:
		return IsType(a, n.Elem.index)
	case ReferenceType:
		return IsType(a, n.Target.index)
	case RecordType:
		for _, f := range n.Fields {
			if !IsType(a, f.Type.index) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Verify checks the arena invariants: children precede their parents and
// every handle refers to a node of its category. Parsing maintains these
// by construction; Verify exists for tests and the driver's -debug mode.
func Verify(a *Arena) error {
	for i := 0; i < a.Len(); i++ {
		idx := Index(i)
		n := a.Get(idx)
		for _, child := range Children(n) {
			if child < 0 || child >= idx {
				return fmt.Errorf("node %d (%T) refers forward to %d", idx, n, child)
			}
		}
		if err := verifyCategories(a, idx, n); err != nil {
			return err
		}
	}
	return nil
}

func verifyCategories(a *Arena, idx Index, n Node) error {
	bad := func(what string, h Index) error {
		return fmt.Errorf("node %d (%T): %s handle %d refers to %T", idx, n, what, h, a.Get(h))
	}
	checkType := func(t Type) error {
		if !IsType(a, t.index) {
			return bad("type", t.index)
		}
		return nil
	}
	checkName := func(nm Name) error {
		if _, ok := a.Get(nm.index).(Utf8); !ok {
			return bad("name", nm.index)
		}
		return nil
	}
	checkExpr := func(e Expr) error {
		if _, ok := a.Get(e.index).(ExprNode); !ok {
			return bad("expr", e.index)
		}
		return nil
	}
	checkStmt := func(s Stmt) error {
		if _, ok := a.Get(s.index).(StmtNode); !ok {
			return bad("stmt", s.index)
		}
		return nil
	}

	var errs []error
	switch n := n.(type) {
	case TypeDecl:
		errs = append(errs, checkName(n.Name), checkType(n.Type))
	case MethodDecl:
		errs = append(errs, checkName(n.Name), checkType(n.Return), checkStmt(n.Body))
		for _, p := range n.Params {
			errs = append(errs, checkType(p.Declared), checkName(p.Name))
		}
	case AssertStmt:
		errs = append(errs, checkExpr(n.Cond))
	case BlockStmt:
		for _, s := range n.Stmts {
			errs = append(errs, checkStmt(s))
		}
	case VarRef:
		errs = append(errs, checkName(n.Name))
	case Equals:
		errs = append(errs, checkExpr(n.LHS), checkExpr(n.RHS))
	case NotEquals:
		errs = append(errs, checkExpr(n.LHS), checkExpr(n.RHS))
	case LessThan:
		errs = append(errs, checkExpr(n.LHS), checkExpr(n.RHS))
	case TypeNode:
		if !IsType(a, idx) {
			return fmt.Errorf("node %d (%T) is not a well-formed type", idx, n)
		}
	}
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
