package ast

// Children returns the indices n refers to, in source order.
func Children(n Node) []Index {
	switch n := n.(type) {
	case TypeDecl:
		return []Index{n.Name.index, n.Type.index}
	case MethodDecl:
		out := []Index{n.Return.index, n.Name.index}
		for _, p := range n.Params {
			out = append(out, p.Declared.index, p.Name.index)
		}
		return append(out, n.Body.index)
	case AssertStmt:
		return []Index{n.Cond.index}
	case BlockStmt:
		out := make([]Index, 0, len(n.Stmts))
		for _, s := range n.Stmts {
			out = append(out, s.index)
		}
		return out
	case VarRef:
		return []Index{n.Name.index}
	case Equals:
		return []Index{n.LHS.index, n.RHS.index}
	case NotEquals:
		return []Index{n.LHS.index, n.RHS.index}
	case LessThan:
		return []Index{n.LHS.index, n.RHS.index}
	case ArrayType:
		return []Index{n.Elem.index}
	case ReferenceType:
		return []Index{n.Target.index}
	case RecordType:
		out := make([]Index, 0, 2*len(n.Fields))
		for _, f := range n.Fields {
			out = append(out, f.Type.index, f.Name.index)
		}
		return out
	default:
		return nil
	}
}

// Walk traverses the subtree rooted at i depth first, calling fn for each
// node. If fn returns false, Walk stops traversing that branch.
func Walk(a *Arena, i Index, fn func(Index, Node) bool) {
	n := a.Get(i)
	if !fn(i, n) {
		return
	}
	for _, child := range Children(n) {
		Walk(a, child, fn)
	}
}
