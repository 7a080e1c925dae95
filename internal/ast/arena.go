package ast

import "fmt"

// Index addresses a node in an Arena. Indices are assigned in push order
// starting at 0 and are never reused.
type Index int

// Arena is an append-only store of syntax nodes. Nodes are pushed bottom-up,
// so every child index is strictly less than the index of its parent.
type Arena struct {
	nodes []Node
}

// NewArena returns an empty arena.
func NewArena() *Arena {
	return &Arena{}
}

// Push appends n and returns its index.
func (a *Arena) Push(n Node) Index {
	a.nodes = append(a.nodes, n)
	return Index(len(a.nodes) - 1)
}

// Get returns the node at i. It panics if i was never pushed.
func (a *Arena) Get(i Index) Node {
	if i < 0 || int(i) >= len(a.nodes) {
		panic(fmt.Sprintf("ast: index %d out of range [0,%d)", i, len(a.nodes)))
	}
	return a.nodes[i]
}

// Len returns the number of nodes pushed so far.
func (a *Arena) Len() int {
	return len(a.nodes)
}

// Handles. Each wraps an index whose node belongs to one syntactic
// category; the only way to obtain one is the matching Push method.
type (
	Decl struct{ index Index }
	Stmt struct{ index Index }
	Expr struct{ index Index }
	Type struct{ index Index }
	Name struct{ index Index }
)

// Index returns the arena index of the declaration.
func (d Decl) Index() Index { return d.index }

// Index returns the arena index of the statement.
func (s Stmt) Index() Index { return s.index }

// Index returns the arena index of the expression.
func (e Expr) Index() Index { return e.index }

// Index returns the arena index of the type.
func (t Type) Index() Index { return t.index }

// Index returns the arena index of the name.
func (n Name) Index() Index { return n.index }

func (d Decl) String() string { return fmt.Sprintf("Decl#%d", d.index) }
func (s Stmt) String() string { return fmt.Sprintf("Stmt#%d", s.index) }
func (e Expr) String() string { return fmt.Sprintf("Expr#%d", e.index) }
func (t Type) String() string { return fmt.Sprintf("Type#%d", t.index) }
func (n Name) String() string { return fmt.Sprintf("Name#%d", n.index) }

// PushDecl appends a declaration node.
func (a *Arena) PushDecl(n DeclNode) Decl {
	return Decl{a.Push(n)}
}

// PushStmt appends a statement node.
func (a *Arena) PushStmt(n StmtNode) Stmt {
	return Stmt{a.Push(n)}
}

// PushExpr appends an expression node.
func (a *Arena) PushExpr(n ExprNode) Expr {
	return Expr{a.Push(n)}
}

// PushType appends a type node. Compound types can only be built from
// existing Type handles, so the result is well-formed by construction.
func (a *Arena) PushType(n TypeNode) Type {
	return Type{a.Push(n)}
}

// PushName appends identifier text as its own node.
func (a *Arena) PushName(s string) Name {
	return Name{a.Push(Utf8{Value: s})}
}

// Decl returns the node behind d.
func (a *Arena) Decl(d Decl) DeclNode {
	return a.Get(d.index).(DeclNode)
}

// Stmt returns the node behind s.
func (a *Arena) Stmt(s Stmt) StmtNode {
	return a.Get(s.index).(StmtNode)
}

// Expr returns the node behind e.
func (a *Arena) Expr(e Expr) ExprNode {
	return a.Get(e.index).(ExprNode)
}

// Type returns the node behind t.
func (a *Arena) Type(t Type) TypeNode {
	return a.Get(t.index).(TypeNode)
}

// Name returns the identifier text behind n.
func (a *Arena) Name(n Name) string {
	return a.Get(n.index).(Utf8).Value
}
