package ast

// Node is any value stored in the arena. The set of node types is closed:
// only the types declared in this file implement it.
type Node interface {
	node()
}

// DeclNode represents a declaration node.
type DeclNode interface {
	Node
	declNode()
}

// StmtNode represents a statement node.
type StmtNode interface {
	Node
	stmtNode()
}

// ExprNode represents an expression node.
type ExprNode interface {
	Node
	exprNode()
}

// TypeNode represents a type node.
type TypeNode interface {
	Node
	typeNode()
}

// TypeDecl represents `type name = T;`.
type TypeDecl struct {
	Name Name
	Type Type
}

// MethodDecl represents a method with a return type, parameters and a body.
type MethodDecl struct {
	Name   Name
	Return Type
	Params []Parameter
	Body   Stmt
}

// Parameter is a declared (type, name) pair in a method signature.
type Parameter struct {
	Declared Type
	Name     Name
}

// AssertStmt represents `assert e;`.
type AssertStmt struct {
	Cond Expr
}

// BlockStmt represents `{ s1 s2 ... }`.
type BlockStmt struct {
	Stmts []Stmt
}

// SkipStmt represents `skip;`.
type SkipStmt struct{}

// BoolLiteral represents `true` or `false`.
type BoolLiteral struct {
	Value bool
}

// IntLiteral represents a decimal integer literal.
type IntLiteral struct {
	Value int32
}

// VarRef represents a use of a variable.
type VarRef struct {
	Name Name
}

// Equals represents `lhs == rhs`.
type Equals struct {
	LHS Expr
	RHS Expr
}

// NotEquals represents `lhs != rhs`.
type NotEquals struct {
	LHS Expr
	RHS Expr
}

// LessThan represents `lhs < rhs`.
type LessThan struct {
	LHS Expr
	RHS Expr
}

// BoolType represents `bool`.
type BoolType struct{}

// IntType represents one of i8..i64 and u8..u64.
type IntType struct {
	Signed bool
	Width  int
}

// NullType represents `null`.
type NullType struct{}

// VoidType represents `void`.
type VoidType struct{}

// ArrayType represents `T[]`.
type ArrayType struct {
	Elem Type
}

// ReferenceType represents `&T`.
type ReferenceType struct {
	Target Type
}

// RecordType represents `{T1 f1, T2 f2}`. Field order is significant.
type RecordType struct {
	Fields []Field
}

// Field is one (type, name) entry of a record type.
type Field struct {
	Type Type
	Name Name
}

// Utf8 holds identifier text.
type Utf8 struct {
	Value string
}

func (TypeDecl) node()      {}
func (MethodDecl) node()    {}
func (AssertStmt) node()    {}
func (BlockStmt) node()     {}
func (SkipStmt) node()      {}
func (BoolLiteral) node()   {}
func (IntLiteral) node()    {}
func (VarRef) node()        {}
func (Equals) node()        {}
func (NotEquals) node()     {}
func (LessThan) node()      {}
func (BoolType) node()      {}
func (IntType) node()       {}
func (NullType) node()      {}
func (VoidType) node()      {}
func (ArrayType) node()     {}
func (ReferenceType) node() {}
func (RecordType) node()    {}
func (Utf8) node()          {}

func (TypeDecl) declNode()   {}
func (MethodDecl) declNode() {}

func (AssertStmt) stmtNode() {}
func (BlockStmt) stmtNode()  {}
func (SkipStmt) stmtNode()   {}

func (BoolLiteral) exprNode() {}
func (IntLiteral) exprNode()  {}
func (VarRef) exprNode()      {}
func (Equals) exprNode()      {}
func (NotEquals) exprNode()   {}
func (LessThan) exprNode()    {}

func (BoolType) typeNode()      {}
func (IntType) typeNode()       {}
func (NullType) typeNode()      {}
func (VoidType) typeNode()      {}
func (ArrayType) typeNode()     {}
func (ReferenceType) typeNode() {}
func (RecordType) typeNode()    {}
