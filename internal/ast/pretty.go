package ast

import (
	"fmt"
	"strings"
)

// Print renders the subtree at i as source text that parses back to an
// equal subtree.
func Print(a *Arena, i Index) string {
	p := printer{a: a}
	p.node(i)
	return p.b.String()
}

// PrintDecl renders a declaration.
func PrintDecl(a *Arena, d Decl) string { return Print(a, d.index) }

// PrintType renders a type.
func PrintType(a *Arena, t Type) string { return Print(a, t.index) }

type printer struct {
	a *Arena
	b strings.Builder
}

func (p *printer) node(i Index) {
	switch n := p.a.Get(i).(type) {
	case TypeDecl:
		fmt.Fprintf(&p.b, "type %s = ", p.a.Name(n.Name))
		p.node(n.Type.index)
		p.b.WriteString(";")
	case MethodDecl:
		p.node(n.Return.index)
		fmt.Fprintf(&p.b, " %s(", p.a.Name(n.Name))
		for j, param := range n.Params {
			if j > 0 {
				p.b.WriteString(", ")
			}
			p.node(param.Declared.index)
			fmt.Fprintf(&p.b, " %s", p.a.Name(param.Name))
		}
		p.b.WriteString(") ")
		p.node(n.Body.index)

	case AssertStmt:
		p.b.WriteString("assert ")
		p.node(n.Cond.index)
		p.b.WriteString(";")
	case BlockStmt:
		if len(n.Stmts) == 0 {
			p.b.WriteString("{}")
			return
		}
		p.b.WriteString("{ ")
		for _, s := range n.Stmts {
			p.node(s.index)
			p.b.WriteString(" ")
		}
		p.b.WriteString("}")
	case SkipStmt:
		p.b.WriteString("skip;")

	case BoolLiteral:
		fmt.Fprintf(&p.b, "%t", n.Value)
	case IntLiteral:
		fmt.Fprintf(&p.b, "%d", n.Value)
	case VarRef:
		p.b.WriteString(p.a.Name(n.Name))
	case Equals:
		p.binary(n.LHS, "==", n.RHS)
	case NotEquals:
		p.binary(n.LHS, "!=", n.RHS)
	case LessThan:
		p.binary(n.LHS, "<", n.RHS)

	case BoolType:
		p.b.WriteString("bool")
	case IntType:
		if n.Signed {
			fmt.Fprintf(&p.b, "i%d", n.Width)
		} else {
			fmt.Fprintf(&p.b, "u%d", n.Width)
		}
	case NullType:
		p.b.WriteString("null")
	case VoidType:
		p.b.WriteString("void")
	case ArrayType:
		// Only base types and arrays may precede '[]' without brackets.
		switch p.a.Get(n.Elem.index).(type) {
		case ReferenceType, RecordType:
			p.bracketed(n.Elem.index)
		default:
			p.node(n.Elem.index)
		}
		p.b.WriteString("[]")
	case ReferenceType:
		p.b.WriteString("&")
		switch p.a.Get(n.Target.index).(type) {
		case ArrayType, RecordType:
			p.bracketed(n.Target.index)
		default:
			p.node(n.Target.index)
		}
	case RecordType:
		p.b.WriteString("{")
		for j, f := range n.Fields {
			if j > 0 {
				p.b.WriteString(", ")
			}
			p.node(f.Type.index)
			fmt.Fprintf(&p.b, " %s", p.a.Name(f.Name))
		}
		p.b.WriteString("}")

	case Utf8:
		p.b.WriteString(n.Value)
	}
}

func (p *printer) bracketed(i Index) {
	p.b.WriteString("(")
	p.node(i)
	p.b.WriteString(")")
}

func (p *printer) binary(lhs Expr, op string, rhs Expr) {
	p.operand(lhs)
	fmt.Fprintf(&p.b, " %s ", op)
	p.operand(rhs)
}

// operand brackets nested comparisons, which the grammar only accepts
// as parenthesised terms.
func (p *printer) operand(e Expr) {
	switch p.a.Get(e.index).(type) {
	case Equals, NotEquals, LessThan:
		p.bracketed(e.index)
	default:
		p.node(e.index)
	}
}
