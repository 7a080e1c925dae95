package types

import (
	"github.com/lil-lang/lil/internal/ast"
)

// Resolve checks that t is well-formed and returns its semantic type.
func Resolve(a *ast.Arena, t ast.Type) (Type, error) {
	return NewChecker(a).resolve(t)
}

func (c *Checker) resolve(t ast.Type) (Type, error) {
	var typ Type

	switch n := c.arena.Type(t).(type) {
	case ast.BoolType:
		typ = TypeBool
	case ast.NullType:
		typ = TypeNull
	case ast.VoidType:
		typ = TypeVoid
	case ast.IntType:
		switch n.Width {
		case 8, 16, 32, 64:
		default:
			return nil, internalFailure(t.Index(), "invalid integer width %d", n.Width)
		}
		typ = &Int{Signed: n.Signed, Width: n.Width}
	case ast.ArrayType:
		elem, err := c.resolve(n.Elem)
		if err != nil {
			return nil, err
		}
		typ = &Array{Elem: elem}
	case ast.ReferenceType:
		target, err := c.resolve(n.Target)
		if err != nil {
			return nil, err
		}
		typ = &Reference{Target: target}
	case ast.RecordType:
		fields := make([]Field, 0, len(n.Fields))
		for _, f := range n.Fields {
			ft, err := c.resolve(f.Type)
			if err != nil {
				return nil, err
			}
			fields = append(fields, Field{Name: c.arena.Name(f.Name), Type: ft})
		}
		typ = &Record{Fields: fields}
	default:
		return nil, internalFailure(t.Index(), "unexpected type node %T", n)
	}

	return c.record(t.Index(), typ), nil
}
