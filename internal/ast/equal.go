package ast

import "reflect"

// Equal reports whether the subtree at x in a and the subtree at y in b
// have the same shape and payloads. Absolute index values are ignored, so
// two independent parses of the same text compare equal.
func Equal(a *Arena, x Index, b *Arena, y Index) bool {
	nx, ny := a.Get(x), b.Get(y)

	switch nx := nx.(type) {
	case Utf8:
		n, ok := ny.(Utf8)
		return ok && nx.Value == n.Value
	case BoolLiteral:
		n, ok := ny.(BoolLiteral)
		return ok && nx.Value == n.Value
	case IntLiteral:
		n, ok := ny.(IntLiteral)
		return ok && nx.Value == n.Value
	case IntType:
		n, ok := ny.(IntType)
		return ok && nx == n
	case TypeDecl, MethodDecl, AssertStmt, BlockStmt, SkipStmt, VarRef,
		Equals, NotEquals, LessThan, BoolType, NullType, VoidType,
		ArrayType, ReferenceType, RecordType:
		if !sameKind(nx, ny) {
			return false
		}
	default:
		return false
	}

	cx, cy := Children(nx), Children(ny)
	if len(cx) != len(cy) {
		return false
	}
	for i := range cx {
		if !Equal(a, cx[i], b, cy[i]) {
			return false
		}
	}
	return true
}

func sameKind(x, y Node) bool {
	return reflect.TypeOf(x) == reflect.TypeOf(y)
}
