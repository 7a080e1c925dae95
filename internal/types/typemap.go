package types

import "github.com/lil-lang/lil/internal/ast"

// TypeMap records the type computed for each arena node. Its Map method
// is a TypeMapper.
type TypeMap struct {
	types map[ast.Index]Type
}

func NewTypeMap() *TypeMap {
	return &TypeMap{types: make(map[ast.Index]Type)}
}

// Map records t as the type of node i, replacing any earlier entry.
func (m *TypeMap) Map(i ast.Index, t Type) {
	m.types[i] = t
}

func (m *TypeMap) Get(i ast.Index) (Type, bool) {
	t, ok := m.types[i]
	return t, ok
}

func (m *TypeMap) Len() int {
	return len(m.types)
}
