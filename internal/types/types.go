package types

import (
	"fmt"
	"strings"
)

// Type represents a type in the lil type system.
type Type interface {
	String() string
	// IsType is a marker method to ensure type safety.
	IsType()
}

// PrimitiveKind represents the kind of a non-integer primitive type.
type PrimitiveKind string

const (
	Bool PrimitiveKind = "bool"
	Null PrimitiveKind = "null"
	Void PrimitiveKind = "void"
)

// Primitive represents bool, null or void.
type Primitive struct {
	Kind PrimitiveKind
}

func (p *Primitive) String() string { return string(p.Kind) }
func (p *Primitive) IsType()        {}

// Int represents a fixed-width integer type.
type Int struct {
	Signed bool
	Width  int
}

func (i *Int) String() string {
	if i.Signed {
		return fmt.Sprintf("i%d", i.Width)
	}
	return fmt.Sprintf("u%d", i.Width)
}
func (i *Int) IsType() {}

// Common primitive instances
var (
	TypeBool = &Primitive{Kind: Bool}
	TypeNull = &Primitive{Kind: Null}
	TypeVoid = &Primitive{Kind: Void}
	TypeI32  = &Int{Signed: true, Width: 32}
)

// Array represents T[].
type Array struct {
	Elem Type
}

func (a *Array) String() string {
	switch a.Elem.(type) {
	case *Reference, *Record:
		return "(" + a.Elem.String() + ")[]"
	}
	return a.Elem.String() + "[]"
}
func (a *Array) IsType() {}

// Reference represents &T.
type Reference struct {
	Target Type
}

func (r *Reference) String() string {
	switch r.Target.(type) {
	case *Array, *Record:
		return "&(" + r.Target.String() + ")"
	}
	return "&" + r.Target.String()
}
func (r *Reference) IsType() {}

// Record represents {T1 f1, T2 f2}. Field order is part of the type.
type Record struct {
	Fields []Field
}

type Field struct {
	Name string
	Type Type
}

func (r *Record) String() string {
	fields := make([]string, len(r.Fields))
	for i, f := range r.Fields {
		fields[i] = f.Type.String() + " " + f.Name
	}
	return "{" + strings.Join(fields, ", ") + "}"
}
func (r *Record) IsType() {}

// IsInteger reports whether t is one of the integer types.
func IsInteger(t Type) bool {
	_, ok := t.(*Int)
	return ok
}

// Identical reports whether a and b are structurally the same type.
// Primitives match on kind, integers on signedness and width, and
// compound types component by component in order. There is no aliasing
// and no widening between integer types.
func Identical(a, b Type) bool {
	switch a := a.(type) {
	case *Primitive:
		b, ok := b.(*Primitive)
		return ok && a.Kind == b.Kind
	case *Int:
		b, ok := b.(*Int)
		return ok && a.Signed == b.Signed && a.Width == b.Width
	case *Array:
		b, ok := b.(*Array)
		return ok && Identical(a.Elem, b.Elem)
	case *Reference:
		b, ok := b.(*Reference)
		return ok && Identical(a.Target, b.Target)
	case *Record:
		b, ok := b.(*Record)
		if !ok || len(a.Fields) != len(b.Fields) {
			return false
		}
		for i := range a.Fields {
			if a.Fields[i].Name != b.Fields[i].Name || !Identical(a.Fields[i].Type, b.Fields[i].Type) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
