package types

import (
	"fmt"
	"strings"
)

// Type represents a type in the Ember type system.
type Type interface {
	String() string
	// IsType is a marker method to ensure type safety.
	IsType()
}

// Kind identifies a primitive type.
type Kind string

const (
	Void    Kind = "void"
	Ptrsize Kind = "ptrsize"
	Bool    Kind = "bool"
	Char    Kind = "char"
	Int8    Kind = "int8"
	Int16   Kind = "int16"
	Int32   Kind = "int32"
	Int64   Kind = "int64"
	Uint8   Kind = "uint8"
	Uint16  Kind = "uint16"
	Uint32  Kind = "uint32"
	Uint64  Kind = "uint64"
	Float16 Kind = "float16"
	Float32 Kind = "float32"
	Float64 Kind = "float64"
	// Auto is a placeholder meaning "infer from the initializer".
	Auto Kind = "auto"
)

// Base represents a primitive type.
type Base struct {
	Kind Kind
}

func (b *Base) String() string { return string(b.Kind) }
func (b *Base) IsType()        {}

// Common primitive instances
var (
	TypeVoid    = &Base{Kind: Void}
	TypePtrsize = &Base{Kind: Ptrsize}
	TypeBool    = &Base{Kind: Bool}
	TypeChar    = &Base{Kind: Char}
	TypeInt8    = &Base{Kind: Int8}
	TypeInt16   = &Base{Kind: Int16}
	TypeInt32   = &Base{Kind: Int32}
	TypeInt64   = &Base{Kind: Int64}
	TypeUint8   = &Base{Kind: Uint8}
	TypeUint16  = &Base{Kind: Uint16}
	TypeUint32  = &Base{Kind: Uint32}
	TypeUint64  = &Base{Kind: Uint64}
	TypeFloat16 = &Base{Kind: Float16}
	TypeFloat32 = &Base{Kind: Float32}
	TypeFloat64 = &Base{Kind: Float64}
	TypeAuto    = &Base{Kind: Auto}
)

var primitives = map[string]*Base{
	"void":    TypeVoid,
	"ptrsize": TypePtrsize,
	"bool":    TypeBool,
	"char":    TypeChar,
	"int8":    TypeInt8,
	"int16":   TypeInt16,
	"int32":   TypeInt32,
	"int64":   TypeInt64,
	"uint8":   TypeUint8,
	"uint16":  TypeUint16,
	"uint32":  TypeUint32,
	"uint64":  TypeUint64,
	"float16": TypeFloat16,
	"float32": TypeFloat32,
	"float64": TypeFloat64,
	"auto":    TypeAuto,
	"let":     TypeAuto,
}

// LookupBase resolves a primitive type keyword.
func LookupBase(name string) (*Base, bool) {
	b, ok := primitives[name]
	return b, ok
}

// Pointer represents a pointer to Inner.
type Pointer struct {
	Inner Type
}

func (p *Pointer) String() string { return p.Inner.String() + "*" }
func (p *Pointer) IsType()        {}

// Array represents a fixed-length array of Size elements of Inner.
type Array struct {
	Inner Type
	Size  uint64
}

func (a *Array) String() string { return fmt.Sprintf("%s[%d]", a.Inner, a.Size) }
func (a *Array) IsType()        {}

// Function represents a function signature. Function values are pointer-shaped.
type Function struct {
	Return Type
	Params []Type
}

func (f *Function) String() string {
	params := make([]string, len(f.Params))
	for i, p := range f.Params {
		params[i] = p.String()
	}
	return f.Return.String() + "(" + strings.Join(params, ", ") + ")"
}

func (f *Function) IsType() {}

type invalid struct{}

func (*invalid) String() string { return "<invalid>" }
func (*invalid) IsType()        {}

// Invalid is the type of an expression that already produced a diagnostic.
// It is equal to every type so that one error does not cascade.
var Invalid Type = &invalid{}

// IsInvalid reports whether t is, or contains, the Invalid type.
func IsInvalid(t Type) bool {
	switch t := t.(type) {
	case nil:
		return false
	case *invalid:
		return true
	case *Pointer:
		return IsInvalid(t.Inner)
	case *Array:
		return IsInvalid(t.Inner)
	case *Function:
		if IsInvalid(t.Return) {
			return true
		}
		for _, p := range t.Params {
			if IsInvalid(p) {
				return true
			}
		}
	}
	return false
}

// Equal reports structural equality of a and b.
func Equal(a, b Type) bool {
	if IsInvalid(a) || IsInvalid(b) {
		return true
	}

	switch a := a.(type) {
	case *Base:
		b, ok := b.(*Base)
		return ok && a.Kind == b.Kind
	case *Pointer:
		b, ok := b.(*Pointer)
		return ok && Equal(a.Inner, b.Inner)
	case *Array:
		b, ok := b.(*Array)
		return ok && a.Size == b.Size && Equal(a.Inner, b.Inner)
	case *Function:
		b, ok := b.(*Function)
		if !ok || len(a.Params) != len(b.Params) || !Equal(a.Return, b.Return) {
			return false
		}
		for i := range a.Params {
			if !Equal(a.Params[i], b.Params[i]) {
				return false
			}
		}
		return true
	}
	return false
}

// IsPointer reports whether t is pointer-shaped: a pointer, an array or a function.
func IsPointer(t Type) bool {
	switch t.(type) {
	case *Pointer, *Array, *Function:
		return true
	}
	return false
}

// Pointee returns the element type reached by dereferencing or indexing t.
func Pointee(t Type) (Type, bool) {
	switch t := t.(type) {
	case *Pointer:
		return t.Inner, true
	case *Array:
		return t.Inner, true
	}
	return nil, false
}

// IsKind reports whether t is the primitive k.
func IsKind(t Type, k Kind) bool {
	b, ok := t.(*Base)
	return ok && b.Kind == k
}

// Contains reports whether the primitive k appears anywhere inside t.
func Contains(t Type, k Kind) bool {
	switch t := t.(type) {
	case *Base:
		return t.Kind == k
	case *Pointer:
		return Contains(t.Inner, k)
	case *Array:
		return Contains(t.Inner, k)
	case *Function:
		if Contains(t.Return, k) {
			return true
		}
		for _, p := range t.Params {
			if Contains(p, k) {
				return true
			}
		}
	}
	return false
}
