package types

import (
	"fmt"

	"github.com/ember-lang/ember/internal/diag"
)

// Symbol represents a named, declared entity: a *Var or a *Func.
//
// Symbols are created untyped by the binder and receive their type exactly
// once from the type checker.
type Symbol interface {
	Name() string
	Span() diag.Span
	Scope() *Scope
	// Type returns the symbol type, or nil while it is still unresolved.
	Type() Type
	SetType(t Type)
	symbol()
}

type object struct {
	name  string
	span  diag.Span
	scope *Scope
	typ   Type
}

func (o *object) Name() string    { return o.name }
func (o *object) Span() diag.Span { return o.span }
func (o *object) Scope() *Scope   { return o.scope }
func (o *object) Type() Type      { return o.typ }
func (o *object) symbol()         {}

func (o *object) setType(t Type) {
	if o.typ != nil {
		panic(fmt.Sprintf("types: type of %q assigned twice", o.name))
	}
	if t == nil {
		panic(fmt.Sprintf("types: nil type assigned to %q", o.name))
	}
	o.typ = t
}

// Var is a variable or a function parameter.
type Var struct {
	object
	IsParameter bool
}

// NewVar creates an untyped variable symbol.
func NewVar(name string, span diag.Span, isParameter bool) *Var {
	return &Var{
		object:      object{name: name, span: span},
		IsParameter: isParameter,
	}
}

// SetType finalizes the variable type.
func (v *Var) SetType(t Type) { v.setType(t) }

// Func is a function symbol. Its type is always a *Function.
type Func struct {
	object
	Params []*Var
	Extern bool
}

// NewFunc creates an untyped function symbol.
func NewFunc(name string, span diag.Span, params []*Var, extern bool) *Func {
	return &Func{
		object: object{name: name, span: span},
		Params: params,
		Extern: extern,
	}
}

// SetType finalizes the function type. t must be a *Function or Invalid.
func (f *Func) SetType(t Type) {
	if _, ok := t.(*Function); !ok && t != Invalid {
		panic(fmt.Sprintf("types: function %q given non-function type %s", f.name, t))
	}
	f.setType(t)
}

// Signature returns the function type, or nil while it is unresolved.
func (f *Func) Signature() *Function {
	sig, _ := f.typ.(*Function)
	return sig
}

// Scope represents a lexical scope containing symbols in declaration order.
type Scope struct {
	parent  *Scope
	symbols []Symbol
	index   map[string]Symbol
}

// NewScope creates a new scope with an optional parent.
func NewScope(parent *Scope) *Scope {
	return &Scope{
		parent: parent,
		index:  make(map[string]Symbol),
	}
}

// Parent returns the enclosing scope, or nil for the global scope.
func (s *Scope) Parent() *Scope { return s.parent }

// IsGlobal reports whether s is the outermost scope.
func (s *Scope) IsGlobal() bool { return s.parent == nil }

// Symbols returns the symbols declared directly in s, in declaration order.
func (s *Scope) Symbols() []Symbol {
	out := make([]Symbol, len(s.symbols))
	copy(out, s.symbols)
	return out
}

// Declare adds sym to s. If s already holds a symbol with the same name,
// nothing is added and the existing symbol is returned with ok == false.
// Shadowing a symbol of an outer scope is allowed.
func (s *Scope) Declare(sym Symbol) (existing Symbol, ok bool) {
	if prev, found := s.index[sym.Name()]; found {
		return prev, false
	}
	switch sym := sym.(type) {
	case *Var:
		sym.scope = s
	case *Func:
		sym.scope = s
	}
	s.symbols = append(s.symbols, sym)
	s.index[sym.Name()] = sym
	return sym, true
}

// LookupLocal finds a symbol declared directly in s.
func (s *Scope) LookupLocal(name string) Symbol {
	return s.index[name]
}

// Lookup finds a symbol in the current scope or any parent scope.
func (s *Scope) Lookup(name string) Symbol {
	for scope := s; scope != nil; scope = scope.parent {
		if sym, ok := scope.index[name]; ok {
			return sym
		}
	}
	return nil
}
