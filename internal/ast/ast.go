package ast

import "github.com/ember-lang/ember/internal/lexer"

// Node represents any AST node with an associated source span.
type Node interface {
	Span() lexer.Span
}

// Expr represents an expression node.
type Expr interface {
	Node
	AcceptExpr(v ExprVisitor)
}

// Stmt represents a statement node.
type Stmt interface {
	Node
	AcceptStmt(v StmtVisitor)
}

// TypeExpr represents a type name as written in the source.
type TypeExpr interface {
	Node
	typeNode()
}

// Modifiers is the set of declaration modifiers written before a declaration.
type Modifiers struct {
	Extern bool
	Export bool
}

// Ident is a declared name together with its location.
type Ident struct {
	Name string
	span lexer.Span
}

// Span returns the identifier span.
func (i *Ident) Span() lexer.Span { return i.span }

// NewIdent constructs an identifier node.
func NewIdent(name string, span lexer.Span) *Ident {
	return &Ident{
		Name: name,
		span: span,
	}
}

// NamedType is a primitive type keyword such as int32 or auto.
type NamedType struct {
	Name string
	span lexer.Span
}

// Span returns the type span.
func (t *NamedType) Span() lexer.Span { return t.span }

// typeNode marks NamedType as a type expression.
func (*NamedType) typeNode() {}

// NewNamedType constructs a named type node.
func NewNamedType(name string, span lexer.Span) *NamedType {
	return &NamedType{
		Name: name,
		span: span,
	}
}

// PointerType represents a pointer type (T*).
type PointerType struct {
	Elem TypeExpr
	span lexer.Span
}

// Span returns the pointer type span.
func (t *PointerType) Span() lexer.Span { return t.span }

// typeNode marks PointerType as a type expression.
func (*PointerType) typeNode() {}

// NewPointerType constructs a pointer type node.
func NewPointerType(elem TypeExpr, span lexer.Span) *PointerType {
	return &PointerType{
		Elem: elem,
		span: span,
	}
}

// ArrayType represents a fixed-size array type (T[N]).
type ArrayType struct {
	Elem TypeExpr
	Size uint64
	span lexer.Span
}

// Span returns the array type span.
func (t *ArrayType) Span() lexer.Span { return t.span }

// typeNode marks ArrayType as a type expression.
func (*ArrayType) typeNode() {}

// NewArrayType constructs an array type node.
func NewArrayType(elem TypeExpr, size uint64, span lexer.Span) *ArrayType {
	return &ArrayType{
		Elem: elem,
		Size: size,
		span: span,
	}
}

// FunctionType represents a function signature type: R(P1, P2).
type FunctionType struct {
	Return TypeExpr
	Params []TypeExpr
	span   lexer.Span
}

// Span returns the function type span.
func (t *FunctionType) Span() lexer.Span { return t.span }

// typeNode marks FunctionType as a type expression.
func (*FunctionType) typeNode() {}

// NewFunctionType constructs a function type node.
func NewFunctionType(ret TypeExpr, params []TypeExpr, span lexer.Span) *FunctionType {
	return &FunctionType{
		Return: ret,
		Params: params,
		span:   span,
	}
}
