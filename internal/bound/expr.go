package bound

import (
	"github.com/ember-lang/ember/internal/ast"
	"github.com/ember-lang/ember/internal/lexer"
	"github.com/ember-lang/ember/internal/types"
)

// Literal is a literal value.
type Literal struct {
	expr
	Token lexer.Token
}

func NewLiteral(syntax *ast.Literal) *Literal {
	return &Literal{expr: expr{node: node{syntax}}, Token: syntax.Token}
}

// Binary is an arithmetic expression.
type Binary struct {
	expr
	Op    lexer.TokenType
	Left  Expr
	Right Expr
}

func NewBinary(syntax ast.Node, op lexer.TokenType, left, right Expr) *Binary {
	return &Binary{expr: expr{node: node{syntax}}, Op: op, Left: left, Right: right}
}

// Unary is a prefix - or !.
type Unary struct {
	expr
	Op      lexer.TokenType
	Operand Expr
}

func NewUnary(syntax *ast.Unary, operand Expr) *Unary {
	return &Unary{expr: expr{node: node{syntax}}, Op: syntax.Op, Operand: operand}
}

// Grouping is a parenthesized expression.
type Grouping struct {
	expr
	Inner Expr
}

func NewGrouping(syntax *ast.Grouping, inner Expr) *Grouping {
	return &Grouping{expr: expr{node: node{syntax}}, Inner: inner}
}

// Comparison is an ordering test. Its type is always bool.
type Comparison struct {
	expr
	Op    lexer.TokenType
	Left  Expr
	Right Expr
}

func NewComparison(syntax *ast.Comparison, left, right Expr) *Comparison {
	return &Comparison{expr: expr{node: node{syntax}}, Op: syntax.Op, Left: left, Right: right}
}

// Equality is == or !=. Its type is always bool.
type Equality struct {
	expr
	Op    lexer.TokenType
	Left  Expr
	Right Expr
}

func NewEquality(syntax *ast.Equality, left, right Expr) *Equality {
	return &Equality{expr: expr{node: node{syntax}}, Op: syntax.Op, Left: left, Right: right}
}

// Logic is && or ||. Its type is always bool.
type Logic struct {
	expr
	Op    lexer.TokenType
	Left  Expr
	Right Expr
}

func NewLogic(syntax *ast.Logic, left, right Expr) *Logic {
	return &Logic{expr: expr{node: node{syntax}}, Op: syntax.Op, Left: left, Right: right}
}

// Symbol references a declared symbol. Symbol is nil when the name could
// not be resolved. With AddressOf set the expression yields a pointer to the
// symbol.
type Symbol struct {
	expr
	Name      string
	Symbol    types.Symbol
	AddressOf bool
}

func NewSymbol(syntax ast.Node, name string, sym types.Symbol, addressOf bool) *Symbol {
	return &Symbol{expr: expr{node: node{syntax}}, Name: name, Symbol: sym, AddressOf: addressOf}
}

// AssignmentReference wraps an addressable expression: Ref is always a
// *Symbol or a *Dereference.
type AssignmentReference struct {
	expr
	Ref Expr
}

// NewAssignmentReference wraps ref, which must be addressable.
func NewAssignmentReference(ref Expr) *AssignmentReference {
	switch ref.(type) {
	case *Symbol, *Dereference:
	default:
		panic("bound: assignment reference must be a symbol or a dereference")
	}
	return &AssignmentReference{expr: expr{node: node{ref.Syntax()}}, Ref: ref}
}

// Assignment stores Value through Target.
type Assignment struct {
	expr
	Target *AssignmentReference
	Value  Expr
}

func NewAssignment(syntax *ast.Assignment, target *AssignmentReference, value Expr) *Assignment {
	return &Assignment{expr: expr{node: node{syntax}}, Target: target, Value: value}
}

// Dereference reads through a pointer: *Pointer, or Pointer[Index] when
// Index is set.
type Dereference struct {
	expr
	Pointer Expr
	Index   Expr
}

func NewDereference(syntax ast.Node, pointer, index Expr) *Dereference {
	return &Dereference{expr: expr{node: node{syntax}}, Pointer: pointer, Index: index}
}

// AddressOf yields the address of an addressable operand.
type AddressOf struct {
	expr
	Operand *AssignmentReference
}

func NewAddressOf(syntax *ast.AddressOf, operand *AssignmentReference) *AddressOf {
	return &AddressOf{expr: expr{node: node{syntax}}, Operand: operand}
}

// Call invokes Callee with Args.
type Call struct {
	expr
	Callee Expr
	Args   []Expr
}

func NewCall(syntax *ast.Call, callee Expr, args []Expr) *Call {
	return &Call{expr: expr{node: node{syntax}}, Callee: callee, Args: args}
}

// Cast converts Value to Target explicitly.
type Cast struct {
	expr
	Value  Expr
	Target types.Type
}

func NewCast(syntax *ast.Cast, value Expr, target types.Type) *Cast {
	return &Cast{expr: expr{node: node{syntax}}, Value: value, Target: target}
}

// ArrayLiteral is an array of Size elements of Elem. Values may be shorter
// than Size; the rest is zero.
type ArrayLiteral struct {
	expr
	Elem   types.Type
	Size   uint64
	Values []Expr
}

func NewArrayLiteral(syntax *ast.ArrayLiteral, elem types.Type, values []Expr) *ArrayLiteral {
	return &ArrayLiteral{expr: expr{node: node{syntax}}, Elem: elem, Size: syntax.Size, Values: values}
}

// DefaultValue is the zero value of Target.
type DefaultValue struct {
	expr
	Target types.Type
}

func NewDefaultValue(syntax ast.Node, target types.Type) *DefaultValue {
	return &DefaultValue{expr: expr{node: node{syntax}}, Target: target}
}

// ImplicitCast is inserted by the checker where a value must change
// representation without an explicit cast, such as array-to-pointer decay.
type ImplicitCast struct {
	expr
	Value Expr
}

// NewImplicitCast wraps value so that it has type target.
func NewImplicitCast(value Expr, target types.Type) *ImplicitCast {
	c := &ImplicitCast{expr: expr{node: node{value.Syntax()}}, Value: value}
	c.SetType(target)
	return c
}

// Error stands in for an expression that could not be bound. Its type is
// always Invalid.
type Error struct {
	expr
}

func NewError(syntax ast.Node) *Error {
	e := &Error{expr: expr{node: node{syntax}}}
	e.SetType(types.Invalid)
	return e
}
