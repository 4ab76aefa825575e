package ast

import "github.com/ember-lang/ember/internal/lexer"

// Literal represents an integer, float, char, string or boolean literal.
// The decoded value lives in Token.Value.
type Literal struct {
	Token lexer.Token
}

// Span returns the literal span.
func (e *Literal) Span() lexer.Span { return e.Token.Span }

// AcceptExpr dispatches to VisitLiteral.
func (e *Literal) AcceptExpr(v ExprVisitor) { v.VisitLiteral(e) }

// NewLiteral constructs a literal node.
func NewLiteral(tok lexer.Token) *Literal {
	return &Literal{Token: tok}
}

// Binary represents an arithmetic expression (+ - * /).
type Binary struct {
	Op    lexer.TokenType
	Left  Expr
	Right Expr
	span  lexer.Span
}

// Span returns the expression span.
func (e *Binary) Span() lexer.Span { return e.span }

// AcceptExpr dispatches to VisitBinary.
func (e *Binary) AcceptExpr(v ExprVisitor) { v.VisitBinary(e) }

// NewBinary constructs an arithmetic expression node.
func NewBinary(op lexer.TokenType, left, right Expr) *Binary {
	return &Binary{
		Op:    op,
		Left:  left,
		Right: right,
		span:  left.Span().To(right.Span()),
	}
}

// Unary represents a prefix negation (-) or logical not (!).
type Unary struct {
	Op      lexer.TokenType
	Operand Expr
	span    lexer.Span
}

// Span returns the expression span.
func (e *Unary) Span() lexer.Span { return e.span }

// AcceptExpr dispatches to VisitUnary.
func (e *Unary) AcceptExpr(v ExprVisitor) { v.VisitUnary(e) }

// NewUnary constructs a prefix expression node.
func NewUnary(op lexer.TokenType, operand Expr, span lexer.Span) *Unary {
	return &Unary{
		Op:      op,
		Operand: operand,
		span:    span,
	}
}

// Grouping represents a parenthesized expression.
type Grouping struct {
	Inner Expr
	span  lexer.Span
}

// Span returns the expression span, parentheses included.
func (e *Grouping) Span() lexer.Span { return e.span }

// AcceptExpr dispatches to VisitGrouping.
func (e *Grouping) AcceptExpr(v ExprVisitor) { v.VisitGrouping(e) }

// NewGrouping constructs a grouping node.
func NewGrouping(inner Expr, span lexer.Span) *Grouping {
	return &Grouping{
		Inner: inner,
		span:  span,
	}
}

// Comparison represents an ordering test (< <= > >=).
type Comparison struct {
	Op    lexer.TokenType
	Left  Expr
	Right Expr
	span  lexer.Span
}

// Span returns the expression span.
func (e *Comparison) Span() lexer.Span { return e.span }

// AcceptExpr dispatches to VisitComparison.
func (e *Comparison) AcceptExpr(v ExprVisitor) { v.VisitComparison(e) }

// NewComparison constructs a comparison node.
func NewComparison(op lexer.TokenType, left, right Expr) *Comparison {
	return &Comparison{
		Op:    op,
		Left:  left,
		Right: right,
		span:  left.Span().To(right.Span()),
	}
}

// Equality represents == and !=.
type Equality struct {
	Op    lexer.TokenType
	Left  Expr
	Right Expr
	span  lexer.Span
}

// Span returns the expression span.
func (e *Equality) Span() lexer.Span { return e.span }

// AcceptExpr dispatches to VisitEquality.
func (e *Equality) AcceptExpr(v ExprVisitor) { v.VisitEquality(e) }

// NewEquality constructs an equality node.
func NewEquality(op lexer.TokenType, left, right Expr) *Equality {
	return &Equality{
		Op:    op,
		Left:  left,
		Right: right,
		span:  left.Span().To(right.Span()),
	}
}

// Logic represents && and ||.
type Logic struct {
	Op    lexer.TokenType
	Left  Expr
	Right Expr
	span  lexer.Span
}

// Span returns the expression span.
func (e *Logic) Span() lexer.Span { return e.span }

// AcceptExpr dispatches to VisitLogic.
func (e *Logic) AcceptExpr(v ExprVisitor) { v.VisitLogic(e) }

// NewLogic constructs a logical expression node.
func NewLogic(op lexer.TokenType, left, right Expr) *Logic {
	return &Logic{
		Op:    op,
		Left:  left,
		Right: right,
		span:  left.Span().To(right.Span()),
	}
}

// Symbol is a reference to a named variable or function. AddressOf is set
// for the folded form &name.
type Symbol struct {
	Name      string
	AddressOf bool
	span      lexer.Span
}

// Span returns the reference span.
func (e *Symbol) Span() lexer.Span { return e.span }

// AcceptExpr dispatches to VisitSymbol.
func (e *Symbol) AcceptExpr(v ExprVisitor) { v.VisitSymbol(e) }

// NewSymbol constructs a symbol reference.
func NewSymbol(name string, addressOf bool, span lexer.Span) *Symbol {
	return &Symbol{
		Name:      name,
		AddressOf: addressOf,
		span:      span,
	}
}

// Assignment represents target = value.
type Assignment struct {
	Target Expr
	Value  Expr
	span   lexer.Span
}

// Span returns the expression span.
func (e *Assignment) Span() lexer.Span { return e.span }

// AcceptExpr dispatches to VisitAssignment.
func (e *Assignment) AcceptExpr(v ExprVisitor) { v.VisitAssignment(e) }

// NewAssignment constructs an assignment node.
func NewAssignment(target, value Expr) *Assignment {
	return &Assignment{
		Target: target,
		Value:  value,
		span:   target.Span().To(value.Span()),
	}
}

// Dereference represents a prefix pointer access (*p).
type Dereference struct {
	Pointer Expr
	span    lexer.Span
}

// Span returns the expression span.
func (e *Dereference) Span() lexer.Span { return e.span }

// AcceptExpr dispatches to VisitDereference.
func (e *Dereference) AcceptExpr(v ExprVisitor) { v.VisitDereference(e) }

// NewDereference constructs a dereference node.
func NewDereference(pointer Expr, span lexer.Span) *Dereference {
	return &Dereference{
		Pointer: pointer,
		span:    span,
	}
}

// AddressOf takes the address of a non-identifier operand, e.g. &*p or &a[1].
type AddressOf struct {
	Operand Expr
	span    lexer.Span
}

// Span returns the expression span.
func (e *AddressOf) Span() lexer.Span { return e.span }

// AcceptExpr dispatches to VisitAddressOf.
func (e *AddressOf) AcceptExpr(v ExprVisitor) { v.VisitAddressOf(e) }

// NewAddressOf constructs an address-of node.
func NewAddressOf(operand Expr, span lexer.Span) *AddressOf {
	return &AddressOf{
		Operand: operand,
		span:    span,
	}
}

// Call represents callee(args...).
type Call struct {
	Callee Expr
	Args   []Expr
	span   lexer.Span
}

// Span returns the expression span.
func (e *Call) Span() lexer.Span { return e.span }

// AcceptExpr dispatches to VisitCall.
func (e *Call) AcceptExpr(v ExprVisitor) { v.VisitCall(e) }

// NewCall constructs a call node.
func NewCall(callee Expr, args []Expr, span lexer.Span) *Call {
	return &Call{
		Callee: callee,
		Args:   args,
		span:   span,
	}
}

// Cast represents value as T.
type Cast struct {
	Value  Expr
	Target TypeExpr
	span   lexer.Span
}

// Span returns the expression span.
func (e *Cast) Span() lexer.Span { return e.span }

// AcceptExpr dispatches to VisitCast.
func (e *Cast) AcceptExpr(v ExprVisitor) { v.VisitCast(e) }

// NewCast constructs a cast node.
func NewCast(value Expr, target TypeExpr) *Cast {
	return &Cast{
		Value:  value,
		Target: target,
		span:   value.Span().To(target.Span()),
	}
}

// ArrayLiteral represents [T; N] with optional element values { ... }.
type ArrayLiteral struct {
	Elem   TypeExpr
	Size   uint64
	Values []Expr
	span   lexer.Span
}

// Span returns the literal span.
func (e *ArrayLiteral) Span() lexer.Span { return e.span }

// AcceptExpr dispatches to VisitArrayLiteral.
func (e *ArrayLiteral) AcceptExpr(v ExprVisitor) { v.VisitArrayLiteral(e) }

// NewArrayLiteral constructs an array literal node.
func NewArrayLiteral(elem TypeExpr, size uint64, values []Expr, span lexer.Span) *ArrayLiteral {
	return &ArrayLiteral{
		Elem:   elem,
		Size:   size,
		Values: values,
		span:   span,
	}
}

// Index represents array[index].
type Index struct {
	Array Expr
	Index Expr
	span  lexer.Span
}

// Span returns the expression span.
func (e *Index) Span() lexer.Span { return e.span }

// AcceptExpr dispatches to VisitIndex.
func (e *Index) AcceptExpr(v ExprVisitor) { v.VisitIndex(e) }

// NewIndex constructs an index node.
func NewIndex(array, index Expr, span lexer.Span) *Index {
	return &Index{
		Array: array,
		Index: index,
		span:  span,
	}
}

// DefaultValue represents default(T), the zero value of T.
type DefaultValue struct {
	Target TypeExpr
	span   lexer.Span
}

// Span returns the expression span.
func (e *DefaultValue) Span() lexer.Span { return e.span }

// AcceptExpr dispatches to VisitDefaultValue.
func (e *DefaultValue) AcceptExpr(v ExprVisitor) { v.VisitDefaultValue(e) }

// NewDefaultValue constructs a default-value node.
func NewDefaultValue(target TypeExpr, span lexer.Span) *DefaultValue {
	return &DefaultValue{
		Target: target,
		span:   span,
	}
}
