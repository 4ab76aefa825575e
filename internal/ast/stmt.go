package ast

import "github.com/ember-lang/ember/internal/lexer"

// ExpressionStmt is an expression evaluated for its effect.
type ExpressionStmt struct {
	Expr Expr
	span lexer.Span
}

// Span returns the statement span.
func (s *ExpressionStmt) Span() lexer.Span { return s.span }

// AcceptStmt dispatches to VisitExpressionStmt.
func (s *ExpressionStmt) AcceptStmt(v StmtVisitor) { v.VisitExpressionStmt(s) }

// NewExpressionStmt constructs an expression statement.
func NewExpressionStmt(expr Expr, span lexer.Span) *ExpressionStmt {
	return &ExpressionStmt{
		Expr: expr,
		span: span,
	}
}

// Declaration declares a variable: [modifiers] T name = init;
type Declaration struct {
	Modifiers Modifiers
	Type      TypeExpr
	Name      *Ident
	Init      Expr
	span      lexer.Span
}

// Span returns the statement span.
func (s *Declaration) Span() lexer.Span { return s.span }

// AcceptStmt dispatches to VisitDeclaration.
func (s *Declaration) AcceptStmt(v StmtVisitor) { v.VisitDeclaration(s) }

// NewDeclaration constructs a variable declaration.
func NewDeclaration(mods Modifiers, typ TypeExpr, name *Ident, init Expr, span lexer.Span) *Declaration {
	return &Declaration{
		Modifiers: mods,
		Type:      typ,
		Name:      name,
		Init:      init,
		span:      span,
	}
}

// DefaultDeclaration is the sugar T name = default; which means
// T name = default(T);
type DefaultDeclaration struct {
	Modifiers Modifiers
	Type      TypeExpr
	Name      *Ident
	Default   lexer.Span // the default keyword
	span      lexer.Span
}

// Span returns the statement span.
func (s *DefaultDeclaration) Span() lexer.Span { return s.span }

// AcceptStmt dispatches to VisitDefaultDeclaration.
func (s *DefaultDeclaration) AcceptStmt(v StmtVisitor) { v.VisitDefaultDeclaration(s) }

// NewDefaultDeclaration constructs a default-value declaration.
func NewDefaultDeclaration(mods Modifiers, typ TypeExpr, name *Ident, def, span lexer.Span) *DefaultDeclaration {
	return &DefaultDeclaration{
		Modifiers: mods,
		Type:      typ,
		Name:      name,
		Default:   def,
		span:      span,
	}
}

// Param is one function parameter.
type Param struct {
	Type TypeExpr
	Name *Ident
	span lexer.Span
}

// Span returns the parameter span.
func (p *Param) Span() lexer.Span { return p.span }

// NewParam constructs a parameter node.
func NewParam(typ TypeExpr, name *Ident) *Param {
	return &Param{
		Type: typ,
		Name: name,
		span: typ.Span().To(name.Span()),
	}
}

// FunctionDeclaration declares a function. Body is nil for extern functions.
type FunctionDeclaration struct {
	Modifiers  Modifiers
	ReturnType TypeExpr
	Name       *Ident
	Params     []*Param
	Body       *Block
	span       lexer.Span
}

// Span returns the declaration span.
func (s *FunctionDeclaration) Span() lexer.Span { return s.span }

// AcceptStmt dispatches to VisitFunctionDeclaration.
func (s *FunctionDeclaration) AcceptStmt(v StmtVisitor) { v.VisitFunctionDeclaration(s) }

// NewFunctionDeclaration constructs a function declaration.
func NewFunctionDeclaration(mods Modifiers, ret TypeExpr, name *Ident, params []*Param, body *Block, span lexer.Span) *FunctionDeclaration {
	return &FunctionDeclaration{
		Modifiers:  mods,
		ReturnType: ret,
		Name:       name,
		Params:     params,
		Body:       body,
		span:       span,
	}
}

// Return is return [value];
type Return struct {
	Value Expr
	span  lexer.Span
}

// Span returns the statement span.
func (s *Return) Span() lexer.Span { return s.span }

// AcceptStmt dispatches to VisitReturn.
func (s *Return) AcceptStmt(v StmtVisitor) { v.VisitReturn(s) }

// NewReturn constructs a return statement.
func NewReturn(value Expr, span lexer.Span) *Return {
	return &Return{
		Value: value,
		span:  span,
	}
}

// Block is a braced statement list. Closed is false when the closing brace
// was missing and the block was recovered.
type Block struct {
	Stmts  []Stmt
	Closed bool
	span   lexer.Span
}

// Span returns the block span.
func (s *Block) Span() lexer.Span { return s.span }

// AcceptStmt dispatches to VisitBlock.
func (s *Block) AcceptStmt(v StmtVisitor) { v.VisitBlock(s) }

// NewBlock constructs a block statement.
func NewBlock(stmts []Stmt, closed bool, span lexer.Span) *Block {
	return &Block{
		Stmts:  stmts,
		Closed: closed,
		span:   span,
	}
}

// If is if (cond) then [else otherwise].
type If struct {
	Cond Expr
	Then Stmt
	Else Stmt
	span lexer.Span
}

// Span returns the statement span.
func (s *If) Span() lexer.Span { return s.span }

// AcceptStmt dispatches to VisitIf.
func (s *If) AcceptStmt(v StmtVisitor) { v.VisitIf(s) }

// NewIf constructs an if statement.
func NewIf(cond Expr, then, els Stmt, span lexer.Span) *If {
	return &If{
		Cond: cond,
		Then: then,
		Else: els,
		span: span,
	}
}
