package bound

import (
	"github.com/ember-lang/ember/internal/ast"
	"github.com/ember-lang/ember/internal/types"
)

// ExpressionStmt evaluates Expr for its effect.
type ExpressionStmt struct {
	stmt
	Expr Expr
}

func NewExpressionStmt(syntax *ast.ExpressionStmt, e Expr) *ExpressionStmt {
	return &ExpressionStmt{stmt: stmt{node{syntax}}, Expr: e}
}

// Declaration declares Symbol with the written type Declared (which may be
// auto) and initializes it with Init.
type Declaration struct {
	stmt
	Symbol    *types.Var
	Declared  types.Type
	Init      Expr
	Modifiers ast.Modifiers
}

func NewDeclaration(syntax ast.Stmt, sym *types.Var, declared types.Type, init Expr, mods ast.Modifiers) *Declaration {
	return &Declaration{stmt: stmt{node{syntax}}, Symbol: sym, Declared: declared, Init: init, Modifiers: mods}
}

// FunctionDeclaration declares Symbol. ParamTypes parallels Symbol.Params.
// Body is nil for extern functions.
type FunctionDeclaration struct {
	stmt
	Symbol     *types.Func
	Return     types.Type
	ParamTypes []types.Type
	Body       *Block
	Scope      *types.Scope
}

func NewFunctionDeclaration(syntax *ast.FunctionDeclaration, sym *types.Func, ret types.Type, params []types.Type, body *Block, scope *types.Scope) *FunctionDeclaration {
	return &FunctionDeclaration{
		stmt:       stmt{node{syntax}},
		Symbol:     sym,
		Return:     ret,
		ParamTypes: params,
		Body:       body,
		Scope:      scope,
	}
}

// Return leaves the enclosing function, with an optional Value.
type Return struct {
	stmt
	Value Expr
}

func NewReturn(syntax *ast.Return, value Expr) *Return {
	return &Return{stmt: stmt{node{syntax}}, Value: value}
}

// Block is a statement list with its own scope.
type Block struct {
	stmt
	Stmts []Stmt
	Scope *types.Scope
}

func NewBlock(syntax ast.Node, stmts []Stmt, scope *types.Scope) *Block {
	return &Block{stmt: stmt{node{syntax}}, Stmts: stmts, Scope: scope}
}

// If runs Then when Cond holds, otherwise Else (which may be nil).
type If struct {
	stmt
	Cond Expr
	Then Stmt
	Else Stmt
}

func NewIf(syntax *ast.If, cond Expr, then, els Stmt) *If {
	return &If{stmt: stmt{node{syntax}}, Cond: cond, Then: then, Else: els}
}
