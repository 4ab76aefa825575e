package binder

import (
	"github.com/ember-lang/ember/internal/ast"
	"github.com/ember-lang/ember/internal/bound"
	"github.com/ember-lang/ember/internal/diag"
	"github.com/ember-lang/ember/internal/types"
)

// Expressions

func (b *Binder) VisitLiteral(e *ast.Literal) {
	b.expr = bound.NewLiteral(e)
}

func (b *Binder) VisitBinary(e *ast.Binary) {
	left := b.bindExpr(e.Left)
	right := b.bindExpr(e.Right)
	b.expr = bound.NewBinary(e, e.Op, left, right)
}

func (b *Binder) VisitUnary(e *ast.Unary) {
	b.expr = bound.NewUnary(e, b.bindExpr(e.Operand))
}

func (b *Binder) VisitGrouping(e *ast.Grouping) {
	b.expr = bound.NewGrouping(e, b.bindExpr(e.Inner))
}

func (b *Binder) VisitComparison(e *ast.Comparison) {
	left := b.bindExpr(e.Left)
	right := b.bindExpr(e.Right)
	b.expr = bound.NewComparison(e, left, right)
}

func (b *Binder) VisitEquality(e *ast.Equality) {
	left := b.bindExpr(e.Left)
	right := b.bindExpr(e.Right)
	b.expr = bound.NewEquality(e, left, right)
}

func (b *Binder) VisitLogic(e *ast.Logic) {
	left := b.bindExpr(e.Left)
	right := b.bindExpr(e.Right)
	b.expr = bound.NewLogic(e, left, right)
}

func (b *Binder) VisitSymbol(e *ast.Symbol) {
	sym := b.lookup(e.Name, e)
	if _, isFunc := sym.(*types.Func); isFunc && e.AddressOf {
		b.diags.Report(diag.SymbolIsNotValue, e.Span(), e.Name)
		b.expr = bound.NewError(e)
		return
	}
	b.expr = bound.NewSymbol(e, e.Name, sym, e.AddressOf)
}

func (b *Binder) VisitAssignment(e *ast.Assignment) {
	target := b.bindReference(e.Target, diag.MustBeAssignmentReference)
	value := b.bindExpr(e.Value)
	if target == nil {
		b.expr = bound.NewError(e)
		return
	}
	b.expr = bound.NewAssignment(e, target, value)
}

func (b *Binder) VisitDereference(e *ast.Dereference) {
	b.expr = bound.NewDereference(e, b.bindExpr(e.Pointer), nil)
}

// VisitIndex binds a[i] as a dereference of a at offset i.
func (b *Binder) VisitIndex(e *ast.Index) {
	array := b.bindExpr(e.Array)
	index := b.bindExpr(e.Index)
	b.expr = bound.NewDereference(e, array, index)
}

func (b *Binder) VisitAddressOf(e *ast.AddressOf) {
	operand := b.bindReference(e.Operand, diag.ValueMustBeAddressable)
	if operand == nil {
		b.expr = bound.NewError(e)
		return
	}
	b.expr = bound.NewAddressOf(e, operand)
}

func (b *Binder) VisitCall(e *ast.Call) {
	callee := b.bindExpr(e.Callee)
	args := make([]bound.Expr, len(e.Args))
	for i, arg := range e.Args {
		args[i] = b.bindExpr(arg)
	}
	b.expr = bound.NewCall(e, callee, args)
}

func (b *Binder) VisitCast(e *ast.Cast) {
	b.expr = bound.NewCast(e, b.bindExpr(e.Value), resolveType(e.Target))
}

func (b *Binder) VisitArrayLiteral(e *ast.ArrayLiteral) {
	values := make([]bound.Expr, len(e.Values))
	for i, v := range e.Values {
		values[i] = b.bindExpr(v)
	}
	b.expr = bound.NewArrayLiteral(e, resolveType(e.Elem), values)
}

func (b *Binder) VisitDefaultValue(e *ast.DefaultValue) {
	b.expr = bound.NewDefaultValue(e, resolveType(e.Target))
}

// Statements

func (b *Binder) VisitExpressionStmt(s *ast.ExpressionStmt) {
	b.stmt = bound.NewExpressionStmt(s, b.bindExpr(s.Expr))
}

// VisitDeclaration registers the variable before binding its initializer, so
// the initializer may refer to the variable itself.
func (b *Binder) VisitDeclaration(s *ast.Declaration) {
	v := types.NewVar(s.Name.Name, s.Name.Span(), false)
	b.declare(v)
	init := b.bindExpr(s.Init)
	b.stmt = bound.NewDeclaration(s, v, resolveType(s.Type), init, s.Modifiers)
}

func (b *Binder) VisitDefaultDeclaration(s *ast.DefaultDeclaration) {
	b.VisitDeclaration(desugarDefaultDeclaration(s))
}

// VisitFunctionDeclaration declares the function, then binds its parameters
// and body statements into one function scope.
func (b *Binder) VisitFunctionDeclaration(s *ast.FunctionDeclaration) {
	if !b.scope.IsGlobal() {
		b.diags.Report(diag.NestedFunctionDeclaration, s.Name.Span(), s.Name.Name)
	}

	params := make([]*types.Var, len(s.Params))
	paramTypes := make([]types.Type, len(s.Params))
	for i, p := range s.Params {
		params[i] = types.NewVar(p.Name.Name, p.Name.Span(), true)
		paramTypes[i] = resolveType(p.Type)
	}

	fn := types.NewFunc(s.Name.Name, s.Name.Span(), params, s.Modifiers.Extern)
	b.declare(fn)

	scope := types.NewScope(b.scope)
	var body *bound.Block
	b.inScope(scope, func() {
		saved := b.function
		b.function = fn
		defer func() { b.function = saved }()

		for _, p := range params {
			b.declare(p)
		}
		if s.Body != nil {
			body = bound.NewBlock(s.Body, b.bindStmts(s.Body.Stmts), scope)
		}
	})

	b.stmt = bound.NewFunctionDeclaration(s, fn, resolveType(s.ReturnType), paramTypes, body, scope)
}

func (b *Binder) VisitReturn(s *ast.Return) {
	if b.function == nil {
		b.diags.Report(diag.ReturnOutsideFunction, s.Span())
	}
	var value bound.Expr
	if s.Value != nil {
		value = b.bindExpr(s.Value)
	}
	b.stmt = bound.NewReturn(s, value)
}

func (b *Binder) VisitBlock(s *ast.Block) {
	scope := types.NewScope(b.scope)
	var stmts []bound.Stmt
	b.inScope(scope, func() {
		stmts = b.bindStmts(s.Stmts)
	})
	b.stmt = bound.NewBlock(s, stmts, scope)
}

func (b *Binder) VisitIf(s *ast.If) {
	cond := b.bindExpr(s.Cond)
	then := b.bindStmt(s.Then)
	var els bound.Stmt
	if s.Else != nil {
		els = b.bindStmt(s.Else)
	}
	b.stmt = bound.NewIf(s, cond, then, els)
}

var (
	_ ast.ExprVisitor = (*Binder)(nil)
	_ ast.StmtVisitor = (*Binder)(nil)
)
