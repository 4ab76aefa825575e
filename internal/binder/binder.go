// Package binder resolves names in the syntax tree and produces the bound
// tree. It walks every statement exactly once with a current scope that
// starts as the global scope, and never stops early: each problem is
// reported and a best-effort bound node is still produced.
package binder

import (
	"github.com/ember-lang/ember/internal/ast"
	"github.com/ember-lang/ember/internal/bound"
	"github.com/ember-lang/ember/internal/diag"
	"github.com/ember-lang/ember/internal/types"
)

type Option func(*options)

type options struct {
	policy *diag.Policy
}

// WithPolicy applies a severity policy to the reported diagnostics.
func WithPolicy(p *diag.Policy) Option {
	return func(o *options) {
		o.policy = p
	}
}

// Binder implements ast.ExprVisitor and ast.StmtVisitor. Each Visit method
// leaves its result in expr or stmt, which bindExpr and bindStmt collect.
type Binder struct {
	diags    *diag.Bag
	global   *types.Scope
	scope    *types.Scope
	function *types.Func // enclosing function, nil at file scope

	expr bound.Expr
	stmt bound.Stmt
}

// New creates a binder with a fresh global scope.
func New(opts ...Option) *Binder {
	cfg := options{}
	for _, opt := range opts {
		opt(&cfg)
	}

	global := types.NewScope(nil)
	return &Binder{
		diags:  diag.NewBag(cfg.policy),
		global: global,
		scope:  global,
	}
}

// Bind binds a parsed compilation unit.
func Bind(stmts []ast.Stmt, opts ...Option) (*bound.Program, []diag.Diagnostic) {
	b := New(opts...)
	prog := b.BindFile(stmts)
	return prog, b.Diagnostics()
}

// Diagnostics returns the diagnostics reported so far.
func (b *Binder) Diagnostics() []diag.Diagnostic {
	return b.diags.Diagnostics()
}

// BindFile binds top-level statements into the global scope. Only
// declarations are legal at file scope.
func (b *Binder) BindFile(stmts []ast.Stmt) *bound.Program {
	prog := &bound.Program{Global: b.global}
	for _, s := range stmts {
		switch s.(type) {
		case *ast.Declaration, *ast.DefaultDeclaration, *ast.FunctionDeclaration:
		case *ast.Return:
			// reported by VisitReturn
		default:
			b.diags.Report(diag.StatementOutsideFunction, s.Span())
		}
		prog.Statements = append(prog.Statements, b.bindStmt(s))
	}
	return prog
}

func (b *Binder) bindExpr(e ast.Expr) bound.Expr {
	e.AcceptExpr(b)
	result := b.expr
	b.expr = nil
	return result
}

func (b *Binder) bindStmt(s ast.Stmt) bound.Stmt {
	s.AcceptStmt(b)
	result := b.stmt
	b.stmt = nil
	return result
}

func (b *Binder) bindStmts(stmts []ast.Stmt) []bound.Stmt {
	out := make([]bound.Stmt, 0, len(stmts))
	for _, s := range stmts {
		out = append(out, b.bindStmt(s))
	}
	return out
}

// inScope runs fn with scope as the current scope and always restores the
// previous one.
func (b *Binder) inScope(scope *types.Scope, fn func()) {
	saved := b.scope
	b.scope = scope
	defer func() { b.scope = saved }()
	fn()
}

// declare adds sym to the current scope, reporting a same-scope duplicate.
func (b *Binder) declare(sym types.Symbol) {
	if _, ok := b.scope.Declare(sym); !ok {
		b.diags.Report(diag.MultipleSymbolDeclaration, sym.Span(), sym.Name())
	}
}

// lookup resolves name through the scope chain, reporting an unknown name.
func (b *Binder) lookup(name string, node ast.Node) types.Symbol {
	sym := b.scope.Lookup(name)
	if sym == nil {
		b.diags.Report(diag.UndeclaredSymbol, node.Span(), name)
	}
	return sym
}

// bindReference binds an expression that must be addressable: a symbol
// reference or a pointer dereference (including indexing). Parentheses are
// looked through. Anything else is reported as kind and nil is returned.
func (b *Binder) bindReference(e ast.Expr, kind diag.Kind) *bound.AssignmentReference {
	for {
		g, ok := e.(*ast.Grouping)
		if !ok {
			break
		}
		e = g.Inner
	}

	switch e := e.(type) {
	case *ast.Symbol:
		if e.AddressOf {
			break
		}
		sym := b.lookup(e.Name, e)
		if _, isFunc := sym.(*types.Func); isFunc {
			b.diags.Report(diag.SymbolIsNotValue, e.Span(), e.Name)
			return nil
		}
		return bound.NewAssignmentReference(bound.NewSymbol(e, e.Name, sym, false))
	case *ast.Dereference, *ast.Index:
		return bound.NewAssignmentReference(b.bindExpr(e))
	}

	b.diags.Report(kind, e.Span())
	b.bindExpr(e)
	return nil
}
