// Package bound defines the bound tree: a mirror of the syntax tree in which
// names are resolved to symbols, type syntax is resolved to types, and (after
// checking) every expression carries its type and any implicit cast it needs.
package bound

import (
	"github.com/ember-lang/ember/internal/ast"
	"github.com/ember-lang/ember/internal/lexer"
	"github.com/ember-lang/ember/internal/types"
)

// Node is any bound node. Syntax returns the originating syntax node, which
// is only used for locations and is never mutated.
type Node interface {
	Syntax() ast.Node
	Span() lexer.Span
}

// Expr is a bound expression. Its type is nil until the checker sets it.
type Expr interface {
	Node
	Type() types.Type
	SetType(t types.Type)
	exprNode()
}

// Stmt is a bound statement.
type Stmt interface {
	Node
	stmtNode()
}

type node struct {
	syntax ast.Node
}

func (n node) Syntax() ast.Node { return n.syntax }

func (n node) Span() lexer.Span {
	if n.syntax == nil {
		return lexer.Span{}
	}
	return n.syntax.Span()
}

type expr struct {
	node
	typ types.Type
}

func (e *expr) Type() types.Type      { return e.typ }
func (e *expr) SetType(t types.Type) { e.typ = t }
func (*expr) exprNode()               {}

type stmt struct {
	node
}

func (*stmt) stmtNode() {}

// Program is the bound form of one compilation unit.
type Program struct {
	Statements []Stmt
	Global     *types.Scope
}

// Functions returns the top-level function declarations in source order.
func (p *Program) Functions() []*FunctionDeclaration {
	var fns []*FunctionDeclaration
	for _, s := range p.Statements {
		if fn, ok := s.(*FunctionDeclaration); ok {
			fns = append(fns, fn)
		}
	}
	return fns
}
