package bound

import (
	"fmt"
	"testing"

	"github.com/ember-lang/ember/internal/ast"
	"github.com/ember-lang/ember/internal/lexer"
	"github.com/ember-lang/ember/internal/types"
)

func TestAssignmentReferenceShapes(t *testing.T) {
	sym := NewSymbol(ast.NewSymbol("x", false, lexer.Span{}), "x", nil, false)
	if ref := NewAssignmentReference(sym); ref.Ref != sym {
		t.Fatalf("expected the symbol to be wrapped")
	}

	deref := NewDereference(ast.NewSymbol("p", false, lexer.Span{}), sym, nil)
	if ref := NewAssignmentReference(deref); ref.Ref != deref {
		t.Fatalf("expected the dereference to be wrapped")
	}

	defer func() {
		if recover() == nil {
			t.Fatalf("a non-addressable expression must be rejected")
		}
	}()
	NewAssignmentReference(NewError(nil))
}

func TestImplicitCastKeepsSyntax(t *testing.T) {
	syntax := ast.NewSymbol("s", false, lexer.Span{Start: 3, End: 4})
	value := NewSymbol(syntax, "s", nil, false)
	value.SetType(&types.Array{Inner: types.TypeChar, Size: 4})

	target := &types.Pointer{Inner: types.TypeChar}
	cast := NewImplicitCast(value, target)
	if cast.Type() != target {
		t.Fatalf("expected the cast to carry its target type")
	}
	if cast.Syntax() != syntax || cast.Span().Start != 3 {
		t.Fatalf("expected the cast to point at the original syntax")
	}
}

func TestProgramFunctions(t *testing.T) {
	fn := &FunctionDeclaration{}
	prog := &Program{Statements: []Stmt{&Declaration{}, fn, &Declaration{}}}
	if fns := prog.Functions(); len(fns) != 1 || fns[0] != fn {
		t.Fatalf("expected exactly the function declaration, got %v", fns)
	}
}

func TestWalkVisitsSymbolsInOrder(t *testing.T) {
	sym := func(name string) *Symbol {
		return NewSymbol(ast.NewSymbol(name, false, lexer.Span{}), name, nil, false)
	}
	call := NewCall(nil, sym("f"), []Expr{sym("a"), NewDereference(nil, sym("p"), sym("i"))})
	body := NewBlock(nil, []Stmt{
		NewIf(nil, sym("c"), NewExpressionStmt(nil, call), nil),
		NewReturn(nil, nil),
	}, nil)
	fn := &FunctionDeclaration{Body: body}

	var names []string
	Walk(fn, func(n Node) bool {
		if s, ok := n.(*Symbol); ok {
			names = append(names, s.Name)
		}
		return true
	})
	if got := fmt.Sprint(names); got != "[c f a p i]" {
		t.Fatalf("unexpected walk order %s", got)
	}

	count := 0
	Walk(fn, func(n Node) bool {
		count++
		_, isIf := n.(*If)
		return !isIf
	})
	if count != 4 {
		t.Fatalf("expected pruning at the if, visited %d nodes", count)
	}
}
