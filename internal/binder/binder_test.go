package binder

import (
	"testing"

	"github.com/ember-lang/ember/internal/bound"
	"github.com/ember-lang/ember/internal/diag"
	"github.com/ember-lang/ember/internal/lexer"
	"github.com/ember-lang/ember/internal/parser"
	"github.com/ember-lang/ember/internal/types"
)

func bindSource(t *testing.T, src string) (*bound.Program, []diag.Diagnostic) {
	t.Helper()

	tokens, diags := lexer.Tokenize(src)
	if len(diags) != 0 {
		t.Fatalf("unexpected lexer diagnostics: %v", diags)
	}
	stmts, diags := parser.Parse(tokens)
	if len(diags) != 0 {
		t.Fatalf("unexpected parser diagnostics: %v", diags)
	}
	return Bind(stmts)
}

func expectKinds(t *testing.T, diags []diag.Diagnostic, kinds ...diag.Kind) {
	t.Helper()

	if len(diags) != len(kinds) {
		t.Fatalf("expected %d diagnostics, got %d: %v", len(kinds), len(diags), diags)
	}
	for i, k := range kinds {
		if !diags[i].Is(k) {
			t.Fatalf("diagnostic %d: expected %s, got %s", i, k.ID, diags[i])
		}
	}
}

func TestBindShadowing(t *testing.T) {
	src := `
int32 x = 1;
void f() {
	{
		int32 x = 2;
		x = 3;
	}
	x = 4;
}
`
	prog, diags := bindSource(t, src)
	expectKinds(t, diags)

	outer := prog.Statements[0].(*bound.Declaration).Symbol
	body := prog.Statements[1].(*bound.FunctionDeclaration).Body

	block := body.Stmts[0].(*bound.Block)
	inner := block.Stmts[0].(*bound.Declaration).Symbol
	if inner == outer {
		t.Fatalf("expected the inner declaration to create a new symbol")
	}

	innerRef := block.Stmts[1].(*bound.ExpressionStmt).Expr.(*bound.Assignment).Target.Ref.(*bound.Symbol)
	if innerRef.Symbol != inner {
		t.Fatalf("expected the inner reference to bind to the inner symbol")
	}
	outerRef := body.Stmts[1].(*bound.ExpressionStmt).Expr.(*bound.Assignment).Target.Ref.(*bound.Symbol)
	if outerRef.Symbol != outer {
		t.Fatalf("expected the reference after the block to bind to the global symbol")
	}
}

func TestBindRedeclarationInSameBlock(t *testing.T) {
	src := `
void f() {
	{
		int32 x = 1;
		int32 x = 2;
	}
}
`
	_, diags := bindSource(t, src)
	expectKinds(t, diags, diag.MultipleSymbolDeclaration)
	if diags[0].Span.Line != 5 {
		t.Fatalf("expected the second declaration to be reported, got line %d", diags[0].Span.Line)
	}
	if diags[0].Message() != `symbol "x" is already declared in this scope` {
		t.Fatalf("unexpected message %q", diags[0].Message())
	}
}

func TestBindParametersShareFunctionScope(t *testing.T) {
	src := `
int32 f(int32 a, int32 a) {
	int32 b = a;
	int32 b = 2;
	return b;
}
`
	prog, diags := bindSource(t, src)
	expectKinds(t, diags, diag.MultipleSymbolDeclaration, diag.MultipleSymbolDeclaration)

	fn := prog.Statements[0].(*bound.FunctionDeclaration)
	if !fn.Symbol.Params[0].IsParameter {
		t.Fatalf("expected parameters to be flagged")
	}
	if fn.Body.Scope != fn.Scope {
		t.Fatalf("expected the body to share the function scope")
	}
	if prog.Global.LookupLocal("a") != nil {
		t.Fatalf("parameters must not leak into the global scope")
	}
}

func TestBindUndeclaredContinues(t *testing.T) {
	src := `
void f() {
	y = z;
	w();
}
`
	prog, diags := bindSource(t, src)
	expectKinds(t, diags, diag.UndeclaredSymbol, diag.UndeclaredSymbol, diag.UndeclaredSymbol)

	body := prog.Statements[0].(*bound.FunctionDeclaration).Body
	if len(body.Stmts) != 2 {
		t.Fatalf("expected both statements to be bound, got %d", len(body.Stmts))
	}
	ref := body.Stmts[0].(*bound.ExpressionStmt).Expr.(*bound.Assignment).Target.Ref.(*bound.Symbol)
	if ref.Symbol != nil || ref.Name != "y" {
		t.Fatalf("expected a placeholder reference for y")
	}
}

func TestBindSelfReferenceResolves(t *testing.T) {
	prog, diags := bindSource(t, "auto x = x;")
	expectKinds(t, diags)

	decl := prog.Statements[0].(*bound.Declaration)
	if ref := decl.Init.(*bound.Symbol); ref.Symbol != decl.Symbol {
		t.Fatalf("expected the initializer to resolve to the declared symbol")
	}
}

func TestBindAddressability(t *testing.T) {
	src := `
void g() { }
void f(int32* p, int32[4] a) {
	int32 x = 1;
	*p = 1;
	a[2] = 3;
	(x) = 4;
	x + 1 = 2;
	int32* q = &(x + 1);
	int32* r = &a[1];
	g = f;
	void() h = &g;
}
`
	prog, diags := bindSource(t, src)
	expectKinds(t, diags,
		diag.MustBeAssignmentReference,
		diag.ValueMustBeAddressable,
		diag.SymbolIsNotValue,
		diag.SymbolIsNotValue,
	)

	body := prog.Statements[1].(*bound.FunctionDeclaration).Body
	index := body.Stmts[2].(*bound.ExpressionStmt).Expr.(*bound.Assignment)
	if d, ok := index.Target.Ref.(*bound.Dereference); !ok || d.Index == nil {
		t.Fatalf("expected a[2] to bind as an indexed dereference")
	}
	if _, ok := body.Stmts[4].(*bound.ExpressionStmt).Expr.(*bound.Error); !ok {
		t.Fatalf("expected an error placeholder for the invalid assignment")
	}
	if _, ok := body.Stmts[6].(*bound.Declaration).Init.(*bound.AddressOf); !ok {
		t.Fatalf("expected &a[1] to bind as AddressOf")
	}
}

func TestBindFileScopeRules(t *testing.T) {
	src := `
int32 x = 1;
x = 2;
return x;
void f() {
	int32 g() { return 1; }
}
`
	_, diags := bindSource(t, src)
	expectKinds(t, diags,
		diag.StatementOutsideFunction,
		diag.ReturnOutsideFunction,
		diag.NestedFunctionDeclaration,
	)
}

func TestBindDesugarsDefaultDeclaration(t *testing.T) {
	prog, diags := bindSource(t, "uint8* p = default;")
	expectKinds(t, diags)

	decl := prog.Statements[0].(*bound.Declaration)
	def, ok := decl.Init.(*bound.DefaultValue)
	if !ok {
		t.Fatalf("expected a DefaultValue initializer, got %T", decl.Init)
	}
	if !types.Equal(def.Target, &types.Pointer{Inner: types.TypeUint8}) {
		t.Fatalf("expected default(uint8*), got %s", def.Target)
	}
	if !types.Equal(decl.Declared, def.Target) {
		t.Fatalf("expected the declared type to be kept")
	}
}

func TestBindFunctionSymbolsAreDeclaredFirst(t *testing.T) {
	src := `
int32 fact(int32 n) {
	return fact(n);
}
`
	prog, diags := bindSource(t, src)
	expectKinds(t, diags)

	fn := prog.Statements[0].(*bound.FunctionDeclaration)
	call := fn.Body.Stmts[0].(*bound.Return).Value.(*bound.Call)
	if call.Callee.(*bound.Symbol).Symbol != fn.Symbol {
		t.Fatalf("expected the recursive call to resolve to the function")
	}
	if prog.Global.Symbols()[0] != types.Symbol(fn.Symbol) {
		t.Fatalf("expected the function in the global scope")
	}
}

func TestBindScopeRestoredAfterBlocks(t *testing.T) {
	b := New()
	tokens, _ := lexer.Tokenize("void f() { { int32 a = 1; } }")
	stmts, _ := parser.Parse(tokens)
	b.BindFile(stmts)

	if b.scope != b.global {
		t.Fatalf("expected the binder to end in the global scope")
	}
}
