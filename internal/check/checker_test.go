package check

import (
	"testing"

	"github.com/nalgeon/be"

	"github.com/ember-lang/ember/internal/binder"
	"github.com/ember-lang/ember/internal/bound"
	"github.com/ember-lang/ember/internal/diag"
	"github.com/ember-lang/ember/internal/lexer"
	"github.com/ember-lang/ember/internal/parser"
	"github.com/ember-lang/ember/internal/types"
)

func checkSource(t *testing.T, src string) (*bound.Program, []diag.Diagnostic) {
	t.Helper()

	tokens, diags := lexer.Tokenize(src)
	if len(diags) != 0 {
		t.Fatalf("unexpected lexer diagnostics: %v", diags)
	}
	stmts, diags := parser.Parse(tokens)
	if len(diags) != 0 {
		t.Fatalf("unexpected parser diagnostics: %v", diags)
	}
	prog, diags := binder.Bind(stmts)
	if len(diags) != 0 {
		t.Fatalf("unexpected binder diagnostics: %v", diags)
	}
	return prog, Check(prog)
}

func kinds(diags []diag.Diagnostic) []string {
	ids := make([]string, len(diags))
	for i, d := range diags {
		ids[i] = d.ID
	}
	return ids
}

func TestCheckDiagnostics(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []string
	}{
		{"well typed", "int32 x = 1; bool b = x == 2;", []string{}},
		{"bool into int", "int32 x = true;", []string{"TypeDiffers"}},
		{"mixed operands", "int64 a = default; int32 b = 1; auto c = a + b;", []string{"TypeDiffers"}},
		{"auto inferred", "auto a = 1; int64 b = a;", []string{"TypeDiffers"}},
		{"auto self reference", "auto x = x;", []string{"SymbolTypeUnknown"}},
		{"void variable", "void x = 1;", []string{"VoidNotAllowed"}},
		{"void variable default", "void x = default;", []string{"VoidNotAllowed"}},
		{"auto default", "auto x = default;", []string{"AutoNotAllowed"}},
		{"void pointer", "void* p = default;", []string{}},
		{"zero sized array", "int32[0] a = default;", []string{"ArraySizeZero"}},
		{"zero sized literal", "auto a = [int32; 0];", []string{"ArraySizeZero"}},
		{"too many elements", "auto a = [int8; 2] {1 as int8, 2 as int8, 3 as int8};", []string{"TooManyElements"}},
		{"element type", "auto a = [int8; 2] {true};", []string{"TypeDiffers"}},
		{"not a pointer", "void f() { int32 x = 1; int32 y = *x; }", []string{"PointerExpected"}},
		{"negation of int", "bool b = !1;", []string{"TypeDiffers"}},
		{"if condition", "void f() { if (1) { } }", []string{"TypeDiffers"}},
		{"void initializer", "void f() { } auto x = f();", []string{"ExpressionDoesNotReturnValue"}},
		{"void cast", "void f() { } int32 x = f() as int32;", []string{"ExpressionDoesNotReturnValue"}},
		{"missing return value", "int32 f() { return; }", []string{"ExpectedReturnValue"}},
		{"unexpected return value", "void f() { return 1; }", []string{"UnexpectedReturnValue"}},
		{"return type", "int32 f() { return true; }", []string{"TypeDiffers"}},
		{"void parameter", "void f(void v) { }", []string{"VoidNotAllowed"}},
		{"auto return", "auto f() { }", []string{"AutoNotAllowed"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, diags := checkSource(t, tt.src)
			be.Equal(t, kinds(diags), tt.want)
		})
	}
}

func TestCheckTypeDiffersMessage(t *testing.T) {
	_, diags := checkSource(t, "int32 x = true;")
	be.Equal(t, len(diags), 1)
	be.Equal(t, diags[0].Args, []any{"int32", "bool"})
	be.Equal(t, diags[0].Message(), "type differs: expected int32, found bool")
}

func TestCheckArity(t *testing.T) {
	_, diags := checkSource(t, "void f() { } void g() { f(1); }")
	be.Equal(t, kinds(diags), []string{"ArityDiffers"})
	be.Equal(t, diags[0].Args, []any{0, 1})
}

func TestCheckCallOfNonFunction(t *testing.T) {
	prog, diags := checkSource(t, "int32 x = 1; void g() { x(true, 2); }")
	be.Equal(t, kinds(diags), []string{"CannotCallNonFunction"})

	g := prog.Statements[1].(*bound.FunctionDeclaration)
	call := g.Body.Stmts[0].(*bound.ExpressionStmt).Expr.(*bound.Call)
	be.True(t, call.Type() == types.Invalid)
	be.True(t, types.IsKind(call.Args[0].Type(), types.Bool))
}

func TestCheckArrayDecay(t *testing.T) {
	prog, diags := checkSource(t, `extern void puts(char* s); void g() { puts("hi"); }`)
	be.Equal(t, len(diags), 0)

	g := prog.Statements[1].(*bound.FunctionDeclaration)
	call := g.Body.Stmts[0].(*bound.ExpressionStmt).Expr.(*bound.Call)
	cast, ok := call.Args[0].(*bound.ImplicitCast)
	be.True(t, ok)
	be.Equal(t, cast.Type().String(), "char*")
	be.Equal(t, cast.Value.Type().String(), "char[3]")
}

func TestCheckRecordsTypes(t *testing.T) {
	src := `
int32 f(int32* p, int32[4] a) {
	int32 x = *p;
	int32* q = &x;
	return a[1] + x;
}
`
	prog, diags := checkSource(t, src)
	be.Equal(t, len(diags), 0)

	fn := prog.Statements[0].(*bound.FunctionDeclaration)
	be.Equal(t, fn.Symbol.Type().String(), "int32(int32*, int32[4])")
	be.Equal(t, fn.Symbol.Params[1].Type().String(), "int32[4]")

	q := fn.Body.Stmts[1].(*bound.Declaration)
	be.Equal(t, q.Init.Type().String(), "int32*")

	ret := fn.Body.Stmts[2].(*bound.Return)
	be.Equal(t, ret.Value.Type().String(), "int32")
}

func TestCheckAutoTakesInitializerType(t *testing.T) {
	prog, diags := checkSource(t, `auto s = "abc"; auto f = 1.5;`)
	be.Equal(t, len(diags), 0)

	s := prog.Statements[0].(*bound.Declaration).Symbol
	be.Equal(t, s.Type().String(), "char[4]")
	f := prog.Statements[1].(*bound.Declaration).Symbol
	be.True(t, types.IsKind(f.Type(), types.Float64))
}

func TestCheckInvalidDoesNotCascade(t *testing.T) {
	// x is invalid after the first report; using it must not report again.
	_, diags := checkSource(t, "auto x = x; int32 y = x + 1; bool b = y == true;")
	be.Equal(t, kinds(diags), []string{"SymbolTypeUnknown", "TypeDiffers"})
}
