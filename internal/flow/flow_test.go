package flow

import (
	"testing"

	"github.com/nalgeon/be"

	"github.com/ember-lang/ember/internal/binder"
	"github.com/ember-lang/ember/internal/check"
	"github.com/ember-lang/ember/internal/diag"
	"github.com/ember-lang/ember/internal/lexer"
	"github.com/ember-lang/ember/internal/parser"
)

func buildSource(t *testing.T, src string) []*Graph {
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
	if diags := check.Check(prog); len(diags) != 0 {
		t.Fatalf("unexpected checker diagnostics: %v", diags)
	}
	return Build(prog)
}

func ids(diags []diag.Diagnostic) []string {
	out := make([]string, len(diags))
	for i, d := range diags {
		out[i] = d.ID
	}
	return out
}

func TestAnalyze(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []string
	}{
		{"single return", "int32 f() { return 1; }", []string{}},
		{"void without return", "void f() { int32 x = 1; }", []string{}},
		{"empty body", "int32 f() { }", []string{"FunctionMustReturnFromAllPaths"}},
		{"if without else", "int32 f() { if (true) { return 1; } }", []string{"FunctionMustReturnFromAllPaths"}},
		{"if with trailing return", "int32 f() { if (true) { return 1; } return 2; }", []string{}},
		{"both branches return", "int32 f(bool c) { if (c) { return 1; } else { return 2; } }", []string{}},
		{"else branch falls through", "int32 f(bool c) { if (c) { return 1; } else { int32 x = 2; } }", []string{"FunctionMustReturnFromAllPaths"}},
		{"nested branches", `
int32 f(bool a, bool b) {
	if (a) {
		if (b) { return 1; } else { return 2; }
	} else {
		return 3;
	}
}`, []string{}},
		{"code after return", "int32 f() { return 1; int32 x = 2; }", []string{"UnreachableCode"}},
		{"code after return in branch", "int32 f(bool c) { if (c) { return 1; c = false; } return 0; }", []string{"UnreachableCode"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := Analyze(buildSource(t, tt.src))
			be.Equal(t, ids(diags), tt.want)
		})
	}
}

func TestUnreachableIsWarning(t *testing.T) {
	diags := Analyze(buildSource(t, "void f() { return; f(); }"))
	be.Equal(t, len(diags), 1)
	be.Equal(t, diags[0].Severity, diag.SeverityWarning)
	be.True(t, !diag.HasErrors(diags))
	be.Equal(t, diags[0].Span.Line, 1)
}

func TestMissingReturnNamesFunction(t *testing.T) {
	diags := Analyze(buildSource(t, "int32 fact(int32 n) { if (n < 2) { return 1; } }"))
	be.Equal(t, len(diags), 1)
	be.Equal(t, diags[0].Message(), `function "fact" must return from all paths`)
	be.Equal(t, diags[0].Severity, diag.SeverityError)
}

func TestBuildSkipsExternFunctions(t *testing.T) {
	graphs := buildSource(t, "extern int32 getchar(); int32 f() { return getchar(); }")
	be.Equal(t, len(graphs), 1)
	be.Equal(t, graphs[0].Function.Symbol.Name(), "f")
}

func TestBuildPrunesEmptyBlocks(t *testing.T) {
	graphs := buildSource(t, "int32 f(bool c) { if (c) { return 1; } return 2; }")
	g := graphs[0]

	for _, b := range g.Blocks {
		if b != g.Entry && b != g.Exit {
			be.True(t, len(b.Stmts) > 0)
		}
	}
	// entry, then, join and exit
	be.Equal(t, len(g.Blocks), 4)
	be.Equal(t, len(g.Entry.Succs), 2)
	be.Equal(t, len(g.Exit.Preds), 2)
}

func TestSolveStates(t *testing.T) {
	graphs := buildSource(t, "int32 f() { return 1; int32 x = 2; }")
	g := graphs[0]
	g.Solve()

	be.Equal(t, g.Entry.State, State{Reachable: true, HasReturn: false})
	be.Equal(t, g.Exit.State, State{Reachable: true, HasReturn: true})

	dead := g.Blocks[1]
	be.Equal(t, dead.State.Reachable, false)
	be.Equal(t, len(dead.Preds), 0)
}

func TestPrettyPrint(t *testing.T) {
	graphs := buildSource(t, "int32 f() { return 1; }")
	want := "fn f {\n  entry (1 stmts) -> [exit]\n  exit (0 stmts) -> []\n}"
	be.Equal(t, graphs[0].PrettyPrint(), want)
}
