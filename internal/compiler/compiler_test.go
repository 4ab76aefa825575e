package compiler

import (
	"bytes"
	"context"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"

	"github.com/ember-lang/ember/internal/ast"
	"github.com/ember-lang/ember/internal/config"
	"github.com/ember-lang/ember/internal/diag"
)

func compile(src string, opts ...config.Option) *Result {
	return Compile(NewContext("test.em", config.New(opts...), nil), src)
}

func TestCompileGating(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		stage diag.Stage
		ids   []string
	}{
		{"lexer error stops", "int32 x = 1 $ 2;", diag.StageLexer, []string{"UnexpectedCharacter"}},
		{"parser error stops", "int32 x = ;", diag.StageParser, []string{"ExpectedExpression"}},
		{"binder error stops", "void f() { y = 1; }", diag.StageBinder, []string{"UndeclaredSymbol"}},
		{"checker error stops", "int32 x = true;", diag.StageTypeChecker, []string{"TypeDiffers"}},
		{"flow error", "int32 f() { }", diag.StageControlFlow, []string{"FunctionMustReturnFromAllPaths"}},
		{"clean", "int32 f() { return 1; }", diag.StageControlFlow, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := compile(tt.src)
			if res.Stage != tt.stage {
				t.Fatalf("expected to stop at %s, stopped at %s", tt.stage, res.Stage)
			}
			if len(res.Diagnostics) != len(tt.ids) {
				t.Fatalf("expected %v, got %v", tt.ids, res.Diagnostics)
			}
			for i, id := range tt.ids {
				if res.Diagnostics[i].ID != id {
					t.Fatalf("diagnostic %d: expected %s, got %s", i, id, res.Diagnostics[i])
				}
			}
		})
	}
}

func TestCompileLeavesLaterStagesEmpty(t *testing.T) {
	res := compile("int32 x = ;")
	if res.Program != nil || res.Graphs != nil {
		t.Fatalf("expected no bound program after a parse error")
	}

	res = compile("int32 f() { return 1; }")
	if !res.Complete() {
		t.Fatalf("expected a complete result, got %v", res.Diagnostics)
	}
	if len(res.Graphs) != 1 {
		t.Fatalf("expected one graph, got %d", len(res.Graphs))
	}
}

func TestCompileRecoversBetweenStatements(t *testing.T) {
	res := compile("int32 a = ;\nint32 b = 2;\nint32 c = * ;\n")
	if res.Stage != diag.StageParser {
		t.Fatalf("expected to stop at the parser, stopped at %s", res.Stage)
	}
	if len(res.Diagnostics) != 2 {
		t.Fatalf("expected two parser diagnostics, got %v", res.Diagnostics)
	}
	if res.Diagnostics[0].Span.Line != 1 || res.Diagnostics[1].Span.Line != 3 {
		t.Fatalf("expected diagnostics on lines 1 and 3, got %v", res.Diagnostics)
	}

	var names []string
	for _, s := range res.Syntax {
		if d, ok := s.(*ast.Declaration); ok {
			names = append(names, d.Name.Name)
		}
	}
	if len(names) != 1 || names[0] != "b" {
		t.Fatalf("expected the valid declaration to survive, got %v", names)
	}
}

func TestWarningsDoNotGate(t *testing.T) {
	res := compile("void f() { return; f(); }")
	if !res.Complete() {
		t.Fatalf("expected a warning not to stop the pipeline, got %v", res.Diagnostics)
	}
	if len(res.Diagnostics) != 1 || res.Diagnostics[0].Severity != diag.SeverityWarning {
		t.Fatalf("expected one warning, got %v", res.Diagnostics)
	}

	res = compile("void f() { return; f(); }", config.WithWarningsAsErrors(true))
	if res.Complete() || !res.HasErrors() {
		t.Fatalf("expected the promoted warning to fail the compile")
	}
}

func TestSeverityOverride(t *testing.T) {
	res := compile("int32 x = true;", config.WithSeverity("TypeDiffers", diag.SeverityWarning))
	if !res.Complete() {
		t.Fatalf("expected the demoted diagnostic not to gate, got %v", res.Diagnostics)
	}
}

func TestDiagnosticsCarryFilename(t *testing.T) {
	res := compile("int32 x = true;")
	if got := res.Diagnostics[0].Span.Filename; got != "test.em" {
		t.Fatalf("expected filename test.em, got %q", got)
	}
}

func TestVerboseLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf, "ember: ", 0)
	Compile(NewContext("v.em", config.New(config.WithVerbose(true)), logger), "int32 x = 1;")

	if !strings.HasPrefix(buf.String(), "ember: v.em: controlflow done in") {
		t.Fatalf("unexpected log output %q", buf.String())
	}
}

func TestCompileFiles(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.em")
	bad := filepath.Join(dir, "bad.em")
	if err := os.WriteFile(good, []byte("int32 f() { return 1; }"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(bad, []byte("int32 x = true;"), 0o644); err != nil {
		t.Fatal(err)
	}

	results, err := CompileFiles(context.Background(), config.New(config.WithJobs(2)), nil, []string{good, bad})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if results[0].Filename != good || results[1].Filename != bad {
		t.Fatalf("expected results in input order")
	}
	if !results[0].Complete() || results[1].Complete() {
		t.Fatalf("unexpected completion: %v %v", results[0].Diagnostics, results[1].Diagnostics)
	}
}

func TestCompileFilesMissing(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.em")
	_, err := CompileFiles(context.Background(), nil, nil, []string{missing})
	if err == nil {
		t.Fatalf("expected an error for a missing file")
	}
	if !os.IsNotExist(errors.Cause(err)) {
		t.Fatalf("expected the cause to be a not-exist error, got %v", err)
	}
	if !strings.Contains(err.Error(), "missing.em") {
		t.Fatalf("expected the path in the error, got %v", err)
	}
}

func TestCompileFilesCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	path := filepath.Join(t.TempDir(), "a.em")
	if err := os.WriteFile(path, []byte("int32 x = 1;"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := CompileFiles(ctx, nil, nil, []string{path}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
