// Package compiler drives the front end: lexing, parsing, binding, type
// checking and control-flow analysis, stopping after the first stage that
// reports an error.
package compiler

import (
	"io"
	"log"
	"time"

	"github.com/ember-lang/ember/internal/ast"
	"github.com/ember-lang/ember/internal/binder"
	"github.com/ember-lang/ember/internal/bound"
	"github.com/ember-lang/ember/internal/check"
	"github.com/ember-lang/ember/internal/config"
	"github.com/ember-lang/ember/internal/diag"
	"github.com/ember-lang/ember/internal/flow"
	"github.com/ember-lang/ember/internal/lexer"
	"github.com/ember-lang/ember/internal/parser"
)

// Context carries what one compilation needs besides the source text.
type Context struct {
	Filename string
	Config   *config.Config
	Logger   *log.Logger // nil discards
}

// NewContext returns a context for filename. A nil cfg means defaults.
func NewContext(filename string, cfg *config.Config, logger *log.Logger) *Context {
	if cfg == nil {
		cfg = config.New()
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Context{Filename: filename, Config: cfg, Logger: logger}
}

// Result holds every intermediate representation produced by a compile.
// Fields of stages that did not run are nil.
type Result struct {
	Filename    string
	Tokens      []lexer.Token
	Syntax      []ast.Stmt
	Program     *bound.Program
	Graphs      []*flow.Graph
	Diagnostics []diag.Diagnostic
	// Stage is the last stage that ran.
	Stage diag.Stage
}

// HasErrors reports whether any error-severity diagnostic was produced.
func (r *Result) HasErrors() bool {
	return diag.HasErrors(r.Diagnostics)
}

// Complete reports whether every stage ran without errors, so the program
// can be handed to a backend.
func (r *Result) Complete() bool {
	return r.Stage == diag.StageControlFlow && !r.HasErrors()
}

// gate records the diagnostics of stage and reports whether the next stage
// may run.
func (r *Result) gate(stage diag.Stage, ds []diag.Diagnostic) bool {
	r.Stage = stage
	r.Diagnostics = append(r.Diagnostics, ds...)
	return !r.HasErrors()
}

// Compile runs the pipeline over source.
func Compile(cctx *Context, source string) *Result {
	if cctx == nil {
		cctx = NewContext("", nil, nil)
	}
	logger := cctx.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	policy := cctx.Config.Policy()
	start := time.Now()

	res := &Result{Filename: cctx.Filename}
	defer func() {
		if cctx.Config != nil && cctx.Config.Verbose {
			logger.Printf("%s: %s done in %v, %d diagnostic(s)", displayName(cctx.Filename), res.Stage, time.Since(start), len(res.Diagnostics))
		}
	}()

	tokens, ds := lexer.Tokenize(source, lexer.WithFilename(cctx.Filename), lexer.WithPolicy(policy))
	res.Tokens = tokens
	if !res.gate(diag.StageLexer, ds) {
		return res
	}

	syntax, ds := parser.Parse(tokens, parser.WithFilename(cctx.Filename), parser.WithPolicy(policy))
	res.Syntax = syntax
	if !res.gate(diag.StageParser, ds) {
		return res
	}

	prog, ds := binder.Bind(syntax, binder.WithPolicy(policy))
	res.Program = prog
	if !res.gate(diag.StageBinder, ds) {
		return res
	}

	if !res.gate(diag.StageTypeChecker, check.Check(prog, check.WithPolicy(policy))) {
		return res
	}

	res.Graphs = flow.Build(prog)
	res.gate(diag.StageControlFlow, flow.Analyze(res.Graphs, flow.WithPolicy(policy)))
	return res
}

func displayName(filename string) string {
	if filename == "" {
		return "<input>"
	}
	return filename
}
