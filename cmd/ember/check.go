package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/pkg/errors"

	"github.com/ember-lang/ember/internal/compiler"
	"github.com/ember-lang/ember/internal/config"
	"github.com/ember-lang/ember/internal/diag"
	"github.com/ember-lang/ember/internal/lexer"
)

// overrides collects repeated -W id=severity flags.
type overrides []string

func (o *overrides) String() string     { return strings.Join(*o, ",") }
func (o *overrides) Set(s string) error { *o = append(*o, s); return nil }

// checkFlags registers the flags shared by check and watch.
type checkFlags struct {
	verbose  *bool
	jobs     *int
	werror   *bool
	requires *string
	severity overrides
}

func newCheckFlags(fs *flag.FlagSet) *checkFlags {
	cf := &checkFlags{
		verbose:  fs.Bool("v", false, "log per-file timing"),
		jobs:     fs.Int("j", runtime.NumCPU(), "number of files checked concurrently"),
		werror:   fs.Bool("Werror", false, "treat warnings as errors"),
		requires: fs.String("requires", "", "toolchain version constraint, e.g. \">= 0.3\""),
	}
	fs.Var(&cf.severity, "W", "override a diagnostic severity (id=severity), repeatable")
	return cf
}

// config builds and validates the configuration described by the flags.
func (cf *checkFlags) config() (*config.Config, error) {
	opts := []config.Option{
		config.WithJobs(*cf.jobs),
		config.WithWarningsAsErrors(*cf.werror),
		config.WithRequires(*cf.requires),
		config.WithVerbose(*cf.verbose),
	}
	for _, s := range cf.severity {
		id, sev, err := config.ParseOverride(s)
		if err != nil {
			return nil, errors.Wrap(err, "-W")
		}
		opts = append(opts, config.WithSeverity(id, sev))
	}

	cfg := config.New(opts...)
	if err := cfg.Validate(config.Version); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger(verbose bool) *log.Logger {
	if !verbose {
		return log.New(io.Discard, "", 0)
	}
	return log.New(os.Stderr, "ember: ", 0)
}

func runCheck(args []string) int {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	cf := newCheckFlags(fs)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() == 0 {
		fmt.Fprintf(os.Stderr, "Usage: ember check [options] <files>\n")
		return 2
	}

	cfg, err := cf.config()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ember: %v\n", err)
		return 2
	}
	return checkFiles(context.Background(), cfg, newLogger(cfg.Verbose), fs.Args())
}

// checkFiles compiles paths, prints their diagnostics and returns the exit
// status: 1 when any file has errors.
func checkFiles(ctx context.Context, cfg *config.Config, logger *log.Logger, paths []string) int {
	results, err := compiler.CompileFiles(ctx, cfg, logger, paths)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ember: %v\n", err)
		return 1
	}

	f := diag.NewFormatter(os.Stderr, diag.WithColor(isTerminal(os.Stderr)))
	status := 0
	for _, res := range results {
		f.FormatAll(res.Diagnostics)
		if res.HasErrors() {
			status = 1
		}
	}
	return status
}

func runTokens(args []string) int {
	if len(args) != 1 {
		fmt.Fprintf(os.Stderr, "Usage: ember tokens <file>\n")
		return 2
	}
	src, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "ember: %v\n", errors.Wrapf(err, "read %s", args[0]))
		return 1
	}

	tokens, diags := lexer.Tokenize(string(src), lexer.WithFilename(args[0]))
	for _, tok := range tokens {
		fmt.Printf("%d:%d\t%-10s %s\n", tok.Span.Line, tok.Span.Column, tok.Type, tok.Lexeme)
	}
	diag.NewFormatter(os.Stderr, diag.WithColor(isTerminal(os.Stderr))).FormatAll(diags)
	if diag.HasErrors(diags) {
		return 1
	}
	return 0
}

func runVersion(args []string) int {
	fs := flag.NewFlagSet("version", flag.ContinueOnError)
	short := fs.Bool("short", false, "print only major.minor")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	v := semver.MustParse(config.Version)
	if *short {
		fmt.Printf("%d.%d\n", v.Major(), v.Minor())
		return 0
	}
	fmt.Printf("ember %s (%s/%s)\n", v, runtime.GOOS, runtime.GOARCH)
	return 0
}
