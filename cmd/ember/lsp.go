package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/ember-lang/ember/internal/lsp"
)

// runLSP serves the language server on stdin and stdout. Logging goes to
// stderr, which editors show in their output panel.
func runLSP(args []string) int {
	fs := flag.NewFlagSet("lsp", flag.ContinueOnError)
	cf := newCheckFlags(fs)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	cfg, err := cf.config()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ember: %v\n", err)
		return 2
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	srv := lsp.NewServer(os.Stdin, os.Stdout, cfg, newLogger(true))
	if err := srv.Run(ctx); err != nil && ctx.Err() == nil {
		fmt.Fprintf(os.Stderr, "ember: server error: %v\n", err)
		return 1
	}
	return 0
}
