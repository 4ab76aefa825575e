package main

import (
	"flag"
	"fmt"
	"os"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: ember <command> [options]\n")
		fmt.Fprintf(os.Stderr, "\nCommands:\n")
		fmt.Fprintf(os.Stderr, "  check <files>    Check Ember source files\n")
		fmt.Fprintf(os.Stderr, "  tokens <file>    Print the token stream of a file\n")
		fmt.Fprintf(os.Stderr, "  watch <files>    Re-check files whenever they change\n")
		fmt.Fprintf(os.Stderr, "  repl             Check declarations interactively\n")
		fmt.Fprintf(os.Stderr, "  lsp              Run the language server on stdio\n")
		fmt.Fprintf(os.Stderr, "  version          Print the toolchain version\n")
		fmt.Fprintf(os.Stderr, "\nRun 'ember <command> -h' for command options.\n")
	}

	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(2)
	}

	command := flag.Arg(0)
	args := flag.Args()[1:]

	switch command {
	case "check":
		os.Exit(runCheck(args))
	case "tokens":
		os.Exit(runTokens(args))
	case "watch":
		os.Exit(runWatch(args))
	case "repl":
		os.Exit(runRepl(args))
	case "lsp":
		os.Exit(runLSP(args))
	case "version":
		os.Exit(runVersion(args))
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		flag.Usage()
		os.Exit(2)
	}
}
