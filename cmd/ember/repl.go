package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/ember-lang/ember/internal/compiler"
	"github.com/ember-lang/ember/internal/config"
	"github.com/ember-lang/ember/internal/diag"
	"github.com/ember-lang/ember/internal/lexer"
)

const (
	historyFile = ".ember_history"
	replName    = "<repl>"
	promptMain  = "ember> "
	promptCont  = "  ...> "
)

// session is the source accepted so far. Every entry is checked together
// with it and kept only when it introduces no errors.
type session struct {
	cfg *config.Config
	src strings.Builder
}

// submit checks entry appended to the session and returns the result
// along with the combined source it was checked against.
func (s *session) submit(entry string) (*compiler.Result, string) {
	candidate := s.src.String() + entry + "\n"
	res := compiler.Compile(compiler.NewContext(replName, s.cfg, nil), candidate)
	if !res.HasErrors() {
		s.src.WriteString(entry)
		s.src.WriteByte('\n')
	}
	return res, candidate
}

func runRepl(args []string) int {
	if len(args) != 0 {
		fmt.Fprintf(os.Stderr, "Usage: ember repl\n")
		return 2
	}

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	fmt.Printf("ember %s. Type :quit to exit, :source to show the session.\n", config.Version)

	s := &session{cfg: config.New()}
	color := isTerminal(os.Stdout)
	for {
		entry, ok := readEntry(ln)
		if !ok {
			fmt.Println()
			return 0
		}

		switch strings.TrimSpace(entry) {
		case "":
			continue
		case ":quit":
			return 0
		case ":source":
			fmt.Print(s.src.String())
			continue
		case ":reset":
			s.src.Reset()
			continue
		}

		res, candidate := s.submit(entry)
		f := diag.NewFormatter(os.Stdout, diag.WithColor(color))
		f.AddSource(replName, candidate)
		f.FormatAll(res.Diagnostics)
		ln.AppendHistory(strings.ReplaceAll(entry, "\n", " "))
	}
}

// readEntry reads lines until every opened brace is closed.
func readEntry(ln *liner.State) (string, bool) {
	var b strings.Builder
	for {
		prompt := promptMain
		if b.Len() > 0 {
			prompt = promptCont
		}
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			return "", false
		}
		if err != nil {
			return "", true
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		if openBraces(b.String()) <= 0 {
			return b.String(), true
		}
	}
}

// openBraces returns the number of '{' not yet matched by '}'.
func openBraces(src string) int {
	tokens, _ := lexer.Tokenize(src)
	depth := 0
	for _, tok := range tokens {
		switch tok.Type {
		case lexer.LBRACE:
			depth++
		case lexer.RBRACE:
			depth--
		}
	}
	return depth
}
