package diag

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

const (
	ansiReset  = "\x1b[0m"
	ansiBold   = "\x1b[1m"
	ansiRed    = "\x1b[31m"
	ansiYellow = "\x1b[33m"
	ansiBlue   = "\x1b[34m"
)

// Formatter prints diagnostics with a source excerpt and a caret/tilde
// underline spanning [Start, End).
type Formatter struct {
	w           io.Writer
	color       bool
	sourceCache map[string]string // Cache of source files by filename
}

// FormatterOption configures a Formatter.
type FormatterOption func(*Formatter)

// WithColor enables ANSI colouring of the severity and underline.
func WithColor(on bool) FormatterOption {
	return func(f *Formatter) {
		f.color = on
	}
}

// NewFormatter creates a new diagnostic formatter writing to w.
func NewFormatter(w io.Writer, opts ...FormatterOption) *Formatter {
	f := &Formatter{
		w:           w,
		sourceCache: make(map[string]string),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// AddSource registers the text of filename so it does not have to be read from disk.
func (f *Formatter) AddSource(filename, src string) {
	f.sourceCache[filename] = src
}

// LoadSource loads source code for a file (cached).
func (f *Formatter) LoadSource(filename string) (string, error) {
	if src, ok := f.sourceCache[filename]; ok {
		return src, nil
	}
	if filename == "" {
		return "", nil
	}
	data, err := os.ReadFile(filename)
	if err != nil {
		return "", err
	}
	src := string(data)
	f.sourceCache[filename] = src
	return src, nil
}

// FormatAll prints every diagnostic, ordered by position.
func (f *Formatter) FormatAll(ds []Diagnostic) {
	sorted := make([]Diagnostic, len(ds))
	copy(sorted, ds)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i].Span, sorted[j].Span
		if a.Filename != b.Filename {
			return a.Filename < b.Filename
		}
		return a.Start < b.Start
	})
	for _, d := range sorted {
		f.Format(d)
	}
}

// Format prints a single diagnostic.
func (f *Formatter) Format(d Diagnostic) {
	f.printHeader(d)

	if !d.Span.IsValid() {
		return
	}
	fmt.Fprintf(f.w, "  --> %s\n", d.Span)

	src, err := f.LoadSource(d.Span.Filename)
	if err != nil || src == "" {
		return
	}
	lines := strings.Split(src, "\n")
	if d.Span.Line > len(lines) {
		return
	}
	line := strings.TrimRight(lines[d.Span.Line-1], "\r")
	width := len(fmt.Sprintf("%d", d.Span.Line))
	gutter := strings.Repeat(" ", width)

	fmt.Fprintf(f.w, " %s |\n", gutter)
	fmt.Fprintf(f.w, " %*d | %s\n", width, d.Span.Line, line)
	fmt.Fprintf(f.w, " %s | %s\n", gutter, f.paint(d.Severity, underline(line, d.Span)))
}

// printHeader prints the header (error[parser:0]: message).
func (f *Formatter) printHeader(d Diagnostic) {
	sev := string(d.Severity)
	if sev == "" {
		sev = string(SeverityError)
	}
	fmt.Fprintf(f.w, "%s[%s:%d]: %s\n", f.paint(d.Severity, sev), d.Stage, d.Code, d.Message())
}

func (f *Formatter) paint(sev Severity, s string) string {
	if !f.color {
		return s
	}
	color := ansiBlue
	switch sev {
	case SeverityError:
		color = ansiRed
	case SeverityWarning:
		color = ansiYellow
	}
	return ansiBold + color + s + ansiReset
}

// underline builds "^~~~" under the columns covered by span. Spans that run
// past the end of the line are clipped to it.
func underline(line string, span Span) string {
	start := span.Column - 1
	if start < 0 {
		start = 0
	}
	if start > len(line) {
		start = len(line)
	}
	n := span.End - span.Start
	if n < 1 {
		n = 1
	}
	if start+n > len(line) {
		n = max(1, len(line)-start)
	}

	var sb strings.Builder
	for i := 0; i < start; i++ {
		if line[i] == '\t' {
			sb.WriteByte('\t')
		} else {
			sb.WriteByte(' ')
		}
	}
	sb.WriteByte('^')
	sb.WriteString(strings.Repeat("~", n-1))
	return sb.String()
}
