package diag

import "fmt"

// Stage identifies which compiler phase produced the diagnostic.
type Stage int

const (
	StageLexer Stage = iota
	StageParser
	StageBinder
	StageTypeChecker
	StageControlFlow
)

var stageNames = [...]string{
	StageLexer:       "lexer",
	StageParser:      "parser",
	StageBinder:      "binder",
	StageTypeChecker: "typechecker",
	StageControlFlow: "controlflow",
}

func (s Stage) String() string {
	if int(s) < len(stageNames) {
		return stageNames[s]
	}
	return fmt.Sprintf("stage(%d)", int(s))
}

// Severity captures how impactful the diagnostic is.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// ParseSeverity maps a user-supplied name onto a Severity.
func ParseSeverity(s string) (Severity, bool) {
	switch Severity(s) {
	case SeverityInfo, SeverityWarning, SeverityError:
		return Severity(s), true
	}
	return "", false
}

// Span represents a location in source code.
// Start and End are byte offsets into the source, End is exclusive.
// Line and Column are 1-based and describe Start.
type Span struct {
	Filename string
	Line     int
	Column   int
	Start    int
	End      int
}

// String returns a human-readable representation of the span.
func (s Span) String() string {
	if s.Filename != "" {
		return fmt.Sprintf("%s:%d:%d", s.Filename, s.Line, s.Column)
	}
	return fmt.Sprintf("%d:%d", s.Line, s.Column)
}

// IsValid returns true if the span has valid location information.
func (s Span) IsValid() bool {
	return s.Line > 0 && s.Column > 0
}

// To returns a span covering s through end. The line and column of s are kept.
func (s Span) To(end Span) Span {
	if !s.IsValid() {
		return end
	}
	if end.End > s.End {
		s.End = end.End
	}
	return s
}

// Diagnostic is a compiler diagnostic surfaced to end-users.
//
// Code is the ordinal of the diagnostic kind within its Stage and is the
// stable wire code. ID is the symbolic message id used to look up the text.
type Diagnostic struct {
	Stage    Stage
	Code     int
	ID       string
	Severity Severity
	Args     []any
	Span     Span
}

// Is reports whether d was produced for kind k.
func (d Diagnostic) Is(k Kind) bool {
	return d.Stage == k.Stage && d.Code == k.Code
}

// Message renders the diagnostic text from the default message table.
func (d Diagnostic) Message() string {
	tmpl, ok := Messages[d.ID]
	if !ok {
		if len(d.Args) == 0 {
			return d.ID
		}
		return fmt.Sprintf("%s %v", d.ID, d.Args)
	}
	return fmt.Sprintf(tmpl, d.Args...)
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s[%s:%d]: %s", d.Span, d.Severity, d.Stage, d.Code, d.Message())
}
