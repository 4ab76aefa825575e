package lexer

import (
	"bytes"
	"testing"

	"github.com/ember-lang/ember/internal/diag"
)

func TestLexerErrors_UnknownEscape(t *testing.T) {
	tokens, diags := Tokenize(`"\q"`)

	if len(diags) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", len(diags))
	}
	d := diags[0]
	if !d.Is(diag.UnknownEscapeSequence) {
		t.Fatalf("expected UnknownEscapeSequence, got %s", d.ID)
	}
	if d.Span.Column != 2 || d.Span.Start != 1 || d.Span.End != 3 {
		t.Fatalf("expected span at the escape, got %+v", d.Span)
	}

	if len(tokens) != 1 {
		t.Fatalf("expected scanning to continue with 1 token, got %d", len(tokens))
	}
	if got := tokens[0].Value.([]byte); !bytes.Equal(got, []byte{0}) {
		t.Fatalf("expected unknown escape to decode to 0, got %v", got)
	}
}

func TestLexerErrors_UnterminatedQuotes(t *testing.T) {
	tests := []struct {
		input string
		kind  diag.Kind
	}{
		{`x = "hello`, diag.UnterminatedString},
		{"x = \"hello\nworld;", diag.UnterminatedString},
		{`x = 'a`, diag.UnterminatedChar},
	}

	for _, tt := range tests {
		_, diags := Tokenize(tt.input)
		if len(diags) != 1 {
			t.Fatalf("%q: expected 1 diagnostic, got %d", tt.input, len(diags))
		}
		d := diags[0]
		if !d.Is(tt.kind) {
			t.Fatalf("%q: expected %s, got %s", tt.input, tt.kind.ID, d.ID)
		}
		if d.Span.Line != 1 || d.Span.Column != 5 || d.Span.Start != 4 || d.Span.End != 5 {
			t.Fatalf("%q: expected the opening quote's span, got %+v", tt.input, d.Span)
		}
	}
}

func TestLexerErrors_CharLength(t *testing.T) {
	tests := []struct {
		input string
		kind  diag.Kind
	}{
		{`''`, diag.EmptyCharLiteral},
		{`'ab'`, diag.CharLiteralTooLong},
		{`'\n\t'`, diag.CharLiteralTooLong},
	}

	for _, tt := range tests {
		tokens, diags := Tokenize(tt.input)
		if len(diags) != 1 || !diags[0].Is(tt.kind) {
			t.Fatalf("%q: expected exactly one %s, got %v", tt.input, tt.kind.ID, diags)
		}
		if len(tokens) != 1 || tokens[0].Type != CHAR {
			t.Fatalf("%q: expected a CHAR token to still be produced", tt.input)
		}
	}
}

func TestLexerErrors_MalformedNumberContinues(t *testing.T) {
	tokens, diags := Tokenize("1.2.3 + 4")

	if len(diags) != 1 || !diags[0].Is(diag.MalformedNumber) {
		t.Fatalf("expected one MalformedNumber, got %v", diags)
	}
	if len(tokens) != 3 {
		t.Fatalf("expected scanning to continue (3 tokens), got %d", len(tokens))
	}
	if tokens[0].Type != FLOAT || tokens[2].Value != uint64(4) {
		t.Fatalf("unexpected tokens %v", tokens)
	}
}

func TestLexerErrors_UnterminatedBlockComment(t *testing.T) {
	tokens, diags := Tokenize("x #> never closed\n y z")

	if len(tokens) != 1 || tokens[0].Lexeme != "x" {
		t.Fatalf("expected only the token before the comment, got %v", tokens)
	}
	if len(diags) != 1 || !diags[0].Is(diag.UnterminatedBlockComment) {
		t.Fatalf("expected one UnterminatedBlockComment, got %v", diags)
	}
	if diags[0].Span.Column != 3 || diags[0].Span.End-diags[0].Span.Start != 2 {
		t.Fatalf("expected the opening span, got %+v", diags[0].Span)
	}
}

func TestLexerErrors_UnexpectedCharacter(t *testing.T) {
	tokens, diags := Tokenize("a @ | b")

	if len(tokens) != 2 {
		t.Fatalf("expected 2 tokens, got %d", len(tokens))
	}
	if len(diags) != 2 {
		t.Fatalf("expected 2 diagnostics, got %d", len(diags))
	}
	for _, d := range diags {
		if !d.Is(diag.UnexpectedCharacter) {
			t.Fatalf("expected UnexpectedCharacter, got %s", d.ID)
		}
	}
}

func TestLexerErrors_NumberTooLarge(t *testing.T) {
	_, diags := Tokenize("18446744073709551616")
	if len(diags) != 1 || !diags[0].Is(diag.NumberTooLarge) {
		t.Fatalf("expected NumberTooLarge, got %v", diags)
	}
}
