package lexer

import (
	"bytes"
	"strconv"
	"testing"
)

func tokenize(t *testing.T, input string) []Token {
	t.Helper()

	tokens, diags := Tokenize(input)
	for _, d := range diags {
		t.Errorf("unexpected diagnostic %s", d)
	}
	return tokens
}

func TestTokenize_Basic(t *testing.T) {
	input := `int32 x = 10;`

	tests := []struct {
		expectedType   TokenType
		expectedLexeme string
	}{
		{TYPENAME, "int32"},
		{IDENT, "x"},
		{ASSIGN, "="},
		{INT, "10"},
		{SEMICOLON, ";"},
	}

	tokens := tokenize(t, input)
	if len(tokens) != len(tests) {
		t.Fatalf("expected %d tokens, got %d", len(tests), len(tokens))
	}

	for i, tt := range tests {
		tok := tokens[i]
		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%q, got=%q",
				i, tt.expectedType, tok.Type)
		}
		if tok.Lexeme != tt.expectedLexeme {
			t.Fatalf("tests[%d] - lexeme wrong. expected=%q, got=%q",
				i, tt.expectedLexeme, tok.Lexeme)
		}
	}
}

func TestTokenize_Operators(t *testing.T) {
	input := `= == ! != < <= > >= & && || + - * / ( ) { } [ ] , ;`

	expected := []TokenType{
		ASSIGN, EQ, BANG, NOT_EQ, LT, LE, GT, GE, AMPERSAND, AND, OR,
		PLUS, MINUS, ASTERISK, SLASH,
		LPAREN, RPAREN, LBRACE, RBRACE, LBRACKET, RBRACKET, COMMA, SEMICOLON,
	}

	tokens := tokenize(t, input)
	if len(tokens) != len(expected) {
		t.Fatalf("expected %d tokens, got %d", len(expected), len(tokens))
	}
	for i, typ := range expected {
		if tokens[i].Type != typ {
			t.Fatalf("step %d - expected token %q, got %q", i, typ, tokens[i].Type)
		}
	}
}

func TestTokenize_KeywordTables(t *testing.T) {
	input := `return if else true false as default extern export void ptrsize auto let uint16 float16 foo _bar9`

	expected := []TokenType{
		RETURN, IF, ELSE, TRUE, FALSE, AS, DEFAULT,
		EXTERN, EXPORT,
		TYPENAME, TYPENAME, TYPENAME, TYPENAME, TYPENAME, TYPENAME,
		IDENT, IDENT,
	}

	tokens := tokenize(t, input)
	if len(tokens) != len(expected) {
		t.Fatalf("expected %d tokens, got %d", len(expected), len(tokens))
	}
	for i, typ := range expected {
		if tokens[i].Type != typ {
			t.Fatalf("step %d (%s) - expected token %q, got %q", i, tokens[i].Lexeme, typ, tokens[i].Type)
		}
	}
	if tokens[3].Value != true || tokens[4].Value != false {
		t.Fatalf("expected boolean values on true/false, got %v and %v", tokens[3].Value, tokens[4].Value)
	}
}

func TestTokenize_OnlyTriviaYieldsNothing(t *testing.T) {
	inputs := []string{
		"",
		"   \t\r\n  ",
		"# a line comment",
		"# one\n# two\n",
		"#> block\ncomment <#",
		"  #> a <# # b\n\t#>\n\n<#  ",
	}

	for _, input := range inputs {
		tokens, diags := Tokenize(input)
		if len(tokens) != 0 {
			t.Fatalf("%q: expected no tokens, got %d", input, len(tokens))
		}
		if len(diags) != 0 {
			t.Fatalf("%q: expected no diagnostics, got %d", input, len(diags))
		}
	}
}

func TestTokenize_IntegerRoundTrip(t *testing.T) {
	for _, lit := range []string{"0", "7", "42", "4294967296", "18446744073709551615"} {
		tokens := tokenize(t, lit)
		if len(tokens) != 1 || tokens[0].Type != INT {
			t.Fatalf("%s: expected one INT token, got %v", lit, tokens)
		}
		want, _ := strconv.ParseUint(lit, 10, 64)
		if got, ok := tokens[0].Value.(uint64); !ok || got != want {
			t.Fatalf("%s: expected value %d, got %v", lit, want, tokens[0].Value)
		}
	}
}

func TestTokenize_FloatRoundTrip(t *testing.T) {
	for _, lit := range []string{"0.5", "3.25", "10.0", "123.456"} {
		tokens := tokenize(t, lit)
		if len(tokens) != 1 || tokens[0].Type != FLOAT {
			t.Fatalf("%s: expected one FLOAT token, got %v", lit, tokens)
		}
		want, _ := strconv.ParseFloat(lit, 64)
		if got, ok := tokens[0].Value.(float64); !ok || got != want {
			t.Fatalf("%s: expected value %v, got %v", lit, want, tokens[0].Value)
		}
	}
}

func TestTokenize_EscapeDecoding(t *testing.T) {
	tests := []struct {
		input string
		want  []byte
	}{
		{`"a\tb"`, []byte{0x61, 0x09, 0x62}},
		{`"\0\t\n\r\e\'\"\\"`, []byte{0x00, 0x09, 0x0A, 0x0D, 0x1B, 0x27, 0x22, 0x5C}},
		{`""`, []byte{}},
	}

	for _, tt := range tests {
		tokens := tokenize(t, tt.input)
		if len(tokens) != 1 || tokens[0].Type != STRING {
			t.Fatalf("%s: expected one STRING token", tt.input)
		}
		got, _ := tokens[0].Value.([]byte)
		if !bytes.Equal(got, tt.want) {
			t.Fatalf("%s: expected bytes %v, got %v", tt.input, tt.want, got)
		}
	}
}

func TestTokenize_CharLiteral(t *testing.T) {
	tokens := tokenize(t, `'a' '\n'`)
	if len(tokens) != 2 {
		t.Fatalf("expected 2 tokens, got %d", len(tokens))
	}
	if tokens[0].Type != CHAR || tokens[0].Value != byte('a') {
		t.Fatalf("expected CHAR 'a', got %s %v", tokens[0].Type, tokens[0].Value)
	}
	if tokens[1].Value != byte('\n') {
		t.Fatalf("expected CHAR newline, got %v", tokens[1].Value)
	}
}

func TestTokenize_Spans(t *testing.T) {
	tokens := tokenize(t, "int32 a\n  = 1;")

	b := tokens[2]
	if b.Type != ASSIGN {
		t.Fatalf("expected '=', got %q", b.Type)
	}
	if b.Span.Line != 2 || b.Span.Column != 3 {
		t.Fatalf("expected line=2 column=3, got line=%d column=%d", b.Span.Line, b.Span.Column)
	}
	if b.Span.Start != 10 || b.Span.End != 11 {
		t.Fatalf("expected offsets [10, 11), got [%d, %d)", b.Span.Start, b.Span.End)
	}
}

func TestQuote(t *testing.T) {
	if got := Quote([]byte{'a', 0x09, '"'}); got != `"a\t\""` {
		t.Fatalf("unexpected quoting %s", got)
	}
}
