package lexer

import "github.com/ember-lang/ember/internal/diag"

// TokenType represents the type of a token
type TokenType string

// Span represents the source location of a token
type Span = diag.Span

// Token represents a lexical token
type Token struct {
	Type   TokenType
	Lexeme string // exact text from source
	Span   Span   // source location information
	// Value holds the decoded literal: uint64 for INT, float64 for FLOAT,
	// byte for CHAR, []byte for STRING, bool for TRUE/FALSE, nil otherwise.
	Value any
}

// Token type constants
const (
	// Special tokens
	EOF TokenType = "EOF"

	// Identifiers and literals
	IDENT  TokenType = "IDENT"
	INT    TokenType = "INT"
	FLOAT  TokenType = "FLOAT"
	CHAR   TokenType = "CHAR"
	STRING TokenType = "STRING"

	// Operators
	ASSIGN    TokenType = "="
	PLUS      TokenType = "+"
	MINUS     TokenType = "-"
	BANG      TokenType = "!"
	AMPERSAND TokenType = "&"
	ASTERISK  TokenType = "*"
	SLASH     TokenType = "/"
	AND       TokenType = "&&"
	OR        TokenType = "||"

	LT     TokenType = "<"
	GT     TokenType = ">"
	EQ     TokenType = "=="
	NOT_EQ TokenType = "!="
	LE     TokenType = "<="
	GE     TokenType = ">="

	// Delimiters
	COMMA     TokenType = ","
	SEMICOLON TokenType = ";"

	LPAREN   TokenType = "("
	RPAREN   TokenType = ")"
	LBRACE   TokenType = "{"
	RBRACE   TokenType = "}"
	LBRACKET TokenType = "["
	RBRACKET TokenType = "]"

	// Keywords
	RETURN  TokenType = "RETURN"
	IF      TokenType = "IF"
	ELSE    TokenType = "ELSE"
	TRUE    TokenType = "TRUE"
	FALSE   TokenType = "FALSE"
	AS      TokenType = "AS"
	DEFAULT TokenType = "DEFAULT"

	// Modifiers
	EXTERN TokenType = "EXTERN"
	EXPORT TokenType = "EXPORT"

	// TYPENAME is a primitive type keyword; the lexeme names the primitive.
	TYPENAME TokenType = "TYPENAME"
)

var keywords = map[string]TokenType{
	"return":  RETURN,
	"if":      IF,
	"else":    ELSE,
	"true":    TRUE,
	"false":   FALSE,
	"as":      AS,
	"default": DEFAULT,
}

var modifiers = map[string]TokenType{
	"extern": EXTERN,
	"export": EXPORT,
}

// typeNames lists the primitive type keywords. "let" is an alias of "auto".
var typeNames = map[string]bool{
	"void":    true,
	"ptrsize": true,
	"bool":    true,
	"char":    true,
	"int8":    true,
	"int16":   true,
	"int32":   true,
	"int64":   true,
	"uint8":   true,
	"uint16":  true,
	"uint32":  true,
	"uint64":  true,
	"float16": true,
	"float32": true,
	"float64": true,
	"auto":    true,
	"let":     true,
}

// LookupIdent classifies an identifier as keyword, modifier, type name or plain identifier.
func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	if tok, ok := modifiers[ident]; ok {
		return tok
	}
	if typeNames[ident] {
		return TYPENAME
	}
	return IDENT
}

// IsModifier reports whether tt is a declaration modifier.
func IsModifier(tt TokenType) bool {
	return tt == EXTERN || tt == EXPORT
}

// Describe returns a short human-readable name for a token, used in diagnostics.
func (t Token) Describe() string {
	switch t.Type {
	case EOF:
		return "end of file"
	case IDENT:
		return "identifier '" + t.Lexeme + "'"
	case INT, FLOAT, CHAR, STRING:
		return "literal " + t.Lexeme
	}
	return "'" + t.Lexeme + "'"
}
