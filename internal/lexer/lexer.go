package lexer

import (
	"strconv"
	"strings"

	"github.com/ember-lang/ember/internal/diag"
)

// Option configures a Lexer.
type Option func(*options)

type options struct {
	filename string
	policy   *diag.Policy
}

// WithFilename attributes all emitted spans to the provided filename.
func WithFilename(name string) Option {
	return func(o *options) {
		o.filename = name
	}
}

// WithPolicy applies a severity policy to the reported diagnostics.
func WithPolicy(p *diag.Policy) Option {
	return func(o *options) {
		o.policy = p
	}
}

// Lexer represents the lexer state. It scans bytes left to right with one
// character of lookahead and never stops early on malformed input.
type Lexer struct {
	input     string
	filename  string
	pos       int  // index of the current byte
	ch        byte // current byte (0 = EOF)
	line      int  // current line number (1-based)
	lineStart int  // offset of the first byte of the current line

	diags *diag.Bag
}

// New creates a new lexer for the given input.
func New(input string, opts ...Option) *Lexer {
	cfg := options{}
	for _, opt := range opts {
		opt(&cfg)
	}
	l := &Lexer{
		input:    input,
		filename: cfg.filename,
		pos:      -1,
		line:     1,
		diags:    diag.NewBag(cfg.policy),
	}
	l.read()
	return l
}

// Tokenize scans the whole source and returns its tokens (without the final
// EOF) together with every diagnostic encountered on the way.
func Tokenize(source string, opts ...Option) ([]Token, []diag.Diagnostic) {
	l := New(source, opts...)
	var tokens []Token
	for {
		tok := l.NextToken()
		if tok.Type == EOF {
			break
		}
		tokens = append(tokens, tok)
	}
	return tokens, l.Diagnostics()
}

// Diagnostics returns the diagnostics reported so far.
func (l *Lexer) Diagnostics() []diag.Diagnostic {
	return l.diags.Diagnostics()
}

// read advances the lexer to the next character, keeping line tracking
// incremental: a newline left behind starts a new line.
func (l *Lexer) read() {
	if l.pos >= 0 && l.pos < len(l.input) && l.input[l.pos] == '\n' {
		l.line++
		l.lineStart = l.pos + 1
	}
	if l.pos < len(l.input) {
		l.pos++
	}
	if l.pos >= len(l.input) {
		l.ch = 0
		return
	}
	l.ch = l.input[l.pos]
}

// peek returns the character after the current one without advancing.
func (l *Lexer) peek() byte {
	if l.pos+1 >= len(l.input) {
		return 0
	}
	return l.input[l.pos+1]
}

func (l *Lexer) atEOF() bool {
	return l.pos >= len(l.input)
}

// mark captures the position of the character about to be tokenized.
type mark struct {
	line, column, pos int
}

func (l *Lexer) mark() mark {
	return mark{line: l.line, column: l.pos - l.lineStart + 1, pos: l.pos}
}

func (l *Lexer) spanFrom(m mark) Span {
	return Span{
		Filename: l.filename,
		Line:     m.line,
		Column:   m.column,
		Start:    m.pos,
		End:      l.pos,
	}
}

func (l *Lexer) makeToken(tt TokenType, m mark, value any) Token {
	return Token{
		Type:   tt,
		Lexeme: l.input[m.pos:l.pos],
		Span:   l.spanFrom(m),
		Value:  value,
	}
}

// single consumes one character and produces a token of type tt.
func (l *Lexer) single(tt TokenType) Token {
	m := l.mark()
	l.read()
	return l.makeToken(tt, m, nil)
}

// pair produces two if the next character is second, otherwise one.
func (l *Lexer) pair(second byte, two, one TokenType) Token {
	m := l.mark()
	l.read()
	if l.ch == second {
		l.read()
		return l.makeToken(two, m, nil)
	}
	return l.makeToken(one, m, nil)
}

// skipTrivia skips whitespace and comments.
func (l *Lexer) skipTrivia() {
	for !l.atEOF() {
		switch l.ch {
		case ' ', '\t', '\r', '\n':
			l.read()
		case '#':
			if l.peek() == '>' {
				l.skipBlockComment()
			} else {
				l.skipLineComment()
			}
		default:
			return
		}
	}
}

func (l *Lexer) skipLineComment() {
	for !l.atEOF() && l.ch != '\n' {
		l.read()
	}
}

// skipBlockComment skips "#> ... <#". An unterminated comment is reported at
// its opening and swallows the rest of the file.
func (l *Lexer) skipBlockComment() {
	m := l.mark()
	l.read() // '#'
	l.read() // '>'
	open := l.spanFrom(m)
	for !l.atEOF() {
		if l.ch == '<' && l.peek() == '#' {
			l.read()
			l.read()
			return
		}
		l.read()
	}
	l.diags.Report(diag.UnterminatedBlockComment, open)
}

// NextToken returns the next token from the input.
func (l *Lexer) NextToken() Token {
	for {
		l.skipTrivia()
		if l.atEOF() {
			m := l.mark()
			return l.makeToken(EOF, m, nil)
		}

		switch l.ch {
		case '(':
			return l.single(LPAREN)
		case ')':
			return l.single(RPAREN)
		case '{':
			return l.single(LBRACE)
		case '}':
			return l.single(RBRACE)
		case '[':
			return l.single(LBRACKET)
		case ']':
			return l.single(RBRACKET)
		case ',':
			return l.single(COMMA)
		case ';':
			return l.single(SEMICOLON)
		case '+':
			return l.single(PLUS)
		case '-':
			return l.single(MINUS)
		case '*':
			return l.single(ASTERISK)
		case '/':
			return l.single(SLASH)
		case '=':
			return l.pair('=', EQ, ASSIGN)
		case '!':
			return l.pair('=', NOT_EQ, BANG)
		case '<':
			return l.pair('=', LE, LT)
		case '>':
			return l.pair('=', GE, GT)
		case '&':
			return l.pair('&', AND, AMPERSAND)
		case '|':
			if l.peek() == '|' {
				m := l.mark()
				l.read()
				l.read()
				return l.makeToken(OR, m, nil)
			}
		case '"':
			return l.readString()
		case '\'':
			return l.readChar()
		}

		if isLetter(l.ch) {
			return l.readIdentifier()
		}
		if isDigit(l.ch) {
			return l.readNumber()
		}

		m := l.mark()
		l.read()
		l.diags.Report(diag.UnexpectedCharacter, l.spanFrom(m), string(l.input[m.pos]))
	}
}

// readIdentifier reads an identifier, keyword, modifier or type name.
func (l *Lexer) readIdentifier() Token {
	m := l.mark()
	for isLetter(l.ch) || isDigit(l.ch) {
		l.read()
	}
	lexeme := l.input[m.pos:l.pos]
	tt := LookupIdent(lexeme)
	var value any
	switch tt {
	case TRUE:
		value = true
	case FALSE:
		value = false
	}
	return l.makeToken(tt, m, value)
}

// readNumber reads a run of digits and dots. No dot makes an integer, exactly
// one dot a float; more than one is reported and yields a float of value 0.
func (l *Lexer) readNumber() Token {
	m := l.mark()
	dots := 0
	for isDigit(l.ch) || (l.ch == '.' && isDigit(l.peek())) {
		if l.ch == '.' {
			dots++
		}
		l.read()
	}
	lexeme := l.input[m.pos:l.pos]

	switch dots {
	case 0:
		v, err := strconv.ParseUint(lexeme, 10, 64)
		if err != nil {
			l.diags.Report(diag.NumberTooLarge, l.spanFrom(m), lexeme)
		}
		return l.makeToken(INT, m, v)
	case 1:
		v, _ := strconv.ParseFloat(lexeme, 64)
		return l.makeToken(FLOAT, m, v)
	default:
		l.diags.Report(diag.MalformedNumber, l.spanFrom(m), lexeme)
		return l.makeToken(FLOAT, m, float64(0))
	}
}

// scanQuoted consumes a literal delimited by quote starting at the current
// character. It returns the raw body and whether the closing quote was found.
// Literals end at the line end, so an unterminated one never eats the file.
func (l *Lexer) scanQuoted(quote byte) (body string, terminated bool) {
	l.read() // opening quote
	start := l.pos
	for !l.atEOF() && l.ch != '\n' {
		if l.ch == quote {
			body = l.input[start:l.pos]
			l.read()
			return body, true
		}
		if l.ch == '\\' && l.peek() != '\n' && l.peek() != 0 {
			l.read()
		}
		l.read()
	}
	return l.input[start:l.pos], false
}

// decode runs the escape decoder over body, reporting unknown escapes at
// their position. open marks the opening quote.
func (l *Lexer) decode(body string, open mark) []byte {
	return unescape(body, func(offset int, name byte) {
		start := open.pos + 1 + offset
		span := Span{
			Filename: l.filename,
			Line:     open.line,
			Column:   open.column + 1 + offset,
			Start:    start,
			End:      start + 2,
		}
		l.diags.Report(diag.UnknownEscapeSequence, span, rune(name))
	})
}

func (l *Lexer) readString() Token {
	m := l.mark()
	open := Span{Filename: l.filename, Line: m.line, Column: m.column, Start: m.pos, End: m.pos + 1}
	body, ok := l.scanQuoted('"')
	if !ok {
		l.diags.Report(diag.UnterminatedString, open)
	}
	return l.makeToken(STRING, m, l.decode(body, m))
}

func (l *Lexer) readChar() Token {
	m := l.mark()
	open := Span{Filename: l.filename, Line: m.line, Column: m.column, Start: m.pos, End: m.pos + 1}
	body, ok := l.scanQuoted('\'')
	if !ok {
		l.diags.Report(diag.UnterminatedChar, open)
		return l.makeToken(CHAR, m, byte(0))
	}

	decoded := l.decode(body, m)
	switch {
	case len(decoded) == 0:
		l.diags.Report(diag.EmptyCharLiteral, l.spanFrom(m))
		return l.makeToken(CHAR, m, byte(0))
	case len(decoded) > 1:
		l.diags.Report(diag.CharLiteralTooLong, l.spanFrom(m), len(decoded))
	}
	return l.makeToken(CHAR, m, decoded[0])
}

func isLetter(ch byte) bool {
	return ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z' || ch == '_'
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

// Quote renders decoded literal bytes back into source form, used when
// printing tokens.
func Quote(b []byte) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for _, c := range b {
		switch c {
		case 0x00:
			sb.WriteString(`\0`)
		case 0x09:
			sb.WriteString(`\t`)
		case 0x0A:
			sb.WriteString(`\n`)
		case 0x0D:
			sb.WriteString(`\r`)
		case 0x1B:
			sb.WriteString(`\e`)
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		default:
			sb.WriteByte(c)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}
