package parser

import (
	"github.com/ember-lang/ember/internal/ast"
	"github.com/ember-lang/ember/internal/diag"
	"github.com/ember-lang/ember/internal/lexer"
)

type (
	prefixParseFn func() ast.Expr
	infixParseFn  func(ast.Expr) ast.Expr
)

type Option func(*options)

type options struct {
	filename string
	policy   *diag.Policy
}

// WithFilename attributes the synthesized end-of-file span to the provided filename.
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

const (
	precedenceLowest = iota
	precedenceAssign
	precedenceOr
	precedenceAnd
	precedenceEquality
	precedenceComparison
	precedenceSum
	precedenceProduct
	precedenceCast
	precedencePrefix
	precedencePostfix
)

var precedences = map[lexer.TokenType]int{
	lexer.ASSIGN:   precedenceAssign,
	lexer.OR:       precedenceOr,
	lexer.AND:      precedenceAnd,
	lexer.EQ:       precedenceEquality,
	lexer.NOT_EQ:   precedenceEquality,
	lexer.LT:       precedenceComparison,
	lexer.LE:       precedenceComparison,
	lexer.GT:       precedenceComparison,
	lexer.GE:       precedenceComparison,
	lexer.PLUS:     precedenceSum,
	lexer.MINUS:    precedenceSum,
	lexer.ASTERISK: precedenceProduct,
	lexer.SLASH:    precedenceProduct,
	lexer.AS:       precedenceCast,
	lexer.LPAREN:   precedencePostfix,
	lexer.LBRACKET: precedencePostfix,
}

// bailout aborts the statement being parsed. It is only ever recovered at a
// statement boundary, after the diagnostic explaining it has been reported.
type bailout struct{}

// Parser implements a Pratt-style recursive descent parser for Ember.
// The binding powers in precedences encode the chain
// Assignment < Or < And < Equality < Comparison < Term < Factor < Cast <
// prefix (* & - !) < postfix (call, index).
//
// Invariants:
//   - curTok is the token under examination and peekTok the one after it;
//     both are only mutated via nextToken.
//   - Statement and expression parsers leave curTok on their last token.
//   - A failed expectation reports one diagnostic and panics with bailout.
type Parser struct {
	tokens []lexer.Token
	pos    int

	curTok  lexer.Token
	peekTok lexer.Token

	diags      *diag.Bag
	recovering bool

	prefixFns map[lexer.TokenType]prefixParseFn
	infixFns  map[lexer.TokenType]infixParseFn
}

// New returns a parser over tokens. An EOF token is appended if missing.
func New(tokens []lexer.Token, opts ...Option) *Parser {
	cfg := options{}
	for _, opt := range opts {
		opt(&cfg)
	}

	if n := len(tokens); n == 0 || tokens[n-1].Type != lexer.EOF {
		eof := lexer.Token{Type: lexer.EOF, Span: lexer.Span{Filename: cfg.filename, Line: 1, Column: 1}}
		if n > 0 {
			last := tokens[n-1].Span
			eof.Span = lexer.Span{
				Filename: last.Filename,
				Line:     last.Line,
				Column:   last.Column + (last.End - last.Start),
				Start:    last.End,
				End:      last.End,
			}
		}
		tokens = append(tokens[:n:n], eof)
	}

	p := &Parser{
		tokens:    tokens,
		pos:       -1,
		diags:     diag.NewBag(cfg.policy),
		prefixFns: make(map[lexer.TokenType]prefixParseFn),
		infixFns:  make(map[lexer.TokenType]infixParseFn),
	}

	p.registerPrefix(lexer.IDENT, p.parseSymbol)
	p.registerPrefix(lexer.INT, p.parseLiteral)
	p.registerPrefix(lexer.FLOAT, p.parseLiteral)
	p.registerPrefix(lexer.CHAR, p.parseLiteral)
	p.registerPrefix(lexer.STRING, p.parseLiteral)
	p.registerPrefix(lexer.TRUE, p.parseLiteral)
	p.registerPrefix(lexer.FALSE, p.parseLiteral)
	p.registerPrefix(lexer.MINUS, p.parseUnary)
	p.registerPrefix(lexer.BANG, p.parseUnary)
	p.registerPrefix(lexer.ASTERISK, p.parseDereference)
	p.registerPrefix(lexer.AMPERSAND, p.parseAddressOf)
	p.registerPrefix(lexer.LPAREN, p.parseGrouping)
	p.registerPrefix(lexer.LBRACKET, p.parseArrayLiteral)
	p.registerPrefix(lexer.DEFAULT, p.parseDefaultValue)

	p.registerInfix(lexer.ASSIGN, p.parseAssignment)
	p.registerInfix(lexer.PLUS, p.parseBinary)
	p.registerInfix(lexer.MINUS, p.parseBinary)
	p.registerInfix(lexer.ASTERISK, p.parseBinary)
	p.registerInfix(lexer.SLASH, p.parseBinary)
	p.registerInfix(lexer.LT, p.parseComparison)
	p.registerInfix(lexer.LE, p.parseComparison)
	p.registerInfix(lexer.GT, p.parseComparison)
	p.registerInfix(lexer.GE, p.parseComparison)
	p.registerInfix(lexer.EQ, p.parseEquality)
	p.registerInfix(lexer.NOT_EQ, p.parseEquality)
	p.registerInfix(lexer.AND, p.parseLogic)
	p.registerInfix(lexer.OR, p.parseLogic)
	p.registerInfix(lexer.AS, p.parseCast)
	p.registerInfix(lexer.LPAREN, p.parseCall)
	p.registerInfix(lexer.LBRACKET, p.parseIndex)

	// Seed curTok/peekTok.
	p.nextToken()

	return p
}

// Parse parses a token stream into top-level statements.
func Parse(tokens []lexer.Token, opts ...Option) ([]ast.Stmt, []diag.Diagnostic) {
	p := New(tokens, opts...)
	stmts := p.ParseFile()
	return stmts, p.Diagnostics()
}

// Diagnostics returns the diagnostics reported so far.
func (p *Parser) Diagnostics() []diag.Diagnostic {
	return p.diags.Diagnostics()
}

// ParseFile parses every top-level statement until EOF.
func (p *Parser) ParseFile() []ast.Stmt {
	var stmts []ast.Stmt
	for p.curTok.Type != lexer.EOF {
		if p.curTok.Type == lexer.RBRACE {
			if !p.recovering {
				p.diags.Report(diag.WrongBlockPlacement, p.curTok.Span)
			}
			p.nextToken()
			continue
		}
		if stmt := p.parseStatementRecover(); stmt != nil {
			stmts = append(stmts, stmt)
		}
	}
	return stmts
}

func (p *Parser) registerPrefix(tt lexer.TokenType, fn prefixParseFn) {
	p.prefixFns[tt] = fn
}

func (p *Parser) registerInfix(tt lexer.TokenType, fn infixParseFn) {
	p.infixFns[tt] = fn
}

// nextToken advances the parser's token window. It never moves past EOF.
func (p *Parser) nextToken() {
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	p.curTok = p.tokens[p.pos]
	if p.pos+1 < len(p.tokens) {
		p.peekTok = p.tokens[p.pos+1]
	} else {
		p.peekTok = p.curTok
	}
}

// peekTokenAt returns the token n positions after curTok.
func (p *Parser) peekTokenAt(n int) lexer.Token {
	if i := p.pos + n; i < len(p.tokens) {
		return p.tokens[i]
	}
	return p.tokens[len(p.tokens)-1]
}

// expect asserts that the peek token matches tt and promotes it into curTok.
// On mismatch it reports ExpectedToken and bails out of the statement.
func (p *Parser) expect(tt lexer.TokenType) {
	if p.peekTok.Type == tt {
		p.nextToken()
		return
	}
	p.failPeek(diag.ExpectedToken, "'"+string(tt)+"'", p.peekTok.Describe())
}

// expectIdent is expect for identifiers, which have their own diagnostic.
func (p *Parser) expectIdent() *ast.Ident {
	if p.peekTok.Type != lexer.IDENT {
		p.failPeek(diag.ExpectedIdentifier, p.peekTok.Describe())
	}
	p.nextToken()
	return ast.NewIdent(p.curTok.Lexeme, p.curTok.Span)
}

// fail reports a diagnostic and aborts the current statement.
func (p *Parser) fail(k diag.Kind, span lexer.Span, args ...any) {
	p.diags.Report(k, span, args...)
	panic(bailout{})
}

// failPeek reports a diagnostic at the peek token and aborts with the
// offending token in curTok, so recovery starts from it.
func (p *Parser) failPeek(k diag.Kind, args ...any) {
	p.diags.Report(k, p.peekTok.Span, args...)
	p.nextToken()
	panic(bailout{})
}

// parseStatementRecover parses one statement and moves past it. A bailout
// inside the statement is recovered here: the parser synchronizes and nil is
// returned.
func (p *Parser) parseStatementRecover() (stmt ast.Stmt) {
	start := p.curTok
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if _, ok := r.(bailout); !ok {
			panic(r)
		}
		stmt = nil
		p.synchronize(start)
	}()

	stmt = p.parseStatement()
	p.nextToken()
	p.recovering = false
	return stmt
}

// synchronize discards tokens, starting at the offending one, until one that
// plausibly begins a statement, or until just past a semicolon. If the failed
// statement consumed nothing, its first token is skipped so recovery always
// makes progress.
func (p *Parser) synchronize(start lexer.Token) {
	p.recovering = true
	if p.curTok.Type == lexer.EOF {
		return
	}
	if sameTokenPosition(p.curTok, start) {
		p.nextToken()
	}

	for p.curTok.Type != lexer.EOF {
		switch p.curTok.Type {
		case lexer.SEMICOLON:
			p.nextToken()
			return
		case lexer.TYPENAME, lexer.EXTERN, lexer.EXPORT,
			lexer.LBRACE, lexer.RBRACE, lexer.RETURN, lexer.IF:
			return
		}
		p.nextToken()
	}
}

// mergeSpan returns a span from the start of start to the end of end.
func mergeSpan(start, end lexer.Span) lexer.Span {
	span := start

	if end.End > span.End {
		span.End = end.End
	}

	return span
}

func sameTokenPosition(a, b lexer.Token) bool {
	return a.Type == b.Type && a.Span.Start == b.Span.Start && a.Span.End == b.Span.End
}
