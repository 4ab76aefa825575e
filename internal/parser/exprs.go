package parser

import (
	"github.com/ember-lang/ember/internal/ast"
	"github.com/ember-lang/ember/internal/diag"
	"github.com/ember-lang/ember/internal/lexer"
)

// parseExpr parses an expression whose operators bind tighter than precedence.
// curTok must be the first token of the expression.
func (p *Parser) parseExpr(precedence int) ast.Expr {
	prefix := p.prefixFns[p.curTok.Type]
	if prefix == nil {
		p.fail(diag.ExpectedExpression, p.curTok.Span, p.curTok.Describe())
	}
	left := prefix()

	for p.peekTok.Type != lexer.SEMICOLON && precedence < p.peekPrecedence() {
		infix := p.infixFns[p.peekTok.Type]
		if infix == nil {
			return left
		}
		p.nextToken()
		left = infix(left)
	}

	return left
}

func (p *Parser) peekPrecedence() int {
	if prec, ok := precedences[p.peekTok.Type]; ok {
		return prec
	}
	return precedenceLowest
}

func (p *Parser) curPrecedence() int {
	if prec, ok := precedences[p.curTok.Type]; ok {
		return prec
	}
	return precedenceLowest
}

func (p *Parser) parseLiteral() ast.Expr {
	return ast.NewLiteral(p.curTok)
}

func (p *Parser) parseSymbol() ast.Expr {
	return ast.NewSymbol(p.curTok.Lexeme, false, p.curTok.Span)
}

func (p *Parser) parseUnary() ast.Expr {
	start := p.curTok
	p.nextToken()
	operand := p.parseExpr(precedencePrefix)
	return ast.NewUnary(start.Type, operand, mergeSpan(start.Span, operand.Span()))
}

func (p *Parser) parseDereference() ast.Expr {
	start := p.curTok.Span
	p.nextToken()
	operand := p.parseExpr(precedencePrefix)
	return ast.NewDereference(operand, mergeSpan(start, operand.Span()))
}

// parseAddressOf folds &name into an address-of symbol reference; any other
// operand produces an AddressOf node.
func (p *Parser) parseAddressOf() ast.Expr {
	start := p.curTok.Span
	p.nextToken()
	operand := p.parseExpr(precedencePrefix)
	span := mergeSpan(start, operand.Span())
	if sym, ok := operand.(*ast.Symbol); ok && !sym.AddressOf {
		return ast.NewSymbol(sym.Name, true, span)
	}
	return ast.NewAddressOf(operand, span)
}

func (p *Parser) parseGrouping() ast.Expr {
	start := p.curTok.Span
	p.nextToken()
	inner := p.parseExpr(precedenceLowest)
	p.expect(lexer.RPAREN)
	return ast.NewGrouping(inner, mergeSpan(start, p.curTok.Span))
}

// parseDefaultValue parses default(T).
func (p *Parser) parseDefaultValue() ast.Expr {
	start := p.curTok.Span
	p.expect(lexer.LPAREN)
	p.nextToken()
	target := p.parseType()
	p.expect(lexer.RPAREN)
	return ast.NewDefaultValue(target, mergeSpan(start, p.curTok.Span))
}

// parseArrayLiteral parses [T; N] with an optional { v1, v2, ... } initializer.
func (p *Parser) parseArrayLiteral() ast.Expr {
	start := p.curTok.Span
	p.nextToken()
	elem := p.parseType()
	p.expect(lexer.SEMICOLON)
	size := p.parseArraySize()
	p.expect(lexer.RBRACKET)

	var values []ast.Expr
	if p.peekTok.Type == lexer.LBRACE {
		p.nextToken()
		values = p.parseExprList(lexer.RBRACE)
		if values == nil {
			values = []ast.Expr{}
		}
	}

	return ast.NewArrayLiteral(elem, size, values, mergeSpan(start, p.curTok.Span))
}

// parseArraySize expects the next token to be an integer literal.
func (p *Parser) parseArraySize() uint64 {
	if p.peekTok.Type != lexer.INT {
		p.failPeek(diag.InvalidArraySize, p.peekTok.Describe())
	}
	p.nextToken()
	size, _ := p.curTok.Value.(uint64)
	return size
}

// parseExprList parses comma-separated expressions after curTok up to and
// including closing. curTok ends on closing.
func (p *Parser) parseExprList(closing lexer.TokenType) []ast.Expr {
	if p.peekTok.Type == closing {
		p.nextToken()
		return nil
	}

	var list []ast.Expr
	for {
		p.nextToken()
		list = append(list, p.parseExpr(precedenceLowest))
		if p.peekTok.Type != lexer.COMMA {
			break
		}
		p.nextToken()
	}
	p.expect(closing)
	return list
}

func (p *Parser) parseBinary(left ast.Expr) ast.Expr {
	op := p.curTok.Type
	prec := p.curPrecedence()
	p.nextToken()
	return ast.NewBinary(op, left, p.parseExpr(prec))
}

func (p *Parser) parseComparison(left ast.Expr) ast.Expr {
	op := p.curTok.Type
	prec := p.curPrecedence()
	p.nextToken()
	return ast.NewComparison(op, left, p.parseExpr(prec))
}

func (p *Parser) parseEquality(left ast.Expr) ast.Expr {
	op := p.curTok.Type
	prec := p.curPrecedence()
	p.nextToken()
	return ast.NewEquality(op, left, p.parseExpr(prec))
}

func (p *Parser) parseLogic(left ast.Expr) ast.Expr {
	op := p.curTok.Type
	prec := p.curPrecedence()
	p.nextToken()
	return ast.NewLogic(op, left, p.parseExpr(prec))
}

// parseAssignment is right-associative.
func (p *Parser) parseAssignment(left ast.Expr) ast.Expr {
	p.nextToken()
	value := p.parseExpr(precedenceAssign - 1)
	return ast.NewAssignment(left, value)
}

func (p *Parser) parseCast(left ast.Expr) ast.Expr {
	p.nextToken()
	return ast.NewCast(left, p.parseType())
}

func (p *Parser) parseCall(callee ast.Expr) ast.Expr {
	args := p.parseExprList(lexer.RPAREN)
	return ast.NewCall(callee, args, mergeSpan(callee.Span(), p.curTok.Span))
}

func (p *Parser) parseIndex(array ast.Expr) ast.Expr {
	p.nextToken()
	index := p.parseExpr(precedenceLowest)
	p.expect(lexer.RBRACKET)
	return ast.NewIndex(array, index, mergeSpan(array.Span(), p.curTok.Span))
}
