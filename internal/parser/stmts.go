package parser

import (
	"github.com/ember-lang/ember/internal/ast"
	"github.com/ember-lang/ember/internal/diag"
	"github.com/ember-lang/ember/internal/lexer"
)

// parseStatement dispatches on curTok. The statement's last token is left in curTok.
func (p *Parser) parseStatement() ast.Stmt {
	switch p.curTok.Type {
	case lexer.EXTERN, lexer.EXPORT, lexer.TYPENAME:
		return p.parseDeclaration()
	case lexer.LBRACE:
		return p.parseBlock()
	case lexer.RETURN:
		return p.parseReturn()
	case lexer.IF:
		return p.parseIf()
	default:
		return p.parseExpressionStmt()
	}
}

func (p *Parser) parseExpressionStmt() ast.Stmt {
	start := p.curTok.Span
	expr := p.parseExpr(precedenceLowest)
	p.expect(lexer.SEMICOLON)
	return ast.NewExpressionStmt(expr, mergeSpan(start, p.curTok.Span))
}

func (p *Parser) parseModifiers() ast.Modifiers {
	var mods ast.Modifiers
	for lexer.IsModifier(p.curTok.Type) {
		switch p.curTok.Type {
		case lexer.EXTERN:
			mods.Extern = true
		case lexer.EXPORT:
			mods.Export = true
		}
		p.nextToken()
	}
	return mods
}

// parseDeclaration parses a variable declaration, a default-value
// declaration or a function declaration, chosen by what follows the name.
func (p *Parser) parseDeclaration() ast.Stmt {
	start := p.curTok.Span
	mods := p.parseModifiers()
	typ := p.parseType()
	name := p.expectIdent()

	if p.peekTok.Type == lexer.LPAREN {
		return p.parseFunctionDeclaration(start, mods, typ, name)
	}

	p.expect(lexer.ASSIGN)

	if p.peekTok.Type == lexer.DEFAULT && p.peekTokenAt(2).Type == lexer.SEMICOLON {
		p.nextToken()
		def := p.curTok.Span
		p.nextToken()
		return ast.NewDefaultDeclaration(mods, typ, name, def, mergeSpan(start, p.curTok.Span))
	}

	p.nextToken()
	init := p.parseExpr(precedenceLowest)
	p.expect(lexer.SEMICOLON)
	return ast.NewDeclaration(mods, typ, name, init, mergeSpan(start, p.curTok.Span))
}

// parseFunctionDeclaration continues a declaration whose name is followed by '('.
func (p *Parser) parseFunctionDeclaration(start lexer.Span, mods ast.Modifiers, ret ast.TypeExpr, name *ast.Ident) ast.Stmt {
	p.nextToken() // '('
	params := p.parseParams()

	var body *ast.Block
	switch p.peekTok.Type {
	case lexer.SEMICOLON:
		p.nextToken()
		if !mods.Extern {
			p.diags.Report(diag.MissingFunctionBody, name.Span(), name.Name)
		}
	case lexer.LBRACE:
		p.nextToken()
		body = p.parseBlock()
		if mods.Extern {
			p.diags.Report(diag.ExternWithBody, name.Span(), name.Name)
		}
	default:
		p.failPeek(diag.ExpectedToken, "'{'", p.peekTok.Describe())
	}

	return ast.NewFunctionDeclaration(mods, ret, name, params, body, mergeSpan(start, p.curTok.Span))
}

// parseParams parses "T a, T b)" after '('. curTok ends on ')'.
func (p *Parser) parseParams() []*ast.Param {
	if p.peekTok.Type == lexer.RPAREN {
		p.nextToken()
		return nil
	}

	var params []*ast.Param
	for {
		p.nextToken()
		typ := p.parseType()
		name := p.expectIdent()
		params = append(params, ast.NewParam(typ, name))
		if p.peekTok.Type != lexer.COMMA {
			break
		}
		p.nextToken()
	}
	p.expect(lexer.RPAREN)
	return params
}

// parseBlock parses '{' statements '}'. A missing '}' is reported at the
// opening brace and the statements read so far are returned.
func (p *Parser) parseBlock() *ast.Block {
	open := p.curTok.Span
	p.nextToken()

	var stmts []ast.Stmt
	for p.curTok.Type != lexer.RBRACE && p.curTok.Type != lexer.EOF {
		if stmt := p.parseStatementRecover(); stmt != nil {
			stmts = append(stmts, stmt)
		}
	}

	if p.curTok.Type == lexer.EOF {
		p.diags.Report(diag.UnclosedBlock, open)
		return ast.NewBlock(stmts, false, mergeSpan(open, p.curTok.Span))
	}
	return ast.NewBlock(stmts, true, mergeSpan(open, p.curTok.Span))
}

func (p *Parser) parseReturn() ast.Stmt {
	start := p.curTok.Span
	if p.peekTok.Type == lexer.SEMICOLON {
		p.nextToken()
		return ast.NewReturn(nil, mergeSpan(start, p.curTok.Span))
	}

	p.nextToken()
	value := p.parseExpr(precedenceLowest)
	p.expect(lexer.SEMICOLON)
	return ast.NewReturn(value, mergeSpan(start, p.curTok.Span))
}

func (p *Parser) parseIf() ast.Stmt {
	start := p.curTok.Span
	p.expect(lexer.LPAREN)
	p.nextToken()
	cond := p.parseExpr(precedenceLowest)
	p.expect(lexer.RPAREN)

	p.nextToken()
	then := p.parseStatement()

	var els ast.Stmt
	if p.peekTok.Type == lexer.ELSE {
		p.nextToken()
		p.nextToken()
		els = p.parseStatement()
	}

	return ast.NewIf(cond, then, els, mergeSpan(start, p.curTok.Span))
}
