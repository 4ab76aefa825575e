package parser

import (
	"github.com/ember-lang/ember/internal/ast"
	"github.com/ember-lang/ember/internal/diag"
	"github.com/ember-lang/ember/internal/lexer"
)

// parseType parses a type name starting at curTok: a primitive keyword
// followed by any number of '*' and '[N]' suffixes, optionally followed by a
// parenthesized parameter list that makes it a function type.
func (p *Parser) parseType() ast.TypeExpr {
	if p.curTok.Type != lexer.TYPENAME {
		p.fail(diag.ExpectedTypeName, p.curTok.Span, p.curTok.Describe())
	}

	var typ ast.TypeExpr = ast.NewNamedType(p.curTok.Lexeme, p.curTok.Span)
	typ = p.parseTypeSuffixes(typ)

	for p.peekTok.Type == lexer.LPAREN {
		p.nextToken()
		params := p.parseTypeList()
		typ = ast.NewFunctionType(typ, params, mergeSpan(typ.Span(), p.curTok.Span))
		typ = p.parseTypeSuffixes(typ)
	}

	return typ
}

func (p *Parser) parseTypeSuffixes(typ ast.TypeExpr) ast.TypeExpr {
	for {
		switch p.peekTok.Type {
		case lexer.ASTERISK:
			p.nextToken()
			typ = ast.NewPointerType(typ, mergeSpan(typ.Span(), p.curTok.Span))
		case lexer.LBRACKET:
			p.nextToken()
			size := p.parseArraySize()
			p.expect(lexer.RBRACKET)
			typ = ast.NewArrayType(typ, size, mergeSpan(typ.Span(), p.curTok.Span))
		default:
			return typ
		}
	}
}

// parseTypeList parses "(T1, T2)" with curTok on '('. curTok ends on ')'.
func (p *Parser) parseTypeList() []ast.TypeExpr {
	if p.peekTok.Type == lexer.RPAREN {
		p.nextToken()
		return nil
	}

	var list []ast.TypeExpr
	for {
		p.nextToken()
		list = append(list, p.parseType())
		if p.peekTok.Type != lexer.COMMA {
			break
		}
		p.nextToken()
	}
	p.expect(lexer.RPAREN)
	return list
}
