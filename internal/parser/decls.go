package parser

import (
	"github.com/lil-lang/lil/internal/ast"
	"github.com/lil-lang/lil/internal/lexer"
)

// ParseDecl parses a type declaration or a method declaration.
func (p *Parser) ParseDecl() (ast.Decl, error) {
	if p.peek().Type == lexer.TYPE {
		return p.parseTypeDecl()
	}
	return p.parseMethodDecl()
}

// typeDecl := 'type' ident '=' type ';'
func (p *Parser) parseTypeDecl() (ast.Decl, error) {
	start := p.advance().Span // 'type'

	name, err := p.parseName()
	if err != nil {
		return ast.Decl{}, err
	}
	if _, err := p.expect(lexer.ASSIGN, "expected '=' after type name"); err != nil {
		return ast.Decl{}, err
	}
	typ, err := p.ParseType()
	if err != nil {
		return ast.Decl{}, err
	}
	if _, err := p.expect(lexer.SEMICOLON, "expected ';' after type declaration"); err != nil {
		return ast.Decl{}, err
	}

	d := p.arena.PushDecl(ast.TypeDecl{Name: name, Type: typ})
	p.mapNode(d.Index(), start)
	return d, nil
}

// methodDecl := type ident '(' params? ')' block
func (p *Parser) parseMethodDecl() (ast.Decl, error) {
	start := p.peek().Span

	ret, err := p.ParseType()
	if err != nil {
		return ast.Decl{}, err
	}
	name, err := p.parseName()
	if err != nil {
		return ast.Decl{}, err
	}
	if _, err := p.expect(lexer.LPAREN, "expected '(' after method name"); err != nil {
		return ast.Decl{}, err
	}

	var params []ast.Parameter
	if p.peek().Type != lexer.RPAREN {
		params, err = p.parseParams()
		if err != nil {
			return ast.Decl{}, err
		}
	}
	if _, err := p.expect(lexer.RPAREN, "expected ',' or ')' in parameter list"); err != nil {
		return ast.Decl{}, err
	}

	body, err := p.parseBlock()
	if err != nil {
		return ast.Decl{}, err
	}

	d := p.arena.PushDecl(ast.MethodDecl{
		Name:   name,
		Return: ret,
		Params: params,
		Body:   body,
	})
	p.mapNode(d.Index(), start)
	return d, nil
}

// params := type ident (',' type ident)*
func (p *Parser) parseParams() ([]ast.Parameter, error) {
	var params []ast.Parameter
	for {
		typ, err := p.ParseType()
		if err != nil {
			return nil, err
		}
		name, err := p.parseName()
		if err != nil {
			return nil, err
		}
		params = append(params, ast.Parameter{Declared: typ, Name: name})

		if !p.match(lexer.COMMA) {
			return params, nil
		}
	}
}

// parseName pushes the text of an identifier as its own node.
func (p *Parser) parseName() (ast.Name, error) {
	tok, err := p.expect(lexer.IDENT, "expected identifier")
	if err != nil {
		return ast.Name{}, err
	}
	n := p.arena.PushName(tok.Raw)
	p.mapNode(n.Index(), tok.Span)
	return n, nil
}
