package parser

import (
	"github.com/lil-lang/lil/internal/ast"
	"github.com/lil-lang/lil/internal/lexer"
)

// ParseStmt parses a single statement.
//
//	stmt := assertStmt | skipStmt | block
func (p *Parser) ParseStmt() (ast.Stmt, error) {
	switch tok := p.peek(); tok.Type {
	case lexer.ASSERT:
		return p.parseAssertStmt()
	case lexer.SKIP:
		return p.parseSkipStmt()
	case lexer.LBRACE:
		return p.parseBlock()
	default:
		return ast.Stmt{}, p.errorAt(tok, "expected statement")
	}
}

// block := '{' stmt* '}'
func (p *Parser) parseBlock() (ast.Stmt, error) {
	open, err := p.expect(lexer.LBRACE, "expected '{' to start block")
	if err != nil {
		return ast.Stmt{}, err
	}

	var stmts []ast.Stmt
	for !p.match(lexer.RBRACE) {
		if tok := p.peek(); tok.Type == lexer.EOF {
			return ast.Stmt{}, p.errorAt(tok, "expected '}' to close block")
		}
		s, err := p.ParseStmt()
		if err != nil {
			return ast.Stmt{}, err
		}
		stmts = append(stmts, s)
	}

	s := p.arena.PushStmt(ast.BlockStmt{Stmts: stmts})
	p.mapNode(s.Index(), open.Span)
	return s, nil
}

// assertStmt := 'assert' expr ';'
func (p *Parser) parseAssertStmt() (ast.Stmt, error) {
	start := p.advance().Span

	cond, err := p.ParseExpr()
	if err != nil {
		return ast.Stmt{}, err
	}
	if _, err := p.expect(lexer.SEMICOLON, "expected ';' after assertion"); err != nil {
		return ast.Stmt{}, err
	}

	s := p.arena.PushStmt(ast.AssertStmt{Cond: cond})
	p.mapNode(s.Index(), start)
	return s, nil
}

// skipStmt := 'skip' ';'
func (p *Parser) parseSkipStmt() (ast.Stmt, error) {
	start := p.advance().Span

	if _, err := p.expect(lexer.SEMICOLON, "expected ';' after skip"); err != nil {
		return ast.Stmt{}, err
	}

	s := p.arena.PushStmt(ast.SkipStmt{})
	p.mapNode(s.Index(), start)
	return s, nil
}
