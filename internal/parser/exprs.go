package parser

import (
	"fmt"
	"strconv"

	"github.com/lil-lang/lil/internal/ast"
	"github.com/lil-lang/lil/internal/diag"
	"github.com/lil-lang/lil/internal/lexer"
)

// ParseExpr parses a term optionally followed by one comparison. Chains
// such as "a < b < c" need parentheses.
//
//	expr := term (('<' | '==' | '!=') term)?
func (p *Parser) ParseExpr() (ast.Expr, error) {
	start := p.peek().Span

	lhs, err := p.parseTerm()
	if err != nil {
		return ast.Expr{}, err
	}

	op := p.peek()
	switch op.Type {
	case lexer.LT, lexer.EQ, lexer.NOT_EQ:
		p.advance()
	case lexer.LE, lexer.GE, lexer.GT, lexer.AND, lexer.OR:
		err := p.errorAt(op, fmt.Sprintf("operator '%s' is not supported", op.Raw))
		err.Help = "compare values with '<', '==' or '!='"
		return ast.Expr{}, err
	default:
		return lhs, nil
	}

	rhs, err := p.parseTerm()
	if err != nil {
		return ast.Expr{}, err
	}

	var node ast.ExprNode
	switch op.Type {
	case lexer.LT:
		node = ast.LessThan{LHS: lhs, RHS: rhs}
	case lexer.EQ:
		node = ast.Equals{LHS: lhs, RHS: rhs}
	default:
		node = ast.NotEquals{LHS: lhs, RHS: rhs}
	}
	e := p.arena.PushExpr(node)
	p.mapNode(e.Index(), start)
	return e, nil
}

// term := 'true' | 'false' | integer | ident | '(' expr ')'
func (p *Parser) parseTerm() (ast.Expr, error) {
	tok := p.peek()

	var node ast.ExprNode
	switch tok.Type {
	case lexer.TRUE, lexer.FALSE:
		p.advance()
		node = ast.BoolLiteral{Value: tok.Type == lexer.TRUE}
	case lexer.INT:
		// Literals are always i32, so anything wider is rejected here.
		v, err := strconv.ParseInt(tok.Raw, 10, 32)
		if err != nil {
			return ast.Expr{}, &ParseError{
				Message: "integer literal out of range for i32",
				Span:    tok.Span,
				Code:    diag.CodeParseIntegerRange,
			}
		}
		p.advance()
		node = ast.IntLiteral{Value: int32(v)}
	case lexer.IDENT:
		name, err := p.parseName()
		if err != nil {
			return ast.Expr{}, err
		}
		node = ast.VarRef{Name: name}
	case lexer.LPAREN:
		p.advance()
		e, err := p.ParseExpr()
		if err != nil {
			return ast.Expr{}, err
		}
		if _, err := p.expect(lexer.RPAREN, "expected ')' after expression"); err != nil {
			return ast.Expr{}, err
		}
		return e, nil
	default:
		return ast.Expr{}, p.errorAt(tok, "expected expression")
	}

	e := p.arena.PushExpr(node)
	p.mapNode(e.Index(), tok.Span)
	return e, nil
}
