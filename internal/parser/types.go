package parser

import (
	"github.com/lil-lang/lil/internal/ast"
	"github.com/lil-lang/lil/internal/lexer"
)

// ParseType parses a type. References are tried first, then records;
// anything else is an array of (or just) a bracketed or base type.
//
//	type := refType | recordType | arrayType
func (p *Parser) ParseType() (ast.Type, error) {
	switch p.peek().Type {
	case lexer.AMPERSAND, lexer.AND:
		return p.parseReferenceType()
	case lexer.LBRACE:
		return p.parseRecordType()
	default:
		return p.parseArrayType()
	}
}

// refType := '&'+ bracketedType
//
// The scanner folds "&&" into one token, which counts as two references.
// The wrapped type is parsed once and then wrapped n times, so "&&i16"
// yields Ref(Ref(i16)). Only a bracketed or base type may follow, which
// means "&u32[]" stops before the '['.
func (p *Parser) parseReferenceType() (ast.Type, error) {
	start := p.peek().Span

	depth := 0
prefix:
	for {
		switch p.peek().Type {
		case lexer.AMPERSAND:
			depth++
		case lexer.AND:
			depth += 2
		default:
			break prefix
		}
		p.advance()
	}

	typ, err := p.parseBracketedType()
	if err != nil {
		return ast.Type{}, err
	}
	for i := 0; i < depth; i++ {
		typ = p.arena.PushType(ast.ReferenceType{Target: typ})
		p.mapNode(typ.Index(), start)
	}
	return typ, nil
}

// recordType := '{' (type ident (',' type ident)*)? '}'
func (p *Parser) parseRecordType() (ast.Type, error) {
	start := p.advance().Span // '{'

	var fields []ast.Field
	if !p.match(lexer.RBRACE) {
		for {
			typ, err := p.ParseType()
			if err != nil {
				return ast.Type{}, err
			}
			name, err := p.parseName()
			if err != nil {
				return ast.Type{}, err
			}
			fields = append(fields, ast.Field{Type: typ, Name: name})

			if p.match(lexer.COMMA) {
				continue
			}
			if _, err := p.expect(lexer.RBRACE, "expected ',' or '}' in record type"); err != nil {
				return ast.Type{}, err
			}
			break
		}
	}

	t := p.arena.PushType(ast.RecordType{Fields: fields})
	p.mapNode(t.Index(), start)
	return t, nil
}

// arrayType := bracketedType ('[' ']')*
//
// Each trailing pair wraps everything to its left: "i32[][]" is
// Array(Array(i32)).
func (p *Parser) parseArrayType() (ast.Type, error) {
	start := p.peek().Span

	typ, err := p.parseBracketedType()
	if err != nil {
		return ast.Type{}, err
	}
	for p.match(lexer.LBRACKET) {
		if _, err := p.expect(lexer.RBRACKET, "expected ']'"); err != nil {
			return ast.Type{}, err
		}
		typ = p.arena.PushType(ast.ArrayType{Elem: typ})
		p.mapNode(typ.Index(), start)
	}
	return typ, nil
}

// bracketedType := '(' type ')' | baseType
func (p *Parser) parseBracketedType() (ast.Type, error) {
	if !p.match(lexer.LPAREN) {
		return p.parseBaseType()
	}
	typ, err := p.ParseType()
	if err != nil {
		return ast.Type{}, err
	}
	if _, err := p.expect(lexer.RPAREN, "expected ')' after type"); err != nil {
		return ast.Type{}, err
	}
	return typ, nil
}

var baseTypes = map[lexer.TokenType]ast.TypeNode{
	lexer.NULL: ast.NullType{},
	lexer.BOOL: ast.BoolType{},
	lexer.VOID: ast.VoidType{},
	lexer.I8:   ast.IntType{Signed: true, Width: 8},
	lexer.I16:  ast.IntType{Signed: true, Width: 16},
	lexer.I32:  ast.IntType{Signed: true, Width: 32},
	lexer.I64:  ast.IntType{Signed: true, Width: 64},
	lexer.U8:   ast.IntType{Signed: false, Width: 8},
	lexer.U16:  ast.IntType{Signed: false, Width: 16},
	lexer.U32:  ast.IntType{Signed: false, Width: 32},
	lexer.U64:  ast.IntType{Signed: false, Width: 64},
}

// baseType := 'null' | 'bool' | 'i8' | ... | 'u64' | 'void'
func (p *Parser) parseBaseType() (ast.Type, error) {
	tok := p.peek()
	node, ok := baseTypes[tok.Type]
	if !ok {
		return ast.Type{}, p.errorAt(tok, "expected type")
	}
	p.advance()

	t := p.arena.PushType(node)
	p.mapNode(t.Index(), tok.Span)
	return t, nil
}
