package parser

import (
	"github.com/lil-lang/lil/internal/ast"
	"github.com/lil-lang/lil/internal/lexer"
)

// SourceMapper receives the source span of every node the parser pushes.
type SourceMapper func(ast.Index, lexer.Span)

type Option func(*options)

type options struct {
	arena  *ast.Arena
	mapper SourceMapper
}

// WithArena makes the parser push into an existing arena instead of a
// fresh one.
func WithArena(a *ast.Arena) Option {
	return func(o *options) {
		o.arena = a
	}
}

// WithSourceMapper registers fn to be told where each node came from.
func WithSourceMapper(fn SourceMapper) Option {
	return func(o *options) {
		o.mapper = fn
	}
}

// Parser is a recursive-descent parser with one token of lookahead.
// Invariants:
//   - Lookahead: the lexer's Peek is the only lookahead. expect and match
//     consume a token only when it has the wanted type, so a failed match
//     leaves the stream where it was.
//   - Errors: every production returns on the first failure. There is no
//     recovery; nodes pushed before the failure stay in the arena,
//     unreachable, and the arena is expected to be discarded.
//   - Arena: children are pushed before their parents, so every handle
//     stored in a node refers to a smaller index.
type Parser struct {
	lx     *lexer.Lexer
	arena  *ast.Arena
	mapper SourceMapper

	last lexer.Token // most recently consumed token
}

// New returns a parser initialised with the provided source input.
func New(input string, opts ...Option) *Parser {
	cfg := options{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.arena == nil {
		cfg.arena = ast.NewArena()
	}

	return &Parser{
		lx:     lexer.New(input),
		arena:  cfg.arena,
		mapper: cfg.mapper,
	}
}

// ParseLine parses exactly one declaration spanning the whole input.
func ParseLine(input string, opts ...Option) (*ast.Arena, ast.Decl, error) {
	p := New(input, opts...)
	d, err := p.ParseDecl()
	if err == nil {
		err = p.ExpectEOF()
	}
	return p.Arena(), d, err
}

// Arena returns the arena the parser pushes into.
func (p *Parser) Arena() *ast.Arena {
	return p.arena
}

// ExpectEOF fails unless all input has been consumed.
func (p *Parser) ExpectEOF() error {
	_, err := p.expect(lexer.EOF, "unexpected input after declaration")
	return err
}

func (p *Parser) peek() lexer.Token {
	return p.lx.Peek()
}

func (p *Parser) advance() lexer.Token {
	p.last = p.lx.Next()
	return p.last
}

// expect consumes the next token if it has type tt. Otherwise it reports
// msg at that token and leaves it in place.
func (p *Parser) expect(tt lexer.TokenType, msg string) (lexer.Token, error) {
	tok := p.peek()
	if !tok.Is(tt) {
		return tok, p.errorAt(tok, msg)
	}
	return p.advance(), nil
}

// match consumes the next token if it has type tt.
func (p *Parser) match(tt lexer.TokenType) bool {
	if !p.peek().Is(tt) {
		return false
	}
	p.advance()
	return true
}

// mapNode reports the span from start to the last consumed token.
func (p *Parser) mapNode(i ast.Index, start lexer.Span) {
	if p.mapper != nil {
		p.mapper(i, mergeSpan(start, p.last.Span))
	}
}

// mergeSpan assumes start.End <= end.End and returns a span covering both.
func mergeSpan(start, end lexer.Span) lexer.Span {
	span := start

	if end.End > span.End {
		span.End = end.End
	}

	return span
}
