package lexer

import (
	"strconv"
	"unicode"
	"unicode/utf8"

	"github.com/lil-lang/lil/internal/diag"
)

type LexerErrorKind int

const (
	ErrIllegalRune LexerErrorKind = iota
)

type LexerError struct {
	Kind    LexerErrorKind
	Message string
	Span    Span
}

func (k LexerErrorKind) diagnosticCode() diag.Code {
	switch k {
	case ErrIllegalRune:
		return diag.CodeLexerIllegalRune
	default:
		return diag.Code("LEXER_UNKNOWN_ERROR")
	}
}

// ToDiagnostic converts a lexer error into a shared diagnostic structure.
func (e LexerError) ToDiagnostic() diag.Diagnostic {
	return diag.Diagnostic{
		Stage:    diag.StageLexer,
		Severity: diag.SeverityError,
		Code:     e.Kind.diagnosticCode(),
		Message:  e.Message,
		Span: diag.Span{
			Line:   e.Span.Line,
			Column: e.Span.Column,
			Start:  e.Span.Start,
			End:    e.Span.End,
		},
	}
}

// Lexer pulls tokens out of a source string on demand. It keeps at most
// one token of lookahead, filled by Peek and drained by Next.
type Lexer struct {
	input  string
	pos    int  // byte offset of the current rune
	next   int  // byte offset just past the current rune
	ch     rune // current rune (0 = EOF)
	line   int  // current line number (1-based)
	column int  // current column number (1-based)

	lookahead *Token

	Errors []LexerError
}

// New creates a new lexer for the given input
func New(input string) *Lexer {
	l := &Lexer{
		input: input,
		line:  1,
	}
	l.read() // move to first character
	return l
}

// Tokenize scans the whole input and returns every token, including the
// trailing EOF.
func Tokenize(input string) []Token {
	l := New(input)
	var toks []Token
	for {
		tok := l.Next()
		toks = append(toks, tok)
		if tok.Type == EOF {
			return toks
		}
	}
}

// Peek returns the next token without consuming it. Repeated calls return
// the same token until Next is called.
func (l *Lexer) Peek() Token {
	if l.lookahead == nil {
		tok := l.scan()
		l.lookahead = &tok
	}
	return *l.lookahead
}

// Next returns the next token and consumes it.
func (l *Lexer) Next() Token {
	if l.lookahead != nil {
		tok := *l.lookahead
		l.lookahead = nil
		return tok
	}
	return l.scan()
}

func (l *Lexer) addError(kind LexerErrorKind, msg string, span Span) {
	l.Errors = append(l.Errors, LexerError{
		Kind:    kind,
		Message: msg,
		Span:    span,
	})
}

func (l *Lexer) atEOF() bool {
	return l.pos >= len(l.input)
}

// read advances the lexer to the next character. line/column always
// reflect the position of the character at pos.
func (l *Lexer) read() {
	if l.column > 0 && l.atEOF() {
		return
	}
	prev := l.ch
	l.pos = l.next

	if l.pos >= len(l.input) {
		l.ch = 0
	} else {
		r, w := utf8.DecodeRuneInString(l.input[l.pos:])
		l.ch = r
		l.next = l.pos + w
	}

	if prev == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
}

// peekChar returns the rune after the current one without advancing
func (l *Lexer) peekChar() rune {
	if l.next >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.next:])
	return r
}

func (l *Lexer) makeToken(tokType TokenType, startLine, startColumn, startPos int) Token {
	return Token{
		Type: tokType,
		Raw:  l.input[startPos:l.pos],
		Span: Span{
			Line:   startLine,
			Column: startColumn,
			Start:  startPos,
			End:    l.pos,
		},
	}
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.read()
	}
}

func (l *Lexer) skipLineComment() {
	for l.ch != '\n' && !l.atEOF() {
		l.read()
	}
}

// readIdentifier reads an identifier or keyword
func (l *Lexer) readIdentifier() string {
	start := l.pos
	for isLetter(l.ch) || isDigit(l.ch) {
		l.read()
	}
	return l.input[start:l.pos]
}

func (l *Lexer) readNumber() string {
	start := l.pos
	for isDigit(l.ch) {
		l.read()
	}
	return l.input[start:l.pos]
}

// single consumes the current rune as a one-character token.
func (l *Lexer) single(tt TokenType) Token {
	line, column, pos := l.line, l.column, l.pos
	l.read()
	return l.makeToken(tt, line, column, pos)
}

// pair consumes a two-character token when the following rune is second,
// and falls back to the one-character token otherwise.
func (l *Lexer) pair(second rune, double, one TokenType) Token {
	line, column, pos := l.line, l.column, l.pos
	if l.peekChar() == second {
		l.read()
		l.read()
		return l.makeToken(double, line, column, pos)
	}
	l.read()
	return l.makeToken(one, line, column, pos)
}

func (l *Lexer) scan() Token {
	for {
		l.skipWhitespace()

		if l.atEOF() {
			return l.makeToken(EOF, l.line, l.column, l.pos)
		}

		switch l.ch {
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
			return l.pair('|', OR, PIPE)
		case '-':
			return l.pair('>', ARROW, MINUS)
		case '/':
			if l.peekChar() == '/' {
				l.skipLineComment()
				continue
			}
			return l.single(SLASH)
		case '+':
			return l.single(PLUS)
		case '*':
			return l.single(ASTERISK)
		case '%':
			return l.single(PERCENT)
		case ':':
			return l.single(COLON)
		case ',':
			return l.single(COMMA)
		case '.':
			return l.single(DOT)
		case ';':
			return l.single(SEMICOLON)
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
		}

		line, column, pos := l.line, l.column, l.pos
		switch {
		case isLetter(l.ch):
			literal := l.readIdentifier()
			return l.makeToken(LookupIdent(literal), line, column, pos)
		case isDigit(l.ch):
			l.readNumber()
			return l.makeToken(INT, line, column, pos)
		default:
			l.read()
			tok := l.makeToken(ILLEGAL, line, column, pos)
			l.addError(
				ErrIllegalRune,
				"unrecognized character "+strconv.Quote(tok.Raw),
				tok.Span,
			)
			return tok
		}
	}
}

func isLetter(ch rune) bool {
	return unicode.IsLetter(ch) || ch == '_'
}

func isDigit(ch rune) bool {
	// Numeric literals are restricted to ASCII digits.
	return ch >= '0' && ch <= '9'
}
