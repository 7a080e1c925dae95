package parser

import (
	"fmt"
	"strconv"

	"github.com/lil-lang/lil/internal/diag"
	"github.com/lil-lang/lil/internal/lexer"
)

// ParseError reports the token a production could not accept.
type ParseError struct {
	Message string
	Span    lexer.Span
	Code    diag.Code
	Help    string

	// Lexical is set when the offending token is a character the lexer
	// could not recognise.
	Lexical *lexer.LexerError
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Span.Line, e.Span.Column, e.Message)
}

// ToDiagnostic converts a parse error into a shared diagnostic structure.
func (e *ParseError) ToDiagnostic() diag.Diagnostic {
	if e.Lexical != nil {
		return e.Lexical.ToDiagnostic()
	}

	code := e.Code
	if code == "" {
		code = diag.CodeParseUnexpectedToken
	}
	d := diag.Diagnostic{
		Stage:    diag.StageParser,
		Severity: diag.SeverityError,
		Code:     code,
		Message:  e.Message,
		Span: diag.Span{
			Line:   e.Span.Line,
			Column: e.Span.Column,
			Start:  e.Span.Start,
			End:    e.Span.End,
		},
	}
	if e.Help != "" {
		d = d.WithHelp(e.Help)
	}
	return d
}

// errorAt builds the error for an unacceptable token. Illegal characters
// are reported as such whatever the production expected.
func (p *Parser) errorAt(tok lexer.Token, msg string) *ParseError {
	if tok.Is(lexer.ILLEGAL) {
		err := &ParseError{
			Message: "unrecognized character " + strconv.Quote(tok.Raw),
			Span:    tok.Span,
			Code:    diag.CodeLexerIllegalRune,
		}
		for i := range p.lx.Errors {
			if lexErr := p.lx.Errors[i]; lexErr.Span.Start == tok.Span.Start {
				err.Lexical = &lexErr
				err.Message = err.Lexical.Message
				break
			}
		}
		return err
	}
	return &ParseError{Message: msg, Span: tok.Span}
}
