package diag_test

import (
	"testing"

	"github.com/lil-lang/lil/internal/diag"
	"github.com/lil-lang/lil/internal/lexer"
)

func TestFromLexerError(t *testing.T) {
	err := lexer.LexerError{
		Kind:    lexer.ErrIllegalRune,
		Message: `unrecognized character "#"`,
		Span: lexer.Span{
			Line:   1,
			Column: 3,
			Start:  2,
			End:    3,
		},
	}

	diagnostic := err.ToDiagnostic()

	if diagnostic.Stage != diag.StageLexer {
		t.Fatalf("expected stage %q, got %q", diag.StageLexer, diagnostic.Stage)
	}
	if diagnostic.Code != diag.CodeLexerIllegalRune {
		t.Fatalf("expected code %q, got %q", diag.CodeLexerIllegalRune, diagnostic.Code)
	}
	if diagnostic.Message != err.Message {
		t.Fatalf("expected message %q, got %q", err.Message, diagnostic.Message)
	}
	if diagnostic.Severity != diag.SeverityError {
		t.Fatalf("expected severity %q, got %q", diag.SeverityError, diagnostic.Severity)
	}

	wantSpan := diag.Span{
		Line:   err.Span.Line,
		Column: err.Span.Column,
		Start:  err.Span.Start,
		End:    err.Span.End,
	}
	if diagnostic.Span != wantSpan {
		t.Fatalf("expected span %+v, got %+v", wantSpan, diagnostic.Span)
	}
}

func TestSpanString(t *testing.T) {
	if got := (diag.Span{Line: 2, Column: 7}).String(); got != "2:7" {
		t.Fatalf("expected %q, got %q", "2:7", got)
	}
	if got := (diag.Span{Start: 12}).String(); got != "@12" {
		t.Fatalf("expected %q, got %q", "@12", got)
	}
}

func TestDiagnosticBuilders(t *testing.T) {
	base := diag.Diagnostic{Message: "boom", Span: diag.Span{Line: 1, Column: 1}}

	d := base.WithLabel("here").WithNote("first").WithNote("second").WithHelp("try again")
	if d.Label != "here" || d.Help != "try again" || len(d.Notes) != 2 {
		t.Fatalf("unexpected diagnostic %+v", d)
	}
	if base.Label != "" || base.Help != "" || len(base.Notes) != 0 {
		t.Fatalf("builders modified the original: %+v", base)
	}
	if got := d.Error(); got != "1:1: boom" {
		t.Fatalf("expected %q, got %q", "1:1: boom", got)
	}
}
