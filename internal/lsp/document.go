package lsp

import (
	"context"
	"errors"
	"unicode/utf8"

	"github.com/lil-lang/lil/internal/diag"
	"github.com/lil-lang/lil/internal/lexer"
	"github.com/lil-lang/lil/internal/parser"
	"github.com/lil-lang/lil/internal/unit"
)

// Document is an open file. Every line holding a declaration is analyzed
// as its own unit. A Document is replaced, never mutated, when the client
// sends new text.
type Document struct {
	URI     string
	Content string
	Version int

	Lines []unit.Line
	// Units is parallel to Lines. Entries for skipped lines and for lines
	// that failed to parse are nil.
	Units       []*unit.Unit
	Diagnostics []Diagnostic
}

// Diagnostic represents an LSP diagnostic.
type Diagnostic struct {
	Range    Range  `json:"range"`
	Severity int    `json:"severity"`
	Message  string `json:"message"`
	Code     string `json:"code,omitempty"`
	Source   string `json:"source,omitempty"`
}

type Range struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}

// Position is zero-based. Character counts runes.
type Position struct {
	Line      int `json:"line"`
	Character int `json:"character"`
}

type Location struct {
	URI   string `json:"uri"`
	Range Range  `json:"range"`
}

func (d *Document) update(ctx context.Context, content string) error {
	lines := unit.SplitLines(content)
	results, err := unit.CompileLines(ctx, lines, unit.Options{})
	if err != nil {
		return err
	}

	d.Content = content
	d.Lines = lines
	d.Units = make([]*unit.Unit, len(results))
	d.Diagnostics = []Diagnostic{}
	for i, r := range results {
		if r.Err == nil {
			d.Units[i] = r.Unit
			continue
		}
		var perr *parser.ParseError
		if !errors.As(r.Err, &perr) {
			d.Units[i] = r.Unit
		}
		dg := r.Unit.Diagnostic(r.Err)
		d.Diagnostics = append(d.Diagnostics, Diagnostic{
			Range:    diagnosticRange(r.Line, dg.Span),
			Severity: diagnosticSeverity(dg.Severity),
			Message:  dg.Message,
			Code:     string(dg.Code),
			Source:   "lil",
		})
	}
	return nil
}

// unitAt returns the unit on the zero-based line, if that line holds
// one.
func (d *Document) unitAt(line int) (*unit.Unit, unit.Line, bool) {
	if line < 0 || line >= len(d.Lines) || d.Units[line] == nil {
		return nil, unit.Line{}, false
	}
	return d.Units[line], d.Lines[line], true
}

// diagnosticRange places a span of a line's unit in the document. Spans
// that could not be placed cover the whole line.
func diagnosticRange(l unit.Line, span diag.Span) Range {
	if span.Start < 0 {
		return Range{
			Start: Position{Line: l.Num - 1},
			End:   Position{Line: l.Num - 1, Character: utf8.RuneCountInString(l.Text)},
		}
	}
	return spanRange(l, lexer.Span{Start: span.Start, End: span.End})
}

func spanRange(l unit.Line, span lexer.Span) Range {
	return Range{
		Start: Position{Line: l.Num - 1, Character: characterAt(l.Text, span.Start)},
		End:   Position{Line: l.Num - 1, Character: characterAt(l.Text, span.End)},
	}
}

// characterAt converts a byte offset in text to a rune count.
func characterAt(text string, offset int) int {
	if offset > len(text) {
		offset = len(text)
	}
	if offset < 0 {
		offset = 0
	}
	return utf8.RuneCountInString(text[:offset])
}

// offsetAt converts a rune count in text to a byte offset.
func offsetAt(text string, character int) int {
	for i := range text {
		if character == 0 {
			return i
		}
		character--
	}
	return len(text)
}

func diagnosticSeverity(sev diag.Severity) int {
	switch sev {
	case diag.SeverityError:
		return 1 // Error
	case diag.SeverityWarning:
		return 2 // Warning
	case diag.SeverityNote:
		return 3 // Information
	default:
		return 1
	}
}
