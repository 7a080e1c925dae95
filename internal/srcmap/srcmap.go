// Package srcmap associates arena nodes with the source text they were
// parsed from, so diagnostics about a node can point at it.
package srcmap

import (
	"github.com/lil-lang/lil/internal/ast"
	"github.com/lil-lang/lil/internal/lexer"
)

// Entry is the source location of one node.
type Entry struct {
	Span lexer.Span
	Text string
}

// Empty is returned by Lookup for nodes that were never mapped.
var Empty = Entry{Span: lexer.Span{Start: -1, End: -1}}

// IsEmpty reports whether e is the Empty sentinel.
func (e Entry) IsEmpty() bool {
	return e == Empty
}

// SourceMap records spans into a single input string.
type SourceMap struct {
	input string
	spans map[ast.Index]lexer.Span
}

func New(input string) *SourceMap {
	return &SourceMap{
		input: input,
		spans: make(map[ast.Index]lexer.Span),
	}
}

// Input returns the text the spans refer to.
func (m *SourceMap) Input() string {
	return m.input
}

// Map records span as the origin of node i. It has the signature of a
// parser.SourceMapper.
func (m *SourceMap) Map(i ast.Index, span lexer.Span) {
	m.spans[i] = span
}

// Span returns the span recorded for node i.
func (m *SourceMap) Span(i ast.Index) (lexer.Span, bool) {
	span, ok := m.spans[i]
	return span, ok
}

// Lookup returns the span and text of node i, or Empty.
func (m *SourceMap) Lookup(i ast.Index) Entry {
	span, ok := m.spans[i]
	if !ok || span.Start < 0 || span.End > len(m.input) || span.Len() < 0 {
		return Empty
	}
	return Entry{Span: span, Text: m.input[span.Start:span.End]}
}

// Len returns the number of mapped nodes.
func (m *SourceMap) Len() int {
	return len(m.spans)
}
