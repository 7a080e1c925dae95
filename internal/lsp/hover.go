package lsp

import (
	"encoding/json"

	"github.com/lil-lang/lil/internal/ast"
	"github.com/lil-lang/lil/internal/lexer"
	"github.com/lil-lang/lil/internal/unit"
)

// Hover represents hover information.
type Hover struct {
	Contents MarkupContent `json:"contents"`
	Range    *Range        `json:"range,omitempty"`
}

type MarkupContent struct {
	Kind  string `json:"kind"`
	Value string `json:"value"`
}

func (s *Server) handleHover(msg *jsonrpcMessage) *jsonrpcMessage {
	var params TextDocumentPositionParams
	if err := json.Unmarshal(msg.Params, &params); err != nil {
		return invalidParams(msg, err)
	}

	var result *Hover
	if doc, ok := s.document(params.TextDocument.URI); ok {
		result = doc.hover(params.Position)
	}

	return &jsonrpcMessage{
		JSONRPC: "2.0",
		ID:      msg.ID,
		Result:  result,
	}
}

// hover shows the checked type of the innermost typed node under pos.
func (d *Document) hover(pos Position) *Hover {
	u, line, ok := d.unitAt(pos.Line)
	if !ok {
		return nil
	}

	i, span, ok := typedNodeAt(u, offsetAt(line.Text, pos.Character))
	if !ok {
		return nil
	}
	typ, _ := u.Types.Get(i)

	value := typ.String()
	if ref, ok := u.Arena.Get(i).(ast.VarRef); ok {
		value = u.Arena.Name(ref.Name) + ": " + value
	}

	r := spanRange(line, span)
	return &Hover{
		Contents: MarkupContent{
			Kind:  "markdown",
			Value: "```lil\n" + value + "\n```",
		},
		Range: &r,
	}
}

// typedNodeAt finds the innermost node covering offset that the checker
// assigned a type to.
func typedNodeAt(u *unit.Unit, offset int) (ast.Index, lexer.Span, bool) {
	var (
		found ast.Index
		span  lexer.Span
		ok    bool
	)
	ast.Walk(u.Arena, u.Decl.Index(), func(i ast.Index, _ ast.Node) bool {
		s, mapped := u.Sources.Span(i)
		if !mapped || offset < s.Start || offset >= s.End {
			return false
		}
		if _, typed := u.Types.Get(i); typed {
			found, span, ok = i, s, true
		}
		return true
	})
	return found, span, ok
}
