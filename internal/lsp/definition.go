package lsp

import (
	"encoding/json"

	"github.com/lil-lang/lil/internal/ast"
)

func (s *Server) handleDefinition(msg *jsonrpcMessage) *jsonrpcMessage {
	var params TextDocumentPositionParams
	if err := json.Unmarshal(msg.Params, &params); err != nil {
		return invalidParams(msg, err)
	}

	var result *Location
	if doc, ok := s.document(params.TextDocument.URI); ok {
		result = doc.definition(params.Position)
	}

	return &jsonrpcMessage{
		JSONRPC: "2.0",
		ID:      msg.ID,
		Result:  result,
	}
}

// definition resolves a variable under pos to the parameter that binds
// it. When a name is bound twice the later parameter wins, as in the
// checker.
func (d *Document) definition(pos Position) *Location {
	u, line, ok := d.unitAt(pos.Line)
	if !ok {
		return nil
	}
	m, ok := u.Arena.Decl(u.Decl).(ast.MethodDecl)
	if !ok {
		return nil
	}

	offset := offsetAt(line.Text, pos.Character)
	var name string
	ast.Walk(u.Arena, u.Decl.Index(), func(i ast.Index, n ast.Node) bool {
		s, mapped := u.Sources.Span(i)
		if !mapped || offset < s.Start || offset >= s.End {
			return false
		}
		if ref, ok := n.(ast.VarRef); ok {
			name = u.Arena.Name(ref.Name)
		}
		return true
	})
	if name == "" {
		return nil
	}

	for j := len(m.Params) - 1; j >= 0; j-- {
		p := m.Params[j]
		if u.Arena.Name(p.Name) != name {
			continue
		}
		span, ok := u.Sources.Span(p.Name.Index())
		if !ok {
			return nil
		}
		return &Location{URI: d.URI, Range: spanRange(line, span)}
	}
	return nil
}
