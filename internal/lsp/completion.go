package lsp

import (
	"encoding/json"

	"github.com/lil-lang/lil/internal/ast"
	"github.com/lil-lang/lil/internal/lexer"
)

// CompletionList represents a list of completion items.
type CompletionList struct {
	IsIncomplete bool             `json:"isIncomplete"`
	Items        []CompletionItem `json:"items"`
}

type CompletionItem struct {
	Label  string `json:"label"`
	Kind   int    `json:"kind"`
	Detail string `json:"detail,omitempty"`
}

const (
	completionKindVariable = 6
	completionKindKeyword  = 14
)

func (s *Server) handleCompletion(msg *jsonrpcMessage) *jsonrpcMessage {
	var params TextDocumentPositionParams
	if err := json.Unmarshal(msg.Params, &params); err != nil {
		return invalidParams(msg, err)
	}

	items := keywordItems()
	if doc, ok := s.document(params.TextDocument.URI); ok {
		items = append(doc.parameterItems(params.Position.Line), items...)
	}

	return &jsonrpcMessage{
		JSONRPC: "2.0",
		ID:      msg.ID,
		Result:  CompletionList{Items: items},
	}
}

func keywordItems() []CompletionItem {
	words := lexer.Keywords()
	items := make([]CompletionItem, len(words))
	for i, w := range words {
		items[i] = CompletionItem{Label: w, Kind: completionKindKeyword}
	}
	return items
}

// parameterItems offers the parameters of the method declared on line.
// A repeated name is offered once, with the type of its last occurrence.
func (d *Document) parameterItems(line int) []CompletionItem {
	u, _, ok := d.unitAt(line)
	if !ok {
		return nil
	}
	m, ok := u.Arena.Decl(u.Decl).(ast.MethodDecl)
	if !ok {
		return nil
	}

	var items []CompletionItem
	seen := make(map[string]int)
	for _, p := range m.Params {
		name := u.Arena.Name(p.Name)
		item := CompletionItem{
			Label:  name,
			Kind:   completionKindVariable,
			Detail: ast.PrintType(u.Arena, p.Declared),
		}
		if j, dup := seen[name]; dup {
			items[j] = item
			continue
		}
		seen[name] = len(items)
		items = append(items, item)
	}
	return items
}
