package lsp

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"sync"
)

// Server is a language server speaking JSON-RPC over a byte stream with
// Content-Length framing.
type Server struct {
	// Documents tracks open files by URI
	Documents map[string]*Document
	mu        sync.RWMutex

	in    io.Reader
	out   io.Writer
	outMu sync.Mutex

	shutdown bool
}

// NewServer creates a server reading requests from in and writing
// responses and notifications to out.
func NewServer(in io.Reader, out io.Writer) *Server {
	return &Server{
		Documents: make(map[string]*Document),
		in:        in,
		out:       out,
	}
}

// incoming is one read from the client.
type incoming struct {
	body []byte
	err  error
}

// Run serves requests until the input ends, the client sends exit, or
// ctx is cancelled. Cancellation returns at once even while a read is
// pending; that read is abandoned with the input.
func (s *Server) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	messages := make(chan incoming)
	go func() {
		reader := bufio.NewReader(s.in)
		for {
			body, err := readMessage(reader)
			select {
			case messages <- incoming{body: body, err: err}:
			case <-ctx.Done():
				return
			}
			if err != nil {
				return
			}
		}
	}()

	for {
		var in incoming
		select {
		case <-ctx.Done():
			return ctx.Err()
		case in = <-messages:
		}

		body, err := in.body, in.err
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		var msg jsonrpcMessage
		if err := json.Unmarshal(body, &msg); err != nil {
			log.Printf("Failed to parse JSON-RPC message: %v", err)
			continue
		}

		if msg.Method == "exit" {
			return nil
		}

		response := s.handleMessage(ctx, &msg)
		if response != nil {
			if err := s.send(response); err != nil {
				log.Printf("Failed to send response: %v", err)
			}
		}
	}
}

// maxContentLength bounds the body size a client may announce.
const maxContentLength = 64 << 20

// readMessage reads one framed message body. Headers other than
// Content-Length are ignored.
func readMessage(r *bufio.Reader) ([]byte, error) {
	contentLength := -1
	for {
		line, err := r.ReadString('\n')
		if err != nil {
			if errors.Is(err, io.EOF) && line == "" {
				return nil, io.EOF
			}
			return nil, fmt.Errorf("failed to read header: %w", err)
		}
		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			break
		}
		var n int
		if _, err := fmt.Sscanf(line, "Content-Length: %d", &n); err == nil {
			contentLength = n
		}
	}
	if contentLength < 0 {
		return nil, fmt.Errorf("missing Content-Length header")
	}
	if contentLength > maxContentLength {
		return nil, fmt.Errorf("message too large: %d", contentLength)
	}

	body := make([]byte, contentLength)
	if _, err := io.ReadFull(r, body); err != nil {
		return nil, fmt.Errorf("failed to read message body: %w", err)
	}
	return body, nil
}

// jsonrpcMessage represents a JSON-RPC 2.0 message.
type jsonrpcMessage struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      interface{}     `json:"id,omitempty"`
	Method  string          `json:"method,omitempty"`
	Params  json.RawMessage `json:"params,omitempty"`
	Result  interface{}     `json:"result,omitempty"`
	Error   *jsonrpcError   `json:"error,omitempty"`
}

// MarshalJSON writes a result member on every successful response, null
// included, and leaves it out of requests, notifications and errors.
func (m jsonrpcMessage) MarshalJSON() ([]byte, error) {
	type message jsonrpcMessage
	if m.Method != "" || m.Error != nil {
		return json.Marshal(message(m))
	}
	return json.Marshal(struct {
		JSONRPC string      `json:"jsonrpc"`
		ID      interface{} `json:"id"`
		Result  interface{} `json:"result"`
	}{m.JSONRPC, m.ID, m.Result})
}

type jsonrpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

const (
	codeInvalidParams  = -32602
	codeMethodNotFound = -32601
	codeInvalidRequest = -32600
)

func (s *Server) handleMessage(ctx context.Context, msg *jsonrpcMessage) *jsonrpcMessage {
	if s.shutdown && msg.ID != nil && msg.Method != "shutdown" {
		return errorResponse(msg, codeInvalidRequest, "server is shutting down")
	}

	switch msg.Method {
	case "initialize":
		return s.handleInitialize(msg)
	case "initialized":
		return nil
	case "textDocument/didOpen":
		s.handleDidOpen(ctx, msg)
		return nil
	case "textDocument/didChange":
		s.handleDidChange(ctx, msg)
		return nil
	case "textDocument/didClose":
		s.handleDidClose(msg)
		return nil
	case "textDocument/completion":
		return s.handleCompletion(msg)
	case "textDocument/hover":
		return s.handleHover(msg)
	case "textDocument/definition":
		return s.handleDefinition(msg)
	case "shutdown":
		s.shutdown = true
		return &jsonrpcMessage{JSONRPC: "2.0", ID: msg.ID}
	default:
		if msg.ID != nil {
			return errorResponse(msg, codeMethodNotFound, fmt.Sprintf("Method not found: %s", msg.Method))
		}
		return nil
	}
}

func errorResponse(msg *jsonrpcMessage, code int, message string) *jsonrpcMessage {
	return &jsonrpcMessage{
		JSONRPC: "2.0",
		ID:      msg.ID,
		Error:   &jsonrpcError{Code: code, Message: message},
	}
}

func invalidParams(msg *jsonrpcMessage, err error) *jsonrpcMessage {
	return errorResponse(msg, codeInvalidParams, fmt.Sprintf("Invalid params: %v", err))
}

// send writes one framed message.
func (s *Server) send(msg *jsonrpcMessage) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal response: %w", err)
	}

	s.outMu.Lock()
	defer s.outMu.Unlock()

	if _, err := fmt.Fprintf(s.out, "Content-Length: %d\r\n\r\n", len(data)); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if _, err := s.out.Write(data); err != nil {
		return fmt.Errorf("failed to write body: %w", err)
	}
	return nil
}

// InitializeResult represents the initialize response.
type InitializeResult struct {
	Capabilities ServerCapabilities `json:"capabilities"`
	ServerInfo   ServerInfo         `json:"serverInfo"`
}

type ServerCapabilities struct {
	TextDocumentSync   int                    `json:"textDocumentSync"`
	CompletionProvider map[string]interface{} `json:"completionProvider,omitempty"`
	HoverProvider      bool                   `json:"hoverProvider"`
	DefinitionProvider bool                   `json:"definitionProvider"`
}

type ServerInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

func (s *Server) handleInitialize(msg *jsonrpcMessage) *jsonrpcMessage {
	return &jsonrpcMessage{
		JSONRPC: "2.0",
		ID:      msg.ID,
		Result: InitializeResult{
			Capabilities: ServerCapabilities{
				TextDocumentSync:   1, // full document sync
				CompletionProvider: map[string]interface{}{},
				HoverProvider:      true,
				DefinitionProvider: true,
			},
			ServerInfo: ServerInfo{
				Name:    "lil-lsp",
				Version: "0.1.0",
			},
		},
	}
}

type TextDocumentItem struct {
	URI        string `json:"uri"`
	LanguageID string `json:"languageId"`
	Version    int    `json:"version"`
	Text       string `json:"text"`
}

type TextDocumentIdentifier struct {
	URI string `json:"uri"`
}

type VersionedTextDocumentIdentifier struct {
	URI     string `json:"uri"`
	Version int    `json:"version"`
}

type TextDocumentContentChangeEvent struct {
	Text string `json:"text"`
}

// TextDocumentPositionParams represents a position in a text document.
type TextDocumentPositionParams struct {
	TextDocument TextDocumentIdentifier `json:"textDocument"`
	Position     Position               `json:"position"`
}

func (s *Server) handleDidOpen(ctx context.Context, msg *jsonrpcMessage) {
	var params struct {
		TextDocument TextDocumentItem `json:"textDocument"`
	}
	if err := json.Unmarshal(msg.Params, &params); err != nil {
		log.Printf("Failed to parse didOpen params: %v", err)
		return
	}

	doc := &Document{
		URI:     params.TextDocument.URI,
		Version: params.TextDocument.Version,
	}
	if err := doc.update(ctx, params.TextDocument.Text); err != nil {
		log.Printf("Failed to analyze %s: %v", doc.URI, err)
		return
	}

	s.mu.Lock()
	s.Documents[doc.URI] = doc
	s.mu.Unlock()

	s.publishDiagnostics(doc)
}

func (s *Server) handleDidChange(ctx context.Context, msg *jsonrpcMessage) {
	var params struct {
		TextDocument   VersionedTextDocumentIdentifier  `json:"textDocument"`
		ContentChanges []TextDocumentContentChangeEvent `json:"contentChanges"`
	}
	if err := json.Unmarshal(msg.Params, &params); err != nil {
		log.Printf("Failed to parse didChange params: %v", err)
		return
	}
	if len(params.ContentChanges) == 0 {
		return
	}

	// Only full-document sync is advertised, so the last change holds the
	// whole text.
	doc := &Document{
		URI:     params.TextDocument.URI,
		Version: params.TextDocument.Version,
	}
	if err := doc.update(ctx, params.ContentChanges[len(params.ContentChanges)-1].Text); err != nil {
		log.Printf("Failed to analyze %s: %v", doc.URI, err)
		return
	}

	s.mu.Lock()
	if _, ok := s.Documents[doc.URI]; !ok {
		s.mu.Unlock()
		return
	}
	s.Documents[doc.URI] = doc
	s.mu.Unlock()

	s.publishDiagnostics(doc)
}

func (s *Server) handleDidClose(msg *jsonrpcMessage) {
	var params struct {
		TextDocument TextDocumentIdentifier `json:"textDocument"`
	}
	if err := json.Unmarshal(msg.Params, &params); err != nil {
		log.Printf("Failed to parse didClose params: %v", err)
		return
	}

	s.mu.Lock()
	delete(s.Documents, params.TextDocument.URI)
	s.mu.Unlock()

	s.publish(params.TextDocument.URI, []Diagnostic{})
}

func (s *Server) document(uri string) (*Document, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.Documents[uri]
	return doc, ok
}

func (s *Server) publishDiagnostics(doc *Document) {
	s.publish(doc.URI, doc.Diagnostics)
}

func (s *Server) publish(uri string, diagnostics []Diagnostic) {
	params, err := json.Marshal(map[string]interface{}{
		"uri":         uri,
		"diagnostics": diagnostics,
	})
	if err != nil {
		log.Printf("Failed to marshal diagnostics: %v", err)
		return
	}
	notification := &jsonrpcMessage{
		JSONRPC: "2.0",
		Method:  "textDocument/publishDiagnostics",
		Params:  params,
	}
	if err := s.send(notification); err != nil {
		log.Printf("Failed to publish diagnostics: %v", err)
	}
}
