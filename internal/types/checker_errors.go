package types

import (
	"fmt"

	"github.com/lil-lang/lil/internal/ast"
	"github.com/lil-lang/lil/internal/diag"
	"github.com/lil-lang/lil/internal/lexer"
)

// ErrorCode identifies the kind of a checking failure.
type ErrorCode int

const (
	// InternalFailure means the arena holds something the checker cannot
	// interpret. It indicates a bug, not a user error.
	InternalFailure ErrorCode = iota
	// ExpectedSubtype means a node's type differs from the one required.
	ExpectedSubtype
	// VariableNotFound means a variable was used without being bound.
	VariableNotFound
)

func (c ErrorCode) String() string {
	switch c {
	case InternalFailure:
		return "internal failure"
	case ExpectedSubtype:
		return "expected subtype"
	case VariableNotFound:
		return "variable not found"
	default:
		return fmt.Sprintf("ErrorCode(%d)", int(c))
	}
}

func (c ErrorCode) diagnosticCode() diag.Code {
	switch c {
	case ExpectedSubtype:
		return diag.CodeTypeMismatch
	case VariableNotFound:
		return diag.CodeTypeUndefinedVariable
	default:
		return diag.CodeTypeInternal
	}
}

// SyntaxError reports a checking failure on one arena node.
type SyntaxError struct {
	Node    ast.Index
	Code    ErrorCode
	Message string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("node %d: %s", e.Node, e.Message)
}

// SpanLookup recovers the source span of a node, if it is known.
type SpanLookup func(ast.Index) (lexer.Span, bool)

// ToDiagnostic converts the error into a shared diagnostic structure,
// using spans to place it in the source.
func (e *SyntaxError) ToDiagnostic(spans SpanLookup) diag.Diagnostic {
	d := diag.Diagnostic{
		Stage:    diag.StageTypeCheck,
		Severity: diag.SeverityError,
		Code:     e.Code.diagnosticCode(),
		Message:  e.Message,
		Span:     diag.Span{Start: -1, End: -1},
	}
	if spans != nil {
		if span, ok := spans(e.Node); ok {
			d.Span = diag.Span{
				Line:   span.Line,
				Column: span.Column,
				Start:  span.Start,
				End:    span.End,
			}
		}
	}
	if e.Code == VariableNotFound {
		d = d.WithNote("only method parameters are in scope")
	}
	return d
}

func internalFailure(node ast.Index, format string, args ...any) *SyntaxError {
	return &SyntaxError{Node: node, Code: InternalFailure, Message: fmt.Sprintf(format, args...)}
}

func expectedSubtype(node ast.Index, want string, got Type) *SyntaxError {
	return &SyntaxError{
		Node:    node,
		Code:    ExpectedSubtype,
		Message: fmt.Sprintf("expected %s, found `%s`", want, got),
	}
}

func variableNotFound(node ast.Index, name string) *SyntaxError {
	return &SyntaxError{
		Node:    node,
		Code:    VariableNotFound,
		Message: fmt.Sprintf("undefined variable `%s`", name),
	}
}
