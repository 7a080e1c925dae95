package diag

import "fmt"

// Stage identifies which compiler phase produced the diagnostic.
type Stage string

const (
	StageLexer     Stage = "lexer"
	StageParser    Stage = "parser"
	StageTypeCheck Stage = "typecheck"
	StageInternal  Stage = "internal"
)

// Severity captures how impactful the diagnostic is.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityNote    Severity = "note"
)

// Code is a stable identifier for a diagnostic.
type Code string

const (
	// Lexer errors
	CodeLexerIllegalRune Code = "LEXER_ILLEGAL_RUNE"

	// Parser errors
	CodeParseUnexpectedToken Code = "PARSE_UNEXPECTED_TOKEN"
	CodeParseIntegerRange    Code = "PARSE_INTEGER_RANGE"

	// Type checker errors
	CodeTypeInternal          Code = "TYPE_INTERNAL_FAILURE"
	CodeTypeMismatch          Code = "TYPE_MISMATCH"
	CodeTypeUndefinedVariable Code = "TYPE_UNDEFINED_VARIABLE"
)

// Span represents a location in source code. Start and End are byte
// offsets; Line and Column are 1-based and optional.
type Span struct {
	Line   int
	Column int
	Start  int
	End    int
}

// String returns a human-readable representation of the span.
func (s Span) String() string {
	if s.IsValid() {
		return fmt.Sprintf("%d:%d", s.Line, s.Column)
	}
	return fmt.Sprintf("@%d", s.Start)
}

// IsValid returns true if the span has line information.
func (s Span) IsValid() bool {
	return s.Line > 0 && s.Column > 0
}

// Diagnostic is a compiler diagnostic surfaced to end-users.
type Diagnostic struct {
	Stage    Stage
	Severity Severity
	Code     Code
	Message  string
	Span     Span
	Label    string   // Optional text printed after the carets
	Notes    []string // Additional notes to display
	Help     string
}

// Error lets a diagnostic travel as an error value.
func (d Diagnostic) Error() string {
	return fmt.Sprintf("%s: %s", d.Span, d.Message)
}

// WithLabel returns a new diagnostic whose caret line carries label.
func (d Diagnostic) WithLabel(label string) Diagnostic {
	d.Label = label
	return d
}

// WithNote adds a note to the diagnostic.
func (d Diagnostic) WithNote(note string) Diagnostic {
	d.Notes = append(d.Notes, note)
	return d
}

// WithHelp adds help text to the diagnostic.
func (d Diagnostic) WithHelp(help string) Diagnostic {
	d.Help = help
	return d
}
