package lexer

import "sort"

// TokenType represents the type of a token
type TokenType string

// Span represents the source location of a token.
// Start and End are byte offsets into the input (End exclusive).
type Span struct {
	Line   int // 1-based line number
	Column int // 1-based column number, counted in runes
	Start  int
	End    int
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() int { return s.End - s.Start }

// Token represents a lexical token
type Token struct {
	Type TokenType
	Raw  string // exact bytes from source
	Span Span
}

// Is reports whether the token has the given type.
func (t Token) Is(tt TokenType) bool { return t.Type == tt }

// Token type constants
const (
	// Special tokens
	ILLEGAL TokenType = "ILLEGAL"
	EOF     TokenType = "EOF"

	// Identifiers and literals
	IDENT TokenType = "IDENT" // add, foobar, x, y, ...
	INT   TokenType = "INT"   // 1343456

	// Operators
	ASSIGN    TokenType = "="
	PLUS      TokenType = "+"
	MINUS     TokenType = "-"
	BANG      TokenType = "!"
	AMPERSAND TokenType = "&"
	PIPE      TokenType = "|"
	ASTERISK  TokenType = "*"
	SLASH     TokenType = "/"
	PERCENT   TokenType = "%"
	AND       TokenType = "&&"
	OR        TokenType = "||"

	LT     TokenType = "<"
	GT     TokenType = ">"
	EQ     TokenType = "=="
	NOT_EQ TokenType = "!="
	LE     TokenType = "<="
	GE     TokenType = ">="

	// Delimiters
	COMMA     TokenType = ","
	SEMICOLON TokenType = ";"
	COLON     TokenType = ":"
	DOT       TokenType = "."

	LPAREN   TokenType = "("
	RPAREN   TokenType = ")"
	LBRACE   TokenType = "{"
	RBRACE   TokenType = "}"
	LBRACKET TokenType = "["
	RBRACKET TokenType = "]"

	ARROW TokenType = "->"

	// Keywords
	ASSERT   TokenType = "ASSERT"
	BOOL     TokenType = "BOOL"
	BREAK    TokenType = "BREAK"
	CASE     TokenType = "CASE"
	CONTINUE TokenType = "CONTINUE"
	DEFAULT  TokenType = "DEFAULT"
	DELETE   TokenType = "DELETE"
	ELSE     TokenType = "ELSE"
	FALSE    TokenType = "FALSE"
	FOR      TokenType = "FOR"
	IF       TokenType = "IF"
	I8       TokenType = "I8"
	I16      TokenType = "I16"
	I32      TokenType = "I32"
	I64      TokenType = "I64"
	NEW      TokenType = "NEW"
	NULL     TokenType = "NULL"
	RETURN   TokenType = "RETURN"
	SKIP     TokenType = "SKIP"
	SWITCH   TokenType = "SWITCH"
	TRUE     TokenType = "TRUE"
	TYPE     TokenType = "TYPE"
	WHILE    TokenType = "WHILE"
	U8       TokenType = "U8"
	U16      TokenType = "U16"
	U32      TokenType = "U32"
	U64      TokenType = "U64"
	VOID     TokenType = "VOID"
)

var keywords = map[string]TokenType{
	"assert":   ASSERT,
	"bool":     BOOL,
	"break":    BREAK,
	"case":     CASE,
	"continue": CONTINUE,
	"default":  DEFAULT,
	"delete":   DELETE,
	"else":     ELSE,
	"false":    FALSE,
	"for":      FOR,
	"if":       IF,
	"i8":       I8,
	"i16":      I16,
	"i32":      I32,
	"i64":      I64,
	"new":      NEW,
	"null":     NULL,
	"return":   RETURN,
	"skip":     SKIP,
	"switch":   SWITCH,
	"true":     TRUE,
	"type":     TYPE,
	"while":    WHILE,
	"u8":       U8,
	"u16":      U16,
	"u32":      U32,
	"u64":      U64,
	"void":     VOID,
}

// LookupIdent checks if the identifier is a keyword
func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return IDENT
}

// Keywords returns the reserved words in sorted order.
func Keywords() []string {
	words := make([]string, 0, len(keywords))
	for w := range keywords {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}
