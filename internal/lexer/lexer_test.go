package lexer

import (
	"testing"
)

func TestNext_Basic(t *testing.T) {
	input := `void f(bool b) { assert b; }`

	tests := []struct {
		expectedType TokenType
		expectedRaw  string
	}{
		{VOID, "void"},
		{IDENT, "f"},
		{LPAREN, "("},
		{BOOL, "bool"},
		{IDENT, "b"},
		{RPAREN, ")"},
		{LBRACE, "{"},
		{ASSERT, "assert"},
		{IDENT, "b"},
		{SEMICOLON, ";"},
		{RBRACE, "}"},
		{EOF, ""},
	}

	l := New(input)

	for i, tt := range tests {
		tok := l.Next()

		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%q, got=%q",
				i, tt.expectedType, tok.Type)
		}

		if tok.Raw != tt.expectedRaw {
			t.Fatalf("tests[%d] - raw wrong. expected=%q, got=%q",
				i, tt.expectedRaw, tok.Raw)
		}
	}
}

func TestNext_Operators(t *testing.T) {
	input := `= + - * / % ! & | == != < > <= >= && || ->`

	expected := []TokenType{
		ASSIGN, PLUS, MINUS, ASTERISK, SLASH, PERCENT, BANG, AMPERSAND, PIPE,
		EQ, NOT_EQ, LT, GT, LE, GE, AND, OR, ARROW, EOF,
	}

	toks := Tokenize(input)
	if len(toks) != len(expected) {
		t.Fatalf("expected %d tokens, got %d", len(expected), len(toks))
	}
	for i, typ := range expected {
		if toks[i].Type != typ {
			t.Fatalf("tests[%d] - expected token %q, got %q (raw %q)", i, typ, toks[i].Type, toks[i].Raw)
		}
	}
}

func TestNext_Delimiters(t *testing.T) {
	input := `,;:.(){}[]`

	expected := []TokenType{
		COMMA, SEMICOLON, COLON, DOT, LPAREN, RPAREN, LBRACE, RBRACE, LBRACKET, RBRACKET, EOF,
	}

	for i, tok := range Tokenize(input) {
		if tok.Type != expected[i] {
			t.Fatalf("tests[%d] - expected token %q, got %q", i, expected[i], tok.Type)
		}
	}
}

func TestNext_AdjacentAmpersands(t *testing.T) {
	toks := Tokenize("&&&i16")

	expected := []struct {
		typ TokenType
		raw string
	}{
		{AND, "&&"},
		{AMPERSAND, "&"},
		{I16, "i16"},
		{EOF, ""},
	}
	for i, want := range expected {
		if toks[i].Type != want.typ || toks[i].Raw != want.raw {
			t.Fatalf("tests[%d] - expected %q %q, got %q %q", i, want.typ, want.raw, toks[i].Type, toks[i].Raw)
		}
	}
}

func TestKeywords(t *testing.T) {
	tests := map[string]TokenType{
		"assert": ASSERT,
		"bool":   BOOL,
		"false":  FALSE,
		"i8":     I8,
		"i16":    I16,
		"i32":    I32,
		"i64":    I64,
		"null":   NULL,
		"skip":   SKIP,
		"true":   TRUE,
		"type":   TYPE,
		"u8":     U8,
		"u16":    U16,
		"u32":    U32,
		"u64":    U64,
		"void":   VOID,
		"while":  WHILE,
		"i128":   IDENT,
		"Bool":   IDENT,
		"_skip":  IDENT,
	}

	for word, want := range tests {
		if got := LookupIdent(word); got != want {
			t.Fatalf("LookupIdent(%q) = %q, want %q", word, got, want)
		}
	}
}

func TestKeywordsSorted(t *testing.T) {
	words := Keywords()
	if len(words) != len(keywords) {
		t.Fatalf("expected %d keywords, got %d", len(keywords), len(words))
	}
	for i := 1; i < len(words); i++ {
		if words[i-1] >= words[i] {
			t.Fatalf("keywords not sorted at %d: %q >= %q", i, words[i-1], words[i])
		}
	}
}

func TestIdentifiersAndNumbers(t *testing.T) {
	toks := Tokenize("x_1 héllo 007 42abc")

	expected := []struct {
		typ TokenType
		raw string
	}{
		{IDENT, "x_1"},
		{IDENT, "héllo"},
		{INT, "007"},
		{INT, "42"},
		{IDENT, "abc"},
		{EOF, ""},
	}
	for i, want := range expected {
		if toks[i].Type != want.typ || toks[i].Raw != want.raw {
			t.Fatalf("tests[%d] - expected %q %q, got %q %q", i, want.typ, want.raw, toks[i].Type, toks[i].Raw)
		}
	}
}

func TestLineComments(t *testing.T) {
	input := "// leading\ntype // trailing\nt / 2 // end"

	expected := []TokenType{TYPE, IDENT, SLASH, INT, EOF}
	toks := Tokenize(input)
	if len(toks) != len(expected) {
		t.Fatalf("expected %d tokens, got %d", len(expected), len(toks))
	}
	for i, typ := range expected {
		if toks[i].Type != typ {
			t.Fatalf("tests[%d] - expected token %q, got %q", i, typ, toks[i].Type)
		}
	}
}

func TestSpans(t *testing.T) {
	input := "type\n  t = é;"

	toks := Tokenize(input)

	expected := []Span{
		{Line: 1, Column: 1, Start: 0, End: 4},
		{Line: 2, Column: 3, Start: 7, End: 8},
		{Line: 2, Column: 5, Start: 9, End: 10},
		{Line: 2, Column: 7, Start: 11, End: 13},
		{Line: 2, Column: 8, Start: 13, End: 14},
		{Line: 2, Column: 9, Start: 14, End: 14},
	}
	for i, want := range expected {
		if toks[i].Span != want {
			t.Fatalf("tests[%d] - expected span %+v, got %+v (raw %q)", i, want, toks[i].Span, toks[i].Raw)
		}
	}
	if got := toks[3].Span.Len(); got != 2 {
		t.Fatalf("expected a two-byte span for %q, got %d", toks[3].Raw, got)
	}
}

func TestPeekDoesNotConsume(t *testing.T) {
	l := New("skip;")

	first := l.Peek()
	if again := l.Peek(); again != first {
		t.Fatalf("repeated Peek returned %+v, then %+v", first, again)
	}
	if next := l.Next(); next != first {
		t.Fatalf("Next returned %+v, Peek promised %+v", next, first)
	}
	if tok := l.Next(); tok.Type != SEMICOLON {
		t.Fatalf("expected SEMICOLON, got %q", tok.Type)
	}
	for i := 0; i < 3; i++ {
		if tok := l.Next(); tok.Type != EOF {
			t.Fatalf("expected EOF to repeat, got %q", tok.Type)
		}
	}
}

func TestEmptyInput(t *testing.T) {
	toks := Tokenize("")
	if len(toks) != 1 || toks[0].Type != EOF {
		t.Fatalf("expected a lone EOF, got %+v", toks)
	}
	if toks[0].Span != (Span{Line: 1, Column: 1, Start: 0, End: 0}) {
		t.Fatalf("unexpected EOF span %+v", toks[0].Span)
	}
}
